package jacknine

import (
	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"
)

// offerReveal grants the current seat a one-shot private look at the trump
// suit, but only when a trick is underway, the seat cannot follow the
// leading suit, and a trump is bound and still hidden. The offer is
// recomputed on every turn advance and cleared when the trick resolves.
func (g *Game) offerReveal() {
	g.revealOfferSeat = -1

	if g.leadingSuit == "" || g.trumpCard == nil || g.trumpRevealed {
		return
	}

	if g.seats[g.currentSeat].HasSuit(g.leadingSuit) {
		return
	}

	g.revealOfferSeat = g.currentSeat

	g.queueEvent(g.currentSeat, &playable.Response{
		Key:  "revealAvailable",
		Data: map[string]interface{}{"canReveal": true},
	})
}

// askRevealTrump returns the trump suit to the requesting seat alone.
// It does not mark the trump as publicly revealed.
func (g *Game) askRevealTrump(seat int) (deck.Suit, error) {
	if g.revealOfferSeat != seat || !g.isSeatsTurn(seat) {
		return "", ErrRevealNotAvailable
	}

	if g.trumpCard == nil || g.trumpRevealed {
		return "", ErrRevealNotAvailable
	}

	if g.seats[seat].HasSuit(g.leadingSuit) {
		return "", ErrRevealNotAvailable
	}

	g.sendLogMessages(playable.SimpleLogMessage(seat, "{} peeked at the trump suit"))

	return g.trumpCard.card.Suit, nil
}
