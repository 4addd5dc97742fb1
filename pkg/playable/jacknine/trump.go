package jacknine

import (
	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"
)

// setTrumpCard binds the seat's card as the hidden trump. The suit is not
// broadcast; only the fact that a trump was set. The setter leads the
// first trick.
func (g *Game) setTrumpCard(seat int, card *deck.Card) error {
	if g.phase != PhaseTrumpSelection {
		return ErrWrongPhase
	}

	if !g.isSeatsTurn(seat) {
		return ErrNotYourTurn
	}

	if !g.seats[seat].HasCard(card) {
		return ErrInvalidCard
	}

	g.trumpCard = &boundTrump{
		seat: seat,
		card: card,
	}
	g.trumpSuit = ""
	g.trumpRevealed = false

	g.phase = PhasePlay
	g.currentSeat = seat

	g.queueEvent(-1, &playable.Response{
		Key: "trumpSet",
		Data: map[string]interface{}{
			"seatIndex":        seat,
			"currentSeatIndex": g.currentSeat,
		},
	})

	g.sendLogMessages(playable.SimpleLogMessage(seat, "{} set the trump card"))

	return nil
}

// passTrump declines to set a trump. After four consecutive passes the
// round is played without a trump and the original start seat leads.
func (g *Game) passTrump(seat int) error {
	if g.phase != PhaseTrumpSelection {
		return ErrWrongPhase
	}

	if !g.isSeatsTurn(seat) {
		return ErrNotYourTurn
	}

	g.passCount++
	if g.passCount == numSeats {
		g.passCount = 0
		g.phase = PhasePlay
		g.currentSeat = g.startSeat

		g.queueEvent(-1, &playable.Response{
			Key: "trumpPassed",
			Data: map[string]interface{}{
				"nextSeat": g.currentSeat,
				"noTrump":  true,
			},
		})

		g.sendLogMessages(playable.SimpleLogMessage(-1, "All seats passed; the round is played without a trump"))

		return nil
	}

	g.currentSeat = (seat + 1) % numSeats

	g.queueEvent(-1, &playable.Response{
		Key: "trumpPassed",
		Data: map[string]interface{}{
			"nextSeat": g.currentSeat,
		},
	})

	g.sendLogMessages(playable.SimpleLogMessage(seat, "{} passed"))

	return nil
}
