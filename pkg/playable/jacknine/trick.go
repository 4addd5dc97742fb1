package jacknine

import (
	"time"

	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"
)

// trickResult records the outcome of the most recent trick
type trickResult struct {
	Winner int `json:"winner"`
	Points int `json:"points"`
}

// playCard plays the card for the seat. Validation happens in full before
// any state is touched: turn, hand membership, then follow-suit.
func (g *Game) playCard(seat int, card *deck.Card) error {
	if g.phase != PhasePlay {
		return ErrWrongPhase
	}

	if !g.isSeatsTurn(seat) {
		return ErrNotYourTurn
	}

	s := g.seats[seat]
	if !s.HasCard(card) {
		return ErrInvalidCard
	}

	if g.leadingSuit != "" && card.Suit != g.leadingSuit && s.HasSuit(g.leadingSuit) {
		return ErrMustFollowSuit
	}

	if err := s.removeCard(card); err != nil {
		// already checked above
		panic(err)
	}

	g.trickCards = append(g.trickCards, &playedCard{
		card: card,
		seat: s,
	})

	if len(g.trickCards) == 1 {
		g.leadingSuit = card.Suit
	}

	// playing the bound trump card is itself the public reveal
	justRevealed := false
	if g.trumpCard != nil && !g.trumpRevealed && g.trumpCard.card.Equal(card) {
		g.trumpSuit = card.Suit
		g.trumpRevealed = true
		justRevealed = true
	}

	g.queueEvent(-1, &playable.Response{
		Key: "cardPlayed",
		Data: map[string]interface{}{
			"seatIndex":   seat,
			"card":        card,
			"trickCards":  g.trickCardsState(),
			"leadingSuit": g.leadingSuit,
		},
	})

	if justRevealed {
		g.queueEvent(-1, &playable.Response{
			Key:  "trumpRevealed",
			Data: map[string]interface{}{"suit": g.trumpSuit},
		})
		g.sendLogMessages(playable.SimpleLogMessage(seat, "{} revealed the trump by playing it"))
	}

	g.sendLogMessages(newCardLogMessage(seat, card, "{} played a card"))

	g.revealOfferSeat = -1

	if len(g.trickCards) == numSeats {
		g.pendingDealerAction = &pendingDealerAction{
			Action:       dealerActionResolveTrick,
			ExecuteAfter: time.Now().Add(g.options.TrickDelay),
		}

		return nil
	}

	g.advanceTurn()

	return nil
}

// resolveTrick determines the winner of a completed trick, awards the
// points, and either starts the next trick, schedules the next round, or
// ends the game
func (g *Game) resolveTrick() {
	winner := g.trickWinner()
	points := g.trickPoints()

	g.scores[winner.Index] += points
	g.lastTrick = &trickResult{
		Winner: winner.Index,
		Points: points,
	}

	g.trickCards = nil
	g.leadingSuit = ""
	g.revealOfferSeat = -1
	g.tricksPlayed++
	g.currentSeat = winner.Index
	g.startSeat = winner.Index

	scores := make([]int, numSeats)
	copy(scores, g.scores[:])

	g.queueEvent(-1, &playable.Response{
		Key: "trickComplete",
		Data: map[string]interface{}{
			"winnerSeat": winner.Index,
			"points":     points,
			"scores":     scores,
		},
	})

	g.sendLogMessages(playable.SimpleLogMessage(winner.Index, "{} won the trick for %d points", points))

	if g.tricksPlayed == deck.HandSize {
		g.roundNo++
		if g.roundNo > g.options.RoundsPerGame {
			g.endGame()
			return
		}

		g.phase = PhaseRoundEnd
		g.pendingDealerAction = &pendingDealerAction{
			Action:       dealerActionNextRound,
			ExecuteAfter: time.Now().Add(g.options.RoundDelay),
		}
	}
}

// trickWinner applies trump-first resolution: the strongest trump-suit card
// wins if any trump was played, otherwise the strongest leading-suit card.
// Off-suit, non-trump cards never win.
func (g *Game) trickWinner() *Seat {
	if len(g.trickCards) != numSeats {
		panic("trickWinner() called on an incomplete trick")
	}

	if g.trumpRevealed {
		if winner := g.highestOfSuit(g.trumpSuit); winner != nil {
			return winner
		}
	}

	if winner := g.highestOfSuit(g.leadingSuit); winner != nil {
		return winner
	}

	// the leader always matches the leading suit
	panic("no card matched the leading suit")
}

func (g *Game) highestOfSuit(suit deck.Suit) *Seat {
	var best *playedCard
	for _, pc := range g.trickCards {
		if pc.card.Suit != suit {
			continue
		}

		if best == nil || pc.card.Beats(best.card) {
			best = pc
		}
	}

	if best == nil {
		return nil
	}

	return best.seat
}

func (g *Game) trickPoints() int {
	points := 0
	for _, pc := range g.trickCards {
		points += pc.card.Points()
	}

	return points
}

// nextRound resets per-round state and deals a fresh hand. The winner of
// the previous trick opens the new round's trump selection.
func (g *Game) nextRound() error {
	for _, seat := range g.seats {
		seat.newRound()
	}

	g.deck = deck.New()
	if err := g.Deal(); err != nil {
		return err
	}

	g.phase = PhaseTrumpSelection
	g.currentSeat = g.startSeat
	g.passCount = 0
	g.tricksPlayed = 0
	g.trickCards = nil
	g.leadingSuit = ""
	g.trumpCard = nil
	g.trumpSuit = ""
	g.trumpRevealed = false
	g.revealOfferSeat = -1
	g.lastTrick = nil

	g.queueEvent(-1, &playable.Response{
		Key: "roundAdvanced",
		Data: map[string]interface{}{
			"roundNumber": g.roundNo,
			"startSeat":   g.startSeat,
		},
	})

	g.sendLogMessages(playable.SimpleLogMessage(-1, "Round %d begins", g.roundNo))

	return nil
}
