package jacknine

import (
	"testing"

	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"

	"github.com/stretchr/testify/assert"
)

func TestGame_setTrumpCard(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, 1)
	setHands(g, "7c,8c", "7h,8h", "7d,8d", "7s,8s")

	a.Equal(ErrNotYourTurn, g.setTrumpCard(0, deck.CardFromString("7c")))
	a.Equal(ErrInvalidCard, g.setTrumpCard(1, deck.CardFromString("7c")))

	a.NoError(g.setTrumpCard(1, deck.CardFromString("8h")))
	a.Equal(PhasePlay, g.phase)
	a.Equal(1, g.currentSeat)
	a.NotNil(g.trumpCard)
	a.Equal(1, g.trumpCard.seat)
	a.False(g.trumpRevealed)

	// the binding card stays in the setter's hand
	a.True(g.seats[1].HasCard(deck.CardFromString("8h")))

	// the broadcast must not carry the suit
	events := g.DrainEvents()
	a.Equal(1, len(events))
	a.Equal(-1, events[0].ToSeat)
	a.Equal("trumpSet", events[0].Response.Key)
	data := events[0].Response.Data.(map[string]interface{})
	a.Equal(1, data["seatIndex"])
	_, hasSuit := data["suit"]
	a.False(hasSuit)

	// selection is over
	a.Equal(ErrWrongPhase, g.setTrumpCard(1, deck.CardFromString("7h")))
	a.Equal(ErrWrongPhase, g.passTrump(1))
}

func TestGame_setTrumpCard_suitHiddenFromOtherSeats(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, 0)
	setHands(g, "7c,8c", "7h,8h", "7d,8d", "7s,8s")

	a.NoError(g.setTrumpCard(0, deck.CardFromString("8c")))

	state, err := g.GetSeatState(0)
	a.NoError(err)
	setter := state.Data.(*Response)
	a.True(setter.IsTrumpSetter)
	a.Equal(deck.CardFromString("8c"), setter.TrumpCard)
	a.Equal(deck.Suit(""), setter.GameState.TrumpSuit)

	state, err = g.GetSeatState(1)
	a.NoError(err)
	other := state.Data.(*Response)
	a.False(other.IsTrumpSetter)
	a.Nil(other.TrumpCard)
	a.True(other.GameState.TrumpSet)
	a.Equal(0, other.GameState.TrumpSetterSeat)
	a.Equal(deck.Suit(""), other.GameState.TrumpSuit)
}

func TestGame_passTrump(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, 2)
	setHands(g, "7c", "7h", "7d", "7s")

	a.Equal(ErrNotYourTurn, g.passTrump(0))

	a.NoError(g.passTrump(2))
	a.Equal(3, g.currentSeat)
	a.NoError(g.passTrump(3))
	a.Equal(0, g.currentSeat)
	a.NoError(g.passTrump(0))
	a.Equal(1, g.currentSeat)
	a.Equal(PhaseTrumpSelection, g.phase)

	// fourth pass: no-trump round, the original start seat leads
	a.NoError(g.passTrump(1))
	a.Equal(PhasePlay, g.phase)
	a.Nil(g.trumpCard)
	a.Equal(2, g.currentSeat)

	events := g.DrainEvents()
	a.Equal(4, len(events))
	last := events[3].Response.Data.(map[string]interface{})
	a.Equal(true, last["noTrump"])
	a.Equal(2, last["nextSeat"])
}

func TestGame_Action_trumpSelection(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, 0)
	setHands(g, "7c,8c", "7h", "7d", "7s")

	_, _, err := g.Action(0, &playable.PayloadIn{Action: "setTrumpCard"})
	a.EqualError(err, "expected to get 1 card, got 0")

	resp, update, err := g.Action(0, &playable.PayloadIn{
		Action:  "setTrumpCard",
		Cards:   []*deck.Card{deck.CardFromString("7c")},
		Context: "ctx-1",
	})
	a.NoError(err)
	a.True(update)
	a.Equal("OK", resp.Value)
	a.Equal("ctx-1", resp.Context)
}
