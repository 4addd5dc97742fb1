package jacknine

import (
	"testing"

	"jacknine-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

// startPlay puts the game directly in the play phase with the given hands
// and, optionally, a bound trump
func startPlay(t *testing.T, leader int, trump string, trumpSeat int, hands ...string) *Game {
	t.Helper()

	g := setupGame(t, leader)
	setHands(g, hands...)
	g.phase = PhasePlay
	g.currentSeat = leader
	g.startSeat = leader

	if trump != "" {
		g.trumpCard = &boundTrump{
			seat: trumpSeat,
			card: deck.CardFromString(trump),
		}
	}

	g.DrainEvents()
	return g
}

func TestGame_playCard_validation(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 0, "", 0,
		"7h,9c",
		"8h,11c",
		"9h,12c",
		"10h,13c",
	)

	a.Equal(ErrNotYourTurn, g.playCard(1, deck.CardFromString("8h")))
	a.Equal(ErrInvalidCard, g.playCard(0, deck.CardFromString("14s")))

	a.NoError(g.playCard(0, deck.CardFromString("7h")))
	a.Equal(deck.Hearts, g.leadingSuit)
	a.Equal(1, g.currentSeat)

	// seat 1 holds a heart and must follow
	a.Equal(ErrMustFollowSuit, g.playCard(1, deck.CardFromString("11c")))
	a.NoError(g.playCard(1, deck.CardFromString("8h")))

	// hand unchanged after a rejected play
	a.Equal(2, len(g.seats[2].hand))
	a.Equal(ErrMustFollowSuit, g.playCard(2, deck.CardFromString("12c")))
	a.Equal(2, len(g.seats[2].hand))
	a.Equal(2, g.currentSeat)
}

func TestGame_playCard_offSuitWhenCannotFollow(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 0, "", 0,
		"7h",
		"13s",
		"8h",
		"9h",
	)

	a.NoError(g.playCard(0, deck.CardFromString("7h")))
	// seat 1 has no hearts, any card is legal
	a.NoError(g.playCard(1, deck.CardFromString("13s")))
	a.NoError(g.playCard(2, deck.CardFromString("8h")))
	a.NoError(g.playCard(3, deck.CardFromString("9h")))

	a.NotNil(g.pendingDealerAction)
	_, err := g.Tick()
	a.NoError(err)

	// the off-suit king cannot win; 9♡ is the strongest heart
	a.Equal(3, g.lastTrick.Winner)
	a.Equal(2, g.lastTrick.Points)
	a.Equal(3, g.currentSeat)
	a.Equal([numSeats]int{0, 0, 0, 2}, g.scores)
}

func TestGame_playCard_trumpWins(t *testing.T) {
	a := assert.New(t)

	// seat 1 bound 7♦ as trump
	g := startPlay(t, 0, "7d", 1,
		"14h",
		"7d",
		"8h",
		"11h",
	)

	a.NoError(g.playCard(0, deck.CardFromString("14h")))

	// seat 1 has no hearts and plays the bound trump, revealing it
	a.NoError(g.playCard(1, deck.CardFromString("7d")))
	a.True(g.trumpRevealed)
	a.Equal(deck.Diamonds, g.trumpSuit)

	events := g.DrainEvents()
	keys := make([]string, 0, len(events))
	for _, ev := range events {
		keys = append(keys, ev.Response.Key)
	}
	a.Contains(keys, "trumpRevealed")

	a.NoError(g.playCard(2, deck.CardFromString("8h")))
	a.NoError(g.playCard(3, deck.CardFromString("11h")))

	_, err := g.Tick()
	a.NoError(err)

	// the lone trump beats even the jack of hearts
	a.Equal(1, g.lastTrick.Winner)
	a.Equal(1+0+0+3, g.lastTrick.Points)
}

func TestGame_playCard_strengthOrderWithinSuit(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 0, "", 0,
		"14s",
		"10s",
		"9s",
		"13s",
	)

	a.NoError(g.playCard(0, deck.CardFromString("14s")))
	a.NoError(g.playCard(1, deck.CardFromString("10s")))
	a.NoError(g.playCard(2, deck.CardFromString("9s")))
	a.NoError(g.playCard(3, deck.CardFromString("13s")))

	_, err := g.Tick()
	a.NoError(err)

	// 9 outranks A, 10 and K in this game
	a.Equal(2, g.lastTrick.Winner)
	a.Equal(1+1+2+1, g.lastTrick.Points)
}

func TestGame_playCard_noActionsDuringTrickPause(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 0, "", 0,
		"7h,8c",
		"8h,9c",
		"9h,10c",
		"10h,11c",
	)

	a.NoError(g.playCard(0, deck.CardFromString("7h")))
	a.NoError(g.playCard(1, deck.CardFromString("8h")))
	a.NoError(g.playCard(2, deck.CardFromString("9h")))
	a.NoError(g.playCard(3, deck.CardFromString("10h")))

	// trick is face up, waiting on the dealer
	a.Equal(ErrNotYourTurn, g.playCard(3, deck.CardFromString("11c")))

	_, err := g.Tick()
	a.NoError(err)
	a.Nil(g.trickCards)
	a.Equal(deck.Suit(""), g.leadingSuit)

	// winner leads the next trick
	a.Equal(3, g.currentSeat)
	a.NoError(g.playCard(3, deck.CardFromString("11c")))
}

func TestGame_cardPlayedEvent(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 2, "", 0,
		"7h",
		"8h",
		"9h",
		"10h",
	)

	a.NoError(g.playCard(2, deck.CardFromString("9h")))

	events := g.DrainEvents()
	a.Equal(1, len(events))
	a.Equal("cardPlayed", events[0].Response.Key)
	data := events[0].Response.Data.(map[string]interface{})
	a.Equal(2, data["seatIndex"])
	a.Equal(deck.Hearts, data["leadingSuit"])
	trick := data["trickCards"].([]*TrickCard)
	a.Equal(1, len(trick))
	a.Equal(2, trick[0].SeatIndex)
}
