package jacknine

import (
	"testing"

	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"

	"github.com/stretchr/testify/assert"
)

func TestGame_revealOffer(t *testing.T) {
	a := assert.New(t)

	// seat 0 bound 14♦; seat 1 holds no hearts
	g := startPlay(t, 0, "14d", 0,
		"9h,14d",
		"13s,7c",
		"8h,8c",
		"10h,9c",
	)

	a.NoError(g.playCard(0, deck.CardFromString("9h")))

	// seat 1 cannot follow hearts and is offered the reveal
	a.Equal(1, g.revealOfferSeat)

	events := g.DrainEvents()
	var offer *playable.Event
	for _, ev := range events {
		if ev.Response.Key == "revealAvailable" {
			offer = ev
		}
	}
	a.NotNil(offer)
	a.Equal(1, offer.ToSeat)

	state, err := g.GetSeatState(1)
	a.NoError(err)
	a.True(state.Data.(*Response).CanRevealTrump)

	state, err = g.GetSeatState(2)
	a.NoError(err)
	a.False(state.Data.(*Response).CanRevealTrump)

	// other seats cannot ask
	_, err = g.askRevealTrump(2)
	a.Equal(ErrRevealNotAvailable, err)

	// the offered seat learns the suit privately, without a public reveal
	suit, err := g.askRevealTrump(1)
	a.NoError(err)
	a.Equal(deck.Diamonds, suit)
	a.False(g.trumpRevealed)

	// the offer is single-turn: once seat 1 plays, it's gone
	a.NoError(g.playCard(1, deck.CardFromString("13s")))
	_, err = g.askRevealTrump(1)
	a.Equal(ErrRevealNotAvailable, err)

	// seat 2 holds hearts, so no offer was made
	a.Equal(-1, g.revealOfferSeat)
}

func TestGame_revealOffer_noTrump(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 0, "", 0,
		"9h",
		"13s",
		"8h",
		"10h",
	)

	a.NoError(g.playCard(0, deck.CardFromString("9h")))

	// no trump bound: nothing to reveal
	a.Equal(-1, g.revealOfferSeat)
	_, err := g.askRevealTrump(1)
	a.Equal(ErrRevealNotAvailable, err)
}

func TestGame_revealOffer_alreadyRevealed(t *testing.T) {
	a := assert.New(t)

	// the bound trump is 13♠ and seat 1 plays it, revealing publicly
	g := startPlay(t, 0, "13s", 1,
		"9h,7c",
		"13s,8c",
		"8h,9c",
		"10h,14c",
	)

	a.NoError(g.playCard(0, deck.CardFromString("9h")))
	a.Equal(1, g.revealOfferSeat)

	a.NoError(g.playCard(1, deck.CardFromString("13s")))
	a.True(g.trumpRevealed)

	// seat 2 follows hearts; no offer either way once revealed
	a.Equal(-1, g.revealOfferSeat)
	_, err := g.askRevealTrump(2)
	a.Equal(ErrRevealNotAvailable, err)
}

func TestGame_askRevealTrump_action(t *testing.T) {
	a := assert.New(t)

	g := startPlay(t, 0, "7d", 0,
		"9h,7d",
		"13s,7c",
		"8h,8c",
		"10h,9c",
	)

	a.NoError(g.playCard(0, deck.CardFromString("9h")))
	g.DrainEvents()

	resp, update, err := g.Action(1, &playable.PayloadIn{
		Action:  "askRevealTrump",
		Context: "ctx-9",
	})
	a.NoError(err)
	a.False(update, "a private reveal must not trigger a public state update")
	a.Equal("trumpSuitPrivate", resp.Key)
	a.Equal("ctx-9", resp.Context)
	a.Equal(deck.Diamonds, resp.Data.(map[string]interface{})["suit"])

	_, _, err = g.Action(3, &playable.PayloadIn{Action: "askRevealTrump"})
	a.Equal(ErrRevealNotAvailable, err)
}
