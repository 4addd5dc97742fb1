package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_Strength(t *testing.T) {
	order := CardsFromString("7s,8s,14s,10s,13s,12s,9s,11s")
	for i := 1; i < len(order); i++ {
		assert.True(t, order[i].Beats(order[i-1]), "%s should beat %s", order[i], order[i-1])
		assert.False(t, order[i-1].Beats(order[i]))
	}
}

func TestCard_Points(t *testing.T) {
	assert.Equal(t, 3, CardFromString("11c").Points())
	assert.Equal(t, 2, CardFromString("9c").Points())
	assert.Equal(t, 1, CardFromString("14c").Points())
	assert.Equal(t, 1, CardFromString("10c").Points())
	assert.Equal(t, 1, CardFromString("13c").Points())
	assert.Equal(t, 1, CardFromString("12c").Points())
	assert.Equal(t, 0, CardFromString("8c").Points())
	assert.Equal(t, 0, CardFromString("7c").Points())

	total := 0
	for _, card := range New().Cards {
		total += card.Points()
	}
	assert.Equal(t, 40, total)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "7♣", CardFromString("7c").String())
	assert.Equal(t, "10♢", CardFromString("10d").String())
	assert.Equal(t, "J♡", CardFromString("11h").String())
	assert.Equal(t, "Q♠", CardFromString("12s").String())
	assert.Equal(t, "K♣", CardFromString("13c").String())
	assert.Equal(t, "A♡", CardFromString("14h").String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("9h").Equal(&Card{Rank: 9, Suit: Hearts}))
	a.False(CardFromString("9h").Equal(CardFromString("9s")))
	a.False(CardFromString("9h").Equal(CardFromString("10h")))
}

func TestCardFromString(t *testing.T) {
	assert.Nil(t, CardFromString(""))
	assert.Equal(t, &Card{Rank: 14, Suit: Spades}, CardFromString("14s"))
	assert.PanicsWithValue(t, "could not parse card: 2c", func() {
		CardFromString("2c")
	})
	assert.PanicsWithValue(t, "could not parse card: 15h", func() {
		CardFromString("15h")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("7c,11h,14s")
	assert.Equal(t, "7c,11h,14s", CardsToString(cards))
	assert.Equal(t, "", CardToString(nil))
}
