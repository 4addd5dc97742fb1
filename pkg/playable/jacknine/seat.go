package jacknine

import (
	"jacknine-server/pkg/deck"
)

// Seat is one of the four fixed turn-order positions at the table
type Seat struct {
	Index     int
	Name      string
	Connected bool
	hand      []*deck.Card
}

// NewSeat returns a new seat
func NewSeat(index int, name string) *Seat {
	return &Seat{
		Index:     index,
		Name:      name,
		Connected: true,
		hand:      make([]*deck.Card, 0, deck.HandSize),
	}
}

// AddCard add a card to the seat's hand
func (s *Seat) AddCard(card *deck.Card) {
	s.hand = append(s.hand, card)
}

// Hand returns a shallow clone of the seat's hand
func (s *Seat) Hand() []*deck.Card {
	return append([]*deck.Card{}, s.hand...)
}

// HasCard returns true if the seat holds the card
func (s *Seat) HasCard(card *deck.Card) bool {
	for _, c := range s.hand {
		if card.Equal(c) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the seat holds at least one card of the suit
func (s *Seat) HasSuit(suit deck.Suit) bool {
	for _, c := range s.hand {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// removeCard takes the card out of the seat's hand
func (s *Seat) removeCard(card *deck.Card) error {
	hand := make([]*deck.Card, 0, len(s.hand))
	found := false
	for _, c := range s.hand {
		if c.Equal(card) {
			found = true
		} else {
			hand = append(hand, c)
		}
	}

	if !found {
		return ErrInvalidCard
	}

	s.hand = hand

	return nil
}

// newRound clears the seat's hand ahead of a fresh deal
func (s *Seat) newRound() {
	s.hand = make([]*deck.Card, 0, deck.HandSize)
}
