package jacknine

import (
	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"
)

// GameState is the overall game state
// This is safe for all seats to see: the trump suit only appears once it
// has been publicly revealed.
type GameState struct {
	Phase           Phase              `json:"phase"`
	CurrentSeat     int                `json:"currentSeat"`
	StartSeat       int                `json:"startSeat"`
	Round           int                `json:"round"`
	RoundsPerGame   int                `json:"roundsPerGame"`
	TricksPlayed    int                `json:"tricksPlayed"`
	TrickCards      []*TrickCard       `json:"trickCards"`
	LeadingSuit     deck.Suit          `json:"leadingSuit"`
	TrumpSet        bool               `json:"trumpSet"`
	TrumpSetterSeat int                `json:"trumpSetterSeat"`
	TrumpRevealed   bool               `json:"trumpRevealed"`
	TrumpSuit       deck.Suit          `json:"trumpSuit"`
	Scores          []int              `json:"scores"`
	LastTrick       *trickResult       `json:"lastTrick"`
	Seats           []*GameStateSeat   `json:"seats"`
}

// GameStateSeat is the public state of an individual seat
type GameStateSeat struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	CardsInHand int    `json:"cardsInHand"`
	Connected   bool   `json:"connected"`
}

// TrickCard is a single play within the current trick
type TrickCard struct {
	SeatIndex int        `json:"seatIndex"`
	Card      *deck.Card `json:"card"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	// Data below is seat specific, and must only be shown to the intended seat
	Hand           []*deck.Card `json:"hand"`
	IsTrumpSetter  bool         `json:"isTrumpSetter"`
	TrumpCard      *deck.Card   `json:"trumpCard"`
	CanRevealTrump bool         `json:"canRevealTrump"`
}

func (g *Game) trickCardsState() []*TrickCard {
	cards := make([]*TrickCard, len(g.trickCards))
	for i, pc := range g.trickCards {
		cards[i] = &TrickCard{
			SeatIndex: pc.seat.Index,
			Card:      pc.card,
		}
	}

	return cards
}

func (g *Game) getGameState() *GameState {
	seats := make([]*GameStateSeat, numSeats)
	for i, seat := range g.seats {
		seats[i] = &GameStateSeat{
			Index:       i,
			Name:        seat.Name,
			CardsInHand: len(seat.hand),
			Connected:   seat.Connected,
		}
	}

	scores := make([]int, numSeats)
	copy(scores, g.scores[:])

	trumpSetter := -1
	if g.trumpCard != nil {
		trumpSetter = g.trumpCard.seat
	}

	var trumpSuit deck.Suit
	if g.trumpRevealed {
		trumpSuit = g.trumpSuit
	}

	return &GameState{
		Phase:           g.phase,
		CurrentSeat:     g.currentSeat,
		StartSeat:       g.startSeat,
		Round:           g.roundNo,
		RoundsPerGame:   g.options.RoundsPerGame,
		TricksPlayed:    g.tricksPlayed,
		TrickCards:      g.trickCardsState(),
		LeadingSuit:     g.leadingSuit,
		TrumpSet:        g.trumpCard != nil,
		TrumpSetterSeat: trumpSetter,
		TrumpRevealed:   g.trumpRevealed,
		TrumpSuit:       trumpSuit,
		Scores:          scores,
		LastTrick:       g.lastTrick,
		Seats:           seats,
	}
}

// GetSeatState returns the state for the given seat
func (g *Game) GetSeatState(seat int) (*playable.Response, error) {
	if seat < 0 || seat >= numSeats {
		return nil, ErrBadSeat
	}

	s := g.seats[seat]
	isSetter := g.trumpCard != nil && g.trumpCard.seat == seat

	var trumpCard *deck.Card
	if isSetter {
		trumpCard = g.trumpCard.card
	}

	return &playable.Response{
		Key:   "game",
		Value: "jacknine",
		Data: &Response{
			GameState:      g.getGameState(),
			Hand:           s.Hand(),
			IsTrumpSetter:  isSetter,
			TrumpCard:      trumpCard,
			CanRevealTrump: g.revealOfferSeat == seat,
		},
	}, nil
}
