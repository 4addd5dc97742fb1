package jacknine

import "errors"

// ErrNotYourTurn is returned when a seat acts out of turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrInvalidCard happens when a seat tries to play a card it doesn't hold
var ErrInvalidCard = errors.New("card is not in your hand")

// ErrMustFollowSuit happens when a seat holds the leading suit and plays another suit
var ErrMustFollowSuit = errors.New("you must follow the leading suit")

// ErrRevealNotAvailable happens when a trump reveal is requested and the seat has no offer
var ErrRevealNotAvailable = errors.New("trump reveal is not available")

// ErrWrongPhase is returned when an action does not belong to the current phase
var ErrWrongPhase = errors.New("action not allowed in the current phase")

// ErrGameOver is an error when an action is attempted on an ended game
var ErrGameOver = errors.New("game is over")

// ErrBadSeat is returned for a seat index outside [0,4)
var ErrBadSeat = errors.New("no such seat")
