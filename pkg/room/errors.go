package room

import "errors"

// ErrRoomNotFound is returned when the room code is unknown
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomFull is returned when all four seats are occupied
var ErrRoomFull = errors.New("room is full")

// ErrGameAlreadyStarted is returned when joining a room that left the lobby
var ErrGameAlreadyStarted = errors.New("game already started")

// ErrNotEnoughPlayers is returned when a game is started with open seats
var ErrNotEnoughPlayers = errors.New("need four players to start")

// ErrPlayersNotReady is returned when a game is started before everyone is ready
var ErrPlayersNotReady = errors.New("not all players are ready")

// ErrNotRoomCreator is returned when someone besides seat 0 tries to start the game
var ErrNotRoomCreator = errors.New("only the room creator can start the game")

// ErrNotSeated is returned when a room action arrives from a connection without a seat
var ErrNotSeated = errors.New("you are not seated in a room")

// ErrAlreadySeated is returned when a seated client tries to create or join another room
var ErrAlreadySeated = errors.New("you are already seated in a room")

// ErrCodeSpaceExhausted is returned when a unique room code could not be generated
var ErrCodeSpaceExhausted = errors.New("could not generate a unique room code")
