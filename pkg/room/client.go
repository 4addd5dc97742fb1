package room

import (
	"fmt"

	"jacknine-server/pkg/playable"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID uniquely identifies the connection
	ID string

	// Send is a buffered channel for outbound messages
	Send chan *playable.Response

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	pitBoss *PitBoss
	dealer  *Dealer

	roomCode string
	seat     int
}

// NewClient returns a new client object
// A fresh client has no seat until it creates or joins a room.
func NewClient(conn *websocket.Conn, pitBoss *PitBoss) *Client {
	return &Client{
		Conn:    conn,
		ID:      uuid.New().String(),
		Send:    make(chan *playable.Response, 256),
		Close:   make(chan string),
		pitBoss: pitBoss,
		seat:    -1,
	}
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.roomCode == "" {
		return c.ID
	}

	return fmt.Sprintf("%s:%s/%d", c.ID, c.roomCode, c.seat)
}

// RoomCode returns the code of the room the client sits in, if any
func (c *Client) RoomCode() string {
	return c.roomCode
}

// Seat returns the client's seat index, or -1 if not seated
func (c *Client) Seat() int {
	return c.seat
}

// send delivers a message without ever blocking the caller.
// A client whose buffer is full loses the message; the next state sync
// catches it up.
func (c *Client) send(msg *playable.Response) {
	select {
	case c.Send <- msg:
	default:
		logrus.WithField("client", c.String()).Warn("send buffer full, dropping message")
	}
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	switch msg.Action {
	case "createGame", "joinGame":
		if c.dealer != nil {
			c.send(newErrorResponse(msg.Context, ErrAlreadySeated))
			return
		}

		name, _ := msg.AdditionalData.GetString("name")
		if msg.Action == "createGame" {
			c.pitBoss.CreateRoom(c, name, msg.Context)
			return
		}

		code, _ := msg.AdditionalData.GetString("roomCode")
		c.pitBoss.JoinRoom(c, code, name, msg.Context)
		return
	}

	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but client is not in a room")
		c.send(newErrorResponse(msg.Context, ErrNotSeated))
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
