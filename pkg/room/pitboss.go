package room

import (
	"strings"

	"jacknine-server/pkg/playable/jacknine"
	"jacknine-server/pkg/token"

	"github.com/sirupsen/logrus"
)

// maxCodeAttempts is how many times we'll try for an unclaimed room code
const maxCodeAttempts = 20

type createRequest struct {
	client *Client
	name   string
	ctx    string
}

type joinRequest struct {
	client *Client
	code   string
	name   string
	ctx    string
}

// PitBoss is responsible for dispatching players to rooms
type PitBoss struct {
	dealers    map[string]*Dealer
	opts       jacknine.Options
	codeLength int
	create     chan createRequest
	join       chan joinRequest
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(codeLength int, opts jacknine.Options) *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		opts:       opts,
		codeLength: codeLength,
		create:     make(chan createRequest, 256),
		join:       make(chan joinRequest, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case req := <-p.create:
			code, err := p.newRoomCode()
			if err != nil {
				req.client.send(newErrorResponse(req.ctx, err))
				continue
			}

			dealer := NewDealer(p, code, p.opts)
			dealer.StartShift()
			p.dealers[code] = dealer

			logrus.WithField("room", code).Info("room created")
			dealer.Join(req.client, req.name, req.ctx)
		case req := <-p.join:
			dealer, found := p.dealers[strings.ToUpper(req.code)]
			if !found {
				req.client.send(newErrorResponse(req.ctx, ErrRoomNotFound))
				continue
			}

			dealer.Join(req.client, req.name, req.ctx)
		case client := <-p.disconnect:
			logrus.WithField("player", client.String()).Debug("client disconnected")
			code := client.RoomCode()
			if code == "" {
				continue
			}

			dealer, found := p.dealers[code]
			if !found {
				logrus.WithField("room", code).WithField("type", "exception").Error("room not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(p.dealers, code)
				logrus.WithField("room", code).Info("room closed")
			}
		}
	}
}

// NOTE: must only be called from the run loop
func (p *PitBoss) newRoomCode() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := token.Generate(p.codeLength)
		if err != nil {
			return "", err
		}

		if _, taken := p.dealers[code]; !taken {
			return code, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

// CreateRoom creates a new room with the client in the first seat
func (p *PitBoss) CreateRoom(client *Client, name, ctx string) {
	p.create <- createRequest{client: client, name: name, ctx: ctx}
}

// JoinRoom seats the client in an existing room
func (p *PitBoss) JoinRoom(client *Client, code, name, ctx string) {
	p.join <- joinRequest{client: client, code: code, name: name, ctx: ctx}
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
