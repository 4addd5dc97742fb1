package room

import (
	"sync"
	"time"

	"jacknine-server/internal/util"
	"jacknine-server/pkg/playable"
	"jacknine-server/pkg/playable/jacknine"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateSeatsEvent state = iota
	stateGameEvent
	stateGameEnded
)

// numSeats is the fixed table size
const numSeats = 4

// tableSeat is a seat as the room sees it: who sits there and whether
// they're ready to play
type tableSeat struct {
	client *Client
	name   string
	ready  bool
}

// Dealer is responsible for controlling a single room
// All room state is owned by the dealer's run loop; anything that mutates
// it is funneled through execInRunLoop.
type Dealer struct {
	pitBoss *PitBoss
	code    string
	opts    jacknine.Options
	clients map[*Client]bool
	lock    sync.RWMutex
	seats   []*tableSeat
	game    playable.Playable

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, code string, opts jacknine.Options) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		code:          code,
		opts:          opts,
		clients:       make(map[*Client]bool),
		seats:         make([]*tableSeat, 0, numSeats),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Code returns the room code
func (d *Dealer) Code() string {
	return d.code
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithField("room", d.code)
	log.Debug("creating dealer run loop")

	var ticker *time.Ticker
	var tickC <-chan time.Time
	var logC <-chan []*playable.LogMessage

	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		if game := d.game; game != nil && ticker == nil {
			if tickable, ok := game.(playable.Tickable); ok {
				ticker = time.NewTicker(tickable.Interval())
				tickC = ticker.C
			}

			logC = game.LogChan()
		}

		select {
		case s := <-d.stateChanged:
			switch s {
			case stateSeatsEvent:
				d.sendSeatsData()
			case stateGameEvent:
				d.sendGameData()
			case stateGameEnded:
				d.sendGameEnded()
				d.sendSeatsData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-tickC:
			if d.tickGame() {
				ticker.Stop()
				ticker = nil
				tickC = nil
				logC = nil
			}
		case msgs := <-logC:
			d.broadcast(&playable.Response{
				Key:  "logs",
				Data: msgs,
			})
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// Join seats the client in the room
// This method must return quickly; the real work happens on the run loop.
func (d *Dealer) Join(client *Client, name, ctx string) {
	d.execInRunLoop <- func() {
		d.join(client, name, ctx)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) join(client *Client, name, ctx string) {
	if d.game != nil {
		client.send(newErrorResponse(ctx, ErrGameAlreadyStarted))
		return
	}

	if len(d.seats) >= numSeats {
		client.send(newErrorResponse(ctx, ErrRoomFull))
		return
	}

	if name == "" {
		name = util.GetRandomName()
	}

	seatIndex := len(d.seats)
	d.seats = append(d.seats, &tableSeat{
		client: client,
		name:   name,
	})

	d.lock.Lock()
	d.clients[client] = true
	client.dealer = d
	client.roomCode = d.code
	client.seat = seatIndex
	d.lock.Unlock()

	key := "joined"
	if seatIndex == 0 {
		key = "gameCreated"
	}

	client.send(&playable.Response{
		Key:     key,
		Context: ctx,
		Data: map[string]interface{}{
			"roomCode":  d.code,
			"seatIndex": seatIndex,
			"seats":     d.seatInfo(),
		},
	})

	logrus.WithFields(logrus.Fields{
		"room": d.code,
		"seat": seatIndex,
		"name": name,
	}).Info("client seated")

	d.stateChanged <- stateSeatsEvent
}

// RemoveClient removes a client from the room
// Returns true if that was the room's last client; the caller is then
// expected to end the dealer's shift.
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients == 0 {
		return true
	}

	d.execInRunLoop <- func() {
		d.clientLeft(client)
	}

	return false
}

// NOTE: must only be called from the run loop
func (d *Dealer) clientLeft(client *Client) {
	seat := d.seatOf(client)
	if seat < 0 {
		return
	}

	if d.game == nil {
		// in the lobby the seat is freed outright and later seats shift down
		d.seats = append(d.seats[:seat], d.seats[seat+1:]...)
		for i, s := range d.seats {
			if s.client != nil {
				d.lock.Lock()
				s.client.seat = i
				d.lock.Unlock()
			}
		}

		d.stateChanged <- stateSeatsEvent
		return
	}

	// mid-game the seat keeps its turn obligations; it's only flagged
	d.seats[seat].client = nil
	if err := d.game.MarkConnected(seat, false); err != nil {
		logrus.WithError(err).WithField("room", d.code).Error("could not mark seat disconnected")
		return
	}

	d.dispatchEvents()
	d.stateChanged <- stateGameEvent
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "setReady":
		d.execInRunLoop <- func() {
			seat := d.seatOf(c)
			if seat < 0 {
				c.send(newErrorResponse(msg.Context, ErrNotSeated))
				return
			}

			// idempotent
			d.seats[seat].ready = true
			c.send(playable.OK(msg.Context))
			d.stateChanged <- stateSeatsEvent
		}
	case "updateName":
		d.execInRunLoop <- func() {
			seat := d.seatOf(c)
			if seat < 0 {
				c.send(newErrorResponse(msg.Context, ErrNotSeated))
				return
			}

			name, ok := msg.AdditionalData.GetString("name")
			if !ok || name == "" {
				c.send(newErrorResponse(msg.Context, ErrNotSeated))
				return
			}

			d.seats[seat].name = name
			c.send(playable.OK(msg.Context))
			d.stateChanged <- stateSeatsEvent
		}
	case "startGame":
		d.execInRunLoop <- func() {
			if err := d.startGame(c); err != nil {
				c.send(newErrorResponse(msg.Context, err))
				return
			}

			c.send(playable.OK(msg.Context))
		}
	default:
		d.execInRunLoop <- func() {
			game := d.game
			if game == nil {
				logrus.WithField("msg", msg).Warn("unknown message")
				return
			}

			seat := d.seatOf(c)
			action, updateState, err := game.Action(seat, msg)
			if err != nil {
				logrus.WithError(err).WithField("client", c.String()).Debug("could not perform action")
				c.send(newErrorResponse(msg.Context, err))
				return
			}

			if action != nil {
				c.send(action)
			}

			d.dispatchEvents()

			if updateState {
				d.stateChanged <- stateGameEvent
			}
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) startGame(c *Client) error {
	if d.game != nil {
		return ErrGameAlreadyStarted
	}

	if d.seatOf(c) != 0 {
		return ErrNotRoomCreator
	}

	if len(d.seats) != numSeats {
		return ErrNotEnoughPlayers
	}

	names := make([]string, numSeats)
	for i, seat := range d.seats {
		if !seat.ready {
			return ErrPlayersNotReady
		}

		names[i] = seat.name
	}

	game, err := jacknine.NewGame(logrus.WithField("room", d.code), names, d.opts)
	if err != nil {
		return err
	}

	if err := game.Deal(); err != nil {
		return err
	}

	d.game = game

	logrus.WithField("room", d.code).Info("game started")

	d.broadcast(&playable.Response{
		Key: "gameStarted",
		Data: map[string]interface{}{
			"roomCode": d.code,
		},
	})

	d.dispatchEvents()
	d.stateChanged <- stateGameEvent

	return nil
}

// tickGame drives the game's scheduled actions. Returns true once the
// game is over and has been cleared.
// NOTE: must only be called from the run loop
func (d *Dealer) tickGame() (gameCleared bool) {
	game := d.game
	if game == nil {
		return true
	}

	tickable, ok := game.(playable.Tickable)
	if !ok {
		return false
	}

	update, err := tickable.Tick()
	if err != nil {
		logrus.WithError(err).WithField("room", d.code).Error("tick failed")
	}

	d.dispatchEvents()

	if update {
		d.stateChanged <- stateGameEvent
	}

	if details, isOver := game.GetEndOfGameDetails(); isOver {
		logrus.WithFields(logrus.Fields{
			"room":   d.code,
			"winner": details.WinnerSeat,
			"scores": details.Scores,
		}).Info("game over")

		d.game = nil
		for _, seat := range d.seats {
			seat.ready = false
		}

		d.stateChanged <- stateGameEnded

		return true
	}

	return false
}

// NOTE: must only be called from the run loop
func (d *Dealer) dispatchEvents() {
	if d.game == nil {
		return
	}

	for _, ev := range d.game.DrainEvents() {
		if ev.ToSeat < 0 {
			d.broadcast(ev.Response)
			continue
		}

		if client := d.clientAtSeat(ev.ToSeat); client != nil {
			client.send(ev.Response)
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	game := d.game
	if game == nil {
		return
	}

	for i, seat := range d.seats {
		if seat.client == nil {
			continue
		}

		data, err := game.GetSeatState(i)
		if err != nil {
			logrus.WithError(err).Error("could not get seat state")
			continue
		}

		seat.client.send(data)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded() {
	d.broadcast(&playable.Response{
		Key: "gameEnded",
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendSeatsData() {
	d.broadcast(&playable.Response{
		Key:  "seatsUpdated",
		Data: d.seatInfo(),
	})
}

func (d *Dealer) broadcast(msg *playable.Response) {
	for _, client := range d.Clients() {
		client.send(msg)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) seatOf(c *Client) int {
	for i, seat := range d.seats {
		if seat.client == c {
			return i
		}
	}

	return -1
}

// NOTE: must only be called from the run loop
func (d *Dealer) clientAtSeat(seat int) *Client {
	if seat < 0 || seat >= len(d.seats) {
		return nil
	}

	return d.seats[seat].client
}

// NOTE: must only be called from the run loop
func (d *Dealer) seatInfo() []SeatInfo {
	info := make([]SeatInfo, len(d.seats))
	for i, seat := range d.seats {
		info[i] = SeatInfo{
			Index:     i,
			Name:      seat.name,
			Ready:     seat.ready,
			Connected: seat.client != nil,
		}
	}

	return info
}
