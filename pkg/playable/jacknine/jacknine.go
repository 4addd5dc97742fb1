package jacknine

import (
	"fmt"
	"time"

	"jacknine-server/internal/rng"
	"jacknine-server/pkg/deck"
	"jacknine-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Phase is the authoritative state of the game
type Phase string

// game phases. The lobby phase lives in the room layer; a Game only exists
// once four ready seats started it.
const (
	PhaseTrumpSelection Phase = "trump_selection"
	PhasePlay           Phase = "play"
	PhaseRoundEnd       Phase = "round_end"
	PhaseGameEnd        Phase = "game_end"
)

// numSeats is the fixed table size
const numSeats = 4

type playedCard struct {
	card *deck.Card
	seat *Seat
}

// boundTrump is the hidden trump binding. The suit stays private to the
// setter until the card is played or privately revealed.
type boundTrump struct {
	seat int
	card *deck.Card
}

var _ playable.Playable = (*Game)(nil)
var _ playable.Tickable = (*Game)(nil)

// Game is a game of jack-nine
type Game struct {
	options Options
	deck    *deck.Deck
	seats   [numSeats]*Seat

	phase       Phase
	currentSeat int
	startSeat   int
	passCount   int

	roundNo      int
	tricksPlayed int
	trickCards   []*playedCard
	leadingSuit  deck.Suit

	trumpCard       *boundTrump
	trumpSuit       deck.Suit
	trumpRevealed   bool
	revealOfferSeat int

	scores    [numSeats]int
	lastTrick *trickResult

	details *playable.GameOverDetails

	pendingDealerAction *pendingDealerAction

	events  []*playable.Event
	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	// done will be set once the game over state has been acknowledged
	done bool
}

// NewGame returns a new jack-nine game for the four named seats
// Seats are in table order; seat 0 is the room creator.
func NewGame(logger logrus.FieldLogger, names []string, opts Options) (*Game, error) {
	if len(names) != numSeats {
		return nil, fmt.Errorf("expected %d seats, got %d", numSeats, len(names))
	}

	if opts.RoundsPerGame < 1 {
		opts.RoundsPerGame = 1
	}

	startSeat := opts.StartSeat
	if startSeat < 0 {
		startSeat = rng.Crypto{}.Intn(numSeats)
	}

	if startSeat >= numSeats {
		return nil, ErrBadSeat
	}

	g := &Game{
		options:         opts,
		deck:            deck.New(),
		phase:           PhaseTrumpSelection,
		currentSeat:     startSeat,
		startSeat:       startSeat,
		roundNo:         1,
		revealOfferSeat: -1,
		logger:          logger,
		logChan:         make(chan []*playable.LogMessage, 256),
	}

	for i, name := range names {
		g.seats[i] = NewSeat(i, name)
	}

	g.sendLogMessages(playable.SimpleLogMessage(-1, "New game of Jack-Nine started"))

	return g, nil
}

// Deal shuffles and deals eight cards to each seat
func (g *Game) Deal() error {
	g.deck.Shuffle(g.options.Seed)

	hands, err := g.deck.Deal()
	if err != nil {
		return err
	}

	for i, seat := range g.seats {
		for _, card := range hands[i] {
			seat.AddCard(card)
		}
	}

	g.logger.WithField("seed", g.deck.GetSeed()).Debug("dealt hands")

	return nil
}

// Name returns "jacknine"
func (g *Game) Name() string {
	return "jacknine"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action for the seat
func (g *Game) Action(seat int, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if seat < 0 || seat >= numSeats {
		return nil, false, ErrBadSeat
	}

	if g.phase == PhaseGameEnd {
		return nil, false, ErrGameOver
	}

	log := g.logger.WithField("seat", seat)

	switch message.Action {
	case "setTrumpCard":
		if len(message.Cards) != 1 {
			return nil, false, fmt.Errorf("expected to get 1 card, got %d", len(message.Cards))
		}

		log.WithField("card", message.Cards[0]).Debug("set trump card")
		if err := g.setTrumpCard(seat, message.Cards[0]); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "passTrump":
		log.Debug("pass trump")
		if err := g.passTrump(seat); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "playCard":
		if len(message.Cards) != 1 {
			return nil, false, fmt.Errorf("expected to get 1 card, got %d", len(message.Cards))
		}

		log.WithField("card", message.Cards[0]).Debug("play card")
		if err := g.playCard(seat, message.Cards[0]); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "askRevealTrump":
		log.Debug("ask reveal trump")
		suit, err := g.askRevealTrump(seat)
		if err != nil {
			return nil, false, err
		}

		return &playable.Response{
			Key:     "trumpSuitPrivate",
			Context: message.Context,
			Data:    map[string]interface{}{"suit": suit},
		}, false, nil
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}
}

// GetEndOfGameDetails returns details at the end of the game
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.done {
		return nil, false
	}

	return g.details, true
}

// MarkConnected flags a seat's connection state. Turn obligations are
// unaffected; an absent seat simply stalls the room.
func (g *Game) MarkConnected(seat int, connected bool) error {
	if seat < 0 || seat >= numSeats {
		return ErrBadSeat
	}

	g.seats[seat].Connected = connected
	if !connected {
		g.queueEvent(-1, &playable.Response{
			Key:  "seatDisconnected",
			Data: map[string]interface{}{"seatIndex": seat},
		})
		g.sendLogMessages(playable.SimpleLogMessage(seat, "{} disconnected"))
	}

	return nil
}

// DrainEvents returns the queued outbound events and clears the queue
func (g *Game) DrainEvents() []*playable.Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) queueEvent(toSeat int, response *playable.Response) {
	g.events = append(g.events, &playable.Event{
		ToSeat:   toSeat,
		Response: response,
	})
}

// advanceTurn moves play to the next seat and recalculates the private
// reveal offer for the new seat
func (g *Game) advanceTurn() {
	g.currentSeat = (g.currentSeat + 1) % numSeats
	g.offerReveal()
}

func (g *Game) isSeatsTurn(seat int) bool {
	return g.currentSeat == seat && g.pendingDealerAction == nil
}

func (g *Game) finalWinner() int {
	winner := 0
	for i := 1; i < numSeats; i++ {
		if g.scores[i] > g.scores[winner] {
			winner = i
		}
	}

	// ties go to the lowest seat index
	return winner
}

func (g *Game) endGame() {
	g.phase = PhaseGameEnd
	winner := g.finalWinner()

	scores := make([]int, numSeats)
	copy(scores, g.scores[:])

	g.details = &playable.GameOverDetails{
		WinnerSeat: winner,
		Scores:     scores,
		Log:        g.getGameState(),
	}

	g.queueEvent(-1, &playable.Response{
		Key: "gameOver",
		Data: map[string]interface{}{
			"winnerSeat": winner,
			"scores":     scores,
		},
	})

	g.sendLogMessages(playable.SimpleLogMessage(winner, "{} wins the game with %d points", g.scores[winner]))

	g.pendingDealerAction = &pendingDealerAction{
		Action:       dealerActionClearGame,
		ExecuteAfter: time.Now().Add(time.Second),
	}
}

func newCardLogMessage(seat int, card *deck.Card, format string, a ...interface{}) *playable.LogMessage {
	msg := playable.SimpleLogMessage(seat, format, a...)
	if card != nil {
		msg.Cards = []*deck.Card{card}
	}

	return msg
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan != nil {
		select {
		case g.logChan <- msg:
		default:
		}
	}
}
