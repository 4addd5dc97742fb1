package jacknine

import (
	"fmt"
	"time"
)

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Millisecond * 250
}

// Tick runs scheduled dealer actions. Timed transitions re-enter the game
// through here, on the room's run loop, so they obey the same single-writer
// rule as client actions.
func (g *Game) Tick() (bool, error) {
	if g.done {
		return false, nil
	}

	if g.pendingDealerAction == nil {
		return false, nil
	}

	if time.Now().Before(g.pendingDealerAction.ExecuteAfter) {
		return false, nil
	}

	action := g.pendingDealerAction.Action
	g.pendingDealerAction = nil

	switch action {
	case dealerActionResolveTrick:
		g.resolveTrick()
	case dealerActionNextRound:
		if err := g.nextRound(); err != nil {
			return false, err
		}
	case dealerActionClearGame:
		g.done = true
	default:
		panic(fmt.Sprintf("unknown dealer action: %d", action))
	}

	return true, nil
}
