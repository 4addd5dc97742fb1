package jacknine

import "time"

// dealerAction is an action that the "dealer" would take, such as resolving
// a finished trick after a pause
type dealerAction int

const (
	dealerActionResolveTrick dealerAction = iota
	dealerActionNextRound
	dealerActionClearGame
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}
