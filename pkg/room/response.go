package room

import (
	"jacknine-server/pkg/playable"
)

// SeatInfo is the lobby view of a single seat
type SeatInfo struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Ready     bool   `json:"ready"`
	Connected bool   `json:"connected"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
