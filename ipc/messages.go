package ipc

import "github.com/nstehr/ctz-core/model"

// Message types understood by the harness.
const (
	TypeHello    = "hello"
	TypeAck      = "ack"
	TypeTurn     = "turn"
	TypeCommands = "commands"
	TypeError    = "error"
)

// HelloMessage opens a session. The board layout is optional here; a turn
// may carry it instead.
type HelloMessage struct {
	Player string           `json:"player"`
	Team   model.Team       `json:"team"`
	Board  *model.BoardData `json:"board,omitempty"`
}

type AckMessage struct {
	Status  string `json:"status"`
	Session string `json:"session"`
}

// ErrorMessage reports a message the engine could not handle.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
