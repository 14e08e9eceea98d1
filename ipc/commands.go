package ipc

import "github.com/nstehr/ctz-core/model"

// Command actions, one per unit per turn.
const (
	CommandMove    = "move"
	CommandShoot   = "shoot"
	CommandShield  = "shield"
	CommandPickup  = "pickup"
	CommandStandby = "standby"
)

type UnitCommand struct {
	Unit      int             `json:"unit"`
	Action    string          `json:"action"`
	Direction model.Direction `json:"direction,omitempty"`
	Target    *int            `json:"target,omitempty"` // enemy index for shots
}

// CommandsMessage answers a turn message.
type CommandsMessage struct {
	Turn     int           `json:"turn"`
	Commands []UnitCommand `json:"commands"`
}
