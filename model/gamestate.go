package model

import "fmt"

// TurnState is the snapshot the harness sends at the start of every turn.
type TurnState struct {
	Turn          int             `json:"turn"`
	Team          Team            `json:"team"`
	Board         *BoardData      `json:"board,omitempty"`
	ControlPoints []ControlPoint  `json:"controlPoints"`
	Pickups       []Pickup        `json:"pickups"`
	Enemies       []UnitState     `json:"enemies"`
	Friendlies    []FriendlyState `json:"friendlies"`
}

// BoardData is the static layout of the map. Everything not listed in Walls
// is open floor.
type BoardData struct {
	Cols  int        `json:"cols"`
	Rows  int        `json:"rows"`
	Walls []Position `json:"walls"`
}

// MaxBoardTiles bounds the grid a harness may ask us to allocate.
const MaxBoardTiles = 1 << 16

// Validate rejects layouts that cannot be turned into a Board.
func (d BoardData) Validate() error {
	if d.Cols <= 0 || d.Rows <= 0 {
		return fmt.Errorf("invalid board size %dx%d", d.Cols, d.Rows)
	}
	if d.Cols > MaxBoardTiles || d.Rows > MaxBoardTiles || d.Cols*d.Rows > MaxBoardTiles {
		return fmt.Errorf("board %dx%d exceeds %d tiles", d.Cols, d.Rows, MaxBoardTiles)
	}
	return nil
}

type ControlPoint struct {
	Name      string   `json:"name"`
	Position  Position `json:"position"`
	Owner     Team     `json:"owner"`
	Mainframe bool     `json:"mainframe"`
}

type Pickup struct {
	Position Position   `json:"position"`
	Type     PickupType `json:"type"`
}

type UnitState struct {
	Index    int        `json:"index"`
	Position Position   `json:"position"`
	Health   int        `json:"health"`
	Weapon   WeaponType `json:"weapon"`
	Team     Team       `json:"team"`
}

func (u UnitState) Alive() bool { return u.Health > 0 }

// FriendlyState adds what the harness reports only for our own units.
type FriendlyState struct {
	UnitState
	LastMoveResult      MoveResult `json:"lastMoveResult"`
	DamageTakenLastTurn int        `json:"damageTakenLastTurn"`
	ShotBy              []int      `json:"shotBy"` // enemy indices
	Shields             int        `json:"shields"`
	ShieldActive        bool       `json:"shieldActive"`
}

// CountMainframes returns how many mainframe control points team owns.
func CountMainframes(cps []ControlPoint, team Team) int {
	n := 0
	for _, cp := range cps {
		if cp.Mainframe && cp.Owner == team {
			n++
		}
	}
	return n
}

// CountControlPoints returns how many control points team owns.
func CountControlPoints(cps []ControlPoint, team Team) int {
	n := 0
	for _, cp := range cps {
		if cp.Owner == team {
			n++
		}
	}
	return n
}
