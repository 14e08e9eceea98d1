package model

import (
	"fmt"
	"slices"
)

// TeamSize is the number of units fielded by each side. Unit indices are
// stable across turns and run from 0 to TeamSize-1.
const TeamSize = 4

// Position is a grid coordinate. X grows east, Y grows south.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Team identifies a side. TeamNone marks neutral control points.
type Team string

const (
	TeamNone  Team = "none"
	TeamAmber Team = "amber"
	TeamBlue  Team = "blue"
)

// Opposite returns the other side; TeamNone has no opposite.
func (t Team) Opposite() Team {
	switch t {
	case TeamAmber:
		return TeamBlue
	case TeamBlue:
		return TeamAmber
	default:
		return TeamNone
	}
}

// Direction is a single-step grid move. Nowhere is the zero value and means
// "no direction available".
type Direction string

const (
	Nowhere   Direction = ""
	North     Direction = "north"
	NorthEast Direction = "north_east"
	East      Direction = "east"
	SouthEast Direction = "south_east"
	South     Direction = "south"
	SouthWest Direction = "south_west"
	West      Direction = "west"
	NorthWest Direction = "north_west"
)

// directions is the fixed evaluation order. Scoring ties between directions
// resolve to the earliest entry, so this order is part of the engine's
// deterministic behaviour.
var directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionDeltas = map[Direction][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Directions returns every movable direction in evaluation order.
func Directions() []Direction {
	return slices.Clone(directions)
}

func (d Direction) Valid() bool {
	_, ok := directionDeltas[d]
	return ok
}

// MovePoint returns the tile reached by stepping once in d. Nowhere (or an
// unknown direction) leaves the position unchanged.
func (d Direction) MovePoint(p Position) Position {
	delta, ok := directionDeltas[d]
	if !ok {
		return p
	}
	return p.Add(delta[0], delta[1])
}

// WeaponType names a weapon a unit can carry.
type WeaponType string

const (
	LaserRifle  WeaponType = "laser_rifle"
	MiniBlaster WeaponType = "mini_blaster"
	ScatterGun  WeaponType = "scatter_gun"
	RailGun     WeaponType = "rail_gun"
)

// Weapon is a weapon type with its resolved stats.
type Weapon struct {
	Type   WeaponType
	Damage int
	Range  int
}

var weaponStats = map[WeaponType]Weapon{
	LaserRifle:  {Type: LaserRifle, Damage: 15, Range: 5},
	MiniBlaster: {Type: MiniBlaster, Damage: 25, Range: 3},
	ScatterGun:  {Type: ScatterGun, Damage: 40, Range: 2},
	RailGun:     {Type: RailGun, Damage: 25, Range: 10},
}

// Stats returns damage and range for w. Unknown weapons do no damage.
func (w WeaponType) Stats() Weapon {
	if s, ok := weaponStats[w]; ok {
		return s
	}
	return Weapon{Type: w}
}

// PickupType names an item lying on the board.
type PickupType string

const (
	RepairKit         PickupType = "repair_kit"
	ShieldPickup      PickupType = "shield"
	LaserRiflePickup  PickupType = "weapon_laser_rifle"
	MiniBlasterPickup PickupType = "weapon_mini_blaster"
	ScatterGunPickup  PickupType = "weapon_scatter_gun"
	RailGunPickup     PickupType = "weapon_rail_gun"
)

var pickupWeapons = map[PickupType]WeaponType{
	LaserRiflePickup:  LaserRifle,
	MiniBlasterPickup: MiniBlaster,
	ScatterGunPickup:  ScatterGun,
	RailGunPickup:     RailGun,
}

// Weapon reports which weapon a pickup grants, if it is a weapon pickup.
func (p PickupType) Weapon() (WeaponType, bool) {
	w, ok := pickupWeapons[p]
	return w, ok
}
