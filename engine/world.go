package engine

import "github.com/nstehr/ctz-core/model"

// World is the read-only oracle for map queries. Path lengths, range checks
// and next-step directions are treated as black boxes.
type World interface {
	ControlPoints() []model.ControlPoint
	Pickups() []model.Pickup
	PickupAt(pos model.Position) (model.Pickup, bool)
	PathLength(from, to model.Position) int
	CanShooterShootTarget(shooter, target model.Position, weaponRange int) bool
	NextDirectionTowards(from, to model.Position) model.Direction
}

// Unit is the view shared by enemy and friendly units.
type Unit interface {
	Index() int
	Position() model.Position
	Health() int
	Weapon() model.Weapon
	Team() model.Team
}

// Friendly is one of our own units: it can be queried for legality and
// commanded. Commands take effect when the harness resolves the turn.
type Friendly interface {
	Unit
	LastMoveResult() model.MoveResult
	DamageTakenLastTurn() int
	ShotBy() []int

	CheckMove(d model.Direction) model.MoveResult
	CheckShot(target Unit) model.ShotResult
	CheckShieldActivation() model.ShieldResult
	CheckPickup() model.PickupResult

	Move(d model.Direction)
	Shoot(target Unit)
	ActivateShield()
	Pickup()
	Standby()
}

// Snapshot bundles everything the engine reads during one turn.
type Snapshot struct {
	World      World
	Enemies    []Unit
	Friendlies []Friendly
}

// Team is our side, taken from the first friendly unit.
func (s *Snapshot) Team() model.Team {
	if len(s.Friendlies) == 0 {
		return model.TeamNone
	}
	return s.Friendlies[0].Team()
}

func (s *Snapshot) MainframesControlledBy(team model.Team) int {
	return model.CountMainframes(s.World.ControlPoints(), team)
}

func (s *Snapshot) ControlPointsControlledBy(team model.Team) int {
	return model.CountControlPoints(s.World.ControlPoints(), team)
}

func alive(u Unit) bool {
	return u != nil && u.Health() > 0
}
