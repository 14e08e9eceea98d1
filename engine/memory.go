package engine

import "github.com/nstehr/ctz-core/model"

// UnitMemory is what the planner carries about one unit from one turn to the
// next.
type UnitMemory struct {
	Target    model.Position   // destination of the last committed move
	HasTarget bool             // false once the unit commits a non-move action
	Pending   bool             // move issued, outcome not yet observed
	Result    model.MoveResult // outcome of the move to Target
}

// Memory is an arena of UnitMemory records indexed by stable unit index.
type Memory struct {
	units []UnitMemory
}

func (m *Memory) unit(i int) *UnitMemory {
	for len(m.units) <= i {
		m.units = append(m.units, UnitMemory{})
	}
	return &m.units[i]
}

// Get returns a copy of unit i's record.
func (m *Memory) Get(i int) UnitMemory {
	return *m.unit(i)
}

// Observe stores the harness-reported outcome of a move issued last turn.
func (m *Memory) Observe(i int, result model.MoveResult) {
	u := m.unit(i)
	if !u.Pending {
		return
	}
	u.Result = result
	u.Pending = false
}

// RecordMove remembers that unit i was sent to dest this turn.
func (m *Memory) RecordMove(i int, dest model.Position) {
	*m.unit(i) = UnitMemory{Target: dest, HasTarget: true, Pending: true}
}

// Clear forgets unit i's last move target.
func (m *Memory) Clear(i int) {
	*m.unit(i) = UnitMemory{}
}

// Blocked reports whether dest is the tile unit i failed to reach last turn.
func (m *Memory) Blocked(i int, dest model.Position) bool {
	u := m.unit(i)
	return u.HasTarget && !u.Pending && u.Target == dest && u.Result != model.MoveCompleted
}

// Reservations maps a unit index to the tile it claimed this turn.
type Reservations map[int]model.Position
