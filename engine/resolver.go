package engine

import "github.com/nstehr/ctz-core/model"

// MoveConflictResolver decides whether a unit may step in a direction given
// what earlier units have already claimed this turn. It never mutates state;
// the planner commits reservations after a move is issued.
type MoveConflictResolver struct {
	snap         *Snapshot
	reservations Reservations
	memory       *Memory
}

func NewMoveConflictResolver(snap *Snapshot, reservations Reservations, memory *Memory) MoveConflictResolver {
	return MoveConflictResolver{snap: snap, reservations: reservations, memory: memory}
}

// Destination is the tile unit i reaches by stepping in d.
func (r MoveConflictResolver) Destination(i int, d model.Direction) model.Position {
	return d.MovePoint(r.snap.Friendlies[i].Position())
}

func (r MoveConflictResolver) IsMoveLegal(i int, d model.Direction) bool {
	unit := r.snap.Friendlies[i]
	dest := d.MovePoint(unit.Position())

	if r.memory.Blocked(i, dest) {
		return false
	}

	for _, e := range r.snap.Enemies {
		if alive(e) && e.Position() == dest {
			return false
		}
	}

	for j, f := range r.snap.Friendlies {
		if j == i || !alive(f) {
			continue
		}
		if reserved, ok := r.reservations[j]; ok {
			if reserved == dest {
				return false
			}
			continue
		}
		// Not moving this turn (yet), so it still stands there.
		if f.Position() == dest {
			return false
		}
	}

	return unit.CheckMove(d) == model.MoveValid
}
