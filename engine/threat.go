package engine

import "github.com/nstehr/ctz-core/model"

// ThreatModel estimates damage exchanged next turn. Total damage against a
// tile or unit is multiplied by the number of attackers that reach it, so
// focused fire counts for more than the same damage spread out.
type ThreatModel struct {
	snap   *Snapshot
	params Params
}

func NewThreatModel(snap *Snapshot, params Params) ThreatModel {
	return ThreatModel{snap: snap, params: params}
}

// PotentialDamageAt is the damage living enemies could put on pos next turn.
func (m ThreatModel) PotentialDamageAt(pos model.Position) int {
	total, attackers := 0, 0
	for _, e := range m.snap.Enemies {
		if !alive(e) {
			continue
		}
		w := e.Weapon()
		if m.snap.World.CanShooterShootTarget(e.Position(), pos, w.Range) {
			total += w.Damage
			attackers++
		}
	}
	return total * attackers
}

// PotentialDamageDealtFrom is the best point value our team could score
// against a single enemy that unit i reaches from pos, if unit i stood at pos
// and everyone else stayed put. Enemies out of unit i's reach score nothing.
func (m ThreatModel) PotentialDamageDealtFrom(i int, pos model.Position) int {
	reach := m.snap.Friendlies[i].Weapon().Range
	best := 0
	for _, e := range m.snap.Enemies {
		if !alive(e) || !m.snap.World.CanShooterShootTarget(pos, e.Position(), reach) {
			continue
		}
		total, attackers := 0, 0
		for j, f := range m.snap.Friendlies {
			if !alive(f) {
				continue
			}
			from := f.Position()
			if j == i {
				from = pos
			}
			w := f.Weapon()
			if m.snap.World.CanShooterShootTarget(from, e.Position(), w.Range) {
				total += w.Damage
				attackers++
			}
		}
		if attackers == 0 {
			continue
		}
		best = max(best, m.DamagePoints(total*attackers, e.Health()))
	}
	return best
}

// DamagePoints converts damage into points, adding the kill bonus when the
// damage is lethal to a unit with the given health.
func (m ThreatModel) DamagePoints(damage, health int) int {
	points := damage * m.params.PointsPerDamage
	if damage > 0 && damage >= health {
		points += m.params.KillBonus
	}
	return points
}
