package engine

import "github.com/nstehr/ctz-core/model"

// PickupValuator prices the items lying on the board for a given unit.
type PickupValuator struct {
	snap   *Snapshot
	params Params
	threat ThreatModel
}

func NewPickupValuator(snap *Snapshot, params Params, threat ThreatModel) PickupValuator {
	return PickupValuator{snap: snap, params: params, threat: threat}
}

// ValueOf is what a pickup of the given kind is worth to unit i, ignoring
// where the pickup lies.
func (v PickupValuator) ValueOf(i int, kind model.PickupType) int {
	unit := v.snap.Friendlies[i]

	switch kind {
	case model.RepairKit:
		return v.params.RepairKitValue
	case model.ShieldPickup:
		// A shield is worthless to a unit that dies next turn anyway, unless
		// a mainframe keeps the team's score ticking.
		dying := v.threat.PotentialDamageAt(unit.Position()) >= unit.Health()
		if dying && v.snap.MainframesControlledBy(unit.Team()) == 0 {
			return 0
		}
		return v.params.ShieldPickupValue
	}

	offered, ok := kind.Weapon()
	if !ok {
		return 0
	}
	current := unit.Weapon().Type
	if offered == current {
		return v.params.SameWeaponValue
	}
	return v.params.WeaponUpgrades[current][offered]
}

// PointsForPickup values picking up whatever lies on unit i's tile right now.
func (v PickupValuator) PointsForPickup(i int) int {
	unit := v.snap.Friendlies[i]
	pk, ok := v.snap.World.PickupAt(unit.Position())
	if !ok {
		return 0
	}
	if pk.Type != model.RepairKit {
		return v.ValueOf(i, pk.Type)
	}

	damage := v.threat.PotentialDamageAt(unit.Position())
	if damage >= v.params.RepairKitHeal {
		return 0
	}
	return (v.params.RepairKitHeal-damage)*v.params.PointsPerDamage + v.params.PickupBonus
}
