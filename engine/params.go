package engine

import "github.com/nstehr/ctz-core/model"

// Params holds every tunable constant the scorers use. The defaults are the
// values the engine was tuned with; config files may override any of them.
type Params struct {
	// Damage conversion
	PointsPerDamage int // points per point of damage dealt or avoided
	KillBonus       int // flat bonus when damage meets or exceeds remaining health

	// Pickups
	RepairKitHeal     int // healing cap of a repair kit
	RepairKitValue    int // value of a repair kit seen from a distance
	PickupBonus       int // flat bonus for actually picking up a repair kit
	ShieldPickupValue int
	SameWeaponValue   int // picking up the weapon we already carry

	// WeaponUpgrades[current][offered] is the value of swapping current for
	// offered. Missing entries are never upgrades.
	WeaponUpgrades map[model.WeaponType]map[model.WeaponType]int

	// Control points
	CaptureBonus     int     // neutral point
	NeutralizeBonus  int     // opponent-held point
	MainframeBonus   int     // extra for opponent-held mainframes
	DefendBonus      int     // per enemy near one of our points, divided by its distance
	DefendRadius     int     // enemies within this path length of our point count as attackers
	GuardRadius      int     // opposing non-mainframes with an enemy this close are skipped
	HoldRadius       int     // a point this close counts as held or approachable
	DistanceExponent float64 // normal decay: value / max(dist,1)^exp
	RushExponent     float64 // relaxed decay toward a mainframe we must contest

	// Team play
	AssistPerDamage   int // per damage an ally took last turn, per shooter
	AssistMinDistance int // divisor floor for the assist term
	GroupingBonus     int // per distant teammate we step toward
	GroupingDistance  int // teammates farther than this pull us in

	// Multipliers
	ShootMainframeMultiplier  float64 // we own a mainframe and they own none
	ShieldMainframeMultiplier float64 // they own a mainframe and we own none
	HoldingMultiplier         float64 // shooter standing on or next to a control point
}

// DefaultParams returns the canonical tuning.
func DefaultParams() Params {
	return Params{
		PointsPerDamage: 10,
		KillBonus:       100,

		RepairKitHeal:     20,
		RepairKitValue:    250,
		PickupBonus:       50,
		ShieldPickupValue: 100,
		SameWeaponValue:   5,
		WeaponUpgrades:    DefaultWeaponUpgrades(),

		CaptureBonus:     200,
		NeutralizeBonus:  250,
		MainframeBonus:   300,
		DefendBonus:      150,
		DefendRadius:     4,
		GuardRadius:      2,
		HoldRadius:       1,
		DistanceExponent: 1.5,
		RushExponent:     1.25,

		AssistPerDamage:   10,
		AssistMinDistance: 3,
		GroupingBonus:     25,
		GroupingDistance:  5,

		ShootMainframeMultiplier:  2,
		ShieldMainframeMultiplier: 2,
		HoldingMultiplier:         100,
	}
}

// DefaultWeaponUpgrades returns a fresh copy of the stock upgrade table.
func DefaultWeaponUpgrades() map[model.WeaponType]map[model.WeaponType]int {
	return map[model.WeaponType]map[model.WeaponType]int{
		model.LaserRifle: {
			model.MiniBlaster: 60,
			model.ScatterGun:  90,
			model.RailGun:     120,
		},
		model.MiniBlaster: {
			model.ScatterGun: 50,
			model.RailGun:    90,
		},
		model.ScatterGun: {
			model.RailGun: 60,
		},
		model.RailGun: {},
	}
}

// Validate clamps values that would break the scoring arithmetic. A nil
// upgrade table falls back to the stock one; any other table is copied so the
// caller's map is never shared with a planner.
func (p *Params) Validate() {
	if p.WeaponUpgrades == nil {
		p.WeaponUpgrades = DefaultWeaponUpgrades()
	} else {
		table := make(map[model.WeaponType]map[model.WeaponType]int, len(p.WeaponUpgrades))
		for current, offers := range p.WeaponUpgrades {
			row := make(map[model.WeaponType]int, len(offers))
			for offered, v := range offers {
				row[offered] = clampInt(v, 0, 100000)
			}
			table[current] = row
		}
		p.WeaponUpgrades = table
	}
	p.PointsPerDamage = clampInt(p.PointsPerDamage, 0, 1000)
	p.KillBonus = clampInt(p.KillBonus, 0, 100000)
	p.RepairKitHeal = clampInt(p.RepairKitHeal, 0, 1000)
	p.DefendRadius = clampInt(p.DefendRadius, 0, 100)
	p.GuardRadius = clampInt(p.GuardRadius, 0, 100)
	p.HoldRadius = clampInt(p.HoldRadius, 0, 100)
	p.AssistMinDistance = clampInt(p.AssistMinDistance, 1, 100)
	p.GroupingDistance = clampInt(p.GroupingDistance, 0, 100)
	p.DistanceExponent = clamp(p.DistanceExponent, 0, 4)
	p.RushExponent = clamp(p.RushExponent, 0, 4)
	p.ShootMainframeMultiplier = clamp(p.ShootMainframeMultiplier, 0, 100)
	p.ShieldMainframeMultiplier = clamp(p.ShieldMainframeMultiplier, 0, 100)
	p.HoldingMultiplier = clamp(p.HoldingMultiplier, 0, 1e6)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
