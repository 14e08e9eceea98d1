package engine

import (
	"math"

	"github.com/nstehr/ctz-core/model"
)

// ControlPointValuator prices stepping toward (or staying next to) a control
// point. It only contributes to move scores.
type ControlPointValuator struct {
	snap   *Snapshot
	params Params
}

func NewControlPointValuator(snap *Snapshot, params Params) ControlPointValuator {
	return ControlPointValuator{snap: snap, params: params}
}

// Contribution is the distance-decayed value for unit i of moving to dest
// with respect to cp. Only a step that shortens the path by exactly one, or
// ends within HoldRadius of the point, earns anything.
func (v ControlPointValuator) Contribution(i int, cp model.ControlPoint, dest model.Position) float64 {
	unit := v.snap.Friendlies[i]
	before := v.snap.World.PathLength(unit.Position(), cp.Position)
	after := v.snap.World.PathLength(dest, cp.Position)
	if after != before-1 && after > v.params.HoldRadius {
		return 0
	}

	value, exponent := v.Value(unit.Team(), cp)
	if value == 0 {
		return 0
	}
	return float64(value) / math.Pow(float64(max(after, 1)), exponent)
}

// Value is the undecayed worth of cp to team and the decay exponent to apply.
func (v ControlPointValuator) Value(team model.Team, cp model.ControlPoint) (int, float64) {
	exponent := v.params.DistanceExponent

	switch cp.Owner {
	case team:
		// Our own point is only worth moving to while it is under attack.
		value := 0
		for _, e := range v.snap.Enemies {
			if !alive(e) {
				continue
			}
			d := v.snap.World.PathLength(e.Position(), cp.Position)
			if d <= v.params.DefendRadius {
				value += v.params.DefendBonus / max(d, 1)
			}
		}
		return value, exponent

	case team.Opposite():
		if !cp.Mainframe {
			if v.guarded(cp) {
				return 0, exponent
			}
			return v.params.NeutralizeBonus, exponent
		}
		value := v.params.NeutralizeBonus + v.params.MainframeBonus
		if v.snap.MainframesControlledBy(team) == 0 && v.snap.MainframesControlledBy(team.Opposite()) > 0 {
			exponent = v.params.RushExponent
		}
		return value, exponent

	default:
		return v.params.CaptureBonus, exponent
	}
}

// guarded reports whether a living enemy stands within GuardRadius of cp.
func (v ControlPointValuator) guarded(cp model.ControlPoint) bool {
	for _, e := range v.snap.Enemies {
		if alive(e) && v.snap.World.PathLength(e.Position(), cp.Position) <= v.params.GuardRadius {
			return true
		}
	}
	return false
}
