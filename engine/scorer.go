package engine

import (
	"math"

	"github.com/nstehr/ctz-core/model"
)

// ActionScorer computes the four candidate scores for one unit at a time.
// Best move directions and shot targets found while scoring are cached per
// unit index so the planner can execute them without recomputing.
type ActionScorer struct {
	snap          *Snapshot
	params        Params
	weights       *Weights
	turn          int
	reservations  Reservations
	threat        ThreatModel
	pickups       PickupValuator
	controlPoints ControlPointValuator
	resolver      MoveConflictResolver

	bestMoves   map[int]model.Direction
	bestTargets map[int]Unit
}

func NewActionScorer(snap *Snapshot, params Params, weights *Weights, reservations Reservations, memory *Memory) *ActionScorer {
	threat := NewThreatModel(snap, params)
	return &ActionScorer{
		snap:          snap,
		params:        params,
		weights:       weights,
		reservations:  reservations,
		threat:        threat,
		pickups:       NewPickupValuator(snap, params, threat),
		controlPoints: NewControlPointValuator(snap, params),
		resolver:      NewMoveConflictResolver(snap, reservations, memory),
		bestMoves:     make(map[int]model.Direction),
		bestTargets:   make(map[int]Unit),
	}
}

func (s *ActionScorer) CanMove(i int) bool {
	for _, d := range model.Directions() {
		if s.resolver.IsMoveLegal(i, d) {
			return true
		}
	}
	return false
}

func (s *ActionScorer) CanShoot(i int) bool {
	unit := s.snap.Friendlies[i]
	for _, e := range s.snap.Enemies {
		if alive(e) && unit.CheckShot(e) == model.ShotCanHit {
			return true
		}
	}
	return false
}

func (s *ActionScorer) CanShield(i int) bool {
	return s.snap.Friendlies[i].CheckShieldActivation() == model.ShieldValid
}

func (s *ActionScorer) CanPickup(i int) bool {
	return s.snap.Friendlies[i].CheckPickup() == model.PickupValid
}

// Score evaluates every legal action for unit i and returns the weighted
// scores. A shield is only eligible while some damage is actually incoming.
func (s *ActionScorer) Score(i int) Scores {
	unit := s.snap.Friendlies[i]
	incoming := s.threat.PotentialDamageAt(unit.Position())
	team := unit.Team()
	env := WeightEnv{
		Unit:               unit.Index(),
		Health:             unit.Health(),
		Weapon:             string(unit.Weapon().Type),
		IncomingDamage:     incoming,
		OwnMainframes:      s.snap.MainframesControlledBy(team),
		EnemyMainframes:    s.snap.MainframesControlledBy(team.Opposite()),
		OwnControlPoints:   s.snap.ControlPointsControlledBy(team),
		EnemyControlPoints: s.snap.ControlPointsControlledBy(team.Opposite()),
		Turn:               s.turn,
	}

	var sc Scores
	if sc.CanMove = s.CanMove(i); sc.CanMove {
		sc.Move = s.weights.Apply(ActionMove, s.ScoreMove(i), env)
	}
	if sc.CanShoot = s.CanShoot(i); sc.CanShoot {
		sc.Shoot = s.weights.Apply(ActionShoot, s.ScoreShoot(i), env)
	}
	if sc.CanShield = s.CanShield(i) && incoming > 0; sc.CanShield {
		sc.Shield = s.weights.Apply(ActionShield, s.ScoreShield(i), env)
	}
	if sc.CanPickup = s.CanPickup(i); sc.CanPickup {
		sc.Pickup = s.weights.Apply(ActionPickup, s.ScorePickup(i), env)
	}
	return sc
}

// BestMove is the direction chosen by the last ScoreMove(i).
func (s *ActionScorer) BestMove(i int) model.Direction {
	return s.bestMoves[i]
}

// BestTarget is the enemy chosen by the last ScoreShoot(i).
func (s *ActionScorer) BestTarget(i int) Unit {
	return s.bestTargets[i]
}

// ScoreMove sums every reason to take each legal step and keeps the best.
// Returns -Inf when no direction is legal.
func (s *ActionScorer) ScoreMove(i int) float64 {
	unit := s.snap.Friendlies[i]
	cur := unit.Position()
	team := unit.Team()

	hereThreat := s.threat.DamagePoints(s.threat.PotentialDamageAt(cur), unit.Health())
	hereDealt := s.threat.PotentialDamageDealtFrom(i, cur)
	herePickup := 0
	if s.CanPickup(i) {
		herePickup = s.pickups.PointsForPickup(i)
	}
	grouping := s.snap.MainframesControlledBy(team) == 0 && s.snap.MainframesControlledBy(team.Opposite()) == 0

	best := math.Inf(-1)
	bestDir := model.Nowhere
	for _, d := range model.Directions() {
		if !s.resolver.IsMoveLegal(i, d) {
			continue
		}
		dest := d.MovePoint(cur)

		total := 0.0
		for _, cp := range s.snap.World.ControlPoints() {
			total += s.controlPoints.Contribution(i, cp, dest)
		}
		for _, pk := range s.snap.World.Pickups() {
			total += s.pickupPull(i, pk, cur, dest, herePickup)
		}
		total += s.assist(i, cur, dest)
		total += float64(hereThreat - s.threat.DamagePoints(s.threat.PotentialDamageAt(dest), unit.Health()))
		total += float64(s.threat.PotentialDamageDealtFrom(i, dest) - hereDealt)
		if grouping {
			total += s.grouping(i, cur, d)
		}

		if total > best {
			best, bestDir = total, d
		}
	}

	s.bestMoves[i] = bestDir
	return best
}

// pickupPull is the decayed value of a pickup dest brings us closer to. It is
// skipped when the tile we stand on already offers at least as much.
func (s *ActionScorer) pickupPull(i int, pk model.Pickup, cur, dest model.Position, herePickup int) float64 {
	before := s.snap.World.PathLength(cur, pk.Position)
	after := s.snap.World.PathLength(dest, pk.Position)
	if after >= before {
		return 0
	}
	value := s.pickups.ValueOf(i, pk.Type)
	if value <= herePickup {
		return 0
	}
	return float64(value) / math.Pow(float64(max(after, 1)), s.params.DistanceExponent)
}

// assist pulls a unit toward allies that were shot last turn. Severity is the
// damage they took times the number of enemies that hit them; allies that
// already claimed a tile this turn are chased to that tile.
func (s *ActionScorer) assist(i int, cur, dest model.Position) float64 {
	total := 0.0
	for j, ally := range s.snap.Friendlies {
		if j == i || !alive(ally) || ally.DamageTakenLastTurn() <= 0 {
			continue
		}
		target := s.allyPosition(j)
		after := s.snap.World.PathLength(dest, target)
		if after >= s.snap.World.PathLength(cur, target) {
			continue
		}
		severity := ally.DamageTakenLastTurn() * max(1, len(ally.ShotBy()))
		total += float64(s.params.AssistPerDamage*severity) / float64(max(after, s.params.AssistMinDistance))
	}
	return total
}

// grouping rewards stepping toward teammates that have drifted away.
func (s *ActionScorer) grouping(i int, cur model.Position, d model.Direction) float64 {
	total := 0.0
	for j, ally := range s.snap.Friendlies {
		if j == i || !alive(ally) {
			continue
		}
		target := s.allyPosition(j)
		if s.snap.World.PathLength(cur, target) <= s.params.GroupingDistance {
			continue
		}
		if s.snap.World.NextDirectionTowards(cur, target) == d {
			total += float64(s.params.GroupingBonus)
		}
	}
	return total
}

func (s *ActionScorer) allyPosition(j int) model.Position {
	if reserved, ok := s.reservations[j]; ok {
		return reserved
	}
	return s.snap.Friendlies[j].Position()
}

// ScoreShoot picks the enemy worth the most focused fire. Equal scores go to
// the weaker enemy. Shooters holding a control point get a large multiplier
// so defenders keep their ground.
func (s *ActionScorer) ScoreShoot(i int) float64 {
	unit := s.snap.Friendlies[i]
	team := unit.Team()
	boost := s.snap.MainframesControlledBy(team.Opposite()) == 0 && s.snap.MainframesControlledBy(team) >= 1

	var target Unit
	best := 0.0
	for _, e := range s.snap.Enemies {
		if !alive(e) || unit.CheckShot(e) != model.ShotCanHit {
			continue
		}
		total, shooters := 0, 0
		for _, f := range s.snap.Friendlies {
			if alive(f) && f.CheckShot(e) == model.ShotCanHit {
				total += f.Weapon().Damage
				shooters++
			}
		}
		points := float64(s.threat.DamagePoints(total*shooters, e.Health()))
		if boost {
			points *= s.params.ShootMainframeMultiplier
		}
		if target == nil || points > best || (points == best && e.Health() < target.Health()) {
			target, best = e, points
		}
	}

	s.bestTargets[i] = target
	if target == nil {
		return math.Inf(-1)
	}
	if s.holdingControlPoint(unit.Position()) {
		best *= s.params.HoldingMultiplier
	}
	return best
}

func (s *ActionScorer) holdingControlPoint(pos model.Position) bool {
	for _, cp := range s.snap.World.ControlPoints() {
		if s.snap.World.PathLength(pos, cp.Position) <= s.params.HoldRadius {
			return true
		}
	}
	return false
}

// ScoreShield values the damage a shield would absorb next turn.
func (s *ActionScorer) ScoreShield(i int) float64 {
	unit := s.snap.Friendlies[i]
	team := unit.Team()
	damage := s.threat.PotentialDamageAt(unit.Position())
	points := float64(s.threat.DamagePoints(damage, unit.Health()))
	if s.snap.MainframesControlledBy(team.Opposite()) > 0 && s.snap.MainframesControlledBy(team) == 0 {
		points *= s.params.ShieldMainframeMultiplier
	}
	return points
}

func (s *ActionScorer) ScorePickup(i int) float64 {
	return float64(s.pickups.PointsForPickup(i))
}
