package engine

import (
	"log/slog"
	"slices"

	"github.com/nstehr/ctz-core/model"
)

// Decision records what one unit was told to do and why.
type Decision struct {
	Unit        int
	Action      ActionKind
	Scores      Scores
	Direction   model.Direction // set for moves
	Destination model.Position  // set for moves
	Target      int             // enemy index for shots, -1 otherwise
}

// Planner chooses and issues one action per friendly unit each turn. It owns
// the only state that survives between turns: the per-unit move memory.
type Planner struct {
	params    Params
	weights   *Weights
	priority  Priority
	memory    Memory
	turn      int
	decisions []Decision
}

type Option func(*Planner)

func WithParams(p Params) Option {
	return func(pl *Planner) {
		p.Validate()
		pl.params = p
	}
}

func WithWeights(w *Weights) Option {
	return func(pl *Planner) { pl.weights = w }
}

func WithPriority(p Priority) Option {
	return func(pl *Planner) { pl.priority = p }
}

func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		params:   DefaultParams(),
		weights:  DefaultWeights(),
		priority: DefaultPriority,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlanTurn evaluates and commands every living friendly unit in index order.
// Later units see the moves reserved by earlier ones, so the order matters.
func (p *Planner) PlanTurn(world World, enemies []Unit, friendlies []Friendly) {
	p.turn++
	snap := &Snapshot{World: world, Enemies: enemies, Friendlies: friendlies}
	reservations := make(Reservations)
	scorer := NewActionScorer(snap, p.params, p.weights, reservations, &p.memory)
	scorer.turn = p.turn
	p.decisions = p.decisions[:0]

	slog.Debug("planning turn", "turn", p.turn, "team", snap.Team(), "units", len(friendlies))

	for i, unit := range friendlies {
		if !alive(unit) {
			p.memory.Clear(i)
			continue
		}
		p.memory.Observe(i, unit.LastMoveResult())

		scores := scorer.Score(i)
		action := p.priority.Resolve(scores)
		d := p.execute(scorer, reservations, i, action)
		d.Scores = scores
		p.decisions = append(p.decisions, d)

		slog.Debug("unit decision",
			"turn", p.turn,
			"unit", unit.Index(),
			"action", action,
			"move", scores.Move,
			"shoot", scores.Shoot,
			"shield", scores.Shield,
			"pickup", scores.Pickup,
		)
	}
}

func (p *Planner) execute(scorer *ActionScorer, reservations Reservations, i int, action ActionKind) Decision {
	unit := scorer.snap.Friendlies[i]
	d := Decision{Unit: unit.Index(), Action: action, Target: -1}

	switch action {
	case ActionMove:
		dir := scorer.BestMove(i)
		dest := dir.MovePoint(unit.Position())
		unit.Move(dir)
		reservations[i] = dest
		p.memory.RecordMove(i, dest)
		d.Direction, d.Destination = dir, dest
		return d
	case ActionShoot:
		target := scorer.BestTarget(i)
		unit.Shoot(target)
		d.Target = target.Index()
	case ActionShield:
		unit.ActivateShield()
	case ActionPickup:
		unit.Pickup()
	default:
		unit.Standby()
	}
	p.memory.Clear(i)
	return d
}

// Turn is the number of turns planned so far.
func (p *Planner) Turn() int { return p.turn }

// Decisions returns the decisions of the most recent turn.
func (p *Planner) Decisions() []Decision {
	return slices.Clone(p.decisions)
}

// Memory returns what the planner remembers about unit i.
func (p *Planner) Memory(i int) UnitMemory {
	return p.memory.Get(i)
}

func (p *Planner) Params() Params { return p.params }
