package engine

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// WeightEnv is what a weight expression can see about the unit being scored.
type WeightEnv struct {
	Action             string
	Unit               int
	Health             int
	Weapon             string
	IncomingDamage     int
	OwnMainframes      int
	EnemyMainframes    int
	OwnControlPoints   int
	EnemyControlPoints int
	Turn               int
}

// Weights multiplies each raw action score before comparison. Each weight is
// an expr expression evaluated against WeightEnv, so a config can say
// `Health < 30 ? 2.0 : 1.0` for shields.
type Weights struct {
	sources  map[ActionKind]string
	programs map[ActionKind]*vm.Program
}

// NewWeights compiles one expression per action. Actions without a source
// get a constant weight of one.
func NewWeights(sources map[ActionKind]string) (*Weights, error) {
	w := &Weights{
		sources:  make(map[ActionKind]string),
		programs: make(map[ActionKind]*vm.Program),
	}
	for _, kind := range DefaultPriority {
		src := sources[kind]
		if src == "" {
			src = "1.0"
		}
		prog, err := expr.Compile(src, expr.Env(WeightEnv{}), expr.AsFloat64())
		if err != nil {
			return nil, fmt.Errorf("compile %s weight %q: %w", kind, src, err)
		}
		w.sources[kind] = src
		w.programs[kind] = prog
	}
	return w, nil
}

// DefaultWeights weighs every action equally.
func DefaultWeights() *Weights {
	w, err := NewWeights(nil)
	if err != nil {
		panic(err)
	}
	return w
}

// Source returns the expression used for kind.
func (w *Weights) Source(kind ActionKind) string {
	return w.sources[kind]
}

// Apply scales raw by the weight for kind. A failing expression leaves the
// score unweighted.
func (w *Weights) Apply(kind ActionKind, raw float64, env WeightEnv) float64 {
	if w == nil {
		return raw
	}
	prog, ok := w.programs[kind]
	if !ok {
		return raw
	}
	env.Action = string(kind)
	out, err := vm.Run(prog, env)
	if err != nil {
		slog.Warn("weight expression error", "action", kind, "expr", w.sources[kind], "error", err)
		return raw
	}
	weight, ok := out.(float64)
	if !ok {
		return raw
	}
	return raw * weight
}
