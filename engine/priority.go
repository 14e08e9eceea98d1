package engine

import (
	"fmt"
	"math"
	"strings"
)

// ActionKind is one of the actions a unit can take in a turn.
type ActionKind string

const (
	ActionMove    ActionKind = "move"
	ActionShoot   ActionKind = "shoot"
	ActionShield  ActionKind = "shield"
	ActionPickup  ActionKind = "pickup"
	ActionStandby ActionKind = "standby"
)

// Priority orders the scored actions for breaking ties: when several
// eligible actions share the maximum score, the earliest one wins.
type Priority []ActionKind

// DefaultPriority is shield, then shoot, then pickup, then move.
var DefaultPriority = Priority{ActionShield, ActionShoot, ActionPickup, ActionMove}

// ParsePriority validates a configured order. It must name each of the four
// scored actions exactly once.
func ParsePriority(names []string) (Priority, error) {
	if len(names) == 0 {
		return DefaultPriority, nil
	}
	seen := make(map[ActionKind]bool)
	var p Priority
	for _, n := range names {
		kind := ActionKind(strings.ToLower(strings.TrimSpace(n)))
		switch kind {
		case ActionMove, ActionShoot, ActionShield, ActionPickup:
		default:
			return nil, fmt.Errorf("unknown action %q in priority", n)
		}
		if seen[kind] {
			return nil, fmt.Errorf("action %q listed twice in priority", kind)
		}
		seen[kind] = true
		p = append(p, kind)
	}
	if len(p) != len(DefaultPriority) {
		return nil, fmt.Errorf("priority must list all of %v, got %v", DefaultPriority, p)
	}
	return p, nil
}

// Resolve picks the winning action: the maximum score among eligible
// actions, ties broken by list order. With nothing eligible the unit stands by.
func (p Priority) Resolve(s Scores) ActionKind {
	best := math.Inf(-1)
	found := false
	for _, kind := range p {
		if v, ok := s.Get(kind); ok && (!found || v > best) {
			best, found = v, true
		}
	}
	if !found {
		return ActionStandby
	}
	for _, kind := range p {
		if v, ok := s.Get(kind); ok && v == best {
			return kind
		}
	}
	return ActionStandby
}

// Scores holds one unit's weighted action scores. A score only counts when
// the matching Can flag is set.
type Scores struct {
	Move, Shoot, Shield, Pickup             float64
	CanMove, CanShoot, CanShield, CanPickup bool
}

// Get returns the score for kind and whether that action is eligible.
func (s Scores) Get(kind ActionKind) (float64, bool) {
	switch kind {
	case ActionMove:
		return s.Move, s.CanMove
	case ActionShoot:
		return s.Shoot, s.CanShoot
	case ActionShield:
		return s.Shield, s.CanShield
	case ActionPickup:
		return s.Pickup, s.CanPickup
	}
	return 0, false
}
