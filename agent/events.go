package agent

import (
	"fmt"
	"strings"

	"github.com/nstehr/ctz-core/model"
)

// EventKind identifies a notable change between two consecutive turns.
type EventKind string

const (
	EventControlPointCaptured EventKind = "control_point_captured"
	EventControlPointLost     EventKind = "control_point_lost"
	EventMainframeGained      EventKind = "mainframe_gained"
	EventMainframeLost        EventKind = "mainframe_lost"
	EventEnemyKilled          EventKind = "enemy_killed"
	EventUnitLost             EventKind = "unit_lost"
	EventMoveFailed           EventKind = "move_failed"
)

// Event is a change detected by diffing consecutive turn states. Events are
// logged with the turn they were observed on.
type Event struct {
	Kind   EventKind
	Turn   int
	Detail string
}

// turnSnapshot captures the diffable fields of a turn.
type turnSnapshot struct {
	owners     map[string]model.Team // control point name -> owner
	mainframes map[string]bool
	enemyAlive map[int]bool
	ownAlive   map[int]bool
}

func pointKey(cp model.ControlPoint) string {
	if cp.Name != "" {
		return cp.Name
	}
	return cp.Position.String()
}

func takeSnapshot(ts model.TurnState) turnSnapshot {
	snap := turnSnapshot{
		owners:     make(map[string]model.Team, len(ts.ControlPoints)),
		mainframes: make(map[string]bool),
		enemyAlive: make(map[int]bool, len(ts.Enemies)),
		ownAlive:   make(map[int]bool, len(ts.Friendlies)),
	}
	for _, cp := range ts.ControlPoints {
		key := pointKey(cp)
		snap.owners[key] = cp.Owner
		if cp.Mainframe {
			snap.mainframes[key] = true
		}
	}
	for _, e := range ts.Enemies {
		snap.enemyAlive[e.Index] = e.Alive()
	}
	for _, f := range ts.Friendlies {
		snap.ownAlive[f.Index] = f.Alive()
	}
	return snap
}

// detectEvents compares ts with the previous turn and returns what changed
// from team's point of view. Move failures are reported even on the first turn.
func detectEvents(ts model.TurnState, team model.Team, prev *turnSnapshot) []Event {
	var events []Event

	for _, f := range ts.Friendlies {
		switch f.LastMoveResult {
		case model.MoveBlockedByWorld, model.MoveBlockedByEnemy, model.MoveBlockedByFriendly:
			events = append(events, Event{
				Kind:   EventMoveFailed,
				Turn:   ts.Turn,
				Detail: fmt.Sprintf("unit %d: %s", f.Index, f.LastMoveResult),
			})
		}
	}

	if prev == nil {
		return events
	}
	for _, cp := range ts.ControlPoints {
		key := pointKey(cp)
		before, seen := prev.owners[key]
		if !seen || before == cp.Owner {
			continue
		}
		gained, lost := cp.Owner == team, before == team
		switch {
		case gained && cp.Mainframe:
			events = append(events, Event{Kind: EventMainframeGained, Turn: ts.Turn, Detail: key})
		case gained:
			events = append(events, Event{Kind: EventControlPointCaptured, Turn: ts.Turn, Detail: key})
		case lost && cp.Mainframe:
			events = append(events, Event{Kind: EventMainframeLost, Turn: ts.Turn, Detail: fmt.Sprintf("%s now %s", key, cp.Owner)})
		case lost:
			events = append(events, Event{Kind: EventControlPointLost, Turn: ts.Turn, Detail: fmt.Sprintf("%s now %s", key, cp.Owner)})
		}
	}

	// Walk the turn's unit lists rather than the maps so events come out in
	// index order every time.
	for _, e := range ts.Enemies {
		if prev.enemyAlive[e.Index] && !e.Alive() {
			events = append(events, Event{Kind: EventEnemyKilled, Turn: ts.Turn, Detail: fmt.Sprintf("enemy %d", e.Index)})
		}
	}
	for _, f := range ts.Friendlies {
		if prev.ownAlive[f.Index] && !f.Alive() {
			events = append(events, Event{Kind: EventUnitLost, Turn: ts.Turn, Detail: fmt.Sprintf("unit %d", f.Index)})
		}
	}

	return events
}

// FormatEvents renders events one per line.
func FormatEvents(events []Event) string {
	if len(events) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "[turn %d] %s: %s\n", e.Turn, e.Kind, e.Detail)
	}
	return b.String()
}
