package agent

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nstehr/ctz-core/engine"
	"github.com/nstehr/ctz-core/ipc"
	"github.com/nstehr/ctz-core/model"
)

// Agent owns the decision-making for a single player session.
type Agent struct {
	Conn    *ipc.Connection
	Session uuid.UUID
	Player  string
	Team    model.Team
	Planner *engine.Planner

	layout *model.BoardData
	prev   *turnSnapshot
}

func New(conn *ipc.Connection, planner *engine.Planner) *Agent {
	return &Agent{Conn: conn, Session: uuid.New(), Planner: planner}
}

// HandleHello completes the handshake so the harness knows the engine is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := env.Decode(&hello); err != nil {
		return nil, err
	}

	if hello.Board != nil {
		if err := hello.Board.Validate(); err != nil {
			return nil, fmt.Errorf("hello: %w", err)
		}
		a.layout = hello.Board
	}
	a.Player = hello.Player
	a.Team = hello.Team
	if a.Conn != nil {
		a.Conn.Player = a.Player
	}
	slog.Info("player identified", "player", a.Player, "team", a.Team, "session", a.Session)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", Session: a.Session.String()})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleTurn plans one turn and replies with a command per living unit.
func (a *Agent) HandleTurn(env ipc.Envelope) (*ipc.Envelope, error) {
	var ts model.TurnState
	if err := env.Decode(&ts); err != nil {
		return nil, err
	}

	cmds, events, err := a.Step(ts)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		slog.Info("game event", "player", a.Player, "turn", e.Turn, "kind", e.Kind, "detail", e.Detail)
	}

	resp, err := ipc.NewEnvelope(ipc.TypeCommands, cmds)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Step diffs ts against the previous turn, then plans it.
func (a *Agent) Step(ts model.TurnState) (ipc.CommandsMessage, []Event, error) {
	if ts.Board != nil {
		if err := ts.Board.Validate(); err != nil {
			return ipc.CommandsMessage{}, nil, fmt.Errorf("turn %d: %w", ts.Turn, err)
		}
		a.layout = ts.Board
	}
	if a.layout == nil {
		return ipc.CommandsMessage{}, nil, fmt.Errorf("turn %d: no board layout received", ts.Turn)
	}
	if ts.Team == "" {
		ts.Team = a.Team
	}
	if ts.Team != model.TeamAmber && ts.Team != model.TeamBlue {
		return ipc.CommandsMessage{}, nil, fmt.Errorf("turn %d: unknown team %q", ts.Turn, ts.Team)
	}

	events := detectEvents(ts, ts.Team, a.prev)
	snap := takeSnapshot(ts)
	a.prev = &snap

	slog.Info("turn received",
		"player", a.Player,
		"team", ts.Team,
		"turn", ts.Turn,
		"friendlies", len(ts.Friendlies),
		"enemies", len(ts.Enemies),
		"ownPoints", model.CountControlPoints(ts.ControlPoints, ts.Team),
		"ownMainframes", model.CountMainframes(ts.ControlPoints, ts.Team),
	)

	cmds := PlanTurn(a.Planner, ts, *a.layout)
	for _, c := range cmds.Commands {
		slog.Debug("command", "turn", ts.Turn, "unit", c.Unit, "action", c.Action, "direction", c.Direction)
	}
	return cmds, events, nil
}

// Handlers returns the message handlers for a connection.
func (a *Agent) Handlers() map[string]ipc.Handler {
	return map[string]ipc.Handler{
		ipc.TypeHello: a.HandleHello,
		ipc.TypeTurn:  a.HandleTurn,
	}
}
