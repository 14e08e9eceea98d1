package agent

import (
	"github.com/nstehr/ctz-core/engine"
	"github.com/nstehr/ctz-core/ipc"
	"github.com/nstehr/ctz-core/model"
)

// unitView exposes a wire unit to the engine.
type unitView struct {
	state model.UnitState
	team  model.Team
}

func (u *unitView) Index() int               { return u.state.Index }
func (u *unitView) Position() model.Position { return u.state.Position }
func (u *unitView) Health() int              { return u.state.Health }
func (u *unitView) Weapon() model.Weapon     { return u.state.Weapon.Stats() }
func (u *unitView) Team() model.Team         { return u.team }

// friendlyView answers legality checks against the board and records the one
// command the engine issues for it.
type friendlyView struct {
	unitView
	friendly model.FriendlyState
	board    *model.Board
	cmd      *ipc.UnitCommand
}

func (f *friendlyView) LastMoveResult() model.MoveResult { return f.friendly.LastMoveResult }
func (f *friendlyView) DamageTakenLastTurn() int         { return f.friendly.DamageTakenLastTurn }
func (f *friendlyView) ShotBy() []int                    { return f.friendly.ShotBy }

// CheckMove only knows about terrain; unit collisions are left to the engine.
func (f *friendlyView) CheckMove(d model.Direction) model.MoveResult {
	if !d.Valid() || !f.board.Passable(d.MovePoint(f.Position())) {
		return model.MoveBlockedByWorld
	}
	return model.MoveValid
}

func (f *friendlyView) CheckShot(target engine.Unit) model.ShotResult {
	switch {
	case target.Health() <= 0:
		return model.ShotTargetDead
	case !model.WithinRange(f.Position(), target.Position(), f.Weapon().Range):
		return model.ShotOutOfRange
	case !f.board.LineOfSight(f.Position(), target.Position()):
		return model.ShotBlockedByWorld
	}
	return model.ShotCanHit
}

func (f *friendlyView) CheckShieldActivation() model.ShieldResult {
	switch {
	case f.friendly.ShieldActive:
		return model.ShieldAlreadyActive
	case f.friendly.Shields <= 0:
		return model.ShieldNoneAvailable
	}
	return model.ShieldValid
}

func (f *friendlyView) CheckPickup() model.PickupResult {
	if _, ok := f.board.PickupAt(f.Position()); ok {
		return model.PickupValid
	}
	return model.PickupNothing
}

func (f *friendlyView) Move(d model.Direction) {
	f.cmd = &ipc.UnitCommand{Unit: f.Index(), Action: ipc.CommandMove, Direction: d}
}

func (f *friendlyView) Shoot(target engine.Unit) {
	idx := target.Index()
	f.cmd = &ipc.UnitCommand{Unit: f.Index(), Action: ipc.CommandShoot, Target: &idx}
}

func (f *friendlyView) ActivateShield() {
	f.cmd = &ipc.UnitCommand{Unit: f.Index(), Action: ipc.CommandShield}
}

func (f *friendlyView) Pickup() {
	f.cmd = &ipc.UnitCommand{Unit: f.Index(), Action: ipc.CommandPickup}
}

func (f *friendlyView) Standby() {
	f.cmd = &ipc.UnitCommand{Unit: f.Index(), Action: ipc.CommandStandby}
}

// PlanTurn runs one planner turn over ts and collects the issued commands.
// Friendlies must arrive in the same order every turn since the planner keys
// its memory by position in that list.
func PlanTurn(p *engine.Planner, ts model.TurnState, layout model.BoardData) ipc.CommandsMessage {
	board := model.NewBoard(layout, ts.ControlPoints, ts.Pickups)

	team := ts.Team
	enemyTeam := team.Opposite()

	enemies := make([]engine.Unit, 0, len(ts.Enemies))
	for _, e := range ts.Enemies {
		t := e.Team
		if t == "" {
			t = enemyTeam
		}
		enemies = append(enemies, &unitView{state: e, team: t})
	}

	views := make([]*friendlyView, 0, len(ts.Friendlies))
	friendlies := make([]engine.Friendly, 0, len(ts.Friendlies))
	for _, f := range ts.Friendlies {
		t := f.Team
		if t == "" {
			t = team
		}
		v := &friendlyView{
			unitView: unitView{state: f.UnitState, team: t},
			friendly: f,
			board:    board,
		}
		views = append(views, v)
		friendlies = append(friendlies, v)
	}

	p.PlanTurn(board, enemies, friendlies)

	msg := ipc.CommandsMessage{Turn: ts.Turn, Commands: []ipc.UnitCommand{}}
	for _, v := range views {
		if v.cmd != nil {
			msg.Commands = append(msg.Commands, *v.cmd)
		}
	}
	return msg
}
