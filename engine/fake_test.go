package engine

import "github.com/nstehr/ctz-core/model"

// fakeWorld is an open rectangular board where path length is king-move
// distance and every shot within range connects.
type fakeWorld struct {
	cols, rows int
	walls      map[model.Position]bool
	cps        []model.ControlPoint
	pickups    []model.Pickup
}

func newFakeWorld(cols, rows int) *fakeWorld {
	return &fakeWorld{cols: cols, rows: rows, walls: make(map[model.Position]bool)}
}

func (w *fakeWorld) ControlPoints() []model.ControlPoint { return w.cps }
func (w *fakeWorld) Pickups() []model.Pickup             { return w.pickups }

func (w *fakeWorld) PickupAt(pos model.Position) (model.Pickup, bool) {
	for _, pk := range w.pickups {
		if pk.Position == pos {
			return pk, true
		}
	}
	return model.Pickup{}, false
}

func (w *fakeWorld) PathLength(from, to model.Position) int {
	return max(absInt(from.X-to.X), absInt(from.Y-to.Y))
}

func (w *fakeWorld) CanShooterShootTarget(shooter, target model.Position, weaponRange int) bool {
	return model.WithinRange(shooter, target, weaponRange)
}

func (w *fakeWorld) NextDirectionTowards(from, to model.Position) model.Direction {
	step := from.Add(sign(to.X-from.X), sign(to.Y-from.Y))
	for _, d := range model.Directions() {
		if step != from && d.MovePoint(from) == step {
			return d
		}
	}
	return model.Nowhere
}

func (w *fakeWorld) open(p model.Position) bool {
	return p.X >= 0 && p.X < w.cols && p.Y >= 0 && p.Y < w.rows && !w.walls[p]
}

type fakeUnit struct {
	index  int
	pos    model.Position
	health int
	weapon model.Weapon
	team   model.Team
}

func (u *fakeUnit) Index() int               { return u.index }
func (u *fakeUnit) Position() model.Position { return u.pos }
func (u *fakeUnit) Health() int              { return u.health }
func (u *fakeUnit) Weapon() model.Weapon     { return u.weapon }
func (u *fakeUnit) Team() model.Team         { return u.team }

type command struct {
	action ActionKind
	dir    model.Direction
	target int
}

type fakeFriendly struct {
	fakeUnit
	world       *fakeWorld
	lastMove    model.MoveResult
	damageTaken int
	shotBy      []int
	shields     int

	issued []command
}

func (f *fakeFriendly) LastMoveResult() model.MoveResult { return f.lastMove }
func (f *fakeFriendly) DamageTakenLastTurn() int         { return f.damageTaken }
func (f *fakeFriendly) ShotBy() []int                    { return f.shotBy }

func (f *fakeFriendly) CheckMove(d model.Direction) model.MoveResult {
	if !f.world.open(d.MovePoint(f.pos)) {
		return model.MoveBlockedByWorld
	}
	return model.MoveValid
}

func (f *fakeFriendly) CheckShot(target Unit) model.ShotResult {
	if target.Health() <= 0 {
		return model.ShotTargetDead
	}
	if !model.WithinRange(f.pos, target.Position(), f.weapon.Range) {
		return model.ShotOutOfRange
	}
	return model.ShotCanHit
}

func (f *fakeFriendly) CheckShieldActivation() model.ShieldResult {
	if f.shields <= 0 {
		return model.ShieldNoneAvailable
	}
	return model.ShieldValid
}

func (f *fakeFriendly) CheckPickup() model.PickupResult {
	if _, ok := f.world.PickupAt(f.pos); ok {
		return model.PickupValid
	}
	return model.PickupNothing
}

func (f *fakeFriendly) Move(d model.Direction) {
	f.issued = append(f.issued, command{action: ActionMove, dir: d, target: -1})
}

func (f *fakeFriendly) Shoot(target Unit) {
	f.issued = append(f.issued, command{action: ActionShoot, target: target.Index()})
}

func (f *fakeFriendly) ActivateShield() {
	f.issued = append(f.issued, command{action: ActionShield, target: -1})
}

func (f *fakeFriendly) Pickup() {
	f.issued = append(f.issued, command{action: ActionPickup, target: -1})
}

func (f *fakeFriendly) Standby() {
	f.issued = append(f.issued, command{action: ActionStandby, target: -1})
}

func (f *fakeFriendly) last() command {
	if len(f.issued) == 0 {
		return command{}
	}
	return f.issued[len(f.issued)-1]
}

func weapon(damage, rng int) model.Weapon {
	return model.Weapon{Type: model.LaserRifle, Damage: damage, Range: rng}
}

func newFriendly(w *fakeWorld, index int, pos model.Position, health int, wp model.Weapon) *fakeFriendly {
	return &fakeFriendly{
		fakeUnit: fakeUnit{index: index, pos: pos, health: health, weapon: wp, team: model.TeamAmber},
		world:    w,
		lastMove: model.MoveNotAttempted,
	}
}

func newEnemy(index int, pos model.Position, health int, wp model.Weapon) *fakeUnit {
	return &fakeUnit{index: index, pos: pos, health: health, weapon: wp, team: model.TeamBlue}
}

func snapshot(w *fakeWorld, enemies []*fakeUnit, friendlies []*fakeFriendly) *Snapshot {
	s := &Snapshot{World: w}
	for _, e := range enemies {
		s.Enemies = append(s.Enemies, e)
	}
	for _, f := range friendlies {
		s.Friendlies = append(s.Friendlies, f)
	}
	return s
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
