package engine

import (
	"testing"

	"github.com/nstehr/ctz-core/model"
)

func pickupValuator(w *fakeWorld, enemies []*fakeUnit, friendlies []*fakeFriendly) PickupValuator {
	snap := snapshot(w, enemies, friendlies)
	params := DefaultParams()
	return NewPickupValuator(snap, params, NewThreatModel(snap, params))
}

func TestPointsForRepairKit(t *testing.T) {
	origin := model.Position{X: 0, Y: 0}
	tests := []struct {
		name    string
		enemies []*fakeUnit
		want    int
	}{
		{"safe", nil, 250},
		{"light fire", []*fakeUnit{newEnemy(0, model.Position{X: 2, Y: 0}, 100, weapon(5, 3))}, 200},
		{"heavy fire", []*fakeUnit{newEnemy(0, model.Position{X: 2, Y: 0}, 100, weapon(20, 3))}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newFakeWorld(5, 5)
			w.pickups = []model.Pickup{{Position: origin, Type: model.RepairKit}}
			f := newFriendly(w, 0, origin, 100, weapon(15, 5))
			v := pickupValuator(w, tt.enemies, []*fakeFriendly{f})
			if got := v.PointsForPickup(0); got != tt.want {
				t.Errorf("PointsForPickup = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPointsForPickupEmptyTile(t *testing.T) {
	w := newFakeWorld(5, 5)
	f := newFriendly(w, 0, model.Position{}, 100, weapon(15, 5))
	if got := pickupValuator(w, nil, []*fakeFriendly{f}).PointsForPickup(0); got != 0 {
		t.Errorf("PointsForPickup on empty tile = %d, want 0", got)
	}
}

func TestShieldPickupValue(t *testing.T) {
	w := newFakeWorld(5, 5)
	f := newFriendly(w, 0, model.Position{}, 30, weapon(15, 5))
	killer := newEnemy(0, model.Position{X: 2, Y: 0}, 100, weapon(40, 5))

	if got := pickupValuator(w, nil, []*fakeFriendly{f}).ValueOf(0, model.ShieldPickup); got != 100 {
		t.Errorf("safe unit: got %d, want 100", got)
	}
	if got := pickupValuator(w, []*fakeUnit{killer}, []*fakeFriendly{f}).ValueOf(0, model.ShieldPickup); got != 0 {
		t.Errorf("dying unit without mainframe: got %d, want 0", got)
	}

	w.cps = []model.ControlPoint{{Name: "core", Position: model.Position{X: 4, Y: 4}, Owner: model.TeamAmber, Mainframe: true}}
	if got := pickupValuator(w, []*fakeUnit{killer}, []*fakeFriendly{f}).ValueOf(0, model.ShieldPickup); got != 100 {
		t.Errorf("dying unit with mainframe: got %d, want 100", got)
	}
}

func TestWeaponPickupValue(t *testing.T) {
	w := newFakeWorld(5, 5)
	laser := newFriendly(w, 0, model.Position{}, 100, model.LaserRifle.Stats())
	rail := newFriendly(w, 1, model.Position{X: 4, Y: 4}, 100, model.RailGun.Stats())
	v := pickupValuator(w, nil, []*fakeFriendly{laser, rail})

	upgrade := v.ValueOf(0, model.RailGunPickup)
	same := v.ValueOf(0, model.LaserRiflePickup)
	if upgrade <= same {
		t.Errorf("upgrade %d should beat same weapon %d", upgrade, same)
	}
	if same != 5 {
		t.Errorf("same weapon = %d, want 5", same)
	}
	if got := v.ValueOf(1, model.LaserRiflePickup); got != 0 {
		t.Errorf("downgrade = %d, want 0", got)
	}
	if v.ValueOf(0, model.ScatterGunPickup) <= v.ValueOf(0, model.MiniBlasterPickup) {
		t.Error("scatter gun should be worth more than mini blaster to a laser rifle")
	}
}

func TestWeaponPickupValueUsesParamsTable(t *testing.T) {
	w := newFakeWorld(5, 5)
	laser := newFriendly(w, 0, model.Position{}, 100, model.LaserRifle.Stats())
	snap := snapshot(w, nil, []*fakeFriendly{laser})

	params := DefaultParams()
	params.WeaponUpgrades = map[model.WeaponType]map[model.WeaponType]int{
		model.LaserRifle: {model.MiniBlaster: 300, model.RailGun: -40},
	}
	params.Validate()
	v := NewPickupValuator(snap, params, NewThreatModel(snap, params))

	if got := v.ValueOf(0, model.MiniBlasterPickup); got != 300 {
		t.Errorf("mini blaster = %d, want 300", got)
	}
	if got := v.ValueOf(0, model.RailGunPickup); got != 0 {
		t.Errorf("negative entry = %d, want clamped to 0", got)
	}
	if got := v.ValueOf(0, model.ScatterGunPickup); got != 0 {
		t.Errorf("entry missing from table = %d, want 0", got)
	}
}

func TestValidateDefaultsWeaponUpgrades(t *testing.T) {
	var p Params
	p.Validate()
	if got := p.WeaponUpgrades[model.LaserRifle][model.RailGun]; got != 120 {
		t.Errorf("laser rifle -> rail gun = %d, want 120", got)
	}

	table := map[model.WeaponType]map[model.WeaponType]int{model.ScatterGun: {model.RailGun: 70}}
	p = Params{WeaponUpgrades: table}
	p.Validate()
	p.WeaponUpgrades[model.ScatterGun][model.RailGun] = 1
	if table[model.ScatterGun][model.RailGun] != 70 {
		t.Error("Validate should copy the caller's table")
	}
}
