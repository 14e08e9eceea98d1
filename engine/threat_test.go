package engine

import (
	"testing"

	"github.com/nstehr/ctz-core/model"
)

func TestPotentialDamageAt(t *testing.T) {
	w := newFakeWorld(10, 10)
	target := model.Position{X: 0, Y: 0}

	tests := []struct {
		name    string
		enemies []*fakeUnit
		want    int
	}{
		{"no enemies", nil, 0},
		{"out of range", []*fakeUnit{newEnemy(0, model.Position{X: 6, Y: 0}, 100, weapon(10, 5))}, 0},
		{"one in range", []*fakeUnit{newEnemy(0, model.Position{X: 3, Y: 0}, 100, weapon(10, 5))}, 10},
		{"two in range", []*fakeUnit{
			newEnemy(0, model.Position{X: 3, Y: 0}, 100, weapon(10, 5)),
			newEnemy(1, model.Position{X: 0, Y: 2}, 100, weapon(15, 3)),
		}, 50},
		{"dead enemy ignored", []*fakeUnit{
			newEnemy(0, model.Position{X: 3, Y: 0}, 100, weapon(10, 5)),
			newEnemy(1, model.Position{X: 0, Y: 2}, 0, weapon(15, 3)),
		}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewThreatModel(snapshot(w, tt.enemies, nil), DefaultParams())
			if got := tm.PotentialDamageAt(target); got != tt.want {
				t.Errorf("PotentialDamageAt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPotentialDamageDealtFrom(t *testing.T) {
	w := newFakeWorld(12, 12)
	f0 := newFriendly(w, 0, model.Position{X: 0, Y: 0}, 100, weapon(15, 5))
	f1 := newFriendly(w, 1, model.Position{X: 10, Y: 10}, 100, weapon(25, 3))
	enemy := newEnemy(0, model.Position{X: 3, Y: 0}, 100, weapon(10, 1))
	tm := NewThreatModel(snapshot(w, []*fakeUnit{enemy}, []*fakeFriendly{f0, f1}), DefaultParams())

	if got := tm.PotentialDamageDealtFrom(0, f0.pos); got != 150 {
		t.Errorf("lone shooter: got %d, want 150", got)
	}
	// Unit 1 cannot reach the enemy, so unit 0's damage does not count for it.
	if got := tm.PotentialDamageDealtFrom(1, f1.pos); got != 0 {
		t.Errorf("unit 1 out of range: got %d, want 0", got)
	}
	// Moving unit 1 into range doubles up: (15+25)*2 damage.
	if got := tm.PotentialDamageDealtFrom(1, model.Position{X: 4, Y: 1}); got != 800 {
		t.Errorf("focused fire: got %d, want 800", got)
	}

	enemy.health = 60
	if got := tm.PotentialDamageDealtFrom(1, model.Position{X: 4, Y: 1}); got != 900 {
		t.Errorf("lethal focused fire: got %d, want 900", got)
	}
}

func TestDamagePoints(t *testing.T) {
	tm := NewThreatModel(&Snapshot{}, DefaultParams())
	tests := []struct {
		damage, health, want int
	}{
		{0, 0, 0},
		{0, 50, 0},
		{10, 50, 100},
		{50, 50, 600},
		{60, 50, 700},
	}
	for _, tt := range tests {
		if got := tm.DamagePoints(tt.damage, tt.health); got != tt.want {
			t.Errorf("DamagePoints(%d, %d) = %d, want %d", tt.damage, tt.health, got, tt.want)
		}
	}
}

func TestPotentialDamageDealtFromOnlyReachableEnemies(t *testing.T) {
	w := newFakeWorld(20, 20)
	f0 := newFriendly(w, 0, model.Position{X: 10, Y: 10}, 100, weapon(15, 2))
	f1 := newFriendly(w, 1, model.Position{X: 0, Y: 0}, 100, weapon(15, 5))
	f2 := newFriendly(w, 2, model.Position{X: 2, Y: 0}, 100, weapon(25, 5))
	covered := newEnemy(0, model.Position{X: 1, Y: 0}, 100, weapon(10, 1))
	distant := newEnemy(1, model.Position{X: 13, Y: 10}, 100, weapon(10, 1))
	tm := NewThreatModel(snapshot(w, []*fakeUnit{covered, distant}, []*fakeFriendly{f0, f1, f2}), DefaultParams())

	here := tm.PotentialDamageDealtFrom(0, f0.pos)
	east := tm.PotentialDamageDealtFrom(0, model.East.MovePoint(f0.pos))
	if here != 0 {
		t.Errorf("here: got %d, want 0", here)
	}
	if east != 150 {
		t.Errorf("east: got %d, want 150", east)
	}

	// The allies' own view still sees the enemy they cover: (15+25)*2 damage.
	if got := tm.PotentialDamageDealtFrom(1, f1.pos); got != 800 {
		t.Errorf("covering unit: got %d, want 800", got)
	}
}
