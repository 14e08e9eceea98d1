package model

import "testing"

// 5x5 board with a vertical wall at x=2 for y=0..3, leaving a gap at y=4.
func testBoard() *Board {
	return NewBoard(BoardData{
		Cols: 5,
		Rows: 5,
		Walls: []Position{
			{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3},
		},
	}, nil, nil)
}

func TestBoardAt(t *testing.T) {
	b := testBoard()

	tests := []struct {
		p    Position
		want Tile
	}{
		{Position{0, 0}, Floor},
		{Position{2, 0}, Wall},
		{Position{2, 4}, Floor},
		{Position{4, 4}, Floor},
	}
	for _, tc := range tests {
		if got := b.At(tc.p); got != tc.want {
			t.Errorf("At(%v) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestBoardAtOutOfBounds(t *testing.T) {
	b := testBoard()

	// Out-of-bounds reads as Wall so nothing walks off the map.
	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if got := b.At(p); got != Wall {
			t.Errorf("At(%v) = %d, want Wall", p, got)
		}
	}
}

func TestBoardPathLength(t *testing.T) {
	b := testBoard()

	tests := []struct {
		from, to Position
		want     int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{1, 1}, 1},
		{Position{0, 0}, Position{0, 4}, 4},
		// Around the wall through the gap at (2,4).
		{Position{1, 0}, Position{3, 0}, 8},
		{Position{0, 0}, Position{2, 2}, Unreachable},
		{Position{-1, 0}, Position{0, 0}, Unreachable},
	}
	for _, tc := range tests {
		if got := b.PathLength(tc.from, tc.to); got != tc.want {
			t.Errorf("PathLength(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBoardNextDirectionTowards(t *testing.T) {
	b := testBoard()

	if got := b.NextDirectionTowards(Position{1, 0}, Position{1, 3}); got != South {
		t.Errorf("NextDirectionTowards down column = %q, want south", got)
	}
	// Diagonal through the gap under the wall.
	if got := b.NextDirectionTowards(Position{1, 3}, Position{3, 3}); got != SouthEast {
		t.Errorf("NextDirectionTowards around wall = %q, want south_east", got)
	}
	if got := b.NextDirectionTowards(Position{1, 1}, Position{1, 1}); got != Nowhere {
		t.Errorf("NextDirectionTowards to self = %q, want Nowhere", got)
	}
}

func TestBoardLineOfSight(t *testing.T) {
	b := testBoard()

	if !b.LineOfSight(Position{0, 0}, Position{0, 4}) {
		t.Error("open column should have line of sight")
	}
	if b.LineOfSight(Position{0, 1}, Position{4, 1}) {
		t.Error("wall at (2,1) should block line of sight")
	}
	if !b.LineOfSight(Position{0, 4}, Position{4, 4}) {
		t.Error("gap row should have line of sight")
	}
}

func TestBoardCanShooterShootTarget(t *testing.T) {
	b := testBoard()

	if !b.CanShooterShootTarget(Position{0, 0}, Position{0, 3}, 3) {
		t.Error("target 3 tiles away should be in range 3")
	}
	if b.CanShooterShootTarget(Position{0, 0}, Position{0, 4}, 3) {
		t.Error("target 4 tiles away should be out of range 3")
	}
	if b.CanShooterShootTarget(Position{1, 1}, Position{3, 1}, 5) {
		t.Error("wall should block the shot")
	}
}

func TestBoardPickupAt(t *testing.T) {
	b := NewBoard(BoardData{Cols: 3, Rows: 3}, nil, []Pickup{
		{Position: Position{1, 1}, Type: RepairKit},
	})

	pk, ok := b.PickupAt(Position{1, 1})
	if !ok || pk.Type != RepairKit {
		t.Errorf("PickupAt(1,1) = %v, %v; want repair kit", pk, ok)
	}
	if _, ok := b.PickupAt(Position{0, 0}); ok {
		t.Error("PickupAt(0,0) should be empty")
	}
}

func TestDirectionMovePoint(t *testing.T) {
	origin := Position{3, 3}
	tests := []struct {
		d    Direction
		want Position
	}{
		{North, Position{3, 2}},
		{SouthEast, Position{4, 4}},
		{West, Position{2, 3}},
		{Nowhere, Position{3, 3}},
	}
	for _, tc := range tests {
		if got := tc.d.MovePoint(origin); got != tc.want {
			t.Errorf("%q.MovePoint = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestTeamOpposite(t *testing.T) {
	if TeamAmber.Opposite() != TeamBlue || TeamBlue.Opposite() != TeamAmber {
		t.Error("amber and blue should be opposites")
	}
	if TeamNone.Opposite() != TeamNone {
		t.Error("neutral has no opposite")
	}
}

func TestPickupWeapon(t *testing.T) {
	if w, ok := RailGunPickup.Weapon(); !ok || w != RailGun {
		t.Errorf("RailGunPickup.Weapon() = %q, %v", w, ok)
	}
	if _, ok := RepairKit.Weapon(); ok {
		t.Error("repair kit is not a weapon")
	}
}

func TestBoardDataValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    BoardData
		wantErr bool
	}{
		{"ok", BoardData{Cols: 5, Rows: 5}, false},
		{"single tile", BoardData{Cols: 1, Rows: 1}, false},
		{"at limit", BoardData{Cols: 256, Rows: 256}, false},
		{"negative", BoardData{Cols: -3, Rows: 2}, true},
		{"zero", BoardData{Cols: 0, Rows: 7}, true},
		{"over limit", BoardData{Cols: 257, Rows: 256}, true},
		{"overflowing product", BoardData{Cols: MaxBoardTiles, Rows: MaxBoardTiles}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
