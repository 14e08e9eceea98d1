package model

// Tile classifies a single board cell.
type Tile byte

const (
	Floor Tile = 0 // passable
	Wall  Tile = 1 // blocks movement and line of sight
)

// Unreachable is the path length reported between tiles with no path.
const Unreachable = 1 << 20

// Board is the world oracle built from a turn snapshot: tile layout plus the
// control points and pickups currently on the map. Path lengths are computed
// with a breadth-first search over 8-connected moves and cached per target,
// so a Board must not be shared between goroutines.
type Board struct {
	Cols int
	Rows int
	Grid []Tile // row-major: Grid[y*Cols + x]

	controlPoints []ControlPoint
	pickups       []Pickup
	distCache     map[Position][]int
}

// NewBoard builds a board from the static layout and this turn's objects.
func NewBoard(data BoardData, cps []ControlPoint, pickups []Pickup) *Board {
	b := &Board{
		Cols:          data.Cols,
		Rows:          data.Rows,
		Grid:          make([]Tile, data.Cols*data.Rows),
		controlPoints: cps,
		pickups:       pickups,
		distCache:     make(map[Position][]int),
	}
	for _, w := range data.Walls {
		if b.InBounds(w) {
			b.Grid[w.Y*b.Cols+w.X] = Wall
		}
	}
	return b
}

func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// At returns the tile at p. Out-of-bounds coordinates read as Wall.
func (b *Board) At(p Position) Tile {
	if !b.InBounds(p) {
		return Wall
	}
	return b.Grid[p.Y*b.Cols+p.X]
}

func (b *Board) Passable(p Position) bool {
	return b.At(p) == Floor
}

func (b *Board) ControlPoints() []ControlPoint { return b.controlPoints }

func (b *Board) Pickups() []Pickup { return b.pickups }

// PickupAt returns the pickup lying on p, if any.
func (b *Board) PickupAt(p Position) (Pickup, bool) {
	for _, pk := range b.pickups {
		if pk.Position == p {
			return pk, true
		}
	}
	return Pickup{}, false
}

// PathLength returns the number of steps on the shortest walkable path, or
// Unreachable.
func (b *Board) PathLength(from, to Position) int {
	if !b.InBounds(from) {
		return Unreachable
	}
	return b.distancesTo(to)[from.Y*b.Cols+from.X]
}

// NextDirectionTowards returns the first step of a shortest path from from to
// to, or Nowhere when already there or no path exists.
func (b *Board) NextDirectionTowards(from, to Position) Direction {
	if !b.InBounds(from) {
		return Nowhere
	}
	dist := b.distancesTo(to)
	best := Nowhere
	bestDist := dist[from.Y*b.Cols+from.X]
	for _, d := range directions {
		n := d.MovePoint(from)
		if !b.Passable(n) {
			continue
		}
		if nd := dist[n.Y*b.Cols+n.X]; nd < bestDist {
			best, bestDist = d, nd
		}
	}
	return best
}

// WithinRange uses king-move distance: a weapon of range r covers every tile
// at most r steps away in any of the eight directions.
func WithinRange(a, b Position, r int) bool {
	return max(abs(a.X-b.X), abs(a.Y-b.Y)) <= r
}

// LineOfSight walks the Bresenham line between a and b; any wall strictly
// between the endpoints blocks it.
func (b *Board) LineOfSight(from, to Position) bool {
	dx, dy := abs(to.X-from.X), -abs(to.Y-from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	errTerm := dx + dy
	p := from
	for p != to {
		if p != from && b.At(p) == Wall {
			return false
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			p.X += sx
		}
		if e2 <= dx {
			errTerm += dx
			p.Y += sy
		}
	}
	return true
}

// CanShooterShootTarget reports whether a weapon of the given range fired
// from shooter reaches target.
func (b *Board) CanShooterShootTarget(shooter, target Position, weaponRange int) bool {
	return WithinRange(shooter, target, weaponRange) && b.LineOfSight(shooter, target)
}

func (b *Board) distancesTo(target Position) []int {
	if d, ok := b.distCache[target]; ok {
		return d
	}
	dist := make([]int, b.Cols*b.Rows)
	for i := range dist {
		dist[i] = Unreachable
	}
	b.distCache[target] = dist
	if !b.Passable(target) {
		return dist
	}

	dist[target.Y*b.Cols+target.X] = 0
	queue := []Position{target}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		next := dist[p.Y*b.Cols+p.X] + 1
		for _, d := range directions {
			n := d.MovePoint(p)
			if !b.Passable(n) || dist[n.Y*b.Cols+n.X] != Unreachable {
				continue
			}
			dist[n.Y*b.Cols+n.X] = next
			queue = append(queue, n)
		}
	}
	return dist
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
