package systems

import (
	"math"

	"github.com/pthm-cable/aquarium/vector"
)

// Neighbor holds a nearby agent with precomputed spatial data.
type Neighbor struct {
	Index  int            // index into the population the grid was built from
	Delta  vector.Vector2 // offset from the query origin
	DistSq float64
}

// MaxQueryResults caps the number of neighbors returned by spatial queries.
// This prevents density spikes from causing unbounded work.
const MaxQueryResults = 64

type cellKey struct {
	col, row int
}

type gridEntry struct {
	index int
	pos   vector.Vector2
}

// SpatialGrid is a sparse hash grid over an unbounded plane.
// Fish roam freely, so cells are created on demand instead of preallocated.
type SpatialGrid struct {
	cellSize float64
	cells    map[cellKey][]gridEntry
}

// NewSpatialGrid creates a grid with square cells of the given size.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]gridEntry),
	}
}

// Clear empties the grid, keeping cell storage for reuse.
func (g *SpatialGrid) Clear() {
	for k, c := range g.cells {
		g.cells[k] = c[:0]
	}
}

// Insert adds population index i at position p.
func (g *SpatialGrid) Insert(i int, p vector.Vector2) {
	k := g.key(p)
	g.cells[k] = append(g.cells[k], gridEntry{index: i, pos: p})
}

// QueryRadiusInto appends to dst every entry within radius of p, except
// exclude, up to MaxQueryResults. Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, p vector.Vector2, radius float64, exclude int) []Neighbor {
	reach := int(math.Ceil(radius / g.cellSize))
	center := g.key(p)
	radiusSq := radius * radius

	for dc := -reach; dc <= reach; dc++ {
		for dr := -reach; dr <= reach; dr++ {
			for _, e := range g.cells[cellKey{center.col + dc, center.row + dr}] {
				if e.index == exclude {
					continue
				}
				delta := e.pos.Sub(p)
				d := delta.LengthSqr()
				if d > radiusSq {
					continue
				}
				dst = append(dst, Neighbor{Index: e.index, Delta: delta, DistSq: d})
				if len(dst) >= MaxQueryResults {
					return dst
				}
			}
		}
	}
	return dst
}

func (g *SpatialGrid) key(p vector.Vector2) cellKey {
	return cellKey{
		col: int(math.Floor(p.X / g.cellSize)),
		row: int(math.Floor(p.Y / g.cellSize)),
	}
}
