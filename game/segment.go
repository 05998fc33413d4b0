package game

import "sync"

// Direction is the orientation of a Segment. The zero value is no direction.
type Direction int8

const (
	Horizontal Direction = iota + 1
	Vertical
	Diagonal     // down-right
	AntiDiagonal // up-right
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "none"
	}
}

// Segment is a line of WinLength cells, stored as flat board indices.
type Segment struct {
	Direction Direction
	Cells     [WinLength]int
}

// Geometry is the immutable shape of a board. It is shared by every state
// cloned from the same game.
type Geometry struct {
	Rows     int
	Columns  int
	Segments []Segment
}

type shape struct {
	rows, columns int
}

var geometries sync.Map // shape -> *Geometry

// geometryFor returns the cached geometry for a board shape, enumerating its
// segments on first use.
func geometryFor(rows, columns int) *Geometry {
	key := shape{rows, columns}
	if g, ok := geometries.Load(key); ok {
		return g.(*Geometry)
	}
	g, _ := geometries.LoadOrStore(key, newGeometry(rows, columns))
	return g.(*Geometry)
}

// newGeometry enumerates segments in scan order: rows, columns, then both
// diagonal families.
func newGeometry(rows, columns int) *Geometry {
	g := &Geometry{Rows: rows, Columns: columns}
	span := WinLength - 1

	for r := 0; r < rows; r++ {
		for c := 0; c+span < columns; c++ {
			g.add(Horizontal, r, c, 0, 1)
		}
	}
	for c := 0; c < columns; c++ {
		for r := 0; r+span < rows; r++ {
			g.add(Vertical, r, c, 1, 0)
		}
	}
	for r := 0; r+span < rows; r++ {
		for c := 0; c+span < columns; c++ {
			g.add(Diagonal, r, c, 1, 1)
		}
	}
	for r := span; r < rows; r++ {
		for c := 0; c+span < columns; c++ {
			g.add(AntiDiagonal, r, c, -1, 1)
		}
	}
	return g
}

func (g *Geometry) add(direction Direction, row, column, dRow, dColumn int) {
	s := Segment{Direction: direction}
	for i := 0; i < WinLength; i++ {
		s.Cells[i] = g.index(row+i*dRow, column+i*dColumn)
	}
	g.Segments = append(g.Segments, s)
}

func (g *Geometry) index(row, column int) int {
	return row*g.Columns + column
}
