package chess

import "fmt"

// Orientation distinguishes the two edge lattices. The values match the
// wire protocol's first move field.
type Orientation int32

const (
	Horizontal Orientation = 0
	Vertical   Orientation = 1
)

func (o Orientation) String() string {
	if o == Vertical {
		return "V"
	}
	return "H"
}

// Move is one edge, addressed on its lattice. A horizontal edge at
// (r, c) joins dots (r, c) and (r, c+1); a vertical edge joins (r, c)
// and (r+1, c).
type Move struct {
	Orient Orientation
	Row    int
	Col    int
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Orient, m.Row, m.Col)
}

// NewMoveFromDots builds the move joining two lattice dots. The dots
// may come in either order; non-adjacent dots are rejected.
func NewMoveFromDots(r1, c1, r2, c2 int) (Move, error) {
	switch {
	case r1 == r2 && abs(c1-c2) == 1:
		return Move{Orient: Horizontal, Row: r1, Col: min(c1, c2)}, nil
	case c1 == c2 && abs(r1-r2) == 1:
		return Move{Orient: Vertical, Row: min(r1, r2), Col: c1}, nil
	}
	return Move{}, fmt.Errorf("dots (%d,%d) and (%d,%d) are not adjacent: %w", r1, c1, r2, c2, ErrIllegalMove)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
