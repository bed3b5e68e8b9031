package chess

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIllegalMove = errors.New("illegal move")

// Board is a rows x cols box grid. Horizontal edges live on a
// (rows+1) x cols lattice, vertical edges on rows x (cols+1), both
// row-major in flat arrays. owner holds the claiming player per box,
// 0 while unclaimed.
type Board struct {
	Rows int
	Cols int

	horizontal []bool
	vertical   []bool
	owner      []Turn
	placed     int
}

func NewBoard(rows, cols int) (newBoard Board) {
	return Board{
		Rows:       rows,
		Cols:       cols,
		horizontal: make([]bool, (rows+1)*cols),
		vertical:   make([]bool, rows*(cols+1)),
		owner:      make([]Turn, rows*cols),
	}
}

func (b Board) hIndex(r, c int) int {
	return r*b.Cols + c
}

func (b Board) vIndex(r, c int) int {
	return r*(b.Cols+1) + c
}

func (b Board) boxIndex(r, c int) int {
	return r*b.Cols + c
}

// Clone returns a board whose edge and owner storage is independent of b.
func (b Board) Clone() (newBoard Board) {
	newBoard = Board{
		Rows:       b.Rows,
		Cols:       b.Cols,
		horizontal: make([]bool, len(b.horizontal)),
		vertical:   make([]bool, len(b.vertical)),
		owner:      make([]Turn, len(b.owner)),
		placed:     b.placed,
	}

	copy(newBoard.horizontal, b.horizontal)
	copy(newBoard.vertical, b.vertical)
	copy(newBoard.owner, b.owner)
	return
}

func (b Board) HasEdge(m Move) bool {
	if m.Orient == Horizontal {
		return b.horizontal[b.hIndex(m.Row, m.Col)]
	}
	return b.vertical[b.vIndex(m.Row, m.Col)]
}

func (b Board) TotalEdges() int {
	return (b.Rows+1)*b.Cols + b.Rows*(b.Cols+1)
}

func (b Board) PlacedEdges() int {
	return b.placed
}

func (b Board) IsTerminal() bool {
	return b.placed == b.TotalEdges()
}

func (b Board) Owner(r, c int) Turn {
	return b.owner[b.boxIndex(r, c)]
}

func (b Board) Score(player Turn) (score int) {
	for _, o := range b.owner {
		if o == player {
			score++
		}
	}
	return
}

// EdgesInBox counts the placed edges bounding box (r, c).
func (b Board) EdgesInBox(r, c int) (count int) {
	if b.horizontal[b.hIndex(r, c)] {
		count++
	}
	if b.horizontal[b.hIndex(r+1, c)] {
		count++
	}
	if b.vertical[b.vIndex(r, c)] {
		count++
	}
	if b.vertical[b.vIndex(r, c+1)] {
		count++
	}
	return
}

// ThreeSidedBoxes counts unclaimed boxes one edge away from completion.
// The count is global: it does not depend on whose turn follows.
func (b Board) ThreeSidedBoxes() (count int) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.owner[b.boxIndex(r, c)] == 0 && b.EdgesInBox(r, c) == 3 {
				count++
			}
		}
	}
	return
}

func (b Board) FreeMoveCount() int {
	return b.TotalEdges() - b.placed
}

// FreeMoves enumerates every unplaced edge: horizontal edges row-major,
// then vertical edges row-major. The order is fixed; search uses it as
// the tie-break.
func (b Board) FreeMoves() (moves []Move) {
	for r := 0; r <= b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if !b.horizontal[b.hIndex(r, c)] {
				moves = append(moves, Move{Orient: Horizontal, Row: r, Col: c})
			}
		}
	}

	for r := 0; r < b.Rows; r++ {
		for c := 0; c <= b.Cols; c++ {
			if !b.vertical[b.vIndex(r, c)] {
				moves = append(moves, Move{Orient: Vertical, Row: r, Col: c})
			}
		}
	}

	return
}

func (b Board) checkMove(m Move) error {
	switch m.Orient {
	case Horizontal:
		if m.Row < 0 || m.Row > b.Rows || m.Col < 0 || m.Col >= b.Cols {
			return fmt.Errorf("horizontal edge %v out of range: %w", m, ErrIllegalMove)
		}
		if b.horizontal[b.hIndex(m.Row, m.Col)] {
			return fmt.Errorf("edge %v already placed: %w", m, ErrIllegalMove)
		}
	case Vertical:
		if m.Row < 0 || m.Row >= b.Rows || m.Col < 0 || m.Col > b.Cols {
			return fmt.Errorf("vertical edge %v out of range: %w", m, ErrIllegalMove)
		}
		if b.vertical[b.vIndex(m.Row, m.Col)] {
			return fmt.Errorf("edge %v already placed: %w", m, ErrIllegalMove)
		}
	default:
		return fmt.Errorf("orientation %d: %w", m.Orient, ErrIllegalMove)
	}

	return nil
}

// nearBoxes returns the in-range boxes bounded by edge m, at most two.
func (b Board) nearBoxes(m Move) (boxes [][2]int) {
	if m.Orient == Horizontal {
		if m.Row > 0 {
			boxes = append(boxes, [2]int{m.Row - 1, m.Col})
		}
		if m.Row < b.Rows {
			boxes = append(boxes, [2]int{m.Row, m.Col})
		}
		return
	}

	if m.Col > 0 {
		boxes = append(boxes, [2]int{m.Row, m.Col - 1})
	}
	if m.Col < b.Cols {
		boxes = append(boxes, [2]int{m.Row, m.Col})
	}
	return
}

// Apply places edge m for mover and claims every box it completes.
// It returns the resulting board and the number of boxes claimed
// (0, 1 or 2); b itself is never modified. An out-of-range or already
// placed edge yields ErrIllegalMove and the original board.
func (b Board) Apply(m Move, mover Turn) (newBoard Board, captured int, err error) {
	if err = b.checkMove(m); err != nil {
		return b, 0, err
	}

	newBoard = b.Clone()
	if m.Orient == Horizontal {
		newBoard.horizontal[newBoard.hIndex(m.Row, m.Col)] = true
	} else {
		newBoard.vertical[newBoard.vIndex(m.Row, m.Col)] = true
	}
	newBoard.placed++

	for _, box := range newBoard.nearBoxes(m) {
		i := newBoard.boxIndex(box[0], box[1])
		if newBoard.owner[i] == 0 && newBoard.EdgesInBox(box[0], box[1]) == 4 {
			newBoard.owner[i] = mover
			captured++
		}
	}

	return
}

func (b Board) String() string {
	var builder strings.Builder
	for r := 0; r <= b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			builder.WriteString("+")
			if b.horizontal[b.hIndex(r, c)] {
				builder.WriteString("--")
			} else {
				builder.WriteString("  ")
			}
		}
		builder.WriteString("+\n")

		if r == b.Rows {
			break
		}

		for c := 0; c <= b.Cols; c++ {
			if b.vertical[b.vIndex(r, c)] {
				builder.WriteString("|")
			} else {
				builder.WriteString(" ")
			}

			if c < b.Cols {
				switch b.owner[b.boxIndex(r, c)] {
				case Player1:
					builder.WriteString("1 ")
				case Player2:
					builder.WriteString("2 ")
				default:
					builder.WriteString("  ")
				}
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
