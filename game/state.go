package game

import (
	"fmt"
	"strings"
)

const (
	DefaultRows    = 6
	DefaultColumns = 7
)

// State is a connect-four position: the grid and the player to move.
// Row 0 is the top of the board; pieces fall towards the last row.
type State struct {
	geometry      *Geometry
	cells         []Player // row-major, None for empty
	CurrentPlayer Player
}

// NewState returns an empty default-sized board. A starting player of None
// means First starts.
func NewState(starting Player) *State {
	return NewStateWithSize(DefaultRows, DefaultColumns, starting)
}

// NewStateWithSize returns an empty rows x columns board.
func NewStateWithSize(rows, columns int, starting Player) *State {
	if rows < 1 || columns < 1 {
		panic(fmt.Sprintf("invalid board size %dx%d", rows, columns))
	}
	if starting == None {
		starting = First
	}
	return &State{
		geometry:      geometryFor(rows, columns),
		cells:         make([]Player, rows*columns),
		CurrentPlayer: starting,
	}
}

// ParseState builds a state from rows listed top to bottom, using '.' for
// empty, 'X' for First and 'O' for Second. Floating pieces are rejected.
func ParseState(rows []string, current Player) (*State, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse state: empty board")
	}
	s := NewStateWithSize(len(rows), len(rows[0]), current)
	for r, line := range rows {
		if len(line) != s.Columns() {
			return nil, fmt.Errorf("parse state: row %d has %d columns, want %d", r, len(line), s.Columns())
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '.':
			case 'X', 'x':
				s.cells[s.geometry.index(r, c)] = First
			case 'O', 'o':
				s.cells[s.geometry.index(r, c)] = Second
			default:
				return nil, fmt.Errorf("parse state: unexpected symbol %q at row %d column %d", line[c], r, c)
			}
		}
	}
	for c := 0; c < s.Columns(); c++ {
		for r := 1; r < s.Rows(); r++ {
			if s.Cell(r-1, c) != None && s.Cell(r, c) == None {
				return nil, fmt.Errorf("parse state: floating piece in column %d", c)
			}
		}
	}
	return s, nil
}

// Copy returns an independent clone sharing only the immutable geometry.
func (s *State) Copy() *State {
	cells := make([]Player, len(s.cells))
	copy(cells, s.cells)
	return &State{
		geometry:      s.geometry,
		cells:         cells,
		CurrentPlayer: s.CurrentPlayer,
	}
}

func (s *State) Rows() int {
	return s.geometry.Rows
}

func (s *State) Columns() int {
	return s.geometry.Columns
}

func (s *State) Segments() []Segment {
	return s.geometry.Segments
}

func (s *State) Cell(row, column int) Player {
	return s.cells[s.geometry.index(row, column)]
}

// At returns the cell at a flat index, as stored in a Segment.
func (s *State) At(index int) Player {
	return s.cells[index]
}

// Height returns the number of pieces in a column.
func (s *State) Height(column int) int {
	height := 0
	for r := s.Rows() - 1; r >= 0 && s.Cell(r, column) != None; r-- {
		height++
	}
	return height
}

// IsValidMove reports whether column is on the board and not full.
func (s *State) IsValidMove(column int) bool {
	if column < 0 || column >= s.Columns() {
		return false
	}
	return s.Cell(0, column) == None
}

// PlayMove drops the current player's piece into column. It reports false,
// leaving the state untouched, if the column is full or out of range.
func (s *State) PlayMove(column int) bool {
	if !s.IsValidMove(column) {
		return false
	}
	for r := s.Rows() - 1; r >= 0; r-- {
		i := s.geometry.index(r, column)
		if s.cells[i] == None {
			s.cells[i] = s.CurrentPlayer
			return true
		}
	}
	return false
}

// Play is PlayMove followed by SwitchTurn, reporting ErrInvalidMove on failure.
func (s *State) Play(column int) error {
	if !s.PlayMove(column) {
		return fmt.Errorf("column %d for %s player: %w", column, s.CurrentPlayer, ErrInvalidMove)
	}
	s.SwitchTurn()
	return nil
}

func (s *State) SwitchTurn() {
	s.CurrentPlayer = s.CurrentPlayer.Opponent()
}

// ValidMoves lists playable columns in ascending order. Every search uses
// this order for iteration and tie-breaks.
func (s *State) ValidMoves() []int {
	moves := make([]int, 0, s.Columns())
	for c := 0; c < s.Columns(); c++ {
		if s.IsValidMove(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// CheckWin scans every segment for four identical pieces, returning the first
// match. Without a winner the game is over only when the grid is full.
func (s *State) CheckWin() Outcome {
	if segment, ok := s.WinningSegment(); ok {
		return Outcome{Ended: true, Winner: s.cells[segment.Cells[0]]}
	}
	if s.CheckTie() {
		return Outcome{Ended: true, Winner: None}
	}
	return Outcome{}
}

// WinningSegment returns the first segment in scan order filled by a single
// player.
func (s *State) WinningSegment() (Segment, bool) {
	for _, segment := range s.geometry.Segments {
		if s.owner(segment) != None {
			return segment, true
		}
	}
	return Segment{}, false
}

// owner returns the player filling the whole segment, or None.
func (s *State) owner(segment Segment) Player {
	first := s.cells[segment.Cells[0]]
	if first == None {
		return None
	}
	for _, i := range segment.Cells[1:] {
		if s.cells[i] != first {
			return None
		}
	}
	return first
}

// CheckTie reports whether every cell is occupied.
func (s *State) CheckTie() bool {
	for c := 0; c < s.Columns(); c++ {
		if s.Cell(0, c) == None {
			return false
		}
	}
	return true
}

func (s *State) IsOver() bool {
	return s.CheckWin().Ended
}

// Pieces counts the pieces on the board.
func (s *State) Pieces() int {
	n := 0
	for _, cell := range s.cells {
		if cell != None {
			n++
		}
	}
	return n
}

func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Columns(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.Cell(r, c).symbol())
		}
		b.WriteByte('\n')
	}
	for c := 0; c < s.Columns(); c++ {
		if c > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(c % 10))
	}
	b.WriteByte('\n')
	return b.String()
}
