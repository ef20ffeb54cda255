package day04

// Size is the width and height of a board.
const Size = 5

// Cell is one square of a board.
type Cell struct {
	Value  int
	Marked bool
}

// Coord addresses a cell.
type Coord struct {
	Row, Col int
}

// Board is a bingo card. Once a row or column is fully marked the board has
// won and stays won.
type Board struct {
	cells [Size][Size]Cell
	won   bool
}

// NewBoard builds a board from Size*Size values in row-major order.
func NewBoard(values [Size * Size]int) Board {
	var b Board
	for i, v := range values {
		b.cells[i/Size][i%Size].Value = v
	}
	return b
}

// Cell returns the cell at c.
func (b *Board) Cell(c Coord) Cell {
	return b.cells[c.Row][c.Col]
}

// Mark marks the first unmarked cell holding v and returns where it was.
func (b *Board) Mark(v int) (Coord, bool) {
	for r := range b.cells {
		for c := range b.cells[r] {
			cell := &b.cells[r][c]
			if !cell.Marked && cell.Value == v {
				cell.Marked = true
				return Coord{Row: r, Col: c}, true
			}
		}
	}
	return Coord{}, false
}

// Play marks v and reports whether this draw is the one that makes the
// board win. A board that has already won ignores further draws.
func (b *Board) Play(v int) bool {
	if b.won {
		return false
	}
	at, ok := b.Mark(v)
	if !ok {
		return false
	}
	if b.rowMarked(at.Row) || b.colMarked(at.Col) {
		b.won = true
		return true
	}
	return false
}

// Won reports whether the board has completed a row or column.
func (b *Board) Won() bool {
	return b.won
}

func (b *Board) rowMarked(r int) bool {
	for c := 0; c < Size; c++ {
		if !b.cells[r][c].Marked {
			return false
		}
	}
	return true
}

func (b *Board) colMarked(c int) bool {
	for r := 0; r < Size; r++ {
		if !b.cells[r][c].Marked {
			return false
		}
	}
	return true
}

// UnmarkedSum adds up every value not yet marked.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if !cell.Marked {
				sum += cell.Value
			}
		}
	}
	return sum
}

// Score is the final score of a board that has just won on draw.
func (b *Board) Score(draw int) int {
	return draw * b.UnmarkedSum()
}
