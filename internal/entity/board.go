package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const MinBoardSize = 3

type Token string

const (
	TokenX    Token = "X"
	TokenO    Token = "O"
	TokenNone Token = ""
)

// Other returns the opponent's token.
func (that Token) Other() Token {
	switch that {
	case TokenX:
		return TokenO
	case TokenO:
		return TokenX
	default:
		return TokenNone
	}
}

func (that Token) IsValid() bool {
	return that == TokenX || that == TokenO
}

type Cell struct {
	Occupant Token `json:"occupant"`
}

func (that Cell) IsEmpty() bool {
	return that.Occupant == TokenNone
}

// Board is a square grid of cells. A marked cell is never cleared.
type Board struct {
	size       int
	cells      [][]Cell
	emptyCount int
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d, must be at least %d", apperror.ErrInvalidBoardSize, size, MinBoardSize)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	return &Board{
		size:       size,
		cells:      cells,
		emptyCount: size * size,
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) EmptyCount() int {
	return that.emptyCount
}

// Mark places token on the cell. An occupied cell is left untouched and ErrCellOccupied is returned.
func (that *Board) Mark(row, col int, token Token) error {
	if !that.contains(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	if !token.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidToken, token)
	}

	if !that.cells[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.cells[row][col].Occupant = token
	that.emptyCount--

	return nil
}

// HasLineThrough reports whether the cell at row, col completes a row, column or diagonal
// held entirely by its occupant. Only lines passing through that cell are inspected.
func (that *Board) HasLineThrough(row, col int) bool {
	if !that.contains(row, col) {
		return false
	}

	token := that.cells[row][col].Occupant
	if token == TokenNone {
		return false
	}

	if that.lineHeldBy(token, func(i int) (int, int) { return row, i }) {
		return true
	}

	if that.lineHeldBy(token, func(i int) (int, int) { return i, col }) {
		return true
	}

	if row == col && that.lineHeldBy(token, func(i int) (int, int) { return i, i }) {
		return true
	}

	last := that.size - 1
	if row+col == last && that.lineHeldBy(token, func(i int) (int, int) { return i, last - i }) {
		return true
	}

	return false
}

func (that *Board) IsFull() bool {
	return that.emptyCount == 0
}

func (that *Board) At(row, col int) (Token, error) {
	if !that.contains(row, col) {
		return TokenNone, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	return that.cells[row][col].Occupant, nil
}

// Rows returns a copy of the grid.
func (that *Board) Rows() [][]Token {
	rows := make([][]Token, that.size)
	for row := range that.cells {
		rows[row] = make([]Token, that.size)
		for col, cell := range that.cells[row] {
			rows[row][col] = cell.Occupant
		}
	}

	return rows
}

// lineHeldBy walks the N cells produced by at and stops on the first cell not held by token.
func (that *Board) lineHeldBy(token Token, at func(i int) (int, int)) bool {
	for i := range that.size {
		row, col := at(i)
		if that.cells[row][col].Occupant != token {
			return false
		}
	}

	return true
}

func (that *Board) contains(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}
