package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	row, col int
	token    Token
}

func markAll(t *testing.T, board *Board, moves []move) {
	t.Helper()

	for _, m := range moves {
		require.NoError(t, board.Mark(m.row, m.col, m.token))
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board of the requested size", func(t *testing.T) {
		// When: creating a 4x4 board
		board, err := NewBoard(4)

		// Then: every cell is empty
		require.NoError(t, err)
		assert.Equal(t, 4, board.Size())
		assert.Equal(t, 16, board.EmptyCount())
		assert.False(t, board.IsFull())

		for _, row := range board.Rows() {
			for _, token := range row {
				assert.Equal(t, TokenNone, token)
			}
		}
	})

	t.Run("Returns ErrInvalidBoardSize when size is below 3", func(t *testing.T) {
		// When: creating a 2x2 board
		board, err := NewBoard(2)

		// Then: it should be rejected
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		assert.Nil(t, board)
	})
}

func TestBoard_Mark(t *testing.T) {
	t.Run("Successful mark", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3)
		require.NoError(t, err)

		// When: X marks the center
		err = board.Mark(1, 1, TokenX)

		// Then: the cell holds X and one empty cell is gone
		require.NoError(t, err)

		token, err := board.At(1, 1)
		require.NoError(t, err)
		assert.Equal(t, TokenX, token)
		assert.Equal(t, 8, board.EmptyCount())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds the corner
		board, err := NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.Mark(0, 0, TokenX))
		before := board.Rows()

		// When: O and then X try the same cell
		errO := board.Mark(0, 0, TokenO)
		errX := board.Mark(0, 0, TokenX)

		// Then: both attempts fail and the board is unchanged
		require.ErrorIs(t, errO, apperror.ErrCellOccupied)
		require.ErrorIs(t, errX, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Rows())
		assert.Equal(t, 8, board.EmptyCount())
	})

	t.Run("Error on invalid coordinate", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3)
		require.NoError(t, err)

		for _, coord := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {20, 20}} {
			// When: marking outside the grid
			err = board.Mark(coord[0], coord[1], TokenX)

			// Then: ErrInvalidCoordinate is returned
			require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		}

		assert.Equal(t, 9, board.EmptyCount())
	})

	t.Run("Error on empty token", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3)
		require.NoError(t, err)

		// When: marking with no token
		err = board.Mark(0, 0, TokenNone)

		// Then: ErrInvalidToken is returned
		require.ErrorIs(t, err, apperror.ErrInvalidToken)
		assert.Equal(t, 9, board.EmptyCount())
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 3x3 board
	board, err := NewBoard(3)
	require.NoError(t, err)

	token := TokenX
	for row := range 3 {
		for col := range 3 {
			// Then: it is not full while any cell is empty
			assert.False(t, board.IsFull())

			require.NoError(t, board.Mark(row, col, token))
			token = token.Other()
		}
	}

	// Then: it is full once every cell is occupied
	assert.True(t, board.IsFull())
	assert.Equal(t, 0, board.EmptyCount())
}

func TestBoard_HasLineThrough(t *testing.T) {
	t.Run("Row win is reported by the completing move", func(t *testing.T) {
		// Given: X holds row 0
		board, err := NewBoard(3)
		require.NoError(t, err)
		markAll(t, board, []move{{0, 0, TokenX}, {1, 0, TokenO}, {0, 1, TokenX}, {1, 1, TokenO}, {0, 2, TokenX}})

		// Then: the last move completes a line
		assert.True(t, board.HasLineThrough(0, 2))

		// Then: O's cells are not part of any line
		assert.False(t, board.HasLineThrough(1, 1))
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: O holds column 2
		board, err := NewBoard(3)
		require.NoError(t, err)
		markAll(t, board, []move{{0, 2, TokenO}, {1, 2, TokenO}, {2, 2, TokenO}})

		// Then: the column is detected
		assert.True(t, board.HasLineThrough(1, 2))
	})

	t.Run("Main diagonal is completed only by a diagonal move", func(t *testing.T) {
		// Given: X holds two diagonal corners
		board, err := NewBoard(3)
		require.NoError(t, err)
		markAll(t, board, []move{{0, 0, TokenX}, {2, 2, TokenX}})

		// When: an unrelated cell is marked
		require.NoError(t, board.Mark(0, 1, TokenX))

		// Then: no line is reported
		assert.False(t, board.HasLineThrough(0, 1))
		assert.False(t, board.HasLineThrough(2, 2))

		// When: the center completes the diagonal
		require.NoError(t, board.Mark(1, 1, TokenX))

		// Then: the line is reported through the center and through the corners
		assert.True(t, board.HasLineThrough(1, 1))
		assert.True(t, board.HasLineThrough(0, 0))
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		// Given: O holds the anti-diagonal
		board, err := NewBoard(3)
		require.NoError(t, err)
		markAll(t, board, []move{{0, 2, TokenO}, {1, 1, TokenO}, {2, 0, TokenO}})

		// Then: the anti-diagonal is detected
		assert.True(t, board.HasLineThrough(2, 0))
	})

	t.Run("Mixed tokens do not make a line", func(t *testing.T) {
		// Given: row 0 is full but mixed
		board, err := NewBoard(3)
		require.NoError(t, err)
		markAll(t, board, []move{{0, 0, TokenX}, {0, 1, TokenO}, {0, 2, TokenX}})

		// Then: no line through any of them
		assert.False(t, board.HasLineThrough(0, 0))
		assert.False(t, board.HasLineThrough(0, 2))
	})

	t.Run("Empty or out of range cell", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3)
		require.NoError(t, err)

		// Then: nothing is reported
		assert.False(t, board.HasLineThrough(1, 1))
		assert.False(t, board.HasLineThrough(-1, 5))
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a drawn board
		// X O X
		// X O O
		// O X X
		board, err := NewBoard(3)
		require.NoError(t, err)
		markAll(t, board, []move{
			{0, 0, TokenX}, {0, 1, TokenO}, {0, 2, TokenX},
			{1, 0, TokenX}, {1, 1, TokenO}, {1, 2, TokenO},
			{2, 0, TokenO}, {2, 1, TokenX}, {2, 2, TokenX},
		})

		// Then: the board is full and no cell lies on a line
		assert.True(t, board.IsFull())
		for row := range 3 {
			for col := range 3 {
				assert.False(t, board.HasLineThrough(row, col), "row %d col %d", row, col)
			}
		}
	})

	t.Run("4x4 board needs the whole line", func(t *testing.T) {
		// Given: a 4x4 board where X holds three of the anti-diagonal
		board, err := NewBoard(4)
		require.NoError(t, err)
		markAll(t, board, []move{{0, 3, TokenX}, {1, 2, TokenX}, {2, 1, TokenX}})

		// Then: three in a row is not enough
		assert.False(t, board.HasLineThrough(2, 1))

		// When: the fourth cell is marked
		require.NoError(t, board.Mark(3, 0, TokenX))

		// Then: the anti-diagonal is detected
		assert.True(t, board.HasLineThrough(3, 0))
	})
}

func TestToken_Other(t *testing.T) {
	assert.Equal(t, TokenO, TokenX.Other())
	assert.Equal(t, TokenX, TokenO.Other())
	assert.Equal(t, TokenNone, TokenNone.Other())
}
