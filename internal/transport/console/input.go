package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Coordinate is a zero-based cell position.
type Coordinate struct {
	Row int
	Col int
}

// ParseCoordinate - validates a 1-based "row col" (or "row,col") answer against a board of the given size.
func ParseCoordinate(input string, size int) (Coordinate, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidInput, input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	if row < 1 || row > size || col < 1 || col > size {
		return Coordinate{}, fmt.Errorf("%w: row and column must be between 1 and %d", apperror.ErrInvalidCoordinate, size)
	}

	return Coordinate{Row: row - 1, Col: col - 1}, nil
}
