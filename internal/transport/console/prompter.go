package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Prompter asks players for their input and keeps asking until the answer is valid.
type Prompter struct {
	reader lineReader
	out    io.Writer
}

func NewPrompter(reader lineReader, out io.Writer) *Prompter {
	return &Prompter{
		reader: reader,
		out:    out,
	}
}

// ReadMove - prompts the player until a coordinate inside the board is entered.
func (that *Prompter) ReadMove(ctx context.Context, player *entity.Player, size int) (int, int, error) {
	for {
		if _, err := fmt.Fprintf(that.out, "%s, enter row and column (1-%d): ", player, size); err != nil {
			return 0, 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		answer, err := that.reader.ReadLine(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to read move: %w", err)
		}

		coordinate, err := ParseCoordinate(answer, size)
		if err != nil {
			if _, err = fmt.Fprintf(that.out, "%v, try again.\n", err); err != nil {
				return 0, 0, fmt.Errorf("failed to write prompt: %w", err)
			}

			continue
		}

		return coordinate.Row, coordinate.Col, nil
	}
}

// ReadName - asks for the name of the player at the zero-based index. A blank answer is returned as is.
func (that *Prompter) ReadName(ctx context.Context, index int) (string, error) {
	if _, err := fmt.Fprintf(that.out, "Name for %s: ", entity.DefaultPlayerName(index)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	name, err := that.reader.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read name: %w", err)
	}

	return name, nil
}
