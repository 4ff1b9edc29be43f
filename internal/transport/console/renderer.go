package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const emptyCellSymbol = "_"

// Renderer prints the board and game messages for humans.
type Renderer struct {
	out    io.Writer
	colors bool
}

func NewRenderer(out io.Writer, colors bool) *Renderer {
	return &Renderer{
		out:    out,
		colors: colors,
	}
}

// RenderBoard - draws the grid with 1-based row and column numbers.
func (that *Renderer) RenderBoard(board *entity.Board) error {
	table := tablewriter.NewWriter(that.out)

	header := append([]string{""}, lo.Times(board.Size(), func(i int) string {
		return strconv.Itoa(i + 1)
	})...)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetRowLine(true)

	for i, row := range board.Rows() {
		cells := lo.Map(row, func(token entity.Token, _ int) string {
			return that.paint(token)
		})
		table.Append(append([]string{strconv.Itoa(i + 1)}, cells...))
	}

	table.Render()

	return nil
}

func (that *Renderer) RenderRejected(result tictactoe.MoveResult) error {
	return that.printf("Cell %d %d is already taken, %s, try again.\n", result.Row+1, result.Col+1, result.Player.Name)
}

// RenderResult - prints the final board and the outcome of a finished game.
func (that *Renderer) RenderResult(result tictactoe.MoveResult, board *entity.Board) error {
	if err := that.RenderBoard(board); err != nil {
		return err
	}

	switch result.Outcome {
	case tictactoe.OutcomeWon:
		return that.printf("%s %s wins!\n", result.Player.Name, that.paint(result.Player.Token))
	case tictactoe.OutcomeDraw:
		return that.printf("It's a draw.\n")
	default:
		return nil
	}
}

func (that *Renderer) RenderRound(round, total int) error {
	if total < 2 {
		return nil
	}

	return that.printf("\nRound %d of %d\n", round, total)
}

// RenderScore - prints wins per player and the number of draws.
func (that *Renderer) RenderScore(players []*entity.Player, wins map[entity.Token]int, draws int) error {
	table := tablewriter.NewWriter(that.out)
	table.SetHeader([]string{"Player", "Token", "Wins"})
	table.SetAutoFormatHeaders(false)
	table.SetFooter([]string{"", "Draws", strconv.Itoa(draws)})

	for _, player := range players {
		table.Append([]string{player.Name, that.paint(player.Token), strconv.Itoa(wins[player.Token])})
	}

	table.Render()

	return nil
}

func (that *Renderer) paint(token entity.Token) string {
	switch {
	case token == entity.TokenNone:
		return emptyCellSymbol
	case !that.colors:
		return string(token)
	case token == entity.TokenX:
		return color.FgRed.Render(string(token))
	default:
		return color.FgCyan.Render(string(token))
	}
}

func (that *Renderer) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
