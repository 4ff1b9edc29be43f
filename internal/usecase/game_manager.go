package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type moveReader interface {
	ReadMove(ctx context.Context, player *entity.Player, size int) (int, int, error)
	ReadName(ctx context.Context, index int) (string, error)
}

type gameRenderer interface {
	RenderBoard(board *entity.Board) error
	RenderRejected(result tictactoe.MoveResult) error
	RenderResult(result tictactoe.MoveResult, board *entity.Board) error
}

type GameManager struct {
	logger *slog.Logger

	reader   moveReader
	renderer gameRenderer

	boardSize int
}

func NewGameManager(logger *slog.Logger, reader moveReader, renderer gameRenderer, boardSize int) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		reader:    reader,
		renderer:  renderer,
		boardSize: boardSize,
	}
}

// NewPlayers - builds the two players. Missing names are asked for when prompt is set.
func (that *GameManager) NewPlayers(ctx context.Context, names []string, prompt bool) ([]*entity.Player, error) {
	resolved := make([]string, entity.MaxPlayers)
	copy(resolved, names)

	if prompt {
		for index, name := range resolved {
			if name != "" {
				continue
			}

			answer, err := that.reader.ReadName(ctx, index)
			if err != nil {
				return nil, fmt.Errorf("failed to read player name: %w", err)
			}

			resolved[index] = answer
		}
	}

	players, err := entity.NewPlayers(resolved...)
	if err != nil {
		return nil, fmt.Errorf("failed to create players: %w", err)
	}

	return players, nil
}

// Play - runs one game to its end and returns the terminal move.
func (that *GameManager) Play(ctx context.Context, players []*entity.Player) (tictactoe.MoveResult, error) {
	board, err := entity.NewBoard(that.boardSize)
	if err != nil {
		return tictactoe.MoveResult{}, fmt.Errorf("failed to create board: %w", err)
	}

	controller, err := tictactoe.NewGameController(board, players)
	if err != nil {
		return tictactoe.MoveResult{}, fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", uuid.NewString())
	log.Info("game started", "size", board.Size(), "players", lo.Map(players, func(player *entity.Player, _ int) string {
		return player.String()
	}))

	for {
		if err = that.renderer.RenderBoard(board); err != nil {
			return tictactoe.MoveResult{}, fmt.Errorf("failed to render board: %w", err)
		}

		player := controller.Current()

		row, col, err := that.reader.ReadMove(ctx, player, board.Size())
		if err != nil {
			log.Info("game interrupted", "moves", controller.Moves(), "error", err)
			return tictactoe.MoveResult{}, fmt.Errorf("failed to read move: %w", err)
		}

		result, err := controller.Play(row, col)
		if err != nil {
			return tictactoe.MoveResult{}, fmt.Errorf("failed make turn: %w", err)
		}

		if result.Outcome == tictactoe.OutcomeRejected {
			log.Debug("move rejected", "player", player.Name, "row", row, "col", col, "reason", result.Reason)

			if err = that.renderer.RenderRejected(result); err != nil {
				return tictactoe.MoveResult{}, fmt.Errorf("failed to render rejected move: %w", err)
			}

			continue
		}

		log.Debug("move accepted", "player", player.Name, "row", row, "col", col, "outcome", result.Outcome.String())

		if !result.IsTerminal() {
			continue
		}

		log.Info("game finished", "outcome", result.Outcome.String(), "player", player.Name, "moves", controller.Moves())

		if err = that.renderer.RenderResult(result, board); err != nil {
			return result, fmt.Errorf("failed to render result: %w", err)
		}

		return result, nil
	}
}
