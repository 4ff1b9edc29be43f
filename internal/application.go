package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application on the process's standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays the configured number of rounds between two players sharing one console.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	prompter := console.NewPrompter(console.NewReader(in), out)
	renderer := console.NewRenderer(out, !conf.NoColors)
	manager := usecase.NewGameManager(logger, prompter, renderer, conf.BoardSize)

	players, err := manager.NewPlayers(ctx, conf.Players, !conf.SkipPrompt)
	if err != nil {
		if isStopped(err) {
			log.Info("stopped before the first game", "reason", err)
			return nil
		}

		return fmt.Errorf("failed to set up players: %w", err)
	}

	score := usecase.NewScore()
	for round := 1; round <= conf.Rounds; round++ {
		if err = renderer.RenderRound(round, conf.Rounds); err != nil {
			return fmt.Errorf("failed to render round: %w", err)
		}

		result, err := manager.Play(ctx, players)
		if err != nil {
			if isStopped(err) {
				log.Info("stopped during a game", "round", round, "reason", err)
				return nil
			}

			return fmt.Errorf("round %d failed: %w", round, err)
		}

		score.Record(result)
	}

	if conf.Rounds > 1 {
		if err = renderer.RenderScore(players, score.Wins, score.Draws); err != nil {
			return fmt.Errorf("failed to render score: %w", err)
		}
	}

	log.Info("all rounds played", "rounds", conf.Rounds, "draws", score.Draws)

	return nil
}

// isStopped reports whether err means the players left rather than something broke.
func isStopped(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
