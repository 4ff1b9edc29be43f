package usecase

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Score tallies the results of the games played in one run.
type Score struct {
	Wins  map[entity.Token]int
	Draws int
}

func NewScore() *Score {
	return &Score{
		Wins: make(map[entity.Token]int, entity.MaxPlayers),
	}
}

func (that *Score) Record(result tictactoe.MoveResult) {
	switch result.Outcome {
	case tictactoe.OutcomeWon:
		that.Wins[result.Player.Token]++
	case tictactoe.OutcomeDraw:
		that.Draws++
	}
}
