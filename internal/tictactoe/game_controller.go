package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type State int

const (
	StateAwaitingMove State = iota
	StateWon
	StateDraw
)

func (that State) String() string {
	switch that {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	OutcomeMarked Outcome = iota
	OutcomeRejected
	OutcomeWon
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeMarked:
		return "marked"
	case OutcomeRejected:
		return "rejected"
	case OutcomeWon:
		return "won"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// MoveResult describes what a single move did. Reason is set only for rejected moves.
type MoveResult struct {
	Outcome Outcome
	Player  *entity.Player
	Row     int
	Col     int
	Reason  error
}

func (that MoveResult) IsTerminal() bool {
	return that.Outcome == OutcomeWon || that.Outcome == OutcomeDraw
}

// GameController runs the turn order of one game over a board it exclusively owns.
type GameController struct {
	board   *entity.Board
	players [entity.MaxPlayers]*entity.Player
	current int
	state   State
	moves   int
}

func NewGameController(board *entity.Board, players []*entity.Player) (*GameController, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: board is nil", apperror.ErrInvalidBoardSize)
	}

	if len(players) != entity.MaxPlayers || players[0] == nil || players[1] == nil {
		return nil, fmt.Errorf("%w: exactly %d players are required", apperror.ErrInvalidPlayers, entity.MaxPlayers)
	}

	if players[0].Token == players[1].Token || !players[0].Token.IsValid() || !players[1].Token.IsValid() {
		return nil, fmt.Errorf("%w: players need distinct tokens", apperror.ErrInvalidPlayers)
	}

	return &GameController{
		board:   board,
		players: [entity.MaxPlayers]*entity.Player{players[0], players[1]},
		state:   StateAwaitingMove,
	}, nil
}

// Play applies the current player's move. An occupied cell is not an error: the result is OutcomeRejected
// and the same player stays to move.
func (that *GameController) Play(row, col int) (MoveResult, error) {
	if that.state != StateAwaitingMove {
		return MoveResult{}, apperror.ErrGameFinished
	}

	player := that.players[that.current]
	result := MoveResult{
		Player: player,
		Row:    row,
		Col:    col,
	}

	if err := that.board.Mark(row, col, player.Token); err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) {
			result.Outcome = OutcomeRejected
			result.Reason = err

			return result, nil
		}

		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	that.moves++

	switch {
	case that.board.HasLineThrough(row, col):
		that.state = StateWon
		result.Outcome = OutcomeWon
	case that.board.IsFull():
		that.state = StateDraw
		result.Outcome = OutcomeDraw
	default:
		that.current = 1 - that.current
		result.Outcome = OutcomeMarked
	}

	return result, nil
}

func (that *GameController) State() State {
	return that.state
}

// Current returns the player to move, or the winner once the game is won.
func (that *GameController) Current() *entity.Player {
	return that.players[that.current]
}

func (that *GameController) Winner() *entity.Player {
	if that.state != StateWon {
		return nil
	}

	return that.players[that.current]
}

func (that *GameController) IsFinished() bool {
	return that.state != StateAwaitingMove
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

func (that *GameController) Moves() int {
	return that.moves
}
