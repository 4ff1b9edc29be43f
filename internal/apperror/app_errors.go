package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCoordinate = errors.New("invalid cell coordinate")
	ErrInvalidToken      = errors.New("invalid player token")
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPlayers    = errors.New("invalid players")
)
