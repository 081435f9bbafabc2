package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrInvalidMove   = errors.New("the move is not valid")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNoMoveFound   = errors.New("no move found")
)
