package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidRules    = errors.New("invalid rules")
	ErrRulesNotFound   = errors.New("rules not found")
	ErrLexiconNotFound = errors.New("lexicon not found")
	ErrTileNotInBag    = errors.New("tile not in bag")

	// Game errors
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrGameNotStarted      = errors.New("game has not been started")
	ErrGameAlreadyStarted  = errors.New("game has already been started")
	ErrGameOver            = errors.New("game is over")
	ErrGameStopped         = errors.New("game has been stopped")
)
