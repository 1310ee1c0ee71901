package game

import "errors"

var (
	// ErrIllegalPlay is recoverable: the decision boundary re-asks.
	ErrIllegalPlay = errors.New("card does not match the top of the discard pile")

	// ErrStarvation ends the game with no winner: a required draw could
	// not be satisfied because the draw pile is empty and the discard
	// pile holds nothing but its top card.
	ErrStarvation = errors.New("no cards left anywhere to draw")

	// ErrDeckExhausted means the discard-seeding reshuffle bound was
	// exceeded, which only a pathological deck can cause.
	ErrDeckExhausted = errors.New("no non-wild card found to seed the discard pile")

	ErrInsufficientCards = errors.New("draw pile too small to deal starting hands")
)
