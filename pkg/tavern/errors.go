package tavern

import (
	"errors"
	"fmt"
)

// ErrNotYourTurn happens when a player acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrCannotPlayCard happens when a card cannot be played right now
var ErrCannotPlayCard = errors.New("the card cannot be played right now")

// ErrCannotPass happens when a player has nothing they can pass on
var ErrCannotPass = errors.New("you cannot pass right now")

// ErrCannotInterrupt happens when a card cannot respond to the card it's played against
var ErrCannotInterrupt = errors.New("the card cannot respond to the last played card")

// ErrNotInterruptable happens when a card without response metadata is pushed onto a stack
var ErrNotInterruptable = errors.New("the card cannot be responded to")

// ErrInterruptInProgress happens when a new root card is played while a stack is unresolved
var ErrInterruptInProgress = errors.New("another card is still being resolved")

// ErrNoTargets happens when a card is played with nobody to target
var ErrNoTargets = errors.New("there is nobody to target with that card")

// ErrMissingTarget happens when a directed card is played without a target
var ErrMissingTarget = errors.New("the card requires a target player")

// ErrInvalidTarget happens when a directed card is aimed at an invalid player
var ErrInvalidTarget = errors.New("the card cannot target that player")

// ErrWrongPhase happens when an action arrives in the wrong phase of a turn
var ErrWrongPhase = errors.New("that is not allowed in this phase of the turn")

// ErrLastPlayerCannotLeave happens when the final gambler tries to walk away from the round
var ErrLastPlayerCannotLeave = errors.New("the last player cannot leave the gambling round")

// ErrPlayerNotFound happens when a player is not part of the game
var ErrPlayerNotFound = errors.New("player not found")

// ErrCardNotFound happens when a hand index does not point at a card
var ErrCardNotFound = errors.New("card not found")

// ErrGameOver happens when an action arrives after the game has ended
var ErrGameOver = errors.New("the game is over")

// ErrGameStarted happens when a lobby action arrives after the game started
var ErrGameStarted = errors.New("the game has already started")

// ErrGameNotStarted happens when a game action arrives before the game started
var ErrGameNotStarted = errors.New("the game has not started yet")

// ErrGameFull happens when a player joins a full table
var ErrGameFull = errors.New("the game is full")

// ErrUnknownCharacter happens when a player picks a character that doesn't exist
var ErrUnknownCharacter = errors.New("unknown character")

// ErrNotGameOwner happens when someone other than the owner starts the game
var ErrNotGameOwner = errors.New("only the game owner can do that")

// ErrNotEnoughPlayers happens when the game starts short-handed
var ErrNotEnoughPlayers = errors.New("not enough players to start")

// ErrCharacterNotSelected happens when the game starts before everyone picked
// a character
var ErrCharacterNotSelected = errors.New("every player must select a character")

// InternalError signals a bug in the engine rather than a bad request
type InternalError struct {
	msg string
}

func newInternalError(format string, a ...interface{}) InternalError {
	return InternalError{msg: fmt.Sprintf(format, a...)}
}

func (e InternalError) Error() string {
	return "internal error: " + e.msg
}

// IsInternalError returns true if err is an engine invariant violation
func IsInternalError(err error) bool {
	var ie InternalError
	return errors.As(err, &ie)
}
