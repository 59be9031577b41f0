package game

import "errors"

// Command failures. Every rejected command returns one of these (possibly
// wrapped with context) and leaves the board untouched.
var (
	ErrGameOver              = errors.New("game is over")
	ErrInvalidLocation       = errors.New("location out of range")
	ErrInvalidPlayer         = errors.New("unknown player")
	ErrAlreadyOccupied       = errors.New("location already occupied")
	ErrNoPieceRemaining      = errors.New("no piece of that kind remaining")
	ErrNotConnected          = errors.New("road does not touch the player's network")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrBlocked               = errors.New("too close to another settlement")
	ErrNoRoadConnection      = errors.New("no road of the player touches the vertex")
	ErrNoSettlementThere     = errors.New("player has no settlement there")
	ErrRobberAlreadyThere    = errors.New("robber must move to a different tile")
	ErrTargetNotAdjacent     = errors.New("target player is not next to that tile")
	ErrSelfTarget            = errors.New("cannot rob yourself")
	ErrCardNotEligible       = errors.New("card not owned or bought this turn")
	ErrAlreadyUsedThisTurn   = errors.New("a development card was already played this turn")
	ErrInvalidCardPayload    = errors.New("invalid card payload")
	ErrDeckEmpty             = errors.New("development deck is empty")
	ErrNoDiscardRequired     = errors.New("player holds seven or fewer cards")
	ErrWrongDiscardCount     = errors.New("discard must be exactly half the hand")
	ErrInvalidTrade          = errors.New("invalid bank trade")
	ErrInvalidRoll           = errors.New("dice total out of range")
)

// ErrMalformedTopology is the only construction-fatal condition: the static
// map data cannot be reasoned about.
var ErrMalformedTopology = errors.New("malformed board topology")
