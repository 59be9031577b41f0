package engine

import (
	"sort"
	"sync"
	"time"

	"catan/game"
	"catan/meta"
	"catan/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxMoves bounds a single Run, rejected moves included.
const MaxMoves = 50000

var (
	ErrWrongPhase  = errors.New("action not allowed in this phase")
	ErrNotYourTurn = errors.New("not this player's turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrMoveLimit   = errors.New("move limit reached")
)

// Engine drives one game: it owns the board, enforces the turn structure
// around it and records every accepted move. Play is safe for concurrent use.
type Engine struct {
	ID    uuid.UUID
	Board *game.Board

	mu        sync.Mutex
	dice      game.Dice
	phase     Phase
	current   int
	setupStep int         // Placements completed, two per player
	pending   int         // Vertex of the setup settlement awaiting its road, -1 for none
	discards  map[int]int // Cards still owed per player after a seven
	turns     int         // Completed regular turns
	maxTurns  int
	updates   []Update
	extra     []game.Option
	log       zerolog.Logger
}

type Option func(*Engine)

// WithDice replaces the board's random dice.
func WithDice(d game.Dice) Option {
	return func(e *Engine) { e.dice = d }
}

// WithLogger replaces the global logger as the base of the game's logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.log = logger }
}

// WithBoardOptions passes extra options to the board, after those derived
// from the config.
func WithBoardOptions(options ...game.Option) Option {
	return func(e *Engine) { e.extra = append(e.extra, options...) }
}

// New sets up a game described by cfg, waiting for player 1's first
// settlement.
func New(cfg meta.Config, options ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := uuid.New()
	e := &Engine{
		ID:       id,
		phase:    SetupPhase,
		current:  1,
		pending:  -1,
		discards: make(map[int]int),
		maxTurns: cfg.MaxTurns,
		log:      log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	e.log = e.log.With().Str("game", id.String()).Logger()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rules := game.NewStandardRules()
	rules.WinningPoints = cfg.WinPoints
	boardOptions := append([]game.Option{
		game.WithRules(rules),
		game.WithTileLayout(game.TileLayout(cfg.TileLayout)),
		game.WithPortLayout(game.PortLayout(cfg.PortLayout)),
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithLogger(e.log),
	}, e.extra...)

	board, err := game.NewBoard(cfg.Players, boardOptions...)
	if err != nil {
		return nil, err
	}
	e.Board = board
	if e.dice == nil {
		e.dice = game.NewRandomDice(board.Rand())
	}
	e.log.Info().Int("players", cfg.Players).Uint64("seed", seed).Msg("game created")
	return e, nil
}

// Play validates move against the turn structure and applies it to the
// board. A rejected move changes nothing.
func (e *Engine) Play(move Move) (game.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == OverPhase {
		return game.Outcome{}, game.ErrGameOver
	}
	if utils.FindIndex(allowed[e.phase], move.Action) < 0 {
		return game.Outcome{}, errors.Wrapf(ErrWrongPhase, "%s during %s", move.Action, e.phase)
	}
	if !e.canAct(move.Player) {
		return game.Outcome{}, errors.Wrapf(ErrNotYourTurn, "%s", move)
	}

	out, err := e.apply(move)
	if err != nil {
		return game.Outcome{}, err
	}
	e.updates = append(e.updates, Update{Turn: e.Board.Turn(), Move: move, Outcome: out})
	if out.Winner != game.NoHolder {
		e.phase = OverPhase
		e.log.Info().Int("winner", out.Winner).Int("turns", e.turns).Msg("game over")
	}
	return out, nil
}

func (e *Engine) canAct(player int) bool {
	if e.phase == DiscardPhase {
		return e.discards[player] > 0
	}
	return player == e.current
}

func (e *Engine) apply(move Move) (game.Outcome, error) {
	b := e.Board
	p := move.Player
	switch move.Action {
	case PlaceSettlementAction:
		if e.pending >= 0 {
			return game.Outcome{}, errors.Wrapf(ErrIllegalMove, "road for vertex %d comes first", e.pending)
		}
		second := e.setupStep >= b.NumPlayers()
		out, err := b.BuildSettlement(p, move.Vertex, true, second)
		if err == nil {
			e.pending = move.Vertex
		}
		return out, err

	case PlaceRoadAction:
		if e.pending < 0 {
			return game.Outcome{}, errors.Wrapf(ErrIllegalMove, "settlement comes first")
		}
		if !e.touchesPending(move.Edge) {
			return game.Outcome{}, errors.Wrapf(ErrIllegalMove, "road %d does not touch vertex %d", move.Edge, e.pending)
		}
		out, err := b.BuildRoad(p, move.Edge, true)
		if err == nil {
			e.pending = -1
			e.advanceSetup()
		}
		return out, err

	case RollAction:
		d1, d2 := e.dice.Roll()
		out, err := b.Roll(d1 + d2)
		if err != nil {
			return out, err
		}
		e.phase = MainPhase
		if out.RobberRequired {
			e.phase = RobberPhase
			for id := 1; id <= b.NumPlayers(); id++ {
				if n := b.MustDiscard(id); n > 0 {
					e.discards[id] = n
					e.phase = DiscardPhase
				}
			}
		}
		return out, nil

	case DiscardAction:
		out, err := b.Discard(p, move.Amounts)
		if err == nil {
			delete(e.discards, p)
			if len(e.discards) == 0 {
				e.phase = RobberPhase
			}
		}
		return out, err

	case RobAction:
		out, err := b.Rob(p, move.Target, move.Tile)
		if err == nil {
			e.phase = MainPhase
		}
		return out, err

	case BuildRoadAction:
		return b.BuildRoad(p, move.Edge, false)
	case BuildSettlementAction:
		return b.BuildSettlement(p, move.Vertex, false, false)
	case BuildCityAction:
		return b.BuildCity(p, move.Vertex)
	case BuyCardAction:
		return b.BuyCard(p)
	case PlayCardAction:
		return b.ActivateCard(p, move.Card)
	case TradeAction:
		return b.TradeWithBank(p, move.Give, move.Get)
	case EndTurnAction:
		e.endTurn()
		return game.NewOutcome(), nil
	}
	return game.Outcome{}, errors.Wrapf(ErrIllegalMove, "unknown action %s", move.Action)
}

func (e *Engine) touchesPending(edge int) bool {
	if edge < 0 || edge >= e.Board.Graph.NumEdges() {
		return false
	}
	for _, v := range e.Board.Graph.EdgeVertices(edge) {
		if v == e.pending {
			return true
		}
	}
	return false
}

// advanceSetup moves placement along the snake order 1..n, n..1.
func (e *Engine) advanceSetup() {
	n := e.Board.NumPlayers()
	e.setupStep++
	switch {
	case e.setupStep < n:
		e.current = e.setupStep + 1
	case e.setupStep < 2*n:
		e.current = 2*n - e.setupStep
	default:
		e.phase = RollPhase
		e.current = 1
		e.log.Info().Msgf("player %d is starting", e.current)
	}
}

func (e *Engine) endTurn() {
	e.turns++
	e.Board.NextTurn()
	e.current = e.current%e.Board.NumPlayers() + 1
	e.phase = RollPhase
	if e.turns >= e.maxTurns {
		e.phase = OverPhase
		e.log.Info().Int("turns", e.turns).Msg("turn limit reached")
	}
}

// Phase returns the step the engine is waiting in.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Current returns the player whose turn it is.
func (e *Engine) Current() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Actor returns the player expected to send the next move: the lowest seat
// still owing a discard, otherwise the current player.
func (e *Engine) Actor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == DiscardPhase {
		owing := make([]int, 0, len(e.discards))
		for id := range e.discards {
			owing = append(owing, id)
		}
		sort.Ints(owing)
		return owing[0]
	}
	return e.current
}

// Owed returns how many cards player still has to discard.
func (e *Engine) Owed(player int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.discards[player]
}

// Pending returns the setup settlement waiting for its road, or -1.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// Turns returns the number of completed regular turns.
func (e *Engine) Turns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turns
}

// Winner returns the winning player, or 0.
func (e *Engine) Winner() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Board.Winner()
}

// Updates returns the accepted moves from index from onwards.
func (e *Engine) Updates(from int) []Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	if from < 0 || from >= len(e.updates) {
		return nil
	}
	out := make([]Update, len(e.updates)-from)
	copy(out, e.updates[from:])
	return out
}
