package game

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Level is how built-up a vertex is.
type Level int

const (
	Empty Level = iota
	Settlement
	City
)

func (l Level) String() string {
	switch l {
	case Settlement:
		return "Settlement"
	case City:
		return "City"
	}
	return "Empty"
}

// Site is the occupancy of one vertex. Owner is 0 when Level is Empty.
type Site struct {
	Owner int
	Level Level
}

// Board is the whole mutable game state and the only place rules are
// enforced. It is not safe for concurrent use: callers serialize commands.
type Board struct {
	Graph *Graph         // Static adjacency, shared and immutable
	Ports *Ports         // Static harbor layout
	Tiles *TileDeck      // Hexes and the robber
	Roads []int          // Owner per edge, 0 for none
	Sites []Site         // Occupancy per vertex
	Bonus *BonusTracker  // Longest road and largest army
	Rules Rules          // Pools, costs and winning points
	deck  []CardKind     // Remaining development cards, drawn from the end
	turn  int            // Turn counter used to age development cards
	win   int            // Winner, 0 while the game runs
	seats []*Player      // Players by id, index 0 unused
	rng   *rand.Rand     // Shuffles and robbing draws
	log   zerolog.Logger // Rejections at debug, transfers and the end at info
}

type Option func(b *boardConfig)

type boardConfig struct {
	rules      Rules
	tileLayout TileLayout
	portLayout PortLayout
	topology   *Topology
	ledgers    []Ledger
	rng        *rand.Rand
	logger     *zerolog.Logger
}

func WithRules(rules Rules) Option {
	return func(c *boardConfig) { c.rules = rules }
}

func WithTileLayout(layout TileLayout) Option {
	return func(c *boardConfig) { c.tileLayout = layout }
}

func WithPortLayout(layout PortLayout) Option {
	return func(c *boardConfig) { c.portLayout = layout }
}

// WithTopology replaces the built-in map data.
func WithTopology(topo Topology) Option {
	return func(c *boardConfig) { c.topology = &topo }
}

// WithLedgers supplies one resource ledger per player, in seat order.
func WithLedgers(ledgers ...Ledger) Option {
	return func(c *boardConfig) { c.ledgers = ledgers }
}

func WithRand(rng *rand.Rand) Option {
	return func(c *boardConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *boardConfig) { c.logger = &logger }
}

// NewBoard sets up everything before initial placement: tiles, harbors,
// empty ownership arrays, a shuffled development deck and one seat per player.
// It fails if the map data is malformed.
func NewBoard(numPlayers int, options ...Option) (*Board, error) {
	cfg := boardConfig{
		rules:      NewStandardRules(),
		tileLayout: RandomTiles,
		portLayout: StandardPorts,
	}
	for _, option := range options {
		option(&cfg)
	}
	if numPlayers < 2 {
		return nil, fmt.Errorf("need at least two players, got %d", numPlayers)
	}
	if cfg.ledgers != nil && len(cfg.ledgers) != numPlayers {
		return nil, fmt.Errorf("got %d ledgers for %d players", len(cfg.ledgers), numPlayers)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	logger := log.Logger
	if cfg.logger != nil {
		logger = *cfg.logger
	}

	topo := StandardTopology()
	if cfg.topology != nil {
		topo = *cfg.topology
	}
	g, err := NewGraph(topo)
	if err != nil {
		return nil, err
	}
	if g.NumVertices() != NumVertices || g.NumEdges() != NumEdges || g.NumTiles() != NumTiles {
		return nil, errors.Wrapf(ErrMalformedTopology, "map has %d vertices, %d roads, %d tiles",
			g.NumVertices(), g.NumEdges(), g.NumTiles())
	}
	for t := 0; t < g.NumTiles(); t++ {
		if len(g.TileVertices(t)) != 6 {
			return nil, errors.Wrapf(ErrMalformedTopology, "tile %d has %d corners", t, len(g.TileVertices(t)))
		}
	}

	tiles, err := NewTileDeck(cfg.tileLayout, cfg.rng)
	if err != nil {
		return nil, err
	}
	ports, err := NewPorts(g, cfg.portLayout, cfg.rng)
	if err != nil {
		return nil, err
	}

	b := &Board{
		Graph: g,
		Ports: ports,
		Tiles: tiles,
		Roads: make([]int, g.NumEdges()),
		Sites: make([]Site, g.NumVertices()),
		Bonus: NewBonusTracker(numPlayers),
		Rules: cfg.rules,
		deck:  newDeck(cfg.rng),
		turn:  1,
		seats: make([]*Player, numPlayers+1),
		rng:   cfg.rng,
		log:   logger,
	}
	for id := 1; id <= numPlayers; id++ {
		var ledger Ledger = NewHand()
		if cfg.ledgers != nil {
			ledger = cfg.ledgers[id-1]
		}
		b.seats[id] = newPlayer(id, ledger, cfg.rules)
	}
	return b, nil
}

// NumPlayers returns the number of seats.
func (b *Board) NumPlayers() int { return len(b.seats) - 1 }

// Player returns the seat with the given id, or nil.
func (b *Board) Player(id int) *Player {
	if id < 1 || id >= len(b.seats) {
		return nil
	}
	return b.seats[id]
}

// Turn returns the current turn number.
func (b *Board) Turn() int { return b.turn }

// NextTurn advances the turn counter. Cards bought before it become playable.
func (b *Board) NextTurn() int {
	b.turn++
	return b.turn
}

// Winner returns the player who ended the game, or 0.
func (b *Board) Winner() int { return b.win }

// Over reports whether the game has ended.
func (b *Board) Over() bool { return b.win != NoHolder }

// DeckSize returns the number of development cards left.
func (b *Board) DeckSize() int { return len(b.deck) }

// Rand exposes the board's random source to its embedding engine.
func (b *Board) Rand() *rand.Rand { return b.rng }

// check gates every command: the game must be running and player seated.
func (b *Board) check(player int) error {
	if b.win != NoHolder {
		return ErrGameOver
	}
	if b.Player(player) == nil {
		return errors.Wrapf(ErrInvalidPlayer, "player %d", player)
	}
	return nil
}

// reject logs a refused command and wraps its failure with context.
func (b *Board) reject(err error, player int, format string, args ...any) error {
	wrapped := errors.Wrapf(err, format, args...)
	b.log.Debug().Int("player", player).Err(wrapped).Msg("command rejected")
	return wrapped
}

// award is the single entry point for victory points. Reaching the winning
// total ends the game in the player's favor.
func (b *Board) award(player, points int, out *Outcome) {
	p := b.seats[player]
	p.VictoryPoints += points
	out.Points[player] += points
	if b.win == NoHolder && p.VictoryPoints >= b.Rules.WinningPoints {
		b.win = player
		out.Winner = player
		b.log.Info().Int("player", player).Int("points", p.VictoryPoints).Msg("game won")
	}
}

// transfer moves a bonus: the old holder loses it before the new one gains it.
func (b *Board) transfer(t Transfer, out *Outcome) {
	if t.From != NoHolder {
		b.award(t.From, -BonusPoints, out)
	}
	b.award(t.To, BonusPoints, out)
	out.Transfers = append(out.Transfers, t)
	b.log.Info().Stringer("bonus", t.Bonus).Int("from", t.From).Int("to", t.To).Msg("bonus transferred")
}
