package engine

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"catan/game"
	"catan/meta"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testConfig() meta.Config {
	cfg := meta.Default()
	cfg.Players = 2
	cfg.TileLayout = "basic"
	cfg.Seed = 1
	return cfg
}

func newTestEngine(t *testing.T, cfg meta.Config, rolls ...int) *Engine {
	t.Helper()
	e, err := New(cfg, WithDice(game.NewFixedDice(rolls...)))
	require.NoError(t, err)
	return e
}

func mustPlay(t *testing.T, e *Engine, move Move) game.Outcome {
	t.Helper()
	out, err := e.Play(move)
	require.NoError(t, err, "%s", move)
	return out
}

// setup plays the snake placement: 1, 2, 2, 1.
func setup(t *testing.T, e *Engine) {
	t.Helper()
	placements := []struct{ player, vertex, edge int }{
		{1, 0, 0},
		{2, 10, 10},
		{2, 20, 20},
		{1, 30, 30},
	}
	for _, p := range placements {
		mustPlay(t, e, Move{Player: p.player, Action: PlaceSettlementAction, Vertex: p.vertex})
		mustPlay(t, e, Move{Player: p.player, Action: PlaceRoadAction, Edge: p.edge})
	}
}

func TestEngineInit(t *testing.T) {
	e := newTestEngine(t, testConfig())
	require.NotEmpty(t, e.ID.String())
	require.Equal(t, SetupPhase, e.Phase())
	require.Equal(t, 1, e.Current())
	require.Equal(t, -1, e.Pending())
	require.Nil(t, e.Updates(0), "no moves have been played")

	_, err := New(meta.Config{})
	require.Error(t, err)
}

func TestEngineSetup(t *testing.T) {
	t.Run("snake order", func(t *testing.T) {
		e := newTestEngine(t, testConfig())
		setup(t, e)
		require.Equal(t, RollPhase, e.Phase())
		require.Equal(t, 1, e.Current())
		require.Len(t, e.Updates(0), 8)

		require.Equal(t, game.Amounts{game.Wood: 1, game.Brick: 1, game.Rock: 1},
			e.Board.Player(1).Ledger.(*game.Hand).Snapshot(), "second settlement should collect")
		require.Equal(t, game.Of(game.Rock, 1), e.Board.Player(2).Ledger.(*game.Hand).Snapshot())
		require.Equal(t, 2, e.Board.Player(1).VictoryPoints)
	})

	t.Run("out of order", func(t *testing.T) {
		e := newTestEngine(t, testConfig())
		_, err := e.Play(Move{Player: 2, Action: PlaceSettlementAction, Vertex: 0})
		require.ErrorIs(t, err, ErrNotYourTurn)
		_, err = e.Play(Move{Player: 1, Action: RollAction})
		require.ErrorIs(t, err, ErrWrongPhase)
		_, err = e.Play(Move{Player: 1, Action: PlaceRoadAction, Edge: 0})
		require.ErrorIs(t, err, ErrIllegalMove)

		mustPlay(t, e, Move{Player: 1, Action: PlaceSettlementAction, Vertex: 0})
		_, err = e.Play(Move{Player: 1, Action: PlaceSettlementAction, Vertex: 10})
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = e.Play(Move{Player: 1, Action: PlaceRoadAction, Edge: 5})
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = e.Play(Move{Player: 1, Action: PlaceRoadAction, Edge: game.NumEdges})
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, 0, e.Pending())
	})

	t.Run("board rule failures pass through", func(t *testing.T) {
		e := newTestEngine(t, testConfig())
		mustPlay(t, e, Move{Player: 1, Action: PlaceSettlementAction, Vertex: 0})
		mustPlay(t, e, Move{Player: 1, Action: PlaceRoadAction, Edge: 0})
		_, err := e.Play(Move{Player: 2, Action: PlaceSettlementAction, Vertex: 1})
		require.ErrorIs(t, err, game.ErrBlocked)
		require.Equal(t, 2, e.Current())
	})
}

func TestEngineLogsCarryGameID(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(testConfig(), WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)
	setup(t, e)
	require.Equal(t, RollPhase, e.Phase())

	messages := []string{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		require.Equal(t, e.ID.String(), line["game"], "%s", scanner.Text())
		messages = append(messages, line["message"].(string))
	}
	require.Contains(t, messages, "game created")
	require.Contains(t, messages, "player 1 is starting")
}

func TestEngineTurns(t *testing.T) {
	t.Run("roll and end turn", func(t *testing.T) {
		e := newTestEngine(t, testConfig(), 5, 7)
		setup(t, e)

		_, err := e.Play(Move{Player: 1, Action: EndTurnAction})
		require.ErrorIs(t, err, ErrWrongPhase, "must roll first")

		out := mustPlay(t, e, Move{Player: 1, Action: RollAction})
		require.Equal(t, 5, out.Roll)
		require.Equal(t, game.Of(game.Brick, 2), out.Produced[1])
		require.Equal(t, MainPhase, e.Phase())

		mustPlay(t, e, Move{Player: 1, Action: EndTurnAction})
		require.Equal(t, 2, e.Current())
		require.Equal(t, RollPhase, e.Phase())
		require.Equal(t, 2, e.Board.Turn())
		require.Equal(t, 1, e.Turns())

		out = mustPlay(t, e, Move{Player: 2, Action: RollAction})
		require.True(t, out.RobberRequired)
		require.Equal(t, RobberPhase, e.Phase(), "nobody holds more than seven cards")

		out = mustPlay(t, e, Move{Player: 2, Action: RobAction, Tile: 0, Target: 1})
		require.Equal(t, 1, out.Gained.Total())
		require.Equal(t, MainPhase, e.Phase())
	})

	t.Run("discard before the robber", func(t *testing.T) {
		e := newTestEngine(t, testConfig(), 7)
		setup(t, e)
		e.Board.Player(1).Ledger.Credit(game.Of(game.Wheat, 6))

		mustPlay(t, e, Move{Player: 1, Action: RollAction})
		require.Equal(t, DiscardPhase, e.Phase())
		require.Equal(t, 1, e.Actor())
		require.Equal(t, 4, e.Owed(1))

		_, err := e.Play(Move{Player: 1, Action: RobAction, Tile: 5})
		require.ErrorIs(t, err, ErrWrongPhase)
		_, err = e.Play(Move{Player: 2, Action: DiscardAction, Amounts: game.Of(game.Rock, 1)})
		require.ErrorIs(t, err, ErrNotYourTurn)
		_, err = e.Play(Move{Player: 1, Action: DiscardAction, Amounts: game.Of(game.Wheat, 3)})
		require.ErrorIs(t, err, game.ErrWrongDiscardCount)

		mustPlay(t, e, Move{Player: 1, Action: DiscardAction, Amounts: game.Of(game.Wheat, 4)})
		require.Equal(t, RobberPhase, e.Phase())
		mustPlay(t, e, Move{Player: 1, Action: RobAction, Tile: 5, Target: game.NoTarget})
		require.Equal(t, MainPhase, e.Phase())
	})

	t.Run("turn limit", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTurns = 2
		e := newTestEngine(t, cfg, 6)
		setup(t, e)
		for _, p := range []int{1, 2} {
			mustPlay(t, e, Move{Player: p, Action: RollAction})
			mustPlay(t, e, Move{Player: p, Action: EndTurnAction})
		}
		require.Equal(t, OverPhase, e.Phase())
		_, err := e.Play(Move{Player: 1, Action: RollAction})
		require.ErrorIs(t, err, game.ErrGameOver)
		require.Equal(t, game.NoHolder, e.Winner())
	})

	t.Run("winning ends the game", func(t *testing.T) {
		cfg := testConfig()
		cfg.WinPoints = 3
		e := newTestEngine(t, cfg, 6)
		setup(t, e)
		mustPlay(t, e, Move{Player: 1, Action: RollAction})

		e.Board.Player(1).Ledger.Credit(game.StandardCosts[game.CityPurchase])
		out := mustPlay(t, e, Move{Player: 1, Action: BuildCityAction, Vertex: 0})
		require.Equal(t, 1, out.Winner)
		require.Equal(t, OverPhase, e.Phase())
		require.Equal(t, 1, e.Winner())
	})
}

func TestEngineSummary(t *testing.T) {
	e := newTestEngine(t, testConfig())
	setup(t, e)
	s := e.Summary()
	require.Equal(t, e.ID.String(), s.Game)
	require.Equal(t, 8, s.Moves)
	require.Len(t, s.Standings, 2)
	require.Equal(t, Standing{Player: 1, Points: 2, Settlements: 2, Roads: 2, RoadLength: 2, Hand: 3}, s.Standings[0])
	require.Len(t, e.Updates(6), 2)
}
