package engine

import (
	"fmt"

	"catan/game"
)

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlaceSettlementAction ActionType = iota // Initial placement, free
	PlaceRoadAction                         // Initial placement, free, next to the settlement just placed
	RollAction
	DiscardAction
	RobAction
	BuildRoadAction
	BuildSettlementAction
	BuildCityAction
	BuyCardAction
	PlayCardAction
	TradeAction
	EndTurnAction
)

var actionNames = [...]string{
	"PlaceSettlement", "PlaceRoad", "Roll", "Discard", "Rob", "BuildRoad",
	"BuildSettlement", "BuildCity", "BuyCard", "PlayCard", "Trade", "EndTurn",
}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
	return actionNames[a]
}

// Move is one command sent to the engine. Only the fields the action needs
// are read.
type Move struct {
	Player  int
	Action  ActionType
	Vertex  int           // Settlements and cities
	Edge    int           // Roads
	Tile    int           // Robber
	Target  int           // Robber victim, game.NoTarget for none
	Amounts game.Amounts  // Discards
	Give    game.Resource // Bank trade
	Get     game.Resource
	Card    game.CardPlay
}

func (m Move) String() string {
	switch m.Action {
	case PlaceSettlementAction, BuildSettlementAction, BuildCityAction:
		return fmt.Sprintf("%s(p%d, v%d)", m.Action, m.Player, m.Vertex)
	case PlaceRoadAction, BuildRoadAction:
		return fmt.Sprintf("%s(p%d, e%d)", m.Action, m.Player, m.Edge)
	case DiscardAction:
		return fmt.Sprintf("%s(p%d, %s)", m.Action, m.Player, m.Amounts)
	case RobAction:
		return fmt.Sprintf("%s(p%d, t%d, p%d)", m.Action, m.Player, m.Tile, m.Target)
	case TradeAction:
		return fmt.Sprintf("%s(p%d, %s->%s)", m.Action, m.Player, m.Give, m.Get)
	case PlayCardAction:
		if m.Card != nil {
			return fmt.Sprintf("%s(p%d, %s)", m.Action, m.Player, m.Card.Kind())
		}
	}
	return fmt.Sprintf("%s(p%d)", m.Action, m.Player)
}

// Update is an accepted move and what it changed.
type Update struct {
	Turn    int
	Move    Move
	Outcome game.Outcome
}

// Phase is the step of the turn structure the engine is waiting in.
type Phase int

const (
	SetupPhase   Phase = iota // Snake-order initial placement
	RollPhase                 // Current player must roll (or play a card first)
	DiscardPhase              // Players above the hand limit discard after a seven
	RobberPhase               // Current player moves the robber
	MainPhase                 // Build, buy, play, trade or end the turn
	OverPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "Setup"
	case RollPhase:
		return "Roll"
	case DiscardPhase:
		return "Discard"
	case RobberPhase:
		return "Robber"
	case MainPhase:
		return "Main"
	case OverPhase:
		return "Over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// allowed lists the actions accepted in each phase.
var allowed = map[Phase][]ActionType{
	SetupPhase:   {PlaceSettlementAction, PlaceRoadAction},
	RollPhase:    {RollAction, PlayCardAction},
	DiscardPhase: {DiscardAction},
	RobberPhase:  {RobAction},
	MainPhase: {
		BuildRoadAction, BuildSettlementAction, BuildCityAction,
		BuyCardAction, PlayCardAction, TradeAction, EndTurnAction,
	},
}
