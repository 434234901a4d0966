// Package transport defines the wire-agnostic boundary types this module
// exchanges with whatever transport a caller wires up: inbound Commands and
// outbound Events, each a Go discriminated union (an interface plus one
// concrete struct per variant) rather than a string-tagged payload.
package transport

import "yanivgame/cards"

// Command is implemented by every inbound request variant. The unexported
// marker method keeps the union closed to this package.
type Command interface {
	isCommand()
}

// TurnChoice names which draw source a CompleteTurn command uses.
type TurnChoice uint8

const (
	ChoiceDeck TurnChoice = iota
	ChoicePickup
)

// TurnAction is the tagged draw-source variant a CompleteTurn command
// carries: either draw from the deck, or pick up from one end of the
// pickup pile.
type TurnAction struct {
	Choice      TurnChoice
	PickupIndex int // meaningful only when Choice == ChoicePickup
}

// RoomConfig mirrors the data model's RoomConfig: the tunables a room plays
// with, either fixed at creation or aggregated from votes.
type RoomConfig struct {
	SlapDown       bool
	TimePerPlayer  int
	CanCallYaniv   int
	MaxMatchPoints int
}

// DefaultRoomConfig returns the spec's config defaults.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{SlapDown: true, TimePerPlayer: 15, CanCallYaniv: 7, MaxMatchPoints: 100}
}

// BotSeat requests one bot seat at a given difficulty for a create_bot_room
// command.
type BotSeat struct {
	Difficulty string // "easy" | "medium" | "hard"
}

type CreateRoom struct {
	PlayerID string
	NickName string
	Config   RoomConfig
}

func (CreateRoom) isCommand() {}

type JoinRoom struct {
	PlayerID string
	RoomID   string
	NickName string
}

func (JoinRoom) isCommand() {}

type QuickGame struct {
	PlayerID string
	NickName string
}

func (QuickGame) isCommand() {}

type SetQuickGameConfig struct {
	PlayerID string
	RoomID   string
	NickName string
	Config   RoomConfig
}

func (SetQuickGameConfig) isCommand() {}

type CreateBotRoom struct {
	PlayerID string
	NickName string
	Config   RoomConfig
	BotSeats []BotSeat
}

func (CreateBotRoom) isCommand() {}

type LeaveRoom struct {
	PlayerID string
	NickName string
	IsAdmin  bool
}

func (LeaveRoom) isCommand() {}

type StartPrivateGame struct {
	PlayerID string
	RoomID   string
}

func (StartPrivateGame) isCommand() {}

type GetRoomState struct {
	PlayerID string
	RoomID   string
}

func (GetRoomState) isCommand() {}

type CompleteTurn struct {
	PlayerID      string
	Action        TurnAction
	SelectedCards []cards.Card
}

func (CompleteTurn) isCommand() {}

type CallYaniv struct {
	PlayerID string
}

func (CallYaniv) isCommand() {}

type SlapDown struct {
	PlayerID string
	Card     cards.Card
}

func (SlapDown) isCommand() {}

type PlayerWantsToPlayAgain struct {
	PlayerID string
}

func (PlayerWantsToPlayAgain) isCommand() {}
