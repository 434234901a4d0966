package transport

import (
	"time"

	"yanivgame/cards"
)

// Event is implemented by every outbound broadcast variant.
type Event interface {
	isEvent()
}

// PlayerView is the wire-facing shape of a Player.
type PlayerView struct {
	ID          string
	NickName    string
	AvatarIndex int
	IsBot       bool
	Difficulty  string // "" for humans
}

// PlayerStatusValue mirrors the data model's PlayerStatus enum.
type PlayerStatusValue string

const (
	StatusActive    PlayerStatusValue = "active"
	StatusLost      PlayerStatusValue = "lost"
	StatusWinner    PlayerStatusValue = "winner"
	StatusPlayAgain PlayerStatusValue = "playAgain"
	StatusLeave     PlayerStatusValue = "leave"
)

// PlayerStat is the wire-facing per-player scoreboard entry.
type PlayerStat struct {
	PlayerID    string
	PlayerName  string
	AvatarIndex int
	Status      PlayerStatusValue
	Score       int
}

// DrawSourceValue tags where a player_drew event's card came from.
type DrawSourceValue string

const (
	SourceDeck   DrawSourceValue = "deck"
	SourcePickup DrawSourceValue = "pickup"
	SourceSlap   DrawSourceValue = "slap"
)

// --- Lobby events ---

type RoomCreated struct {
	RoomID string
	Room   RoomSnapshot
}

func (RoomCreated) isEvent() {}

type PlayerJoined struct {
	RoomID string
	Player PlayerView
	Room   RoomSnapshot
}

func (PlayerJoined) isEvent() {}

type PlayerLeft struct {
	RoomID   string
	PlayerID string
	Room     RoomSnapshot
}

func (PlayerLeft) isEvent() {}

type VotesConfig struct {
	RoomID string
	Votes  map[string]RoomConfig // keyed by nickname, per the data model
}

func (VotesConfig) isEvent() {}

type RoomError struct {
	PlayerID string
	Message  string
}

func (RoomError) isEvent() {}

type StartGame struct {
	RoomID  string
	Config  RoomConfig
	Players []PlayerView
}

func (StartGame) isEvent() {}

// RoomSnapshot is the wire-facing shape of a Room, used in lobby event
// payloads and get_room_state responses.
type RoomSnapshot struct {
	ID        string
	Players   []PlayerView
	Config    RoomConfig
	GameState string // "waiting" | "started"
	CreatedAt time.Time
}

// --- Game events ---

type GameInitialized struct {
	RoomID     string
	Round      int
	PlayerHand map[string][]cards.Card
	StartDelay time.Duration
}

func (GameInitialized) isEvent() {}

type NewRound struct {
	RoomID     string
	Round      int
	PlayerHand map[string][]cards.Card
	StartDelay time.Duration
}

func (NewRound) isEvent() {}

type TurnStarted struct {
	RoomID          string
	CurrentPlayerID string
	TimeRemaining   time.Duration
}

func (TurnStarted) isEvent() {}

// PlayerDrew is the compact-diff broadcast for every hand-mutating action:
// deck draw, pickup, or slap-down.
type PlayerDrew struct {
	RoomID                 string
	PlayerID               string
	Source                 DrawSourceValue
	Hands                  map[string][]cards.Card
	PickupCards            []cards.Card
	Card                   cards.Card
	SelectedCardsPositions []int
	AmountBefore           int
	CurrentPlayerID        string
	SlapDownActiveFor      string // "" if no slap-down window is armed
}

func (PlayerDrew) isEvent() {}

type DeckReshuffled struct {
	RoomID string
}

func (DeckReshuffled) isEvent() {}

// RoundEnded reports one round's outcome.
type RoundEnded struct {
	RoomID            string
	WinnerID          string
	PlayersStats      []PlayerStat
	YanivCaller       string
	AssafCaller       string // "" if no Assaf occurred
	PlayerHands       map[string][]cards.Card
	RoundPlayers      []string
	PlayersRoundScore map[string][]int // signed increments per player, e.g. [+37, -50]
	Losers            []string
}

func (RoundEnded) isEvent() {}

type HumanLost struct {
	RoomID   string
	PlayerID string
}

func (HumanLost) isEvent() {}

type GameEnded struct {
	RoomID       string
	Winner       string
	FinalScores  map[string]int
	PlayersStats []PlayerStat
	Places       []string
}

func (GameEnded) isEvent() {}

type SetPlayersStatsData struct {
	RoomID       string
	PlayerID     string
	PlayersStats []PlayerStat
}

func (SetPlayersStatsData) isEvent() {}

// RoomState answers a get_room_state request.
type RoomState struct {
	PlayerID string
	Room     RoomSnapshot
}

func (RoomState) isEvent() {}

type GameError struct {
	PlayerID string
	Message  string
}

func (GameError) isEvent() {}
