// Package room implements the per-room turn state machine: dealing,
// turn resolution, slap-down, Yaniv calls, scoring, and match end. Each
// Room owns exactly one goroutine (its actor) that serializes every
// mutation of its GameState, per the concurrency model.
package room

import (
	"time"

	"github.com/sirupsen/logrus"

	"yanivgame/cards"
)

// Player is a room seat: a human or a bot.
type Player struct {
	ID          string
	NickName    string
	AvatarIndex int
	IsBot       bool
	Difficulty  string // "easy" | "medium" | "hard", empty for humans
}

// PlayerStatus mirrors the data model's PlayerStatus enum.
type PlayerStatus string

const (
	StatusActive    PlayerStatus = "active"
	StatusLost      PlayerStatus = "lost"
	StatusWinner    PlayerStatus = "winner"
	StatusPlayAgain PlayerStatus = "playAgain"
	StatusLeave     PlayerStatus = "leave"
)

// GameState is the mutable state of one active room's match. Every field is
// touched only from the owning Room's actor goroutine.
type GameState struct {
	CurrentPlayerIndex int
	Deck               []cards.Card
	PickupCards        []cards.Card
	PlayerHands        map[string][]cards.Card
	PlayersStats       map[string]PlayerStatus
	Scores             map[string]int
	PlayersLoserOrder  []string

	Round         int
	TurnStartTime time.Time
	GameStartTime time.Time

	TimePerPlayer  time.Duration
	CanCallYaniv   int
	MaxMatchPoints int
	SlapDown       bool

	SlapDownActiveFor string // player ID, "" if no window is armed
	SlapDownCard      cards.Card

	GameEnded bool
	Winner    string

	// generation is bumped by every state transition that supersedes
	// whatever timers were guarding the previous turn (turn advance, round
	// end, match end). A scheduled timer captures the generation at arm
	// time and is a no-op if it no longer matches when it fires — see
	// room/timers.go.
	generation uint64

	// slapDownGeneration is a separate counter: a slap-down window outlives
	// the turn that opened it (the player who drew can still slap during the
	// next turn's thinking time) but is still cancelled the moment another full
	// turn advance happens, or the window is consumed or expires.
	slapDownGeneration uint64

	log *logrus.Entry
}

// activePlayerIDs returns the IDs of the players in order with status
// active, preserving room seating order.
func (g *GameState) activePlayerIDs(order []Player) []string {
	var out []string
	for _, p := range order {
		if g.PlayersStats[p.ID] == StatusActive {
			out = append(out, p.ID)
		}
	}
	return out
}

// handValue returns the current point value of a player's hand.
func (g *GameState) handValue(playerID string) int {
	return cards.HandValue(g.PlayerHands[playerID])
}
