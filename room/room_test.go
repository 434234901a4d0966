package room

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yanivgame/cards"
	"yanivgame/config"
	"yanivgame/transport"
)

// mockBroadcaster captures outbound events for assertions, grounded on the
// teacher's service/internal/game/game_test.go mockBroadcaster.
type mockBroadcaster struct {
	mu           sync.Mutex
	allEvents    []transport.Event
	playerEvents map[string][]transport.Event
}

func newMockBroadcaster() *mockBroadcaster {
	return &mockBroadcaster{playerEvents: make(map[string][]transport.Event)}
}

func (mb *mockBroadcaster) Broadcast(roomID string, event transport.Event) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.allEvents = append(mb.allEvents, event)
}

func (mb *mockBroadcaster) BroadcastToPlayer(playerID string, event transport.Event) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.playerEvents[playerID] = append(mb.playerEvents[playerID], event)
}

func (mb *mockBroadcaster) last() transport.Event {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if len(mb.allEvents) == 0 {
		return nil
	}
	return mb.allEvents[len(mb.allEvents)-1]
}

func (mb *mockBroadcaster) findByType(match func(transport.Event) bool) transport.Event {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for i := len(mb.allEvents) - 1; i >= 0; i-- {
		if match(mb.allEvents[i]) {
			return mb.allEvents[i]
		}
	}
	return nil
}

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel) // silence during tests
	return logrus.NewEntry(l)
}

// newTestRoom builds a two-player started match with a fixed, non-random
// hand/deck layout so tests are deterministic — dealRound's real shuffle is
// bypassed entirely.
func newTestRoom(t *testing.T) (*Room, *mockBroadcaster) {
	t.Helper()
	mb := newMockBroadcaster()
	r := New("TEST01", false, mb, config.Defaults(), testLog(), func(string) {}, nil)
	r.Players = []Player{
		{ID: "p1", NickName: "Alice"},
		{ID: "p2", NickName: "Bob"},
	}
	r.State = "started"
	r.Game = &GameState{
		CurrentPlayerIndex: 0,
		Deck: []cards.Card{
			{Suit: cards.Clubs, Rank: cards.King},
			{Suit: cards.Spades, Rank: cards.Two}, // top of deck (drawn first)
		},
		PickupCards: []cards.Card{{Suit: cards.Hearts, Rank: cards.Nine}},
		PlayerHands: map[string][]cards.Card{
			"p1": {
				{Suit: cards.Spades, Rank: cards.Ace},
				{Suit: cards.Hearts, Rank: cards.Three},
			},
			"p2": {
				{Suit: cards.Diamonds, Rank: cards.Four},
				{Suit: cards.Clubs, Rank: cards.Five},
			},
		},
		PlayersStats:   map[string]PlayerStatus{"p1": StatusActive, "p2": StatusActive},
		Scores:         map[string]int{"p1": 0, "p2": 0},
		TimePerPlayer:  15 * time.Second,
		CanCallYaniv:   7,
		MaxMatchPoints: 100,
		SlapDown:       true,
		log:            testLog(),
	}
	return r, mb
}

func TestHandleCompleteTurnRejectsWrongPlayer(t *testing.T) {
	r, mb := newTestRoom(t)
	r.handleCompleteTurn(transport.CompleteTurn{
		PlayerID:      "p2",
		Action:        transport.TurnAction{Choice: transport.ChoiceDeck},
		SelectedCards: []cards.Card{{Suit: cards.Hearts, Rank: cards.Three}},
	})
	ev, ok := mb.playerEvents["p2"][len(mb.playerEvents["p2"])-1].(transport.GameError)
	require.True(t, ok)
	assert.Equal(t, "not your turn", ev.Message)
}

func TestHandleCompleteTurnDeckDrawAdvancesTurn(t *testing.T) {
	r, mb := newTestRoom(t)
	r.handleCompleteTurn(transport.CompleteTurn{
		PlayerID:      "p1",
		Action:        transport.TurnAction{Choice: transport.ChoiceDeck},
		SelectedCards: []cards.Card{{Suit: cards.Hearts, Rank: cards.Three}},
	})

	assert.Equal(t, 1, r.Game.CurrentPlayerIndex, "turn should advance to p2")
	assert.Contains(t, r.Game.PlayerHands["p1"], cards.Card{Suit: cards.Spades, Rank: cards.Two}, "p1 should have drawn the deck top")
	assert.Equal(t, []cards.Card{{Suit: cards.Hearts, Rank: cards.Three}}, r.Game.PickupCards)

	drew := mb.findByType(func(e transport.Event) bool { _, ok := e.(transport.PlayerDrew); return ok })
	require.NotNil(t, drew)
	pd := drew.(transport.PlayerDrew)
	assert.Equal(t, transport.SourceDeck, pd.Source)
	assert.Equal(t, "p2", pd.CurrentPlayerID)
}

func TestHandleCompleteTurnRejectsInvalidSelection(t *testing.T) {
	r, mb := newTestRoom(t)
	r.handleCompleteTurn(transport.CompleteTurn{
		PlayerID: "p1",
		Action:   transport.TurnAction{Choice: transport.ChoiceDeck},
		SelectedCards: []cards.Card{
			{Suit: cards.Spades, Rank: cards.Ace},
			{Suit: cards.Hearts, Rank: cards.Three},
		},
	})
	ev := mb.playerEvents["p1"][len(mb.playerEvents["p1"])-1].(transport.GameError)
	assert.Equal(t, "selected cards do not form a valid set or run", ev.Message)
	assert.Equal(t, 0, r.Game.CurrentPlayerIndex, "an illegal command must not mutate turn state")
}

func TestForceTurnTimeoutDiscardsHighestCard(t *testing.T) {
	r, _ := newTestRoom(t)
	r.forceTurnTimeout()
	assert.NotContains(t, r.Game.PlayerHands["p1"], cards.Card{Suit: cards.Hearts, Rank: cards.Three})
	assert.Equal(t, []cards.Card{{Suit: cards.Hearts, Rank: cards.Three}}, r.Game.PickupCards)
	assert.Equal(t, 1, r.Game.CurrentPlayerIndex)
}

func TestHandleCallYanivRejectsAboveThreshold(t *testing.T) {
	r, mb := newTestRoom(t)
	r.Game.PlayerHands["p1"] = []cards.Card{
		{Suit: cards.Spades, Rank: cards.King},
		{Suit: cards.Hearts, Rank: cards.King},
	}
	r.handleCallYaniv(transport.CallYaniv{PlayerID: "p1"})
	ev := mb.playerEvents["p1"][len(mb.playerEvents["p1"])-1].(transport.GameError)
	assert.Equal(t, "Cannot call Yaniv with 20 points. Maximum is 7.", ev.Message)
	assert.False(t, r.Game.GameEnded)
}

func TestResolveYanivCallerWinsOutright(t *testing.T) {
	r, mb := newTestRoom(t)
	// p1 hand value 1+3=4, p2 hand value 4+5=9: caller strictly lower, wins.
	r.handleCallYaniv(transport.CallYaniv{PlayerID: "p1"})

	roundEnded := mb.findByType(func(e transport.Event) bool { _, ok := e.(transport.RoundEnded); return ok })
	require.NotNil(t, roundEnded)
	re := roundEnded.(transport.RoundEnded)
	assert.Equal(t, "p1", re.WinnerID)
	assert.Equal(t, "", re.AssafCaller)
	assert.Equal(t, 0, r.Game.Scores["p1"])
	assert.Equal(t, 9, r.Game.Scores["p2"])
}

func TestResolveYanivAssafPenalizesCaller(t *testing.T) {
	r, mb := newTestRoom(t)
	// Make p2's hand tie p1's caller value: both total 4.
	r.Game.PlayerHands["p2"] = []cards.Card{
		{Suit: cards.Diamonds, Rank: cards.Ace},
		{Suit: cards.Clubs, Rank: cards.Three},
	}
	r.handleCallYaniv(transport.CallYaniv{PlayerID: "p1"})

	roundEnded := mb.findByType(func(e transport.Event) bool { _, ok := e.(transport.RoundEnded); return ok })
	require.NotNil(t, roundEnded)
	re := roundEnded.(transport.RoundEnded)
	assert.Equal(t, "p2", re.WinnerID, "opponent tying the caller wins on Assaf")
	assert.Equal(t, "p2", re.AssafCaller)
	assert.Equal(t, 30+4, r.Game.Scores["p1"])
	assert.Equal(t, 0, r.Game.Scores["p2"])
}

func TestResolveYanivAppliesFiftyBonusReduction(t *testing.T) {
	r, _ := newTestRoom(t)
	r.Game.Scores["p2"] = 41 // 41 + 9 = 50, exact multiple -> reduced by 50
	r.handleCallYaniv(transport.CallYaniv{PlayerID: "p1"})
	assert.Equal(t, 0, r.Game.Scores["p2"])
}

func TestResolveYanivEliminatesOverMaxMatchPoints(t *testing.T) {
	r, mb := newTestRoom(t)
	r.Game.MaxMatchPoints = 5
	r.handleCallYaniv(transport.CallYaniv{PlayerID: "p1"}) // p2 scores 9 > 5
	assert.Equal(t, StatusLost, r.Game.PlayersStats["p2"])
	assert.Equal(t, []string{"p2"}, r.Game.PlayersLoserOrder)
	assert.True(t, r.Game.GameEnded, "one active player left after elimination should end the match")
	assert.Equal(t, "p1", r.Game.Winner)

	ended := mb.findByType(func(e transport.Event) bool { _, ok := e.(transport.GameEnded); return ok })
	require.NotNil(t, ended)
}

func TestHandleSlapDownExtendsPickupPile(t *testing.T) {
	r, mb := newTestRoom(t)
	// A single discarded nine; slapping a second nine onto it builds a pair —
	// SlapDownValidFrom's single-card case only matches same rank or joker.
	r.Game.PickupCards = []cards.Card{{Suit: cards.Hearts, Rank: cards.Nine}}
	r.Game.SlapDownActiveFor = "p2"
	r.Game.SlapDownCard = cards.Card{Suit: cards.Clubs, Rank: cards.Nine}
	r.Game.PlayerHands["p2"] = append(r.Game.PlayerHands["p2"], cards.Card{Suit: cards.Clubs, Rank: cards.Nine})

	r.handleSlapDown(transport.SlapDown{PlayerID: "p2", Card: cards.Card{Suit: cards.Clubs, Rank: cards.Nine}})

	assert.Equal(t, "", r.Game.SlapDownActiveFor)
	assert.Equal(t, []cards.Card{{Suit: cards.Hearts, Rank: cards.Nine}, {Suit: cards.Clubs, Rank: cards.Nine}}, r.Game.PickupCards)
	assert.Equal(t, 0, r.Game.CurrentPlayerIndex, "slap-down never advances the turn")

	drew := mb.last().(transport.PlayerDrew)
	assert.Equal(t, transport.SourceSlap, drew.Source)
}

func TestHandleSlapDownRejectsWrongCard(t *testing.T) {
	r, mb := newTestRoom(t)
	r.Game.SlapDownActiveFor = "p2"
	r.Game.SlapDownCard = cards.Card{Suit: cards.Hearts, Rank: cards.Nine}

	r.handleSlapDown(transport.SlapDown{PlayerID: "p2", Card: cards.Card{Suit: cards.Clubs, Rank: cards.Two}})

	ev := mb.playerEvents["p2"][len(mb.playerEvents["p2"])-1].(transport.GameError)
	assert.Equal(t, "that is not the slappable card", ev.Message)
}

func TestCheckSoleSurvivorEndsMatchOnLeave(t *testing.T) {
	r, mb := newTestRoom(t)
	r.handleLeaveRoom(transport.LeaveRoom{PlayerID: "p2"})
	assert.True(t, r.Game.GameEnded)
	assert.Equal(t, "p1", r.Game.Winner)
	ended := mb.findByType(func(e transport.Event) bool { _, ok := e.(transport.GameEnded); return ok })
	require.NotNil(t, ended)
}

func TestHandlePlayAgainRequiresAllVotesAndAtLeastTwo(t *testing.T) {
	r, mb := newTestRoom(t)
	r.Game.GameEnded = true

	r.handlePlayAgain(transport.PlayerWantsToPlayAgain{PlayerID: "p1"})
	assert.Equal(t, "started", r.State, "a single vote must not restart the match")
	stats := mb.findByType(func(e transport.Event) bool { _, ok := e.(transport.SetPlayersStatsData); return ok })
	require.NotNil(t, stats)

	r.handlePlayAgain(transport.PlayerWantsToPlayAgain{PlayerID: "p2"})
	assert.Equal(t, "started", r.State, "startMatch resets State back to started")
	assert.False(t, r.Game.GameEnded, "a fresh match must not be ended")
}
