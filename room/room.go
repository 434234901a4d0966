package room

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"yanivgame/config"
	"yanivgame/transport"
)

// Room is one lobby room and, once started, the match it's playing. All
// mutation happens inside the actor goroutine started by Run; every other
// caller communicates by sending into Enqueue.
type Room struct {
	ID        string
	Players   []Player
	Config    transport.RoomConfig
	Votes     map[string]transport.RoomConfig // keyed by nickname
	State     string                          // "waiting" | "started"
	CreatedAt time.Time
	IsPublic  bool // quick-game rooms are public; create/create_bot rooms are private
	Game      *GameState

	log           *logrus.Entry
	tunables      config.Tunables
	broadcaster   Broadcaster
	onEmpty       func(roomID string)
	onStateChange func(roomID string, waiting bool, playerCount int)

	inbox chan envelope

	quickStartGeneration uint64
}

// syntheticKind tags a timer-fired message enqueued by the room itself,
// as opposed to a Command submitted by a client.
type syntheticKind uint8

const (
	syntheticNone syntheticKind = iota
	syntheticTurnTimeout
	syntheticSlapDownExpire
	syntheticStartRound
	syntheticQuickGameStart
	syntheticBotAction
	syntheticBotYanivCall
	syntheticBeginTurn
)

type synthetic struct {
	kind       syntheticKind
	generation uint64
	playerID   string
}

// envelope is what actually flows through Room.inbox: either a client
// Command or a synthetic timer-fired message, never both.
type envelope struct {
	cmd       transport.Command
	synthetic synthetic
}

// New constructs a waiting Room. onEmpty is invoked (from the actor
// goroutine) once the room has no players left, so the caller's registry
// can drop it. onStateChange, if non-nil, is invoked (also from the actor
// goroutine) every time this room's "waiting"/"started" state or player
// count changes, so a registry can track public-waiting-room eligibility
// (§5: "per-room state is never accessed from outside its owning
// serializer") without reading r.State/r.Players directly from another
// goroutine.
func New(id string, isPublic bool, broadcaster Broadcaster, tunables config.Tunables, log *logrus.Entry, onEmpty func(string), onStateChange func(string, bool, int)) *Room {
	return &Room{
		ID:            id,
		Votes:         make(map[string]transport.RoomConfig),
		State:         "waiting",
		CreatedAt:     time.Now(),
		IsPublic:      isPublic,
		log:           log.WithField("room_id", id),
		tunables:      tunables,
		broadcaster:   broadcaster,
		onEmpty:       onEmpty,
		onStateChange: onStateChange,
		inbox:         make(chan envelope, 64),
	}
}

// notifyStateChange reports the room's current waiting-state and player
// count to the registry. Call after any mutation of r.State or r.Players.
func (r *Room) notifyStateChange() {
	if r.onStateChange != nil {
		r.onStateChange(r.ID, r.State == "waiting", len(r.Players))
	}
}

// Enqueue submits a client command to this room's actor. It never blocks
// indefinitely on a live room; a full inbox is a backpressure signal the
// caller can surface to the client as a room_error.
func (r *Room) Enqueue(cmd transport.Command) bool {
	select {
	case r.inbox <- envelope{cmd: cmd}:
		return true
	default:
		return false
	}
}

// Run is the room's actor loop: it owns every mutation of r and r.Game
// until ctx is cancelled, at which point it drains whatever is already
// queued and returns. Run is meant to be the body of one goroutine per
// room, per the concurrency model.
func (r *Room) Run(ctx context.Context) {
	for {
		select {
		case msg, ok := <-r.inbox:
			if !ok {
				return
			}
			r.handle(msg)
		case <-ctx.Done():
			r.drain()
			return
		}
	}
}

// drain processes whatever is already buffered in the inbox without
// blocking, so a shutting-down room finishes in-flight work instead of
// dropping it mid-command.
func (r *Room) drain() {
	for {
		select {
		case msg, ok := <-r.inbox:
			if !ok {
				return
			}
			r.handle(msg)
		default:
			return
		}
	}
}

func (r *Room) handle(msg envelope) {
	if msg.synthetic.kind != syntheticNone {
		r.handleSynthetic(msg.synthetic)
		return
	}
	switch cmd := msg.cmd.(type) {
	case transport.JoinRoom:
		r.handleJoinRoom(cmd)
	case transport.SetQuickGameConfig:
		r.handleSetQuickGameConfig(cmd)
	case transport.LeaveRoom:
		r.handleLeaveRoom(cmd)
	case transport.StartPrivateGame:
		r.handleStartPrivateGame(cmd)
	case transport.GetRoomState:
		r.handleGetRoomState(cmd)
	case transport.CompleteTurn:
		r.handleCompleteTurn(cmd)
	case transport.CallYaniv:
		r.handleCallYaniv(cmd)
	case transport.SlapDown:
		r.handleSlapDown(cmd)
	case transport.PlayerWantsToPlayAgain:
		r.handlePlayAgain(cmd)
	default:
		r.log.WithField("command", cmd).Warn("unroutable command reached room actor")
	}
}

// playerIndex returns the index of playerID in r.Players, or -1.
func (r *Room) playerIndex(playerID string) int {
	for i, p := range r.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// Snapshot returns the wire-facing view of this room. Safe to call from
// outside the actor only before Run starts (room creation) or by the actor
// itself; the lobby registry uses it right after AddPlayerBeforeStart, with
// no actor goroutine racing it yet.
func (r *Room) Snapshot() transport.RoomSnapshot {
	return r.snapshot()
}

func (r *Room) snapshot() transport.RoomSnapshot {
	views := make([]transport.PlayerView, len(r.Players))
	for i, p := range r.Players {
		views[i] = transport.PlayerView{ID: p.ID, NickName: p.NickName, AvatarIndex: p.AvatarIndex, IsBot: p.IsBot, Difficulty: p.Difficulty}
	}
	return transport.RoomSnapshot{ID: r.ID, Players: views, Config: r.Config, GameState: r.State, CreatedAt: r.CreatedAt}
}

func (r *Room) rejectRoom(playerID, message string) {
	r.log.WithField("player_id", playerID).Warn(message)
	r.broadcaster.BroadcastToPlayer(playerID, transport.RoomError{PlayerID: playerID, Message: message})
}

func (r *Room) rejectGame(playerID, message string) {
	r.log.WithField("player_id", playerID).Warn(message)
	r.broadcaster.BroadcastToPlayer(playerID, transport.GameError{PlayerID: playerID, Message: message})
}

func (r *Room) invariantViolation(message string, fields logrus.Fields) {
	entry := r.log
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error(message)
}
