// Package lobby owns the cross-room registry: creating rooms (private,
// bot-seated, or public quick-game), routing every inbound transport.Command
// to the right room's actor, and draining all live room actors on shutdown.
// Per-room state itself is never touched here — that's room.Room's job; this
// package only ever holds the short-lived map lock described in the
// concurrency model (§5).
package lobby

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"yanivgame/config"
	"yanivgame/room"
)

// maxQuickGameSeats mirrors room.maxPlayersPerRoom (unexported there); a
// public room stops accepting quick-game joins at the same cap a private
// room stops accepting join_room at.
const maxQuickGameSeats = 8

type entry struct {
	room   *room.Room
	cancel context.CancelFunc
	done   chan struct{}

	// isPublic, waiting, and playerCount mirror the room's own state, kept
	// current via onStateChange callbacks from the room's actor goroutine.
	// The registry must never read room.Room fields directly (§5: per-room
	// state is only ever touched by its owning serializer) — these fields
	// are this registry's own copy, guarded by reg.mu like everything else
	// in this struct.
	isPublic    bool
	waiting     bool
	playerCount int
}

// Registry is the process-wide room map and player->room index.
type Registry struct {
	mu      sync.Mutex
	rooms   map[string]*entry
	players map[string]string // playerID -> roomID

	broadcaster room.Broadcaster
	tunables    config.Tunables
	log         *logrus.Entry
}

// New constructs an empty registry. broadcaster is shared by every room this
// registry creates; the transport adapter outside this module supplies it.
func New(broadcaster room.Broadcaster, tunables config.Tunables, log *logrus.Entry) *Registry {
	return &Registry{
		rooms:       make(map[string]*entry),
		players:     make(map[string]string),
		broadcaster: broadcaster,
		tunables:    tunables,
		log:         log,
	}
}

// newRoom allocates a fresh room code and constructs the Room, without
// starting its actor goroutine yet. Callers that need to seed players via
// AddPlayerBeforeStart must do so before calling launch.
func (reg *Registry) newRoom(isPublic bool) *room.Room {
	reg.mu.Lock()
	code := reg.generateRoomCodeLocked()
	reg.mu.Unlock()

	return room.New(code, isPublic, reg.broadcaster, reg.tunables, reg.log, reg.onRoomEmpty, reg.onRoomStateChange)
}

// launch registers r in the room map and starts its actor goroutine under a
// cancellable child context. Call only once all pre-Run seating
// (AddPlayerBeforeStart) is done.
func (reg *Registry) launch(r *room.Room) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	reg.mu.Lock()
	reg.rooms[r.ID] = &entry{
		room:        r,
		cancel:      cancel,
		done:        done,
		isPublic:    r.IsPublic,
		waiting:     true,
		playerCount: len(r.Players),
	}
	reg.mu.Unlock()

	go func() {
		r.Run(ctx)
		close(done)
	}()
}

// generateRoomCodeLocked samples a 6-character alphanumeric code, retrying on
// collision with a live room. Caller must hold reg.mu.
func (reg *Registry) generateRoomCodeLocked() string {
	for {
		code := randomRoomCode(reg.tunables.RoomCodeLength)
		if _, exists := reg.rooms[code]; !exists {
			return code
		}
	}
}

func (reg *Registry) lookupRoom(roomID string) *room.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	e, ok := reg.rooms[roomID]
	if !ok {
		return nil
	}
	return e.room
}

func (reg *Registry) roomForPlayer(playerID string) *room.Room {
	reg.mu.Lock()
	roomID, ok := reg.players[playerID]
	reg.mu.Unlock()
	if !ok {
		return nil
	}
	return reg.lookupRoom(roomID)
}

// associate records that playerID participates in roomID. A player joining
// elsewhere first removes them from any prior room's index entry, per the
// data model's "at most one Room per player" invariant; the prior Room's own
// state still carries them until they actually leave_room it.
func (reg *Registry) associate(playerID, roomID string) {
	reg.mu.Lock()
	reg.players[playerID] = roomID
	reg.mu.Unlock()
}

// onRoomStateChange is the room.Room onStateChange callback: it keeps this
// registry's own copy of a room's waiting/player-count state current so
// publicWaitingRoom never needs to read the room's fields directly.
func (reg *Registry) onRoomStateChange(roomID string, waiting bool, playerCount int) {
	reg.mu.Lock()
	if e, ok := reg.rooms[roomID]; ok {
		e.waiting = waiting
		e.playerCount = playerCount
	}
	reg.mu.Unlock()
}

func (reg *Registry) onRoomEmpty(roomID string) {
	reg.mu.Lock()
	e, ok := reg.rooms[roomID]
	if ok {
		delete(reg.rooms, roomID)
		for pid, rid := range reg.players {
			if rid == roomID {
				delete(reg.players, pid)
			}
		}
	}
	reg.mu.Unlock()
	if ok {
		e.cancel()
	}
}

// publicWaitingRoom returns a public room still accepting quick-game joins,
// or nil if none has room.
func (reg *Registry) publicWaitingRoom() *room.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, e := range reg.rooms {
		if e.isPublic && e.waiting && e.playerCount < maxQuickGameSeats {
			return e.room
		}
	}
	return nil
}

// botPlayerID mints a deterministic-shaped synthetic ID for a bot seat.
func botPlayerID() string {
	return "bot-" + uuid.NewString()
}

// Shutdown cancels every live room's actor and waits for each to finish
// draining its inbox, bounded by ctx. Grounded on SPEC_FULL.md §4.4.1: a
// supervisory drain layered on top of per-room serialization, using
// golang.org/x/sync/errgroup to wait on all of them concurrently.
func (reg *Registry) Shutdown(ctx context.Context) error {
	reg.mu.Lock()
	entries := make([]*entry, 0, len(reg.rooms))
	for _, e := range reg.rooms {
		entries = append(entries, e)
	}
	reg.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		e.cancel()
		g.Go(func() error {
			select {
			case <-e.done:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}
