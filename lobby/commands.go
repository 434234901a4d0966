package lobby

import (
	"yanivgame/room"
	"yanivgame/transport"
)

// Dispatch routes one inbound Command to the room it belongs to, creating a
// room first for the three entry points that need one (create_room,
// quick_game, create_bot_room). Every other command is handed to whatever
// room the registry already associates with it, either by an explicit
// RoomID field or by the player->room index. A command that names an unknown
// room or untracked player is answered with room_error, never silently
// dropped.
func (reg *Registry) Dispatch(cmd transport.Command) {
	switch c := cmd.(type) {
	case transport.CreateRoom:
		reg.handleCreateRoom(c)
	case transport.QuickGame:
		reg.handleQuickGame(c)
	case transport.CreateBotRoom:
		reg.handleCreateBotRoom(c)

	case transport.JoinRoom:
		// Associated optimistically: membership's source of truth is the
		// room's own Players list, not this index. A rejected join (room
		// full, already started) leaves a stale association that only
		// affects this player's own next command, routing it to a room
		// that will itself reject it with room_error.
		reg.associate(c.PlayerID, c.RoomID)
		reg.routeByRoomID(c.RoomID, c.PlayerID, c)
	case transport.SetQuickGameConfig:
		reg.routeByRoomID(c.RoomID, c.PlayerID, c)
	case transport.StartPrivateGame:
		reg.routeByRoomID(c.RoomID, c.PlayerID, c)
	case transport.GetRoomState:
		reg.routeByRoomID(c.RoomID, c.PlayerID, c)

	case transport.LeaveRoom:
		reg.routeByPlayer(c.PlayerID, c)
	case transport.CompleteTurn:
		reg.routeByPlayer(c.PlayerID, c)
	case transport.CallYaniv:
		reg.routeByPlayer(c.PlayerID, c)
	case transport.SlapDown:
		reg.routeByPlayer(c.PlayerID, c)
	case transport.PlayerWantsToPlayAgain:
		reg.routeByPlayer(c.PlayerID, c)

	default:
		reg.log.WithField("command", cmd).Warn("unroutable command reached the lobby registry")
	}
}

func (reg *Registry) routeByRoomID(roomID, playerID string, cmd transport.Command) {
	r := reg.lookupRoom(roomID)
	if r == nil {
		reg.broadcaster.BroadcastToPlayer(playerID, transport.RoomError{PlayerID: playerID, Message: "unknown room"})
		return
	}
	if !r.Enqueue(cmd) {
		reg.broadcaster.BroadcastToPlayer(playerID, transport.RoomError{PlayerID: playerID, Message: "room is busy, try again"})
	}
}

func (reg *Registry) routeByPlayer(playerID string, cmd transport.Command) {
	r := reg.roomForPlayer(playerID)
	if r == nil {
		reg.broadcaster.BroadcastToPlayer(playerID, transport.RoomError{PlayerID: playerID, Message: "you are not in a room"})
		return
	}
	if !r.Enqueue(cmd) {
		reg.broadcaster.BroadcastToPlayer(playerID, transport.RoomError{PlayerID: playerID, Message: "room is busy, try again"})
	}
}

// handleCreateRoom creates a private room with the creator's chosen config
// and seats the creator before the room's actor starts.
func (reg *Registry) handleCreateRoom(c transport.CreateRoom) {
	r := reg.newRoom(false)
	r.Config = c.Config
	r.AddPlayerBeforeStart(room.Player{ID: c.PlayerID, NickName: c.NickName})
	snap := r.Snapshot()
	reg.launch(r)
	reg.associate(c.PlayerID, r.ID)
	reg.broadcaster.BroadcastToPlayer(c.PlayerID, transport.RoomCreated{RoomID: r.ID, Room: snap})
}

// handleCreateBotRoom creates a private room, seats the creator, then backs
// it with the requested bot difficulties — all before the room's actor
// starts accepting commands, matching §4.4.1's bot-backfill timing.
func (reg *Registry) handleCreateBotRoom(c transport.CreateBotRoom) {
	r := reg.newRoom(false)
	r.Config = c.Config
	r.AddPlayerBeforeStart(room.Player{ID: c.PlayerID, NickName: c.NickName})
	for i, seat := range c.BotSeats {
		r.AddPlayerBeforeStart(room.Player{
			ID:          botPlayerID(),
			NickName:    botNickName(i),
			AvatarIndex: i + 1,
			IsBot:       true,
			Difficulty:  seat.Difficulty,
		})
	}
	snap := r.Snapshot()
	reg.launch(r)
	reg.associate(c.PlayerID, r.ID)
	reg.broadcaster.BroadcastToPlayer(c.PlayerID, transport.RoomCreated{RoomID: r.ID, Room: snap})
}

// handleQuickGame seats the requester into an existing public waiting room
// with a free seat, or creates a new public room for them, then routes the
// seating itself through the room's own join_room handling so a room that
// has already started its actor goroutine is never mutated from outside it.
func (reg *Registry) handleQuickGame(c transport.QuickGame) {
	r := reg.publicWaitingRoom()
	if r == nil {
		r = reg.newRoom(true)
		reg.launch(r)
	}
	reg.associate(c.PlayerID, r.ID)
	if !r.Enqueue(transport.JoinRoom{PlayerID: c.PlayerID, RoomID: r.ID, NickName: c.NickName}) {
		reg.broadcaster.BroadcastToPlayer(c.PlayerID, transport.RoomError{PlayerID: c.PlayerID, Message: "room is busy, try again"})
	}
}

func botNickName(seatIndex int) string {
	names := [...]string{"Bot Alpha", "Bot Bravo", "Bot Charlie", "Bot Delta", "Bot Echo", "Bot Foxtrot", "Bot Golf"}
	if seatIndex < len(names) {
		return names[seatIndex]
	}
	return "Bot"
}
