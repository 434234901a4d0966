package room

import "yanivgame/transport"

// Broadcaster delivers outbound events to clients. A transport adapter
// outside this module implements it; rooms and their GameState never know
// how an Event reaches a socket.
type Broadcaster interface {
	Broadcast(roomID string, event transport.Event)
	BroadcastToPlayer(playerID string, event transport.Event)
}
