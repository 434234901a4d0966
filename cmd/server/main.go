// Command server is the composition root: it wires structured logging,
// tunable config, and the room registry together, then blocks until asked
// to shut down. Socket transport, HTTP routing, and CORS are an explicit
// non-goal of this module (SPEC_FULL.md §1) — main here has no listener of
// its own, since a real deployment supplies its own transport adapter that
// turns wire frames into transport.Command values and calls
// registry.Dispatch, and turns transport.Event values from a Broadcaster
// back into wire frames. logBroadcaster below stands in for that adapter
// only so this binary is runnable end to end during local development.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"yanivgame/config"
	"yanivgame/lobby"
	"yanivgame/room"
	"yanivgame/transport"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logrus.NewEntry(log)

	tunables := config.Load(entry)
	broadcaster := logBroadcaster{log: entry}
	registry := lobby.New(broadcaster, tunables, entry)

	entry.Info("yaniv core started, awaiting a transport adapter to call registry.Dispatch")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	entry.Info("shutting down, draining live rooms")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := registry.Shutdown(ctx); err != nil {
		entry.WithError(err).Warn("shutdown timed out before every room finished draining")
	}
}

// logBroadcaster logs every outbound event at debug level instead of
// forwarding it to a connected client. A real deployment replaces this with
// an adapter over its own transport (websocket, in-process channel, or
// otherwise); nothing in room or lobby depends on this type.
type logBroadcaster struct {
	log *logrus.Entry
}

func (b logBroadcaster) Broadcast(roomID string, event transport.Event) {
	b.log.WithFields(logrus.Fields{"room_id": roomID, "event": event}).Debug("broadcast")
}

func (b logBroadcaster) BroadcastToPlayer(playerID string, event transport.Event) {
	b.log.WithFields(logrus.Fields{"player_id": playerID, "event": event}).Debug("broadcast to player")
}

var _ room.Broadcaster = logBroadcaster{}
