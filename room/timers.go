package room

import "time"

// scheduleSynthetic arms a timer that, on firing, enqueues a synthetic
// message back into this room's own inbox. The generation captured here is
// checked against the live generation (GameState.generation, or
// Room.quickStartGeneration for the pre-match quick-game timer) when the
// message is handled — a fire after the state it guarded has moved on is a
// silent no-op.
func (r *Room) scheduleSynthetic(delay time.Duration, kind syntheticKind, generation uint64, playerID string) {
	time.AfterFunc(delay, func() {
		select {
		case r.inbox <- envelope{synthetic: synthetic{kind: kind, generation: generation, playerID: playerID}}:
		default:
			// The inbox is full; there's nothing more this timer can do. A
			// fire after the actor has stopped lands in the buffer unread.
		}
	})
}

func (r *Room) handleSynthetic(s synthetic) {
	switch s.kind {
	case syntheticQuickGameStart:
		if s.generation != r.quickStartGeneration {
			return
		}
		r.finalizeQuickGameConfig()
	case syntheticTurnTimeout:
		if r.Game == nil || s.generation != r.Game.generation {
			return
		}
		r.forceTurnTimeout()
	case syntheticSlapDownExpire:
		if r.Game == nil || s.generation != r.Game.slapDownGeneration {
			return
		}
		r.expireSlapDown()
	case syntheticStartRound:
		if r.Game == nil || s.generation != r.Game.generation {
			return
		}
		r.dealRound()
	case syntheticBotAction:
		if r.Game == nil || s.generation != r.Game.generation {
			return
		}
		r.performBotTurn(s.playerID)
	case syntheticBotYanivCall:
		if r.Game == nil || s.generation != r.Game.generation {
			return
		}
		r.performBotYanivCall(s.playerID)
	case syntheticBeginTurn:
		if r.Game == nil || s.generation != r.Game.generation {
			return
		}
		r.beginTurn()
	}
}
