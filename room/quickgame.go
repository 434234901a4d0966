package room

import "yanivgame/transport"

// reevaluateQuickStartTimer re-arms (or cancels) the staged quick-game
// start timer after a join/leave to a public waiting room.
func (r *Room) reevaluateQuickStartTimer() {
	r.quickStartGeneration++
	n := len(r.Players)
	if n < 2 {
		return // cancelled: bumping the generation invalidates any pending fire
	}
	var delay = r.tunables.QuickStartTimerFourPlayers
	switch n {
	case 2:
		delay = r.tunables.QuickStartTimerTwoPlayers
	case 3:
		delay = r.tunables.QuickStartTimerThreePlayers
	}
	r.scheduleSynthetic(delay, syntheticQuickGameStart, r.quickStartGeneration, "")
}

// finalizeQuickGameConfig resolves the voted RoomConfig by strict majority
// per field, falling back to the spec defaults, then starts the match.
func (r *Room) finalizeQuickGameConfig() {
	def := transport.DefaultRoomConfig()
	total := len(r.Votes)

	cfg := transport.RoomConfig{
		SlapDown:       majorityBool(r.Votes, total, def.SlapDown, func(c transport.RoomConfig) bool { return c.SlapDown }),
		TimePerPlayer:  majorityInt(r.Votes, total, def.TimePerPlayer, func(c transport.RoomConfig) int { return c.TimePerPlayer }),
		CanCallYaniv:   majorityInt(r.Votes, total, def.CanCallYaniv, func(c transport.RoomConfig) int { return c.CanCallYaniv }),
		MaxMatchPoints: majorityInt(r.Votes, total, def.MaxMatchPoints, func(c transport.RoomConfig) int { return c.MaxMatchPoints }),
	}
	r.startMatch(cfg)
}

func majorityBool(votes map[string]transport.RoomConfig, total int, fallback bool, field func(transport.RoomConfig) bool) bool {
	counts := map[bool]int{}
	for _, v := range votes {
		counts[field(v)]++
	}
	for val, n := range counts {
		if n*2 > total {
			return val
		}
	}
	return fallback
}

func majorityInt(votes map[string]transport.RoomConfig, total int, fallback int, field func(transport.RoomConfig) int) int {
	counts := map[int]int{}
	for _, v := range votes {
		counts[field(v)]++
	}
	for val, n := range counts {
		if n*2 > total {
			return val
		}
	}
	return fallback
}
