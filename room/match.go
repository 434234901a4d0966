package room

import (
	"sort"
	"time"

	"yanivgame/cards"
	"yanivgame/transport"
)

// startMatch transitions the room from waiting to started and deals the
// first round.
func (r *Room) startMatch(cfg transport.RoomConfig) {
	r.Config = cfg
	r.State = "started"
	r.notifyStateChange()
	r.Game = &GameState{
		PlayerHands:    make(map[string][]cards.Card),
		PlayersStats:   make(map[string]PlayerStatus),
		Scores:         make(map[string]int),
		TimePerPlayer:  time.Duration(cfg.TimePerPlayer) * time.Second,
		CanCallYaniv:   cfg.CanCallYaniv,
		MaxMatchPoints: cfg.MaxMatchPoints,
		SlapDown:       cfg.SlapDown,
		GameStartTime:  time.Now(),
		log:            r.log,
	}
	for _, p := range r.Players {
		r.Game.PlayersStats[p.ID] = StatusActive
		r.Game.Scores[p.ID] = 0
	}

	views := make([]transport.PlayerView, len(r.Players))
	for i, p := range r.Players {
		views[i] = transport.PlayerView{ID: p.ID, NickName: p.NickName, AvatarIndex: p.AvatarIndex, IsBot: p.IsBot, Difficulty: p.Difficulty}
	}
	r.broadcaster.Broadcast(r.ID, transport.StartGame{RoomID: r.ID, Config: cfg, Players: views})

	r.dealRound()
}

// endMatch finalizes the match: marks winnerID as the winner, computes the
// places list, and broadcasts game_ended.
func (r *Room) endMatch(winnerID string) {
	g := r.Game
	g.generation++ // supersede every outstanding timer
	g.slapDownGeneration++
	g.GameEnded = true
	g.Winner = winnerID
	if g.PlayersStats[winnerID] == StatusActive {
		g.PlayersStats[winnerID] = StatusWinner
	}

	places := make([]string, 0, len(r.Players))
	for i := len(g.PlayersLoserOrder) - 1; i >= 0; i-- {
		places = append(places, g.PlayersLoserOrder[i])
	}
	hasWinner := false
	for _, id := range places {
		if id == winnerID {
			hasWinner = true
			break
		}
	}
	if !hasWinner {
		places = append([]string{winnerID}, places...)
	}
	// Leavers are no longer in r.Players; only PlayersStats still records them.
	var leavers []string
	for id, status := range g.PlayersStats {
		if status == StatusLeave {
			leavers = append(leavers, id)
		}
	}
	sort.Strings(leavers)
	places = append(places, leavers...)

	finalScores := make(map[string]int, len(g.Scores))
	for k, v := range g.Scores {
		finalScores[k] = v
	}
	r.broadcaster.Broadcast(r.ID, transport.GameEnded{
		RoomID:       r.ID,
		Winner:       winnerID,
		FinalScores:  finalScores,
		PlayersStats: r.playerStats(),
		Places:       places,
	})
}

func (r *Room) playerStats() []transport.PlayerStat {
	out := make([]transport.PlayerStat, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, transport.PlayerStat{
			PlayerID:    p.ID,
			PlayerName:  p.NickName,
			AvatarIndex: p.AvatarIndex,
			Status:      transport.PlayerStatusValue(r.Game.PlayersStats[p.ID]),
			Score:       r.Game.Scores[p.ID],
		})
	}
	return out
}
