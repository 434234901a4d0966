package room

import "yanivgame/transport"

// maxPlayersPerRoom bounds room size. Not stated numerically by the wire
// contract; chosen so a full room (40 of 54 cards dealt) still leaves
// enough of the deck to play a round.
const maxPlayersPerRoom = 8

// AddPlayerBeforeStart seats a player directly, without going through the
// actor's inbox. Only safe to call before Run has been started for this
// room (room construction time): create_room and create_bot_room seat the
// creator and any requested bots synchronously, with no concurrent actor
// goroutine yet running to race against.
func (r *Room) AddPlayerBeforeStart(p Player) {
	r.Players = append(r.Players, p)
}

func (r *Room) handleJoinRoom(cmd transport.JoinRoom) {
	if r.State == "started" {
		r.rejectRoom(cmd.PlayerID, "room already started")
		return
	}
	if len(r.Players) >= maxPlayersPerRoom {
		r.rejectRoom(cmd.PlayerID, "room full")
		return
	}
	if r.playerIndex(cmd.PlayerID) >= 0 {
		r.rejectRoom(cmd.PlayerID, "already in this room")
		return
	}
	p := Player{ID: cmd.PlayerID, NickName: cmd.NickName, AvatarIndex: len(r.Players)}
	r.Players = append(r.Players, p)
	r.notifyStateChange()
	r.log.WithField("player_id", p.ID).Info("player joined room")
	r.broadcaster.Broadcast(r.ID, transport.PlayerJoined{
		RoomID: r.ID,
		Player: transport.PlayerView{ID: p.ID, NickName: p.NickName, AvatarIndex: p.AvatarIndex},
		Room:   r.snapshot(),
	})
	if r.IsPublic {
		r.reevaluateQuickStartTimer()
	}
}

func (r *Room) handleSetQuickGameConfig(cmd transport.SetQuickGameConfig) {
	if !r.IsPublic || r.State != "waiting" {
		r.rejectRoom(cmd.PlayerID, "not accepting config votes")
		return
	}
	if r.playerIndex(cmd.PlayerID) < 0 {
		r.rejectRoom(cmd.PlayerID, "not in this room")
		return
	}
	r.Votes[cmd.NickName] = cmd.Config
	r.broadcaster.Broadcast(r.ID, transport.VotesConfig{RoomID: r.ID, Votes: cloneVotes(r.Votes)})
}

func cloneVotes(votes map[string]transport.RoomConfig) map[string]transport.RoomConfig {
	out := make(map[string]transport.RoomConfig, len(votes))
	for k, v := range votes {
		out[k] = v
	}
	return out
}

func (r *Room) handleLeaveRoom(cmd transport.LeaveRoom) {
	idx := r.playerIndex(cmd.PlayerID)
	if idx < 0 {
		return
	}
	p := r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	delete(r.Votes, p.NickName)
	r.notifyStateChange()

	r.log.WithField("player_id", p.ID).Info("player left room")
	r.broadcaster.Broadcast(r.ID, transport.PlayerLeft{RoomID: r.ID, PlayerID: p.ID, Room: r.snapshot()})

	if r.Game != nil && !r.Game.GameEnded {
		r.Game.PlayersStats[p.ID] = StatusLeave
		delete(r.Game.PlayerHands, p.ID)
		r.checkSoleSurvivor()
	}

	if len(r.Players) == 0 {
		r.onEmpty(r.ID)
		return
	}
	if r.IsPublic && (r.Game == nil || r.Game.GameEnded) {
		r.reevaluateQuickStartTimer()
	}
}

// checkSoleSurvivor ends the match immediately if a disconnect/leave leaves
// exactly one non-{lost,leave} player.
func (r *Room) checkSoleSurvivor() {
	if r.Game == nil || r.Game.GameEnded {
		return
	}
	var remaining []string
	for _, p := range r.Players {
		switch r.Game.PlayersStats[p.ID] {
		case StatusLost, StatusLeave:
		default:
			remaining = append(remaining, p.ID)
		}
	}
	if len(remaining) == 1 {
		r.endMatch(remaining[0])
	}
}

func (r *Room) handleStartPrivateGame(cmd transport.StartPrivateGame) {
	if r.IsPublic {
		r.rejectRoom(cmd.PlayerID, "quick-game rooms start automatically")
		return
	}
	if r.State != "waiting" {
		r.rejectRoom(cmd.PlayerID, "game already started")
		return
	}
	if len(r.Players) < 2 {
		r.rejectRoom(cmd.PlayerID, "need at least 2 players to start")
		return
	}
	r.startMatch(r.Config)
}

func (r *Room) handleGetRoomState(cmd transport.GetRoomState) {
	r.broadcaster.BroadcastToPlayer(cmd.PlayerID, transport.RoomState{PlayerID: cmd.PlayerID, Room: r.snapshot()})
}

func (r *Room) handlePlayAgain(cmd transport.PlayerWantsToPlayAgain) {
	if r.Game == nil || !r.Game.GameEnded {
		r.rejectGame(cmd.PlayerID, "no ended match to replay")
		return
	}
	if r.playerIndex(cmd.PlayerID) < 0 {
		return
	}
	r.Game.PlayersStats[cmd.PlayerID] = StatusPlayAgain
	votes := 0
	for _, p := range r.Players {
		if r.Game.PlayersStats[p.ID] == StatusPlayAgain {
			votes++
		}
	}
	allVoted := true
	for _, p := range r.Players {
		if r.Game.PlayersStats[p.ID] != StatusPlayAgain {
			allVoted = false
			break
		}
	}
	if allVoted && votes >= 2 {
		r.State = "waiting"
		r.startMatch(r.Config)
		return
	}
	r.broadcaster.Broadcast(r.ID, transport.SetPlayersStatsData{
		RoomID:       r.ID,
		PlayerID:     cmd.PlayerID,
		PlayersStats: r.playerStats(),
	})
}
