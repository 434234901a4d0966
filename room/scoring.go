package room

import (
	"sort"
	"time"

	"yanivgame/transport"
)

// resolveYaniv ends the current round: it determines the winner (or the
// Assaf opponent), scores every active player, applies the bonus
// reduction, marks eliminations, and either schedules the next round or
// ends the match.
func (r *Room) resolveYaniv(callerID string) {
	g := r.Game
	g.generation++
	g.slapDownGeneration++

	active := g.activePlayerIDs(r.Players)
	callerValue := g.handValue(callerID)

	minValue := -1
	minOpponent := ""
	for _, id := range active {
		if id == callerID {
			continue
		}
		v := g.handValue(id)
		if minValue == -1 || v < minValue {
			minValue, minOpponent = v, id
		}
	}

	winner := callerID
	assafCaller := ""
	if minValue != -1 && callerValue >= minValue {
		winner = minOpponent
		assafCaller = minOpponent
	}

	deltas := make(map[string][]int, len(active))
	var newlyLost []string
	for _, id := range active {
		delta := 0
		switch {
		case id == winner:
			delta = 0
		case id == callerID: // Assaffed
			delta = 30 + g.handValue(id)
		default:
			delta = g.handValue(id)
		}

		newScore := g.Scores[id] + delta
		increments := []int{delta}
		if newScore != 0 && newScore%50 == 0 {
			newScore -= 50
			increments = append(increments, -50)
		}
		g.Scores[id] = newScore
		deltas[id] = increments

		if newScore > g.MaxMatchPoints {
			newlyLost = append(newlyLost, id)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(newlyLost)))
	for _, id := range newlyLost {
		g.PlayersStats[id] = StatusLost
		g.PlayersLoserOrder = append(g.PlayersLoserOrder, id)
	}

	r.broadcaster.Broadcast(r.ID, transport.RoundEnded{
		RoomID:            r.ID,
		WinnerID:          winner,
		PlayersStats:      r.playerStats(),
		YanivCaller:       callerID,
		AssafCaller:       assafCaller,
		PlayerHands:       copyHands(g.PlayerHands),
		RoundPlayers:      active,
		PlayersRoundScore: deltas,
		Losers:            newlyLost,
	})
	for _, id := range newlyLost {
		if idx := r.playerIndex(id); idx >= 0 && !r.Players[idx].IsBot {
			r.broadcaster.Broadcast(r.ID, transport.HumanLost{RoomID: r.ID, PlayerID: id})
		}
	}

	stillActive := g.activePlayerIDs(r.Players)
	if len(stillActive) >= 2 {
		delay := time.Duration(2000*len(active)-1) * time.Millisecond
		if len(newlyLost) > 0 {
			delay += 3250 * time.Millisecond
		}
		r.scheduleSynthetic(delay, syntheticStartRound, g.generation, "")
		return
	}

	if len(stillActive) == 1 {
		r.endMatch(stillActive[0])
		return
	}
	r.endMatch(r.pickFinalWinnerAmongEliminated(active, assafCaller))
}

// pickFinalWinnerAmongEliminated handles the degenerate case where a round
// eliminates every remaining active player simultaneously: the lowest
// score wins, preferring the round's Assaf caller on a tie.
func (r *Room) pickFinalWinnerAmongEliminated(candidates []string, assafCaller string) string {
	g := r.Game
	best := ""
	bestScore := 0
	for _, id := range candidates {
		score := g.Scores[id]
		if best == "" || score < bestScore || (score == bestScore && id == assafCaller) {
			best, bestScore = id, score
		}
	}
	return best
}
