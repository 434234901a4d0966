package room

import (
	"fmt"

	"yanivgame/transport"
)

func (r *Room) handleCallYaniv(cmd transport.CallYaniv) {
	g := r.Game
	if g == nil || g.GameEnded {
		r.rejectGame(cmd.PlayerID, "no active game")
		return
	}
	currentID := r.Players[g.CurrentPlayerIndex].ID
	if cmd.PlayerID != currentID {
		r.rejectGame(cmd.PlayerID, "not your turn")
		return
	}
	handValue := g.handValue(currentID)
	if handValue > g.CanCallYaniv {
		r.rejectGame(cmd.PlayerID, fmt.Sprintf("Cannot call Yaniv with %d points. Maximum is %d.", handValue, g.CanCallYaniv))
		return
	}
	r.resolveYaniv(currentID)
}

// performBotYanivCall is the scheduled result of a bot's automatic Yaniv
// decision made in beginTurn.
func (r *Room) performBotYanivCall(playerID string) {
	g := r.Game
	if g.handValue(playerID) > g.CanCallYaniv {
		r.invariantViolation("scheduled bot yaniv call is no longer eligible", nil)
		return
	}
	r.resolveYaniv(playerID)
}
