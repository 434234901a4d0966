package room

import (
	"yanivgame/bot"
	"yanivgame/transport"
)

// difficultyOf maps a Player's Difficulty string to bot.Difficulty,
// defaulting to Medium for an unrecognized or empty value.
func difficultyOf(p Player) bot.Difficulty {
	switch p.Difficulty {
	case "easy":
		return bot.Easy
	case "hard":
		return bot.Hard
	default:
		return bot.Medium
	}
}

// performBotTurn is the scheduled result of a bot's turn-action decision
// made in beginTurn: it runs the heuristic policy over the live hand and
// pickup pile, then applies the resulting turn exactly as a human's
// complete_turn command would be.
func (r *Room) performBotTurn(playerID string) {
	g := r.Game
	idx := r.playerIndex(playerID)
	if idx < 0 {
		r.invariantViolation("scheduled bot turn for a player no longer in the room", nil)
		return
	}
	decision := bot.Decide(g.PlayerHands[playerID], g.PickupCards, difficultyOf(r.Players[idx]))

	action := transport.TurnAction{PickupIndex: decision.PickupIndex}
	if decision.Draw == bot.DrawFromPickup {
		action.Choice = transport.ChoicePickup
	} else {
		action.Choice = transport.ChoiceDeck
	}

	r.handleCompleteTurn(transport.CompleteTurn{PlayerID: playerID, Action: action, SelectedCards: decision.Discard})
}
