package room

import (
	"time"

	"yanivgame/bot"
	"yanivgame/cards"
	"yanivgame/combo"
	"yanivgame/transport"
)

// beginTurn announces the current player's turn and arms its timer (and,
// for a bot's turn, its think-delay actions).
func (r *Room) beginTurn() {
	g := r.Game
	currentID := r.Players[g.CurrentPlayerIndex].ID
	g.TurnStartTime = time.Now()

	r.broadcaster.Broadcast(r.ID, transport.TurnStarted{
		RoomID:          r.ID,
		CurrentPlayerID: currentID,
		TimeRemaining:   g.TimePerPlayer,
	})

	gen := g.generation
	r.scheduleSynthetic(g.TimePerPlayer, syntheticTurnTimeout, gen, "")

	current := r.Players[g.CurrentPlayerIndex]
	if !current.IsBot {
		return
	}
	if bot.ShouldCallYaniv(g.handValue(currentID), g.CanCallYaniv) {
		delay := bot.ThinkDelay(r.tunables.BotYanivThinkMin, r.tunables.BotYanivThinkMax)
		r.scheduleSynthetic(delay, syntheticBotYanivCall, gen, currentID)
		return
	}
	delay := bot.ThinkDelay(r.tunables.BotThinkMin, r.tunables.BotThinkMax)
	r.scheduleSynthetic(delay, syntheticBotAction, gen, currentID)
}

func (r *Room) handleCompleteTurn(cmd transport.CompleteTurn) {
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
	hand := g.PlayerHands[currentID]
	if !cards.Contains(hand, cmd.SelectedCards) {
		r.rejectGame(cmd.PlayerID, "selected cards are not in your hand")
		return
	}
	if !combo.IsValidSet(cmd.SelectedCards, true) {
		r.rejectGame(cmd.PlayerID, "selected cards do not form a valid set or run")
		return
	}
	arranged, ok := combo.FindSequenceArrangement(cmd.SelectedCards)
	if !ok {
		r.invariantViolation("FindSequenceArrangement rejected a selection IsValidSet accepted", nil)
		return
	}
	if cmd.Action.Choice == transport.ChoicePickup && !combo.CanPickup(len(g.PickupCards), cmd.Action.PickupIndex) {
		r.rejectGame(cmd.PlayerID, "pickup index out of range")
		return
	}

	r.applyTurnAction(currentID, cmd.Action, arranged, false)
}

// forceTurnTimeout implements the turn-timeout rule: the highest-rank card
// in hand is discarded via a forced deck draw, with slap-down disabled.
func (r *Room) forceTurnTimeout() {
	g := r.Game
	currentID := r.Players[g.CurrentPlayerIndex].ID
	hand := g.PlayerHands[currentID]
	if len(hand) == 0 {
		r.invariantViolation("turn timeout fired for a player with an empty hand", nil)
		return
	}
	forced := []cards.Card{hand[len(hand)-1]} // hand is kept sorted ascending by rank
	r.applyTurnAction(currentID, transport.TurnAction{Choice: transport.ChoiceDeck}, forced, true)
}

// applyTurnAction is the single implementation of "a player's turn
// resolves": draw source is applied, the discard replaces pickupCards, a
// slap-down window is opened if eligible, and play advances to the next
// active player. forced disables slap-down (used by the timeout path).
func (r *Room) applyTurnAction(playerID string, action transport.TurnAction, selected []cards.Card, forced bool) {
	g := r.Game
	g.generation++    // supersedes this player's own turn timer / bot timers
	g.slapDownGeneration++ // and closes any slap-down window still open from the previous action
	g.SlapDownActiveFor = ""
	g.SlapDownCard = cards.Card{}

	priorHand := g.PlayerHands[playerID]
	amountBefore := len(priorHand)
	positions := cards.IndexPositions(priorHand, selected)
	hand := cards.RemoveCards(priorHand, selected)

	var drawn cards.Card
	var source transport.DrawSourceValue
	slapDownActiveFor := ""

	switch action.Choice {
	case transport.ChoiceDeck:
		r.reshuffleDeckIfEmpty()
		drawn = g.Deck[len(g.Deck)-1]
		g.Deck = g.Deck[:len(g.Deck)-1]
		source = transport.SourceDeck
		g.PickupCards = selected

		if g.SlapDown && !forced && !drawn.IsJoker() {
			if side := combo.SlapDownValidFrom(selected, drawn); side != combo.SlapNone {
				g.slapDownGeneration++
				slapGen := g.slapDownGeneration
				g.SlapDownActiveFor = playerID
				g.SlapDownCard = drawn
				r.scheduleSynthetic(r.tunables.SlapDownWindow, syntheticSlapDownExpire, slapGen, playerID)
				slapDownActiveFor = playerID
			}
		}
		hand = append(hand, drawn)

	case transport.ChoicePickup:
		drawn = g.PickupCards[action.PickupIndex]
		source = transport.SourcePickup
		g.PickupCards = selected
		hand = append(hand, drawn)
	}

	cards.SortHand(hand)
	g.PlayerHands[playerID] = hand

	nextIndex := r.nextActiveIndex(g.CurrentPlayerIndex)
	g.CurrentPlayerIndex = nextIndex
	nextPlayerID := r.Players[nextIndex].ID

	r.broadcaster.Broadcast(r.ID, transport.PlayerDrew{
		RoomID:                 r.ID,
		PlayerID:               playerID,
		Source:                 source,
		Hands:                  copyHands(g.PlayerHands),
		PickupCards:            append([]cards.Card{}, g.PickupCards...),
		Card:                   drawn,
		SelectedCardsPositions: positions,
		AmountBefore:           amountBefore,
		CurrentPlayerID:        nextPlayerID,
		SlapDownActiveFor:      slapDownActiveFor,
	})

	r.beginTurn()
}

// nextActiveIndex returns the index, cyclically after from, of the next
// player whose status is active.
func (r *Room) nextActiveIndex(from int) int {
	n := len(r.Players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if r.Game.PlayersStats[r.Players[idx].ID] == StatusActive {
			return idx
		}
	}
	return from
}

func (r *Room) handleSlapDown(cmd transport.SlapDown) {
	g := r.Game
	if g == nil || g.GameEnded {
		r.rejectGame(cmd.PlayerID, "no active game")
		return
	}
	if g.SlapDownActiveFor == "" || g.SlapDownActiveFor != cmd.PlayerID {
		r.rejectGame(cmd.PlayerID, "no slap-down window open for you")
		return
	}
	if cmd.Card != g.SlapDownCard {
		r.rejectGame(cmd.PlayerID, "that is not the slappable card")
		return
	}
	side := combo.SlapDownValidFrom(g.PickupCards, g.SlapDownCard)
	if side == combo.SlapNone {
		r.invariantViolation("slap-down window open for a card with no valid side", nil)
		return
	}

	hand := g.PlayerHands[cmd.PlayerID]
	amountBefore := len(hand)
	positions := cards.IndexPositions(hand, []cards.Card{cmd.Card})
	hand = cards.RemoveCards(hand, []cards.Card{cmd.Card})
	cards.SortHand(hand)
	g.PlayerHands[cmd.PlayerID] = hand

	if side == combo.SlapLeft {
		g.PickupCards = append([]cards.Card{cmd.Card}, g.PickupCards...)
	} else {
		g.PickupCards = append(g.PickupCards, cmd.Card)
	}

	g.SlapDownActiveFor = ""
	g.SlapDownCard = cards.Card{}
	g.slapDownGeneration++

	r.broadcaster.Broadcast(r.ID, transport.PlayerDrew{
		RoomID:                 r.ID,
		PlayerID:               cmd.PlayerID,
		Source:                 transport.SourceSlap,
		Hands:                  copyHands(g.PlayerHands),
		PickupCards:            append([]cards.Card{}, g.PickupCards...),
		Card:                   cmd.Card,
		SelectedCardsPositions: positions,
		AmountBefore:           amountBefore,
		CurrentPlayerID:        r.Players[g.CurrentPlayerIndex].ID,
	})
}

func (r *Room) expireSlapDown() {
	g := r.Game
	g.SlapDownActiveFor = ""
	g.SlapDownCard = cards.Card{}
}
