// Package bot implements the heuristic policy bot players use to choose a
// draw source and a discard each turn. It is purely functional: every
// decision is a function of the hand, the pickup pile, and a difficulty
// level, never of mutable game state.
package bot

import "yanivgame/cards"

// Difficulty gates how aggressively the bot synthesizes runs that need a
// joker.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// maxSynthesisJokers is the number of jokers the run-finder is allowed to
// treat as "available to complete a run" at each difficulty: easy never
// looks for joker-completed runs at all, medium only accepts runs that
// already exist without needing one, hard allows one synthesized joker.
func maxSynthesisJokers(d Difficulty) int {
	switch d {
	case Hard:
		return 1
	default:
		return 0
	}
}

// DrawSource names where a turn's card comes from.
type DrawSource uint8

const (
	DrawFromDeck DrawSource = iota
	DrawFromPickup
)

// Decision is a complete bot turn: which cards of the current hand to
// discard, and where to draw from (and which edge of the pickup pile, if
// applicable).
type Decision struct {
	Draw        DrawSource
	PickupIndex int // meaningful only when Draw == DrawFromPickup
	Discard     []cards.Card
}

// ShouldCallYaniv reports whether a hand of the given value should trigger
// an automatic Yaniv call.
func ShouldCallYaniv(handValue, canCallYaniv int) bool {
	return handValue <= canCallYaniv
}
