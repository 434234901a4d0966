package cards

import "sort"

// SortHand sorts hand in place: ascending by rank, ties broken by the fixed
// suit order spades, hearts, diamonds, clubs. Every GameState mutation that
// touches a hand must call this before broadcasting.
func SortHand(hand []Card) {
	sort.SliceStable(hand, func(i, j int) bool {
		return Less(hand[i], hand[j])
	})
}

// RemoveCards returns a copy of hand with every card in toRemove removed, at
// most once per occurrence in toRemove (so duplicate cards in hand are
// handled correctly when toRemove names the same duplicate twice).
func RemoveCards(hand []Card, toRemove []Card) []Card {
	remaining := make([]Card, len(hand))
	copy(remaining, hand)
	for _, target := range toRemove {
		for i, c := range remaining {
			if c == target {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}

// Contains reports whether hand holds every card in subset, respecting
// multiplicity (two cards of the same rank/suit in subset require two such
// cards in hand).
func Contains(hand []Card, subset []Card) bool {
	remaining := make([]Card, len(hand))
	copy(remaining, hand)
	for _, target := range subset {
		found := false
		for i, c := range remaining {
			if c == target {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IndexPositions returns, for each card in subset, its index within hand —
// used to report the "positions of selected cards in the prior hand" compact
// diff required by the player_drew event. Matches are consumed left-to-right
// so duplicate cards resolve to distinct indices.
func IndexPositions(hand []Card, subset []Card) []int {
	used := make([]bool, len(hand))
	positions := make([]int, 0, len(subset))
	for _, target := range subset {
		for i, c := range hand {
			if !used[i] && c == target {
				used[i] = true
				positions = append(positions, i)
				break
			}
		}
	}
	return positions
}
