package bot

import (
	"sort"

	"yanivgame/cards"
)

// countJokers returns the number of joker cards in hand.
func countJokers(hand []cards.Card) int {
	n := 0
	for _, c := range hand {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// nonJokers returns hand with jokers filtered out.
func nonJokers(hand []cards.Card) []cards.Card {
	out := make([]cards.Card, 0, len(hand))
	for _, c := range hand {
		if !c.IsJoker() {
			out = append(out, c)
		}
	}
	return out
}

// candidateRun is a run found in hand: cards holds its non-joker cards in
// ascending rank order, and jokersUsed counts the jokers needed to fill its
// gaps (those jokers are not included in cards).
type candidateRun struct {
	cards      []cards.Card
	jokersUsed int
}

// candidateRuns finds every run of length >= 3 present in hand: each
// same-suit rank window (not only the maximal ones) whose missing ranks can
// be filled by at most maxJokers of the hand's jokers.
func candidateRuns(hand []cards.Card, maxJokers int) []candidateRun {
	jokerBudget := countJokers(hand)
	if maxJokers < jokerBudget {
		jokerBudget = maxJokers
	}

	bySuit := make(map[cards.Suit][]cards.Card)
	for _, c := range nonJokers(hand) {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	var out []candidateRun
	for _, suitCards := range bySuit {
		sort.Slice(suitCards, func(i, j int) bool { return suitCards[i].Rank < suitCards[j].Rank })
		out = append(out, runsWithinSuit(suitCards, jokerBudget)...)
	}
	return out
}

// runsWithinSuit finds runs within a single suit's sorted, distinct-rank
// cards, allowing up to jokerBudget single-rank gaps per run.
func runsWithinSuit(sorted []cards.Card, jokerBudget int) []candidateRun {
	var out []candidateRun
	n := len(sorted)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			span := int(sorted[j].Rank) - int(sorted[i].Rank) + 1
			length := j - i + 1
			gaps := span - length
			if gaps < 0 || gaps > jokerBudget {
				continue
			}
			if span < 3 {
				continue
			}
			out = append(out, candidateRun{
				cards:      append([]cards.Card(nil), sorted[i:j+1]...),
				jokersUsed: gaps,
			})
		}
	}
	return out
}

// runValue sums the Value of the non-joker cards in a candidate run, used
// to break ties between equally-long run candidates.
func runValue(r candidateRun) int {
	total := 0
	for _, c := range r.cards {
		total += c.Value()
	}
	return total
}

// candidateSet is a group of same-rank cards found in hand (jokers never
// participate in candidateSets; sets of value are built from literal
// duplicate ranks only, matching the "pairs/triples/quads" framing).
type candidateSet struct {
	rank  cards.Rank
	cards []cards.Card
}

// candidateSets groups hand's non-joker cards by rank, returning every
// group of size >= 2.
func candidateSets(hand []cards.Card) []candidateSet {
	byRank := make(map[cards.Rank][]cards.Card)
	for _, c := range nonJokers(hand) {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	var out []candidateSet
	for rank, cs := range byRank {
		if len(cs) >= 2 {
			out = append(out, candidateSet{rank: rank, cards: cs})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].rank < out[j].rank })
	return out
}

func setValue(s candidateSet) int {
	total := 0
	for _, c := range s.cards {
		total += c.Value()
	}
	return total
}

// highestNonJoker returns the highest-value card in hand that is not a
// joker, ok=false if hand has no such card.
func highestNonJoker(hand []cards.Card) (c cards.Card, ok bool) {
	for _, candidate := range hand {
		if candidate.IsJoker() {
			continue
		}
		if !ok || candidate.Value() > c.Value() || (candidate.Value() == c.Value() && candidate.Rank > c.Rank) {
			c, ok = candidate, true
		}
	}
	return c, ok
}

// containsCard reports whether hand holds card c (used for small membership
// checks where combo.CanPickup-style exact-position logic isn't needed).
func containsCard(hand []cards.Card, c cards.Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// runContainsAnyOf reports whether run shares any card with cs.
func runContainsAnyOf(run []cards.Card, cs []cards.Card) bool {
	for _, r := range run {
		for _, c := range cs {
			if r == c {
				return true
			}
		}
	}
	return false
}
