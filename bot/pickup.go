package bot

import "yanivgame/cards"

// candidateDraw describes one option the bot is weighing this turn.
type candidateDraw struct {
	source      DrawSource
	pickupIndex int
	drawnCard   cards.Card
	known       bool // false for the deck option: the drawn card isn't known in advance
}

// Decide chooses a full turn: what to discard from the current hand, and
// which edge of the pickup pile to take (or the deck). The draw source comes
// from a one-ply look-ahead over every pickup-eligible edge plus the deck
// option, scoring each by simulating the discard that would follow it and
// picking the best score.
func Decide(hand []cards.Card, pickupPile []cards.Card, difficulty Difficulty) Decision {
	candidates := []candidateDraw{{source: DrawFromDeck}}
	if len(pickupPile) > 0 {
		candidates = append(candidates, candidateDraw{source: DrawFromPickup, pickupIndex: 0, drawnCard: pickupPile[0], known: true})
		if len(pickupPile) > 1 {
			last := len(pickupPile) - 1
			candidates = append(candidates, candidateDraw{source: DrawFromPickup, pickupIndex: last, drawnCard: pickupPile[last], known: true})
		}
	}

	discard := ChooseCards(hand, pickupPile, difficulty)

	best := candidates[0]
	bestScore := scoreCandidate(hand, pickupPile, best, difficulty)

	for _, c := range candidates[1:] {
		if c.known && c.drawnCard.IsJoker() {
			// Always take a joker at an edge: short-circuit to it.
			return Decision{Draw: c.source, PickupIndex: c.pickupIndex, Discard: discard}
		}
		score := scoreCandidate(hand, pickupPile, c, difficulty)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	return Decision{Draw: best.source, PickupIndex: best.pickupIndex, Discard: discard}
}

// simulateHand returns hand with the candidate's drawn card added, when
// known. The deck option leaves hand unmodified since the drawn card isn't
// known ahead of the draw.
func simulateHand(hand []cards.Card, c candidateDraw) []cards.Card {
	out := append([]cards.Card{}, hand...)
	if c.known {
		out = append(out, c.drawnCard)
	}
	return out
}

// simulateDiscard runs the same discard policy the bot would apply next,
// against the post-draw hand. For a known pickup card the policy sees a
// single-element pickup pile holding that card, so its rules treat it as the
// top; the deck option keeps the current pickup pile (single ply — this
// never recurses further).
func simulateDiscard(hand, pickupPile []cards.Card, c candidateDraw, difficulty Difficulty) []cards.Card {
	simHand := simulateHand(hand, c)
	if c.known {
		pickupPile = []cards.Card{c.drawnCard}
	}
	return ChooseCards(simHand, pickupPile, difficulty)
}

// scoreCandidate implements the heuristic bonuses/penalties from the pickup
// decision rule.
func scoreCandidate(hand, pickupPile []cards.Card, c candidateDraw, difficulty Difficulty) int {
	simHand := simulateHand(hand, c)
	discard := simulateDiscard(hand, pickupPile, c, difficulty)
	resultHand := cards.RemoveCards(simHand, discard)

	score := 1000 - cards.HandValue(resultHand)

	runs := candidateRuns(resultHand, maxSynthesisJokers(difficulty))
	hasThreeRun := false
	for _, r := range runs {
		if len(r.cards) >= 3 {
			hasThreeRun = true
			break
		}
	}
	if hasThreeRun {
		score += 120
	}

	if c.known {
		plan := candidateRuns(append([]cards.Card{}, simHand...), maxSynthesisJokers(difficulty))
		for _, r := range plan {
			if runContainsAnyOf(r.cards, []cards.Card{c.drawnCard}) && runContainsAnyOf(r.cards, discard) {
				score -= 200
				break
			}
		}
	}

	for _, s := range candidateSets(resultHand) {
		switch len(s.cards) {
		case 2:
			score += 40
		default:
			if len(s.cards) >= 3 {
				score += 90
			}
		}
	}

	if c.known {
		beforeHadThreeRun := false
		for _, r := range candidateRuns(hand, maxSynthesisJokers(difficulty)) {
			if len(r.cards) >= 3 {
				beforeHadThreeRun = true
				break
			}
		}
		afterHasNewThreeRun := hasThreeRun && !beforeHadThreeRun
		if afterHasNewThreeRun {
			discardBreaksIt := false
			for _, r := range candidateRuns(resultHand, maxSynthesisJokers(difficulty)) {
				if runContainsAnyOf(r.cards, discard) {
					discardBreaksIt = true
					break
				}
			}
			if !discardBreaksIt {
				score += 800
			} else {
				score -= 600
			}
		}
	}

	if c.known {
		completesAPair := false
		for _, before := range nonJokers(hand) {
			if before.Rank == c.drawnCard.Rank {
				completesAPair = true
				break
			}
		}
		if completesAPair {
			for _, d := range discard {
				if !d.IsJoker() && d.Rank == c.drawnCard.Rank {
					score -= 10000
					break
				}
			}
		}
	}

	if c.known && c.drawnCard.Value() <= 2 {
		score += 600
		score += suitConnectivityBonus(hand, c.drawnCard, difficulty)
	}

	return score
}

// suitConnectivityBonus adds the A-2 / adjacent-3 / A-with-3-and-(2-or-joker)
// bonuses for a low pickup card.
func suitConnectivityBonus(hand []cards.Card, drawn cards.Card, difficulty Difficulty) int {
	bonus := 0
	hasSuited := func(r cards.Rank) bool {
		for _, c := range nonJokers(hand) {
			if c.Suit == drawn.Suit && c.Rank == r {
				return true
			}
		}
		return false
	}
	hasJoker := countJokers(hand) > 0

	if drawn.Rank == cards.Ace && hasSuited(cards.Two) {
		bonus += 220
	}
	if drawn.Rank == cards.Two && hasSuited(cards.Ace) {
		bonus += 220
	}
	if hasSuited(drawn.Rank + 1) || (drawn.Rank > cards.Ace && hasSuited(drawn.Rank-1)) {
		bonus += 180
	}
	if drawn.Rank == cards.Ace {
		hasThree := hasSuited(cards.Three)
		hasTwoOrJoker := hasSuited(cards.Two) || (hasJoker && difficulty == Hard)
		if hasThree && hasTwoOrJoker {
			bonus += 160
		}
	}
	return bonus
}
