package bot

import "yanivgame/cards"

// ChooseCards picks what a bot discards from hand this turn, given the
// pickup pile visible at the start of the turn, following an ordered rule
// list. hand is the hand the discard is taken from: the bot's current hand
// for a real turn, or the hand after the simulated draw in Decide's
// look-ahead.
func ChooseCards(hand []cards.Card, pickupPile []cards.Card, difficulty Difficulty) []cards.Card {
	if len(hand) == 0 {
		return nil
	}

	if discard, ok := protectPlannedRun(hand, pickupPile, difficulty); ok {
		return discard
	}
	if discard, ok := takeFreeJoker(hand, pickupPile); ok {
		return discard
	}
	if discard, ok := preferLongRun(hand, difficulty); ok {
		return discard
	}
	if discard, ok := extendRunByDiscardingElse(hand, pickupPile); ok {
		return discard
	}
	if discard, ok := keepCompletingPair(hand, pickupPile); ok {
		return discard
	}
	if discard, ok := lowCardHeuristic(hand, pickupPile); ok {
		return discard
	}
	if discard, ok := preferSetsOverSingletons(hand); ok {
		return discard
	}
	return fallbackHighestNonJoker(hand)
}

// pickupTop returns the card at the visible end of the pickup pile that a
// bot would reason about next turn (the most recently exposed end).
func pickupTop(pickupPile []cards.Card) (cards.Card, bool) {
	if len(pickupPile) == 0 {
		return cards.Card{}, false
	}
	return pickupPile[len(pickupPile)-1], true
}

// protectPlannedRun implements rule 1: if the pickup top plus two hand cards
// could form a run of length >= 3, discard something that doesn't touch
// those two cards.
func protectPlannedRun(hand, pickupPile []cards.Card, difficulty Difficulty) ([]cards.Card, bool) {
	if difficulty == Easy {
		return nil, false // easy never looks for run candidates at all
	}
	top, ok := pickupTop(pickupPile)
	if !ok || top.IsJoker() {
		return nil, false
	}
	plan := append(append([]cards.Card{}, hand...), top)
	for _, run := range candidateRuns(plan, maxSynthesisJokers(difficulty)) {
		if !runContainsAnyOf(run.cards, []cards.Card{top}) {
			continue
		}
		protect := make([]cards.Card, 0, 2)
		for _, c := range run.cards {
			if c != top && containsCard(hand, c) {
				protect = append(protect, c)
			}
		}
		if len(protect) < 2 {
			continue
		}
		if discard, ok := safeDiscardAvoiding(hand, protect); ok {
			return discard, true
		}
	}
	return nil, false
}

// takeFreeJoker implements rule 2: when the pickup top is a joker, always
// worth grabbing, so discard whatever is otherwise safest.
func takeFreeJoker(hand, pickupPile []cards.Card) ([]cards.Card, bool) {
	top, ok := pickupTop(pickupPile)
	if !ok || !top.IsJoker() {
		return nil, false
	}
	return safeDiscardAvoiding(hand, nil)
}

// preferLongRun implements rule 3: if the hand already contains a run of
// length >= 3 (using at most the difficulty's joker budget), discard it.
// Ties broken by longer run, then by larger total rank value.
func preferLongRun(hand []cards.Card, difficulty Difficulty) ([]cards.Card, bool) {
	if difficulty == Easy {
		return nil, false // easy never looks for run candidates at all
	}
	runs := candidateRuns(hand, maxSynthesisJokers(difficulty))
	if len(runs) == 0 {
		return nil, false
	}
	best := runs[0]
	for _, r := range runs[1:] {
		if len(r.cards) > len(best.cards) ||
			(len(r.cards) == len(best.cards) && runValue(r) > runValue(best)) {
			best = r
		}
	}
	discard := append([]cards.Card{}, best.cards...)
	for _, c := range hand {
		if len(discard) == len(best.cards)+best.jokersUsed {
			break
		}
		if c.IsJoker() {
			discard = append(discard, c)
		}
	}
	return discard, true
}

// extendRunByDiscardingElse implements rule 4: if the pickup top would
// extend an in-hand run, discard something unrelated instead of touching
// that run.
func extendRunByDiscardingElse(hand, pickupPile []cards.Card) ([]cards.Card, bool) {
	top, ok := pickupTop(pickupPile)
	if !ok || top.IsJoker() {
		return nil, false
	}
	extends := false
	for _, c := range nonJokers(hand) {
		if c.Suit != top.Suit {
			continue
		}
		diff := int(c.Rank) - int(top.Rank)
		if diff == 1 || diff == -1 {
			extends = true
			break
		}
	}
	if !extends {
		return nil, false
	}
	return safeDiscardAvoiding(hand, nonJokersMatchingSuitAdjacent(hand, top))
}

// nonJokersMatchingSuitAdjacent lists hand cards adjacent in rank to top on
// its suit, i.e. the cards the extending run needs kept.
func nonJokersMatchingSuitAdjacent(hand []cards.Card, top cards.Card) []cards.Card {
	var out []cards.Card
	for _, c := range nonJokers(hand) {
		if c.Suit != top.Suit {
			continue
		}
		diff := int(c.Rank) - int(top.Rank)
		if diff == 1 || diff == -1 {
			out = append(out, c)
		}
	}
	return out
}

// keepCompletingPair implements rule 5: if the pickup top matches an
// in-hand rank, keep the pair it would complete; discard another set of >=2
// if one exists, else the highest non-set card.
func keepCompletingPair(hand, pickupPile []cards.Card) ([]cards.Card, bool) {
	top, ok := pickupTop(pickupPile)
	if !ok || top.IsJoker() {
		return nil, false
	}
	matches := false
	for _, c := range nonJokers(hand) {
		if c.Rank == top.Rank {
			matches = true
			break
		}
	}
	if !matches {
		return nil, false
	}

	for _, s := range candidateSets(hand) {
		if s.rank == top.Rank {
			continue
		}
		return s.cards, true
	}
	inSet := make(map[cards.Card]bool)
	for _, s := range candidateSets(hand) {
		for _, c := range s.cards {
			inSet[c] = true
		}
	}
	var best cards.Card
	found := false
	for _, c := range hand {
		if c.IsJoker() || inSet[c] || c.Rank == top.Rank {
			continue
		}
		if !found || c.Value() > best.Value() {
			best, found = c, true
		}
	}
	if !found {
		return nil, false
	}
	return []cards.Card{best}, true
}

// lowCardHeuristic implements rule 6: if the pickup top is cheap, discard a
// safe high card instead of taking a run-preserving detour.
func lowCardHeuristic(hand, pickupPile []cards.Card) ([]cards.Card, bool) {
	top, ok := pickupTop(pickupPile)
	if !ok || top.Value() > 2 {
		return nil, false
	}
	return safeDiscardAvoiding(hand, nil)
}

// preferSetsOverSingletons implements rule 7: discard the highest-value
// pair/triple/quad available, unless it's all aces and a non-ace singleton
// exists (discard that singleton instead).
func preferSetsOverSingletons(hand []cards.Card) ([]cards.Card, bool) {
	sets := candidateSets(hand)
	if len(sets) == 0 {
		return nil, false
	}
	best := sets[0]
	for _, s := range sets[1:] {
		if setValue(s) > setValue(best) {
			best = s
		}
	}
	if best.rank == cards.Ace {
		if c, ok := highestNonAceNonJokerSingleton(hand, sets); ok {
			return []cards.Card{c}, true
		}
	}
	return best.cards, true
}

func highestNonAceNonJokerSingleton(hand []cards.Card, sets []candidateSet) (cards.Card, bool) {
	inSet := make(map[cards.Card]bool)
	for _, s := range sets {
		for _, c := range s.cards {
			inSet[c] = true
		}
	}
	var best cards.Card
	found := false
	for _, c := range hand {
		if c.IsJoker() || c.Rank == cards.Ace || inSet[c] {
			continue
		}
		if !found || c.Value() > best.Value() {
			best, found = c, true
		}
	}
	return best, found
}

// fallbackHighestNonJoker implements rule 8.
func fallbackHighestNonJoker(hand []cards.Card) []cards.Card {
	c, ok := highestNonJoker(hand)
	if !ok {
		return []cards.Card{hand[0]} // hand is all jokers; discard one
	}
	return []cards.Card{c}
}

// safeDiscardAvoiding picks the single highest-value non-joker card in hand
// that isn't in protect, falling back to the highest-value card overall if
// every non-joker card is protected.
func safeDiscardAvoiding(hand []cards.Card, protect []cards.Card) ([]cards.Card, bool) {
	protected := make(map[cards.Card]bool, len(protect))
	for _, c := range protect {
		protected[c] = true
	}
	var best cards.Card
	found := false
	for _, c := range hand {
		if c.IsJoker() || protected[c] {
			continue
		}
		if !found || c.Value() > best.Value() {
			best, found = c, true
		}
	}
	if found {
		return []cards.Card{best}, true
	}
	return fallbackHighestNonJoker(hand), true
}
