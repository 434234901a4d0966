package bot

import (
	"testing"
	"time"

	"yanivgame/cards"
)

func TestShouldCallYaniv(t *testing.T) {
	if !ShouldCallYaniv(7, 7) {
		t.Error("hand value equal to threshold should call")
	}
	if ShouldCallYaniv(8, 7) {
		t.Error("hand value above threshold should not call")
	}
}

func TestChooseCardsFallbackDiscardsHighest(t *testing.T) {
	hand := []cards.Card{
		{Suit: cards.Spades, Rank: cards.Three},
		{Suit: cards.Hearts, Rank: cards.King},
		{Suit: cards.Clubs, Rank: cards.Five},
	}
	got := ChooseCards(hand, nil, Medium)
	if len(got) != 1 || got[0].Rank != cards.King {
		t.Errorf("ChooseCards = %v, want [K]", got)
	}
}

func TestChooseCardsPrefersLongRun(t *testing.T) {
	hand := []cards.Card{
		{Suit: cards.Diamonds, Rank: cards.Three},
		{Suit: cards.Diamonds, Rank: cards.Four},
		{Suit: cards.Diamonds, Rank: cards.Five},
		{Suit: cards.Clubs, Rank: cards.King},
	}
	got := ChooseCards(hand, nil, Medium)
	if len(got) != 3 {
		t.Errorf("ChooseCards = %v, want a 3-card run", got)
	}
}

func TestChooseCardsPrefersSetOverSingleton(t *testing.T) {
	hand := []cards.Card{
		{Suit: cards.Diamonds, Rank: cards.Nine},
		{Suit: cards.Clubs, Rank: cards.Nine},
		{Suit: cards.Hearts, Rank: cards.King},
	}
	got := ChooseCards(hand, nil, Medium)
	if len(got) != 2 {
		t.Errorf("ChooseCards = %v, want the pair of nines", got)
	}
}

func TestChooseCardsAceRuleAvoidsDiscardingAcePair(t *testing.T) {
	hand := []cards.Card{
		{Suit: cards.Diamonds, Rank: cards.Ace},
		{Suit: cards.Clubs, Rank: cards.Ace},
		{Suit: cards.Hearts, Rank: cards.King},
	}
	got := ChooseCards(hand, nil, Medium)
	if len(got) != 1 || got[0].Rank != cards.King {
		t.Errorf("ChooseCards = %v, want the king singleton kept over the ace pair", got)
	}
}

func TestChooseCardsEasyIgnoresRunEntirely(t *testing.T) {
	// A 3-5 diamond run is present, but at Easy difficulty rule 3 (prefer
	// long run) must never fire — the bot falls through to the highest
	// non-joker fallback instead, unlike Medium/Hard which would discard
	// the run.
	hand := []cards.Card{
		{Suit: cards.Diamonds, Rank: cards.Three},
		{Suit: cards.Diamonds, Rank: cards.Four},
		{Suit: cards.Diamonds, Rank: cards.Five},
		{Suit: cards.Clubs, Rank: cards.King},
	}
	got := ChooseCards(hand, nil, Easy)
	if len(got) != 1 || got[0].Rank != cards.King {
		t.Errorf("ChooseCards(Easy) = %v, want the king singleton, run rules disabled", got)
	}
}

func TestDecideAlwaysTakesJokerAtEdge(t *testing.T) {
	hand := []cards.Card{
		{Suit: cards.Spades, Rank: cards.Three},
		{Suit: cards.Hearts, Rank: cards.King},
	}
	pickup := []cards.Card{
		{Suit: cards.Diamonds, Rank: cards.Joker},
		{Suit: cards.Clubs, Rank: cards.Nine},
	}
	got := Decide(hand, pickup, Medium)
	if got.Draw != DrawFromPickup || got.PickupIndex != 0 {
		t.Errorf("Decide = %+v, want pickup index 0 (the joker)", got)
	}
}

func TestDecideNeverPanicsWithEmptyPickup(t *testing.T) {
	hand := []cards.Card{{Suit: cards.Spades, Rank: cards.Three}}
	got := Decide(hand, nil, Easy)
	if got.Draw != DrawFromDeck {
		t.Errorf("Decide with empty pickup pile should draw from deck, got %+v", got)
	}
}

func TestThinkDelayWithinBounds(t *testing.T) {
	for i := 0; i < 20; i++ {
		d := ThinkDelay(900*time.Millisecond, 1900*time.Millisecond)
		if d < 900*time.Millisecond || d >= 1900*time.Millisecond {
			t.Errorf("ThinkDelay(900ms, 1900ms) = %v, out of range", d)
		}
		d = ThinkDelay(500*time.Millisecond, 1100*time.Millisecond)
		if d < 500*time.Millisecond || d >= 1100*time.Millisecond {
			t.Errorf("ThinkDelay(500ms, 1100ms) = %v, out of range", d)
		}
	}
}
