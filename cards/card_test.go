package cards

import "testing"

func TestCardValue(t *testing.T) {
	cases := []struct {
		card Card
		want int
	}{
		{Card{Spades, Joker}, 0},
		{Card{Spades, Ace}, 1},
		{Card{Hearts, Nine}, 9},
		{Card{Clubs, Ten}, 10},
		{Card{Diamonds, Jack}, 10},
		{Card{Diamonds, Queen}, 10},
		{Card{Diamonds, King}, 10},
	}
	for _, c := range cases {
		if got := c.card.Value(); got != c.want {
			t.Errorf("%v.Value() = %d, want %d", c.card, got, c.want)
		}
	}
}

func TestHandValue(t *testing.T) {
	hand := []Card{{Spades, Ace}, {Spades, Two}, {Hearts, Ace}, {Hearts, Two}, {Clubs, Three}}
	if got := HandValue(hand); got != 9 {
		t.Errorf("HandValue = %d, want 9", got)
	}
}

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 54 {
		t.Fatalf("len(deck) = %d, want 54", len(deck))
	}
	jokers := 0
	seen := make(map[Card]bool)
	for _, c := range deck {
		if c.IsJoker() {
			jokers++
		}
		if seen[c] {
			t.Errorf("duplicate card %v in deck", c)
		}
		seen[c] = true
	}
	if jokers != 2 {
		t.Errorf("jokers = %d, want 2", jokers)
	}
	if len(seen) != 54 {
		t.Errorf("unique cards = %d, want 54", len(seen))
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	deck := NewDeck()
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	Shuffle(shuffled)

	if len(shuffled) != len(deck) {
		t.Fatalf("len changed after shuffle")
	}
	counts := make(map[Card]int)
	for _, c := range deck {
		counts[c]++
	}
	for _, c := range shuffled {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %v count mismatch after shuffle: %d", c, n)
		}
	}
}

func TestSortHandOrder(t *testing.T) {
	hand := []Card{{Clubs, Five}, {Spades, Five}, {Diamonds, Five}, {Hearts, Five}, {Spades, Two}}
	SortHand(hand)
	want := []Card{{Spades, Two}, {Spades, Five}, {Hearts, Five}, {Diamonds, Five}, {Clubs, Five}}
	for i := range want {
		if hand[i] != want[i] {
			t.Errorf("hand[%d] = %v, want %v", i, hand[i], want[i])
		}
	}
}

func TestRemoveCardsRespectsMultiplicity(t *testing.T) {
	hand := []Card{{Spades, Ace}, {Hearts, Ace}, {Clubs, Two}}
	remaining := RemoveCards(hand, []Card{{Spades, Ace}})
	if len(remaining) != 2 {
		t.Fatalf("len(remaining) = %d, want 2", len(remaining))
	}
	for _, c := range remaining {
		if c == (Card{Spades, Ace}) {
			t.Errorf("removed card still present")
		}
	}
}

func TestIndexPositionsHandlesDuplicateRanks(t *testing.T) {
	hand := []Card{{Spades, Ace}, {Hearts, Ace}, {Clubs, Two}}
	positions := IndexPositions(hand, []Card{{Hearts, Ace}, {Spades, Ace}})
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 0 {
		t.Errorf("IndexPositions = %v, want [1 0]", positions)
	}
}
