package room

import (
	"time"

	"yanivgame/cards"
	"yanivgame/transport"
)

const handSize = 5

// dealRound shuffles a fresh deck, deals every active player a hand, and
// announces the round with a display startDelay before the first turn of
// the round actually begins (game_initialized on round 1, new_round
// afterward).
func (r *Room) dealRound() {
	g := r.Game
	g.Round++
	g.generation++ // supersedes whatever the previous round's timers were guarding
	g.slapDownGeneration++

	activeOrder := g.activePlayerIDs(r.Players)
	if len(activeOrder) < 2 {
		r.invariantViolation("dealRound called with fewer than 2 active players", nil)
		return
	}

	deck := cards.NewDeck()
	cards.Shuffle(deck)

	pickupCards := []cards.Card{deck[len(deck)-1]}
	deck = deck[:len(deck)-1]

	hands := make(map[string][]cards.Card, len(activeOrder))
	for _, id := range activeOrder {
		hand := make([]cards.Card, 0, handSize)
		for i := 0; i < handSize; i++ {
			hand = append(hand, deck[len(deck)-1])
			deck = deck[:len(deck)-1]
		}
		cards.SortHand(hand)
		hands[id] = hand
	}

	g.Deck = deck
	g.PickupCards = pickupCards
	g.PlayerHands = hands
	g.CurrentPlayerIndex = r.playerIndex(activeOrder[0])
	g.TurnStartTime = time.Now()

	n := len(activeOrder)
	var startDelay time.Duration
	if g.Round == 1 {
		startDelay = time.Duration(2100+500*n) * time.Millisecond
	} else {
		startDelay = time.Duration(2600+700*n) * time.Millisecond
	}

	handsCopy := copyHands(hands)
	if g.Round == 1 {
		r.broadcaster.Broadcast(r.ID, transport.GameInitialized{RoomID: r.ID, Round: g.Round, PlayerHand: handsCopy, StartDelay: startDelay})
	} else {
		r.broadcaster.Broadcast(r.ID, transport.NewRound{RoomID: r.ID, Round: g.Round, PlayerHand: handsCopy, StartDelay: startDelay})
	}

	r.scheduleSynthetic(startDelay, syntheticBeginTurn, g.generation, "")
}

// reshuffleDeckIfEmpty replenishes the draw deck from everything currently
// unseen (everything that isn't in a hand or in pickupCards)
// when it runs out mid-round. pickupCards keeps at least its current
// contents; only cards that would otherwise be unreachable are recycled.
func (r *Room) reshuffleDeckIfEmpty() {
	g := r.Game
	if len(g.Deck) > 0 {
		return
	}
	seen := make(map[cards.Card]bool)
	for _, c := range g.PickupCards {
		seen[c] = true
	}
	for _, hand := range g.PlayerHands {
		for _, c := range hand {
			seen[c] = true
		}
	}
	full := cards.NewDeck()
	var fresh []cards.Card
	for _, c := range full {
		if !seen[c] {
			fresh = append(fresh, c)
		}
	}
	cards.Shuffle(fresh)
	g.Deck = fresh
	r.broadcaster.Broadcast(r.ID, transport.DeckReshuffled{RoomID: r.ID})
}

func copyHands(hands map[string][]cards.Card) map[string][]cards.Card {
	out := make(map[string][]cards.Card, len(hands))
	for id, hand := range hands {
		cp := make([]cards.Card, len(hand))
		copy(cp, hand)
		out[id] = cp
	}
	return out
}
