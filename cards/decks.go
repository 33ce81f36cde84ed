package cards

import (
	"math/rand"
)

// CoreDeck is the deck the printed Q|Cards> game ships with.
// Two-qubit cards are rarer than single-qubit ones.
var CoreDeck = NewSetFromCards([]Card{
	Identity, Identity, Identity,
	Hadamard, Hadamard, Hadamard, Hadamard, Hadamard,
	PauliX, PauliX, PauliX, PauliX,
	PauliY, PauliY, PauliY,
	PauliZ, PauliZ, PauliZ,
	CNOT, CNOT, CNOT,
	Swap, Swap,
})

// SoloDeck is the CoreDeck with the two-qubit cards removed. It is
// used for single-player games, where CNOT and Swap have no valid
// second target.
var SoloDeck = NewSetFromCards([]Card{
	Identity, Identity, Identity,
	Hadamard, Hadamard, Hadamard, Hadamard, Hadamard,
	PauliX, PauliX, PauliX, PauliX,
	PauliY, PauliY, PauliY,
	PauliZ, PauliZ, PauliZ,
})

// Deal shuffles the deck and deals numHands hands of cardsPerHand
// cards each. Deal panics if the deck does not hold enough cards.
func Deal(deck Set, numHands, cardsPerHand int, rng *rand.Rand) []Set {
	all := deck.AsSlice()
	if len(all) < numHands*cardsPerHand {
		panic("not enough cards in deck to deal")
	}

	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	hands := make([]Set, numHands)
	for i := range hands {
		hands[i] = NewSetFromCards(all[i*cardsPerHand : (i+1)*cardsPerHand])
	}
	return hands
}
