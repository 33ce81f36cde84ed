package cards

// Card represents one gate card from the Q|Cards> deck.
// Each card corresponds to a quantum gate acting on one or two
// player qubits.
type Card uint8

const (
	Unknown Card = iota
	Identity
	Hadamard
	PauliX
	PauliY
	PauliZ
	CNOT
	Swap
)

var cardStr = [...]string{
	"Unknown",
	"Identity",
	"Hadamard",
	"PauliX",
	"PauliY",
	"PauliZ",
	"CNOT",
	"Swap",
}

// String implements Stringer.
func (c Card) String() string {
	return cardStr[c]
}

// The number of distinct types of Cards.
const NumTypes = len(cardStr)

// Letters used for each card in the game notation.
var cardLetter = [...]byte{
	0, 'I', 'H', 'X', 'Y', 'Z', 'C', 'S',
}

// Letter returns the notation letter for the card, e.g. 'H' for Hadamard.
func (c Card) Letter() byte {
	return cardLetter[c]
}

// Arity returns the number of player qubits the card's gate acts on.
// Unknown cards have arity 0.
func (c Card) Arity() int {
	switch c {
	case Identity, Hadamard, PauliX, PauliY, PauliZ:
		return 1
	case CNOT, Swap:
		return 2
	default:
		return 0
	}
}

// FromLetter returns the Card for a notation letter.
// Lowercase letters are accepted. The second return value is false
// if the letter does not name a card.
func FromLetter(b byte) (Card, bool) {
	if 'a' <= b && b <= 'z' {
		b -= 'a' - 'A'
	}
	for c := Identity; c <= Swap; c++ {
		if cardLetter[c] == b {
			return c, true
		}
	}
	return Unknown, false
}
