package qcards

import (
	"fmt"
	"math/rand"

	"github.com/timpalpant/go-cfr"

	"github.com/matteoacrossi/QuantumCards/cards"
)

// Player represents the identity of a player in a two-player duel.
type Player uint8

const (
	Player0 Player = iota
	Player1
)

var playerStr = [...]string{
	"Player0",
	"Player1",
}

func (p Player) String() string {
	return playerStr[p]
}

func nextPlayer(p Player) Player {
	return 1 - p
}

// GameNode implements cfr.GameTreeNode for the two-player Q|Cards>
// duel: each player is dealt a hand of gate cards and they alternate
// placing one card per turn onto the shared circuit, choosing which
// player qubit(s) it acts on. When all cards are played the game is
// scored, and a player's utility is their expected score minus the
// opponent's.
//
// Moves are public; the only hidden information is the opponent's
// remaining hand.
type GameNode struct {
	hands  [2]cards.Set
	player Player
	moves  []Move

	// children are the possible next states in the game.
	children []GameNode
	// actions are the moves taken by the player to reach each child.
	// len(actions) must always equal len(children).
	actions []Move
	parent  *GameNode

	gnPool *gameNodeSlicePool
	mPool  *moveSlicePool
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewDuel creates a root node for a duel with the given hands dealt
// to each player. Player0 always goes first.
func NewDuel(p0Deal, p1Deal cards.Set) *GameNode {
	return &GameNode{
		hands:  [2]cards.Set{p0Deal, p1Deal},
		player: Player0,
		gnPool: &gameNodeSlicePool{},
		mPool:  &moveSlicePool{},
	}
}

// NewRandomDuel creates a root node for a duel with hands of
// cardsPerPlayer cards dealt randomly from the core deck.
func NewRandomDuel(cardsPerPlayer int, rng *rand.Rand) *GameNode {
	hands := cards.Deal(cards.CoreDeck, 2, cardsPerPlayer, rng)
	return NewDuel(hands[0], hands[1])
}

// Type implements cfr.GameTreeNode. The deal happens before the root
// so the tree has no chance nodes.
func (gn *GameNode) Type() cfr.NodeType {
	if gn.hands[Player0].IsEmpty() && gn.hands[Player1].IsEmpty() {
		return cfr.TerminalNodeType
	}
	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (gn *GameNode) Player() int {
	return int(gn.player)
}

// GetHistory returns the moves played so far, in order.
func (gn *GameNode) GetHistory() []Move {
	return gn.moves
}

// LastAction returns the most recently played move.
func (gn *GameNode) LastAction() Move {
	return gn.moves[len(gn.moves)-1]
}

// InfoSet implements cfr.GameTreeNode.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &InfoSet{
		Player:  Player(player),
		Hand:    gn.hands[player],
		History: gn.moves,
	}
}

// InfoSetKey implements cfr.GameTreeNode.
func (gn *GameNode) InfoSetKey(player int) []byte {
	return gn.InfoSet(player).(*InfoSet).Key()
}

// Utility implements cfr.GameTreeNode.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	game := &Game{NumPlayers: 2, Moves: gn.moves}
	probs, err := ExpectedScores(game)
	if err != nil {
		panic(err)
	}

	return probs[player] - probs[1-player]
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	return fmt.Sprintf("%v's turn. Hand: %v. Circuit so far: %q",
		gn.player, gn.hands[gn.player], (&Game{NumPlayers: 2, Moves: gn.moves}).String())
}

// AvailableActions returns the moves the current player may make.
func (gn *GameNode) AvailableActions() []Move {
	gn.buildChildren()
	return gn.actions
}

func (gn *GameNode) allocChildren(n int) {
	gn.children = gn.gnPool.alloc(n)
	gn.actions = gn.mPool.alloc(n)
	// Children start as a copy of the current node, but without any
	// children (the new node's children must be built).
	childPrototype := *gn
	childPrototype.children = nil
	childPrototype.actions = nil
	childPrototype.parent = gn
	for i := 0; i < n; i++ {
		gn.children = append(gn.children, childPrototype)
	}
}

// movesFor enumerates the distinct moves available with the given hand.
// Swap is symmetric so only one operand order is generated for it.
func movesFor(hand cards.Set) []Move {
	var result []Move
	hand.Iter(func(card cards.Card, count uint8) {
		if card.Arity() == 1 {
			result = append(result,
				Move{Card: card, Players: [2]int{1, 0}},
				Move{Card: card, Players: [2]int{2, 0}})
			return
		}
		result = append(result, Move{Card: card, Players: [2]int{1, 2}})
		if card != cards.Swap {
			result = append(result, Move{Card: card, Players: [2]int{2, 1}})
		}
	})
	return result
}

func (gn *GameNode) buildChildren() {
	if gn.children != nil {
		return // Already built.
	}
	if gn.Type() == cfr.TerminalNodeType {
		return
	}

	moves := movesFor(gn.hands[gn.player])
	gn.allocChildren(len(moves))
	for i, move := range moves {
		child := &gn.children[i]
		child.hands[gn.player].Remove(move.Card)

		history := make([]Move, len(gn.moves), len(gn.moves)+1)
		copy(history, gn.moves)
		child.moves = append(history, move)

		// Turn passes to the opponent unless their hand is empty.
		next := nextPlayer(gn.player)
		if child.hands[next].IsEmpty() {
			next = gn.player
		}
		child.player = next

		gn.actions = append(gn.actions, move)
	}
}

func (gn *GameNode) NumChildren() int {
	gn.buildChildren()
	if len(gn.children) != len(gn.actions) {
		panic(fmt.Errorf("%d children, %d actions: %v",
			len(gn.children), len(gn.actions), gn))
	}

	return len(gn.children)
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	gn.buildChildren()
	return &gn.children[i]
}

func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
// The duel has no chance nodes: the deal happens before the root.
func (gn *GameNode) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cannot sample the child of a non-chance node")
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	gn.gnPool.free(gn.children)
	gn.children = nil
	gn.mPool.free(gn.actions)
	gn.actions = nil
}
