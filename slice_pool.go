package qcards

// Freelist pools for the slices churned while (re)building game tree
// nodes during CFR traversal.

type gameNodeSlicePool struct {
	pool [][]GameNode
}

func (p *gameNodeSlicePool) alloc(n int) []GameNode {
	if p == nil {
		return make([]GameNode, 0, n)
	}

	if m := len(p.pool); m > 0 {
		next := p.pool[m-1]
		p.pool = p.pool[:m-1]
		return next
	}

	return make([]GameNode, 0, n)
}

func (p *gameNodeSlicePool) free(s []GameNode) {
	if p != nil && cap(s) > 0 {
		p.pool = append(p.pool, s[:0])
	}
}

type moveSlicePool struct {
	pool [][]Move
}

func (p *moveSlicePool) alloc(n int) []Move {
	if p == nil {
		return make([]Move, 0, n)
	}

	if m := len(p.pool); m > 0 {
		next := p.pool[m-1]
		p.pool = p.pool[:m-1]
		return next
	}

	return make([]Move, 0, n)
}

func (p *moveSlicePool) free(s []Move) {
	if p != nil && cap(s) > 0 {
		p.pool = append(p.pool, s[:0])
	}
}
