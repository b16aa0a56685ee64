package dfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// block A set of state indices. Blocks live in the partition arena and are addressed by their handle, which
// never changes while the block is refined.
type block struct {
	members *bitset.BitSet
	// True while the handle sits in the worklist.
	queued bool
}

// partition An ordered partition of the states together with the worklist of blocks still to be used as
// splitters.
type partition struct {
	// Arena of blocks; the handle of a block is its index here.
	blocks []*block

	// Handles in partition order.
	order []int

	// FIFO of handles pending refinement.
	work []int
}

// newPartition Starts a partition from the given sets, dropping empty ones. Every block starts in the worklist.
func newPartition(sets ...*bitset.BitSet) *partition {
	p := &partition{}
	for _, s := range sets {
		if s.Count() == 0 {
			continue
		}
		h := p.newBlock(s)
		p.order = append(p.order, h)
		p.push(h)
	}
	return p
}

func (p *partition) newBlock(members *bitset.BitSet) int {
	p.blocks = append(p.blocks, &block{members: members})
	return len(p.blocks) - 1
}

func (p *partition) push(h int) {
	if p.blocks[h].queued {
		return
	}
	p.blocks[h].queued = true
	p.work = append(p.work, h)
}

func (p *partition) pop() (int, bool) {
	if len(p.work) == 0 {
		return -1, false
	}
	h := p.work[0]
	p.work = p.work[1:]
	p.blocks[h].queued = false
	return h, true
}

// split Splits the block at position pos of the partition order into Y∩X and Y−X when both are non-empty.
// Y keeps its handle and becomes Y∩X; Y−X gets a new handle right after it. If Y was queued both halves
// end up queued, otherwise only the smaller one is. Returns true if the block was split.
func (p *partition) split(pos int, x *bitset.BitSet) bool {
	h := p.order[pos]
	y := p.blocks[h]

	inter := y.members.Intersection(x)
	if inter.Count() == 0 {
		return false
	}
	diff := y.members.Difference(x)
	if diff.Count() == 0 {
		return false
	}

	y.members = inter
	nh := p.newBlock(diff)
	p.order = slices.Insert(p.order, pos+1, nh)

	switch {
	case y.queued:
		p.push(nh)
	case inter.Count() <= diff.Count():
		p.push(h)
	default:
		p.push(nh)
	}
	return true
}

// size Number of blocks.
func (p *partition) size() int {
	return len(p.order)
}

// members Returns the states of the block at position pos.
func (p *partition) members(pos int) *bitset.BitSet {
	return p.blocks[p.order[pos]].members
}

// positions Maps every state index to the position of its block, -1 for states in no block.
func (p *partition) positions(numStates int) []int {
	out := make([]int, numStates)
	for i := range out {
		out[i] = -1
	}
	for pos, h := range p.order {
		m := p.blocks[h].members
		for s, ok := m.NextSet(0); ok; s, ok = m.NextSet(s + 1) {
			out[s] = pos
		}
	}
	return out
}
