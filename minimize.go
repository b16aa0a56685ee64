package dfa

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Minimizes the given automaton using Hopcroft's partition refinement. The partition starts as {finals,
// non-finals} and is refined against every block of the worklist until the worklist is empty. States with no
// transition on a symbol never move into a block on that symbol, so partial automata are minimized without
// being completed.
//
// If every state ends up alone in its block a is already minimal: it is returned as is and the second result
// is true. Otherwise a new automaton is returned with one state q<i> per block, in partition order.
func Minimize(a *Automaton) (*Automaton, bool) {
	numStates := a.GetNumStates()
	sigma := a.Alphabet()

	finals := bitset.New(uint(numStates))
	rest := bitset.New(uint(numStates))
	for s := 0; s < numStates; s++ {
		if a.isFinal(s) {
			finals.Set(uint(s))
		} else {
			rest.Set(uint(s))
		}
	}

	p := newPartition(finals, rest)
	for h, ok := p.pop(); ok; h, ok = p.pop() {
		splitter := p.blocks[h].members.Clone()
		for _, c := range sigma {
			x := preimage(a, splitter, c)
			if x.Count() == 0 {
				continue
			}
			for pos := 0; pos < p.size(); pos++ {
				if p.split(pos, x) {
					// Y−X was inserted right after Y and is disjoint from X.
					pos++
				}
			}
		}
	}

	if p.size() == numStates {
		return a, true
	}
	return quotient(a, p), false
}

// preimage Returns the states whose transition on symbol lands in target.
func preimage(a *Automaton, target *bitset.BitSet, symbol string) *bitset.BitSet {
	x := bitset.New(uint(a.GetNumStates()))
	for s := range a.states {
		dest := a.step(s, symbol)
		if dest != -1 && target.Test(uint(dest)) {
			x.Set(uint(s))
		}
	}
	return x
}

// quotient Builds the automaton whose states are the blocks of p. Transitions are read from the lowest
// indexed member of each block; a transition undefined there stays undefined on the block.
func quotient(a *Automaton, p *partition) *Automaton {
	sigma := a.Alphabet()
	blockOf := p.positions(a.GetNumStates())

	result := NewAutomatonV1(sigma, p.size())
	for pos := 0; pos < p.size(); pos++ {
		state := result.addState("q" + strconv.Itoa(pos))
		if p.members(pos).IntersectionCardinality(a.finals) > 0 {
			result.finals.Set(uint(state))
		}
	}
	if a.initial >= 0 {
		result.initial = blockOf[a.initial]
	}

	for pos := 0; pos < p.size(); pos++ {
		rep, ok := p.members(pos).NextSet(0)
		if !ok {
			continue
		}
		for _, c := range sigma {
			dest := a.step(int(rep), c)
			if dest == -1 {
				continue
			}
			result.transitions[transitionKey{pos, c}] = blockOf[dest]
		}
	}
	return result
}
