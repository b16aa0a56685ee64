package dfa

import (
	"slices"
	"strconv"
	"strings"
)

// statePair A pair of state indices, one per automaton. -1 stands for "no state": the place a run goes once
// it gets stuck. It is never final and every symbol leads from it back to -1.
type statePair struct {
	p, q int
}

// Equivalent
// Returns true if a and b accept the same language over the union of their alphabets, where a run that gets
// stuck rejects. The check walks the reachable pairs of the implicit product breadth first and fails as soon
// as it finds a pair whose components disagree on finality.
func Equivalent(a, b *Automaton) bool {
	sigma := a.Alphabet()
	for _, s := range b.Alphabet() {
		if _, ok := a.alphabet[s]; !ok {
			sigma = append(sigma, s)
		}
	}

	start := statePair{a.initial, b.initial}
	visited := map[statePair]struct{}{start: {}}
	queue := []statePair{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if a.isFinal(cur.p) != b.isFinal(cur.q) {
			return false
		}

		for _, c := range sigma {
			next := statePair{a.step(cur.p, c), b.step(cur.q, c)}
			if next.p == -1 && next.q == -1 {
				continue
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return true
}

// StatePair Two distinct states of the same automaton, with A < B.
type StatePair struct {
	A, B string
}

func (p StatePair) String() string {
	return p.A + " ≡ " + p.B
}

// StateEquivalencePairs
// Returns every pair of distinct states that no word tells apart, computed by Moore refinement: blocks start
// as {finals, non-finals} and each block is split by the signature of its members, the block index reached on
// every symbol of the alphabet, until a full pass splits nothing. The automaton itself is left as it is.
// The result is sorted.
func StateEquivalencePairs(a *Automaton) []StatePair {
	numStates := a.GetNumStates()
	sigma := a.Alphabet()

	// States are visited in identifier order so that sub-groups come out in a stable order.
	byName := make([]int, numStates)
	for i := range byName {
		byName[i] = i
	}
	slices.SortFunc(byName, func(x, y int) int {
		return strings.Compare(a.states[x], a.states[y])
	})

	finals := make([]int, 0)
	rest := make([]int, 0)
	for _, s := range byName {
		if a.isFinal(s) {
			finals = append(finals, s)
		} else {
			rest = append(rest, s)
		}
	}
	blocks := make([][]int, 0, 2)
	for _, blk := range [][]int{finals, rest} {
		if len(blk) > 0 {
			blocks = append(blocks, blk)
		}
	}

	for changed := true; changed; {
		changed = false

		blockOf := make([]int, numStates)
		for i, blk := range blocks {
			for _, s := range blk {
				blockOf[s] = i
			}
		}

		next := make([][]int, 0, len(blocks))
		for _, blk := range blocks {
			groups := make(map[string]int)
			first := len(next)
			for _, s := range blk {
				sig := signature(a, s, sigma, blockOf)
				g, ok := groups[sig]
				if !ok {
					g = len(next)
					groups[sig] = g
					next = append(next, nil)
				}
				next[g] = append(next[g], s)
			}
			if len(next)-first > 1 {
				changed = true
			}
		}
		blocks = next
	}

	pairs := make([]StatePair, 0)
	for _, blk := range blocks {
		if len(blk) < 2 {
			continue
		}
		for i := 0; i < len(blk); i++ {
			for j := i + 1; j < len(blk); j++ {
				pairs = append(pairs, StatePair{A: a.states[blk[i]], B: a.states[blk[j]]})
			}
		}
	}
	slices.SortFunc(pairs, func(x, y StatePair) int {
		if c := strings.Compare(x.A, y.A); c != 0 {
			return c
		}
		return strings.Compare(x.B, y.B)
	})
	return pairs
}

// signature Encodes, for every symbol, the index of the block holding the destination of s, or "-" when
// there is no transition.
func signature(a *Automaton, s int, sigma []string, blockOf []int) string {
	var sb strings.Builder
	for _, c := range sigma {
		dest := a.step(s, c)
		if dest == -1 {
			sb.WriteString("-")
		} else {
			sb.WriteString(strconv.Itoa(blockOf[dest]))
		}
		sb.WriteByte(',')
	}
	return sb.String()
}
