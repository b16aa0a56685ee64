package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// DeadStateName Name given to the sink state added by Complete. If the automaton already uses it, primes are
// appended until the name is free.
const DeadStateName = "__dead__"

// CombineFunc Decides whether a product state is final from the finality of its two components.
type CombineFunc func(final1, final2 bool) bool

// Complete
// Returns a copy of a whose transition function is total over the effective alphabet, i.e. the symbols
// actually used by some transition. Every missing (state, symbol) pair is sent to a single new sink state
// that loops on itself. If nothing is missing the copy has no extra state.
func Complete(a *Automaton) *Automaton {
	result := a.Clone()
	sigma := a.EffectiveAlphabet()

	missing := make([]transitionKey, 0)
	for state := range a.states {
		for _, symbol := range sigma {
			if a.step(state, symbol) == -1 {
				missing = append(missing, transitionKey{state, symbol})
			}
		}
	}
	if len(missing) == 0 {
		return result
	}

	dead := result.addState(freshName(result, DeadStateName))
	for _, symbol := range sigma {
		result.transitions[transitionKey{dead, symbol}] = dead
	}
	for _, key := range missing {
		result.transitions[key] = dead
	}
	return result
}

func freshName(a *Automaton, name string) string {
	for a.HasState(name) {
		name += "'"
	}
	return name
}

// IsTotal
// Returns true if every state has a transition on every symbol of the effective alphabet.
func IsTotal(a *Automaton) bool {
	for _, symbol := range a.EffectiveAlphabet() {
		for state := range a.states {
			if a.step(state, symbol) == -1 {
				return false
			}
		}
	}
	return true
}

// IsEmpty
// Returns true if no final state is reachable from the initial state.
func IsEmpty(a *Automaton) bool {
	if a.initial < 0 {
		return true
	}
	if a.isFinal(a.initial) {
		return false
	}

	sigma := a.Alphabet()
	workList := make([]int, 0)
	seen := bitset.New(uint(a.GetNumStates()))
	workList = append(workList, a.initial)
	seen.Set(uint(a.initial))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.isFinal(state) {
			return false
		}

		for _, symbol := range sigma {
			dest := a.step(state, symbol)
			if dest != -1 && !seen.Test(uint(dest)) {
				workList = append(workList, dest)
				seen.Set(uint(dest))
			}
		}
	}
	return true
}

// Complement
// Returns an automaton accepting exactly the words over the effective alphabet that a rejects. The automaton
// is completed first so that runs which would get stuck in a end up accepted.
func Complement(a *Automaton) *Automaton {
	result := Complete(a)
	for p := range result.states {
		result.finals.SetTo(uint(p), !result.finals.Test(uint(p)))
	}
	return result
}

// Product
// Builds the product automaton of the completions of a and b. States are the pairs (p,q), the alphabet is the
// union of both alphabets and (p,q) is final when combine says so. A pair has a transition on a symbol only if
// both components do; symbols that one operand never uses therefore stay undefined.
func Product(a, b *Automaton, combine CombineFunc) *Automaton {
	a = Complete(a)
	b = Complete(b)

	symbols := a.Alphabet()
	for _, s := range b.Alphabet() {
		if _, ok := a.alphabet[s]; !ok {
			symbols = append(symbols, s)
		}
	}

	numB := b.GetNumStates()
	result := NewAutomatonV1(symbols, a.GetNumStates()*numB)
	pair := func(p, q int) int {
		return p*numB + q
	}

	for p := range a.states {
		for q := range b.states {
			state := result.addState(fmt.Sprintf("(%s,%s)", a.states[p], b.states[q]))
			result.finals.SetTo(uint(state), combine(a.isFinal(p), b.isFinal(q)))
		}
	}
	if a.initial >= 0 && b.initial >= 0 {
		result.initial = pair(a.initial, b.initial)
	}

	for p := range a.states {
		for q := range b.states {
			for _, symbol := range symbols {
				t1 := a.step(p, symbol)
				t2 := b.step(q, symbol)
				if t1 == -1 || t2 == -1 {
					continue
				}
				result.transitions[transitionKey{pair(p, q), symbol}] = pair(t1, t2)
			}
		}
	}
	return result
}

// Union
// Returns the product of a and b where a pair is final if either component is.
func Union(a, b *Automaton) *Automaton {
	return Product(a, b, func(f1, f2 bool) bool { return f1 || f2 })
}

// Intersection
// Returns the product of a and b where a pair is final if both components are.
func Intersection(a, b *Automaton) *Automaton {
	return Product(a, b, func(f1, f2 bool) bool { return f1 && f2 })
}

// Difference
// Returns the intersection of a with the complement of b.
func Difference(a, b *Automaton) *Automaton {
	return Intersection(a, Complement(b))
}
