package dfa

import (
	"fmt"
	"strconv"
)

// Automata Factory for small canned automata.
type Automata struct {
}

var defaultAutomata = &Automata{}

func stateName(i int) string {
	return "s" + strconv.Itoa(i)
}

// MakeEmpty
// Returns a new automaton over symbols with the empty language.
func (*Automata) MakeEmpty(symbols ...string) *Automaton {
	a := NewAutomaton(symbols...)
	a.CreateState(stateName(0), true, false)
	return a
}

// MakeEmptyString
// Returns a new automaton over symbols that accepts only the empty string.
func (*Automata) MakeEmptyString(symbols ...string) *Automaton {
	a := NewAutomaton(symbols...)
	a.CreateState(stateName(0), true, true)
	return a
}

// MakeAnyString
// Returns a new automaton that accepts all strings over symbols.
func (*Automata) MakeAnyString(symbols ...string) *Automaton {
	a := NewAutomaton(symbols...)
	s := stateName(0)
	a.CreateState(s, true, true)
	for _, c := range symbols {
		a.AddTransition(s, s, c)
	}
	return a
}

// MakeString
// Returns a new automaton over symbols that accepts exactly s. Every character of s must belong to symbols.
func (*Automata) MakeString(s string, symbols ...string) (*Automaton, error) {
	chars := Symbols(s)
	a := NewAutomatonV1(symbols, len(chars)+1)
	a.CreateState(stateName(0), true, len(chars) == 0)
	for i, c := range chars {
		a.CreateState(stateName(i+1), false, i == len(chars)-1)
		if !a.AddTransition(stateName(i), stateName(i+1), c) {
			return nil, fmt.Errorf("symbol %q is not in the alphabet", c)
		}
	}
	return a, nil
}
