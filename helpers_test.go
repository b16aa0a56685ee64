package dfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// build Creates an automaton over the characters of alphabet. Each edge is written "from symbol to".
func build(t *testing.T, alphabet, initial string, finals []string, edges ...string) *Automaton {
	t.Helper()
	a := NewAutomaton(Symbols(alphabet)...)
	isFinal := make(map[string]bool, len(finals))
	for _, f := range finals {
		isFinal[f] = true
	}
	add := func(id string) {
		if !a.HasState(id) {
			require.True(t, a.CreateState(id, id == initial, isFinal[id]))
		}
	}
	add(initial)
	for _, f := range finals {
		add(f)
	}
	for _, e := range edges {
		parts := strings.Fields(e)
		require.Len(t, parts, 3, "edge %q", e)
		add(parts[0])
		add(parts[2])
		require.True(t, a.AddTransition(parts[0], parts[2], parts[1]), "edge %q", e)
	}
	return a
}

// parity accepts the words over {0,1} with an odd number of 1s.
func parity(t *testing.T) *Automaton {
	return build(t, "01", "q0", []string{"q1"},
		"q0 0 q0", "q0 1 q1", "q1 0 q1", "q1 1 q0")
}

// endsWithZero accepts the words over {0,1} whose last symbol is 0.
func endsWithZero(t *testing.T) *Automaton {
	return build(t, "01", "e0", []string{"e1"},
		"e0 0 e1", "e0 1 e0", "e1 0 e1", "e1 1 e0")
}

// evenLength accepts the words over {0,1} of even length.
func evenLength(t *testing.T) *Automaton {
	return build(t, "01", "z0", []string{"z0"},
		"z0 0 z1", "z0 1 z1", "z1 0 z0", "z1 1 z0")
}
