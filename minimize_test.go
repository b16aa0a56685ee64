package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimize(t *testing.T) {
	t.Run("parity is already minimal", func(t *testing.T) {
		a := parity(t)
		m, minimal := Minimize(a)
		assert.True(t, minimal)
		assert.Same(t, a, m)
		assert.Equal(t, 2, m.GetNumStates())
	})

	t.Run("redundant non-final state", func(t *testing.T) {
		// a and b both wait for the first 1.
		a := build(t, "01", "a", []string{"c"},
			"a 0 b", "a 1 c", "b 0 b", "b 1 c", "c 0 c", "c 1 c")
		m, minimal := Minimize(a)
		assert.False(t, minimal)
		assert.Equal(t, []string{"q0", "q1"}, m.States())
		initial, _ := m.Initial()
		assert.Equal(t, "q1", initial)
		assert.Equal(t, []string{"q0"}, m.Finals())
		assert.Equal(t, []Transition{
			{"q0", "0", "q0"},
			{"q0", "1", "q0"},
			{"q1", "0", "q1"},
			{"q1", "1", "q0"},
		}, m.Transitions())
		assert.True(t, Equivalent(a, m))

		// input untouched
		assert.Equal(t, 3, a.GetNumStates())
	})

	t.Run("redundant final states", func(t *testing.T) {
		a := build(t, "01", "a", []string{"b", "c"},
			"a 0 b", "a 1 c", "b 0 b", "b 1 b", "c 0 c", "c 1 c")
		m, minimal := Minimize(a)
		assert.False(t, minimal)
		assert.Equal(t, 2, m.GetNumStates())
		assert.True(t, Equivalent(a, m))
	})

	t.Run("idempotent", func(t *testing.T) {
		a := build(t, "01", "s", []string{"f", "g"},
			"s 0 t", "s 1 u", "t 0 f", "t 1 g", "u 0 g", "u 1 f", "f 0 f", "f 1 f", "g 0 g", "g 1 g")
		m, minimal := Minimize(a)
		assert.False(t, minimal)
		again, minimal := Minimize(m)
		assert.True(t, minimal)
		assert.Same(t, m, again)
		assert.Equal(t, m.Transitions(), again.Transitions())
	})

	t.Run("partial transitions stay undefined", func(t *testing.T) {
		a := build(t, "01", "p", []string{"r"}, "p 0 q", "q 0 r")
		m, minimal := Minimize(a)
		assert.True(t, minimal)
		assert.Same(t, a, m)

		b := build(t, "01", "p", []string{"r", "s"}, "p 0 r", "p 1 s")
		m, minimal = Minimize(b)
		assert.False(t, minimal)
		assert.Equal(t, 2, m.GetNumStates())
		assert.Equal(t, 2, m.GetNumTransitions())
		assert.True(t, Equivalent(b, m))
	})

	t.Run("no states", func(t *testing.T) {
		a := NewAutomaton("0")
		m, minimal := Minimize(a)
		assert.True(t, minimal)
		assert.Same(t, a, m)
	})

	t.Run("equivalence is preserved", func(t *testing.T) {
		for _, a := range []*Automaton{
			parity(t),
			endsWithZero(t),
			Union(parity(t), endsWithZero(t)),
			Difference(evenLength(t), parity(t)),
			Complement(build(t, "01", "q0", []string{"q1"}, "q0 0 q0", "q0 1 q1", "q1 0 q1")),
		} {
			m, _ := Minimize(a)
			assert.True(t, Equivalent(a, m), a.String())
			_, minimal := Minimize(m)
			assert.True(t, minimal, m.String())
		}
	})
}
