package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomaton_CreateState(t *testing.T) {
	t.Run("duplicate id is rejected", func(t *testing.T) {
		a := NewAutomaton("0", "1")
		assert.True(t, a.CreateState("q0", true, false))
		assert.False(t, a.CreateState("q0", false, true))
		assert.Equal(t, 1, a.GetNumStates())
		assert.False(t, a.IsFinal("q0"))
	})

	t.Run("last initial wins", func(t *testing.T) {
		a := NewAutomaton("0")
		a.CreateState("a", true, false)
		a.CreateState("b", true, false)
		initial, ok := a.Initial()
		assert.True(t, ok)
		assert.Equal(t, "b", initial)
	})

	t.Run("no initial", func(t *testing.T) {
		a := NewAutomaton("0")
		a.CreateState("a", false, true)
		_, ok := a.Initial()
		assert.False(t, ok)
		assert.Equal(t, []string{"a"}, a.Finals())
	})
}

func TestAutomaton_AddTransition(t *testing.T) {
	a := NewAutomaton("0", "1")
	a.CreateState("q0", true, false)
	a.CreateState("q1", false, true)

	tests := []struct {
		name   string
		origin string
		dest   string
		symbol string
		want   bool
	}{
		{"valid", "q0", "q1", "0", true},
		{"unknown origin", "qx", "q1", "0", false},
		{"unknown dest", "q0", "qx", "0", false},
		{"symbol outside alphabet", "q0", "q1", "2", false},
		{"empty symbol", "q0", "q1", "", false},
		{"multi character symbol", "q0", "q1", "01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.AddTransition(tt.origin, tt.dest, tt.symbol))
		})
	}
	assert.Equal(t, 1, a.GetNumTransitions())

	t.Run("overwrite keeps determinism", func(t *testing.T) {
		assert.True(t, a.AddTransition("q0", "q0", "0"))
		assert.Equal(t, 1, a.GetNumTransitions())
		dest, ok := a.Step("q0", "0")
		assert.True(t, ok)
		assert.Equal(t, "q0", dest)
	})
}

func TestAutomaton_SetInitialAndFinal(t *testing.T) {
	a := parity(t)
	assert.False(t, a.SetInitial("nope"))
	assert.True(t, a.SetInitial("q1"))
	initial, _ := a.Initial()
	assert.Equal(t, "q1", initial)

	assert.False(t, a.SetFinal("nope", true))
	assert.True(t, a.SetFinal("q0", true))
	assert.True(t, a.SetFinal("q1", false))
	assert.Equal(t, []string{"q0"}, a.Finals())
}

func TestAutomaton_String(t *testing.T) {
	want := `DFA:
  States (Q):
   { q0, q1 }
  Alphabet (S):
   { 0, 1 }
  Transitions (T):
   (q0, "0") --> q0
   (q0, "1") --> q1
   (q1, "0") --> q1
   (q1, "1") --> q0
  Initial state (i): q0
  Final states (F):
   { q1 }
`
	a := parity(t)
	assert.Equal(t, want, a.String())
	// Rendering does not depend on map iteration order.
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, a.String())
	}

	empty := NewAutomaton()
	assert.Contains(t, empty.String(), "Initial state (i): <none>")
}

func TestAutomaton_Clone(t *testing.T) {
	a := parity(t)
	b := a.Clone()
	assert.True(t, b.CreateState("q2", false, true))
	assert.True(t, b.AddTransition("q0", "q2", "0"))
	b.SetFinal("q1", false)

	assert.Equal(t, 2, a.GetNumStates())
	dest, _ := a.Step("q0", "0")
	assert.Equal(t, "q0", dest)
	assert.True(t, a.IsFinal("q1"))
}

func TestAutomaton_EffectiveAlphabet(t *testing.T) {
	a := build(t, "012", "a", []string{"b"}, "a 0 b", "b 2 a")
	assert.Equal(t, []string{"0", "1", "2"}, a.Alphabet())
	assert.Equal(t, []string{"0", "2"}, a.EffectiveAlphabet())
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "ç"}, Symbols("abç"))
	assert.Empty(t, Symbols(""))
}

func TestAutomata(t *testing.T) {
	t.Run("MakeEmpty", func(t *testing.T) {
		a := defaultAutomata.MakeEmpty("a")
		assert.False(t, a.Accepts(""))
		assert.False(t, a.Accepts("a"))
		assert.True(t, IsEmpty(a))
	})

	t.Run("MakeEmptyString", func(t *testing.T) {
		a := defaultAutomata.MakeEmptyString("a")
		assert.True(t, a.Accepts(""))
		assert.False(t, a.Accepts("a"))
	})

	t.Run("MakeAnyString", func(t *testing.T) {
		a := defaultAutomata.MakeAnyString("a", "b")
		assert.True(t, a.Accepts(""))
		assert.True(t, a.Accepts("abba"))
		assert.False(t, a.Accepts("abc"))
	})

	t.Run("MakeString", func(t *testing.T) {
		a, err := defaultAutomata.MakeString("ab", "a", "b")
		assert.Nil(t, err)
		assert.True(t, a.Accepts("ab"))
		assert.False(t, a.Accepts("a"))
		assert.False(t, a.Accepts("abb"))

		_, err = defaultAutomata.MakeString("abc", "a", "b")
		assert.NotNil(t, err)
	})
}
