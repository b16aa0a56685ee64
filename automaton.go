package dfa

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a deterministic finite automaton over a declared alphabet of one-character symbols.
// States are opaque string identifiers and must be created using CreateState. Transitions are added with
// AddTransition; the transition function may be partial, a missing (state, symbol) pair simply means there
// is no move. An Automaton is only mutated while it is being built; every operation in this package returns
// a new Automaton and leaves its inputs untouched.
type Automaton struct {
	// State identifiers in creation order; the position is the state index used everywhere else.
	states []string

	// Reverse lookup of states.
	index map[string]int

	// Declared alphabet. It may contain symbols never used by a transition.
	alphabet map[string]struct{}

	// Destination index for every defined (state, symbol) pair.
	transitions map[transitionKey]int

	// Index of the initial state, or -1 if it was never set.
	initial int

	// If the bit is set then that state is a final state.
	finals *bitset.BitSet
}

type transitionKey struct {
	state  int
	symbol string
}

// Transition A single edge of the transition function.
type Transition struct {
	From   string
	Symbol string
	To     string
}

func (t Transition) String() string {
	return fmt.Sprintf("(%s, %q) --> %s", t.From, t.Symbol, t.To)
}

// NewAutomaton Create an empty automaton over the given alphabet. Duplicate symbols are ignored.
func NewAutomaton(symbols ...string) *Automaton {
	return NewAutomatonV1(symbols, 2)
}

func NewAutomatonV1(symbols []string, numStates int) *Automaton {
	a := &Automaton{
		states:      make([]string, 0, numStates),
		index:       make(map[string]int, numStates),
		alphabet:    make(map[string]struct{}, len(symbols)),
		transitions: make(map[transitionKey]int),
		initial:     -1,
		finals:      bitset.New(uint(numStates)),
	}
	for _, s := range symbols {
		a.alphabet[s] = struct{}{}
	}
	return a
}

// Symbols Split s into one-character symbols, suitable for NewAutomaton.
func Symbols(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// CreateState Create a new state. Returns false, leaving the automaton untouched, if id already exists.
// When initial is true the state becomes the initial state, replacing any previous one.
func (a *Automaton) CreateState(id string, initial, final bool) bool {
	if _, ok := a.index[id]; ok {
		return false
	}
	state := a.addState(id)
	if initial {
		a.initial = state
	}
	if final {
		a.finals.Set(uint(state))
	}
	return true
}

func (a *Automaton) addState(id string) int {
	state := len(a.states)
	a.states = append(a.states, id)
	a.index[id] = state
	return state
}

// AddTransition Add a transition origin --symbol--> dest. Both states must exist and symbol must be a single
// character of the declared alphabet, otherwise false is returned and nothing changes. A previous transition
// for the same (origin, symbol) is overwritten.
func (a *Automaton) AddTransition(origin, dest, symbol string) bool {
	from, ok := a.index[origin]
	if !ok {
		return false
	}
	to, ok := a.index[dest]
	if !ok {
		return false
	}
	if utf8.RuneCountInString(symbol) != 1 {
		return false
	}
	if _, ok := a.alphabet[symbol]; !ok {
		return false
	}
	a.transitions[transitionKey{from, symbol}] = to
	return true
}

// SetInitial Mark id as the initial state. Returns false if id is unknown.
func (a *Automaton) SetInitial(id string) bool {
	state, ok := a.index[id]
	if !ok {
		return false
	}
	a.initial = state
	return true
}

// SetFinal Set or clear id as a final state. Returns false if id is unknown.
func (a *Automaton) SetFinal(id string, final bool) bool {
	state, ok := a.index[id]
	if !ok {
		return false
	}
	a.finals.SetTo(uint(state), final)
	return true
}

// Run Consume input one symbol at a time from the initial state. It stops as soon as a symbol is outside the
// alphabet or has no transition from the current state and reports stuck = true together with the state it
// got stuck in. An automaton without an initial state is always stuck.
func (a *Automaton) Run(input string) (state string, stuck bool) {
	if a.initial < 0 {
		return "", true
	}
	current := a.initial
	for _, r := range input {
		symbol := string(r)
		if _, ok := a.alphabet[symbol]; !ok {
			return a.states[current], true
		}
		next := a.step(current, symbol)
		if next == -1 {
			return a.states[current], true
		}
		current = next
	}
	return a.states[current], false
}

// Accepts Returns true if the run over input does not get stuck and ends in a final state.
func (a *Automaton) Accepts(input string) bool {
	state, stuck := a.Run(input)
	return !stuck && a.IsFinal(state)
}

// IsFinal Returns true if id is a final state.
func (a *Automaton) IsFinal(id string) bool {
	state, ok := a.index[id]
	return ok && a.isFinal(state)
}

func (a *Automaton) isFinal(state int) bool {
	return state >= 0 && a.finals.Test(uint(state))
}

// HasState Returns true if id is a state of this automaton.
func (a *Automaton) HasState(id string) bool {
	_, ok := a.index[id]
	return ok
}

// Step Performs a lookup in the transition function. Returns false if there is no move.
func (a *Automaton) Step(id, symbol string) (string, bool) {
	state, ok := a.index[id]
	if !ok {
		return "", false
	}
	next := a.step(state, symbol)
	if next == -1 {
		return "", false
	}
	return a.states[next], true
}

// Returns the destination state index, -1 if no matching transition.
func (a *Automaton) step(state int, symbol string) int {
	if state < 0 {
		return -1
	}
	dest, ok := a.transitions[transitionKey{state, symbol}]
	if !ok {
		return -1
	}
	return dest
}

// Initial Returns the initial state, false if it is not set.
func (a *Automaton) Initial() (string, bool) {
	if a.initial < 0 {
		return "", false
	}
	return a.states[a.initial], true
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions)
}

// States Returns the state identifiers in sorted order.
func (a *Automaton) States() []string {
	out := slices.Clone(a.states)
	slices.Sort(out)
	return out
}

// Alphabet Returns the declared alphabet in sorted order.
func (a *Automaton) Alphabet() []string {
	return sortedKeys(a.alphabet)
}

// EffectiveAlphabet Returns the symbols actually used by at least one transition, in sorted order.
func (a *Automaton) EffectiveAlphabet() []string {
	used := make(map[string]struct{})
	for key := range a.transitions {
		used[key.symbol] = struct{}{}
	}
	return sortedKeys(used)
}

// Finals Returns the final states in sorted order.
func (a *Automaton) Finals() []string {
	out := make([]string, 0, a.finals.Count())
	for i, ok := a.finals.NextSet(0); ok; i, ok = a.finals.NextSet(i + 1) {
		out = append(out, a.states[i])
	}
	slices.Sort(out)
	return out
}

// Transitions Returns every transition sorted by origin, then symbol.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, len(a.transitions))
	for key, dest := range a.transitions {
		out = append(out, Transition{
			From:   a.states[key.state],
			Symbol: key.symbol,
			To:     a.states[dest],
		})
	}
	slices.SortFunc(out, func(x, y Transition) int {
		if c := strings.Compare(x.From, y.From); c != 0 {
			return c
		}
		return strings.Compare(x.Symbol, y.Symbol)
	})
	return out
}

// Clone Returns a deep copy that shares nothing with a.
func (a *Automaton) Clone() *Automaton {
	b := &Automaton{
		states:      slices.Clone(a.states),
		index:       make(map[string]int, len(a.index)),
		alphabet:    make(map[string]struct{}, len(a.alphabet)),
		transitions: make(map[transitionKey]int, len(a.transitions)),
		initial:     a.initial,
		finals:      a.finals.Clone(),
	}
	for id, state := range a.index {
		b.index[id] = state
	}
	for s := range a.alphabet {
		b.alphabet[s] = struct{}{}
	}
	for key, dest := range a.transitions {
		b.transitions[key] = dest
	}
	return b
}

// String renders the automaton with every collection sorted, so the output is stable across runs.
func (a *Automaton) String() string {
	var sb strings.Builder
	sb.WriteString("DFA:\n")

	sb.WriteString("  States (Q):\n")
	sb.WriteString("   { " + strings.Join(a.States(), ", ") + " }\n")

	sb.WriteString("  Alphabet (S):\n")
	sb.WriteString("   { " + strings.Join(a.Alphabet(), ", ") + " }\n")

	sb.WriteString("  Transitions (T):\n")
	for _, t := range a.Transitions() {
		sb.WriteString("   " + t.String() + "\n")
	}

	initial, ok := a.Initial()
	if !ok {
		initial = "<none>"
	}
	sb.WriteString("  Initial state (i): " + initial + "\n")

	sb.WriteString("  Final states (F):\n")
	sb.WriteString("   { " + strings.Join(a.Finals(), ", ") + " }\n")
	return sb.String()
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
