// Package workspace keeps the named automata of a session and applies the dfa operations to them.
//
// Every automaton is stored as its own value: Put and Get clone, and derived automata are stored under
// names built from their operands.
package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/geange/dfa"
	"github.com/geange/dfa/internal/logging"
	"github.com/geange/dfa/jflap"
)

// ErrNotFound is returned when a name has no automaton.
var ErrNotFound = errors.New("automaton not found")

// Suffixes and infixes of derived names.
const (
	copySuffix        = "_copy"
	minSuffix         = "_min"
	complementSuffix  = "_C"
	totalSuffix       = "_total"
	unionInfix        = "_U_"
	intersectionInfix = "_I_"
	differenceInfix   = "_D_"
)

// Workspace maps user chosen names to automata.
type Workspace struct {
	automata map[string]*dfa.Automaton
	logger   *slog.Logger
	strict   bool
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger used to report operations.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithStrictImport validates imported documents against the JFLAP schema.
func WithStrictImport(strict bool) Option {
	return func(w *Workspace) {
		w.strict = strict
	}
}

// New creates an empty workspace.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		automata: make(map[string]*dfa.Automaton),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Put stores a copy of a under name, replacing any previous automaton.
func (w *Workspace) Put(name string, a *dfa.Automaton) {
	w.automata[name] = a.Clone()
}

// Get returns a copy of the automaton stored under name.
func (w *Workspace) Get(name string) (*dfa.Automaton, error) {
	a, err := w.lookup(name)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

func (w *Workspace) lookup(name string) (*dfa.Automaton, error) {
	a, ok := w.automata[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return a, nil
}

// Names returns the stored names in sorted order.
func (w *Workspace) Names() []string {
	names := make([]string, 0, len(w.automata))
	for name := range w.automata {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of stored automata.
func (w *Workspace) Len() int {
	return len(w.automata)
}

// Import reads the JFLAP file at path and stores it under name.
func (w *Workspace) Import(name, path string) error {
	opts := []jflap.Option{jflap.WithLogger(w.logger)}
	if w.strict {
		opts = append(opts, jflap.WithSchemaValidation())
	}
	a, err := jflap.ReadFile(path, opts...)
	if err != nil {
		w.logger.Warn("import failed", "name", name, "path", path, "error", err)
		return fmt.Errorf("import %q: %w", path, err)
	}
	w.automata[name] = a
	w.logger.Info("imported automaton", "name", name, "path", path,
		"states", a.GetNumStates(), "transitions", a.GetNumTransitions())
	return nil
}

// Export writes the automaton stored under name to path.
func (w *Workspace) Export(name, path string) error {
	a, err := w.lookup(name)
	if err != nil {
		return err
	}
	if err := jflap.WriteFile(path, a); err != nil {
		w.logger.Warn("export failed", "name", name, "path", path, "error", err)
		return fmt.Errorf("export %q: %w", name, err)
	}
	w.logger.Info("exported automaton", "name", name, "path", path)
	return nil
}

// Show returns the textual rendering of the automaton stored under name.
func (w *Workspace) Show(name string) (string, error) {
	a, err := w.lookup(name)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// Copy stores a copy of name as name_copy and returns the new name.
func (w *Workspace) Copy(name string) (string, error) {
	a, err := w.lookup(name)
	if err != nil {
		return "", err
	}
	return w.store(name+copySuffix, a.Clone()), nil
}

// Minimize minimizes the automaton stored under name. The result is stored as name_min unless the
// automaton was already minimal, in which case nothing new is stored and name is returned with true.
func (w *Workspace) Minimize(name string) (string, bool, error) {
	a, err := w.lookup(name)
	if err != nil {
		return "", false, err
	}
	m, minimal := dfa.Minimize(a)
	if minimal {
		w.logger.Info("automaton is already minimal", "name", name)
		return name, true, nil
	}
	w.logger.Info("automaton minimized", "name", name,
		"states", a.GetNumStates(), "minimized", m.GetNumStates())
	return w.store(name+minSuffix, m), false, nil
}

// Equivalent reports whether the two automata accept the same language.
func (w *Workspace) Equivalent(name1, name2 string) (bool, error) {
	a, err := w.lookup(name1)
	if err != nil {
		return false, err
	}
	b, err := w.lookup(name2)
	if err != nil {
		return false, err
	}
	return dfa.Equivalent(a, b), nil
}

// EquivalentStates returns the pairs of indistinguishable states of the automaton stored under name.
func (w *Workspace) EquivalentStates(name string) ([]dfa.StatePair, error) {
	a, err := w.lookup(name)
	if err != nil {
		return nil, err
	}
	return dfa.StateEquivalencePairs(a), nil
}

// Union stores the union of name1 and name2 as name1_U_name2.
func (w *Workspace) Union(name1, name2 string) (string, error) {
	return w.binary(name1, name2, unionInfix, dfa.Union)
}

// Intersection stores the intersection of name1 and name2 as name1_I_name2.
func (w *Workspace) Intersection(name1, name2 string) (string, error) {
	return w.binary(name1, name2, intersectionInfix, dfa.Intersection)
}

// Difference stores name1 minus name2 as name1_D_name2.
func (w *Workspace) Difference(name1, name2 string) (string, error) {
	return w.binary(name1, name2, differenceInfix, dfa.Difference)
}

// Complement stores the complement of name as name_C.
func (w *Workspace) Complement(name string) (string, error) {
	a, err := w.lookup(name)
	if err != nil {
		return "", err
	}
	return w.store(name+complementSuffix, dfa.Complement(a)), nil
}

// Complete stores the completion of name as name_total.
func (w *Workspace) Complete(name string) (string, error) {
	a, err := w.lookup(name)
	if err != nil {
		return "", err
	}
	return w.store(name+totalSuffix, dfa.Complete(a)), nil
}

func (w *Workspace) binary(name1, name2, infix string, op func(a, b *dfa.Automaton) *dfa.Automaton) (string, error) {
	a, err := w.lookup(name1)
	if err != nil {
		return "", err
	}
	b, err := w.lookup(name2)
	if err != nil {
		return "", err
	}
	return w.store(name1+infix+name2, op(a, b)), nil
}

func (w *Workspace) store(name string, a *dfa.Automaton) string {
	w.automata[name] = a
	w.logger.Debug("stored automaton", "name", name, "states", a.GetNumStates())
	return name
}

// RunResult is the outcome of running a word through an automaton.
type RunResult struct {
	State    string
	Stuck    bool
	Accepted bool
}

// Run runs input through the automaton stored under name.
func (w *Workspace) Run(name, input string) (RunResult, error) {
	a, err := w.lookup(name)
	if err != nil {
		return RunResult{}, err
	}
	state, stuck := a.Run(input)
	return RunResult{
		State:    state,
		Stuck:    stuck,
		Accepted: !stuck && a.IsFinal(state),
	}, nil
}
