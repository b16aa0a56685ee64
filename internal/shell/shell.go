// Package shell is the interactive menu over a workspace.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/geange/dfa/internal/workspace"
)

const (
	optImport = iota
	optExport
	optShow
	optCopy
	optMinimize
	optEquivalent
	optEquivalentStates
	optOperation
	optRun
	optExit
)

var menuOptions = []string{
	optImport:           "Import automaton from a JFLAP file (.jff)",
	optExport:           "Save automaton to a file",
	optShow:             "Show automaton",
	optCopy:             "Copy automaton",
	optMinimize:         "Minimize automaton (Hopcroft)",
	optEquivalent:       "Check equivalence of two automata",
	optEquivalentStates: "List equivalent states of an automaton",
	optOperation:        "Operation between automata",
	optRun:              "Run a word",
	optExit:             "Exit",
}

const (
	opUnion = iota
	opIntersection
	opDifference
	opComplement
	opBack
)

var operationOptions = []string{
	opUnion:        "Union",
	opIntersection: "Intersection",
	opDifference:   "Difference",
	opComplement:   "Complement",
	opBack:         "Back",
}

// Shell runs the menu loop.
type Shell struct {
	ws      *workspace.Workspace
	driver  Driver
	out     io.Writer
	profile termenv.Profile
}

// Option configures a Shell.
type Option func(*Shell)

// WithProfile sets the colour profile of status lines.
func WithProfile(p termenv.Profile) Option {
	return func(s *Shell) {
		s.profile = p
	}
}

// New creates a shell over ws that prompts through driver and prints to out.
func New(ws *workspace.Workspace, driver Driver, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		ws:      ws,
		driver:  driver,
		out:     out,
		profile: termenv.ColorProfile(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits or interrupts a prompt.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := s.driver.Select(ctx, SelectConfig{Message: "DFA menu", Options: menuOptions})
		if err != nil {
			return s.quit(err)
		}
		if choice == optExit {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}
		if err := s.dispatch(ctx, choice); err != nil {
			if errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) {
				return s.quit(err)
			}
			s.failure(err.Error())
		}
	}
}

func (s *Shell) quit(err error) error {
	if errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(s.out, "Bye!")
		return nil
	}
	return err
}

func (s *Shell) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case optImport:
		return s.importAutomaton(ctx)
	case optExport:
		return s.exportAutomaton(ctx)
	case optShow:
		return s.show(ctx)
	case optCopy:
		return s.copyAutomaton(ctx)
	case optMinimize:
		return s.minimize(ctx)
	case optEquivalent:
		return s.equivalent(ctx)
	case optEquivalentStates:
		return s.equivalentStates(ctx)
	case optOperation:
		return s.operation(ctx)
	case optRun:
		return s.run(ctx)
	}
	return fmt.Errorf("invalid option %d", choice)
}

func (s *Shell) importAutomaton(ctx context.Context) error {
	name, err := s.driver.Input(ctx, InputConfig{Message: "Automaton name:"})
	if err != nil {
		return err
	}
	path, err := s.driver.Input(ctx, InputConfig{Message: "Path of the .jff file:"})
	if err != nil {
		return err
	}
	if err := s.ws.Import(name, path); err != nil {
		return err
	}
	s.success(fmt.Sprintf("automaton loaded as '%s' from %s", name, path))
	return nil
}

func (s *Shell) exportAutomaton(ctx context.Context) error {
	name, ok, err := s.pick(ctx, "Automaton to save:")
	if err != nil || !ok {
		return err
	}
	path, err := s.driver.Input(ctx, InputConfig{Message: "Save as:", Default: name + ".jff"})
	if err != nil {
		return err
	}
	if err := s.ws.Export(name, path); err != nil {
		return err
	}
	s.success(fmt.Sprintf("automaton '%s' saved to %s", name, path))
	return nil
}

func (s *Shell) show(ctx context.Context) error {
	name, ok, err := s.pick(ctx, "Automaton to show:")
	if err != nil || !ok {
		return err
	}
	out, err := s.ws.Show(name)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}

func (s *Shell) copyAutomaton(ctx context.Context) error {
	name, ok, err := s.pick(ctx, "Automaton to copy:")
	if err != nil || !ok {
		return err
	}
	copied, err := s.ws.Copy(name)
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("automaton '%s' copied as '%s'", name, copied))
	return nil
}

func (s *Shell) minimize(ctx context.Context) error {
	name, ok, err := s.pick(ctx, "Automaton to minimize:")
	if err != nil || !ok {
		return err
	}
	result, minimal, err := s.ws.Minimize(name)
	if err != nil {
		return err
	}
	if minimal {
		s.success(fmt.Sprintf("automaton '%s' is already minimal", name))
		return nil
	}
	s.success(fmt.Sprintf("automaton '%s' minimized as '%s'", name, result))
	return nil
}

func (s *Shell) equivalent(ctx context.Context) error {
	if s.ws.Len() < 2 {
		s.warning("at least two automata are needed to check equivalence")
		return nil
	}
	name1, _, err := s.pick(ctx, "First automaton:")
	if err != nil {
		return err
	}
	name2, _, err := s.pick(ctx, "Second automaton:")
	if err != nil {
		return err
	}
	eq, err := s.ws.Equivalent(name1, name2)
	if err != nil {
		return err
	}
	if eq {
		s.success(fmt.Sprintf("'%s' and '%s' are equivalent", name1, name2))
	} else {
		s.failure(fmt.Sprintf("'%s' and '%s' are NOT equivalent", name1, name2))
	}
	return nil
}

func (s *Shell) equivalentStates(ctx context.Context) error {
	name, ok, err := s.pick(ctx, "Automaton:")
	if err != nil || !ok {
		return err
	}
	pairs, err := s.ws.EquivalentStates(name)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		s.info("no equivalent states found")
		return nil
	}
	s.success("equivalent states:")
	for _, p := range pairs {
		fmt.Fprintf(s.out, "  - %s\n", p)
	}
	return nil
}

func (s *Shell) operation(ctx context.Context) error {
	if s.ws.Len() == 0 {
		s.warning("no automata loaded")
		return nil
	}
	op, err := s.driver.Select(ctx, SelectConfig{Message: "Operation", Options: operationOptions})
	if err != nil {
		return err
	}
	if op == opBack {
		return nil
	}

	name1, _, err := s.pick(ctx, "First automaton:")
	if err != nil {
		return err
	}
	var result string
	switch op {
	case opComplement:
		result, err = s.ws.Complement(name1)
	default:
		var name2 string
		name2, _, err = s.pick(ctx, "Second automaton:")
		if err != nil {
			return err
		}
		switch op {
		case opUnion:
			result, err = s.ws.Union(name1, name2)
		case opIntersection:
			result, err = s.ws.Intersection(name1, name2)
		case opDifference:
			result, err = s.ws.Difference(name1, name2)
		default:
			return fmt.Errorf("invalid operation %d", op)
		}
	}
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("resulting automaton '%s' created", result))
	return nil
}

func (s *Shell) run(ctx context.Context) error {
	name, ok, err := s.pick(ctx, "Automaton:")
	if err != nil || !ok {
		return err
	}
	word, err := s.driver.Input(ctx, InputConfig{Message: "Word:"})
	if err != nil {
		return err
	}
	res, err := s.ws.Run(name, word)
	if err != nil {
		return err
	}
	switch {
	case res.Stuck:
		s.failure(fmt.Sprintf("rejected: stuck in state %s", orNone(res.State)))
	case res.Accepted:
		s.success(fmt.Sprintf("accepted in state %s", res.State))
	default:
		s.failure(fmt.Sprintf("rejected in state %s", res.State))
	}
	return nil
}

// pick asks for one of the stored automata. ok is false when there is nothing to pick from.
func (s *Shell) pick(ctx context.Context, message string) (string, bool, error) {
	names := s.ws.Names()
	if len(names) == 0 {
		s.warning("no automata loaded")
		return "", false, nil
	}
	i, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: names})
	if err != nil {
		return "", false, err
	}
	if i < 0 || i >= len(names) {
		return "", false, fmt.Errorf("invalid choice %d", i)
	}
	return names[i], true, nil
}

func orNone(state string) string {
	if strings.TrimSpace(state) == "" {
		return "<none>"
	}
	return state
}

func (s *Shell) success(msg string) {
	fmt.Fprintln(s.out, s.profile.String("✔ "+msg).Foreground(s.profile.Color("2")))
}

func (s *Shell) failure(msg string) {
	fmt.Fprintln(s.out, s.profile.String("✘ "+msg).Foreground(s.profile.Color("1")))
}

func (s *Shell) warning(msg string) {
	fmt.Fprintln(s.out, s.profile.String("! "+msg).Foreground(s.profile.Color("3")))
}

func (s *Shell) info(msg string) {
	fmt.Fprintln(s.out, s.profile.String("i "+msg).Faint())
}
