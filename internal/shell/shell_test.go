package shell

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/dfa"
	"github.com/geange/dfa/internal/workspace"
	"github.com/geange/dfa/jflap"
)

// scriptedDriver answers prompts from a fixed script. Select answers are option labels.
// It reports ErrInterrupted once the script is exhausted.
type scriptedDriver struct {
	answers []string
}

func (d *scriptedDriver) next() (string, error) {
	if len(d.answers) == 0 {
		return "", ErrInterrupted
	}
	a := d.answers[0]
	d.answers = d.answers[1:]
	return a, nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	a, err := d.next()
	if err != nil {
		return 0, err
	}
	for i, opt := range cfg.Options {
		if opt == a {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q is not one of %v", a, cfg.Options)
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return d.next()
}

func parity() *dfa.Automaton {
	a := dfa.NewAutomaton("0", "1")
	a.CreateState("q0", true, false)
	a.CreateState("q1", false, true)
	a.AddTransition("q0", "q0", "0")
	a.AddTransition("q0", "q1", "1")
	a.AddTransition("q1", "q1", "0")
	a.AddTransition("q1", "q0", "1")
	return a
}

func runScript(t *testing.T, ws *workspace.Workspace, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(ws, &scriptedDriver{answers: answers}, &out, WithProfile(termenv.Ascii))
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestShell_ImportShowExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parity.jff")
	require.NoError(t, jflap.WriteFile(path, parity()))

	ws := workspace.New()
	out := runScript(t, ws,
		menuOptions[optImport], "p", path,
		menuOptions[optShow], "p",
		menuOptions[optExit],
	)

	assert.Contains(t, out, "automaton loaded as 'p'")
	assert.Contains(t, out, `(q0, "1") --> q1`)
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, []string{"p"}, ws.Names())
}

func TestShell_Operations(t *testing.T) {
	ws := workspace.New()
	ws.Put("p", parity())

	out := runScript(t, ws,
		menuOptions[optCopy], "p",
		menuOptions[optMinimize], "p",
		menuOptions[optEquivalent], "p", "p_copy",
		menuOptions[optOperation], operationOptions[opComplement], "p",
		menuOptions[optEquivalent], "p", "p_C",
		menuOptions[optOperation], operationOptions[opUnion], "p", "p_C",
		menuOptions[optEquivalentStates], "p",
		menuOptions[optRun], "p", "1",
		menuOptions[optRun], "p", "12",
	)

	assert.Contains(t, out, "automaton 'p' copied as 'p_copy'")
	assert.Contains(t, out, "automaton 'p' is already minimal")
	assert.Contains(t, out, "'p' and 'p_copy' are equivalent")
	assert.Contains(t, out, "resulting automaton 'p_C' created")
	assert.Contains(t, out, "'p' and 'p_C' are NOT equivalent")
	assert.Contains(t, out, "resulting automaton 'p_U_p_C' created")
	assert.Contains(t, out, "no equivalent states found")
	assert.Contains(t, out, "accepted in state q1")
	assert.Contains(t, out, "rejected: stuck in state q1")
	// the script ran out: interrupted
	assert.Contains(t, out, "Bye!")
}

func TestShell_EmptyWorkspace(t *testing.T) {
	ws := workspace.New()
	out := runScript(t, ws,
		menuOptions[optShow],
		menuOptions[optEquivalent],
		menuOptions[optOperation],
		menuOptions[optExit],
	)
	assert.Contains(t, out, "no automata loaded")
	assert.Contains(t, out, "at least two automata are needed")
}

func TestShell_ImportFailure(t *testing.T) {
	ws := workspace.New()
	out := runScript(t, ws,
		menuOptions[optImport], "x", filepath.Join(t.TempDir(), "missing.jff"),
		menuOptions[optExit],
	)
	assert.Contains(t, out, "✘ import")
	assert.Equal(t, 0, ws.Len())
}

func TestShell_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sh := New(workspace.New(), &scriptedDriver{}, &bytes.Buffer{}, WithProfile(termenv.Ascii))
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}
