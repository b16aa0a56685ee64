package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/dfa/internal/workspace"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <file.jff>",
	Short: "Minimize an automaton with Hopcroft's algorithm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args[0])
		if err != nil {
			return err
		}
		result, minimal, err := ws.Minimize(names[0])
		if err != nil {
			return err
		}
		if minimal {
			fmt.Fprintln(cmd.OutOrStdout(), "already minimal")
			return nil
		}
		return save(cmd, ws, result)
	},
}

var complementCmd = &cobra.Command{
	Use:   "complement <file.jff>",
	Short: "Write the complement of an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args[0])
		if err != nil {
			return err
		}
		result, err := ws.Complement(names[0])
		if err != nil {
			return err
		}
		return save(cmd, ws, result)
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <file.jff>",
	Short: "Make the transition function total by adding a sink state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args[0])
		if err != nil {
			return err
		}
		result, err := ws.Complete(names[0])
		if err != nil {
			return err
		}
		return save(cmd, ws, result)
	},
}

func binaryCommand(use, short string, op func(ws *workspace.Workspace, a, b string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a.jff> <b.jff>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := newWorkspace()
			names, err := load(ws, args...)
			if err != nil {
				return err
			}
			result, err := op(ws, names[0], names[1])
			if err != nil {
				return err
			}
			return save(cmd, ws, result)
		},
	}
}

var (
	unionCmd        = binaryCommand("union", "Write the union of two automata", (*workspace.Workspace).Union)
	intersectionCmd = binaryCommand("intersect", "Write the intersection of two automata", (*workspace.Workspace).Intersection)
	differenceCmd   = binaryCommand("diff", "Write the difference of two automata", (*workspace.Workspace).Difference)
)

func init() {
	for _, c := range []*cobra.Command{minimizeCmd, completeCmd, complementCmd, unionCmd, intersectionCmd, differenceCmd} {
		addOutputFlag(c)
		rootCmd.AddCommand(c)
	}
}
