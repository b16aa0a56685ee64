package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file.jff>",
	Short: "Print an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args[0])
		if err != nil {
			return err
		}
		out, err := ws.Show(names[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file.jff> <word>",
	Short: "Run a word through an automaton",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args[0])
		if err != nil {
			return err
		}
		res, err := ws.Run(names[0], args[1])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		switch {
		case res.Stuck:
			fmt.Fprintf(w, "rejected (stuck in %q)\n", res.State)
		case res.Accepted:
			fmt.Fprintf(w, "accepted (%s)\n", res.State)
		default:
			fmt.Fprintf(w, "rejected (%s)\n", res.State)
		}
		return nil
	},
}

var equivCmd = &cobra.Command{
	Use:   "equiv <a.jff> <b.jff>",
	Short: "Check whether two automata accept the same language",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args...)
		if err != nil {
			return err
		}
		eq, err := ws.Equivalent(names[0], names[1])
		if err != nil {
			return err
		}
		if eq {
			fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
		}
		return nil
	},
}

var pairsCmd = &cobra.Command{
	Use:   "pairs <file.jff>",
	Short: "List the pairs of equivalent states of an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace()
		names, err := load(ws, args[0])
		if err != nil {
			return err
		}
		pairs, err := ws.EquivalentStates(names[0])
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no equivalent states")
			return nil
		}
		for _, p := range pairs {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd, runCmd, equivCmd, pairsCmd)
}
