package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/geange/dfa/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long:  `Starts a menu session that keeps named automata in memory and applies operations to them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("shell needs an interactive terminal")
		}
		ws := newWorkspace()
		return shell.New(ws, shell.NewSurveyDriver(), cmd.OutOrStdout()).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
