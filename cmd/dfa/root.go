package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geange/dfa/internal/config"
	"github.com/geange/dfa/internal/logging"
	"github.com/geange/dfa/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "dfa",
	Short: "Build, minimize, compare and combine deterministic finite automata",
	Long: `dfa works on deterministic finite automata stored as JFLAP (.jff) files.
It minimizes them, checks language equivalence, lists equivalent states and
combines them with union, intersection, difference and complement.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Settings resolved once per invocation.
var (
	cfg    config.Config
	logger *slog.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path of the YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the configuration")
	rootCmd.PersistentFlags().Bool("strict", false, "Validate imported files against the JFLAP schema")
}

func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		loaded.LogLevel = lvl
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		loaded.StrictImport = true
	}

	level, ok := logging.ParseLevel(loaded.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", loaded.LogLevel)
	}
	cfg = loaded
	logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

func newWorkspace() *workspace.Workspace {
	return workspace.New(
		workspace.WithLogger(logger),
		workspace.WithStrictImport(cfg.StrictImport),
	)
}

// load imports every path into ws under the file name without extension and returns the names in
// argument order. Repeated names get a numeric suffix.
func load(ws *workspace.Workspace, paths ...string) ([]string, error) {
	names := make([]string, 0, len(paths))
	used := make(map[string]int)
	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		if err := ws.Import(name, p); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// outputPath returns the path a derived automaton is written to: the --output flag when set, otherwise
// <name>.jff. Relative paths are resolved against the configured output directory.
func outputPath(cmd *cobra.Command, name string) string {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = name + ".jff"
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(cfg.OutputDir, out)
}

// save exports name from ws and reports where it went.
func save(cmd *cobra.Command, ws *workspace.Workspace, name string) error {
	path := outputPath(cmd, name)
	if err := ws.Export(name, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file (default <derived name>.jff in the output directory)")
}
