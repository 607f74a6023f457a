package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/amphipod/solver"
)

// solveFlags holds the command-line overrides of solver.Config.
type solveFlags struct {
	configPath string
	unfold     bool
	verbose    bool
	render     bool
	workers    int
	logEvery   int
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "amphipod",
		Short:         "Find the cheapest way to sort amphipods into their rooms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Print the minimum total energy for each diagram file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.BoolVarP(&f.unfold, "unfold", "u", false, "insert the folded rows before solving")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
	fl.BoolVar(&f.render, "render", false, "print each parsed diagram before its cost")
	fl.IntVarP(&f.workers, "workers", "w", 0, "puzzles solved in parallel (0 keeps the config value)")
	fl.IntVar(&f.logEvery, "log-every", 0, "progress record every N expansions (0 keeps the config value)")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	cfg := solver.DefaultConfig()
	if f.configPath != "" {
		loaded, err := solver.LoadConfig(f.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if f.unfold {
		cfg.Unfold = true
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.logEvery > 0 {
		cfg.LogEvery = f.logEvery
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	jobs := make([]solver.Job, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		jobs = append(jobs, solver.Job{Name: filepath.Base(path), Input: string(data)})
	}

	out := cmd.OutOrStdout()
	if f.render {
		for _, job := range jobs {
			b, err := solver.Prepare(job.Input, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			fmt.Fprintf(out, "%s:\n%s", job.Name, b.Render(b.Start()))
		}
	}

	results, err := solver.SolveAll(cmd.Context(), jobs, cfg, logger)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s: %d\n", r.Name, r.Cost)
	}
	return nil
}
