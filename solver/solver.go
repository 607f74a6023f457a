package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/ucs"
)

// Job is one named puzzle input.
type Job struct {
	Name  string
	Input string
}

// Result is the outcome of one solved puzzle.
type Result struct {
	Name     string
	Cost     int64
	Depth    int
	Entities int
	Reached  int // distinct configurations in the best-cost map
	Stats    ucs.Stats
	Elapsed  time.Duration
}

// Prepare applies the unfold step of cfg to input and parses the result.
func Prepare(input string, cfg Config) (*burrow.Burrow, error) {
	if cfg.Unfold {
		rows := burrow.FoldedRows
		if len(cfg.UnfoldRows) > 0 {
			rows = cfg.UnfoldRows
		}
		unfolded, err := burrow.UnfoldWith(input, rows...)
		if err != nil {
			return nil, err
		}
		input = unfolded
	}
	return burrow.Parse(input)
}

// Solve parses one diagram and returns its minimum total cost.
// Errors wrap burrow.ErrParse or ucs.ErrUnsolvable with the job name.
func Solve(job Job, cfg Config, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log := logger.With(slog.String("puzzle", job.Name))

	b, err := Prepare(job.Input, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("solver: %s: %w", job.Name, err)
	}
	log.Debug("parsed burrow", slog.Int("depth", b.Depth()), slog.Int("entities", b.Entities()))

	opts := []ucs.Option{ucs.WithLogger(log), ucs.WithLogEvery(cfg.LogEvery)}
	if cfg.MaxCost > 0 {
		opts = append(opts, ucs.WithMaxCost(cfg.MaxCost))
	}
	engine, err := b.NewEngine(opts...)
	if err != nil {
		return Result{}, fmt.Errorf("solver: %s: %w", job.Name, err)
	}

	start := time.Now()
	cost, err := engine.Run(b.Start())
	res := Result{
		Name:     job.Name,
		Cost:     cost,
		Depth:    b.Depth(),
		Entities: b.Entities(),
		Reached:  engine.Reached(),
		Stats:    engine.Stats(),
		Elapsed:  time.Since(start),
	}
	if err != nil {
		log.Error("search failed", slog.String("phase", engine.Phase().String()), slog.Any("err", err))
		return res, fmt.Errorf("solver: %s: %w", job.Name, err)
	}
	log.Info("solved",
		slog.Int64("cost", cost),
		slog.Int("states", res.Reached),
		slog.Int("expanded", res.Stats.Expanded),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// SolveAll solves every job, at most cfg.Workers at a time, and returns the
// results in job order. The first failure cancels jobs not yet started and is
// returned after running jobs finish.
func SolveAll(ctx context.Context, jobs []Job, cfg Config, logger *slog.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Solve(job, cfg, logger)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
