package solver_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/solver"
	"github.com/katalvlaran/amphipod/ucs"
)

const canonical = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const solved = `#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########
`

// SolverSuite covers Solve, SolveAll and configuration handling.
type SolverSuite struct {
	suite.Suite
	cfg solver.Config
}

func (s *SolverSuite) SetupTest() {
	s.cfg = solver.DefaultConfig()
}

// TestSolve returns the reference cost and fills the result.
func (s *SolverSuite) TestSolve() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	res, err := solver.Solve(solver.Job{Name: "example", Input: canonical}, s.cfg, logger)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(12521), res.Cost)
	require.Equal(s.T(), "example", res.Name)
	require.Equal(s.T(), 2, res.Depth)
	require.Equal(s.T(), 8, res.Entities)
	require.Greater(s.T(), res.Reached, 1)
	require.Greater(s.T(), res.Stats.Expanded, 0)
	require.Contains(s.T(), buf.String(), "puzzle=example")
	require.Contains(s.T(), buf.String(), "cost=12521")
}

// TestSolveUnfolded applies the unfold step from the config.
func (s *SolverSuite) TestSolveUnfolded() {
	if testing.Short() {
		s.T().Skip("unfolded search is slow in -short mode")
	}
	s.cfg.Unfold = true
	res, err := solver.Solve(solver.Job{Name: "unfolded", Input: canonical}, s.cfg, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(44169), res.Cost)
	require.Equal(s.T(), 4, res.Depth)
}

// TestCustomUnfoldRows uses rows that are already sorted, so they cost nothing extra to reach.
func (s *SolverSuite) TestCustomUnfoldRows() {
	s.cfg.Unfold = true
	s.cfg.UnfoldRows = []string{"  #A#B#C#D#"}
	res, err := solver.Solve(solver.Job{Name: "solved", Input: solved}, s.cfg, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Cost)
	require.Equal(s.T(), 3, res.Depth)
}

// TestParseFailure surfaces burrow.ErrParse with the job name.
func (s *SolverSuite) TestParseFailure() {
	_, err := solver.Solve(solver.Job{Name: "broken", Input: "#.Z.#\n"}, s.cfg, nil)
	require.ErrorIs(s.T(), err, burrow.ErrParse)
	require.Contains(s.T(), err.Error(), "broken")
}

// TestCostCap turns an out-of-reach optimum into ErrUnsolvable.
func (s *SolverSuite) TestCostCap() {
	s.cfg.MaxCost = 100
	res, err := solver.Solve(solver.Job{Name: "capped", Input: canonical}, s.cfg, nil)
	require.ErrorIs(s.T(), err, ucs.ErrUnsolvable)
	require.Greater(s.T(), res.Reached, 0)
}

// TestSolveAll keeps job order and solves each job independently.
func (s *SolverSuite) TestSolveAll() {
	s.cfg.Workers = 2
	jobs := []solver.Job{
		{Name: "a", Input: canonical},
		{Name: "b", Input: solved},
		{Name: "c", Input: canonical},
	}
	results, err := solver.SolveAll(context.Background(), jobs, s.cfg, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 3)
	require.Equal(s.T(), []int64{12521, 0, 12521}, []int64{results[0].Cost, results[1].Cost, results[2].Cost})
	require.Equal(s.T(), "b", results[1].Name)
	require.Equal(s.T(), results[0].Reached, results[2].Reached)
}

// TestSolveAllFailure reports the failing job.
func (s *SolverSuite) TestSolveAllFailure() {
	s.cfg.Workers = 1
	jobs := []solver.Job{
		{Name: "good", Input: solved},
		{Name: "bad", Input: "nonsense"},
	}
	_, err := solver.SolveAll(context.Background(), jobs, s.cfg, nil)
	require.ErrorIs(s.T(), err, burrow.ErrParse)
	require.Contains(s.T(), err.Error(), "bad")
}

// TestInvalidConfigRejected stops before any work.
func (s *SolverSuite) TestInvalidConfigRejected() {
	s.cfg.Workers = 0
	_, err := solver.SolveAll(context.Background(), nil, s.cfg, nil)
	require.ErrorIs(s.T(), err, solver.ErrBadConfig)

	_, err = solver.Solve(solver.Job{Input: solved}, s.cfg, nil)
	require.ErrorIs(s.T(), err, solver.ErrBadConfig)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func TestParseConfig(t *testing.T) {
	cfg, err := solver.ParseConfig([]byte("unfold: true\nmax_cost: 50000\nlog_every: 1000\nworkers: 3\n"))
	require.NoError(t, err)
	require.True(t, cfg.Unfold)
	require.Equal(t, int64(50000), cfg.MaxCost)
	require.Equal(t, 1000, cfg.LogEvery)
	require.Equal(t, 3, cfg.Workers)

	defaults, err := solver.ParseConfig([]byte("unfold_rows: ['  #A#B#C#D#']\n"))
	require.NoError(t, err)
	require.Equal(t, solver.DefaultConfig().Workers, defaults.Workers)
	require.Equal(t, []string{"  #A#B#C#D#"}, defaults.UnfoldRows)

	for _, bad := range []string{"max_cost: -1\n", "log_every: -5\n", "workers: 0\n", "workers: [1, 2]\n"} {
		_, err := solver.ParseConfig([]byte(bad))
		require.ErrorIs(t, err, solver.ErrBadConfig, bad)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amphipod.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unfold: true\n"), 0o600))

	cfg, err := solver.LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.Unfold)

	_, err = solver.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
