package scenario_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/config"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/lp"
	"github.com/katalvlaran/mcflow/lp/simplex"
	"github.com/katalvlaran/mcflow/metrics"
	"github.com/katalvlaran/mcflow/scenario"
)

func referenceInput(t *testing.T) scenario.Input {
	t.Helper()
	in, err := config.Default().Input()
	require.NoError(t, err)

	return in
}

// gap is 1⇄2 plus an isolated node 3 that only the 2⇄3 shortcut reaches.
func gap(t *testing.T) scenario.Input {
	t.Helper()
	net := core.NewNetwork(core.WithNodes("1", "2", "3"))
	dist := core.NewDistances()
	require.NoError(t, net.AddEdge("1", "2"))
	require.NoError(t, net.AddEdge("2", "1"))
	require.NoError(t, dist.Set("1", "2", 1))
	require.NoError(t, dist.Set("2", "1", 1))
	demand := commodity.NewDemand()
	require.NoError(t, demand.Set("1", "3", 5))
	set, err := commodity.FromOrigins(net.Nodes(), []string{"1"}, commodity.DefaultLabel)
	require.NoError(t, err)

	return scenario.Input{
		Input:    flow.Input{Network: net, Distances: dist, Demand: demand, Commodities: set},
		Shortcut: flow.Shortcut{From: "2", To: "3", Capacity: 10},
	}
}

func TestRun_Reference(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		r := scenario.NewRunner(
			scenario.WithParallel(parallel),
			scenario.WithRunID(func() string { return "run-1" }),
		)
		cmp, err := r.Run(context.Background(), referenceInput(t))
		require.NoError(t, err)

		assert.Equal(t, "run-1", cmp.RunID)
		assert.True(t, cmp.Computable)
		assert.Empty(t, cmp.Failed)
		assert.Empty(t, cmp.Warnings)
		assert.InDelta(t, 399250.0, cmp.Baseline.Objective, 1e-6)
		assert.InDelta(t, 280770.0, cmp.Augmented.Objective, 1e-6)
		assert.InDelta(t, 118480.0, cmp.Reduction, 1e-6)
		assert.InDelta(t, 29.68, cmp.Percent, 0.005)
		assert.InDelta(t, 399250.0, cmp.Baseline.LowerBound, 1e-6)

		assert.Nil(t, cmp.Baseline.Shortcut)
		require.NotNil(t, cmp.Augmented.Shortcut)
		assert.InDelta(t, 2000.0, cmp.Augmented.Shortcut.Forward.Total, 1e-6)
		assert.Equal(t, 21, cmp.Baseline.Stats.Rows)
		assert.Equal(t, 42, cmp.Augmented.Stats.Cols)

		for _, res := range []*scenario.Result{cmp.Baseline, cmp.Augmented} {
			require.NotEmpty(t, res.Edges)
			first := res.Edges[0]
			assert.Equal(t, core.Edge{From: "1", To: "2"}, first.Edge)
			assert.InDelta(t, 2850.0, first.Total, 1e-6)
			require.Len(t, first.ByCommodity, 1)
			assert.Equal(t, "O1", first.ByCommodity[0].Commodity)
			for _, f := range res.Flows {
				assert.Greater(t, f.Value, scenario.DefaultTolerance)
			}
		}
	}
}

func TestRun_DefaultRunID(t *testing.T) {
	a, err := scenario.NewRunner().Run(context.Background(), referenceInput(t))
	require.NoError(t, err)
	b, err := scenario.NewRunner().Run(context.Background(), referenceInput(t))
	require.NoError(t, err)
	assert.Len(t, a.RunID, 36)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	in := referenceInput(t)
	_, err := scenario.NewRunner(scenario.WithParallel(true)).Run(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, in.Network.HasEdge("2", "6"))
	assert.Equal(t, 12, in.Network.EdgeCount())
	assert.Equal(t, 12, in.Distances.Len())
}

func TestRun_InfeasibleBaseline(t *testing.T) {
	cmp, err := scenario.NewRunner().Run(context.Background(), gap(t))
	require.NoError(t, err)

	assert.False(t, cmp.Computable)
	assert.Equal(t, []scenario.Kind{scenario.Baseline}, cmp.Failed)
	assert.Equal(t, lp.StatusInfeasible, cmp.Baseline.Status)
	assert.Empty(t, cmp.Baseline.Flows)
	assert.Zero(t, cmp.Reduction)

	require.True(t, cmp.Augmented.Optimal())
	assert.InDelta(t, 5.0, cmp.Augmented.Objective, 1e-9)
	assert.InDelta(t, 5.0, cmp.Augmented.Shortcut.Forward.Total, 1e-9)
	assert.Zero(t, cmp.Augmented.Shortcut.Backward.Total)

	require.NotEmpty(t, cmp.Warnings)
	assert.Equal(t, commodity.WarnUnreachable, cmp.Warnings[0].Kind)
}

// byName routes solves by problem name and counts calls.
func byName(calls *atomic.Int32, routes map[string]lp.SolverFunc) lp.Solver {
	fallback := simplex.New()

	return lp.SolverFunc(func(ctx context.Context, p *lp.Problem) (*lp.Solution, error) {
		calls.Add(1)
		if f, ok := routes[p.Name()]; ok {
			return f(ctx, p)
		}

		return fallback.Solve(ctx, p)
	})
}

func TestRun_UnboundedAugmented(t *testing.T) {
	var calls atomic.Int32
	solver := byName(&calls, map[string]lp.SolverFunc{
		"augmented": func(context.Context, *lp.Problem) (*lp.Solution, error) { return lp.Unbounded(), nil },
	})
	cmp, err := scenario.NewRunner(scenario.WithSolver(solver)).Run(context.Background(), referenceInput(t))
	require.NoError(t, err)

	assert.EqualValues(t, 2, calls.Load())
	assert.False(t, cmp.Computable)
	assert.Equal(t, []scenario.Kind{scenario.Augmented}, cmp.Failed)
	assert.True(t, cmp.Baseline.Optimal())
	assert.InDelta(t, 399250.0, cmp.Baseline.Objective, 1e-6)
	assert.Equal(t, lp.StatusUnbounded, cmp.Augmented.Status)
	assert.Nil(t, cmp.Augmented.Shortcut)
}

func TestRun_SolverFailures(t *testing.T) {
	boom := errors.New("license expired")
	cases := []struct {
		name  string
		solve lp.SolverFunc
		also  error
	}{
		{"error", func(context.Context, *lp.Problem) (*lp.Solution, error) { return nil, boom }, boom},
		{"nil solution", func(context.Context, *lp.Problem) (*lp.Solution, error) { return nil, nil }, nil},
		{"error status", func(context.Context, *lp.Problem) (*lp.Solution, error) { return &lp.Solution{}, nil }, nil},
		{"bogus optimum", func(_ context.Context, p *lp.Problem) (*lp.Solution, error) {
			return lp.Optimal(0, make([]float64, p.NumVars())), nil
		}, flow.ErrVerification},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			m := metrics.New(reg)
			var calls atomic.Int32
			r := scenario.NewRunner(
				scenario.WithSolver(byName(&calls, map[string]lp.SolverFunc{"baseline": tc.solve})),
				scenario.WithMetrics(m),
			)
			cmp, err := r.Run(context.Background(), referenceInput(t))
			assert.Nil(t, cmp)
			require.ErrorIs(t, err, scenario.ErrSolverFailure)
			assert.Contains(t, err.Error(), "baseline")
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}
			assert.EqualValues(t, 1, calls.Load(), "sequential run stops at the first failure")
			errs := testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("solver")) +
				testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("verify"))
			assert.Equal(t, 1.0, errs)
		})
	}
}

func TestRun_ParallelFailure(t *testing.T) {
	var calls atomic.Int32
	solver := byName(&calls, map[string]lp.SolverFunc{
		"augmented": func(context.Context, *lp.Problem) (*lp.Solution, error) {
			return nil, lp.ErrSolver
		},
	})
	_, err := scenario.NewRunner(scenario.WithSolver(solver), scenario.WithParallel(true)).
		Run(context.Background(), referenceInput(t))
	require.ErrorIs(t, err, scenario.ErrSolverFailure)
	assert.ErrorIs(t, err, lp.ErrSolver)
}

func TestRun_ConfigErrorBeforeSolve(t *testing.T) {
	var calls atomic.Int32
	in := referenceInput(t)
	in.Shortcut.Capacity = 0

	r := scenario.NewRunner(scenario.WithSolver(byName(&calls, nil)))
	cmp, err := r.Run(context.Background(), in)
	assert.Nil(t, cmp)
	require.ErrorIs(t, err, flow.ErrBadCapacity)
	assert.NotErrorIs(t, err, scenario.ErrSolverFailure)
	assert.Zero(t, calls.Load())

	_, err = r.Run(context.Background(), scenario.Input{})
	assert.ErrorIs(t, err, flow.ErrNilInput)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := scenario.NewRunner().Run(ctx, referenceInput(t))
	require.ErrorIs(t, err, scenario.ErrSolverFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	_, err := scenario.NewRunner(scenario.WithMetrics(m)).Run(context.Background(), referenceInput(t))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("baseline", "optimal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("augmented", "optimal")))
	assert.Equal(t, 23.0, testutil.ToFloat64(m.ModelSize.WithLabelValues("augmented", "rows")))
	assert.InDelta(t, 29.68, testutil.ToFloat64(m.Reduction), 0.005)
}

func TestRun_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := scenario.NewRunner(scenario.WithLogger(logger), scenario.WithRunID(func() string { return "abc" }))
	_, err := r.Run(context.Background(), referenceInput(t))
	require.NoError(t, err)

	var solved, routes int
	for _, e := range hook.AllEntries() {
		assert.Equal(t, "abc", e.Data["run_id"])
		switch e.Message {
		case "scenario solved":
			solved++
			assert.Contains(t, e.Data, "objective")
			assert.Contains(t, e.Data, "scenario")
		case "shortest route":
			routes++
			if e.Data["commodity"] == "O1" && e.Data["destination"] == "3" {
				assert.Equal(t, "1->2->3", e.Data["path"])
			}
		}
	}
	assert.Equal(t, 2, solved)
	assert.Equal(t, 36, routes, "18 positive demands per scenario")
	assert.Equal(t, "comparison complete", hook.LastEntry().Message)
}

func TestRunScenario(t *testing.T) {
	res, err := scenario.NewRunner().RunScenario(context.Background(), scenario.Augmented, referenceInput(t))
	require.NoError(t, err)
	assert.InDelta(t, 280770.0, res.Objective, 1e-6)

	_, err = scenario.NewRunner().RunScenario(context.Background(), scenario.Kind("other"), referenceInput(t))
	assert.ErrorIs(t, err, flow.ErrConfig)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { scenario.WithSolver(nil) })
	assert.Panics(t, func() { scenario.WithLogger(nil) })
	assert.Panics(t, func() { scenario.WithTolerance(0) })
	assert.Panics(t, func() { scenario.WithRunID(nil) })
	assert.NotPanics(t, func() { scenario.WithTolerance(1e-9) })
}
