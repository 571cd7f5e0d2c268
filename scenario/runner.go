// SPDX-License-Identifier: MIT
// File: runner.go
// Role: build → solve → verify → extract for both scenarios, then compare.
// Concurrency:
//   - Sequential by default; WithParallel solves both scenarios under an
//     errgroup. Each scenario owns its model; results land in fixed slots.
// AI-HINT (file):
//   - (nil, err) for configuration, solver and extraction failures only.
//   - Infeasible/Unbounded never produce an error.

package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/lp"
	"github.com/katalvlaran/mcflow/lp/simplex"
	"github.com/katalvlaran/mcflow/metrics"
)

// Runner executes scenario comparisons. It holds no per-run state and is
// safe for concurrent use when its solver is.
type Runner struct {
	solver   lp.Solver
	tol      float64
	log      *logrus.Logger
	parallel bool
	metrics  *metrics.Metrics
	newID    func() string
}

// NewRunner returns a Runner using the simplex solver, DefaultTolerance, a
// discarding logger and sequential execution unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		solver: simplex.New(),
		tol:    DefaultTolerance,
		log:    discardLogger(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// job is one scenario in flight.
type job struct {
	kind  Kind
	model *flow.Model
	res   *Result
}

// Run builds and solves both scenarios and compares them.
//
// Errors:
//   - flow.ErrConfig / commodity.ErrConfig: bad input, nothing was solved.
//   - ErrSolverFailure: a solver error, error status or failed verification.
//   - ErrExtraction: a verified optimum could not be read back.
func (r *Runner) Run(ctx context.Context, in Input) (*Comparison, error) {
	cmp := &Comparison{RunID: r.newID()}
	log := r.log.WithField("run_id", cmp.RunID)

	jobs, err := r.build(in, log)
	if err != nil {
		r.metrics.ObserveError("config")
		log.WithError(err).Error("invalid configuration")

		return nil, err
	}
	cmp.Warnings = in.Commodities.Lint(in.Network, in.Demand, in.Distances)
	for _, w := range cmp.Warnings {
		log.WithFields(logrus.Fields{"commodity": w.Commodity, "kind": w.Kind}).Warn(w.Message)
	}

	if r.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for _, j := range jobs {
			j := j
			g.Go(func() error { return r.solve(gctx, j, log) })
		}
		err = g.Wait()
	} else {
		for _, j := range jobs {
			if err = r.solve(ctx, j, log); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	cmp.Baseline, cmp.Augmented = jobs[0].res, jobs[1].res
	r.compare(cmp)
	if cmp.Computable {
		log.WithFields(logrus.Fields{"reduction": cmp.Reduction, "percent": cmp.Percent}).Info("comparison complete")
	} else {
		log.WithField("failed", cmp.Failed).Warn("reduction not computable")
	}

	return cmp, nil
}

// RunScenario builds and solves a single scenario.
func (r *Runner) RunScenario(ctx context.Context, kind Kind, in Input) (*Result, error) {
	log := r.log.WithField("run_id", r.newID())
	j, err := r.buildOne(kind, in, log)
	if err != nil {
		r.metrics.ObserveError("config")

		return nil, err
	}
	if err = r.solve(ctx, j, log); err != nil {
		return nil, err
	}

	return j.res, nil
}

// Model builds the LP of one scenario without solving it.
func Model(kind Kind, in Input) (*flow.Model, error) {
	switch kind {
	case Baseline:
		return flow.Build(in.Input, flow.WithName(string(kind)))
	case Augmented:
		return flow.Build(in.Input, flow.WithName(string(kind)), flow.WithShortcut(in.Shortcut))
	default:
		return nil, fmt.Errorf("%w: unknown scenario %q", flow.ErrConfig, kind)
	}
}

func (r *Runner) build(in Input, log *logrus.Entry) ([]*job, error) {
	jobs := make([]*job, 0, 2)
	for _, kind := range []Kind{Baseline, Augmented} {
		j, err := r.buildOne(kind, in, log)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

func (r *Runner) buildOne(kind Kind, in Input, log *logrus.Entry) (*job, error) {
	m, err := Model(kind, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	st := m.Problem.Stats()
	r.metrics.ObserveModel(string(kind), st.Rows, st.Cols, st.NonZeros)
	log.WithFields(logrus.Fields{
		"scenario": kind, "rows": st.Rows, "cols": st.Cols, "nonzeros": st.NonZeros,
	}).Debug("model built")

	return &job{
		kind:  kind,
		model: m,
		res:   &Result{Scenario: kind, Stats: st, FreeEdges: m.FreeEdges()},
	}, nil
}

// solve fills j.res. Only solver and extraction failures are returned.
func (r *Runner) solve(ctx context.Context, j *job, log *logrus.Entry) error {
	log = log.WithField("scenario", j.kind)
	start := time.Now()
	sol, err := r.solver.Solve(ctx, j.model.Problem)
	j.res.Duration = time.Since(start)
	switch {
	case err != nil:
	case sol == nil:
		err = errors.New("solver returned no solution")
	case sol.Status == lp.StatusError:
		err = errors.New("solver reported an error status")
	}
	if err != nil {
		return r.fail(j.kind, "solver", ErrSolverFailure, err, log)
	}
	j.res.Status = sol.Status
	r.metrics.ObserveSolve(string(j.kind), sol.Status.String(), j.res.Duration)

	if !sol.IsOptimal() {
		log.WithField("status", sol.Status).Warn("no optimal solution")

		return nil
	}
	if err = j.model.Verify(sol, r.tol); err != nil {
		return r.fail(j.kind, "verify", ErrSolverFailure, err, log)
	}

	return r.extract(j, sol, log)
}

func (r *Runner) extract(j *job, sol *lp.Solution, log *logrus.Entry) error {
	var err error
	res := j.res
	if res.Objective, err = sol.Objective(); err != nil {
		return r.fail(j.kind, "extract", ErrExtraction, err, log)
	}
	if res.Flows, err = j.model.Flows(sol, r.tol); err != nil {
		return r.fail(j.kind, "extract", ErrExtraction, err, log)
	}
	res.Edges = j.model.EdgeFlows(res.Flows)
	if j.kind == Augmented {
		u, err := j.model.ShortcutUsage(sol, r.tol)
		if err != nil {
			return r.fail(j.kind, "extract", ErrExtraction, err, log)
		}
		res.Shortcut = &u
	}
	if res.Routes, err = j.model.Routes(); err != nil {
		return r.fail(j.kind, "extract", ErrExtraction, err, log)
	}
	res.LowerBound = flow.Bound(res.Routes)
	for _, rt := range res.Routes {
		log.WithFields(logrus.Fields{
			"commodity":   rt.Commodity,
			"destination": rt.Destination,
			"distance":    rt.Distance,
			"path":        strings.Join(rt.Path, "->"),
		}).Debug("shortest route")
	}
	r.metrics.ObserveObjective(string(j.kind), res.Objective)
	log.WithFields(logrus.Fields{
		"status":      res.Status,
		"objective":   res.Objective,
		"lower_bound": res.LowerBound,
		"duration":    res.Duration,
	}).Info("scenario solved")

	return nil
}

// fail counts err under metric and wraps it with sentinel and the scenario.
func (r *Runner) fail(kind Kind, metric string, sentinel, err error, log *logrus.Entry) error {
	r.metrics.ObserveError(metric)
	log.WithError(err).Error("scenario failed")

	return fmt.Errorf("%w: %s: %w", sentinel, kind, err)
}

// compare fills the reduction fields of cmp.
func (r *Runner) compare(cmp *Comparison) {
	for _, res := range []*Result{cmp.Baseline, cmp.Augmented} {
		if !res.Optimal() {
			cmp.Failed = append(cmp.Failed, res.Scenario)
		}
	}
	if len(cmp.Failed) > 0 {
		return
	}
	cmp.Computable = true
	cmp.Reduction = cmp.Baseline.Objective - cmp.Augmented.Objective
	if cmp.Baseline.Objective != 0 {
		cmp.Percent = cmp.Reduction / cmp.Baseline.Objective * 100
	}
	r.metrics.ObserveReduction(cmp.Percent)
}
