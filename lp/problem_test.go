package lp_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/lp"
)

// twoVar builds: min x + 2y s.t. x + y = 4 (row "sum"), x <= 3 (row "cap").
func twoVar(t *testing.T) (*lp.Problem, lp.VarID, lp.VarID) {
	t.Helper()
	p := lp.NewProblem("two")
	x, err := p.AddVar("x")
	require.NoError(t, err)
	y, err := p.AddVar("y")
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(x, 1))
	require.NoError(t, p.SetObjective(y, 2))
	require.NoError(t, p.AddConstraint(lp.Constraint{
		Name: "sum", Terms: []lp.Term{{Var: x, Coef: 1}, {Var: y, Coef: 1}}, Sense: lp.EQ, RHS: 4,
	}))
	require.NoError(t, p.AddConstraint(lp.Constraint{
		Name: "cap", Terms: []lp.Term{{Var: x, Coef: 1}}, Sense: lp.LE, RHS: 3,
	}))

	return p, x, y
}

func TestProblem_Build(t *testing.T) {
	p, x, y := twoVar(t)

	assert.Equal(t, "two", p.Name())
	assert.Equal(t, 2, p.NumVars())
	assert.Equal(t, 2, p.NumConstraints())
	assert.Equal(t, []string{"x", "y"}, p.VarNames())
	assert.Equal(t, "y", p.VarName(y))
	assert.Equal(t, "", p.VarName(7))
	got, ok := p.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, x, got)
	assert.Equal(t, []float64{1, 2}, p.Objective())

	c, ok := p.Constraint("cap")
	require.True(t, ok)
	assert.Equal(t, lp.LE, c.Sense)
	c.Terms[0].Coef = 99
	again, _ := p.Constraint("cap")
	assert.Equal(t, 1.0, again.Terms[0].Coef, "rows are returned by copy")

	assert.Equal(t, lp.Stats{Rows: 2, Cols: 2, NonZeros: 3, Equalities: 1, Inequalities: 1}, p.Stats())
	assert.Equal(t, 7.0, p.Evaluate([]float64{3, 2}))
}

func TestProblem_Errors(t *testing.T) {
	p, x, _ := twoVar(t)

	_, err := p.AddVar("x")
	assert.ErrorIs(t, err, lp.ErrDuplicateName)
	_, err = p.AddVar("")
	assert.ErrorIs(t, err, lp.ErrEmptyName)

	assert.ErrorIs(t, p.SetObjective(42, 1), lp.ErrUnknownVar)
	assert.ErrorIs(t, p.SetObjective(x, math.NaN()), lp.ErrBadCoefficient)

	cases := []struct {
		name string
		c    lp.Constraint
		want error
	}{
		{"empty name", lp.Constraint{}, lp.ErrEmptyName},
		{"duplicate", lp.Constraint{Name: "sum"}, lp.ErrDuplicateName},
		{"bad rhs", lp.Constraint{Name: "r", RHS: math.Inf(1)}, lp.ErrBadCoefficient},
		{"unknown var", lp.Constraint{Name: "r", Terms: []lp.Term{{Var: 9, Coef: 1}}}, lp.ErrUnknownVar},
		{"bad coef", lp.Constraint{Name: "r", Terms: []lp.Term{{Var: x, Coef: math.NaN()}}}, lp.ErrBadCoefficient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, p.AddConstraint(tc.c), tc.want)
		})
	}
}

func TestProblem_Check(t *testing.T) {
	p, _, _ := twoVar(t)

	require.NoError(t, p.Check([]float64{3, 1}, 1e-9))

	var v lp.ViolationError
	err := p.Check([]float64{4, 0}, 1e-9)
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "cap", v.Name)
	assert.InDelta(t, 1.0, v.Residual, 1e-12)

	err = p.Check([]float64{1, 1}, 1e-9)
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "sum", v.Name)

	err = p.Check([]float64{5, -1}, 1e-9)
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "y", v.Name)

	assert.ErrorIs(t, p.Check([]float64{1}, 1e-9), lp.ErrUnknownVar)
}

func TestSolution_Accessors(t *testing.T) {
	s := lp.Optimal(7, []float64{3, 2})
	obj, err := s.Objective()
	require.NoError(t, err)
	assert.Equal(t, 7.0, obj)
	v, err := s.Value(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	_, err = s.Value(2)
	assert.ErrorIs(t, err, lp.ErrUnknownVar)

	for _, bad := range []*lp.Solution{lp.Infeasible(), lp.Unbounded(), nil} {
		assert.False(t, bad.IsOptimal())
		_, err = bad.Objective()
		assert.ErrorIs(t, err, lp.ErrNotOptimal)
		_, err = bad.Value(0)
		assert.ErrorIs(t, err, lp.ErrNotOptimal)
		_, err = bad.Values()
		assert.ErrorIs(t, err, lp.ErrNotOptimal)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "optimal", lp.StatusOptimal.String())
	assert.Equal(t, "infeasible", lp.StatusInfeasible.String())
	assert.Equal(t, "unbounded", lp.StatusUnbounded.String())
	assert.Equal(t, "error", lp.StatusError.String())
}

func TestSolverFunc(t *testing.T) {
	var s lp.Solver = lp.SolverFunc(func(context.Context, *lp.Problem) (*lp.Solution, error) {
		return lp.Infeasible(), nil
	})
	sol, err := s.Solve(context.Background(), lp.NewProblem("p"))
	require.NoError(t, err)
	assert.Equal(t, lp.StatusInfeasible, sol.Status)
}

func TestWriteLP(t *testing.T) {
	p, _, _ := twoVar(t)
	var buf bytes.Buffer
	require.NoError(t, lp.WriteLP(&buf, p))

	want := "\\ Problem: two\n" +
		"Minimize\n" +
		" obj: 1 x + 2 y\n" +
		"Subject To\n" +
		" sum: 1 x + 1 y = 4\n" +
		" cap: 1 x <= 3\n" +
		"End\n"
	assert.Equal(t, want, buf.String())
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "flow_O1_1_2", lp.SanitizeName("flow_O1_1_2"))
	assert.Equal(t, "~31abc", lp.SanitizeName("1abc"))
	assert.Equal(t, "_1abc", lp.SanitizeName("_1abc"))
	assert.Equal(t, "a~20b", lp.SanitizeName("a b"))
	assert.Equal(t, "a~7Eb", lp.SanitizeName("a~b"))
	assert.Equal(t, "~", lp.SanitizeName(""))
}

func TestSanitizeName_Injective(t *testing.T) {
	names := []string{
		"a b", "a_b", "a~20b", "a-b", "1abc", "_1abc", "~31abc",
		".x", "_.x", "x\u00e9", "x__", "", "~", "x~", "x~7E",
	}
	seen := make(map[string]string, len(names))
	for _, n := range names {
		got := lp.SanitizeName(n)
		prev, dup := seen[got]
		require.Falsef(t, dup, "%q and %q both map to %q", prev, n, got)
		seen[got] = n
	}
}
