package molerr_test

import (
	"errors"
	"testing"

	"github.com/meenmo/molib/molerr"
	"github.com/stretchr/testify/assert"
)

func TestWrapAndIs(t *testing.T) {
	base := errors.New("derivative too small")
	err := molerr.Wrap(molerr.SolverNonConvergence, "solve.Newton", base)

	assert.True(t, molerr.Is(err, molerr.SolverNonConvergence))
	assert.False(t, molerr.Is(err, molerr.CurveError))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, molerr.SolverNonConvergence, molerr.KindOf(err))
}

func TestWithContext(t *testing.T) {
	err := molerr.New(molerr.SolverNonConvergence, "solve.Newton", "did not converge").
		WithContext("iterations", 100).
		WithContext("residual", 1e-3)

	assert.Equal(t, 100, err.Context["iterations"])
	assert.Equal(t, 1e-3, err.Context["residual"])
}

func TestKindOfNonMolerr(t *testing.T) {
	assert.Equal(t, molerr.Kind(""), molerr.KindOf(errors.New("plain")))
}
