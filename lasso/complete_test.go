package lasso_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lasso/lasso"
)

func TestComplete(t *testing.T) {
	// d(A,D) follows from the four-point condition; E only touches A.
	m := mustMatrix(t, []string{"A", "B", "C", "D", "E"}, [][]float64{
		{0, 3, 8, 0, 1},
		{3, 0, 9, 10, 0},
		{8, 9, 0, 9, 0},
		{0, 10, 9, 0, 0},
		{1, 0, 0, 0, 0},
	})

	res, err := lasso.Complete(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FourPoint)
	assert.Zero(t, res.Closure)
	assert.Equal(t, 3, res.Missing)

	res, err = lasso.Complete(context.Background(), m, lasso.WithClosure(true))
	require.NoError(t, err)
	assert.Equal(t, 1, res.FourPoint)
	assert.Equal(t, 3, res.Closure)
	assert.Zero(t, res.Missing)
	d, err := res.Matrix.Distance("E", "D")
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)

	assert.Len(t, m.Missing(), 4, "caller's matrix untouched")

	_, err = lasso.Complete(context.Background(), nil)
	require.ErrorIs(t, err, lasso.ErrNilMatrix)
}
