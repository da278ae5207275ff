package updater_test

import (
	"testing"

	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/updater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPolicies checks each built-in policy on a table of inputs.
func TestPolicies(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want map[string]float64
	}{
		{"empty", nil, map[string]float64{"modal": 0, "min": 0, "max": 0, "mean": 0}},
		{"single", []float64{4}, map[string]float64{"modal": 4, "min": 4, "max": 4, "mean": 4}},
		{"majority", []float64{5, 2, 5, 3}, map[string]float64{"modal": 5, "min": 2, "max": 5, "mean": 3.75}},
		{"tie smallest", []float64{7, 3, 7, 3, 9}, map[string]float64{"modal": 3, "min": 3, "max": 9, "mean": 5.8}},
		{"all distinct", []float64{6, 4, 8}, map[string]float64{"modal": 4, "min": 4, "max": 8, "mean": 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for policy, want := range tc.want {
				u, err := updater.New(policy)
				require.NoError(t, err)
				assert.InDelta(t, want, u.Compute(core.ID(0), tc.in), 1e-12, policy)
			}
		})
	}
}

// TestModal_DoesNotMutateInput guards the caller's slice.
func TestModal_DoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_ = updater.Modal{}.Compute(core.NoID, in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

// TestRegistry covers lookup, registration and listing.
func TestRegistry(t *testing.T) {
	_, err := updater.New("median")
	require.ErrorIs(t, err, updater.ErrUnknownUpdater)

	require.NoError(t, updater.Register("first", func() core.Updater {
		return core.UpdaterFunc(func(_ core.ID, ds []float64) float64 {
			if len(ds) == 0 {
				return 0
			}
			return ds[0]
		})
	}))
	require.ErrorIs(t, updater.Register("first", nil), updater.ErrUnknownUpdater)
	require.ErrorIs(t, updater.Register(updater.NameModal, func() core.Updater { return updater.Min{} }), updater.ErrDuplicateUpdater)

	u, err := updater.New("first")
	require.NoError(t, err)
	assert.Equal(t, 9.0, u.Compute(core.NoID, []float64{9, 1}))

	assert.Subset(t, updater.Names(), []string{"first", "max", "mean", "min", "modal"})
}
