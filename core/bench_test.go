package core_test

import (
	"testing"

	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/matrix"
	"github.com/katalvlaran/lasso/updater"
)

// BenchmarkJoinCluster_Pairs reduces a 64-taxon ultrametric pair by pair.
func BenchmarkJoinCluster_Pairs(b *testing.B) {
	m, err := matrix.RandomUltrametric(64, matrix.NewRand(1))
	if err != nil {
		b.Fatal(err)
	}
	base, err := core.FromMatrix(m)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := base.Clone()
		for g.Order() > 1 {
			v := g.Vertices()
			if _, _, err = g.JoinCluster(v[:2], updater.Mean{}); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkRetainMinEdges measures the skeleton pass on a dense graph.
func BenchmarkRetainMinEdges(b *testing.B) {
	m, err := matrix.RandomUltrametric(128, matrix.NewRand(2))
	if err != nil {
		b.Fatal(err)
	}
	base, err := core.FromMatrix(m)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		base.Clone().RetainMinEdges()
	}
}
