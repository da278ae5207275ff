package lasso

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lasso/matrix"
	"github.com/katalvlaran/lasso/quartet"
)

// QuartetResult is the outcome of a Quartets run.
type QuartetResult struct {
	RunID string
	// Matrix is the (possibly enriched) copy the system was derived from.
	Matrix *matrix.Distance
	// Filled counts entries deduced by enrichment.
	Filled int
	// Missing counts entries still unknown afterwards.
	Missing int
	System  *quartet.System
}

// Quartets derives the weighted quartet system of m. With Enrich set, missing
// distances are first deduced on a copy; m itself is never modified.
//
// Errors:
//   - ErrNilMatrix: m == nil.
//   - ctx.Err(): the context was already cancelled.
func Quartets(ctx context.Context, m *matrix.Distance, opts ...Option) (*QuartetResult, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Quartets: %w", err)
	}
	o := gatherOptions(opts...)
	id := uuid.NewString()
	log := o.Logger.With(zap.String("run_id", id), zap.String("mode", "Quartets"))
	start := time.Now()

	res := &QuartetResult{RunID: id, Matrix: m.Clone()}
	l, err := quartet.NewLasso(res.Matrix)
	if err != nil {
		return nil, fmt.Errorf("Quartets: %w", err)
	}
	if o.Enrich {
		if res.Filled, err = l.EnrichMatrix(); err != nil {
			return nil, fmt.Errorf("Quartets: %w", err)
		}
	}
	res.Missing = len(res.Matrix.Missing())
	if res.System, err = l.GetQuartets(); err != nil {
		return nil, fmt.Errorf("Quartets: %w", err)
	}

	log.Info("quartet system derived",
		zap.Int("taxa", res.Matrix.Size()),
		zap.Int("filled", res.Filled),
		zap.Int("missing", res.Missing),
		zap.Int("quartets", res.System.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}
