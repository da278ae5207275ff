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

// CompletionResult is the outcome of a Complete run.
type CompletionResult struct {
	RunID string
	// Matrix is the completed copy of the input.
	Matrix *matrix.Distance
	// FourPoint counts entries deduced by the four-point condition.
	FourPoint int
	// Closure counts entries filled by the shortest-path closure.
	Closure int
	// Missing counts entries still unknown.
	Missing int
}

// Complete fills a copy of m: first every entry the four-point condition
// determines, then, with Closure set, the remaining reachable entries with
// shortest-path upper bounds. m itself is never modified.
//
// Errors:
//   - ErrNilMatrix: m == nil.
//   - ctx.Err(): the context was already cancelled.
func Complete(ctx context.Context, m *matrix.Distance, opts ...Option) (*CompletionResult, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	o := gatherOptions(opts...)
	id := uuid.NewString()
	log := o.Logger.With(zap.String("run_id", id), zap.String("mode", "Complete"))
	start := time.Now()

	res := &CompletionResult{RunID: id, Matrix: m.Clone()}
	var err error
	if res.FourPoint, err = quartet.Enrich(res.Matrix); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	if o.Closure {
		if res.Closure, err = matrix.ShortestPathClosure(res.Matrix); err != nil {
			return nil, fmt.Errorf("Complete: %w", err)
		}
	}
	res.Missing = len(res.Matrix.Missing())

	log.Info("matrix completed",
		zap.Int("taxa", res.Matrix.Size()),
		zap.Int("four_point", res.FourPoint),
		zap.Int("closure", res.Closure),
		zap.Int("missing", res.Missing),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}
