package lasso

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lasso/quartet"
	"github.com/katalvlaran/lasso/tree"
)

// ErrNilSystem is returned when a writer receives a nil quartet system.
var ErrNilSystem = errors.New("lasso: quartet system is nil")

// TreeWriter hands a reconstructed tree to a destination.
type TreeWriter interface {
	WriteTree(w io.Writer, t tree.Tree) error
}

// QuartetWriter hands a quartet system to a destination.
type QuartetWriter interface {
	WriteQuartets(w io.Writer, s *quartet.System) error
}

// NewickWriter writes one Newick line per tree.
type NewickWriter struct{}

// WriteTree implements TreeWriter.
func (NewickWriter) WriteTree(w io.Writer, t tree.Tree) error {
	return t.WriteNewick(w)
}

// TextQuartetWriter writes one "A,B|C,D:weight" line per quartet.
type TextQuartetWriter struct{}

// WriteQuartets implements QuartetWriter.
func (TextQuartetWriter) WriteQuartets(w io.Writer, s *quartet.System) error {
	if s == nil {
		return ErrNilSystem
	}
	_, err := io.WriteString(w, s.String())

	return err
}

// WriteForest writes every tree of r with tw, in order.
func WriteForest(w io.Writer, tw TreeWriter, r *Result) error {
	for i, t := range r.Forest {
		if err := tw.WriteTree(w, t); err != nil {
			return fmt.Errorf("WriteForest: tree %d: %w", i, err)
		}
	}

	return nil
}
