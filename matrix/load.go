// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: Decoding distance matrices from YAML/JSON documents.
//
// Document shape (JSON is accepted because it is a YAML subset):
//
//	taxa: [A, B, C]
//	rows:
//	  - [0, 3, 8]
//	  - [3, 0, 9]
//	  - [8, 9, 0]
//
// taxa may be omitted; rows are then labelled 0..n-1.

package matrix

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk representation of a distance matrix.
type Document struct {
	Taxa []string    `yaml:"taxa" json:"taxa"`
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

// Decode parses a YAML or JSON document and validates it via FromRows.
func Decode(data []byte, opts ...Option) (*Distance, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("Decode: empty document: %w", ErrBadShape)
		}

		return nil, fmt.Errorf("Decode: %w", err)
	}

	return FromRows(doc.Taxa, doc.Rows, opts...)
}

// LoadFile reads and decodes the matrix stored at path.
func LoadFile(path string, opts ...Option) (*Distance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	m, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return m, nil
}

// Encode renders m as a YAML Document.
func Encode(m *Distance) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return yaml.Marshal(Document{Taxa: m.Taxa(), Rows: m.Rows()})
}
