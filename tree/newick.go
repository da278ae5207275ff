// File: newick.go
// Role: Plain Newick rendering of arena trees for logs, tests and the CLI.
// Labels containing Newick punctuation or blanks are single-quoted.

package tree

import (
	"io"
	"strconv"
	"strings"
)

const newickSpecial = " \t\n()[]':;,"

// Newick renders t as a Newick string terminated by ';'. Branch lengths are
// printed with the shortest exact float representation.
func (t Tree) Newick() string {
	if t.IsZero() {
		return ";"
	}
	var sb strings.Builder
	t.writeNode(&sb, t.root)
	sb.WriteByte(';')

	return sb.String()
}

// WriteNewick writes t.Newick() followed by a newline.
func (t Tree) WriteNewick(w io.Writer) error {
	_, err := io.WriteString(w, t.Newick()+"\n")

	return err
}

func (t Tree) writeNode(sb *strings.Builder, id NodeID) {
	n := t.arena.get(id)
	if len(n.children) == 0 {
		sb.WriteString(quoteLabel(n.taxon))
		return
	}
	sb.WriteByte('(')
	for i, b := range n.children {
		if i > 0 {
			sb.WriteByte(',')
		}
		t.writeNode(sb, b.Child)
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(b.Length, 'g', -1, 64))
	}
	sb.WriteByte(')')
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, newickSpecial) {
		return label
	}

	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
