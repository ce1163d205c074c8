// Package grouping loads the grouped names list (group label, person name)
// from CSV or XLSX, keeps it in first-seen order, and writes it to a JSON
// sidecar for reference.
package grouping

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRow is matched by every [MalformedRowError].
var ErrMalformedRow = errors.New("malformed names row")

// MalformedRowError reports a row with fewer than two columns.
type MalformedRowError struct {
	Line   int // 1-based row number in the source file.
	Fields int // Number of columns actually present.
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: want group and name columns, got %d column(s)", e.Line, e.Fields)
}

// Is lets errors.Is match ErrMalformedRow.
func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }

// Group is one label and the names collected under it, in row order.
type Group struct {
	Label string
	Names []string
}

// Groups is an ordered association list of groups. Order is the order in
// which each label was first seen.
type Groups []Group

// Len returns the total number of names across all groups.
func (g Groups) Len() int {
	n := 0
	for _, grp := range g {
		n += len(grp.Names)
	}
	return n
}

// Labels returns the group labels in order.
func (g Groups) Labels() []string {
	labels := make([]string, len(g))
	for i, grp := range g {
		labels[i] = grp.Label
	}
	return labels
}

// Flatten concatenates every group's names, groups in order and names in
// row order within each group.
func (g Groups) Flatten() []string {
	out := make([]string, 0, g.Len())
	for _, grp := range g {
		out = append(out, grp.Names...)
	}
	return out
}

// MarshalJSON encodes the groups as a JSON object whose keys keep group order.
func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalPlain(grp.Label)
		if err != nil {
			return nil, err
		}
		names := grp.Names
		if names == nil {
			names = []string{}
		}
		val, err := marshalPlain(names)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalPlain encodes v without escaping <, > and &, so names such as
// "Smith & Co" stay readable in the sidecar.
func marshalPlain(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// NormalizeName replaces every space with an underscore. Case, punctuation
// and other whitespace are kept as-is.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// builder accumulates rows into Groups while tracking first-seen order.
type builder struct {
	groups Groups
	index  map[string]int
}

func newBuilder() *builder {
	return &builder{index: make(map[string]int)}
}

func (b *builder) add(label, name string) {
	name = NormalizeName(name)
	if i, ok := b.index[label]; ok {
		b.groups[i].Names = append(b.groups[i].Names, name)
		return
	}
	b.index[label] = len(b.groups)
	b.groups = append(b.groups, Group{Label: label, Names: []string{name}})
}

// rowsToGroups applies the row rules shared by every input format: at least
// two columns, first is the label, second is the name, the rest is ignored.
// line is the 1-based row number reported for rows[0].
func rowsToGroups(rows [][]string, line int) (Groups, error) {
	b := newBuilder()
	for i, row := range rows {
		if len(row) < 2 {
			return nil, &MalformedRowError{Line: line + i, Fields: len(row)}
		}
		b.add(row[0], row[1])
	}
	return b.groups, nil
}
