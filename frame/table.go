package frame

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"juicer/vec"
)

// RowLabelsKey is the reserved key holding row labels in the record form of
// a table accepted by IsTable and FromRecord.
const RowLabelsKey = "row_labels"

// Value is a vec.Vector or a *Table.
type Value interface {
	Len() int
}

// Table is a column-oriented table with labeled rows.
type Table struct {
	names  []string
	cols   map[string]vec.Vector
	labels vec.Vector
}

type config struct {
	labels vec.Vector
	names  []string
}

// Option configures New.
type Option func(*config)

// WithRowLabels sets the row labels. labels is vectorized and must have one
// element per row.
func WithRowLabels(labels any) Option {
	return func(cfg *config) {
		cfg.labels = vec.Vectorize(labels)
	}
}

// WithColumnNames sets the column names, one per column.
func WithColumnNames(names ...string) Option {
	return func(cfg *config) {
		cfg.names = names
	}
}

// New builds a table from columns of equal length.
//
// Row labels default to 0..n-1 and column names to "0".."k-1". Columns of
// differing lengths, or labels of the wrong length, fail with
// ErrColumnLengthMismatch; a wrong number of names or a duplicate name fails
// with ErrColumnMismatch. The columns are copied.
func New(cols []vec.Vector, opts ...Option) (*Table, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	for i, c := range cols {
		if len(c) != n {
			return nil, errors.Wrapf(ErrColumnLengthMismatch, "column %d has length %d, want %d", i, len(c), n)
		}
	}

	names := cfg.names
	if names == nil {
		names = defaultNames(len(cols))
	}
	if len(names) != len(cols) {
		return nil, errors.Wrapf(ErrColumnMismatch, "%d names for %d columns", len(names), len(cols))
	}

	labels := cfg.labels
	if labels == nil {
		if len(cols) == 0 {
			labels = vec.Vector{}
		} else {
			labels = vec.SeqLen(n)
		}
	}
	if len(cols) == 0 {
		n = len(labels)
	}
	if len(labels) != n {
		return nil, errors.Wrapf(ErrColumnLengthMismatch, "%d row labels for %d rows", len(labels), n)
	}

	t := &Table{
		names:  slices.Clone(names),
		cols:   make(map[string]vec.Vector, len(cols)),
		labels: labels.Clone(),
	}
	for i, name := range names {
		if _, dup := t.cols[name]; dup {
			return nil, errors.Wrapf(ErrColumnMismatch, "duplicate column %q", name)
		}
		t.cols[name] = cols[i].Clone()
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(cols []vec.Vector, opts ...Option) *Table {
	t, err := New(cols, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromRecord builds a table from its record form: a map from column name to
// column values plus a RowLabelsKey entry. Columns are ordered by name.
func FromRecord(rec map[string]any) (*Table, error) {
	labels, ok := rec[RowLabelsKey]
	if !ok {
		return nil, errors.Wrapf(ErrColumnMismatch, "record has no %q entry", RowLabelsKey)
	}
	names := make([]string, 0, len(rec)-1)
	for k := range rec {
		if k != RowLabelsKey {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	cols := make([]vec.Vector, len(names))
	for i, k := range names {
		cols[i] = vec.Vectorize(rec[k])
	}
	return New(cols, WithColumnNames(names...), WithRowLabels(labels))
}

// Record returns the record form of t.
func (t *Table) Record() map[string]any {
	rec := make(map[string]any, len(t.names)+1)
	rec[RowLabelsKey] = t.labels.Clone()
	for _, name := range t.names {
		rec[name] = t.cols[name].Clone()
	}
	return rec
}

// IsTable reports whether x is a table: a *Table, or a record map holding a
// RowLabelsKey entry and at least one column, with every entry of the same
// length.
func IsTable(x any) bool {
	switch x := x.(type) {
	case *Table:
		if x == nil {
			return false
		}
		for _, c := range x.cols {
			if len(c) != len(x.labels) {
				return false
			}
		}
		return true
	case map[string]any:
		labels, ok := x[RowLabelsKey]
		if !ok || len(x) < 2 {
			return false
		}
		n := len(vec.Vectorize(labels))
		for _, c := range x {
			if len(vec.Vectorize(c)) != n {
				return false
			}
		}
		return true
	}
	return false
}

func defaultNames(k int) []string {
	names := make([]string, k)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

// Len returns the number of rows, making *Table a Value.
func (t *Table) Len() int { return len(t.labels) }

// NRow returns the number of rows.
func (t *Table) NRow() int { return len(t.labels) }

// NCol returns the number of columns.
func (t *Table) NCol() int { return len(t.names) }

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string { return slices.Clone(t.names) }

// RowLabels returns a copy of the row labels.
func (t *Table) RowLabels() vec.Vector { return t.labels.Clone() }

// HasColumn reports whether t has a column called name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (vec.Vector, bool) {
	c, ok := t.cols[name]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Columns returns copies of all columns in order.
func (t *Table) Columns() []vec.Vector {
	cols := make([]vec.Vector, len(t.names))
	for i, name := range t.names {
		cols[i] = t.cols[name].Clone()
	}
	return cols
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) vec.Vector {
	r := make(vec.Vector, len(t.names))
	for j, name := range t.names {
		r[j] = t.cols[name][i]
	}
	return r
}

// Rows returns every row of t in order.
func (t *Table) Rows() []vec.Vector {
	rs := make([]vec.Vector, t.NRow())
	for i := range rs {
		rs[i] = t.Row(i)
	}
	return rs
}

// Equal reports whether t and u have the same column names in the same
// order, equal columns and equal row labels.
func (t *Table) Equal(u *Table) bool {
	if !slices.Equal(t.names, u.names) || !vecEqual(t.labels, u.labels) {
		return false
	}
	for _, name := range t.names {
		if !vecEqual(t.cols[name], u.cols[name]) {
			return false
		}
	}
	return true
}

func vecEqual(a, b vec.Vector) bool {
	return slices.EqualFunc(a, b, vec.Equal)
}

// column returns the named column without copying. Callers must not modify
// it.
func (t *Table) column(name string) vec.Vector { return t.cols[name] }

// nextName returns the smallest integer column name, counting up from the
// column count, that t does not use yet.
func (t *Table) nextName() string {
	for i := len(t.names); ; i++ {
		if name := strconv.Itoa(i); !t.HasColumn(name) {
			return name
		}
	}
}

func kindName(x any) string {
	switch x := x.(type) {
	case vec.Vector:
		return "vector"
	case *Table:
		if x == nil {
			return "nil table"
		}
		return "table"
	}
	return fmt.Sprintf("%T", x)
}
