package frame

import (
	"slices"

	"github.com/pkg/errors"

	"juicer/vec"
)

// Rbind stacks the rows of y below the rows of x.
//
// x and y must have the same set of column names, otherwise
// ErrColumnMismatch is returned; the result keeps x's column order and y's
// columns are matched by name. Row labels are concatenated as is, without
// enforcing uniqueness. A nil operand fails with vec.ErrType.
func Rbind(x, y *Table) (*Table, error) {
	for _, t := range []*Table{x, y} {
		if err := checkValue("rbind", t); err != nil {
			return nil, err
		}
	}
	if !sameNames(x.names, y.names) {
		return nil, errors.Wrapf(ErrColumnMismatch, "rbind: columns %q and %q", x.names, y.names)
	}
	res := &Table{
		names:  x.ColumnNames(),
		cols:   make(map[string]vec.Vector, len(x.names)),
		labels: vec.C(x.labels, y.labels),
	}
	for _, name := range x.names {
		res.cols[name] = vec.C(x.cols[name], y.cols[name])
	}
	return res, nil
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := slices.Clone(a), slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}

// Cbind joins x and y side by side. Each operand is a vec.Vector or a
// *Table and both must have the same number of rows, otherwise
// ErrDimensionMismatch is returned.
//
//   - table, table: x's columns followed by y's columns whose names x does
//     not use.
//   - vector, vector: a new two-column table.
//   - table, vector: x with y appended as a new column.
//   - vector, table: a table of x, taking y's row labels, followed by y's
//     columns whose names x's column does not use.
//
// names optionally name the vector columns, in operand order. Vectors
// default to the next free integer column name. The result never shares
// storage with x or y.
func Cbind(x, y Value, names ...string) (*Table, error) {
	if err := checkValue("cbind", x); err != nil {
		return nil, err
	}
	if err := checkValue("cbind", y); err != nil {
		return nil, err
	}
	if x.Len() != y.Len() {
		return nil, errors.Wrapf(vec.ErrDimensionMismatch, "cbind: %s has %d rows, %s has %d",
			kindName(x), x.Len(), kindName(y), y.Len())
	}
	name := func(i int, t *Table) string {
		if i < len(names) {
			return names[i]
		}
		return t.nextName()
	}

	switch x := x.(type) {
	case *Table:
		switch y := y.(type) {
		case *Table:
			return merge(x, y), nil
		case vec.Vector:
			return appendColumn(x, name(0, x), y)
		}
	case vec.Vector:
		switch y := y.(type) {
		case vec.Vector:
			left := emptyLike(vec.SeqLen(len(x)))
			first, err := appendColumn(left, name(0, left), x)
			if err != nil {
				return nil, err
			}
			return appendColumn(first, name(1, first), y)
		case *Table:
			left := emptyLike(y.labels)
			left, err := appendColumn(left, name(0, left), x)
			if err != nil {
				return nil, err
			}
			return merge(left, y), nil
		}
	}
	panic("unreachable")
}

func checkValue(op string, x Value) error {
	switch x := x.(type) {
	case vec.Vector:
		return nil
	case *Table:
		if x != nil {
			return nil
		}
	}
	return errors.Wrapf(vec.ErrType, "%s: %s is neither a vector nor a table", op, kindName(x))
}

// emptyLike returns a table with no columns and the given row labels.
func emptyLike(labels vec.Vector) *Table {
	return &Table{cols: map[string]vec.Vector{}, labels: labels.Clone()}
}

// merge returns x's columns followed by the columns of y that x lacks, with
// x's row labels.
func merge(x, y *Table) *Table {
	res := &Table{
		names:  x.ColumnNames(),
		cols:   make(map[string]vec.Vector, len(x.names)+len(y.names)),
		labels: x.labels.Clone(),
	}
	for _, name := range x.names {
		res.cols[name] = x.cols[name].Clone()
	}
	for _, name := range y.names {
		if _, taken := res.cols[name]; taken {
			continue
		}
		res.names = append(res.names, name)
		res.cols[name] = y.cols[name].Clone()
	}
	return res
}

// appendColumn returns a copy of t with c added as the last column.
func appendColumn(t *Table, name string, c vec.Vector) (*Table, error) {
	if t.HasColumn(name) {
		return nil, errors.Wrapf(ErrColumnMismatch, "cbind: column %q already exists", name)
	}
	res := merge(t, emptyLike(nil))
	res.names = append(res.names, name)
	res.cols[name] = c.Clone()
	return res, nil
}
