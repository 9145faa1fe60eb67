package frame

import (
	"github.com/pkg/errors"

	"juicer/vec"
)

// SelectRows returns the rows of t at the positions named by idx, in the
// order given. idx takes any form accepted by vec.Indices; a predicate is
// called with each row as a vec.Vector in column order. Row labels are
// gathered along with the columns.
func SelectRows(t *Table, idx any) (*Table, error) {
	var target vec.Vector
	if _, ok := idx.(func(any) bool); ok {
		rows := t.Rows()
		target = make(vec.Vector, len(rows))
		for i, r := range rows {
			target[i] = r
		}
	} else {
		target = make(vec.Vector, t.NRow())
	}
	is, err := vec.Indices(target, idx)
	if err != nil {
		return nil, errors.WithMessage(err, "select rows")
	}
	return gatherRows(t, is), nil
}

// Select gathers elements of a vector, or rows of a table, by idx.
func Select(x Value, idx any) (Value, error) {
	switch x := x.(type) {
	case vec.Vector:
		v, err := vec.Select(x, idx)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *Table:
		t, err := SelectRows(x, idx)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, errors.Wrapf(vec.ErrType, "select: %s is neither a vector nor a table", kindName(x))
}

// OrderBy returns t with its rows sorted by the named column. The sort is
// stable.
func OrderBy(t *Table, column string, decreasing bool) (*Table, error) {
	c, ok := t.cols[column]
	if !ok {
		return nil, errors.Wrapf(ErrColumnMismatch, "order by: no column %q", column)
	}
	return gatherRows(t, vec.Order(c, decreasing)), nil
}

// gatherRows builds a table from the rows of t at idx. Every index must be
// in range.
func gatherRows(t *Table, idx []int) *Table {
	res := &Table{
		names:  t.ColumnNames(),
		cols:   make(map[string]vec.Vector, len(t.names)),
		labels: vec.Gather(t.labels, idx),
	}
	for _, name := range t.names {
		res.cols[name] = vec.Gather(t.cols[name], idx)
	}
	return res
}
