package frame

import (
	"context"

	"github.com/pkg/errors"

	"juicer/vec"
)

// Group is one group produced by Partition: the key shared by its rows and
// the rows themselves, a vec.Vector or a *Table like the partitioned value.
type Group struct {
	Key  any
	Rows Value
}

// Partition splits x by the parallel sequence key, which must have one
// element per row of x.
//
// Groups are returned in ascending key order, one per distinct key. Rows
// sharing a key keep their relative order from x. Concatenating the groups
// yields a permutation of x's rows.
func Partition(x Value, key any) ([]Group, error) {
	if err := checkValue("partition", x); err != nil {
		return nil, err
	}
	k := vec.Vectorize(key)
	if len(k) != x.Len() {
		return nil, errors.Wrapf(ErrLengthMismatch, "partition: %d keys for %d rows", len(k), x.Len())
	}

	// stable, so equal keys keep their original row order
	ord := vec.Order(k, false)
	sortedKeys := vec.Gather(k, ord)

	groups := []Group{}
	emit := func(start, end int) {
		var rows Value
		switch x := x.(type) {
		case vec.Vector:
			rows = vec.Gather(x, ord[start:end])
		case *Table:
			rows = gatherRows(x, ord[start:end])
		}
		groups = append(groups, Group{Key: sortedKeys[start], Rows: rows})
	}

	start := 0
	for i := 1; i < len(sortedKeys); i++ {
		if !vec.Equal(sortedKeys[i], sortedKeys[start]) {
			emit(start, i)
			start = i
		}
	}
	if len(sortedKeys) > 0 {
		emit(start, len(sortedKeys))
	}
	return groups, nil
}

// PartitionVector is Partition for a vec.Vector.
func PartitionVector(x vec.Vector, key any) ([]vec.Vector, error) {
	groups, err := Partition(x, key)
	if err != nil {
		return nil, err
	}
	res := make([]vec.Vector, len(groups))
	for i, g := range groups {
		res[i] = g.Rows.(vec.Vector)
	}
	return res, nil
}

// PartitionTable is Partition for a *Table.
func PartitionTable(t *Table, key any) ([]*Table, error) {
	groups, err := Partition(t, key)
	if err != nil {
		return nil, err
	}
	res := make([]*Table, len(groups))
	for i, g := range groups {
		res[i] = g.Rows.(*Table)
	}
	return res, nil
}

// Tapply partitions x by key and applies fn to each group. Results are in
// ascending key order.
func Tapply(x Value, key any, fn func(Value) any) (vec.Vector, error) {
	_, res, err := TapplyNamed(x, key, fn)
	return res, err
}

// TapplyNamed is like Tapply but also returns the key of each group.
func TapplyNamed(x Value, key any, fn func(Value) any) (keys, results vec.Vector, err error) {
	groups, err := Partition(x, key)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "tapply")
	}
	keys = make(vec.Vector, len(groups))
	results = make(vec.Vector, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
		results[i] = fn(g.Rows)
	}
	return keys, results, nil
}

// TapplyContext is like TapplyNamed for a fallible fn. Groups are processed
// concurrently with vec.ParallelMap, so fn must be safe for concurrent use.
// The first error from fn, or from ctx, is returned.
func TapplyContext(ctx context.Context, x Value, key any, fn func(Value) (any, error)) (keys, results vec.Vector, err error) {
	groups, err := Partition(x, key)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "tapply")
	}
	keys = make(vec.Vector, len(groups))
	rows := make(vec.Vector, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
		rows[i] = g.Rows
	}
	results, err = vec.ParallelMap(ctx, rows, func(r any, i int) (any, error) {
		res, err := fn(r.(Value))
		return res, errors.WithMessagef(err, "group %v", keys[i])
	})
	if err != nil {
		return nil, nil, err
	}
	return keys, results, nil
}

// By partitions t and applies fn to each group, returning the group keys
// and results in ascending key order.
//
// Each element of keys is the name of a column of t, a sequence with one
// element per row, a []vec.Vector of such sequences, or a *Table whose
// columns are such sequences. With a single key sequence its elements are
// the group keys; with several, each row's key is the vec.Vector of its
// elements across the sequences and keys are equal when every element is.
func By(t *Table, fn func(*Table) any, keys ...any) (vec.Vector, vec.Vector, error) {
	k, err := compositeKey(t, keys)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "by")
	}
	return TapplyNamed(t, k, func(g Value) any { return fn(g.(*Table)) })
}

func compositeKey(t *Table, keys []any) (vec.Vector, error) {
	if err := checkValue("by", t); err != nil {
		return nil, err
	}
	var cols []vec.Vector
	for _, k := range keys {
		switch k := k.(type) {
		case string:
			if c, ok := t.cols[k]; ok {
				cols = append(cols, c)
				continue
			}
			return nil, errors.Wrapf(ErrColumnMismatch, "no column %q", k)
		case *Table:
			cols = append(cols, k.Columns()...)
		case []vec.Vector:
			cols = append(cols, k...)
		default:
			cols = append(cols, vec.Vectorize(k))
		}
	}
	if len(cols) == 0 {
		return nil, errors.Wrap(vec.ErrType, "no grouping key")
	}
	for _, c := range cols {
		if len(c) != t.NRow() {
			return nil, errors.Wrapf(ErrLengthMismatch, "%d keys for %d rows", len(c), t.NRow())
		}
	}
	if len(cols) == 1 {
		return cols[0], nil
	}
	rows, err := vec.Transpose(cols)
	if err != nil {
		return nil, err
	}
	res := make(vec.Vector, len(rows))
	for i, r := range rows {
		res[i] = r
	}
	return res, nil
}

// Tabulate counts the occurrences of each distinct value of x. The result
// has a "value" column in ascending order and a "count" column.
func Tabulate(x any) *Table {
	v := vec.Vectorize(x)
	keys, counts, _ := TapplyNamed(v, v, func(g Value) any { return g.Len() })
	return &Table{
		names:  []string{"value", "count"},
		cols:   map[string]vec.Vector{"value": keys, "count": counts},
		labels: vec.SeqLen(len(keys)),
	}
}
