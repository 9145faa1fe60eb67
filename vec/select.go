package vec

import (
	"slices"

	"github.com/pkg/errors"
)

// Order returns the permutation of indices that sorts x ascending, or
// descending if decreasing is set. The sort is stable: equal elements keep
// their original relative order in both directions.
func Order(x any, decreasing bool) []int {
	v := Vectorize(x)
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		c := Compare(v[a], v[b])
		if decreasing {
			return -c
		}
		return c
	})
	return idx
}

// Sort returns a sorted copy of x.
func Sort(x any, decreasing bool) Vector {
	v := Vectorize(x)
	return gather(v, Order(v, decreasing))
}

// Unique returns the distinct elements of x in order of first occurrence.
func Unique(x any) Vector {
	v := Vectorize(x)
	seen := make(map[any]struct{}, len(v))
	res := make(Vector, 0, len(v))
	for _, e := range v {
		k := key(e)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			res = append(res, e)
		}
	}
	return res
}

// Which returns the indices of x for which cond holds. cond is either a
// func(any) bool applied to each element or a boolean mask of the same
// length as x. Any other cond fails with ErrType.
func Which(x any, cond any) ([]int, error) {
	v := Vectorize(x)
	switch cond := cond.(type) {
	case func(any) bool:
		res := make([]int, 0, len(v)/2)
		for i, e := range v {
			if cond(e) {
				res = append(res, i)
			}
		}
		return res, nil
	case []bool:
		return which(len(v), Vectorize(cond))
	case Vector:
		return which(len(v), cond)
	}
	return nil, errors.Wrapf(ErrType, "which: condition of type %T is neither a predicate nor a boolean mask", cond)
}

func which(n int, mask Vector) ([]int, error) {
	if len(mask) != n {
		return nil, errors.Wrapf(ErrDimensionMismatch, "which: mask length %d, target length %d", len(mask), n)
	}
	res := make([]int, 0, n/2)
	for i, m := range mask {
		b, ok := m.(bool)
		if !ok {
			return nil, errors.Wrapf(ErrType, "which: mask element %d is %T, not bool", i, m)
		}
		if b {
			res = append(res, i)
		}
	}
	return res, nil
}

// Indices resolves idx against target into a list of positions.
//
// idx may be a predicate or a boolean mask, which are resolved with Which,
// or one or more integer positions given as an int, a []int or a Vector of
// integral numbers. Every position must lie in [0, len(target)).
func Indices(target Vector, idx any) ([]int, error) {
	var res []int
	switch idx := idx.(type) {
	case func(any) bool, []bool:
		return Which(target, idx)
	case []int:
		res = idx
	default:
		v := Vectorize(idx)
		if len(v) > 0 {
			if _, ok := v[0].(bool); ok {
				return Which(target, v)
			}
		}
		res = make([]int, len(v))
		for i, e := range v {
			n, ok := Int(e)
			if !ok {
				return nil, errors.Wrapf(ErrType, "select: index %v (%T) is not an integer", e, e)
			}
			res[i] = n
		}
	}
	for _, i := range res {
		if i < 0 || i >= len(target) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "select: index %d, length %d", i, len(target))
		}
	}
	return res, nil
}

// Select gathers the elements of x at the positions named by idx, in the
// order given. See Indices for the accepted forms of idx.
func Select(x any, idx any) (Vector, error) {
	v := Vectorize(x)
	is, err := Indices(v, idx)
	if err != nil {
		return nil, err
	}
	return gather(v, is), nil
}

// Gather is like Select with a plain index list and panics on an index out
// of range.
func Gather(x Vector, idx []int) Vector {
	return gather(x, idx)
}

func gather(v Vector, idx []int) Vector {
	res := make(Vector, len(idx))
	for i, j := range idx {
		res[i] = v[j]
	}
	return res
}
