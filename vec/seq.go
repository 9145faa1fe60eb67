package vec

import (
	"math"

	"github.com/pkg/errors"
)

// Map applies f to each element of x, passing the element and its index.
func Map(x any, f func(v any, i int) any) Vector {
	v := Vectorize(x)
	res := make(Vector, len(v))
	for i, e := range v {
		res[i] = f(e, i)
	}
	return res
}

// Fold reduces x from the left, starting from initial. f receives the
// accumulator, the element and its index.
func Fold(x any, f func(acc, v any, i int) any, initial any) any {
	acc := initial
	for i, e := range Vectorize(x) {
		acc = f(acc, e, i)
	}
	return acc
}

// Filter returns the elements of x that satisfy pred.
func Filter(x any, pred func(any) bool) Vector {
	v := Vectorize(x)
	res := make(Vector, 0, len(v)/2)
	for _, e := range v {
		if pred(e) {
			res = append(res, e)
		}
	}
	return res
}

// C concatenates its vectorized arguments.
func C(xs ...any) Vector {
	n := 0
	vs := make([]Vector, len(xs))
	for i, x := range xs {
		vs[i] = Vectorize(x)
		n += len(vs[i])
	}
	res := make(Vector, 0, n)
	for _, v := range vs {
		res = append(res, v...)
	}
	return res
}

// DoCall calls f with the elements of args as its arguments.
func DoCall(f func(...any) any, args any) any {
	return f(Vectorize(args)...)
}

// Seq generates an arithmetic progression.
//
// Seq(n) returns 0, 1, ..., n-1. Seq(from, to) and Seq(from, to, by) step
// from from towards to by by (default 1). The sign of by is flipped if it
// points away from to. The length is |ceil((to-from)/by)| + 1, computed with
// the by given by the caller, so the last value may overshoot to when
// to-from is not a multiple of by.
//
// Elements are ints when from and by are integral, float64 otherwise.
func Seq(from float64, rest ...float64) Vector {
	if len(rest) == 0 {
		if from < 1 {
			return Vector{}
		}
		return SeqLen(int(from))
	}
	to, by := rest[0], 1.0
	if len(rest) > 1 {
		by = rest[1]
	}
	if by == 0 || from == to {
		return Vector{num(from)}
	}
	// length is taken before the sign of by is corrected
	n := int(math.Abs(math.Ceil((to-from)/by))) + 1
	if (from > to && by > 0) || (from < to && by < 0) {
		by = -by
	}
	integral := from == math.Trunc(from) && by == math.Trunc(by)
	res := make(Vector, n)
	for i := range res {
		v := from + float64(i)*by
		if integral {
			res[i] = int(v)
		} else {
			res[i] = v
		}
	}
	return res
}

// SeqLen returns the integers 0, 1, ..., n-1.
func SeqLen(n int) Vector {
	res := make(Vector, max(n, 0))
	for i := range res {
		res[i] = i
	}
	return res
}

func num(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int(f)
	}
	return f
}

// Rep repeats x, as a whole, times times. If x is a sequence the copies are
// concatenated, so Rep([1 2], 2) is [1 2 1 2].
func Rep(x any, times int) Vector {
	v := Vectorize(x)
	if times <= 0 {
		return Vector{}
	}
	res := make(Vector, 0, len(v)*times)
	for range times {
		res = append(res, v...)
	}
	return res
}

// Zip recycles its arguments to a common length and returns one row per
// position, holding the i-th element of every argument.
func Zip(xs ...any) ([]Vector, error) {
	vs, err := Recycle(xs...)
	if err != nil {
		return nil, errors.WithMessage(err, "zip")
	}
	return rows(vs), nil
}

// Transpose turns a sequence of equal-length rows into a sequence of
// columns. Rows of differing length fail with ErrDimensionMismatch.
func Transpose(m []Vector) ([]Vector, error) {
	if len(m) == 0 {
		return []Vector{}, nil
	}
	for i, r := range m {
		if len(r) != len(m[0]) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "transpose: row %d has length %d, want %d", i, len(r), len(m[0]))
		}
	}
	return rows(m), nil
}

func rows(cols []Vector) []Vector {
	if len(cols) == 0 {
		return []Vector{}
	}
	res := make([]Vector, len(cols[0]))
	for i := range res {
		r := make(Vector, len(cols))
		for j, c := range cols {
			r[j] = c[i]
		}
		res[i] = r
	}
	return res
}

// Mapply recycles its arguments and calls f once per position with the
// elements at that position.
func Mapply(f func(args ...any) any, xs ...any) (Vector, error) {
	rs, err := Zip(xs...)
	if err != nil {
		return nil, errors.WithMessage(err, "mapply")
	}
	res := make(Vector, len(rs))
	for i, r := range rs {
		res[i] = f(r...)
	}
	return res, nil
}

// Any reports whether some element of x is true.
func Any(x any) bool {
	for _, e := range Vectorize(x) {
		if b, ok := e.(bool); ok && b {
			return true
		}
	}
	return false
}

// All reports whether every element of x is true. It is true for an empty
// sequence.
func All(x any) bool {
	for _, e := range Vectorize(x) {
		if b, ok := e.(bool); !ok || !b {
			return false
		}
	}
	return true
}
