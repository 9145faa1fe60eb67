package vec

import "github.com/pkg/errors"

// Recycle vectorizes each argument and repeats the shorter ones end to end
// until every result has the length of the longest.
//
// Each input length must divide the longest length evenly, otherwise
// ErrIncompatibleLength is returned. Inputs that already have the longest
// length are returned as is.
func Recycle(xs ...any) ([]Vector, error) {
	vs := make([]Vector, len(xs))
	n := 0
	for i, x := range xs {
		vs[i] = Vectorize(x)
		n = max(n, len(vs[i]))
	}
	for i, v := range vs {
		if len(v) == n {
			continue
		}
		if len(v) == 0 || n%len(v) != 0 {
			return nil, errors.Wrapf(ErrIncompatibleLength, "recycle: length %d does not divide %d", len(v), n)
		}
		vs[i] = Rep(v, n/len(v))
	}
	return vs, nil
}

// MustRecycle is like Recycle but panics on error.
func MustRecycle(xs ...any) []Vector {
	vs, err := Recycle(xs...)
	if err != nil {
		panic(err)
	}
	return vs
}
