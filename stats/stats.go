// Package stats holds scalar reducers, cumulative operations, math
// wrappers and random sampling over vectorized input.
//
// Everything here is a thin layer over vec.Vectorize, vec.Map and
// vec.Fold. Accumulators live inside each call; the package keeps no
// mutable state of its own.
package stats

import (
	"math"

	"github.com/pkg/errors"

	"juicer/vec"
)

var (
	// ErrProbability is returned when sampling weights do not sum to 1.
	ErrProbability = errors.New("probabilities must sum to 1")
	// ErrEmpty is returned by reducers that have no value for an empty
	// sequence.
	ErrEmpty = errors.New("empty sequence")
)

type intOp func(a, b int) int
type floatOp func(a, b float64) float64

// combine applies iop when both operands are ints and fop otherwise.
func combine(a, b any, iop intOp, fop floatOp) (any, bool) {
	na, ok := vec.Number(a)
	if !ok {
		return nil, false
	}
	nb, ok := vec.Number(b)
	if !ok {
		return nil, false
	}
	ia, aInt := na.(int)
	ib, bInt := nb.(int)
	if aInt && bInt {
		return iop(ia, ib), true
	}
	fa, _ := vec.Float(na)
	fb, _ := vec.Float(nb)
	return fop(fa, fb), true
}

func reduce(name string, x any, initial any, iop intOp, fop floatOp) (any, error) {
	var err error
	res := vec.Fold(x, func(acc, v any, i int) any {
		if err != nil {
			return acc
		}
		n, ok := combine(acc, v, iop, fop)
		if !ok {
			err = errors.Wrapf(vec.ErrType, "%s: element %d (%T) is not a number", name, i, v)
			return acc
		}
		return n
	}, initial)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func add(a, b int) int          { return a + b }
func addf(a, b float64) float64 { return a + b }
func mul(a, b int) int          { return a * b }
func mulf(a, b float64) float64 { return a * b }

// Sum returns the sum of x. It is an int if every element is an int and a
// float64 otherwise. The sum of nothing is 0.
func Sum(x any) (any, error) {
	return reduce("sum", x, 0, add, addf)
}

// Prod returns the product of x. The product of nothing is 1.
func Prod(x any) (any, error) {
	return reduce("prod", x, 1, mul, mulf)
}

// Mean returns the arithmetic mean of x.
func Mean(x any) (float64, error) {
	v := vec.Vectorize(x)
	if len(v) == 0 {
		return 0, errors.Wrap(ErrEmpty, "mean")
	}
	s, err := reduce("mean", v, 0.0, add, addf)
	if err != nil {
		return 0, err
	}
	return s.(float64) / float64(len(v)), nil
}

// Min returns the smallest element of its concatenated arguments.
func Min(xs ...any) (any, error) {
	return extreme("min", vec.C(xs...), -1)
}

// Max returns the largest element of its concatenated arguments.
func Max(xs ...any) (any, error) {
	return extreme("max", vec.C(xs...), 1)
}

func extreme(name string, v vec.Vector, sign int) (any, error) {
	if len(v) == 0 {
		return nil, errors.Wrap(ErrEmpty, name)
	}
	best := v[0]
	for _, e := range v[1:] {
		if vec.Compare(e, best)*sign > 0 {
			best = e
		}
	}
	return best, nil
}

// Cumsum returns the running sums of x.
func Cumsum(x any) (vec.Vector, error) {
	return cumulative("cumsum", x, 0, add, addf)
}

// Cumprod returns the running products of x.
func Cumprod(x any) (vec.Vector, error) {
	return cumulative("cumprod", x, 1, mul, mulf)
}

func cumulative(name string, x any, initial any, iop intOp, fop floatOp) (vec.Vector, error) {
	var err error
	acc := initial
	res := vec.Map(x, func(v any, i int) any {
		if err != nil {
			return nil
		}
		n, ok := combine(acc, v, iop, fop)
		if !ok {
			err = errors.Wrapf(vec.ErrType, "%s: element %d (%T) is not a number", name, i, v)
			return nil
		}
		acc = n
		return n
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// unary applies f to every element of x as a float64.
func unary(name string, x any, f func(float64) float64) (vec.Vector, error) {
	var err error
	res := vec.Map(x, func(v any, i int) any {
		fv, ok := vec.Float(v)
		if !ok && err == nil {
			err = errors.Wrapf(vec.ErrType, "%s: element %d (%T) is not a number", name, i, v)
		}
		return f(fv)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Log returns the natural logarithm of each element.
func Log(x any) (vec.Vector, error) { return unary("log", x, math.Log) }

// Exp returns e raised to each element.
func Exp(x any) (vec.Vector, error) { return unary("exp", x, math.Exp) }

// Sqrt returns the square root of each element.
func Sqrt(x any) (vec.Vector, error) { return unary("sqrt", x, math.Sqrt) }

// Abs returns the absolute value of each element.
func Abs(x any) (vec.Vector, error) { return unary("abs", x, math.Abs) }

// Floor returns the greatest integer value not above each element.
func Floor(x any) (vec.Vector, error) { return unary("floor", x, math.Floor) }

// Ceil returns the least integer value not below each element.
func Ceil(x any) (vec.Vector, error) { return unary("ceil", x, math.Ceil) }

// Sin returns the sine of each element, in radians.
func Sin(x any) (vec.Vector, error) { return unary("sin", x, math.Sin) }

// Cos returns the cosine of each element, in radians.
func Cos(x any) (vec.Vector, error) { return unary("cos", x, math.Cos) }

// Tan returns the tangent of each element, in radians.
func Tan(x any) (vec.Vector, error) { return unary("tan", x, math.Tan) }

// Round rounds each element to the given number of decimal digits, half
// away from zero.
func Round(x any, digits int) (vec.Vector, error) {
	scale := math.Pow(10, float64(digits))
	return unary("round", x, func(f float64) float64 {
		return math.Round(f*scale) / scale
	})
}

// Pow raises x to the power y elementwise, recycling both.
func Pow(x, y any) (vec.Vector, error) {
	var err error
	res, rerr := vec.Mapply(func(args ...any) any {
		b, ok1 := vec.Float(args[0])
		e, ok2 := vec.Float(args[1])
		if (!ok1 || !ok2) && err == nil {
			err = errors.Wrapf(vec.ErrType, "pow: %T ^ %T", args[0], args[1])
		}
		return math.Pow(b, e)
	}, x, y)
	if rerr != nil {
		return nil, errors.WithMessage(rerr, "pow")
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
