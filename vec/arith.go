package vec

import (
	"github.com/pkg/errors"
)

// binary recycles x and y and applies op to each aligned pair.
func binary(name string, x, y any, op func(a, b any) (any, error)) (Vector, error) {
	vs, err := Recycle(x, y)
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}
	a, b := vs[0], vs[1]
	res := make(Vector, len(a))
	for i := range a {
		if res[i], err = op(a[i], b[i]); err != nil {
			return nil, errors.WithMessagef(err, "%s: element %d", name, i)
		}
	}
	return res, nil
}

// arith applies an integer and a float operation to two numbers, keeping
// ints when both operands are ints.
func arith(a, b any, iop func(x, y int) int, fop func(x, y float64) float64) (any, error) {
	na, ok := number(a)
	if !ok {
		return nil, errors.Wrapf(ErrType, "%v (%T) is not a number", a, a)
	}
	nb, ok := number(b)
	if !ok {
		return nil, errors.Wrapf(ErrType, "%v (%T) is not a number", b, b)
	}
	if iop != nil {
		if ia, ok := na.(int); ok {
			if ib, ok := nb.(int); ok {
				return iop(ia, ib), nil
			}
		}
	}
	fa, _ := Float(na)
	fb, _ := Float(nb)
	return fop(fa, fb), nil
}

// Add adds x and y elementwise. Strings are concatenated.
func Add(x, y any) (Vector, error) {
	return binary("add", x, y, func(a, b any) (any, error) {
		if sa, ok := a.(string); ok {
			if sb, ok := b.(string); ok {
				return sa + sb, nil
			}
		}
		return arith(a, b,
			func(x, y int) int { return x + y },
			func(x, y float64) float64 { return x + y })
	})
}

// Subtract subtracts y from x elementwise.
func Subtract(x, y any) (Vector, error) {
	return binary("subtract", x, y, func(a, b any) (any, error) {
		return arith(a, b,
			func(x, y int) int { return x - y },
			func(x, y float64) float64 { return x - y })
	})
}

// Multiply multiplies x and y elementwise.
func Multiply(x, y any) (Vector, error) {
	return binary("multiply", x, y, func(a, b any) (any, error) {
		return arith(a, b,
			func(x, y int) int { return x * y },
			func(x, y float64) float64 { return x * y })
	})
}

// Divide divides x by y elementwise. The result is always float64;
// division by zero follows IEEE 754.
func Divide(x, y any) (Vector, error) {
	return binary("divide", x, y, func(a, b any) (any, error) {
		return arith(a, b, nil, func(x, y float64) float64 { return x / y })
	})
}

// InnerProduct returns the sum of the elementwise product of x and y.
func InnerProduct(x, y any) (any, error) {
	p, err := Multiply(x, y)
	if err != nil {
		return nil, err
	}
	var acc any = 0
	for _, e := range p {
		if acc, err = arith(acc, e,
			func(x, y int) int { return x + y },
			func(x, y float64) float64 { return x + y }); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func comparison(name string, x, y any, ok func(c int) bool) ([]bool, error) {
	v, err := binary(name, x, y, func(a, b any) (any, error) {
		return ok(Compare(a, b)), nil
	})
	if err != nil {
		return nil, err
	}
	res := make([]bool, len(v))
	for i, e := range v {
		res[i] = e.(bool)
	}
	return res, nil
}

// Eq compares x and y elementwise for equality.
func Eq(x, y any) ([]bool, error) {
	return comparison("eq", x, y, func(c int) bool { return c == 0 })
}

// IsEqual is an alias of Eq.
func IsEqual(x, y any) ([]bool, error) { return Eq(x, y) }

// NotEq compares x and y elementwise for inequality.
func NotEq(x, y any) ([]bool, error) {
	return comparison("noteq", x, y, func(c int) bool { return c != 0 })
}

// Less reports elementwise whether x sorts before y.
func Less(x, y any) ([]bool, error) {
	return comparison("less", x, y, func(c int) bool { return c < 0 })
}

// LessEq reports elementwise whether x sorts before or equal to y.
func LessEq(x, y any) ([]bool, error) {
	return comparison("lesseq", x, y, func(c int) bool { return c <= 0 })
}

// Greater reports elementwise whether x sorts after y.
func Greater(x, y any) ([]bool, error) {
	return comparison("greater", x, y, func(c int) bool { return c > 0 })
}

// GreaterEq reports elementwise whether x sorts after or equal to y.
func GreaterEq(x, y any) ([]bool, error) {
	return comparison("greatereq", x, y, func(c int) bool { return c >= 0 })
}
