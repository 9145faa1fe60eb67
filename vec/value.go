package vec

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Vector is an ordered, 0-indexed sequence of loosely typed values.
//
// Operations in this package never modify a Vector they are given; results
// are always freshly allocated unless documented otherwise.
type Vector []any

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// At returns the element at index i.
func (v Vector) At(i int) any { return v[i] }

// All returns an iterator over index-value pairs.
func (v Vector) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, x := range v {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v Vector) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return slices.Clone(v)
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Vectorize coerces x into a Vector.
//
// A Vector is returned unchanged. Any other slice or array, or an
// iter.Seq[any], is materialized into a new Vector holding its elements in
// order. Everything else, including nil, becomes a one-element Vector.
func Vectorize(x any) Vector {
	switch x := x.(type) {
	case Vector:
		return x
	case []any:
		return Vector(slices.Clone(x))
	case iter.Seq[any]:
		return Vector(slices.Collect(x))
	case nil:
		return Vector{nil}
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make(Vector, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return Vector{x}
}

// IsVector reports whether x is a Vector.
func IsVector(x any) bool {
	_, ok := x.(Vector)
	return ok
}

// kind ranks used to order values of different kinds.
const (
	kindNumber = iota
	kindString
	kindBool
	kindVector
	kindOther
)

func kindOf(x any) int {
	switch x.(type) {
	case string:
		return kindString
	case bool:
		return kindBool
	case Vector:
		return kindVector
	}
	if _, ok := number(x); ok {
		return kindNumber
	}
	return kindOther
}

// number returns x as an int or a float64 if it has a Go numeric kind.
func number(x any) (any, bool) {
	switch x := x.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return unsigned(uint64(x)), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return unsigned(uint64(x)), true
	case uint64:
		return unsigned(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return nil, false
}

// unsigned keeps x as an int unless it is too large for one.
func unsigned(x uint64) any {
	if x > math.MaxInt {
		return float64(x)
	}
	return int(x)
}

// Number returns x as an int, if it has a Go integer kind, or a float64, if
// it has a Go floating-point kind. Unsigned values above math.MaxInt are
// returned as a float64.
func Number(x any) (any, bool) {
	return number(x)
}

// Float returns x as a float64 if it is a number.
func Float(x any) (float64, bool) {
	n, ok := number(x)
	if !ok {
		return 0, false
	}
	switch n := n.(type) {
	case int:
		return float64(n), true
	default:
		return n.(float64), true
	}
}

// Int returns x as an int if it is an integral number.
func Int(x any) (int, bool) {
	n, ok := number(x)
	if !ok {
		return 0, false
	}
	switch n := n.(type) {
	case int:
		return n, true
	default:
		f := n.(float64)
		if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
			return 0, false
		}
		return int(f), true
	}
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b.
//
// Numbers sort before strings, strings before bools, bools before Vectors,
// and Vectors before every other kind. Within a kind numbers compare by
// value, strings lexically, false before true, and Vectors element by
// element with the shorter one first on a common prefix. NaN equals NaN and
// sorts before every other number. Values of other kinds compare by their
// type and Go-syntax printed form.
func Compare(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case kindNumber:
		na, _ := number(a)
		nb, _ := number(b)
		if ia, ok := na.(int); ok {
			if ib, ok := nb.(int); ok {
				return cmp.Compare(ia, ib)
			}
		}
		fa, _ := Float(a)
		fb, _ := Float(b)
		return cmp.Compare(fa, fb)
	case kindString:
		return strings.Compare(a.(string), b.(string))
	case kindBool:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case kindVector:
		va, vb := a.(Vector), b.(Vector)
		for i := 0; i < len(va) && i < len(vb); i++ {
			if c := Compare(va[i], vb[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(va), len(vb))
	}
	return strings.Compare(otherKey(a), otherKey(b))
}

func otherKey(x any) string {
	return fmt.Sprintf("%T:%#v", x, x)
}

// Equal reports whether a and b are the same value. Numbers are equal when
// their values are, regardless of Go type.
func Equal(a, b any) bool {
	return Compare(a, b) == 0
}

// key returns a comparable map key such that key(a) == key(b) iff
// Equal(a, b).
func key(x any) any {
	switch kindOf(x) {
	case kindNumber:
		n, _ := number(x)
		f, ok := n.(float64)
		switch {
		case !ok:
			return n
		case math.IsNaN(f):
			return nanKey{}
		case f == math.Trunc(f) && f >= math.MinInt && f < -math.MinInt:
			return int(f)
		}
		return f
	case kindString, kindBool:
		return x
	case kindVector:
		var sb strings.Builder
		writeKey(&sb, x)
		return sb.String()
	}
	return otherKey(x)
}

// nanKey is the key shared by every NaN.
type nanKey struct{}

func writeKey(sb *strings.Builder, x any) {
	switch x := x.(type) {
	case Vector:
		sb.WriteString("v")
		sb.WriteString(strconv.Itoa(len(x)))
		sb.WriteByte('[')
		for _, e := range x {
			writeKey(sb, e)
			sb.WriteByte(',')
		}
		sb.WriteByte(']')
	case string:
		sb.WriteString("s")
		sb.WriteString(strconv.Quote(x))
	default:
		fmt.Fprintf(sb, "%T:%v", key(x), key(x))
	}
}
