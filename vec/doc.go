/*
Package vec brings R's vector semantics to Go.

Every operation accepts loosely typed input and first normalizes it with
[Vectorize]: a [Vector] passes through, any other slice or array is copied
into a new Vector, and everything else becomes a one-element Vector. This
makes scalars and sequences interchangeable, so

	vec.Add(vec.Vector{1, 2, 3, 4}, 10)

adds 10 to each element.

# Recycling

Binary elementwise operations align their operands with [Recycle]: shorter
sequences are repeated end to end until they match the longest one. Lengths
that are not integer multiples of the longest fail with
[ErrIncompatibleLength].

	vs, _ := vec.Recycle(vec.Vector{1, 2}, vec.Vector{1, 2, 3, 4}, 3)
	// [[1 2 1 2] [1 2 3 4] [3 3 3 3]]

# Ordering and equality

Elements are compared with [Compare] and [Equal]. Numbers of any Go numeric
kind compare by value, strings lexically, and nested Vectors
lexicographically. Values of different kinds are ordered by kind, so any
Vector can be sorted with [Order].

# Error Handling

Errors are sentinels wrapped with context; test for them with errors.Is.
Nothing is modified before an error is returned.
*/
package vec
