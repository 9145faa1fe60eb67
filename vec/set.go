package vec

// Sets here are Vectors compared by value equality. Results are
// deduplicated and keep first-occurrence order.

// SetDiff returns the distinct elements of a that are not in b.
func SetDiff(a, b any) Vector {
	va, vb := Vectorize(a), Vectorize(b)
	if len(va) == 0 {
		return Vector{}
	}

	exclude := make(map[any]struct{}, len(va)+len(vb))
	for _, e := range vb {
		exclude[key(e)] = struct{}{}
	}

	res := make(Vector, 0, len(va))
	for _, e := range va {
		k := key(e)
		if _, found := exclude[k]; !found {
			res = append(res, e)
			exclude[k] = struct{}{}
		}
	}
	return res
}

// Intersection returns the distinct elements of a that are also in b, in
// the order they appear in a.
func Intersection(a, b any) Vector {
	va, vb := Vectorize(a), Vectorize(b)
	if len(va) == 0 || len(vb) == 0 {
		return Vector{}
	}

	inB := make(map[any]struct{}, len(vb))
	for _, e := range vb {
		inB[key(e)] = struct{}{}
	}

	res := make(Vector, 0, min(len(va), len(vb)))
	for _, e := range va {
		k := key(e)
		if _, found := inB[k]; found {
			res = append(res, e)
			delete(inB, k) // keep the result unique
		}
	}
	return res
}

// Union returns the distinct elements of a followed by the distinct
// elements of b not already in a.
func Union(a, b any) Vector {
	va, vb := Vectorize(a), Vectorize(b)
	res := make(Vector, 0, len(va)+len(vb))
	seen := make(map[any]struct{}, len(va)+len(vb))
	for _, v := range []Vector{va, vb} {
		for _, e := range v {
			k := key(e)
			if _, added := seen[k]; !added {
				res = append(res, e)
				seen[k] = struct{}{}
			}
		}
	}
	return res
}

// Within reports, for each element of x, whether it occurs in xs.
func Within(x, xs any) []bool {
	v, set := Vectorize(x), Vectorize(xs)
	members := make(map[any]struct{}, len(set))
	for _, e := range set {
		members[key(e)] = struct{}{}
	}
	res := make([]bool, len(v))
	for i, e := range v {
		_, res[i] = members[key(e)]
	}
	return res
}

// CartesianProduct pairs every distinct element of x with every distinct
// element of y. Pairs are ordered by x first, then y.
func CartesianProduct(x, y any) []Vector {
	ux, uy := Unique(x), Unique(y)
	res := make([]Vector, 0, len(ux)*len(uy))
	for _, a := range ux {
		// recycling a single element against uy always succeeds
		rs, _ := Zip(Vector{a}, uy)
		res = append(res, rs...)
	}
	return res
}

// ExpandGrid pairs every element of xs with every element of ys. Unlike
// CartesianProduct duplicates are kept and pairs are ordered by ys first.
func ExpandGrid(xs, ys any) []Vector {
	vx, vy := Vectorize(xs), Vectorize(ys)
	res := make([]Vector, 0, len(vx)*len(vy))
	for _, b := range vy {
		for _, a := range vx {
			res = append(res, Vector{a, b})
		}
	}
	return res
}
