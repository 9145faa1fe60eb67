package stats

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"juicer/vec"
)

// probTolerance bounds how far sampling weights may sum away from 1.
const probTolerance = 1e-12

// Sampler draws random samples from its own source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded with seed. Samplers with the same seed
// produce the same draws.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DefaultSampler returns a Sampler with a random seed.
func DefaultSampler() *Sampler {
	return NewSampler(rand.Uint64())
}

// Sample draws size elements from x using DefaultSampler.
func Sample(x any, size int, prob any, replace bool) (vec.Vector, error) {
	return DefaultSampler().Sample(x, size, prob, replace)
}

// Runif draws n uniform values from [min, max) using DefaultSampler.
func Runif(n int, min, max float64) vec.Vector {
	return DefaultSampler().Runif(n, min, max)
}

// Sample draws size elements from x.
//
// prob holds one weight per element of x and must sum to 1; nil means
// uniform weights. With replace unset each element is drawn at most once,
// the weights of the remaining elements being rescaled after each draw, and
// at least size elements must have a positive weight.
func (s *Sampler) Sample(x any, size int, prob any, replace bool) (vec.Vector, error) {
	space := vec.Vectorize(x).Clone()
	weights, err := s.weights(len(space), prob)
	if err != nil {
		return nil, err
	}
	if !replace && size > len(space) {
		return nil, errors.Wrapf(vec.ErrDimensionMismatch, "sample: %d draws without replacement from %d elements", size, len(space))
	}
	if size > 0 && len(space) == 0 {
		return nil, errors.Wrap(ErrEmpty, "sample")
	}
	if !replace {
		positive := 0
		for _, w := range weights {
			if w > 0 {
				positive++
			}
		}
		if size > positive {
			return nil, errors.Wrapf(ErrProbability, "sample: %d draws without replacement from %d elements with positive weight", size, positive)
		}
	}

	res := make(vec.Vector, 0, max(size, 0))
	for range size {
		i := s.draw(weights)
		res = append(res, space[i])
		if replace {
			continue
		}
		space = append(space[:i], space[i+1:]...)
		weights = append(weights[:i], weights[i+1:]...)
		total := 0.0
		for _, w := range weights {
			total += w
		}
		for j := range weights {
			weights[j] /= total
		}
	}
	return res, nil
}

func (s *Sampler) weights(n int, prob any) ([]float64, error) {
	if prob == nil {
		w := make([]float64, n)
		for i := range w {
			w[i] = 1 / float64(n)
		}
		return w, nil
	}
	p := vec.Vectorize(prob)
	if len(p) != n {
		return nil, errors.Wrapf(vec.ErrDimensionMismatch, "sample: %d probabilities for %d elements", len(p), n)
	}
	w := make([]float64, n)
	total := 0.0
	for i, e := range p {
		f, ok := vec.Float(e)
		if !ok || f < 0 {
			return nil, errors.Wrapf(ErrProbability, "sample: weight %d is %v", i, e)
		}
		w[i] = f
		total += f
	}
	if math.Abs(1-total) > probTolerance {
		return nil, errors.Wrapf(ErrProbability, "sample: weights sum to %v", total)
	}
	return w, nil
}

// draw picks an index with probability proportional to its weight.
func (s *Sampler) draw(weights []float64) int {
	p := s.rng.Float64()
	cum := 0.0
	for i, w := range weights {
		cum += w
		if p < cum {
			return i
		}
	}
	// rounding left p above the last cumulative weight
	for i := len(weights) - 1; i > 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}

// Runif draws n uniform values from [min, max).
func (s *Sampler) Runif(n int, min, max float64) vec.Vector {
	return vec.Map(vec.SeqLen(n), func(any, int) any {
		return min + (max-min)*s.rng.Float64()
	})
}
