package stats_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"

	"juicer/stats"
	"juicer/vec"
)

func TestReducers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(any) (any, error)
		in   any
		want any
	}{
		{"SumInts", stats.Sum, vec.Vector{1, 2, 3}, 6},
		{"SumMixed", stats.Sum, vec.Vector{1, 2.5}, 3.5},
		{"SumEmpty", stats.Sum, vec.Vector{}, 0},
		{"ProdInts", stats.Prod, []int{2, 3, 4}, 24},
		{"ProdEmpty", stats.Prod, vec.Vector{}, 1},
		{"SumScalar", stats.Sum, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.in)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}

	if _, err := stats.Sum(vec.Vector{1, "a"}); !errors.Is(err, vec.ErrType) {
		t.Errorf("Sum() error = %v, want %v", err, vec.ErrType)
	}
}

func TestMeanMinMax(t *testing.T) {
	m, err := stats.Mean(vec.Vector{1, 2, 3, 4})
	if err != nil || m != 2.5 {
		t.Errorf("Mean() = %v, %v, want 2.5", m, err)
	}
	if _, err := stats.Mean(vec.Vector{}); !errors.Is(err, stats.ErrEmpty) {
		t.Errorf("Mean() error = %v, want %v", err, stats.ErrEmpty)
	}

	lo, err := stats.Min(vec.Vector{3, 1}, 2)
	if err != nil || lo != 1 {
		t.Errorf("Min() = %v, %v, want 1", lo, err)
	}
	hi, err := stats.Max(vec.Vector{3, 1}, 4.5)
	if err != nil || hi != 4.5 {
		t.Errorf("Max() = %v, %v, want 4.5", hi, err)
	}
	if _, err := stats.Max(); !errors.Is(err, stats.ErrEmpty) {
		t.Errorf("Max() error = %v, want %v", err, stats.ErrEmpty)
	}
}

func TestCumulative(t *testing.T) {
	sums, err := stats.Cumsum(vec.Vector{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{1, 3, 6, 10}, sums); diff != "" {
		t.Errorf("Cumsum() mismatch (-want +got):\n%s", diff)
	}

	prods, err := stats.Cumprod(vec.Vector{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{1, 2, 6, 24}, prods); diff != "" {
		t.Errorf("Cumprod() mismatch (-want +got):\n%s", diff)
	}

	// each call starts from a fresh accumulator
	again, _ := stats.Cumsum(vec.Vector{1, 2, 3, 4})
	if diff := cmp.Diff(sums, again); diff != "" {
		t.Errorf("Cumsum() not repeatable (-want +got):\n%s", diff)
	}
}

func TestMath(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	got, err := stats.Sqrt(vec.Vector{4, 9})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{2.0, 3.0}, got, approx); diff != "" {
		t.Errorf("Sqrt() mismatch (-want +got):\n%s", diff)
	}

	got, err = stats.Round(vec.Vector{1.2345, -2.5}, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{1.23, -2.5}, got, approx); diff != "" {
		t.Errorf("Round() mismatch (-want +got):\n%s", diff)
	}

	got, err = stats.Pow(vec.Vector{2, 3}, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{4.0, 9.0}, got, approx); diff != "" {
		t.Errorf("Pow() mismatch (-want +got):\n%s", diff)
	}

	unaries := []struct {
		name string
		fn   func(any) (vec.Vector, error)
		in   vec.Vector
		want vec.Vector
	}{
		{"Floor", stats.Floor, vec.Vector{1.5, -1.5, 2}, vec.Vector{1.0, -2.0, 2.0}},
		{"Ceil", stats.Ceil, vec.Vector{1.5, -1.5, 2}, vec.Vector{2.0, -1.0, 2.0}},
		{"Sin", stats.Sin, vec.Vector{0, math.Pi / 2}, vec.Vector{0.0, 1.0}},
		{"Cos", stats.Cos, vec.Vector{0, math.Pi}, vec.Vector{1.0, -1.0}},
		{"Tan", stats.Tan, vec.Vector{0, math.Pi / 4}, vec.Vector{0.0, 1.0}},
	}
	for _, tt := range unaries {
		got, err := tt.fn(tt.in)
		if err != nil {
			t.Fatalf("%s() error: %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("%s() mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	got, err = stats.Log(math.E)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{1.0}, got, approx); diff != "" {
		t.Errorf("Log() mismatch (-want +got):\n%s", diff)
	}

	if _, err := stats.Exp("x"); !errors.Is(err, vec.ErrType) {
		t.Errorf("Exp() error = %v, want %v", err, vec.ErrType)
	}
	if _, err := stats.Pow(vec.Vector{1, 2, 3}, vec.Vector{1, 2}); !errors.Is(err, vec.ErrIncompatibleLength) {
		t.Errorf("Pow() error = %v, want %v", err, vec.ErrIncompatibleLength)
	}
}

func TestSample(t *testing.T) {
	space := vec.Seq(1, 10)

	t.Run("Deterministic", func(t *testing.T) {
		a, err := stats.NewSampler(42).Sample(space, 20, nil, true)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		b, _ := stats.NewSampler(42).Sample(space, 20, nil, true)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("same seed gave different samples (-first +second):\n%s", diff)
		}
		if !vec.All(vec.Within(a, space)) {
			t.Errorf("sampled %v outside the sample space", a)
		}
	})

	t.Run("WithoutReplacement", func(t *testing.T) {
		got, err := stats.NewSampler(7).Sample(space, 10, nil, false)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if diff := cmp.Diff(space, vec.Sort(got, false)); diff != "" {
			t.Errorf("sampling everything without replacement is not a permutation (-want +got):\n%s", diff)
		}
	})

	t.Run("Weighted", func(t *testing.T) {
		got, err := stats.NewSampler(1).Sample(vec.Vector{"a", "b"}, 50, vec.Vector{0, 1}, true)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if diff := cmp.Diff(vec.Rep("b", 50), got); diff != "" {
			t.Errorf("zero-weight element was drawn (-want +got):\n%s", diff)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		s := stats.NewSampler(1)
		if _, err := s.Sample(vec.Vector{1, 2}, 1, vec.Vector{0.5, 0.4}, true); !errors.Is(err, stats.ErrProbability) {
			t.Errorf("Sample() error = %v, want %v", err, stats.ErrProbability)
		}
		if _, err := s.Sample(vec.Vector{1, 2}, 1, vec.Vector{1}, true); !errors.Is(err, vec.ErrDimensionMismatch) {
			t.Errorf("Sample() error = %v, want %v", err, vec.ErrDimensionMismatch)
		}
		if _, err := s.Sample(vec.Vector{1, 2}, 3, nil, false); !errors.Is(err, vec.ErrDimensionMismatch) {
			t.Errorf("Sample() error = %v, want %v", err, vec.ErrDimensionMismatch)
		}
		if got, err := s.Sample(vec.Vector{"a", "b", "c"}, 2, vec.Vector{1, 0, 0}, false); !errors.Is(err, stats.ErrProbability) {
			t.Errorf("Sample() = %v, %v, want error %v", got, err, stats.ErrProbability)
		}
	})

	t.Run("WeightedWithoutReplacement", func(t *testing.T) {
		for seed := range uint64(20) {
			got, err := stats.NewSampler(seed).Sample(vec.Vector{"a", "b", "c"}, 2, vec.Vector{0.5, 0, 0.5}, false)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(vec.Vector{"a", "c"}, vec.Sort(got, false)); diff != "" {
				t.Errorf("seed %d drew a zero-weight element (-want +got):\n%s", seed, diff)
			}
		}
	})
}

func TestRunif(t *testing.T) {
	got := stats.NewSampler(3).Runif(100, -1, 1)
	if len(got) != 100 {
		t.Fatalf("Runif() returned %d values, want 100", len(got))
	}
	for _, e := range got {
		f := e.(float64)
		if f < -1 || f >= 1 {
			t.Errorf("Runif() value %v outside [-1, 1)", f)
		}
	}
}

func TestPasteDateStamp(t *testing.T) {
	if got := stats.Paste(vec.Vector{"a", 1, true}, "-"); got != "a-1-true" {
		t.Errorf("Paste() = %q, want %q", got, "a-1-true")
	}
	day := time.Date(2014, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := stats.DateStamp(day); got != "2014-03-07" {
		t.Errorf("DateStamp() = %q, want %q", got, "2014-03-07")
	}
}
