package frame_test

import (
	"context"
	"testing"

	"juicer/frame"
	"juicer/vec"
)

// heavyCalc simulates a CPU intensive summary
func heavyCalc(x int) int {
	for i := 0; i < 1000; i++ {
		x = (x + i*i) % 10000
	}
	return x
}

// BenchmarkUnified_Tapply compares serial and parallel group application
// across different workloads.
func BenchmarkUnified_Tapply(b *testing.B) {
	size := 100_000
	input := vec.SeqLen(size)
	key := vec.Map(input, func(v any, _ int) any { return v.(int) % 1000 })

	workloads := []struct {
		name    string
		summary func(vec.Vector) int
	}{
		{
			name:    "Light",
			summary: func(g vec.Vector) int { return len(g) },
		},
		{
			name: "Heavy",
			summary: func(g vec.Vector) int {
				total := 0
				for _, e := range g {
					total += heavyCalc(e.(int))
				}
				return total
			},
		},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Serial", func(b *testing.B) {
				for b.Loop() {
					_, _ = frame.Tapply(input, key, func(g frame.Value) any {
						return wl.summary(g.(vec.Vector))
					})
				}
			})

			b.Run("Parallel", func(b *testing.B) {
				for b.Loop() {
					_, _, _ = frame.TapplyContext(context.Background(), input, key, func(g frame.Value) (any, error) {
						return wl.summary(g.(vec.Vector)), nil
					})
				}
			})
		})
	}
}

// BenchmarkPartition measures the order-gather-scan pass over tables.
func BenchmarkPartition(b *testing.B) {
	size := 100_000
	ids := vec.SeqLen(size)
	key := vec.Map(ids, func(v any, _ int) any { return v.(int) % 97 })
	df := frame.MustNew([]vec.Vector{ids, key}, frame.WithColumnNames("id", "key"))

	b.Run("Vector", func(b *testing.B) {
		for b.Loop() {
			_, _ = frame.Partition(ids, key)
		}
	})

	b.Run("Table", func(b *testing.B) {
		for b.Loop() {
			_, _ = frame.Partition(df, key)
		}
	})
}
