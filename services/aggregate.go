package services

import (
	"cmp"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"bikeshare-explorer/models"
)

// Mode returns the most frequent value. Ties go to the smallest value.
// ok is false for empty input.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := 0
	for v, c := range counts {
		if c > best || (c == best && v < mode) {
			mode, best = v, c
		}
	}
	return mode, best > 0
}

// ValueCounts tallies values, most frequent first, ties by value.
// Empty strings are missing values and are skipped.
func ValueCounts(values []string) []models.ValueCount {
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}

	out := make([]models.ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, models.ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// TopPair returns the most frequent (start, end) combination, or nil when
// there are no complete pairs. starts and ends must have equal length.
func TopPair(starts, ends []string) *models.StationPair {
	type key struct{ start, end string }
	counts := make(map[key]int)
	for i := range starts {
		if starts[i] == "" || ends[i] == "" {
			continue
		}
		counts[key{starts[i], ends[i]}]++
	}

	var top *models.StationPair
	for k, c := range counts {
		if top == nil || c > top.Count ||
			(c == top.Count && (k.start < top.Start || (k.start == top.Start && k.end < top.End))) {
			top = &models.StationPair{Start: k.start, End: k.end, Count: c}
		}
	}
	return top
}

// Sum and Mean delegate to gonum; Mean of no values is NaN.
func Sum(x []float64) float64  { return floats.Sum(x) }
func Mean(x []float64) float64 { return stat.Mean(x, nil) }

// MinMax returns the extremes of x; ok is false for empty input.
func MinMax(x []float64) (min, max float64, ok bool) {
	if len(x) == 0 {
		return 0, 0, false
	}
	return floats.Min(x), floats.Max(x), true
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
