// Package sampling shuffles slices and draws elements from them, with or
// without replacement.
//
// Every function takes a *random.Generator; nil selects random.Default().
// Arguments are validated before any value is drawn, so a failed call never
// consumes randomness or returns partial results.
package sampling

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/lillib/internal/random"
)

func generator(g *random.Generator) *random.Generator {
	if g == nil {
		return random.Default()
	}
	return g
}

// Shuffle permutes s in place using Fisher-Yates.
func Shuffle[T any](g *random.Generator, s []T) {
	g = generator(g)
	for i := len(s) - 1; i > 0; i-- {
		j := g.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// ShuffledCopy returns a shuffled copy of s, leaving s untouched.
func ShuffledCopy[T any](g *random.Generator, s []T) []T {
	out := slices.Clone(s)
	Shuffle(g, out)
	return out
}

// DrawWithReplacement returns n elements drawn independently and uniformly
// from s, in draw order. Duplicates are allowed.
func DrawWithReplacement[T any](g *random.Generator, s []T, n int) ([]T, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: draw count must be at least 1, got %d", random.ErrRange, n)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: cannot draw from an empty sequence", random.ErrRange)
	}

	g = generator(g)
	out := make([]T, n)
	for i := range out {
		out[i] = s[g.IntN(len(s))]
	}
	return out, nil
}

// DrawWithoutReplacement returns n pairwise distinct values drawn from s, in
// draw order. Distinctness is by value: repeated values in s count once, and
// n may not exceed the number of distinct values.
func DrawWithoutReplacement[T comparable](g *random.Generator, s []T, n int) ([]T, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: draw count must be at least 1, got %d", random.ErrRange, n)
	}

	remaining := distinct(s)
	if n > len(remaining) {
		return nil, fmt.Errorf("%w: cannot draw %d distinct values from %d", random.ErrRange, n, len(remaining))
	}

	g = generator(g)
	out := make([]T, 0, n)
	for range n {
		v := remaining[g.IntN(len(remaining))]
		out = append(out, v)
		idx := slices.Index(remaining, v)
		remaining = slices.Delete(remaining, idx, idx+1)
	}
	return out, nil
}

// Choice returns a single element drawn uniformly from s.
func Choice[T any](g *random.Generator, s []T) (T, error) {
	var zero T
	out, err := DrawWithReplacement(g, s, 1)
	if err != nil {
		return zero, err
	}
	return out[0], nil
}

// distinct returns the values of s in first-seen order with repeats dropped.
func distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
