// Package random provides uniform float and integer draws over half-open ranges
// backed by an injectable source.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrRange is returned when a range or count argument is out of its valid domain.
var ErrRange = errors.New("range error")

// Source produces uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 {
	return f()
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() // #nosec G404 -- not used for security
}

var defaultGenerator = &Generator{src: globalSource{}}

// Generator draws values from a Source.
type Generator struct {
	src Source
}

// New returns a Generator reading from src.
// A nil src falls back to the process-wide source.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeeded returns a deterministic Generator backed by a PCG source.
// Seeded generators are not safe for concurrent use.
func NewSeeded(seed int64) *Generator {
	// #nosec G115 G404 -- reinterpreting the seed bits is intended
	return &Generator{src: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Default returns the Generator backed by the process-wide source.
func Default() *Generator {
	return defaultGenerator
}

// Float returns a value drawn uniformly from [min, max).
func (g *Generator) Float(min, max float64) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %v is greater than max %v", ErrRange, min, max)
	}
	x := g.src.Float64()
	var v float64
	if span := max - min; !math.IsInf(span, 0) {
		v = x*span + min
	} else {
		// The span overflows, so interpolate between the endpoints instead.
		v = min*(1-x) + max*x
	}
	if v >= max && max > min {
		v = math.Nextafter(max, min)
	}
	if v < min {
		v = min
	}
	return v, nil
}

// Int returns an integer drawn uniformly from [min, max).
// An empty range (min == max) yields min.
func (g *Generator) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d is greater than max %d", ErrRange, min, max)
	}
	if min == max {
		return min, nil
	}
	// The span is taken in float64 so ranges wider than the int range
	// cannot wrap around.
	lo, hi := float64(min), float64(max)
	f := math.Floor(g.src.Float64()*(hi-lo) + lo)
	switch {
	case f >= hi:
		return max - 1, nil
	case f <= lo:
		return min, nil
	}
	v := int(f)
	if v >= max {
		v = max - 1
	}
	return v, nil
}

// IntN returns an index drawn uniformly from [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	v, _ := g.Int(0, n)
	return v
}

// UniformFloat draws from [min, max) using the default generator.
func UniformFloat(min, max float64) (float64, error) {
	return defaultGenerator.Float(min, max)
}

// UniformInt draws from [min, max) using the default generator.
func UniformInt(min, max int) (int, error) {
	return defaultGenerator.Int(min, max)
}
