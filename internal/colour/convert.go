package colour

import (
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/lillib/internal/random"
)

// InvertColour replaces each RGB channel c with 255-c and, with withAlpha, the
// alpha channel a with 1-a. Values outside their usual range are not clamped.
func InvertColour(text string, withAlpha bool) string {
	c := ParseColour(text, withAlpha)
	out := make(Channels, len(c))
	for i, v := range c {
		if i == 3 {
			out[i] = 1 - v
		} else {
			out[i] = 255 - v
		}
	}
	return FormatColour(out, withAlpha)
}

// ColourToHex converts an rgb()/rgba() string to "#rrggbb". With withAlpha the
// value round(a*100) is appended as zero-padded decimal digits, so an alpha of
// 0.5 becomes "#rrggbb50". The alpha part is not a hex pair: an alpha of 1.0
// is written as three digits, "#rrggbb100".
func ColourToHex(text string, withAlpha bool) string {
	c := ParseColour(text, withAlpha)

	var sb strings.Builder
	sb.WriteString("#")
	for i := range 3 {
		sb.WriteString(pad2(formatInt(c.at(i), 16)))
	}
	if withAlpha {
		sb.WriteString(pad2(formatInt(math.Round(c.at(3)*100), 10)))
	}
	return sb.String()
}

// HexToColour converts "#rrggbb" to "rgb(r, g, b)". With withAlpha the digits
// following the blue pair are read as decimal and divided by 100, the inverse
// of ColourToHex.
func HexToColour(text string, withAlpha bool) string {
	s := strings.TrimPrefix(text, "#")

	c := make(Channels, 0, 4)
	for i := range 3 {
		c = append(c, parseHexPair(s, i*2))
	}
	if withAlpha {
		rest := ""
		if len(s) > 6 {
			rest = s[6:]
		}
		c = append(c, parseIntPrefix(rest)/100)
	}
	return FormatColour(c, withAlpha)
}

// RandomColour returns a random rgb() colour or, with withAlpha, an rgba()
// colour whose alpha is rounded to one decimal place. A nil g uses the
// default generator.
func RandomColour(g *random.Generator, withAlpha bool) string {
	if g == nil {
		g = random.Default()
	}

	c := make(Channels, 0, 4)
	for range 3 {
		v, _ := g.Int(0, 256)
		c = append(c, float64(v))
	}
	if withAlpha {
		a, _ := g.Float(0, 1)
		c = append(c, math.Round(a*10)/10)
	}
	return FormatColour(c, withAlpha)
}

func parseHexPair(s string, offset int) float64 {
	if offset+2 > len(s) {
		return math.NaN()
	}
	v, err := strconv.ParseUint(s[offset:offset+2], 16, 8)
	if err != nil {
		return math.NaN()
	}
	return float64(v)
}

// formatInt renders the integer part of v in the given base, or "NaN".
func formatInt(v float64, base int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return strconv.FormatInt(int64(v), base)
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
