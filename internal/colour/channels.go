// Package colour converts between rgb()/rgba() colour strings, hexadecimal
// colour strings and their numeric channels.
//
// Parsing never fails: malformed or missing components come back as NaN and
// flow through every transformation unchanged.
package colour

import (
	"math"
	"strconv"
	"strings"
)

// Channels holds colour components in order: red, green, blue and, optionally,
// alpha. RGB values are integers in [0, 255]; alpha is in [0, 1].
type Channels []float64

// at returns the i-th channel, or NaN if c is too short.
func (c Channels) at(i int) float64 {
	if i < len(c) {
		return c[i]
	}
	return math.NaN()
}

// ParseColour parses "rgb(r, g, b)" or, with withAlpha, "rgba(r, g, b, a)".
//
// The text is split on commas, the "rgb("/"rgba(" prefix, one leading space per
// component and the closing parenthesis are stripped, then r, g and b are read
// as integers and a as a float. Components that do not start with a number are
// NaN.
func ParseColour(text string, withAlpha bool) Channels {
	parts := strings.Split(text, ",")
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	r := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(part(0), "rgba("), "rgb("), " ")
	g := strings.TrimPrefix(part(1), " ")
	b := strings.TrimSuffix(strings.TrimPrefix(part(2), " "), ")")

	out := Channels{parseIntPrefix(r), parseIntPrefix(g), parseIntPrefix(b)}
	if withAlpha {
		a := strings.TrimSuffix(strings.TrimPrefix(part(3), " "), ")")
		out = append(out, parseFloatPrefix(a))
	}
	return out
}

// FormatColour renders c as "rgb(R, G, B)" or, with withAlpha,
// "rgba(R, G, B, A)" with A printed to one decimal place.
func FormatColour(c Channels, withAlpha bool) string {
	var sb strings.Builder
	if withAlpha {
		sb.WriteString("rgba(")
	} else {
		sb.WriteString("rgb(")
	}
	for i := range 3 {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c.at(i), 'f', -1, 64))
	}
	if withAlpha {
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatFloat(c.at(3), 'f', 1, 64))
	}
	sb.WriteString(")")
	return sb.String()
}

// parseIntPrefix reads an optionally signed run of leading decimal digits.
func parseIntPrefix(s string) float64 {
	end := signLen(s)
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseFloatPrefix reads the longest leading decimal number, with an optional
// fraction and exponent.
func parseFloatPrefix(s string) float64 {
	end := signLen(s)
	mantissa := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		mantissa++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
			mantissa++
		}
		if mantissa > 0 {
			end = frac
		}
	}
	if mantissa == 0 {
		return math.NaN()
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		exp += signLen(s[exp:])
		start := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func signLen(s string) int {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
