package colour

import (
	"encoding/json"
	"fmt"
	"math"
)

// RGB represents an 8-bit colour, used where channels must be displayable.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGB clamps the first three channels into 8-bit values. NaN becomes 0.
func (c Channels) RGB() RGB {
	return RGB{R: clampByte(c.at(0)), G: clampByte(c.at(1)), B: clampByte(c.at(2))}
}

func clampByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// Description gathers every representation lillib knows for one colour.
type Description struct {
	Input    string   `json:"input"`
	RGB      string   `json:"rgb"`
	Hex      string   `json:"hex"`
	Inverted string   `json:"inverted"`
	Channels []string `json:"channels"`
	Alpha    bool     `json:"alpha"`
}

// Describe builds a Description of an rgb()/rgba() string.
func Describe(text string, withAlpha bool) Description {
	c := ParseColour(text, withAlpha)
	channels := make([]string, len(c))
	for i, v := range c {
		channels[i] = fmt.Sprint(v)
	}
	return Description{
		Input:    text,
		RGB:      FormatColour(c, withAlpha),
		Hex:      ColourToHex(text, withAlpha),
		Inverted: InvertColour(text, withAlpha),
		Channels: channels,
		Alpha:    withAlpha,
	}
}

// DescriptionsToJSON renders descriptions as indented JSON.
func DescriptionsToJSON(descs []Description) ([]byte, error) {
	out := struct {
		Count  int           `json:"count"`
		Colors []Description `json:"colors"`
	}{
		Count:  len(descs),
		Colors: descs,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return data, nil
}
