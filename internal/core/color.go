package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. Values compare structurally with ==.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from three channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors used by the platform.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorGray  = RGB(128, 128, 128)
)

// String returns the canonical "rgb(r, g, b)" form.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// Luminance returns the relative luminance in [0, 1].
func (c Color) Luminance() float64 {
	_, y, _ := c.toColorful().Xyz()
	return ClampF(y, 0, 1)
}

// contrastPivot is the luminance where black and white text contrast equally.
const contrastPivot = 0.179

// Contrast returns black or white, whichever reads better on top of c.
func (c Color) Contrast() Color {
	if c.Luminance() > contrastPivot {
		return ColorBlack
	}
	return ColorWhite
}

// Blend mixes c toward other by t in RGB space (0 keeps c, 1 yields other).
func (c Color) Blend(other Color, t float64) Color {
	mixed := c.toColorful().BlendRgb(other.toColorful(), ClampF(t, 0, 1))
	return fromColorful(mixed)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts "rgb(r, g, b)", "rgba(r, g, b, a)" and "#rrggbb".
// The alpha channel of rgba is validated but dropped.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[5:len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[4:len(s)-1], 3
	default:
		return Color{}, fmt.Errorf("color: unrecognized format %q", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("color: expected %d components in %q", want, s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("color: channel %q out of range in %q", parts[i], s)
		}
		ch[i] = uint8(v)
	}

	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("color: alpha %q out of range in %q", parts[3], s)
		}
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseHex accepts only the six digit form.
func parseHex(s string) (Color, error) {
	if len(s) != 7 {
		return Color{}, fmt.Errorf("color: bad hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color: bad hex color %q: %w", s, err)
	}
	return fromColorful(c), nil
}
