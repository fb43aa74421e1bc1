package styledline

import (
	"fmt"
	"image/color"
)

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231)
	// Generated programmatically below

	// Grayscale (232-255)
	// Generated programmatically below
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// IndexedColor is a 256-color palette entry, resolved when rendering.
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color. The real value depends on the palette; use ResolveColor.
func (c *IndexedColor) RGBA() (r, g, b, a uint32) {
	return 0, 0, 0, 0xffff
}

// NamedColor is one of go-ansicode's named colors: 0-15 for the ANSI colors,
// or one of the NamedColor* constants below.
type NamedColor struct {
	Name int
}

// RGBA implements color.Color. The real value depends on the palette; use ResolveColor.
func (c *NamedColor) RGBA() (r, g, b, a uint32) {
	return 0, 0, 0, 0xffff
}

// Named colors above the 16 ANSI colors, numbered as go-ansicode reports them.
const (
	NamedColorForeground = 256 + iota
	NamedColorBackground
	NamedColorCursor
	NamedColorDimBlack
	NamedColorDimRed
	NamedColorDimGreen
	NamedColorDimYellow
	NamedColorDimBlue
	NamedColorDimMagenta
	NamedColorDimCyan
	NamedColorDimWhite
	NamedColorBrightForeground
	NamedColorDimForeground
)

// colorScheme maps decoded colors to concrete RGBA values.
type colorScheme struct {
	palette *[256]color.RGBA
	fg, bg  color.RGBA
}

// defaultScheme reads the package defaults at call time, so changes to them apply.
func defaultScheme() colorScheme {
	return colorScheme{palette: &DefaultPalette, fg: DefaultForeground, bg: DefaultBackground}
}

// ResolveColor converts a decoded color to RGBA with the default palette.
// A nil color is the default foreground or background, depending on fg.
func ResolveColor(c color.Color, fg bool) color.RGBA {
	return defaultScheme().resolve(c, fg)
}

func (cs colorScheme) fallback(fg bool) color.RGBA {
	if fg {
		return cs.fg
	}
	return cs.bg
}

func (cs colorScheme) resolve(c color.Color, fg bool) color.RGBA {
	switch v := c.(type) {
	case nil:
		return cs.fallback(fg)
	case color.RGBA:
		return v
	case *IndexedColor:
		if v.Index < 0 || v.Index > 255 {
			return cs.fallback(fg)
		}
		return cs.palette[v.Index]
	case *NamedColor:
		return cs.named(v.Name, fg)
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (cs colorScheme) named(name int, fg bool) color.RGBA {
	switch {
	case name >= 0 && name < 16:
		return cs.palette[name]
	case name >= NamedColorDimBlack && name <= NamedColorDimWhite:
		return dim(cs.palette[name-NamedColorDimBlack])
	case name == NamedColorBrightForeground:
		return cs.palette[15]
	case name == NamedColorDimForeground:
		return dim(cs.fg)
	}
	return cs.fallback(fg)
}

// hex formats a decoded color as "#rrggbb". The default color (nil) is "".
func (cs colorScheme) hex(c color.Color, fg bool) string {
	if c == nil {
		return ""
	}
	v := cs.resolve(c, fg)
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// dim scales a color to two thirds of its brightness.
func dim(c color.RGBA) color.RGBA {
	c.R = uint8(uint16(c.R) * 2 / 3)
	c.G = uint8(uint16(c.G) * 2 / 3)
	c.B = uint8(uint16(c.B) * 2 / 3)
	return c
}
