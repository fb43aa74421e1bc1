package styledline

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFinder locates font files by name (useful for avoiding font library dependencies).
type FontFinder interface {
	// Find returns the filesystem path to a font file matching the given name.
	Find(name string) (string, error)
}

// ScreenshotConfig controls how lines are rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil and FontName is empty, uses basicfont.Face7x13.
	Font font.Face

	// FontFinder is used to find fonts by name. Optional.
	FontFinder FontFinder

	// FontName is the font name to find using FontFinder.
	FontName string

	// FontSize is the font size when using FontFinder. Default 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette is the 256-color palette. If nil, uses DefaultPalette.
	Palette *[256]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA

	// Cols fixes the image width in cells; longer lines are truncated.
	// If zero, the widest line decides.
	Cols int
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}

// Screenshot renders lines to an RGBA image using default settings (basicfont, default palette).
func Screenshot(lines []Line) *image.RGBA {
	return ScreenshotWithConfig(lines, &ScreenshotConfig{})
}

// ScreenshotWithConfig renders lines to an RGBA image, one row of cells per line,
// with custom font and colors.
func ScreenshotWithConfig(lines []Line, cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil && cfg.FontFinder != nil && cfg.FontName != "" {
		// Use FontFinder to load font by name
		size := cfg.FontSize
		if size == 0 {
			size = 14
		}
		if path, err := cfg.FontFinder.Find(cfg.FontName); err == nil {
			if loadedFace, err := LoadFont(path, size); err == nil {
				face = loadedFace
			}
		}
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	metrics := face.Metrics()
	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		// Measure a character to get width
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = metrics.Height.Ceil()
	}

	scheme := defaultScheme()
	if cfg.Palette != nil {
		scheme.palette = cfg.Palette
	}
	if cfg.DefaultFG != nil {
		scheme.fg = *cfg.DefaultFG
	}
	if cfg.DefaultBG != nil {
		scheme.bg = *cfg.DefaultBG
	}

	cols := cfg.Cols
	if cols <= 0 {
		for _, line := range lines {
			if w := line.Width(); w > cols {
				cols = w
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cellWidth, len(lines)*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(scheme.bg), image.Point{}, draw.Src)

	for row, line := range lines {
		if line.Width() > cols {
			line = line.Truncate(cols)
		}

		y := row * cellHeight
		baseline := y + metrics.Ascent.Ceil()
		col := 0

		for _, run := range line.runs {
			style := run.Decode()

			fg := scheme.resolve(style.Fg, true)
			bg := scheme.resolve(style.Bg, false)

			// Handle reverse video
			if style.HasFlag(StyleFlagReverse) {
				fg, bg = bg, fg
			}

			// Handle dim
			if style.HasFlag(StyleFlagDim) {
				fg = dim(fg)
			}

			for _, ch := range run.Text {
				w := runeWidth(ch)
				if w == 0 {
					continue
				}

				x := col * cellWidth
				cell := image.Rect(x, y, x+w*cellWidth, y+cellHeight)
				draw.Draw(img, cell, image.NewUniform(bg), image.Point{}, draw.Src)

				if ch != ' ' && !style.HasFlag(StyleFlagHidden) {
					d := &font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(fg),
						Face: face,
						Dot:  fixed.P(x, baseline),
					}
					d.DrawString(string(ch))
				}

				if style.Flags&anyUnderline != 0 {
					underlineColor := fg
					if style.UnderlineColor != nil {
						underlineColor = scheme.resolve(style.UnderlineColor, true)
					}
					underlineY := min(baseline+2, y+cellHeight-1)
					drawHLine(img, cell.Min.X, cell.Max.X, underlineY, underlineColor)
				}

				if style.HasFlag(StyleFlagStrike) {
					drawHLine(img, cell.Min.X, cell.Max.X, y+cellHeight/2, fg)
				}

				col += w
			}
		}
	}

	return img
}

// drawHLine draws a one pixel horizontal line from x0 (inclusive) to x1 (exclusive).
func drawHLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, c)
	}
}
