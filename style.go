package styledline

import (
	"image/color"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// StyleFlags is a bitmask of text rendering attributes.
type StyleFlags uint16

const (
	StyleFlagBold StyleFlags = 1 << iota
	StyleFlagDim
	StyleFlagItalic
	StyleFlagUnderline
	StyleFlagDoubleUnderline
	StyleFlagCurlyUnderline
	StyleFlagDottedUnderline
	StyleFlagDashedUnderline
	StyleFlagBlinkSlow
	StyleFlagBlinkFast
	StyleFlagReverse
	StyleFlagHidden
	StyleFlagStrike
)

const anyUnderline = StyleFlagUnderline | StyleFlagDoubleUnderline | StyleFlagCurlyUnderline | StyleFlagDottedUnderline | StyleFlagDashedUnderline

// Style is the decoded meaning of a run's style prefix.
// A nil color means the terminal default.
type Style struct {
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          StyleFlags
}

// HasFlag returns true if the specified flag is set.
func (s *Style) HasFlag(flag StyleFlags) bool {
	return s.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (s *Style) SetFlag(flag StyleFlags) {
	s.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (s *Style) ClearFlag(flag StyleFlags) {
	s.Flags &^= flag
}

// IsDefault returns true if the style has no attributes and default colors.
func (s *Style) IsDefault() bool {
	return s.Flags == 0 && s.Fg == nil && s.Bg == nil && s.UnderlineColor == nil
}

// Decode interprets the run's style prefix.
func (r Run) Decode() Style {
	return DecodeStyle(r.Style)
}

// DecodeStyle interprets the SGR sequences in a style prefix, in order.
// Sequences with another action character, and malformed bytes, are skipped.
func DecodeStyle(prefix string) Style {
	var d styleDecoder
	dec := ansicode.NewDecoder(&d)
	for _, seq := range splitSequences(prefix) {
		if seq[len(seq)-1] != 'm' {
			continue
		}
		for _, attr := range sgrAttributes(seq) {
			dec.Write([]byte(attr))
		}
	}
	return d.style
}

// sgrAttributes splits an SGR sequence into one sequence per attribute, since
// go-ansicode reads any parameter after 4 as an underline style.
// Extended colors (38, 48, 58 followed by 5;n or 2;r;g;b) stay together.
func sgrAttributes(seq string) []string {
	body := seq[2 : len(seq)-1]
	if !strings.Contains(body, ";") {
		return []string{seq}
	}

	params := strings.Split(body, ";")
	var attrs []string
	for i := 0; i < len(params); {
		n := 1
		switch params[i] {
		case "38", "48", "58":
			if i+1 < len(params) {
				switch params[i+1] {
				case "5":
					n = 3
				case "2":
					n = 5
				}
			}
		}
		n = min(n, len(params)-i)
		attrs = append(attrs, "\x1b["+strings.Join(params[i:i+n], ";")+"m")
		i += n
	}
	return attrs
}

// splitSequences returns the complete CSI sequences in s.
func splitSequences(s string) []string {
	var seqs []string
	for i := 0; i < len(s); {
		if s[i] != 0x1b || i+1 >= len(s) || s[i+1] != '[' {
			i++
			continue
		}
		j := i + 2
		for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
			j++
		}
		if j >= len(s) {
			break
		}
		seqs = append(seqs, s[i:j+1])
		i = j + 1
	}
	return seqs
}

// styleDecoder receives decoded SGR attributes. Only SGR sequences are ever fed to it,
// so the embedded handler's other methods are never called.
type styleDecoder struct {
	ansicode.Handler
	style Style
}

func (d *styleDecoder) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	s := &d.style

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		*s = Style{}

	case ansicode.CharAttributeBold:
		s.SetFlag(StyleFlagBold)

	case ansicode.CharAttributeDim:
		s.SetFlag(StyleFlagDim)

	case ansicode.CharAttributeItalic:
		s.SetFlag(StyleFlagItalic)

	case ansicode.CharAttributeUnderline:
		s.ClearFlag(anyUnderline)
		s.SetFlag(StyleFlagUnderline)

	case ansicode.CharAttributeDoubleUnderline:
		s.ClearFlag(anyUnderline)
		s.SetFlag(StyleFlagDoubleUnderline)

	case ansicode.CharAttributeCurlyUnderline:
		s.ClearFlag(anyUnderline)
		s.SetFlag(StyleFlagCurlyUnderline)

	case ansicode.CharAttributeDottedUnderline:
		s.ClearFlag(anyUnderline)
		s.SetFlag(StyleFlagDottedUnderline)

	case ansicode.CharAttributeDashedUnderline:
		s.ClearFlag(anyUnderline)
		s.SetFlag(StyleFlagDashedUnderline)

	case ansicode.CharAttributeBlinkSlow:
		s.SetFlag(StyleFlagBlinkSlow)

	case ansicode.CharAttributeBlinkFast:
		s.SetFlag(StyleFlagBlinkFast)

	case ansicode.CharAttributeReverse:
		s.SetFlag(StyleFlagReverse)

	case ansicode.CharAttributeHidden:
		s.SetFlag(StyleFlagHidden)

	case ansicode.CharAttributeStrike:
		s.SetFlag(StyleFlagStrike)

	// go-ansicode reports SGR 21 as CancelBold; terminals draw it as a double underline.
	case ansicode.CharAttributeCancelBold:
		s.ClearFlag(anyUnderline)
		s.SetFlag(StyleFlagDoubleUnderline)

	case ansicode.CharAttributeCancelBoldDim:
		s.ClearFlag(StyleFlagBold | StyleFlagDim)

	case ansicode.CharAttributeCancelItalic:
		s.ClearFlag(StyleFlagItalic)

	case ansicode.CharAttributeCancelUnderline:
		s.ClearFlag(anyUnderline)

	case ansicode.CharAttributeCancelBlink:
		s.ClearFlag(StyleFlagBlinkSlow | StyleFlagBlinkFast)

	case ansicode.CharAttributeCancelReverse:
		s.ClearFlag(StyleFlagReverse)

	case ansicode.CharAttributeCancelHidden:
		s.ClearFlag(StyleFlagHidden)

	case ansicode.CharAttributeCancelStrike:
		s.ClearFlag(StyleFlagStrike)

	case ansicode.CharAttributeForeground:
		s.Fg = attrColor(attr)

	case ansicode.CharAttributeBackground:
		s.Bg = attrColor(attr)

	case ansicode.CharAttributeUnderlineColor:
		s.UnderlineColor = attrColor(attr)
	}
}

// attrColor extracts the color carried by the attribute.
// Returns nil (terminal default) when none is given, as for SGR 39 and 49.
func attrColor(attr ansicode.TerminalCharAttribute) color.Color {
	if attr.RGBColor != nil {
		return color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}
	}

	if attr.IndexedColor != nil {
		return &IndexedColor{Index: int(attr.IndexedColor.Index)}
	}

	if attr.NamedColor != nil {
		switch name := int(*attr.NamedColor); name {
		case NamedColorForeground, NamedColorBackground:
			return nil
		default:
			return &NamedColor{Name: name}
		}
	}

	return nil
}
