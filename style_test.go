package styledline

import (
	"image/color"
	"reflect"
	"testing"
)

func TestDecodeStyle_Flags(t *testing.T) {
	tests := []struct {
		prefix string
		flags  StyleFlags
	}{
		{"", 0},
		{CSIBold, StyleFlagBold},
		{"\x1b[1;3;4m", StyleFlagBold | StyleFlagItalic | StyleFlagUnderline},
		{"\x1b[2m\x1b[9m", StyleFlagDim | StyleFlagStrike},
		{"\x1b[1m\x1b[22m", 0},
		{"\x1b[4m\x1b[24m", 0},
		{"\x1b[5m\x1b[7m\x1b[8m", StyleFlagBlinkSlow | StyleFlagReverse | StyleFlagHidden},
		{"\x1b[1m\x1b[0m\x1b[3m", StyleFlagItalic},
		{"\x1b[1m\x1b[2J", StyleFlagBold},
		{"\x1b[21m", StyleFlagDoubleUnderline},
		{"\x1b[4m\x1b[21m", StyleFlagDoubleUnderline},
		{"\x1b[4;5m", StyleFlagUnderline | StyleFlagBlinkSlow},
	}

	for _, tt := range tests {
		s := DecodeStyle(tt.prefix)
		if s.Flags != tt.flags {
			t.Errorf("DecodeStyle(%q).Flags = %b, want %b", tt.prefix, s.Flags, tt.flags)
		}
	}
}

func TestDecodeStyle_Colors(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		fg     color.RGBA
		bg     color.RGBA
	}{
		{"default", "", DefaultForeground, DefaultBackground},
		{"bold red", CSIBoldRed, DefaultPalette[9], DefaultBackground},
		{"bold yellow", CSIBoldYellow, DefaultPalette[3], DefaultBackground},
		{"bold blue", CSIBoldBlue, DefaultPalette[12], DefaultBackground},
		{"bright fg", "\x1b[94m", DefaultPalette[12], DefaultBackground},
		{"background", "\x1b[41m", DefaultForeground, DefaultPalette[1]},
		{"rgb", "\x1b[38;2;10;20;30m", color.RGBA{10, 20, 30, 255}, DefaultBackground},
		{"default fg again", "\x1b[31m\x1b[39m", DefaultForeground, DefaultBackground},
		{"underline then fg", "\x1b[4;31m", DefaultPalette[1], DefaultBackground},
		{"underline then bg", "\x1b[1;4;42m", DefaultForeground, DefaultPalette[2]},
		{"extended colors in one sequence", "\x1b[4;38;2;10;20;30;48;5;200m", color.RGBA{10, 20, 30, 255}, DefaultPalette[200]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DecodeStyle(tt.prefix)
			if got := ResolveColor(s.Fg, true); got != tt.fg {
				t.Errorf("fg = %v, want %v", got, tt.fg)
			}
			if got := ResolveColor(s.Bg, false); got != tt.bg {
				t.Errorf("bg = %v, want %v", got, tt.bg)
			}
		})
	}
}

func TestDecodeStyle_DefaultIsNil(t *testing.T) {
	s := DecodeStyle("\x1b[31m\x1b[39m\x1b[42m\x1b[49m")
	if !s.IsDefault() {
		t.Errorf("DecodeStyle() = %+v, want default style", s)
	}
}

func TestRun_Decode(t *testing.T) {
	r := Parse(CSIBoldRed + "error").Run(0)
	s := r.Decode()

	if !s.HasFlag(StyleFlagBold) {
		t.Error("expected bold")
	}
	if !reflect.DeepEqual(s, DecodeStyle(CSIBoldRed)) {
		t.Errorf("Decode() = %+v, want %+v", s, DecodeStyle(CSIBoldRed))
	}
}

func TestSplitSequences(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"\x1b[1m", []string{"\x1b[1m"}},
		{"\x1b[1m\x1b[38;5;9m", []string{"\x1b[1m", "\x1b[38;5;9m"}},
		{"\x1b[1m\x1b[2J\x1b[3", []string{"\x1b[1m", "\x1b[2J"}},
		{"junk\x1b[4mjunk", []string{"\x1b[4m"}},
	}

	for _, tt := range tests {
		got := splitSequences(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitSequences(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodeStyle_UnderlineKeepsColor(t *testing.T) {
	s := DecodeStyle("\x1b[4;31m")

	if s.Flags != StyleFlagUnderline {
		t.Errorf("Flags = %b, want %b", s.Flags, StyleFlagUnderline)
	}
	if got := ResolveColor(s.Fg, true); got != DefaultPalette[1] {
		t.Errorf("fg = %v, want %v", got, DefaultPalette[1])
	}
}

func TestSgrAttributes(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"\x1b[m", []string{"\x1b[m"}},
		{"\x1b[1m", []string{"\x1b[1m"}},
		{"\x1b[4;31m", []string{"\x1b[4m", "\x1b[31m"}},
		{"\x1b[1;38;5;9m", []string{"\x1b[1m", "\x1b[38;5;9m"}},
		{"\x1b[48;2;1;2;3;4m", []string{"\x1b[48;2;1;2;3m", "\x1b[4m"}},
		{"\x1b[58;5m", []string{"\x1b[58;5m"}},
		{"\x1b[38;9m", []string{"\x1b[38m", "\x1b[9m"}},
	}

	for _, tt := range tests {
		got := sgrAttributes(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("sgrAttributes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStyle_Flags(t *testing.T) {
	var s Style
	s.SetFlag(StyleFlagBold | StyleFlagItalic)
	s.ClearFlag(StyleFlagBold)

	if s.HasFlag(StyleFlagBold) {
		t.Error("bold should be cleared")
	}
	if !s.HasFlag(StyleFlagItalic) {
		t.Error("italic should be set")
	}
}
