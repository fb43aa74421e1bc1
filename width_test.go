package styledline

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{' ', 1},
		{'中', 2},
		{'한', 2},
		{'Ａ', 2}, // Fullwidth A
		{'\u0301', 0},
		{0, 0},
	}

	for _, tt := range tests {
		got := runeWidth(tt.r)
		if got != tt.expected {
			t.Errorf("runeWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
		{"é", 1},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestWidth_IgnoresStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"\x1b[1mbold\x1b[0m", 4},
		{"\x1b[1m\x1b[38;5;9m中文\x1b[0m ok", 7},
		{"\x1b[1m", 0},
	}

	for _, tt := range tests {
		line := Parse(tt.input)
		if got := line.Width(); got != tt.expected {
			t.Errorf("Parse(%q).Width() = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
