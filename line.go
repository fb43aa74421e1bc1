package styledline

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Line is an ordered sequence of runs, typically one captured line of output.
// A Line is immutable: accessors return copies and drawing never modifies it.
type Line struct {
	runs []Run
}

// NewLine creates a line from runs. The slice is copied.
func NewLine(runs ...Run) Line {
	if len(runs) == 0 {
		return Line{}
	}
	cp := make([]Run, len(runs))
	copy(cp, runs)
	return Line{runs: cp}
}

// Len returns the number of runs.
func (l Line) Len() int {
	return len(l.runs)
}

// Run returns the run at index i. Panics if i is out of range.
func (l Line) Run(i int) Run {
	return l.runs[i]
}

// Runs returns a copy of the line's runs.
func (l Line) Runs() []Run {
	if len(l.runs) == 0 {
		return nil
	}
	cp := make([]Run, len(l.runs))
	copy(cp, l.runs)
	return cp
}

// Draw writes every run to w in order. The first write failure stops drawing and is
// returned as a *WriteError; output already written is not rolled back.
func (l Line) Draw(w io.Writer) error {
	for _, r := range l.runs {
		if err := r.Draw(w); err != nil {
			return err
		}
	}
	return nil
}

// String returns the line rendered with escape codes, as Draw would write it.
func (l Line) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = l.Draw(&sb)
	return sb.String()
}

// Text returns the concatenated text of all runs without any escape codes.
func (l Line) Text() string {
	var sb strings.Builder
	for _, r := range l.runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Width returns the display width of the line's text in terminal columns.
func (l Line) Width() int {
	w := 0
	for _, r := range l.runs {
		w += r.Width()
	}
	return w
}

// IsBlank returns true if the line has no text or only whitespace.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text()) == ""
}

// Truncate returns a line cut to at most cols display columns.
// Runs that end up with no text are dropped; style prefixes are kept as-is.
func (l Line) Truncate(cols int) Line {
	var out []Run
	remaining := cols
	for _, r := range l.runs {
		if remaining <= 0 {
			break
		}
		head, tail := r.SplitAtWidth(remaining)
		if head.Text != "" {
			out = append(out, head)
			remaining -= head.Width()
		}
		if tail.Text != "" {
			break
		}
	}
	return Line{runs: out}
}

// Wrap breaks the line into lines of at most cols display columns.
// A character wider than cols is placed alone on its own line.
// Returns the line unchanged (as a single element) if cols <= 0.
func (l Line) Wrap(cols int) []Line {
	if cols <= 0 || l.Width() <= cols {
		return []Line{l}
	}

	var lines []Line
	var cur []Run
	used := 0

	flush := func() {
		lines = append(lines, Line{runs: cur})
		cur = nil
		used = 0
	}

	for _, r := range l.runs {
		rest := r
		for rest.Text != "" {
			head, tail := rest.SplitAtWidth(cols - used)
			if head.Text == "" {
				if used > 0 {
					flush()
					continue
				}
				// Nothing fits on an empty line: take one character anyway.
				_, size := utf8.DecodeRuneInString(rest.Text)
				head = Run{Style: rest.Style, Text: rest.Text[:size]}
				tail = Run{Style: rest.Style, Text: rest.Text[size:]}
			}
			cur = append(cur, head)
			used += head.Width()
			rest = tail
			if used >= cols {
				flush()
			}
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}
