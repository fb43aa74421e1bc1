package styledline

import (
	"io"
	"strings"
)

// Run is a contiguous span of text drawn with a single style prefix.
// Style holds zero or more concatenated CSI sequences; an empty Style is plain text.
type Run struct {
	Style string
	Text  string
}

// PushCSI appends the encoded control sequence to the run's style prefix.
func (r *Run) PushCSI(params []int, action rune) {
	r.Style += FormatCSI(params, action)
}

// IsPlain returns true if the run carries no style prefix.
func (r Run) IsPlain() bool {
	return r.Style == ""
}

// StartsWith returns true if the style equals style exactly and the text begins with text.
func (r Run) StartsWith(style, text string) bool {
	return r.Style == style && strings.HasPrefix(r.Text, text)
}

// Len returns the number of runes in the run's text.
func (r Run) Len() int {
	return len([]rune(r.Text))
}

// Width returns the display width of the run's text in terminal columns.
func (r Run) Width() int {
	return StringWidth(r.Text)
}

// SplitAt splits the text at rune offset at. Both halves keep the style prefix.
// Offsets outside [0, Len()] are clamped.
func (r Run) SplitAt(at int) (Run, Run) {
	runes := []rune(r.Text)
	at = clamp(at, 0, len(runes))
	return Run{Style: r.Style, Text: string(runes[:at])},
		Run{Style: r.Style, Text: string(runes[at:])}
}

// SplitAtWidth splits the text so the first half fits in cols display columns.
// A wide character that would straddle the boundary goes to the second half.
func (r Run) SplitAtWidth(cols int) (Run, Run) {
	if cols <= 0 {
		return Run{Style: r.Style}, r
	}

	used := 0
	for i, ch := range r.Text {
		w := runeWidth(ch)
		if used+w > cols {
			return Run{Style: r.Style, Text: r.Text[:i]}, Run{Style: r.Style, Text: r.Text[i:]}
		}
		used += w
	}
	return r, Run{Style: r.Style}
}

// Draw writes the run to w. Styled runs are written as prefix, text and CSIReset,
// so the style never leaks into whatever is written next.
func (r Run) Draw(w io.Writer) error {
	if r.Style == "" {
		return writeString(w, r.Text)
	}
	if err := writeString(w, r.Style); err != nil {
		return err
	}
	if err := writeString(w, r.Text); err != nil {
		return err
	}
	return writeString(w, CSIReset)
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// clamp ensures the value is within the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
