package styledline

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with decoded style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailRaw returns segments with the raw escape-code prefix as well as decoded styles.
	SnapshotDetailRaw SnapshotDetail = "raw"
)

// Snapshot is a serializable view of a sequence of lines, suitable for JSON encoding.
type Snapshot struct {
	Width int            `json:"width"`
	Lines []SnapshotLine `json:"lines"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Width    int               `json:"width"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
}

// SnapshotSegment represents a styled run within a line.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Underline  string        `json:"underline_color,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Raw        string        `json:"raw,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool   `json:"bold,omitempty"`
	Dim           bool   `json:"dim,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     string `json:"underline,omitempty"`
	Blink         string `json:"blink,omitempty"`
	Reverse       bool   `json:"reverse,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
}

// NewSnapshot creates a snapshot of lines.
// The detail parameter controls how much information is included.
func NewSnapshot(lines []Line, detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Lines: make([]SnapshotLine, len(lines)),
	}

	for i, line := range lines {
		snap.Lines[i] = line.Snapshot(detail)
		if snap.Lines[i].Width > snap.Width {
			snap.Width = snap.Lines[i].Width
		}
	}

	return snap
}

// Snapshot creates a snapshot of a single line.
func (l Line) Snapshot(detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{
		Text:  l.Text(),
		Width: l.Width(),
	}

	switch detail {
	case SnapshotDetailText:
		// Just text, already set

	case SnapshotDetailStyled, SnapshotDetailRaw:
		line.Segments = l.segments(detail == SnapshotDetailRaw)
	}

	return line
}

// segments converts runs to segments, skipping runs without text.
func (l Line) segments(raw bool) []SnapshotSegment {
	var segments []SnapshotSegment
	scheme := defaultScheme()

	for _, r := range l.runs {
		if r.Text == "" {
			continue
		}

		style := r.Decode()
		seg := SnapshotSegment{
			Text:       r.Text,
			Fg:         scheme.hex(style.Fg, true),
			Bg:         scheme.hex(style.Bg, false),
			Underline:  scheme.hex(style.UnderlineColor, true),
			Attributes: styleAttrsToSnapshot(&style),
		}
		if raw {
			seg.Raw = r.Style
		}

		segments = append(segments, seg)
	}

	return segments
}

// styleAttrsToSnapshot extracts style attributes.
func styleAttrsToSnapshot(s *Style) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          s.HasFlag(StyleFlagBold),
		Dim:           s.HasFlag(StyleFlagDim),
		Italic:        s.HasFlag(StyleFlagItalic),
		Underline:     underlineStyleToString(s),
		Blink:         blinkStyleToString(s),
		Reverse:       s.HasFlag(StyleFlagReverse),
		Hidden:        s.HasFlag(StyleFlagHidden),
		Strikethrough: s.HasFlag(StyleFlagStrike),
	}
}

// underlineStyleToString returns "single", "double", "curly", "dotted", "dashed" or "".
func underlineStyleToString(s *Style) string {
	switch {
	case s.HasFlag(StyleFlagUnderline):
		return "single"
	case s.HasFlag(StyleFlagDoubleUnderline):
		return "double"
	case s.HasFlag(StyleFlagCurlyUnderline):
		return "curly"
	case s.HasFlag(StyleFlagDottedUnderline):
		return "dotted"
	case s.HasFlag(StyleFlagDashedUnderline):
		return "dashed"
	default:
		return ""
	}
}

// blinkStyleToString returns "slow", "fast" or "".
func blinkStyleToString(s *Style) string {
	switch {
	case s.HasFlag(StyleFlagBlinkFast):
		return "fast"
	case s.HasFlag(StyleFlagBlinkSlow):
		return "slow"
	default:
		return ""
	}
}
