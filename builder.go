package styledline

import (
	"strings"

	"github.com/danielgatis/go-vte"
)

// Ensure Builder implements vte.Performer
var _ vte.Performer = (*Builder)(nil)

// Builder turns a stream of terminal output into a Line.
//
// Raw bytes written to the builder go through a VTE parser; printable characters
// and CSI sequences drive the run state machine, everything else is ignored.
// A Builder must not be used by more than one goroutine at a time.
type Builder struct {
	parser *vte.Parser

	// In-progress run, nil when no run is open. Its text accumulates in text.
	current  *Run
	text     strings.Builder
	finished []Run

	middleware        *Middleware
	recordingProvider RecordingProvider
}

// Option configures a Builder.
type Option func(*Builder)

// WithMiddleware sets middleware that intercepts builder events.
func WithMiddleware(mw *Middleware) Option {
	return func(b *Builder) {
		b.middleware = mw
	}
}

// WithRecording sets a provider that receives raw bytes before parsing.
func WithRecording(p RecordingProvider) Option {
	return func(b *Builder) {
		b.recordingProvider = p
	}
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		recordingProvider: NoopRecording{},
	}

	for _, opt := range opts {
		opt(b)
	}

	b.parser = vte.NewParser(b)

	return b
}

// Parse builds a Line from a string of terminal output.
func Parse(s string) Line {
	b := NewBuilder()
	b.WriteString(s)
	return b.Line()
}

// ParseBytes builds a Line from raw terminal output.
func ParseBytes(data []byte) Line {
	b := NewBuilder()
	b.Write(data)
	return b.Line()
}

// Write feeds raw bytes to the parser. It never fails.
// Implements io.Writer.
func (b *Builder) Write(data []byte) (int, error) {
	b.recordingProvider.Record(data)
	for _, c := range data {
		b.parser.Advance(c)
	}
	return len(data), nil
}

// WriteString is a convenience method that converts the string to bytes and calls Write.
func (b *Builder) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Line flushes the in-progress run, even if it has no text, and returns the result.
// The builder is empty afterwards; parser state for an unfinished escape sequence is kept.
func (b *Builder) Line() Line {
	b.closeRun()
	line := Line{runs: b.finished}
	b.finished = nil
	return line
}

// Pending returns true if Line would return at least one run.
func (b *Builder) Pending() bool {
	return b.current != nil || len(b.finished) > 0
}

// Print appends a printable character to the in-progress run, opening a plain run if none is open.
func (b *Builder) Print(r rune) {
	if b.middleware != nil && b.middleware.Print != nil {
		b.middleware.Print(r, b.printInternal)
		return
	}
	b.printInternal(r)
}

func (b *Builder) printInternal(r rune) {
	if b.current == nil {
		b.current = &Run{}
	}
	b.text.WriteRune(r)
}

// CSI applies a control sequence to the run state.
//
// An explicit reset ([0]) closes the open run and leaves the builder empty.
// Any other sequence compounds into the open run's style while that run has no text,
// otherwise it closes the run and opens a new one styled by this sequence alone.
func (b *Builder) CSI(params []int, action rune) {
	if b.middleware != nil && b.middleware.CSI != nil {
		b.middleware.CSI(params, action, b.csiInternal)
		return
	}
	b.csiInternal(params, action)
}

func (b *Builder) csiInternal(params []int, action rune) {
	if isReset(params) {
		b.closeRun()
		return
	}

	if b.current != nil && b.text.Len() == 0 {
		b.current.PushCSI(params, action)
		return
	}

	b.closeRun()
	b.current = &Run{}
	b.current.PushCSI(params, action)
}

// closeRun moves the in-progress run, if any, to the finished runs.
func (b *Builder) closeRun() {
	if b.current == nil {
		return
	}
	run := *b.current
	run.Text = b.text.String()
	b.finished = append(b.finished, run)
	b.current = nil
	b.text.Reset()
}

// CsiDispatch forwards the parser's parameters to CSI. An empty list is read as [0].
// Sequences with colon sub-parameters (ESC[4:3m) are dropped: a flat list cannot
// re-encode them with the same meaning. Intermediates and the ignore flag do not
// affect the result.
func (b *Builder) CsiDispatch(params [][]uint16, intermediates []byte, ignore bool, action rune) {
	flat, ok := csiParams(params)
	if !ok {
		return
	}
	b.CSI(flat, action)
}

// csiParams returns one integer per parameter group, or false if a group has sub-parameters.
func csiParams(groups [][]uint16) ([]int, bool) {
	if len(groups) == 0 {
		return []int{0}, true
	}
	out := make([]int, 0, len(groups))
	for _, g := range groups {
		switch len(g) {
		case 0:
			out = append(out, 0)
		case 1:
			out = append(out, int(g[0]))
		default:
			return nil, false
		}
	}
	return out, true
}

// Execute handles C0/C1 control bytes. They have no effect on the line.
func (b *Builder) Execute(c byte) {
	if b.middleware != nil && b.middleware.Execute != nil {
		b.middleware.Execute(c, b.executeInternal)
	}
}

func (b *Builder) executeInternal(c byte) {}

// Hook is ignored (DCS).
func (b *Builder) Hook(params [][]uint16, intermediates []byte, ignore bool, action rune) {}

// Put is ignored (DCS data).
func (b *Builder) Put(c byte) {}

// Unhook is ignored (DCS end).
func (b *Builder) Unhook() {}

// OscDispatch is ignored.
func (b *Builder) OscDispatch(params [][]byte, bellTerminated bool) {}

// EscDispatch is ignored.
func (b *Builder) EscDispatch(intermediates []byte, ignore bool, c byte) {}

// SosPmApcDispatch is ignored.
func (b *Builder) SosPmApcDispatch(kind vte.SosPmApcKind, data []byte, bellTerminated bool) {}
