package styledline

import (
	"bytes"
	"io"
	"sync"
)

// Capture splits a stream of terminal output into styled lines.
//
// Each '\n' ends the current line; the completed Line is pushed to the line provider
// and passed to the line handler, if any. Carriage returns and other control bytes are
// dropped. Parser state carries across lines, so an escape sequence split between two
// Write calls is still recognized.
//
// All Capture methods are safe for concurrent use.
type Capture struct {
	mu sync.RWMutex

	builder *Builder

	lineProvider LineProvider
	lineHandler  func(Line)

	builderOpts []Option
}

// CaptureOption configures a Capture.
type CaptureOption func(*Capture)

// WithLines sets the storage for completed lines. Defaults to unlimited in-memory storage.
func WithLines(p LineProvider) CaptureOption {
	return func(c *Capture) {
		c.lineProvider = p
	}
}

// WithLineHandler sets a callback invoked for every completed line, in order.
// The callback runs outside the capture's lock and may call back into the Capture.
func WithLineHandler(fn func(Line)) CaptureOption {
	return func(c *Capture) {
		c.lineHandler = fn
	}
}

// WithBuilderOptions passes options to the underlying Builder.
func WithBuilderOptions(opts ...Option) CaptureOption {
	return func(c *Capture) {
		c.builderOpts = append(c.builderOpts, opts...)
	}
}

// NewCapture creates a capture with the given options.
func NewCapture(opts ...CaptureOption) *Capture {
	c := &Capture{}

	for _, opt := range opts {
		opt(c)
	}

	if c.lineProvider == nil {
		c.lineProvider = NewMemoryLines(0)
	}
	c.builder = NewBuilder(c.builderOpts...)

	return c
}

// Write processes raw terminal output. It never fails.
// Implements io.Writer.
func (c *Capture) Write(data []byte) (int, error) {
	c.mu.Lock()
	var completed []Line
	rest := data
	for len(rest) > 0 {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			c.builder.Write(rest)
			break
		}
		c.builder.Write(rest[:i])
		line := c.builder.Line()
		c.lineProvider.Push(line)
		completed = append(completed, line)
		rest = rest[i+1:]
	}
	handler := c.lineHandler
	c.mu.Unlock()

	if handler != nil {
		for _, line := range completed {
			handler(line)
		}
	}
	return len(data), nil
}

// WriteString is a convenience method that converts the string to bytes and calls Write.
func (c *Capture) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Flush completes the pending partial line, if it has any content.
// Returns true if a line was completed.
func (c *Capture) Flush() bool {
	c.mu.Lock()
	if !c.builder.Pending() {
		c.mu.Unlock()
		return false
	}
	line := c.builder.Line()
	c.lineProvider.Push(line)
	handler := c.lineHandler
	c.mu.Unlock()

	if handler != nil {
		handler(line)
	}
	return true
}

// Len returns the number of stored lines.
func (c *Capture) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lineProvider.Len()
}

// Line returns the stored line at index, where 0 is the oldest line.
func (c *Capture) Line(index int) (Line, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lineProvider.Line(index)
}

// Lines returns all stored lines, oldest first.
func (c *Capture) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := c.lineProvider.Len()
	lines := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		if line, ok := c.lineProvider.Line(i); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// Draw writes all stored lines to w separated by '\n'.
// Returns a *WriteError on the first write failure.
func (c *Capture) Draw(w io.Writer) error {
	for i, line := range c.Lines() {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := line.Draw(w); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all stored lines. The pending partial line is kept.
func (c *Capture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lineProvider.Clear()
}
