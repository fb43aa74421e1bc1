package styledline

// --- Line Provider ---

// LineProvider stores lines completed by a Capture.
// Implementations can use in-memory storage, disk, database, etc.
type LineProvider interface {
	// Push appends a line. Oldest lines should be removed if MaxLines is exceeded.
	Push(line Line)
	// Len returns the current number of stored lines.
	Len() int
	// Line returns the line at index, where 0 is the oldest line. Returns false if out of range.
	Line(index int) (Line, bool)
	// Clear removes all stored lines.
	Clear()
	// SetMaxLines sets the maximum capacity. Implementations should trim oldest lines if needed.
	SetMaxLines(max int)
	// MaxLines returns the current maximum capacity.
	MaxLines() int
}

// NoopLines discards all lines (useful when only a streaming LineHandler is wanted).
type NoopLines struct{}

func (NoopLines) Push(line Line)              {}
func (NoopLines) Len() int                    { return 0 }
func (NoopLines) Line(index int) (Line, bool) { return Line{}, false }
func (NoopLines) Clear()                      {}
func (NoopLines) SetMaxLines(max int)         {}
func (NoopLines) MaxLines() int               { return 0 }

// MemoryLines stores lines in memory with a configurable limit.
// When the limit is reached, the oldest lines are removed to make room for new ones.
//
// Example:
//
//	storage := styledline.NewMemoryLines(10000)
//	capture := styledline.NewCapture(styledline.WithLines(storage))
type MemoryLines struct {
	lines    []Line
	maxLines int
}

// NewMemoryLines creates a new in-memory line store with the given capacity.
// If maxLines is 0, the store is unlimited (be careful with memory usage).
func NewMemoryLines(maxLines int) *MemoryLines {
	return &MemoryLines{
		lines:    make([]Line, 0),
		maxLines: maxLines,
	}
}

// Push appends a line. If maxLines is exceeded, the oldest line is removed.
func (m *MemoryLines) Push(line Line) {
	m.lines = append(m.lines, line)

	if m.maxLines > 0 && len(m.lines) > m.maxLines {
		excess := len(m.lines) - m.maxLines
		m.lines = m.lines[excess:]
	}
}

// Len returns the current number of stored lines.
func (m *MemoryLines) Len() int {
	return len(m.lines)
}

// Line returns the line at index, where 0 is the oldest line.
func (m *MemoryLines) Line(index int) (Line, bool) {
	if index < 0 || index >= len(m.lines) {
		return Line{}, false
	}
	return m.lines[index], true
}

// Clear removes all stored lines.
func (m *MemoryLines) Clear() {
	m.lines = make([]Line, 0)
}

// SetMaxLines sets the maximum capacity. If the current length exceeds the new max,
// the oldest lines are removed.
func (m *MemoryLines) SetMaxLines(max int) {
	m.maxLines = max
	if max > 0 && len(m.lines) > max {
		excess := len(m.lines) - max
		m.lines = m.lines[excess:]
	}
}

// MaxLines returns the current maximum capacity.
func (m *MemoryLines) MaxLines() int {
	return m.maxLines
}

// --- Recording Provider ---

// RecordingProvider captures raw input bytes before parsing for replay or debugging.
type RecordingProvider interface {
	// Record appends raw bytes to the recording.
	Record(data []byte)
	// Data returns all captured bytes since the last Clear call.
	Data() []byte
	// Clear discards all recorded data.
	Clear()
}

// NoopRecording discards all input recordings.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

// MemoryRecording stores raw input bytes in memory for replay or debugging.
//
// Example:
//
//	recorder := styledline.NewMemoryRecording()
//	b := styledline.NewBuilder(styledline.WithRecording(recorder))
//	// ... feed terminal output ...
//	data := recorder.Data() // Get all recorded bytes
type MemoryRecording struct {
	data []byte
}

// NewMemoryRecording creates a new in-memory recording buffer.
func NewMemoryRecording() *MemoryRecording {
	return &MemoryRecording{
		data: make([]byte, 0),
	}
}

// Record appends raw bytes to the recording.
func (r *MemoryRecording) Record(data []byte) {
	r.data = append(r.data, data...)
}

// Data returns all captured bytes since the last Clear call.
func (r *MemoryRecording) Data() []byte {
	result := make([]byte, len(r.data))
	copy(result, r.data)
	return result
}

// Clear discards all recorded data.
func (r *MemoryRecording) Clear() {
	r.data = make([]byte, 0)
}

// Ensure implementations satisfy their interfaces
var (
	_ LineProvider      = NoopLines{}
	_ LineProvider      = (*MemoryLines)(nil)
	_ RecordingProvider = NoopRecording{}
	_ RecordingProvider = (*MemoryRecording)(nil)
)
