// Package styledline turns captured terminal output into styled lines.
//
// A styled line is an ordered sequence of runs. Each run is a span of text drawn
// with one style prefix: the escape sequences that were in effect when the text
// was printed. Only printable characters and CSI sequences are kept; cursor
// movement, OSC payloads and control bytes are dropped. This makes the package
// suitable for re-rendering a sub-process's colored output inside another UI,
// not for full terminal emulation (see go-headless-term for that).
//
// # Quick Start
//
//	line := styledline.Parse("\x1b[1m\x1b[31merror\x1b[0m: not found")
//	for _, run := range line.Runs() {
//	    fmt.Printf("%q %q\n", run.Style, run.Text)
//	}
//	// "\x1b[1m\x1b[31m" "error"
//	// "" ": not found"
//
//	line.Draw(os.Stdout) // re-emit with escape codes
//
// # Building Runs
//
// [Builder] feeds bytes through a VTE parser and applies these rules:
//
//   - A printed character opens a plain run if none is open, otherwise it is appended.
//   - An explicit reset (ESC[0m, or ESC[m) closes the open run; no style is carried over.
//   - Any other CSI sequence is added to the open run's style while that run has no
//     text yet, so ESC[1m ESC[31m compound into one prefix.
//   - A CSI sequence after text closes the run and opens a new one styled by that
//     sequence alone. The previous style is not inherited.
//
// The action character is not inspected: ESC[2J becomes a style prefix like any
// SGR sequence. Use [Middleware] to filter events:
//
//	mw := &styledline.Middleware{
//	    CSI: func(params []int, action rune, next func([]int, rune)) {
//	        if action == 'm' {
//	            next(params, action)
//	        }
//	    },
//	}
//	b := styledline.NewBuilder(styledline.WithMiddleware(mw))
//	b.Write(output)
//	line := b.Line()
//
// # Rendering
//
// [Line.Draw] writes each run as prefix, text, then [CSIReset], so styles never
// leak between runs. Plain runs are written verbatim. A failing writer stops the
// draw and returns a [*WriteError]; the line is never modified.
//
// [Line.Truncate] and [Line.Wrap] cut lines by display width (wide characters
// count as two columns), keeping each piece's style prefix.
//
// # Capturing Output
//
// [Capture] is an [io.Writer] that splits a stream into lines:
//
//	capture := styledline.NewCapture(
//	    styledline.WithLines(styledline.NewMemoryLines(10000)),
//	    styledline.WithLineHandler(func(l styledline.Line) { ... }),
//	)
//	cmd.Stdout = capture
//	cmd.Run()
//	capture.Flush()
//
// # Decoded Styles
//
// Renderers that don't speak escape codes can decode a prefix with [DecodeStyle]
// or [Run.Decode], export lines with [NewSnapshot] (JSON-ready segments with hex
// colors), or render them to an image with [Screenshot].
//
// # Thread Safety
//
// [Builder] must be driven by one goroutine at a time. [Line] values are immutable
// and can be shared freely. All [Capture] methods are safe for concurrent use.
package styledline
