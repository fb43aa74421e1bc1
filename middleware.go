package styledline

// Middleware intercepts builder events, allowing custom behavior before/after the default handling.
// Each field wraps one event: it receives the event parameters and a next function that runs
// the default implementation. Not calling next drops the event.
//
// Example, keeping only SGR sequences:
//
//	mw := &styledline.Middleware{
//	    CSI: func(params []int, action rune, next func([]int, rune)) {
//	        if action == 'm' {
//	            next(params, action)
//	        }
//	    },
//	}
//	b := styledline.NewBuilder(styledline.WithMiddleware(mw))
type Middleware struct {
	// Print wraps the Print handler
	Print func(r rune, next func(rune))

	// CSI wraps the CSI handler
	CSI func(params []int, action rune, next func([]int, rune))

	// Execute observes control bytes (the default handler does nothing)
	Execute func(c byte, next func(byte))
}

// Merge returns a middleware that calls m first and other second for every event both define.
// Fields set on only one of them are used as-is.
func (m *Middleware) Merge(other *Middleware) *Middleware {
	if m == nil {
		return other
	}
	if other == nil {
		return m
	}

	merged := &Middleware{
		Print:   m.Print,
		CSI:     m.CSI,
		Execute: m.Execute,
	}

	if other.Print != nil {
		if m.Print == nil {
			merged.Print = other.Print
		} else {
			first, second := m.Print, other.Print
			merged.Print = func(r rune, next func(rune)) {
				first(r, func(r rune) { second(r, next) })
			}
		}
	}

	if other.CSI != nil {
		if m.CSI == nil {
			merged.CSI = other.CSI
		} else {
			first, second := m.CSI, other.CSI
			merged.CSI = func(params []int, action rune, next func([]int, rune)) {
				first(params, action, func(p []int, a rune) { second(p, a, next) })
			}
		}
	}

	if other.Execute != nil {
		if m.Execute == nil {
			merged.Execute = other.Execute
		} else {
			first, second := m.Execute, other.Execute
			merged.Execute = func(c byte, next func(byte)) {
				first(c, func(c byte) { second(c, next) })
			}
		}
	}

	return merged
}
