package styledline

import "testing"

func TestMiddleware_Merge(t *testing.T) {
	var order []string

	first := &Middleware{
		Print: func(r rune, next func(rune)) {
			order = append(order, "first")
			next(r)
		},
	}
	second := &Middleware{
		Print: func(r rune, next func(rune)) {
			order = append(order, "second")
			next(r + 1)
		},
		CSI: func(params []int, action rune, next func([]int, rune)) {
			next([]int{1}, action)
		},
	}

	b := NewBuilder(WithMiddleware(first.Merge(second)))
	b.WriteString("\x1b[31ma")

	assertRuns(t, b.Line(), []Run{{Style: "\x1b[1m", Text: "b"}})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestMiddleware_MergeNil(t *testing.T) {
	mw := &Middleware{}

	if got := mw.Merge(nil); got != mw {
		t.Error("Merge(nil) should return the receiver")
	}

	var nilMw *Middleware
	if got := nilMw.Merge(mw); got != mw {
		t.Error("nil.Merge(m) should return m")
	}
}

func TestMiddleware_DropEvents(t *testing.T) {
	mw := &Middleware{
		Print: func(r rune, next func(rune)) {
			if r != '#' {
				next(r)
			}
		},
	}

	b := NewBuilder(WithMiddleware(mw))
	b.WriteString("a#b#c")

	assertRuns(t, b.Line(), []Run{{Text: "abc"}})
}
