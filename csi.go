package styledline

import (
	"strconv"
	"strings"
)

// Escape codes used when rendering and building style prefixes.
// All of them go through FormatCSI so constants and parsed prefixes share one encoding.
var (
	// CSIReset is written after every styled run: an attribute reset followed by a second zero reset.
	CSIReset = FormatCSI([]int{0}, 'm') + FormatCSI([]int{0}, 'm')
	// CSIBold turns on bold.
	CSIBold = FormatCSI([]int{1}, 'm')
	// CSIBoldRed is bold with bright red from the 256-color palette (index 9).
	CSIBoldRed = CSIBold + FormatCSI([]int{38, 5, 9}, 'm')
	// CSIBoldYellow is bold with the legacy 16-color yellow.
	CSIBoldYellow = CSIBold + FormatCSI([]int{33}, 'm')
	// CSIBoldBlue is bold with bright blue from the 256-color palette (index 12).
	CSIBoldBlue = CSIBold + FormatCSI([]int{38, 5, 12}, 'm')
)

// FormatCSI encodes a control sequence: ESC '[' p0 ';' p1 ... ';' pn action.
// An empty params slice yields ESC '[' action.
func FormatCSI(params []int, action rune) string {
	var sb strings.Builder
	sb.Grow(3 + 4*len(params))
	sb.WriteString("\x1b[")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteRune(action)
	return sb.String()
}

// isReset reports whether params is exactly the explicit reset [0].
func isReset(params []int) bool {
	return len(params) == 1 && params[0] == 0
}
