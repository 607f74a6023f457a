package burrow

import "strings"

// FoldedRows are the two rows revealed when the diagram is unfolded.
var FoldedRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Unfold inserts FoldedRows below the first room row, deepening every room by two.
func Unfold(input string) (string, error) {
	return UnfoldWith(input, FoldedRows...)
}

// UnfoldWith inserts rows below the first room row of input, in order.
// Nothing else in the diagram changes, so the result parses with a deeper Map.
func UnfoldWith(input string, rows ...string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r", ""), "\n")

	hall := -1
	for i, l := range lines {
		if strings.ContainsAny(l, ".ABCD") {
			hall = i
			break
		}
	}
	if hall < 0 {
		return "", parseErrorf(-1, -1, 0, "unfold: no hallway")
	}
	at := hall + 2 // just after the first room row
	if at > len(lines) {
		return "", parseErrorf(hall, -1, 0, "unfold: no room row below the hallway")
	}

	out := make([]string, 0, len(lines)+len(rows))
	out = append(out, lines[:at]...)
	out = append(out, rows...)
	out = append(out, lines[at:]...)

	return strings.Join(out, "\n"), nil
}
