//-----------------------------------------------------------------------------
/*

Text Styles

SGR color helpers for hints and highlighting.

*/
//-----------------------------------------------------------------------------

package prompt

import "fmt"

//-----------------------------------------------------------------------------

// boolean to integer
func btoi(x bool) int {
	if x {
		return 1
	}
	return 0
}

// Style is a foreground color and weight.
// Color is an SGR foreground code (30..37, 90..97), < 0 for the default color.
type Style struct {
	Color int
	Bold  bool
}

// Apply wraps text in the escape sequences for the style.
// The styling adds no displayed width.
func (s Style) Apply(text string) string {
	if s.Color < 0 && !s.Bold {
		return text
	}
	color := s.Color
	// color fixup
	if color < 0 {
		color = 37
	}
	return fmt.Sprintf("\x1b[%d;%d;49m%s\x1b[0m", btoi(s.Bold), color, text)
}

//-----------------------------------------------------------------------------
