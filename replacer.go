package rexgen

import (
	"github.com/projectdiscovery/fasttemplate"
)

const (
	// General marker (open/close)
	General = "§"
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// FormatPattern renders the output template, replacing the {{pattern}} (or
// §pattern§) placeholder with the generated pattern on the fly.
func FormatPattern(template, pattern string) string {
	values := map[string]interface{}{
		"pattern": pattern,
	}
	replaced := fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, values)
	return fasttemplate.ExecuteStringStd(replaced, General, General, values)
}
