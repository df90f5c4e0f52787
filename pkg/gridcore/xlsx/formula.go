package xlsx

import (
	"strings"

	"github.com/xuri/efp"
)

// IsFormula reports whether value is an "=" prefixed expression that
// tokenizes cleanly as an Excel formula.
func IsFormula(value string) bool {
	if len(value) < 2 || value[0] != '=' {
		return false
	}
	body := strings.TrimSpace(value[1:])
	if body == "" {
		return false
	}
	ps := efp.ExcelParser()
	tokens := ps.Parse(body)
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if token.TType == efp.TokenTypeUnknown {
			return false
		}
	}
	return true
}
