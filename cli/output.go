package cli

import (
	"fmt"
	"strings"

	"github.com/christianlarsen/dspf-edit/linescan"
)

// indicatorSuffix renders conditioning indicators as " [05 N12]", or ""
// when there are none.
func indicatorSuffix(indicators []linescan.Indicator) string {
	if len(indicators) == 0 {
		return ""
	}

	parts := make([]string, 0, len(indicators))

	for _, ind := range indicators {
		if ind.Active {
			parts = append(parts, fmt.Sprintf("%02d", ind.Number))
		} else {
			parts = append(parts, fmt.Sprintf("N%02d", ind.Number))
		}
	}

	return " [" + strings.Join(parts, " ") + "]"
}
