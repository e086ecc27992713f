package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatReport renders the verbose text report:
//
//	Open ports for scanme.example (192.0.2.10)
//	PORT     SERVICE
//	22       ssh
//	80       http
//
// The port column is left-justified in a field of width 9. Trailing
// whitespace is trimmed, so an unnamed last port leaves no padding.
func FormatReport(result *ScanResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Open ports for %s\nPORT     SERVICE\n", result.Display())

	if len(result.OpenPorts) == 0 {
		b.WriteString("No open ports found")
		return b.String()
	}

	for _, p := range result.OpenPorts {
		fmt.Fprintf(&b, "%-9d%s\n", p.Port, p.Service)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

