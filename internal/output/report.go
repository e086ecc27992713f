package output

import (
	"fmt"
	"io"

	"github.com/vulnverified/portsweep/internal/engine"
)

// WritePorts prints one open port number per line.
func WritePorts(w io.Writer, ports engine.OpenPorts) {
	for _, p := range ports {
		fmt.Fprintln(w, p)
	}
}

// WriteReport prints the verbose text report followed by a newline.
func WriteReport(w io.Writer, report *engine.Report) {
	fmt.Fprintln(w, report.Text)
}
