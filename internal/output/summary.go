package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vulnverified/portsweep/internal/engine"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	colorBold  = color.New(color.Bold)
	colorMuted = color.New(color.FgHiBlack)
	colorOpen  = color.New(color.FgGreen, color.Bold)
)

// SetNoColor disables colour for every writer in this package.
func SetNoColor(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// WriteHeader prints the portsweep banner.
func WriteHeader(w io.Writer) {
	colorBold.Fprintf(w, "portsweep %s", Version)
	colorMuted.Fprintln(w, " - TCP connect scanner")
	fmt.Fprintln(w)
}

// WriteSummary prints the post-scan summary.
func WriteSummary(w io.Writer, result *engine.ScanResult) {
	s := result.Summary

	fmt.Fprintln(w)
	colorBold.Fprint(w, "Target: ")
	fmt.Fprintln(w, result.Display())
	colorBold.Fprint(w, "Scanned: ")
	fmt.Fprintf(w, "%d ports in %.1fs\n", s.PortsScanned, result.DurationSecs)
	colorBold.Fprint(w, "Open: ")
	if s.OpenPortCount == 0 {
		fmt.Fprintln(w, "none")
		return
	}
	colorOpen.Fprintf(w, "%d", s.OpenPortCount)
	fmt.Fprintf(w, " (%d with a known service)\n", s.NamedServices)
}
