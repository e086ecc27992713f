// Package engine orchestrates the portsweep resolve-and-scan pipeline.
package engine

import (
	"context"
	"fmt"
	"time"
)

// ScanResult is the top-level output of a portsweep run.
type ScanResult struct {
	Target       string       `json:"target"`
	Address      string       `json:"address"`
	Hostname     string       `json:"hostname,omitempty"`
	StartedAt    time.Time    `json:"started_at"`
	CompletedAt  time.Time    `json:"completed_at"`
	DurationSecs float64      `json:"duration_secs"`
	OpenPorts    []PortResult `json:"open_ports"`
	Summary      Summary      `json:"summary"`
}

// PortResult represents an open port on the target.
type PortResult struct {
	Port    int    `json:"port"`
	Service string `json:"service,omitempty"`
}

// Summary provides aggregate counts for the scan.
type Summary struct {
	PortsScanned  int `json:"ports_scanned"`
	OpenPortCount int `json:"open_port_count"`
	NamedServices int `json:"named_services"`
}

// Ports returns the open port numbers in ascending order.
func (r *ScanResult) Ports() []int {
	out := make([]int, 0, len(r.OpenPorts))
	for _, p := range r.OpenPorts {
		out = append(out, p.Port)
	}
	return out
}

// Display is the name used in report headers: "hostname (address)" when
// reverse DNS found a name, otherwise the bare address.
func (r *ScanResult) Display() string {
	if r.Hostname == "" {
		return r.Address
	}
	return fmt.Sprintf("%s (%s)", r.Hostname, r.Address)
}

// TargetResolver turns a target into an IPv4 address and, best effort,
// an address back into a hostname.
type TargetResolver interface {
	Resolve(ctx context.Context, target string) (string, error)
	// Reverse returns "" when no name is found.
	Reverse(ctx context.Context, addr string) string
}

// PortScanner scans for open TCP ports. The returned ports are ascending.
type PortScanner interface {
	Scan(ctx context.Context, addr string, ports []int, concurrency int, timeout time.Duration) ([]int, error)
}

// Outcome is what GetOpenPorts hands back: either OpenPorts or *Report.
type Outcome interface {
	isOutcome()
}

// OpenPorts is the plain ascending list of open ports.
type OpenPorts []int

// Report is the formatted text report together with the result it renders.
type Report struct {
	Text   string
	Result *ScanResult
}

func (OpenPorts) isOutcome() {}
func (*Report) isOutcome()   {}
