package recon

import (
	"context"
	"time"

	"github.com/vulnverified/portsweep/internal/engine"
)

// Scanner implements engine.PortScanner.
type Scanner struct{}

// Scan performs TCP connect scanning against an already-resolved address.
func (s *Scanner) Scan(ctx context.Context, addr string, ports []int, concurrency int, timeout time.Duration) ([]int, error) {
	return PortScan(ctx, addr, ports, concurrency, timeout)
}

// Options tunes GetOpenPorts. The zero value scans one port at a time with
// the default one-second timeout via the system resolver.
type Options struct {
	Timeout     time.Duration
	Concurrency int
	Nameserver  string
}

// DefaultStages returns the production resolver and scanner.
func DefaultStages(nameserver string) engine.Stages {
	return engine.Stages{
		Resolver: &Resolver{Nameserver: nameserver},
		Scanner:  &Scanner{},
	}
}

// GetOpenPorts resolves target and scans the inclusive range r. It returns
// engine.OpenPorts, or an *engine.Report when verbose is set. Resolution
// failures come back as *engine.ResolutionError, bad ranges as
// *engine.RangeError.
func GetOpenPorts(ctx context.Context, target string, r engine.PortRange, verbose bool, opts Options) (engine.Outcome, error) {
	cfg := engine.Config{
		Target:      target,
		Range:       r,
		Timeout:     opts.Timeout,
		Concurrency: opts.Concurrency,
	}
	return engine.RunOutcome(ctx, cfg, DefaultStages(opts.Nameserver), quietProgress{}, verbose)
}

type quietProgress struct{}

func (quietProgress) Stage(int, int, string) {}
func (quietProgress) Detail(string)          {}
func (quietProgress) Warn(string)            {}
