package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vulnverified/portsweep/pkg/ports"
)

// DefaultTimeout is the per-port connect timeout.
const DefaultTimeout = time.Second

// Config holds the runtime configuration for a portsweep run.
type Config struct {
	Target string
	Range  PortRange
	// Ports, when set, replaces Range with an explicit port list.
	Ports       []int
	Timeout     time.Duration
	Concurrency int
}

// Stages holds the injectable stage implementations.
type Stages struct {
	Resolver TargetResolver
	Scanner  PortScanner
}

// ProgressReporter is called by the engine to report stage progress.
type ProgressReporter interface {
	Stage(num, total int, msg string)
	Detail(msg string)
	Warn(msg string)
}

const totalStages = 3

// Run executes the full portsweep pipeline: resolve, reverse-resolve, scan.
func Run(ctx context.Context, cfg Config, stages Stages, progress ProgressReporter) (*ScanResult, error) {
	scanPorts, err := cfg.portList()
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	result := &ScanResult{
		Target:    cfg.Target,
		StartedAt: time.Now(),
	}

	// Stage 1: Forward resolution.
	progress.Stage(1, totalStages, fmt.Sprintf("Resolving %s...", cfg.Target))
	addr, err := stages.Resolver.Resolve(ctx, cfg.Target)
	if err != nil {
		return nil, err
	}
	result.Address = addr
	progress.Detail(fmt.Sprintf("%s resolved to %s", cfg.Target, addr))

	// Stage 2: Reverse resolution, never fatal.
	progress.Stage(2, totalStages, fmt.Sprintf("Reverse resolving %s...", addr))
	result.Hostname = stages.Resolver.Reverse(ctx, addr)
	if result.Hostname == "" {
		progress.Detail(fmt.Sprintf("No PTR record for %s", addr))
	} else {
		progress.Detail(fmt.Sprintf("%s is %s", addr, result.Hostname))
	}

	// Stage 3: Port scanning.
	progress.Stage(3, totalStages, fmt.Sprintf("Scanning %d ports on %s...", len(scanPorts), addr))
	open, err := stages.Scanner.Scan(ctx, addr, scanPorts, concurrency, timeout)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("port scan interrupted: %w", err)
		}
		progress.Warn(fmt.Sprintf("Port scan error: %s", err))
	}
	sort.Ints(open)

	for _, p := range open {
		result.OpenPorts = append(result.OpenPorts, PortResult{
			Port:    p,
			Service: ports.Lookup(p),
		})
	}
	progress.Detail(fmt.Sprintf("Found %d open ports", len(open)))

	result.CompletedAt = time.Now()
	result.DurationSecs = result.CompletedAt.Sub(result.StartedAt).Seconds()
	result.Summary = buildSummary(result, len(scanPorts))

	return result, nil
}

// RunOutcome runs the pipeline and shapes the result the way GetOpenPorts
// callers expect: a *Report when verbose, otherwise OpenPorts.
func RunOutcome(ctx context.Context, cfg Config, stages Stages, progress ProgressReporter, verbose bool) (Outcome, error) {
	result, err := Run(ctx, cfg, stages, progress)
	if err != nil {
		return nil, err
	}
	if verbose {
		return &Report{Text: FormatReport(result), Result: result}, nil
	}
	return OpenPorts(result.Ports()), nil
}

func (cfg Config) portList() ([]int, error) {
	if len(cfg.Ports) == 0 {
		if err := cfg.Range.Validate(); err != nil {
			return nil, err
		}
		return cfg.Range.Ports(), nil
	}

	out := make([]int, 0, len(cfg.Ports))
	seen := make(map[int]bool, len(cfg.Ports))
	for _, p := range cfg.Ports {
		if p < MinPort || p > MaxPort {
			return nil, &RangeError{Start: p, End: p, Reason: fmt.Sprintf("port must be within %d-%d", MinPort, MaxPort)}
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out, nil
}

func buildSummary(result *ScanResult, scanned int) Summary {
	named := 0
	for _, p := range result.OpenPorts {
		if p.Service != "" {
			named++
		}
	}
	return Summary{
		PortsScanned:  scanned,
		OpenPortCount: len(result.OpenPorts),
		NamedServices: named,
	}
}
