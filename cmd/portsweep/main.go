package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vulnverified/portsweep/internal/config"
	"github.com/vulnverified/portsweep/internal/engine"
	"github.com/vulnverified/portsweep/internal/output"
	"github.com/vulnverified/portsweep/internal/recon"
	"github.com/vulnverified/portsweep/pkg/ports"
)

// Set via ldflags at build time.
var version = "dev"

// exitResolution is returned when the target cannot be resolved.
const exitResolution = 2

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	output.Version = version

	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath  string
		rangeFlag   string
		portsList   string
		knownOnly   bool
		jsonOutput  bool
		tableOutput bool
		noColor     bool
		silent      bool
		verbose     bool
		progress    bool
		cfg         = config.Default()
	)

	rootCmd := &cobra.Command{
		Use:   "portsweep <target>",
		Short: "Find open TCP ports on a host",
		Long:  "Resolve a hostname or IPv4 address and report which TCP ports in a range accept connections, annotated with well-known service names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(args[0])
			if target == "" {
				return fmt.Errorf("target is required")
			}

			fileCfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			mergeFlags(cmd, &fileCfg, cfg)
			cfg = fileCfg

			if rangeFlag != "" {
				r, err := engine.ParseRange(rangeFlag)
				if err != nil {
					return fmt.Errorf("invalid --range: %w", err)
				}
				cfg.Range = r
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var scanPorts []int
			switch {
			case portsList != "":
				scanPorts, err = parsePorts(portsList)
				if err != nil {
					return fmt.Errorf("invalid --ports: %w", err)
				}
			case knownOnly:
				scanPorts = ports.Known()
			}

			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

			// Respect NO_COLOR env var.
			if _, ok := os.LookupEnv("NO_COLOR"); ok {
				noColor = true
			}
			noColor = noColor || cfg.NoColor
			output.SetNoColor(noColor)

			// Set up context with signal handling for clean Ctrl+C.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)
			go func() {
				select {
				case <-sigCh:
					fmt.Fprintln(stderr, "\nInterrupted, cleaning up...")
					cancel()
				case <-ctx.Done():
				}
			}()

			showProgress := progress && !jsonOutput && !silent
			reporter := output.NewProgress(stderr, progress, !showProgress)
			if showProgress {
				output.WriteHeader(stderr)
			}

			engineCfg := engine.Config{
				Target:      target,
				Range:       cfg.Range,
				Ports:       scanPorts,
				Timeout:     cfg.Timeout,
				Concurrency: cfg.Concurrency,
			}

			outcome, err := engine.RunOutcome(ctx, engineCfg, recon.DefaultStages(cfg.Nameserver), reporter, true)
			if err != nil {
				var resErr *engine.ResolutionError
				if errors.As(err, &resErr) {
					fmt.Fprintln(stderr, resErr.Text())
					return &exitError{code: exitResolution, err: err}
				}
				return err
			}
			report := outcome.(*engine.Report)

			if showProgress {
				reporter.Complete()
			}

			switch {
			case jsonOutput:
				return output.WriteJSON(stdout, report.Result)
			case tableOutput:
				output.WriteTable(stdout, report.Result, noColor)
				if !silent {
					output.WriteSummary(stdout, report.Result)
				}
			case verbose:
				output.WriteReport(stdout, report)
			default:
				output.WritePorts(stdout, report.Result.Ports())
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ~/"+config.FileName+")")
	flags.StringVarP(&rangeFlag, "range", "r", "", "Inclusive port range START-END (default: 1-1024)")
	flags.StringVarP(&portsList, "ports", "p", "", "Comma-separated port list, overrides --range")
	flags.BoolVar(&knownOnly, "known", false, "Scan every port with a well-known service name")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-port connect timeout")
	flags.IntVarP(&cfg.Concurrency, "concurrency", "c", cfg.Concurrency, "Max concurrent connections (1 scans sequentially)")
	flags.StringVar(&cfg.Nameserver, "nameserver", "", "Query this DNS server instead of the system resolver")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print the open-ports report with service names")
	flags.BoolVar(&tableOutput, "table", false, "Render open ports as a table with a summary")
	flags.BoolVar(&jsonOutput, "json", false, "Output structured JSON to stdout")
	flags.BoolVar(&progress, "progress", false, "Show stage progress on stderr")
	flags.BoolVar(&noColor, "no-color", false, "Disable terminal colors")
	flags.BoolVar(&silent, "silent", false, "Results only, no progress or summary")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("portsweep {{.Version}}\n")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}

// mergeFlags copies explicitly set flag values over the file config.
func mergeFlags(cmd *cobra.Command, dst *config.Config, flagCfg config.Config) {
	if cmd.Flags().Changed("timeout") {
		dst.Timeout = flagCfg.Timeout
	}
	if cmd.Flags().Changed("concurrency") {
		dst.Concurrency = flagCfg.Concurrency
	}
	if cmd.Flags().Changed("nameserver") {
		dst.Nameserver = flagCfg.Nameserver
	}
}

// parsePorts parses a comma-separated list of port numbers.
func parsePorts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	var result []int
	seen := make(map[int]bool)

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q", p)
		}
		if port < engine.MinPort || port > engine.MaxPort {
			return nil, fmt.Errorf("port %d out of range (1-65535)", port)
		}
		if !seen[port] {
			seen[port] = true
			result = append(result, port)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no valid ports specified")
	}
	return result, nil
}
