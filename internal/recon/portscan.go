package recon

import (
	"context"
	"net"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// PortScan performs TCP connect scanning of ports on addr with at most
// concurrency probes in flight. Returns only open ports, ascending.
// Closed/filtered ports are silently skipped. If ctx is cancelled the ports
// found so far are returned together with ctx.Err().
func PortScan(ctx context.Context, addr string, ports []int, concurrency int, timeout time.Duration) ([]int, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	// Each probe writes only its own slot, so no locking is needed and the
	// result keeps input order.
	open := make([]bool, len(ports))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, port := range ports {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			open[i] = probe(gctx, addr, port, timeout)
			return nil
		})
	}
	_ = g.Wait()

	var results []int
	for i, ok := range open {
		if ok {
			results = append(results, ports[i])
		}
	}
	sort.Ints(results)
	return results, ctx.Err()
}

// probe reports whether a TCP connect to addr:port succeeds within timeout.
// The connection is closed immediately.
func probe(ctx context.Context, addr string, port int, timeout time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp4", net.JoinHostPort(addr, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
