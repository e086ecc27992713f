package recon

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/vulnverified/portsweep/internal/engine"
)

// Resolver implements engine.TargetResolver. With Nameserver empty it uses
// the system resolver; otherwise it queries Nameserver directly.
type Resolver struct {
	Nameserver string
	Timeout    time.Duration
}

// Resolve returns the first IPv4 address for target. Dotted-quad literals
// are returned as-is; other address-shaped targets are rejected without a
// DNS query.
func (r *Resolver) Resolve(ctx context.Context, target string) (string, error) {
	target = strings.TrimSpace(target)
	if engine.ValidateIPv4(target) == nil {
		return target, nil
	}
	if engine.AddressShaped(target) || target == "" {
		return "", engine.NewResolutionError(target, "", nil)
	}

	addrs, err := r.lookupIPv4(ctx, target)
	if err != nil {
		return "", engine.NewResolutionError(target, classifyDNSError(err), err)
	}
	return addrs[0], nil
}

func (r *Resolver) lookupIPv4(ctx context.Context, host string) ([]string, error) {
	if r.Nameserver != "" {
		return newDNSClient(r.Nameserver, r.Timeout).lookupA(ctx, host)
	}

	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			addrs = append(addrs, v4.String())
		}
	}
	if len(addrs) == 0 {
		return nil, &net.DNSError{Err: "no IPv4 address", Name: host, IsNotFound: true}
	}
	return addrs, nil
}

// Reverse returns the PTR name for addr, or "" when there is none or the
// lookup fails.
func (r *Resolver) Reverse(ctx context.Context, addr string) string {
	var (
		names []string
		err   error
	)
	if r.Nameserver != "" {
		names, err = newDNSClient(r.Nameserver, r.Timeout).lookupPTR(ctx, addr)
	} else {
		names, err = net.DefaultResolver.LookupAddr(ctx, addr)
	}
	if err != nil || len(names) == 0 {
		return ""
	}
	return strings.TrimSuffix(names[0], ".")
}
