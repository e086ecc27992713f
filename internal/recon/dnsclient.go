package recon

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const dnsDefaultTimeout = 5 * time.Second

// dnsClient queries a single explicit nameserver instead of the system
// resolver.
type dnsClient struct {
	server  string
	timeout time.Duration
}

func newDNSClient(nameserver string, timeout time.Duration) *dnsClient {
	if timeout <= 0 {
		timeout = dnsDefaultTimeout
	}
	return &dnsClient{server: nameserverAddr(nameserver), timeout: timeout}
}

// nameserverAddr adds the default port 53 when ns has none.
func nameserverAddr(ns string) string {
	if _, _, err := net.SplitHostPort(ns); err == nil {
		return ns
	}
	return net.JoinHostPort(strings.Trim(ns, "[]"), "53")
}

func (c *dnsClient) exchange(ctx context.Context, name string, qtype uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	client := &dns.Client{Timeout: c.timeout}
	in, _, err := client.ExchangeContext(ctx, msg, c.server)
	if err != nil {
		var netErr net.Error
		timeout := errors.As(err, &netErr) && netErr.Timeout()
		return nil, &net.DNSError{Err: err.Error(), Name: name, Server: c.server, IsTimeout: timeout}
	}
	if in.Rcode != dns.RcodeSuccess {
		return nil, &net.DNSError{
			Err:        dns.RcodeToString[in.Rcode],
			Name:       name,
			Server:     c.server,
			IsNotFound: in.Rcode == dns.RcodeNameError,
		}
	}
	return in, nil
}

// lookupA returns the IPv4 addresses for host.
func (c *dnsClient) lookupA(ctx context.Context, host string) ([]string, error) {
	in, err := c.exchange(ctx, host, dns.TypeA)
	if err != nil {
		return nil, err
	}

	var addrs []string
	for _, rr := range in.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, &net.DNSError{Err: "no A records", Name: host, Server: c.server, IsNotFound: true}
	}
	return addrs, nil
}

// lookupPTR returns the PTR names for addr, without trailing dots.
func (c *dnsClient) lookupPTR(ctx context.Context, addr string) ([]string, error) {
	arpa, err := dns.ReverseAddr(addr)
	if err != nil {
		return nil, err
	}
	in, err := c.exchange(ctx, arpa, dns.TypePTR)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, rr := range in.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			names = append(names, strings.TrimSuffix(ptr.Ptr, "."))
		}
	}
	return names, nil
}
