// Package recon implements the individual portsweep stages.
package recon

import (
	"errors"
	"net"
	"strings"
)

// classifyDNSError returns "NXDOMAIN" or "SERVFAIL" based on the DNS error type.
func classifyDNSError(err error) string {
	if err == nil {
		return ""
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return "NXDOMAIN"
		}
		if dnsErr.IsTimeout {
			return "TIMEOUT"
		}
		return "SERVFAIL"
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "no such host") {
		return "NXDOMAIN"
	}
	if strings.Contains(errStr, "server misbehaving") {
		return "SERVFAIL"
	}

	return ""
}
