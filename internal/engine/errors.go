package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolutionKind says whether a target that failed to resolve looked like an
// address or like a hostname.
type ResolutionKind int

const (
	KindInvalidHostname ResolutionKind = iota
	KindInvalidAddress
)

func (k ResolutionKind) String() string {
	if k == KindInvalidAddress {
		return "Invalid IP address"
	}
	return "Invalid hostname"
}

// ResolutionError is returned when the target cannot be resolved to an
// IPv4 address.
type ResolutionError struct {
	Target string
	Kind   ResolutionKind
	// Reason is the structural problem with an address-shaped target, if any.
	Reason string
	// Status is the DNS failure class (NXDOMAIN, SERVFAIL) when one is known.
	Status string
	Err    error
}

// NewResolutionError classifies target and wraps the underlying lookup error.
func NewResolutionError(target, status string, err error) *ResolutionError {
	e := &ResolutionError{
		Target: target,
		Kind:   KindInvalidHostname,
		Status: status,
		Err:    err,
	}
	if AddressShaped(target) {
		e.Kind = KindInvalidAddress
		if verr := ValidateIPv4(target); verr != nil {
			e.Reason = verr.Error()
		}
	}
	return e
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("resolve %q: %s", e.Target, strings.ToLower(e.Kind.String()))
	switch {
	case e.Reason != "":
		msg += " (" + e.Reason + ")"
	case e.Status != "":
		msg += " (" + e.Status + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Text returns the user-facing message, e.g. "Error: Invalid hostname".
func (e *ResolutionError) Text() string {
	return "Error: " + e.Kind.String()
}

// RangeError is returned for a port range outside 1-65535 or with start > end.
type RangeError struct {
	Start  int
	End    int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid port range %d-%d: %s", e.Start, e.End, e.Reason)
}

// AddressShaped reports whether s is made only of digits and dots and has at
// least one digit.
func AddressShaped(s string) bool {
	digits := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
		default:
			return false
		}
	}
	return digits > 0
}

// ValidateIPv4 checks that s is a dotted quad: four dot-separated decimal
// octets, each 0-255, without leading zeros.
func ValidateIPv4(s string) error {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return fmt.Errorf("expected 4 octets, got %d", len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("empty octet")
		}
		if len(p) > 1 && p[0] == '0' {
			return fmt.Errorf("octet %q has a leading zero", p)
		}
		if strings.Trim(p, "0123456789") != "" {
			return fmt.Errorf("octet %q is not a number", p)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return fmt.Errorf("octet %s out of range", p)
		}
	}
	return nil
}
