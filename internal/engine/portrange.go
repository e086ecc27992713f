package engine

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinPort = 1
	MaxPort = 65535
)

// PortRange is an inclusive range of TCP ports.
type PortRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Validate rejects ranges outside 1-65535 and inverted ranges.
func (r PortRange) Validate() error {
	if r.Start < MinPort || r.Start > MaxPort {
		return &RangeError{Start: r.Start, End: r.End, Reason: fmt.Sprintf("start must be within %d-%d", MinPort, MaxPort)}
	}
	if r.End < MinPort || r.End > MaxPort {
		return &RangeError{Start: r.Start, End: r.End, Reason: fmt.Sprintf("end must be within %d-%d", MinPort, MaxPort)}
	}
	if r.Start > r.End {
		return &RangeError{Start: r.Start, End: r.End, Reason: "start is greater than end"}
	}
	return nil
}

// Len returns the number of ports in the range.
func (r PortRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Ports expands the range into ascending port numbers.
func (r PortRange) Ports() []int {
	out := make([]int, 0, r.Len())
	for p := r.Start; p <= r.End; p++ {
		out = append(out, p)
	}
	return out
}

func (r PortRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseRange parses "START-END" or a single port "N".
func ParseRange(s string) (PortRange, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return PortRange{}, fmt.Errorf("invalid range start %q", lo)
	}
	end := start
	if found {
		end, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return PortRange{}, fmt.Errorf("invalid range end %q", hi)
		}
	}
	r := PortRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return PortRange{}, err
	}
	return r, nil
}
