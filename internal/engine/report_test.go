package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReport_NoOpenPorts(t *testing.T) {
	r := &ScanResult{Address: "192.0.2.7"}
	got := FormatReport(r)

	assert.Equal(t, "Open ports for 192.0.2.7\nPORT     SERVICE\nNo open ports found", got)
	assert.True(t, strings.HasSuffix(got, "No open ports found"))
}

func TestFormatReport_WithHostname(t *testing.T) {
	r := &ScanResult{
		Address:   "192.0.2.7",
		Hostname:  "scanme.example",
		OpenPorts: []PortResult{{Port: 22, Service: "ssh"}},
	}
	assert.Equal(t, "Open ports for scanme.example (192.0.2.7)\nPORT     SERVICE\n22       ssh", FormatReport(r))
}

func TestFormatReport_UnnamedPortPadding(t *testing.T) {
	r := &ScanResult{
		Address: "192.0.2.7",
		OpenPorts: []PortResult{
			{Port: 443},
			{Port: 8080, Service: "http-proxy"},
		},
	}
	got := FormatReport(r)
	lines := strings.Split(got, "\n")

	assert.Equal(t, []string{
		"Open ports for 192.0.2.7",
		"PORT     SERVICE",
		"443      ",
		"8080     http-proxy",
	}, lines)
}

func TestFormatReport_TrimsTrailingWhitespace(t *testing.T) {
	r := &ScanResult{
		Address: "192.0.2.7",
		OpenPorts: []PortResult{
			{Port: 80, Service: "http"},
			{Port: 443},
		},
	}
	got := FormatReport(r)
	assert.Equal(t, "Open ports for 192.0.2.7\nPORT     SERVICE\n80       http\n443", got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestFormatReport_WidePortsKeepColumn(t *testing.T) {
	r := &ScanResult{
		Address:   "192.0.2.7",
		OpenPorts: []PortResult{{Port: 65535, Service: "x"}},
	}
	assert.Contains(t, FormatReport(r), "65535    x")
}
