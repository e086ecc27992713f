package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnverified/portsweep/internal/engine"
)

func init() {
	color.NoColor = true
}

func sampleResult() *engine.ScanResult {
	return &engine.ScanResult{
		Target:   "scanme.test",
		Address:  "192.0.2.10",
		Hostname: "scanme.test",
		OpenPorts: []engine.PortResult{
			{Port: 22, Service: "ssh"},
			{Port: 31337},
		},
		Summary: engine.Summary{PortsScanned: 1024, OpenPortCount: 2, NamedServices: 1},
	}
}

func TestWritePorts(t *testing.T) {
	var buf bytes.Buffer
	WritePorts(&buf, engine.OpenPorts{22, 80, 443})
	assert.Equal(t, "22\n80\n443\n", buf.String())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, &engine.Report{Text: "Open ports for 192.0.2.10\nPORT     SERVICE\nNo open ports found"})
	assert.Equal(t, "Open ports for 192.0.2.10\nPORT     SERVICE\nNo open ports found\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "192.0.2.10", decoded["address"])
	assert.Len(t, decoded["open_ports"], 2)
}

func TestWriteTable_Simple(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResult(), true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Port      | State | Service", lines[0])
	assert.Equal(t, "22/tcp    | open  | ssh", lines[2])
	assert.Equal(t, "31337/tcp | open  | unknown", lines[3])
}

func TestWriteTable_Styled(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResult(), false)

	out := buf.String()
	assert.Contains(t, out, "22/tcp")
	assert.Contains(t, out, "ssh")
	assert.Contains(t, out, "31337/tcp")
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, &engine.ScanResult{Address: "192.0.2.10"}, true)
	assert.Contains(t, buf.String(), "No open ports found on 192.0.2.10")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Target: scanme.test (192.0.2.10)")
	assert.Contains(t, out, "Scanned: 1024 ports")
	assert.Contains(t, out, "Open: 2 (1 with a known service)")
}

func TestProgress_SilentAndVerbose(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, false, false)
	p.Stage(1, 3, "Resolving scanme.test...")
	p.Detail("hidden")
	p.Warn("careful")
	assert.Equal(t, "[1/3] Resolving scanme.test...\n  ! careful\n", buf.String())

	buf.Reset()
	p = NewProgress(&buf, true, false)
	p.Detail("shown")
	assert.Equal(t, "  shown\n", buf.String())

	buf.Reset()
	p = NewProgress(&buf, true, true)
	p.Stage(1, 3, "x")
	p.Detail("x")
	p.Warn("x")
	p.Complete()
	assert.Empty(t, buf.String())
}
