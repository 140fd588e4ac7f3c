package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/liamg/netmap/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *scan.SweepReport {
	return &scan.SweepReport{
		Meta: scan.ScanMetadata{
			Hosts: []string{"10.0.0.1"},
			Ports: []int{12345},
		},
		Hosts: []scan.SweepHostResult{
			{Host: "10.0.0.1", Delta: 3 * time.Millisecond, Live: true},
		},
	}
}

func TestWriteReportText(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeReport(buf, "text", sampleReport(), func(w io.Writer) {
		_, _ = io.WriteString(w, "hello")
	}))
	assert.Equal(t, "hello", buf.String())
}

func TestWriteReportJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeReport(buf, "json", sampleReport(), nil))

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "meta")
	assert.Contains(t, buf.String(), `"live": true`)
}

func TestWriteReportYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeReport(buf, "yaml", sampleReport(), nil))

	decoded := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "hosts")
}

func TestWriteReportUnknownFormat(t *testing.T) {
	assert.Error(t, writeReport(&bytes.Buffer{}, "xml", sampleReport(), nil))
}
