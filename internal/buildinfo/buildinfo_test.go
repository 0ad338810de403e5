package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	oldV, oldD, oldC := buildVersion, buildDate, buildCommit
	t.Cleanup(func() { buildVersion, buildDate, buildCommit = oldV, oldD, oldC })

	buildVersion, buildDate, buildCommit = "v1.0.0", "2025-01-01", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2025-01-01\nBuild commit: abc123\n", buf.String())
	assert.Equal(t, Info{Version: "v1.0.0", Date: "2025-01-01", Commit: "abc123"}, Get())
}

func TestDefaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Contains(t, buf.String(), "Build version: N/A")
}
