package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr); SetLevel("info") })

	SetLevel("info")
	Debug("hidden")
	Info("zone start", "zone", "Elwynn Forest")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `level=INFO msg="zone start" zone="Elwynn Forest"`)
	assert.NotContains(t, buf.String(), "time=", "terminal output has no timestamps")

	buf.Reset()
	SetLevel("debug")
	Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	SetLevel("error")
	Warn("quiet")
	Error("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourguide.log")
	require.NoError(t, SetFileOutput(path))
	t.Cleanup(func() { SetOutput(os.Stderr) })

	SetLevel("info")
	Info("written to file")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"written to file\"")
	assert.Contains(t, string(data), "time=")
}

func TestSetFileOutput_BadPath(t *testing.T) {
	err := SetFileOutput(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
