package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()
	out, level, formatter := Log.Out, Log.GetLevel(), Log.Formatter
	t.Cleanup(func() {
		Log.SetOutput(out)
		Log.SetLevel(level)
		Log.SetFormatter(formatter)
	})
}

func TestInitJSON(t *testing.T) {
	restore(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.WithField("cell", 3).Debug("probe")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "probe", entry["msg"])
	assert.Equal(t, float64(3), entry["cell"])
}

func TestInitDefaults(t *testing.T) {
	restore(t)
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)

	Log.Debug("hidden")
	assert.Zero(t, buf.Len())
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	restore(t)
	t.Setenv("LOG_LEVEL", "loud")

	InitWithOutput(&bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
