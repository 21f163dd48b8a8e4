package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.PrintInfo("starting server", map[string]string{"addr": ":4000", "env": "development"})

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "starting server", entry.Message)
	assert.Equal(t, ":4000", entry.Properties["addr"])
	assert.Empty(t, entry.Trace)
}

func TestPrintErrorIncludesTrace(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.PrintError(errors.New("boom"), nil)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "boom", entry.Message)
	assert.NotEmpty(t, entry.Trace)
}

func TestMinLevelSuppressesEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.PrintInfo("suppressed", nil)
	assert.Zero(t, buf.Len())
}

func TestWriteSatisfiesIOWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	n, err := l.Write([]byte("raw error line"))
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "raw error line", entry.Message)
}
