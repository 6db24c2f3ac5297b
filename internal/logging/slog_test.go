package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)

	log.Info("update confirmed", "hostname", "www", "domain", "example.org")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "update confirmed", rec["msg"])
	assert.Equal(t, "www", rec["hostname"])
	assert.Equal(t, "example.org", rec["domain"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "text", &buf)

	log.Info("connected", "endpoint", "127.0.0.1:65010")

	out := buf.String()
	assert.Contains(t, out, "msg=connected")
	assert.Contains(t, out, "endpoint=127.0.0.1:65010")
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{name: "debug passes everything", level: "debug", wantDebug: true, wantWarn: true},
		{name: "info drops debug", level: "info", wantDebug: false, wantWarn: true},
		{name: "error drops warn", level: "error", wantDebug: false, wantWarn: false},
		{name: "unknown falls back to info", level: "bogus", wantDebug: false, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, "text", &buf)

			log.Debug("dbg")
			log.Warn("wrn")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "msg=dbg"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "msg=wrn"))
		})
	}
}

func TestWith_AddsPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "text", &buf)

	child := log.With("op", "abc123")
	child.Info("step")

	assert.Contains(t, buf.String(), "op=abc123")
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()

	// Must not panic, and With must keep discarding.
	log.Debug("a")
	log.Info("b", "k", "v")
	log.Warn("c")
	log.Error("d")
	log.With("k", "v").Info("e")
}
