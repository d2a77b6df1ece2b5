package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// Configure locks in the first configuration process-wide, so a single test
// configures once with a buffer and exercises everything behind it.
func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})

	loader := WithComponent("loader")
	loader.Debug().Str("file", "dune.json").Msg("loaded biome")
	root := Base()
	root.Info().Msg("hello")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if first["component"] != "loader" {
		t.Errorf("component = %v, want %q", first["component"], "loader")
	}
	if first["level"] != "debug" {
		t.Errorf("level = %v, want %q", first["level"], "debug")
	}
	if first["message"] != "loaded biome" {
		t.Errorf("message = %v, want %q", first["message"], "loaded biome")
	}
	if first["file"] != "dune.json" {
		t.Errorf("file = %v, want %q", first["file"], "dune.json")
	}

	// Later Configure calls must not replace the writer or the level.
	Configure(Config{Level: "error"})
	reconfigured := Base()
	reconfigured.Info().Msg("still buffered")
	if !strings.Contains(buf.String(), "still buffered") {
		t.Error("second Configure replaced the logger")
	}
}
