package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"Error":   ErrorLevel,
		"fatal":   FatalLevel,
		"verbose": InfoLevel,
		"":        InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Info().Msg("dropped")
	Warn().Str("courseID", "abc").Msg("kept")

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level = %v", zerolog.GlobalLevel())
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected exactly one event, got %q", buf.String())
	}
	var event map[string]interface{}
	if err := json.Unmarshal(lines[0], &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event["message"] != "kept" || event["courseID"] != "abc" || event["level"] != "warn" {
		t.Fatalf("unexpected event: %v", event)
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	lgr := WithField("component", "courses")
	lgr.Debug().Msg("hello")

	if !bytes.Contains(buf.Bytes(), []byte(`"component":"courses"`)) {
		t.Fatalf("field missing from %q", buf.String())
	}
}
