package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{" ERROR ", "error"},
		{"off", "disabled"},
		{"", "info"},
		{"nonsense", "info"},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in).String(); got != c.want {
			t.Fatalf("ParseLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNew_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Format: "json", Component: "root", Writer: &buf})

	log.Info().Msg("hidden")
	named := Named(log, "github")
	named.Warn().Err(errors.New("boom")).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %s", out)
	}
	for _, want := range []string{`"message":"shown"`, `"component":"github"`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %s: %s", want, out)
		}
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", Writer: &buf, NoColor: true})
	log.Debug().Str("query", "octocat").Msg("cache miss")

	out := buf.String()
	if !strings.Contains(out, "cache miss") || !strings.Contains(out, "query=octocat") {
		t.Fatalf("console output = %q", out)
	}
}

func TestNew_NilWriterDiscards(t *testing.T) {
	log := New(Options{Level: "debug"})
	log.Error().Msg("nowhere")
	if log.GetLevel().String() != "disabled" {
		t.Fatalf("nil writer logger level = %s, want disabled", log.GetLevel())
	}
}

func TestNamed_EmptyComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Named(New(Options{Format: "json", Writer: &buf}), "")
	log.Info().Msg("x")
	if strings.Contains(buf.String(), "component") {
		t.Fatalf("empty component added a field: %s", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	if w, err := OpenFile("  "); w != nil || err != nil {
		t.Fatalf("OpenFile(blank) = %v, %v", w, err)
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "reposearch.log")
	w, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	log := New(Options{Format: "json", Writer: w})
	log.Info().Msg("to disk")
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to disk") {
		t.Fatalf("log file = %q", data)
	}
}
