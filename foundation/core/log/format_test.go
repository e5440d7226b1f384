package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "expression rejected")
	e.Timestamp = time.Date(2026, 10, 12, 9, 30, 0, 0, time.UTC)
	e.Logger = "parser"
	e.WithFields(Fields{"line": 3, "column": 7})
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.New("unexpected token").WithCode(mdwerror.CodeSyntax)

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	checks := map[string]interface{}{
		"level":     "warn",
		"message":   "expression rejected",
		"logger":    "parser",
		"timestamp": "2026-10-12T09:30:00Z",
		"line":      float64(3),
		"error":     "unexpected token",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("data[%q] = %v, want %v", k, data[k], want)
		}
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", data)
	}
	if details["code"] != "LOGIC_SYNTAX" {
		t.Errorf("error_details.code = %v, want LOGIC_SYNTAX", details["code"])
	}
}

func TestTextFormatter(t *testing.T) {
	entry := testEntry()
	entry.CorrelationID = "run-1"
	entry.Error = errors.New("boom")

	out, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `09:30:00 [WRN] {parser} (run=run-1) expression rejected [column=7 line=3] error="boom"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), "\033[33m") || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("Format() = %q, want yellow wrapped line", out)
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("Format() with colors disabled = %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.Fields["source"] = "A AND B"
	entry.Duration = 1500 * time.Microsecond

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-12T09:30:00Z level=warn message="expression rejected" logger=parser column=7 line=3 source="A AND B" duration_ms=1.500` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var got string
			switch GetFormatter(tt.format).(type) {
			case *JSONFormatter:
				got = "*log.JSONFormatter"
			case *TextFormatter:
				got = "*log.TextFormatter"
			case *ConsoleFormatter:
				got = "*log.ConsoleFormatter"
			case *LogfmtFormatter:
				got = "*log.LogfmtFormatter"
			}
			if got != tt.want {
				t.Errorf("GetFormatter(%v) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
