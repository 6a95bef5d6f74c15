package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_PlainTextIndentMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "indent"}, strings.NewReader("(def foo\n  bar"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}
	if want := "(def foo\n  bar)"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRun_JSONOutputCarriesError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "paren", "-json"}, strings.NewReader(")"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), `"unmatched-close-paren"`) {
		t.Errorf("stdout = %q, want it to mention unmatched-close-paren", stdout.String())
	}
}

func TestRun_UnknownModeFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "bogus"}, strings.NewReader("()"), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestRun_OptionsJSONOverridesCursor(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "smart", "-json", "-options-json", `{"cursorX":1,"cursorLine":0}`},
		strings.NewReader("(a b)"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"cursorX":1`) {
		t.Errorf("stdout = %q, want cursorX echoed back", stdout.String())
	}
}

func TestRun_WidthsDiagnosticMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-widths"}, strings.NewReader("abc\ndef"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "line 0:") || !strings.Contains(stderr.String(), "line 1:") {
		t.Errorf("stderr = %q, want per-line grapheme counts", stderr.String())
	}
}
