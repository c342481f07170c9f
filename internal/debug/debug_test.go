package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetDebug(false)
		SetNoColor(false)
		SetOutput(nil)
	})
	return &buf
}

func TestDebugOutput(t *testing.T) {
	buf := captureOutput(t)
	SetNoColor(true)
	SetDebug(true)

	Debug("test message %s", "arg")
	output := buf.String()

	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("Output should contain [DEBUG] prefix, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	// Should contain timestamp
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
	if strings.Contains(output, colorCyan) {
		t.Errorf("Output should not contain color codes with no-color, got: %q", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(false)

	Debug("hidden %d", 1)
	DebugSection("hidden")
	DebugValue("hidden", 1)

	if buf.Len() != 0 {
		t.Errorf("Expected no output when disabled, got: %s", buf.String())
	}
}

func TestDebugSectionAndValue(t *testing.T) {
	buf := captureOutput(t)
	SetNoColor(true)
	SetDebug(true)

	DebugSection("generate")
	DebugValue("[app] Target", "/tmp/out")
	output := buf.String()

	if !strings.Contains(output, "=== generate ===") {
		t.Errorf("Section header missing, got: %s", output)
	}
	if !strings.Contains(output, "[app] Target") || !strings.Contains(output, "/tmp/out") {
		t.Errorf("Key/value missing, got: %s", output)
	}
}

func TestDebugColor(t *testing.T) {
	buf := captureOutput(t)
	SetNoColor(false)
	SetDebug(true)

	Debug("colored")
	if !strings.Contains(buf.String(), colorCyan+"[DEBUG]"+colorReset) {
		t.Errorf("Expected colored level tag, got: %q", buf.String())
	}
}
