package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestClipHandlerClipsLongStrings verifies long string attributes are
// truncated with the length marker appended.
func TestClipHandlerClipsLongStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewClipHandler(
		slog.NewTextHandler(&buf, nil),
		WithMaxAttrLen(10),
	))

	long := strings.Repeat("x", 50)
	logger.Info("article loaded", "text", long)

	out := buf.String()
	if strings.Contains(out, long) {
		t.Error("output contains the full unclipped value")
	}
	if !strings.Contains(out, "(50 bytes)") {
		t.Errorf("output missing length marker: %s", out)
	}
}

// TestClipHandlerKeepsShortStrings verifies values within the budget
// pass through untouched.
func TestClipHandlerKeepsShortStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewClipHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("record accepted", "last", "Smith")

	if !strings.Contains(buf.String(), "last=Smith") {
		t.Errorf("short attribute was altered: %s", buf.String())
	}
}

// TestClipHandlerGroups verifies attributes inside groups are clipped.
func TestClipHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewClipHandler(
		slog.NewTextHandler(&buf, nil),
		WithMaxAttrLen(5),
	))

	logger.Info("msg", slog.Group("article", slog.String("text", "0123456789")))

	if strings.Contains(buf.String(), "0123456789") {
		t.Errorf("group attribute was not clipped: %s", buf.String())
	}
}

// TestClipLoggerLevels verifies the verbose flag controls debug output.
func TestClipLoggerLevels(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	NewClipLogger(&quiet, false).Debug("hidden")
	if quiet.Len() != 0 {
		t.Errorf("non-verbose logger emitted debug output: %s", quiet.String())
	}

	var verbose bytes.Buffer
	NewClipLogger(&verbose, true).Debug("visible")
	if verbose.Len() == 0 {
		t.Error("verbose logger suppressed debug output")
	}
}
