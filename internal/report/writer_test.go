package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/natscan/natscan/internal/model"
)

// testTable returns a two-row table for tests.
func testTable() *model.Table {
	return model.NewTable([]*model.Record{
		{
			ArticleID: "1001",
			First:     "John",
			Last:      "Smith",
			Address:   "12 Main St",
			DateRaw:   "15.12.66",
			Date:      time.Date(1966, time.December, 15, 0, 0, 0, 0, time.UTC),
			Valid:     true,
		},
		{
			ArticleID: "1002",
			First:     "Mary",
			Last:      "Jones",
			Address:   "4 High St, Fitzroy",
			DateRaw:   "32.1.66",
			Valid:     true,
		},
	})
}

func TestSimpleWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes aligned table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(testTable())
		if err != nil {
			t.Fatal(err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		out := buf.String()
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("got %d lines, want 4 (header, rule, 2 rows):\n%s", len(lines), out)
		}
		if !strings.HasPrefix(lines[0], "id") {
			t.Errorf("header = %q, want id first", lines[0])
		}
		if !strings.Contains(lines[2], "Smith") {
			t.Errorf("row = %q, want Smith", lines[2])
		}
		if !strings.Contains(lines[3], "unparsed") {
			t.Errorf("row = %q, want unparsed sentinel", lines[3])
		}

		if !strings.Contains(lines[2], "1966-12-15") {
			t.Errorf("row = %q, want formatted date", lines[2])
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(&model.Table{}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "No records") {
			t.Errorf("output = %q, want empty-table notice", buf.String())
		}
	})

	t.Run("without header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithoutSimpleHeader()).Write(testTable()); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "datestring") {
			t.Errorf("output = %q, want no header", buf.String())
		}
	})
}

func TestCSVWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(testTable()); err != nil {
			t.Fatal(err)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines, want 3", len(lines))
		}
		if lines[0] != "id,first,last,address,date,datestring" {
			t.Errorf("header = %q", lines[0])
		}
		// Commas inside the address are quoted.
		if !strings.Contains(lines[2], `"4 High St, Fitzroy"`) {
			t.Errorf("row = %q, want quoted address", lines[2])
		}
	})

	t.Run("without header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf, WithoutHeader()).Write(testTable()); err != nil {
			t.Fatal(err)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
	})

	t.Run("custom delimiter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf, WithComma('\t')).Write(testTable()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "id\tfirst") {
			t.Errorf("output = %q, want tab-separated", buf.String())
		}
	})
}

func TestJSONWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("round-trips table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testTable()); err != nil {
			t.Fatal(err)
		}

		var got model.Table
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Len() != 2 {
			t.Fatalf("got %d rows, want 2", got.Len())
		}
		if got.Rows[1].Date != model.UnparsedDate {
			t.Errorf("Rows[1].Date = %q, want %q", got.Rows[1].Date, model.UnparsedDate)
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(testTable()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("full writer wraps with metadata", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewFullJSONWriter(&buf, "1.2.3").Write(testTable()); err != nil {
			t.Fatal(err)
		}

		var got JSONReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Version != "1.2.3" {
			t.Errorf("Version = %q, want %q", got.Version, "1.2.3")
		}
		if got.Count != 2 {
			t.Errorf("Count = %d, want 2", got.Count)
		}
	})
}

func TestMarkdownWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(testTable()); err != nil {
			t.Fatal(err)
		}

		out := buf.String()
		if !strings.Contains(out, "# Naturalisation Records") {
			t.Errorf("output = %q, want heading", out)
		}
		if !strings.Contains(out, "Smith") {
			t.Errorf("output = %q, want row content", out)
		}
		if !strings.Contains(out, "Total records: 2") {
			t.Errorf("output = %q, want record count", out)
		}
	})

	t.Run("custom title", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, WithTitle("Rejected Records")).Write(testTable()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "# Rejected Records") {
			t.Errorf("output = %q, want custom heading", buf.String())
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(&model.Table{}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "No records extracted.") {
			t.Errorf("output = %q, want empty-table notice", buf.String())
		}
	})
}

// failingWriter always fails, for MultiWriter error propagation.
type failingWriter struct{}

func (failingWriter) Write(*model.Table) (int, error) {
	return 0, errors.New("write failed")
}

func TestMultiWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewCSVWriter(&a), NewJSONWriter(&b))

		if _, err := mw.Write(testTable()); err != nil {
			t.Fatal(err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected output in both writers")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewCSVWriter(&buf))

		if _, err := mw.Write(testTable()); err == nil {
			t.Error("expected error")
		}
		if buf.Len() != 0 {
			t.Error("expected no output after failing writer")
		}
	})
}
