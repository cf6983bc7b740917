package editor_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattst/insertdatetime/internal/editor"
)

func TestWriterInserter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := editor.NewWriterInserter(&buf).Insert("2016-05-29T16:07:59+01:00"); err != nil {
		t.Fatalf("Insert() returned error: %v", err)
	}
	if got := buf.String(); got != "2016-05-29T16:07:59+01:00\n" {
		t.Errorf("Insert() wrote %q, want %q", got, "2016-05-29T16:07:59+01:00\n")
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestFileInserter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		offsets  []int64
		text     string
		expected string
	}{
		{
			name:     "single point",
			content:  "hello world",
			offsets:  []int64{5},
			text:     "!",
			expected: "hello! world",
		},
		{
			name:     "multiple points in one call",
			content:  "hello world",
			offsets:  []int64{0, 5, 11},
			text:     "<t>",
			expected: "<t>hello<t> world<t>",
		},
		{
			name:     "unsorted offsets",
			content:  "abc",
			offsets:  []int64{3, 0},
			text:     "-",
			expected: "-abc-",
		},
		{
			name:     "duplicate offsets collapse",
			content:  "abc",
			offsets:  []int64{1, 1},
			text:     "x",
			expected: "axbc",
		},
		{
			name:     "empty file",
			content:  "",
			offsets:  []int64{0},
			text:     "now",
			expected: "now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, tt.content)
			if err := editor.NewFileInserter(path, tt.offsets).Insert(tt.text); err != nil {
				t.Fatalf("Insert() returned error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file back: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("file = %q, want %q", data, tt.expected)
			}
		})
	}
}

func TestFileInserterOffsetOutOfRange(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "abc")
	err := editor.NewFileInserter(path, []int64{4}).Insert("x")
	if !errors.Is(err, editor.ErrInsertion) {
		t.Fatalf("Insert() error = %v, want ErrInsertion", err)
	}

	// The file must be untouched when any offset is rejected.
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("reading file back: %v", readErr)
	}
	if string(data) != "abc" {
		t.Errorf("file = %q, want unchanged %q", data, "abc")
	}
}

func TestFileInserterMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")
	if err := editor.NewFileInserter(path, []int64{0}).Insert("x"); !errors.Is(err, editor.ErrInsertion) {
		t.Errorf("Insert() error = %v, want ErrInsertion", err)
	}
}
