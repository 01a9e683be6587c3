package render

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{
			name:  "simple markdown",
			input: "# Header\n\nThis is **bold** text.",
			width: 80,
		},
		{
			name:  "empty input",
			input: "",
			width: 80,
		},
		{
			name:  "long input wraps",
			input: strings.Repeat("word ", 100),
			width: 40,
		},
		{
			name:  "list and code",
			input: "- Item 1\n- Item 2\n\n`code`",
			width: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := MarkdownWithWidth(tt.input, tt.width)
			if err != nil {
				t.Fatalf("MarkdownWithWidth() returned error: %v", err)
			}
			if output == "" && tt.input != "" {
				t.Error("expected non-empty output for non-empty input")
			}
		})
	}
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions().
		WithWidth(120).
		WithStyle("light").
		WithEmoji(false).
		WithPreserveNewLines(false)

	if opts.Width != 120 {
		t.Errorf("Width = %d, want 120", opts.Width)
	}
	if opts.Style != "light" {
		t.Errorf("Style = %q, want %q", opts.Style, "light")
	}
	if opts.EnableEmoji || opts.PreserveNewLines {
		t.Error("boolean options should be disabled")
	}
}

func TestRendererPoolReuse(t *testing.T) {
	ClearCache()

	opts := DefaultOptions()
	if _, err := Markdown("first", opts); err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}
	if _, err := Markdown("second", opts); err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}

	if CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1 pool for identical options", CacheSize())
	}

	if _, err := Markdown("third", opts.WithWidth(40)); err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}
	if CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2 pools for distinct options", CacheSize())
	}
}

func TestLoadOptionsFromConfigWithWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := LoadOptionsFromConfigWithWidth(64)
	if opts.Width != 64 {
		t.Errorf("Width = %d, want 64", opts.Width)
	}
	if opts.Style == "" {
		t.Error("Style should never be empty")
	}
}
