package debug

import (
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.w == nil {
		t.Error("TreeWriter builder is nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "root",
			want:   "root\n",
		},
		{
			name:   "nested with args",
			depth:  2,
			format: "%q: (%d)",
			args:   []any{"@media", 3},
			want:   "    \"@media\": (3)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextAndNumber(t *testing.T) {
	tw := NewTreeWriter()
	tw.Text(0, "margin", "10px 20px")
	tw.Number(1, "opacity", "0.5")

	want := "\"margin\": \"10px 20px\"\n  \"opacity\": 0.5\n"
	if got := tw.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTreeWriter_TextQuotesSpecialCharacters(t *testing.T) {
	tw := NewTreeWriter()
	tw.Text(0, "content", "\"a\"\n")

	want := "\"content\": \"\\\"a\\\"\\n\"\n"
	if got := tw.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
