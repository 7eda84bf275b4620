package util

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"tiny max returns ellipsis", "hello", 3, "..."},
		{"zero max returns ellipsis", "hello", 0, "..."},
		{"empty string", "", 5, ""},
		{"multibyte runes", "débat éternel", 9, "débat ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		width      int
		wantFilled int
	}{
		{"empty", 0, 10, 0},
		{"full", 1, 10, 10},
		{"half", 0.5, 10, 5},
		{"clamped below", -0.5, 10, 0},
		{"clamped above", 2.0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bar(tt.ratio, tt.width)
			filled := strings.Count(got, "█")
			if filled != tt.wantFilled {
				t.Errorf("Bar(%v, %d) filled = %d, want %d", tt.ratio, tt.width, filled, tt.wantFilled)
			}
			if n := len([]rune(got)); n != tt.width {
				t.Errorf("Bar(%v, %d) width = %d, want %d", tt.ratio, tt.width, n, tt.width)
			}
		})
	}
}

func TestBar_ZeroWidth(t *testing.T) {
	if got := Bar(0.5, 0); got != "" {
		t.Errorf("Bar(0.5, 0) = %q, want empty", got)
	}
}
