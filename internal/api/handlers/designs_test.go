package handlers

import "testing"

func TestPDFFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Banner", "My_Banner.pdf"},
		{"Banner Design", "Banner_Design.pdf"},
		{"NoSpaces", "NoSpaces.pdf"},
		{"multiple   spaces", "multiple_spaces.pdf"},
		{"tabs\tand\nnewlines", "tabs_and_newlines.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := pdfFileName(tt.title); got != tt.want {
				t.Errorf("pdfFileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
