package core

import "testing"

func TestColorDim(t *testing.T) {
	tests := []struct {
		in, want Color
	}{
		{ColorBrightGreen, ColorGreen},
		{ColorBrightWhite, ColorWhite},
		{ColorBrightRed, ColorRed},
		{ColorOrange, ColorYellow},
		{ColorCyan, ColorGray},
		{ColorDefault, ColorGray},
		{ColorGray, ColorGray},
	}

	for _, tt := range tests {
		if got := tt.in.Dim(); got != tt.want {
			t.Errorf("Color(%d).Dim() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
