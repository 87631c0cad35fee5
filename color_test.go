package vg

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Red, false},
		{"00ff00", RGB(0, 1, 0), false},
		{"#00F", Blue, false},
		{"FFF0", Color{1, 1, 1, 0}, false},
		{"#00000080", Color{0, 0, 0, 128.0 / 255}, false},
		{"", Color{}, true},
		{"#GG0000", Color{}, true},
		{"12345", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorPacked(t *testing.T) {
	c := Color{1, 0.5, 0, 1}
	if got := c.Packed(); got != 0xFF8000FF {
		t.Errorf("Packed() = 0x%08X, want 0xFF8000FF", got)
	}
	back := ColorFromPacked(0x11223344)
	if got := back.Packed(); got != 0x11223344 {
		t.Errorf("round trip = 0x%08X", got)
	}
}

func TestColorClamps(t *testing.T) {
	c := Color{-1, 2, 0.5, 1}
	if got := c.NRGBA(); got != (color.NRGBA{0, 255, 128, 255}) {
		t.Errorf("NRGBA() = %v", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{128, 0, 0, 128})
	if got.NRGBA() != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("FromColor(premultiplied) = %v", got.NRGBA())
	}
}
