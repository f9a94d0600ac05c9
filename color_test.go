package scanline

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestRGB_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"orange", Orange, color.NRGBA{255, 127, 0, 255}},
		{"clamps above one", RGB{2, 0, 0}, color.NRGBA{255, 0, 0, 255}},
		{"clamps below zero", RGB{-1, 0, 0}, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("%+v.Color() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestRGB_JSON(t *testing.T) {
	t.Run("encodes as a three-element array", func(t *testing.T) {
		data, err := json.Marshal(RGB{1, 0.5, 0})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != "[1,0.5,0]" {
			t.Errorf("marshal = %s, want [1,0.5,0]", data)
		}
	})

	t.Run("decodes an array", func(t *testing.T) {
		var c RGB
		if err := json.Unmarshal([]byte("[0,0,1]"), &c); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if c != Blue {
			t.Errorf("unmarshal = %+v, want blue", c)
		}
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		var c RGB
		if err := json.Unmarshal([]byte("[0,0]"), &c); err == nil {
			t.Error("two-element color accepted")
		}
		if err := json.Unmarshal([]byte("[0,0,0,1]"), &c); err == nil {
			t.Error("four-element color accepted")
		}
	})
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{"six digit red", "#FF0000", Red},
		{"six digit without hash", "00FF00", Green},
		{"three digit", "#00F", Blue},
		{"lowercase", "#ffff00", Yellow},
		{"invalid length", "#1234", RGB{}},
		{"empty", "", RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexRGB(tt.hex); got != tt.want {
				t.Errorf("HexRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}
