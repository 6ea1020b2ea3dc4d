package core

import (
	"encoding/json"
	"testing"
)

func TestColorString(t *testing.T) {
	c := RGB(10, 20, 30)
	if got := c.String(); got != "rgb(10, 20, 30)" {
		t.Errorf("String() = %q, expected %q", got, "rgb(10, 20, 30)")
	}
	if got := c.Hex(); got != "#0a141e" {
		t.Errorf("Hex() = %q, expected %q", got, "#0a141e")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "canonical", input: "rgb(40, 50, 60)", want: RGB(40, 50, 60)},
		{name: "no spaces", input: "rgb(40,50,60)", want: RGB(40, 50, 60)},
		{name: "rgba header", input: "rgba(64,9,96,1)", want: RGB(64, 9, 96)},
		{name: "upper case", input: "RGB(1, 2, 3)", want: RGB(1, 2, 3)},
		{name: "hex", input: "#400960", want: RGB(64, 9, 96)},
		{name: "channel too big", input: "rgb(256, 0, 0)", wantErr: true},
		{name: "negative channel", input: "rgb(-1, 0, 0)", wantErr: true},
		{name: "missing channel", input: "rgb(1, 2)", wantErr: true},
		{name: "bad alpha", input: "rgba(1, 2, 3, 2)", wantErr: true},
		{name: "short hex", input: "#fff", wantErr: true},
		{name: "garbage", input: "blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorParseRoundTrip(t *testing.T) {
	c := RGB(255, 0, 128)
	parsed, err := ParseColor(c.String())
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if parsed != c {
		t.Errorf("round trip = %v, expected %v", parsed, c)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		C Color `json:"c"`
	}{C: RGB(1, 2, 3)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"c":"rgb(1, 2, 3)"}` {
		t.Errorf("Marshal = %s", data)
	}

	var out struct {
		C Color `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"c":"#010203"}`), &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.C != RGB(1, 2, 3) {
		t.Errorf("Unmarshal = %v, expected rgb(1, 2, 3)", out.C)
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 0); got != ColorBlack {
		t.Errorf("Blend(0) = %v, expected black", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 1); got != ColorWhite {
		t.Errorf("Blend(1) = %v, expected white", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 2); got != ColorWhite {
		t.Errorf("Blend(2) should clamp to white, got %v", got)
	}
}

func TestColorContrast(t *testing.T) {
	if ColorWhite.Contrast() != ColorBlack {
		t.Error("Contrast of white should be black")
	}
	if RGB(64, 9, 96).Contrast() != ColorWhite {
		t.Error("Contrast of dark purple should be white")
	}
}

func TestColorBlendMidpoint(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 0.5); got != ColorGray {
		t.Errorf("Blend(0.5) = %v, expected %v", got, ColorGray)
	}
}

func TestColorLuminance(t *testing.T) {
	tests := []struct {
		c        Color
		min, max float64
	}{
		{ColorBlack, 0, 0.001},
		{ColorWhite, 0.999, 1},
		{RGB(0, 255, 0), 0.7, 0.73},
		{RGB(0, 0, 255), 0.07, 0.08},
	}
	for _, tt := range tests {
		if got := tt.c.Luminance(); got < tt.min || got > tt.max {
			t.Errorf("Luminance(%v) = %f, expected in [%f, %f]", tt.c, got, tt.min, tt.max)
		}
	}
}
