package scope

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func nrgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

func TestLoadStyle(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Style
		wantErr bool
	}{
		{
			name: "full document",
			yaml: `
stroke: {r: 255, g: 128, b: 0, a: 255}
strokeWidth: 2.5
background: {r: 0, g: 0, b: 32, a: 255}
`,
			want: Style{
				Stroke:      nrgba(255, 128, 0, 255),
				StrokeWidth: 2.5,
				Background:  nrgba(0, 0, 32, 255),
			},
		},
		{
			name: "partial document keeps defaults",
			yaml: "strokeWidth: 4\n",
			want: func() Style {
				s := DefaultStyle()
				s.StrokeWidth = 4
				return s
			}(),
		},
		{
			name:    "zero stroke width rejected",
			yaml:    "strokeWidth: 0\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			yaml:    "stroke: [not a color\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadStyle(strings.NewReader(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle: %v", err)
			}
			if got != tt.want {
				t.Errorf("style = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStyleRoundTrip(t *testing.T) {
	in := Style{
		Stroke:      nrgba(10, 20, 30, 40),
		StrokeWidth: 1.25,
		Background:  nrgba(50, 60, 70, 80),
	}
	var buf bytes.Buffer
	if err := SaveStyle(&buf, in); err != nil {
		t.Fatalf("SaveStyle: %v", err)
	}
	out, err := LoadStyle(&buf)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed style: %+v -> %+v", in, out)
	}
}
