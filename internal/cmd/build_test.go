package cmd

import (
	"image/png"
	"testing"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    png.CompressionLevel
		wantErr bool
	}{
		{name: "default", input: "default", want: png.DefaultCompression},
		{name: "empty means default", input: "", want: png.DefaultCompression},
		{name: "speed", input: "speed", want: png.BestSpeed},
		{name: "best", input: "best", want: png.BestCompression},
		{name: "none", input: "none", want: png.NoCompression},
		{name: "unknown", input: "fastest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCompression(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseCompression(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseCompression(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("parseCompression(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
