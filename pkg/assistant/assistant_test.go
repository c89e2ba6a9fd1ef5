package assistant

import (
	"strings"
	"testing"
)

func TestSynthesisTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty text floors at minimum", text: "", want: 32},
		{name: "short text floors at minimum", text: "abcd", want: 32},
		{name: "long text charges per four runes", text: strings.Repeat("a", 200), want: 50},
		{name: "partial block rounds up", text: strings.Repeat("a", 201), want: 51},
		{name: "runes not bytes", text: strings.Repeat("я", 200), want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SynthesisTokens(tt.text); got != tt.want {
				t.Errorf("SynthesisTokens(%d runes) = %d, want %d", len([]rune(tt.text)), got, tt.want)
			}
		})
	}
}
