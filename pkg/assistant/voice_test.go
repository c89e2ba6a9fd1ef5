package assistant

import (
	"encoding/base64"
	"testing"
)

func TestNormalizeVoice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "female-ru"},
		{in: "female-ru", want: "female-ru"},
		{in: "male-en", want: "male-en"},
		{in: "robot-3000", want: "female-ru"},
	}
	for _, tt := range tests {
		if got := NormalizeVoice(tt.in); got != tt.want {
			t.Errorf("NormalizeVoice(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSpeed(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "normal"},
		{in: "slow", want: "slow"},
		{in: "fast", want: "fast"},
		{in: "ludicrous", want: "normal"},
	}
	for _, tt := range tests {
		if got := NormalizeSpeed(tt.in); got != tt.want {
			t.Errorf("NormalizeSpeed(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDemoAudioIsValidBase64(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(DemoAudioBase64)
	if err != nil {
		t.Fatalf("demo audio is not valid base64: %v", err)
	}
	if string(raw[:4]) != "RIFF" {
		t.Errorf("demo audio should be a RIFF/WAV container, got leading bytes %q", raw[:4])
	}
}
