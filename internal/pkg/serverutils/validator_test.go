package serverutils

import (
	"strings"
	"testing"
)

func TestValidateRequestNotblank(t *testing.T) {
	type payload struct {
		Text string `validate:"required,notblank"`
	}

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "missing text", text: "", wantErr: true},
		{name: "whitespace-only text", text: "   ", wantErr: true},
		{name: "tabs and newlines", text: "\t\n ", wantErr: true},
		{name: "real text", text: "Добрый день", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(payload{Text: tt.text})
			if tt.wantErr && err == nil {
				t.Fatalf("ValidateRequest(%q) = nil, want error", tt.text)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateRequest(%q) = %v, want nil", tt.text, err)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "text is required") {
				t.Errorf("error = %q, want it to mention the text field", err.Error())
			}
		})
	}
}

func TestValidateRequestMessages(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	err := ValidateRequest(payload{Email: "nope", Password: "short"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "email must be a valid email") {
		t.Errorf("error = %q, missing email message", err.Error())
	}
	if !strings.Contains(err.Error(), "password must be at least 8 characters") {
		t.Errorf("error = %q, missing password message", err.Error())
	}
}
