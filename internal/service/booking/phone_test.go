package booking

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		country string
		want    string
		wantErr bool
	}{
		{"e164 passthrough", "+966501234567", "", "+966501234567", false},
		{"saudi local with country", "0501234567", "Saudi Arabia", "+966501234567", false},
		{"uae local with country", "0501234567", "UAE", "+971501234567", false},
		{"spaces and dashes", "+966 50-123-4567", "", "+966501234567", false},
		{"empty", "", "Saudi Arabia", "", true},
		{"letters", "not a phone", "Qatar", "", true},
		{"local without region", "0501234567", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.raw, tt.country)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("normalizePhone(%q, %q) error = %v, want ErrInvalidPhone", tt.raw, tt.country, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizePhone(%q, %q) unexpected error: %v", tt.raw, tt.country, err)
			}
			if got != tt.want {
				t.Errorf("normalizePhone(%q, %q) = %q, want %q", tt.raw, tt.country, got, tt.want)
			}
		})
	}
}
