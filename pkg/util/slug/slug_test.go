package slug

import (
	"errors"
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Hip Replacement Surgery", "hip-replacement-surgery"},
		{"punctuation", "Dr. Ahmed Khan, Cardiologist!", "dr-ahmed-khan-cardiologist"},
		{"multiple separators", "a  -  b", "a-b"},
		{"leading and trailing", "  --hello--  ", "hello"},
		{"digits kept", "Top 5 Hospitals 2025", "top-5-hospitals-2025"},
		{"uppercase folded", "APOLLO Bangalore", "apollo-bangalore"},
		{"arabic drops out", "جراحة القلب", ""},
		{"mixed keeps latin", "علاج Hip Surgery", "hip-surgery"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 60)
	got := Make(long)
	if len(got) > MaxLen {
		t.Fatalf("slug length %d exceeds %d", len(got), MaxLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("truncated slug ends with hyphen: %q", got)
	}
	if err := Validate(got); err != nil {
		t.Fatalf("truncated slug invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"hip-replacement-surgery-bangalore", nil},
		{"a", nil},
		{"top-5", nil},
		{"", ErrEmpty},
		{"Hello-World", ErrInvalid},
		{"double--hyphen", ErrInvalid},
		{"-leading", ErrInvalid},
		{"trailing-", ErrInvalid},
		{"under_score", ErrInvalid},
		{"spaced out", ErrInvalid},
		{strings.Repeat("a", MaxLen+1), ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Validate(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestMakeProducesValid(t *testing.T) {
	inputs := []string{
		"Hip Replacement Surgery",
		"Comprehensive Care Package (2025)",
		"Cost Comparison: GCC vs India",
	}
	for _, in := range inputs {
		if err := Validate(Make(in)); err != nil {
			t.Errorf("Make(%q) produced invalid slug: %v", in, err)
		}
	}
}
