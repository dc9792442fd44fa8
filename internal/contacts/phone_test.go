package contacts

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "ten digits", raw: "1234567890"},
		{name: "all zeros", raw: "0000000000"},
		{name: "nine digits", raw: "123456789", wantErr: true},
		{name: "eleven digits", raw: "12345678901", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "letter", raw: "12345a7890", wantErr: true},
		{name: "dashes", raw: "123-456-78", wantErr: true},
		{name: "plus prefix", raw: "+123456789", wantErr: true},
		{name: "spaces", raw: "123 456 78", wantErr: true},
		{name: "non-ascii digits", raw: "١٢٣٤٥٦٧٨٩٠", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePhone(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePhone(%q) = %q, want error", tt.raw, p)
				}
				if !errors.Is(err, ErrInvalidPhone) {
					t.Errorf("ParsePhone(%q) error = %v, want ErrInvalidPhone", tt.raw, err)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != "phone" {
					t.Errorf("ParsePhone(%q) error = %#v, want *ValidationError for phone", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePhone(%q) error = %v", tt.raw, err)
			}
			if p.String() != tt.raw {
				t.Errorf("ParsePhone(%q) = %q, want unchanged value", tt.raw, p)
			}
		})
	}
}

func TestParsePhone_EveryDigitPosition(t *testing.T) {
	// Every 10-digit string built from a single repeated digit is valid,
	// and swapping any position for a non-digit makes it invalid.
	for d := '0'; d <= '9'; d++ {
		raw := strings.Repeat(string(d), phoneDigits)
		if _, err := ParsePhone(raw); err != nil {
			t.Errorf("ParsePhone(%q) error = %v", raw, err)
		}
		for i := 0; i < phoneDigits; i++ {
			bad := raw[:i] + "x" + raw[i+1:]
			if _, err := ParsePhone(bad); err == nil {
				t.Errorf("ParsePhone(%q) should fail", bad)
			}
		}
	}
}
