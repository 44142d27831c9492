package common

import "testing"

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{50000, "Rp 50.000"},
		{65000, "Rp 65.000"},
		{1250000, "Rp 1.250.000"},
		{1000000000, "Rp 1.000.000.000"},
		{-75000, "-Rp 75.000"},
	}

	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.expected {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.expected)
		}
	}
}

func TestParseRupiahRoundTrip(t *testing.T) {
	amounts := []int64{0, 1, 999, 1000, 50000, 65000, 1250000, 987654321, -150000}
	for _, amount := range amounts {
		formatted := FormatRupiah(amount)
		parsed, err := ParseRupiah(formatted)
		if err != nil {
			t.Fatalf("ParseRupiah(%q) error: %v", formatted, err)
		}
		if parsed != amount {
			t.Errorf("round trip %d -> %q -> %d", amount, formatted, parsed)
		}
	}
}

func TestParseRupiahInvalid(t *testing.T) {
	if _, err := ParseRupiah("Rp "); err == nil {
		t.Error("expected error for amount with no digits")
	}
}
