package common

import (
	"strings"
	"testing"
)

func TestNormalizeWhatsAppNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "leading zero",
			input:    "081234567890",
			expected: "6281234567890",
		},
		{
			name:     "leading eight",
			input:    "81234567890",
			expected: "6281234567890",
		},
		{
			name:     "already normalized",
			input:    "6281234567890",
			expected: "6281234567890",
		},
		{
			name:     "formatted with separators",
			input:    "0812-3456-7890",
			expected: "6281234567890",
		},
		{
			name:     "international plus prefix",
			input:    "+62 812 3456 7890",
			expected: "6281234567890",
		},
		{
			name:     "foreign country code untouched",
			input:    "14155550123",
			expected: "14155550123",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWhatsAppNumber(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeWhatsAppNumber(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeWhatsAppNumberIdempotent(t *testing.T) {
	inputs := []string{"081234567890", "81234567890", "6281234567890", "0812-3456-7890", "+6281234567890"}
	for _, in := range inputs {
		once := NormalizeWhatsAppNumber(in)
		twice := NormalizeWhatsAppNumber(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("081234567890", "Halo, poster Anda sudah tayang!")
	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Errorf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("message not URL-encoded: %s", link)
	}

	bare := WhatsAppLink("081234567890", "")
	if bare != "https://wa.me/6281234567890" {
		t.Errorf("bare link = %s", bare)
	}
}
