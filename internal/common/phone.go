package common

import (
	"net/url"
	"regexp"
	"strings"
)

var nonDigitPattern = regexp.MustCompile(`\D`)

// NormalizeWhatsAppNumber rewrites an Indonesian phone number to the 62
// country-code form used as the client key everywhere in the system.
//
// Rules:
//  1. strip all non-digit characters
//  2. leading "0" is replaced with "62"
//  3. leading "8" gets "62" prepended
//  4. anything else is left as-is (already prefixed or malformed; no length
//     or country-code validation is performed)
//
// The function is idempotent: normalizing an already-normalized number
// returns it unchanged.
func NormalizeWhatsAppNumber(raw string) string {
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	switch {
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	case strings.HasPrefix(digits, "8"):
		return "62" + digits
	default:
		return digits
	}
}

// WhatsAppLink builds a https://wa.me deep link for a number and message.
// The number is normalized first; the message is URL-encoded.
func WhatsAppLink(number, message string) string {
	link := "https://wa.me/" + NormalizeWhatsAppNumber(number)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
