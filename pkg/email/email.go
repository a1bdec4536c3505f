// Package email holds the email normalization rules every lookup in the
// system agrees on. The whitelist and the registration log are both keyed by
// normalized address, so this is the single place the rules live.
package email

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims an address. All store lookups and
// comparisons go through this.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Valid reports whether addr looks like a deliverable address. The check is
// deliberately shallow: one @ with something on both sides and a dot in the
// domain. Real validation happens when the admin reads the proof.
func Valid(addr string) bool {
	addr = Normalize(addr)
	at := strings.IndexByte(addr, '@')
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	domain := addr[at+1:]
	if strings.IndexByte(domain, '.') <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.ContainsAny(addr, " \t")
}

// DeriveNameFromEmail guesses a first/last name from the local part, used
// only for display when a submission omitted the name fields.
func DeriveNameFromEmail(addr string) (first, last string) {
	localPart := addr
	if at := strings.IndexByte(addr, '@'); at > 0 {
		localPart = addr[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first = capitalize(parts[0])
	last = "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
