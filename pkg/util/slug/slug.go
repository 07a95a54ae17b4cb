// Package slug generates and validates the URL identifiers shared by both
// locales. Slugs are always derived from the English name: Arabic titles
// transliterate poorly, and a single slug per record keeps hreflang pairs
// pointing at the same path.
package slug

import (
	"errors"
	"regexp"
	"strings"
)

// MaxLen matches the column width on every slugged table.
const MaxLen = 160

var (
	ErrEmpty   = errors.New("slug is empty")
	ErrTooLong = errors.New("slug exceeds maximum length")
	ErrInvalid = errors.New("slug must be lowercase letters, digits and hyphens")
)

var reValid = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Make derives a slug from free text. Characters outside [a-z0-9] collapse
// into single hyphens; the result is trimmed to MaxLen at a hyphen
// boundary where possible.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > MaxLen {
		out = out[:MaxLen]
		if i := strings.LastIndexByte(out, '-'); i > 0 {
			out = out[:i]
		}
	}
	return out
}

// Validate checks a caller-supplied slug.
func Validate(s string) error {
	if s == "" {
		return ErrEmpty
	}
	if len(s) > MaxLen {
		return ErrTooLong
	}
	if !reValid.MatchString(s) {
		return ErrInvalid
	}
	return nil
}

// Normalize lowercases and trims a caller-supplied slug; it does not
// attempt repair beyond that.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
