// Package locale is the single place where bilingual content is resolved.
//
// Every content-bearing entity stores parallel English/Arabic field pairs;
// callers never branch on the locale themselves — they go through Pick (or
// the entity-level view builders that use it). There is deliberately no
// fallback to the other language: an empty field comes back empty, because
// bilingual completeness is enforced at publish time, not patched at read
// time.
package locale

import (
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale identifies one of the two supported site languages.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Direction is the text/layout direction implied by a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var ErrUnsupported = errors.New("unsupported locale")

// Parse validates a raw locale segment from a URL or header. Anything other
// than "en" or "ar" is a caller error.
func Parse(s string) (Locale, error) {
	switch Locale(s) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	default:
		return "", ErrUnsupported
	}
}

// Supported lists the locales the site serves, in display order.
func Supported() []Locale {
	return []Locale{English, Arabic}
}

// Direction is a pure function of the locale, not of content.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Tag returns the BCP 47 tag used for formatting (ar-SA / en-US, matching
// the regional audience of each language).
func (l Locale) Tag() language.Tag {
	if l == Arabic {
		return language.MustParse("ar-SA")
	}
	return language.MustParse("en-US")
}

// Pick selects the field of a bilingual pair for the locale.
func Pick(l Locale, en, ar string) string {
	if l == Arabic {
		return ar
	}
	return en
}

// PickSlice selects the slice of a bilingual pair for the locale.
func PickSlice[T any](l Locale, en, ar []T) []T {
	if l == Arabic {
		return ar
	}
	return en
}

// PickValue selects one side of a bilingual pair of any type, for
// structured values such as rich-text documents. Like Pick, it never
// substitutes the other language.
func PickValue[T any](l Locale, en, ar T) T {
	if l == Arabic {
		return ar
	}
	return en
}

// FormatCurrency renders an amount with its currency code for the locale.
func FormatCurrency(l Locale, amount float64, currency string) string {
	p := message.NewPrinter(l.Tag())
	return p.Sprintf("%s %v", currency, number.Decimal(amount))
}

// FormatDate renders a date the way the site shows it (long month form).
func FormatDate(l Locale, t time.Time) string {
	if l == Arabic {
		return t.Format("2 January 2006")
	}
	return t.Format("January 2, 2006")
}
