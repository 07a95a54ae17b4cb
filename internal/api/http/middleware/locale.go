package middleware

import (
	"github.com/gofiber/fiber/v3"
	"golang.org/x/text/language"

	"github.com/shifaalhind/backend/pkg/locale"
)

const LocalLocale = "locale"

var matcher = language.NewMatcher([]language.Tag{
	locale.English.Tag(), // first entry is the fallback
	locale.Arabic.Tag(),
})

// ResolveLocale picks the response language for the request. An explicit
// ?lang= query wins and must name a supported locale; otherwise the
// Accept-Language header is negotiated, defaulting to English.
func ResolveLocale() fiber.Handler {
	return func(c fiber.Ctx) error {
		loc := locale.English

		if q := c.Query("lang"); q != "" {
			parsed, err := locale.Parse(q)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "unsupported lang: "+q)
			}
			loc = parsed
		} else if accept := c.Get("Accept-Language"); accept != "" {
			if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
				_, idx, _ := matcher.Match(tags...)
				if idx == 1 {
					loc = locale.Arabic
				}
			}
		}

		c.Locals(LocalLocale, loc)
		c.Set("Content-Language", string(loc))
		return c.Next()
	}
}

// LocaleFromFiber retrieves the resolved locale, defaulting to English.
func LocaleFromFiber(c fiber.Ctx) locale.Locale {
	if l, ok := c.Locals(LocalLocale).(locale.Locale); ok {
		return l
	}
	return locale.English
}
