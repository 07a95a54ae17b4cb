package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newLocaleApp() *fiber.App {
	app := fiber.New()
	app.Use(ResolveLocale())
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString(string(LocaleFromFiber(c)))
	})
	return app
}

func TestResolveLocale(t *testing.T) {
	app := newLocaleApp()

	tests := []struct {
		name     string
		target   string
		accept   string
		wantCode int
		wantLang string
	}{
		{
			name:     "defaults to English",
			target:   "/",
			wantCode: fiber.StatusOK,
			wantLang: "en",
		},
		{
			name:     "explicit lang=ar",
			target:   "/?lang=ar",
			wantCode: fiber.StatusOK,
			wantLang: "ar",
		},
		{
			name:     "explicit lang=en",
			target:   "/?lang=en",
			wantCode: fiber.StatusOK,
			wantLang: "en",
		},
		{
			name:     "unsupported explicit lang is rejected",
			target:   "/?lang=fr",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "Accept-Language negotiates Arabic",
			target:   "/",
			accept:   "ar-SA,ar;q=0.9,en;q=0.5",
			wantCode: fiber.StatusOK,
			wantLang: "ar",
		},
		{
			name:     "unknown Accept-Language falls back to English",
			target:   "/",
			accept:   "fr-FR,fr;q=0.9",
			wantCode: fiber.StatusOK,
			wantLang: "en",
		},
		{
			name:     "explicit lang wins over Accept-Language",
			target:   "/?lang=en",
			accept:   "ar-SA,ar;q=0.9",
			wantCode: fiber.StatusOK,
			wantLang: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantCode != fiber.StatusOK {
				return
			}

			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.wantLang {
				t.Errorf("resolved locale = %q, want %q", body, tt.wantLang)
			}
			if got := resp.Header.Get("Content-Language"); got != tt.wantLang {
				t.Errorf("Content-Language = %q, want %q", got, tt.wantLang)
			}
		})
	}
}
