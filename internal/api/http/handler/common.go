package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// lifecycleFn is the shared shape of publish/unpublish/archive/restore
// service methods, so handlers can route them through one helper.
type lifecycleFn[T any] func(ctx context.Context, id uuid.UUID) (T, error)

// degradedList answers a failed public list with an empty page instead of a
// 500. Static builds of the marketing site crawl these endpoints and should
// keep rendering when the database is down. Detail lookups never degrade.
func degradedList(c fiber.Ctx, key string, page, perPage int, err error) error {
	slog.Warn("public list degraded to empty result", "resource", key, "error", err)
	return ok(c, fiber.Map{
		key:           []struct{}{},
		"total":       0,
		"page":        page,
		"per_page":    perPage,
		"total_pages": 0,
	})
}
