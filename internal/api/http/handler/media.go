package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/service/media"
)

type MediaHandler struct {
	svc media.Service
}

func NewMediaHandler(svc media.Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// POST /api/v1/admin/media
// Multipart upload; the object lands in the bucket and the registry row is
// returned.
func (h *MediaHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer f.Close()

	rec, err := h.svc.Upload(c.Context(), media.UploadRequest{
		Entity:      c.FormValue("entity"),
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
		AltEn:       c.FormValue("alt_en"),
		AltAr:       c.FormValue("alt_ar"),
	})
	if err != nil {
		return mapMediaError(c, err)
	}
	return created(c, rec)
}

// POST /api/v1/admin/media/presign
func (h *MediaHandler) Presign(c fiber.Ctx) error {
	var body struct {
		Entity      string `json:"entity"`
		ContentType string `json:"content_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	out, err := h.svc.PresignUpload(c.Context(), media.PresignRequest{
		Entity:      body.Entity,
		ContentType: body.ContentType,
	})
	if err != nil {
		return mapMediaError(c, err)
	}

	return ok(c, fiber.Map{
		"media_id":   out.MediaID,
		"key":        out.Key,
		"upload_url": out.UploadURL,
	})
}

// GET /api/v1/admin/media
func (h *MediaHandler) List(c fiber.Ctx) error {
	var q struct {
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
		Entity   string `query:"entity"`
		Archived bool   `query:"archived"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	result, err := h.svc.List(c.Context(), media.ListMediaRequest{
		Page:            q.Page,
		PerPage:         q.PerPage,
		Entity:          q.Entity,
		IncludeArchived: q.Archived,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"media":       result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/media/:id
func (h *MediaHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid media id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, rec)
}

// GET /api/v1/admin/media/:id/url
func (h *MediaHandler) DownloadURL(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid media id")
	}
	url, err := h.svc.DownloadURL(c.Context(), id)
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}

// PATCH /api/v1/admin/media/:id
func (h *MediaHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid media id")
	}

	var body struct {
		AltEn *string `json:"alt_en"`
		AltAr *string `json:"alt_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), id, media.UpdateMediaRequest{
		AltEn: body.AltEn,
		AltAr: body.AltAr,
	})
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, rec)
}

// DELETE /api/v1/admin/media/:id
func (h *MediaHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid media id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapMediaError(c, err)
	}
	return noContent(c)
}

func mapMediaError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, media.ErrMediaNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, media.ErrUnsupportedContentType),
		errors.Is(err, media.ErrFileTooLarge),
		errors.Is(err, media.ErrInvalidEntity):
		return badRequest(c, err.Error())
	case errors.Is(err, media.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}
