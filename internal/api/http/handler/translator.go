package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/service/translator"
)

type TranslatorHandler struct {
	svc translator.Service
}

func NewTranslatorHandler(svc translator.Service) *TranslatorHandler {
	return &TranslatorHandler{svc: svc}
}

// GET /api/v1/admin/translators
func (h *TranslatorHandler) List(c fiber.Ctx) error {
	var q struct {
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
		Language string `query:"language"`
		Status   string `query:"status"`
		Archived bool   `query:"archived"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req := translator.ListTranslatorsRequest{
		Page:            q.Page,
		PerPage:         q.PerPage,
		Language:        q.Language,
		IncludeArchived: q.Archived,
	}
	if q.Status != "" {
		st := translator.Availability(q.Status)
		req.Status = &st
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"translators": result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/translators/:id
func (h *TranslatorHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid translator id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapTranslatorError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/translators
func (h *TranslatorHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID    string   `json:"user_id"`
		Languages []string `json:"languages"`
		City      string   `json:"city"`
		Bio       string   `json:"bio"`
		DayRate   *float64 `json:"day_rate"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	rec, err := h.svc.Create(c.Context(), translator.CreateTranslatorRequest{
		UserID:    userID,
		Languages: body.Languages,
		City:      body.City,
		Bio:       body.Bio,
		DayRate:   body.DayRate,
	})
	if err != nil {
		return mapTranslatorError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/translators/:id
func (h *TranslatorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid translator id")
	}

	var body struct {
		Languages []string `json:"languages"`
		City      *string  `json:"city"`
		Bio       *string  `json:"bio"`
		DayRate   *float64 `json:"day_rate"`
		Status    *string  `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := translator.UpdateTranslatorRequest{
		Languages: body.Languages,
		City:      body.City,
		Bio:       body.Bio,
		DayRate:   body.DayRate,
	}
	if body.Status != nil {
		st := translator.Availability(*body.Status)
		req.Status = &st
	}

	rec, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapTranslatorError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/translators/:id/status
func (h *TranslatorHandler) SetStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid translator id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.SetStatus(c.Context(), id, translator.Availability(body.Status))
	if err != nil {
		return mapTranslatorError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/translators/:id/archive
func (h *TranslatorHandler) Archive(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid translator id")
	}
	rec, err := h.svc.Archive(c.Context(), id)
	if err != nil {
		return mapTranslatorError(c, err)
	}
	return ok(c, rec)
}

func mapTranslatorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, translator.ErrTranslatorNotFound),
		errors.Is(err, translator.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, translator.ErrProfileExists):
		return conflict(c, err.Error())
	case errors.Is(err, translator.ErrInvalidStatus),
		errors.Is(err, translator.ErrNoLanguages),
		errors.Is(err, translator.ErrUserNotTranslator):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
