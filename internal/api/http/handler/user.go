package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/admin/users
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
		Role     string `query:"role"`
		Status   string `query:"status"`
		Search   string `query:"search"`
		Archived bool   `query:"archived"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	result, err := h.svc.List(c.Context(), user.ListUsersRequest{
		Page:            q.Page,
		PerPage:         q.PerPage,
		Role:            q.Role,
		Status:          q.Status,
		Search:          q.Search,
		IncludeArchived: q.Archived,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"users":       result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
		Locale   string `json:"locale"`
		Phone    string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Email == "" {
		return badRequest(c, "name and email are required")
	}

	rec, err := h.svc.Create(c.Context(), user.CreateUserRequest{
		Name:     body.Name,
		Email:    body.Email,
		Role:     body.Role,
		Password: body.Password,
		Locale:   body.Locale,
		Phone:    body.Phone,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Name   *string `json:"name"`
		Role   *string `json:"role"`
		Locale *string `json:"locale"`
		Phone  *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), id, user.UpdateUserRequest{
		Name:   body.Name,
		Role:   body.Role,
		Locale: body.Locale,
		Phone:  body.Phone,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/users/:id/reset-password
func (h *UserHandler) ResetPassword(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ResetPassword(c.Context(), id, body.Password); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/admin/users/:id/suspend
func (h *UserHandler) Suspend(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	rec, err := h.svc.Suspend(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/users/:id/activate
func (h *UserHandler) Activate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	rec, err := h.svc.Activate(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/users/:id/archive
func (h *UserHandler) Archive(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	rec, err := h.svc.Archive(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, rec)
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidLocale),
		errors.Is(err, user.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrLastAdmin):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
