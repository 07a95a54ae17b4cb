package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/shifaalhind/backend/internal/service/auth"
	pasetotoken "github.com/shifaalhind/backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":         tokens.AccessToken,
		"refresh_token":        tokens.RefreshToken,
		"expires_in":           tokens.ExpiresIn,
		"must_change_password": tokens.MustChangePassword,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}
	return noContent(c)
}

// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, auth.ChangePasswordRequest{
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	}); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return unauthorized(c)
	case errors.Is(err, auth.ErrAccountSuspended),
		errors.Is(err, auth.ErrAccountLocked):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c)
	case errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrSamePassword):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
