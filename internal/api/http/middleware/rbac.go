package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shifaalhind/backend/pkg/authorize"
	pasetotoken "github.com/shifaalhind/backend/pkg/paseto"
)

// RequirePermission checks that the authenticated user may perform the given
// action on the resource in the site domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSite, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
