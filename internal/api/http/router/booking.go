package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shifaalhind/backend/internal/api/http/handler"
	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/pkg/authorize"
)

func (r *Router) registerBookingRoutes(
	api fiber.Router,
	h *handler.BookingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public enquiry endpoint, throttled separately.
	api.Post("/bookings", middleware.NewLeadLimiter(r.p.Redis), h.CreateLead)

	bookings := api.Group("/admin/bookings", authRequired)
	bookings.Get("/", requirePerm(authorize.ResourceBooking, authorize.ActionList), h.List)
	bookings.Get("/:id", requirePerm(authorize.ResourceBooking, authorize.ActionRead), h.Get)
	bookings.Patch("/:id", requirePerm(authorize.ResourceBooking, authorize.ActionUpdate), h.Update)
	bookings.Post("/:id/transition", requirePerm(authorize.ResourceBooking, authorize.ActionTransition), h.Transition)
	bookings.Post("/:id/assign-coordinator", requirePerm(authorize.ResourceBooking, authorize.ActionUpdate), h.AssignCoordinator)
	bookings.Post("/:id/assign-translator", requirePerm(authorize.ResourceBooking, authorize.ActionUpdate), h.AssignTranslator)
	bookings.Post("/:id/archive", requirePerm(authorize.ResourceBooking, authorize.ActionArchive), h.Archive)
}
