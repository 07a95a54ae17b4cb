package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shifaalhind/backend/internal/api/http/handler"
	"github.com/shifaalhind/backend/pkg/authorize"
)

func (r *Router) registerAdminRoutes(
	api fiber.Router,
	userH *handler.UserHandler,
	translatorH *handler.TranslatorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/admin/users", authRequired)
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), userH.List)
	users.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), userH.Get)
	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), userH.Create)
	users.Patch("/:id", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), userH.Update)
	users.Post("/:id/reset-password", requirePerm(authorize.ResourceUser, authorize.ActionManage), userH.ResetPassword)
	users.Post("/:id/suspend", requirePerm(authorize.ResourceUser, authorize.ActionManage), userH.Suspend)
	users.Post("/:id/activate", requirePerm(authorize.ResourceUser, authorize.ActionManage), userH.Activate)
	users.Post("/:id/archive", requirePerm(authorize.ResourceUser, authorize.ActionArchive), userH.Archive)

	translators := api.Group("/admin/translators", authRequired)
	translators.Get("/", requirePerm(authorize.ResourceTranslator, authorize.ActionList), translatorH.List)
	translators.Get("/:id", requirePerm(authorize.ResourceTranslator, authorize.ActionRead), translatorH.Get)
	translators.Post("/", requirePerm(authorize.ResourceTranslator, authorize.ActionCreate), translatorH.Create)
	translators.Patch("/:id", requirePerm(authorize.ResourceTranslator, authorize.ActionUpdate), translatorH.Update)
	translators.Post("/:id/status", requirePerm(authorize.ResourceTranslator, authorize.ActionUpdate), translatorH.SetStatus)
	translators.Post("/:id/archive", requirePerm(authorize.ResourceTranslator, authorize.ActionArchive), translatorH.Archive)
}
