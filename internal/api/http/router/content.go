package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shifaalhind/backend/internal/api/http/handler"
	"github.com/shifaalhind/backend/pkg/authorize"
)

func (r *Router) registerContentRoutes(
	api fiber.Router,
	pageH *handler.PageHandler,
	mediaH *handler.MediaHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public content pages
	api.Get("/pages", pageH.List)
	api.Get("/pages/:slug", pageH.GetBySlug)

	pages := api.Group("/admin/pages", authRequired)
	pages.Get("/", requirePerm(authorize.ResourceContentPage, authorize.ActionList), pageH.AdminList)
	pages.Get("/:id", requirePerm(authorize.ResourceContentPage, authorize.ActionRead), pageH.AdminGet)
	pages.Post("/", requirePerm(authorize.ResourceContentPage, authorize.ActionCreate), pageH.Create)
	pages.Patch("/:id", requirePerm(authorize.ResourceContentPage, authorize.ActionUpdate), pageH.Update)
	pages.Post("/:id/publish", requirePerm(authorize.ResourceContentPage, authorize.ActionPublish), pageH.Publish)
	pages.Post("/:id/unpublish", requirePerm(authorize.ResourceContentPage, authorize.ActionPublish), pageH.Unpublish)
	pages.Post("/:id/archive", requirePerm(authorize.ResourceContentPage, authorize.ActionArchive), pageH.Archive)
	pages.Post("/:id/restore", requirePerm(authorize.ResourceContentPage, authorize.ActionArchive), pageH.Restore)

	mediaGrp := api.Group("/admin/media", authRequired)
	mediaGrp.Post("/", requirePerm(authorize.ResourceMedia, authorize.ActionCreate), mediaH.Upload)
	mediaGrp.Post("/presign", requirePerm(authorize.ResourceMedia, authorize.ActionCreate), mediaH.Presign)
	mediaGrp.Get("/", requirePerm(authorize.ResourceMedia, authorize.ActionList), mediaH.List)
	mediaGrp.Get("/:id", requirePerm(authorize.ResourceMedia, authorize.ActionRead), mediaH.Get)
	mediaGrp.Get("/:id/download-url", requirePerm(authorize.ResourceMedia, authorize.ActionRead), mediaH.DownloadURL)
	mediaGrp.Patch("/:id", requirePerm(authorize.ResourceMedia, authorize.ActionUpdate), mediaH.Update)
	mediaGrp.Delete("/:id", requirePerm(authorize.ResourceMedia, authorize.ActionDelete), mediaH.Delete)
}
