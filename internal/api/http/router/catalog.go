package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shifaalhind/backend/internal/api/http/handler"
	"github.com/shifaalhind/backend/pkg/authorize"
)

// registerCatalogRoutes wires the public browse surface and the admin CRUD
// surface for hospitals, doctors, treatments and packages.
func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	hospitalH *handler.HospitalHandler,
	doctorH *handler.DoctorHandler,
	treatmentH *handler.TreatmentHandler,
	packageH *handler.PackageHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public catalog: published, non-archived records only.
	api.Get("/hospitals", hospitalH.List)
	api.Get("/hospitals/:slug", hospitalH.GetBySlug)
	api.Get("/doctors", doctorH.List)
	api.Get("/doctors/:slug", doctorH.GetBySlug)
	api.Get("/treatments", treatmentH.List)
	api.Get("/treatments/:slug", treatmentH.GetBySlug)
	api.Get("/packages", packageH.List)
	api.Get("/packages/:slug", packageH.GetBySlug)

	admin := api.Group("/admin", authRequired)

	hospitals := admin.Group("/hospitals")
	hospitals.Get("/", requirePerm(authorize.ResourceHospital, authorize.ActionList), hospitalH.AdminList)
	hospitals.Get("/:id", requirePerm(authorize.ResourceHospital, authorize.ActionRead), hospitalH.AdminGet)
	hospitals.Post("/", requirePerm(authorize.ResourceHospital, authorize.ActionCreate), hospitalH.Create)
	hospitals.Patch("/:id", requirePerm(authorize.ResourceHospital, authorize.ActionUpdate), hospitalH.Update)
	hospitals.Post("/:id/publish", requirePerm(authorize.ResourceHospital, authorize.ActionPublish), hospitalH.Publish)
	hospitals.Post("/:id/unpublish", requirePerm(authorize.ResourceHospital, authorize.ActionPublish), hospitalH.Unpublish)
	hospitals.Post("/:id/archive", requirePerm(authorize.ResourceHospital, authorize.ActionArchive), hospitalH.Archive)
	hospitals.Post("/:id/restore", requirePerm(authorize.ResourceHospital, authorize.ActionArchive), hospitalH.Restore)

	doctors := admin.Group("/doctors")
	doctors.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionList), doctorH.AdminList)
	doctors.Get("/:id", requirePerm(authorize.ResourceDoctor, authorize.ActionRead), doctorH.AdminGet)
	doctors.Post("/", requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), doctorH.Create)
	doctors.Patch("/:id", requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), doctorH.Update)
	doctors.Post("/:id/publish", requirePerm(authorize.ResourceDoctor, authorize.ActionPublish), doctorH.Publish)
	doctors.Post("/:id/unpublish", requirePerm(authorize.ResourceDoctor, authorize.ActionPublish), doctorH.Unpublish)
	doctors.Post("/:id/archive", requirePerm(authorize.ResourceDoctor, authorize.ActionArchive), doctorH.Archive)
	doctors.Post("/:id/restore", requirePerm(authorize.ResourceDoctor, authorize.ActionArchive), doctorH.Restore)

	treatments := admin.Group("/treatments")
	treatments.Get("/", requirePerm(authorize.ResourceTreatment, authorize.ActionList), treatmentH.AdminList)
	treatments.Get("/:id", requirePerm(authorize.ResourceTreatment, authorize.ActionRead), treatmentH.AdminGet)
	treatments.Post("/", requirePerm(authorize.ResourceTreatment, authorize.ActionCreate), treatmentH.Create)
	treatments.Patch("/:id", requirePerm(authorize.ResourceTreatment, authorize.ActionUpdate), treatmentH.Update)
	treatments.Post("/:id/publish", requirePerm(authorize.ResourceTreatment, authorize.ActionPublish), treatmentH.Publish)
	treatments.Post("/:id/unpublish", requirePerm(authorize.ResourceTreatment, authorize.ActionPublish), treatmentH.Unpublish)
	treatments.Post("/:id/archive", requirePerm(authorize.ResourceTreatment, authorize.ActionArchive), treatmentH.Archive)
	treatments.Post("/:id/restore", requirePerm(authorize.ResourceTreatment, authorize.ActionArchive), treatmentH.Restore)

	pkgs := admin.Group("/packages")
	pkgs.Get("/", requirePerm(authorize.ResourcePackage, authorize.ActionList), packageH.AdminList)
	pkgs.Get("/:id", requirePerm(authorize.ResourcePackage, authorize.ActionRead), packageH.AdminGet)
	pkgs.Post("/", requirePerm(authorize.ResourcePackage, authorize.ActionCreate), packageH.Create)
	pkgs.Patch("/:id", requirePerm(authorize.ResourcePackage, authorize.ActionUpdate), packageH.Update)
	pkgs.Post("/:id/publish", requirePerm(authorize.ResourcePackage, authorize.ActionPublish), packageH.Publish)
	pkgs.Post("/:id/unpublish", requirePerm(authorize.ResourcePackage, authorize.ActionPublish), packageH.Unpublish)
	pkgs.Post("/:id/archive", requirePerm(authorize.ResourcePackage, authorize.ActionArchive), packageH.Archive)
	pkgs.Post("/:id/restore", requirePerm(authorize.ResourcePackage, authorize.ActionArchive), packageH.Restore)
}
