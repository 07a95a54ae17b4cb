package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/internal/service/packages"
	"github.com/shifaalhind/backend/pkg/seo"
)

type PackageHandler struct {
	svc      packages.Service
	site     seo.Site
	degraded bool
}

func NewPackageHandler(svc packages.Service, site seo.Site, allowDegradedReads bool) *PackageHandler {
	return &PackageHandler{svc: svc, site: site, degraded: allowDegradedReads}
}

type packageListQuery struct {
	Page      int    `query:"page"`
	PerPage   int    `query:"per_page"`
	Treatment string `query:"treatment_id"`
	Hospital  string `query:"hospital_id"`
	Featured  *bool  `query:"featured"`
	Archived  bool   `query:"archived"`
}

func (q *packageListQuery) toRequest() (packages.ListPackagesRequest, error) {
	req := packages.ListPackagesRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		Featured: q.Featured,
	}
	if q.Treatment != "" {
		id, err := uuid.Parse(q.Treatment)
		if err != nil {
			return req, err
		}
		req.TreatmentID = &id
	}
	if q.Hospital != "" {
		id, err := uuid.Parse(q.Hospital)
		if err != nil {
			return req, err
		}
		req.HospitalID = &id
	}
	return req, nil
}

// GET /api/v1/packages
func (h *PackageHandler) List(c fiber.Ctx) error {
	var q packageListQuery
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req, err := q.toRequest()
	if err != nil {
		return badRequest(c, "invalid filter id")
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		if h.degraded {
			return degradedList(c, "packages", q.Page, q.PerPage, err)
		}
		return internalError(c)
	}

	loc := middleware.LocaleFromFiber(c)
	now := time.Now()
	views := make([]PackageView, 0, len(result.Data))
	for _, rec := range result.Data {
		views = append(views, packageView(rec, loc, h.site, false, now))
	}

	return ok(c, fiber.Map{
		"packages":    views,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/packages/:slug
func (h *PackageHandler) GetBySlug(c fiber.Ctx) error {
	rec, err := h.svc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapPackageError(c, err)
	}
	loc := middleware.LocaleFromFiber(c)
	return ok(c, packageView(rec, loc, h.site, true, time.Now()))
}

// --- admin routes ---

// GET /api/v1/admin/packages
func (h *PackageHandler) AdminList(c fiber.Ctx) error {
	var q packageListQuery
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req, err := q.toRequest()
	if err != nil {
		return badRequest(c, "invalid filter id")
	}
	req.IncludeUnpublished = true
	req.IncludeArchived = q.Archived

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"packages":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/packages/:id
func (h *PackageHandler) AdminGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid package id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPackageError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/packages
func (h *PackageHandler) Create(c fiber.Ctx) error {
	var body struct {
		TreatmentID   string   `json:"treatment_id"`
		HospitalID    string   `json:"hospital_id"`
		Slug          string   `json:"slug"`
		NameEn        string   `json:"name_en"`
		NameAr        string   `json:"name_ar"`
		DescriptionEn string   `json:"description_en"`
		DescriptionAr string   `json:"description_ar"`
		Price         float64  `json:"price"`
		Currency      string   `json:"currency"`
		DurationDays  *int     `json:"duration_days"`
		InclusionsEn  []string `json:"inclusions_en"`
		InclusionsAr  []string `json:"inclusions_ar"`
		ExclusionsEn  []string `json:"exclusions_en"`
		ExclusionsAr  []string `json:"exclusions_ar"`
		Featured      bool     `json:"featured"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.NameEn == "" {
		return badRequest(c, "name_en is required")
	}
	treatmentID, err := uuid.Parse(body.TreatmentID)
	if err != nil {
		return badRequest(c, "invalid treatment_id")
	}
	hospitalID, err := uuid.Parse(body.HospitalID)
	if err != nil {
		return badRequest(c, "invalid hospital_id")
	}

	rec, err := h.svc.Create(c.Context(), packages.CreatePackageRequest{
		TreatmentID:   treatmentID,
		HospitalID:    hospitalID,
		Slug:          body.Slug,
		NameEn:        body.NameEn,
		NameAr:        body.NameAr,
		DescriptionEn: body.DescriptionEn,
		DescriptionAr: body.DescriptionAr,
		Price:         body.Price,
		Currency:      body.Currency,
		DurationDays:  body.DurationDays,
		InclusionsEn:  body.InclusionsEn,
		InclusionsAr:  body.InclusionsAr,
		ExclusionsEn:  body.ExclusionsEn,
		ExclusionsAr:  body.ExclusionsAr,
		Featured:      body.Featured,
	})
	if err != nil {
		return mapPackageError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/packages/:id
func (h *PackageHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid package id")
	}

	var body struct {
		NameEn        *string  `json:"name_en"`
		NameAr        *string  `json:"name_ar"`
		DescriptionEn *string  `json:"description_en"`
		DescriptionAr *string  `json:"description_ar"`
		Price         *float64 `json:"price"`
		Currency      *string  `json:"currency"`
		DurationDays  *int     `json:"duration_days"`
		InclusionsEn  []string `json:"inclusions_en"`
		InclusionsAr  []string `json:"inclusions_ar"`
		ExclusionsEn  []string `json:"exclusions_en"`
		ExclusionsAr  []string `json:"exclusions_ar"`
		Featured      *bool    `json:"featured"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), id, packages.UpdatePackageRequest{
		NameEn:        body.NameEn,
		NameAr:        body.NameAr,
		DescriptionEn: body.DescriptionEn,
		DescriptionAr: body.DescriptionAr,
		Price:         body.Price,
		Currency:      body.Currency,
		DurationDays:  body.DurationDays,
		InclusionsEn:  body.InclusionsEn,
		InclusionsAr:  body.InclusionsAr,
		ExclusionsEn:  body.ExclusionsEn,
		ExclusionsAr:  body.ExclusionsAr,
		Featured:      body.Featured,
	})
	if err != nil {
		return mapPackageError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/packages/:id/publish
func (h *PackageHandler) Publish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Publish)
}

// POST /api/v1/admin/packages/:id/unpublish
func (h *PackageHandler) Unpublish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Unpublish)
}

// POST /api/v1/admin/packages/:id/archive
func (h *PackageHandler) Archive(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Archive)
}

// POST /api/v1/admin/packages/:id/restore
func (h *PackageHandler) Restore(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Restore)
}

func (h *PackageHandler) lifecycle(c fiber.Ctx, fn lifecycleFn[*repo.CarePackage]) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid package id")
	}
	rec, err := fn(c.Context(), id)
	if err != nil {
		return mapPackageError(c, err)
	}
	return ok(c, rec)
}

func mapPackageError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, packages.ErrPackageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, packages.ErrTreatmentNotFound),
		errors.Is(err, packages.ErrHospitalNotFound):
		return badRequest(c, err.Error())
	case errors.Is(err, packages.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, packages.ErrInvalidSlug),
		errors.Is(err, packages.ErrInvalidPrice):
		return badRequest(c, err.Error())
	case errors.Is(err, packages.ErrIncompleteTranslation):
		return unprocessable(c, err.Error())
	case errors.Is(err, packages.ErrArchived):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
