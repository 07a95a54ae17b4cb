package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/internal/service/hospital"
	"github.com/shifaalhind/backend/pkg/seo"
)

type HospitalHandler struct {
	svc      hospital.Service
	site     seo.Site
	degraded bool
}

func NewHospitalHandler(svc hospital.Service, site seo.Site, allowDegradedReads bool) *HospitalHandler {
	return &HospitalHandler{svc: svc, site: site, degraded: allowDegradedReads}
}

// GET /api/v1/hospitals
func (h *HospitalHandler) List(c fiber.Ctx) error {
	var q struct {
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
		City     string `query:"city"`
		Search   string `query:"search"`
		Featured *bool  `query:"featured"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	result, err := h.svc.List(c.Context(), hospital.ListHospitalsRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		City:     q.City,
		Search:   q.Search,
		Featured: q.Featured,
	})
	if err != nil {
		if h.degraded {
			return degradedList(c, "hospitals", q.Page, q.PerPage, err)
		}
		return internalError(c)
	}

	loc := middleware.LocaleFromFiber(c)
	views := make([]HospitalView, 0, len(result.Data))
	for _, rec := range result.Data {
		views = append(views, hospitalView(rec, loc, h.site, false))
	}

	return ok(c, fiber.Map{
		"hospitals":   views,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/hospitals/:slug
func (h *HospitalHandler) GetBySlug(c fiber.Ctx) error {
	rec, err := h.svc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapHospitalError(c, err)
	}
	loc := middleware.LocaleFromFiber(c)
	return ok(c, hospitalView(rec, loc, h.site, true))
}

// --- admin routes ---

// GET /api/v1/admin/hospitals
func (h *HospitalHandler) AdminList(c fiber.Ctx) error {
	var q struct {
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
		City     string `query:"city"`
		Search   string `query:"search"`
		Archived bool   `query:"archived"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	result, err := h.svc.List(c.Context(), hospital.ListHospitalsRequest{
		Page:               q.Page,
		PerPage:            q.PerPage,
		City:               q.City,
		Search:             q.Search,
		IncludeUnpublished: true,
		IncludeArchived:    q.Archived,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"hospitals":   result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/hospitals/:id
func (h *HospitalHandler) AdminGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid hospital id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapHospitalError(c, err)
	}
	return ok(c, rec)
}

type hospitalBody struct {
	Slug               string         `json:"slug"`
	NameEn             string         `json:"name_en"`
	NameAr             string         `json:"name_ar"`
	DescriptionEn      string         `json:"description_en"`
	DescriptionAr      string         `json:"description_ar"`
	CityEn             string         `json:"city_en"`
	CityAr             string         `json:"city_ar"`
	Address            string         `json:"address"`
	Phone              string         `json:"phone"`
	Email              string         `json:"email"`
	Accreditations     []string       `json:"accreditations"`
	LanguagesSupported []string       `json:"languages_supported"`
	Images             content.Images `json:"images"`
	EstablishedYear    *int           `json:"established_year"`
	BedCount           *int           `json:"bed_count"`
	Featured           bool           `json:"featured"`
	MetaTitleEn        string         `json:"meta_title_en"`
	MetaTitleAr        string         `json:"meta_title_ar"`
	MetaDescriptionEn  string         `json:"meta_description_en"`
	MetaDescriptionAr  string         `json:"meta_description_ar"`
}

// POST /api/v1/admin/hospitals
func (h *HospitalHandler) Create(c fiber.Ctx) error {
	var body hospitalBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.NameEn == "" {
		return badRequest(c, "name_en is required")
	}

	rec, err := h.svc.Create(c.Context(), hospital.CreateHospitalRequest{
		Slug:               body.Slug,
		NameEn:             body.NameEn,
		NameAr:             body.NameAr,
		DescriptionEn:      body.DescriptionEn,
		DescriptionAr:      body.DescriptionAr,
		CityEn:             body.CityEn,
		CityAr:             body.CityAr,
		Address:            body.Address,
		Phone:              body.Phone,
		Email:              body.Email,
		Accreditations:     body.Accreditations,
		LanguagesSupported: body.LanguagesSupported,
		Images:             body.Images,
		EstablishedYear:    body.EstablishedYear,
		BedCount:           body.BedCount,
		Featured:           body.Featured,
		MetaTitleEn:        body.MetaTitleEn,
		MetaTitleAr:        body.MetaTitleAr,
		MetaDescriptionEn:  body.MetaDescriptionEn,
		MetaDescriptionAr:  body.MetaDescriptionAr,
	})
	if err != nil {
		return mapHospitalError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/hospitals/:id
func (h *HospitalHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid hospital id")
	}

	var body struct {
		NameEn             *string         `json:"name_en"`
		NameAr             *string         `json:"name_ar"`
		DescriptionEn      *string         `json:"description_en"`
		DescriptionAr      *string         `json:"description_ar"`
		CityEn             *string         `json:"city_en"`
		CityAr             *string         `json:"city_ar"`
		Address            *string         `json:"address"`
		Phone              *string         `json:"phone"`
		Email              *string         `json:"email"`
		Accreditations     []string        `json:"accreditations"`
		LanguagesSupported []string        `json:"languages_supported"`
		Images             *content.Images `json:"images"`
		EstablishedYear    *int            `json:"established_year"`
		BedCount           *int            `json:"bed_count"`
		Featured           *bool           `json:"featured"`
		MetaTitleEn        *string         `json:"meta_title_en"`
		MetaTitleAr        *string         `json:"meta_title_ar"`
		MetaDescriptionEn  *string         `json:"meta_description_en"`
		MetaDescriptionAr  *string         `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), id, hospital.UpdateHospitalRequest{
		NameEn:             body.NameEn,
		NameAr:             body.NameAr,
		DescriptionEn:      body.DescriptionEn,
		DescriptionAr:      body.DescriptionAr,
		CityEn:             body.CityEn,
		CityAr:             body.CityAr,
		Address:            body.Address,
		Phone:              body.Phone,
		Email:              body.Email,
		Accreditations:     body.Accreditations,
		LanguagesSupported: body.LanguagesSupported,
		Images:             body.Images,
		EstablishedYear:    body.EstablishedYear,
		BedCount:           body.BedCount,
		Featured:           body.Featured,
		MetaTitleEn:        body.MetaTitleEn,
		MetaTitleAr:        body.MetaTitleAr,
		MetaDescriptionEn:  body.MetaDescriptionEn,
		MetaDescriptionAr:  body.MetaDescriptionAr,
	})
	if err != nil {
		return mapHospitalError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/hospitals/:id/publish
func (h *HospitalHandler) Publish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Publish)
}

// POST /api/v1/admin/hospitals/:id/unpublish
func (h *HospitalHandler) Unpublish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Unpublish)
}

// POST /api/v1/admin/hospitals/:id/archive
func (h *HospitalHandler) Archive(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Archive)
}

// POST /api/v1/admin/hospitals/:id/restore
func (h *HospitalHandler) Restore(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Restore)
}

func (h *HospitalHandler) lifecycle(c fiber.Ctx, fn lifecycleFn[*repo.Hospital]) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid hospital id")
	}
	rec, err := fn(c.Context(), id)
	if err != nil {
		return mapHospitalError(c, err)
	}
	return ok(c, rec)
}

func mapHospitalError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, hospital.ErrHospitalNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, hospital.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, hospital.ErrInvalidSlug):
		return badRequest(c, err.Error())
	case errors.Is(err, hospital.ErrIncompleteTranslation):
		return unprocessable(c, err.Error())
	case errors.Is(err, hospital.ErrArchived):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
