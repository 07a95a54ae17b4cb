package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/internal/service/treatment"
	"github.com/shifaalhind/backend/pkg/seo"
)

type TreatmentHandler struct {
	svc      treatment.Service
	site     seo.Site
	degraded bool
}

func NewTreatmentHandler(svc treatment.Service, site seo.Site, allowDegradedReads bool) *TreatmentHandler {
	return &TreatmentHandler{svc: svc, site: site, degraded: allowDegradedReads}
}

type treatmentListQuery struct {
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
	Search   string `query:"search"`
	Category string `query:"category"`
	Featured *bool  `query:"featured"`
	Hospital string `query:"hospital_id"`
	Archived bool   `query:"archived"`
}

func (q *treatmentListQuery) toRequest() (treatment.ListTreatmentsRequest, error) {
	req := treatment.ListTreatmentsRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		Search:   q.Search,
		Category: q.Category,
		Featured: q.Featured,
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

// GET /api/v1/treatments
func (h *TreatmentHandler) List(c fiber.Ctx) error {
	var q treatmentListQuery
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req, err := q.toRequest()
	if err != nil {
		return badRequest(c, "invalid hospital_id")
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		if h.degraded {
			return degradedList(c, "treatments", q.Page, q.PerPage, err)
		}
		return internalError(c)
	}

	loc := middleware.LocaleFromFiber(c)
	now := time.Now()
	views := make([]TreatmentView, 0, len(result.Data))
	for _, rec := range result.Data {
		views = append(views, treatmentView(rec, loc, h.site, false, now))
	}

	return ok(c, fiber.Map{
		"treatments":  views,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/treatments/:slug
func (h *TreatmentHandler) GetBySlug(c fiber.Ctx) error {
	rec, err := h.svc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapTreatmentError(c, err)
	}
	loc := middleware.LocaleFromFiber(c)
	return ok(c, treatmentView(rec, loc, h.site, true, time.Now()))
}

// --- admin routes ---

// GET /api/v1/admin/treatments
func (h *TreatmentHandler) AdminList(c fiber.Ctx) error {
	var q treatmentListQuery
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req, err := q.toRequest()
	if err != nil {
		return badRequest(c, "invalid hospital_id")
	}
	req.IncludeUnpublished = true
	req.IncludeArchived = q.Archived

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"treatments":  result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/treatments/:id
func (h *TreatmentHandler) AdminGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/treatments
func (h *TreatmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		Slug              string            `json:"slug"`
		NameEn            string            `json:"name_en"`
		NameAr            string            `json:"name_ar"`
		CategoryEn        string            `json:"category_en"`
		CategoryAr        string            `json:"category_ar"`
		SummaryEn         string            `json:"summary_en"`
		SummaryAr         string            `json:"summary_ar"`
		BodyEn            content.Document  `json:"body_en"`
		BodyAr            content.Document  `json:"body_ar"`
		CostMin           float64           `json:"cost_min"`
		CostMax           float64           `json:"cost_max"`
		Currency          string            `json:"currency"`
		StayDaysMin       *int              `json:"stay_days_min"`
		StayDaysMax       *int              `json:"stay_days_max"`
		FAQ               []content.FAQItem `json:"faq"`
		Images            content.Images    `json:"images"`
		HospitalIDs       []string          `json:"hospital_ids"`
		Featured          bool              `json:"featured"`
		MetaTitleEn       string            `json:"meta_title_en"`
		MetaTitleAr       string            `json:"meta_title_ar"`
		MetaDescriptionEn string            `json:"meta_description_en"`
		MetaDescriptionAr string            `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.NameEn == "" {
		return badRequest(c, "name_en is required")
	}

	hospitalIDs, err := parseUUIDs(body.HospitalIDs)
	if err != nil {
		return badRequest(c, "invalid hospital_ids")
	}

	rec, err := h.svc.Create(c.Context(), treatment.CreateTreatmentRequest{
		Slug:              body.Slug,
		NameEn:            body.NameEn,
		NameAr:            body.NameAr,
		CategoryEn:        body.CategoryEn,
		CategoryAr:        body.CategoryAr,
		SummaryEn:         body.SummaryEn,
		SummaryAr:         body.SummaryAr,
		BodyEn:            body.BodyEn,
		BodyAr:            body.BodyAr,
		CostMin:           body.CostMin,
		CostMax:           body.CostMax,
		Currency:          body.Currency,
		StayDaysMin:       body.StayDaysMin,
		StayDaysMax:       body.StayDaysMax,
		FAQ:               body.FAQ,
		Images:            body.Images,
		HospitalIDs:       hospitalIDs,
		Featured:          body.Featured,
		MetaTitleEn:       body.MetaTitleEn,
		MetaTitleAr:       body.MetaTitleAr,
		MetaDescriptionEn: body.MetaDescriptionEn,
		MetaDescriptionAr: body.MetaDescriptionAr,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/treatments/:id
func (h *TreatmentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		NameEn            *string           `json:"name_en"`
		NameAr            *string           `json:"name_ar"`
		CategoryEn        *string           `json:"category_en"`
		CategoryAr        *string           `json:"category_ar"`
		SummaryEn         *string           `json:"summary_en"`
		SummaryAr         *string           `json:"summary_ar"`
		BodyEn            *content.Document `json:"body_en"`
		BodyAr            *content.Document `json:"body_ar"`
		CostMin           *float64          `json:"cost_min"`
		CostMax           *float64          `json:"cost_max"`
		Currency          *string           `json:"currency"`
		StayDaysMin       *int              `json:"stay_days_min"`
		StayDaysMax       *int              `json:"stay_days_max"`
		FAQ               []content.FAQItem `json:"faq"`
		Images            *content.Images   `json:"images"`
		HospitalIDs       []string          `json:"hospital_ids"`
		Featured          *bool             `json:"featured"`
		MetaTitleEn       *string           `json:"meta_title_en"`
		MetaTitleAr       *string           `json:"meta_title_ar"`
		MetaDescriptionEn *string           `json:"meta_description_en"`
		MetaDescriptionAr *string           `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	hospitalIDs, err := parseUUIDs(body.HospitalIDs)
	if err != nil {
		return badRequest(c, "invalid hospital_ids")
	}

	rec, err := h.svc.Update(c.Context(), id, treatment.UpdateTreatmentRequest{
		NameEn:            body.NameEn,
		NameAr:            body.NameAr,
		CategoryEn:        body.CategoryEn,
		CategoryAr:        body.CategoryAr,
		SummaryEn:         body.SummaryEn,
		SummaryAr:         body.SummaryAr,
		BodyEn:            body.BodyEn,
		BodyAr:            body.BodyAr,
		CostMin:           body.CostMin,
		CostMax:           body.CostMax,
		Currency:          body.Currency,
		StayDaysMin:       body.StayDaysMin,
		StayDaysMax:       body.StayDaysMax,
		FAQ:               body.FAQ,
		Images:            body.Images,
		HospitalIDs:       hospitalIDs,
		Featured:          body.Featured,
		MetaTitleEn:       body.MetaTitleEn,
		MetaTitleAr:       body.MetaTitleAr,
		MetaDescriptionEn: body.MetaDescriptionEn,
		MetaDescriptionAr: body.MetaDescriptionAr,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/treatments/:id/publish
func (h *TreatmentHandler) Publish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Publish)
}

// POST /api/v1/admin/treatments/:id/unpublish
func (h *TreatmentHandler) Unpublish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Unpublish)
}

// POST /api/v1/admin/treatments/:id/archive
func (h *TreatmentHandler) Archive(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Archive)
}

// POST /api/v1/admin/treatments/:id/restore
func (h *TreatmentHandler) Restore(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Restore)
}

func (h *TreatmentHandler) lifecycle(c fiber.Ctx, fn lifecycleFn[*repo.Treatment]) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}
	rec, err := fn(c.Context(), id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, rec)
}

func mapTreatmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, treatment.ErrTreatmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, treatment.ErrHospitalNotFound):
		return badRequest(c, err.Error())
	case errors.Is(err, treatment.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, treatment.ErrInvalidSlug),
		errors.Is(err, treatment.ErrInvalidCostRange),
		errors.Is(err, treatment.ErrInvalidStayRange),
		errors.Is(err, treatment.ErrInvalidBody):
		return badRequest(c, err.Error())
	case errors.Is(err, treatment.ErrIncompleteTranslation):
		return unprocessable(c, err.Error())
	case errors.Is(err, treatment.ErrArchived):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
