package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/internal/service/doctor"
	"github.com/shifaalhind/backend/pkg/seo"
)

type DoctorHandler struct {
	svc      doctor.Service
	site     seo.Site
	degraded bool
}

func NewDoctorHandler(svc doctor.Service, site seo.Site, allowDegradedReads bool) *DoctorHandler {
	return &DoctorHandler{svc: svc, site: site, degraded: allowDegradedReads}
}

type doctorListQuery struct {
	Page      int    `query:"page"`
	PerPage   int    `query:"per_page"`
	Search    string `query:"search"`
	Specialty string `query:"specialty"`
	Language  string `query:"language"`
	Hospital  string `query:"hospital_id"`
	Archived  bool   `query:"archived"`
}

func (q *doctorListQuery) toRequest() (doctor.ListDoctorsRequest, error) {
	req := doctor.ListDoctorsRequest{
		Page:      q.Page,
		PerPage:   q.PerPage,
		Search:    q.Search,
		Specialty: q.Specialty,
		Language:  q.Language,
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

// GET /api/v1/doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q doctorListQuery
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
			return degradedList(c, "doctors", q.Page, q.PerPage, err)
		}
		return internalError(c)
	}

	loc := middleware.LocaleFromFiber(c)
	views := make([]DoctorView, 0, len(result.Data))
	for _, rec := range result.Data {
		views = append(views, doctorView(rec, loc, h.site, false))
	}

	return ok(c, fiber.Map{
		"doctors":     views,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/doctors/:slug
func (h *DoctorHandler) GetBySlug(c fiber.Ctx) error {
	rec, err := h.svc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapDoctorError(c, err)
	}
	loc := middleware.LocaleFromFiber(c)
	return ok(c, doctorView(rec, loc, h.site, true))
}

// --- admin routes ---

// GET /api/v1/admin/doctors
func (h *DoctorHandler) AdminList(c fiber.Ctx) error {
	var q doctorListQuery
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
		"doctors":     result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/doctors/:id
func (h *DoctorHandler) AdminGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		HospitalID        string   `json:"hospital_id"`
		Slug              string   `json:"slug"`
		NameEn            string   `json:"name_en"`
		NameAr            string   `json:"name_ar"`
		TitleEn           string   `json:"title_en"`
		TitleAr           string   `json:"title_ar"`
		SpecialtiesEn     []string `json:"specialties_en"`
		SpecialtiesAr     []string `json:"specialties_ar"`
		Qualifications    []string `json:"qualifications"`
		ExperienceYears   int      `json:"experience_years"`
		Languages         []string `json:"languages"`
		BioEn             string   `json:"bio_en"`
		BioAr             string   `json:"bio_ar"`
		Image             string   `json:"image"`
		ConsultationFee   *float64 `json:"consultation_fee"`
		Telemedicine      bool     `json:"telemedicine_available"`
		MetaTitleEn       string   `json:"meta_title_en"`
		MetaTitleAr       string   `json:"meta_title_ar"`
		MetaDescriptionEn string   `json:"meta_description_en"`
		MetaDescriptionAr string   `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.NameEn == "" {
		return badRequest(c, "name_en is required")
	}
	hospitalID, err := uuid.Parse(body.HospitalID)
	if err != nil {
		return badRequest(c, "invalid hospital_id")
	}

	rec, err := h.svc.Create(c.Context(), doctor.CreateDoctorRequest{
		HospitalID:        hospitalID,
		Slug:              body.Slug,
		NameEn:            body.NameEn,
		NameAr:            body.NameAr,
		TitleEn:           body.TitleEn,
		TitleAr:           body.TitleAr,
		SpecialtiesEn:     body.SpecialtiesEn,
		SpecialtiesAr:     body.SpecialtiesAr,
		Qualifications:    body.Qualifications,
		ExperienceYears:   body.ExperienceYears,
		Languages:         body.Languages,
		BioEn:             body.BioEn,
		BioAr:             body.BioAr,
		Image:             body.Image,
		ConsultationFee:   body.ConsultationFee,
		Telemedicine:      body.Telemedicine,
		MetaTitleEn:       body.MetaTitleEn,
		MetaTitleAr:       body.MetaTitleAr,
		MetaDescriptionEn: body.MetaDescriptionEn,
		MetaDescriptionAr: body.MetaDescriptionAr,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		HospitalID        *string  `json:"hospital_id"`
		NameEn            *string  `json:"name_en"`
		NameAr            *string  `json:"name_ar"`
		TitleEn           *string  `json:"title_en"`
		TitleAr           *string  `json:"title_ar"`
		SpecialtiesEn     []string `json:"specialties_en"`
		SpecialtiesAr     []string `json:"specialties_ar"`
		Qualifications    []string `json:"qualifications"`
		ExperienceYears   *int     `json:"experience_years"`
		Languages         []string `json:"languages"`
		BioEn             *string  `json:"bio_en"`
		BioAr             *string  `json:"bio_ar"`
		Image             *string  `json:"image"`
		ConsultationFee   *float64 `json:"consultation_fee"`
		Telemedicine      *bool    `json:"telemedicine_available"`
		MetaTitleEn       *string  `json:"meta_title_en"`
		MetaTitleAr       *string  `json:"meta_title_ar"`
		MetaDescriptionEn *string  `json:"meta_description_en"`
		MetaDescriptionAr *string  `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := doctor.UpdateDoctorRequest{
		NameEn:            body.NameEn,
		NameAr:            body.NameAr,
		TitleEn:           body.TitleEn,
		TitleAr:           body.TitleAr,
		SpecialtiesEn:     body.SpecialtiesEn,
		SpecialtiesAr:     body.SpecialtiesAr,
		Qualifications:    body.Qualifications,
		ExperienceYears:   body.ExperienceYears,
		Languages:         body.Languages,
		BioEn:             body.BioEn,
		BioAr:             body.BioAr,
		Image:             body.Image,
		ConsultationFee:   body.ConsultationFee,
		Telemedicine:      body.Telemedicine,
		MetaTitleEn:       body.MetaTitleEn,
		MetaTitleAr:       body.MetaTitleAr,
		MetaDescriptionEn: body.MetaDescriptionEn,
		MetaDescriptionAr: body.MetaDescriptionAr,
	}
	if body.HospitalID != nil {
		hid, err := uuid.Parse(*body.HospitalID)
		if err != nil {
			return badRequest(c, "invalid hospital_id")
		}
		req.HospitalID = &hid
	}

	rec, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/doctors/:id/publish
func (h *DoctorHandler) Publish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Publish)
}

// POST /api/v1/admin/doctors/:id/unpublish
func (h *DoctorHandler) Unpublish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Unpublish)
}

// POST /api/v1/admin/doctors/:id/archive
func (h *DoctorHandler) Archive(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Archive)
}

// POST /api/v1/admin/doctors/:id/restore
func (h *DoctorHandler) Restore(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Restore)
}

func (h *DoctorHandler) lifecycle(c fiber.Ctx, fn lifecycleFn[*repo.Doctor]) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	rec, err := fn(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, rec)
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrHospitalNotFound):
		return badRequest(c, err.Error())
	case errors.Is(err, doctor.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrInvalidSlug):
		return badRequest(c, err.Error())
	case errors.Is(err, doctor.ErrIncompleteTranslation):
		return unprocessable(c, err.Error())
	case errors.Is(err, doctor.ErrArchived):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
