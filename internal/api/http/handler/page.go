package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/internal/service/page"
	pasetotoken "github.com/shifaalhind/backend/pkg/paseto"
)

type PageHandler struct {
	svc      page.Service
	degraded bool
}

func NewPageHandler(svc page.Service, allowDegradedReads bool) *PageHandler {
	return &PageHandler{svc: svc, degraded: allowDegradedReads}
}

type pageListQuery struct {
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
	Search   string `query:"search"`
	Tag      string `query:"tag"`
	Kind     string `query:"kind"`
	Archived bool   `query:"archived"`
}

func (q *pageListQuery) toRequest() page.ListPagesRequest {
	req := page.ListPagesRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Tag:     q.Tag,
	}
	if q.Kind != "" {
		k := page.Kind(q.Kind)
		req.Kind = &k
	}
	return req
}

// GET /api/v1/pages
func (h *PageHandler) List(c fiber.Ctx) error {
	var q pageListQuery
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	result, err := h.svc.List(c.Context(), q.toRequest())
	if err != nil {
		if h.degraded {
			return degradedList(c, "pages", q.Page, q.PerPage, err)
		}
		return internalError(c)
	}

	loc := middleware.LocaleFromFiber(c)
	views := make([]PageView, 0, len(result.Data))
	for _, rec := range result.Data {
		views = append(views, pageView(rec, loc, false))
	}

	return ok(c, fiber.Map{
		"pages":       views,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/pages/:slug
func (h *PageHandler) GetBySlug(c fiber.Ctx) error {
	rec, err := h.svc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapPageError(c, err)
	}
	loc := middleware.LocaleFromFiber(c)
	return ok(c, pageView(rec, loc, true))
}

// --- admin routes ---

// GET /api/v1/admin/pages
func (h *PageHandler) AdminList(c fiber.Ctx) error {
	var q pageListQuery
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req := q.toRequest()
	req.IncludeUnpublished = true
	req.IncludeArchived = q.Archived

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"pages":       result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/pages/:id
func (h *PageHandler) AdminGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid page id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPageError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/pages
func (h *PageHandler) Create(c fiber.Ctx) error {
	var body struct {
		Slug              string            `json:"slug"`
		Kind              string            `json:"kind"`
		TitleEn           string            `json:"title_en"`
		TitleAr           string            `json:"title_ar"`
		ExcerptEn         string            `json:"excerpt_en"`
		ExcerptAr         string            `json:"excerpt_ar"`
		BodyEn            content.Document  `json:"body_en"`
		BodyAr            content.Document  `json:"body_ar"`
		CoverImage        string            `json:"cover_image"`
		Tags              []string          `json:"tags"`
		FAQ               []content.FAQItem `json:"faq"`
		AuthorName        string            `json:"author_name"`
		MetaTitleEn       string            `json:"meta_title_en"`
		MetaTitleAr       string            `json:"meta_title_ar"`
		MetaDescriptionEn string            `json:"meta_description_en"`
		MetaDescriptionAr string            `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.TitleEn == "" {
		return badRequest(c, "title_en is required")
	}

	req := page.CreatePageRequest{
		Slug:              body.Slug,
		Kind:              page.Kind(body.Kind),
		TitleEn:           body.TitleEn,
		TitleAr:           body.TitleAr,
		ExcerptEn:         body.ExcerptEn,
		ExcerptAr:         body.ExcerptAr,
		BodyEn:            body.BodyEn,
		BodyAr:            body.BodyAr,
		CoverImage:        body.CoverImage,
		Tags:              body.Tags,
		FAQ:               body.FAQ,
		AuthorName:        body.AuthorName,
		MetaTitleEn:       body.MetaTitleEn,
		MetaTitleAr:       body.MetaTitleAr,
		MetaDescriptionEn: body.MetaDescriptionEn,
		MetaDescriptionAr: body.MetaDescriptionAr,
	}

	// The creating editor becomes the owning author.
	if claims, okc := pasetotoken.ClaimsFromFiber(c); okc {
		uid := claims.UserID
		req.AuthorID = &uid
	}

	rec, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPageError(c, err)
	}
	return created(c, rec)
}

// PATCH /api/v1/admin/pages/:id
func (h *PageHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid page id")
	}

	var body struct {
		TitleEn           *string           `json:"title_en"`
		TitleAr           *string           `json:"title_ar"`
		ExcerptEn         *string           `json:"excerpt_en"`
		ExcerptAr         *string           `json:"excerpt_ar"`
		BodyEn            *content.Document `json:"body_en"`
		BodyAr            *content.Document `json:"body_ar"`
		CoverImage        *string           `json:"cover_image"`
		Tags              []string          `json:"tags"`
		FAQ               []content.FAQItem `json:"faq"`
		AuthorName        *string           `json:"author_name"`
		MetaTitleEn       *string           `json:"meta_title_en"`
		MetaTitleAr       *string           `json:"meta_title_ar"`
		MetaDescriptionEn *string           `json:"meta_description_en"`
		MetaDescriptionAr *string           `json:"meta_description_ar"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), id, page.UpdatePageRequest{
		TitleEn:           body.TitleEn,
		TitleAr:           body.TitleAr,
		ExcerptEn:         body.ExcerptEn,
		ExcerptAr:         body.ExcerptAr,
		BodyEn:            body.BodyEn,
		BodyAr:            body.BodyAr,
		CoverImage:        body.CoverImage,
		Tags:              body.Tags,
		FAQ:               body.FAQ,
		AuthorName:        body.AuthorName,
		MetaTitleEn:       body.MetaTitleEn,
		MetaTitleAr:       body.MetaTitleAr,
		MetaDescriptionEn: body.MetaDescriptionEn,
		MetaDescriptionAr: body.MetaDescriptionAr,
	})
	if err != nil {
		return mapPageError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/pages/:id/publish
func (h *PageHandler) Publish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Publish)
}

// POST /api/v1/admin/pages/:id/unpublish
func (h *PageHandler) Unpublish(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Unpublish)
}

// POST /api/v1/admin/pages/:id/archive
func (h *PageHandler) Archive(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Archive)
}

// POST /api/v1/admin/pages/:id/restore
func (h *PageHandler) Restore(c fiber.Ctx) error {
	return h.lifecycle(c, h.svc.Restore)
}

func (h *PageHandler) lifecycle(c fiber.Ctx, fn lifecycleFn[*repo.ContentPage]) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid page id")
	}
	rec, err := fn(c.Context(), id)
	if err != nil {
		return mapPageError(c, err)
	}
	return ok(c, rec)
}

func mapPageError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, page.ErrPageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, page.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, page.ErrInvalidSlug),
		errors.Is(err, page.ErrInvalidKind),
		errors.Is(err, page.ErrInvalidBody):
		return badRequest(c, err.Error())
	case errors.Is(err, page.ErrIncompleteTranslation):
		return unprocessable(c, err.Error())
	case errors.Is(err, page.ErrArchived):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
