package treatment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	enthospital "github.com/shifaalhind/backend/internal/repo/hospital"
	enttreatment "github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/pkg/util/slug"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListTreatmentsRequest struct {
	Page     int
	PerPage  int
	Search   string
	Category string

	Featured   *bool
	HospitalID *uuid.UUID

	IncludeUnpublished bool
	IncludeArchived    bool
}

type CreateTreatmentRequest struct {
	Slug              string
	NameEn            string
	NameAr            string
	CategoryEn        string
	CategoryAr        string
	SummaryEn         string
	SummaryAr         string
	BodyEn            content.Document
	BodyAr            content.Document
	CostMin           float64
	CostMax           float64
	Currency          string
	StayDaysMin       *int
	StayDaysMax       *int
	FAQ               []content.FAQItem
	Images            content.Images
	HospitalIDs       []uuid.UUID
	Featured          bool
	MetaTitleEn       string
	MetaTitleAr       string
	MetaDescriptionEn string
	MetaDescriptionAr string
}

type UpdateTreatmentRequest struct {
	NameEn            *string
	NameAr            *string
	CategoryEn        *string
	CategoryAr        *string
	SummaryEn         *string
	SummaryAr         *string
	BodyEn            *content.Document
	BodyAr            *content.Document
	CostMin           *float64
	CostMax           *float64
	Currency          *string
	StayDaysMin       *int
	StayDaysMax       *int
	FAQ               []content.FAQItem
	Images            *content.Images
	HospitalIDs       []uuid.UUID
	Featured          *bool
	MetaTitleEn       *string
	MetaTitleAr       *string
	MetaDescriptionEn *string
	MetaDescriptionAr *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateTreatmentRequest) (*repo.Treatment, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Treatment, error)
	GetBySlug(ctx context.Context, s string) (*repo.Treatment, error)
	List(ctx context.Context, req ListTreatmentsRequest) (*PaginatedResult[*repo.Treatment], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTreatmentRequest) (*repo.Treatment, error)

	Publish(ctx context.Context, id uuid.UUID) (*repo.Treatment, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*repo.Treatment, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.Treatment, error)
	Restore(ctx context.Context, id uuid.UUID) (*repo.Treatment, error)
}

type treatmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &treatmentService{db: db}
}

func (s *treatmentService) Create(ctx context.Context, req CreateTreatmentRequest) (*repo.Treatment, error) {
	if req.CostMax < req.CostMin || req.CostMin < 0 {
		return nil, ErrInvalidCostRange
	}
	if req.StayDaysMin != nil && req.StayDaysMax != nil && *req.StayDaysMax < *req.StayDaysMin {
		return nil, ErrInvalidStayRange
	}
	if err := req.BodyEn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: body_en: %w", ErrInvalidBody, err)
	}
	if err := req.BodyAr.Validate(); err != nil {
		return nil, fmt.Errorf("%w: body_ar: %w", ErrInvalidBody, err)
	}

	req.Slug = slug.Normalize(req.Slug)
	if req.Slug == "" {
		req.Slug = slug.Make(req.NameEn)
	}
	if err := slug.Validate(req.Slug); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}

	exists, err := s.db.Treatment.Query().Where(enttreatment.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	if err := s.checkHospitals(ctx, req.HospitalIDs); err != nil {
		return nil, err
	}

	if req.Currency == "" {
		req.Currency = "USD"
	}

	t, err := s.db.Treatment.Create().
		SetSlug(req.Slug).
		SetNameEn(req.NameEn).
		SetNameAr(req.NameAr).
		SetNillableCategoryEn(nilIfEmpty(req.CategoryEn)).
		SetNillableCategoryAr(nilIfEmpty(req.CategoryAr)).
		SetSummaryEn(req.SummaryEn).
		SetSummaryAr(req.SummaryAr).
		SetBodyEn(req.BodyEn).
		SetBodyAr(req.BodyAr).
		SetCostMin(req.CostMin).
		SetCostMax(req.CostMax).
		SetCurrency(req.Currency).
		SetNillableStayDaysMin(req.StayDaysMin).
		SetNillableStayDaysMax(req.StayDaysMax).
		SetFaq(req.FAQ).
		SetImages(req.Images).
		SetFeatured(req.Featured).
		SetNillableMetaTitleEn(nilIfEmpty(req.MetaTitleEn)).
		SetNillableMetaTitleAr(nilIfEmpty(req.MetaTitleAr)).
		SetMetaDescriptionEn(req.MetaDescriptionEn).
		SetMetaDescriptionAr(req.MetaDescriptionAr).
		AddHospitalIDs(req.HospitalIDs...).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create treatment: %w", err)
	}
	return t, nil
}

func (s *treatmentService) Get(ctx context.Context, id uuid.UUID) (*repo.Treatment, error) {
	t, err := s.db.Treatment.Query().
		Where(enttreatment.ID(id)).
		WithHospitals().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("get treatment: %w", err)
	}
	return t, nil
}

func (s *treatmentService) GetBySlug(ctx context.Context, sl string) (*repo.Treatment, error) {
	t, err := s.db.Treatment.Query().
		Where(
			enttreatment.Slug(slug.Normalize(sl)),
			enttreatment.Published(true),
			enttreatment.IsArchived(false),
		).
		WithHospitals(func(q *repo.HospitalQuery) {
			q.Where(enthospital.Published(true), enthospital.IsArchived(false))
		}).
		WithPackages().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("get treatment by slug: %w", err)
	}
	return t, nil
}

func (s *treatmentService) List(ctx context.Context, req ListTreatmentsRequest) (*PaginatedResult[*repo.Treatment], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Treatment.Query()
	if !req.IncludeArchived {
		q = q.Where(enttreatment.IsArchived(false))
	}
	if !req.IncludeUnpublished {
		q = q.Where(enttreatment.Published(true))
	}
	if req.Category != "" {
		q = q.Where(enttreatment.Or(
			enttreatment.CategoryEnEqualFold(req.Category),
			enttreatment.CategoryAr(req.Category),
		))
	}
	if req.Search != "" {
		q = q.Where(enttreatment.Or(
			enttreatment.NameEnContainsFold(req.Search),
			enttreatment.NameArContains(req.Search),
		))
	}
	if req.Featured != nil {
		q = q.Where(enttreatment.Featured(*req.Featured))
	}
	if req.HospitalID != nil {
		q = q.Where(enttreatment.HasHospitalsWith(enthospital.ID(*req.HospitalID)))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count treatments: %w", err)
	}

	treatments, err := q.
		Order(enttreatment.ByNameEn()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Treatment]{
		Data:       treatments,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *treatmentService) Update(ctx context.Context, id uuid.UUID, req UpdateTreatmentRequest) (*repo.Treatment, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	costMin, costMax := t.CostMin, t.CostMax
	if req.CostMin != nil {
		costMin = *req.CostMin
	}
	if req.CostMax != nil {
		costMax = *req.CostMax
	}
	if costMax < costMin || costMin < 0 {
		return nil, ErrInvalidCostRange
	}
	if req.BodyEn != nil {
		if err := req.BodyEn.Validate(); err != nil {
			return nil, fmt.Errorf("%w: body_en: %w", ErrInvalidBody, err)
		}
	}
	if req.BodyAr != nil {
		if err := req.BodyAr.Validate(); err != nil {
			return nil, fmt.Errorf("%w: body_ar: %w", ErrInvalidBody, err)
		}
	}
	if req.HospitalIDs != nil {
		if err := s.checkHospitals(ctx, req.HospitalIDs); err != nil {
			return nil, err
		}
	}

	upd := s.db.Treatment.UpdateOne(t)
	if req.NameEn != nil {
		upd = upd.SetNameEn(*req.NameEn)
	}
	if req.NameAr != nil {
		upd = upd.SetNameAr(*req.NameAr)
	}
	if req.CategoryEn != nil {
		upd = upd.SetNillableCategoryEn(req.CategoryEn)
	}
	if req.CategoryAr != nil {
		upd = upd.SetNillableCategoryAr(req.CategoryAr)
	}
	if req.SummaryEn != nil {
		upd = upd.SetSummaryEn(*req.SummaryEn)
	}
	if req.SummaryAr != nil {
		upd = upd.SetSummaryAr(*req.SummaryAr)
	}
	if req.BodyEn != nil {
		upd = upd.SetBodyEn(*req.BodyEn)
	}
	if req.BodyAr != nil {
		upd = upd.SetBodyAr(*req.BodyAr)
	}
	if req.CostMin != nil {
		upd = upd.SetCostMin(*req.CostMin)
	}
	if req.CostMax != nil {
		upd = upd.SetCostMax(*req.CostMax)
	}
	if req.Currency != nil {
		upd = upd.SetCurrency(*req.Currency)
	}
	if req.StayDaysMin != nil {
		upd = upd.SetStayDaysMin(*req.StayDaysMin)
	}
	if req.StayDaysMax != nil {
		upd = upd.SetStayDaysMax(*req.StayDaysMax)
	}
	if req.FAQ != nil {
		upd = upd.SetFaq(req.FAQ)
	}
	if req.Images != nil {
		upd = upd.SetImages(*req.Images)
	}
	if req.HospitalIDs != nil {
		upd = upd.ClearHospitals().AddHospitalIDs(req.HospitalIDs...)
	}
	if req.Featured != nil {
		upd = upd.SetFeatured(*req.Featured)
	}
	if req.MetaTitleEn != nil {
		upd = upd.SetNillableMetaTitleEn(req.MetaTitleEn)
	}
	if req.MetaTitleAr != nil {
		upd = upd.SetNillableMetaTitleAr(req.MetaTitleAr)
	}
	if req.MetaDescriptionEn != nil {
		upd = upd.SetMetaDescriptionEn(*req.MetaDescriptionEn)
	}
	if req.MetaDescriptionAr != nil {
		upd = upd.SetMetaDescriptionAr(*req.MetaDescriptionAr)
	}

	return upd.Save(ctx)
}

// Publish requires both language bodies plus a sane cost range. A page
// with an empty Arabic body would render blank for half the audience.
func (s *treatmentService) Publish(ctx context.Context, id uuid.UUID) (*repo.Treatment, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.IsArchived {
		return nil, ErrArchived
	}
	if t.NameEn == "" || t.NameAr == "" || t.BodyEn.Empty() || t.BodyAr.Empty() {
		return nil, ErrIncompleteTranslation
	}
	if t.Published {
		return t, nil
	}
	return s.db.Treatment.UpdateOne(t).
		SetPublished(true).
		SetPublishedAt(time.Now().UTC()).
		Save(ctx)
}

func (s *treatmentService) Unpublish(ctx context.Context, id uuid.UUID) (*repo.Treatment, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Published {
		return t, nil
	}
	return s.db.Treatment.UpdateOne(t).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *treatmentService) Archive(ctx context.Context, id uuid.UUID) (*repo.Treatment, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.IsArchived {
		return t, nil
	}
	return s.db.Treatment.UpdateOne(t).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *treatmentService) Restore(ctx context.Context, id uuid.UUID) (*repo.Treatment, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsArchived {
		return t, nil
	}
	return s.db.Treatment.UpdateOne(t).
		SetIsArchived(false).
		ClearArchivedAt().
		Save(ctx)
}

func (s *treatmentService) checkHospitals(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.db.Hospital.Query().
		Where(enthospital.IDIn(ids...), enthospital.IsArchived(false)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("check hospitals: %w", err)
	}
	if count != len(ids) {
		return ErrHospitalNotFound
	}
	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
