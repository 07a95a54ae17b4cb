package hospital

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	enthospital "github.com/shifaalhind/backend/internal/repo/hospital"
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

type ListHospitalsRequest struct {
	Page    int
	PerPage int
	City    string
	Search  string

	// Featured narrows to featured records when set.
	Featured *bool

	// IncludeUnpublished and IncludeArchived widen the default
	// public filter; only admin routes set them.
	IncludeUnpublished bool
	IncludeArchived    bool
}

type CreateHospitalRequest struct {
	Slug               string
	NameEn             string
	NameAr             string
	DescriptionEn      string
	DescriptionAr      string
	CityEn             string
	CityAr             string
	Address            string
	Phone              string
	Email              string
	Accreditations     []string
	LanguagesSupported []string
	Images             content.Images
	EstablishedYear    *int
	BedCount           *int
	Featured           bool
	MetaTitleEn        string
	MetaTitleAr        string
	MetaDescriptionEn  string
	MetaDescriptionAr  string
}

type UpdateHospitalRequest struct {
	NameEn             *string
	NameAr             *string
	DescriptionEn      *string
	DescriptionAr      *string
	CityEn             *string
	CityAr             *string
	Address            *string
	Phone              *string
	Email              *string
	Accreditations     []string
	LanguagesSupported []string
	Images             *content.Images
	EstablishedYear    *int
	BedCount           *int
	Featured           *bool
	MetaTitleEn        *string
	MetaTitleAr        *string
	MetaDescriptionEn  *string
	MetaDescriptionAr  *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateHospitalRequest) (*repo.Hospital, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Hospital, error)
	GetBySlug(ctx context.Context, s string) (*repo.Hospital, error)
	List(ctx context.Context, req ListHospitalsRequest) (*PaginatedResult[*repo.Hospital], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateHospitalRequest) (*repo.Hospital, error)

	Publish(ctx context.Context, id uuid.UUID) (*repo.Hospital, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*repo.Hospital, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.Hospital, error)
	Restore(ctx context.Context, id uuid.UUID) (*repo.Hospital, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type hospitalService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &hospitalService{db: db}
}

func (s *hospitalService) Create(ctx context.Context, req CreateHospitalRequest) (*repo.Hospital, error) {
	req.Slug = slug.Normalize(req.Slug)
	if req.Slug == "" {
		req.Slug = slug.Make(req.NameEn)
	}
	if err := slug.Validate(req.Slug); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}

	exists, err := s.db.Hospital.Query().Where(enthospital.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	h, err := s.db.Hospital.Create().
		SetSlug(req.Slug).
		SetNameEn(req.NameEn).
		SetNameAr(req.NameAr).
		SetDescriptionEn(req.DescriptionEn).
		SetDescriptionAr(req.DescriptionAr).
		SetCityEn(req.CityEn).
		SetCityAr(req.CityAr).
		SetNillableAddress(nilIfEmpty(req.Address)).
		SetNillablePhone(nilIfEmpty(req.Phone)).
		SetNillableEmail(nilIfEmpty(req.Email)).
		SetAccreditations(req.Accreditations).
		SetLanguagesSupported(req.LanguagesSupported).
		SetImages(req.Images).
		SetNillableEstablishedYear(req.EstablishedYear).
		SetNillableBedCount(req.BedCount).
		SetFeatured(req.Featured).
		SetNillableMetaTitleEn(nilIfEmpty(req.MetaTitleEn)).
		SetNillableMetaTitleAr(nilIfEmpty(req.MetaTitleAr)).
		SetMetaDescriptionEn(req.MetaDescriptionEn).
		SetMetaDescriptionAr(req.MetaDescriptionAr).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create hospital: %w", err)
	}
	return h, nil
}

func (s *hospitalService) Get(ctx context.Context, id uuid.UUID) (*repo.Hospital, error) {
	h, err := s.db.Hospital.Query().
		Where(enthospital.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	return h, nil
}

// GetBySlug serves the public site: only published, non-archived records
// are visible.
func (s *hospitalService) GetBySlug(ctx context.Context, sl string) (*repo.Hospital, error) {
	h, err := s.db.Hospital.Query().
		Where(
			enthospital.Slug(slug.Normalize(sl)),
			enthospital.Published(true),
			enthospital.IsArchived(false),
		).
		WithDoctors().
		WithTreatments().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, fmt.Errorf("get hospital by slug: %w", err)
	}
	return h, nil
}

func (s *hospitalService) List(ctx context.Context, req ListHospitalsRequest) (*PaginatedResult[*repo.Hospital], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Hospital.Query()
	if !req.IncludeArchived {
		q = q.Where(enthospital.IsArchived(false))
	}
	if !req.IncludeUnpublished {
		q = q.Where(enthospital.Published(true))
	}
	if req.City != "" {
		q = q.Where(enthospital.Or(
			enthospital.CityEnEqualFold(req.City),
			enthospital.CityAr(req.City),
		))
	}
	if req.Search != "" {
		q = q.Where(enthospital.Or(
			enthospital.NameEnContainsFold(req.Search),
			enthospital.NameArContains(req.Search),
		))
	}
	if req.Featured != nil {
		q = q.Where(enthospital.Featured(*req.Featured))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count hospitals: %w", err)
	}

	hospitals, err := q.
		Order(enthospital.ByNameEn()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Hospital]{
		Data:       hospitals,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *hospitalService) Update(ctx context.Context, id uuid.UUID, req UpdateHospitalRequest) (*repo.Hospital, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Hospital.UpdateOne(h)
	if req.NameEn != nil {
		upd = upd.SetNameEn(*req.NameEn)
	}
	if req.NameAr != nil {
		upd = upd.SetNameAr(*req.NameAr)
	}
	if req.DescriptionEn != nil {
		upd = upd.SetDescriptionEn(*req.DescriptionEn)
	}
	if req.DescriptionAr != nil {
		upd = upd.SetDescriptionAr(*req.DescriptionAr)
	}
	if req.CityEn != nil {
		upd = upd.SetCityEn(*req.CityEn)
	}
	if req.CityAr != nil {
		upd = upd.SetCityAr(*req.CityAr)
	}
	if req.Address != nil {
		upd = upd.SetNillableAddress(req.Address)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}
	if req.Email != nil {
		upd = upd.SetNillableEmail(req.Email)
	}
	if req.Accreditations != nil {
		upd = upd.SetAccreditations(req.Accreditations)
	}
	if req.LanguagesSupported != nil {
		upd = upd.SetLanguagesSupported(req.LanguagesSupported)
	}
	if req.Images != nil {
		upd = upd.SetImages(*req.Images)
	}
	if req.EstablishedYear != nil {
		upd = upd.SetEstablishedYear(*req.EstablishedYear)
	}
	if req.BedCount != nil {
		upd = upd.SetBedCount(*req.BedCount)
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

// Publish makes the record visible on the public site. Both language
// sides of the name and description must be present.
func (s *hospitalService) Publish(ctx context.Context, id uuid.UUID) (*repo.Hospital, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.IsArchived {
		return nil, ErrArchived
	}
	if h.NameEn == "" || h.NameAr == "" || h.DescriptionEn == "" || h.DescriptionAr == "" {
		return nil, ErrIncompleteTranslation
	}
	if h.Published {
		return h, nil
	}
	return s.db.Hospital.UpdateOne(h).
		SetPublished(true).
		SetPublishedAt(time.Now().UTC()).
		Save(ctx)
}

func (s *hospitalService) Unpublish(ctx context.Context, id uuid.UUID) (*repo.Hospital, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.Published {
		return h, nil
	}
	return s.db.Hospital.UpdateOne(h).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

// Archive takes the record off the site without deleting it. Archived
// records also lose their published flag so a later restore does not
// resurface stale content unreviewed.
func (s *hospitalService) Archive(ctx context.Context, id uuid.UUID) (*repo.Hospital, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.IsArchived {
		return h, nil
	}
	return s.db.Hospital.UpdateOne(h).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *hospitalService) Restore(ctx context.Context, id uuid.UUID) (*repo.Hospital, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.IsArchived {
		return h, nil
	}
	return s.db.Hospital.UpdateOne(h).
		SetIsArchived(false).
		ClearArchivedAt().
		Save(ctx)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
