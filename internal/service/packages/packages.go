// Package packages manages fixed-price care bundles. Each bundle belongs
// to one treatment at one hospital; the price is all-inclusive.
package packages

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/repo"
	enthospital "github.com/shifaalhind/backend/internal/repo/hospital"
	entpackage "github.com/shifaalhind/backend/internal/repo/carepackage"
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

type ListPackagesRequest struct {
	Page    int
	PerPage int

	TreatmentID *uuid.UUID
	HospitalID  *uuid.UUID
	Featured    *bool

	IncludeUnpublished bool
	IncludeArchived    bool
}

type CreatePackageRequest struct {
	TreatmentID   uuid.UUID
	HospitalID    uuid.UUID
	Slug          string
	NameEn        string
	NameAr        string
	DescriptionEn string
	DescriptionAr string
	Price         float64
	Currency      string
	DurationDays  *int
	InclusionsEn  []string
	InclusionsAr  []string
	ExclusionsEn  []string
	ExclusionsAr  []string
	Featured      bool
}

type UpdatePackageRequest struct {
	NameEn        *string
	NameAr        *string
	DescriptionEn *string
	DescriptionAr *string
	Price         *float64
	Currency      *string
	DurationDays  *int
	InclusionsEn  []string
	InclusionsAr  []string
	ExclusionsEn  []string
	ExclusionsAr  []string
	Featured      *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePackageRequest) (*repo.CarePackage, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error)
	GetBySlug(ctx context.Context, s string) (*repo.CarePackage, error)
	List(ctx context.Context, req ListPackagesRequest) (*PaginatedResult[*repo.CarePackage], error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePackageRequest) (*repo.CarePackage, error)

	Publish(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error)
	Restore(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error)
}

type packageService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &packageService{db: db}
}

func (s *packageService) Create(ctx context.Context, req CreatePackageRequest) (*repo.CarePackage, error) {
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	treatmentExists, err := s.db.Treatment.Query().
		Where(enttreatment.ID(req.TreatmentID), enttreatment.IsArchived(false)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check treatment: %w", err)
	}
	if !treatmentExists {
		return nil, ErrTreatmentNotFound
	}

	hospitalExists, err := s.db.Hospital.Query().
		Where(enthospital.ID(req.HospitalID), enthospital.IsArchived(false)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check hospital: %w", err)
	}
	if !hospitalExists {
		return nil, ErrHospitalNotFound
	}

	req.Slug = slug.Normalize(req.Slug)
	if req.Slug == "" {
		req.Slug = slug.Make(req.NameEn)
	}
	if err := slug.Validate(req.Slug); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}

	exists, err := s.db.CarePackage.Query().Where(entpackage.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	if req.Currency == "" {
		req.Currency = "USD"
	}

	p, err := s.db.CarePackage.Create().
		SetTreatmentID(req.TreatmentID).
		SetHospitalID(req.HospitalID).
		SetSlug(req.Slug).
		SetNameEn(req.NameEn).
		SetNameAr(req.NameAr).
		SetDescriptionEn(req.DescriptionEn).
		SetDescriptionAr(req.DescriptionAr).
		SetPrice(req.Price).
		SetCurrency(req.Currency).
		SetNillableDurationDays(req.DurationDays).
		SetInclusionsEn(req.InclusionsEn).
		SetInclusionsAr(req.InclusionsAr).
		SetExclusionsEn(req.ExclusionsEn).
		SetExclusionsAr(req.ExclusionsAr).
		SetFeatured(req.Featured).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return p, nil
}

func (s *packageService) Get(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error) {
	p, err := s.db.CarePackage.Query().
		Where(entpackage.ID(id)).
		WithTreatment().
		WithHospital().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return p, nil
}

func (s *packageService) GetBySlug(ctx context.Context, sl string) (*repo.CarePackage, error) {
	p, err := s.db.CarePackage.Query().
		Where(
			entpackage.Slug(slug.Normalize(sl)),
			entpackage.Published(true),
			entpackage.IsArchived(false),
		).
		WithTreatment().
		WithHospital().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("get package by slug: %w", err)
	}
	return p, nil
}

func (s *packageService) List(ctx context.Context, req ListPackagesRequest) (*PaginatedResult[*repo.CarePackage], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.CarePackage.Query()
	if !req.IncludeArchived {
		q = q.Where(entpackage.IsArchived(false))
	}
	if !req.IncludeUnpublished {
		q = q.Where(entpackage.Published(true))
	}
	if req.TreatmentID != nil {
		q = q.Where(entpackage.TreatmentID(*req.TreatmentID))
	}
	if req.HospitalID != nil {
		q = q.Where(entpackage.HospitalID(*req.HospitalID))
	}
	if req.Featured != nil {
		q = q.Where(entpackage.Featured(*req.Featured))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count packages: %w", err)
	}

	pkgs, err := q.
		WithTreatment().
		WithHospital().
		Order(entpackage.ByPrice()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.CarePackage]{
		Data:       pkgs,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *packageService) Update(ctx context.Context, id uuid.UUID, req UpdatePackageRequest) (*repo.CarePackage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Price != nil && *req.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	upd := s.db.CarePackage.UpdateOne(p)
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
	if req.Price != nil {
		upd = upd.SetPrice(*req.Price)
	}
	if req.Currency != nil {
		upd = upd.SetCurrency(*req.Currency)
	}
	if req.DurationDays != nil {
		upd = upd.SetDurationDays(*req.DurationDays)
	}
	if req.InclusionsEn != nil {
		upd = upd.SetInclusionsEn(req.InclusionsEn)
	}
	if req.InclusionsAr != nil {
		upd = upd.SetInclusionsAr(req.InclusionsAr)
	}
	if req.ExclusionsEn != nil {
		upd = upd.SetExclusionsEn(req.ExclusionsEn)
	}
	if req.ExclusionsAr != nil {
		upd = upd.SetExclusionsAr(req.ExclusionsAr)
	}
	if req.Featured != nil {
		upd = upd.SetFeatured(*req.Featured)
	}

	return upd.Save(ctx)
}

func (s *packageService) Publish(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, ErrArchived
	}
	if p.NameEn == "" || p.NameAr == "" || p.DescriptionEn == "" || p.DescriptionAr == "" {
		return nil, ErrIncompleteTranslation
	}
	if p.Published {
		return p, nil
	}
	return s.db.CarePackage.UpdateOne(p).
		SetPublished(true).
		SetPublishedAt(time.Now().UTC()).
		Save(ctx)
}

func (s *packageService) Unpublish(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return p, nil
	}
	return s.db.CarePackage.UpdateOne(p).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *packageService) Archive(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return p, nil
	}
	return s.db.CarePackage.UpdateOne(p).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *packageService) Restore(ctx context.Context, id uuid.UUID) (*repo.CarePackage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsArchived {
		return p, nil
	}
	return s.db.CarePackage.UpdateOne(p).
		SetIsArchived(false).
		ClearArchivedAt().
		Save(ctx)
}
