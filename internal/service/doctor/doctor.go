package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/repo"
	entdoctor "github.com/shifaalhind/backend/internal/repo/doctor"
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

type ListDoctorsRequest struct {
	Page      int
	PerPage   int
	Search    string
	Specialty string
	Language  string

	HospitalID *uuid.UUID

	IncludeUnpublished bool
	IncludeArchived    bool
}

type CreateDoctorRequest struct {
	HospitalID        uuid.UUID
	Slug              string
	NameEn            string
	NameAr            string
	TitleEn           string
	TitleAr           string
	SpecialtiesEn     []string
	SpecialtiesAr     []string
	Qualifications    []string
	ExperienceYears   int
	Languages         []string
	BioEn             string
	BioAr             string
	Image             string
	ConsultationFee   *float64
	Telemedicine      bool
	MetaTitleEn       string
	MetaTitleAr       string
	MetaDescriptionEn string
	MetaDescriptionAr string
}

type UpdateDoctorRequest struct {
	HospitalID        *uuid.UUID
	NameEn            *string
	NameAr            *string
	TitleEn           *string
	TitleAr           *string
	SpecialtiesEn     []string
	SpecialtiesAr     []string
	Qualifications    []string
	ExperienceYears   *int
	Languages         []string
	BioEn             *string
	BioAr             *string
	Image             *string
	ConsultationFee   *float64
	Telemedicine      *bool
	MetaTitleEn       *string
	MetaTitleAr       *string
	MetaDescriptionEn *string
	MetaDescriptionAr *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateDoctorRequest) (*repo.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	GetBySlug(ctx context.Context, s string) (*repo.Doctor, error)
	List(ctx context.Context, req ListDoctorsRequest) (*PaginatedResult[*repo.Doctor], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateDoctorRequest) (*repo.Doctor, error)

	Publish(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	Restore(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
}

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) Create(ctx context.Context, req CreateDoctorRequest) (*repo.Doctor, error) {
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

	exists, err := s.db.Doctor.Query().Where(entdoctor.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	d, err := s.db.Doctor.Create().
		SetHospitalID(req.HospitalID).
		SetSlug(req.Slug).
		SetNameEn(req.NameEn).
		SetNameAr(req.NameAr).
		SetNillableTitleEn(nilIfEmpty(req.TitleEn)).
		SetNillableTitleAr(nilIfEmpty(req.TitleAr)).
		SetSpecialtiesEn(req.SpecialtiesEn).
		SetSpecialtiesAr(req.SpecialtiesAr).
		SetQualifications(req.Qualifications).
		SetExperienceYears(req.ExperienceYears).
		SetLanguages(req.Languages).
		SetBioEn(req.BioEn).
		SetBioAr(req.BioAr).
		SetNillableImage(nilIfEmpty(req.Image)).
		SetNillableConsultationFee(req.ConsultationFee).
		SetTelemedicineAvailable(req.Telemedicine).
		SetNillableMetaTitleEn(nilIfEmpty(req.MetaTitleEn)).
		SetNillableMetaTitleAr(nilIfEmpty(req.MetaTitleAr)).
		SetMetaDescriptionEn(req.MetaDescriptionEn).
		SetMetaDescriptionAr(req.MetaDescriptionAr).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Get(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.ID(id)).
		WithHospital().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) GetBySlug(ctx context.Context, sl string) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(
			entdoctor.Slug(slug.Normalize(sl)),
			entdoctor.Published(true),
			entdoctor.IsArchived(false),
		).
		WithHospital().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor by slug: %w", err)
	}
	return d, nil
}

func (s *doctorService) List(ctx context.Context, req ListDoctorsRequest) (*PaginatedResult[*repo.Doctor], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Doctor.Query()
	if !req.IncludeArchived {
		q = q.Where(entdoctor.IsArchived(false))
	}
	if !req.IncludeUnpublished {
		q = q.Where(entdoctor.Published(true))
	}
	if req.HospitalID != nil {
		q = q.Where(entdoctor.HospitalID(*req.HospitalID))
	}
	if req.Search != "" {
		q = q.Where(entdoctor.Or(
			entdoctor.NameEnContainsFold(req.Search),
			entdoctor.NameArContains(req.Search),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}

	doctors, err := q.
		WithHospital().
		Order(entdoctor.ByNameEn()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	// Specialty and language live in JSON columns, so those filters
	// apply in memory on the fetched page.
	if req.Specialty != "" || req.Language != "" {
		doctors = filterInMemory(doctors, req.Specialty, req.Language)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Doctor]{
		Data:       doctors,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *doctorService) Update(ctx context.Context, id uuid.UUID, req UpdateDoctorRequest) (*repo.Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HospitalID != nil {
		hospitalExists, err := s.db.Hospital.Query().
			Where(enthospital.ID(*req.HospitalID), enthospital.IsArchived(false)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check hospital: %w", err)
		}
		if !hospitalExists {
			return nil, ErrHospitalNotFound
		}
	}

	upd := s.db.Doctor.UpdateOne(d)
	if req.HospitalID != nil {
		upd = upd.SetHospitalID(*req.HospitalID)
	}
	if req.NameEn != nil {
		upd = upd.SetNameEn(*req.NameEn)
	}
	if req.NameAr != nil {
		upd = upd.SetNameAr(*req.NameAr)
	}
	if req.TitleEn != nil {
		upd = upd.SetNillableTitleEn(req.TitleEn)
	}
	if req.TitleAr != nil {
		upd = upd.SetNillableTitleAr(req.TitleAr)
	}
	if req.SpecialtiesEn != nil {
		upd = upd.SetSpecialtiesEn(req.SpecialtiesEn)
	}
	if req.SpecialtiesAr != nil {
		upd = upd.SetSpecialtiesAr(req.SpecialtiesAr)
	}
	if req.Qualifications != nil {
		upd = upd.SetQualifications(req.Qualifications)
	}
	if req.ExperienceYears != nil {
		upd = upd.SetExperienceYears(*req.ExperienceYears)
	}
	if req.Languages != nil {
		upd = upd.SetLanguages(req.Languages)
	}
	if req.BioEn != nil {
		upd = upd.SetBioEn(*req.BioEn)
	}
	if req.BioAr != nil {
		upd = upd.SetBioAr(*req.BioAr)
	}
	if req.Image != nil {
		upd = upd.SetNillableImage(req.Image)
	}
	if req.ConsultationFee != nil {
		upd = upd.SetConsultationFee(*req.ConsultationFee)
	}
	if req.Telemedicine != nil {
		upd = upd.SetTelemedicineAvailable(*req.Telemedicine)
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

func (s *doctorService) Publish(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.IsArchived {
		return nil, ErrArchived
	}
	if d.NameEn == "" || d.NameAr == "" || d.BioEn == "" || d.BioAr == "" {
		return nil, ErrIncompleteTranslation
	}
	if d.Published {
		return d, nil
	}
	return s.db.Doctor.UpdateOne(d).
		SetPublished(true).
		SetPublishedAt(time.Now().UTC()).
		Save(ctx)
}

func (s *doctorService) Unpublish(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.Published {
		return d, nil
	}
	return s.db.Doctor.UpdateOne(d).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *doctorService) Archive(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.IsArchived {
		return d, nil
	}
	return s.db.Doctor.UpdateOne(d).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *doctorService) Restore(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.IsArchived {
		return d, nil
	}
	return s.db.Doctor.UpdateOne(d).
		SetIsArchived(false).
		ClearArchivedAt().
		Save(ctx)
}

func filterInMemory(doctors []*repo.Doctor, specialty, language string) []*repo.Doctor {
	out := doctors[:0]
	for _, d := range doctors {
		if specialty != "" && !containsFold(d.SpecialtiesEn, specialty) && !containsFold(d.SpecialtiesAr, specialty) {
			continue
		}
		if language != "" && !containsFold(d.Languages, language) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
