// Package translator manages the interpreter roster assigned to patient
// stays. A translator is an extension profile of a user holding the
// TRANSLATOR role; identity fields stay on the user record.
package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/repo"
	enttranslator "github.com/shifaalhind/backend/internal/repo/translator"
	entuser "github.com/shifaalhind/backend/internal/repo/user"
)

// Availability mirrors the translators status column.
type Availability string

const (
	StatusAvailable Availability = "AVAILABLE"
	StatusBusy      Availability = "BUSY"
	StatusOffline   Availability = "OFFLINE"
)

func validStatus(s Availability) bool {
	return s == StatusAvailable || s == StatusBusy || s == StatusOffline
}

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

type ListTranslatorsRequest struct {
	Page     int
	PerPage  int
	Language string

	Status *Availability

	IncludeArchived bool
}

type CreateTranslatorRequest struct {
	UserID    uuid.UUID
	Languages []string
	City      string
	Bio       string
	DayRate   *float64
}

type UpdateTranslatorRequest struct {
	Languages []string
	City      *string
	Bio       *string
	DayRate   *float64
	Status    *Availability
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateTranslatorRequest) (*repo.Translator, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Translator, error)
	List(ctx context.Context, req ListTranslatorsRequest) (*PaginatedResult[*repo.Translator], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTranslatorRequest) (*repo.Translator, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Availability) (*repo.Translator, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.Translator, error)
}

type translatorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &translatorService{db: db}
}

func (s *translatorService) Create(ctx context.Context, req CreateTranslatorRequest) (*repo.Translator, error) {
	if len(req.Languages) == 0 {
		return nil, ErrNoLanguages
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(req.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if u.Role != entuser.RoleTRANSLATOR {
		return nil, ErrUserNotTranslator
	}

	exists, err := s.db.Translator.Query().
		Where(enttranslator.UserID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return nil, ErrProfileExists
	}

	t, err := s.db.Translator.Create().
		SetUserID(req.UserID).
		SetLanguages(req.Languages).
		SetNillableCity(nilIfEmpty(req.City)).
		SetBio(req.Bio).
		SetNillableDayRate(req.DayRate).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}
	return t, nil
}

func (s *translatorService) Get(ctx context.Context, id uuid.UUID) (*repo.Translator, error) {
	t, err := s.db.Translator.Query().
		Where(enttranslator.ID(id)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTranslatorNotFound
		}
		return nil, fmt.Errorf("get translator: %w", err)
	}
	return t, nil
}

func (s *translatorService) List(ctx context.Context, req ListTranslatorsRequest) (*PaginatedResult[*repo.Translator], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Translator.Query()
	if !req.IncludeArchived {
		q = q.Where(enttranslator.IsArchived(false))
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		q = q.Where(enttranslator.StatusEQ(enttranslator.Status(*req.Status)))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count translators: %w", err)
	}

	translators, err := q.
		WithUser().
		Order(enttranslator.ByCreatedAt()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list translators: %w", err)
	}

	// Languages live in a JSON column; the filter applies in memory.
	if req.Language != "" {
		filtered := translators[:0]
		for _, t := range translators {
			for _, lang := range t.Languages {
				if strings.EqualFold(lang, req.Language) {
					filtered = append(filtered, t)
					break
				}
			}
		}
		translators = filtered
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Translator]{
		Data:       translators,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *translatorService) Update(ctx context.Context, id uuid.UUID, req UpdateTranslatorRequest) (*repo.Translator, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !validStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Languages != nil && len(req.Languages) == 0 {
		return nil, ErrNoLanguages
	}

	upd := s.db.Translator.UpdateOne(t)
	if req.Languages != nil {
		upd = upd.SetLanguages(req.Languages)
	}
	if req.City != nil {
		upd = upd.SetNillableCity(req.City)
	}
	if req.Bio != nil {
		upd = upd.SetBio(*req.Bio)
	}
	if req.DayRate != nil {
		upd = upd.SetDayRate(*req.DayRate)
	}
	if req.Status != nil {
		upd = upd.SetStatus(enttranslator.Status(*req.Status))
	}

	return upd.Save(ctx)
}

func (s *translatorService) SetStatus(ctx context.Context, id uuid.UUID, status Availability) (*repo.Translator, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.db.Translator.UpdateOne(t).
		SetStatus(enttranslator.Status(status)).
		Save(ctx)
}

func (s *translatorService) Archive(ctx context.Context, id uuid.UUID) (*repo.Translator, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.IsArchived {
		return t, nil
	}
	return s.db.Translator.UpdateOne(t).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		Save(ctx)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
