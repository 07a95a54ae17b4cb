// Package page manages editorial content: blog posts and static pages.
package page

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	entpage "github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/pkg/util/slug"
)

// Kind mirrors the content_pages kind column.
type Kind string

const (
	KindBlog   Kind = "BLOG"
	KindStatic Kind = "STATIC"
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

type ListPagesRequest struct {
	Page    int
	PerPage int
	Search  string
	Tag     string

	Kind *Kind

	IncludeUnpublished bool
	IncludeArchived    bool
}

type CreatePageRequest struct {
	Slug              string
	Kind              Kind
	TitleEn           string
	TitleAr           string
	ExcerptEn         string
	ExcerptAr         string
	BodyEn            content.Document
	BodyAr            content.Document
	CoverImage        string
	Tags              []string
	FAQ               []content.FAQItem
	AuthorName        string
	AuthorID          *uuid.UUID
	MetaTitleEn       string
	MetaTitleAr       string
	MetaDescriptionEn string
	MetaDescriptionAr string
}

type UpdatePageRequest struct {
	TitleEn           *string
	TitleAr           *string
	ExcerptEn         *string
	ExcerptAr         *string
	BodyEn            *content.Document
	BodyAr            *content.Document
	CoverImage        *string
	Tags              []string
	FAQ               []content.FAQItem
	AuthorName        *string
	MetaTitleEn       *string
	MetaTitleAr       *string
	MetaDescriptionEn *string
	MetaDescriptionAr *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*repo.ContentPage, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error)
	GetBySlug(ctx context.Context, s string) (*repo.ContentPage, error)
	List(ctx context.Context, req ListPagesRequest) (*PaginatedResult[*repo.ContentPage], error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePageRequest) (*repo.ContentPage, error)

	Publish(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error)
	Restore(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error)
}

type pageService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &pageService{db: db}
}

func (s *pageService) Create(ctx context.Context, req CreatePageRequest) (*repo.ContentPage, error) {
	if req.Kind == "" {
		req.Kind = KindBlog
	}
	if req.Kind != KindBlog && req.Kind != KindStatic {
		return nil, ErrInvalidKind
	}
	if err := req.BodyEn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: body_en: %w", ErrInvalidBody, err)
	}
	if err := req.BodyAr.Validate(); err != nil {
		return nil, fmt.Errorf("%w: body_ar: %w", ErrInvalidBody, err)
	}

	req.Slug = slug.Normalize(req.Slug)
	if req.Slug == "" {
		req.Slug = slug.Make(req.TitleEn)
	}
	if err := slug.Validate(req.Slug); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}

	exists, err := s.db.ContentPage.Query().Where(entpage.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	create := s.db.ContentPage.Create().
		SetSlug(req.Slug).
		SetKind(entpage.Kind(req.Kind)).
		SetTitleEn(req.TitleEn).
		SetTitleAr(req.TitleAr).
		SetExcerptEn(req.ExcerptEn).
		SetExcerptAr(req.ExcerptAr).
		SetBodyEn(req.BodyEn).
		SetBodyAr(req.BodyAr).
		SetNillableCoverImage(nilIfEmpty(req.CoverImage)).
		SetTags(req.Tags).
		SetFaq(req.FAQ).
		SetNillableAuthorName(nilIfEmpty(req.AuthorName)).
		SetNillableMetaTitleEn(nilIfEmpty(req.MetaTitleEn)).
		SetNillableMetaTitleAr(nilIfEmpty(req.MetaTitleAr)).
		SetMetaDescriptionEn(req.MetaDescriptionEn).
		SetMetaDescriptionAr(req.MetaDescriptionAr)
	if req.AuthorID != nil {
		create.SetAuthorID(*req.AuthorID)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return p, nil
}

func (s *pageService) Get(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error) {
	p, err := s.db.ContentPage.Query().
		Where(entpage.ID(id)).
		WithAuthor().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	return p, nil
}

func (s *pageService) GetBySlug(ctx context.Context, sl string) (*repo.ContentPage, error) {
	p, err := s.db.ContentPage.Query().
		Where(
			entpage.Slug(slug.Normalize(sl)),
			entpage.Published(true),
			entpage.IsArchived(false),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get page by slug: %w", err)
	}
	return p, nil
}

func (s *pageService) List(ctx context.Context, req ListPagesRequest) (*PaginatedResult[*repo.ContentPage], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.ContentPage.Query()
	if !req.IncludeArchived {
		q = q.Where(entpage.IsArchived(false))
	}
	if !req.IncludeUnpublished {
		q = q.Where(entpage.Published(true))
	}
	if req.Kind != nil {
		q = q.Where(entpage.KindEQ(entpage.Kind(*req.Kind)))
	}
	if req.Search != "" {
		q = q.Where(entpage.Or(
			entpage.TitleEnContainsFold(req.Search),
			entpage.TitleArContains(req.Search),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}

	pages, err := q.
		Order(entpage.ByPublishedAt(sql.OrderDesc(), sql.OrderNullsLast())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	// Tags are a JSON column; the tag filter applies in memory.
	if req.Tag != "" {
		filtered := pages[:0]
		for _, p := range pages {
			for _, tag := range p.Tags {
				if tag == req.Tag {
					filtered = append(filtered, p)
					break
				}
			}
		}
		pages = filtered
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.ContentPage]{
		Data:       pages,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *pageService) Update(ctx context.Context, id uuid.UUID, req UpdatePageRequest) (*repo.ContentPage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
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

	upd := s.db.ContentPage.UpdateOne(p)
	if req.TitleEn != nil {
		upd = upd.SetTitleEn(*req.TitleEn)
	}
	if req.TitleAr != nil {
		upd = upd.SetTitleAr(*req.TitleAr)
	}
	if req.ExcerptEn != nil {
		upd = upd.SetExcerptEn(*req.ExcerptEn)
	}
	if req.ExcerptAr != nil {
		upd = upd.SetExcerptAr(*req.ExcerptAr)
	}
	if req.BodyEn != nil {
		upd = upd.SetBodyEn(*req.BodyEn)
	}
	if req.BodyAr != nil {
		upd = upd.SetBodyAr(*req.BodyAr)
	}
	if req.CoverImage != nil {
		upd = upd.SetNillableCoverImage(req.CoverImage)
	}
	if req.Tags != nil {
		upd = upd.SetTags(req.Tags)
	}
	if req.FAQ != nil {
		upd = upd.SetFaq(req.FAQ)
	}
	if req.AuthorName != nil {
		upd = upd.SetNillableAuthorName(req.AuthorName)
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

func (s *pageService) Publish(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, ErrArchived
	}
	if p.TitleEn == "" || p.TitleAr == "" || p.BodyEn.Empty() || p.BodyAr.Empty() {
		return nil, ErrIncompleteTranslation
	}
	if p.Published {
		return p, nil
	}
	return s.db.ContentPage.UpdateOne(p).
		SetPublished(true).
		SetPublishedAt(time.Now().UTC()).
		Save(ctx)
}

func (s *pageService) Unpublish(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return p, nil
	}
	return s.db.ContentPage.UpdateOne(p).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *pageService) Archive(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return p, nil
	}
	return s.db.ContentPage.UpdateOne(p).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetPublished(false).
		ClearPublishedAt().
		Save(ctx)
}

func (s *pageService) Restore(ctx context.Context, id uuid.UUID) (*repo.ContentPage, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsArchived {
		return p, nil
	}
	return s.db.ContentPage.UpdateOne(p).
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
