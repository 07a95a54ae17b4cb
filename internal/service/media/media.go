// Package media manages uploaded assets. Objects live in the S3 bucket under
// media/{entity}/{uuid}{ext}; the media table is the registry the admin panel
// browses, and catalog entities reference assets by their public URL.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"entgo.io/ent/dialect/sql"

	"github.com/shifaalhind/backend/internal/repo"
	entmedia "github.com/shifaalhind/backend/internal/repo/media"
	"github.com/shifaalhind/backend/pkg/s3"
)

// MaxUploadBytes caps a single upload at 10 MiB. Marketing imagery should be
// optimised before upload anyway.
const MaxUploadBytes = 10 << 20

// contentTypeExt maps the accepted upload types to the stored extension.
var contentTypeExt = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// knownEntities are the catalog kinds an asset may be attached to.
var knownEntities = map[string]struct{}{
	"hospital":     {},
	"doctor":       {},
	"treatment":    {},
	"package":      {},
	"content_page": {},
	"translator":   {},
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

type UploadRequest struct {
	Entity      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	AltEn       string
	AltAr       string
}

type PresignRequest struct {
	Entity      string
	ContentType string
}

// PresignedUpload is handed to the admin client for a direct-to-bucket PUT.
type PresignedUpload struct {
	Key       string
	UploadURL string
	MediaID   uuid.UUID
}

type UpdateMediaRequest struct {
	AltEn *string
	AltAr *string
}

type ListMediaRequest struct {
	Page    int
	PerPage int
	Entity  string

	IncludeArchived bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*repo.Media, error)
	PresignUpload(ctx context.Context, req PresignRequest) (*PresignedUpload, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Media, error)
	List(ctx context.Context, req ListMediaRequest) (*PaginatedResult[*repo.Media], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateMediaRequest) (*repo.Media, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type mediaService struct {
	db     *repo.Client
	store  *s3.Client
	logger *slog.Logger
}

func New(db *repo.Client, store *s3.Client, logger *slog.Logger) Service {
	return &mediaService{db: db, store: store, logger: logger}
}

func (s *mediaService) Upload(ctx context.Context, req UploadRequest) (*repo.Media, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	key, err := s.buildKey(req.Entity, req.ContentType)
	if err != nil {
		return nil, err
	}
	if req.Size <= 0 || req.Size > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	if err := s.store.Upload(ctx, key, req.ContentType, req.Body, req.Size); err != nil {
		return nil, fmt.Errorf("upload object: %w", err)
	}

	create := s.db.Media.Create().
		SetKey(key).
		SetContentType(req.ContentType).
		SetSizeBytes(req.Size).
		SetNillableAltEn(nilIfEmpty(req.AltEn)).
		SetNillableAltAr(nilIfEmpty(req.AltAr)).
		SetNillableEntity(nilIfEmpty(req.Entity))

	m, err := create.Save(ctx)
	if err != nil {
		// Orphaned object; best-effort cleanup so the bucket stays tidy.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to delete orphaned upload", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("create media record: %w", err)
	}

	s.logger.Info("media uploaded",
		"media_id", m.ID, "key", key, "filename", req.Filename, "size", req.Size)
	return m, nil
}

func (s *mediaService) PresignUpload(ctx context.Context, req PresignRequest) (*PresignedUpload, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	key, err := s.buildKey(req.Entity, req.ContentType)
	if err != nil {
		return nil, err
	}

	url, err := s.store.PresignUpload(ctx, key, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	// Size is unknown until the client finishes the PUT; recorded as zero.
	m, err := s.db.Media.Create().
		SetKey(key).
		SetContentType(req.ContentType).
		SetSizeBytes(0).
		SetNillableEntity(nilIfEmpty(req.Entity)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create media record: %w", err)
	}

	return &PresignedUpload{Key: key, UploadURL: url, MediaID: m.ID}, nil
}

func (s *mediaService) Get(ctx context.Context, id uuid.UUID) (*repo.Media, error) {
	m, err := s.db.Media.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

func (s *mediaService) List(ctx context.Context, req ListMediaRequest) (*PaginatedResult[*repo.Media], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.Media.Query()
	if !req.IncludeArchived {
		q = q.Where(entmedia.IsArchived(false))
	}
	if req.Entity != "" {
		q = q.Where(entmedia.Entity(req.Entity))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count media: %w", err)
	}

	items, err := q.
		Order(entmedia.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	return &PaginatedResult[*repo.Media]{
		Data:       items,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}, nil
}

func (s *mediaService) Update(ctx context.Context, id uuid.UUID, req UpdateMediaRequest) (*repo.Media, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Media.UpdateOne(m)
	if req.AltEn != nil {
		upd = upd.SetNillableAltEn(nilIfEmpty(*req.AltEn))
	}
	if req.AltAr != nil {
		upd = upd.SetNillableAltAr(nilIfEmpty(*req.AltAr))
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update media: %w", err)
	}
	return out, nil
}

func (s *mediaService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.store == nil {
		return "", ErrStorageUnavailable
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.store.PresignDownload(ctx, m.Key)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

func (s *mediaService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.Delete(ctx, m.Key); err != nil {
			return fmt.Errorf("delete object: %w", err)
		}
	}

	if _, err := s.db.Media.UpdateOne(m).
		SetIsArchived(true).
		Save(ctx); err != nil {
		return fmt.Errorf("archive media record: %w", err)
	}

	s.logger.Info("media deleted", "media_id", id, "key", m.Key)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *mediaService) buildKey(entity, contentType string) (string, error) {
	ext, ok := contentTypeExt[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
	if entity != "" {
		if _, ok := knownEntities[entity]; !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidEntity, entity)
		}
	} else {
		entity = "misc"
	}
	return path.Join("media", entity, uuid.Must(uuid.NewV7()).String()+ext), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
