// Package user manages back-office accounts. Role changes here are mirrored
// into the Casbin role store so RBAC never drifts from the users table.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"entgo.io/ent/dialect/sql"

	"github.com/shifaalhind/backend/internal/repo"
	enttranslator "github.com/shifaalhind/backend/internal/repo/translator"
	entuser "github.com/shifaalhind/backend/internal/repo/user"
	"github.com/shifaalhind/backend/pkg/authorize"
	"github.com/shifaalhind/backend/pkg/util/password"
)

const minPasswordLen = 8

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

type CreateUserRequest struct {
	Name     string
	Email    string
	Role     string
	Password string // temporary; the user must change it on first login
	Locale   string
	Phone    string
}

type UpdateUserRequest struct {
	Name   *string
	Role   *string
	Locale *string
	Phone  *string
}

type ListUsersRequest struct {
	Page    int
	PerPage int
	Role    string
	Status  string
	Search  string

	IncludeArchived bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*repo.User, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)
	List(ctx context.Context, req ListUsersRequest) (*PaginatedResult[*repo.User], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*repo.User, error)
	ResetPassword(ctx context.Context, id uuid.UUID, tempPassword string) error

	Suspend(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Activate(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Archive(ctx context.Context, id uuid.UUID) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db       *repo.Client
	auth     authorize.IAuthorization
	pwParams *password.Params
	logger   *slog.Logger
}

func New(db *repo.Client, auth authorize.IAuthorization, pwCfg password.Config, logger *slog.Logger) Service {
	return &userService{
		db:       db,
		auth:     auth,
		pwParams: pwCfg.ToParams(),
		logger:   logger,
	}
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*repo.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	rbacRole, ok := authorize.UserRoleToRBACRole[req.Role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}
	if len(req.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := password.HashWithParams(req.Password, s.pwParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	create := s.db.User.Create().
		SetName(strings.TrimSpace(req.Name)).
		SetEmail(req.Email).
		SetPasswordHash(hash).
		SetRole(entuser.Role(req.Role)).
		SetMustChangePassword(true)
	if req.Locale != "" {
		loc, err := parseUserLocale(req.Locale)
		if err != nil {
			return nil, err
		}
		create = create.SetLocale(loc)
	}
	if req.Phone != "" {
		create = create.SetPhone(req.Phone)
	}

	u, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.grantRoles(ctx, u.ID, rbacRole); err != nil {
		// The account exists either way; surface the drift loudly.
		s.logger.Error("failed to assign RBAC roles for new user",
			"user_id", u.ID, "role", req.Role, "error", err)
	}

	return u, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.Email(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListUsersRequest) (*PaginatedResult[*repo.User], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.User.Query()
	if !req.IncludeArchived {
		q = q.Where(entuser.IsArchived(false))
	}
	if req.Role != "" {
		q = q.Where(entuser.RoleEQ(entuser.Role(req.Role)))
	}
	if req.Status != "" {
		q = q.Where(entuser.StatusEQ(entuser.Status(req.Status)))
	}
	if req.Search != "" {
		q = q.Where(entuser.Or(
			entuser.NameContainsFold(req.Search),
			entuser.EmailContainsFold(req.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &PaginatedResult[*repo.User]{
		Data:       users,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*repo.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Locale != nil {
		loc, err := parseUserLocale(*req.Locale)
		if err != nil {
			return nil, err
		}
		upd = upd.SetLocale(loc)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(nilIfEmpty(*req.Phone))
	}

	if req.Role != nil && *req.Role != string(u.Role) {
		newRole, ok := authorize.UserRoleToRBACRole[*req.Role]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, *req.Role)
		}
		if u.Role == entuser.RoleADMIN {
			if err := s.ensureNotLastAdmin(ctx, u.ID); err != nil {
				return nil, err
			}
		}
		upd = upd.SetRole(entuser.Role(*req.Role))

		oldRole := authorize.UserRoleToRBACRole[string(u.Role)]
		if err := authorize.RemoveSiteRole(ctx, s.auth, u.ID.String(), oldRole); err != nil {
			return nil, fmt.Errorf("remove old role: %w", err)
		}
		if err := authorize.AssignSiteRole(ctx, s.auth, u.ID.String(), newRole); err != nil {
			return nil, fmt.Errorf("assign new role: %w", err)
		}
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return out, nil
}

func (s *userService) ResetPassword(ctx context.Context, id uuid.UUID, tempPassword string) error {
	if len(tempPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	hash, err := password.HashWithParams(tempPassword, s.pwParams)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).
		SetPasswordHash(hash).
		SetMustChangePassword(true).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		Save(ctx); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

func (s *userService) Suspend(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == entuser.RoleADMIN {
		if err := s.ensureNotLastAdmin(ctx, u.ID); err != nil {
			return nil, err
		}
	}

	out, err := s.db.User.UpdateOne(u).
		SetStatus(entuser.StatusSUSPENDED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("suspend user: %w", err)
	}
	s.logger.Info("user suspended", "user_id", id)
	return out, nil
}

func (s *userService) Activate(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := s.db.User.UpdateOne(u).
		SetStatus(entuser.StatusACTIVE).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("activate user: %w", err)
	}
	return out, nil
}

func (s *userService) Archive(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == entuser.RoleADMIN {
		if err := s.ensureNotLastAdmin(ctx, u.ID); err != nil {
			return nil, err
		}
	}

	out, err := s.db.User.UpdateOne(u).
		SetIsArchived(true).
		SetStatus(entuser.StatusSUSPENDED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("archive user: %w", err)
	}

	// A translator account takes its interpreter profile off the roster too.
	if _, err := s.db.Translator.Update().
		Where(enttranslator.UserID(u.ID), enttranslator.IsArchived(false)).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetStatus(enttranslator.StatusOFFLINE).
		Save(ctx); err != nil {
		s.logger.Error("failed to archive translator profile",
			"user_id", u.ID, "error", err)
	}

	role := authorize.UserRoleToRBACRole[string(u.Role)]
	if err := authorize.RemoveSiteRole(ctx, s.auth, u.ID.String(), role); err != nil {
		s.logger.Error("failed to remove RBAC role for archived user",
			"user_id", u.ID, "error", err)
	}

	s.logger.Info("user archived", "user_id", id)
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// grantRoles wires the Casbin grouping policies for a fresh account.
func (s *userService) grantRoles(ctx context.Context, userID uuid.UUID, role authorize.Role) error {
	if err := authorize.AssignUserSelfRole(ctx, s.auth, userID.String()); err != nil {
		return err
	}
	return authorize.AssignSiteRole(ctx, s.auth, userID.String(), role)
}

// ensureNotLastAdmin blocks operations that would leave the panel without
// any active admin account.
func (s *userService) ensureNotLastAdmin(ctx context.Context, excluding uuid.UUID) error {
	n, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleADMIN),
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.IsArchived(false),
			entuser.IDNEQ(excluding),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n == 0 {
		return ErrLastAdmin
	}
	return nil
}

func parseUserLocale(s string) (entuser.Locale, error) {
	switch entuser.Locale(s) {
	case entuser.LocaleEn, entuser.LocaleAr:
		return entuser.Locale(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
