// Package booking handles patient enquiries from the moment the public
// form is submitted until the patient is discharged or the enquiry is
// cancelled. Every enquiry enters as a LEAD; coordinators move it through
// the pipeline from there.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/shifaalhind/backend/config"
	"github.com/shifaalhind/backend/internal/repo"
	entbooking "github.com/shifaalhind/backend/internal/repo/booking"
	enttranslator "github.com/shifaalhind/backend/internal/repo/translator"
	entuser "github.com/shifaalhind/backend/internal/repo/user"
	"github.com/shifaalhind/backend/pkg/email"
	"github.com/shifaalhind/backend/pkg/locale"
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

// CreateLeadRequest comes straight off the public enquiry form. Phone is
// accepted in any common format and normalized to E.164; numbers without
// a country code default to the patient's stated country.
type CreateLeadRequest struct {
	PatientName  string
	PatientEmail string
	PatientPhone string
	Country      string
	Locale       locale.Locale

	TreatmentID *uuid.UUID
	HospitalID  *uuid.UUID
	DoctorID    *uuid.UUID
	PackageID   *uuid.UUID

	PreferredStart *time.Time
	PreferredEnd   *time.Time
	Notes          string
}

type ListBookingsRequest struct {
	Page    int
	PerPage int

	Status         *Status
	TreatmentID    *uuid.UUID
	HospitalID     *uuid.UUID
	AssignedUserID *uuid.UUID
	PatientEmail   string

	IncludeArchived bool
}

type UpdateBookingRequest struct {
	PatientName    *string
	PatientEmail   *string
	PatientPhone   *string
	Country        *string
	TreatmentID    *uuid.UUID
	HospitalID     *uuid.UUID
	DoctorID       *uuid.UUID
	PackageID      *uuid.UUID
	PreferredStart *time.Time
	PreferredEnd   *time.Time
	Notes          *string
}

type TransitionRequest struct {
	To Status

	// Reason is required when cancelling.
	Reason string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateLead(ctx context.Context, req CreateLeadRequest) (*repo.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Booking, error)
	List(ctx context.Context, req ListBookingsRequest) (*PaginatedResult[*repo.Booking], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*repo.Booking, error)

	Transition(ctx context.Context, id uuid.UUID, req TransitionRequest) (*repo.Booking, error)
	AssignCoordinator(ctx context.Context, id, userID uuid.UUID) (*repo.Booking, error)
	AssignTranslator(ctx context.Context, id, translatorID uuid.UUID) (*repo.Booking, error)

	Archive(ctx context.Context, id uuid.UUID) (*repo.Booking, error)
}

type bookingService struct {
	db     *repo.Client
	mailer *email.Client
	site   config.SiteConfig
	logger *slog.Logger
}

func New(db *repo.Client, mailer *email.Client, site config.SiteConfig, logger *slog.Logger) Service {
	return &bookingService{db: db, mailer: mailer, site: site, logger: logger}
}

// ---------------------------------------------------------------------------
// Lead intake
// ---------------------------------------------------------------------------

func (s *bookingService) CreateLead(ctx context.Context, req CreateLeadRequest) (*repo.Booking, error) {
	req.PatientName = strings.TrimSpace(req.PatientName)
	if req.PatientName == "" {
		return nil, ErrMissingPatientName
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(req.PatientEmail))
	if err != nil {
		return nil, ErrInvalidEmail
	}
	req.PatientEmail = strings.ToLower(addr.Address)

	phone, err := normalizePhone(req.PatientPhone, req.Country)
	if err != nil {
		return nil, err
	}

	if req.PreferredStart != nil && req.PreferredEnd != nil && req.PreferredEnd.Before(*req.PreferredStart) {
		return nil, ErrInvalidDateRange
	}
	if req.Locale == "" {
		req.Locale = locale.English
	}

	create := s.db.Booking.Create().
		SetPatientName(req.PatientName).
		SetPatientEmail(req.PatientEmail).
		SetPatientPhone(phone).
		SetNillableCountry(nilIfEmpty(req.Country)).
		SetLocale(string(req.Locale)).
		SetStatus(entbooking.StatusLEAD).
		SetNotes(req.Notes).
		SetNillablePreferredStart(req.PreferredStart).
		SetNillablePreferredEnd(req.PreferredEnd)
	if req.TreatmentID != nil {
		create.SetTreatmentID(*req.TreatmentID)
	}
	if req.HospitalID != nil {
		create.SetHospitalID(*req.HospitalID)
	}
	if req.DoctorID != nil {
		create.SetDoctorID(*req.DoctorID)
	}
	if req.PackageID != nil {
		create.SetPackageID(*req.PackageID)
	}

	b, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	// Email failures never fail the enquiry; the lead is already saved
	// and the coordinator dashboard shows it either way.
	s.notifyLead(ctx, b)

	return b, nil
}

func (s *bookingService) notifyLead(ctx context.Context, b *repo.Booking) {
	if s.mailer == nil {
		return
	}

	data := email.LeadEmailData{
		BookingID:    b.ID.String(),
		PatientName:  b.PatientName,
		PatientEmail: b.PatientEmail,
		PatientPhone: b.PatientPhone,
		Notes:        b.Notes,
		Locale:       b.Locale,
		SiteName:     s.site.NameEn,
		BaseURL:      s.site.BaseURL,
		InboxEmail:   s.site.LeadInboxEmail,
	}
	if b.Country != nil {
		data.Country = *b.Country
	}
	if t, err := b.QueryTreatment().Only(ctx); err == nil {
		data.TreatmentName = locale.Pick(locale.Locale(b.Locale), t.NameEn, t.NameAr)
	}
	if h, err := b.QueryHospital().Only(ctx); err == nil {
		data.HospitalName = locale.Pick(locale.Locale(b.Locale), h.NameEn, h.NameAr)
	}

	if err := s.mailer.Send(ctx, email.BuildLeadNotificationEmail(data)); err != nil {
		s.logger.Warn("lead notification email failed", "booking_id", b.ID, "error", err)
	}
	if err := s.mailer.Send(ctx, email.BuildLeadAcknowledgementEmail(data)); err != nil {
		s.logger.Warn("lead acknowledgement email failed", "booking_id", b.ID, "error", err)
	}
}

// ---------------------------------------------------------------------------
// Read
// ---------------------------------------------------------------------------

func (s *bookingService) Get(ctx context.Context, id uuid.UUID) (*repo.Booking, error) {
	b, err := s.db.Booking.Query().
		Where(entbooking.ID(id)).
		WithTreatment().
		WithHospital().
		WithDoctor().
		WithPackage().
		WithTranslator().
		WithAssignedUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) List(ctx context.Context, req ListBookingsRequest) (*PaginatedResult[*repo.Booking], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Booking.Query()
	if !req.IncludeArchived {
		q = q.Where(entbooking.IsArchived(false))
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entbooking.StatusEQ(entbooking.Status(*req.Status)))
	}
	if req.TreatmentID != nil {
		q = q.Where(entbooking.TreatmentID(*req.TreatmentID))
	}
	if req.HospitalID != nil {
		q = q.Where(entbooking.HospitalID(*req.HospitalID))
	}
	if req.AssignedUserID != nil {
		q = q.Where(entbooking.AssignedUserID(*req.AssignedUserID))
	}
	if req.PatientEmail != "" {
		q = q.Where(entbooking.PatientEmail(strings.ToLower(strings.TrimSpace(req.PatientEmail))))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookings, err := q.
		WithTreatment().
		WithHospital().
		WithAssignedUser().
		Order(entbooking.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Booking]{
		Data:       bookings,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ---------------------------------------------------------------------------
// Update and transitions
// ---------------------------------------------------------------------------

func (s *bookingService) Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*repo.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Booking.UpdateOne(b)
	if req.PatientName != nil {
		name := strings.TrimSpace(*req.PatientName)
		if name == "" {
			return nil, ErrMissingPatientName
		}
		upd = upd.SetPatientName(name)
	}
	if req.PatientEmail != nil {
		addr, err := mail.ParseAddress(strings.TrimSpace(*req.PatientEmail))
		if err != nil {
			return nil, ErrInvalidEmail
		}
		upd = upd.SetPatientEmail(strings.ToLower(addr.Address))
	}
	if req.PatientPhone != nil {
		country := ""
		if req.Country != nil {
			country = *req.Country
		} else if b.Country != nil {
			country = *b.Country
		}
		phone, err := normalizePhone(*req.PatientPhone, country)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPatientPhone(phone)
	}
	if req.Country != nil {
		upd = upd.SetNillableCountry(nilIfEmpty(*req.Country))
	}
	if req.TreatmentID != nil {
		upd = upd.SetTreatmentID(*req.TreatmentID)
	}
	if req.HospitalID != nil {
		upd = upd.SetHospitalID(*req.HospitalID)
	}
	if req.DoctorID != nil {
		upd = upd.SetDoctorID(*req.DoctorID)
	}
	if req.PackageID != nil {
		upd = upd.SetPackageID(*req.PackageID)
	}
	if req.PreferredStart != nil {
		upd = upd.SetPreferredStart(*req.PreferredStart)
	}
	if req.PreferredEnd != nil {
		upd = upd.SetPreferredEnd(*req.PreferredEnd)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}

	return upd.Save(ctx)
}

// Transition moves a booking along the pipeline, recording the timestamp
// side effects that belong to each stage.
func (s *bookingService) Transition(ctx context.Context, id uuid.UUID, req TransitionRequest) (*repo.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := Status(b.Status)
	if !ValidStatus(req.To) {
		return nil, ErrInvalidStatus
	}
	if !CanTransition(from, req.To) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, req.To)
	}

	now := time.Now().UTC()
	upd := s.db.Booking.UpdateOne(b).
		SetStatus(entbooking.Status(req.To))

	switch req.To {
	case StatusConfirmed:
		upd = upd.SetConfirmedAt(now)
	case StatusDischarged:
		upd = upd.SetCompletedAt(now)
	case StatusCancelled:
		upd = upd.SetCancelledAt(now).SetCancellationReason(req.Reason)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	s.logger.Info("booking transitioned",
		"booking_id", id, "from", from, "to", req.To)
	return updated, nil
}

func (s *bookingService) AssignCoordinator(ctx context.Context, id, userID uuid.UUID) (*repo.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.db.User.Query().Where(entuser.ID(userID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return s.db.Booking.UpdateOne(b).SetAssignedUserID(userID).Save(ctx)
}

func (s *bookingService) AssignTranslator(ctx context.Context, id, translatorID uuid.UUID) (*repo.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.db.Translator.Query().Where(enttranslator.ID(translatorID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check translator: %w", err)
	}
	if !exists {
		return nil, ErrTranslatorNotFound
	}
	return s.db.Booking.UpdateOne(b).SetTranslatorID(translatorID).Save(ctx)
}

func (s *bookingService) Archive(ctx context.Context, id uuid.UUID) (*repo.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.IsArchived {
		return b, nil
	}
	return s.db.Booking.UpdateOne(b).
		SetIsArchived(true).
		SetArchivedAt(time.Now().UTC()).
		Save(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// countryISO maps the country names offered by the enquiry form to ISO
// 3166-1 alpha-2 regions for phone parsing.
var countryISO = map[string]string{
	"saudi arabia":         "SA",
	"united arab emirates": "AE",
	"uae":                  "AE",
	"kuwait":               "KW",
	"qatar":                "QA",
	"oman":                 "OM",
	"bahrain":              "BH",
	"india":                "IN",
}

func normalizePhone(raw, country string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhone
	}
	region := countryISO[strings.ToLower(strings.TrimSpace(country))]
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
