package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/service/booking"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /api/v1/bookings
// The public enquiry form. Everything except name, email and phone is
// optional; the lead lands in the admin pipeline as LEAD.
func (h *BookingHandler) CreateLead(c fiber.Ctx) error {
	var body struct {
		PatientName    string     `json:"patient_name"`
		PatientEmail   string     `json:"patient_email"`
		PatientPhone   string     `json:"patient_phone"`
		Country        string     `json:"country"`
		TreatmentID    *string    `json:"treatment_id"`
		HospitalID     *string    `json:"hospital_id"`
		DoctorID       *string    `json:"doctor_id"`
		PackageID      *string    `json:"package_id"`
		PreferredStart *time.Time `json:"preferred_start"`
		PreferredEnd   *time.Time `json:"preferred_end"`
		Notes          string     `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := booking.CreateLeadRequest{
		PatientName:    body.PatientName,
		PatientEmail:   body.PatientEmail,
		PatientPhone:   body.PatientPhone,
		Country:        body.Country,
		Locale:         middleware.LocaleFromFiber(c),
		PreferredStart: body.PreferredStart,
		PreferredEnd:   body.PreferredEnd,
		Notes:          body.Notes,
	}

	var err error
	if req.TreatmentID, err = parseOptionalUUID(body.TreatmentID); err != nil {
		return badRequest(c, "invalid treatment_id")
	}
	if req.HospitalID, err = parseOptionalUUID(body.HospitalID); err != nil {
		return badRequest(c, "invalid hospital_id")
	}
	if req.DoctorID, err = parseOptionalUUID(body.DoctorID); err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	if req.PackageID, err = parseOptionalUUID(body.PackageID); err != nil {
		return badRequest(c, "invalid package_id")
	}

	rec, err := h.svc.CreateLead(c.Context(), req)
	if err != nil {
		return mapBookingError(c, err)
	}

	// The public response deliberately exposes only the reference number.
	return created(c, fiber.Map{
		"booking_id": rec.ID,
		"status":     rec.Status,
	})
}

// --- admin routes ---

// GET /api/v1/admin/bookings
func (h *BookingHandler) List(c fiber.Ctx) error {
	var q struct {
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
		Status       string `query:"status"`
		Treatment    string `query:"treatment_id"`
		Hospital     string `query:"hospital_id"`
		AssignedUser string `query:"assigned_user_id"`
		PatientEmail string `query:"patient_email"`
		Archived     bool   `query:"archived"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	req := booking.ListBookingsRequest{
		Page:            q.Page,
		PerPage:         q.PerPage,
		PatientEmail:    q.PatientEmail,
		IncludeArchived: q.Archived,
	}
	if q.Status != "" {
		st := booking.Status(q.Status)
		if !booking.ValidStatus(st) {
			return badRequest(c, "unknown status")
		}
		req.Status = &st
	}
	var err error
	if req.TreatmentID, err = parseOptionalUUIDStr(q.Treatment); err != nil {
		return badRequest(c, "invalid treatment_id")
	}
	if req.HospitalID, err = parseOptionalUUIDStr(q.Hospital); err != nil {
		return badRequest(c, "invalid hospital_id")
	}
	if req.AssignedUserID, err = parseOptionalUUIDStr(q.AssignedUser); err != nil {
		return badRequest(c, "invalid assigned_user_id")
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"bookings":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /api/v1/admin/bookings/:id
func (h *BookingHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, rec)
}

// PATCH /api/v1/admin/bookings/:id
func (h *BookingHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		PatientName    *string    `json:"patient_name"`
		PatientEmail   *string    `json:"patient_email"`
		PatientPhone   *string    `json:"patient_phone"`
		Country        *string    `json:"country"`
		TreatmentID    *string    `json:"treatment_id"`
		HospitalID     *string    `json:"hospital_id"`
		DoctorID       *string    `json:"doctor_id"`
		PackageID      *string    `json:"package_id"`
		PreferredStart *time.Time `json:"preferred_start"`
		PreferredEnd   *time.Time `json:"preferred_end"`
		Notes          *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := booking.UpdateBookingRequest{
		PatientName:    body.PatientName,
		PatientEmail:   body.PatientEmail,
		PatientPhone:   body.PatientPhone,
		Country:        body.Country,
		PreferredStart: body.PreferredStart,
		PreferredEnd:   body.PreferredEnd,
		Notes:          body.Notes,
	}
	if req.TreatmentID, err = parseOptionalUUID(body.TreatmentID); err != nil {
		return badRequest(c, "invalid treatment_id")
	}
	if req.HospitalID, err = parseOptionalUUID(body.HospitalID); err != nil {
		return badRequest(c, "invalid hospital_id")
	}
	if req.DoctorID, err = parseOptionalUUID(body.DoctorID); err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	if req.PackageID, err = parseOptionalUUID(body.PackageID); err != nil {
		return badRequest(c, "invalid package_id")
	}

	rec, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/bookings/:id/transition
func (h *BookingHandler) Transition(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		To     string `json:"to"`
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Transition(c.Context(), id, booking.TransitionRequest{
		To:     booking.Status(body.To),
		Reason: body.Reason,
	})
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/bookings/:id/assign-coordinator
func (h *BookingHandler) AssignCoordinator(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	rec, err := h.svc.AssignCoordinator(c.Context(), id, userID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/bookings/:id/assign-translator
func (h *BookingHandler) AssignTranslator(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		TranslatorID string `json:"translator_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	translatorID, err := uuid.Parse(body.TranslatorID)
	if err != nil {
		return badRequest(c, "invalid translator_id")
	}

	rec, err := h.svc.AssignTranslator(c.Context(), id, translatorID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, rec)
}

// POST /api/v1/admin/bookings/:id/archive
func (h *BookingHandler) Archive(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}
	rec, err := h.svc.Archive(c.Context(), id)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, rec)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalUUIDStr(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrTreatmentNotFound),
		errors.Is(err, booking.ErrHospitalNotFound),
		errors.Is(err, booking.ErrDoctorNotFound),
		errors.Is(err, booking.ErrPackageNotFound),
		errors.Is(err, booking.ErrTranslatorNotFound),
		errors.Is(err, booking.ErrUserNotFound):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrInvalidPhone),
		errors.Is(err, booking.ErrInvalidEmail),
		errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrMissingPatientName),
		errors.Is(err, booking.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
