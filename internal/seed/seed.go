// Package seed loads the fixture dataset into the database. The load is
// destructive: all existing rows are deleted first, inside one
// transaction, so a seeded database always matches the fixtures exactly.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/fixture"
	"github.com/shifaalhind/backend/internal/repo"
	entbooking "github.com/shifaalhind/backend/internal/repo/booking"
	entcontentpage "github.com/shifaalhind/backend/internal/repo/contentpage"
	enttranslator "github.com/shifaalhind/backend/internal/repo/translator"
	entuser "github.com/shifaalhind/backend/internal/repo/user"
	"github.com/shifaalhind/backend/pkg/util/password"
)

// ErrProductionRefused is returned when a destructive seed is attempted
// against a production environment.
var ErrProductionRefused = errors.New("seed: refusing to run against production")

type Loader struct {
	db          *repo.Client
	environment string
	pwParams    *password.Params
	logger      *slog.Logger
}

func New(db *repo.Client, environment string, pwCfg password.Config, logger *slog.Logger) *Loader {
	return &Loader{
		db:          db,
		environment: environment,
		pwParams:    pwCfg.ToParams(),
		logger:      logger,
	}
}

// Run wipes the database and inserts the dataset. Everything happens in a
// single transaction; a failed load leaves the database untouched.
func (l *Loader) Run(ctx context.Context, ds fixture.Dataset) error {
	if l.environment == "production" {
		return ErrProductionRefused
	}

	start := time.Now()
	l.logger.Info("seeding database", "environment", l.environment)

	tx, err := l.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = clear(ctx, tx); err != nil {
		return err
	}

	users, err := l.insertUsers(ctx, tx, ds.Users)
	if err != nil {
		return err
	}
	translatorIDs, err := insertTranslators(ctx, tx, ds.Translators, users)
	if err != nil {
		return err
	}
	hospitalIDs, err := insertHospitals(ctx, tx, ds.Hospitals)
	if err != nil {
		return err
	}
	doctorIDs, err := insertDoctors(ctx, tx, ds.Doctors, hospitalIDs)
	if err != nil {
		return err
	}
	treatmentIDs, err := insertTreatments(ctx, tx, ds.Treatments, hospitalIDs)
	if err != nil {
		return err
	}
	packageIDs, err := insertPackages(ctx, tx, ds.Packages, treatmentIDs, hospitalIDs)
	if err != nil {
		return err
	}
	if err = insertContentPages(ctx, tx, ds.ContentPages, users); err != nil {
		return err
	}
	if err = insertBookings(ctx, tx, ds.Bookings, refs{
		users:       users,
		translators: translatorIDs,
		hospitals:   hospitalIDs,
		doctors:     doctorIDs,
		treatments:  treatmentIDs,
		packages:    packageIDs,
	}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	l.logger.Info("seed complete",
		"users", len(ds.Users),
		"hospitals", len(ds.Hospitals),
		"doctors", len(ds.Doctors),
		"treatments", len(ds.Treatments),
		"packages", len(ds.Packages),
		"content_pages", len(ds.ContentPages),
		"bookings", len(ds.Bookings),
		"took", time.Since(start),
	)
	return nil
}

// refs carries the slug/email → id maps built during the load.
type refs struct {
	users       map[string]uuid.UUID
	translators map[string]uuid.UUID
	hospitals   map[string]uuid.UUID
	doctors     map[string]uuid.UUID
	treatments  map[string]uuid.UUID
	packages    map[string]uuid.UUID
}

// clear deletes every row, dependents first so FK constraints hold.
func clear(ctx context.Context, tx *repo.Tx) error {
	steps := []struct {
		name string
		del  func(context.Context) (int, error)
	}{
		{"bookings", func(ctx context.Context) (int, error) { return tx.Booking.Delete().Exec(ctx) }},
		{"translators", func(ctx context.Context) (int, error) { return tx.Translator.Delete().Exec(ctx) }},
		{"content pages", func(ctx context.Context) (int, error) { return tx.ContentPage.Delete().Exec(ctx) }},
		{"media", func(ctx context.Context) (int, error) { return tx.Media.Delete().Exec(ctx) }},
		{"packages", func(ctx context.Context) (int, error) { return tx.CarePackage.Delete().Exec(ctx) }},
		{"doctors", func(ctx context.Context) (int, error) { return tx.Doctor.Delete().Exec(ctx) }},
		{"treatments", func(ctx context.Context) (int, error) { return tx.Treatment.Delete().Exec(ctx) }},
		{"hospitals", func(ctx context.Context) (int, error) { return tx.Hospital.Delete().Exec(ctx) }},
		{"sessions", func(ctx context.Context) (int, error) { return tx.UserSession.Delete().Exec(ctx) }},
		{"users", func(ctx context.Context) (int, error) { return tx.User.Delete().Exec(ctx) }},
	}
	for _, step := range steps {
		if _, err := step.del(ctx); err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
	}
	return nil
}

func (l *Loader) insertUsers(ctx context.Context, tx *repo.Tx, users []fixture.User) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		hash, err := password.HashWithParams(u.Password, l.pwParams)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		created, err := tx.User.Create().
			SetName(u.Name).
			SetEmail(u.Email).
			SetPasswordHash(hash).
			SetRole(entuser.Role(u.Role)).
			SetLocale(entuser.Locale(u.Locale)).
			SetNillablePhone(nilIfEmpty(u.Phone)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		ids[u.Email] = created.ID
	}
	return ids, nil
}

func insertTranslators(ctx context.Context, tx *repo.Tx, translators []fixture.Translator, users map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(translators))
	for _, t := range translators {
		userID, ok := users[t.UserEmail]
		if !ok {
			return nil, fmt.Errorf("translator references unknown user %s", t.UserEmail)
		}
		created, err := tx.Translator.Create().
			SetUserID(userID).
			SetLanguages(t.Languages).
			SetNillableCity(nilIfEmpty(t.City)).
			SetStatus(enttranslator.Status(t.Status)).
			SetBio(t.Bio).
			SetNillableDayRate(t.DayRate).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create translator profile %s: %w", t.UserEmail, err)
		}
		ids[t.UserEmail] = created.ID
	}
	return ids, nil
}

func insertHospitals(ctx context.Context, tx *repo.Tx, hospitals []fixture.Hospital) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(hospitals))
	for _, h := range hospitals {
		create := tx.Hospital.Create().
			SetSlug(h.Slug).
			SetNameEn(h.NameEn).
			SetNameAr(h.NameAr).
			SetDescriptionEn(h.DescriptionEn).
			SetDescriptionAr(h.DescriptionAr).
			SetCityEn(h.CityEn).
			SetCityAr(h.CityAr).
			SetNillableAddress(nilIfEmpty(h.Address)).
			SetNillablePhone(nilIfEmpty(h.Phone)).
			SetNillableEmail(nilIfEmpty(h.Email)).
			SetAccreditations(h.Accreditations).
			SetLanguagesSupported(h.LanguagesSupported).
			SetImages(h.Images).
			SetNillableEstablishedYear(h.EstablishedYear).
			SetNillableBedCount(h.BedCount).
			SetFeatured(h.Featured).
			SetNillableMetaTitleEn(nilIfEmpty(h.Meta.TitleEn)).
			SetNillableMetaTitleAr(nilIfEmpty(h.Meta.TitleAr)).
			SetMetaDescriptionEn(h.Meta.DescriptionEn).
			SetMetaDescriptionAr(h.Meta.DescriptionAr)
		if h.Published {
			create.SetPublished(true).SetPublishedAt(time.Now().UTC())
		}
		created, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create hospital %s: %w", h.Slug, err)
		}
		ids[h.Slug] = created.ID
	}
	return ids, nil
}

func insertDoctors(ctx context.Context, tx *repo.Tx, doctors []fixture.Doctor, hospitals map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(doctors))
	for _, d := range doctors {
		hospitalID, ok := hospitals[d.HospitalSlug]
		if !ok {
			return nil, fmt.Errorf("doctor %s: unknown hospital %q", d.Slug, d.HospitalSlug)
		}
		create := tx.Doctor.Create().
			SetHospitalID(hospitalID).
			SetSlug(d.Slug).
			SetNameEn(d.NameEn).
			SetNameAr(d.NameAr).
			SetNillableTitleEn(nilIfEmpty(d.TitleEn)).
			SetNillableTitleAr(nilIfEmpty(d.TitleAr)).
			SetSpecialtiesEn(d.SpecialtiesEn).
			SetSpecialtiesAr(d.SpecialtiesAr).
			SetQualifications(d.Qualifications).
			SetExperienceYears(d.ExperienceYears).
			SetLanguages(d.Languages).
			SetBioEn(d.BioEn).
			SetBioAr(d.BioAr).
			SetNillableImage(nilIfEmpty(d.Image)).
			SetNillableConsultationFee(d.ConsultationFee).
			SetTelemedicineAvailable(d.TelemedicineAvailable).
			SetNillableMetaTitleEn(nilIfEmpty(d.Meta.TitleEn)).
			SetNillableMetaTitleAr(nilIfEmpty(d.Meta.TitleAr)).
			SetMetaDescriptionEn(d.Meta.DescriptionEn).
			SetMetaDescriptionAr(d.Meta.DescriptionAr)
		if d.Published {
			create.SetPublished(true).SetPublishedAt(time.Now().UTC())
		}
		created, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create doctor %s: %w", d.Slug, err)
		}
		ids[d.Slug] = created.ID
	}
	return ids, nil
}

func insertTreatments(ctx context.Context, tx *repo.Tx, treatments []fixture.Treatment, hospitals map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(treatments))
	for _, t := range treatments {
		hospitalIDs := make([]uuid.UUID, 0, len(t.HospitalSlugs))
		for _, slug := range t.HospitalSlugs {
			id, ok := hospitals[slug]
			if !ok {
				return nil, fmt.Errorf("treatment %s: unknown hospital %q", t.Slug, slug)
			}
			hospitalIDs = append(hospitalIDs, id)
		}
		create := tx.Treatment.Create().
			SetSlug(t.Slug).
			SetNameEn(t.NameEn).
			SetNameAr(t.NameAr).
			SetNillableCategoryEn(nilIfEmpty(t.CategoryEn)).
			SetNillableCategoryAr(nilIfEmpty(t.CategoryAr)).
			SetSummaryEn(t.SummaryEn).
			SetSummaryAr(t.SummaryAr).
			SetBodyEn(t.BodyEn).
			SetBodyAr(t.BodyAr).
			SetCostMin(t.CostMin).
			SetCostMax(t.CostMax).
			SetCurrency(t.Currency).
			SetNillableStayDaysMin(t.StayDaysMin).
			SetNillableStayDaysMax(t.StayDaysMax).
			SetFaq(t.FAQ).
			SetImages(t.Images).
			SetFeatured(t.Featured).
			SetNillableMetaTitleEn(nilIfEmpty(t.Meta.TitleEn)).
			SetNillableMetaTitleAr(nilIfEmpty(t.Meta.TitleAr)).
			SetMetaDescriptionEn(t.Meta.DescriptionEn).
			SetMetaDescriptionAr(t.Meta.DescriptionAr).
			AddHospitalIDs(hospitalIDs...)
		if t.Published {
			create.SetPublished(true).SetPublishedAt(time.Now().UTC())
		}
		created, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create treatment %s: %w", t.Slug, err)
		}
		ids[t.Slug] = created.ID
	}
	return ids, nil
}

func insertPackages(ctx context.Context, tx *repo.Tx, packages []fixture.Package, treatments, hospitals map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(packages))
	for _, p := range packages {
		treatmentID, ok := treatments[p.TreatmentSlug]
		if !ok {
			return nil, fmt.Errorf("package %s: unknown treatment %q", p.Slug, p.TreatmentSlug)
		}
		hospitalID, ok := hospitals[p.HospitalSlug]
		if !ok {
			return nil, fmt.Errorf("package %s: unknown hospital %q", p.Slug, p.HospitalSlug)
		}
		create := tx.CarePackage.Create().
			SetTreatmentID(treatmentID).
			SetHospitalID(hospitalID).
			SetSlug(p.Slug).
			SetNameEn(p.NameEn).
			SetNameAr(p.NameAr).
			SetDescriptionEn(p.DescriptionEn).
			SetDescriptionAr(p.DescriptionAr).
			SetPrice(p.Price).
			SetCurrency(p.Currency).
			SetNillableDurationDays(p.DurationDays).
			SetInclusionsEn(p.InclusionsEn).
			SetInclusionsAr(p.InclusionsAr).
			SetExclusionsEn(p.ExclusionsEn).
			SetExclusionsAr(p.ExclusionsAr).
			SetFeatured(p.Featured)
		if p.Published {
			create.SetPublished(true).SetPublishedAt(time.Now().UTC())
		}
		created, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create package %s: %w", p.Slug, err)
		}
		ids[p.Slug] = created.ID
	}
	return ids, nil
}

func insertContentPages(ctx context.Context, tx *repo.Tx, pages []fixture.ContentPage, users map[string]uuid.UUID) error {
	for _, p := range pages {
		create := tx.ContentPage.Create().
			SetSlug(p.Slug).
			SetKind(entcontentpage.Kind(p.Kind)).
			SetTitleEn(p.TitleEn).
			SetTitleAr(p.TitleAr).
			SetExcerptEn(p.ExcerptEn).
			SetExcerptAr(p.ExcerptAr).
			SetBodyEn(p.BodyEn).
			SetBodyAr(p.BodyAr).
			SetNillableCoverImage(nilIfEmpty(p.CoverImage)).
			SetTags(p.Tags).
			SetNillableAuthorName(nilIfEmpty(p.AuthorName)).
			SetNillableMetaTitleEn(nilIfEmpty(p.Meta.TitleEn)).
			SetNillableMetaTitleAr(nilIfEmpty(p.Meta.TitleAr)).
			SetMetaDescriptionEn(p.Meta.DescriptionEn).
			SetMetaDescriptionAr(p.Meta.DescriptionAr)
		if p.FAQ != nil {
			create.SetFaq(p.FAQ)
		}
		if authorID, ok := users[p.AuthorEmail]; ok {
			create.SetAuthorID(authorID)
		}
		if p.Published {
			create.SetPublished(true).SetPublishedAt(time.Now().UTC())
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create content page %s: %w", p.Slug, err)
		}
	}
	return nil
}

func insertBookings(ctx context.Context, tx *repo.Tx, bookings []fixture.Booking, r refs) error {
	for _, b := range bookings {
		create := tx.Booking.Create().
			SetPatientName(b.PatientName).
			SetPatientEmail(b.PatientEmail).
			SetPatientPhone(b.PatientPhone).
			SetNillableCountry(nilIfEmpty(b.Country)).
			SetLocale(b.Locale).
			SetStatus(entbooking.Status(b.Status)).
			SetNotes(b.Notes)
		if !b.PreferredStart.IsZero() {
			create.SetPreferredStart(b.PreferredStart)
		}
		if !b.PreferredEnd.IsZero() {
			create.SetPreferredEnd(b.PreferredEnd)
		}
		if id, ok := r.treatments[b.TreatmentSlug]; ok {
			create.SetTreatmentID(id)
		}
		if id, ok := r.hospitals[b.HospitalSlug]; ok {
			create.SetHospitalID(id)
		}
		if id, ok := r.doctors[b.DoctorSlug]; ok {
			create.SetDoctorID(id)
		}
		if id, ok := r.packages[b.PackageSlug]; ok {
			create.SetPackageID(id)
		}
		if id, ok := r.translators[b.TranslatorEmail]; ok {
			create.SetTranslatorID(id)
		}
		if id, ok := r.users[b.AssignedUserEmail]; ok {
			create.SetAssignedUserID(id)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create booking for %s: %w", b.PatientEmail, err)
		}
	}
	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
