package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/pkg/locale"
	"github.com/shifaalhind/backend/pkg/seo"
)

// The public API resolves every bilingual field pair to the request locale.
// Admin routes return the raw records instead; the panel edits both sides.

// Meta is the resolved SEO head block for a detail page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HospitalView struct {
	ID                 uuid.UUID      `json:"id"`
	Slug               string         `json:"slug"`
	Name               string         `json:"name"`
	AltName            string         `json:"alt_name,omitempty"`
	Description        string         `json:"description"`
	City               string         `json:"city"`
	Country            string         `json:"country"`
	Address            string         `json:"address,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Email              string         `json:"email,omitempty"`
	Accreditations     []string       `json:"accreditations,omitempty"`
	LanguagesSupported []string       `json:"languages_supported,omitempty"`
	Images             content.Images `json:"images"`
	EstablishedYear    *int           `json:"established_year,omitempty"`
	BedCount           *int           `json:"bed_count,omitempty"`
	Featured           bool           `json:"featured"`
	Meta               Meta           `json:"meta"`

	Doctors    []DoctorSummary    `json:"doctors,omitempty"`
	Treatments []TreatmentSummary `json:"treatments,omitempty"`

	JSONLD []seo.Object `json:"json_ld,omitempty"`
}

type DoctorSummary struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Title       string    `json:"title,omitempty"`
	Specialties []string  `json:"specialties,omitempty"`
	Image       string    `json:"image,omitempty"`
}

type TreatmentSummary struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	CostMin  float64   `json:"cost_min"`
	CostMax  float64   `json:"cost_max"`
	Currency string    `json:"currency"`
}

type PackageSummary struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays int       `json:"duration_days"`
}

type HospitalSummary struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
	City string    `json:"city"`
}

type DoctorView struct {
	ID              uuid.UUID `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	AltName         string    `json:"alt_name,omitempty"`
	Title           string    `json:"title,omitempty"`
	Specialties     []string  `json:"specialties,omitempty"`
	Qualifications  []string  `json:"qualifications,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Languages       []string  `json:"languages,omitempty"`
	Bio             string    `json:"bio"`
	Image           string    `json:"image,omitempty"`
	ConsultationFee *float64  `json:"consultation_fee,omitempty"`
	Telemedicine    bool      `json:"telemedicine_available"`
	Meta            Meta      `json:"meta"`

	Hospital *HospitalSummary `json:"hospital,omitempty"`

	JSONLD []seo.Object `json:"json_ld,omitempty"`
}

type TreatmentView struct {
	ID          uuid.UUID              `json:"id"`
	Slug        string                 `json:"slug"`
	Name        string                 `json:"name"`
	AltName     string                 `json:"alt_name,omitempty"`
	Category    string                 `json:"category,omitempty"`
	Summary     string                 `json:"summary"`
	Body        content.Document       `json:"body"`
	CostMin     float64                `json:"cost_min"`
	CostMax     float64                `json:"cost_max"`
	Currency    string                 `json:"currency"`
	StayDaysMin int                    `json:"stay_days_min"`
	StayDaysMax int                    `json:"stay_days_max"`
	FAQ         []content.LocalizedFAQ `json:"faq,omitempty"`
	Images      content.Images         `json:"images"`
	Featured    bool                   `json:"featured"`
	Meta        Meta                   `json:"meta"`

	Hospitals []HospitalSummary `json:"hospitals,omitempty"`
	Packages  []PackageSummary  `json:"packages,omitempty"`

	JSONLD []seo.Object `json:"json_ld,omitempty"`
}

type PackageView struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	AltName      string    `json:"alt_name,omitempty"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays int       `json:"duration_days"`
	Inclusions   []string  `json:"inclusions,omitempty"`
	Exclusions   []string  `json:"exclusions,omitempty"`
	Featured     bool      `json:"featured"`

	Treatment *TreatmentSummary `json:"treatment,omitempty"`
	Hospital  *HospitalSummary  `json:"hospital,omitempty"`

	JSONLD []seo.Object `json:"json_ld,omitempty"`
}

type PageView struct {
	ID          uuid.UUID              `json:"id"`
	Slug        string                 `json:"slug"`
	Kind        string                 `json:"kind"`
	Title       string                 `json:"title"`
	Excerpt     string                 `json:"excerpt,omitempty"`
	Body        content.Document       `json:"body"`
	CoverImage  string                 `json:"cover_image,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	FAQ         []content.LocalizedFAQ `json:"faq,omitempty"`
	AuthorName  string                 `json:"author_name,omitempty"`
	PublishedAt *time.Time             `json:"published_at,omitempty"`
	Meta        Meta                   `json:"meta"`
}

// ---------------------------------------------------------------------------
// View builders
// ---------------------------------------------------------------------------

func hospitalView(h *repo.Hospital, l locale.Locale, site seo.Site, detail bool) HospitalView {
	name := locale.Pick(l, h.NameEn, h.NameAr)
	desc := locale.Pick(l, h.DescriptionEn, h.DescriptionAr)
	city := locale.Pick(l, h.CityEn, h.CityAr)
	country := locale.Pick(l, h.CountryEn, h.CountryAr)

	v := HospitalView{
		ID:                 h.ID,
		Slug:               h.Slug,
		Name:               name,
		AltName:            altName(l, h.NameEn, h.NameAr),
		Description:        desc,
		City:               city,
		Country:            country,
		Address:            deref(h.Address),
		Phone:              deref(h.Phone),
		Email:              deref(h.Email),
		Accreditations:     h.Accreditations,
		LanguagesSupported: h.LanguagesSupported,
		Images:             h.Images,
		EstablishedYear:    h.EstablishedYear,
		BedCount:           h.BedCount,
		Featured:           h.Featured,
		Meta: resolveMeta(l, metaPair{
			h.MetaTitleEn, h.MetaTitleAr,
			h.MetaDescriptionEn, h.MetaDescriptionAr,
		}, name, desc),
	}

	if !detail {
		return v
	}

	for _, d := range h.Edges.Doctors {
		v.Doctors = append(v.Doctors, doctorSummary(d, l))
	}
	for _, t := range h.Edges.Treatments {
		v.Treatments = append(v.Treatments, treatmentSummary(t, l))
	}

	v.JSONLD = []seo.Object{
		site.Hospital(seo.HospitalInput{
			Name:           h.NameEn,
			AltName:        h.NameAr,
			Description:    desc,
			Address:        deref(h.Address),
			City:           h.CityEn,
			Country:        h.CountryEn,
			Image:          h.Images.Main,
			Accreditations: h.Accreditations,
		}),
		site.Breadcrumbs([]seo.Crumb{
			{Name: site.NameEn, Path: "/"},
			{Name: "Hospitals", Path: "/hospitals"},
			{Name: h.NameEn, Path: "/hospitals/" + h.Slug},
		}),
	}
	return v
}

func doctorSummary(d *repo.Doctor, l locale.Locale) DoctorSummary {
	return DoctorSummary{
		ID:          d.ID,
		Slug:        d.Slug,
		Name:        locale.Pick(l, d.NameEn, d.NameAr),
		Title:       derefPick(l, d.TitleEn, d.TitleAr),
		Specialties: locale.PickSlice(l, d.SpecialtiesEn, d.SpecialtiesAr),
		Image:       deref(d.Image),
	}
}

func doctorView(d *repo.Doctor, l locale.Locale, site seo.Site, detail bool) DoctorView {
	name := locale.Pick(l, d.NameEn, d.NameAr)
	bio := locale.Pick(l, d.BioEn, d.BioAr)
	specialties := locale.PickSlice(l, d.SpecialtiesEn, d.SpecialtiesAr)

	v := DoctorView{
		ID:              d.ID,
		Slug:            d.Slug,
		Name:            name,
		AltName:         altName(l, d.NameEn, d.NameAr),
		Title:           derefPick(l, d.TitleEn, d.TitleAr),
		Specialties:     specialties,
		Qualifications:  d.Qualifications,
		ExperienceYears: d.ExperienceYears,
		Languages:       d.Languages,
		Bio:             bio,
		Image:           deref(d.Image),
		ConsultationFee: d.ConsultationFee,
		Telemedicine:    d.TelemedicineAvailable,
		Meta: resolveMeta(l, metaPair{
			d.MetaTitleEn, d.MetaTitleAr,
			d.MetaDescriptionEn, d.MetaDescriptionAr,
		}, name, bio),
	}

	var hospitalName string
	if h := d.Edges.Hospital; h != nil {
		v.Hospital = &HospitalSummary{
			ID:   h.ID,
			Slug: h.Slug,
			Name: locale.Pick(l, h.NameEn, h.NameAr),
			City: locale.Pick(l, h.CityEn, h.CityAr),
		}
		hospitalName = h.NameEn
	}

	if detail {
		v.JSONLD = []seo.Object{
			site.Physician(seo.PhysicianInput{
				Name:         d.NameEn,
				AltName:      d.NameAr,
				Slug:         d.Slug,
				Specialties:  d.SpecialtiesEn,
				HospitalName: hospitalName,
				Image:        deref(d.Image),
				Languages:    d.Languages,
			}),
		}
	}
	return v
}

func treatmentSummary(t *repo.Treatment, l locale.Locale) TreatmentSummary {
	return TreatmentSummary{
		ID:       t.ID,
		Slug:     t.Slug,
		Name:     locale.Pick(l, t.NameEn, t.NameAr),
		Category: derefPick(l, t.CategoryEn, t.CategoryAr),
		CostMin:  t.CostMin,
		CostMax:  t.CostMax,
		Currency: t.Currency,
	}
}

func treatmentView(t *repo.Treatment, l locale.Locale, site seo.Site, detail bool, now time.Time) TreatmentView {
	name := locale.Pick(l, t.NameEn, t.NameAr)
	summary := locale.Pick(l, t.SummaryEn, t.SummaryAr)

	v := TreatmentView{
		ID:          t.ID,
		Slug:        t.Slug,
		Name:        name,
		AltName:     altName(l, t.NameEn, t.NameAr),
		Category:    derefPick(l, t.CategoryEn, t.CategoryAr),
		Summary:     summary,
		CostMin:     t.CostMin,
		CostMax:     t.CostMax,
		Currency:    t.Currency,
		StayDaysMin: derefInt(t.StayDaysMin),
		StayDaysMax: derefInt(t.StayDaysMax),
		Images:      t.Images,
		Featured:    t.Featured,
		Meta: resolveMeta(l, metaPair{
			t.MetaTitleEn, t.MetaTitleAr,
			t.MetaDescriptionEn, t.MetaDescriptionAr,
		}, name, summary),
	}

	if !detail {
		return v
	}

	v.Body = locale.PickValue(l, t.BodyEn, t.BodyAr)
	for _, f := range t.Faq {
		v.FAQ = append(v.FAQ, f.Localize(l))
	}
	for _, h := range t.Edges.Hospitals {
		v.Hospitals = append(v.Hospitals, HospitalSummary{
			ID:   h.ID,
			Slug: h.Slug,
			Name: locale.Pick(l, h.NameEn, h.NameAr),
			City: locale.Pick(l, h.CityEn, h.CityAr),
		})
	}
	for _, p := range t.Edges.Packages {
		v.Packages = append(v.Packages, packageSummary(p, l))
	}

	v.JSONLD = []seo.Object{
		site.MedicalProcedure(seo.ProcedureInput{
			Name:        t.NameEn,
			AltName:     t.NameAr,
			Description: summary,
			Slug:        t.Slug,
			CostMin:     t.CostMin,
			CostMax:     t.CostMax,
			Currency:    t.Currency,
		}, now),
	}
	if len(t.Faq) > 0 {
		entries := make([]seo.FAQEntry, 0, len(t.Faq))
		for _, f := range t.Faq {
			lf := f.Localize(l)
			entries = append(entries, seo.FAQEntry{Question: lf.Question, Answer: lf.Answer})
		}
		v.JSONLD = append(v.JSONLD, seo.FAQPage(entries))
	}
	return v
}

func packageSummary(p *repo.CarePackage, l locale.Locale) PackageSummary {
	return PackageSummary{
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         locale.Pick(l, p.NameEn, p.NameAr),
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: derefInt(p.DurationDays),
	}
}

func packageView(p *repo.CarePackage, l locale.Locale, site seo.Site, detail bool, now time.Time) PackageView {
	name := locale.Pick(l, p.NameEn, p.NameAr)
	desc := locale.Pick(l, p.DescriptionEn, p.DescriptionAr)

	v := PackageView{
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         name,
		AltName:      altName(l, p.NameEn, p.NameAr),
		Description:  desc,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: derefInt(p.DurationDays),
		Inclusions:   locale.PickSlice(l, p.InclusionsEn, p.InclusionsAr),
		Exclusions:   locale.PickSlice(l, p.ExclusionsEn, p.ExclusionsAr),
		Featured:     p.Featured,
	}

	if t := p.Edges.Treatment; t != nil {
		s := treatmentSummary(t, l)
		v.Treatment = &s
	}
	if h := p.Edges.Hospital; h != nil {
		v.Hospital = &HospitalSummary{
			ID:   h.ID,
			Slug: h.Slug,
			Name: locale.Pick(l, h.NameEn, h.NameAr),
			City: locale.Pick(l, h.CityEn, h.CityAr),
		}
	}

	if detail {
		v.JSONLD = []seo.Object{
			site.Product(seo.ProductInput{
				Name:        p.NameEn,
				AltName:     p.NameAr,
				Description: desc,
				Slug:        p.Slug,
				Price:       p.Price,
				Currency:    p.Currency,
			}, now),
		}
	}
	return v
}

func pageView(p *repo.ContentPage, l locale.Locale, detail bool) PageView {
	title := locale.Pick(l, p.TitleEn, p.TitleAr)
	excerpt := locale.Pick(l, p.ExcerptEn, p.ExcerptAr)

	v := PageView{
		ID:          p.ID,
		Slug:        p.Slug,
		Kind:        string(p.Kind),
		Title:       title,
		Excerpt:     excerpt,
		CoverImage:  deref(p.CoverImage),
		Tags:        p.Tags,
		AuthorName:  deref(p.AuthorName),
		PublishedAt: p.PublishedAt,
		Meta: resolveMeta(l, metaPair{
			p.MetaTitleEn, p.MetaTitleAr,
			p.MetaDescriptionEn, p.MetaDescriptionAr,
		}, title, excerpt),
	}

	if detail {
		v.Body = locale.PickValue(l, p.BodyEn, p.BodyAr)
		for _, f := range p.Faq {
			v.FAQ = append(v.FAQ, f.Localize(l))
		}
	}
	return v
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type metaPair struct {
	titleEn *string
	titleAr *string
	descEn  string
	descAr  string
}

// resolveMeta picks the SEO pair for the locale, falling back to the page's
// own name and description when no explicit meta was authored.
func resolveMeta(l locale.Locale, m metaPair, fallbackTitle, fallbackDesc string) Meta {
	title := derefPick(l, m.titleEn, m.titleAr)
	if title == "" {
		title = fallbackTitle
	}
	desc := locale.Pick(l, m.descEn, m.descAr)
	if desc == "" {
		desc = fallbackDesc
	}
	return Meta{Title: title, Description: desc}
}

// altName returns the opposite-language name so clients can render both.
func altName(l locale.Locale, en, ar string) string {
	if l == locale.Arabic {
		return en
	}
	return ar
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func derefPick(l locale.Locale, en, ar *string) string {
	return locale.Pick(l, deref(en), deref(ar))
}
