// Package fixture holds the deterministic development dataset. The seed
// loader wipes the database and inserts exactly this data, so every
// environment seeded at the same code revision ends up identical.
//
// Records reference each other by slug or email, never by id: ids are
// generated at insert time and the loader resolves references as it goes.
package fixture

import (
	"time"

	"github.com/shifaalhind/backend/internal/content"
)

// User is a staff account. Password is the plaintext development
// credential; the loader hashes it before insert.
type User struct {
	Name     string
	Email    string
	Password string
	Role     string
	Locale   string
	Phone    string
}

// Translator is a medical interpreter profile extending a TRANSLATOR user.
type Translator struct {
	UserEmail string
	Languages []string
	City      string
	Status    string
	Bio       string
	DayRate   *float64
}

// Hospital is a partner hospital profile.
type Hospital struct {
	Slug               string
	NameEn, NameAr     string
	DescriptionEn      string
	DescriptionAr      string
	Address            string
	CityEn, CityAr     string
	Phone, Email       string
	Accreditations     []string
	LanguagesSupported []string
	Images             content.Images
	EstablishedYear    *int
	BedCount           *int
	Featured           bool
	Meta               Meta
	Published          bool
}

// Doctor is a physician profile. HospitalSlug names the owning hospital.
type Doctor struct {
	HospitalSlug          string
	Slug                  string
	NameEn, NameAr        string
	TitleEn, TitleAr      string
	SpecialtiesEn         []string
	SpecialtiesAr         []string
	Qualifications        []string
	ExperienceYears       int
	Languages             []string
	BioEn, BioAr          string
	Image                 string
	ConsultationFee       *float64
	TelemedicineAvailable bool
	Meta                  Meta
	Published             bool
}

// Treatment is a procedure page. HospitalSlugs name the hospitals that
// offer it.
type Treatment struct {
	Slug                   string
	NameEn, NameAr         string
	CategoryEn, CategoryAr string
	SummaryEn, SummaryAr   string
	BodyEn, BodyAr         content.Document
	CostMin, CostMax       float64
	Currency               string
	StayDaysMin            *int
	StayDaysMax            *int
	FAQ                    []content.FAQItem
	Images                 content.Images
	HospitalSlugs          []string
	Featured               bool
	Meta                   Meta
	Published              bool
}

// Package is a fixed-price care bundle tied to one treatment and hospital.
type Package struct {
	TreatmentSlug  string
	HospitalSlug   string
	Slug           string
	NameEn, NameAr string
	DescriptionEn  string
	DescriptionAr  string
	Price          float64
	Currency       string
	DurationDays   *int
	InclusionsEn   []string
	InclusionsAr   []string
	ExclusionsEn   []string
	ExclusionsAr   []string
	Featured       bool
	Published      bool
}

// ContentPage is a blog post or static page. AuthorEmail names the owning
// user; AuthorName is the public byline.
type ContentPage struct {
	Slug             string
	Kind             string
	TitleEn, TitleAr string
	ExcerptEn        string
	ExcerptAr        string
	BodyEn, BodyAr   content.Document
	CoverImage       string
	Tags             []string
	FAQ              []content.FAQItem
	AuthorName       string
	AuthorEmail      string
	Meta             Meta
	Published        bool
}

// Booking is a sample enquiry in the coordinator pipeline.
type Booking struct {
	PatientName       string
	PatientEmail      string
	PatientPhone      string
	Country           string
	Locale            string
	TreatmentSlug     string
	HospitalSlug      string
	DoctorSlug        string
	PackageSlug       string
	TranslatorEmail   string
	AssignedUserEmail string
	Status            string
	PreferredStart    time.Time
	PreferredEnd      time.Time
	Notes             string
}

// Meta is the per-entity SEO override pair set.
type Meta struct {
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
}

// Dataset is the complete fixture set, in dependency order.
type Dataset struct {
	Users        []User
	Translators  []Translator
	Hospitals    []Hospital
	Doctors      []Doctor
	Treatments   []Treatment
	Packages     []Package
	ContentPages []ContentPage
	Bookings     []Booking
}

// Default returns the development dataset. The returned value is freshly
// built on every call so callers may mutate it safely.
func Default() Dataset {
	return Dataset{
		Users:        users(),
		Translators:  translators(),
		Hospitals:    hospitals(),
		Doctors:      doctors(),
		Treatments:   treatments(),
		Packages:     packages(),
		ContentPages: contentPages(),
		Bookings:     bookings(),
	}
}

func ptrInt(v int) *int { return &v }

func ptrFloat(v float64) *float64 { return &v }
