// Package seo builds the JSON-LD structured-data objects each detail page
// embeds for search engines. The objects mirror the visible bilingual
// content; handlers pass values already resolved for the request locale and
// the English/Arabic name pair where schema.org has an alternateName slot.
package seo

import (
	"fmt"
	"time"
)

// PriceValidityHorizon is how far ahead an Offer's priceValidUntil is set
// from render time.
const PriceValidityHorizon = 180 * 24 * time.Hour

// Site identifies the publishing organization. Populated from config.
type Site struct {
	BaseURL      string
	NameEn       string
	NameAr       string
	ContactEmail string
	ContactPhone string
}

// Object is a loosely-typed JSON-LD node. schema.org vocabularies are too
// wide to model as structs; keys are written explicitly at each builder.
type Object map[string]any

// Organization describes the site itself (MedicalBusiness).
func (s Site) Organization() Object {
	return Object{
		"@context":      "https://schema.org",
		"@type":         "MedicalBusiness",
		"@id":           s.BaseURL + "/#organization",
		"name":          s.NameEn,
		"alternateName": s.NameAr,
		"url":           s.BaseURL,
		"email":         s.ContactEmail,
		"telephone":     s.ContactPhone,
		"areaServed": []Object{
			{"@type": "Country", "name": "United Arab Emirates"},
			{"@type": "Country", "name": "Saudi Arabia"},
			{"@type": "Country", "name": "Kuwait"},
			{"@type": "Country", "name": "Oman"},
			{"@type": "Country", "name": "Qatar"},
			{"@type": "Country", "name": "Bahrain"},
		},
	}
}

// HospitalInput carries the locale-resolved hospital fields.
type HospitalInput struct {
	Name           string
	AltName        string
	Description    string
	Address        string
	City           string
	Country        string
	Image          string
	Accreditations []string
}

// Hospital builds a schema.org Hospital node.
func (s Site) Hospital(in HospitalInput) Object {
	obj := Object{
		"@context":    "https://schema.org",
		"@type":       "Hospital",
		"name":        in.Name,
		"description": in.Description,
		"address": Object{
			"@type":           "PostalAddress",
			"streetAddress":   in.Address,
			"addressLocality": in.City,
			"addressCountry":  in.Country,
		},
	}
	if in.AltName != "" {
		obj["alternateName"] = in.AltName
	}
	if in.Image != "" {
		obj["image"] = in.Image
	}
	if len(in.Accreditations) > 0 {
		creds := make([]Object, 0, len(in.Accreditations))
		for _, acc := range in.Accreditations {
			creds = append(creds, Object{"@type": "EducationalOccupationalCredential", "name": acc})
		}
		obj["hasCredential"] = creds
	}
	return obj
}

// PhysicianInput carries the locale-resolved doctor fields.
type PhysicianInput struct {
	Name         string
	AltName      string
	Slug         string
	Specialties  []string
	HospitalName string
	Image        string
	Languages    []string
}

// Physician builds a schema.org Physician node.
func (s Site) Physician(in PhysicianInput) Object {
	obj := Object{
		"@context":         "https://schema.org",
		"@type":            "Physician",
		"@id":              fmt.Sprintf("%s/doctors/%s#physician", s.BaseURL, in.Slug),
		"name":             in.Name,
		"medicalSpecialty": in.Specialties,
	}
	if in.AltName != "" {
		obj["alternateName"] = in.AltName
	}
	if in.HospitalName != "" {
		obj["worksFor"] = Object{"@type": "Hospital", "name": in.HospitalName}
	}
	if in.Image != "" {
		obj["image"] = in.Image
	}
	if len(in.Languages) > 0 {
		obj["knowsLanguage"] = in.Languages
	}
	return obj
}

// ProcedureInput carries the locale-resolved treatment fields.
type ProcedureInput struct {
	Name        string
	AltName     string
	Description string
	Slug        string
	CostMin     float64
	CostMax     float64
	Currency    string
}

// MedicalProcedure builds a schema.org MedicalProcedure node with an Offer
// whose priceValidUntil lies PriceValidityHorizon from now.
func (s Site) MedicalProcedure(in ProcedureInput, now time.Time) Object {
	url := fmt.Sprintf("%s/treatments/%s", s.BaseURL, in.Slug)
	obj := Object{
		"@context":      "https://schema.org",
		"@type":         "MedicalProcedure",
		"@id":           url + "#procedure",
		"name":          in.Name,
		"description":   in.Description,
		"procedureType": "Surgical",
		"offers": Object{
			"@type":           "AggregateOffer",
			"lowPrice":        fmt.Sprintf("%.0f", in.CostMin),
			"highPrice":       fmt.Sprintf("%.0f", in.CostMax),
			"priceCurrency":   in.Currency,
			"availability":    "https://schema.org/InStock",
			"url":             url,
			"priceValidUntil": now.Add(PriceValidityHorizon).Format("2006-01-02"),
		},
	}
	if in.AltName != "" {
		obj["alternateName"] = in.AltName
	}
	return obj
}

// ProductInput carries the locale-resolved package fields.
type ProductInput struct {
	Name        string
	AltName     string
	Description string
	Slug        string
	Price       float64
	Currency    string
}

// Product builds a schema.org Product node for a care package.
func (s Site) Product(in ProductInput, now time.Time) Object {
	url := fmt.Sprintf("%s/packages/%s", s.BaseURL, in.Slug)
	obj := Object{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        in.Name,
		"description": in.Description,
		"offers": Object{
			"@type":           "Offer",
			"price":           fmt.Sprintf("%.0f", in.Price),
			"priceCurrency":   in.Currency,
			"availability":    "https://schema.org/InStock",
			"url":             url,
			"priceValidUntil": now.Add(PriceValidityHorizon).Format("2006-01-02"),
		},
	}
	if in.AltName != "" {
		obj["alternateName"] = in.AltName
	}
	return obj
}

// FAQEntry is one resolved question/answer pair for a FAQPage node.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQPage builds a schema.org FAQPage node.
func FAQPage(entries []FAQEntry) Object {
	items := make([]Object, 0, len(entries))
	for _, e := range entries {
		items = append(items, Object{
			"@type": "Question",
			"name":  e.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  e.Answer,
			},
		})
	}
	return Object{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	}
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Name string
	Path string // absolute path below the site base, e.g. "/en/treatments"
}

// Breadcrumbs builds a schema.org BreadcrumbList node. Positions are
// 1-based in trail order.
func (s Site) Breadcrumbs(trail []Crumb) Object {
	items := make([]Object, 0, len(trail))
	for i, c := range trail {
		items = append(items, Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     s.BaseURL + c.Path,
		})
	}
	return Object{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
