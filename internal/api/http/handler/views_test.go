package handler

import (
	"testing"
	"time"

	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo"
	"github.com/shifaalhind/backend/pkg/locale"
	"github.com/shifaalhind/backend/pkg/seo"
)

var testSite = seo.Site{
	BaseURL:      "https://shifaalhind.com",
	NameEn:       "Shifa AlHind",
	NameAr:       "شفاء الهند",
	ContactEmail: "info@shifaalhind.com",
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestHospitalViewOptionalContacts(t *testing.T) {
	h := &repo.Hospital{
		Slug:   "apollo-bangalore",
		NameEn: "Apollo Hospitals Bangalore",
		NameAr: "مستشفى أبولو بنغالور",
	}

	v := hospitalView(h, locale.English, testSite, false)
	if v.Address != "" || v.Phone != "" || v.Email != "" {
		t.Errorf("expected empty contact fields, got %q %q %q", v.Address, v.Phone, v.Email)
	}

	h.Address = strPtr("154/11 Bannerghatta Road")
	h.Phone = strPtr("+91-80-2630-4050")
	h.Email = strPtr("intl@apollobangalore.example")

	v = hospitalView(h, locale.English, testSite, true)
	if v.Address != "154/11 Bannerghatta Road" {
		t.Errorf("Address = %q", v.Address)
	}
	if v.Phone != "+91-80-2630-4050" {
		t.Errorf("Phone = %q", v.Phone)
	}
	if v.Email != "intl@apollobangalore.example" {
		t.Errorf("Email = %q", v.Email)
	}
}

func TestTreatmentViewStayDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tr := &repo.Treatment{
		Slug:   "knee-replacement",
		NameEn: "Knee Replacement",
		NameAr: "استبدال مفصل الركبة",
	}

	v := treatmentView(tr, locale.English, testSite, false, now)
	if v.StayDaysMin != 0 || v.StayDaysMax != 0 {
		t.Errorf("expected zero stay days, got %d-%d", v.StayDaysMin, v.StayDaysMax)
	}

	tr.StayDaysMin = intPtr(7)
	tr.StayDaysMax = intPtr(14)

	v = treatmentView(tr, locale.English, testSite, false, now)
	if v.StayDaysMin != 7 || v.StayDaysMax != 14 {
		t.Errorf("stay days = %d-%d, want 7-14", v.StayDaysMin, v.StayDaysMax)
	}
}

func TestPackageViewDurationDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	p := &repo.CarePackage{
		Slug:   "knee-replacement-complete-care",
		NameEn: "Knee Replacement Complete Care",
		NameAr: "باقة استبدال الركبة الشاملة",
	}

	if got := packageSummary(p, locale.English); got.DurationDays != 0 {
		t.Errorf("summary DurationDays = %d, want 0", got.DurationDays)
	}

	p.DurationDays = intPtr(12)

	if got := packageSummary(p, locale.English); got.DurationDays != 12 {
		t.Errorf("summary DurationDays = %d, want 12", got.DurationDays)
	}
	if got := packageView(p, locale.English, testSite, false, now); got.DurationDays != 12 {
		t.Errorf("view DurationDays = %d, want 12", got.DurationDays)
	}
}

func TestTreatmentViewBodyNoFallback(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tr := &repo.Treatment{
		Slug:   "heart-bypass",
		NameEn: "Heart Bypass Surgery",
		NameAr: "جراحة مجازة القلب",
		BodyEn: content.Document{Sections: []content.Block{
			{Type: content.BlockParagraph, Content: "A draft only authored in English."},
		}},
	}

	v := treatmentView(tr, locale.Arabic, testSite, true, now)
	if !v.Body.Empty() {
		t.Errorf("Arabic body = %+v, want empty (English must not leak)", v.Body)
	}

	v = treatmentView(tr, locale.English, testSite, true, now)
	if v.Body.Empty() {
		t.Error("English body missing")
	}
}

func TestPageViewBodyNoFallback(t *testing.T) {
	p := &repo.ContentPage{
		Slug:    "medical-visa-guide",
		TitleEn: "Medical Visa Guide",
		TitleAr: "دليل التأشيرة الطبية",
		BodyEn: content.Document{Sections: []content.Block{
			{Type: content.BlockParagraph, Content: "How to apply for an Indian medical visa."},
		}},
	}

	v := pageView(p, locale.Arabic, true)
	if !v.Body.Empty() {
		t.Errorf("Arabic body = %+v, want empty (English must not leak)", v.Body)
	}
	if v.Title != p.TitleAr {
		t.Errorf("Title = %q, want %q", v.Title, p.TitleAr)
	}

	v = pageView(p, locale.English, true)
	if v.Body.Empty() {
		t.Error("English body missing")
	}
}
