package seo

import (
	"testing"
	"time"
)

var site = Site{
	BaseURL:      "https://shifaalhind.com",
	NameEn:       "Shifa AlHind",
	NameAr:       "شفاء الهند",
	ContactEmail: "info@shifaalhind.com",
	ContactPhone: "+91-80-4567-8900",
}

func TestMedicalProcedurePriceValidity(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	obj := site.MedicalProcedure(ProcedureInput{
		Name:        "Hip Replacement Surgery",
		AltName:     "جراحة استبدال مفصل الورك",
		Description: "Total hip replacement by senior orthopedic surgeons.",
		Slug:        "hip-replacement-surgery-bangalore",
		CostMin:     4500,
		CostMax:     8500,
		Currency:    "USD",
	}, now)

	offers, ok := obj["offers"].(Object)
	if !ok {
		t.Fatalf("offers missing or wrong type: %#v", obj["offers"])
	}
	if got, want := offers["priceValidUntil"], "2026-08-28"; got != want {
		t.Errorf("priceValidUntil = %v, want %v", got, want)
	}
	if got, want := offers["lowPrice"], "4500"; got != want {
		t.Errorf("lowPrice = %v, want %v", got, want)
	}
	if got, want := offers["highPrice"], "8500"; got != want {
		t.Errorf("highPrice = %v, want %v", got, want)
	}
	if got, want := obj["alternateName"], "جراحة استبدال مفصل الورك"; got != want {
		t.Errorf("alternateName = %v, want %v", got, want)
	}
}

func TestProductOffer(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	obj := site.Product(ProductInput{
		Name:     "Comprehensive Care Package",
		Slug:     "comprehensive-care-package",
		Price:    7500,
		Currency: "USD",
	}, now)

	offers := obj["offers"].(Object)
	if got, want := offers["price"], "7500"; got != want {
		t.Errorf("price = %v, want %v", got, want)
	}
	if got, want := offers["url"], "https://shifaalhind.com/packages/comprehensive-care-package"; got != want {
		t.Errorf("url = %v, want %v", got, want)
	}
	if got, want := offers["priceValidUntil"], "2026-07-14"; got != want {
		t.Errorf("priceValidUntil = %v, want %v", got, want)
	}
	if _, present := obj["alternateName"]; present {
		t.Error("alternateName should be omitted when empty")
	}
}

func TestHospitalCredentials(t *testing.T) {
	obj := site.Hospital(HospitalInput{
		Name:           "Apollo Hospital Bangalore",
		AltName:        "مستشفى أبولو بنغالور",
		Description:    "Multi-specialty hospital with international patient services.",
		Address:        "154/11 Bannerghatta Road",
		City:           "Bangalore",
		Country:        "India",
		Accreditations: []string{"JCI", "NABH"},
	})

	creds, ok := obj["hasCredential"].([]Object)
	if !ok || len(creds) != 2 {
		t.Fatalf("hasCredential = %#v, want 2 entries", obj["hasCredential"])
	}
	if got, want := creds[0]["name"], "JCI"; got != want {
		t.Errorf("credential[0] = %v, want %v", got, want)
	}
	addr := obj["address"].(Object)
	if got, want := addr["addressLocality"], "Bangalore"; got != want {
		t.Errorf("addressLocality = %v, want %v", got, want)
	}
}

func TestFAQPage(t *testing.T) {
	obj := FAQPage([]FAQEntry{
		{Question: "How long is the hospital stay?", Answer: "Typically 4 to 6 days."},
		{Question: "كم تبلغ مدة الإقامة في المستشفى؟", Answer: "عادة من 4 إلى 6 أيام."},
	})
	items := obj["mainEntity"].([]Object)
	if len(items) != 2 {
		t.Fatalf("mainEntity has %d items, want 2", len(items))
	}
	ans := items[1]["acceptedAnswer"].(Object)
	if got, want := ans["text"], "عادة من 4 إلى 6 أيام."; got != want {
		t.Errorf("answer = %v, want %v", got, want)
	}
}

func TestBreadcrumbPositions(t *testing.T) {
	obj := site.Breadcrumbs([]Crumb{
		{Name: "Home", Path: "/en"},
		{Name: "Treatments", Path: "/en/treatments"},
		{Name: "Hip Replacement", Path: "/en/treatments/hip-replacement-surgery-bangalore"},
	})
	items := obj["itemListElement"].([]Object)
	for i, it := range items {
		if got, want := it["position"], i+1; got != want {
			t.Errorf("position[%d] = %v, want %v", i, got, want)
		}
	}
	if got, want := items[2]["item"], "https://shifaalhind.com/en/treatments/hip-replacement-surgery-bangalore"; got != want {
		t.Errorf("item url = %v, want %v", got, want)
	}
}
