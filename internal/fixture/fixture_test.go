package fixture

import (
	"reflect"
	"testing"
)

func TestSlugsUnique(t *testing.T) {
	ds := Default()

	seen := map[string]string{}
	check := func(kind, slug string) {
		t.Helper()
		if slug == "" {
			t.Errorf("%s fixture has empty slug", kind)
			return
		}
		if prev, ok := seen[slug]; ok {
			t.Errorf("slug %q used by both %s and %s", slug, prev, kind)
		}
		seen[slug] = kind
	}

	for _, h := range ds.Hospitals {
		check("hospital", h.Slug)
	}
	for _, d := range ds.Doctors {
		check("doctor", d.Slug)
	}
	for _, tr := range ds.Treatments {
		check("treatment", tr.Slug)
	}
	for _, p := range ds.Packages {
		check("package", p.Slug)
	}
	for _, c := range ds.ContentPages {
		check("content page", c.Slug)
	}
}

func TestBilingualCompleteness(t *testing.T) {
	ds := Default()

	for _, h := range ds.Hospitals {
		if h.NameEn == "" || h.NameAr == "" {
			t.Errorf("hospital %s: both name sides must be set", h.Slug)
		}
		if h.DescriptionEn == "" || h.DescriptionAr == "" {
			t.Errorf("hospital %s: both description sides must be set", h.Slug)
		}
	}
	for _, d := range ds.Doctors {
		if d.NameEn == "" || d.NameAr == "" {
			t.Errorf("doctor %s: both name sides must be set", d.Slug)
		}
		if d.BioEn == "" || d.BioAr == "" {
			t.Errorf("doctor %s: both bio sides must be set", d.Slug)
		}
	}
	for _, tr := range ds.Treatments {
		if tr.NameEn == "" || tr.NameAr == "" {
			t.Errorf("treatment %s: both name sides must be set", tr.Slug)
		}
		if tr.BodyEn.Empty() || tr.BodyAr.Empty() {
			t.Errorf("treatment %s: both body documents must be set", tr.Slug)
		}
	}
	for _, p := range ds.Packages {
		if p.NameEn == "" || p.NameAr == "" {
			t.Errorf("package %s: both name sides must be set", p.Slug)
		}
		if len(p.InclusionsEn) != len(p.InclusionsAr) {
			t.Errorf("package %s: inclusion lists differ in length (%d vs %d)",
				p.Slug, len(p.InclusionsEn), len(p.InclusionsAr))
		}
	}
	for _, c := range ds.ContentPages {
		if c.TitleEn == "" || c.TitleAr == "" {
			t.Errorf("content page %s: both title sides must be set", c.Slug)
		}
		if c.BodyEn.Empty() || c.BodyAr.Empty() {
			t.Errorf("content page %s: both body documents must be set", c.Slug)
		}
	}
}

func TestDocumentsValid(t *testing.T) {
	ds := Default()

	for _, tr := range ds.Treatments {
		if err := tr.BodyEn.Validate(); err != nil {
			t.Errorf("treatment %s body_en: %v", tr.Slug, err)
		}
		if err := tr.BodyAr.Validate(); err != nil {
			t.Errorf("treatment %s body_ar: %v", tr.Slug, err)
		}
		for i, f := range tr.FAQ {
			if !f.Complete() {
				t.Errorf("treatment %s faq[%d] missing a language side", tr.Slug, i)
			}
		}
	}
	for _, c := range ds.ContentPages {
		if err := c.BodyEn.Validate(); err != nil {
			t.Errorf("content page %s body_en: %v", c.Slug, err)
		}
		if err := c.BodyAr.Validate(); err != nil {
			t.Errorf("content page %s body_ar: %v", c.Slug, err)
		}
	}
}

func TestCostRanges(t *testing.T) {
	for _, tr := range Default().Treatments {
		if tr.CostMin < 0 || tr.CostMax < tr.CostMin {
			t.Errorf("treatment %s: bad cost range %v..%v", tr.Slug, tr.CostMin, tr.CostMax)
		}
		if tr.Currency == "" {
			t.Errorf("treatment %s: currency must be set", tr.Slug)
		}
	}
	for _, p := range Default().Packages {
		if p.Price <= 0 {
			t.Errorf("package %s: price must be positive", p.Slug)
		}
	}
}

func TestReferencesResolve(t *testing.T) {
	ds := Default()

	hospitals := map[string]bool{}
	for _, h := range ds.Hospitals {
		hospitals[h.Slug] = true
	}
	treatments := map[string]bool{}
	for _, tr := range ds.Treatments {
		treatments[tr.Slug] = true
	}
	doctors := map[string]bool{}
	for _, d := range ds.Doctors {
		doctors[d.Slug] = true
	}
	packages := map[string]bool{}
	for _, p := range ds.Packages {
		packages[p.Slug] = true
	}
	users := map[string]bool{}
	for _, u := range ds.Users {
		users[u.Email] = true
	}
	translators := map[string]bool{}
	for _, tr := range ds.Translators {
		translators[tr.UserEmail] = true
	}

	for _, d := range ds.Doctors {
		if !hospitals[d.HospitalSlug] {
			t.Errorf("doctor %s references unknown hospital %q", d.Slug, d.HospitalSlug)
		}
	}
	for _, tr := range ds.Treatments {
		for _, hs := range tr.HospitalSlugs {
			if !hospitals[hs] {
				t.Errorf("treatment %s references unknown hospital %q", tr.Slug, hs)
			}
		}
	}
	for _, p := range ds.Packages {
		if !treatments[p.TreatmentSlug] {
			t.Errorf("package %s references unknown treatment %q", p.Slug, p.TreatmentSlug)
		}
		if !hospitals[p.HospitalSlug] {
			t.Errorf("package %s references unknown hospital %q", p.Slug, p.HospitalSlug)
		}
	}
	for _, c := range ds.ContentPages {
		if c.AuthorEmail != "" && !users[c.AuthorEmail] {
			t.Errorf("content page %s references unknown author %q", c.Slug, c.AuthorEmail)
		}
	}
	for _, b := range ds.Bookings {
		if b.TreatmentSlug != "" && !treatments[b.TreatmentSlug] {
			t.Errorf("booking for %s references unknown treatment %q", b.PatientEmail, b.TreatmentSlug)
		}
		if b.HospitalSlug != "" && !hospitals[b.HospitalSlug] {
			t.Errorf("booking for %s references unknown hospital %q", b.PatientEmail, b.HospitalSlug)
		}
		if b.DoctorSlug != "" && !doctors[b.DoctorSlug] {
			t.Errorf("booking for %s references unknown doctor %q", b.PatientEmail, b.DoctorSlug)
		}
		if b.PackageSlug != "" && !packages[b.PackageSlug] {
			t.Errorf("booking for %s references unknown package %q", b.PatientEmail, b.PackageSlug)
		}
		if b.TranslatorEmail != "" && !translators[b.TranslatorEmail] {
			t.Errorf("booking for %s references unknown translator %q", b.PatientEmail, b.TranslatorEmail)
		}
		if b.AssignedUserEmail != "" && !users[b.AssignedUserEmail] {
			t.Errorf("booking for %s references unknown user %q", b.PatientEmail, b.AssignedUserEmail)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a, b := Default(), Default()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Default must return identical data on every call")
	}
}

func TestUserRoles(t *testing.T) {
	valid := map[string]bool{"ADMIN": true, "EDITOR": true, "TRANSLATOR": true}
	roles := map[string]bool{}
	for _, u := range Default().Users {
		if !valid[u.Role] {
			t.Errorf("user %s has unknown role %q", u.Email, u.Role)
		}
		roles[u.Role] = true
	}
	if !roles["ADMIN"] {
		t.Error("dataset must contain an admin account")
	}
}

func TestUserLocales(t *testing.T) {
	for _, u := range Default().Users {
		if u.Locale != "en" && u.Locale != "ar" {
			t.Errorf("user %s has unsupported locale %q", u.Email, u.Locale)
		}
	}
}

func TestTranslatorProfilesExtendUsers(t *testing.T) {
	ds := Default()

	roleByEmail := map[string]string{}
	for _, u := range ds.Users {
		roleByEmail[u.Email] = u.Role
	}

	seen := map[string]bool{}
	for _, tr := range ds.Translators {
		role, ok := roleByEmail[tr.UserEmail]
		if !ok {
			t.Errorf("translator profile references unknown user %q", tr.UserEmail)
			continue
		}
		if role != "TRANSLATOR" {
			t.Errorf("translator profile user %s has role %q, want TRANSLATOR", tr.UserEmail, role)
		}
		if seen[tr.UserEmail] {
			t.Errorf("user %s has more than one translator profile", tr.UserEmail)
		}
		seen[tr.UserEmail] = true
	}
}
