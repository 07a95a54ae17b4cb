package schema

import (
	"testing"

	"entgo.io/ent/dialect/entsql"
)

// The schema type is named CarePackage (the lowercased form of "Package"
// would collide with the package keyword in generated code), but the table
// stays "packages".
func TestCarePackageTableName(t *testing.T) {
	for _, a := range (CarePackage{}).Annotations() {
		if sa, ok := a.(entsql.Annotation); ok {
			if sa.Table != "packages" {
				t.Fatalf("table = %q, want packages", sa.Table)
			}
			return
		}
	}
	t.Fatal("care package schema is missing its table annotation")
}

func TestTranslatorExtendsUser(t *testing.T) {
	edges := (Translator{}).Edges()
	if len(edges) != 1 {
		t.Fatalf("translator has %d edges, want 1", len(edges))
	}

	d := edges[0].Descriptor()
	if d.Name != "user" {
		t.Errorf("edge name = %q, want user", d.Name)
	}
	if !d.Unique || !d.Required {
		t.Error("user edge must be unique and required: one profile per user")
	}
	if d.Field != "user_id" {
		t.Errorf("edge field = %q, want user_id", d.Field)
	}

	for _, f := range (Translator{}).Fields() {
		fd := f.Descriptor()
		if fd.Name == "user_id" {
			if !fd.Unique {
				t.Error("user_id must be unique")
			}
			return
		}
	}
	t.Fatal("translator schema is missing user_id")
}

func TestUserLocaleValues(t *testing.T) {
	for _, f := range (User{}).Fields() {
		fd := f.Descriptor()
		if fd.Name != "locale" {
			continue
		}
		want := map[string]bool{"en": true, "ar": true}
		if len(fd.Enums) != len(want) {
			t.Fatalf("locale enums = %v, want en and ar", fd.Enums)
		}
		for _, e := range fd.Enums {
			if !want[e.V] {
				t.Errorf("unexpected locale value %q", e.V)
			}
		}
		if fd.Default != "en" {
			t.Errorf("locale default = %v, want en", fd.Default)
		}
		return
	}
	t.Fatal("user schema is missing the locale field")
}
