package locale

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Locale
		wantErr bool
	}{
		{name: "english", in: "en", want: English},
		{name: "arabic", in: "ar", want: Arabic},
		{name: "unknown language", in: "fr", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "regioned variant rejected", in: "ar-SA", wantErr: true},
		{name: "uppercase rejected", in: "EN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	if d := English.Direction(); d != LTR {
		t.Errorf("English.Direction() = %q, want ltr", d)
	}
	if d := Arabic.Direction(); d != RTL {
		t.Errorf("Arabic.Direction() = %q, want rtl", d)
	}
}

func TestPick(t *testing.T) {
	en := "Apollo Hospitals Bangalore"
	ar := "مستشفى أبولو بنغالور"

	if got := Pick(English, en, ar); got != en {
		t.Errorf("Pick(en) = %q, want %q", got, en)
	}
	if got := Pick(Arabic, en, ar); got != ar {
		t.Errorf("Pick(ar) = %q, want %q", got, ar)
	}

	// No fallback: an empty requested-language field stays empty.
	if got := Pick(Arabic, en, ""); got != "" {
		t.Errorf("Pick(ar, en, empty) = %q, want empty", got)
	}
}

func TestPickSlice(t *testing.T) {
	en := []string{"JCI", "NABH"}
	ar := []string{"الاعتماد الدولي"}

	got := PickSlice(Arabic, en, ar)
	if len(got) != 1 || got[0] != ar[0] {
		t.Errorf("PickSlice(ar) = %v, want %v", got, ar)
	}
	if got := PickSlice(English, en, nil); len(got) != 2 {
		t.Errorf("PickSlice(en) = %v, want %v", got, en)
	}
}

func TestPickValue(t *testing.T) {
	type doc struct{ Sections []string }

	en := doc{Sections: []string{"Overview", "Recovery"}}
	ar := doc{}

	if got := PickValue(English, en, ar); len(got.Sections) != 2 {
		t.Errorf("PickValue(en) = %v, want %v", got, en)
	}

	// No fallback: an empty Arabic document must not come back English.
	if got := PickValue(Arabic, en, ar); len(got.Sections) != 0 {
		t.Errorf("PickValue(ar) = %v, want empty document", got)
	}
}
