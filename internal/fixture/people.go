package fixture

import "time"

func users() []User {
	return []User{
		{
			Name:     "Admin User",
			Email:    "admin@shifaalhind.com",
			Password: "admin123",
			Role:     "ADMIN",
			Locale:   "en",
		},
		{
			Name:     "Content Editor",
			Email:    "editor@shifaalhind.com",
			Password: "editor123",
			Role:     "EDITOR",
			Locale:   "en",
		},
		{
			Name:     "Arabic Translator",
			Email:    "translator@shifaalhind.com",
			Password: "translator123",
			Role:     "TRANSLATOR",
			Locale:   "ar",
			Phone:    "+966501234567",
		},
	}
}

func translators() []Translator {
	return []Translator{
		{
			UserEmail: "translator@shifaalhind.com",
			Languages: []string{"English", "Arabic", "Hindi"},
			City:      "Bangalore",
			Status:    "AVAILABLE",
			Bio:       "Experienced medical translator with 10+ years in healthcare",
			DayRate:   ptrFloat(80),
		},
	}
}

func bookings() []Booking {
	return []Booking{
		{
			PatientName:       "Mohammed Al-Faisal",
			PatientEmail:      "mohammed.alfaisal@example.com",
			PatientPhone:      "+966501234567",
			Country:           "Saudi Arabia",
			Locale:            "ar",
			TreatmentSlug:     "hip-replacement-surgery-bangalore",
			HospitalSlug:      "apollo-bangalore",
			DoctorSlug:        "dr-ahmed-khan-cardiologist",
			PackageSlug:       "comprehensive-care-package",
			TranslatorEmail:   "translator@shifaalhind.com",
			AssignedUserEmail: "editor@shifaalhind.com",
			Status:            "LEAD",
			PreferredStart:    time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			PreferredEnd:      time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
			Notes:             "Patient requesting Arabic-speaking surgeon. Preferred dates: March 2025.",
		},
	}
}
