// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_name", Type: field.TypeString, Size: 255},
		{Name: "patient_email", Type: field.TypeString, Size: 255},
		{Name: "patient_phone", Type: field.TypeString, Size: 20},
		{Name: "country", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "locale", Type: field.TypeString, Size: 2, Default: "en"},
		{Name: "preferred_start", Type: field.TypeTime, Nullable: true},
		{Name: "preferred_end", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"LEAD", "CONTACTED", "CONFIRMED", "SCHEDULED", "IN_TREATMENT", "DISCHARGED", "CANCELLED"}, Default: "LEAD"},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "treatment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "hospital_id", Type: field.TypeUUID, Nullable: true},
		{Name: "package_id", Type: field.TypeUUID, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "translator_id", Type: field.TypeUUID, Nullable: true},
		{Name: "assigned_user_id", Type: field.TypeUUID, Nullable: true},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bookings_treatments_treatment",
				Columns:    []*schema.Column{BookingsColumns[18]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "bookings_hospitals_hospital",
				Columns:    []*schema.Column{BookingsColumns[19]},
				RefColumns: []*schema.Column{HospitalsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "bookings_packages_package",
				Columns:    []*schema.Column{BookingsColumns[20]},
				RefColumns: []*schema.Column{PackagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "bookings_doctors_doctor",
				Columns:    []*schema.Column{BookingsColumns[21]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "bookings_translators_translator",
				Columns:    []*schema.Column{BookingsColumns[22]},
				RefColumns: []*schema.Column{TranslatorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "bookings_users_assigned_user",
				Columns:    []*schema.Column{BookingsColumns[23]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "booking_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[13], BookingsColumns[1]},
			},
			{
				Name:    "booking_patient_email",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[6]},
			},
			{
				Name:    "booking_treatment_id",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[18]},
			},
			{
				Name:    "booking_assigned_user_id",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[23]},
			},
		},
	}
	// PackagesColumns holds the columns for the "packages" table.
	PackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "name_en", Type: field.TypeString, Size: 255},
		{Name: "name_ar", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 160},
		{Name: "description_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "duration_days", Type: field.TypeInt, Nullable: true},
		{Name: "inclusions_en", Type: field.TypeJSON, Nullable: true},
		{Name: "inclusions_ar", Type: field.TypeJSON, Nullable: true},
		{Name: "exclusions_en", Type: field.TypeJSON, Nullable: true},
		{Name: "exclusions_ar", Type: field.TypeJSON, Nullable: true},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "hospital_id", Type: field.TypeUUID},
		{Name: "treatment_id", Type: field.TypeUUID},
	}
	// PackagesTable holds the schema information for the "packages" table.
	PackagesTable = &schema.Table{
		Name:       "packages",
		Columns:    PackagesColumns,
		PrimaryKey: []*schema.Column{PackagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "packages_hospitals_packages",
				Columns:    []*schema.Column{PackagesColumns[20]},
				RefColumns: []*schema.Column{HospitalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "packages_treatments_packages",
				Columns:    []*schema.Column{PackagesColumns[21]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "carepackage_slug",
				Unique:  false,
				Columns: []*schema.Column{PackagesColumns[9]},
			},
			{
				Name:    "carepackage_treatment_id",
				Unique:  false,
				Columns: []*schema.Column{PackagesColumns[21]},
			},
			{
				Name:    "carepackage_hospital_id",
				Unique:  false,
				Columns: []*schema.Column{PackagesColumns[20]},
			},
			{
				Name:    "carepackage_published_is_archived",
				Unique:  false,
				Columns: []*schema.Column{PackagesColumns[3], PackagesColumns[5]},
			},
		},
	}
	// ContentPagesColumns holds the columns for the "content_pages" table.
	ContentPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"BLOG", "STATIC"}, Default: "BLOG"},
		{Name: "title_en", Type: field.TypeString, Size: 255},
		{Name: "title_ar", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 160},
		{Name: "excerpt_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "excerpt_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body_en", Type: field.TypeJSON, Nullable: true},
		{Name: "body_ar", Type: field.TypeJSON, Nullable: true},
		{Name: "meta_title_en", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_title_ar", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_description_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "meta_description_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cover_image", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "faq", Type: field.TypeJSON, Nullable: true},
		{Name: "author_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "author_id", Type: field.TypeUUID, Nullable: true},
	}
	// ContentPagesTable holds the schema information for the "content_pages" table.
	ContentPagesTable = &schema.Table{
		Name:       "content_pages",
		Columns:    ContentPagesColumns,
		PrimaryKey: []*schema.Column{ContentPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "content_pages_users_author",
				Columns:    []*schema.Column{ContentPagesColumns[23]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contentpage_slug",
				Unique:  false,
				Columns: []*schema.Column{ContentPagesColumns[10]},
			},
			{
				Name:    "contentpage_kind_published_is_archived",
				Unique:  false,
				Columns: []*schema.Column{ContentPagesColumns[7], ContentPagesColumns[3], ContentPagesColumns[5]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "name_en", Type: field.TypeString, Size: 255},
		{Name: "name_ar", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 160},
		{Name: "title_en", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "title_ar", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "specialties_en", Type: field.TypeJSON, Nullable: true},
		{Name: "specialties_ar", Type: field.TypeJSON, Nullable: true},
		{Name: "qualifications", Type: field.TypeJSON, Nullable: true},
		{Name: "experience_years", Type: field.TypeInt, Default: 0},
		{Name: "languages", Type: field.TypeJSON, Nullable: true},
		{Name: "bio_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "bio_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "image", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "consultation_fee", Type: field.TypeFloat64, Nullable: true},
		{Name: "telemedicine_available", Type: field.TypeBool, Default: false},
		{Name: "meta_title_en", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_title_ar", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_description_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "meta_description_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "hospital_id", Type: field.TypeUUID},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_hospitals_doctors",
				Columns:    []*schema.Column{DoctorsColumns[26]},
				RefColumns: []*schema.Column{HospitalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_slug",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[9]},
			},
			{
				Name:    "doctor_hospital_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[26]},
			},
			{
				Name:    "doctor_published_is_archived",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[3], DoctorsColumns[5]},
			},
		},
	}
	// HospitalsColumns holds the columns for the "hospitals" table.
	HospitalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "name_en", Type: field.TypeString, Size: 255},
		{Name: "name_ar", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 160},
		{Name: "description_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "city_en", Type: field.TypeString, Size: 100},
		{Name: "city_ar", Type: field.TypeString, Size: 100},
		{Name: "country_en", Type: field.TypeString, Size: 100, Default: "India"},
		{Name: "country_ar", Type: field.TypeString, Size: 100, Default: "الهند"},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "accreditations", Type: field.TypeJSON, Nullable: true},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
		{Name: "established_year", Type: field.TypeInt, Nullable: true},
		{Name: "bed_count", Type: field.TypeInt, Nullable: true},
		{Name: "languages_supported", Type: field.TypeJSON, Nullable: true},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "meta_title_en", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_title_ar", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_description_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "meta_description_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// HospitalsTable holds the schema information for the "hospitals" table.
	HospitalsTable = &schema.Table{
		Name:       "hospitals",
		Columns:    HospitalsColumns,
		PrimaryKey: []*schema.Column{HospitalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hospital_slug",
				Unique:  false,
				Columns: []*schema.Column{HospitalsColumns[9]},
			},
			{
				Name:    "hospital_published_is_archived",
				Unique:  false,
				Columns: []*schema.Column{HospitalsColumns[3], HospitalsColumns[5]},
			},
		},
	}
	// MediaColumns holds the columns for the "media" table.
	MediaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 500},
		{Name: "content_type", Type: field.TypeString, Size: 100},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "alt_en", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "alt_ar", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "entity", Type: field.TypeString, Nullable: true, Size: 50},
	}
	// MediaTable holds the schema information for the "media" table.
	MediaTable = &schema.Table{
		Name:       "media",
		Columns:    MediaColumns,
		PrimaryKey: []*schema.Column{MediaColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "media_entity",
				Unique:  false,
				Columns: []*schema.Column{MediaColumns[10]},
			},
		},
	}
	// TranslatorsColumns holds the columns for the "translators" table.
	TranslatorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "languages", Type: field.TypeJSON},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"AVAILABLE", "BUSY", "OFFLINE"}, Default: "AVAILABLE"},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "day_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// TranslatorsTable holds the schema information for the "translators" table.
	TranslatorsTable = &schema.Table{
		Name:       "translators",
		Columns:    TranslatorsColumns,
		PrimaryKey: []*schema.Column{TranslatorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "translators_users_translator_profile",
				Columns:    []*schema.Column{TranslatorsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "translator_status",
				Unique:  false,
				Columns: []*schema.Column{TranslatorsColumns[7]},
			},
		},
	}
	// TreatmentsColumns holds the columns for the "treatments" table.
	TreatmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "name_en", Type: field.TypeString, Size: 255},
		{Name: "name_ar", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 160},
		{Name: "category_en", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "category_ar", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "summary_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body_en", Type: field.TypeJSON, Nullable: true},
		{Name: "body_ar", Type: field.TypeJSON, Nullable: true},
		{Name: "cost_min", Type: field.TypeFloat64},
		{Name: "cost_max", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "stay_days_min", Type: field.TypeInt, Nullable: true},
		{Name: "stay_days_max", Type: field.TypeInt, Nullable: true},
		{Name: "faq", Type: field.TypeJSON, Nullable: true},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "meta_title_en", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_title_ar", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "meta_description_en", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "meta_description_ar", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// TreatmentsTable holds the schema information for the "treatments" table.
	TreatmentsTable = &schema.Table{
		Name:       "treatments",
		Columns:    TreatmentsColumns,
		PrimaryKey: []*schema.Column{TreatmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "treatment_slug",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[9]},
			},
			{
				Name:    "treatment_published_is_archived",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[3], TreatmentsColumns[5]},
			},
			{
				Name:    "treatment_category_en",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "EDITOR", "TRANSLATOR"}, Default: "EDITOR"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "locale", Type: field.TypeEnum, Enums: []string{"en", "ar"}, Default: "en"},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "must_change_password", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// TreatmentHospitalsColumns holds the columns for the "treatment_hospitals" table.
	TreatmentHospitalsColumns = []*schema.Column{
		{Name: "treatment_id", Type: field.TypeUUID},
		{Name: "hospital_id", Type: field.TypeUUID},
	}
	// TreatmentHospitalsTable holds the schema information for the "treatment_hospitals" table.
	TreatmentHospitalsTable = &schema.Table{
		Name:       "treatment_hospitals",
		Columns:    TreatmentHospitalsColumns,
		PrimaryKey: []*schema.Column{TreatmentHospitalsColumns[0], TreatmentHospitalsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "treatment_hospitals_treatment_id",
				Columns:    []*schema.Column{TreatmentHospitalsColumns[0]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "treatment_hospitals_hospital_id",
				Columns:    []*schema.Column{TreatmentHospitalsColumns[1]},
				RefColumns: []*schema.Column{HospitalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookingsTable,
		PackagesTable,
		ContentPagesTable,
		DoctorsTable,
		HospitalsTable,
		MediaTable,
		TranslatorsTable,
		TreatmentsTable,
		UsersTable,
		UserSessionsTable,
		TreatmentHospitalsTable,
	}
)

func init() {
	BookingsTable.ForeignKeys[0].RefTable = TreatmentsTable
	BookingsTable.ForeignKeys[1].RefTable = HospitalsTable
	BookingsTable.ForeignKeys[2].RefTable = PackagesTable
	BookingsTable.ForeignKeys[3].RefTable = DoctorsTable
	BookingsTable.ForeignKeys[4].RefTable = TranslatorsTable
	BookingsTable.ForeignKeys[5].RefTable = UsersTable
	PackagesTable.ForeignKeys[0].RefTable = HospitalsTable
	PackagesTable.ForeignKeys[1].RefTable = TreatmentsTable
	PackagesTable.Annotation = &entsql.Annotation{
		Table: "packages",
	}
	ContentPagesTable.ForeignKeys[0].RefTable = UsersTable
	DoctorsTable.ForeignKeys[0].RefTable = HospitalsTable
	TranslatorsTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
	TreatmentHospitalsTable.ForeignKeys[0].RefTable = TreatmentsTable
	TreatmentHospitalsTable.ForeignKeys[1].RefTable = HospitalsTable
}
