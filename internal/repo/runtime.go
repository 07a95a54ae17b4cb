// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/media"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
	"github.com/shifaalhind/backend/internal/repo/usersession"
	"github.com/shifaalhind/backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookingMixin := schema.Booking{}.Mixin()
	bookingMixinFields0 := bookingMixin[0].Fields()
	_ = bookingMixinFields0
	bookingMixinFields1 := bookingMixin[1].Fields()
	_ = bookingMixinFields1
	bookingMixinFields2 := bookingMixin[2].Fields()
	_ = bookingMixinFields2
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingMixinFields1[0].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingMixinFields1[1].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookingDescIsArchived is the schema descriptor for is_archived field.
	bookingDescIsArchived := bookingMixinFields2[0].Descriptor()
	// booking.DefaultIsArchived holds the default value on creation for the is_archived field.
	booking.DefaultIsArchived = bookingDescIsArchived.Default.(bool)
	// bookingDescPatientName is the schema descriptor for patient_name field.
	bookingDescPatientName := bookingFields[0].Descriptor()
	// booking.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	booking.PatientNameValidator = func() func(string) error {
		validators := bookingDescPatientName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(patient_name string) error {
			for _, fn := range fns {
				if err := fn(patient_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookingDescPatientEmail is the schema descriptor for patient_email field.
	bookingDescPatientEmail := bookingFields[1].Descriptor()
	// booking.PatientEmailValidator is a validator for the "patient_email" field. It is called by the builders before save.
	booking.PatientEmailValidator = func() func(string) error {
		validators := bookingDescPatientEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(patient_email string) error {
			for _, fn := range fns {
				if err := fn(patient_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookingDescPatientPhone is the schema descriptor for patient_phone field.
	bookingDescPatientPhone := bookingFields[2].Descriptor()
	// booking.PatientPhoneValidator is a validator for the "patient_phone" field. It is called by the builders before save.
	booking.PatientPhoneValidator = func() func(string) error {
		validators := bookingDescPatientPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(patient_phone string) error {
			for _, fn := range fns {
				if err := fn(patient_phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookingDescCountry is the schema descriptor for country field.
	bookingDescCountry := bookingFields[3].Descriptor()
	// booking.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	booking.CountryValidator = bookingDescCountry.Validators[0].(func(string) error)
	// bookingDescLocale is the schema descriptor for locale field.
	bookingDescLocale := bookingFields[4].Descriptor()
	// booking.DefaultLocale holds the default value on creation for the locale field.
	booking.DefaultLocale = bookingDescLocale.Default.(string)
	// booking.LocaleValidator is a validator for the "locale" field. It is called by the builders before save.
	booking.LocaleValidator = bookingDescLocale.Validators[0].(func(string) error)
	// bookingDescID is the schema descriptor for id field.
	bookingDescID := bookingMixinFields0[0].Descriptor()
	// booking.DefaultID holds the default value on creation for the id field.
	booking.DefaultID = bookingDescID.Default.(func() uuid.UUID)
	carepackageMixin := schema.CarePackage{}.Mixin()
	carepackageMixinFields0 := carepackageMixin[0].Fields()
	_ = carepackageMixinFields0
	carepackageMixinFields1 := carepackageMixin[1].Fields()
	_ = carepackageMixinFields1
	carepackageMixinFields2 := carepackageMixin[2].Fields()
	_ = carepackageMixinFields2
	carepackageMixinFields3 := carepackageMixin[3].Fields()
	_ = carepackageMixinFields3
	carepackageFields := schema.CarePackage{}.Fields()
	_ = carepackageFields
	// carepackageDescCreatedAt is the schema descriptor for created_at field.
	carepackageDescCreatedAt := carepackageMixinFields1[0].Descriptor()
	// carepackage.DefaultCreatedAt holds the default value on creation for the created_at field.
	carepackage.DefaultCreatedAt = carepackageDescCreatedAt.Default.(func() time.Time)
	// carepackageDescUpdatedAt is the schema descriptor for updated_at field.
	carepackageDescUpdatedAt := carepackageMixinFields1[1].Descriptor()
	// carepackage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	carepackage.DefaultUpdatedAt = carepackageDescUpdatedAt.Default.(func() time.Time)
	// carepackage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	carepackage.UpdateDefaultUpdatedAt = carepackageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// carepackageDescPublished is the schema descriptor for published field.
	carepackageDescPublished := carepackageMixinFields2[0].Descriptor()
	// carepackage.DefaultPublished holds the default value on creation for the published field.
	carepackage.DefaultPublished = carepackageDescPublished.Default.(bool)
	// carepackageDescIsArchived is the schema descriptor for is_archived field.
	carepackageDescIsArchived := carepackageMixinFields3[0].Descriptor()
	// carepackage.DefaultIsArchived holds the default value on creation for the is_archived field.
	carepackage.DefaultIsArchived = carepackageDescIsArchived.Default.(bool)
	// carepackageDescNameEn is the schema descriptor for name_en field.
	carepackageDescNameEn := carepackageFields[2].Descriptor()
	// carepackage.NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	carepackage.NameEnValidator = func() func(string) error {
		validators := carepackageDescNameEn.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_en string) error {
			for _, fn := range fns {
				if err := fn(name_en); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// carepackageDescNameAr is the schema descriptor for name_ar field.
	carepackageDescNameAr := carepackageFields[3].Descriptor()
	// carepackage.NameArValidator is a validator for the "name_ar" field. It is called by the builders before save.
	carepackage.NameArValidator = func() func(string) error {
		validators := carepackageDescNameAr.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_ar string) error {
			for _, fn := range fns {
				if err := fn(name_ar); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// carepackageDescSlug is the schema descriptor for slug field.
	carepackageDescSlug := carepackageFields[4].Descriptor()
	// carepackage.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	carepackage.SlugValidator = func() func(string) error {
		validators := carepackageDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// carepackageDescPrice is the schema descriptor for price field.
	carepackageDescPrice := carepackageFields[7].Descriptor()
	// carepackage.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	carepackage.PriceValidator = carepackageDescPrice.Validators[0].(func(float64) error)
	// carepackageDescCurrency is the schema descriptor for currency field.
	carepackageDescCurrency := carepackageFields[8].Descriptor()
	// carepackage.DefaultCurrency holds the default value on creation for the currency field.
	carepackage.DefaultCurrency = carepackageDescCurrency.Default.(string)
	// carepackage.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	carepackage.CurrencyValidator = carepackageDescCurrency.Validators[0].(func(string) error)
	// carepackageDescFeatured is the schema descriptor for featured field.
	carepackageDescFeatured := carepackageFields[14].Descriptor()
	// carepackage.DefaultFeatured holds the default value on creation for the featured field.
	carepackage.DefaultFeatured = carepackageDescFeatured.Default.(bool)
	// carepackageDescID is the schema descriptor for id field.
	carepackageDescID := carepackageMixinFields0[0].Descriptor()
	// carepackage.DefaultID holds the default value on creation for the id field.
	carepackage.DefaultID = carepackageDescID.Default.(func() uuid.UUID)
	contentpageMixin := schema.ContentPage{}.Mixin()
	contentpageMixinFields0 := contentpageMixin[0].Fields()
	_ = contentpageMixinFields0
	contentpageMixinFields1 := contentpageMixin[1].Fields()
	_ = contentpageMixinFields1
	contentpageMixinFields2 := contentpageMixin[2].Fields()
	_ = contentpageMixinFields2
	contentpageMixinFields3 := contentpageMixin[3].Fields()
	_ = contentpageMixinFields3
	contentpageFields := schema.ContentPage{}.Fields()
	_ = contentpageFields
	// contentpageDescCreatedAt is the schema descriptor for created_at field.
	contentpageDescCreatedAt := contentpageMixinFields1[0].Descriptor()
	// contentpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentpage.DefaultCreatedAt = contentpageDescCreatedAt.Default.(func() time.Time)
	// contentpageDescUpdatedAt is the schema descriptor for updated_at field.
	contentpageDescUpdatedAt := contentpageMixinFields1[1].Descriptor()
	// contentpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contentpage.DefaultUpdatedAt = contentpageDescUpdatedAt.Default.(func() time.Time)
	// contentpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contentpage.UpdateDefaultUpdatedAt = contentpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contentpageDescPublished is the schema descriptor for published field.
	contentpageDescPublished := contentpageMixinFields2[0].Descriptor()
	// contentpage.DefaultPublished holds the default value on creation for the published field.
	contentpage.DefaultPublished = contentpageDescPublished.Default.(bool)
	// contentpageDescIsArchived is the schema descriptor for is_archived field.
	contentpageDescIsArchived := contentpageMixinFields3[0].Descriptor()
	// contentpage.DefaultIsArchived holds the default value on creation for the is_archived field.
	contentpage.DefaultIsArchived = contentpageDescIsArchived.Default.(bool)
	// contentpageDescTitleEn is the schema descriptor for title_en field.
	contentpageDescTitleEn := contentpageFields[1].Descriptor()
	// contentpage.TitleEnValidator is a validator for the "title_en" field. It is called by the builders before save.
	contentpage.TitleEnValidator = func() func(string) error {
		validators := contentpageDescTitleEn.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title_en string) error {
			for _, fn := range fns {
				if err := fn(title_en); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentpageDescTitleAr is the schema descriptor for title_ar field.
	contentpageDescTitleAr := contentpageFields[2].Descriptor()
	// contentpage.TitleArValidator is a validator for the "title_ar" field. It is called by the builders before save.
	contentpage.TitleArValidator = func() func(string) error {
		validators := contentpageDescTitleAr.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title_ar string) error {
			for _, fn := range fns {
				if err := fn(title_ar); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentpageDescSlug is the schema descriptor for slug field.
	contentpageDescSlug := contentpageFields[3].Descriptor()
	// contentpage.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	contentpage.SlugValidator = func() func(string) error {
		validators := contentpageDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentpageDescMetaTitleEn is the schema descriptor for meta_title_en field.
	contentpageDescMetaTitleEn := contentpageFields[8].Descriptor()
	// contentpage.MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	contentpage.MetaTitleEnValidator = contentpageDescMetaTitleEn.Validators[0].(func(string) error)
	// contentpageDescMetaTitleAr is the schema descriptor for meta_title_ar field.
	contentpageDescMetaTitleAr := contentpageFields[9].Descriptor()
	// contentpage.MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	contentpage.MetaTitleArValidator = contentpageDescMetaTitleAr.Validators[0].(func(string) error)
	// contentpageDescCoverImage is the schema descriptor for cover_image field.
	contentpageDescCoverImage := contentpageFields[12].Descriptor()
	// contentpage.CoverImageValidator is a validator for the "cover_image" field. It is called by the builders before save.
	contentpage.CoverImageValidator = contentpageDescCoverImage.Validators[0].(func(string) error)
	// contentpageDescAuthorName is the schema descriptor for author_name field.
	contentpageDescAuthorName := contentpageFields[15].Descriptor()
	// contentpage.AuthorNameValidator is a validator for the "author_name" field. It is called by the builders before save.
	contentpage.AuthorNameValidator = contentpageDescAuthorName.Validators[0].(func(string) error)
	// contentpageDescID is the schema descriptor for id field.
	contentpageDescID := contentpageMixinFields0[0].Descriptor()
	// contentpage.DefaultID holds the default value on creation for the id field.
	contentpage.DefaultID = contentpageDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorMixinFields2 := doctorMixin[2].Fields()
	_ = doctorMixinFields2
	doctorMixinFields3 := doctorMixin[3].Fields()
	_ = doctorMixinFields3
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescPublished is the schema descriptor for published field.
	doctorDescPublished := doctorMixinFields2[0].Descriptor()
	// doctor.DefaultPublished holds the default value on creation for the published field.
	doctor.DefaultPublished = doctorDescPublished.Default.(bool)
	// doctorDescIsArchived is the schema descriptor for is_archived field.
	doctorDescIsArchived := doctorMixinFields3[0].Descriptor()
	// doctor.DefaultIsArchived holds the default value on creation for the is_archived field.
	doctor.DefaultIsArchived = doctorDescIsArchived.Default.(bool)
	// doctorDescNameEn is the schema descriptor for name_en field.
	doctorDescNameEn := doctorFields[1].Descriptor()
	// doctor.NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	doctor.NameEnValidator = func() func(string) error {
		validators := doctorDescNameEn.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_en string) error {
			for _, fn := range fns {
				if err := fn(name_en); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescNameAr is the schema descriptor for name_ar field.
	doctorDescNameAr := doctorFields[2].Descriptor()
	// doctor.NameArValidator is a validator for the "name_ar" field. It is called by the builders before save.
	doctor.NameArValidator = func() func(string) error {
		validators := doctorDescNameAr.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_ar string) error {
			for _, fn := range fns {
				if err := fn(name_ar); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescSlug is the schema descriptor for slug field.
	doctorDescSlug := doctorFields[3].Descriptor()
	// doctor.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	doctor.SlugValidator = func() func(string) error {
		validators := doctorDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescTitleEn is the schema descriptor for title_en field.
	doctorDescTitleEn := doctorFields[4].Descriptor()
	// doctor.TitleEnValidator is a validator for the "title_en" field. It is called by the builders before save.
	doctor.TitleEnValidator = doctorDescTitleEn.Validators[0].(func(string) error)
	// doctorDescTitleAr is the schema descriptor for title_ar field.
	doctorDescTitleAr := doctorFields[5].Descriptor()
	// doctor.TitleArValidator is a validator for the "title_ar" field. It is called by the builders before save.
	doctor.TitleArValidator = doctorDescTitleAr.Validators[0].(func(string) error)
	// doctorDescExperienceYears is the schema descriptor for experience_years field.
	doctorDescExperienceYears := doctorFields[9].Descriptor()
	// doctor.DefaultExperienceYears holds the default value on creation for the experience_years field.
	doctor.DefaultExperienceYears = doctorDescExperienceYears.Default.(int)
	// doctor.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	doctor.ExperienceYearsValidator = doctorDescExperienceYears.Validators[0].(func(int) error)
	// doctorDescImage is the schema descriptor for image field.
	doctorDescImage := doctorFields[13].Descriptor()
	// doctor.ImageValidator is a validator for the "image" field. It is called by the builders before save.
	doctor.ImageValidator = doctorDescImage.Validators[0].(func(string) error)
	// doctorDescTelemedicineAvailable is the schema descriptor for telemedicine_available field.
	doctorDescTelemedicineAvailable := doctorFields[15].Descriptor()
	// doctor.DefaultTelemedicineAvailable holds the default value on creation for the telemedicine_available field.
	doctor.DefaultTelemedicineAvailable = doctorDescTelemedicineAvailable.Default.(bool)
	// doctorDescMetaTitleEn is the schema descriptor for meta_title_en field.
	doctorDescMetaTitleEn := doctorFields[16].Descriptor()
	// doctor.MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	doctor.MetaTitleEnValidator = doctorDescMetaTitleEn.Validators[0].(func(string) error)
	// doctorDescMetaTitleAr is the schema descriptor for meta_title_ar field.
	doctorDescMetaTitleAr := doctorFields[17].Descriptor()
	// doctor.MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	doctor.MetaTitleArValidator = doctorDescMetaTitleAr.Validators[0].(func(string) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	hospitalMixin := schema.Hospital{}.Mixin()
	hospitalMixinFields0 := hospitalMixin[0].Fields()
	_ = hospitalMixinFields0
	hospitalMixinFields1 := hospitalMixin[1].Fields()
	_ = hospitalMixinFields1
	hospitalMixinFields2 := hospitalMixin[2].Fields()
	_ = hospitalMixinFields2
	hospitalMixinFields3 := hospitalMixin[3].Fields()
	_ = hospitalMixinFields3
	hospitalFields := schema.Hospital{}.Fields()
	_ = hospitalFields
	// hospitalDescCreatedAt is the schema descriptor for created_at field.
	hospitalDescCreatedAt := hospitalMixinFields1[0].Descriptor()
	// hospital.DefaultCreatedAt holds the default value on creation for the created_at field.
	hospital.DefaultCreatedAt = hospitalDescCreatedAt.Default.(func() time.Time)
	// hospitalDescUpdatedAt is the schema descriptor for updated_at field.
	hospitalDescUpdatedAt := hospitalMixinFields1[1].Descriptor()
	// hospital.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hospital.DefaultUpdatedAt = hospitalDescUpdatedAt.Default.(func() time.Time)
	// hospital.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hospital.UpdateDefaultUpdatedAt = hospitalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hospitalDescPublished is the schema descriptor for published field.
	hospitalDescPublished := hospitalMixinFields2[0].Descriptor()
	// hospital.DefaultPublished holds the default value on creation for the published field.
	hospital.DefaultPublished = hospitalDescPublished.Default.(bool)
	// hospitalDescIsArchived is the schema descriptor for is_archived field.
	hospitalDescIsArchived := hospitalMixinFields3[0].Descriptor()
	// hospital.DefaultIsArchived holds the default value on creation for the is_archived field.
	hospital.DefaultIsArchived = hospitalDescIsArchived.Default.(bool)
	// hospitalDescNameEn is the schema descriptor for name_en field.
	hospitalDescNameEn := hospitalFields[0].Descriptor()
	// hospital.NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	hospital.NameEnValidator = func() func(string) error {
		validators := hospitalDescNameEn.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_en string) error {
			for _, fn := range fns {
				if err := fn(name_en); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// hospitalDescNameAr is the schema descriptor for name_ar field.
	hospitalDescNameAr := hospitalFields[1].Descriptor()
	// hospital.NameArValidator is a validator for the "name_ar" field. It is called by the builders before save.
	hospital.NameArValidator = func() func(string) error {
		validators := hospitalDescNameAr.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_ar string) error {
			for _, fn := range fns {
				if err := fn(name_ar); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// hospitalDescSlug is the schema descriptor for slug field.
	hospitalDescSlug := hospitalFields[2].Descriptor()
	// hospital.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	hospital.SlugValidator = func() func(string) error {
		validators := hospitalDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// hospitalDescCityEn is the schema descriptor for city_en field.
	hospitalDescCityEn := hospitalFields[5].Descriptor()
	// hospital.CityEnValidator is a validator for the "city_en" field. It is called by the builders before save.
	hospital.CityEnValidator = func() func(string) error {
		validators := hospitalDescCityEn.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(city_en string) error {
			for _, fn := range fns {
				if err := fn(city_en); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// hospitalDescCityAr is the schema descriptor for city_ar field.
	hospitalDescCityAr := hospitalFields[6].Descriptor()
	// hospital.CityArValidator is a validator for the "city_ar" field. It is called by the builders before save.
	hospital.CityArValidator = func() func(string) error {
		validators := hospitalDescCityAr.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(city_ar string) error {
			for _, fn := range fns {
				if err := fn(city_ar); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// hospitalDescCountryEn is the schema descriptor for country_en field.
	hospitalDescCountryEn := hospitalFields[7].Descriptor()
	// hospital.DefaultCountryEn holds the default value on creation for the country_en field.
	hospital.DefaultCountryEn = hospitalDescCountryEn.Default.(string)
	// hospital.CountryEnValidator is a validator for the "country_en" field. It is called by the builders before save.
	hospital.CountryEnValidator = hospitalDescCountryEn.Validators[0].(func(string) error)
	// hospitalDescCountryAr is the schema descriptor for country_ar field.
	hospitalDescCountryAr := hospitalFields[8].Descriptor()
	// hospital.DefaultCountryAr holds the default value on creation for the country_ar field.
	hospital.DefaultCountryAr = hospitalDescCountryAr.Default.(string)
	// hospital.CountryArValidator is a validator for the "country_ar" field. It is called by the builders before save.
	hospital.CountryArValidator = hospitalDescCountryAr.Validators[0].(func(string) error)
	// hospitalDescPhone is the schema descriptor for phone field.
	hospitalDescPhone := hospitalFields[10].Descriptor()
	// hospital.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	hospital.PhoneValidator = hospitalDescPhone.Validators[0].(func(string) error)
	// hospitalDescEmail is the schema descriptor for email field.
	hospitalDescEmail := hospitalFields[11].Descriptor()
	// hospital.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	hospital.EmailValidator = hospitalDescEmail.Validators[0].(func(string) error)
	// hospitalDescFeatured is the schema descriptor for featured field.
	hospitalDescFeatured := hospitalFields[17].Descriptor()
	// hospital.DefaultFeatured holds the default value on creation for the featured field.
	hospital.DefaultFeatured = hospitalDescFeatured.Default.(bool)
	// hospitalDescMetaTitleEn is the schema descriptor for meta_title_en field.
	hospitalDescMetaTitleEn := hospitalFields[18].Descriptor()
	// hospital.MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	hospital.MetaTitleEnValidator = hospitalDescMetaTitleEn.Validators[0].(func(string) error)
	// hospitalDescMetaTitleAr is the schema descriptor for meta_title_ar field.
	hospitalDescMetaTitleAr := hospitalFields[19].Descriptor()
	// hospital.MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	hospital.MetaTitleArValidator = hospitalDescMetaTitleAr.Validators[0].(func(string) error)
	// hospitalDescID is the schema descriptor for id field.
	hospitalDescID := hospitalMixinFields0[0].Descriptor()
	// hospital.DefaultID holds the default value on creation for the id field.
	hospital.DefaultID = hospitalDescID.Default.(func() uuid.UUID)
	mediaMixin := schema.Media{}.Mixin()
	mediaMixinFields0 := mediaMixin[0].Fields()
	_ = mediaMixinFields0
	mediaMixinFields1 := mediaMixin[1].Fields()
	_ = mediaMixinFields1
	mediaMixinFields2 := mediaMixin[2].Fields()
	_ = mediaMixinFields2
	mediaFields := schema.Media{}.Fields()
	_ = mediaFields
	// mediaDescCreatedAt is the schema descriptor for created_at field.
	mediaDescCreatedAt := mediaMixinFields1[0].Descriptor()
	// media.DefaultCreatedAt holds the default value on creation for the created_at field.
	media.DefaultCreatedAt = mediaDescCreatedAt.Default.(func() time.Time)
	// mediaDescUpdatedAt is the schema descriptor for updated_at field.
	mediaDescUpdatedAt := mediaMixinFields1[1].Descriptor()
	// media.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	media.DefaultUpdatedAt = mediaDescUpdatedAt.Default.(func() time.Time)
	// media.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	media.UpdateDefaultUpdatedAt = mediaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mediaDescIsArchived is the schema descriptor for is_archived field.
	mediaDescIsArchived := mediaMixinFields2[0].Descriptor()
	// media.DefaultIsArchived holds the default value on creation for the is_archived field.
	media.DefaultIsArchived = mediaDescIsArchived.Default.(bool)
	// mediaDescKey is the schema descriptor for key field.
	mediaDescKey := mediaFields[0].Descriptor()
	// media.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	media.KeyValidator = func() func(string) error {
		validators := mediaDescKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(key string) error {
			for _, fn := range fns {
				if err := fn(key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescContentType is the schema descriptor for content_type field.
	mediaDescContentType := mediaFields[1].Descriptor()
	// media.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	media.ContentTypeValidator = func() func(string) error {
		validators := mediaDescContentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content_type string) error {
			for _, fn := range fns {
				if err := fn(content_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescSizeBytes is the schema descriptor for size_bytes field.
	mediaDescSizeBytes := mediaFields[2].Descriptor()
	// media.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	media.SizeBytesValidator = mediaDescSizeBytes.Validators[0].(func(int64) error)
	// mediaDescAltEn is the schema descriptor for alt_en field.
	mediaDescAltEn := mediaFields[3].Descriptor()
	// media.AltEnValidator is a validator for the "alt_en" field. It is called by the builders before save.
	media.AltEnValidator = mediaDescAltEn.Validators[0].(func(string) error)
	// mediaDescAltAr is the schema descriptor for alt_ar field.
	mediaDescAltAr := mediaFields[4].Descriptor()
	// media.AltArValidator is a validator for the "alt_ar" field. It is called by the builders before save.
	media.AltArValidator = mediaDescAltAr.Validators[0].(func(string) error)
	// mediaDescEntity is the schema descriptor for entity field.
	mediaDescEntity := mediaFields[5].Descriptor()
	// media.EntityValidator is a validator for the "entity" field. It is called by the builders before save.
	media.EntityValidator = mediaDescEntity.Validators[0].(func(string) error)
	// mediaDescID is the schema descriptor for id field.
	mediaDescID := mediaMixinFields0[0].Descriptor()
	// media.DefaultID holds the default value on creation for the id field.
	media.DefaultID = mediaDescID.Default.(func() uuid.UUID)
	translatorMixin := schema.Translator{}.Mixin()
	translatorMixinFields0 := translatorMixin[0].Fields()
	_ = translatorMixinFields0
	translatorMixinFields1 := translatorMixin[1].Fields()
	_ = translatorMixinFields1
	translatorMixinFields2 := translatorMixin[2].Fields()
	_ = translatorMixinFields2
	translatorFields := schema.Translator{}.Fields()
	_ = translatorFields
	// translatorDescCreatedAt is the schema descriptor for created_at field.
	translatorDescCreatedAt := translatorMixinFields1[0].Descriptor()
	// translator.DefaultCreatedAt holds the default value on creation for the created_at field.
	translator.DefaultCreatedAt = translatorDescCreatedAt.Default.(func() time.Time)
	// translatorDescUpdatedAt is the schema descriptor for updated_at field.
	translatorDescUpdatedAt := translatorMixinFields1[1].Descriptor()
	// translator.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	translator.DefaultUpdatedAt = translatorDescUpdatedAt.Default.(func() time.Time)
	// translator.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	translator.UpdateDefaultUpdatedAt = translatorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// translatorDescIsArchived is the schema descriptor for is_archived field.
	translatorDescIsArchived := translatorMixinFields2[0].Descriptor()
	// translator.DefaultIsArchived holds the default value on creation for the is_archived field.
	translator.DefaultIsArchived = translatorDescIsArchived.Default.(bool)
	// translatorDescCity is the schema descriptor for city field.
	translatorDescCity := translatorFields[2].Descriptor()
	// translator.CityValidator is a validator for the "city" field. It is called by the builders before save.
	translator.CityValidator = translatorDescCity.Validators[0].(func(string) error)
	// translatorDescID is the schema descriptor for id field.
	translatorDescID := translatorMixinFields0[0].Descriptor()
	// translator.DefaultID holds the default value on creation for the id field.
	translator.DefaultID = translatorDescID.Default.(func() uuid.UUID)
	treatmentMixin := schema.Treatment{}.Mixin()
	treatmentMixinFields0 := treatmentMixin[0].Fields()
	_ = treatmentMixinFields0
	treatmentMixinFields1 := treatmentMixin[1].Fields()
	_ = treatmentMixinFields1
	treatmentMixinFields2 := treatmentMixin[2].Fields()
	_ = treatmentMixinFields2
	treatmentMixinFields3 := treatmentMixin[3].Fields()
	_ = treatmentMixinFields3
	treatmentFields := schema.Treatment{}.Fields()
	_ = treatmentFields
	// treatmentDescCreatedAt is the schema descriptor for created_at field.
	treatmentDescCreatedAt := treatmentMixinFields1[0].Descriptor()
	// treatment.DefaultCreatedAt holds the default value on creation for the created_at field.
	treatment.DefaultCreatedAt = treatmentDescCreatedAt.Default.(func() time.Time)
	// treatmentDescUpdatedAt is the schema descriptor for updated_at field.
	treatmentDescUpdatedAt := treatmentMixinFields1[1].Descriptor()
	// treatment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	treatment.DefaultUpdatedAt = treatmentDescUpdatedAt.Default.(func() time.Time)
	// treatment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	treatment.UpdateDefaultUpdatedAt = treatmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// treatmentDescPublished is the schema descriptor for published field.
	treatmentDescPublished := treatmentMixinFields2[0].Descriptor()
	// treatment.DefaultPublished holds the default value on creation for the published field.
	treatment.DefaultPublished = treatmentDescPublished.Default.(bool)
	// treatmentDescIsArchived is the schema descriptor for is_archived field.
	treatmentDescIsArchived := treatmentMixinFields3[0].Descriptor()
	// treatment.DefaultIsArchived holds the default value on creation for the is_archived field.
	treatment.DefaultIsArchived = treatmentDescIsArchived.Default.(bool)
	// treatmentDescNameEn is the schema descriptor for name_en field.
	treatmentDescNameEn := treatmentFields[0].Descriptor()
	// treatment.NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	treatment.NameEnValidator = func() func(string) error {
		validators := treatmentDescNameEn.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_en string) error {
			for _, fn := range fns {
				if err := fn(name_en); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// treatmentDescNameAr is the schema descriptor for name_ar field.
	treatmentDescNameAr := treatmentFields[1].Descriptor()
	// treatment.NameArValidator is a validator for the "name_ar" field. It is called by the builders before save.
	treatment.NameArValidator = func() func(string) error {
		validators := treatmentDescNameAr.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_ar string) error {
			for _, fn := range fns {
				if err := fn(name_ar); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// treatmentDescSlug is the schema descriptor for slug field.
	treatmentDescSlug := treatmentFields[2].Descriptor()
	// treatment.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	treatment.SlugValidator = func() func(string) error {
		validators := treatmentDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// treatmentDescCategoryEn is the schema descriptor for category_en field.
	treatmentDescCategoryEn := treatmentFields[3].Descriptor()
	// treatment.CategoryEnValidator is a validator for the "category_en" field. It is called by the builders before save.
	treatment.CategoryEnValidator = treatmentDescCategoryEn.Validators[0].(func(string) error)
	// treatmentDescCategoryAr is the schema descriptor for category_ar field.
	treatmentDescCategoryAr := treatmentFields[4].Descriptor()
	// treatment.CategoryArValidator is a validator for the "category_ar" field. It is called by the builders before save.
	treatment.CategoryArValidator = treatmentDescCategoryAr.Validators[0].(func(string) error)
	// treatmentDescCostMin is the schema descriptor for cost_min field.
	treatmentDescCostMin := treatmentFields[9].Descriptor()
	// treatment.CostMinValidator is a validator for the "cost_min" field. It is called by the builders before save.
	treatment.CostMinValidator = treatmentDescCostMin.Validators[0].(func(float64) error)
	// treatmentDescCostMax is the schema descriptor for cost_max field.
	treatmentDescCostMax := treatmentFields[10].Descriptor()
	// treatment.CostMaxValidator is a validator for the "cost_max" field. It is called by the builders before save.
	treatment.CostMaxValidator = treatmentDescCostMax.Validators[0].(func(float64) error)
	// treatmentDescCurrency is the schema descriptor for currency field.
	treatmentDescCurrency := treatmentFields[11].Descriptor()
	// treatment.DefaultCurrency holds the default value on creation for the currency field.
	treatment.DefaultCurrency = treatmentDescCurrency.Default.(string)
	// treatment.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	treatment.CurrencyValidator = treatmentDescCurrency.Validators[0].(func(string) error)
	// treatmentDescFeatured is the schema descriptor for featured field.
	treatmentDescFeatured := treatmentFields[16].Descriptor()
	// treatment.DefaultFeatured holds the default value on creation for the featured field.
	treatment.DefaultFeatured = treatmentDescFeatured.Default.(bool)
	// treatmentDescMetaTitleEn is the schema descriptor for meta_title_en field.
	treatmentDescMetaTitleEn := treatmentFields[17].Descriptor()
	// treatment.MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	treatment.MetaTitleEnValidator = treatmentDescMetaTitleEn.Validators[0].(func(string) error)
	// treatmentDescMetaTitleAr is the schema descriptor for meta_title_ar field.
	treatmentDescMetaTitleAr := treatmentFields[18].Descriptor()
	// treatment.MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	treatment.MetaTitleArValidator = treatmentDescMetaTitleAr.Validators[0].(func(string) error)
	// treatmentDescID is the schema descriptor for id field.
	treatmentDescID := treatmentMixinFields0[0].Descriptor()
	// treatment.DefaultID holds the default value on creation for the id field.
	treatment.DefaultID = treatmentDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userMixinFields2 := userMixin[2].Fields()
	_ = userMixinFields2
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescIsArchived is the schema descriptor for is_archived field.
	userDescIsArchived := userMixinFields2[0].Descriptor()
	// user.DefaultIsArchived holds the default value on creation for the is_archived field.
	user.DefaultIsArchived = userDescIsArchived.Default.(bool)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[6].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescMustChangePassword is the schema descriptor for must_change_password field.
	userDescMustChangePassword := userFields[7].Descriptor()
	// user.DefaultMustChangePassword holds the default value on creation for the must_change_password field.
	user.DefaultMustChangePassword = userDescMustChangePassword.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[9].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
