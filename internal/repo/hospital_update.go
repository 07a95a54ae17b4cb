// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// HospitalUpdate is the builder for updating Hospital entities.
type HospitalUpdate struct {
	config
	hooks    []Hook
	mutation *HospitalMutation
}

// Where appends a list predicates to the HospitalUpdate builder.
func (_u *HospitalUpdate) Where(ps ...predicate.Hospital) *HospitalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HospitalUpdate) SetUpdatedAt(v time.Time) *HospitalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *HospitalUpdate) SetPublished(v bool) *HospitalUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillablePublished(v *bool) *HospitalUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *HospitalUpdate) SetPublishedAt(v time.Time) *HospitalUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillablePublishedAt(v *time.Time) *HospitalUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *HospitalUpdate) ClearPublishedAt() *HospitalUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *HospitalUpdate) SetIsArchived(v bool) *HospitalUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableIsArchived(v *bool) *HospitalUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *HospitalUpdate) SetArchivedAt(v time.Time) *HospitalUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableArchivedAt(v *time.Time) *HospitalUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *HospitalUpdate) ClearArchivedAt() *HospitalUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *HospitalUpdate) SetNameEn(v string) *HospitalUpdate {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableNameEn(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *HospitalUpdate) SetNameAr(v string) *HospitalUpdate {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableNameAr(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *HospitalUpdate) SetSlug(v string) *HospitalUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableSlug(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *HospitalUpdate) SetDescriptionEn(v string) *HospitalUpdate {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableDescriptionEn(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (_u *HospitalUpdate) ClearDescriptionEn() *HospitalUpdate {
	_u.mutation.ClearDescriptionEn()
	return _u
}

// SetDescriptionAr sets the "description_ar" field.
func (_u *HospitalUpdate) SetDescriptionAr(v string) *HospitalUpdate {
	_u.mutation.SetDescriptionAr(v)
	return _u
}

// SetNillableDescriptionAr sets the "description_ar" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableDescriptionAr(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetDescriptionAr(*v)
	}
	return _u
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (_u *HospitalUpdate) ClearDescriptionAr() *HospitalUpdate {
	_u.mutation.ClearDescriptionAr()
	return _u
}

// SetCityEn sets the "city_en" field.
func (_u *HospitalUpdate) SetCityEn(v string) *HospitalUpdate {
	_u.mutation.SetCityEn(v)
	return _u
}

// SetNillableCityEn sets the "city_en" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableCityEn(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetCityEn(*v)
	}
	return _u
}

// SetCityAr sets the "city_ar" field.
func (_u *HospitalUpdate) SetCityAr(v string) *HospitalUpdate {
	_u.mutation.SetCityAr(v)
	return _u
}

// SetNillableCityAr sets the "city_ar" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableCityAr(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetCityAr(*v)
	}
	return _u
}

// SetCountryEn sets the "country_en" field.
func (_u *HospitalUpdate) SetCountryEn(v string) *HospitalUpdate {
	_u.mutation.SetCountryEn(v)
	return _u
}

// SetNillableCountryEn sets the "country_en" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableCountryEn(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetCountryEn(*v)
	}
	return _u
}

// SetCountryAr sets the "country_ar" field.
func (_u *HospitalUpdate) SetCountryAr(v string) *HospitalUpdate {
	_u.mutation.SetCountryAr(v)
	return _u
}

// SetNillableCountryAr sets the "country_ar" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableCountryAr(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetCountryAr(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *HospitalUpdate) SetAddress(v string) *HospitalUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableAddress(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *HospitalUpdate) ClearAddress() *HospitalUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *HospitalUpdate) SetPhone(v string) *HospitalUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillablePhone(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *HospitalUpdate) ClearPhone() *HospitalUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *HospitalUpdate) SetEmail(v string) *HospitalUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableEmail(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *HospitalUpdate) ClearEmail() *HospitalUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAccreditations sets the "accreditations" field.
func (_u *HospitalUpdate) SetAccreditations(v []string) *HospitalUpdate {
	_u.mutation.SetAccreditations(v)
	return _u
}

// AppendAccreditations appends value to the "accreditations" field.
func (_u *HospitalUpdate) AppendAccreditations(v []string) *HospitalUpdate {
	_u.mutation.AppendAccreditations(v)
	return _u
}

// ClearAccreditations clears the value of the "accreditations" field.
func (_u *HospitalUpdate) ClearAccreditations() *HospitalUpdate {
	_u.mutation.ClearAccreditations()
	return _u
}

// SetImages sets the "images" field.
func (_u *HospitalUpdate) SetImages(v content.Images) *HospitalUpdate {
	_u.mutation.SetImages(v)
	return _u
}

// SetNillableImages sets the "images" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableImages(v *content.Images) *HospitalUpdate {
	if v != nil {
		_u.SetImages(*v)
	}
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *HospitalUpdate) ClearImages() *HospitalUpdate {
	_u.mutation.ClearImages()
	return _u
}

// SetEstablishedYear sets the "established_year" field.
func (_u *HospitalUpdate) SetEstablishedYear(v int) *HospitalUpdate {
	_u.mutation.ResetEstablishedYear()
	_u.mutation.SetEstablishedYear(v)
	return _u
}

// SetNillableEstablishedYear sets the "established_year" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableEstablishedYear(v *int) *HospitalUpdate {
	if v != nil {
		_u.SetEstablishedYear(*v)
	}
	return _u
}

// AddEstablishedYear adds value to the "established_year" field.
func (_u *HospitalUpdate) AddEstablishedYear(v int) *HospitalUpdate {
	_u.mutation.AddEstablishedYear(v)
	return _u
}

// ClearEstablishedYear clears the value of the "established_year" field.
func (_u *HospitalUpdate) ClearEstablishedYear() *HospitalUpdate {
	_u.mutation.ClearEstablishedYear()
	return _u
}

// SetBedCount sets the "bed_count" field.
func (_u *HospitalUpdate) SetBedCount(v int) *HospitalUpdate {
	_u.mutation.ResetBedCount()
	_u.mutation.SetBedCount(v)
	return _u
}

// SetNillableBedCount sets the "bed_count" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableBedCount(v *int) *HospitalUpdate {
	if v != nil {
		_u.SetBedCount(*v)
	}
	return _u
}

// AddBedCount adds value to the "bed_count" field.
func (_u *HospitalUpdate) AddBedCount(v int) *HospitalUpdate {
	_u.mutation.AddBedCount(v)
	return _u
}

// ClearBedCount clears the value of the "bed_count" field.
func (_u *HospitalUpdate) ClearBedCount() *HospitalUpdate {
	_u.mutation.ClearBedCount()
	return _u
}

// SetLanguagesSupported sets the "languages_supported" field.
func (_u *HospitalUpdate) SetLanguagesSupported(v []string) *HospitalUpdate {
	_u.mutation.SetLanguagesSupported(v)
	return _u
}

// AppendLanguagesSupported appends value to the "languages_supported" field.
func (_u *HospitalUpdate) AppendLanguagesSupported(v []string) *HospitalUpdate {
	_u.mutation.AppendLanguagesSupported(v)
	return _u
}

// ClearLanguagesSupported clears the value of the "languages_supported" field.
func (_u *HospitalUpdate) ClearLanguagesSupported() *HospitalUpdate {
	_u.mutation.ClearLanguagesSupported()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *HospitalUpdate) SetFeatured(v bool) *HospitalUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableFeatured(v *bool) *HospitalUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *HospitalUpdate) SetMetaTitleEn(v string) *HospitalUpdate {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableMetaTitleEn(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *HospitalUpdate) ClearMetaTitleEn() *HospitalUpdate {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *HospitalUpdate) SetMetaTitleAr(v string) *HospitalUpdate {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableMetaTitleAr(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *HospitalUpdate) ClearMetaTitleAr() *HospitalUpdate {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *HospitalUpdate) SetMetaDescriptionEn(v string) *HospitalUpdate {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableMetaDescriptionEn(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *HospitalUpdate) ClearMetaDescriptionEn() *HospitalUpdate {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *HospitalUpdate) SetMetaDescriptionAr(v string) *HospitalUpdate {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *HospitalUpdate) SetNillableMetaDescriptionAr(v *string) *HospitalUpdate {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *HospitalUpdate) ClearMetaDescriptionAr() *HospitalUpdate {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by IDs.
func (_u *HospitalUpdate) AddDoctorIDs(ids ...uuid.UUID) *HospitalUpdate {
	_u.mutation.AddDoctorIDs(ids...)
	return _u
}

// AddDoctors adds the "doctors" edges to the Doctor entity.
func (_u *HospitalUpdate) AddDoctors(v ...*Doctor) *HospitalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDoctorIDs(ids...)
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by IDs.
func (_u *HospitalUpdate) AddPackageIDs(ids ...uuid.UUID) *HospitalUpdate {
	_u.mutation.AddPackageIDs(ids...)
	return _u
}

// AddPackages adds the "packages" edges to the CarePackage entity.
func (_u *HospitalUpdate) AddPackages(v ...*CarePackage) *HospitalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackageIDs(ids...)
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by IDs.
func (_u *HospitalUpdate) AddTreatmentIDs(ids ...uuid.UUID) *HospitalUpdate {
	_u.mutation.AddTreatmentIDs(ids...)
	return _u
}

// AddTreatments adds the "treatments" edges to the Treatment entity.
func (_u *HospitalUpdate) AddTreatments(v ...*Treatment) *HospitalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTreatmentIDs(ids...)
}

// Mutation returns the HospitalMutation object of the builder.
func (_u *HospitalUpdate) Mutation() *HospitalMutation {
	return _u.mutation
}

// ClearDoctors clears all "doctors" edges to the Doctor entity.
func (_u *HospitalUpdate) ClearDoctors() *HospitalUpdate {
	_u.mutation.ClearDoctors()
	return _u
}

// RemoveDoctorIDs removes the "doctors" edge to Doctor entities by IDs.
func (_u *HospitalUpdate) RemoveDoctorIDs(ids ...uuid.UUID) *HospitalUpdate {
	_u.mutation.RemoveDoctorIDs(ids...)
	return _u
}

// RemoveDoctors removes "doctors" edges to Doctor entities.
func (_u *HospitalUpdate) RemoveDoctors(v ...*Doctor) *HospitalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDoctorIDs(ids...)
}

// ClearPackages clears all "packages" edges to the CarePackage entity.
func (_u *HospitalUpdate) ClearPackages() *HospitalUpdate {
	_u.mutation.ClearPackages()
	return _u
}

// RemovePackageIDs removes the "packages" edge to CarePackage entities by IDs.
func (_u *HospitalUpdate) RemovePackageIDs(ids ...uuid.UUID) *HospitalUpdate {
	_u.mutation.RemovePackageIDs(ids...)
	return _u
}

// RemovePackages removes "packages" edges to CarePackage entities.
func (_u *HospitalUpdate) RemovePackages(v ...*CarePackage) *HospitalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackageIDs(ids...)
}

// ClearTreatments clears all "treatments" edges to the Treatment entity.
func (_u *HospitalUpdate) ClearTreatments() *HospitalUpdate {
	_u.mutation.ClearTreatments()
	return _u
}

// RemoveTreatmentIDs removes the "treatments" edge to Treatment entities by IDs.
func (_u *HospitalUpdate) RemoveTreatmentIDs(ids ...uuid.UUID) *HospitalUpdate {
	_u.mutation.RemoveTreatmentIDs(ids...)
	return _u
}

// RemoveTreatments removes "treatments" edges to Treatment entities.
func (_u *HospitalUpdate) RemoveTreatments(v ...*Treatment) *HospitalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTreatmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HospitalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HospitalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HospitalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HospitalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HospitalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hospital.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HospitalUpdate) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := hospital.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := hospital.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := hospital.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Hospital.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CityEn(); ok {
		if err := hospital.CityEnValidator(v); err != nil {
			return &ValidationError{Name: "city_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.city_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CityAr(); ok {
		if err := hospital.CityArValidator(v); err != nil {
			return &ValidationError{Name: "city_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.city_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryEn(); ok {
		if err := hospital.CountryEnValidator(v); err != nil {
			return &ValidationError{Name: "country_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.country_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryAr(); ok {
		if err := hospital.CountryArValidator(v); err != nil {
			return &ValidationError{Name: "country_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.country_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := hospital.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Hospital.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := hospital.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Hospital.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := hospital.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := hospital.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.meta_title_ar": %w`, err)}
		}
	}
	return nil
}

func (_u *HospitalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hospital.Table, hospital.Columns, sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hospital.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(hospital.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(hospital.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(hospital.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(hospital.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(hospital.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(hospital.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(hospital.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(hospital.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(hospital.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(hospital.FieldDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.DescriptionEnCleared() {
		_spec.ClearField(hospital.FieldDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionAr(); ok {
		_spec.SetField(hospital.FieldDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.DescriptionArCleared() {
		_spec.ClearField(hospital.FieldDescriptionAr, field.TypeString)
	}
	if value, ok := _u.mutation.CityEn(); ok {
		_spec.SetField(hospital.FieldCityEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.CityAr(); ok {
		_spec.SetField(hospital.FieldCityAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryEn(); ok {
		_spec.SetField(hospital.FieldCountryEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryAr(); ok {
		_spec.SetField(hospital.FieldCountryAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(hospital.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(hospital.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(hospital.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(hospital.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(hospital.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(hospital.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Accreditations(); ok {
		_spec.SetField(hospital.FieldAccreditations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAccreditations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hospital.FieldAccreditations, value)
		})
	}
	if _u.mutation.AccreditationsCleared() {
		_spec.ClearField(hospital.FieldAccreditations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(hospital.FieldImages, field.TypeJSON, value)
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(hospital.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstablishedYear(); ok {
		_spec.SetField(hospital.FieldEstablishedYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstablishedYear(); ok {
		_spec.AddField(hospital.FieldEstablishedYear, field.TypeInt, value)
	}
	if _u.mutation.EstablishedYearCleared() {
		_spec.ClearField(hospital.FieldEstablishedYear, field.TypeInt)
	}
	if value, ok := _u.mutation.BedCount(); ok {
		_spec.SetField(hospital.FieldBedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBedCount(); ok {
		_spec.AddField(hospital.FieldBedCount, field.TypeInt, value)
	}
	if _u.mutation.BedCountCleared() {
		_spec.ClearField(hospital.FieldBedCount, field.TypeInt)
	}
	if value, ok := _u.mutation.LanguagesSupported(); ok {
		_spec.SetField(hospital.FieldLanguagesSupported, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguagesSupported(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hospital.FieldLanguagesSupported, value)
		})
	}
	if _u.mutation.LanguagesSupportedCleared() {
		_spec.ClearField(hospital.FieldLanguagesSupported, field.TypeJSON)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(hospital.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(hospital.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(hospital.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(hospital.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(hospital.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(hospital.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(hospital.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(hospital.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(hospital.FieldMetaDescriptionAr, field.TypeString)
	}
	if _u.mutation.DoctorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.DoctorsTable,
			Columns: []string{hospital.DoctorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDoctorsIDs(); len(nodes) > 0 && !_u.mutation.DoctorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.DoctorsTable,
			Columns: []string{hospital.DoctorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.DoctorsTable,
			Columns: []string{hospital.DoctorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.PackagesTable,
			Columns: []string{hospital.PackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackagesIDs(); len(nodes) > 0 && !_u.mutation.PackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.PackagesTable,
			Columns: []string{hospital.PackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.PackagesTable,
			Columns: []string{hospital.PackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TreatmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   hospital.TreatmentsTable,
			Columns: hospital.TreatmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTreatmentsIDs(); len(nodes) > 0 && !_u.mutation.TreatmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   hospital.TreatmentsTable,
			Columns: hospital.TreatmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   hospital.TreatmentsTable,
			Columns: hospital.TreatmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hospital.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HospitalUpdateOne is the builder for updating a single Hospital entity.
type HospitalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HospitalMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HospitalUpdateOne) SetUpdatedAt(v time.Time) *HospitalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *HospitalUpdateOne) SetPublished(v bool) *HospitalUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillablePublished(v *bool) *HospitalUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *HospitalUpdateOne) SetPublishedAt(v time.Time) *HospitalUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillablePublishedAt(v *time.Time) *HospitalUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *HospitalUpdateOne) ClearPublishedAt() *HospitalUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *HospitalUpdateOne) SetIsArchived(v bool) *HospitalUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableIsArchived(v *bool) *HospitalUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *HospitalUpdateOne) SetArchivedAt(v time.Time) *HospitalUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableArchivedAt(v *time.Time) *HospitalUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *HospitalUpdateOne) ClearArchivedAt() *HospitalUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *HospitalUpdateOne) SetNameEn(v string) *HospitalUpdateOne {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableNameEn(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *HospitalUpdateOne) SetNameAr(v string) *HospitalUpdateOne {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableNameAr(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *HospitalUpdateOne) SetSlug(v string) *HospitalUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableSlug(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *HospitalUpdateOne) SetDescriptionEn(v string) *HospitalUpdateOne {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableDescriptionEn(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (_u *HospitalUpdateOne) ClearDescriptionEn() *HospitalUpdateOne {
	_u.mutation.ClearDescriptionEn()
	return _u
}

// SetDescriptionAr sets the "description_ar" field.
func (_u *HospitalUpdateOne) SetDescriptionAr(v string) *HospitalUpdateOne {
	_u.mutation.SetDescriptionAr(v)
	return _u
}

// SetNillableDescriptionAr sets the "description_ar" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableDescriptionAr(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetDescriptionAr(*v)
	}
	return _u
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (_u *HospitalUpdateOne) ClearDescriptionAr() *HospitalUpdateOne {
	_u.mutation.ClearDescriptionAr()
	return _u
}

// SetCityEn sets the "city_en" field.
func (_u *HospitalUpdateOne) SetCityEn(v string) *HospitalUpdateOne {
	_u.mutation.SetCityEn(v)
	return _u
}

// SetNillableCityEn sets the "city_en" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableCityEn(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetCityEn(*v)
	}
	return _u
}

// SetCityAr sets the "city_ar" field.
func (_u *HospitalUpdateOne) SetCityAr(v string) *HospitalUpdateOne {
	_u.mutation.SetCityAr(v)
	return _u
}

// SetNillableCityAr sets the "city_ar" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableCityAr(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetCityAr(*v)
	}
	return _u
}

// SetCountryEn sets the "country_en" field.
func (_u *HospitalUpdateOne) SetCountryEn(v string) *HospitalUpdateOne {
	_u.mutation.SetCountryEn(v)
	return _u
}

// SetNillableCountryEn sets the "country_en" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableCountryEn(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetCountryEn(*v)
	}
	return _u
}

// SetCountryAr sets the "country_ar" field.
func (_u *HospitalUpdateOne) SetCountryAr(v string) *HospitalUpdateOne {
	_u.mutation.SetCountryAr(v)
	return _u
}

// SetNillableCountryAr sets the "country_ar" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableCountryAr(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetCountryAr(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *HospitalUpdateOne) SetAddress(v string) *HospitalUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableAddress(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *HospitalUpdateOne) ClearAddress() *HospitalUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *HospitalUpdateOne) SetPhone(v string) *HospitalUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillablePhone(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *HospitalUpdateOne) ClearPhone() *HospitalUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *HospitalUpdateOne) SetEmail(v string) *HospitalUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableEmail(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *HospitalUpdateOne) ClearEmail() *HospitalUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAccreditations sets the "accreditations" field.
func (_u *HospitalUpdateOne) SetAccreditations(v []string) *HospitalUpdateOne {
	_u.mutation.SetAccreditations(v)
	return _u
}

// AppendAccreditations appends value to the "accreditations" field.
func (_u *HospitalUpdateOne) AppendAccreditations(v []string) *HospitalUpdateOne {
	_u.mutation.AppendAccreditations(v)
	return _u
}

// ClearAccreditations clears the value of the "accreditations" field.
func (_u *HospitalUpdateOne) ClearAccreditations() *HospitalUpdateOne {
	_u.mutation.ClearAccreditations()
	return _u
}

// SetImages sets the "images" field.
func (_u *HospitalUpdateOne) SetImages(v content.Images) *HospitalUpdateOne {
	_u.mutation.SetImages(v)
	return _u
}

// SetNillableImages sets the "images" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableImages(v *content.Images) *HospitalUpdateOne {
	if v != nil {
		_u.SetImages(*v)
	}
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *HospitalUpdateOne) ClearImages() *HospitalUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// SetEstablishedYear sets the "established_year" field.
func (_u *HospitalUpdateOne) SetEstablishedYear(v int) *HospitalUpdateOne {
	_u.mutation.ResetEstablishedYear()
	_u.mutation.SetEstablishedYear(v)
	return _u
}

// SetNillableEstablishedYear sets the "established_year" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableEstablishedYear(v *int) *HospitalUpdateOne {
	if v != nil {
		_u.SetEstablishedYear(*v)
	}
	return _u
}

// AddEstablishedYear adds value to the "established_year" field.
func (_u *HospitalUpdateOne) AddEstablishedYear(v int) *HospitalUpdateOne {
	_u.mutation.AddEstablishedYear(v)
	return _u
}

// ClearEstablishedYear clears the value of the "established_year" field.
func (_u *HospitalUpdateOne) ClearEstablishedYear() *HospitalUpdateOne {
	_u.mutation.ClearEstablishedYear()
	return _u
}

// SetBedCount sets the "bed_count" field.
func (_u *HospitalUpdateOne) SetBedCount(v int) *HospitalUpdateOne {
	_u.mutation.ResetBedCount()
	_u.mutation.SetBedCount(v)
	return _u
}

// SetNillableBedCount sets the "bed_count" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableBedCount(v *int) *HospitalUpdateOne {
	if v != nil {
		_u.SetBedCount(*v)
	}
	return _u
}

// AddBedCount adds value to the "bed_count" field.
func (_u *HospitalUpdateOne) AddBedCount(v int) *HospitalUpdateOne {
	_u.mutation.AddBedCount(v)
	return _u
}

// ClearBedCount clears the value of the "bed_count" field.
func (_u *HospitalUpdateOne) ClearBedCount() *HospitalUpdateOne {
	_u.mutation.ClearBedCount()
	return _u
}

// SetLanguagesSupported sets the "languages_supported" field.
func (_u *HospitalUpdateOne) SetLanguagesSupported(v []string) *HospitalUpdateOne {
	_u.mutation.SetLanguagesSupported(v)
	return _u
}

// AppendLanguagesSupported appends value to the "languages_supported" field.
func (_u *HospitalUpdateOne) AppendLanguagesSupported(v []string) *HospitalUpdateOne {
	_u.mutation.AppendLanguagesSupported(v)
	return _u
}

// ClearLanguagesSupported clears the value of the "languages_supported" field.
func (_u *HospitalUpdateOne) ClearLanguagesSupported() *HospitalUpdateOne {
	_u.mutation.ClearLanguagesSupported()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *HospitalUpdateOne) SetFeatured(v bool) *HospitalUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableFeatured(v *bool) *HospitalUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *HospitalUpdateOne) SetMetaTitleEn(v string) *HospitalUpdateOne {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableMetaTitleEn(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *HospitalUpdateOne) ClearMetaTitleEn() *HospitalUpdateOne {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *HospitalUpdateOne) SetMetaTitleAr(v string) *HospitalUpdateOne {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableMetaTitleAr(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *HospitalUpdateOne) ClearMetaTitleAr() *HospitalUpdateOne {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *HospitalUpdateOne) SetMetaDescriptionEn(v string) *HospitalUpdateOne {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableMetaDescriptionEn(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *HospitalUpdateOne) ClearMetaDescriptionEn() *HospitalUpdateOne {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *HospitalUpdateOne) SetMetaDescriptionAr(v string) *HospitalUpdateOne {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *HospitalUpdateOne) SetNillableMetaDescriptionAr(v *string) *HospitalUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *HospitalUpdateOne) ClearMetaDescriptionAr() *HospitalUpdateOne {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by IDs.
func (_u *HospitalUpdateOne) AddDoctorIDs(ids ...uuid.UUID) *HospitalUpdateOne {
	_u.mutation.AddDoctorIDs(ids...)
	return _u
}

// AddDoctors adds the "doctors" edges to the Doctor entity.
func (_u *HospitalUpdateOne) AddDoctors(v ...*Doctor) *HospitalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDoctorIDs(ids...)
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by IDs.
func (_u *HospitalUpdateOne) AddPackageIDs(ids ...uuid.UUID) *HospitalUpdateOne {
	_u.mutation.AddPackageIDs(ids...)
	return _u
}

// AddPackages adds the "packages" edges to the CarePackage entity.
func (_u *HospitalUpdateOne) AddPackages(v ...*CarePackage) *HospitalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackageIDs(ids...)
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by IDs.
func (_u *HospitalUpdateOne) AddTreatmentIDs(ids ...uuid.UUID) *HospitalUpdateOne {
	_u.mutation.AddTreatmentIDs(ids...)
	return _u
}

// AddTreatments adds the "treatments" edges to the Treatment entity.
func (_u *HospitalUpdateOne) AddTreatments(v ...*Treatment) *HospitalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTreatmentIDs(ids...)
}

// Mutation returns the HospitalMutation object of the builder.
func (_u *HospitalUpdateOne) Mutation() *HospitalMutation {
	return _u.mutation
}

// ClearDoctors clears all "doctors" edges to the Doctor entity.
func (_u *HospitalUpdateOne) ClearDoctors() *HospitalUpdateOne {
	_u.mutation.ClearDoctors()
	return _u
}

// RemoveDoctorIDs removes the "doctors" edge to Doctor entities by IDs.
func (_u *HospitalUpdateOne) RemoveDoctorIDs(ids ...uuid.UUID) *HospitalUpdateOne {
	_u.mutation.RemoveDoctorIDs(ids...)
	return _u
}

// RemoveDoctors removes "doctors" edges to Doctor entities.
func (_u *HospitalUpdateOne) RemoveDoctors(v ...*Doctor) *HospitalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDoctorIDs(ids...)
}

// ClearPackages clears all "packages" edges to the CarePackage entity.
func (_u *HospitalUpdateOne) ClearPackages() *HospitalUpdateOne {
	_u.mutation.ClearPackages()
	return _u
}

// RemovePackageIDs removes the "packages" edge to CarePackage entities by IDs.
func (_u *HospitalUpdateOne) RemovePackageIDs(ids ...uuid.UUID) *HospitalUpdateOne {
	_u.mutation.RemovePackageIDs(ids...)
	return _u
}

// RemovePackages removes "packages" edges to CarePackage entities.
func (_u *HospitalUpdateOne) RemovePackages(v ...*CarePackage) *HospitalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackageIDs(ids...)
}

// ClearTreatments clears all "treatments" edges to the Treatment entity.
func (_u *HospitalUpdateOne) ClearTreatments() *HospitalUpdateOne {
	_u.mutation.ClearTreatments()
	return _u
}

// RemoveTreatmentIDs removes the "treatments" edge to Treatment entities by IDs.
func (_u *HospitalUpdateOne) RemoveTreatmentIDs(ids ...uuid.UUID) *HospitalUpdateOne {
	_u.mutation.RemoveTreatmentIDs(ids...)
	return _u
}

// RemoveTreatments removes "treatments" edges to Treatment entities.
func (_u *HospitalUpdateOne) RemoveTreatments(v ...*Treatment) *HospitalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTreatmentIDs(ids...)
}

// Where appends a list predicates to the HospitalUpdate builder.
func (_u *HospitalUpdateOne) Where(ps ...predicate.Hospital) *HospitalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HospitalUpdateOne) Select(field string, fields ...string) *HospitalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Hospital entity.
func (_u *HospitalUpdateOne) Save(ctx context.Context) (*Hospital, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HospitalUpdateOne) SaveX(ctx context.Context) *Hospital {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HospitalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HospitalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HospitalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hospital.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HospitalUpdateOne) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := hospital.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := hospital.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := hospital.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Hospital.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CityEn(); ok {
		if err := hospital.CityEnValidator(v); err != nil {
			return &ValidationError{Name: "city_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.city_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CityAr(); ok {
		if err := hospital.CityArValidator(v); err != nil {
			return &ValidationError{Name: "city_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.city_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryEn(); ok {
		if err := hospital.CountryEnValidator(v); err != nil {
			return &ValidationError{Name: "country_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.country_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryAr(); ok {
		if err := hospital.CountryArValidator(v); err != nil {
			return &ValidationError{Name: "country_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.country_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := hospital.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Hospital.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := hospital.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Hospital.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := hospital.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := hospital.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.meta_title_ar": %w`, err)}
		}
	}
	return nil
}

func (_u *HospitalUpdateOne) sqlSave(ctx context.Context) (_node *Hospital, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hospital.Table, hospital.Columns, sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Hospital.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hospital.FieldID)
		for _, f := range fields {
			if !hospital.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != hospital.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hospital.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(hospital.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(hospital.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(hospital.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(hospital.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(hospital.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(hospital.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(hospital.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(hospital.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(hospital.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(hospital.FieldDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.DescriptionEnCleared() {
		_spec.ClearField(hospital.FieldDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionAr(); ok {
		_spec.SetField(hospital.FieldDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.DescriptionArCleared() {
		_spec.ClearField(hospital.FieldDescriptionAr, field.TypeString)
	}
	if value, ok := _u.mutation.CityEn(); ok {
		_spec.SetField(hospital.FieldCityEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.CityAr(); ok {
		_spec.SetField(hospital.FieldCityAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryEn(); ok {
		_spec.SetField(hospital.FieldCountryEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryAr(); ok {
		_spec.SetField(hospital.FieldCountryAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(hospital.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(hospital.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(hospital.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(hospital.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(hospital.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(hospital.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Accreditations(); ok {
		_spec.SetField(hospital.FieldAccreditations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAccreditations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hospital.FieldAccreditations, value)
		})
	}
	if _u.mutation.AccreditationsCleared() {
		_spec.ClearField(hospital.FieldAccreditations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(hospital.FieldImages, field.TypeJSON, value)
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(hospital.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstablishedYear(); ok {
		_spec.SetField(hospital.FieldEstablishedYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstablishedYear(); ok {
		_spec.AddField(hospital.FieldEstablishedYear, field.TypeInt, value)
	}
	if _u.mutation.EstablishedYearCleared() {
		_spec.ClearField(hospital.FieldEstablishedYear, field.TypeInt)
	}
	if value, ok := _u.mutation.BedCount(); ok {
		_spec.SetField(hospital.FieldBedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBedCount(); ok {
		_spec.AddField(hospital.FieldBedCount, field.TypeInt, value)
	}
	if _u.mutation.BedCountCleared() {
		_spec.ClearField(hospital.FieldBedCount, field.TypeInt)
	}
	if value, ok := _u.mutation.LanguagesSupported(); ok {
		_spec.SetField(hospital.FieldLanguagesSupported, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguagesSupported(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hospital.FieldLanguagesSupported, value)
		})
	}
	if _u.mutation.LanguagesSupportedCleared() {
		_spec.ClearField(hospital.FieldLanguagesSupported, field.TypeJSON)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(hospital.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(hospital.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(hospital.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(hospital.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(hospital.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(hospital.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(hospital.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(hospital.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(hospital.FieldMetaDescriptionAr, field.TypeString)
	}
	if _u.mutation.DoctorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.DoctorsTable,
			Columns: []string{hospital.DoctorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDoctorsIDs(); len(nodes) > 0 && !_u.mutation.DoctorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.DoctorsTable,
			Columns: []string{hospital.DoctorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.DoctorsTable,
			Columns: []string{hospital.DoctorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.PackagesTable,
			Columns: []string{hospital.PackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackagesIDs(); len(nodes) > 0 && !_u.mutation.PackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.PackagesTable,
			Columns: []string{hospital.PackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hospital.PackagesTable,
			Columns: []string{hospital.PackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TreatmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   hospital.TreatmentsTable,
			Columns: hospital.TreatmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTreatmentsIDs(); len(nodes) > 0 && !_u.mutation.TreatmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   hospital.TreatmentsTable,
			Columns: hospital.TreatmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   hospital.TreatmentsTable,
			Columns: hospital.TreatmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Hospital{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hospital.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
