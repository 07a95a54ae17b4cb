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
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *DoctorUpdate) SetPublished(v bool) *DoctorUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillablePublished(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *DoctorUpdate) SetPublishedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillablePublishedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *DoctorUpdate) ClearPublishedAt() *DoctorUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *DoctorUpdate) SetIsArchived(v bool) *DoctorUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableIsArchived(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *DoctorUpdate) SetArchivedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableArchivedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *DoctorUpdate) ClearArchivedAt() *DoctorUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetHospitalID sets the "hospital_id" field.
func (_u *DoctorUpdate) SetHospitalID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetHospitalID(v)
	return _u
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableHospitalID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetHospitalID(*v)
	}
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *DoctorUpdate) SetNameEn(v string) *DoctorUpdate {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableNameEn(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *DoctorUpdate) SetNameAr(v string) *DoctorUpdate {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableNameAr(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *DoctorUpdate) SetSlug(v string) *DoctorUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSlug(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTitleEn sets the "title_en" field.
func (_u *DoctorUpdate) SetTitleEn(v string) *DoctorUpdate {
	_u.mutation.SetTitleEn(v)
	return _u
}

// SetNillableTitleEn sets the "title_en" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTitleEn(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTitleEn(*v)
	}
	return _u
}

// ClearTitleEn clears the value of the "title_en" field.
func (_u *DoctorUpdate) ClearTitleEn() *DoctorUpdate {
	_u.mutation.ClearTitleEn()
	return _u
}

// SetTitleAr sets the "title_ar" field.
func (_u *DoctorUpdate) SetTitleAr(v string) *DoctorUpdate {
	_u.mutation.SetTitleAr(v)
	return _u
}

// SetNillableTitleAr sets the "title_ar" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTitleAr(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTitleAr(*v)
	}
	return _u
}

// ClearTitleAr clears the value of the "title_ar" field.
func (_u *DoctorUpdate) ClearTitleAr() *DoctorUpdate {
	_u.mutation.ClearTitleAr()
	return _u
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (_u *DoctorUpdate) SetSpecialtiesEn(v []string) *DoctorUpdate {
	_u.mutation.SetSpecialtiesEn(v)
	return _u
}

// AppendSpecialtiesEn appends value to the "specialties_en" field.
func (_u *DoctorUpdate) AppendSpecialtiesEn(v []string) *DoctorUpdate {
	_u.mutation.AppendSpecialtiesEn(v)
	return _u
}

// ClearSpecialtiesEn clears the value of the "specialties_en" field.
func (_u *DoctorUpdate) ClearSpecialtiesEn() *DoctorUpdate {
	_u.mutation.ClearSpecialtiesEn()
	return _u
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (_u *DoctorUpdate) SetSpecialtiesAr(v []string) *DoctorUpdate {
	_u.mutation.SetSpecialtiesAr(v)
	return _u
}

// AppendSpecialtiesAr appends value to the "specialties_ar" field.
func (_u *DoctorUpdate) AppendSpecialtiesAr(v []string) *DoctorUpdate {
	_u.mutation.AppendSpecialtiesAr(v)
	return _u
}

// ClearSpecialtiesAr clears the value of the "specialties_ar" field.
func (_u *DoctorUpdate) ClearSpecialtiesAr() *DoctorUpdate {
	_u.mutation.ClearSpecialtiesAr()
	return _u
}

// SetQualifications sets the "qualifications" field.
func (_u *DoctorUpdate) SetQualifications(v []string) *DoctorUpdate {
	_u.mutation.SetQualifications(v)
	return _u
}

// AppendQualifications appends value to the "qualifications" field.
func (_u *DoctorUpdate) AppendQualifications(v []string) *DoctorUpdate {
	_u.mutation.AppendQualifications(v)
	return _u
}

// ClearQualifications clears the value of the "qualifications" field.
func (_u *DoctorUpdate) ClearQualifications() *DoctorUpdate {
	_u.mutation.ClearQualifications()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdate) SetExperienceYears(v int) *DoctorUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableExperienceYears(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdate) AddExperienceYears(v int) *DoctorUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *DoctorUpdate) SetLanguages(v []string) *DoctorUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *DoctorUpdate) AppendLanguages(v []string) *DoctorUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *DoctorUpdate) ClearLanguages() *DoctorUpdate {
	_u.mutation.ClearLanguages()
	return _u
}

// SetBioEn sets the "bio_en" field.
func (_u *DoctorUpdate) SetBioEn(v string) *DoctorUpdate {
	_u.mutation.SetBioEn(v)
	return _u
}

// SetNillableBioEn sets the "bio_en" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableBioEn(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetBioEn(*v)
	}
	return _u
}

// ClearBioEn clears the value of the "bio_en" field.
func (_u *DoctorUpdate) ClearBioEn() *DoctorUpdate {
	_u.mutation.ClearBioEn()
	return _u
}

// SetBioAr sets the "bio_ar" field.
func (_u *DoctorUpdate) SetBioAr(v string) *DoctorUpdate {
	_u.mutation.SetBioAr(v)
	return _u
}

// SetNillableBioAr sets the "bio_ar" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableBioAr(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetBioAr(*v)
	}
	return _u
}

// ClearBioAr clears the value of the "bio_ar" field.
func (_u *DoctorUpdate) ClearBioAr() *DoctorUpdate {
	_u.mutation.ClearBioAr()
	return _u
}

// SetImage sets the "image" field.
func (_u *DoctorUpdate) SetImage(v string) *DoctorUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableImage(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *DoctorUpdate) ClearImage() *DoctorUpdate {
	_u.mutation.ClearImage()
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdate) SetConsultationFee(v float64) *DoctorUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultationFee(v *float64) *DoctorUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdate) AddConsultationFee(v float64) *DoctorUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// ClearConsultationFee clears the value of the "consultation_fee" field.
func (_u *DoctorUpdate) ClearConsultationFee() *DoctorUpdate {
	_u.mutation.ClearConsultationFee()
	return _u
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (_u *DoctorUpdate) SetTelemedicineAvailable(v bool) *DoctorUpdate {
	_u.mutation.SetTelemedicineAvailable(v)
	return _u
}

// SetNillableTelemedicineAvailable sets the "telemedicine_available" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTelemedicineAvailable(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetTelemedicineAvailable(*v)
	}
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *DoctorUpdate) SetMetaTitleEn(v string) *DoctorUpdate {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableMetaTitleEn(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *DoctorUpdate) ClearMetaTitleEn() *DoctorUpdate {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *DoctorUpdate) SetMetaTitleAr(v string) *DoctorUpdate {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableMetaTitleAr(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *DoctorUpdate) ClearMetaTitleAr() *DoctorUpdate {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *DoctorUpdate) SetMetaDescriptionEn(v string) *DoctorUpdate {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableMetaDescriptionEn(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *DoctorUpdate) ClearMetaDescriptionEn() *DoctorUpdate {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *DoctorUpdate) SetMetaDescriptionAr(v string) *DoctorUpdate {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableMetaDescriptionAr(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *DoctorUpdate) ClearMetaDescriptionAr() *DoctorUpdate {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_u *DoctorUpdate) SetHospital(v *Hospital) *DoctorUpdate {
	return _u.SetHospitalID(v.ID)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (_u *DoctorUpdate) ClearHospital() *DoctorUpdate {
	_u.mutation.ClearHospital()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := doctor.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := doctor.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := doctor.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Doctor.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleEn(); ok {
		if err := doctor.TitleEnValidator(v); err != nil {
			return &ValidationError{Name: "title_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleAr(); ok {
		if err := doctor.TitleArValidator(v); err != nil {
			return &ValidationError{Name: "title_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.title_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Image(); ok {
		if err := doctor.ImageValidator(v); err != nil {
			return &ValidationError{Name: "image", err: fmt.Errorf(`repo: validator failed for field "Doctor.image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := doctor.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := doctor.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.meta_title_ar": %w`, err)}
		}
	}
	if _u.mutation.HospitalCleared() && len(_u.mutation.HospitalIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Doctor.hospital"`)
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(doctor.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(doctor.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(doctor.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(doctor.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(doctor.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(doctor.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(doctor.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(doctor.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(doctor.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.TitleEn(); ok {
		_spec.SetField(doctor.FieldTitleEn, field.TypeString, value)
	}
	if _u.mutation.TitleEnCleared() {
		_spec.ClearField(doctor.FieldTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.TitleAr(); ok {
		_spec.SetField(doctor.FieldTitleAr, field.TypeString, value)
	}
	if _u.mutation.TitleArCleared() {
		_spec.ClearField(doctor.FieldTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.SpecialtiesEn(); ok {
		_spec.SetField(doctor.FieldSpecialtiesEn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialtiesEn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldSpecialtiesEn, value)
		})
	}
	if _u.mutation.SpecialtiesEnCleared() {
		_spec.ClearField(doctor.FieldSpecialtiesEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecialtiesAr(); ok {
		_spec.SetField(doctor.FieldSpecialtiesAr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialtiesAr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldSpecialtiesAr, value)
		})
	}
	if _u.mutation.SpecialtiesArCleared() {
		_spec.ClearField(doctor.FieldSpecialtiesAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.Qualifications(); ok {
		_spec.SetField(doctor.FieldQualifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQualifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldQualifications, value)
		})
	}
	if _u.mutation.QualificationsCleared() {
		_spec.ClearField(doctor.FieldQualifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(doctor.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(doctor.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.BioEn(); ok {
		_spec.SetField(doctor.FieldBioEn, field.TypeString, value)
	}
	if _u.mutation.BioEnCleared() {
		_spec.ClearField(doctor.FieldBioEn, field.TypeString)
	}
	if value, ok := _u.mutation.BioAr(); ok {
		_spec.SetField(doctor.FieldBioAr, field.TypeString, value)
	}
	if _u.mutation.BioArCleared() {
		_spec.ClearField(doctor.FieldBioAr, field.TypeString)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(doctor.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(doctor.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeFloat64, value)
	}
	if _u.mutation.ConsultationFeeCleared() {
		_spec.ClearField(doctor.FieldConsultationFee, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TelemedicineAvailable(); ok {
		_spec.SetField(doctor.FieldTelemedicineAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(doctor.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(doctor.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(doctor.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(doctor.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(doctor.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(doctor.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(doctor.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(doctor.FieldMetaDescriptionAr, field.TypeString)
	}
	if _u.mutation.HospitalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctor.HospitalTable,
			Columns: []string{doctor.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HospitalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctor.HospitalTable,
			Columns: []string{doctor.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *DoctorUpdateOne) SetPublished(v bool) *DoctorUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillablePublished(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *DoctorUpdateOne) SetPublishedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillablePublishedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *DoctorUpdateOne) ClearPublishedAt() *DoctorUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *DoctorUpdateOne) SetIsArchived(v bool) *DoctorUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableIsArchived(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *DoctorUpdateOne) SetArchivedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableArchivedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *DoctorUpdateOne) ClearArchivedAt() *DoctorUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetHospitalID sets the "hospital_id" field.
func (_u *DoctorUpdateOne) SetHospitalID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetHospitalID(v)
	return _u
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableHospitalID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetHospitalID(*v)
	}
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *DoctorUpdateOne) SetNameEn(v string) *DoctorUpdateOne {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableNameEn(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *DoctorUpdateOne) SetNameAr(v string) *DoctorUpdateOne {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableNameAr(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *DoctorUpdateOne) SetSlug(v string) *DoctorUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSlug(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTitleEn sets the "title_en" field.
func (_u *DoctorUpdateOne) SetTitleEn(v string) *DoctorUpdateOne {
	_u.mutation.SetTitleEn(v)
	return _u
}

// SetNillableTitleEn sets the "title_en" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTitleEn(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTitleEn(*v)
	}
	return _u
}

// ClearTitleEn clears the value of the "title_en" field.
func (_u *DoctorUpdateOne) ClearTitleEn() *DoctorUpdateOne {
	_u.mutation.ClearTitleEn()
	return _u
}

// SetTitleAr sets the "title_ar" field.
func (_u *DoctorUpdateOne) SetTitleAr(v string) *DoctorUpdateOne {
	_u.mutation.SetTitleAr(v)
	return _u
}

// SetNillableTitleAr sets the "title_ar" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTitleAr(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTitleAr(*v)
	}
	return _u
}

// ClearTitleAr clears the value of the "title_ar" field.
func (_u *DoctorUpdateOne) ClearTitleAr() *DoctorUpdateOne {
	_u.mutation.ClearTitleAr()
	return _u
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (_u *DoctorUpdateOne) SetSpecialtiesEn(v []string) *DoctorUpdateOne {
	_u.mutation.SetSpecialtiesEn(v)
	return _u
}

// AppendSpecialtiesEn appends value to the "specialties_en" field.
func (_u *DoctorUpdateOne) AppendSpecialtiesEn(v []string) *DoctorUpdateOne {
	_u.mutation.AppendSpecialtiesEn(v)
	return _u
}

// ClearSpecialtiesEn clears the value of the "specialties_en" field.
func (_u *DoctorUpdateOne) ClearSpecialtiesEn() *DoctorUpdateOne {
	_u.mutation.ClearSpecialtiesEn()
	return _u
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (_u *DoctorUpdateOne) SetSpecialtiesAr(v []string) *DoctorUpdateOne {
	_u.mutation.SetSpecialtiesAr(v)
	return _u
}

// AppendSpecialtiesAr appends value to the "specialties_ar" field.
func (_u *DoctorUpdateOne) AppendSpecialtiesAr(v []string) *DoctorUpdateOne {
	_u.mutation.AppendSpecialtiesAr(v)
	return _u
}

// ClearSpecialtiesAr clears the value of the "specialties_ar" field.
func (_u *DoctorUpdateOne) ClearSpecialtiesAr() *DoctorUpdateOne {
	_u.mutation.ClearSpecialtiesAr()
	return _u
}

// SetQualifications sets the "qualifications" field.
func (_u *DoctorUpdateOne) SetQualifications(v []string) *DoctorUpdateOne {
	_u.mutation.SetQualifications(v)
	return _u
}

// AppendQualifications appends value to the "qualifications" field.
func (_u *DoctorUpdateOne) AppendQualifications(v []string) *DoctorUpdateOne {
	_u.mutation.AppendQualifications(v)
	return _u
}

// ClearQualifications clears the value of the "qualifications" field.
func (_u *DoctorUpdateOne) ClearQualifications() *DoctorUpdateOne {
	_u.mutation.ClearQualifications()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdateOne) SetExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableExperienceYears(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdateOne) AddExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *DoctorUpdateOne) SetLanguages(v []string) *DoctorUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *DoctorUpdateOne) AppendLanguages(v []string) *DoctorUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *DoctorUpdateOne) ClearLanguages() *DoctorUpdateOne {
	_u.mutation.ClearLanguages()
	return _u
}

// SetBioEn sets the "bio_en" field.
func (_u *DoctorUpdateOne) SetBioEn(v string) *DoctorUpdateOne {
	_u.mutation.SetBioEn(v)
	return _u
}

// SetNillableBioEn sets the "bio_en" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableBioEn(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetBioEn(*v)
	}
	return _u
}

// ClearBioEn clears the value of the "bio_en" field.
func (_u *DoctorUpdateOne) ClearBioEn() *DoctorUpdateOne {
	_u.mutation.ClearBioEn()
	return _u
}

// SetBioAr sets the "bio_ar" field.
func (_u *DoctorUpdateOne) SetBioAr(v string) *DoctorUpdateOne {
	_u.mutation.SetBioAr(v)
	return _u
}

// SetNillableBioAr sets the "bio_ar" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableBioAr(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetBioAr(*v)
	}
	return _u
}

// ClearBioAr clears the value of the "bio_ar" field.
func (_u *DoctorUpdateOne) ClearBioAr() *DoctorUpdateOne {
	_u.mutation.ClearBioAr()
	return _u
}

// SetImage sets the "image" field.
func (_u *DoctorUpdateOne) SetImage(v string) *DoctorUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableImage(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *DoctorUpdateOne) ClearImage() *DoctorUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdateOne) SetConsultationFee(v float64) *DoctorUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultationFee(v *float64) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdateOne) AddConsultationFee(v float64) *DoctorUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// ClearConsultationFee clears the value of the "consultation_fee" field.
func (_u *DoctorUpdateOne) ClearConsultationFee() *DoctorUpdateOne {
	_u.mutation.ClearConsultationFee()
	return _u
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (_u *DoctorUpdateOne) SetTelemedicineAvailable(v bool) *DoctorUpdateOne {
	_u.mutation.SetTelemedicineAvailable(v)
	return _u
}

// SetNillableTelemedicineAvailable sets the "telemedicine_available" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTelemedicineAvailable(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetTelemedicineAvailable(*v)
	}
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *DoctorUpdateOne) SetMetaTitleEn(v string) *DoctorUpdateOne {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableMetaTitleEn(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *DoctorUpdateOne) ClearMetaTitleEn() *DoctorUpdateOne {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *DoctorUpdateOne) SetMetaTitleAr(v string) *DoctorUpdateOne {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableMetaTitleAr(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *DoctorUpdateOne) ClearMetaTitleAr() *DoctorUpdateOne {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *DoctorUpdateOne) SetMetaDescriptionEn(v string) *DoctorUpdateOne {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableMetaDescriptionEn(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *DoctorUpdateOne) ClearMetaDescriptionEn() *DoctorUpdateOne {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *DoctorUpdateOne) SetMetaDescriptionAr(v string) *DoctorUpdateOne {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableMetaDescriptionAr(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *DoctorUpdateOne) ClearMetaDescriptionAr() *DoctorUpdateOne {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_u *DoctorUpdateOne) SetHospital(v *Hospital) *DoctorUpdateOne {
	return _u.SetHospitalID(v.ID)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (_u *DoctorUpdateOne) ClearHospital() *DoctorUpdateOne {
	_u.mutation.ClearHospital()
	return _u
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := doctor.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := doctor.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := doctor.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Doctor.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleEn(); ok {
		if err := doctor.TitleEnValidator(v); err != nil {
			return &ValidationError{Name: "title_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleAr(); ok {
		if err := doctor.TitleArValidator(v); err != nil {
			return &ValidationError{Name: "title_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.title_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Image(); ok {
		if err := doctor.ImageValidator(v); err != nil {
			return &ValidationError{Name: "image", err: fmt.Errorf(`repo: validator failed for field "Doctor.image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := doctor.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := doctor.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.meta_title_ar": %w`, err)}
		}
	}
	if _u.mutation.HospitalCleared() && len(_u.mutation.HospitalIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Doctor.hospital"`)
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(doctor.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(doctor.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(doctor.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(doctor.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(doctor.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(doctor.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(doctor.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(doctor.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(doctor.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.TitleEn(); ok {
		_spec.SetField(doctor.FieldTitleEn, field.TypeString, value)
	}
	if _u.mutation.TitleEnCleared() {
		_spec.ClearField(doctor.FieldTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.TitleAr(); ok {
		_spec.SetField(doctor.FieldTitleAr, field.TypeString, value)
	}
	if _u.mutation.TitleArCleared() {
		_spec.ClearField(doctor.FieldTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.SpecialtiesEn(); ok {
		_spec.SetField(doctor.FieldSpecialtiesEn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialtiesEn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldSpecialtiesEn, value)
		})
	}
	if _u.mutation.SpecialtiesEnCleared() {
		_spec.ClearField(doctor.FieldSpecialtiesEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecialtiesAr(); ok {
		_spec.SetField(doctor.FieldSpecialtiesAr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialtiesAr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldSpecialtiesAr, value)
		})
	}
	if _u.mutation.SpecialtiesArCleared() {
		_spec.ClearField(doctor.FieldSpecialtiesAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.Qualifications(); ok {
		_spec.SetField(doctor.FieldQualifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQualifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldQualifications, value)
		})
	}
	if _u.mutation.QualificationsCleared() {
		_spec.ClearField(doctor.FieldQualifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(doctor.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(doctor.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.BioEn(); ok {
		_spec.SetField(doctor.FieldBioEn, field.TypeString, value)
	}
	if _u.mutation.BioEnCleared() {
		_spec.ClearField(doctor.FieldBioEn, field.TypeString)
	}
	if value, ok := _u.mutation.BioAr(); ok {
		_spec.SetField(doctor.FieldBioAr, field.TypeString, value)
	}
	if _u.mutation.BioArCleared() {
		_spec.ClearField(doctor.FieldBioAr, field.TypeString)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(doctor.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(doctor.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeFloat64, value)
	}
	if _u.mutation.ConsultationFeeCleared() {
		_spec.ClearField(doctor.FieldConsultationFee, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TelemedicineAvailable(); ok {
		_spec.SetField(doctor.FieldTelemedicineAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(doctor.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(doctor.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(doctor.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(doctor.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(doctor.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(doctor.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(doctor.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(doctor.FieldMetaDescriptionAr, field.TypeString)
	}
	if _u.mutation.HospitalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctor.HospitalTable,
			Columns: []string{doctor.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HospitalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctor.HospitalTable,
			Columns: []string{doctor.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
