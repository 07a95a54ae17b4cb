// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *DoctorCreate) SetPublished(v bool) *DoctorCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *DoctorCreate) SetNillablePublished(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *DoctorCreate) SetPublishedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillablePublishedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *DoctorCreate) SetIsArchived(v bool) *DoctorCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableIsArchived(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *DoctorCreate) SetArchivedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableArchivedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetHospitalID sets the "hospital_id" field.
func (_c *DoctorCreate) SetHospitalID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetHospitalID(v)
	return _c
}

// SetNameEn sets the "name_en" field.
func (_c *DoctorCreate) SetNameEn(v string) *DoctorCreate {
	_c.mutation.SetNameEn(v)
	return _c
}

// SetNameAr sets the "name_ar" field.
func (_c *DoctorCreate) SetNameAr(v string) *DoctorCreate {
	_c.mutation.SetNameAr(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *DoctorCreate) SetSlug(v string) *DoctorCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetTitleEn sets the "title_en" field.
func (_c *DoctorCreate) SetTitleEn(v string) *DoctorCreate {
	_c.mutation.SetTitleEn(v)
	return _c
}

// SetNillableTitleEn sets the "title_en" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTitleEn(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTitleEn(*v)
	}
	return _c
}

// SetTitleAr sets the "title_ar" field.
func (_c *DoctorCreate) SetTitleAr(v string) *DoctorCreate {
	_c.mutation.SetTitleAr(v)
	return _c
}

// SetNillableTitleAr sets the "title_ar" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTitleAr(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTitleAr(*v)
	}
	return _c
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (_c *DoctorCreate) SetSpecialtiesEn(v []string) *DoctorCreate {
	_c.mutation.SetSpecialtiesEn(v)
	return _c
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (_c *DoctorCreate) SetSpecialtiesAr(v []string) *DoctorCreate {
	_c.mutation.SetSpecialtiesAr(v)
	return _c
}

// SetQualifications sets the "qualifications" field.
func (_c *DoctorCreate) SetQualifications(v []string) *DoctorCreate {
	_c.mutation.SetQualifications(v)
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *DoctorCreate) SetExperienceYears(v int) *DoctorCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableExperienceYears(v *int) *DoctorCreate {
	if v != nil {
		_c.SetExperienceYears(*v)
	}
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *DoctorCreate) SetLanguages(v []string) *DoctorCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetBioEn sets the "bio_en" field.
func (_c *DoctorCreate) SetBioEn(v string) *DoctorCreate {
	_c.mutation.SetBioEn(v)
	return _c
}

// SetNillableBioEn sets the "bio_en" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableBioEn(v *string) *DoctorCreate {
	if v != nil {
		_c.SetBioEn(*v)
	}
	return _c
}

// SetBioAr sets the "bio_ar" field.
func (_c *DoctorCreate) SetBioAr(v string) *DoctorCreate {
	_c.mutation.SetBioAr(v)
	return _c
}

// SetNillableBioAr sets the "bio_ar" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableBioAr(v *string) *DoctorCreate {
	if v != nil {
		_c.SetBioAr(*v)
	}
	return _c
}

// SetImage sets the "image" field.
func (_c *DoctorCreate) SetImage(v string) *DoctorCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableImage(v *string) *DoctorCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *DoctorCreate) SetConsultationFee(v float64) *DoctorCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableConsultationFee(v *float64) *DoctorCreate {
	if v != nil {
		_c.SetConsultationFee(*v)
	}
	return _c
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (_c *DoctorCreate) SetTelemedicineAvailable(v bool) *DoctorCreate {
	_c.mutation.SetTelemedicineAvailable(v)
	return _c
}

// SetNillableTelemedicineAvailable sets the "telemedicine_available" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTelemedicineAvailable(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetTelemedicineAvailable(*v)
	}
	return _c
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_c *DoctorCreate) SetMetaTitleEn(v string) *DoctorCreate {
	_c.mutation.SetMetaTitleEn(v)
	return _c
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableMetaTitleEn(v *string) *DoctorCreate {
	if v != nil {
		_c.SetMetaTitleEn(*v)
	}
	return _c
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_c *DoctorCreate) SetMetaTitleAr(v string) *DoctorCreate {
	_c.mutation.SetMetaTitleAr(v)
	return _c
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableMetaTitleAr(v *string) *DoctorCreate {
	if v != nil {
		_c.SetMetaTitleAr(*v)
	}
	return _c
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_c *DoctorCreate) SetMetaDescriptionEn(v string) *DoctorCreate {
	_c.mutation.SetMetaDescriptionEn(v)
	return _c
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableMetaDescriptionEn(v *string) *DoctorCreate {
	if v != nil {
		_c.SetMetaDescriptionEn(*v)
	}
	return _c
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_c *DoctorCreate) SetMetaDescriptionAr(v string) *DoctorCreate {
	_c.mutation.SetMetaDescriptionAr(v)
	return _c
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableMetaDescriptionAr(v *string) *DoctorCreate {
	if v != nil {
		_c.SetMetaDescriptionAr(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_c *DoctorCreate) SetHospital(v *Hospital) *DoctorCreate {
	return _c.SetHospitalID(v.ID)
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := doctor.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := doctor.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		v := doctor.DefaultExperienceYears
		_c.mutation.SetExperienceYears(v)
	}
	if _, ok := _c.mutation.TelemedicineAvailable(); !ok {
		v := doctor.DefaultTelemedicineAvailable
		_c.mutation.SetTelemedicineAvailable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "Doctor.published"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "Doctor.is_archived"`)}
	}
	if _, ok := _c.mutation.HospitalID(); !ok {
		return &ValidationError{Name: "hospital_id", err: errors.New(`repo: missing required field "Doctor.hospital_id"`)}
	}
	if _, ok := _c.mutation.NameEn(); !ok {
		return &ValidationError{Name: "name_en", err: errors.New(`repo: missing required field "Doctor.name_en"`)}
	}
	if v, ok := _c.mutation.NameEn(); ok {
		if err := doctor.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.name_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameAr(); !ok {
		return &ValidationError{Name: "name_ar", err: errors.New(`repo: missing required field "Doctor.name_ar"`)}
	}
	if v, ok := _c.mutation.NameAr(); ok {
		if err := doctor.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.name_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Doctor.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := doctor.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Doctor.slug": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TitleEn(); ok {
		if err := doctor.TitleEnValidator(v); err != nil {
			return &ValidationError{Name: "title_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.title_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TitleAr(); ok {
		if err := doctor.TitleArValidator(v); err != nil {
			return &ValidationError{Name: "title_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.title_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		return &ValidationError{Name: "experience_years", err: errors.New(`repo: missing required field "Doctor.experience_years"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Image(); ok {
		if err := doctor.ImageValidator(v); err != nil {
			return &ValidationError{Name: "image", err: fmt.Errorf(`repo: validator failed for field "Doctor.image": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TelemedicineAvailable(); !ok {
		return &ValidationError{Name: "telemedicine_available", err: errors.New(`repo: missing required field "Doctor.telemedicine_available"`)}
	}
	if v, ok := _c.mutation.MetaTitleEn(); ok {
		if err := doctor.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Doctor.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MetaTitleAr(); ok {
		if err := doctor.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Doctor.meta_title_ar": %w`, err)}
		}
	}
	if len(_c.mutation.HospitalIDs()) == 0 {
		return &ValidationError{Name: "hospital", err: errors.New(`repo: missing required edge "Doctor.hospital"`)}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(doctor.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(doctor.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(doctor.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(doctor.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.NameEn(); ok {
		_spec.SetField(doctor.FieldNameEn, field.TypeString, value)
		_node.NameEn = value
	}
	if value, ok := _c.mutation.NameAr(); ok {
		_spec.SetField(doctor.FieldNameAr, field.TypeString, value)
		_node.NameAr = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(doctor.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.TitleEn(); ok {
		_spec.SetField(doctor.FieldTitleEn, field.TypeString, value)
		_node.TitleEn = &value
	}
	if value, ok := _c.mutation.TitleAr(); ok {
		_spec.SetField(doctor.FieldTitleAr, field.TypeString, value)
		_node.TitleAr = &value
	}
	if value, ok := _c.mutation.SpecialtiesEn(); ok {
		_spec.SetField(doctor.FieldSpecialtiesEn, field.TypeJSON, value)
		_node.SpecialtiesEn = value
	}
	if value, ok := _c.mutation.SpecialtiesAr(); ok {
		_spec.SetField(doctor.FieldSpecialtiesAr, field.TypeJSON, value)
		_node.SpecialtiesAr = value
	}
	if value, ok := _c.mutation.Qualifications(); ok {
		_spec.SetField(doctor.FieldQualifications, field.TypeJSON, value)
		_node.Qualifications = value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(doctor.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.BioEn(); ok {
		_spec.SetField(doctor.FieldBioEn, field.TypeString, value)
		_node.BioEn = value
	}
	if value, ok := _c.mutation.BioAr(); ok {
		_spec.SetField(doctor.FieldBioAr, field.TypeString, value)
		_node.BioAr = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(doctor.FieldImage, field.TypeString, value)
		_node.Image = &value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeFloat64, value)
		_node.ConsultationFee = &value
	}
	if value, ok := _c.mutation.TelemedicineAvailable(); ok {
		_spec.SetField(doctor.FieldTelemedicineAvailable, field.TypeBool, value)
		_node.TelemedicineAvailable = value
	}
	if value, ok := _c.mutation.MetaTitleEn(); ok {
		_spec.SetField(doctor.FieldMetaTitleEn, field.TypeString, value)
		_node.MetaTitleEn = &value
	}
	if value, ok := _c.mutation.MetaTitleAr(); ok {
		_spec.SetField(doctor.FieldMetaTitleAr, field.TypeString, value)
		_node.MetaTitleAr = &value
	}
	if value, ok := _c.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(doctor.FieldMetaDescriptionEn, field.TypeString, value)
		_node.MetaDescriptionEn = value
	}
	if value, ok := _c.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(doctor.FieldMetaDescriptionAr, field.TypeString, value)
		_node.MetaDescriptionAr = value
	}
	if nodes := _c.mutation.HospitalIDs(); len(nodes) > 0 {
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
		_node.HospitalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetPublished sets the "published" field.
func (u *DoctorUpsert) SetPublished(v bool) *DoctorUpsert {
	u.Set(doctor.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *DoctorUpsert) UpdatePublished() *DoctorUpsert {
	u.SetExcluded(doctor.FieldPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *DoctorUpsert) SetPublishedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdatePublishedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *DoctorUpsert) ClearPublishedAt() *DoctorUpsert {
	u.SetNull(doctor.FieldPublishedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *DoctorUpsert) SetIsArchived(v bool) *DoctorUpsert {
	u.Set(doctor.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateIsArchived() *DoctorUpsert {
	u.SetExcluded(doctor.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *DoctorUpsert) SetArchivedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateArchivedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *DoctorUpsert) ClearArchivedAt() *DoctorUpsert {
	u.SetNull(doctor.FieldArchivedAt)
	return u
}

// SetHospitalID sets the "hospital_id" field.
func (u *DoctorUpsert) SetHospitalID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldHospitalID, v)
	return u
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateHospitalID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldHospitalID)
	return u
}

// SetNameEn sets the "name_en" field.
func (u *DoctorUpsert) SetNameEn(v string) *DoctorUpsert {
	u.Set(doctor.FieldNameEn, v)
	return u
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateNameEn() *DoctorUpsert {
	u.SetExcluded(doctor.FieldNameEn)
	return u
}

// SetNameAr sets the "name_ar" field.
func (u *DoctorUpsert) SetNameAr(v string) *DoctorUpsert {
	u.Set(doctor.FieldNameAr, v)
	return u
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateNameAr() *DoctorUpsert {
	u.SetExcluded(doctor.FieldNameAr)
	return u
}

// SetSlug sets the "slug" field.
func (u *DoctorUpsert) SetSlug(v string) *DoctorUpsert {
	u.Set(doctor.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSlug() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSlug)
	return u
}

// SetTitleEn sets the "title_en" field.
func (u *DoctorUpsert) SetTitleEn(v string) *DoctorUpsert {
	u.Set(doctor.FieldTitleEn, v)
	return u
}

// UpdateTitleEn sets the "title_en" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateTitleEn() *DoctorUpsert {
	u.SetExcluded(doctor.FieldTitleEn)
	return u
}

// ClearTitleEn clears the value of the "title_en" field.
func (u *DoctorUpsert) ClearTitleEn() *DoctorUpsert {
	u.SetNull(doctor.FieldTitleEn)
	return u
}

// SetTitleAr sets the "title_ar" field.
func (u *DoctorUpsert) SetTitleAr(v string) *DoctorUpsert {
	u.Set(doctor.FieldTitleAr, v)
	return u
}

// UpdateTitleAr sets the "title_ar" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateTitleAr() *DoctorUpsert {
	u.SetExcluded(doctor.FieldTitleAr)
	return u
}

// ClearTitleAr clears the value of the "title_ar" field.
func (u *DoctorUpsert) ClearTitleAr() *DoctorUpsert {
	u.SetNull(doctor.FieldTitleAr)
	return u
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (u *DoctorUpsert) SetSpecialtiesEn(v []string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialtiesEn, v)
	return u
}

// UpdateSpecialtiesEn sets the "specialties_en" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialtiesEn() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialtiesEn)
	return u
}

// ClearSpecialtiesEn clears the value of the "specialties_en" field.
func (u *DoctorUpsert) ClearSpecialtiesEn() *DoctorUpsert {
	u.SetNull(doctor.FieldSpecialtiesEn)
	return u
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (u *DoctorUpsert) SetSpecialtiesAr(v []string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialtiesAr, v)
	return u
}

// UpdateSpecialtiesAr sets the "specialties_ar" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialtiesAr() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialtiesAr)
	return u
}

// ClearSpecialtiesAr clears the value of the "specialties_ar" field.
func (u *DoctorUpsert) ClearSpecialtiesAr() *DoctorUpsert {
	u.SetNull(doctor.FieldSpecialtiesAr)
	return u
}

// SetQualifications sets the "qualifications" field.
func (u *DoctorUpsert) SetQualifications(v []string) *DoctorUpsert {
	u.Set(doctor.FieldQualifications, v)
	return u
}

// UpdateQualifications sets the "qualifications" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateQualifications() *DoctorUpsert {
	u.SetExcluded(doctor.FieldQualifications)
	return u
}

// ClearQualifications clears the value of the "qualifications" field.
func (u *DoctorUpsert) ClearQualifications() *DoctorUpsert {
	u.SetNull(doctor.FieldQualifications)
	return u
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsert) SetExperienceYears(v int) *DoctorUpsert {
	u.Set(doctor.FieldExperienceYears, v)
	return u
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateExperienceYears() *DoctorUpsert {
	u.SetExcluded(doctor.FieldExperienceYears)
	return u
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsert) AddExperienceYears(v int) *DoctorUpsert {
	u.Add(doctor.FieldExperienceYears, v)
	return u
}

// SetLanguages sets the "languages" field.
func (u *DoctorUpsert) SetLanguages(v []string) *DoctorUpsert {
	u.Set(doctor.FieldLanguages, v)
	return u
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateLanguages() *DoctorUpsert {
	u.SetExcluded(doctor.FieldLanguages)
	return u
}

// ClearLanguages clears the value of the "languages" field.
func (u *DoctorUpsert) ClearLanguages() *DoctorUpsert {
	u.SetNull(doctor.FieldLanguages)
	return u
}

// SetBioEn sets the "bio_en" field.
func (u *DoctorUpsert) SetBioEn(v string) *DoctorUpsert {
	u.Set(doctor.FieldBioEn, v)
	return u
}

// UpdateBioEn sets the "bio_en" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateBioEn() *DoctorUpsert {
	u.SetExcluded(doctor.FieldBioEn)
	return u
}

// ClearBioEn clears the value of the "bio_en" field.
func (u *DoctorUpsert) ClearBioEn() *DoctorUpsert {
	u.SetNull(doctor.FieldBioEn)
	return u
}

// SetBioAr sets the "bio_ar" field.
func (u *DoctorUpsert) SetBioAr(v string) *DoctorUpsert {
	u.Set(doctor.FieldBioAr, v)
	return u
}

// UpdateBioAr sets the "bio_ar" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateBioAr() *DoctorUpsert {
	u.SetExcluded(doctor.FieldBioAr)
	return u
}

// ClearBioAr clears the value of the "bio_ar" field.
func (u *DoctorUpsert) ClearBioAr() *DoctorUpsert {
	u.SetNull(doctor.FieldBioAr)
	return u
}

// SetImage sets the "image" field.
func (u *DoctorUpsert) SetImage(v string) *DoctorUpsert {
	u.Set(doctor.FieldImage, v)
	return u
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateImage() *DoctorUpsert {
	u.SetExcluded(doctor.FieldImage)
	return u
}

// ClearImage clears the value of the "image" field.
func (u *DoctorUpsert) ClearImage() *DoctorUpsert {
	u.SetNull(doctor.FieldImage)
	return u
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsert) SetConsultationFee(v float64) *DoctorUpsert {
	u.Set(doctor.FieldConsultationFee, v)
	return u
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateConsultationFee() *DoctorUpsert {
	u.SetExcluded(doctor.FieldConsultationFee)
	return u
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsert) AddConsultationFee(v float64) *DoctorUpsert {
	u.Add(doctor.FieldConsultationFee, v)
	return u
}

// ClearConsultationFee clears the value of the "consultation_fee" field.
func (u *DoctorUpsert) ClearConsultationFee() *DoctorUpsert {
	u.SetNull(doctor.FieldConsultationFee)
	return u
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (u *DoctorUpsert) SetTelemedicineAvailable(v bool) *DoctorUpsert {
	u.Set(doctor.FieldTelemedicineAvailable, v)
	return u
}

// UpdateTelemedicineAvailable sets the "telemedicine_available" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateTelemedicineAvailable() *DoctorUpsert {
	u.SetExcluded(doctor.FieldTelemedicineAvailable)
	return u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *DoctorUpsert) SetMetaTitleEn(v string) *DoctorUpsert {
	u.Set(doctor.FieldMetaTitleEn, v)
	return u
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateMetaTitleEn() *DoctorUpsert {
	u.SetExcluded(doctor.FieldMetaTitleEn)
	return u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *DoctorUpsert) ClearMetaTitleEn() *DoctorUpsert {
	u.SetNull(doctor.FieldMetaTitleEn)
	return u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *DoctorUpsert) SetMetaTitleAr(v string) *DoctorUpsert {
	u.Set(doctor.FieldMetaTitleAr, v)
	return u
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateMetaTitleAr() *DoctorUpsert {
	u.SetExcluded(doctor.FieldMetaTitleAr)
	return u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *DoctorUpsert) ClearMetaTitleAr() *DoctorUpsert {
	u.SetNull(doctor.FieldMetaTitleAr)
	return u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *DoctorUpsert) SetMetaDescriptionEn(v string) *DoctorUpsert {
	u.Set(doctor.FieldMetaDescriptionEn, v)
	return u
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateMetaDescriptionEn() *DoctorUpsert {
	u.SetExcluded(doctor.FieldMetaDescriptionEn)
	return u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *DoctorUpsert) ClearMetaDescriptionEn() *DoctorUpsert {
	u.SetNull(doctor.FieldMetaDescriptionEn)
	return u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *DoctorUpsert) SetMetaDescriptionAr(v string) *DoctorUpsert {
	u.Set(doctor.FieldMetaDescriptionAr, v)
	return u
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateMetaDescriptionAr() *DoctorUpsert {
	u.SetExcluded(doctor.FieldMetaDescriptionAr)
	return u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *DoctorUpsert) ClearMetaDescriptionAr() *DoctorUpsert {
	u.SetNull(doctor.FieldMetaDescriptionAr)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *DoctorUpsertOne) SetPublished(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdatePublished() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *DoctorUpsertOne) SetPublishedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdatePublishedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *DoctorUpsertOne) ClearPublishedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *DoctorUpsertOne) SetIsArchived(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateIsArchived() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *DoctorUpsertOne) SetArchivedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateArchivedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *DoctorUpsertOne) ClearArchivedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearArchivedAt()
	})
}

// SetHospitalID sets the "hospital_id" field.
func (u *DoctorUpsertOne) SetHospitalID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetHospitalID(v)
	})
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateHospitalID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateHospitalID()
	})
}

// SetNameEn sets the "name_en" field.
func (u *DoctorUpsertOne) SetNameEn(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateNameEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *DoctorUpsertOne) SetNameAr(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateNameAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *DoctorUpsertOne) SetSlug(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSlug() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSlug()
	})
}

// SetTitleEn sets the "title_en" field.
func (u *DoctorUpsertOne) SetTitleEn(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTitleEn(v)
	})
}

// UpdateTitleEn sets the "title_en" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateTitleEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTitleEn()
	})
}

// ClearTitleEn clears the value of the "title_en" field.
func (u *DoctorUpsertOne) ClearTitleEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearTitleEn()
	})
}

// SetTitleAr sets the "title_ar" field.
func (u *DoctorUpsertOne) SetTitleAr(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTitleAr(v)
	})
}

// UpdateTitleAr sets the "title_ar" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateTitleAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTitleAr()
	})
}

// ClearTitleAr clears the value of the "title_ar" field.
func (u *DoctorUpsertOne) ClearTitleAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearTitleAr()
	})
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (u *DoctorUpsertOne) SetSpecialtiesEn(v []string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialtiesEn(v)
	})
}

// UpdateSpecialtiesEn sets the "specialties_en" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialtiesEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialtiesEn()
	})
}

// ClearSpecialtiesEn clears the value of the "specialties_en" field.
func (u *DoctorUpsertOne) ClearSpecialtiesEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialtiesEn()
	})
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (u *DoctorUpsertOne) SetSpecialtiesAr(v []string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialtiesAr(v)
	})
}

// UpdateSpecialtiesAr sets the "specialties_ar" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialtiesAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialtiesAr()
	})
}

// ClearSpecialtiesAr clears the value of the "specialties_ar" field.
func (u *DoctorUpsertOne) ClearSpecialtiesAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialtiesAr()
	})
}

// SetQualifications sets the "qualifications" field.
func (u *DoctorUpsertOne) SetQualifications(v []string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetQualifications(v)
	})
}

// UpdateQualifications sets the "qualifications" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateQualifications() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateQualifications()
	})
}

// ClearQualifications clears the value of the "qualifications" field.
func (u *DoctorUpsertOne) ClearQualifications() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearQualifications()
	})
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsertOne) SetExperienceYears(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetExperienceYears(v)
	})
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsertOne) AddExperienceYears(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddExperienceYears(v)
	})
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateExperienceYears() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateExperienceYears()
	})
}

// SetLanguages sets the "languages" field.
func (u *DoctorUpsertOne) SetLanguages(v []string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateLanguages() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *DoctorUpsertOne) ClearLanguages() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearLanguages()
	})
}

// SetBioEn sets the "bio_en" field.
func (u *DoctorUpsertOne) SetBioEn(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBioEn(v)
	})
}

// UpdateBioEn sets the "bio_en" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateBioEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBioEn()
	})
}

// ClearBioEn clears the value of the "bio_en" field.
func (u *DoctorUpsertOne) ClearBioEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBioEn()
	})
}

// SetBioAr sets the "bio_ar" field.
func (u *DoctorUpsertOne) SetBioAr(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBioAr(v)
	})
}

// UpdateBioAr sets the "bio_ar" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateBioAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBioAr()
	})
}

// ClearBioAr clears the value of the "bio_ar" field.
func (u *DoctorUpsertOne) ClearBioAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBioAr()
	})
}

// SetImage sets the "image" field.
func (u *DoctorUpsertOne) SetImage(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetImage(v)
	})
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateImage() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateImage()
	})
}

// ClearImage clears the value of the "image" field.
func (u *DoctorUpsertOne) ClearImage() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearImage()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsertOne) SetConsultationFee(v float64) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsertOne) AddConsultationFee(v float64) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateConsultationFee() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationFee()
	})
}

// ClearConsultationFee clears the value of the "consultation_fee" field.
func (u *DoctorUpsertOne) ClearConsultationFee() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearConsultationFee()
	})
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (u *DoctorUpsertOne) SetTelemedicineAvailable(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTelemedicineAvailable(v)
	})
}

// UpdateTelemedicineAvailable sets the "telemedicine_available" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateTelemedicineAvailable() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTelemedicineAvailable()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *DoctorUpsertOne) SetMetaTitleEn(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateMetaTitleEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *DoctorUpsertOne) ClearMetaTitleEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *DoctorUpsertOne) SetMetaTitleAr(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateMetaTitleAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *DoctorUpsertOne) ClearMetaTitleAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *DoctorUpsertOne) SetMetaDescriptionEn(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateMetaDescriptionEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *DoctorUpsertOne) ClearMetaDescriptionEn() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *DoctorUpsertOne) SetMetaDescriptionAr(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateMetaDescriptionAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *DoctorUpsertOne) ClearMetaDescriptionAr() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *DoctorUpsertBulk) SetPublished(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdatePublished() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *DoctorUpsertBulk) SetPublishedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdatePublishedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *DoctorUpsertBulk) ClearPublishedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *DoctorUpsertBulk) SetIsArchived(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateIsArchived() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *DoctorUpsertBulk) SetArchivedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateArchivedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *DoctorUpsertBulk) ClearArchivedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearArchivedAt()
	})
}

// SetHospitalID sets the "hospital_id" field.
func (u *DoctorUpsertBulk) SetHospitalID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetHospitalID(v)
	})
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateHospitalID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateHospitalID()
	})
}

// SetNameEn sets the "name_en" field.
func (u *DoctorUpsertBulk) SetNameEn(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateNameEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *DoctorUpsertBulk) SetNameAr(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateNameAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *DoctorUpsertBulk) SetSlug(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSlug() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSlug()
	})
}

// SetTitleEn sets the "title_en" field.
func (u *DoctorUpsertBulk) SetTitleEn(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTitleEn(v)
	})
}

// UpdateTitleEn sets the "title_en" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateTitleEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTitleEn()
	})
}

// ClearTitleEn clears the value of the "title_en" field.
func (u *DoctorUpsertBulk) ClearTitleEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearTitleEn()
	})
}

// SetTitleAr sets the "title_ar" field.
func (u *DoctorUpsertBulk) SetTitleAr(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTitleAr(v)
	})
}

// UpdateTitleAr sets the "title_ar" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateTitleAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTitleAr()
	})
}

// ClearTitleAr clears the value of the "title_ar" field.
func (u *DoctorUpsertBulk) ClearTitleAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearTitleAr()
	})
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (u *DoctorUpsertBulk) SetSpecialtiesEn(v []string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialtiesEn(v)
	})
}

// UpdateSpecialtiesEn sets the "specialties_en" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialtiesEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialtiesEn()
	})
}

// ClearSpecialtiesEn clears the value of the "specialties_en" field.
func (u *DoctorUpsertBulk) ClearSpecialtiesEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialtiesEn()
	})
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (u *DoctorUpsertBulk) SetSpecialtiesAr(v []string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialtiesAr(v)
	})
}

// UpdateSpecialtiesAr sets the "specialties_ar" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialtiesAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialtiesAr()
	})
}

// ClearSpecialtiesAr clears the value of the "specialties_ar" field.
func (u *DoctorUpsertBulk) ClearSpecialtiesAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialtiesAr()
	})
}

// SetQualifications sets the "qualifications" field.
func (u *DoctorUpsertBulk) SetQualifications(v []string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetQualifications(v)
	})
}

// UpdateQualifications sets the "qualifications" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateQualifications() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateQualifications()
	})
}

// ClearQualifications clears the value of the "qualifications" field.
func (u *DoctorUpsertBulk) ClearQualifications() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearQualifications()
	})
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsertBulk) SetExperienceYears(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetExperienceYears(v)
	})
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsertBulk) AddExperienceYears(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddExperienceYears(v)
	})
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateExperienceYears() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateExperienceYears()
	})
}

// SetLanguages sets the "languages" field.
func (u *DoctorUpsertBulk) SetLanguages(v []string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateLanguages() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *DoctorUpsertBulk) ClearLanguages() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearLanguages()
	})
}

// SetBioEn sets the "bio_en" field.
func (u *DoctorUpsertBulk) SetBioEn(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBioEn(v)
	})
}

// UpdateBioEn sets the "bio_en" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateBioEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBioEn()
	})
}

// ClearBioEn clears the value of the "bio_en" field.
func (u *DoctorUpsertBulk) ClearBioEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBioEn()
	})
}

// SetBioAr sets the "bio_ar" field.
func (u *DoctorUpsertBulk) SetBioAr(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBioAr(v)
	})
}

// UpdateBioAr sets the "bio_ar" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateBioAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBioAr()
	})
}

// ClearBioAr clears the value of the "bio_ar" field.
func (u *DoctorUpsertBulk) ClearBioAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBioAr()
	})
}

// SetImage sets the "image" field.
func (u *DoctorUpsertBulk) SetImage(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetImage(v)
	})
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateImage() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateImage()
	})
}

// ClearImage clears the value of the "image" field.
func (u *DoctorUpsertBulk) ClearImage() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearImage()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsertBulk) SetConsultationFee(v float64) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsertBulk) AddConsultationFee(v float64) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateConsultationFee() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationFee()
	})
}

// ClearConsultationFee clears the value of the "consultation_fee" field.
func (u *DoctorUpsertBulk) ClearConsultationFee() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearConsultationFee()
	})
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (u *DoctorUpsertBulk) SetTelemedicineAvailable(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTelemedicineAvailable(v)
	})
}

// UpdateTelemedicineAvailable sets the "telemedicine_available" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateTelemedicineAvailable() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTelemedicineAvailable()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *DoctorUpsertBulk) SetMetaTitleEn(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateMetaTitleEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *DoctorUpsertBulk) ClearMetaTitleEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *DoctorUpsertBulk) SetMetaTitleAr(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateMetaTitleAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *DoctorUpsertBulk) ClearMetaTitleAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *DoctorUpsertBulk) SetMetaDescriptionEn(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateMetaDescriptionEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *DoctorUpsertBulk) ClearMetaDescriptionEn() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *DoctorUpsertBulk) SetMetaDescriptionAr(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateMetaDescriptionAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *DoctorUpsertBulk) ClearMetaDescriptionAr() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
