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
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// HospitalCreate is the builder for creating a Hospital entity.
type HospitalCreate struct {
	config
	mutation *HospitalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HospitalCreate) SetCreatedAt(v time.Time) *HospitalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableCreatedAt(v *time.Time) *HospitalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HospitalCreate) SetUpdatedAt(v time.Time) *HospitalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableUpdatedAt(v *time.Time) *HospitalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *HospitalCreate) SetPublished(v bool) *HospitalCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *HospitalCreate) SetNillablePublished(v *bool) *HospitalCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *HospitalCreate) SetPublishedAt(v time.Time) *HospitalCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *HospitalCreate) SetNillablePublishedAt(v *time.Time) *HospitalCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *HospitalCreate) SetIsArchived(v bool) *HospitalCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableIsArchived(v *bool) *HospitalCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *HospitalCreate) SetArchivedAt(v time.Time) *HospitalCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableArchivedAt(v *time.Time) *HospitalCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetNameEn sets the "name_en" field.
func (_c *HospitalCreate) SetNameEn(v string) *HospitalCreate {
	_c.mutation.SetNameEn(v)
	return _c
}

// SetNameAr sets the "name_ar" field.
func (_c *HospitalCreate) SetNameAr(v string) *HospitalCreate {
	_c.mutation.SetNameAr(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *HospitalCreate) SetSlug(v string) *HospitalCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescriptionEn sets the "description_en" field.
func (_c *HospitalCreate) SetDescriptionEn(v string) *HospitalCreate {
	_c.mutation.SetDescriptionEn(v)
	return _c
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableDescriptionEn(v *string) *HospitalCreate {
	if v != nil {
		_c.SetDescriptionEn(*v)
	}
	return _c
}

// SetDescriptionAr sets the "description_ar" field.
func (_c *HospitalCreate) SetDescriptionAr(v string) *HospitalCreate {
	_c.mutation.SetDescriptionAr(v)
	return _c
}

// SetNillableDescriptionAr sets the "description_ar" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableDescriptionAr(v *string) *HospitalCreate {
	if v != nil {
		_c.SetDescriptionAr(*v)
	}
	return _c
}

// SetCityEn sets the "city_en" field.
func (_c *HospitalCreate) SetCityEn(v string) *HospitalCreate {
	_c.mutation.SetCityEn(v)
	return _c
}

// SetCityAr sets the "city_ar" field.
func (_c *HospitalCreate) SetCityAr(v string) *HospitalCreate {
	_c.mutation.SetCityAr(v)
	return _c
}

// SetCountryEn sets the "country_en" field.
func (_c *HospitalCreate) SetCountryEn(v string) *HospitalCreate {
	_c.mutation.SetCountryEn(v)
	return _c
}

// SetNillableCountryEn sets the "country_en" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableCountryEn(v *string) *HospitalCreate {
	if v != nil {
		_c.SetCountryEn(*v)
	}
	return _c
}

// SetCountryAr sets the "country_ar" field.
func (_c *HospitalCreate) SetCountryAr(v string) *HospitalCreate {
	_c.mutation.SetCountryAr(v)
	return _c
}

// SetNillableCountryAr sets the "country_ar" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableCountryAr(v *string) *HospitalCreate {
	if v != nil {
		_c.SetCountryAr(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *HospitalCreate) SetAddress(v string) *HospitalCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableAddress(v *string) *HospitalCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *HospitalCreate) SetPhone(v string) *HospitalCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *HospitalCreate) SetNillablePhone(v *string) *HospitalCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *HospitalCreate) SetEmail(v string) *HospitalCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableEmail(v *string) *HospitalCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetAccreditations sets the "accreditations" field.
func (_c *HospitalCreate) SetAccreditations(v []string) *HospitalCreate {
	_c.mutation.SetAccreditations(v)
	return _c
}

// SetImages sets the "images" field.
func (_c *HospitalCreate) SetImages(v content.Images) *HospitalCreate {
	_c.mutation.SetImages(v)
	return _c
}

// SetNillableImages sets the "images" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableImages(v *content.Images) *HospitalCreate {
	if v != nil {
		_c.SetImages(*v)
	}
	return _c
}

// SetEstablishedYear sets the "established_year" field.
func (_c *HospitalCreate) SetEstablishedYear(v int) *HospitalCreate {
	_c.mutation.SetEstablishedYear(v)
	return _c
}

// SetNillableEstablishedYear sets the "established_year" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableEstablishedYear(v *int) *HospitalCreate {
	if v != nil {
		_c.SetEstablishedYear(*v)
	}
	return _c
}

// SetBedCount sets the "bed_count" field.
func (_c *HospitalCreate) SetBedCount(v int) *HospitalCreate {
	_c.mutation.SetBedCount(v)
	return _c
}

// SetNillableBedCount sets the "bed_count" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableBedCount(v *int) *HospitalCreate {
	if v != nil {
		_c.SetBedCount(*v)
	}
	return _c
}

// SetLanguagesSupported sets the "languages_supported" field.
func (_c *HospitalCreate) SetLanguagesSupported(v []string) *HospitalCreate {
	_c.mutation.SetLanguagesSupported(v)
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *HospitalCreate) SetFeatured(v bool) *HospitalCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableFeatured(v *bool) *HospitalCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_c *HospitalCreate) SetMetaTitleEn(v string) *HospitalCreate {
	_c.mutation.SetMetaTitleEn(v)
	return _c
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableMetaTitleEn(v *string) *HospitalCreate {
	if v != nil {
		_c.SetMetaTitleEn(*v)
	}
	return _c
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_c *HospitalCreate) SetMetaTitleAr(v string) *HospitalCreate {
	_c.mutation.SetMetaTitleAr(v)
	return _c
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableMetaTitleAr(v *string) *HospitalCreate {
	if v != nil {
		_c.SetMetaTitleAr(*v)
	}
	return _c
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_c *HospitalCreate) SetMetaDescriptionEn(v string) *HospitalCreate {
	_c.mutation.SetMetaDescriptionEn(v)
	return _c
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableMetaDescriptionEn(v *string) *HospitalCreate {
	if v != nil {
		_c.SetMetaDescriptionEn(*v)
	}
	return _c
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_c *HospitalCreate) SetMetaDescriptionAr(v string) *HospitalCreate {
	_c.mutation.SetMetaDescriptionAr(v)
	return _c
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableMetaDescriptionAr(v *string) *HospitalCreate {
	if v != nil {
		_c.SetMetaDescriptionAr(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HospitalCreate) SetID(v uuid.UUID) *HospitalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HospitalCreate) SetNillableID(v *uuid.UUID) *HospitalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by IDs.
func (_c *HospitalCreate) AddDoctorIDs(ids ...uuid.UUID) *HospitalCreate {
	_c.mutation.AddDoctorIDs(ids...)
	return _c
}

// AddDoctors adds the "doctors" edges to the Doctor entity.
func (_c *HospitalCreate) AddDoctors(v ...*Doctor) *HospitalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDoctorIDs(ids...)
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by IDs.
func (_c *HospitalCreate) AddPackageIDs(ids ...uuid.UUID) *HospitalCreate {
	_c.mutation.AddPackageIDs(ids...)
	return _c
}

// AddPackages adds the "packages" edges to the CarePackage entity.
func (_c *HospitalCreate) AddPackages(v ...*CarePackage) *HospitalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPackageIDs(ids...)
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by IDs.
func (_c *HospitalCreate) AddTreatmentIDs(ids ...uuid.UUID) *HospitalCreate {
	_c.mutation.AddTreatmentIDs(ids...)
	return _c
}

// AddTreatments adds the "treatments" edges to the Treatment entity.
func (_c *HospitalCreate) AddTreatments(v ...*Treatment) *HospitalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTreatmentIDs(ids...)
}

// Mutation returns the HospitalMutation object of the builder.
func (_c *HospitalCreate) Mutation() *HospitalMutation {
	return _c.mutation
}

// Save creates the Hospital in the database.
func (_c *HospitalCreate) Save(ctx context.Context) (*Hospital, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HospitalCreate) SaveX(ctx context.Context) *Hospital {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HospitalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HospitalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HospitalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hospital.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hospital.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := hospital.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := hospital.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.CountryEn(); !ok {
		v := hospital.DefaultCountryEn
		_c.mutation.SetCountryEn(v)
	}
	if _, ok := _c.mutation.CountryAr(); !ok {
		v := hospital.DefaultCountryAr
		_c.mutation.SetCountryAr(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := hospital.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := hospital.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HospitalCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Hospital.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Hospital.updated_at"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "Hospital.published"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "Hospital.is_archived"`)}
	}
	if _, ok := _c.mutation.NameEn(); !ok {
		return &ValidationError{Name: "name_en", err: errors.New(`repo: missing required field "Hospital.name_en"`)}
	}
	if v, ok := _c.mutation.NameEn(); ok {
		if err := hospital.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.name_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameAr(); !ok {
		return &ValidationError{Name: "name_ar", err: errors.New(`repo: missing required field "Hospital.name_ar"`)}
	}
	if v, ok := _c.mutation.NameAr(); ok {
		if err := hospital.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.name_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Hospital.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := hospital.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Hospital.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CityEn(); !ok {
		return &ValidationError{Name: "city_en", err: errors.New(`repo: missing required field "Hospital.city_en"`)}
	}
	if v, ok := _c.mutation.CityEn(); ok {
		if err := hospital.CityEnValidator(v); err != nil {
			return &ValidationError{Name: "city_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.city_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CityAr(); !ok {
		return &ValidationError{Name: "city_ar", err: errors.New(`repo: missing required field "Hospital.city_ar"`)}
	}
	if v, ok := _c.mutation.CityAr(); ok {
		if err := hospital.CityArValidator(v); err != nil {
			return &ValidationError{Name: "city_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.city_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CountryEn(); !ok {
		return &ValidationError{Name: "country_en", err: errors.New(`repo: missing required field "Hospital.country_en"`)}
	}
	if v, ok := _c.mutation.CountryEn(); ok {
		if err := hospital.CountryEnValidator(v); err != nil {
			return &ValidationError{Name: "country_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.country_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CountryAr(); !ok {
		return &ValidationError{Name: "country_ar", err: errors.New(`repo: missing required field "Hospital.country_ar"`)}
	}
	if v, ok := _c.mutation.CountryAr(); ok {
		if err := hospital.CountryArValidator(v); err != nil {
			return &ValidationError{Name: "country_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.country_ar": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := hospital.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Hospital.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := hospital.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Hospital.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`repo: missing required field "Hospital.featured"`)}
	}
	if v, ok := _c.mutation.MetaTitleEn(); ok {
		if err := hospital.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Hospital.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MetaTitleAr(); ok {
		if err := hospital.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Hospital.meta_title_ar": %w`, err)}
		}
	}
	return nil
}

func (_c *HospitalCreate) sqlSave(ctx context.Context) (*Hospital, error) {
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

func (_c *HospitalCreate) createSpec() (*Hospital, *sqlgraph.CreateSpec) {
	var (
		_node = &Hospital{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hospital.Table, sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hospital.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hospital.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(hospital.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(hospital.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(hospital.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(hospital.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.NameEn(); ok {
		_spec.SetField(hospital.FieldNameEn, field.TypeString, value)
		_node.NameEn = value
	}
	if value, ok := _c.mutation.NameAr(); ok {
		_spec.SetField(hospital.FieldNameAr, field.TypeString, value)
		_node.NameAr = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(hospital.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.DescriptionEn(); ok {
		_spec.SetField(hospital.FieldDescriptionEn, field.TypeString, value)
		_node.DescriptionEn = value
	}
	if value, ok := _c.mutation.DescriptionAr(); ok {
		_spec.SetField(hospital.FieldDescriptionAr, field.TypeString, value)
		_node.DescriptionAr = value
	}
	if value, ok := _c.mutation.CityEn(); ok {
		_spec.SetField(hospital.FieldCityEn, field.TypeString, value)
		_node.CityEn = value
	}
	if value, ok := _c.mutation.CityAr(); ok {
		_spec.SetField(hospital.FieldCityAr, field.TypeString, value)
		_node.CityAr = value
	}
	if value, ok := _c.mutation.CountryEn(); ok {
		_spec.SetField(hospital.FieldCountryEn, field.TypeString, value)
		_node.CountryEn = value
	}
	if value, ok := _c.mutation.CountryAr(); ok {
		_spec.SetField(hospital.FieldCountryAr, field.TypeString, value)
		_node.CountryAr = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(hospital.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(hospital.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(hospital.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Accreditations(); ok {
		_spec.SetField(hospital.FieldAccreditations, field.TypeJSON, value)
		_node.Accreditations = value
	}
	if value, ok := _c.mutation.Images(); ok {
		_spec.SetField(hospital.FieldImages, field.TypeJSON, value)
		_node.Images = value
	}
	if value, ok := _c.mutation.EstablishedYear(); ok {
		_spec.SetField(hospital.FieldEstablishedYear, field.TypeInt, value)
		_node.EstablishedYear = &value
	}
	if value, ok := _c.mutation.BedCount(); ok {
		_spec.SetField(hospital.FieldBedCount, field.TypeInt, value)
		_node.BedCount = &value
	}
	if value, ok := _c.mutation.LanguagesSupported(); ok {
		_spec.SetField(hospital.FieldLanguagesSupported, field.TypeJSON, value)
		_node.LanguagesSupported = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(hospital.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.MetaTitleEn(); ok {
		_spec.SetField(hospital.FieldMetaTitleEn, field.TypeString, value)
		_node.MetaTitleEn = &value
	}
	if value, ok := _c.mutation.MetaTitleAr(); ok {
		_spec.SetField(hospital.FieldMetaTitleAr, field.TypeString, value)
		_node.MetaTitleAr = &value
	}
	if value, ok := _c.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(hospital.FieldMetaDescriptionEn, field.TypeString, value)
		_node.MetaDescriptionEn = value
	}
	if value, ok := _c.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(hospital.FieldMetaDescriptionAr, field.TypeString, value)
		_node.MetaDescriptionAr = value
	}
	if nodes := _c.mutation.DoctorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PackagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TreatmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Hospital.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HospitalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HospitalCreate) OnConflict(opts ...sql.ConflictOption) *HospitalUpsertOne {
	_c.conflict = opts
	return &HospitalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Hospital.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HospitalCreate) OnConflictColumns(columns ...string) *HospitalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HospitalUpsertOne{
		create: _c,
	}
}

type (
	// HospitalUpsertOne is the builder for "upsert"-ing
	//  one Hospital node.
	HospitalUpsertOne struct {
		create *HospitalCreate
	}

	// HospitalUpsert is the "OnConflict" setter.
	HospitalUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *HospitalUpsert) SetUpdatedAt(v time.Time) *HospitalUpsert {
	u.Set(hospital.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateUpdatedAt() *HospitalUpsert {
	u.SetExcluded(hospital.FieldUpdatedAt)
	return u
}

// SetPublished sets the "published" field.
func (u *HospitalUpsert) SetPublished(v bool) *HospitalUpsert {
	u.Set(hospital.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *HospitalUpsert) UpdatePublished() *HospitalUpsert {
	u.SetExcluded(hospital.FieldPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *HospitalUpsert) SetPublishedAt(v time.Time) *HospitalUpsert {
	u.Set(hospital.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *HospitalUpsert) UpdatePublishedAt() *HospitalUpsert {
	u.SetExcluded(hospital.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *HospitalUpsert) ClearPublishedAt() *HospitalUpsert {
	u.SetNull(hospital.FieldPublishedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *HospitalUpsert) SetIsArchived(v bool) *HospitalUpsert {
	u.Set(hospital.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateIsArchived() *HospitalUpsert {
	u.SetExcluded(hospital.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *HospitalUpsert) SetArchivedAt(v time.Time) *HospitalUpsert {
	u.Set(hospital.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateArchivedAt() *HospitalUpsert {
	u.SetExcluded(hospital.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *HospitalUpsert) ClearArchivedAt() *HospitalUpsert {
	u.SetNull(hospital.FieldArchivedAt)
	return u
}

// SetNameEn sets the "name_en" field.
func (u *HospitalUpsert) SetNameEn(v string) *HospitalUpsert {
	u.Set(hospital.FieldNameEn, v)
	return u
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateNameEn() *HospitalUpsert {
	u.SetExcluded(hospital.FieldNameEn)
	return u
}

// SetNameAr sets the "name_ar" field.
func (u *HospitalUpsert) SetNameAr(v string) *HospitalUpsert {
	u.Set(hospital.FieldNameAr, v)
	return u
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateNameAr() *HospitalUpsert {
	u.SetExcluded(hospital.FieldNameAr)
	return u
}

// SetSlug sets the "slug" field.
func (u *HospitalUpsert) SetSlug(v string) *HospitalUpsert {
	u.Set(hospital.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateSlug() *HospitalUpsert {
	u.SetExcluded(hospital.FieldSlug)
	return u
}

// SetDescriptionEn sets the "description_en" field.
func (u *HospitalUpsert) SetDescriptionEn(v string) *HospitalUpsert {
	u.Set(hospital.FieldDescriptionEn, v)
	return u
}

// UpdateDescriptionEn sets the "description_en" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateDescriptionEn() *HospitalUpsert {
	u.SetExcluded(hospital.FieldDescriptionEn)
	return u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (u *HospitalUpsert) ClearDescriptionEn() *HospitalUpsert {
	u.SetNull(hospital.FieldDescriptionEn)
	return u
}

// SetDescriptionAr sets the "description_ar" field.
func (u *HospitalUpsert) SetDescriptionAr(v string) *HospitalUpsert {
	u.Set(hospital.FieldDescriptionAr, v)
	return u
}

// UpdateDescriptionAr sets the "description_ar" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateDescriptionAr() *HospitalUpsert {
	u.SetExcluded(hospital.FieldDescriptionAr)
	return u
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (u *HospitalUpsert) ClearDescriptionAr() *HospitalUpsert {
	u.SetNull(hospital.FieldDescriptionAr)
	return u
}

// SetCityEn sets the "city_en" field.
func (u *HospitalUpsert) SetCityEn(v string) *HospitalUpsert {
	u.Set(hospital.FieldCityEn, v)
	return u
}

// UpdateCityEn sets the "city_en" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateCityEn() *HospitalUpsert {
	u.SetExcluded(hospital.FieldCityEn)
	return u
}

// SetCityAr sets the "city_ar" field.
func (u *HospitalUpsert) SetCityAr(v string) *HospitalUpsert {
	u.Set(hospital.FieldCityAr, v)
	return u
}

// UpdateCityAr sets the "city_ar" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateCityAr() *HospitalUpsert {
	u.SetExcluded(hospital.FieldCityAr)
	return u
}

// SetCountryEn sets the "country_en" field.
func (u *HospitalUpsert) SetCountryEn(v string) *HospitalUpsert {
	u.Set(hospital.FieldCountryEn, v)
	return u
}

// UpdateCountryEn sets the "country_en" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateCountryEn() *HospitalUpsert {
	u.SetExcluded(hospital.FieldCountryEn)
	return u
}

// SetCountryAr sets the "country_ar" field.
func (u *HospitalUpsert) SetCountryAr(v string) *HospitalUpsert {
	u.Set(hospital.FieldCountryAr, v)
	return u
}

// UpdateCountryAr sets the "country_ar" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateCountryAr() *HospitalUpsert {
	u.SetExcluded(hospital.FieldCountryAr)
	return u
}

// SetAddress sets the "address" field.
func (u *HospitalUpsert) SetAddress(v string) *HospitalUpsert {
	u.Set(hospital.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateAddress() *HospitalUpsert {
	u.SetExcluded(hospital.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *HospitalUpsert) ClearAddress() *HospitalUpsert {
	u.SetNull(hospital.FieldAddress)
	return u
}

// SetPhone sets the "phone" field.
func (u *HospitalUpsert) SetPhone(v string) *HospitalUpsert {
	u.Set(hospital.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *HospitalUpsert) UpdatePhone() *HospitalUpsert {
	u.SetExcluded(hospital.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *HospitalUpsert) ClearPhone() *HospitalUpsert {
	u.SetNull(hospital.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *HospitalUpsert) SetEmail(v string) *HospitalUpsert {
	u.Set(hospital.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateEmail() *HospitalUpsert {
	u.SetExcluded(hospital.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *HospitalUpsert) ClearEmail() *HospitalUpsert {
	u.SetNull(hospital.FieldEmail)
	return u
}

// SetAccreditations sets the "accreditations" field.
func (u *HospitalUpsert) SetAccreditations(v []string) *HospitalUpsert {
	u.Set(hospital.FieldAccreditations, v)
	return u
}

// UpdateAccreditations sets the "accreditations" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateAccreditations() *HospitalUpsert {
	u.SetExcluded(hospital.FieldAccreditations)
	return u
}

// ClearAccreditations clears the value of the "accreditations" field.
func (u *HospitalUpsert) ClearAccreditations() *HospitalUpsert {
	u.SetNull(hospital.FieldAccreditations)
	return u
}

// SetImages sets the "images" field.
func (u *HospitalUpsert) SetImages(v content.Images) *HospitalUpsert {
	u.Set(hospital.FieldImages, v)
	return u
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateImages() *HospitalUpsert {
	u.SetExcluded(hospital.FieldImages)
	return u
}

// ClearImages clears the value of the "images" field.
func (u *HospitalUpsert) ClearImages() *HospitalUpsert {
	u.SetNull(hospital.FieldImages)
	return u
}

// SetEstablishedYear sets the "established_year" field.
func (u *HospitalUpsert) SetEstablishedYear(v int) *HospitalUpsert {
	u.Set(hospital.FieldEstablishedYear, v)
	return u
}

// UpdateEstablishedYear sets the "established_year" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateEstablishedYear() *HospitalUpsert {
	u.SetExcluded(hospital.FieldEstablishedYear)
	return u
}

// AddEstablishedYear adds v to the "established_year" field.
func (u *HospitalUpsert) AddEstablishedYear(v int) *HospitalUpsert {
	u.Add(hospital.FieldEstablishedYear, v)
	return u
}

// ClearEstablishedYear clears the value of the "established_year" field.
func (u *HospitalUpsert) ClearEstablishedYear() *HospitalUpsert {
	u.SetNull(hospital.FieldEstablishedYear)
	return u
}

// SetBedCount sets the "bed_count" field.
func (u *HospitalUpsert) SetBedCount(v int) *HospitalUpsert {
	u.Set(hospital.FieldBedCount, v)
	return u
}

// UpdateBedCount sets the "bed_count" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateBedCount() *HospitalUpsert {
	u.SetExcluded(hospital.FieldBedCount)
	return u
}

// AddBedCount adds v to the "bed_count" field.
func (u *HospitalUpsert) AddBedCount(v int) *HospitalUpsert {
	u.Add(hospital.FieldBedCount, v)
	return u
}

// ClearBedCount clears the value of the "bed_count" field.
func (u *HospitalUpsert) ClearBedCount() *HospitalUpsert {
	u.SetNull(hospital.FieldBedCount)
	return u
}

// SetLanguagesSupported sets the "languages_supported" field.
func (u *HospitalUpsert) SetLanguagesSupported(v []string) *HospitalUpsert {
	u.Set(hospital.FieldLanguagesSupported, v)
	return u
}

// UpdateLanguagesSupported sets the "languages_supported" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateLanguagesSupported() *HospitalUpsert {
	u.SetExcluded(hospital.FieldLanguagesSupported)
	return u
}

// ClearLanguagesSupported clears the value of the "languages_supported" field.
func (u *HospitalUpsert) ClearLanguagesSupported() *HospitalUpsert {
	u.SetNull(hospital.FieldLanguagesSupported)
	return u
}

// SetFeatured sets the "featured" field.
func (u *HospitalUpsert) SetFeatured(v bool) *HospitalUpsert {
	u.Set(hospital.FieldFeatured, v)
	return u
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateFeatured() *HospitalUpsert {
	u.SetExcluded(hospital.FieldFeatured)
	return u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *HospitalUpsert) SetMetaTitleEn(v string) *HospitalUpsert {
	u.Set(hospital.FieldMetaTitleEn, v)
	return u
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateMetaTitleEn() *HospitalUpsert {
	u.SetExcluded(hospital.FieldMetaTitleEn)
	return u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *HospitalUpsert) ClearMetaTitleEn() *HospitalUpsert {
	u.SetNull(hospital.FieldMetaTitleEn)
	return u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *HospitalUpsert) SetMetaTitleAr(v string) *HospitalUpsert {
	u.Set(hospital.FieldMetaTitleAr, v)
	return u
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateMetaTitleAr() *HospitalUpsert {
	u.SetExcluded(hospital.FieldMetaTitleAr)
	return u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *HospitalUpsert) ClearMetaTitleAr() *HospitalUpsert {
	u.SetNull(hospital.FieldMetaTitleAr)
	return u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *HospitalUpsert) SetMetaDescriptionEn(v string) *HospitalUpsert {
	u.Set(hospital.FieldMetaDescriptionEn, v)
	return u
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateMetaDescriptionEn() *HospitalUpsert {
	u.SetExcluded(hospital.FieldMetaDescriptionEn)
	return u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *HospitalUpsert) ClearMetaDescriptionEn() *HospitalUpsert {
	u.SetNull(hospital.FieldMetaDescriptionEn)
	return u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *HospitalUpsert) SetMetaDescriptionAr(v string) *HospitalUpsert {
	u.Set(hospital.FieldMetaDescriptionAr, v)
	return u
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *HospitalUpsert) UpdateMetaDescriptionAr() *HospitalUpsert {
	u.SetExcluded(hospital.FieldMetaDescriptionAr)
	return u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *HospitalUpsert) ClearMetaDescriptionAr() *HospitalUpsert {
	u.SetNull(hospital.FieldMetaDescriptionAr)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Hospital.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hospital.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HospitalUpsertOne) UpdateNewValues() *HospitalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(hospital.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hospital.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Hospital.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HospitalUpsertOne) Ignore() *HospitalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HospitalUpsertOne) DoNothing() *HospitalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HospitalCreate.OnConflict
// documentation for more info.
func (u *HospitalUpsertOne) Update(set func(*HospitalUpsert)) *HospitalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HospitalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HospitalUpsertOne) SetUpdatedAt(v time.Time) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateUpdatedAt() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *HospitalUpsertOne) SetPublished(v bool) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdatePublished() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *HospitalUpsertOne) SetPublishedAt(v time.Time) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdatePublishedAt() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *HospitalUpsertOne) ClearPublishedAt() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *HospitalUpsertOne) SetIsArchived(v bool) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateIsArchived() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *HospitalUpsertOne) SetArchivedAt(v time.Time) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateArchivedAt() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *HospitalUpsertOne) ClearArchivedAt() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearArchivedAt()
	})
}

// SetNameEn sets the "name_en" field.
func (u *HospitalUpsertOne) SetNameEn(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateNameEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *HospitalUpsertOne) SetNameAr(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateNameAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *HospitalUpsertOne) SetSlug(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateSlug() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateSlug()
	})
}

// SetDescriptionEn sets the "description_en" field.
func (u *HospitalUpsertOne) SetDescriptionEn(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetDescriptionEn(v)
	})
}

// UpdateDescriptionEn sets the "description_en" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateDescriptionEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateDescriptionEn()
	})
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (u *HospitalUpsertOne) ClearDescriptionEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearDescriptionEn()
	})
}

// SetDescriptionAr sets the "description_ar" field.
func (u *HospitalUpsertOne) SetDescriptionAr(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetDescriptionAr(v)
	})
}

// UpdateDescriptionAr sets the "description_ar" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateDescriptionAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateDescriptionAr()
	})
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (u *HospitalUpsertOne) ClearDescriptionAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearDescriptionAr()
	})
}

// SetCityEn sets the "city_en" field.
func (u *HospitalUpsertOne) SetCityEn(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCityEn(v)
	})
}

// UpdateCityEn sets the "city_en" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateCityEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCityEn()
	})
}

// SetCityAr sets the "city_ar" field.
func (u *HospitalUpsertOne) SetCityAr(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCityAr(v)
	})
}

// UpdateCityAr sets the "city_ar" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateCityAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCityAr()
	})
}

// SetCountryEn sets the "country_en" field.
func (u *HospitalUpsertOne) SetCountryEn(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCountryEn(v)
	})
}

// UpdateCountryEn sets the "country_en" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateCountryEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCountryEn()
	})
}

// SetCountryAr sets the "country_ar" field.
func (u *HospitalUpsertOne) SetCountryAr(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCountryAr(v)
	})
}

// UpdateCountryAr sets the "country_ar" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateCountryAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCountryAr()
	})
}

// SetAddress sets the "address" field.
func (u *HospitalUpsertOne) SetAddress(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateAddress() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *HospitalUpsertOne) ClearAddress() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearAddress()
	})
}

// SetPhone sets the "phone" field.
func (u *HospitalUpsertOne) SetPhone(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdatePhone() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *HospitalUpsertOne) ClearPhone() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *HospitalUpsertOne) SetEmail(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateEmail() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *HospitalUpsertOne) ClearEmail() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearEmail()
	})
}

// SetAccreditations sets the "accreditations" field.
func (u *HospitalUpsertOne) SetAccreditations(v []string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetAccreditations(v)
	})
}

// UpdateAccreditations sets the "accreditations" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateAccreditations() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateAccreditations()
	})
}

// ClearAccreditations clears the value of the "accreditations" field.
func (u *HospitalUpsertOne) ClearAccreditations() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearAccreditations()
	})
}

// SetImages sets the "images" field.
func (u *HospitalUpsertOne) SetImages(v content.Images) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetImages(v)
	})
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateImages() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateImages()
	})
}

// ClearImages clears the value of the "images" field.
func (u *HospitalUpsertOne) ClearImages() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearImages()
	})
}

// SetEstablishedYear sets the "established_year" field.
func (u *HospitalUpsertOne) SetEstablishedYear(v int) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetEstablishedYear(v)
	})
}

// AddEstablishedYear adds v to the "established_year" field.
func (u *HospitalUpsertOne) AddEstablishedYear(v int) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.AddEstablishedYear(v)
	})
}

// UpdateEstablishedYear sets the "established_year" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateEstablishedYear() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateEstablishedYear()
	})
}

// ClearEstablishedYear clears the value of the "established_year" field.
func (u *HospitalUpsertOne) ClearEstablishedYear() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearEstablishedYear()
	})
}

// SetBedCount sets the "bed_count" field.
func (u *HospitalUpsertOne) SetBedCount(v int) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetBedCount(v)
	})
}

// AddBedCount adds v to the "bed_count" field.
func (u *HospitalUpsertOne) AddBedCount(v int) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.AddBedCount(v)
	})
}

// UpdateBedCount sets the "bed_count" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateBedCount() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateBedCount()
	})
}

// ClearBedCount clears the value of the "bed_count" field.
func (u *HospitalUpsertOne) ClearBedCount() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearBedCount()
	})
}

// SetLanguagesSupported sets the "languages_supported" field.
func (u *HospitalUpsertOne) SetLanguagesSupported(v []string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetLanguagesSupported(v)
	})
}

// UpdateLanguagesSupported sets the "languages_supported" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateLanguagesSupported() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateLanguagesSupported()
	})
}

// ClearLanguagesSupported clears the value of the "languages_supported" field.
func (u *HospitalUpsertOne) ClearLanguagesSupported() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearLanguagesSupported()
	})
}

// SetFeatured sets the "featured" field.
func (u *HospitalUpsertOne) SetFeatured(v bool) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateFeatured() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateFeatured()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *HospitalUpsertOne) SetMetaTitleEn(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateMetaTitleEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *HospitalUpsertOne) ClearMetaTitleEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *HospitalUpsertOne) SetMetaTitleAr(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateMetaTitleAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *HospitalUpsertOne) ClearMetaTitleAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *HospitalUpsertOne) SetMetaDescriptionEn(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateMetaDescriptionEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *HospitalUpsertOne) ClearMetaDescriptionEn() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *HospitalUpsertOne) SetMetaDescriptionAr(v string) *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *HospitalUpsertOne) UpdateMetaDescriptionAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *HospitalUpsertOne) ClearMetaDescriptionAr() *HospitalUpsertOne {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// Exec executes the query.
func (u *HospitalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HospitalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HospitalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HospitalUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HospitalUpsertOne.ID is not supported by MySQL driver. Use HospitalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HospitalUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HospitalCreateBulk is the builder for creating many Hospital entities in bulk.
type HospitalCreateBulk struct {
	config
	err      error
	builders []*HospitalCreate
	conflict []sql.ConflictOption
}

// Save creates the Hospital entities in the database.
func (_c *HospitalCreateBulk) Save(ctx context.Context) ([]*Hospital, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hospital, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HospitalMutation)
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
func (_c *HospitalCreateBulk) SaveX(ctx context.Context) []*Hospital {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HospitalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HospitalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Hospital.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HospitalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HospitalCreateBulk) OnConflict(opts ...sql.ConflictOption) *HospitalUpsertBulk {
	_c.conflict = opts
	return &HospitalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Hospital.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HospitalCreateBulk) OnConflictColumns(columns ...string) *HospitalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HospitalUpsertBulk{
		create: _c,
	}
}

// HospitalUpsertBulk is the builder for "upsert"-ing
// a bulk of Hospital nodes.
type HospitalUpsertBulk struct {
	create *HospitalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Hospital.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hospital.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HospitalUpsertBulk) UpdateNewValues() *HospitalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(hospital.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hospital.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Hospital.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HospitalUpsertBulk) Ignore() *HospitalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HospitalUpsertBulk) DoNothing() *HospitalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HospitalCreateBulk.OnConflict
// documentation for more info.
func (u *HospitalUpsertBulk) Update(set func(*HospitalUpsert)) *HospitalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HospitalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HospitalUpsertBulk) SetUpdatedAt(v time.Time) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateUpdatedAt() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *HospitalUpsertBulk) SetPublished(v bool) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdatePublished() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *HospitalUpsertBulk) SetPublishedAt(v time.Time) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdatePublishedAt() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *HospitalUpsertBulk) ClearPublishedAt() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *HospitalUpsertBulk) SetIsArchived(v bool) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateIsArchived() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *HospitalUpsertBulk) SetArchivedAt(v time.Time) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateArchivedAt() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *HospitalUpsertBulk) ClearArchivedAt() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearArchivedAt()
	})
}

// SetNameEn sets the "name_en" field.
func (u *HospitalUpsertBulk) SetNameEn(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateNameEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *HospitalUpsertBulk) SetNameAr(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateNameAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *HospitalUpsertBulk) SetSlug(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateSlug() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateSlug()
	})
}

// SetDescriptionEn sets the "description_en" field.
func (u *HospitalUpsertBulk) SetDescriptionEn(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetDescriptionEn(v)
	})
}

// UpdateDescriptionEn sets the "description_en" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateDescriptionEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateDescriptionEn()
	})
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (u *HospitalUpsertBulk) ClearDescriptionEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearDescriptionEn()
	})
}

// SetDescriptionAr sets the "description_ar" field.
func (u *HospitalUpsertBulk) SetDescriptionAr(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetDescriptionAr(v)
	})
}

// UpdateDescriptionAr sets the "description_ar" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateDescriptionAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateDescriptionAr()
	})
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (u *HospitalUpsertBulk) ClearDescriptionAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearDescriptionAr()
	})
}

// SetCityEn sets the "city_en" field.
func (u *HospitalUpsertBulk) SetCityEn(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCityEn(v)
	})
}

// UpdateCityEn sets the "city_en" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateCityEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCityEn()
	})
}

// SetCityAr sets the "city_ar" field.
func (u *HospitalUpsertBulk) SetCityAr(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCityAr(v)
	})
}

// UpdateCityAr sets the "city_ar" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateCityAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCityAr()
	})
}

// SetCountryEn sets the "country_en" field.
func (u *HospitalUpsertBulk) SetCountryEn(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCountryEn(v)
	})
}

// UpdateCountryEn sets the "country_en" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateCountryEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCountryEn()
	})
}

// SetCountryAr sets the "country_ar" field.
func (u *HospitalUpsertBulk) SetCountryAr(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetCountryAr(v)
	})
}

// UpdateCountryAr sets the "country_ar" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateCountryAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateCountryAr()
	})
}

// SetAddress sets the "address" field.
func (u *HospitalUpsertBulk) SetAddress(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateAddress() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *HospitalUpsertBulk) ClearAddress() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearAddress()
	})
}

// SetPhone sets the "phone" field.
func (u *HospitalUpsertBulk) SetPhone(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdatePhone() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *HospitalUpsertBulk) ClearPhone() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *HospitalUpsertBulk) SetEmail(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateEmail() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *HospitalUpsertBulk) ClearEmail() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearEmail()
	})
}

// SetAccreditations sets the "accreditations" field.
func (u *HospitalUpsertBulk) SetAccreditations(v []string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetAccreditations(v)
	})
}

// UpdateAccreditations sets the "accreditations" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateAccreditations() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateAccreditations()
	})
}

// ClearAccreditations clears the value of the "accreditations" field.
func (u *HospitalUpsertBulk) ClearAccreditations() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearAccreditations()
	})
}

// SetImages sets the "images" field.
func (u *HospitalUpsertBulk) SetImages(v content.Images) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetImages(v)
	})
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateImages() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateImages()
	})
}

// ClearImages clears the value of the "images" field.
func (u *HospitalUpsertBulk) ClearImages() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearImages()
	})
}

// SetEstablishedYear sets the "established_year" field.
func (u *HospitalUpsertBulk) SetEstablishedYear(v int) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetEstablishedYear(v)
	})
}

// AddEstablishedYear adds v to the "established_year" field.
func (u *HospitalUpsertBulk) AddEstablishedYear(v int) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.AddEstablishedYear(v)
	})
}

// UpdateEstablishedYear sets the "established_year" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateEstablishedYear() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateEstablishedYear()
	})
}

// ClearEstablishedYear clears the value of the "established_year" field.
func (u *HospitalUpsertBulk) ClearEstablishedYear() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearEstablishedYear()
	})
}

// SetBedCount sets the "bed_count" field.
func (u *HospitalUpsertBulk) SetBedCount(v int) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetBedCount(v)
	})
}

// AddBedCount adds v to the "bed_count" field.
func (u *HospitalUpsertBulk) AddBedCount(v int) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.AddBedCount(v)
	})
}

// UpdateBedCount sets the "bed_count" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateBedCount() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateBedCount()
	})
}

// ClearBedCount clears the value of the "bed_count" field.
func (u *HospitalUpsertBulk) ClearBedCount() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearBedCount()
	})
}

// SetLanguagesSupported sets the "languages_supported" field.
func (u *HospitalUpsertBulk) SetLanguagesSupported(v []string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetLanguagesSupported(v)
	})
}

// UpdateLanguagesSupported sets the "languages_supported" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateLanguagesSupported() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateLanguagesSupported()
	})
}

// ClearLanguagesSupported clears the value of the "languages_supported" field.
func (u *HospitalUpsertBulk) ClearLanguagesSupported() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearLanguagesSupported()
	})
}

// SetFeatured sets the "featured" field.
func (u *HospitalUpsertBulk) SetFeatured(v bool) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateFeatured() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateFeatured()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *HospitalUpsertBulk) SetMetaTitleEn(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateMetaTitleEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *HospitalUpsertBulk) ClearMetaTitleEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *HospitalUpsertBulk) SetMetaTitleAr(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateMetaTitleAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *HospitalUpsertBulk) ClearMetaTitleAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *HospitalUpsertBulk) SetMetaDescriptionEn(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateMetaDescriptionEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *HospitalUpsertBulk) ClearMetaDescriptionEn() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *HospitalUpsertBulk) SetMetaDescriptionAr(v string) *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *HospitalUpsertBulk) UpdateMetaDescriptionAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *HospitalUpsertBulk) ClearMetaDescriptionAr() *HospitalUpsertBulk {
	return u.Update(func(s *HospitalUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// Exec executes the query.
func (u *HospitalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HospitalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HospitalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HospitalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
