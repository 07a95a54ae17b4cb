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
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// TreatmentCreate is the builder for creating a Treatment entity.
type TreatmentCreate struct {
	config
	mutation *TreatmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TreatmentCreate) SetCreatedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableCreatedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TreatmentCreate) SetUpdatedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableUpdatedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *TreatmentCreate) SetPublished(v bool) *TreatmentCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillablePublished(v *bool) *TreatmentCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *TreatmentCreate) SetPublishedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillablePublishedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *TreatmentCreate) SetIsArchived(v bool) *TreatmentCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableIsArchived(v *bool) *TreatmentCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *TreatmentCreate) SetArchivedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableArchivedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetNameEn sets the "name_en" field.
func (_c *TreatmentCreate) SetNameEn(v string) *TreatmentCreate {
	_c.mutation.SetNameEn(v)
	return _c
}

// SetNameAr sets the "name_ar" field.
func (_c *TreatmentCreate) SetNameAr(v string) *TreatmentCreate {
	_c.mutation.SetNameAr(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *TreatmentCreate) SetSlug(v string) *TreatmentCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetCategoryEn sets the "category_en" field.
func (_c *TreatmentCreate) SetCategoryEn(v string) *TreatmentCreate {
	_c.mutation.SetCategoryEn(v)
	return _c
}

// SetNillableCategoryEn sets the "category_en" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableCategoryEn(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetCategoryEn(*v)
	}
	return _c
}

// SetCategoryAr sets the "category_ar" field.
func (_c *TreatmentCreate) SetCategoryAr(v string) *TreatmentCreate {
	_c.mutation.SetCategoryAr(v)
	return _c
}

// SetNillableCategoryAr sets the "category_ar" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableCategoryAr(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetCategoryAr(*v)
	}
	return _c
}

// SetSummaryEn sets the "summary_en" field.
func (_c *TreatmentCreate) SetSummaryEn(v string) *TreatmentCreate {
	_c.mutation.SetSummaryEn(v)
	return _c
}

// SetNillableSummaryEn sets the "summary_en" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableSummaryEn(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetSummaryEn(*v)
	}
	return _c
}

// SetSummaryAr sets the "summary_ar" field.
func (_c *TreatmentCreate) SetSummaryAr(v string) *TreatmentCreate {
	_c.mutation.SetSummaryAr(v)
	return _c
}

// SetNillableSummaryAr sets the "summary_ar" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableSummaryAr(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetSummaryAr(*v)
	}
	return _c
}

// SetBodyEn sets the "body_en" field.
func (_c *TreatmentCreate) SetBodyEn(v content.Document) *TreatmentCreate {
	_c.mutation.SetBodyEn(v)
	return _c
}

// SetNillableBodyEn sets the "body_en" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableBodyEn(v *content.Document) *TreatmentCreate {
	if v != nil {
		_c.SetBodyEn(*v)
	}
	return _c
}

// SetBodyAr sets the "body_ar" field.
func (_c *TreatmentCreate) SetBodyAr(v content.Document) *TreatmentCreate {
	_c.mutation.SetBodyAr(v)
	return _c
}

// SetNillableBodyAr sets the "body_ar" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableBodyAr(v *content.Document) *TreatmentCreate {
	if v != nil {
		_c.SetBodyAr(*v)
	}
	return _c
}

// SetCostMin sets the "cost_min" field.
func (_c *TreatmentCreate) SetCostMin(v float64) *TreatmentCreate {
	_c.mutation.SetCostMin(v)
	return _c
}

// SetCostMax sets the "cost_max" field.
func (_c *TreatmentCreate) SetCostMax(v float64) *TreatmentCreate {
	_c.mutation.SetCostMax(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *TreatmentCreate) SetCurrency(v string) *TreatmentCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableCurrency(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStayDaysMin sets the "stay_days_min" field.
func (_c *TreatmentCreate) SetStayDaysMin(v int) *TreatmentCreate {
	_c.mutation.SetStayDaysMin(v)
	return _c
}

// SetNillableStayDaysMin sets the "stay_days_min" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableStayDaysMin(v *int) *TreatmentCreate {
	if v != nil {
		_c.SetStayDaysMin(*v)
	}
	return _c
}

// SetStayDaysMax sets the "stay_days_max" field.
func (_c *TreatmentCreate) SetStayDaysMax(v int) *TreatmentCreate {
	_c.mutation.SetStayDaysMax(v)
	return _c
}

// SetNillableStayDaysMax sets the "stay_days_max" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableStayDaysMax(v *int) *TreatmentCreate {
	if v != nil {
		_c.SetStayDaysMax(*v)
	}
	return _c
}

// SetFaq sets the "faq" field.
func (_c *TreatmentCreate) SetFaq(v []content.FAQItem) *TreatmentCreate {
	_c.mutation.SetFaq(v)
	return _c
}

// SetImages sets the "images" field.
func (_c *TreatmentCreate) SetImages(v content.Images) *TreatmentCreate {
	_c.mutation.SetImages(v)
	return _c
}

// SetNillableImages sets the "images" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableImages(v *content.Images) *TreatmentCreate {
	if v != nil {
		_c.SetImages(*v)
	}
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *TreatmentCreate) SetFeatured(v bool) *TreatmentCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableFeatured(v *bool) *TreatmentCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_c *TreatmentCreate) SetMetaTitleEn(v string) *TreatmentCreate {
	_c.mutation.SetMetaTitleEn(v)
	return _c
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMetaTitleEn(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMetaTitleEn(*v)
	}
	return _c
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_c *TreatmentCreate) SetMetaTitleAr(v string) *TreatmentCreate {
	_c.mutation.SetMetaTitleAr(v)
	return _c
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMetaTitleAr(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMetaTitleAr(*v)
	}
	return _c
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_c *TreatmentCreate) SetMetaDescriptionEn(v string) *TreatmentCreate {
	_c.mutation.SetMetaDescriptionEn(v)
	return _c
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMetaDescriptionEn(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMetaDescriptionEn(*v)
	}
	return _c
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_c *TreatmentCreate) SetMetaDescriptionAr(v string) *TreatmentCreate {
	_c.mutation.SetMetaDescriptionAr(v)
	return _c
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMetaDescriptionAr(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMetaDescriptionAr(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TreatmentCreate) SetID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableID(v *uuid.UUID) *TreatmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddHospitalIDs adds the "hospitals" edge to the Hospital entity by IDs.
func (_c *TreatmentCreate) AddHospitalIDs(ids ...uuid.UUID) *TreatmentCreate {
	_c.mutation.AddHospitalIDs(ids...)
	return _c
}

// AddHospitals adds the "hospitals" edges to the Hospital entity.
func (_c *TreatmentCreate) AddHospitals(v ...*Hospital) *TreatmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHospitalIDs(ids...)
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by IDs.
func (_c *TreatmentCreate) AddPackageIDs(ids ...uuid.UUID) *TreatmentCreate {
	_c.mutation.AddPackageIDs(ids...)
	return _c
}

// AddPackages adds the "packages" edges to the CarePackage entity.
func (_c *TreatmentCreate) AddPackages(v ...*CarePackage) *TreatmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPackageIDs(ids...)
}

// Mutation returns the TreatmentMutation object of the builder.
func (_c *TreatmentCreate) Mutation() *TreatmentMutation {
	return _c.mutation
}

// Save creates the Treatment in the database.
func (_c *TreatmentCreate) Save(ctx context.Context) (*Treatment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TreatmentCreate) SaveX(ctx context.Context) *Treatment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TreatmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := treatment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := treatment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := treatment.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := treatment.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := treatment.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := treatment.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := treatment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TreatmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Treatment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Treatment.updated_at"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "Treatment.published"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "Treatment.is_archived"`)}
	}
	if _, ok := _c.mutation.NameEn(); !ok {
		return &ValidationError{Name: "name_en", err: errors.New(`repo: missing required field "Treatment.name_en"`)}
	}
	if v, ok := _c.mutation.NameEn(); ok {
		if err := treatment.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.name_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameAr(); !ok {
		return &ValidationError{Name: "name_ar", err: errors.New(`repo: missing required field "Treatment.name_ar"`)}
	}
	if v, ok := _c.mutation.NameAr(); ok {
		if err := treatment.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.name_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Treatment.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := treatment.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Treatment.slug": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CategoryEn(); ok {
		if err := treatment.CategoryEnValidator(v); err != nil {
			return &ValidationError{Name: "category_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.category_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CategoryAr(); ok {
		if err := treatment.CategoryArValidator(v); err != nil {
			return &ValidationError{Name: "category_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.category_ar": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BodyEn(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.body_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BodyAr(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.body_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostMin(); !ok {
		return &ValidationError{Name: "cost_min", err: errors.New(`repo: missing required field "Treatment.cost_min"`)}
	}
	if v, ok := _c.mutation.CostMin(); ok {
		if err := treatment.CostMinValidator(v); err != nil {
			return &ValidationError{Name: "cost_min", err: fmt.Errorf(`repo: validator failed for field "Treatment.cost_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostMax(); !ok {
		return &ValidationError{Name: "cost_max", err: errors.New(`repo: missing required field "Treatment.cost_max"`)}
	}
	if v, ok := _c.mutation.CostMax(); ok {
		if err := treatment.CostMaxValidator(v); err != nil {
			return &ValidationError{Name: "cost_max", err: fmt.Errorf(`repo: validator failed for field "Treatment.cost_max": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Treatment.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := treatment.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Treatment.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`repo: missing required field "Treatment.featured"`)}
	}
	if v, ok := _c.mutation.MetaTitleEn(); ok {
		if err := treatment.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MetaTitleAr(); ok {
		if err := treatment.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.meta_title_ar": %w`, err)}
		}
	}
	return nil
}

func (_c *TreatmentCreate) sqlSave(ctx context.Context) (*Treatment, error) {
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

func (_c *TreatmentCreate) createSpec() (*Treatment, *sqlgraph.CreateSpec) {
	var (
		_node = &Treatment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(treatment.Table, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(treatment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(treatment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(treatment.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(treatment.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(treatment.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(treatment.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.NameEn(); ok {
		_spec.SetField(treatment.FieldNameEn, field.TypeString, value)
		_node.NameEn = value
	}
	if value, ok := _c.mutation.NameAr(); ok {
		_spec.SetField(treatment.FieldNameAr, field.TypeString, value)
		_node.NameAr = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(treatment.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.CategoryEn(); ok {
		_spec.SetField(treatment.FieldCategoryEn, field.TypeString, value)
		_node.CategoryEn = &value
	}
	if value, ok := _c.mutation.CategoryAr(); ok {
		_spec.SetField(treatment.FieldCategoryAr, field.TypeString, value)
		_node.CategoryAr = &value
	}
	if value, ok := _c.mutation.SummaryEn(); ok {
		_spec.SetField(treatment.FieldSummaryEn, field.TypeString, value)
		_node.SummaryEn = value
	}
	if value, ok := _c.mutation.SummaryAr(); ok {
		_spec.SetField(treatment.FieldSummaryAr, field.TypeString, value)
		_node.SummaryAr = value
	}
	if value, ok := _c.mutation.BodyEn(); ok {
		_spec.SetField(treatment.FieldBodyEn, field.TypeJSON, value)
		_node.BodyEn = value
	}
	if value, ok := _c.mutation.BodyAr(); ok {
		_spec.SetField(treatment.FieldBodyAr, field.TypeJSON, value)
		_node.BodyAr = value
	}
	if value, ok := _c.mutation.CostMin(); ok {
		_spec.SetField(treatment.FieldCostMin, field.TypeFloat64, value)
		_node.CostMin = value
	}
	if value, ok := _c.mutation.CostMax(); ok {
		_spec.SetField(treatment.FieldCostMax, field.TypeFloat64, value)
		_node.CostMax = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(treatment.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.StayDaysMin(); ok {
		_spec.SetField(treatment.FieldStayDaysMin, field.TypeInt, value)
		_node.StayDaysMin = &value
	}
	if value, ok := _c.mutation.StayDaysMax(); ok {
		_spec.SetField(treatment.FieldStayDaysMax, field.TypeInt, value)
		_node.StayDaysMax = &value
	}
	if value, ok := _c.mutation.Faq(); ok {
		_spec.SetField(treatment.FieldFaq, field.TypeJSON, value)
		_node.Faq = value
	}
	if value, ok := _c.mutation.Images(); ok {
		_spec.SetField(treatment.FieldImages, field.TypeJSON, value)
		_node.Images = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(treatment.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.MetaTitleEn(); ok {
		_spec.SetField(treatment.FieldMetaTitleEn, field.TypeString, value)
		_node.MetaTitleEn = &value
	}
	if value, ok := _c.mutation.MetaTitleAr(); ok {
		_spec.SetField(treatment.FieldMetaTitleAr, field.TypeString, value)
		_node.MetaTitleAr = &value
	}
	if value, ok := _c.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(treatment.FieldMetaDescriptionEn, field.TypeString, value)
		_node.MetaDescriptionEn = value
	}
	if value, ok := _c.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(treatment.FieldMetaDescriptionAr, field.TypeString, value)
		_node.MetaDescriptionAr = value
	}
	if nodes := _c.mutation.HospitalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   treatment.HospitalsTable,
			Columns: treatment.HospitalsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
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
			Table:   treatment.PackagesTable,
			Columns: []string{treatment.PackagesColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Treatment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TreatmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TreatmentCreate) OnConflict(opts ...sql.ConflictOption) *TreatmentUpsertOne {
	_c.conflict = opts
	return &TreatmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TreatmentCreate) OnConflictColumns(columns ...string) *TreatmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TreatmentUpsertOne{
		create: _c,
	}
}

type (
	// TreatmentUpsertOne is the builder for "upsert"-ing
	//  one Treatment node.
	TreatmentUpsertOne struct {
		create *TreatmentCreate
	}

	// TreatmentUpsert is the "OnConflict" setter.
	TreatmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentUpsert) SetUpdatedAt(v time.Time) *TreatmentUpsert {
	u.Set(treatment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateUpdatedAt() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldUpdatedAt)
	return u
}

// SetPublished sets the "published" field.
func (u *TreatmentUpsert) SetPublished(v bool) *TreatmentUpsert {
	u.Set(treatment.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdatePublished() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *TreatmentUpsert) SetPublishedAt(v time.Time) *TreatmentUpsert {
	u.Set(treatment.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdatePublishedAt() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *TreatmentUpsert) ClearPublishedAt() *TreatmentUpsert {
	u.SetNull(treatment.FieldPublishedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *TreatmentUpsert) SetIsArchived(v bool) *TreatmentUpsert {
	u.Set(treatment.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateIsArchived() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *TreatmentUpsert) SetArchivedAt(v time.Time) *TreatmentUpsert {
	u.Set(treatment.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateArchivedAt() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *TreatmentUpsert) ClearArchivedAt() *TreatmentUpsert {
	u.SetNull(treatment.FieldArchivedAt)
	return u
}

// SetNameEn sets the "name_en" field.
func (u *TreatmentUpsert) SetNameEn(v string) *TreatmentUpsert {
	u.Set(treatment.FieldNameEn, v)
	return u
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateNameEn() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldNameEn)
	return u
}

// SetNameAr sets the "name_ar" field.
func (u *TreatmentUpsert) SetNameAr(v string) *TreatmentUpsert {
	u.Set(treatment.FieldNameAr, v)
	return u
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateNameAr() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldNameAr)
	return u
}

// SetSlug sets the "slug" field.
func (u *TreatmentUpsert) SetSlug(v string) *TreatmentUpsert {
	u.Set(treatment.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateSlug() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldSlug)
	return u
}

// SetCategoryEn sets the "category_en" field.
func (u *TreatmentUpsert) SetCategoryEn(v string) *TreatmentUpsert {
	u.Set(treatment.FieldCategoryEn, v)
	return u
}

// UpdateCategoryEn sets the "category_en" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateCategoryEn() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldCategoryEn)
	return u
}

// ClearCategoryEn clears the value of the "category_en" field.
func (u *TreatmentUpsert) ClearCategoryEn() *TreatmentUpsert {
	u.SetNull(treatment.FieldCategoryEn)
	return u
}

// SetCategoryAr sets the "category_ar" field.
func (u *TreatmentUpsert) SetCategoryAr(v string) *TreatmentUpsert {
	u.Set(treatment.FieldCategoryAr, v)
	return u
}

// UpdateCategoryAr sets the "category_ar" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateCategoryAr() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldCategoryAr)
	return u
}

// ClearCategoryAr clears the value of the "category_ar" field.
func (u *TreatmentUpsert) ClearCategoryAr() *TreatmentUpsert {
	u.SetNull(treatment.FieldCategoryAr)
	return u
}

// SetSummaryEn sets the "summary_en" field.
func (u *TreatmentUpsert) SetSummaryEn(v string) *TreatmentUpsert {
	u.Set(treatment.FieldSummaryEn, v)
	return u
}

// UpdateSummaryEn sets the "summary_en" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateSummaryEn() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldSummaryEn)
	return u
}

// ClearSummaryEn clears the value of the "summary_en" field.
func (u *TreatmentUpsert) ClearSummaryEn() *TreatmentUpsert {
	u.SetNull(treatment.FieldSummaryEn)
	return u
}

// SetSummaryAr sets the "summary_ar" field.
func (u *TreatmentUpsert) SetSummaryAr(v string) *TreatmentUpsert {
	u.Set(treatment.FieldSummaryAr, v)
	return u
}

// UpdateSummaryAr sets the "summary_ar" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateSummaryAr() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldSummaryAr)
	return u
}

// ClearSummaryAr clears the value of the "summary_ar" field.
func (u *TreatmentUpsert) ClearSummaryAr() *TreatmentUpsert {
	u.SetNull(treatment.FieldSummaryAr)
	return u
}

// SetBodyEn sets the "body_en" field.
func (u *TreatmentUpsert) SetBodyEn(v content.Document) *TreatmentUpsert {
	u.Set(treatment.FieldBodyEn, v)
	return u
}

// UpdateBodyEn sets the "body_en" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateBodyEn() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldBodyEn)
	return u
}

// ClearBodyEn clears the value of the "body_en" field.
func (u *TreatmentUpsert) ClearBodyEn() *TreatmentUpsert {
	u.SetNull(treatment.FieldBodyEn)
	return u
}

// SetBodyAr sets the "body_ar" field.
func (u *TreatmentUpsert) SetBodyAr(v content.Document) *TreatmentUpsert {
	u.Set(treatment.FieldBodyAr, v)
	return u
}

// UpdateBodyAr sets the "body_ar" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateBodyAr() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldBodyAr)
	return u
}

// ClearBodyAr clears the value of the "body_ar" field.
func (u *TreatmentUpsert) ClearBodyAr() *TreatmentUpsert {
	u.SetNull(treatment.FieldBodyAr)
	return u
}

// SetCostMin sets the "cost_min" field.
func (u *TreatmentUpsert) SetCostMin(v float64) *TreatmentUpsert {
	u.Set(treatment.FieldCostMin, v)
	return u
}

// UpdateCostMin sets the "cost_min" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateCostMin() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldCostMin)
	return u
}

// AddCostMin adds v to the "cost_min" field.
func (u *TreatmentUpsert) AddCostMin(v float64) *TreatmentUpsert {
	u.Add(treatment.FieldCostMin, v)
	return u
}

// SetCostMax sets the "cost_max" field.
func (u *TreatmentUpsert) SetCostMax(v float64) *TreatmentUpsert {
	u.Set(treatment.FieldCostMax, v)
	return u
}

// UpdateCostMax sets the "cost_max" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateCostMax() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldCostMax)
	return u
}

// AddCostMax adds v to the "cost_max" field.
func (u *TreatmentUpsert) AddCostMax(v float64) *TreatmentUpsert {
	u.Add(treatment.FieldCostMax, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *TreatmentUpsert) SetCurrency(v string) *TreatmentUpsert {
	u.Set(treatment.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateCurrency() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldCurrency)
	return u
}

// SetStayDaysMin sets the "stay_days_min" field.
func (u *TreatmentUpsert) SetStayDaysMin(v int) *TreatmentUpsert {
	u.Set(treatment.FieldStayDaysMin, v)
	return u
}

// UpdateStayDaysMin sets the "stay_days_min" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateStayDaysMin() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldStayDaysMin)
	return u
}

// AddStayDaysMin adds v to the "stay_days_min" field.
func (u *TreatmentUpsert) AddStayDaysMin(v int) *TreatmentUpsert {
	u.Add(treatment.FieldStayDaysMin, v)
	return u
}

// ClearStayDaysMin clears the value of the "stay_days_min" field.
func (u *TreatmentUpsert) ClearStayDaysMin() *TreatmentUpsert {
	u.SetNull(treatment.FieldStayDaysMin)
	return u
}

// SetStayDaysMax sets the "stay_days_max" field.
func (u *TreatmentUpsert) SetStayDaysMax(v int) *TreatmentUpsert {
	u.Set(treatment.FieldStayDaysMax, v)
	return u
}

// UpdateStayDaysMax sets the "stay_days_max" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateStayDaysMax() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldStayDaysMax)
	return u
}

// AddStayDaysMax adds v to the "stay_days_max" field.
func (u *TreatmentUpsert) AddStayDaysMax(v int) *TreatmentUpsert {
	u.Add(treatment.FieldStayDaysMax, v)
	return u
}

// ClearStayDaysMax clears the value of the "stay_days_max" field.
func (u *TreatmentUpsert) ClearStayDaysMax() *TreatmentUpsert {
	u.SetNull(treatment.FieldStayDaysMax)
	return u
}

// SetFaq sets the "faq" field.
func (u *TreatmentUpsert) SetFaq(v []content.FAQItem) *TreatmentUpsert {
	u.Set(treatment.FieldFaq, v)
	return u
}

// UpdateFaq sets the "faq" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateFaq() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldFaq)
	return u
}

// ClearFaq clears the value of the "faq" field.
func (u *TreatmentUpsert) ClearFaq() *TreatmentUpsert {
	u.SetNull(treatment.FieldFaq)
	return u
}

// SetImages sets the "images" field.
func (u *TreatmentUpsert) SetImages(v content.Images) *TreatmentUpsert {
	u.Set(treatment.FieldImages, v)
	return u
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateImages() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldImages)
	return u
}

// ClearImages clears the value of the "images" field.
func (u *TreatmentUpsert) ClearImages() *TreatmentUpsert {
	u.SetNull(treatment.FieldImages)
	return u
}

// SetFeatured sets the "featured" field.
func (u *TreatmentUpsert) SetFeatured(v bool) *TreatmentUpsert {
	u.Set(treatment.FieldFeatured, v)
	return u
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateFeatured() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldFeatured)
	return u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *TreatmentUpsert) SetMetaTitleEn(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMetaTitleEn, v)
	return u
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMetaTitleEn() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMetaTitleEn)
	return u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *TreatmentUpsert) ClearMetaTitleEn() *TreatmentUpsert {
	u.SetNull(treatment.FieldMetaTitleEn)
	return u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *TreatmentUpsert) SetMetaTitleAr(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMetaTitleAr, v)
	return u
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMetaTitleAr() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMetaTitleAr)
	return u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *TreatmentUpsert) ClearMetaTitleAr() *TreatmentUpsert {
	u.SetNull(treatment.FieldMetaTitleAr)
	return u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *TreatmentUpsert) SetMetaDescriptionEn(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMetaDescriptionEn, v)
	return u
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMetaDescriptionEn() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMetaDescriptionEn)
	return u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *TreatmentUpsert) ClearMetaDescriptionEn() *TreatmentUpsert {
	u.SetNull(treatment.FieldMetaDescriptionEn)
	return u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *TreatmentUpsert) SetMetaDescriptionAr(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMetaDescriptionAr, v)
	return u
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMetaDescriptionAr() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMetaDescriptionAr)
	return u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *TreatmentUpsert) ClearMetaDescriptionAr() *TreatmentUpsert {
	u.SetNull(treatment.FieldMetaDescriptionAr)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(treatment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TreatmentUpsertOne) UpdateNewValues() *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(treatment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(treatment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Treatment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TreatmentUpsertOne) Ignore() *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TreatmentUpsertOne) DoNothing() *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TreatmentCreate.OnConflict
// documentation for more info.
func (u *TreatmentUpsertOne) Update(set func(*TreatmentUpsert)) *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TreatmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentUpsertOne) SetUpdatedAt(v time.Time) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateUpdatedAt() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *TreatmentUpsertOne) SetPublished(v bool) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdatePublished() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *TreatmentUpsertOne) SetPublishedAt(v time.Time) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdatePublishedAt() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *TreatmentUpsertOne) ClearPublishedAt() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *TreatmentUpsertOne) SetIsArchived(v bool) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateIsArchived() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *TreatmentUpsertOne) SetArchivedAt(v time.Time) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateArchivedAt() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *TreatmentUpsertOne) ClearArchivedAt() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearArchivedAt()
	})
}

// SetNameEn sets the "name_en" field.
func (u *TreatmentUpsertOne) SetNameEn(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateNameEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *TreatmentUpsertOne) SetNameAr(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateNameAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *TreatmentUpsertOne) SetSlug(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateSlug() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSlug()
	})
}

// SetCategoryEn sets the "category_en" field.
func (u *TreatmentUpsertOne) SetCategoryEn(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCategoryEn(v)
	})
}

// UpdateCategoryEn sets the "category_en" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateCategoryEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCategoryEn()
	})
}

// ClearCategoryEn clears the value of the "category_en" field.
func (u *TreatmentUpsertOne) ClearCategoryEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearCategoryEn()
	})
}

// SetCategoryAr sets the "category_ar" field.
func (u *TreatmentUpsertOne) SetCategoryAr(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCategoryAr(v)
	})
}

// UpdateCategoryAr sets the "category_ar" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateCategoryAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCategoryAr()
	})
}

// ClearCategoryAr clears the value of the "category_ar" field.
func (u *TreatmentUpsertOne) ClearCategoryAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearCategoryAr()
	})
}

// SetSummaryEn sets the "summary_en" field.
func (u *TreatmentUpsertOne) SetSummaryEn(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSummaryEn(v)
	})
}

// UpdateSummaryEn sets the "summary_en" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateSummaryEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSummaryEn()
	})
}

// ClearSummaryEn clears the value of the "summary_en" field.
func (u *TreatmentUpsertOne) ClearSummaryEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearSummaryEn()
	})
}

// SetSummaryAr sets the "summary_ar" field.
func (u *TreatmentUpsertOne) SetSummaryAr(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSummaryAr(v)
	})
}

// UpdateSummaryAr sets the "summary_ar" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateSummaryAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSummaryAr()
	})
}

// ClearSummaryAr clears the value of the "summary_ar" field.
func (u *TreatmentUpsertOne) ClearSummaryAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearSummaryAr()
	})
}

// SetBodyEn sets the "body_en" field.
func (u *TreatmentUpsertOne) SetBodyEn(v content.Document) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetBodyEn(v)
	})
}

// UpdateBodyEn sets the "body_en" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateBodyEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateBodyEn()
	})
}

// ClearBodyEn clears the value of the "body_en" field.
func (u *TreatmentUpsertOne) ClearBodyEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearBodyEn()
	})
}

// SetBodyAr sets the "body_ar" field.
func (u *TreatmentUpsertOne) SetBodyAr(v content.Document) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetBodyAr(v)
	})
}

// UpdateBodyAr sets the "body_ar" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateBodyAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateBodyAr()
	})
}

// ClearBodyAr clears the value of the "body_ar" field.
func (u *TreatmentUpsertOne) ClearBodyAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearBodyAr()
	})
}

// SetCostMin sets the "cost_min" field.
func (u *TreatmentUpsertOne) SetCostMin(v float64) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCostMin(v)
	})
}

// AddCostMin adds v to the "cost_min" field.
func (u *TreatmentUpsertOne) AddCostMin(v float64) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddCostMin(v)
	})
}

// UpdateCostMin sets the "cost_min" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateCostMin() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCostMin()
	})
}

// SetCostMax sets the "cost_max" field.
func (u *TreatmentUpsertOne) SetCostMax(v float64) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCostMax(v)
	})
}

// AddCostMax adds v to the "cost_max" field.
func (u *TreatmentUpsertOne) AddCostMax(v float64) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddCostMax(v)
	})
}

// UpdateCostMax sets the "cost_max" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateCostMax() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCostMax()
	})
}

// SetCurrency sets the "currency" field.
func (u *TreatmentUpsertOne) SetCurrency(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateCurrency() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCurrency()
	})
}

// SetStayDaysMin sets the "stay_days_min" field.
func (u *TreatmentUpsertOne) SetStayDaysMin(v int) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStayDaysMin(v)
	})
}

// AddStayDaysMin adds v to the "stay_days_min" field.
func (u *TreatmentUpsertOne) AddStayDaysMin(v int) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddStayDaysMin(v)
	})
}

// UpdateStayDaysMin sets the "stay_days_min" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateStayDaysMin() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStayDaysMin()
	})
}

// ClearStayDaysMin clears the value of the "stay_days_min" field.
func (u *TreatmentUpsertOne) ClearStayDaysMin() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearStayDaysMin()
	})
}

// SetStayDaysMax sets the "stay_days_max" field.
func (u *TreatmentUpsertOne) SetStayDaysMax(v int) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStayDaysMax(v)
	})
}

// AddStayDaysMax adds v to the "stay_days_max" field.
func (u *TreatmentUpsertOne) AddStayDaysMax(v int) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddStayDaysMax(v)
	})
}

// UpdateStayDaysMax sets the "stay_days_max" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateStayDaysMax() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStayDaysMax()
	})
}

// ClearStayDaysMax clears the value of the "stay_days_max" field.
func (u *TreatmentUpsertOne) ClearStayDaysMax() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearStayDaysMax()
	})
}

// SetFaq sets the "faq" field.
func (u *TreatmentUpsertOne) SetFaq(v []content.FAQItem) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetFaq(v)
	})
}

// UpdateFaq sets the "faq" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateFaq() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateFaq()
	})
}

// ClearFaq clears the value of the "faq" field.
func (u *TreatmentUpsertOne) ClearFaq() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearFaq()
	})
}

// SetImages sets the "images" field.
func (u *TreatmentUpsertOne) SetImages(v content.Images) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetImages(v)
	})
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateImages() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateImages()
	})
}

// ClearImages clears the value of the "images" field.
func (u *TreatmentUpsertOne) ClearImages() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearImages()
	})
}

// SetFeatured sets the "featured" field.
func (u *TreatmentUpsertOne) SetFeatured(v bool) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateFeatured() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateFeatured()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *TreatmentUpsertOne) SetMetaTitleEn(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMetaTitleEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *TreatmentUpsertOne) ClearMetaTitleEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *TreatmentUpsertOne) SetMetaTitleAr(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMetaTitleAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *TreatmentUpsertOne) ClearMetaTitleAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *TreatmentUpsertOne) SetMetaDescriptionEn(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMetaDescriptionEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *TreatmentUpsertOne) ClearMetaDescriptionEn() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *TreatmentUpsertOne) SetMetaDescriptionAr(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMetaDescriptionAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *TreatmentUpsertOne) ClearMetaDescriptionAr() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// Exec executes the query.
func (u *TreatmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TreatmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TreatmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TreatmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TreatmentUpsertOne.ID is not supported by MySQL driver. Use TreatmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TreatmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TreatmentCreateBulk is the builder for creating many Treatment entities in bulk.
type TreatmentCreateBulk struct {
	config
	err      error
	builders []*TreatmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Treatment entities in the database.
func (_c *TreatmentCreateBulk) Save(ctx context.Context) ([]*Treatment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Treatment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TreatmentMutation)
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
func (_c *TreatmentCreateBulk) SaveX(ctx context.Context) []*Treatment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Treatment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TreatmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TreatmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *TreatmentUpsertBulk {
	_c.conflict = opts
	return &TreatmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TreatmentCreateBulk) OnConflictColumns(columns ...string) *TreatmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TreatmentUpsertBulk{
		create: _c,
	}
}

// TreatmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Treatment nodes.
type TreatmentUpsertBulk struct {
	create *TreatmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(treatment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TreatmentUpsertBulk) UpdateNewValues() *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(treatment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(treatment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TreatmentUpsertBulk) Ignore() *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TreatmentUpsertBulk) DoNothing() *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TreatmentCreateBulk.OnConflict
// documentation for more info.
func (u *TreatmentUpsertBulk) Update(set func(*TreatmentUpsert)) *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TreatmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentUpsertBulk) SetUpdatedAt(v time.Time) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateUpdatedAt() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *TreatmentUpsertBulk) SetPublished(v bool) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdatePublished() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *TreatmentUpsertBulk) SetPublishedAt(v time.Time) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdatePublishedAt() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *TreatmentUpsertBulk) ClearPublishedAt() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *TreatmentUpsertBulk) SetIsArchived(v bool) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateIsArchived() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *TreatmentUpsertBulk) SetArchivedAt(v time.Time) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateArchivedAt() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *TreatmentUpsertBulk) ClearArchivedAt() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearArchivedAt()
	})
}

// SetNameEn sets the "name_en" field.
func (u *TreatmentUpsertBulk) SetNameEn(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateNameEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *TreatmentUpsertBulk) SetNameAr(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateNameAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *TreatmentUpsertBulk) SetSlug(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateSlug() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSlug()
	})
}

// SetCategoryEn sets the "category_en" field.
func (u *TreatmentUpsertBulk) SetCategoryEn(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCategoryEn(v)
	})
}

// UpdateCategoryEn sets the "category_en" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateCategoryEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCategoryEn()
	})
}

// ClearCategoryEn clears the value of the "category_en" field.
func (u *TreatmentUpsertBulk) ClearCategoryEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearCategoryEn()
	})
}

// SetCategoryAr sets the "category_ar" field.
func (u *TreatmentUpsertBulk) SetCategoryAr(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCategoryAr(v)
	})
}

// UpdateCategoryAr sets the "category_ar" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateCategoryAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCategoryAr()
	})
}

// ClearCategoryAr clears the value of the "category_ar" field.
func (u *TreatmentUpsertBulk) ClearCategoryAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearCategoryAr()
	})
}

// SetSummaryEn sets the "summary_en" field.
func (u *TreatmentUpsertBulk) SetSummaryEn(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSummaryEn(v)
	})
}

// UpdateSummaryEn sets the "summary_en" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateSummaryEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSummaryEn()
	})
}

// ClearSummaryEn clears the value of the "summary_en" field.
func (u *TreatmentUpsertBulk) ClearSummaryEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearSummaryEn()
	})
}

// SetSummaryAr sets the "summary_ar" field.
func (u *TreatmentUpsertBulk) SetSummaryAr(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSummaryAr(v)
	})
}

// UpdateSummaryAr sets the "summary_ar" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateSummaryAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSummaryAr()
	})
}

// ClearSummaryAr clears the value of the "summary_ar" field.
func (u *TreatmentUpsertBulk) ClearSummaryAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearSummaryAr()
	})
}

// SetBodyEn sets the "body_en" field.
func (u *TreatmentUpsertBulk) SetBodyEn(v content.Document) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetBodyEn(v)
	})
}

// UpdateBodyEn sets the "body_en" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateBodyEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateBodyEn()
	})
}

// ClearBodyEn clears the value of the "body_en" field.
func (u *TreatmentUpsertBulk) ClearBodyEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearBodyEn()
	})
}

// SetBodyAr sets the "body_ar" field.
func (u *TreatmentUpsertBulk) SetBodyAr(v content.Document) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetBodyAr(v)
	})
}

// UpdateBodyAr sets the "body_ar" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateBodyAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateBodyAr()
	})
}

// ClearBodyAr clears the value of the "body_ar" field.
func (u *TreatmentUpsertBulk) ClearBodyAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearBodyAr()
	})
}

// SetCostMin sets the "cost_min" field.
func (u *TreatmentUpsertBulk) SetCostMin(v float64) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCostMin(v)
	})
}

// AddCostMin adds v to the "cost_min" field.
func (u *TreatmentUpsertBulk) AddCostMin(v float64) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddCostMin(v)
	})
}

// UpdateCostMin sets the "cost_min" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateCostMin() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCostMin()
	})
}

// SetCostMax sets the "cost_max" field.
func (u *TreatmentUpsertBulk) SetCostMax(v float64) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCostMax(v)
	})
}

// AddCostMax adds v to the "cost_max" field.
func (u *TreatmentUpsertBulk) AddCostMax(v float64) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddCostMax(v)
	})
}

// UpdateCostMax sets the "cost_max" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateCostMax() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCostMax()
	})
}

// SetCurrency sets the "currency" field.
func (u *TreatmentUpsertBulk) SetCurrency(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateCurrency() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateCurrency()
	})
}

// SetStayDaysMin sets the "stay_days_min" field.
func (u *TreatmentUpsertBulk) SetStayDaysMin(v int) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStayDaysMin(v)
	})
}

// AddStayDaysMin adds v to the "stay_days_min" field.
func (u *TreatmentUpsertBulk) AddStayDaysMin(v int) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddStayDaysMin(v)
	})
}

// UpdateStayDaysMin sets the "stay_days_min" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateStayDaysMin() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStayDaysMin()
	})
}

// ClearStayDaysMin clears the value of the "stay_days_min" field.
func (u *TreatmentUpsertBulk) ClearStayDaysMin() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearStayDaysMin()
	})
}

// SetStayDaysMax sets the "stay_days_max" field.
func (u *TreatmentUpsertBulk) SetStayDaysMax(v int) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStayDaysMax(v)
	})
}

// AddStayDaysMax adds v to the "stay_days_max" field.
func (u *TreatmentUpsertBulk) AddStayDaysMax(v int) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.AddStayDaysMax(v)
	})
}

// UpdateStayDaysMax sets the "stay_days_max" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateStayDaysMax() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStayDaysMax()
	})
}

// ClearStayDaysMax clears the value of the "stay_days_max" field.
func (u *TreatmentUpsertBulk) ClearStayDaysMax() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearStayDaysMax()
	})
}

// SetFaq sets the "faq" field.
func (u *TreatmentUpsertBulk) SetFaq(v []content.FAQItem) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetFaq(v)
	})
}

// UpdateFaq sets the "faq" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateFaq() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateFaq()
	})
}

// ClearFaq clears the value of the "faq" field.
func (u *TreatmentUpsertBulk) ClearFaq() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearFaq()
	})
}

// SetImages sets the "images" field.
func (u *TreatmentUpsertBulk) SetImages(v content.Images) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetImages(v)
	})
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateImages() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateImages()
	})
}

// ClearImages clears the value of the "images" field.
func (u *TreatmentUpsertBulk) ClearImages() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearImages()
	})
}

// SetFeatured sets the "featured" field.
func (u *TreatmentUpsertBulk) SetFeatured(v bool) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateFeatured() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateFeatured()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *TreatmentUpsertBulk) SetMetaTitleEn(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMetaTitleEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *TreatmentUpsertBulk) ClearMetaTitleEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *TreatmentUpsertBulk) SetMetaTitleAr(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMetaTitleAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *TreatmentUpsertBulk) ClearMetaTitleAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *TreatmentUpsertBulk) SetMetaDescriptionEn(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMetaDescriptionEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *TreatmentUpsertBulk) ClearMetaDescriptionEn() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *TreatmentUpsertBulk) SetMetaDescriptionAr(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMetaDescriptionAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *TreatmentUpsertBulk) ClearMetaDescriptionAr() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// Exec executes the query.
func (u *TreatmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TreatmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TreatmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TreatmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
