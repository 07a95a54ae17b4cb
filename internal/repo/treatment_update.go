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
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// TreatmentUpdate is the builder for updating Treatment entities.
type TreatmentUpdate struct {
	config
	hooks    []Hook
	mutation *TreatmentMutation
}

// Where appends a list predicates to the TreatmentUpdate builder.
func (_u *TreatmentUpdate) Where(ps ...predicate.Treatment) *TreatmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TreatmentUpdate) SetUpdatedAt(v time.Time) *TreatmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *TreatmentUpdate) SetPublished(v bool) *TreatmentUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillablePublished(v *bool) *TreatmentUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *TreatmentUpdate) SetPublishedAt(v time.Time) *TreatmentUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillablePublishedAt(v *time.Time) *TreatmentUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *TreatmentUpdate) ClearPublishedAt() *TreatmentUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *TreatmentUpdate) SetIsArchived(v bool) *TreatmentUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableIsArchived(v *bool) *TreatmentUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TreatmentUpdate) SetArchivedAt(v time.Time) *TreatmentUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableArchivedAt(v *time.Time) *TreatmentUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TreatmentUpdate) ClearArchivedAt() *TreatmentUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *TreatmentUpdate) SetNameEn(v string) *TreatmentUpdate {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableNameEn(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *TreatmentUpdate) SetNameAr(v string) *TreatmentUpdate {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableNameAr(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TreatmentUpdate) SetSlug(v string) *TreatmentUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableSlug(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCategoryEn sets the "category_en" field.
func (_u *TreatmentUpdate) SetCategoryEn(v string) *TreatmentUpdate {
	_u.mutation.SetCategoryEn(v)
	return _u
}

// SetNillableCategoryEn sets the "category_en" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableCategoryEn(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetCategoryEn(*v)
	}
	return _u
}

// ClearCategoryEn clears the value of the "category_en" field.
func (_u *TreatmentUpdate) ClearCategoryEn() *TreatmentUpdate {
	_u.mutation.ClearCategoryEn()
	return _u
}

// SetCategoryAr sets the "category_ar" field.
func (_u *TreatmentUpdate) SetCategoryAr(v string) *TreatmentUpdate {
	_u.mutation.SetCategoryAr(v)
	return _u
}

// SetNillableCategoryAr sets the "category_ar" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableCategoryAr(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetCategoryAr(*v)
	}
	return _u
}

// ClearCategoryAr clears the value of the "category_ar" field.
func (_u *TreatmentUpdate) ClearCategoryAr() *TreatmentUpdate {
	_u.mutation.ClearCategoryAr()
	return _u
}

// SetSummaryEn sets the "summary_en" field.
func (_u *TreatmentUpdate) SetSummaryEn(v string) *TreatmentUpdate {
	_u.mutation.SetSummaryEn(v)
	return _u
}

// SetNillableSummaryEn sets the "summary_en" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableSummaryEn(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetSummaryEn(*v)
	}
	return _u
}

// ClearSummaryEn clears the value of the "summary_en" field.
func (_u *TreatmentUpdate) ClearSummaryEn() *TreatmentUpdate {
	_u.mutation.ClearSummaryEn()
	return _u
}

// SetSummaryAr sets the "summary_ar" field.
func (_u *TreatmentUpdate) SetSummaryAr(v string) *TreatmentUpdate {
	_u.mutation.SetSummaryAr(v)
	return _u
}

// SetNillableSummaryAr sets the "summary_ar" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableSummaryAr(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetSummaryAr(*v)
	}
	return _u
}

// ClearSummaryAr clears the value of the "summary_ar" field.
func (_u *TreatmentUpdate) ClearSummaryAr() *TreatmentUpdate {
	_u.mutation.ClearSummaryAr()
	return _u
}

// SetBodyEn sets the "body_en" field.
func (_u *TreatmentUpdate) SetBodyEn(v content.Document) *TreatmentUpdate {
	_u.mutation.SetBodyEn(v)
	return _u
}

// SetNillableBodyEn sets the "body_en" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableBodyEn(v *content.Document) *TreatmentUpdate {
	if v != nil {
		_u.SetBodyEn(*v)
	}
	return _u
}

// ClearBodyEn clears the value of the "body_en" field.
func (_u *TreatmentUpdate) ClearBodyEn() *TreatmentUpdate {
	_u.mutation.ClearBodyEn()
	return _u
}

// SetBodyAr sets the "body_ar" field.
func (_u *TreatmentUpdate) SetBodyAr(v content.Document) *TreatmentUpdate {
	_u.mutation.SetBodyAr(v)
	return _u
}

// SetNillableBodyAr sets the "body_ar" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableBodyAr(v *content.Document) *TreatmentUpdate {
	if v != nil {
		_u.SetBodyAr(*v)
	}
	return _u
}

// ClearBodyAr clears the value of the "body_ar" field.
func (_u *TreatmentUpdate) ClearBodyAr() *TreatmentUpdate {
	_u.mutation.ClearBodyAr()
	return _u
}

// SetCostMin sets the "cost_min" field.
func (_u *TreatmentUpdate) SetCostMin(v float64) *TreatmentUpdate {
	_u.mutation.ResetCostMin()
	_u.mutation.SetCostMin(v)
	return _u
}

// SetNillableCostMin sets the "cost_min" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableCostMin(v *float64) *TreatmentUpdate {
	if v != nil {
		_u.SetCostMin(*v)
	}
	return _u
}

// AddCostMin adds value to the "cost_min" field.
func (_u *TreatmentUpdate) AddCostMin(v float64) *TreatmentUpdate {
	_u.mutation.AddCostMin(v)
	return _u
}

// SetCostMax sets the "cost_max" field.
func (_u *TreatmentUpdate) SetCostMax(v float64) *TreatmentUpdate {
	_u.mutation.ResetCostMax()
	_u.mutation.SetCostMax(v)
	return _u
}

// SetNillableCostMax sets the "cost_max" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableCostMax(v *float64) *TreatmentUpdate {
	if v != nil {
		_u.SetCostMax(*v)
	}
	return _u
}

// AddCostMax adds value to the "cost_max" field.
func (_u *TreatmentUpdate) AddCostMax(v float64) *TreatmentUpdate {
	_u.mutation.AddCostMax(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TreatmentUpdate) SetCurrency(v string) *TreatmentUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableCurrency(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStayDaysMin sets the "stay_days_min" field.
func (_u *TreatmentUpdate) SetStayDaysMin(v int) *TreatmentUpdate {
	_u.mutation.ResetStayDaysMin()
	_u.mutation.SetStayDaysMin(v)
	return _u
}

// SetNillableStayDaysMin sets the "stay_days_min" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableStayDaysMin(v *int) *TreatmentUpdate {
	if v != nil {
		_u.SetStayDaysMin(*v)
	}
	return _u
}

// AddStayDaysMin adds value to the "stay_days_min" field.
func (_u *TreatmentUpdate) AddStayDaysMin(v int) *TreatmentUpdate {
	_u.mutation.AddStayDaysMin(v)
	return _u
}

// ClearStayDaysMin clears the value of the "stay_days_min" field.
func (_u *TreatmentUpdate) ClearStayDaysMin() *TreatmentUpdate {
	_u.mutation.ClearStayDaysMin()
	return _u
}

// SetStayDaysMax sets the "stay_days_max" field.
func (_u *TreatmentUpdate) SetStayDaysMax(v int) *TreatmentUpdate {
	_u.mutation.ResetStayDaysMax()
	_u.mutation.SetStayDaysMax(v)
	return _u
}

// SetNillableStayDaysMax sets the "stay_days_max" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableStayDaysMax(v *int) *TreatmentUpdate {
	if v != nil {
		_u.SetStayDaysMax(*v)
	}
	return _u
}

// AddStayDaysMax adds value to the "stay_days_max" field.
func (_u *TreatmentUpdate) AddStayDaysMax(v int) *TreatmentUpdate {
	_u.mutation.AddStayDaysMax(v)
	return _u
}

// ClearStayDaysMax clears the value of the "stay_days_max" field.
func (_u *TreatmentUpdate) ClearStayDaysMax() *TreatmentUpdate {
	_u.mutation.ClearStayDaysMax()
	return _u
}

// SetFaq sets the "faq" field.
func (_u *TreatmentUpdate) SetFaq(v []content.FAQItem) *TreatmentUpdate {
	_u.mutation.SetFaq(v)
	return _u
}

// AppendFaq appends value to the "faq" field.
func (_u *TreatmentUpdate) AppendFaq(v []content.FAQItem) *TreatmentUpdate {
	_u.mutation.AppendFaq(v)
	return _u
}

// ClearFaq clears the value of the "faq" field.
func (_u *TreatmentUpdate) ClearFaq() *TreatmentUpdate {
	_u.mutation.ClearFaq()
	return _u
}

// SetImages sets the "images" field.
func (_u *TreatmentUpdate) SetImages(v content.Images) *TreatmentUpdate {
	_u.mutation.SetImages(v)
	return _u
}

// SetNillableImages sets the "images" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableImages(v *content.Images) *TreatmentUpdate {
	if v != nil {
		_u.SetImages(*v)
	}
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *TreatmentUpdate) ClearImages() *TreatmentUpdate {
	_u.mutation.ClearImages()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *TreatmentUpdate) SetFeatured(v bool) *TreatmentUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableFeatured(v *bool) *TreatmentUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *TreatmentUpdate) SetMetaTitleEn(v string) *TreatmentUpdate {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMetaTitleEn(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *TreatmentUpdate) ClearMetaTitleEn() *TreatmentUpdate {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *TreatmentUpdate) SetMetaTitleAr(v string) *TreatmentUpdate {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMetaTitleAr(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *TreatmentUpdate) ClearMetaTitleAr() *TreatmentUpdate {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *TreatmentUpdate) SetMetaDescriptionEn(v string) *TreatmentUpdate {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMetaDescriptionEn(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *TreatmentUpdate) ClearMetaDescriptionEn() *TreatmentUpdate {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *TreatmentUpdate) SetMetaDescriptionAr(v string) *TreatmentUpdate {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMetaDescriptionAr(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *TreatmentUpdate) ClearMetaDescriptionAr() *TreatmentUpdate {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// AddHospitalIDs adds the "hospitals" edge to the Hospital entity by IDs.
func (_u *TreatmentUpdate) AddHospitalIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.AddHospitalIDs(ids...)
	return _u
}

// AddHospitals adds the "hospitals" edges to the Hospital entity.
func (_u *TreatmentUpdate) AddHospitals(v ...*Hospital) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHospitalIDs(ids...)
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by IDs.
func (_u *TreatmentUpdate) AddPackageIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.AddPackageIDs(ids...)
	return _u
}

// AddPackages adds the "packages" edges to the CarePackage entity.
func (_u *TreatmentUpdate) AddPackages(v ...*CarePackage) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackageIDs(ids...)
}

// Mutation returns the TreatmentMutation object of the builder.
func (_u *TreatmentUpdate) Mutation() *TreatmentMutation {
	return _u.mutation
}

// ClearHospitals clears all "hospitals" edges to the Hospital entity.
func (_u *TreatmentUpdate) ClearHospitals() *TreatmentUpdate {
	_u.mutation.ClearHospitals()
	return _u
}

// RemoveHospitalIDs removes the "hospitals" edge to Hospital entities by IDs.
func (_u *TreatmentUpdate) RemoveHospitalIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.RemoveHospitalIDs(ids...)
	return _u
}

// RemoveHospitals removes "hospitals" edges to Hospital entities.
func (_u *TreatmentUpdate) RemoveHospitals(v ...*Hospital) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHospitalIDs(ids...)
}

// ClearPackages clears all "packages" edges to the CarePackage entity.
func (_u *TreatmentUpdate) ClearPackages() *TreatmentUpdate {
	_u.mutation.ClearPackages()
	return _u
}

// RemovePackageIDs removes the "packages" edge to CarePackage entities by IDs.
func (_u *TreatmentUpdate) RemovePackageIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.RemovePackageIDs(ids...)
	return _u
}

// RemovePackages removes "packages" edges to CarePackage entities.
func (_u *TreatmentUpdate) RemovePackages(v ...*CarePackage) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TreatmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TreatmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TreatmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := treatment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TreatmentUpdate) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := treatment.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := treatment.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := treatment.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Treatment.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryEn(); ok {
		if err := treatment.CategoryEnValidator(v); err != nil {
			return &ValidationError{Name: "category_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.category_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryAr(); ok {
		if err := treatment.CategoryArValidator(v); err != nil {
			return &ValidationError{Name: "category_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.category_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyEn(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.body_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyAr(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.body_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CostMin(); ok {
		if err := treatment.CostMinValidator(v); err != nil {
			return &ValidationError{Name: "cost_min", err: fmt.Errorf(`repo: validator failed for field "Treatment.cost_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CostMax(); ok {
		if err := treatment.CostMaxValidator(v); err != nil {
			return &ValidationError{Name: "cost_max", err: fmt.Errorf(`repo: validator failed for field "Treatment.cost_max": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := treatment.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Treatment.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := treatment.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := treatment.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.meta_title_ar": %w`, err)}
		}
	}
	return nil
}

func (_u *TreatmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(treatment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(treatment.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(treatment.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(treatment.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(treatment.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(treatment.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(treatment.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(treatment.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(treatment.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(treatment.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryEn(); ok {
		_spec.SetField(treatment.FieldCategoryEn, field.TypeString, value)
	}
	if _u.mutation.CategoryEnCleared() {
		_spec.ClearField(treatment.FieldCategoryEn, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryAr(); ok {
		_spec.SetField(treatment.FieldCategoryAr, field.TypeString, value)
	}
	if _u.mutation.CategoryArCleared() {
		_spec.ClearField(treatment.FieldCategoryAr, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryEn(); ok {
		_spec.SetField(treatment.FieldSummaryEn, field.TypeString, value)
	}
	if _u.mutation.SummaryEnCleared() {
		_spec.ClearField(treatment.FieldSummaryEn, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryAr(); ok {
		_spec.SetField(treatment.FieldSummaryAr, field.TypeString, value)
	}
	if _u.mutation.SummaryArCleared() {
		_spec.ClearField(treatment.FieldSummaryAr, field.TypeString)
	}
	if value, ok := _u.mutation.BodyEn(); ok {
		_spec.SetField(treatment.FieldBodyEn, field.TypeJSON, value)
	}
	if _u.mutation.BodyEnCleared() {
		_spec.ClearField(treatment.FieldBodyEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.BodyAr(); ok {
		_spec.SetField(treatment.FieldBodyAr, field.TypeJSON, value)
	}
	if _u.mutation.BodyArCleared() {
		_spec.ClearField(treatment.FieldBodyAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostMin(); ok {
		_spec.SetField(treatment.FieldCostMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostMin(); ok {
		_spec.AddField(treatment.FieldCostMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostMax(); ok {
		_spec.SetField(treatment.FieldCostMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostMax(); ok {
		_spec.AddField(treatment.FieldCostMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(treatment.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.StayDaysMin(); ok {
		_spec.SetField(treatment.FieldStayDaysMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStayDaysMin(); ok {
		_spec.AddField(treatment.FieldStayDaysMin, field.TypeInt, value)
	}
	if _u.mutation.StayDaysMinCleared() {
		_spec.ClearField(treatment.FieldStayDaysMin, field.TypeInt)
	}
	if value, ok := _u.mutation.StayDaysMax(); ok {
		_spec.SetField(treatment.FieldStayDaysMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStayDaysMax(); ok {
		_spec.AddField(treatment.FieldStayDaysMax, field.TypeInt, value)
	}
	if _u.mutation.StayDaysMaxCleared() {
		_spec.ClearField(treatment.FieldStayDaysMax, field.TypeInt)
	}
	if value, ok := _u.mutation.Faq(); ok {
		_spec.SetField(treatment.FieldFaq, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFaq(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, treatment.FieldFaq, value)
		})
	}
	if _u.mutation.FaqCleared() {
		_spec.ClearField(treatment.FieldFaq, field.TypeJSON)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(treatment.FieldImages, field.TypeJSON, value)
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(treatment.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(treatment.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(treatment.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(treatment.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(treatment.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(treatment.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(treatment.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(treatment.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(treatment.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(treatment.FieldMetaDescriptionAr, field.TypeString)
	}
	if _u.mutation.HospitalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHospitalsIDs(); len(nodes) > 0 && !_u.mutation.HospitalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HospitalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackagesIDs(); len(nodes) > 0 && !_u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TreatmentUpdateOne is the builder for updating a single Treatment entity.
type TreatmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TreatmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TreatmentUpdateOne) SetUpdatedAt(v time.Time) *TreatmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *TreatmentUpdateOne) SetPublished(v bool) *TreatmentUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillablePublished(v *bool) *TreatmentUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *TreatmentUpdateOne) SetPublishedAt(v time.Time) *TreatmentUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillablePublishedAt(v *time.Time) *TreatmentUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *TreatmentUpdateOne) ClearPublishedAt() *TreatmentUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *TreatmentUpdateOne) SetIsArchived(v bool) *TreatmentUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableIsArchived(v *bool) *TreatmentUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TreatmentUpdateOne) SetArchivedAt(v time.Time) *TreatmentUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableArchivedAt(v *time.Time) *TreatmentUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TreatmentUpdateOne) ClearArchivedAt() *TreatmentUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *TreatmentUpdateOne) SetNameEn(v string) *TreatmentUpdateOne {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableNameEn(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *TreatmentUpdateOne) SetNameAr(v string) *TreatmentUpdateOne {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableNameAr(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TreatmentUpdateOne) SetSlug(v string) *TreatmentUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableSlug(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCategoryEn sets the "category_en" field.
func (_u *TreatmentUpdateOne) SetCategoryEn(v string) *TreatmentUpdateOne {
	_u.mutation.SetCategoryEn(v)
	return _u
}

// SetNillableCategoryEn sets the "category_en" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableCategoryEn(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetCategoryEn(*v)
	}
	return _u
}

// ClearCategoryEn clears the value of the "category_en" field.
func (_u *TreatmentUpdateOne) ClearCategoryEn() *TreatmentUpdateOne {
	_u.mutation.ClearCategoryEn()
	return _u
}

// SetCategoryAr sets the "category_ar" field.
func (_u *TreatmentUpdateOne) SetCategoryAr(v string) *TreatmentUpdateOne {
	_u.mutation.SetCategoryAr(v)
	return _u
}

// SetNillableCategoryAr sets the "category_ar" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableCategoryAr(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetCategoryAr(*v)
	}
	return _u
}

// ClearCategoryAr clears the value of the "category_ar" field.
func (_u *TreatmentUpdateOne) ClearCategoryAr() *TreatmentUpdateOne {
	_u.mutation.ClearCategoryAr()
	return _u
}

// SetSummaryEn sets the "summary_en" field.
func (_u *TreatmentUpdateOne) SetSummaryEn(v string) *TreatmentUpdateOne {
	_u.mutation.SetSummaryEn(v)
	return _u
}

// SetNillableSummaryEn sets the "summary_en" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableSummaryEn(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetSummaryEn(*v)
	}
	return _u
}

// ClearSummaryEn clears the value of the "summary_en" field.
func (_u *TreatmentUpdateOne) ClearSummaryEn() *TreatmentUpdateOne {
	_u.mutation.ClearSummaryEn()
	return _u
}

// SetSummaryAr sets the "summary_ar" field.
func (_u *TreatmentUpdateOne) SetSummaryAr(v string) *TreatmentUpdateOne {
	_u.mutation.SetSummaryAr(v)
	return _u
}

// SetNillableSummaryAr sets the "summary_ar" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableSummaryAr(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetSummaryAr(*v)
	}
	return _u
}

// ClearSummaryAr clears the value of the "summary_ar" field.
func (_u *TreatmentUpdateOne) ClearSummaryAr() *TreatmentUpdateOne {
	_u.mutation.ClearSummaryAr()
	return _u
}

// SetBodyEn sets the "body_en" field.
func (_u *TreatmentUpdateOne) SetBodyEn(v content.Document) *TreatmentUpdateOne {
	_u.mutation.SetBodyEn(v)
	return _u
}

// SetNillableBodyEn sets the "body_en" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableBodyEn(v *content.Document) *TreatmentUpdateOne {
	if v != nil {
		_u.SetBodyEn(*v)
	}
	return _u
}

// ClearBodyEn clears the value of the "body_en" field.
func (_u *TreatmentUpdateOne) ClearBodyEn() *TreatmentUpdateOne {
	_u.mutation.ClearBodyEn()
	return _u
}

// SetBodyAr sets the "body_ar" field.
func (_u *TreatmentUpdateOne) SetBodyAr(v content.Document) *TreatmentUpdateOne {
	_u.mutation.SetBodyAr(v)
	return _u
}

// SetNillableBodyAr sets the "body_ar" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableBodyAr(v *content.Document) *TreatmentUpdateOne {
	if v != nil {
		_u.SetBodyAr(*v)
	}
	return _u
}

// ClearBodyAr clears the value of the "body_ar" field.
func (_u *TreatmentUpdateOne) ClearBodyAr() *TreatmentUpdateOne {
	_u.mutation.ClearBodyAr()
	return _u
}

// SetCostMin sets the "cost_min" field.
func (_u *TreatmentUpdateOne) SetCostMin(v float64) *TreatmentUpdateOne {
	_u.mutation.ResetCostMin()
	_u.mutation.SetCostMin(v)
	return _u
}

// SetNillableCostMin sets the "cost_min" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableCostMin(v *float64) *TreatmentUpdateOne {
	if v != nil {
		_u.SetCostMin(*v)
	}
	return _u
}

// AddCostMin adds value to the "cost_min" field.
func (_u *TreatmentUpdateOne) AddCostMin(v float64) *TreatmentUpdateOne {
	_u.mutation.AddCostMin(v)
	return _u
}

// SetCostMax sets the "cost_max" field.
func (_u *TreatmentUpdateOne) SetCostMax(v float64) *TreatmentUpdateOne {
	_u.mutation.ResetCostMax()
	_u.mutation.SetCostMax(v)
	return _u
}

// SetNillableCostMax sets the "cost_max" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableCostMax(v *float64) *TreatmentUpdateOne {
	if v != nil {
		_u.SetCostMax(*v)
	}
	return _u
}

// AddCostMax adds value to the "cost_max" field.
func (_u *TreatmentUpdateOne) AddCostMax(v float64) *TreatmentUpdateOne {
	_u.mutation.AddCostMax(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TreatmentUpdateOne) SetCurrency(v string) *TreatmentUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableCurrency(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStayDaysMin sets the "stay_days_min" field.
func (_u *TreatmentUpdateOne) SetStayDaysMin(v int) *TreatmentUpdateOne {
	_u.mutation.ResetStayDaysMin()
	_u.mutation.SetStayDaysMin(v)
	return _u
}

// SetNillableStayDaysMin sets the "stay_days_min" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableStayDaysMin(v *int) *TreatmentUpdateOne {
	if v != nil {
		_u.SetStayDaysMin(*v)
	}
	return _u
}

// AddStayDaysMin adds value to the "stay_days_min" field.
func (_u *TreatmentUpdateOne) AddStayDaysMin(v int) *TreatmentUpdateOne {
	_u.mutation.AddStayDaysMin(v)
	return _u
}

// ClearStayDaysMin clears the value of the "stay_days_min" field.
func (_u *TreatmentUpdateOne) ClearStayDaysMin() *TreatmentUpdateOne {
	_u.mutation.ClearStayDaysMin()
	return _u
}

// SetStayDaysMax sets the "stay_days_max" field.
func (_u *TreatmentUpdateOne) SetStayDaysMax(v int) *TreatmentUpdateOne {
	_u.mutation.ResetStayDaysMax()
	_u.mutation.SetStayDaysMax(v)
	return _u
}

// SetNillableStayDaysMax sets the "stay_days_max" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableStayDaysMax(v *int) *TreatmentUpdateOne {
	if v != nil {
		_u.SetStayDaysMax(*v)
	}
	return _u
}

// AddStayDaysMax adds value to the "stay_days_max" field.
func (_u *TreatmentUpdateOne) AddStayDaysMax(v int) *TreatmentUpdateOne {
	_u.mutation.AddStayDaysMax(v)
	return _u
}

// ClearStayDaysMax clears the value of the "stay_days_max" field.
func (_u *TreatmentUpdateOne) ClearStayDaysMax() *TreatmentUpdateOne {
	_u.mutation.ClearStayDaysMax()
	return _u
}

// SetFaq sets the "faq" field.
func (_u *TreatmentUpdateOne) SetFaq(v []content.FAQItem) *TreatmentUpdateOne {
	_u.mutation.SetFaq(v)
	return _u
}

// AppendFaq appends value to the "faq" field.
func (_u *TreatmentUpdateOne) AppendFaq(v []content.FAQItem) *TreatmentUpdateOne {
	_u.mutation.AppendFaq(v)
	return _u
}

// ClearFaq clears the value of the "faq" field.
func (_u *TreatmentUpdateOne) ClearFaq() *TreatmentUpdateOne {
	_u.mutation.ClearFaq()
	return _u
}

// SetImages sets the "images" field.
func (_u *TreatmentUpdateOne) SetImages(v content.Images) *TreatmentUpdateOne {
	_u.mutation.SetImages(v)
	return _u
}

// SetNillableImages sets the "images" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableImages(v *content.Images) *TreatmentUpdateOne {
	if v != nil {
		_u.SetImages(*v)
	}
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *TreatmentUpdateOne) ClearImages() *TreatmentUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *TreatmentUpdateOne) SetFeatured(v bool) *TreatmentUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableFeatured(v *bool) *TreatmentUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *TreatmentUpdateOne) SetMetaTitleEn(v string) *TreatmentUpdateOne {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMetaTitleEn(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *TreatmentUpdateOne) ClearMetaTitleEn() *TreatmentUpdateOne {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *TreatmentUpdateOne) SetMetaTitleAr(v string) *TreatmentUpdateOne {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMetaTitleAr(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *TreatmentUpdateOne) ClearMetaTitleAr() *TreatmentUpdateOne {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *TreatmentUpdateOne) SetMetaDescriptionEn(v string) *TreatmentUpdateOne {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMetaDescriptionEn(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *TreatmentUpdateOne) ClearMetaDescriptionEn() *TreatmentUpdateOne {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *TreatmentUpdateOne) SetMetaDescriptionAr(v string) *TreatmentUpdateOne {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMetaDescriptionAr(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *TreatmentUpdateOne) ClearMetaDescriptionAr() *TreatmentUpdateOne {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// AddHospitalIDs adds the "hospitals" edge to the Hospital entity by IDs.
func (_u *TreatmentUpdateOne) AddHospitalIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.AddHospitalIDs(ids...)
	return _u
}

// AddHospitals adds the "hospitals" edges to the Hospital entity.
func (_u *TreatmentUpdateOne) AddHospitals(v ...*Hospital) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHospitalIDs(ids...)
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by IDs.
func (_u *TreatmentUpdateOne) AddPackageIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.AddPackageIDs(ids...)
	return _u
}

// AddPackages adds the "packages" edges to the CarePackage entity.
func (_u *TreatmentUpdateOne) AddPackages(v ...*CarePackage) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackageIDs(ids...)
}

// Mutation returns the TreatmentMutation object of the builder.
func (_u *TreatmentUpdateOne) Mutation() *TreatmentMutation {
	return _u.mutation
}

// ClearHospitals clears all "hospitals" edges to the Hospital entity.
func (_u *TreatmentUpdateOne) ClearHospitals() *TreatmentUpdateOne {
	_u.mutation.ClearHospitals()
	return _u
}

// RemoveHospitalIDs removes the "hospitals" edge to Hospital entities by IDs.
func (_u *TreatmentUpdateOne) RemoveHospitalIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.RemoveHospitalIDs(ids...)
	return _u
}

// RemoveHospitals removes "hospitals" edges to Hospital entities.
func (_u *TreatmentUpdateOne) RemoveHospitals(v ...*Hospital) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHospitalIDs(ids...)
}

// ClearPackages clears all "packages" edges to the CarePackage entity.
func (_u *TreatmentUpdateOne) ClearPackages() *TreatmentUpdateOne {
	_u.mutation.ClearPackages()
	return _u
}

// RemovePackageIDs removes the "packages" edge to CarePackage entities by IDs.
func (_u *TreatmentUpdateOne) RemovePackageIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.RemovePackageIDs(ids...)
	return _u
}

// RemovePackages removes "packages" edges to CarePackage entities.
func (_u *TreatmentUpdateOne) RemovePackages(v ...*CarePackage) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackageIDs(ids...)
}

// Where appends a list predicates to the TreatmentUpdate builder.
func (_u *TreatmentUpdateOne) Where(ps ...predicate.Treatment) *TreatmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TreatmentUpdateOne) Select(field string, fields ...string) *TreatmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Treatment entity.
func (_u *TreatmentUpdateOne) Save(ctx context.Context) (*Treatment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentUpdateOne) SaveX(ctx context.Context) *Treatment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TreatmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TreatmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := treatment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TreatmentUpdateOne) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := treatment.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := treatment.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := treatment.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Treatment.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryEn(); ok {
		if err := treatment.CategoryEnValidator(v); err != nil {
			return &ValidationError{Name: "category_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.category_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryAr(); ok {
		if err := treatment.CategoryArValidator(v); err != nil {
			return &ValidationError{Name: "category_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.category_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyEn(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.body_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyAr(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.body_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CostMin(); ok {
		if err := treatment.CostMinValidator(v); err != nil {
			return &ValidationError{Name: "cost_min", err: fmt.Errorf(`repo: validator failed for field "Treatment.cost_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CostMax(); ok {
		if err := treatment.CostMaxValidator(v); err != nil {
			return &ValidationError{Name: "cost_max", err: fmt.Errorf(`repo: validator failed for field "Treatment.cost_max": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := treatment.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Treatment.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := treatment.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "Treatment.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := treatment.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "Treatment.meta_title_ar": %w`, err)}
		}
	}
	return nil
}

func (_u *TreatmentUpdateOne) sqlSave(ctx context.Context) (_node *Treatment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Treatment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, treatment.FieldID)
		for _, f := range fields {
			if !treatment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != treatment.FieldID {
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
		_spec.SetField(treatment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(treatment.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(treatment.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(treatment.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(treatment.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(treatment.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(treatment.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(treatment.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(treatment.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(treatment.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryEn(); ok {
		_spec.SetField(treatment.FieldCategoryEn, field.TypeString, value)
	}
	if _u.mutation.CategoryEnCleared() {
		_spec.ClearField(treatment.FieldCategoryEn, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryAr(); ok {
		_spec.SetField(treatment.FieldCategoryAr, field.TypeString, value)
	}
	if _u.mutation.CategoryArCleared() {
		_spec.ClearField(treatment.FieldCategoryAr, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryEn(); ok {
		_spec.SetField(treatment.FieldSummaryEn, field.TypeString, value)
	}
	if _u.mutation.SummaryEnCleared() {
		_spec.ClearField(treatment.FieldSummaryEn, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryAr(); ok {
		_spec.SetField(treatment.FieldSummaryAr, field.TypeString, value)
	}
	if _u.mutation.SummaryArCleared() {
		_spec.ClearField(treatment.FieldSummaryAr, field.TypeString)
	}
	if value, ok := _u.mutation.BodyEn(); ok {
		_spec.SetField(treatment.FieldBodyEn, field.TypeJSON, value)
	}
	if _u.mutation.BodyEnCleared() {
		_spec.ClearField(treatment.FieldBodyEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.BodyAr(); ok {
		_spec.SetField(treatment.FieldBodyAr, field.TypeJSON, value)
	}
	if _u.mutation.BodyArCleared() {
		_spec.ClearField(treatment.FieldBodyAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostMin(); ok {
		_spec.SetField(treatment.FieldCostMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostMin(); ok {
		_spec.AddField(treatment.FieldCostMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostMax(); ok {
		_spec.SetField(treatment.FieldCostMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostMax(); ok {
		_spec.AddField(treatment.FieldCostMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(treatment.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.StayDaysMin(); ok {
		_spec.SetField(treatment.FieldStayDaysMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStayDaysMin(); ok {
		_spec.AddField(treatment.FieldStayDaysMin, field.TypeInt, value)
	}
	if _u.mutation.StayDaysMinCleared() {
		_spec.ClearField(treatment.FieldStayDaysMin, field.TypeInt)
	}
	if value, ok := _u.mutation.StayDaysMax(); ok {
		_spec.SetField(treatment.FieldStayDaysMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStayDaysMax(); ok {
		_spec.AddField(treatment.FieldStayDaysMax, field.TypeInt, value)
	}
	if _u.mutation.StayDaysMaxCleared() {
		_spec.ClearField(treatment.FieldStayDaysMax, field.TypeInt)
	}
	if value, ok := _u.mutation.Faq(); ok {
		_spec.SetField(treatment.FieldFaq, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFaq(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, treatment.FieldFaq, value)
		})
	}
	if _u.mutation.FaqCleared() {
		_spec.ClearField(treatment.FieldFaq, field.TypeJSON)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(treatment.FieldImages, field.TypeJSON, value)
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(treatment.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(treatment.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(treatment.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(treatment.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(treatment.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(treatment.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(treatment.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(treatment.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(treatment.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(treatment.FieldMetaDescriptionAr, field.TypeString)
	}
	if _u.mutation.HospitalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHospitalsIDs(); len(nodes) > 0 && !_u.mutation.HospitalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HospitalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackagesIDs(); len(nodes) > 0 && !_u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Treatment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
