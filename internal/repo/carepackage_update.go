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
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// CarePackageUpdate is the builder for updating CarePackage entities.
type CarePackageUpdate struct {
	config
	hooks    []Hook
	mutation *CarePackageMutation
}

// Where appends a list predicates to the CarePackageUpdate builder.
func (_u *CarePackageUpdate) Where(ps ...predicate.CarePackage) *CarePackageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CarePackageUpdate) SetUpdatedAt(v time.Time) *CarePackageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CarePackageUpdate) SetPublished(v bool) *CarePackageUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillablePublished(v *bool) *CarePackageUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *CarePackageUpdate) SetPublishedAt(v time.Time) *CarePackageUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillablePublishedAt(v *time.Time) *CarePackageUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *CarePackageUpdate) ClearPublishedAt() *CarePackageUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *CarePackageUpdate) SetIsArchived(v bool) *CarePackageUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableIsArchived(v *bool) *CarePackageUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *CarePackageUpdate) SetArchivedAt(v time.Time) *CarePackageUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableArchivedAt(v *time.Time) *CarePackageUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *CarePackageUpdate) ClearArchivedAt() *CarePackageUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *CarePackageUpdate) SetTreatmentID(v uuid.UUID) *CarePackageUpdate {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableTreatmentID(v *uuid.UUID) *CarePackageUpdate {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetHospitalID sets the "hospital_id" field.
func (_u *CarePackageUpdate) SetHospitalID(v uuid.UUID) *CarePackageUpdate {
	_u.mutation.SetHospitalID(v)
	return _u
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableHospitalID(v *uuid.UUID) *CarePackageUpdate {
	if v != nil {
		_u.SetHospitalID(*v)
	}
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *CarePackageUpdate) SetNameEn(v string) *CarePackageUpdate {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableNameEn(v *string) *CarePackageUpdate {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *CarePackageUpdate) SetNameAr(v string) *CarePackageUpdate {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableNameAr(v *string) *CarePackageUpdate {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CarePackageUpdate) SetSlug(v string) *CarePackageUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableSlug(v *string) *CarePackageUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *CarePackageUpdate) SetDescriptionEn(v string) *CarePackageUpdate {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableDescriptionEn(v *string) *CarePackageUpdate {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (_u *CarePackageUpdate) ClearDescriptionEn() *CarePackageUpdate {
	_u.mutation.ClearDescriptionEn()
	return _u
}

// SetDescriptionAr sets the "description_ar" field.
func (_u *CarePackageUpdate) SetDescriptionAr(v string) *CarePackageUpdate {
	_u.mutation.SetDescriptionAr(v)
	return _u
}

// SetNillableDescriptionAr sets the "description_ar" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableDescriptionAr(v *string) *CarePackageUpdate {
	if v != nil {
		_u.SetDescriptionAr(*v)
	}
	return _u
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (_u *CarePackageUpdate) ClearDescriptionAr() *CarePackageUpdate {
	_u.mutation.ClearDescriptionAr()
	return _u
}

// SetPrice sets the "price" field.
func (_u *CarePackageUpdate) SetPrice(v float64) *CarePackageUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillablePrice(v *float64) *CarePackageUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CarePackageUpdate) AddPrice(v float64) *CarePackageUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CarePackageUpdate) SetCurrency(v string) *CarePackageUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableCurrency(v *string) *CarePackageUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDurationDays sets the "duration_days" field.
func (_u *CarePackageUpdate) SetDurationDays(v int) *CarePackageUpdate {
	_u.mutation.ResetDurationDays()
	_u.mutation.SetDurationDays(v)
	return _u
}

// SetNillableDurationDays sets the "duration_days" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableDurationDays(v *int) *CarePackageUpdate {
	if v != nil {
		_u.SetDurationDays(*v)
	}
	return _u
}

// AddDurationDays adds value to the "duration_days" field.
func (_u *CarePackageUpdate) AddDurationDays(v int) *CarePackageUpdate {
	_u.mutation.AddDurationDays(v)
	return _u
}

// ClearDurationDays clears the value of the "duration_days" field.
func (_u *CarePackageUpdate) ClearDurationDays() *CarePackageUpdate {
	_u.mutation.ClearDurationDays()
	return _u
}

// SetInclusionsEn sets the "inclusions_en" field.
func (_u *CarePackageUpdate) SetInclusionsEn(v []string) *CarePackageUpdate {
	_u.mutation.SetInclusionsEn(v)
	return _u
}

// AppendInclusionsEn appends value to the "inclusions_en" field.
func (_u *CarePackageUpdate) AppendInclusionsEn(v []string) *CarePackageUpdate {
	_u.mutation.AppendInclusionsEn(v)
	return _u
}

// ClearInclusionsEn clears the value of the "inclusions_en" field.
func (_u *CarePackageUpdate) ClearInclusionsEn() *CarePackageUpdate {
	_u.mutation.ClearInclusionsEn()
	return _u
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (_u *CarePackageUpdate) SetInclusionsAr(v []string) *CarePackageUpdate {
	_u.mutation.SetInclusionsAr(v)
	return _u
}

// AppendInclusionsAr appends value to the "inclusions_ar" field.
func (_u *CarePackageUpdate) AppendInclusionsAr(v []string) *CarePackageUpdate {
	_u.mutation.AppendInclusionsAr(v)
	return _u
}

// ClearInclusionsAr clears the value of the "inclusions_ar" field.
func (_u *CarePackageUpdate) ClearInclusionsAr() *CarePackageUpdate {
	_u.mutation.ClearInclusionsAr()
	return _u
}

// SetExclusionsEn sets the "exclusions_en" field.
func (_u *CarePackageUpdate) SetExclusionsEn(v []string) *CarePackageUpdate {
	_u.mutation.SetExclusionsEn(v)
	return _u
}

// AppendExclusionsEn appends value to the "exclusions_en" field.
func (_u *CarePackageUpdate) AppendExclusionsEn(v []string) *CarePackageUpdate {
	_u.mutation.AppendExclusionsEn(v)
	return _u
}

// ClearExclusionsEn clears the value of the "exclusions_en" field.
func (_u *CarePackageUpdate) ClearExclusionsEn() *CarePackageUpdate {
	_u.mutation.ClearExclusionsEn()
	return _u
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (_u *CarePackageUpdate) SetExclusionsAr(v []string) *CarePackageUpdate {
	_u.mutation.SetExclusionsAr(v)
	return _u
}

// AppendExclusionsAr appends value to the "exclusions_ar" field.
func (_u *CarePackageUpdate) AppendExclusionsAr(v []string) *CarePackageUpdate {
	_u.mutation.AppendExclusionsAr(v)
	return _u
}

// ClearExclusionsAr clears the value of the "exclusions_ar" field.
func (_u *CarePackageUpdate) ClearExclusionsAr() *CarePackageUpdate {
	_u.mutation.ClearExclusionsAr()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *CarePackageUpdate) SetFeatured(v bool) *CarePackageUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *CarePackageUpdate) SetNillableFeatured(v *bool) *CarePackageUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *CarePackageUpdate) SetTreatment(v *Treatment) *CarePackageUpdate {
	return _u.SetTreatmentID(v.ID)
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_u *CarePackageUpdate) SetHospital(v *Hospital) *CarePackageUpdate {
	return _u.SetHospitalID(v.ID)
}

// Mutation returns the CarePackageMutation object of the builder.
func (_u *CarePackageUpdate) Mutation() *CarePackageMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *CarePackageUpdate) ClearTreatment() *CarePackageUpdate {
	_u.mutation.ClearTreatment()
	return _u
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (_u *CarePackageUpdate) ClearHospital() *CarePackageUpdate {
	_u.mutation.ClearHospital()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CarePackageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CarePackageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CarePackageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CarePackageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CarePackageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := carepackage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CarePackageUpdate) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := carepackage.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "CarePackage.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := carepackage.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "CarePackage.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := carepackage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "CarePackage.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := carepackage.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "CarePackage.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := carepackage.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "CarePackage.currency": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CarePackage.treatment"`)
	}
	if _u.mutation.HospitalCleared() && len(_u.mutation.HospitalIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CarePackage.hospital"`)
	}
	return nil
}

func (_u *CarePackageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carepackage.Table, carepackage.Columns, sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(carepackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(carepackage.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(carepackage.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(carepackage.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(carepackage.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(carepackage.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(carepackage.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(carepackage.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(carepackage.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(carepackage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(carepackage.FieldDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.DescriptionEnCleared() {
		_spec.ClearField(carepackage.FieldDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionAr(); ok {
		_spec.SetField(carepackage.FieldDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.DescriptionArCleared() {
		_spec.ClearField(carepackage.FieldDescriptionAr, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(carepackage.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(carepackage.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(carepackage.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationDays(); ok {
		_spec.SetField(carepackage.FieldDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationDays(); ok {
		_spec.AddField(carepackage.FieldDurationDays, field.TypeInt, value)
	}
	if _u.mutation.DurationDaysCleared() {
		_spec.ClearField(carepackage.FieldDurationDays, field.TypeInt)
	}
	if value, ok := _u.mutation.InclusionsEn(); ok {
		_spec.SetField(carepackage.FieldInclusionsEn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInclusionsEn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldInclusionsEn, value)
		})
	}
	if _u.mutation.InclusionsEnCleared() {
		_spec.ClearField(carepackage.FieldInclusionsEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.InclusionsAr(); ok {
		_spec.SetField(carepackage.FieldInclusionsAr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInclusionsAr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldInclusionsAr, value)
		})
	}
	if _u.mutation.InclusionsArCleared() {
		_spec.ClearField(carepackage.FieldInclusionsAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExclusionsEn(); ok {
		_spec.SetField(carepackage.FieldExclusionsEn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExclusionsEn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldExclusionsEn, value)
		})
	}
	if _u.mutation.ExclusionsEnCleared() {
		_spec.ClearField(carepackage.FieldExclusionsEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExclusionsAr(); ok {
		_spec.SetField(carepackage.FieldExclusionsAr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExclusionsAr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldExclusionsAr, value)
		})
	}
	if _u.mutation.ExclusionsArCleared() {
		_spec.ClearField(carepackage.FieldExclusionsAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(carepackage.FieldFeatured, field.TypeBool, value)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carepackage.TreatmentTable,
			Columns: []string{carepackage.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carepackage.TreatmentTable,
			Columns: []string{carepackage.TreatmentColumn},
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
	if _u.mutation.HospitalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carepackage.HospitalTable,
			Columns: []string{carepackage.HospitalColumn},
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
			Table:   carepackage.HospitalTable,
			Columns: []string{carepackage.HospitalColumn},
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
			err = &NotFoundError{carepackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CarePackageUpdateOne is the builder for updating a single CarePackage entity.
type CarePackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CarePackageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CarePackageUpdateOne) SetUpdatedAt(v time.Time) *CarePackageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CarePackageUpdateOne) SetPublished(v bool) *CarePackageUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillablePublished(v *bool) *CarePackageUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *CarePackageUpdateOne) SetPublishedAt(v time.Time) *CarePackageUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillablePublishedAt(v *time.Time) *CarePackageUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *CarePackageUpdateOne) ClearPublishedAt() *CarePackageUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *CarePackageUpdateOne) SetIsArchived(v bool) *CarePackageUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableIsArchived(v *bool) *CarePackageUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *CarePackageUpdateOne) SetArchivedAt(v time.Time) *CarePackageUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableArchivedAt(v *time.Time) *CarePackageUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *CarePackageUpdateOne) ClearArchivedAt() *CarePackageUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *CarePackageUpdateOne) SetTreatmentID(v uuid.UUID) *CarePackageUpdateOne {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableTreatmentID(v *uuid.UUID) *CarePackageUpdateOne {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetHospitalID sets the "hospital_id" field.
func (_u *CarePackageUpdateOne) SetHospitalID(v uuid.UUID) *CarePackageUpdateOne {
	_u.mutation.SetHospitalID(v)
	return _u
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableHospitalID(v *uuid.UUID) *CarePackageUpdateOne {
	if v != nil {
		_u.SetHospitalID(*v)
	}
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *CarePackageUpdateOne) SetNameEn(v string) *CarePackageUpdateOne {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableNameEn(v *string) *CarePackageUpdateOne {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetNameAr sets the "name_ar" field.
func (_u *CarePackageUpdateOne) SetNameAr(v string) *CarePackageUpdateOne {
	_u.mutation.SetNameAr(v)
	return _u
}

// SetNillableNameAr sets the "name_ar" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableNameAr(v *string) *CarePackageUpdateOne {
	if v != nil {
		_u.SetNameAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CarePackageUpdateOne) SetSlug(v string) *CarePackageUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableSlug(v *string) *CarePackageUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *CarePackageUpdateOne) SetDescriptionEn(v string) *CarePackageUpdateOne {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableDescriptionEn(v *string) *CarePackageUpdateOne {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (_u *CarePackageUpdateOne) ClearDescriptionEn() *CarePackageUpdateOne {
	_u.mutation.ClearDescriptionEn()
	return _u
}

// SetDescriptionAr sets the "description_ar" field.
func (_u *CarePackageUpdateOne) SetDescriptionAr(v string) *CarePackageUpdateOne {
	_u.mutation.SetDescriptionAr(v)
	return _u
}

// SetNillableDescriptionAr sets the "description_ar" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableDescriptionAr(v *string) *CarePackageUpdateOne {
	if v != nil {
		_u.SetDescriptionAr(*v)
	}
	return _u
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (_u *CarePackageUpdateOne) ClearDescriptionAr() *CarePackageUpdateOne {
	_u.mutation.ClearDescriptionAr()
	return _u
}

// SetPrice sets the "price" field.
func (_u *CarePackageUpdateOne) SetPrice(v float64) *CarePackageUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillablePrice(v *float64) *CarePackageUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CarePackageUpdateOne) AddPrice(v float64) *CarePackageUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CarePackageUpdateOne) SetCurrency(v string) *CarePackageUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableCurrency(v *string) *CarePackageUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDurationDays sets the "duration_days" field.
func (_u *CarePackageUpdateOne) SetDurationDays(v int) *CarePackageUpdateOne {
	_u.mutation.ResetDurationDays()
	_u.mutation.SetDurationDays(v)
	return _u
}

// SetNillableDurationDays sets the "duration_days" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableDurationDays(v *int) *CarePackageUpdateOne {
	if v != nil {
		_u.SetDurationDays(*v)
	}
	return _u
}

// AddDurationDays adds value to the "duration_days" field.
func (_u *CarePackageUpdateOne) AddDurationDays(v int) *CarePackageUpdateOne {
	_u.mutation.AddDurationDays(v)
	return _u
}

// ClearDurationDays clears the value of the "duration_days" field.
func (_u *CarePackageUpdateOne) ClearDurationDays() *CarePackageUpdateOne {
	_u.mutation.ClearDurationDays()
	return _u
}

// SetInclusionsEn sets the "inclusions_en" field.
func (_u *CarePackageUpdateOne) SetInclusionsEn(v []string) *CarePackageUpdateOne {
	_u.mutation.SetInclusionsEn(v)
	return _u
}

// AppendInclusionsEn appends value to the "inclusions_en" field.
func (_u *CarePackageUpdateOne) AppendInclusionsEn(v []string) *CarePackageUpdateOne {
	_u.mutation.AppendInclusionsEn(v)
	return _u
}

// ClearInclusionsEn clears the value of the "inclusions_en" field.
func (_u *CarePackageUpdateOne) ClearInclusionsEn() *CarePackageUpdateOne {
	_u.mutation.ClearInclusionsEn()
	return _u
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (_u *CarePackageUpdateOne) SetInclusionsAr(v []string) *CarePackageUpdateOne {
	_u.mutation.SetInclusionsAr(v)
	return _u
}

// AppendInclusionsAr appends value to the "inclusions_ar" field.
func (_u *CarePackageUpdateOne) AppendInclusionsAr(v []string) *CarePackageUpdateOne {
	_u.mutation.AppendInclusionsAr(v)
	return _u
}

// ClearInclusionsAr clears the value of the "inclusions_ar" field.
func (_u *CarePackageUpdateOne) ClearInclusionsAr() *CarePackageUpdateOne {
	_u.mutation.ClearInclusionsAr()
	return _u
}

// SetExclusionsEn sets the "exclusions_en" field.
func (_u *CarePackageUpdateOne) SetExclusionsEn(v []string) *CarePackageUpdateOne {
	_u.mutation.SetExclusionsEn(v)
	return _u
}

// AppendExclusionsEn appends value to the "exclusions_en" field.
func (_u *CarePackageUpdateOne) AppendExclusionsEn(v []string) *CarePackageUpdateOne {
	_u.mutation.AppendExclusionsEn(v)
	return _u
}

// ClearExclusionsEn clears the value of the "exclusions_en" field.
func (_u *CarePackageUpdateOne) ClearExclusionsEn() *CarePackageUpdateOne {
	_u.mutation.ClearExclusionsEn()
	return _u
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (_u *CarePackageUpdateOne) SetExclusionsAr(v []string) *CarePackageUpdateOne {
	_u.mutation.SetExclusionsAr(v)
	return _u
}

// AppendExclusionsAr appends value to the "exclusions_ar" field.
func (_u *CarePackageUpdateOne) AppendExclusionsAr(v []string) *CarePackageUpdateOne {
	_u.mutation.AppendExclusionsAr(v)
	return _u
}

// ClearExclusionsAr clears the value of the "exclusions_ar" field.
func (_u *CarePackageUpdateOne) ClearExclusionsAr() *CarePackageUpdateOne {
	_u.mutation.ClearExclusionsAr()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *CarePackageUpdateOne) SetFeatured(v bool) *CarePackageUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *CarePackageUpdateOne) SetNillableFeatured(v *bool) *CarePackageUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *CarePackageUpdateOne) SetTreatment(v *Treatment) *CarePackageUpdateOne {
	return _u.SetTreatmentID(v.ID)
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_u *CarePackageUpdateOne) SetHospital(v *Hospital) *CarePackageUpdateOne {
	return _u.SetHospitalID(v.ID)
}

// Mutation returns the CarePackageMutation object of the builder.
func (_u *CarePackageUpdateOne) Mutation() *CarePackageMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *CarePackageUpdateOne) ClearTreatment() *CarePackageUpdateOne {
	_u.mutation.ClearTreatment()
	return _u
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (_u *CarePackageUpdateOne) ClearHospital() *CarePackageUpdateOne {
	_u.mutation.ClearHospital()
	return _u
}

// Where appends a list predicates to the CarePackageUpdate builder.
func (_u *CarePackageUpdateOne) Where(ps ...predicate.CarePackage) *CarePackageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CarePackageUpdateOne) Select(field string, fields ...string) *CarePackageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CarePackage entity.
func (_u *CarePackageUpdateOne) Save(ctx context.Context) (*CarePackage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CarePackageUpdateOne) SaveX(ctx context.Context) *CarePackage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CarePackageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CarePackageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CarePackageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := carepackage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CarePackageUpdateOne) check() error {
	if v, ok := _u.mutation.NameEn(); ok {
		if err := carepackage.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "CarePackage.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAr(); ok {
		if err := carepackage.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "CarePackage.name_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := carepackage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "CarePackage.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := carepackage.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "CarePackage.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := carepackage.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "CarePackage.currency": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CarePackage.treatment"`)
	}
	if _u.mutation.HospitalCleared() && len(_u.mutation.HospitalIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CarePackage.hospital"`)
	}
	return nil
}

func (_u *CarePackageUpdateOne) sqlSave(ctx context.Context) (_node *CarePackage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carepackage.Table, carepackage.Columns, sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CarePackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, carepackage.FieldID)
		for _, f := range fields {
			if !carepackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != carepackage.FieldID {
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
		_spec.SetField(carepackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(carepackage.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(carepackage.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(carepackage.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(carepackage.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(carepackage.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(carepackage.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(carepackage.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAr(); ok {
		_spec.SetField(carepackage.FieldNameAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(carepackage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(carepackage.FieldDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.DescriptionEnCleared() {
		_spec.ClearField(carepackage.FieldDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionAr(); ok {
		_spec.SetField(carepackage.FieldDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.DescriptionArCleared() {
		_spec.ClearField(carepackage.FieldDescriptionAr, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(carepackage.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(carepackage.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(carepackage.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationDays(); ok {
		_spec.SetField(carepackage.FieldDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationDays(); ok {
		_spec.AddField(carepackage.FieldDurationDays, field.TypeInt, value)
	}
	if _u.mutation.DurationDaysCleared() {
		_spec.ClearField(carepackage.FieldDurationDays, field.TypeInt)
	}
	if value, ok := _u.mutation.InclusionsEn(); ok {
		_spec.SetField(carepackage.FieldInclusionsEn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInclusionsEn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldInclusionsEn, value)
		})
	}
	if _u.mutation.InclusionsEnCleared() {
		_spec.ClearField(carepackage.FieldInclusionsEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.InclusionsAr(); ok {
		_spec.SetField(carepackage.FieldInclusionsAr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInclusionsAr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldInclusionsAr, value)
		})
	}
	if _u.mutation.InclusionsArCleared() {
		_spec.ClearField(carepackage.FieldInclusionsAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExclusionsEn(); ok {
		_spec.SetField(carepackage.FieldExclusionsEn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExclusionsEn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldExclusionsEn, value)
		})
	}
	if _u.mutation.ExclusionsEnCleared() {
		_spec.ClearField(carepackage.FieldExclusionsEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExclusionsAr(); ok {
		_spec.SetField(carepackage.FieldExclusionsAr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExclusionsAr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carepackage.FieldExclusionsAr, value)
		})
	}
	if _u.mutation.ExclusionsArCleared() {
		_spec.ClearField(carepackage.FieldExclusionsAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(carepackage.FieldFeatured, field.TypeBool, value)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carepackage.TreatmentTable,
			Columns: []string{carepackage.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carepackage.TreatmentTable,
			Columns: []string{carepackage.TreatmentColumn},
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
	if _u.mutation.HospitalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carepackage.HospitalTable,
			Columns: []string{carepackage.HospitalColumn},
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
			Table:   carepackage.HospitalTable,
			Columns: []string{carepackage.HospitalColumn},
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
	_node = &CarePackage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carepackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
