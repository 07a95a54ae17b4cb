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
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// CarePackageCreate is the builder for creating a CarePackage entity.
type CarePackageCreate struct {
	config
	mutation *CarePackageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CarePackageCreate) SetCreatedAt(v time.Time) *CarePackageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableCreatedAt(v *time.Time) *CarePackageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CarePackageCreate) SetUpdatedAt(v time.Time) *CarePackageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableUpdatedAt(v *time.Time) *CarePackageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *CarePackageCreate) SetPublished(v bool) *CarePackageCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillablePublished(v *bool) *CarePackageCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *CarePackageCreate) SetPublishedAt(v time.Time) *CarePackageCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillablePublishedAt(v *time.Time) *CarePackageCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *CarePackageCreate) SetIsArchived(v bool) *CarePackageCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableIsArchived(v *bool) *CarePackageCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *CarePackageCreate) SetArchivedAt(v time.Time) *CarePackageCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableArchivedAt(v *time.Time) *CarePackageCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetTreatmentID sets the "treatment_id" field.
func (_c *CarePackageCreate) SetTreatmentID(v uuid.UUID) *CarePackageCreate {
	_c.mutation.SetTreatmentID(v)
	return _c
}

// SetHospitalID sets the "hospital_id" field.
func (_c *CarePackageCreate) SetHospitalID(v uuid.UUID) *CarePackageCreate {
	_c.mutation.SetHospitalID(v)
	return _c
}

// SetNameEn sets the "name_en" field.
func (_c *CarePackageCreate) SetNameEn(v string) *CarePackageCreate {
	_c.mutation.SetNameEn(v)
	return _c
}

// SetNameAr sets the "name_ar" field.
func (_c *CarePackageCreate) SetNameAr(v string) *CarePackageCreate {
	_c.mutation.SetNameAr(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *CarePackageCreate) SetSlug(v string) *CarePackageCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescriptionEn sets the "description_en" field.
func (_c *CarePackageCreate) SetDescriptionEn(v string) *CarePackageCreate {
	_c.mutation.SetDescriptionEn(v)
	return _c
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableDescriptionEn(v *string) *CarePackageCreate {
	if v != nil {
		_c.SetDescriptionEn(*v)
	}
	return _c
}

// SetDescriptionAr sets the "description_ar" field.
func (_c *CarePackageCreate) SetDescriptionAr(v string) *CarePackageCreate {
	_c.mutation.SetDescriptionAr(v)
	return _c
}

// SetNillableDescriptionAr sets the "description_ar" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableDescriptionAr(v *string) *CarePackageCreate {
	if v != nil {
		_c.SetDescriptionAr(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *CarePackageCreate) SetPrice(v float64) *CarePackageCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *CarePackageCreate) SetCurrency(v string) *CarePackageCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableCurrency(v *string) *CarePackageCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetDurationDays sets the "duration_days" field.
func (_c *CarePackageCreate) SetDurationDays(v int) *CarePackageCreate {
	_c.mutation.SetDurationDays(v)
	return _c
}

// SetNillableDurationDays sets the "duration_days" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableDurationDays(v *int) *CarePackageCreate {
	if v != nil {
		_c.SetDurationDays(*v)
	}
	return _c
}

// SetInclusionsEn sets the "inclusions_en" field.
func (_c *CarePackageCreate) SetInclusionsEn(v []string) *CarePackageCreate {
	_c.mutation.SetInclusionsEn(v)
	return _c
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (_c *CarePackageCreate) SetInclusionsAr(v []string) *CarePackageCreate {
	_c.mutation.SetInclusionsAr(v)
	return _c
}

// SetExclusionsEn sets the "exclusions_en" field.
func (_c *CarePackageCreate) SetExclusionsEn(v []string) *CarePackageCreate {
	_c.mutation.SetExclusionsEn(v)
	return _c
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (_c *CarePackageCreate) SetExclusionsAr(v []string) *CarePackageCreate {
	_c.mutation.SetExclusionsAr(v)
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *CarePackageCreate) SetFeatured(v bool) *CarePackageCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableFeatured(v *bool) *CarePackageCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CarePackageCreate) SetID(v uuid.UUID) *CarePackageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CarePackageCreate) SetNillableID(v *uuid.UUID) *CarePackageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_c *CarePackageCreate) SetTreatment(v *Treatment) *CarePackageCreate {
	return _c.SetTreatmentID(v.ID)
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_c *CarePackageCreate) SetHospital(v *Hospital) *CarePackageCreate {
	return _c.SetHospitalID(v.ID)
}

// Mutation returns the CarePackageMutation object of the builder.
func (_c *CarePackageCreate) Mutation() *CarePackageMutation {
	return _c.mutation
}

// Save creates the CarePackage in the database.
func (_c *CarePackageCreate) Save(ctx context.Context) (*CarePackage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CarePackageCreate) SaveX(ctx context.Context) *CarePackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CarePackageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CarePackageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CarePackageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := carepackage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := carepackage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := carepackage.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := carepackage.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := carepackage.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := carepackage.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := carepackage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CarePackageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CarePackage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CarePackage.updated_at"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "CarePackage.published"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "CarePackage.is_archived"`)}
	}
	if _, ok := _c.mutation.TreatmentID(); !ok {
		return &ValidationError{Name: "treatment_id", err: errors.New(`repo: missing required field "CarePackage.treatment_id"`)}
	}
	if _, ok := _c.mutation.HospitalID(); !ok {
		return &ValidationError{Name: "hospital_id", err: errors.New(`repo: missing required field "CarePackage.hospital_id"`)}
	}
	if _, ok := _c.mutation.NameEn(); !ok {
		return &ValidationError{Name: "name_en", err: errors.New(`repo: missing required field "CarePackage.name_en"`)}
	}
	if v, ok := _c.mutation.NameEn(); ok {
		if err := carepackage.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`repo: validator failed for field "CarePackage.name_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameAr(); !ok {
		return &ValidationError{Name: "name_ar", err: errors.New(`repo: missing required field "CarePackage.name_ar"`)}
	}
	if v, ok := _c.mutation.NameAr(); ok {
		if err := carepackage.NameArValidator(v); err != nil {
			return &ValidationError{Name: "name_ar", err: fmt.Errorf(`repo: validator failed for field "CarePackage.name_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "CarePackage.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := carepackage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "CarePackage.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "CarePackage.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := carepackage.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "CarePackage.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "CarePackage.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := carepackage.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "CarePackage.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`repo: missing required field "CarePackage.featured"`)}
	}
	if len(_c.mutation.TreatmentIDs()) == 0 {
		return &ValidationError{Name: "treatment", err: errors.New(`repo: missing required edge "CarePackage.treatment"`)}
	}
	if len(_c.mutation.HospitalIDs()) == 0 {
		return &ValidationError{Name: "hospital", err: errors.New(`repo: missing required edge "CarePackage.hospital"`)}
	}
	return nil
}

func (_c *CarePackageCreate) sqlSave(ctx context.Context) (*CarePackage, error) {
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

func (_c *CarePackageCreate) createSpec() (*CarePackage, *sqlgraph.CreateSpec) {
	var (
		_node = &CarePackage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(carepackage.Table, sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(carepackage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(carepackage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(carepackage.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(carepackage.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(carepackage.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(carepackage.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.NameEn(); ok {
		_spec.SetField(carepackage.FieldNameEn, field.TypeString, value)
		_node.NameEn = value
	}
	if value, ok := _c.mutation.NameAr(); ok {
		_spec.SetField(carepackage.FieldNameAr, field.TypeString, value)
		_node.NameAr = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(carepackage.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.DescriptionEn(); ok {
		_spec.SetField(carepackage.FieldDescriptionEn, field.TypeString, value)
		_node.DescriptionEn = value
	}
	if value, ok := _c.mutation.DescriptionAr(); ok {
		_spec.SetField(carepackage.FieldDescriptionAr, field.TypeString, value)
		_node.DescriptionAr = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(carepackage.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(carepackage.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.DurationDays(); ok {
		_spec.SetField(carepackage.FieldDurationDays, field.TypeInt, value)
		_node.DurationDays = &value
	}
	if value, ok := _c.mutation.InclusionsEn(); ok {
		_spec.SetField(carepackage.FieldInclusionsEn, field.TypeJSON, value)
		_node.InclusionsEn = value
	}
	if value, ok := _c.mutation.InclusionsAr(); ok {
		_spec.SetField(carepackage.FieldInclusionsAr, field.TypeJSON, value)
		_node.InclusionsAr = value
	}
	if value, ok := _c.mutation.ExclusionsEn(); ok {
		_spec.SetField(carepackage.FieldExclusionsEn, field.TypeJSON, value)
		_node.ExclusionsEn = value
	}
	if value, ok := _c.mutation.ExclusionsAr(); ok {
		_spec.SetField(carepackage.FieldExclusionsAr, field.TypeJSON, value)
		_node.ExclusionsAr = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(carepackage.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if nodes := _c.mutation.TreatmentIDs(); len(nodes) > 0 {
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
		_node.TreatmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HospitalIDs(); len(nodes) > 0 {
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
		_node.HospitalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CarePackage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CarePackageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CarePackageCreate) OnConflict(opts ...sql.ConflictOption) *CarePackageUpsertOne {
	_c.conflict = opts
	return &CarePackageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CarePackage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CarePackageCreate) OnConflictColumns(columns ...string) *CarePackageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CarePackageUpsertOne{
		create: _c,
	}
}

type (
	// CarePackageUpsertOne is the builder for "upsert"-ing
	//  one CarePackage node.
	CarePackageUpsertOne struct {
		create *CarePackageCreate
	}

	// CarePackageUpsert is the "OnConflict" setter.
	CarePackageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CarePackageUpsert) SetUpdatedAt(v time.Time) *CarePackageUpsert {
	u.Set(carepackage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateUpdatedAt() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldUpdatedAt)
	return u
}

// SetPublished sets the "published" field.
func (u *CarePackageUpsert) SetPublished(v bool) *CarePackageUpsert {
	u.Set(carepackage.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdatePublished() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *CarePackageUpsert) SetPublishedAt(v time.Time) *CarePackageUpsert {
	u.Set(carepackage.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdatePublishedAt() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *CarePackageUpsert) ClearPublishedAt() *CarePackageUpsert {
	u.SetNull(carepackage.FieldPublishedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *CarePackageUpsert) SetIsArchived(v bool) *CarePackageUpsert {
	u.Set(carepackage.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateIsArchived() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *CarePackageUpsert) SetArchivedAt(v time.Time) *CarePackageUpsert {
	u.Set(carepackage.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateArchivedAt() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *CarePackageUpsert) ClearArchivedAt() *CarePackageUpsert {
	u.SetNull(carepackage.FieldArchivedAt)
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *CarePackageUpsert) SetTreatmentID(v uuid.UUID) *CarePackageUpsert {
	u.Set(carepackage.FieldTreatmentID, v)
	return u
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateTreatmentID() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldTreatmentID)
	return u
}

// SetHospitalID sets the "hospital_id" field.
func (u *CarePackageUpsert) SetHospitalID(v uuid.UUID) *CarePackageUpsert {
	u.Set(carepackage.FieldHospitalID, v)
	return u
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateHospitalID() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldHospitalID)
	return u
}

// SetNameEn sets the "name_en" field.
func (u *CarePackageUpsert) SetNameEn(v string) *CarePackageUpsert {
	u.Set(carepackage.FieldNameEn, v)
	return u
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateNameEn() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldNameEn)
	return u
}

// SetNameAr sets the "name_ar" field.
func (u *CarePackageUpsert) SetNameAr(v string) *CarePackageUpsert {
	u.Set(carepackage.FieldNameAr, v)
	return u
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateNameAr() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldNameAr)
	return u
}

// SetSlug sets the "slug" field.
func (u *CarePackageUpsert) SetSlug(v string) *CarePackageUpsert {
	u.Set(carepackage.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateSlug() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldSlug)
	return u
}

// SetDescriptionEn sets the "description_en" field.
func (u *CarePackageUpsert) SetDescriptionEn(v string) *CarePackageUpsert {
	u.Set(carepackage.FieldDescriptionEn, v)
	return u
}

// UpdateDescriptionEn sets the "description_en" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateDescriptionEn() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldDescriptionEn)
	return u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (u *CarePackageUpsert) ClearDescriptionEn() *CarePackageUpsert {
	u.SetNull(carepackage.FieldDescriptionEn)
	return u
}

// SetDescriptionAr sets the "description_ar" field.
func (u *CarePackageUpsert) SetDescriptionAr(v string) *CarePackageUpsert {
	u.Set(carepackage.FieldDescriptionAr, v)
	return u
}

// UpdateDescriptionAr sets the "description_ar" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateDescriptionAr() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldDescriptionAr)
	return u
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (u *CarePackageUpsert) ClearDescriptionAr() *CarePackageUpsert {
	u.SetNull(carepackage.FieldDescriptionAr)
	return u
}

// SetPrice sets the "price" field.
func (u *CarePackageUpsert) SetPrice(v float64) *CarePackageUpsert {
	u.Set(carepackage.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdatePrice() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *CarePackageUpsert) AddPrice(v float64) *CarePackageUpsert {
	u.Add(carepackage.FieldPrice, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *CarePackageUpsert) SetCurrency(v string) *CarePackageUpsert {
	u.Set(carepackage.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateCurrency() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldCurrency)
	return u
}

// SetDurationDays sets the "duration_days" field.
func (u *CarePackageUpsert) SetDurationDays(v int) *CarePackageUpsert {
	u.Set(carepackage.FieldDurationDays, v)
	return u
}

// UpdateDurationDays sets the "duration_days" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateDurationDays() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldDurationDays)
	return u
}

// AddDurationDays adds v to the "duration_days" field.
func (u *CarePackageUpsert) AddDurationDays(v int) *CarePackageUpsert {
	u.Add(carepackage.FieldDurationDays, v)
	return u
}

// ClearDurationDays clears the value of the "duration_days" field.
func (u *CarePackageUpsert) ClearDurationDays() *CarePackageUpsert {
	u.SetNull(carepackage.FieldDurationDays)
	return u
}

// SetInclusionsEn sets the "inclusions_en" field.
func (u *CarePackageUpsert) SetInclusionsEn(v []string) *CarePackageUpsert {
	u.Set(carepackage.FieldInclusionsEn, v)
	return u
}

// UpdateInclusionsEn sets the "inclusions_en" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateInclusionsEn() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldInclusionsEn)
	return u
}

// ClearInclusionsEn clears the value of the "inclusions_en" field.
func (u *CarePackageUpsert) ClearInclusionsEn() *CarePackageUpsert {
	u.SetNull(carepackage.FieldInclusionsEn)
	return u
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (u *CarePackageUpsert) SetInclusionsAr(v []string) *CarePackageUpsert {
	u.Set(carepackage.FieldInclusionsAr, v)
	return u
}

// UpdateInclusionsAr sets the "inclusions_ar" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateInclusionsAr() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldInclusionsAr)
	return u
}

// ClearInclusionsAr clears the value of the "inclusions_ar" field.
func (u *CarePackageUpsert) ClearInclusionsAr() *CarePackageUpsert {
	u.SetNull(carepackage.FieldInclusionsAr)
	return u
}

// SetExclusionsEn sets the "exclusions_en" field.
func (u *CarePackageUpsert) SetExclusionsEn(v []string) *CarePackageUpsert {
	u.Set(carepackage.FieldExclusionsEn, v)
	return u
}

// UpdateExclusionsEn sets the "exclusions_en" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateExclusionsEn() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldExclusionsEn)
	return u
}

// ClearExclusionsEn clears the value of the "exclusions_en" field.
func (u *CarePackageUpsert) ClearExclusionsEn() *CarePackageUpsert {
	u.SetNull(carepackage.FieldExclusionsEn)
	return u
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (u *CarePackageUpsert) SetExclusionsAr(v []string) *CarePackageUpsert {
	u.Set(carepackage.FieldExclusionsAr, v)
	return u
}

// UpdateExclusionsAr sets the "exclusions_ar" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateExclusionsAr() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldExclusionsAr)
	return u
}

// ClearExclusionsAr clears the value of the "exclusions_ar" field.
func (u *CarePackageUpsert) ClearExclusionsAr() *CarePackageUpsert {
	u.SetNull(carepackage.FieldExclusionsAr)
	return u
}

// SetFeatured sets the "featured" field.
func (u *CarePackageUpsert) SetFeatured(v bool) *CarePackageUpsert {
	u.Set(carepackage.FieldFeatured, v)
	return u
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *CarePackageUpsert) UpdateFeatured() *CarePackageUpsert {
	u.SetExcluded(carepackage.FieldFeatured)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CarePackage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(carepackage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CarePackageUpsertOne) UpdateNewValues() *CarePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(carepackage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(carepackage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CarePackage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CarePackageUpsertOne) Ignore() *CarePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CarePackageUpsertOne) DoNothing() *CarePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CarePackageCreate.OnConflict
// documentation for more info.
func (u *CarePackageUpsertOne) Update(set func(*CarePackageUpsert)) *CarePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CarePackageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CarePackageUpsertOne) SetUpdatedAt(v time.Time) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateUpdatedAt() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *CarePackageUpsertOne) SetPublished(v bool) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdatePublished() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *CarePackageUpsertOne) SetPublishedAt(v time.Time) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdatePublishedAt() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *CarePackageUpsertOne) ClearPublishedAt() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *CarePackageUpsertOne) SetIsArchived(v bool) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateIsArchived() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *CarePackageUpsertOne) SetArchivedAt(v time.Time) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateArchivedAt() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *CarePackageUpsertOne) ClearArchivedAt() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearArchivedAt()
	})
}

// SetTreatmentID sets the "treatment_id" field.
func (u *CarePackageUpsertOne) SetTreatmentID(v uuid.UUID) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateTreatmentID() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetHospitalID sets the "hospital_id" field.
func (u *CarePackageUpsertOne) SetHospitalID(v uuid.UUID) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetHospitalID(v)
	})
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateHospitalID() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateHospitalID()
	})
}

// SetNameEn sets the "name_en" field.
func (u *CarePackageUpsertOne) SetNameEn(v string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateNameEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *CarePackageUpsertOne) SetNameAr(v string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateNameAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *CarePackageUpsertOne) SetSlug(v string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateSlug() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateSlug()
	})
}

// SetDescriptionEn sets the "description_en" field.
func (u *CarePackageUpsertOne) SetDescriptionEn(v string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetDescriptionEn(v)
	})
}

// UpdateDescriptionEn sets the "description_en" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateDescriptionEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateDescriptionEn()
	})
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (u *CarePackageUpsertOne) ClearDescriptionEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearDescriptionEn()
	})
}

// SetDescriptionAr sets the "description_ar" field.
func (u *CarePackageUpsertOne) SetDescriptionAr(v string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetDescriptionAr(v)
	})
}

// UpdateDescriptionAr sets the "description_ar" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateDescriptionAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateDescriptionAr()
	})
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (u *CarePackageUpsertOne) ClearDescriptionAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearDescriptionAr()
	})
}

// SetPrice sets the "price" field.
func (u *CarePackageUpsertOne) SetPrice(v float64) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *CarePackageUpsertOne) AddPrice(v float64) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdatePrice() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdatePrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *CarePackageUpsertOne) SetCurrency(v string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateCurrency() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateCurrency()
	})
}

// SetDurationDays sets the "duration_days" field.
func (u *CarePackageUpsertOne) SetDurationDays(v int) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetDurationDays(v)
	})
}

// AddDurationDays adds v to the "duration_days" field.
func (u *CarePackageUpsertOne) AddDurationDays(v int) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.AddDurationDays(v)
	})
}

// UpdateDurationDays sets the "duration_days" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateDurationDays() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateDurationDays()
	})
}

// ClearDurationDays clears the value of the "duration_days" field.
func (u *CarePackageUpsertOne) ClearDurationDays() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearDurationDays()
	})
}

// SetInclusionsEn sets the "inclusions_en" field.
func (u *CarePackageUpsertOne) SetInclusionsEn(v []string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetInclusionsEn(v)
	})
}

// UpdateInclusionsEn sets the "inclusions_en" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateInclusionsEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateInclusionsEn()
	})
}

// ClearInclusionsEn clears the value of the "inclusions_en" field.
func (u *CarePackageUpsertOne) ClearInclusionsEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearInclusionsEn()
	})
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (u *CarePackageUpsertOne) SetInclusionsAr(v []string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetInclusionsAr(v)
	})
}

// UpdateInclusionsAr sets the "inclusions_ar" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateInclusionsAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateInclusionsAr()
	})
}

// ClearInclusionsAr clears the value of the "inclusions_ar" field.
func (u *CarePackageUpsertOne) ClearInclusionsAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearInclusionsAr()
	})
}

// SetExclusionsEn sets the "exclusions_en" field.
func (u *CarePackageUpsertOne) SetExclusionsEn(v []string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetExclusionsEn(v)
	})
}

// UpdateExclusionsEn sets the "exclusions_en" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateExclusionsEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateExclusionsEn()
	})
}

// ClearExclusionsEn clears the value of the "exclusions_en" field.
func (u *CarePackageUpsertOne) ClearExclusionsEn() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearExclusionsEn()
	})
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (u *CarePackageUpsertOne) SetExclusionsAr(v []string) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetExclusionsAr(v)
	})
}

// UpdateExclusionsAr sets the "exclusions_ar" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateExclusionsAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateExclusionsAr()
	})
}

// ClearExclusionsAr clears the value of the "exclusions_ar" field.
func (u *CarePackageUpsertOne) ClearExclusionsAr() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearExclusionsAr()
	})
}

// SetFeatured sets the "featured" field.
func (u *CarePackageUpsertOne) SetFeatured(v bool) *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *CarePackageUpsertOne) UpdateFeatured() *CarePackageUpsertOne {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateFeatured()
	})
}

// Exec executes the query.
func (u *CarePackageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CarePackageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CarePackageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CarePackageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CarePackageUpsertOne.ID is not supported by MySQL driver. Use CarePackageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CarePackageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CarePackageCreateBulk is the builder for creating many CarePackage entities in bulk.
type CarePackageCreateBulk struct {
	config
	err      error
	builders []*CarePackageCreate
	conflict []sql.ConflictOption
}

// Save creates the CarePackage entities in the database.
func (_c *CarePackageCreateBulk) Save(ctx context.Context) ([]*CarePackage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CarePackage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CarePackageMutation)
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
func (_c *CarePackageCreateBulk) SaveX(ctx context.Context) []*CarePackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CarePackageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CarePackageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CarePackage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CarePackageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CarePackageCreateBulk) OnConflict(opts ...sql.ConflictOption) *CarePackageUpsertBulk {
	_c.conflict = opts
	return &CarePackageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CarePackage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CarePackageCreateBulk) OnConflictColumns(columns ...string) *CarePackageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CarePackageUpsertBulk{
		create: _c,
	}
}

// CarePackageUpsertBulk is the builder for "upsert"-ing
// a bulk of CarePackage nodes.
type CarePackageUpsertBulk struct {
	create *CarePackageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CarePackage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(carepackage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CarePackageUpsertBulk) UpdateNewValues() *CarePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(carepackage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(carepackage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CarePackage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CarePackageUpsertBulk) Ignore() *CarePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CarePackageUpsertBulk) DoNothing() *CarePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CarePackageCreateBulk.OnConflict
// documentation for more info.
func (u *CarePackageUpsertBulk) Update(set func(*CarePackageUpsert)) *CarePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CarePackageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CarePackageUpsertBulk) SetUpdatedAt(v time.Time) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateUpdatedAt() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *CarePackageUpsertBulk) SetPublished(v bool) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdatePublished() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *CarePackageUpsertBulk) SetPublishedAt(v time.Time) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdatePublishedAt() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *CarePackageUpsertBulk) ClearPublishedAt() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *CarePackageUpsertBulk) SetIsArchived(v bool) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateIsArchived() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *CarePackageUpsertBulk) SetArchivedAt(v time.Time) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateArchivedAt() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *CarePackageUpsertBulk) ClearArchivedAt() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearArchivedAt()
	})
}

// SetTreatmentID sets the "treatment_id" field.
func (u *CarePackageUpsertBulk) SetTreatmentID(v uuid.UUID) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateTreatmentID() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetHospitalID sets the "hospital_id" field.
func (u *CarePackageUpsertBulk) SetHospitalID(v uuid.UUID) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetHospitalID(v)
	})
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateHospitalID() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateHospitalID()
	})
}

// SetNameEn sets the "name_en" field.
func (u *CarePackageUpsertBulk) SetNameEn(v string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetNameEn(v)
	})
}

// UpdateNameEn sets the "name_en" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateNameEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateNameEn()
	})
}

// SetNameAr sets the "name_ar" field.
func (u *CarePackageUpsertBulk) SetNameAr(v string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetNameAr(v)
	})
}

// UpdateNameAr sets the "name_ar" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateNameAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateNameAr()
	})
}

// SetSlug sets the "slug" field.
func (u *CarePackageUpsertBulk) SetSlug(v string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateSlug() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateSlug()
	})
}

// SetDescriptionEn sets the "description_en" field.
func (u *CarePackageUpsertBulk) SetDescriptionEn(v string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetDescriptionEn(v)
	})
}

// UpdateDescriptionEn sets the "description_en" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateDescriptionEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateDescriptionEn()
	})
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (u *CarePackageUpsertBulk) ClearDescriptionEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearDescriptionEn()
	})
}

// SetDescriptionAr sets the "description_ar" field.
func (u *CarePackageUpsertBulk) SetDescriptionAr(v string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetDescriptionAr(v)
	})
}

// UpdateDescriptionAr sets the "description_ar" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateDescriptionAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateDescriptionAr()
	})
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (u *CarePackageUpsertBulk) ClearDescriptionAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearDescriptionAr()
	})
}

// SetPrice sets the "price" field.
func (u *CarePackageUpsertBulk) SetPrice(v float64) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *CarePackageUpsertBulk) AddPrice(v float64) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdatePrice() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdatePrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *CarePackageUpsertBulk) SetCurrency(v string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateCurrency() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateCurrency()
	})
}

// SetDurationDays sets the "duration_days" field.
func (u *CarePackageUpsertBulk) SetDurationDays(v int) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetDurationDays(v)
	})
}

// AddDurationDays adds v to the "duration_days" field.
func (u *CarePackageUpsertBulk) AddDurationDays(v int) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.AddDurationDays(v)
	})
}

// UpdateDurationDays sets the "duration_days" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateDurationDays() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateDurationDays()
	})
}

// ClearDurationDays clears the value of the "duration_days" field.
func (u *CarePackageUpsertBulk) ClearDurationDays() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearDurationDays()
	})
}

// SetInclusionsEn sets the "inclusions_en" field.
func (u *CarePackageUpsertBulk) SetInclusionsEn(v []string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetInclusionsEn(v)
	})
}

// UpdateInclusionsEn sets the "inclusions_en" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateInclusionsEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateInclusionsEn()
	})
}

// ClearInclusionsEn clears the value of the "inclusions_en" field.
func (u *CarePackageUpsertBulk) ClearInclusionsEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearInclusionsEn()
	})
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (u *CarePackageUpsertBulk) SetInclusionsAr(v []string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetInclusionsAr(v)
	})
}

// UpdateInclusionsAr sets the "inclusions_ar" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateInclusionsAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateInclusionsAr()
	})
}

// ClearInclusionsAr clears the value of the "inclusions_ar" field.
func (u *CarePackageUpsertBulk) ClearInclusionsAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearInclusionsAr()
	})
}

// SetExclusionsEn sets the "exclusions_en" field.
func (u *CarePackageUpsertBulk) SetExclusionsEn(v []string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetExclusionsEn(v)
	})
}

// UpdateExclusionsEn sets the "exclusions_en" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateExclusionsEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateExclusionsEn()
	})
}

// ClearExclusionsEn clears the value of the "exclusions_en" field.
func (u *CarePackageUpsertBulk) ClearExclusionsEn() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearExclusionsEn()
	})
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (u *CarePackageUpsertBulk) SetExclusionsAr(v []string) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetExclusionsAr(v)
	})
}

// UpdateExclusionsAr sets the "exclusions_ar" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateExclusionsAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateExclusionsAr()
	})
}

// ClearExclusionsAr clears the value of the "exclusions_ar" field.
func (u *CarePackageUpsertBulk) ClearExclusionsAr() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.ClearExclusionsAr()
	})
}

// SetFeatured sets the "featured" field.
func (u *CarePackageUpsertBulk) SetFeatured(v bool) *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *CarePackageUpsertBulk) UpdateFeatured() *CarePackageUpsertBulk {
	return u.Update(func(s *CarePackageUpsert) {
		s.UpdateFeatured()
	})
}

// Exec executes the query.
func (u *CarePackageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CarePackageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CarePackageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CarePackageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
