// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shifaalhind/backend/internal/repo/media"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// MediaUpdate is the builder for updating Media entities.
type MediaUpdate struct {
	config
	hooks    []Hook
	mutation *MediaMutation
}

// Where appends a list predicates to the MediaUpdate builder.
func (_u *MediaUpdate) Where(ps ...predicate.Media) *MediaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MediaUpdate) SetUpdatedAt(v time.Time) *MediaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *MediaUpdate) SetIsArchived(v bool) *MediaUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableIsArchived(v *bool) *MediaUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *MediaUpdate) SetArchivedAt(v time.Time) *MediaUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableArchivedAt(v *time.Time) *MediaUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *MediaUpdate) ClearArchivedAt() *MediaUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *MediaUpdate) SetContentType(v string) *MediaUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableContentType(v *string) *MediaUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *MediaUpdate) SetSizeBytes(v int64) *MediaUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableSizeBytes(v *int64) *MediaUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *MediaUpdate) AddSizeBytes(v int64) *MediaUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetAltEn sets the "alt_en" field.
func (_u *MediaUpdate) SetAltEn(v string) *MediaUpdate {
	_u.mutation.SetAltEn(v)
	return _u
}

// SetNillableAltEn sets the "alt_en" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableAltEn(v *string) *MediaUpdate {
	if v != nil {
		_u.SetAltEn(*v)
	}
	return _u
}

// ClearAltEn clears the value of the "alt_en" field.
func (_u *MediaUpdate) ClearAltEn() *MediaUpdate {
	_u.mutation.ClearAltEn()
	return _u
}

// SetAltAr sets the "alt_ar" field.
func (_u *MediaUpdate) SetAltAr(v string) *MediaUpdate {
	_u.mutation.SetAltAr(v)
	return _u
}

// SetNillableAltAr sets the "alt_ar" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableAltAr(v *string) *MediaUpdate {
	if v != nil {
		_u.SetAltAr(*v)
	}
	return _u
}

// ClearAltAr clears the value of the "alt_ar" field.
func (_u *MediaUpdate) ClearAltAr() *MediaUpdate {
	_u.mutation.ClearAltAr()
	return _u
}

// SetEntity sets the "entity" field.
func (_u *MediaUpdate) SetEntity(v string) *MediaUpdate {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *MediaUpdate) SetNillableEntity(v *string) *MediaUpdate {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// ClearEntity clears the value of the "entity" field.
func (_u *MediaUpdate) ClearEntity() *MediaUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// Mutation returns the MediaMutation object of the builder.
func (_u *MediaUpdate) Mutation() *MediaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MediaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := media.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaUpdate) check() error {
	if v, ok := _u.mutation.ContentType(); ok {
		if err := media.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Media.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := media.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`repo: validator failed for field "Media.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AltEn(); ok {
		if err := media.AltEnValidator(v); err != nil {
			return &ValidationError{Name: "alt_en", err: fmt.Errorf(`repo: validator failed for field "Media.alt_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AltAr(); ok {
		if err := media.AltArValidator(v); err != nil {
			return &ValidationError{Name: "alt_ar", err: fmt.Errorf(`repo: validator failed for field "Media.alt_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Entity(); ok {
		if err := media.EntityValidator(v); err != nil {
			return &ValidationError{Name: "entity", err: fmt.Errorf(`repo: validator failed for field "Media.entity": %w`, err)}
		}
	}
	return nil
}

func (_u *MediaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(media.Table, media.Columns, sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(media.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(media.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(media.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(media.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(media.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(media.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(media.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AltEn(); ok {
		_spec.SetField(media.FieldAltEn, field.TypeString, value)
	}
	if _u.mutation.AltEnCleared() {
		_spec.ClearField(media.FieldAltEn, field.TypeString)
	}
	if value, ok := _u.mutation.AltAr(); ok {
		_spec.SetField(media.FieldAltAr, field.TypeString, value)
	}
	if _u.mutation.AltArCleared() {
		_spec.ClearField(media.FieldAltAr, field.TypeString)
	}
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(media.FieldEntity, field.TypeString, value)
	}
	if _u.mutation.EntityCleared() {
		_spec.ClearField(media.FieldEntity, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{media.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediaUpdateOne is the builder for updating a single Media entity.
type MediaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MediaUpdateOne) SetUpdatedAt(v time.Time) *MediaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *MediaUpdateOne) SetIsArchived(v bool) *MediaUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableIsArchived(v *bool) *MediaUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *MediaUpdateOne) SetArchivedAt(v time.Time) *MediaUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableArchivedAt(v *time.Time) *MediaUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *MediaUpdateOne) ClearArchivedAt() *MediaUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *MediaUpdateOne) SetContentType(v string) *MediaUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableContentType(v *string) *MediaUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *MediaUpdateOne) SetSizeBytes(v int64) *MediaUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableSizeBytes(v *int64) *MediaUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *MediaUpdateOne) AddSizeBytes(v int64) *MediaUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetAltEn sets the "alt_en" field.
func (_u *MediaUpdateOne) SetAltEn(v string) *MediaUpdateOne {
	_u.mutation.SetAltEn(v)
	return _u
}

// SetNillableAltEn sets the "alt_en" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableAltEn(v *string) *MediaUpdateOne {
	if v != nil {
		_u.SetAltEn(*v)
	}
	return _u
}

// ClearAltEn clears the value of the "alt_en" field.
func (_u *MediaUpdateOne) ClearAltEn() *MediaUpdateOne {
	_u.mutation.ClearAltEn()
	return _u
}

// SetAltAr sets the "alt_ar" field.
func (_u *MediaUpdateOne) SetAltAr(v string) *MediaUpdateOne {
	_u.mutation.SetAltAr(v)
	return _u
}

// SetNillableAltAr sets the "alt_ar" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableAltAr(v *string) *MediaUpdateOne {
	if v != nil {
		_u.SetAltAr(*v)
	}
	return _u
}

// ClearAltAr clears the value of the "alt_ar" field.
func (_u *MediaUpdateOne) ClearAltAr() *MediaUpdateOne {
	_u.mutation.ClearAltAr()
	return _u
}

// SetEntity sets the "entity" field.
func (_u *MediaUpdateOne) SetEntity(v string) *MediaUpdateOne {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *MediaUpdateOne) SetNillableEntity(v *string) *MediaUpdateOne {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// ClearEntity clears the value of the "entity" field.
func (_u *MediaUpdateOne) ClearEntity() *MediaUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// Mutation returns the MediaMutation object of the builder.
func (_u *MediaUpdateOne) Mutation() *MediaMutation {
	return _u.mutation
}

// Where appends a list predicates to the MediaUpdate builder.
func (_u *MediaUpdateOne) Where(ps ...predicate.Media) *MediaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediaUpdateOne) Select(field string, fields ...string) *MediaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Media entity.
func (_u *MediaUpdateOne) Save(ctx context.Context) (*Media, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaUpdateOne) SaveX(ctx context.Context) *Media {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MediaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := media.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaUpdateOne) check() error {
	if v, ok := _u.mutation.ContentType(); ok {
		if err := media.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Media.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := media.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`repo: validator failed for field "Media.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AltEn(); ok {
		if err := media.AltEnValidator(v); err != nil {
			return &ValidationError{Name: "alt_en", err: fmt.Errorf(`repo: validator failed for field "Media.alt_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AltAr(); ok {
		if err := media.AltArValidator(v); err != nil {
			return &ValidationError{Name: "alt_ar", err: fmt.Errorf(`repo: validator failed for field "Media.alt_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Entity(); ok {
		if err := media.EntityValidator(v); err != nil {
			return &ValidationError{Name: "entity", err: fmt.Errorf(`repo: validator failed for field "Media.entity": %w`, err)}
		}
	}
	return nil
}

func (_u *MediaUpdateOne) sqlSave(ctx context.Context) (_node *Media, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(media.Table, media.Columns, sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Media.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, media.FieldID)
		for _, f := range fields {
			if !media.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != media.FieldID {
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
		_spec.SetField(media.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(media.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(media.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(media.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(media.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(media.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(media.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AltEn(); ok {
		_spec.SetField(media.FieldAltEn, field.TypeString, value)
	}
	if _u.mutation.AltEnCleared() {
		_spec.ClearField(media.FieldAltEn, field.TypeString)
	}
	if value, ok := _u.mutation.AltAr(); ok {
		_spec.SetField(media.FieldAltAr, field.TypeString, value)
	}
	if _u.mutation.AltArCleared() {
		_spec.ClearField(media.FieldAltAr, field.TypeString)
	}
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(media.FieldEntity, field.TypeString, value)
	}
	if _u.mutation.EntityCleared() {
		_spec.ClearField(media.FieldEntity, field.TypeString)
	}
	_node = &Media{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{media.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
