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
	"github.com/shifaalhind/backend/internal/repo/media"
)

// MediaCreate is the builder for creating a Media entity.
type MediaCreate struct {
	config
	mutation *MediaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MediaCreate) SetCreatedAt(v time.Time) *MediaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MediaCreate) SetNillableCreatedAt(v *time.Time) *MediaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MediaCreate) SetUpdatedAt(v time.Time) *MediaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MediaCreate) SetNillableUpdatedAt(v *time.Time) *MediaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *MediaCreate) SetIsArchived(v bool) *MediaCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *MediaCreate) SetNillableIsArchived(v *bool) *MediaCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *MediaCreate) SetArchivedAt(v time.Time) *MediaCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *MediaCreate) SetNillableArchivedAt(v *time.Time) *MediaCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetKey sets the "key" field.
func (_c *MediaCreate) SetKey(v string) *MediaCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *MediaCreate) SetContentType(v string) *MediaCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *MediaCreate) SetSizeBytes(v int64) *MediaCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetAltEn sets the "alt_en" field.
func (_c *MediaCreate) SetAltEn(v string) *MediaCreate {
	_c.mutation.SetAltEn(v)
	return _c
}

// SetNillableAltEn sets the "alt_en" field if the given value is not nil.
func (_c *MediaCreate) SetNillableAltEn(v *string) *MediaCreate {
	if v != nil {
		_c.SetAltEn(*v)
	}
	return _c
}

// SetAltAr sets the "alt_ar" field.
func (_c *MediaCreate) SetAltAr(v string) *MediaCreate {
	_c.mutation.SetAltAr(v)
	return _c
}

// SetNillableAltAr sets the "alt_ar" field if the given value is not nil.
func (_c *MediaCreate) SetNillableAltAr(v *string) *MediaCreate {
	if v != nil {
		_c.SetAltAr(*v)
	}
	return _c
}

// SetEntity sets the "entity" field.
func (_c *MediaCreate) SetEntity(v string) *MediaCreate {
	_c.mutation.SetEntity(v)
	return _c
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_c *MediaCreate) SetNillableEntity(v *string) *MediaCreate {
	if v != nil {
		_c.SetEntity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MediaCreate) SetID(v uuid.UUID) *MediaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MediaCreate) SetNillableID(v *uuid.UUID) *MediaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MediaMutation object of the builder.
func (_c *MediaCreate) Mutation() *MediaMutation {
	return _c.mutation
}

// Save creates the Media in the database.
func (_c *MediaCreate) Save(ctx context.Context) (*Media, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediaCreate) SaveX(ctx context.Context) *Media {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := media.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := media.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := media.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := media.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediaCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Media.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Media.updated_at"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "Media.is_archived"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`repo: missing required field "Media.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := media.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`repo: validator failed for field "Media.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`repo: missing required field "Media.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := media.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Media.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`repo: missing required field "Media.size_bytes"`)}
	}
	if v, ok := _c.mutation.SizeBytes(); ok {
		if err := media.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`repo: validator failed for field "Media.size_bytes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AltEn(); ok {
		if err := media.AltEnValidator(v); err != nil {
			return &ValidationError{Name: "alt_en", err: fmt.Errorf(`repo: validator failed for field "Media.alt_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AltAr(); ok {
		if err := media.AltArValidator(v); err != nil {
			return &ValidationError{Name: "alt_ar", err: fmt.Errorf(`repo: validator failed for field "Media.alt_ar": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Entity(); ok {
		if err := media.EntityValidator(v); err != nil {
			return &ValidationError{Name: "entity", err: fmt.Errorf(`repo: validator failed for field "Media.entity": %w`, err)}
		}
	}
	return nil
}

func (_c *MediaCreate) sqlSave(ctx context.Context) (*Media, error) {
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

func (_c *MediaCreate) createSpec() (*Media, *sqlgraph.CreateSpec) {
	var (
		_node = &Media{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(media.Table, sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(media.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(media.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(media.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(media.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(media.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(media.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(media.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.AltEn(); ok {
		_spec.SetField(media.FieldAltEn, field.TypeString, value)
		_node.AltEn = &value
	}
	if value, ok := _c.mutation.AltAr(); ok {
		_spec.SetField(media.FieldAltAr, field.TypeString, value)
		_node.AltAr = &value
	}
	if value, ok := _c.mutation.Entity(); ok {
		_spec.SetField(media.FieldEntity, field.TypeString, value)
		_node.Entity = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Media.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediaUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MediaCreate) OnConflict(opts ...sql.ConflictOption) *MediaUpsertOne {
	_c.conflict = opts
	return &MediaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Media.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediaCreate) OnConflictColumns(columns ...string) *MediaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediaUpsertOne{
		create: _c,
	}
}

type (
	// MediaUpsertOne is the builder for "upsert"-ing
	//  one Media node.
	MediaUpsertOne struct {
		create *MediaCreate
	}

	// MediaUpsert is the "OnConflict" setter.
	MediaUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MediaUpsert) SetUpdatedAt(v time.Time) *MediaUpsert {
	u.Set(media.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MediaUpsert) UpdateUpdatedAt() *MediaUpsert {
	u.SetExcluded(media.FieldUpdatedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *MediaUpsert) SetIsArchived(v bool) *MediaUpsert {
	u.Set(media.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *MediaUpsert) UpdateIsArchived() *MediaUpsert {
	u.SetExcluded(media.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *MediaUpsert) SetArchivedAt(v time.Time) *MediaUpsert {
	u.Set(media.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *MediaUpsert) UpdateArchivedAt() *MediaUpsert {
	u.SetExcluded(media.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *MediaUpsert) ClearArchivedAt() *MediaUpsert {
	u.SetNull(media.FieldArchivedAt)
	return u
}

// SetContentType sets the "content_type" field.
func (u *MediaUpsert) SetContentType(v string) *MediaUpsert {
	u.Set(media.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *MediaUpsert) UpdateContentType() *MediaUpsert {
	u.SetExcluded(media.FieldContentType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *MediaUpsert) SetSizeBytes(v int64) *MediaUpsert {
	u.Set(media.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *MediaUpsert) UpdateSizeBytes() *MediaUpsert {
	u.SetExcluded(media.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *MediaUpsert) AddSizeBytes(v int64) *MediaUpsert {
	u.Add(media.FieldSizeBytes, v)
	return u
}

// SetAltEn sets the "alt_en" field.
func (u *MediaUpsert) SetAltEn(v string) *MediaUpsert {
	u.Set(media.FieldAltEn, v)
	return u
}

// UpdateAltEn sets the "alt_en" field to the value that was provided on create.
func (u *MediaUpsert) UpdateAltEn() *MediaUpsert {
	u.SetExcluded(media.FieldAltEn)
	return u
}

// ClearAltEn clears the value of the "alt_en" field.
func (u *MediaUpsert) ClearAltEn() *MediaUpsert {
	u.SetNull(media.FieldAltEn)
	return u
}

// SetAltAr sets the "alt_ar" field.
func (u *MediaUpsert) SetAltAr(v string) *MediaUpsert {
	u.Set(media.FieldAltAr, v)
	return u
}

// UpdateAltAr sets the "alt_ar" field to the value that was provided on create.
func (u *MediaUpsert) UpdateAltAr() *MediaUpsert {
	u.SetExcluded(media.FieldAltAr)
	return u
}

// ClearAltAr clears the value of the "alt_ar" field.
func (u *MediaUpsert) ClearAltAr() *MediaUpsert {
	u.SetNull(media.FieldAltAr)
	return u
}

// SetEntity sets the "entity" field.
func (u *MediaUpsert) SetEntity(v string) *MediaUpsert {
	u.Set(media.FieldEntity, v)
	return u
}

// UpdateEntity sets the "entity" field to the value that was provided on create.
func (u *MediaUpsert) UpdateEntity() *MediaUpsert {
	u.SetExcluded(media.FieldEntity)
	return u
}

// ClearEntity clears the value of the "entity" field.
func (u *MediaUpsert) ClearEntity() *MediaUpsert {
	u.SetNull(media.FieldEntity)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Media.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(media.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediaUpsertOne) UpdateNewValues() *MediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(media.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(media.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Key(); exists {
			s.SetIgnore(media.FieldKey)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Media.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MediaUpsertOne) Ignore() *MediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediaUpsertOne) DoNothing() *MediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediaCreate.OnConflict
// documentation for more info.
func (u *MediaUpsertOne) Update(set func(*MediaUpsert)) *MediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediaUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MediaUpsertOne) SetUpdatedAt(v time.Time) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateUpdatedAt() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *MediaUpsertOne) SetIsArchived(v bool) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateIsArchived() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *MediaUpsertOne) SetArchivedAt(v time.Time) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateArchivedAt() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *MediaUpsertOne) ClearArchivedAt() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.ClearArchivedAt()
	})
}

// SetContentType sets the "content_type" field.
func (u *MediaUpsertOne) SetContentType(v string) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateContentType() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateContentType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *MediaUpsertOne) SetSizeBytes(v int64) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *MediaUpsertOne) AddSizeBytes(v int64) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateSizeBytes() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetAltEn sets the "alt_en" field.
func (u *MediaUpsertOne) SetAltEn(v string) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetAltEn(v)
	})
}

// UpdateAltEn sets the "alt_en" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateAltEn() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateAltEn()
	})
}

// ClearAltEn clears the value of the "alt_en" field.
func (u *MediaUpsertOne) ClearAltEn() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.ClearAltEn()
	})
}

// SetAltAr sets the "alt_ar" field.
func (u *MediaUpsertOne) SetAltAr(v string) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetAltAr(v)
	})
}

// UpdateAltAr sets the "alt_ar" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateAltAr() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateAltAr()
	})
}

// ClearAltAr clears the value of the "alt_ar" field.
func (u *MediaUpsertOne) ClearAltAr() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.ClearAltAr()
	})
}

// SetEntity sets the "entity" field.
func (u *MediaUpsertOne) SetEntity(v string) *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.SetEntity(v)
	})
}

// UpdateEntity sets the "entity" field to the value that was provided on create.
func (u *MediaUpsertOne) UpdateEntity() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateEntity()
	})
}

// ClearEntity clears the value of the "entity" field.
func (u *MediaUpsertOne) ClearEntity() *MediaUpsertOne {
	return u.Update(func(s *MediaUpsert) {
		s.ClearEntity()
	})
}

// Exec executes the query.
func (u *MediaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MediaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MediaUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MediaUpsertOne.ID is not supported by MySQL driver. Use MediaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MediaUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MediaCreateBulk is the builder for creating many Media entities in bulk.
type MediaCreateBulk struct {
	config
	err      error
	builders []*MediaCreate
	conflict []sql.ConflictOption
}

// Save creates the Media entities in the database.
func (_c *MediaCreateBulk) Save(ctx context.Context) ([]*Media, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Media, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaMutation)
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
func (_c *MediaCreateBulk) SaveX(ctx context.Context) []*Media {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Media.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediaUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MediaCreateBulk) OnConflict(opts ...sql.ConflictOption) *MediaUpsertBulk {
	_c.conflict = opts
	return &MediaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Media.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediaCreateBulk) OnConflictColumns(columns ...string) *MediaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediaUpsertBulk{
		create: _c,
	}
}

// MediaUpsertBulk is the builder for "upsert"-ing
// a bulk of Media nodes.
type MediaUpsertBulk struct {
	create *MediaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Media.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(media.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediaUpsertBulk) UpdateNewValues() *MediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(media.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(media.FieldCreatedAt)
			}
			if _, exists := b.mutation.Key(); exists {
				s.SetIgnore(media.FieldKey)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Media.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MediaUpsertBulk) Ignore() *MediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediaUpsertBulk) DoNothing() *MediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediaCreateBulk.OnConflict
// documentation for more info.
func (u *MediaUpsertBulk) Update(set func(*MediaUpsert)) *MediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediaUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MediaUpsertBulk) SetUpdatedAt(v time.Time) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateUpdatedAt() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *MediaUpsertBulk) SetIsArchived(v bool) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateIsArchived() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *MediaUpsertBulk) SetArchivedAt(v time.Time) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateArchivedAt() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *MediaUpsertBulk) ClearArchivedAt() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.ClearArchivedAt()
	})
}

// SetContentType sets the "content_type" field.
func (u *MediaUpsertBulk) SetContentType(v string) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateContentType() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateContentType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *MediaUpsertBulk) SetSizeBytes(v int64) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *MediaUpsertBulk) AddSizeBytes(v int64) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateSizeBytes() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetAltEn sets the "alt_en" field.
func (u *MediaUpsertBulk) SetAltEn(v string) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetAltEn(v)
	})
}

// UpdateAltEn sets the "alt_en" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateAltEn() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateAltEn()
	})
}

// ClearAltEn clears the value of the "alt_en" field.
func (u *MediaUpsertBulk) ClearAltEn() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.ClearAltEn()
	})
}

// SetAltAr sets the "alt_ar" field.
func (u *MediaUpsertBulk) SetAltAr(v string) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetAltAr(v)
	})
}

// UpdateAltAr sets the "alt_ar" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateAltAr() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateAltAr()
	})
}

// ClearAltAr clears the value of the "alt_ar" field.
func (u *MediaUpsertBulk) ClearAltAr() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.ClearAltAr()
	})
}

// SetEntity sets the "entity" field.
func (u *MediaUpsertBulk) SetEntity(v string) *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.SetEntity(v)
	})
}

// UpdateEntity sets the "entity" field to the value that was provided on create.
func (u *MediaUpsertBulk) UpdateEntity() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.UpdateEntity()
	})
}

// ClearEntity clears the value of the "entity" field.
func (u *MediaUpsertBulk) ClearEntity() *MediaUpsertBulk {
	return u.Update(func(s *MediaUpsert) {
		s.ClearEntity()
	})
}

// Exec executes the query.
func (u *MediaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MediaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MediaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
