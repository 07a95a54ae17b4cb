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
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// TranslatorCreate is the builder for creating a Translator entity.
type TranslatorCreate struct {
	config
	mutation *TranslatorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranslatorCreate) SetCreatedAt(v time.Time) *TranslatorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableCreatedAt(v *time.Time) *TranslatorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TranslatorCreate) SetUpdatedAt(v time.Time) *TranslatorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableUpdatedAt(v *time.Time) *TranslatorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *TranslatorCreate) SetIsArchived(v bool) *TranslatorCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableIsArchived(v *bool) *TranslatorCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *TranslatorCreate) SetArchivedAt(v time.Time) *TranslatorCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableArchivedAt(v *time.Time) *TranslatorCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TranslatorCreate) SetUserID(v uuid.UUID) *TranslatorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *TranslatorCreate) SetLanguages(v []string) *TranslatorCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *TranslatorCreate) SetCity(v string) *TranslatorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableCity(v *string) *TranslatorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TranslatorCreate) SetStatus(v translator.Status) *TranslatorCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableStatus(v *translator.Status) *TranslatorCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *TranslatorCreate) SetBio(v string) *TranslatorCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableBio(v *string) *TranslatorCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetDayRate sets the "day_rate" field.
func (_c *TranslatorCreate) SetDayRate(v float64) *TranslatorCreate {
	_c.mutation.SetDayRate(v)
	return _c
}

// SetNillableDayRate sets the "day_rate" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableDayRate(v *float64) *TranslatorCreate {
	if v != nil {
		_c.SetDayRate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranslatorCreate) SetID(v uuid.UUID) *TranslatorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TranslatorCreate) SetNillableID(v *uuid.UUID) *TranslatorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *TranslatorCreate) SetUser(v *User) *TranslatorCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the TranslatorMutation object of the builder.
func (_c *TranslatorCreate) Mutation() *TranslatorMutation {
	return _c.mutation
}

// Save creates the Translator in the database.
func (_c *TranslatorCreate) Save(ctx context.Context) (*Translator, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranslatorCreate) SaveX(ctx context.Context) *Translator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslatorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslatorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranslatorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := translator.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := translator.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := translator.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := translator.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := translator.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranslatorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Translator.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Translator.updated_at"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "Translator.is_archived"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Translator.user_id"`)}
	}
	if _, ok := _c.mutation.Languages(); !ok {
		return &ValidationError{Name: "languages", err: errors.New(`repo: missing required field "Translator.languages"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := translator.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Translator.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Translator.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := translator.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Translator.status": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Translator.user"`)}
	}
	return nil
}

func (_c *TranslatorCreate) sqlSave(ctx context.Context) (*Translator, error) {
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

func (_c *TranslatorCreate) createSpec() (*Translator, *sqlgraph.CreateSpec) {
	var (
		_node = &Translator{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(translator.Table, sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(translator.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(translator.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(translator.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(translator.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(translator.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(translator.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(translator.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(translator.FieldBio, field.TypeString, value)
		_node.Bio = value
	}
	if value, ok := _c.mutation.DayRate(); ok {
		_spec.SetField(translator.FieldDayRate, field.TypeFloat64, value)
		_node.DayRate = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   translator.UserTable,
			Columns: []string{translator.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Translator.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranslatorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TranslatorCreate) OnConflict(opts ...sql.ConflictOption) *TranslatorUpsertOne {
	_c.conflict = opts
	return &TranslatorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Translator.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranslatorCreate) OnConflictColumns(columns ...string) *TranslatorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranslatorUpsertOne{
		create: _c,
	}
}

type (
	// TranslatorUpsertOne is the builder for "upsert"-ing
	//  one Translator node.
	TranslatorUpsertOne struct {
		create *TranslatorCreate
	}

	// TranslatorUpsert is the "OnConflict" setter.
	TranslatorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TranslatorUpsert) SetUpdatedAt(v time.Time) *TranslatorUpsert {
	u.Set(translator.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateUpdatedAt() *TranslatorUpsert {
	u.SetExcluded(translator.FieldUpdatedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *TranslatorUpsert) SetIsArchived(v bool) *TranslatorUpsert {
	u.Set(translator.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateIsArchived() *TranslatorUpsert {
	u.SetExcluded(translator.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *TranslatorUpsert) SetArchivedAt(v time.Time) *TranslatorUpsert {
	u.Set(translator.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateArchivedAt() *TranslatorUpsert {
	u.SetExcluded(translator.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *TranslatorUpsert) ClearArchivedAt() *TranslatorUpsert {
	u.SetNull(translator.FieldArchivedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *TranslatorUpsert) SetUserID(v uuid.UUID) *TranslatorUpsert {
	u.Set(translator.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateUserID() *TranslatorUpsert {
	u.SetExcluded(translator.FieldUserID)
	return u
}

// SetLanguages sets the "languages" field.
func (u *TranslatorUpsert) SetLanguages(v []string) *TranslatorUpsert {
	u.Set(translator.FieldLanguages, v)
	return u
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateLanguages() *TranslatorUpsert {
	u.SetExcluded(translator.FieldLanguages)
	return u
}

// SetCity sets the "city" field.
func (u *TranslatorUpsert) SetCity(v string) *TranslatorUpsert {
	u.Set(translator.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateCity() *TranslatorUpsert {
	u.SetExcluded(translator.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *TranslatorUpsert) ClearCity() *TranslatorUpsert {
	u.SetNull(translator.FieldCity)
	return u
}

// SetStatus sets the "status" field.
func (u *TranslatorUpsert) SetStatus(v translator.Status) *TranslatorUpsert {
	u.Set(translator.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateStatus() *TranslatorUpsert {
	u.SetExcluded(translator.FieldStatus)
	return u
}

// SetBio sets the "bio" field.
func (u *TranslatorUpsert) SetBio(v string) *TranslatorUpsert {
	u.Set(translator.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateBio() *TranslatorUpsert {
	u.SetExcluded(translator.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *TranslatorUpsert) ClearBio() *TranslatorUpsert {
	u.SetNull(translator.FieldBio)
	return u
}

// SetDayRate sets the "day_rate" field.
func (u *TranslatorUpsert) SetDayRate(v float64) *TranslatorUpsert {
	u.Set(translator.FieldDayRate, v)
	return u
}

// UpdateDayRate sets the "day_rate" field to the value that was provided on create.
func (u *TranslatorUpsert) UpdateDayRate() *TranslatorUpsert {
	u.SetExcluded(translator.FieldDayRate)
	return u
}

// AddDayRate adds v to the "day_rate" field.
func (u *TranslatorUpsert) AddDayRate(v float64) *TranslatorUpsert {
	u.Add(translator.FieldDayRate, v)
	return u
}

// ClearDayRate clears the value of the "day_rate" field.
func (u *TranslatorUpsert) ClearDayRate() *TranslatorUpsert {
	u.SetNull(translator.FieldDayRate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Translator.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(translator.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranslatorUpsertOne) UpdateNewValues() *TranslatorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(translator.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(translator.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Translator.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranslatorUpsertOne) Ignore() *TranslatorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranslatorUpsertOne) DoNothing() *TranslatorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranslatorCreate.OnConflict
// documentation for more info.
func (u *TranslatorUpsertOne) Update(set func(*TranslatorUpsert)) *TranslatorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranslatorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranslatorUpsertOne) SetUpdatedAt(v time.Time) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateUpdatedAt() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *TranslatorUpsertOne) SetIsArchived(v bool) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateIsArchived() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *TranslatorUpsertOne) SetArchivedAt(v time.Time) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateArchivedAt() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *TranslatorUpsertOne) ClearArchivedAt() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearArchivedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *TranslatorUpsertOne) SetUserID(v uuid.UUID) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateUserID() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateUserID()
	})
}

// SetLanguages sets the "languages" field.
func (u *TranslatorUpsertOne) SetLanguages(v []string) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateLanguages() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateLanguages()
	})
}

// SetCity sets the "city" field.
func (u *TranslatorUpsertOne) SetCity(v string) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateCity() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *TranslatorUpsertOne) ClearCity() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearCity()
	})
}

// SetStatus sets the "status" field.
func (u *TranslatorUpsertOne) SetStatus(v translator.Status) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateStatus() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateStatus()
	})
}

// SetBio sets the "bio" field.
func (u *TranslatorUpsertOne) SetBio(v string) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateBio() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *TranslatorUpsertOne) ClearBio() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearBio()
	})
}

// SetDayRate sets the "day_rate" field.
func (u *TranslatorUpsertOne) SetDayRate(v float64) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetDayRate(v)
	})
}

// AddDayRate adds v to the "day_rate" field.
func (u *TranslatorUpsertOne) AddDayRate(v float64) *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.AddDayRate(v)
	})
}

// UpdateDayRate sets the "day_rate" field to the value that was provided on create.
func (u *TranslatorUpsertOne) UpdateDayRate() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateDayRate()
	})
}

// ClearDayRate clears the value of the "day_rate" field.
func (u *TranslatorUpsertOne) ClearDayRate() *TranslatorUpsertOne {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearDayRate()
	})
}

// Exec executes the query.
func (u *TranslatorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TranslatorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranslatorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranslatorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TranslatorUpsertOne.ID is not supported by MySQL driver. Use TranslatorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranslatorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranslatorCreateBulk is the builder for creating many Translator entities in bulk.
type TranslatorCreateBulk struct {
	config
	err      error
	builders []*TranslatorCreate
	conflict []sql.ConflictOption
}

// Save creates the Translator entities in the database.
func (_c *TranslatorCreateBulk) Save(ctx context.Context) ([]*Translator, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Translator, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranslatorMutation)
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
func (_c *TranslatorCreateBulk) SaveX(ctx context.Context) []*Translator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslatorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslatorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Translator.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranslatorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TranslatorCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranslatorUpsertBulk {
	_c.conflict = opts
	return &TranslatorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Translator.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranslatorCreateBulk) OnConflictColumns(columns ...string) *TranslatorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranslatorUpsertBulk{
		create: _c,
	}
}

// TranslatorUpsertBulk is the builder for "upsert"-ing
// a bulk of Translator nodes.
type TranslatorUpsertBulk struct {
	create *TranslatorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Translator.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(translator.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranslatorUpsertBulk) UpdateNewValues() *TranslatorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(translator.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(translator.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Translator.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranslatorUpsertBulk) Ignore() *TranslatorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranslatorUpsertBulk) DoNothing() *TranslatorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranslatorCreateBulk.OnConflict
// documentation for more info.
func (u *TranslatorUpsertBulk) Update(set func(*TranslatorUpsert)) *TranslatorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranslatorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranslatorUpsertBulk) SetUpdatedAt(v time.Time) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateUpdatedAt() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *TranslatorUpsertBulk) SetIsArchived(v bool) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateIsArchived() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *TranslatorUpsertBulk) SetArchivedAt(v time.Time) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateArchivedAt() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *TranslatorUpsertBulk) ClearArchivedAt() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearArchivedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *TranslatorUpsertBulk) SetUserID(v uuid.UUID) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateUserID() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateUserID()
	})
}

// SetLanguages sets the "languages" field.
func (u *TranslatorUpsertBulk) SetLanguages(v []string) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateLanguages() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateLanguages()
	})
}

// SetCity sets the "city" field.
func (u *TranslatorUpsertBulk) SetCity(v string) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateCity() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *TranslatorUpsertBulk) ClearCity() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearCity()
	})
}

// SetStatus sets the "status" field.
func (u *TranslatorUpsertBulk) SetStatus(v translator.Status) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateStatus() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateStatus()
	})
}

// SetBio sets the "bio" field.
func (u *TranslatorUpsertBulk) SetBio(v string) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateBio() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *TranslatorUpsertBulk) ClearBio() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearBio()
	})
}

// SetDayRate sets the "day_rate" field.
func (u *TranslatorUpsertBulk) SetDayRate(v float64) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.SetDayRate(v)
	})
}

// AddDayRate adds v to the "day_rate" field.
func (u *TranslatorUpsertBulk) AddDayRate(v float64) *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.AddDayRate(v)
	})
}

// UpdateDayRate sets the "day_rate" field to the value that was provided on create.
func (u *TranslatorUpsertBulk) UpdateDayRate() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.UpdateDayRate()
	})
}

// ClearDayRate clears the value of the "day_rate" field.
func (u *TranslatorUpsertBulk) ClearDayRate() *TranslatorUpsertBulk {
	return u.Update(func(s *TranslatorUpsert) {
		s.ClearDayRate()
	})
}

// Exec executes the query.
func (u *TranslatorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TranslatorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TranslatorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranslatorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
