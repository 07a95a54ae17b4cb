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
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// TranslatorUpdate is the builder for updating Translator entities.
type TranslatorUpdate struct {
	config
	hooks    []Hook
	mutation *TranslatorMutation
}

// Where appends a list predicates to the TranslatorUpdate builder.
func (_u *TranslatorUpdate) Where(ps ...predicate.Translator) *TranslatorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranslatorUpdate) SetUpdatedAt(v time.Time) *TranslatorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *TranslatorUpdate) SetIsArchived(v bool) *TranslatorUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableIsArchived(v *bool) *TranslatorUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TranslatorUpdate) SetArchivedAt(v time.Time) *TranslatorUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableArchivedAt(v *time.Time) *TranslatorUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TranslatorUpdate) ClearArchivedAt() *TranslatorUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TranslatorUpdate) SetUserID(v uuid.UUID) *TranslatorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableUserID(v *uuid.UUID) *TranslatorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *TranslatorUpdate) SetLanguages(v []string) *TranslatorUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *TranslatorUpdate) AppendLanguages(v []string) *TranslatorUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// SetCity sets the "city" field.
func (_u *TranslatorUpdate) SetCity(v string) *TranslatorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableCity(v *string) *TranslatorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *TranslatorUpdate) ClearCity() *TranslatorUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranslatorUpdate) SetStatus(v translator.Status) *TranslatorUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableStatus(v *translator.Status) *TranslatorUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *TranslatorUpdate) SetBio(v string) *TranslatorUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableBio(v *string) *TranslatorUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TranslatorUpdate) ClearBio() *TranslatorUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetDayRate sets the "day_rate" field.
func (_u *TranslatorUpdate) SetDayRate(v float64) *TranslatorUpdate {
	_u.mutation.ResetDayRate()
	_u.mutation.SetDayRate(v)
	return _u
}

// SetNillableDayRate sets the "day_rate" field if the given value is not nil.
func (_u *TranslatorUpdate) SetNillableDayRate(v *float64) *TranslatorUpdate {
	if v != nil {
		_u.SetDayRate(*v)
	}
	return _u
}

// AddDayRate adds value to the "day_rate" field.
func (_u *TranslatorUpdate) AddDayRate(v float64) *TranslatorUpdate {
	_u.mutation.AddDayRate(v)
	return _u
}

// ClearDayRate clears the value of the "day_rate" field.
func (_u *TranslatorUpdate) ClearDayRate() *TranslatorUpdate {
	_u.mutation.ClearDayRate()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TranslatorUpdate) SetUser(v *User) *TranslatorUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TranslatorMutation object of the builder.
func (_u *TranslatorUpdate) Mutation() *TranslatorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TranslatorUpdate) ClearUser() *TranslatorUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranslatorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslatorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranslatorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslatorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranslatorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := translator.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslatorUpdate) check() error {
	if v, ok := _u.mutation.City(); ok {
		if err := translator.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Translator.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := translator.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Translator.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Translator.user"`)
	}
	return nil
}

func (_u *TranslatorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translator.Table, translator.Columns, sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(translator.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(translator.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(translator.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(translator.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(translator.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, translator.FieldLanguages, value)
		})
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(translator.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(translator.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(translator.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(translator.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(translator.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.DayRate(); ok {
		_spec.SetField(translator.FieldDayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDayRate(); ok {
		_spec.AddField(translator.FieldDayRate, field.TypeFloat64, value)
	}
	if _u.mutation.DayRateCleared() {
		_spec.ClearField(translator.FieldDayRate, field.TypeFloat64)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranslatorUpdateOne is the builder for updating a single Translator entity.
type TranslatorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranslatorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranslatorUpdateOne) SetUpdatedAt(v time.Time) *TranslatorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *TranslatorUpdateOne) SetIsArchived(v bool) *TranslatorUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableIsArchived(v *bool) *TranslatorUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TranslatorUpdateOne) SetArchivedAt(v time.Time) *TranslatorUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableArchivedAt(v *time.Time) *TranslatorUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TranslatorUpdateOne) ClearArchivedAt() *TranslatorUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TranslatorUpdateOne) SetUserID(v uuid.UUID) *TranslatorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableUserID(v *uuid.UUID) *TranslatorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *TranslatorUpdateOne) SetLanguages(v []string) *TranslatorUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *TranslatorUpdateOne) AppendLanguages(v []string) *TranslatorUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// SetCity sets the "city" field.
func (_u *TranslatorUpdateOne) SetCity(v string) *TranslatorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableCity(v *string) *TranslatorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *TranslatorUpdateOne) ClearCity() *TranslatorUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranslatorUpdateOne) SetStatus(v translator.Status) *TranslatorUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableStatus(v *translator.Status) *TranslatorUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *TranslatorUpdateOne) SetBio(v string) *TranslatorUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableBio(v *string) *TranslatorUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TranslatorUpdateOne) ClearBio() *TranslatorUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetDayRate sets the "day_rate" field.
func (_u *TranslatorUpdateOne) SetDayRate(v float64) *TranslatorUpdateOne {
	_u.mutation.ResetDayRate()
	_u.mutation.SetDayRate(v)
	return _u
}

// SetNillableDayRate sets the "day_rate" field if the given value is not nil.
func (_u *TranslatorUpdateOne) SetNillableDayRate(v *float64) *TranslatorUpdateOne {
	if v != nil {
		_u.SetDayRate(*v)
	}
	return _u
}

// AddDayRate adds value to the "day_rate" field.
func (_u *TranslatorUpdateOne) AddDayRate(v float64) *TranslatorUpdateOne {
	_u.mutation.AddDayRate(v)
	return _u
}

// ClearDayRate clears the value of the "day_rate" field.
func (_u *TranslatorUpdateOne) ClearDayRate() *TranslatorUpdateOne {
	_u.mutation.ClearDayRate()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TranslatorUpdateOne) SetUser(v *User) *TranslatorUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TranslatorMutation object of the builder.
func (_u *TranslatorUpdateOne) Mutation() *TranslatorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TranslatorUpdateOne) ClearUser() *TranslatorUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the TranslatorUpdate builder.
func (_u *TranslatorUpdateOne) Where(ps ...predicate.Translator) *TranslatorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranslatorUpdateOne) Select(field string, fields ...string) *TranslatorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Translator entity.
func (_u *TranslatorUpdateOne) Save(ctx context.Context) (*Translator, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslatorUpdateOne) SaveX(ctx context.Context) *Translator {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranslatorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslatorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranslatorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := translator.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslatorUpdateOne) check() error {
	if v, ok := _u.mutation.City(); ok {
		if err := translator.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Translator.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := translator.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Translator.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Translator.user"`)
	}
	return nil
}

func (_u *TranslatorUpdateOne) sqlSave(ctx context.Context) (_node *Translator, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translator.Table, translator.Columns, sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Translator.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, translator.FieldID)
		for _, f := range fields {
			if !translator.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != translator.FieldID {
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
		_spec.SetField(translator.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(translator.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(translator.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(translator.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(translator.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, translator.FieldLanguages, value)
		})
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(translator.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(translator.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(translator.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(translator.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(translator.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.DayRate(); ok {
		_spec.SetField(translator.FieldDayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDayRate(); ok {
		_spec.AddField(translator.FieldDayRate, field.TypeFloat64, value)
	}
	if _u.mutation.DayRateCleared() {
		_spec.ClearField(translator.FieldDayRate, field.TypeFloat64)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Translator{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
