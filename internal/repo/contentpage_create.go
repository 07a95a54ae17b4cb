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
	"github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// ContentPageCreate is the builder for creating a ContentPage entity.
type ContentPageCreate struct {
	config
	mutation *ContentPageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentPageCreate) SetCreatedAt(v time.Time) *ContentPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableCreatedAt(v *time.Time) *ContentPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContentPageCreate) SetUpdatedAt(v time.Time) *ContentPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableUpdatedAt(v *time.Time) *ContentPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *ContentPageCreate) SetPublished(v bool) *ContentPageCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillablePublished(v *bool) *ContentPageCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *ContentPageCreate) SetPublishedAt(v time.Time) *ContentPageCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillablePublishedAt(v *time.Time) *ContentPageCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *ContentPageCreate) SetIsArchived(v bool) *ContentPageCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableIsArchived(v *bool) *ContentPageCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *ContentPageCreate) SetArchivedAt(v time.Time) *ContentPageCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableArchivedAt(v *time.Time) *ContentPageCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContentPageCreate) SetKind(v contentpage.Kind) *ContentPageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableKind(v *contentpage.Kind) *ContentPageCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetTitleEn sets the "title_en" field.
func (_c *ContentPageCreate) SetTitleEn(v string) *ContentPageCreate {
	_c.mutation.SetTitleEn(v)
	return _c
}

// SetTitleAr sets the "title_ar" field.
func (_c *ContentPageCreate) SetTitleAr(v string) *ContentPageCreate {
	_c.mutation.SetTitleAr(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ContentPageCreate) SetSlug(v string) *ContentPageCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetExcerptEn sets the "excerpt_en" field.
func (_c *ContentPageCreate) SetExcerptEn(v string) *ContentPageCreate {
	_c.mutation.SetExcerptEn(v)
	return _c
}

// SetNillableExcerptEn sets the "excerpt_en" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableExcerptEn(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetExcerptEn(*v)
	}
	return _c
}

// SetExcerptAr sets the "excerpt_ar" field.
func (_c *ContentPageCreate) SetExcerptAr(v string) *ContentPageCreate {
	_c.mutation.SetExcerptAr(v)
	return _c
}

// SetNillableExcerptAr sets the "excerpt_ar" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableExcerptAr(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetExcerptAr(*v)
	}
	return _c
}

// SetBodyEn sets the "body_en" field.
func (_c *ContentPageCreate) SetBodyEn(v content.Document) *ContentPageCreate {
	_c.mutation.SetBodyEn(v)
	return _c
}

// SetNillableBodyEn sets the "body_en" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableBodyEn(v *content.Document) *ContentPageCreate {
	if v != nil {
		_c.SetBodyEn(*v)
	}
	return _c
}

// SetBodyAr sets the "body_ar" field.
func (_c *ContentPageCreate) SetBodyAr(v content.Document) *ContentPageCreate {
	_c.mutation.SetBodyAr(v)
	return _c
}

// SetNillableBodyAr sets the "body_ar" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableBodyAr(v *content.Document) *ContentPageCreate {
	if v != nil {
		_c.SetBodyAr(*v)
	}
	return _c
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_c *ContentPageCreate) SetMetaTitleEn(v string) *ContentPageCreate {
	_c.mutation.SetMetaTitleEn(v)
	return _c
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableMetaTitleEn(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetMetaTitleEn(*v)
	}
	return _c
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_c *ContentPageCreate) SetMetaTitleAr(v string) *ContentPageCreate {
	_c.mutation.SetMetaTitleAr(v)
	return _c
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableMetaTitleAr(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetMetaTitleAr(*v)
	}
	return _c
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_c *ContentPageCreate) SetMetaDescriptionEn(v string) *ContentPageCreate {
	_c.mutation.SetMetaDescriptionEn(v)
	return _c
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableMetaDescriptionEn(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetMetaDescriptionEn(*v)
	}
	return _c
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_c *ContentPageCreate) SetMetaDescriptionAr(v string) *ContentPageCreate {
	_c.mutation.SetMetaDescriptionAr(v)
	return _c
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableMetaDescriptionAr(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetMetaDescriptionAr(*v)
	}
	return _c
}

// SetCoverImage sets the "cover_image" field.
func (_c *ContentPageCreate) SetCoverImage(v string) *ContentPageCreate {
	_c.mutation.SetCoverImage(v)
	return _c
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableCoverImage(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetCoverImage(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ContentPageCreate) SetTags(v []string) *ContentPageCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetFaq sets the "faq" field.
func (_c *ContentPageCreate) SetFaq(v []content.FAQItem) *ContentPageCreate {
	_c.mutation.SetFaq(v)
	return _c
}

// SetAuthorName sets the "author_name" field.
func (_c *ContentPageCreate) SetAuthorName(v string) *ContentPageCreate {
	_c.mutation.SetAuthorName(v)
	return _c
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableAuthorName(v *string) *ContentPageCreate {
	if v != nil {
		_c.SetAuthorName(*v)
	}
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *ContentPageCreate) SetAuthorID(v uuid.UUID) *ContentPageCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableAuthorID(v *uuid.UUID) *ContentPageCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentPageCreate) SetID(v uuid.UUID) *ContentPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContentPageCreate) SetNillableID(v *uuid.UUID) *ContentPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAuthor sets the "author" edge to the User entity.
func (_c *ContentPageCreate) SetAuthor(v *User) *ContentPageCreate {
	return _c.SetAuthorID(v.ID)
}

// Mutation returns the ContentPageMutation object of the builder.
func (_c *ContentPageCreate) Mutation() *ContentPageMutation {
	return _c.mutation
}

// Save creates the ContentPage in the database.
func (_c *ContentPageCreate) Save(ctx context.Context) (*ContentPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentPageCreate) SaveX(ctx context.Context) *ContentPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contentpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contentpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := contentpage.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := contentpage.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := contentpage.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contentpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ContentPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ContentPage.updated_at"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "ContentPage.published"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "ContentPage.is_archived"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "ContentPage.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := contentpage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "ContentPage.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TitleEn(); !ok {
		return &ValidationError{Name: "title_en", err: errors.New(`repo: missing required field "ContentPage.title_en"`)}
	}
	if v, ok := _c.mutation.TitleEn(); ok {
		if err := contentpage.TitleEnValidator(v); err != nil {
			return &ValidationError{Name: "title_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.title_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TitleAr(); !ok {
		return &ValidationError{Name: "title_ar", err: errors.New(`repo: missing required field "ContentPage.title_ar"`)}
	}
	if v, ok := _c.mutation.TitleAr(); ok {
		if err := contentpage.TitleArValidator(v); err != nil {
			return &ValidationError{Name: "title_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.title_ar": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "ContentPage.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := contentpage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ContentPage.slug": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BodyEn(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.body_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BodyAr(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.body_ar": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MetaTitleEn(); ok {
		if err := contentpage.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MetaTitleAr(); ok {
		if err := contentpage.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.meta_title_ar": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CoverImage(); ok {
		if err := contentpage.CoverImageValidator(v); err != nil {
			return &ValidationError{Name: "cover_image", err: fmt.Errorf(`repo: validator failed for field "ContentPage.cover_image": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AuthorName(); ok {
		if err := contentpage.AuthorNameValidator(v); err != nil {
			return &ValidationError{Name: "author_name", err: fmt.Errorf(`repo: validator failed for field "ContentPage.author_name": %w`, err)}
		}
	}
	return nil
}

func (_c *ContentPageCreate) sqlSave(ctx context.Context) (*ContentPage, error) {
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

func (_c *ContentPageCreate) createSpec() (*ContentPage, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentpage.Table, sqlgraph.NewFieldSpec(contentpage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contentpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contentpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(contentpage.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(contentpage.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(contentpage.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(contentpage.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(contentpage.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TitleEn(); ok {
		_spec.SetField(contentpage.FieldTitleEn, field.TypeString, value)
		_node.TitleEn = value
	}
	if value, ok := _c.mutation.TitleAr(); ok {
		_spec.SetField(contentpage.FieldTitleAr, field.TypeString, value)
		_node.TitleAr = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(contentpage.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.ExcerptEn(); ok {
		_spec.SetField(contentpage.FieldExcerptEn, field.TypeString, value)
		_node.ExcerptEn = value
	}
	if value, ok := _c.mutation.ExcerptAr(); ok {
		_spec.SetField(contentpage.FieldExcerptAr, field.TypeString, value)
		_node.ExcerptAr = value
	}
	if value, ok := _c.mutation.BodyEn(); ok {
		_spec.SetField(contentpage.FieldBodyEn, field.TypeJSON, value)
		_node.BodyEn = value
	}
	if value, ok := _c.mutation.BodyAr(); ok {
		_spec.SetField(contentpage.FieldBodyAr, field.TypeJSON, value)
		_node.BodyAr = value
	}
	if value, ok := _c.mutation.MetaTitleEn(); ok {
		_spec.SetField(contentpage.FieldMetaTitleEn, field.TypeString, value)
		_node.MetaTitleEn = &value
	}
	if value, ok := _c.mutation.MetaTitleAr(); ok {
		_spec.SetField(contentpage.FieldMetaTitleAr, field.TypeString, value)
		_node.MetaTitleAr = &value
	}
	if value, ok := _c.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(contentpage.FieldMetaDescriptionEn, field.TypeString, value)
		_node.MetaDescriptionEn = value
	}
	if value, ok := _c.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(contentpage.FieldMetaDescriptionAr, field.TypeString, value)
		_node.MetaDescriptionAr = value
	}
	if value, ok := _c.mutation.CoverImage(); ok {
		_spec.SetField(contentpage.FieldCoverImage, field.TypeString, value)
		_node.CoverImage = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(contentpage.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Faq(); ok {
		_spec.SetField(contentpage.FieldFaq, field.TypeJSON, value)
		_node.Faq = value
	}
	if value, ok := _c.mutation.AuthorName(); ok {
		_spec.SetField(contentpage.FieldAuthorName, field.TypeString, value)
		_node.AuthorName = &value
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contentpage.AuthorTable,
			Columns: []string{contentpage.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuthorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentPage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentPageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentPageCreate) OnConflict(opts ...sql.ConflictOption) *ContentPageUpsertOne {
	_c.conflict = opts
	return &ContentPageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentPage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentPageCreate) OnConflictColumns(columns ...string) *ContentPageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentPageUpsertOne{
		create: _c,
	}
}

type (
	// ContentPageUpsertOne is the builder for "upsert"-ing
	//  one ContentPage node.
	ContentPageUpsertOne struct {
		create *ContentPageCreate
	}

	// ContentPageUpsert is the "OnConflict" setter.
	ContentPageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentPageUpsert) SetUpdatedAt(v time.Time) *ContentPageUpsert {
	u.Set(contentpage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateUpdatedAt() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldUpdatedAt)
	return u
}

// SetPublished sets the "published" field.
func (u *ContentPageUpsert) SetPublished(v bool) *ContentPageUpsert {
	u.Set(contentpage.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdatePublished() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *ContentPageUpsert) SetPublishedAt(v time.Time) *ContentPageUpsert {
	u.Set(contentpage.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdatePublishedAt() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ContentPageUpsert) ClearPublishedAt() *ContentPageUpsert {
	u.SetNull(contentpage.FieldPublishedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *ContentPageUpsert) SetIsArchived(v bool) *ContentPageUpsert {
	u.Set(contentpage.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateIsArchived() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *ContentPageUpsert) SetArchivedAt(v time.Time) *ContentPageUpsert {
	u.Set(contentpage.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateArchivedAt() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *ContentPageUpsert) ClearArchivedAt() *ContentPageUpsert {
	u.SetNull(contentpage.FieldArchivedAt)
	return u
}

// SetKind sets the "kind" field.
func (u *ContentPageUpsert) SetKind(v contentpage.Kind) *ContentPageUpsert {
	u.Set(contentpage.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateKind() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldKind)
	return u
}

// SetTitleEn sets the "title_en" field.
func (u *ContentPageUpsert) SetTitleEn(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldTitleEn, v)
	return u
}

// UpdateTitleEn sets the "title_en" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateTitleEn() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldTitleEn)
	return u
}

// SetTitleAr sets the "title_ar" field.
func (u *ContentPageUpsert) SetTitleAr(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldTitleAr, v)
	return u
}

// UpdateTitleAr sets the "title_ar" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateTitleAr() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldTitleAr)
	return u
}

// SetSlug sets the "slug" field.
func (u *ContentPageUpsert) SetSlug(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateSlug() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldSlug)
	return u
}

// SetExcerptEn sets the "excerpt_en" field.
func (u *ContentPageUpsert) SetExcerptEn(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldExcerptEn, v)
	return u
}

// UpdateExcerptEn sets the "excerpt_en" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateExcerptEn() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldExcerptEn)
	return u
}

// ClearExcerptEn clears the value of the "excerpt_en" field.
func (u *ContentPageUpsert) ClearExcerptEn() *ContentPageUpsert {
	u.SetNull(contentpage.FieldExcerptEn)
	return u
}

// SetExcerptAr sets the "excerpt_ar" field.
func (u *ContentPageUpsert) SetExcerptAr(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldExcerptAr, v)
	return u
}

// UpdateExcerptAr sets the "excerpt_ar" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateExcerptAr() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldExcerptAr)
	return u
}

// ClearExcerptAr clears the value of the "excerpt_ar" field.
func (u *ContentPageUpsert) ClearExcerptAr() *ContentPageUpsert {
	u.SetNull(contentpage.FieldExcerptAr)
	return u
}

// SetBodyEn sets the "body_en" field.
func (u *ContentPageUpsert) SetBodyEn(v content.Document) *ContentPageUpsert {
	u.Set(contentpage.FieldBodyEn, v)
	return u
}

// UpdateBodyEn sets the "body_en" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateBodyEn() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldBodyEn)
	return u
}

// ClearBodyEn clears the value of the "body_en" field.
func (u *ContentPageUpsert) ClearBodyEn() *ContentPageUpsert {
	u.SetNull(contentpage.FieldBodyEn)
	return u
}

// SetBodyAr sets the "body_ar" field.
func (u *ContentPageUpsert) SetBodyAr(v content.Document) *ContentPageUpsert {
	u.Set(contentpage.FieldBodyAr, v)
	return u
}

// UpdateBodyAr sets the "body_ar" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateBodyAr() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldBodyAr)
	return u
}

// ClearBodyAr clears the value of the "body_ar" field.
func (u *ContentPageUpsert) ClearBodyAr() *ContentPageUpsert {
	u.SetNull(contentpage.FieldBodyAr)
	return u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *ContentPageUpsert) SetMetaTitleEn(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldMetaTitleEn, v)
	return u
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateMetaTitleEn() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldMetaTitleEn)
	return u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *ContentPageUpsert) ClearMetaTitleEn() *ContentPageUpsert {
	u.SetNull(contentpage.FieldMetaTitleEn)
	return u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *ContentPageUpsert) SetMetaTitleAr(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldMetaTitleAr, v)
	return u
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateMetaTitleAr() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldMetaTitleAr)
	return u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *ContentPageUpsert) ClearMetaTitleAr() *ContentPageUpsert {
	u.SetNull(contentpage.FieldMetaTitleAr)
	return u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *ContentPageUpsert) SetMetaDescriptionEn(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldMetaDescriptionEn, v)
	return u
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateMetaDescriptionEn() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldMetaDescriptionEn)
	return u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *ContentPageUpsert) ClearMetaDescriptionEn() *ContentPageUpsert {
	u.SetNull(contentpage.FieldMetaDescriptionEn)
	return u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *ContentPageUpsert) SetMetaDescriptionAr(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldMetaDescriptionAr, v)
	return u
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateMetaDescriptionAr() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldMetaDescriptionAr)
	return u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *ContentPageUpsert) ClearMetaDescriptionAr() *ContentPageUpsert {
	u.SetNull(contentpage.FieldMetaDescriptionAr)
	return u
}

// SetCoverImage sets the "cover_image" field.
func (u *ContentPageUpsert) SetCoverImage(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldCoverImage, v)
	return u
}

// UpdateCoverImage sets the "cover_image" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateCoverImage() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldCoverImage)
	return u
}

// ClearCoverImage clears the value of the "cover_image" field.
func (u *ContentPageUpsert) ClearCoverImage() *ContentPageUpsert {
	u.SetNull(contentpage.FieldCoverImage)
	return u
}

// SetTags sets the "tags" field.
func (u *ContentPageUpsert) SetTags(v []string) *ContentPageUpsert {
	u.Set(contentpage.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateTags() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *ContentPageUpsert) ClearTags() *ContentPageUpsert {
	u.SetNull(contentpage.FieldTags)
	return u
}

// SetFaq sets the "faq" field.
func (u *ContentPageUpsert) SetFaq(v []content.FAQItem) *ContentPageUpsert {
	u.Set(contentpage.FieldFaq, v)
	return u
}

// UpdateFaq sets the "faq" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateFaq() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldFaq)
	return u
}

// ClearFaq clears the value of the "faq" field.
func (u *ContentPageUpsert) ClearFaq() *ContentPageUpsert {
	u.SetNull(contentpage.FieldFaq)
	return u
}

// SetAuthorName sets the "author_name" field.
func (u *ContentPageUpsert) SetAuthorName(v string) *ContentPageUpsert {
	u.Set(contentpage.FieldAuthorName, v)
	return u
}

// UpdateAuthorName sets the "author_name" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateAuthorName() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldAuthorName)
	return u
}

// ClearAuthorName clears the value of the "author_name" field.
func (u *ContentPageUpsert) ClearAuthorName() *ContentPageUpsert {
	u.SetNull(contentpage.FieldAuthorName)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *ContentPageUpsert) SetAuthorID(v uuid.UUID) *ContentPageUpsert {
	u.Set(contentpage.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ContentPageUpsert) UpdateAuthorID() *ContentPageUpsert {
	u.SetExcluded(contentpage.FieldAuthorID)
	return u
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *ContentPageUpsert) ClearAuthorID() *ContentPageUpsert {
	u.SetNull(contentpage.FieldAuthorID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ContentPage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contentpage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentPageUpsertOne) UpdateNewValues() *ContentPageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contentpage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(contentpage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentPage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContentPageUpsertOne) Ignore() *ContentPageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentPageUpsertOne) DoNothing() *ContentPageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentPageCreate.OnConflict
// documentation for more info.
func (u *ContentPageUpsertOne) Update(set func(*ContentPageUpsert)) *ContentPageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentPageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentPageUpsertOne) SetUpdatedAt(v time.Time) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateUpdatedAt() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *ContentPageUpsertOne) SetPublished(v bool) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdatePublished() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ContentPageUpsertOne) SetPublishedAt(v time.Time) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdatePublishedAt() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ContentPageUpsertOne) ClearPublishedAt() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *ContentPageUpsertOne) SetIsArchived(v bool) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateIsArchived() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *ContentPageUpsertOne) SetArchivedAt(v time.Time) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateArchivedAt() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *ContentPageUpsertOne) ClearArchivedAt() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearArchivedAt()
	})
}

// SetKind sets the "kind" field.
func (u *ContentPageUpsertOne) SetKind(v contentpage.Kind) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateKind() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateKind()
	})
}

// SetTitleEn sets the "title_en" field.
func (u *ContentPageUpsertOne) SetTitleEn(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetTitleEn(v)
	})
}

// UpdateTitleEn sets the "title_en" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateTitleEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateTitleEn()
	})
}

// SetTitleAr sets the "title_ar" field.
func (u *ContentPageUpsertOne) SetTitleAr(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetTitleAr(v)
	})
}

// UpdateTitleAr sets the "title_ar" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateTitleAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateTitleAr()
	})
}

// SetSlug sets the "slug" field.
func (u *ContentPageUpsertOne) SetSlug(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateSlug() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateSlug()
	})
}

// SetExcerptEn sets the "excerpt_en" field.
func (u *ContentPageUpsertOne) SetExcerptEn(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetExcerptEn(v)
	})
}

// UpdateExcerptEn sets the "excerpt_en" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateExcerptEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateExcerptEn()
	})
}

// ClearExcerptEn clears the value of the "excerpt_en" field.
func (u *ContentPageUpsertOne) ClearExcerptEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearExcerptEn()
	})
}

// SetExcerptAr sets the "excerpt_ar" field.
func (u *ContentPageUpsertOne) SetExcerptAr(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetExcerptAr(v)
	})
}

// UpdateExcerptAr sets the "excerpt_ar" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateExcerptAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateExcerptAr()
	})
}

// ClearExcerptAr clears the value of the "excerpt_ar" field.
func (u *ContentPageUpsertOne) ClearExcerptAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearExcerptAr()
	})
}

// SetBodyEn sets the "body_en" field.
func (u *ContentPageUpsertOne) SetBodyEn(v content.Document) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetBodyEn(v)
	})
}

// UpdateBodyEn sets the "body_en" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateBodyEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateBodyEn()
	})
}

// ClearBodyEn clears the value of the "body_en" field.
func (u *ContentPageUpsertOne) ClearBodyEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearBodyEn()
	})
}

// SetBodyAr sets the "body_ar" field.
func (u *ContentPageUpsertOne) SetBodyAr(v content.Document) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetBodyAr(v)
	})
}

// UpdateBodyAr sets the "body_ar" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateBodyAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateBodyAr()
	})
}

// ClearBodyAr clears the value of the "body_ar" field.
func (u *ContentPageUpsertOne) ClearBodyAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearBodyAr()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *ContentPageUpsertOne) SetMetaTitleEn(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateMetaTitleEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *ContentPageUpsertOne) ClearMetaTitleEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *ContentPageUpsertOne) SetMetaTitleAr(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateMetaTitleAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *ContentPageUpsertOne) ClearMetaTitleAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *ContentPageUpsertOne) SetMetaDescriptionEn(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateMetaDescriptionEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *ContentPageUpsertOne) ClearMetaDescriptionEn() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *ContentPageUpsertOne) SetMetaDescriptionAr(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateMetaDescriptionAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *ContentPageUpsertOne) ClearMetaDescriptionAr() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// SetCoverImage sets the "cover_image" field.
func (u *ContentPageUpsertOne) SetCoverImage(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetCoverImage(v)
	})
}

// UpdateCoverImage sets the "cover_image" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateCoverImage() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateCoverImage()
	})
}

// ClearCoverImage clears the value of the "cover_image" field.
func (u *ContentPageUpsertOne) ClearCoverImage() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearCoverImage()
	})
}

// SetTags sets the "tags" field.
func (u *ContentPageUpsertOne) SetTags(v []string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateTags() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ContentPageUpsertOne) ClearTags() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearTags()
	})
}

// SetFaq sets the "faq" field.
func (u *ContentPageUpsertOne) SetFaq(v []content.FAQItem) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetFaq(v)
	})
}

// UpdateFaq sets the "faq" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateFaq() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateFaq()
	})
}

// ClearFaq clears the value of the "faq" field.
func (u *ContentPageUpsertOne) ClearFaq() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearFaq()
	})
}

// SetAuthorName sets the "author_name" field.
func (u *ContentPageUpsertOne) SetAuthorName(v string) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetAuthorName(v)
	})
}

// UpdateAuthorName sets the "author_name" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateAuthorName() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateAuthorName()
	})
}

// ClearAuthorName clears the value of the "author_name" field.
func (u *ContentPageUpsertOne) ClearAuthorName() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearAuthorName()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *ContentPageUpsertOne) SetAuthorID(v uuid.UUID) *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ContentPageUpsertOne) UpdateAuthorID() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateAuthorID()
	})
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *ContentPageUpsertOne) ClearAuthorID() *ContentPageUpsertOne {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearAuthorID()
	})
}

// Exec executes the query.
func (u *ContentPageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ContentPageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentPageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContentPageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ContentPageUpsertOne.ID is not supported by MySQL driver. Use ContentPageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContentPageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContentPageCreateBulk is the builder for creating many ContentPage entities in bulk.
type ContentPageCreateBulk struct {
	config
	err      error
	builders []*ContentPageCreate
	conflict []sql.ConflictOption
}

// Save creates the ContentPage entities in the database.
func (_c *ContentPageCreateBulk) Save(ctx context.Context) ([]*ContentPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentPageMutation)
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
func (_c *ContentPageCreateBulk) SaveX(ctx context.Context) []*ContentPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentPage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentPageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentPageCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContentPageUpsertBulk {
	_c.conflict = opts
	return &ContentPageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentPage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentPageCreateBulk) OnConflictColumns(columns ...string) *ContentPageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentPageUpsertBulk{
		create: _c,
	}
}

// ContentPageUpsertBulk is the builder for "upsert"-ing
// a bulk of ContentPage nodes.
type ContentPageUpsertBulk struct {
	create *ContentPageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContentPage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contentpage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentPageUpsertBulk) UpdateNewValues() *ContentPageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contentpage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(contentpage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentPage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContentPageUpsertBulk) Ignore() *ContentPageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentPageUpsertBulk) DoNothing() *ContentPageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentPageCreateBulk.OnConflict
// documentation for more info.
func (u *ContentPageUpsertBulk) Update(set func(*ContentPageUpsert)) *ContentPageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentPageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentPageUpsertBulk) SetUpdatedAt(v time.Time) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateUpdatedAt() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPublished sets the "published" field.
func (u *ContentPageUpsertBulk) SetPublished(v bool) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdatePublished() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdatePublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ContentPageUpsertBulk) SetPublishedAt(v time.Time) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdatePublishedAt() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ContentPageUpsertBulk) ClearPublishedAt() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearPublishedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *ContentPageUpsertBulk) SetIsArchived(v bool) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateIsArchived() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *ContentPageUpsertBulk) SetArchivedAt(v time.Time) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateArchivedAt() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *ContentPageUpsertBulk) ClearArchivedAt() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearArchivedAt()
	})
}

// SetKind sets the "kind" field.
func (u *ContentPageUpsertBulk) SetKind(v contentpage.Kind) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateKind() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateKind()
	})
}

// SetTitleEn sets the "title_en" field.
func (u *ContentPageUpsertBulk) SetTitleEn(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetTitleEn(v)
	})
}

// UpdateTitleEn sets the "title_en" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateTitleEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateTitleEn()
	})
}

// SetTitleAr sets the "title_ar" field.
func (u *ContentPageUpsertBulk) SetTitleAr(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetTitleAr(v)
	})
}

// UpdateTitleAr sets the "title_ar" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateTitleAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateTitleAr()
	})
}

// SetSlug sets the "slug" field.
func (u *ContentPageUpsertBulk) SetSlug(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateSlug() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateSlug()
	})
}

// SetExcerptEn sets the "excerpt_en" field.
func (u *ContentPageUpsertBulk) SetExcerptEn(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetExcerptEn(v)
	})
}

// UpdateExcerptEn sets the "excerpt_en" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateExcerptEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateExcerptEn()
	})
}

// ClearExcerptEn clears the value of the "excerpt_en" field.
func (u *ContentPageUpsertBulk) ClearExcerptEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearExcerptEn()
	})
}

// SetExcerptAr sets the "excerpt_ar" field.
func (u *ContentPageUpsertBulk) SetExcerptAr(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetExcerptAr(v)
	})
}

// UpdateExcerptAr sets the "excerpt_ar" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateExcerptAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateExcerptAr()
	})
}

// ClearExcerptAr clears the value of the "excerpt_ar" field.
func (u *ContentPageUpsertBulk) ClearExcerptAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearExcerptAr()
	})
}

// SetBodyEn sets the "body_en" field.
func (u *ContentPageUpsertBulk) SetBodyEn(v content.Document) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetBodyEn(v)
	})
}

// UpdateBodyEn sets the "body_en" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateBodyEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateBodyEn()
	})
}

// ClearBodyEn clears the value of the "body_en" field.
func (u *ContentPageUpsertBulk) ClearBodyEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearBodyEn()
	})
}

// SetBodyAr sets the "body_ar" field.
func (u *ContentPageUpsertBulk) SetBodyAr(v content.Document) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetBodyAr(v)
	})
}

// UpdateBodyAr sets the "body_ar" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateBodyAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateBodyAr()
	})
}

// ClearBodyAr clears the value of the "body_ar" field.
func (u *ContentPageUpsertBulk) ClearBodyAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearBodyAr()
	})
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (u *ContentPageUpsertBulk) SetMetaTitleEn(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaTitleEn(v)
	})
}

// UpdateMetaTitleEn sets the "meta_title_en" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateMetaTitleEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaTitleEn()
	})
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (u *ContentPageUpsertBulk) ClearMetaTitleEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaTitleEn()
	})
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (u *ContentPageUpsertBulk) SetMetaTitleAr(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaTitleAr(v)
	})
}

// UpdateMetaTitleAr sets the "meta_title_ar" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateMetaTitleAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaTitleAr()
	})
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (u *ContentPageUpsertBulk) ClearMetaTitleAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaTitleAr()
	})
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (u *ContentPageUpsertBulk) SetMetaDescriptionEn(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaDescriptionEn(v)
	})
}

// UpdateMetaDescriptionEn sets the "meta_description_en" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateMetaDescriptionEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaDescriptionEn()
	})
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (u *ContentPageUpsertBulk) ClearMetaDescriptionEn() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaDescriptionEn()
	})
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (u *ContentPageUpsertBulk) SetMetaDescriptionAr(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetMetaDescriptionAr(v)
	})
}

// UpdateMetaDescriptionAr sets the "meta_description_ar" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateMetaDescriptionAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateMetaDescriptionAr()
	})
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (u *ContentPageUpsertBulk) ClearMetaDescriptionAr() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearMetaDescriptionAr()
	})
}

// SetCoverImage sets the "cover_image" field.
func (u *ContentPageUpsertBulk) SetCoverImage(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetCoverImage(v)
	})
}

// UpdateCoverImage sets the "cover_image" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateCoverImage() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateCoverImage()
	})
}

// ClearCoverImage clears the value of the "cover_image" field.
func (u *ContentPageUpsertBulk) ClearCoverImage() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearCoverImage()
	})
}

// SetTags sets the "tags" field.
func (u *ContentPageUpsertBulk) SetTags(v []string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateTags() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ContentPageUpsertBulk) ClearTags() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearTags()
	})
}

// SetFaq sets the "faq" field.
func (u *ContentPageUpsertBulk) SetFaq(v []content.FAQItem) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetFaq(v)
	})
}

// UpdateFaq sets the "faq" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateFaq() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateFaq()
	})
}

// ClearFaq clears the value of the "faq" field.
func (u *ContentPageUpsertBulk) ClearFaq() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearFaq()
	})
}

// SetAuthorName sets the "author_name" field.
func (u *ContentPageUpsertBulk) SetAuthorName(v string) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetAuthorName(v)
	})
}

// UpdateAuthorName sets the "author_name" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateAuthorName() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateAuthorName()
	})
}

// ClearAuthorName clears the value of the "author_name" field.
func (u *ContentPageUpsertBulk) ClearAuthorName() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearAuthorName()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *ContentPageUpsertBulk) SetAuthorID(v uuid.UUID) *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ContentPageUpsertBulk) UpdateAuthorID() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.UpdateAuthorID()
	})
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *ContentPageUpsertBulk) ClearAuthorID() *ContentPageUpsertBulk {
	return u.Update(func(s *ContentPageUpsert) {
		s.ClearAuthorID()
	})
}

// Exec executes the query.
func (u *ContentPageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ContentPageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ContentPageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentPageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
