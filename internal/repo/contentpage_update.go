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
	"github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// ContentPageUpdate is the builder for updating ContentPage entities.
type ContentPageUpdate struct {
	config
	hooks    []Hook
	mutation *ContentPageMutation
}

// Where appends a list predicates to the ContentPageUpdate builder.
func (_u *ContentPageUpdate) Where(ps ...predicate.ContentPage) *ContentPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentPageUpdate) SetUpdatedAt(v time.Time) *ContentPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *ContentPageUpdate) SetPublished(v bool) *ContentPageUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillablePublished(v *bool) *ContentPageUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ContentPageUpdate) SetPublishedAt(v time.Time) *ContentPageUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillablePublishedAt(v *time.Time) *ContentPageUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ContentPageUpdate) ClearPublishedAt() *ContentPageUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *ContentPageUpdate) SetIsArchived(v bool) *ContentPageUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableIsArchived(v *bool) *ContentPageUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *ContentPageUpdate) SetArchivedAt(v time.Time) *ContentPageUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableArchivedAt(v *time.Time) *ContentPageUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *ContentPageUpdate) ClearArchivedAt() *ContentPageUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentPageUpdate) SetKind(v contentpage.Kind) *ContentPageUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableKind(v *contentpage.Kind) *ContentPageUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitleEn sets the "title_en" field.
func (_u *ContentPageUpdate) SetTitleEn(v string) *ContentPageUpdate {
	_u.mutation.SetTitleEn(v)
	return _u
}

// SetNillableTitleEn sets the "title_en" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableTitleEn(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetTitleEn(*v)
	}
	return _u
}

// SetTitleAr sets the "title_ar" field.
func (_u *ContentPageUpdate) SetTitleAr(v string) *ContentPageUpdate {
	_u.mutation.SetTitleAr(v)
	return _u
}

// SetNillableTitleAr sets the "title_ar" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableTitleAr(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetTitleAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ContentPageUpdate) SetSlug(v string) *ContentPageUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableSlug(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetExcerptEn sets the "excerpt_en" field.
func (_u *ContentPageUpdate) SetExcerptEn(v string) *ContentPageUpdate {
	_u.mutation.SetExcerptEn(v)
	return _u
}

// SetNillableExcerptEn sets the "excerpt_en" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableExcerptEn(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetExcerptEn(*v)
	}
	return _u
}

// ClearExcerptEn clears the value of the "excerpt_en" field.
func (_u *ContentPageUpdate) ClearExcerptEn() *ContentPageUpdate {
	_u.mutation.ClearExcerptEn()
	return _u
}

// SetExcerptAr sets the "excerpt_ar" field.
func (_u *ContentPageUpdate) SetExcerptAr(v string) *ContentPageUpdate {
	_u.mutation.SetExcerptAr(v)
	return _u
}

// SetNillableExcerptAr sets the "excerpt_ar" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableExcerptAr(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetExcerptAr(*v)
	}
	return _u
}

// ClearExcerptAr clears the value of the "excerpt_ar" field.
func (_u *ContentPageUpdate) ClearExcerptAr() *ContentPageUpdate {
	_u.mutation.ClearExcerptAr()
	return _u
}

// SetBodyEn sets the "body_en" field.
func (_u *ContentPageUpdate) SetBodyEn(v content.Document) *ContentPageUpdate {
	_u.mutation.SetBodyEn(v)
	return _u
}

// SetNillableBodyEn sets the "body_en" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableBodyEn(v *content.Document) *ContentPageUpdate {
	if v != nil {
		_u.SetBodyEn(*v)
	}
	return _u
}

// ClearBodyEn clears the value of the "body_en" field.
func (_u *ContentPageUpdate) ClearBodyEn() *ContentPageUpdate {
	_u.mutation.ClearBodyEn()
	return _u
}

// SetBodyAr sets the "body_ar" field.
func (_u *ContentPageUpdate) SetBodyAr(v content.Document) *ContentPageUpdate {
	_u.mutation.SetBodyAr(v)
	return _u
}

// SetNillableBodyAr sets the "body_ar" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableBodyAr(v *content.Document) *ContentPageUpdate {
	if v != nil {
		_u.SetBodyAr(*v)
	}
	return _u
}

// ClearBodyAr clears the value of the "body_ar" field.
func (_u *ContentPageUpdate) ClearBodyAr() *ContentPageUpdate {
	_u.mutation.ClearBodyAr()
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *ContentPageUpdate) SetMetaTitleEn(v string) *ContentPageUpdate {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableMetaTitleEn(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *ContentPageUpdate) ClearMetaTitleEn() *ContentPageUpdate {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *ContentPageUpdate) SetMetaTitleAr(v string) *ContentPageUpdate {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableMetaTitleAr(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *ContentPageUpdate) ClearMetaTitleAr() *ContentPageUpdate {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *ContentPageUpdate) SetMetaDescriptionEn(v string) *ContentPageUpdate {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableMetaDescriptionEn(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *ContentPageUpdate) ClearMetaDescriptionEn() *ContentPageUpdate {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *ContentPageUpdate) SetMetaDescriptionAr(v string) *ContentPageUpdate {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableMetaDescriptionAr(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *ContentPageUpdate) ClearMetaDescriptionAr() *ContentPageUpdate {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// SetCoverImage sets the "cover_image" field.
func (_u *ContentPageUpdate) SetCoverImage(v string) *ContentPageUpdate {
	_u.mutation.SetCoverImage(v)
	return _u
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableCoverImage(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetCoverImage(*v)
	}
	return _u
}

// ClearCoverImage clears the value of the "cover_image" field.
func (_u *ContentPageUpdate) ClearCoverImage() *ContentPageUpdate {
	_u.mutation.ClearCoverImage()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContentPageUpdate) SetTags(v []string) *ContentPageUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContentPageUpdate) AppendTags(v []string) *ContentPageUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContentPageUpdate) ClearTags() *ContentPageUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetFaq sets the "faq" field.
func (_u *ContentPageUpdate) SetFaq(v []content.FAQItem) *ContentPageUpdate {
	_u.mutation.SetFaq(v)
	return _u
}

// AppendFaq appends value to the "faq" field.
func (_u *ContentPageUpdate) AppendFaq(v []content.FAQItem) *ContentPageUpdate {
	_u.mutation.AppendFaq(v)
	return _u
}

// ClearFaq clears the value of the "faq" field.
func (_u *ContentPageUpdate) ClearFaq() *ContentPageUpdate {
	_u.mutation.ClearFaq()
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *ContentPageUpdate) SetAuthorName(v string) *ContentPageUpdate {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableAuthorName(v *string) *ContentPageUpdate {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// ClearAuthorName clears the value of the "author_name" field.
func (_u *ContentPageUpdate) ClearAuthorName() *ContentPageUpdate {
	_u.mutation.ClearAuthorName()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ContentPageUpdate) SetAuthorID(v uuid.UUID) *ContentPageUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ContentPageUpdate) SetNillableAuthorID(v *uuid.UUID) *ContentPageUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *ContentPageUpdate) ClearAuthorID() *ContentPageUpdate {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetAuthor sets the "author" edge to the User entity.
func (_u *ContentPageUpdate) SetAuthor(v *User) *ContentPageUpdate {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the ContentPageMutation object of the builder.
func (_u *ContentPageUpdate) Mutation() *ContentPageMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the User entity.
func (_u *ContentPageUpdate) ClearAuthor() *ContentPageUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contentpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentPageUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := contentpage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "ContentPage.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleEn(); ok {
		if err := contentpage.TitleEnValidator(v); err != nil {
			return &ValidationError{Name: "title_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleAr(); ok {
		if err := contentpage.TitleArValidator(v); err != nil {
			return &ValidationError{Name: "title_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.title_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := contentpage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ContentPage.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyEn(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.body_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyAr(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.body_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := contentpage.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := contentpage.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.meta_title_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoverImage(); ok {
		if err := contentpage.CoverImageValidator(v); err != nil {
			return &ValidationError{Name: "cover_image", err: fmt.Errorf(`repo: validator failed for field "ContentPage.cover_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthorName(); ok {
		if err := contentpage.AuthorNameValidator(v); err != nil {
			return &ValidationError{Name: "author_name", err: fmt.Errorf(`repo: validator failed for field "ContentPage.author_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentpage.Table, contentpage.Columns, sqlgraph.NewFieldSpec(contentpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contentpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(contentpage.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(contentpage.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(contentpage.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(contentpage.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(contentpage.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(contentpage.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contentpage.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TitleEn(); ok {
		_spec.SetField(contentpage.FieldTitleEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.TitleAr(); ok {
		_spec.SetField(contentpage.FieldTitleAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(contentpage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExcerptEn(); ok {
		_spec.SetField(contentpage.FieldExcerptEn, field.TypeString, value)
	}
	if _u.mutation.ExcerptEnCleared() {
		_spec.ClearField(contentpage.FieldExcerptEn, field.TypeString)
	}
	if value, ok := _u.mutation.ExcerptAr(); ok {
		_spec.SetField(contentpage.FieldExcerptAr, field.TypeString, value)
	}
	if _u.mutation.ExcerptArCleared() {
		_spec.ClearField(contentpage.FieldExcerptAr, field.TypeString)
	}
	if value, ok := _u.mutation.BodyEn(); ok {
		_spec.SetField(contentpage.FieldBodyEn, field.TypeJSON, value)
	}
	if _u.mutation.BodyEnCleared() {
		_spec.ClearField(contentpage.FieldBodyEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.BodyAr(); ok {
		_spec.SetField(contentpage.FieldBodyAr, field.TypeJSON, value)
	}
	if _u.mutation.BodyArCleared() {
		_spec.ClearField(contentpage.FieldBodyAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(contentpage.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(contentpage.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(contentpage.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(contentpage.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(contentpage.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(contentpage.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(contentpage.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(contentpage.FieldMetaDescriptionAr, field.TypeString)
	}
	if value, ok := _u.mutation.CoverImage(); ok {
		_spec.SetField(contentpage.FieldCoverImage, field.TypeString, value)
	}
	if _u.mutation.CoverImageCleared() {
		_spec.ClearField(contentpage.FieldCoverImage, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contentpage.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentpage.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contentpage.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Faq(); ok {
		_spec.SetField(contentpage.FieldFaq, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFaq(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentpage.FieldFaq, value)
		})
	}
	if _u.mutation.FaqCleared() {
		_spec.ClearField(contentpage.FieldFaq, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(contentpage.FieldAuthorName, field.TypeString, value)
	}
	if _u.mutation.AuthorNameCleared() {
		_spec.ClearField(contentpage.FieldAuthorName, field.TypeString)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentPageUpdateOne is the builder for updating a single ContentPage entity.
type ContentPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentPageUpdateOne) SetUpdatedAt(v time.Time) *ContentPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *ContentPageUpdateOne) SetPublished(v bool) *ContentPageUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillablePublished(v *bool) *ContentPageUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ContentPageUpdateOne) SetPublishedAt(v time.Time) *ContentPageUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillablePublishedAt(v *time.Time) *ContentPageUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ContentPageUpdateOne) ClearPublishedAt() *ContentPageUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *ContentPageUpdateOne) SetIsArchived(v bool) *ContentPageUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableIsArchived(v *bool) *ContentPageUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *ContentPageUpdateOne) SetArchivedAt(v time.Time) *ContentPageUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableArchivedAt(v *time.Time) *ContentPageUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *ContentPageUpdateOne) ClearArchivedAt() *ContentPageUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentPageUpdateOne) SetKind(v contentpage.Kind) *ContentPageUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableKind(v *contentpage.Kind) *ContentPageUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitleEn sets the "title_en" field.
func (_u *ContentPageUpdateOne) SetTitleEn(v string) *ContentPageUpdateOne {
	_u.mutation.SetTitleEn(v)
	return _u
}

// SetNillableTitleEn sets the "title_en" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableTitleEn(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetTitleEn(*v)
	}
	return _u
}

// SetTitleAr sets the "title_ar" field.
func (_u *ContentPageUpdateOne) SetTitleAr(v string) *ContentPageUpdateOne {
	_u.mutation.SetTitleAr(v)
	return _u
}

// SetNillableTitleAr sets the "title_ar" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableTitleAr(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetTitleAr(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ContentPageUpdateOne) SetSlug(v string) *ContentPageUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableSlug(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetExcerptEn sets the "excerpt_en" field.
func (_u *ContentPageUpdateOne) SetExcerptEn(v string) *ContentPageUpdateOne {
	_u.mutation.SetExcerptEn(v)
	return _u
}

// SetNillableExcerptEn sets the "excerpt_en" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableExcerptEn(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetExcerptEn(*v)
	}
	return _u
}

// ClearExcerptEn clears the value of the "excerpt_en" field.
func (_u *ContentPageUpdateOne) ClearExcerptEn() *ContentPageUpdateOne {
	_u.mutation.ClearExcerptEn()
	return _u
}

// SetExcerptAr sets the "excerpt_ar" field.
func (_u *ContentPageUpdateOne) SetExcerptAr(v string) *ContentPageUpdateOne {
	_u.mutation.SetExcerptAr(v)
	return _u
}

// SetNillableExcerptAr sets the "excerpt_ar" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableExcerptAr(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetExcerptAr(*v)
	}
	return _u
}

// ClearExcerptAr clears the value of the "excerpt_ar" field.
func (_u *ContentPageUpdateOne) ClearExcerptAr() *ContentPageUpdateOne {
	_u.mutation.ClearExcerptAr()
	return _u
}

// SetBodyEn sets the "body_en" field.
func (_u *ContentPageUpdateOne) SetBodyEn(v content.Document) *ContentPageUpdateOne {
	_u.mutation.SetBodyEn(v)
	return _u
}

// SetNillableBodyEn sets the "body_en" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableBodyEn(v *content.Document) *ContentPageUpdateOne {
	if v != nil {
		_u.SetBodyEn(*v)
	}
	return _u
}

// ClearBodyEn clears the value of the "body_en" field.
func (_u *ContentPageUpdateOne) ClearBodyEn() *ContentPageUpdateOne {
	_u.mutation.ClearBodyEn()
	return _u
}

// SetBodyAr sets the "body_ar" field.
func (_u *ContentPageUpdateOne) SetBodyAr(v content.Document) *ContentPageUpdateOne {
	_u.mutation.SetBodyAr(v)
	return _u
}

// SetNillableBodyAr sets the "body_ar" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableBodyAr(v *content.Document) *ContentPageUpdateOne {
	if v != nil {
		_u.SetBodyAr(*v)
	}
	return _u
}

// ClearBodyAr clears the value of the "body_ar" field.
func (_u *ContentPageUpdateOne) ClearBodyAr() *ContentPageUpdateOne {
	_u.mutation.ClearBodyAr()
	return _u
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (_u *ContentPageUpdateOne) SetMetaTitleEn(v string) *ContentPageUpdateOne {
	_u.mutation.SetMetaTitleEn(v)
	return _u
}

// SetNillableMetaTitleEn sets the "meta_title_en" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableMetaTitleEn(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetMetaTitleEn(*v)
	}
	return _u
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (_u *ContentPageUpdateOne) ClearMetaTitleEn() *ContentPageUpdateOne {
	_u.mutation.ClearMetaTitleEn()
	return _u
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (_u *ContentPageUpdateOne) SetMetaTitleAr(v string) *ContentPageUpdateOne {
	_u.mutation.SetMetaTitleAr(v)
	return _u
}

// SetNillableMetaTitleAr sets the "meta_title_ar" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableMetaTitleAr(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetMetaTitleAr(*v)
	}
	return _u
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (_u *ContentPageUpdateOne) ClearMetaTitleAr() *ContentPageUpdateOne {
	_u.mutation.ClearMetaTitleAr()
	return _u
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (_u *ContentPageUpdateOne) SetMetaDescriptionEn(v string) *ContentPageUpdateOne {
	_u.mutation.SetMetaDescriptionEn(v)
	return _u
}

// SetNillableMetaDescriptionEn sets the "meta_description_en" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableMetaDescriptionEn(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionEn(*v)
	}
	return _u
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (_u *ContentPageUpdateOne) ClearMetaDescriptionEn() *ContentPageUpdateOne {
	_u.mutation.ClearMetaDescriptionEn()
	return _u
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (_u *ContentPageUpdateOne) SetMetaDescriptionAr(v string) *ContentPageUpdateOne {
	_u.mutation.SetMetaDescriptionAr(v)
	return _u
}

// SetNillableMetaDescriptionAr sets the "meta_description_ar" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableMetaDescriptionAr(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetMetaDescriptionAr(*v)
	}
	return _u
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (_u *ContentPageUpdateOne) ClearMetaDescriptionAr() *ContentPageUpdateOne {
	_u.mutation.ClearMetaDescriptionAr()
	return _u
}

// SetCoverImage sets the "cover_image" field.
func (_u *ContentPageUpdateOne) SetCoverImage(v string) *ContentPageUpdateOne {
	_u.mutation.SetCoverImage(v)
	return _u
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableCoverImage(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetCoverImage(*v)
	}
	return _u
}

// ClearCoverImage clears the value of the "cover_image" field.
func (_u *ContentPageUpdateOne) ClearCoverImage() *ContentPageUpdateOne {
	_u.mutation.ClearCoverImage()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContentPageUpdateOne) SetTags(v []string) *ContentPageUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContentPageUpdateOne) AppendTags(v []string) *ContentPageUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContentPageUpdateOne) ClearTags() *ContentPageUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetFaq sets the "faq" field.
func (_u *ContentPageUpdateOne) SetFaq(v []content.FAQItem) *ContentPageUpdateOne {
	_u.mutation.SetFaq(v)
	return _u
}

// AppendFaq appends value to the "faq" field.
func (_u *ContentPageUpdateOne) AppendFaq(v []content.FAQItem) *ContentPageUpdateOne {
	_u.mutation.AppendFaq(v)
	return _u
}

// ClearFaq clears the value of the "faq" field.
func (_u *ContentPageUpdateOne) ClearFaq() *ContentPageUpdateOne {
	_u.mutation.ClearFaq()
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *ContentPageUpdateOne) SetAuthorName(v string) *ContentPageUpdateOne {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableAuthorName(v *string) *ContentPageUpdateOne {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// ClearAuthorName clears the value of the "author_name" field.
func (_u *ContentPageUpdateOne) ClearAuthorName() *ContentPageUpdateOne {
	_u.mutation.ClearAuthorName()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ContentPageUpdateOne) SetAuthorID(v uuid.UUID) *ContentPageUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ContentPageUpdateOne) SetNillableAuthorID(v *uuid.UUID) *ContentPageUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *ContentPageUpdateOne) ClearAuthorID() *ContentPageUpdateOne {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetAuthor sets the "author" edge to the User entity.
func (_u *ContentPageUpdateOne) SetAuthor(v *User) *ContentPageUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the ContentPageMutation object of the builder.
func (_u *ContentPageUpdateOne) Mutation() *ContentPageMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the User entity.
func (_u *ContentPageUpdateOne) ClearAuthor() *ContentPageUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// Where appends a list predicates to the ContentPageUpdate builder.
func (_u *ContentPageUpdateOne) Where(ps ...predicate.ContentPage) *ContentPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentPageUpdateOne) Select(field string, fields ...string) *ContentPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentPage entity.
func (_u *ContentPageUpdateOne) Save(ctx context.Context) (*ContentPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentPageUpdateOne) SaveX(ctx context.Context) *ContentPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contentpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentPageUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := contentpage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "ContentPage.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleEn(); ok {
		if err := contentpage.TitleEnValidator(v); err != nil {
			return &ValidationError{Name: "title_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleAr(); ok {
		if err := contentpage.TitleArValidator(v); err != nil {
			return &ValidationError{Name: "title_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.title_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := contentpage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ContentPage.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyEn(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.body_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyAr(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "body_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.body_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleEn(); ok {
		if err := contentpage.MetaTitleEnValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_en", err: fmt.Errorf(`repo: validator failed for field "ContentPage.meta_title_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaTitleAr(); ok {
		if err := contentpage.MetaTitleArValidator(v); err != nil {
			return &ValidationError{Name: "meta_title_ar", err: fmt.Errorf(`repo: validator failed for field "ContentPage.meta_title_ar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoverImage(); ok {
		if err := contentpage.CoverImageValidator(v); err != nil {
			return &ValidationError{Name: "cover_image", err: fmt.Errorf(`repo: validator failed for field "ContentPage.cover_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthorName(); ok {
		if err := contentpage.AuthorNameValidator(v); err != nil {
			return &ValidationError{Name: "author_name", err: fmt.Errorf(`repo: validator failed for field "ContentPage.author_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentPageUpdateOne) sqlSave(ctx context.Context) (_node *ContentPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentpage.Table, contentpage.Columns, sqlgraph.NewFieldSpec(contentpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ContentPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentpage.FieldID)
		for _, f := range fields {
			if !contentpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != contentpage.FieldID {
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
		_spec.SetField(contentpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(contentpage.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(contentpage.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(contentpage.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(contentpage.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(contentpage.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(contentpage.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contentpage.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TitleEn(); ok {
		_spec.SetField(contentpage.FieldTitleEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.TitleAr(); ok {
		_spec.SetField(contentpage.FieldTitleAr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(contentpage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExcerptEn(); ok {
		_spec.SetField(contentpage.FieldExcerptEn, field.TypeString, value)
	}
	if _u.mutation.ExcerptEnCleared() {
		_spec.ClearField(contentpage.FieldExcerptEn, field.TypeString)
	}
	if value, ok := _u.mutation.ExcerptAr(); ok {
		_spec.SetField(contentpage.FieldExcerptAr, field.TypeString, value)
	}
	if _u.mutation.ExcerptArCleared() {
		_spec.ClearField(contentpage.FieldExcerptAr, field.TypeString)
	}
	if value, ok := _u.mutation.BodyEn(); ok {
		_spec.SetField(contentpage.FieldBodyEn, field.TypeJSON, value)
	}
	if _u.mutation.BodyEnCleared() {
		_spec.ClearField(contentpage.FieldBodyEn, field.TypeJSON)
	}
	if value, ok := _u.mutation.BodyAr(); ok {
		_spec.SetField(contentpage.FieldBodyAr, field.TypeJSON, value)
	}
	if _u.mutation.BodyArCleared() {
		_spec.ClearField(contentpage.FieldBodyAr, field.TypeJSON)
	}
	if value, ok := _u.mutation.MetaTitleEn(); ok {
		_spec.SetField(contentpage.FieldMetaTitleEn, field.TypeString, value)
	}
	if _u.mutation.MetaTitleEnCleared() {
		_spec.ClearField(contentpage.FieldMetaTitleEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitleAr(); ok {
		_spec.SetField(contentpage.FieldMetaTitleAr, field.TypeString, value)
	}
	if _u.mutation.MetaTitleArCleared() {
		_spec.ClearField(contentpage.FieldMetaTitleAr, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionEn(); ok {
		_spec.SetField(contentpage.FieldMetaDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionEnCleared() {
		_spec.ClearField(contentpage.FieldMetaDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescriptionAr(); ok {
		_spec.SetField(contentpage.FieldMetaDescriptionAr, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionArCleared() {
		_spec.ClearField(contentpage.FieldMetaDescriptionAr, field.TypeString)
	}
	if value, ok := _u.mutation.CoverImage(); ok {
		_spec.SetField(contentpage.FieldCoverImage, field.TypeString, value)
	}
	if _u.mutation.CoverImageCleared() {
		_spec.ClearField(contentpage.FieldCoverImage, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contentpage.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentpage.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contentpage.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Faq(); ok {
		_spec.SetField(contentpage.FieldFaq, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFaq(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentpage.FieldFaq, value)
		})
	}
	if _u.mutation.FaqCleared() {
		_spec.ClearField(contentpage.FieldFaq, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(contentpage.FieldAuthorName, field.TypeString, value)
	}
	if _u.mutation.AuthorNameCleared() {
		_spec.ClearField(contentpage.FieldAuthorName, field.TypeString)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContentPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
