// Code generated by ent, DO NOT EDIT.

package contentpage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contentpage type in the database.
	Label = "content_page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPublished holds the string denoting the published field in the database.
	FieldPublished = "published"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTitleEn holds the string denoting the title_en field in the database.
	FieldTitleEn = "title_en"
	// FieldTitleAr holds the string denoting the title_ar field in the database.
	FieldTitleAr = "title_ar"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldExcerptEn holds the string denoting the excerpt_en field in the database.
	FieldExcerptEn = "excerpt_en"
	// FieldExcerptAr holds the string denoting the excerpt_ar field in the database.
	FieldExcerptAr = "excerpt_ar"
	// FieldBodyEn holds the string denoting the body_en field in the database.
	FieldBodyEn = "body_en"
	// FieldBodyAr holds the string denoting the body_ar field in the database.
	FieldBodyAr = "body_ar"
	// FieldMetaTitleEn holds the string denoting the meta_title_en field in the database.
	FieldMetaTitleEn = "meta_title_en"
	// FieldMetaTitleAr holds the string denoting the meta_title_ar field in the database.
	FieldMetaTitleAr = "meta_title_ar"
	// FieldMetaDescriptionEn holds the string denoting the meta_description_en field in the database.
	FieldMetaDescriptionEn = "meta_description_en"
	// FieldMetaDescriptionAr holds the string denoting the meta_description_ar field in the database.
	FieldMetaDescriptionAr = "meta_description_ar"
	// FieldCoverImage holds the string denoting the cover_image field in the database.
	FieldCoverImage = "cover_image"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldFaq holds the string denoting the faq field in the database.
	FieldFaq = "faq"
	// FieldAuthorName holds the string denoting the author_name field in the database.
	FieldAuthorName = "author_name"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// Table holds the table name of the contentpage in the database.
	Table = "content_pages"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "content_pages"
	// AuthorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	AuthorInverseTable = "users"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
)

// Columns holds all SQL columns for contentpage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPublished,
	FieldPublishedAt,
	FieldIsArchived,
	FieldArchivedAt,
	FieldKind,
	FieldTitleEn,
	FieldTitleAr,
	FieldSlug,
	FieldExcerptEn,
	FieldExcerptAr,
	FieldBodyEn,
	FieldBodyAr,
	FieldMetaTitleEn,
	FieldMetaTitleAr,
	FieldMetaDescriptionEn,
	FieldMetaDescriptionAr,
	FieldCoverImage,
	FieldTags,
	FieldFaq,
	FieldAuthorName,
	FieldAuthorID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultPublished holds the default value on creation for the "published" field.
	DefaultPublished bool
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// TitleEnValidator is a validator for the "title_en" field. It is called by the builders before save.
	TitleEnValidator func(string) error
	// TitleArValidator is a validator for the "title_ar" field. It is called by the builders before save.
	TitleArValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	MetaTitleEnValidator func(string) error
	// MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	MetaTitleArValidator func(string) error
	// CoverImageValidator is a validator for the "cover_image" field. It is called by the builders before save.
	CoverImageValidator func(string) error
	// AuthorNameValidator is a validator for the "author_name" field. It is called by the builders before save.
	AuthorNameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindBLOG is the default value of the Kind enum.
const DefaultKind = KindBLOG

// Kind values.
const (
	KindBLOG   Kind = "BLOG"
	KindSTATIC Kind = "STATIC"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindBLOG, KindSTATIC:
		return nil
	default:
		return fmt.Errorf("contentpage: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the ContentPage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPublished orders the results by the published field.
func ByPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublished, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTitleEn orders the results by the title_en field.
func ByTitleEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleEn, opts...).ToFunc()
}

// ByTitleAr orders the results by the title_ar field.
func ByTitleAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleAr, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByExcerptEn orders the results by the excerpt_en field.
func ByExcerptEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcerptEn, opts...).ToFunc()
}

// ByExcerptAr orders the results by the excerpt_ar field.
func ByExcerptAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcerptAr, opts...).ToFunc()
}

// ByMetaTitleEn orders the results by the meta_title_en field.
func ByMetaTitleEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaTitleEn, opts...).ToFunc()
}

// ByMetaTitleAr orders the results by the meta_title_ar field.
func ByMetaTitleAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaTitleAr, opts...).ToFunc()
}

// ByMetaDescriptionEn orders the results by the meta_description_en field.
func ByMetaDescriptionEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaDescriptionEn, opts...).ToFunc()
}

// ByMetaDescriptionAr orders the results by the meta_description_ar field.
func ByMetaDescriptionAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaDescriptionAr, opts...).ToFunc()
}

// ByCoverImage orders the results by the cover_image field.
func ByCoverImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverImage, opts...).ToFunc()
}

// ByAuthorName orders the results by the author_name field.
func ByAuthorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorName, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AuthorTable, AuthorColumn),
	)
}
