// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// ContentPage is the model entity for the ContentPage schema.
type ContentPage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Published holds the value of the "published" field.
	Published bool `json:"published,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// IsArchived holds the value of the "is_archived" field.
	IsArchived bool `json:"is_archived,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind contentpage.Kind `json:"kind,omitempty"`
	// TitleEn holds the value of the "title_en" field.
	TitleEn string `json:"title_en,omitempty"`
	// TitleAr holds the value of the "title_ar" field.
	TitleAr string `json:"title_ar,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// ExcerptEn holds the value of the "excerpt_en" field.
	ExcerptEn string `json:"excerpt_en,omitempty"`
	// ExcerptAr holds the value of the "excerpt_ar" field.
	ExcerptAr string `json:"excerpt_ar,omitempty"`
	// BodyEn holds the value of the "body_en" field.
	BodyEn content.Document `json:"body_en,omitempty"`
	// BodyAr holds the value of the "body_ar" field.
	BodyAr content.Document `json:"body_ar,omitempty"`
	// MetaTitleEn holds the value of the "meta_title_en" field.
	MetaTitleEn *string `json:"meta_title_en,omitempty"`
	// MetaTitleAr holds the value of the "meta_title_ar" field.
	MetaTitleAr *string `json:"meta_title_ar,omitempty"`
	// MetaDescriptionEn holds the value of the "meta_description_en" field.
	MetaDescriptionEn string `json:"meta_description_en,omitempty"`
	// MetaDescriptionAr holds the value of the "meta_description_ar" field.
	MetaDescriptionAr string `json:"meta_description_ar,omitempty"`
	// CoverImage holds the value of the "cover_image" field.
	CoverImage *string `json:"cover_image,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Faq holds the value of the "faq" field.
	Faq []content.FAQItem `json:"faq,omitempty"`
	// Display byline; may differ from the owning user
	AuthorName *string `json:"author_name,omitempty"`
	// FK → users.id
	AuthorID *uuid.UUID `json:"author_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentPageQuery when eager-loading is set.
	Edges        ContentPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentPageEdges holds the relations/edges for other nodes in the graph.
type ContentPageEdges struct {
	// Author holds the value of the author edge.
	Author *User `json:"author,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentPageEdges) AuthorOrErr() (*User, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentpage.FieldAuthorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contentpage.FieldBodyEn, contentpage.FieldBodyAr, contentpage.FieldTags, contentpage.FieldFaq:
			values[i] = new([]byte)
		case contentpage.FieldPublished, contentpage.FieldIsArchived:
			values[i] = new(sql.NullBool)
		case contentpage.FieldKind, contentpage.FieldTitleEn, contentpage.FieldTitleAr, contentpage.FieldSlug, contentpage.FieldExcerptEn, contentpage.FieldExcerptAr, contentpage.FieldMetaTitleEn, contentpage.FieldMetaTitleAr, contentpage.FieldMetaDescriptionEn, contentpage.FieldMetaDescriptionAr, contentpage.FieldCoverImage, contentpage.FieldAuthorName:
			values[i] = new(sql.NullString)
		case contentpage.FieldCreatedAt, contentpage.FieldUpdatedAt, contentpage.FieldPublishedAt, contentpage.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		case contentpage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentPage fields.
func (_m *ContentPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contentpage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contentpage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case contentpage.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case contentpage.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case contentpage.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case contentpage.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case contentpage.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = contentpage.Kind(value.String)
			}
		case contentpage.FieldTitleEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_en", values[i])
			} else if value.Valid {
				_m.TitleEn = value.String
			}
		case contentpage.FieldTitleAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_ar", values[i])
			} else if value.Valid {
				_m.TitleAr = value.String
			}
		case contentpage.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case contentpage.FieldExcerptEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field excerpt_en", values[i])
			} else if value.Valid {
				_m.ExcerptEn = value.String
			}
		case contentpage.FieldExcerptAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field excerpt_ar", values[i])
			} else if value.Valid {
				_m.ExcerptAr = value.String
			}
		case contentpage.FieldBodyEn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body_en", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BodyEn); err != nil {
					return fmt.Errorf("unmarshal field body_en: %w", err)
				}
			}
		case contentpage.FieldBodyAr:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body_ar", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BodyAr); err != nil {
					return fmt.Errorf("unmarshal field body_ar: %w", err)
				}
			}
		case contentpage.FieldMetaTitleEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_en", values[i])
			} else if value.Valid {
				_m.MetaTitleEn = new(string)
				*_m.MetaTitleEn = value.String
			}
		case contentpage.FieldMetaTitleAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_ar", values[i])
			} else if value.Valid {
				_m.MetaTitleAr = new(string)
				*_m.MetaTitleAr = value.String
			}
		case contentpage.FieldMetaDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description_en", values[i])
			} else if value.Valid {
				_m.MetaDescriptionEn = value.String
			}
		case contentpage.FieldMetaDescriptionAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description_ar", values[i])
			} else if value.Valid {
				_m.MetaDescriptionAr = value.String
			}
		case contentpage.FieldCoverImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_image", values[i])
			} else if value.Valid {
				_m.CoverImage = new(string)
				*_m.CoverImage = value.String
			}
		case contentpage.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case contentpage.FieldFaq:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field faq", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Faq); err != nil {
					return fmt.Errorf("unmarshal field faq: %w", err)
				}
			}
		case contentpage.FieldAuthorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_name", values[i])
			} else if value.Valid {
				_m.AuthorName = new(string)
				*_m.AuthorName = value.String
			}
		case contentpage.FieldAuthorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = new(uuid.UUID)
				*_m.AuthorID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentPage.
// This includes values selected through modifiers, order, etc.
func (_m *ContentPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuthor queries the "author" edge of the ContentPage entity.
func (_m *ContentPage) QueryAuthor() *UserQuery {
	return NewContentPageClient(_m.config).QueryAuthor(_m)
}

// Update returns a builder for updating this ContentPage.
// Note that you need to call ContentPage.Unwrap() before calling this method if this ContentPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentPage) Update() *ContentPageUpdateOne {
	return NewContentPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentPage) Unwrap() *ContentPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ContentPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentPage) String() string {
	var builder strings.Builder
	builder.WriteString("ContentPage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("published=")
	builder.WriteString(fmt.Sprintf("%v", _m.Published))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsArchived))
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("title_en=")
	builder.WriteString(_m.TitleEn)
	builder.WriteString(", ")
	builder.WriteString("title_ar=")
	builder.WriteString(_m.TitleAr)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("excerpt_en=")
	builder.WriteString(_m.ExcerptEn)
	builder.WriteString(", ")
	builder.WriteString("excerpt_ar=")
	builder.WriteString(_m.ExcerptAr)
	builder.WriteString(", ")
	builder.WriteString("body_en=")
	builder.WriteString(fmt.Sprintf("%v", _m.BodyEn))
	builder.WriteString(", ")
	builder.WriteString("body_ar=")
	builder.WriteString(fmt.Sprintf("%v", _m.BodyAr))
	builder.WriteString(", ")
	if v := _m.MetaTitleEn; v != nil {
		builder.WriteString("meta_title_en=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MetaTitleAr; v != nil {
		builder.WriteString("meta_title_ar=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("meta_description_en=")
	builder.WriteString(_m.MetaDescriptionEn)
	builder.WriteString(", ")
	builder.WriteString("meta_description_ar=")
	builder.WriteString(_m.MetaDescriptionAr)
	builder.WriteString(", ")
	if v := _m.CoverImage; v != nil {
		builder.WriteString("cover_image=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("faq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Faq))
	builder.WriteString(", ")
	if v := _m.AuthorName; v != nil {
		builder.WriteString("author_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AuthorID; v != nil {
		builder.WriteString("author_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ContentPages is a parsable slice of ContentPage.
type ContentPages []*ContentPage
