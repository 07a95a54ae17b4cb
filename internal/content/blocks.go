// Package content defines the structured block format shared by every
// long-form content field in the system: treatment pages, blog posts and
// other CMS pages all store a Document per language instead of raw HTML.
package content

import (
	"errors"
	"fmt"

	"github.com/shifaalhind/backend/pkg/locale"
)

// BlockType tags a Block. The set is closed; renderers switch on it.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockTable     BlockType = "table"
	BlockCallout   BlockType = "callout"
)

var (
	ErrUnknownBlockType = errors.New("unknown content block type")
	ErrEmptyBlock       = errors.New("content block is empty")
	ErrRaggedTable      = errors.New("table rows must match header width")
)

// Block is one section of a Document. Which fields are meaningful depends
// on Type: heading/paragraph/callout use Content, list uses Items, table
// uses Headers+Rows.
type Block struct {
	Type    BlockType  `json:"type"`
	Content string     `json:"content,omitempty"`
	Items   []string   `json:"items,omitempty"`
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// Document is an ordered list of blocks, stored as JSON on the owning row.
type Document struct {
	Sections []Block `json:"sections"`
}

// Validate checks the block's shape against its type.
func (b Block) Validate() error {
	switch b.Type {
	case BlockHeading, BlockParagraph, BlockCallout:
		if b.Content == "" {
			return fmt.Errorf("%w: %s has no content", ErrEmptyBlock, b.Type)
		}
	case BlockList:
		if len(b.Items) == 0 {
			return fmt.Errorf("%w: list has no items", ErrEmptyBlock)
		}
	case BlockTable:
		if len(b.Headers) == 0 || len(b.Rows) == 0 {
			return fmt.Errorf("%w: table needs headers and rows", ErrEmptyBlock)
		}
		for i, row := range b.Rows {
			if len(row) != len(b.Headers) {
				return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedTable, i, len(row), len(b.Headers))
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBlockType, b.Type)
	}
	return nil
}

// Validate checks every section of the document.
func (d Document) Validate() error {
	for i, b := range d.Sections {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

// Empty reports whether the document carries no sections at all.
func (d Document) Empty() bool {
	return len(d.Sections) == 0
}

// FAQItem is one bilingual question/answer pair.
type FAQItem struct {
	QuestionEn string `json:"q_en"`
	AnswerEn   string `json:"a_en"`
	QuestionAr string `json:"q_ar"`
	AnswerAr   string `json:"a_ar"`
}

// LocalizedFAQ is a FAQItem resolved for one locale.
type LocalizedFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Localize resolves the pair for the locale.
func (f FAQItem) Localize(l locale.Locale) LocalizedFAQ {
	return LocalizedFAQ{
		Question: locale.Pick(l, f.QuestionEn, f.QuestionAr),
		Answer:   locale.Pick(l, f.AnswerEn, f.AnswerAr),
	}
}

// Complete reports whether both language sides are populated.
func (f FAQItem) Complete() bool {
	return f.QuestionEn != "" && f.AnswerEn != "" && f.QuestionAr != "" && f.AnswerAr != ""
}

// Images holds the main image plus gallery for a content entity.
type Images struct {
	Main    string   `json:"main"`
	Gallery []string `json:"gallery,omitempty"`
}
