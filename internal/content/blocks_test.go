package content

import (
	"errors"
	"testing"

	"github.com/shifaalhind/backend/pkg/locale"
)

func TestBlockValidate(t *testing.T) {
	tests := []struct {
		name    string
		block   Block
		wantErr error
	}{
		{
			name:  "heading",
			block: Block{Type: BlockHeading, Content: "Procedure Overview"},
		},
		{
			name:  "paragraph",
			block: Block{Type: BlockParagraph, Content: "Bangalore has emerged as a top destination."},
		},
		{
			name:  "callout",
			block: Block{Type: BlockCallout, Content: "Free consultation for GCC patients."},
		},
		{
			name:  "list",
			block: Block{Type: BlockList, Items: []string{"Assessment", "Surgery", "Physiotherapy"}},
		},
		{
			name: "table",
			block: Block{
				Type:    BlockTable,
				Headers: []string{"Location", "Cost (USD)"},
				Rows:    [][]string{{"UAE", "$15,000 - $25,000"}, {"Bangalore", "$4,500 - $8,500"}},
			},
		},
		{
			name:    "heading without content",
			block:   Block{Type: BlockHeading},
			wantErr: ErrEmptyBlock,
		},
		{
			name:    "empty list",
			block:   Block{Type: BlockList},
			wantErr: ErrEmptyBlock,
		},
		{
			name: "ragged table",
			block: Block{
				Type:    BlockTable,
				Headers: []string{"Location", "Cost", "Savings"},
				Rows:    [][]string{{"UAE", "$15,000"}},
			},
			wantErr: ErrRaggedTable,
		},
		{
			name:    "unknown type",
			block:   Block{Type: "video", Content: "x"},
			wantErr: ErrUnknownBlockType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDocumentValidate(t *testing.T) {
	doc := Document{Sections: []Block{
		{Type: BlockHeading, Content: "Why Choose Bangalore?"},
		{Type: BlockParagraph, Content: "World-class hospitals at a fraction of GCC prices."},
		{Type: BlockList}, // invalid
	}}

	if err := doc.Validate(); !errors.Is(err, ErrEmptyBlock) {
		t.Fatalf("Validate() error = %v, want ErrEmptyBlock", err)
	}
}

func TestFAQItemLocalize(t *testing.T) {
	item := FAQItem{
		QuestionEn: "How long is the recovery period?",
		AnswerEn:   "Most patients walk with support within 24 hours.",
		QuestionAr: "كم مدة التعافي؟",
		AnswerAr:   "يمكن لمعظم المرضى المشي بدعم في غضون 24 ساعة.",
	}

	if !item.Complete() {
		t.Fatal("Complete() = false for fully populated item")
	}

	en := item.Localize(locale.English)
	if en.Question != item.QuestionEn || en.Answer != item.AnswerEn {
		t.Errorf("Localize(en) = %+v", en)
	}

	ar := item.Localize(locale.Arabic)
	if ar.Question != item.QuestionAr || ar.Answer != item.AnswerAr {
		t.Errorf("Localize(ar) = %+v", ar)
	}

	item.AnswerAr = ""
	if item.Complete() {
		t.Error("Complete() = true with missing Arabic answer")
	}
}
