package artifact

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuilder_Document_DerivesFirstNonEmptyField(t *testing.T) {
	b := NewBuilder([]string{"content", "summary", "title"}, 100)
	doc, err := b.Document(Metadata{Summary: "a short summary", Title: "the title"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageContent != "a short summary" {
		t.Errorf("page content = %q, want summary field", doc.PageContent)
	}
}

func TestBuilder_Document_DerivationOrder(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		meta Metadata
		want string
	}{
		{"content first", []string{"content", "summary"}, Metadata{Content: "c", Summary: "s"}, "c"},
		{"skips empty content", []string{"content", "summary"}, Metadata{Summary: "s"}, "s"},
		{"title only", []string{"content", "summary", "title"}, Metadata{Title: "t"}, "t"},
		{"custom order prefers title", []string{"title", "content"}, Metadata{Content: "c", Title: "t"}, "t"},
		{"unknown keys are skipped", []string{"nope", "summary"}, Metadata{Summary: "s"}, "s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(tt.keys, 100)
			doc, err := b.Document(tt.meta, "")
			if err != nil {
				t.Fatal(err)
			}
			if doc.PageContent != tt.want {
				t.Errorf("page content = %q, want %q", doc.PageContent, tt.want)
			}
		})
	}
}

func TestBuilder_Document_ExplicitContentWins(t *testing.T) {
	b := NewBuilder([]string{"content"}, 100)
	doc, err := b.Document(Metadata{Content: "from metadata"}, "explicit body")
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageContent != "explicit body" {
		t.Errorf("page content = %q, want explicit body to bypass derivation", doc.PageContent)
	}
}

func TestBuilder_Document_NoContentFails(t *testing.T) {
	b := NewBuilder([]string{"content", "summary", "title"}, 100)
	_, err := b.Document(Metadata{Source: "https://example.com", Keywords: "k1,k2"}, "")
	if err == nil {
		t.Fatal("expected error when no candidate field has content")
	}
	if !errors.Is(err, ErrEmptyPageContent) {
		t.Errorf("error = %v, want ErrEmptyPageContent", err)
	}
}

func TestBuilder_Document_Truncation(t *testing.T) {
	b := NewBuilder(nil, 10)
	long := strings.Repeat("x", 25)
	doc, err := b.Document(Metadata{Content: long}, "")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("x", 10) + Ellipsis
	if doc.PageContent != want {
		t.Errorf("page content = %q, want %q", doc.PageContent, want)
	}
	if got := utf8.RuneCountInString(doc.PageContent); got != 13 {
		t.Errorf("truncated length = %d runes, want max plus three-char ellipsis", got)
	}
}

func TestBuilder_Document_TruncationMultibyte(t *testing.T) {
	b := NewBuilder(nil, 4)
	doc, err := b.Document(Metadata{Content: "すもももももも"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageContent != "すももも"+Ellipsis {
		t.Errorf("page content = %q, want rune-boundary cut", doc.PageContent)
	}
}

func TestBuilder_Document_AtMaxUntouched(t *testing.T) {
	b := NewBuilder(nil, 10)
	exact := strings.Repeat("y", 10)
	doc, err := b.Document(Metadata{Content: exact}, "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageContent != exact {
		t.Errorf("page content = %q, want untouched content at the maximum", doc.PageContent)
	}
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder(nil, 0)
	if b.maxSize != DefaultMaxChunkSize {
		t.Errorf("maxSize = %d, want %d", b.maxSize, DefaultMaxChunkSize)
	}
	if len(b.keys) != len(DefaultPageContentKeys) {
		t.Errorf("keys = %v, want defaults", b.keys)
	}
}

func TestNewDocument_UsesDefaults(t *testing.T) {
	doc, err := NewDocument(Metadata{Title: "only title"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageContent != "only title" {
		t.Errorf("page content = %q, want title via default keys", doc.PageContent)
	}
}

func TestMetadata_Field(t *testing.T) {
	m := Metadata{
		Content:  "c",
		Summary:  "s",
		Title:    "t",
		Type:     DocTypeWiki,
		Keywords: "k",
		Source:   "src",
		Query:    "q",
	}
	tests := []struct {
		key  string
		want string
	}{
		{"content", "c"},
		{"summary", "s"},
		{"title", "t"},
		{"type", "wiki"},
		{"keywords", "k"},
		{"source", "src"},
		{"query", "q"},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := m.Field(tt.key); got != tt.want {
			t.Errorf("Field(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDocType_Valid(t *testing.T) {
	for _, dt := range []DocType{DocTypeWebPage, DocTypeEssay, DocTypeWiki} {
		if !dt.Valid() {
			t.Errorf("%s should be valid", dt)
		}
	}
	if DocType("pdf").Valid() {
		t.Error("unknown type should not be valid")
	}
}

func TestQuery_String(t *testing.T) {
	if Query("find more").String() != "find more" {
		t.Error("query text round-trip failed")
	}
}
