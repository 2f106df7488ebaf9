package artifact

import (
	"errors"
	"fmt"
)

// DocType tags the origin of a retrieved document.
type DocType string

const (
	DocTypeWebPage DocType = "web_page"
	DocTypeEssay   DocType = "essay"
	DocTypeWiki    DocType = "wiki"
)

// Valid reports whether t is one of the known document types.
func (t DocType) Valid() bool {
	switch t {
	case DocTypeWebPage, DocTypeEssay, DocTypeWiki:
		return true
	}
	return false
}

// Metadata holds the descriptive fields of a retrieved document.
type Metadata struct {
	Content  string  `json:"content,omitempty" yaml:"content,omitempty"`
	Summary  string  `json:"summary,omitempty" yaml:"summary,omitempty"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	Type     DocType `json:"type,omitempty" yaml:"type,omitempty"`
	Keywords string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Source   string  `json:"source,omitempty" yaml:"source,omitempty"`
	Query    string  `json:"query,omitempty" yaml:"query,omitempty"`
}

// Field returns the metadata value for a derivation key such as "content"
// or "summary". Unknown keys return "".
func (m Metadata) Field(key string) string {
	switch key {
	case "content":
		return m.Content
	case "summary":
		return m.Summary
	case "title":
		return m.Title
	case "type":
		return string(m.Type)
	case "keywords":
		return m.Keywords
	case "source":
		return m.Source
	case "query":
		return m.Query
	}
	return ""
}

// Document is a retrieved document: its metadata plus the derived page
// content used for token accounting and downstream consumption.
type Document struct {
	Metadata    Metadata `json:"metadata"`
	PageContent string   `json:"page_content"`
}

func (*Document) isArtifact() {}

// ErrEmptyPageContent is returned when no page content can be derived from
// a document's metadata and none was supplied explicitly.
var ErrEmptyPageContent = errors.New("page content is empty")

// Ellipsis is appended to page content truncated at the configured maximum.
const Ellipsis = "..."

// DefaultMaxChunkSize is the default page-content length cap in characters.
const DefaultMaxChunkSize = 4000

// DefaultPageContentKeys is the default derivation order: the first
// non-empty of these metadata fields becomes the page content.
var DefaultPageContentKeys = []string{"content", "summary", "title"}

// Builder constructs Documents using configured derivation settings.
type Builder struct {
	keys    []string
	maxSize int
}

// NewBuilder returns a builder using the given candidate keys in priority
// order and the maximum page-content length in characters. Empty keys or a
// non-positive size fall back to the package defaults.
func NewBuilder(keys []string, maxSize int) *Builder {
	if len(keys) == 0 {
		keys = DefaultPageContentKeys
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}
	return &Builder{
		keys:    append([]string(nil), keys...),
		maxSize: maxSize,
	}
}

// Document builds a document from meta. A non-empty pageContent argument
// overrides derivation; otherwise the first non-empty candidate field is
// used. Content longer than the configured maximum is cut at that length,
// regardless of word boundaries, and Ellipsis is appended. Returns
// ErrEmptyPageContent when nothing yields content.
func (b *Builder) Document(meta Metadata, pageContent string) (*Document, error) {
	content := pageContent
	if content == "" {
		for _, key := range b.keys {
			if v := meta.Field(key); v != "" {
				content = v
				break
			}
		}
	}
	if content == "" {
		return nil, fmt.Errorf("build document: %w", ErrEmptyPageContent)
	}
	// Length is measured in runes: page content is web text.
	if r := []rune(content); len(r) > b.maxSize {
		content = string(r[:b.maxSize]) + Ellipsis
	}
	return &Document{Metadata: meta, PageContent: content}, nil
}

var defaultBuilder = NewBuilder(nil, 0)

// NewDocument builds a document with the package default derivation settings.
func NewDocument(meta Metadata, pageContent string) (*Document, error) {
	return defaultBuilder.Document(meta, pageContent)
}
