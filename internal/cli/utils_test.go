package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/session"
)

func sampleNodes() []session.NodeView {
	return []session.NodeView{
		{
			ID:       "n-root",
			NodeType: "Query",
			Children: []string{"n-doc"},
			Query:    "where does the trail start",
		},
		{
			ID:       "n-doc",
			NodeType: "Document",
			ParentID: "n-root",
			Document: &session.DocumentView{
				Metadata:    artifact.Metadata{Title: "First Stop", Type: artifact.DocTypeWiki},
				PageContent: "A short page about the first stop.",
			},
		},
	}
}

func TestWriteNodes_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNodes(&buf, sampleNodes(), OutputJSON); err != nil {
		t.Fatalf("WriteNodes(json): %v", err)
	}
	var decoded []session.NodeView
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[1].ID != "n-doc" {
		t.Errorf("decoded nodes: want two with id n-doc second, got %+v", decoded)
	}
	if decoded[1].Document == nil || decoded[1].Document.Metadata.Title != "First Stop" {
		t.Errorf("decoded document view lost metadata: %+v", decoded[1].Document)
	}
}

func TestWriteNodes_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNodes(&buf, sampleNodes(), OutputText); err != nil {
		t.Fatalf("WriteNodes(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"Tree contains 2 nodes", "[Query]", "[Document]", "n-root", "Parent: n-root", "First Stop", "where does the trail start"} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}
}

func TestWriteNodes_textMarksDeleted(t *testing.T) {
	nodes := sampleNodes()
	nodes[1].Deleted = true
	var buf bytes.Buffer
	if err := WriteNodes(&buf, nodes, OutputText); err != nil {
		t.Fatalf("WriteNodes(text): %v", err)
	}
	if !strings.Contains(buf.String(), "(deleted)") {
		t.Errorf("expected deleted marker in output:\n%s", buf.String())
	}
}

func TestWriteDocuments_text(t *testing.T) {
	docs := []session.DocumentView{
		{
			Metadata: artifact.Metadata{
				Title:    "Guide",
				Type:     artifact.DocTypeEssay,
				Source:   "https://example.com/guide",
				Keywords: "paths, walking",
			},
			PageContent: "Everything about walking paths.",
		},
	}
	var buf bytes.Buffer
	if err := WriteDocuments(&buf, docs, OutputText); err != nil {
		t.Fatalf("WriteDocuments(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"Found 1 documents", "Title: Guide", "Type: essay", "Source: https://example.com/guide", "Keywords: paths, walking", "Everything about walking paths."} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}
}

func TestWriteDocuments_JSON_empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocuments(&buf, nil, OutputJSON); err != nil {
		t.Fatalf("WriteDocuments(json): %v", err)
	}
	var decoded []session.DocumentView
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("empty document JSON decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected no documents, got %d", len(decoded))
	}
}

func TestWriteStats(t *testing.T) {
	stats := session.StatsView{
		RootID:         "n-root",
		EmbeddingModel: "gpt-3.5-turbo",
		Tokens:         12,
		DocumentNodes:  3,
		TotalNodes:     5,
		LiveDocuments:  2,
		LeafQueueDepth: 4,
	}

	var buf bytes.Buffer
	if err := WriteStats(&buf, stats, OutputText); err != nil {
		t.Fatalf("WriteStats(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"n-root", "gpt-3.5-turbo", "Tokens consumed:  12", "Leaf queue depth: 4"} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}

	buf.Reset()
	if err := WriteStats(&buf, stats, OutputJSON); err != nil {
		t.Fatalf("WriteStats(json): %v", err)
	}
	var decoded session.StatsView
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("stats JSON decode: %v", err)
	}
	if decoded.Tokens != 12 || decoded.LeafQueueDepth != 4 {
		t.Errorf("decoded stats mismatch: %+v", decoded)
	}
}

func TestWriteReplayResult_text(t *testing.T) {
	result := &session.ReplayResult{
		Steps:      2,
		NodesAdded: 5,
		Stats:      session.StatsView{RootID: "n-root", Tokens: 9},
	}
	var buf bytes.Buffer
	if err := WriteReplayResult(&buf, result, OutputText); err != nil {
		t.Fatalf("WriteReplayResult(text): %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Replayed 2 steps, 5 nodes added") {
		t.Errorf("missing replay summary:\n%s", out)
	}
	if !strings.Contains(out, "Tokens consumed:  9") {
		t.Errorf("missing stats after summary:\n%s", out)
	}
}

func TestWriteNodes_unknownFormatTreatedAsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNodes(&buf, sampleNodes(), OutputFormat("unknown")); err != nil {
		t.Fatalf("WriteNodes(unknown): %v", err)
	}
	if !strings.Contains(buf.String(), "Tree contains") {
		t.Errorf("unknown format should fall back to text; got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"empty", "", 5, ""},
		{"short", "hi", 5, "hi"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world", 5, "hello..."},
		{"maxLen zero", "ab", 0, "ab"},
		{"maxLen negative", "ab", -1, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.s, tt.maxLen)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxWords int
		want     string
	}{
		{"empty", "", 3, ""},
		{"few words", "one two", 3, "one two"},
		{"exact", "one two three", 3, "one two three"},
		{"more", "one two three four", 3, "one two three..."},
		{"single long", "word", 1, "word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWords(tt.s, tt.maxWords)
			if got != tt.want {
				t.Errorf("TruncateWords(%q, %d) = %q, want %q", tt.s, tt.maxWords, got, tt.want)
			}
		})
	}
}
