// Package cli provides CLI output helpers for Tadoru.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/tadoru/internal/session"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const previewLen = 200

// WriteNodes writes node views to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteNodes(w io.Writer, nodes []session.NodeView, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, nodes)
	}
	fmt.Fprintf(w, "\nTree contains %d nodes\n\n", len(nodes))
	for _, n := range nodes {
		writeOneNode(w, n)
	}
	return nil
}

func writeOneNode(w io.Writer, n session.NodeView) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	marker := ""
	if n.Deleted {
		marker = " (deleted)"
	}
	fmt.Fprintf(w, "[%s]%s %s\n", n.NodeType, marker, n.ID)
	if n.ParentID != "" {
		fmt.Fprintf(w, "Parent: %s\n", n.ParentID)
	}
	if len(n.Children) > 0 {
		fmt.Fprintf(w, "Children: %d\n", len(n.Children))
	}
	if n.Query != "" {
		fmt.Fprintf(w, "\n%s\n", TruncateWords(n.Query, 30))
	}
	if n.Document != nil {
		if n.Document.Metadata.Title != "" {
			fmt.Fprintf(w, "Title: %s\n", n.Document.Metadata.Title)
		}
		fmt.Fprintf(w, "\n%s\n", Truncate(n.Document.PageContent, previewLen))
	}
	fmt.Fprintln(w)
}

// WriteDocuments writes document views to w in the given format.
func WriteDocuments(w io.Writer, docs []session.DocumentView, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, docs)
	}
	fmt.Fprintf(w, "\nFound %d documents\n\n", len(docs))
	for _, d := range docs {
		writeOneDocument(w, d)
	}
	return nil
}

func writeOneDocument(w io.Writer, d session.DocumentView) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	if d.Metadata.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", d.Metadata.Title)
	}
	if d.Metadata.Type != "" {
		fmt.Fprintf(w, "Type: %s\n", d.Metadata.Type)
	}
	if d.Metadata.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", d.Metadata.Source)
	}
	if d.Metadata.Keywords != "" {
		fmt.Fprintf(w, "Keywords: %s\n", d.Metadata.Keywords)
	}
	fmt.Fprintf(w, "\n%s\n", Truncate(d.PageContent, previewLen))
	fmt.Fprintln(w)
}

// WriteStats writes a stats snapshot to w in the given format.
func WriteStats(w io.Writer, stats session.StatsView, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, stats)
	}
	fmt.Fprintf(w, "\nRoot:             %s\n", stats.RootID)
	fmt.Fprintf(w, "Embedding model:  %s\n", stats.EmbeddingModel)
	fmt.Fprintf(w, "Tokens consumed:  %d\n", stats.Tokens)
	fmt.Fprintf(w, "Document nodes:   %d\n", stats.DocumentNodes)
	fmt.Fprintf(w, "Total nodes:      %d\n", stats.TotalNodes)
	fmt.Fprintf(w, "Live documents:   %d\n", stats.LiveDocuments)
	fmt.Fprintf(w, "Leaf queue depth: %d\n", stats.LeafQueueDepth)
	return nil
}

// WriteReplayResult writes a replay summary to w in the given format.
func WriteReplayResult(w io.Writer, result *session.ReplayResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	fmt.Fprintf(w, "\nReplayed %d steps, %d nodes added\n", result.Steps, result.NodesAdded)
	return WriteStats(w, result.Stats, OutputText)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
