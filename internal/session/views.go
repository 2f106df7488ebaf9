package session

import (
	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/tree"
)

// NodeView is the external representation of a tree node.
type NodeView struct {
	ID       string        `json:"id"`
	NodeType string        `json:"node_type"`
	ParentID string        `json:"parent_id,omitempty"`
	Children []string      `json:"children,omitempty"`
	Deleted  bool          `json:"deleted,omitempty"`
	Query    string        `json:"query,omitempty"`
	Document *DocumentView `json:"document,omitempty"`
}

// DocumentView is the external representation of a document payload.
type DocumentView struct {
	Metadata    artifact.Metadata `json:"metadata"`
	PageContent string            `json:"page_content"`
}

// StatsView summarizes the session's tree accounting.
type StatsView struct {
	RootID         string `json:"root_id"`
	EmbeddingModel string `json:"embedding_model"`
	Tokens         int    `json:"tokens"`
	DocumentNodes  int    `json:"document_nodes"`
	TotalNodes     int    `json:"total_nodes"`
	LiveDocuments  int    `json:"live_documents"`
	LeafQueueDepth int    `json:"leaf_queue_depth"`
}

func nodeView(n *tree.Node) NodeView {
	v := NodeView{
		ID:       n.ID(),
		NodeType: string(n.Type()),
		Deleted:  n.Deleted(),
	}
	if p := n.Parent(); p != nil {
		v.ParentID = p.ID()
	}
	for _, c := range n.Children() {
		v.Children = append(v.Children, c.ID())
	}
	switch data := n.Data().(type) {
	case *artifact.Document:
		v.Document = &DocumentView{Metadata: data.Metadata, PageContent: data.PageContent}
	case artifact.Query:
		v.Query = string(data)
	}
	return v
}

func documentView(d *artifact.Document) DocumentView {
	return DocumentView{Metadata: d.Metadata, PageContent: d.PageContent}
}
