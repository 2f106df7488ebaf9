// Package session wraps a single-writer exploration tree behind one mutex
// so HTTP handlers and CLI commands can share it. All reads and writes go
// through the session; the tree itself stays lock-free.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/metrics"
	"github.com/hyperjump/tadoru/internal/tree"
)

var (
	// ErrNodeNotFound is returned when an id does not resolve to a node.
	ErrNodeNotFound = errors.New("node not found")
	// ErrQueueEmpty is returned when popping from an empty leaf queue.
	ErrQueueEmpty = errors.New("leaf queue is empty")
)

// Item kinds accepted by Expand.
const (
	ItemDocument = "document"
	ItemQuery    = "query"
)

// Ends accepted by PopLeaf.
const (
	EndFront = "front"
	EndBack  = "back"
)

// ExpandItem describes one payload to attach during an expansion. Type is
// "document" (built from Metadata and PageContent) or "query" (built from
// Text).
type ExpandItem struct {
	Type        string            `json:"type"`
	Metadata    artifact.Metadata `json:"metadata,omitempty"`
	PageContent string            `json:"page_content,omitempty"`
	Text        string            `json:"text,omitempty"`
}

// Session owns a tree, a document builder, and an id index over every node
// ever created. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	tree    *tree.Tree
	builder *artifact.Builder
	nodes   map[string]*tree.Node
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithMetrics attaches a metrics instance updated on every mutation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithBuilder sets the document builder used for "document" expand items.
func WithBuilder(b *artifact.Builder) Option {
	return func(s *Session) { s.builder = b }
}

// New creates a session around tr and indexes its existing nodes.
func New(tr *tree.Tree, opts ...Option) *Session {
	s := &Session{
		tree:    tr,
		builder: artifact.NewBuilder(nil, 0),
		nodes:   make(map[string]*tree.Node),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, n := range tr.AllNodes() {
		s.nodes[n.ID()] = n
	}
	s.syncGauges()
	return s
}

// Expand builds one payload per item and attaches them under the node with
// parentID (the root when parentID is empty). Any build error aborts the
// whole call before the tree changes. Returns views of the new nodes in
// dataset order.
func (s *Session) Expand(parentID string, items []ExpandItem) ([]NodeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, err := s.resolve(parentID)
	if err != nil {
		return nil, err
	}
	return s.expandLocked(parent, items)
}

func (s *Session) expandLocked(parent *tree.Node, items []ExpandItem) ([]NodeView, error) {
	dataset := make([]artifact.Data, 0, len(items))
	documents := 0
	for i, item := range items {
		switch strings.ToLower(item.Type) {
		case ItemDocument:
			doc, err := s.builder.Document(item.Metadata, item.PageContent)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			dataset = append(dataset, doc)
			documents++
		case ItemQuery:
			dataset = append(dataset, artifact.Query(item.Text))
		default:
			return nil, fmt.Errorf("item %d: unknown type %q", i, item.Type)
		}
	}

	before := len(parent.Children())
	tokensBefore := s.tree.Tokens()
	s.tree.AddNodes(parent, dataset...)

	added := parent.Children()[before:]
	views := make([]NodeView, 0, len(added))
	for _, n := range added {
		s.nodes[n.ID()] = n
		views = append(views, nodeView(n))
	}

	if s.metrics != nil {
		s.metrics.RecordExpansion(documents, len(added)-documents, s.tree.Tokens()-tokensBefore)
	}
	s.syncGauges()
	s.logger.Debug("expanded node",
		zap.String("parent_id", parent.ID()),
		zap.Int("added", len(added)),
		zap.Int("documents", documents),
	)
	return views, nil
}

// Node returns the view of a single node.
func (s *Session) Node(id string) (NodeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(id)
	if err != nil {
		return NodeView{}, err
	}
	return nodeView(n), nil
}

// Nodes returns views of every node in the tree, in pre-order.
func (s *Session) Nodes() []NodeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.tree.AllNodes()
	views := make([]NodeView, 0, len(all))
	for _, n := range all {
		views = append(views, nodeView(n))
	}
	return views
}

// Documents returns views of the live documents, in pre-order.
func (s *Session) Documents() []DocumentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.tree.AllDocuments()
	views := make([]DocumentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, documentView(d))
	}
	return views
}

// Leaves returns a front-to-back snapshot of the leaf queue.
func (s *Session) Leaves() []NodeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.tree.Leaves().Nodes()
	views := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, nodeView(n))
	}
	return views
}

// PopLeaf removes and returns a node from the given end of the leaf queue.
func (s *Session) PopLeaf(end string) (NodeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.popLocked(end)
	if err != nil {
		return NodeView{}, err
	}
	return nodeView(n), nil
}

func (s *Session) popLocked(end string) (*tree.Node, error) {
	var (
		n  *tree.Node
		ok bool
	)
	switch end {
	case EndFront, "":
		n, ok = s.tree.Leaves().PopFront()
	case EndBack:
		n, ok = s.tree.Leaves().PopBack()
	default:
		return nil, fmt.Errorf("unknown queue end %q", end)
	}
	if !ok {
		return nil, ErrQueueEmpty
	}
	if s.metrics != nil {
		if end == "" {
			end = EndFront
		}
		s.metrics.RecordLeafPop(end)
	}
	s.syncGauges()
	return n, nil
}

// DeleteNode soft-deletes the node with id. Deleting an already deleted
// node succeeds.
func (s *Session) DeleteNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(id)
	if err != nil {
		return err
	}
	n.Delete()
	if s.metrics != nil {
		s.metrics.RecordDelete()
	}
	s.syncGauges()
	s.logger.Debug("deleted node", zap.String("id", id))
	return nil
}

// Stats returns the session's accounting snapshot.
func (s *Session) Stats() StatsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) statsLocked() StatsView {
	return StatsView{
		RootID:         s.tree.Root().ID(),
		EmbeddingModel: s.tree.Model(),
		Tokens:         s.tree.Tokens(),
		DocumentNodes:  s.tree.DocumentCount(),
		TotalNodes:     len(s.tree.AllNodes()),
		LiveDocuments:  len(s.tree.AllDocuments()),
		LeafQueueDepth: s.tree.Leaves().Len(),
	}
}

// Root returns the root node's view.
func (s *Session) Root() NodeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nodeView(s.tree.Root())
}

// SetContentRules swaps the document builder, changing how page content is
// derived and truncated for subsequent expansions. Existing documents are
// untouched.
func (s *Session) SetContentRules(keys []string, maxChunkSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.builder = artifact.NewBuilder(keys, maxChunkSize)
	s.logger.Info("content rules updated",
		zap.Strings("page_content_keys", keys),
		zap.Int("max_chunk_size", maxChunkSize),
	)
}

func (s *Session) resolve(id string) (*tree.Node, error) {
	if id == "" {
		return s.tree.Root(), nil
	}
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n, nil
}

func (s *Session) syncGauges() {
	if s.metrics == nil {
		return
	}
	s.metrics.UpdateTreeStats(
		len(s.tree.AllNodes()),
		len(s.tree.AllDocuments()),
		s.tree.Leaves().Len(),
	)
}
