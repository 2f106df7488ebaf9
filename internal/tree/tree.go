package tree

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/tokenizer"
)

// Tree owns the exploration structure and its accounting: the running token
// total over all document content ever added, the count of document nodes
// ever added, and the leaf work queue. Both counters only grow; soft
// deletion changes document visibility, never historical accounting.
//
// A tree is single-writer. Callers that share one across goroutines must
// serialize every mutating call behind a single external lock so that
// child-list, queue and counter updates are observed as a unit.
type Tree struct {
	root       *Node
	leafNodes  *Queue
	tokens     int
	docNodeNum int
	model      string
	enc        tokenizer.Encoder
	logger     *zap.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithModel sets the embedding model identifier used to resolve the token
// encoder. Ignored when WithEncoder is also given.
func WithModel(model string) Option {
	return func(t *Tree) { t.model = model }
}

// WithEncoder injects a pre-resolved encoder, bypassing model resolution.
func WithEncoder(enc tokenizer.Encoder) Option {
	return func(t *Tree) { t.enc = enc }
}

// WithLogger sets a logger for debug output on accounting updates.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) { t.logger = logger }
}

// New creates a tree around root. The token encoder is resolved once, from
// the model identifier (default gpt-3.5-turbo), and held for the tree's
// lifetime; resolution failure fails construction.
func New(root *Node, opts ...Option) (*Tree, error) {
	if root == nil {
		return nil, errors.New("tree: root is nil")
	}
	if root.Parent() != nil {
		return nil, errors.New("tree: root must not have a parent")
	}
	t := &Tree{
		root:      root,
		leafNodes: NewQueue(),
		model:     tokenizer.DefaultModel,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.enc == nil {
		enc, err := tokenizer.ForModel(t.model)
		if err != nil {
			return nil, err
		}
		t.enc = enc
	}
	return t, nil
}

// AddNodes creates one child under parent per dataset item, in order, then
// updates the leaf queue and the accounting:
//
//   - If the dataset holds at least one document, parent's full current
//     child list (including children from earlier calls) is pushed to the
//     front of the leaf queue with its order preserved, the document count
//     grows by the number of documents added, and the token total grows by
//     the encoder's count over the added documents' page contents
//     concatenated in dataset order. Queries contribute no tokens.
//   - Otherwise (query-only or empty dataset), parent's full current child
//     list is pushed to the back of the leaf queue.
//
// Document-bearing expansions are thus seen first by a front-draining
// consumer, while query-only branches wait at the back.
func (t *Tree) AddNodes(parent *Node, dataset ...artifact.Data) {
	added := parent.AddChildren(dataset)

	var docs []*artifact.Document
	for _, d := range dataset {
		if doc, ok := d.(*artifact.Document); ok {
			docs = append(docs, doc)
		}
	}

	children := parent.Children()
	if len(docs) > 0 {
		t.leafNodes.PushFrontAll(children)
		t.docNodeNum += len(docs)

		var joined strings.Builder
		for _, doc := range docs {
			joined.WriteString(doc.PageContent)
		}
		t.tokens += tokenizer.Count(t.enc, joined.String())
	} else {
		t.leafNodes.PushBackAll(children)
	}

	if t.logger != nil {
		t.logger.Debug("nodes added",
			zap.String("parent_id", parent.ID()),
			zap.Int("added", len(added)),
			zap.Int("documents", len(docs)),
			zap.Int("total_tokens", t.tokens),
			zap.Int("doc_nodes", t.docNodeNum),
			zap.Int("leaf_queue", t.leafNodes.Len()),
		)
	}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Leaves returns the leaf work queue. Consumers pop from either end; the
// tree only pushes.
func (t *Tree) Leaves() *Queue { return t.leafNodes }

// Tokens returns the total tokens consumed by all document content ever
// added to the tree.
func (t *Tree) Tokens() int { return t.tokens }

// DocumentCount returns the number of document nodes ever added.
func (t *Tree) DocumentCount() int { return t.docNodeNum }

// Model returns the embedding model identifier the encoder was resolved
// for.
func (t *Tree) Model() string { return t.model }

// AllNodes returns every node in the tree in pre-order.
func (t *Tree) AllNodes() []*Node { return t.root.AllNodes() }

// AllDocuments returns the live document payloads in pre-order.
func (t *Tree) AllDocuments() []*artifact.Document { return t.root.AllDocuments() }
