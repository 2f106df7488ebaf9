// Package tree implements the exploration tree: nodes carrying document or
// query payloads, the double-ended leaf work queue, and token-budget
// accounting over an injected encoder.
package tree

import (
	"github.com/google/uuid"
	"github.com/hyperjump/tadoru/internal/artifact"
)

// NodeType identifies the payload kind of a node.
type NodeType string

const (
	NodeTypeDocument NodeType = "Document"
	NodeTypeQuery    NodeType = "Query"
)

// Node is one element of the exploration tree. It holds exactly one payload
// (a document or a query), a back-reference to the parent it was created
// under, and its children in insertion order. Nodes are never re-parented
// and never removed from a parent's child list; deletion is a soft flag
// that only affects document collection, not structural traversal.
type Node struct {
	id       string
	data     artifact.Data
	parent   *Node
	children []*Node
	deleted  bool
}

// NewRoot creates a parentless node for use as a tree root.
func NewRoot(data artifact.Data) *Node {
	return &Node{id: uuid.New().String(), data: data}
}

// ID returns the node's generated identifier.
func (n *Node) ID() string { return n.id }

// Data returns the node's payload.
func (n *Node) Data() artifact.Data { return n.data }

// Parent returns the node this node was created under, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Deleted reports whether the node has been soft-deleted.
func (n *Node) Deleted() bool { return n.deleted }

// Type derives the node type from the payload.
func (n *Node) Type() NodeType {
	if _, ok := n.data.(*artifact.Document); ok {
		return NodeTypeDocument
	}
	return NodeTypeQuery
}

// Document returns the document payload, or nil for query nodes.
func (n *Node) Document() *artifact.Document {
	if doc, ok := n.data.(*artifact.Document); ok {
		return doc
	}
	return nil
}

// AddChildren creates one child per dataset item, in order, attached under
// n, and returns the new nodes. An empty dataset is a no-op.
func (n *Node) AddChildren(dataset []artifact.Data) []*Node {
	if len(dataset) == 0 {
		return nil
	}
	added := make([]*Node, 0, len(dataset))
	for _, d := range dataset {
		child := &Node{id: uuid.New().String(), data: d, parent: n}
		n.children = append(n.children, child)
		added = append(added, child)
	}
	return added
}

// AllNodes returns the subtree rooted at n in pre-order: n first, then each
// child's subtree in insertion order. Soft-deleted nodes are included.
func (n *Node) AllNodes() []*Node {
	nodes := make([]*Node, 0, 1+len(n.children))
	return n.appendSubtree(nodes)
}

func (n *Node) appendSubtree(nodes []*Node) []*Node {
	nodes = append(nodes, n)
	for _, c := range n.children {
		nodes = c.appendSubtree(nodes)
	}
	return nodes
}

// AllDocuments returns the payloads of all live (not soft-deleted) document
// nodes in the subtree, in AllNodes order.
func (n *Node) AllDocuments() []*artifact.Document {
	var docs []*artifact.Document
	for _, node := range n.AllNodes() {
		if node.deleted {
			continue
		}
		if doc := node.Document(); doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Delete soft-deletes this node only; descendants are unaffected and the
// node stays in the structure. Idempotent.
func (n *Node) Delete() {
	n.deleted = true
}
