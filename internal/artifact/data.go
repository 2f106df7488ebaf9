// Package artifact defines the payloads carried by exploration tree nodes:
// retrieved documents with metadata, and plain query strings.
package artifact

// Data is the payload of a tree node: either a *Document or a Query.
// The unexported marker method seals the union so that node-type
// derivation is exhaustive.
type Data interface {
	isArtifact()
}

// Query is a follow-up search request. Queries carry no metadata and never
// contribute to token accounting.
type Query string

func (Query) isArtifact() {}

// String returns the query text.
func (q Query) String() string { return string(q) }
