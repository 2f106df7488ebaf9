package benchmark

import (
	"fmt"
	"testing"

	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/tokenizer"
	"github.com/hyperjump/tadoru/internal/tree"
)

func benchDocuments(n int) []artifact.Data {
	dataset := make([]artifact.Data, n)
	for i := 0; i < n; i++ {
		dataset[i] = &artifact.Document{
			Metadata:    artifact.Metadata{Title: fmt.Sprintf("doc %d", i), Type: artifact.DocTypeWiki},
			PageContent: fmt.Sprintf("page content body number %d with a handful of words", i),
		}
	}
	return dataset
}

func BenchmarkAddNodes(b *testing.B) {
	dataset := benchDocuments(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, _ := tree.New(tree.NewRoot(artifact.Query("bench")), tree.WithEncoder(tokenizer.WordEncoder{}))
		tr.AddNodes(tr.Root(), dataset...)
	}
}

func BenchmarkAllNodes(b *testing.B) {
	tr, _ := tree.New(tree.NewRoot(artifact.Query("bench")), tree.WithEncoder(tokenizer.WordEncoder{}))
	dataset := benchDocuments(16)
	tr.AddNodes(tr.Root(), dataset...)
	for _, child := range tr.Root().Children() {
		tr.AddNodes(child, benchDocuments(16)...)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.AllNodes()
	}
}

func BenchmarkQueuePushPop(b *testing.B) {
	q := tree.NewQueue()
	nodes := make([]*tree.Node, 64)
	for i := range nodes {
		nodes[i] = tree.NewRoot(artifact.Query(fmt.Sprintf("q%d", i)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.PushFrontAll(nodes)
		for {
			if _, ok := q.PopBack(); !ok {
				break
			}
		}
	}
}

func BenchmarkWordEncoder_Encode(b *testing.B) {
	enc := tokenizer.WordEncoder{}
	text := "benchmark text with enough words to resemble a retrieved snippet of page content"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Encode(text)
	}
}

func BenchmarkCachedEncoder_Encode(b *testing.B) {
	enc := tokenizer.NewCachedEncoder(tokenizer.WordEncoder{}, 128)
	text := "benchmark text with enough words to resemble a retrieved snippet of page content"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Encode(text)
	}
}
