package tokenizer

import "strings"

// WordEncoder is a deterministic whitespace tokenizer with hash-based token
// ids: one token per word. It needs no model data, which makes it the
// offline fallback and the fixed-count encoder used in tests.
type WordEncoder struct{}

// Encode splits text on whitespace and hashes each word to a token id.
func (WordEncoder) Encode(text string) []int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	ids := make([]int, len(words))
	for i, w := range words {
		ids[i] = HashString(w) % 30000
	}
	return ids
}

// HashString returns a deterministic non-negative hash for use as a simple
// token id.
func HashString(s string) int {
	h := 0
	for _, c := range s {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}
