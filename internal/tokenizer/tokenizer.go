// Package tokenizer resolves embedding model identifiers to token encoders
// used for token-budget accounting.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultModel is the embedding model assumed when none is configured.
const DefaultModel = "gpt-3.5-turbo"

// Encoder converts text into model token ids. Implementations must be
// deterministic: the same text always yields the same ids. Token counts are
// taken as len(Encode(text)).
type Encoder interface {
	Encode(text string) []int
}

// Count returns the number of tokens enc produces for text.
func Count(enc Encoder, text string) int {
	return len(enc.Encode(text))
}

type bpeEncoder struct {
	tk *tiktoken.Tiktoken
}

func (e *bpeEncoder) Encode(text string) []int {
	return e.tk.Encode(text, nil, nil)
}

// ForModel resolves the BPE encoder registered for a model identifier, e.g.
// "gpt-3.5-turbo" resolves to the cl100k_base encoding. Unknown models
// return an error; callers that need an offline fallback use WordEncoder.
func ForModel(model string) (Encoder, error) {
	tk, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("resolve encoder for model %q: %w", model, err)
	}
	return &bpeEncoder{tk: tk}, nil
}
