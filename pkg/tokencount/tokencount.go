// Package tokencount estimates how many LLM tokens a generated document
// occupies, using the OpenAI tiktoken encodings.
package tokencount

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultModel is the model whose encoding is used when none is specified.
const DefaultModel = "gpt-4o"

// Count returns the number of tokens in text under the encoding of the
// given model. An empty model name selects DefaultModel.
func Count(text, model string) (int, error) {
	if model == "" {
		model = DefaultModel
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("failed to load encoding for model %q: %w", model, err)
	}

	return len(encoding.EncodeOrdinary(text)), nil
}
