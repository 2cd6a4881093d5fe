package llm

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

var (
	encodingsMu sync.Mutex
	encodings   = map[string]*tiktoken.Tiktoken{}
)

// encodingFor returns the tokenizer for a model, or nil when none can be loaded.
// Lookups are cached, failures included.
func encodingFor(model string) *tiktoken.Tiktoken {
	model = strings.ToLower(model)

	encodingsMu.Lock()
	defer encodingsMu.Unlock()

	if enc, ok := encodings[model]; ok {
		return enc
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			enc = nil
		}
	}
	encodings[model] = enc
	return enc
}

// CountTokens counts the tokens of text for a model. When no tokenizer is
// available it estimates 4 characters per token.
func CountTokens(model, text string) int {
	if text == "" {
		return 0
	}
	if enc := encodingFor(model); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return EstimateTokens(text)
}

// EstimateTokens estimates token count (rough: 4 chars per token)
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text) / 4
	if n == 0 && text != "" {
		return 1
	}
	return n
}
