// Package nlp provides the word tokenizer used to read distances out of free text.
package nlp

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"freight-cost/internal/models"

	"github.com/jdkato/prose/v2"
)

// Tokenizer splits text into ordered tokens and marks the numeral-like ones.
type Tokenizer interface {
	Tokenize(text string) ([]models.Token, error)
}

// ProseTokenizer tokenizes with prose's English word tokenizer.
// Tagging, segmentation and entity extraction are disabled, so every call
// builds a fresh document and nothing is shared between calls. It is safe
// for concurrent use.
type ProseTokenizer struct{}

func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

func (p *ProseTokenizer) Tokenize(text string) ([]models.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("nlp.Tokenize: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]models.Token, 0, len(raw))
	for _, t := range raw {
		for _, text := range splitToken(t.Text) {
			tokens = append(tokens, models.Token{
				Text:     text,
				LikeNum:  LikeNum(text),
				Position: len(tokens),
			})
		}
	}
	return tokens, nil
}

// splitToken breaks a leading "~" off a token and splits hyphens that join a
// digit to a letter, so "~80" becomes "~" "80" and "1200-mile" becomes
// "1200" "-" "mile".
func splitToken(text string) []string {
	var parts []string
	if len(text) > 1 && text[0] == '~' {
		parts = append(parts, "~")
		text = text[1:]
	}

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '-' || i == 0 || i+1 >= len(text) {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		next, _ := utf8.DecodeRuneInString(text[i+1:])
		if unicode.IsDigit(prev) && unicode.IsLetter(next) {
			parts = append(parts, text[start:i], "-")
			start = i + 1
		}
	}
	return append(parts, text[start:])
}

var (
	defaultOnce      sync.Once
	defaultTokenizer *ProseTokenizer
)

// Default returns the process-wide tokenizer. It is created on first use and
// reused for the lifetime of the process; callers pass it on explicitly.
func Default() *ProseTokenizer {
	defaultOnce.Do(func() {
		defaultTokenizer = NewProseTokenizer()
	})
	return defaultTokenizer
}
