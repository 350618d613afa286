// Package extractor reads a trip distance in miles out of a free-text query.
package extractor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"freight-cost/internal/models"
	"freight-cost/internal/nlp"
)

// Strategy looks for a distance in a token sequence.
type Strategy func(tokens []models.Token) (miles int, ok bool)

// DefaultStrategies is the order in which strategies are tried.
var DefaultStrategies = []Strategy{UnitContext, FirstNumeral}

// Extractor runs the strategies in order over the tokens of a query.
type Extractor struct {
	tokenizer  nlp.Tokenizer
	strategies []Strategy
}

// New creates an Extractor. With no strategies given, DefaultStrategies is used.
func New(tokenizer nlp.Tokenizer, strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}
	return &Extractor{tokenizer: tokenizer, strategies: strategies}
}

// ExtractDistanceMiles returns the first distance any strategy finds in text.
// found is false when no strategy matched; err is only set when the tokenizer fails.
func (e *Extractor) ExtractDistanceMiles(text string) (miles int, found bool, err error) {
	tokens, err := e.tokenizer.Tokenize(Normalize(text))
	if err != nil {
		return 0, false, fmt.Errorf("extractor.ExtractDistanceMiles: %w", err)
	}
	for _, strategy := range e.strategies {
		if miles, ok := strategy(tokens); ok {
			return miles, true, nil
		}
	}
	return 0, false, nil
}

// Normalize strips thousands separators and lower-cases text.
func Normalize(text string) string {
	return strings.ToLower(strings.ReplaceAll(text, ",", ""))
}

// UnitContext returns the number directly before the first "mile" or "miles"
// token that has a parseable numeral in front of it.
func UnitContext(tokens []models.Token) (int, bool) {
	for i, tok := range tokens {
		if i == 0 || (tok.Text != "mile" && tok.Text != "miles") {
			continue
		}
		prev := tokens[i-1]
		if !prev.LikeNum {
			continue
		}
		if miles, ok := ParseMiles(prev.Text); ok {
			return miles, true
		}
	}
	return 0, false
}

// FirstNumeral returns the first numeral-like token that parses.
func FirstNumeral(tokens []models.Token) (int, bool) {
	for _, tok := range tokens {
		if !tok.LikeNum {
			continue
		}
		if miles, ok := ParseMiles(tok.Text); ok {
			return miles, true
		}
	}
	return 0, false
}

// ParseMiles parses a numeral and truncates it toward zero. Text that does not
// parse, or parses to a negative, non-finite or out of range value, is rejected.
func ParseMiles(text string) (int, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < 0 || v >= float64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}
