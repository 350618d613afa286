// Package quote turns a mile count or a free-text question into a diesel vs.
// electric cost quote.
package quote

import (
	"errors"
	"fmt"

	"freight-cost/internal/calculator"
	"freight-cost/internal/format"
	"freight-cost/internal/models"
)

var (
	// ErrDistanceNotFound means no distance could be read from the query.
	ErrDistanceNotFound = errors.New("no distance found in query")
	// ErrInvalidDistance means the distance was zero or negative.
	ErrInvalidDistance = errors.New("distance must be greater than zero")
)

// InvalidDistanceMessage is shown for both ErrDistanceNotFound and ErrInvalidDistance.
const InvalidDistanceMessage = "Please enter a number of miles greater than zero."

// DistanceExtractor reads a mile count out of free text.
type DistanceExtractor interface {
	ExtractDistanceMiles(text string) (miles int, found bool, err error)
}

type Quote struct {
	Query      string                `json:"query,omitempty" yaml:"query,omitempty"`
	Miles      int                   `json:"miles" yaml:"miles"`
	Comparison models.CostComparison `json:"comparison" yaml:"comparison"`
	Summary    string                `json:"summary" yaml:"summary"`
}

type Service struct {
	extractor DistanceExtractor
}

func NewService(extractor DistanceExtractor) *Service {
	return &Service{extractor: extractor}
}

// FromMiles quotes a trip of the given length.
func (s *Service) FromMiles(miles int) (*Quote, error) {
	if miles <= 0 {
		return nil, ErrInvalidDistance
	}
	c := calculator.ComputeCostComparison(miles)
	return &Quote{
		Miles:      miles,
		Comparison: c,
		Summary:    Summary(c),
	}, nil
}

// FromText reads the distance out of text and quotes it. Tokenizer failures
// are returned as is; they are not input errors.
func (s *Service) FromText(text string) (*Quote, error) {
	miles, found, err := s.extractor.ExtractDistanceMiles(text)
	if err != nil {
		return nil, fmt.Errorf("quote.FromText: %w", err)
	}
	if !found {
		return nil, ErrDistanceNotFound
	}
	q, err := s.FromMiles(miles)
	if err != nil {
		return nil, err
	}
	q.Query = text
	return q, nil
}

// QuoteRow quotes one batch row. Problems are recorded on the row instead of
// being returned.
func (s *Service) QuoteRow(row models.TripRow) models.ResultRow {
	res := models.ResultRow{Row: row.Row, Query: row.Query}
	q, err := s.FromText(row.Query)
	if err != nil {
		res.Error = UserMessage(err)
		return res
	}
	res.Miles = q.Miles
	res.DieselTotal = q.Comparison.DieselTotal
	res.ElectricTotal = q.Comparison.ElectricTotal
	res.Savings = q.Comparison.Savings
	return res
}

// IsInputError reports whether err comes from the user's input rather than
// from the service itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrDistanceNotFound) || errors.Is(err, ErrInvalidDistance)
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	if IsInputError(err) {
		return InvalidDistanceMessage
	}
	return err.Error()
}

// Summary is the one-line savings message for a comparison.
func Summary(c models.CostComparison) string {
	return fmt.Sprintf("You could save approximately %s on this trip!", format.Money(c.Savings))
}
