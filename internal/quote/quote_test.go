package quote

import (
	"errors"
	"testing"

	"freight-cost/internal/extractor"
	"freight-cost/internal/models"
	"freight-cost/internal/nlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	miles int
	found bool
	err   error
}

func (s stubExtractor) ExtractDistanceMiles(string) (int, bool, error) {
	return s.miles, s.found, s.err
}

func TestService_FromMiles(t *testing.T) {
	q, err := NewService(stubExtractor{}).FromMiles(1200)
	require.NoError(t, err)
	assert.Equal(t, 1200, q.Miles)
	assert.InDelta(t, 696.0, q.Comparison.DieselTotal, 1e-9)
	assert.InDelta(t, 228.0, q.Comparison.ElectricTotal, 1e-9)
	assert.InDelta(t, 468.0, q.Comparison.Savings, 1e-9)
	assert.Equal(t, "You could save approximately $468.00 on this trip!", q.Summary)
	assert.Empty(t, q.Query)
}

func TestService_FromMiles_Invalid(t *testing.T) {
	for _, miles := range []int{0, -50} {
		_, err := NewService(stubExtractor{}).FromMiles(miles)
		assert.ErrorIs(t, err, ErrInvalidDistance)
	}
}

func TestService_FromText(t *testing.T) {
	svc := NewService(extractor.New(nlp.Default()))

	q, err := svc.FromText("How much for a 1,200 mile trip?")
	require.NoError(t, err)
	assert.Equal(t, 1200, q.Miles)
	assert.Equal(t, "How much for a 1,200 mile trip?", q.Query)

	_, err = svc.FromText("Hello there")
	assert.ErrorIs(t, err, ErrDistanceNotFound)

	_, err = svc.FromText("0 miles")
	assert.ErrorIs(t, err, ErrInvalidDistance)
}

func TestService_FromText_ExtractorFailure(t *testing.T) {
	boom := errors.New("tokenizer down")
	_, err := NewService(stubExtractor{err: boom}).FromText("500 miles")
	require.ErrorIs(t, err, boom)
	assert.False(t, IsInputError(err))
	assert.Contains(t, UserMessage(err), "tokenizer down")
}

func TestService_QuoteRow(t *testing.T) {
	svc := NewService(stubExtractor{miles: 100, found: true})
	row := svc.QuoteRow(models.TripRow{Row: 2, Query: "100 miles"})
	assert.Equal(t, 2, row.Row)
	assert.Equal(t, "100 miles", row.Query)
	assert.Equal(t, 100, row.Miles)
	assert.InDelta(t, 39.0, row.Savings, 1e-9)
	assert.Empty(t, row.Error)

	row = NewService(stubExtractor{}).QuoteRow(models.TripRow{Row: 3, Query: "soon"})
	assert.Equal(t, InvalidDistanceMessage, row.Error)
	assert.Zero(t, row.Miles)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, InvalidDistanceMessage, UserMessage(ErrDistanceNotFound))
	assert.Equal(t, InvalidDistanceMessage, UserMessage(ErrInvalidDistance))
}
