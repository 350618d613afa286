package server

import (
	"log"
	"net/http"

	"freight-cost/internal/format"
	"freight-cost/internal/quote"

	"github.com/gin-gonic/gin"
)

// quoteRequest carries exactly one of Miles or Query.
type quoteRequest struct {
	Miles *int    `json:"miles"`
	Query *string `json:"query"`
}

type display struct {
	Miles    string `json:"miles"`
	Diesel   string `json:"diesel"`
	Electric string `json:"electric"`
	Savings  string `json:"savings"`
}

func (s *Server) handleQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if (req.Miles == nil) == (req.Query == nil) {
		abortWithError(c, http.StatusBadRequest, "bad_request", "Send either miles or query.")
		return
	}

	var (
		q   *quote.Quote
		err error
	)
	if req.Miles != nil {
		q, err = s.quotes.FromMiles(*req.Miles)
	} else {
		q, err = s.quotes.FromText(*req.Query)
	}

	if err != nil {
		if quote.IsInputError(err) {
			abortWithError(c, http.StatusUnprocessableEntity, "invalid_distance", quote.UserMessage(err))
			return
		}
		log.Printf("server.handleQuote: %v", err)
		abortWithError(c, http.StatusInternalServerError, "internal", "Could not compute the quote.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"quote": q,
		"display": display{
			Miles:    format.Miles(q.Miles),
			Diesel:   format.Money(q.Comparison.DieselTotal),
			Electric: format.Money(q.Comparison.ElectricTotal),
			Savings:  format.Money(q.Comparison.Savings),
		},
	})
}
