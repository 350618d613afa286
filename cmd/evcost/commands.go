package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"freight-cost/internal/batch"
	"freight-cost/internal/config"
	"freight-cost/internal/extractor"
	"freight-cost/internal/format"
	"freight-cost/internal/nlp"
	"freight-cost/internal/quote"
	"freight-cost/internal/server"

	"gopkg.in/yaml.v3"
)

func newQuoteService() *quote.Service {
	return quote.NewService(extractor.New(nlp.Default()))
}

// QuoteCmd prints the cost comparison for one trip.
type QuoteCmd struct {
	Miles  int    `short:"m" long:"miles" description:"trip distance in miles"`
	Query  string `short:"q" long:"query" description:"free-text question, e.g. \"How much for a 1,200 mile trip?\""`
	Output string `short:"o" long:"output" choice:"text" choice:"json" choice:"yaml" default:"text" description:"output format"`

	out io.Writer
}

func (c *QuoteCmd) Execute(_ []string) error {
	if c.Query != "" && c.Miles != 0 {
		return errors.New("use either --miles or --query, not both")
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	svc := newQuoteService()
	var (
		q   *quote.Quote
		err error
	)
	if c.Query != "" {
		q, err = svc.FromText(c.Query)
	} else {
		q, err = svc.FromMiles(c.Miles)
	}
	if err != nil {
		return errors.New(quote.UserMessage(err))
	}
	return writeQuote(c.out, q, c.Output)
}

func writeQuote(w io.Writer, q *quote.Quote, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(q); err != nil {
			return err
		}
		return enc.Close()
	}
	c := q.Comparison
	_, err := fmt.Fprintf(w, "Estimated Trip Costs (%s miles)\n  Diesel Truck:   %s\n  Electric Truck: %s\n%s\n",
		format.Miles(q.Miles), format.Money(c.DieselTotal), format.Money(c.ElectricTotal), q.Summary)
	return err
}

// BatchCmd quotes a workbook of trips and writes the results next to it.
type BatchCmd struct {
	Input  string `short:"i" long:"input" required:"true" description:"workbook with one trip query per row"`
	Output string `short:"o" long:"output" description:"result workbook path (default: <input>_quotes.xlsx)"`
}

func (c *BatchCmd) Execute(_ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	output := c.Output
	if output == "" {
		output = batch.OutputPath(filepath.Dir(c.Input), c.Input)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := batch.Options{TripSheet: cfg.TripSheet, ResultSheet: cfg.ResultSheet}
	progress := func(current, total int, _ string) {
		log.Printf("%d/%d trips quoted", current, total)
	}
	logger := func(msg string) { log.Println(msg) }

	summary, err := batch.Process(ctx, c.Input, output, opts, newQuoteService().QuoteRow, progress, logger)
	if err != nil {
		return err
	}
	log.Printf("Wrote %d rows (%d quoted) to %s", summary.Rows, summary.Quoted, summary.Output)
	return nil
}

// ServeCmd starts the HTTP server using environment configuration.
type ServeCmd struct {
	Port string `short:"p" long:"port" description:"listen port (overrides PORT)"`
}

func (c *ServeCmd) Execute(_ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.Port != "" {
		cfg.Port = c.Port
	}
	return server.New(cfg, newQuoteService()).Run()
}
