package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"freight-cost/internal/quote"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestQuoteCmd_Flags(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		wantMiles  int
		wantQuery  string
		wantOutput string
		wantErr    bool
	}{
		{name: "miles", args: []string{"--miles", "1200"}, wantMiles: 1200, wantOutput: "text"},
		{name: "query short", args: []string{"-q", "a 50 mile trip", "-o", "json"}, wantQuery: "a 50 mile trip", wantOutput: "json"},
		{name: "bad output", args: []string{"--miles", "5", "--output", "xml"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &QuoteCmd{}
			_, err := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash).ParseArgs(tc.args)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMiles, cmd.Miles)
			assert.Equal(t, tc.wantQuery, cmd.Query)
			assert.Equal(t, tc.wantOutput, cmd.Output)
		})
	}
}

func TestQuoteCmd_Text(t *testing.T) {
	var buf bytes.Buffer
	cmd := &QuoteCmd{Query: "How much for a 1,200 mile trip?", Output: "text", out: &buf}
	require.NoError(t, cmd.Execute(nil))

	out := buf.String()
	assert.Contains(t, out, "Estimated Trip Costs (1,200 miles)")
	assert.Contains(t, out, "Diesel Truck:   $696.00")
	assert.Contains(t, out, "Electric Truck: $228.00")
	assert.Contains(t, out, "You could save approximately $468.00 on this trip!")
}

func TestQuoteCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &QuoteCmd{Miles: 300, Output: "json", out: &buf}
	require.NoError(t, cmd.Execute(nil))

	var q quote.Quote
	require.NoError(t, json.Unmarshal(buf.Bytes(), &q))
	assert.Equal(t, 300, q.Miles)
	assert.InDelta(t, 117.0, q.Comparison.Savings, 1e-9)
}

func TestQuoteCmd_YAML(t *testing.T) {
	var buf bytes.Buffer
	cmd := &QuoteCmd{Miles: 300, Output: "yaml", out: &buf}
	require.NoError(t, cmd.Execute(nil))

	var q quote.Quote
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &q))
	assert.Equal(t, 300, q.Miles)
	assert.Equal(t, 300, q.Comparison.Miles)
}

func TestQuoteCmd_Errors(t *testing.T) {
	cases := []struct {
		name string
		cmd  *QuoteCmd
		want string
	}{
		{"no distance", &QuoteCmd{Query: "Hello there"}, quote.InvalidDistanceMessage},
		{"zero miles", &QuoteCmd{}, quote.InvalidDistanceMessage},
		{"both", &QuoteCmd{Miles: 5, Query: "5 miles"}, "use either --miles or --query, not both"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cmd.out = &bytes.Buffer{}
			err := tc.cmd.Execute(nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestOptions_Init(t *testing.T) {
	opts := &Options{}
	opts.Init("quote")
	assert.NotNil(t, opts.Quote)
	assert.Nil(t, opts.Batch)
	assert.Nil(t, opts.Serve)
}
