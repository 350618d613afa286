package main

// Options is the root command. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Quote *QuoteCmd `command:"quote" description:"Quote a single trip by miles or free-text question"`
	Batch *BatchCmd `command:"batch" description:"Quote every trip in an Excel workbook"`
	Serve *ServeCmd `command:"serve" description:"Start the HTTP server"`
}

// Init instantiates the sub-command named by the first argument so that
// flags.Parse can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "quote":
		o.Quote = &QuoteCmd{}
	case "batch":
		o.Batch = &BatchCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
