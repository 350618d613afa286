// Command evcost quotes diesel vs. electric truck trip costs from the command line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args and executes the selected sub-command. Help text goes to
// stdout; the returned value is the process exit code.
func run(args []string, stdout io.Writer) int {
	opts := &Options{}
	if len(args) > 0 {
		opts.Init(args[0])
	}

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		log.Printf("%v", err)
		return 1
	}
	return 0
}
