// Command chompjs rewrites permissive JavaScript-object-literal text read
// from a file or stdin into strict JSON: one document by default, or with
// --json-lines one output line per document found in the input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/Nykakin/chompjs"
)

var version string

type cliOptions struct {
	File      string `short:"f" long:"file" description:"Read input from this file instead of stdin" value-name:"path"`
	JSONLines bool   `long:"json-lines" description:"Treat input as a stream of back-to-back documents and emit one rewritten line per document"`
	Help      bool   `long:"help" description:"Show this help"`
	Version   bool   `long:"version" description:"Show this version"`
}

func parseOptions(args []string) (*cliOptions, []string) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}

	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	return &opts, rest
}

func readInput(opts *cliOptions) ([]byte, error) {
	if opts.File != "" && opts.File != "-" {
		return os.ReadFile(opts.File)
	}
	return io.ReadAll(os.Stdin)
}

func main() {
	opts, _ := parseOptions(os.Args[1:])

	data, err := readInput(opts)
	if err != nil {
		log.Fatal(err)
	}

	if !opts.JSONLines {
		out, err := chompjs.Transform(data)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		return
	}

	next := chompjs.TransformIterator(data)
	for {
		out, err := next()
		if err != nil {
			log.Fatal(err)
		}
		if out == nil {
			return
		}
		fmt.Println(string(out))
	}
}
