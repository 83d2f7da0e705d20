// Package main provides the CLI entrypoint for dynamic-record.
//
// dynamic-record is a small inspection tool that:
//   - Loads one or more YAML documents as raw mappings
//   - Folds them into a single record via union (later files win on conflicts)
//   - Optionally subtracts a document (strict by default, -lax for key-only)
//   - Prints the result, either compact or as a deep dump
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"dynamic-record/internal/source"
	"dynamic-record/record"
)

func main() {
	lax := flag.Bool("lax", false, "subtract by key alone, ignoring values")
	sub := flag.String("sub", "", "YAML document to subtract from the result")
	verbose := flag.Bool("v", false, "deep dump instead of compact output")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: dynamic-record [-lax] [-sub file.yaml] [-v] file.yaml [more.yaml...]")
		os.Exit(2)
	}

	rec, err := record.NewWithConfig(nil, record.Config{StrictSubtraction: !*lax})
	if err != nil {
		fmt.Fprintln(os.Stderr, "init record:", err)
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		doc, err := source.LoadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load document:", err)
			os.Exit(1)
		}
		if _, err := rec.UnionInPlace(doc); err != nil {
			fmt.Fprintf(os.Stderr, "merge %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	if *sub != "" {
		doc, err := source.LoadFile(*sub)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load document:", err)
			os.Exit(1)
		}
		if _, err := rec.DifferenceInPlace(doc); err != nil {
			fmt.Fprintf(os.Stderr, "subtract %s: %v\n", *sub, err)
			os.Exit(1)
		}
	}

	if *verbose {
		spew.Dump(rec.Fields().Map())
		return
	}
	fmt.Println(rec)
}
