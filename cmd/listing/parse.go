package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/listing"
	"github.com/fwojciec/listing/goquery"
	listinghttp "github.com/fwojciec/listing/http"
	"golang.org/x/sync/errgroup"
)

// maxParallelFiles bounds how many files are read and parsed at once.
const maxParallelFiles = 8

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	parse, err := c.parseFunc(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	results := make([]*listing.Result, len(c.Files))
	errs := make([]error, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(maxParallelFiles)
	for i, name := range c.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				errs[i] = listing.Errorf(listing.EINVALID, "cannot read file: %v", err)
				return errs[i]
			}
			body, err := listinghttp.DecodeFile(data)
			if err != nil {
				errs[i] = listing.Errorf(listing.EINVALID, "cannot decode file: %v", err)
				return errs[i]
			}
			res, err := parse(body)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Report the first failing file in argument order.
		for i, e := range errs {
			if e != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Files[i], errorText(e))
				return e
			}
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	p := newRecordPrinter(deps.Stdout, c.JSON)
	for i, res := range results {
		for _, r := range res.Records {
			if err := p.Print(r); err != nil {
				return err
			}
		}
		if !c.JSON {
			fmt.Fprintf(deps.Stderr, "%s: %d galleries (%s)\n", c.Files[i], len(res.Records), res.Pages)
		}
	}

	if p.printed == 0 && !c.JSON {
		fmt.Fprintln(deps.Stdout, "No galleries found.")
	}

	return nil
}

// parseFunc resolves the --source flag to a parse function. "auto" detects
// the layout of each page.
func (c *ParseCmd) parseFunc(deps *Dependencies) (func(body string) (*listing.Result, error), error) {
	if c.Source == "" || c.Source == "auto" {
		return goquery.NewDetectingParser(deps.Detector, deps.Parser).Parse, nil
	}

	source, err := listing.ParseSource(c.Source)
	if err != nil {
		return nil, err
	}
	return func(body string) (*listing.Result, error) {
		return deps.Parser.Parse(body, source)
	}, nil
}
