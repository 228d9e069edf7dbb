package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/listing"
)

// recordPrinter writes records either as text blocks separated by blank
// lines or as JSON lines.
type recordPrinter struct {
	w       io.Writer
	json    bool
	printed int
}

func newRecordPrinter(w io.Writer, asJSON bool) *recordPrinter {
	return &recordPrinter{w: w, json: asJSON}
}

func (p *recordPrinter) Print(r listing.Record) error {
	defer func() { p.printed++ }()

	if p.json {
		return json.NewEncoder(p.w).Encode(r)
	}
	if p.printed > 0 {
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, listing.FormatRecord(r))
	return err
}

// errorText returns the message of an application error, or the full chain
// of any other error so transport failures stay readable.
func errorText(err error) string {
	if listing.ErrorCode(err) == listing.EINTERNAL {
		return err.Error()
	}
	return listing.ErrorMessage(err)
}
