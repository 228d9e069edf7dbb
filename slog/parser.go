// Package slog provides logging decorators for listing services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/listing"
)

// Ensure LoggingParser implements listing.Parser.
var _ listing.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging of every parse outcome.
type LoggingParser struct {
	next   listing.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next listing.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the result. Parse failures
// additionally log the page excerpt at debug level.
func (p *LoggingParser) Parse(body string, source listing.Source) (result *listing.Result, err error) {
	defer func(begin time.Time) {
		records := 0
		pages := ""
		if result != nil {
			records = len(result.Records)
			pages = result.Pages.String()
		}
		p.logger.Info("parse listing",
			"source", source.String(),
			"bytes", len(body),
			"pages", pages,
			"records", records,
			"duration", time.Since(begin),
			"err", err,
		)
		if listing.ErrorCode(err) == listing.EPARSE {
			p.logger.Debug("unparsed page", "excerpt", listing.ErrorExcerpt(err))
		}
	}(time.Now())
	return p.next.Parse(body, source)
}
