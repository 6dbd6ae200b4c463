package latex

import (
	"strings"

	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
)

// Fixed command markers recognised verbatim. They are not configurable;
// the resume sections are authored against exactly these macros.
const (
	entryMarker = `\cventry`
	hrefMarker  = `\href`
)

// entryArgCount is the arity of \cventry: title, tech, link, content.
const entryArgCount = 4

// Parser extracts structured records from LaTeX text.
// The zero value is usable and logs nothing.
type Parser struct {
	log Logger
}

// NewParser creates a parser with the given diagnostic logger.
// A nil logger is replaced with a no-op.
func NewParser(log Logger) *Parser {
	if log == nil {
		log = nopLogger{}
	}
	return &Parser{log: log}
}

func (p *Parser) logger() Logger {
	if p.log == nil {
		return nopLogger{}
	}
	return p.log
}

// ExtractArgs pulls numArgs consecutive {...} groups from text starting
// at start, skipping spaces, tabs and newlines between groups. On
// success it returns the argument values (braces excluded) and the
// position immediately after the last closing brace. Failure is total:
// the returned slice is nil and the position is the ORIGINAL start, so
// callers can advance past a bad match without looping forever.
func (p *Parser) ExtractArgs(text string, start, numArgs int) ([]string, int) {
	log := p.logger()

	if text == "" || start < 0 || start >= len(text) || numArgs <= 0 {
		log.Warn("invalid extraction request: len=%d start=%d args=%d", len(text), start, numArgs)
		return nil, start
	}

	args := make([]string, 0, numArgs)
	pos := start

	for n := 1; n <= numArgs; n++ {
		for pos < len(text) && isArgSpace(text[pos]) {
			pos++
		}

		if pos >= len(text) {
			log.Warn("unexpected end of text while extracting argument %d/%d", n, numArgs)
			return nil, start
		}

		if text[pos] != '{' {
			log.Warn("expected '{' at position %d for argument %d/%d, found %q", pos, n, numArgs, text[pos])
			return nil, start
		}

		end := MatchBrace(text, pos+1)
		if end == NoMatch {
			log.Warn("unmatched brace at position %d for argument %d/%d", pos, n, numArgs)
			return nil, start
		}

		args = append(args, text[pos+1:end-1])
		pos = end
	}

	return args, pos
}

// ParseEntries scans text for every \cventry occurrence and returns the
// successfully parsed records in document order. Malformed occurrences
// are logged and skipped; the scan never aborts. Empty input yields an
// empty slice.
func (p *Parser) ParseEntries(text string) []domain.Entry {
	log := p.logger()

	if text == "" {
		log.Warn("empty text provided to ParseEntries")
		return []domain.Entry{}
	}

	entries := []domain.Entry{}
	pos := 0
	occurrence := 0

	for {
		idx := strings.Index(text[pos:], entryMarker)
		if idx < 0 {
			break
		}

		occurrence++
		argStart := pos + idx + len(entryMarker)

		args, end := p.ExtractArgs(text, argStart, entryArgCount)
		if args == nil {
			// Skip exactly one character past the marker so a marker
			// embedded later in this occurrence's text is still found.
			log.Warn("failed to parse entry #%d at position %d", occurrence, argStart)
			pos = argStart + 1
			continue
		}

		url, label := p.splitHref(args[2])

		entries = append(entries, domain.Entry{
			Title:    strings.TrimSpace(args[0]),
			Tech:     strings.TrimSpace(args[1]),
			LinkURL:  strings.TrimSpace(url),
			LinkText: strings.TrimSpace(label),
			Content:  strings.TrimSpace(args[3]),
		})
		pos = end

		log.Debug("parsed entry #%d: %s", occurrence, entries[len(entries)-1].Title)
	}

	log.Info("parsed %d of %d entry occurrences", len(entries), occurrence)
	return entries
}

// splitHref splits an embedded \href{URL}{LABEL} out of a link argument.
// When no well-formed \href is present the whole argument is the label
// and the URL is empty.
func (p *Parser) splitHref(link string) (url, label string) {
	idx := strings.Index(link, hrefMarker)
	if idx < 0 {
		return "", link
	}

	args, _ := p.ExtractArgs(link, idx+len(hrefMarker), 2)
	if args == nil {
		return "", link
	}
	return args[0], args[1]
}
