package latex

import (
	"regexp"
	"strings"
)

// escapeReplacer escapes characters LaTeX treats specially. Replacement
// happens in a single pass, so braces introduced by an escape sequence
// are never re-escaped.
var escapeReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`_`, `\_`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`$`, `\$`,
	`{`, `\{`,
	`}`, `\}`,
	`^`, `\^{}`,
	`~`, `\textasciitilde{}`,
)

// EscapeSpecial escapes LaTeX special characters in plain text so the
// result can be embedded in a .tex source verbatim.
func EscapeSpecial(text string) string {
	return escapeReplacer.Replace(text)
}

var (
	reComment   = regexp.MustCompile(`%.*`)
	reTextbf    = regexp.MustCompile(`\\textbf\{([^}]+)\}`)
	reTextit    = regexp.MustCompile(`\\textit\{([^}]+)\}`)
	reHref      = regexp.MustCompile(`\\href\{([^}]+)\}\{([^}]+)\}`)
	reSection   = regexp.MustCompile(`\\section\{([^}]+)\}`)
	reSpacing   = regexp.MustCompile(`\\(noindent|quad|hfill|par)`)
	reVspace    = regexp.MustCompile(`\\vspace\{[^}]+\}`)
	reLinebreak = regexp.MustCompile(`\\\\(\[\d+pt\])?`)
	reItem      = regexp.MustCompile(`\\item`)
	reTextbar   = regexp.MustCompile(`\\textbar\{\}`)
	reBeginEnv  = regexp.MustCompile(`\\begin\{[^}]+\}`)
	reEndEnv    = regexp.MustCompile(`\\end\{[^}]+\}`)
	reBlankRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// CleanToPlain strips or unwraps the common LaTeX commands found in
// resume sections and returns approximate plain text. It is a best-effort
// conversion, not a renderer; unknown commands pass through untouched.
func CleanToPlain(text string) string {
	text = reComment.ReplaceAllString(text, "")

	text = reTextbf.ReplaceAllString(text, "$1")
	text = reTextit.ReplaceAllString(text, "$1")
	text = reHref.ReplaceAllString(text, "$2")
	text = reSection.ReplaceAllString(text, "$1")

	text = reSpacing.ReplaceAllString(text, "")
	text = reVspace.ReplaceAllString(text, "")
	text = reLinebreak.ReplaceAllString(text, "\n")
	text = reItem.ReplaceAllString(text, "")
	text = reTextbar.ReplaceAllString(text, "|")

	text = reBeginEnv.ReplaceAllString(text, "")
	text = reEndEnv.ReplaceAllString(text, "")

	text = reBlankRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

const endDocument = `\end{document}`

// Section returns the body of \section{name}, ending at the next
// \section, \end{document} or end of text. The boolean reports whether
// the section was found.
func Section(text, name string) (string, bool) {
	header := `\section{` + name + `}`
	start := strings.Index(text, header)
	if start < 0 {
		return "", false
	}

	body := text[start+len(header):]
	if next := strings.Index(body, `\section`); next >= 0 {
		body = body[:next]
	}
	if end := strings.Index(body, endDocument); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body), true
}

// SummaryText extracts the professional summary from a summary section
// source: the text following \section{Summary}\noindent, converted to
// plain text. The boolean is false when the section or the \noindent
// lead-in is missing, in which case callers fall back to configuration.
func SummaryText(text string) (string, bool) {
	body, ok := Section(text, "Summary")
	if !ok {
		return "", false
	}

	const noindent = `\noindent`
	if !strings.HasPrefix(body, noindent) {
		return "", false
	}

	// The lead-in must be the bare command, not a longer one sharing the
	// prefix (\noindentfoo), so a whitespace separator is required.
	body = body[len(noindent):]
	if body == "" || !isArgSpace(body[0]) {
		return "", false
	}

	return CleanToPlain(body), true
}
