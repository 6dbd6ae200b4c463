package latex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	warnings []string
	infos    []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Error(string, ...any) {}

func (l *recordingLogger) Info(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warn(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestExtractArgs_FourArguments(t *testing.T) {
	p := NewParser(nil)
	text := `\cventry{Title}{Tech}{Link}{Content}`

	// Position 8 is right after the \cventry marker.
	args, pos := p.ExtractArgs(text, 8, 4)

	require.NotNil(t, args)
	assert.Equal(t, []string{"Title", "Tech", "Link", "Content"}, args)
	assert.Equal(t, len(text), pos)
}

func TestExtractArgs_NestedBraces(t *testing.T) {
	p := NewParser(nil)
	text := `\cventry{Title}{Java, Python}{\href{http://link.com}{Demo}}{Some content}`

	args, _ := p.ExtractArgs(text, 8, 4)

	require.Len(t, args, 4)
	assert.Equal(t, "Title", args[0])
	assert.Contains(t, args[2], `\href{http://link.com}{Demo}`)
}

func TestExtractArgs_SkipsWhitespaceBetweenArguments(t *testing.T) {
	p := NewParser(nil)
	text := "{one} \t{two}\n  {three}"

	args, pos := p.ExtractArgs(text, 0, 3)

	require.NotNil(t, args)
	assert.Equal(t, []string{"one", "two", "three"}, args)
	assert.Equal(t, len(text), pos)
}

func TestExtractArgs_FailureReturnsOriginalStart(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name    string
		text    string
		start   int
		numArgs int
	}{
		{"missing opening brace", "{one} two", 0, 2},
		{"truncated input", "{one}", 0, 2},
		{"unmatched brace", "{one}{two", 0, 2},
		{"empty text", "", 0, 1},
		{"start out of range", "{x}", 10, 1},
		{"zero args", "{x}", 0, 0},
		{"negative args", "{x}", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, pos := p.ExtractArgs(tt.text, tt.start, tt.numArgs)

			assert.Nil(t, args, "failure must discard partial results")
			assert.Equal(t, tt.start, pos, "failure must return the original start")
		})
	}
}

func TestParseEntries_TwoEntries(t *testing.T) {
	text := `
\cventry{Project One}{Java, Spring}{\href{https://github.com/user/proj}{GitHub}}{
\begin{itemize}
  \item Feature one
  \item Feature two
\end{itemize}
}

\cventry{Project Two}{Python}{\href{https://example.com}{Demo}}{Description here}
`
	p := NewParser(nil)

	entries := p.ParseEntries(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "Project One", entries[0].Title)
	assert.Equal(t, "Java, Spring", entries[0].Tech)
	assert.Equal(t, "https://github.com/user/proj", entries[0].LinkURL)
	assert.Equal(t, "GitHub", entries[0].LinkText)
	assert.Equal(t, "Project Two", entries[1].Title)
}

func TestParseEntries_MalformedOccurrenceSkipped(t *testing.T) {
	log := &recordingLogger{}
	p := NewParser(log)

	text := `\cventry{Good One}{Go}{label}{body}
\cventry{Broken}{missing braces
\cventry{Good Two}{Rust}{label}{body}`

	entries := p.ParseEntries(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "Good One", entries[0].Title)
	assert.Equal(t, "Good Two", entries[1].Title)
	assert.NotEmpty(t, log.warnings, "skip must be logged")
}

func TestParseEntries_LinkWithoutHref(t *testing.T) {
	p := NewParser(nil)
	text := `\cventry{T}{tech}{just a label}{body}`

	entries := p.ParseEntries(text)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].LinkURL)
	assert.Equal(t, "just a label", entries[0].LinkText)
}

func TestParseEntries_EmptyDocument(t *testing.T) {
	p := NewParser(&recordingLogger{})

	entries := p.ParseEntries("")

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseEntries_EscapedBracesRoundTrip(t *testing.T) {
	title := `Uses \{braces\} literally`
	body := `Content with \} and \{ inside`
	text := fmt.Sprintf(`\cventry{%s}{Go}{label}{%s}`, title, body)
	p := NewParser(nil)

	entries := p.ParseEntries(text)

	require.Len(t, entries, 1)
	assert.Equal(t, title, entries[0].Title)
	assert.Equal(t, body, entries[0].Content)
}

func TestParseEntries_MarkerInsideMalformedEntryRecovered(t *testing.T) {
	// The broken occurrence never closes its first argument, but a later
	// well-formed marker inside the remaining text must still be found
	// because recovery advances only one character past the marker.
	text := `\cventry{never closes \cventry{Found}{Go}{label}{body}`
	p := NewParser(&recordingLogger{})

	entries := p.ParseEntries(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Found", entries[0].Title)
}

func TestParseEntries_DocumentOrder(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&sb, `\cventry{Entry %d}{t}{l}{c}`+"\n", i)
	}
	p := NewParser(nil)

	entries := p.ParseEntries(sb.String())

	require.Len(t, entries, 5)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("Entry %d", i+1), entry.Title)
	}
}

func TestParseEntries_TrimsFields(t *testing.T) {
	text := "\\cventry{  Padded Title \n}{ Go, Rust }{label}{\n body \n}"
	p := NewParser(nil)

	entries := p.ParseEntries(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Padded Title", entries[0].Title)
	assert.Equal(t, "Go, Rust", entries[0].Tech)
	assert.Equal(t, "body", entries[0].Content)
}
