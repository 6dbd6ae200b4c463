package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeSpecial(t *testing.T) {
	escaped := EscapeSpecial("Test_with#special$chars&more%stuff")

	assert.Contains(t, escaped, `\_`)
	assert.Contains(t, escaped, `\#`)
	assert.Contains(t, escaped, `\$`)
	assert.Contains(t, escaped, `\&`)
	assert.Contains(t, escaped, `\%`)
}

func TestEscapeSpecial_Backslash(t *testing.T) {
	assert.Equal(t, `a\textbackslash{}b`, EscapeSpecial(`a\b`))
}

func TestEscapeSpecial_BracesNotDoubleEscaped(t *testing.T) {
	// Braces introduced by an escape sequence must stay intact.
	assert.Equal(t, `\^{}`, EscapeSpecial("^"))
	assert.Equal(t, `\textasciitilde{}`, EscapeSpecial("~"))
	assert.Equal(t, `\{x\}`, EscapeSpecial("{x}"))
}

func TestCleanToPlain_Formatting(t *testing.T) {
	plain := CleanToPlain(`\textbf{Bold} and \textit{italic} text`)
	assert.Equal(t, "Bold and italic text", plain)
}

func TestCleanToPlain_Href(t *testing.T) {
	plain := CleanToPlain(`\href{http://example.com}{Link Text}`)
	assert.Equal(t, "Link Text", plain)
}

func TestCleanToPlain_StripsStructure(t *testing.T) {
	latex := `\begin{itemize}
  \item First point % trailing comment
  \item Second \textbar{} point
\end{itemize}`

	plain := CleanToPlain(latex)

	assert.NotContains(t, plain, `\begin`)
	assert.NotContains(t, plain, `\end`)
	assert.NotContains(t, plain, `\item`)
	assert.NotContains(t, plain, "comment")
	assert.Contains(t, plain, "First point")
	assert.Contains(t, plain, "Second | point")
}

func TestCleanToPlain_LineBreaks(t *testing.T) {
	assert.Equal(t, "a\nb", CleanToPlain(`a\\b`))
	assert.Equal(t, "a\nb", CleanToPlain(`a\\[6pt]b`))
}

func TestSection_Found(t *testing.T) {
	text := `\section{Summary}
Summary body here.
\section{Projects}
Project body.`

	body, ok := Section(text, "Summary")

	require.True(t, ok)
	assert.Equal(t, "Summary body here.", body)
}

func TestSection_StopsAtEndDocument(t *testing.T) {
	text := `\section{Skills}
Skill list.
\end{document}
trailing junk`

	body, ok := Section(text, "Skills")

	require.True(t, ok)
	assert.Equal(t, "Skill list.", body)
}

func TestSection_Missing(t *testing.T) {
	_, ok := Section(`\section{Other}x`, "Summary")
	assert.False(t, ok)
}

func TestSummaryText(t *testing.T) {
	text := `\section{Summary}
\noindent DevOps engineer with \textbf{five} years of experience.

\section{Projects}`

	summary, ok := SummaryText(text)

	require.True(t, ok)
	assert.Equal(t, "DevOps engineer with five years of experience.", summary)
}

func TestSummaryText_RequiresNoindentLeadIn(t *testing.T) {
	_, ok := SummaryText(`\section{Summary}
plain text without the lead-in`)

	assert.False(t, ok)
}

func TestSummaryText_NoindentMustBeWholeCommand(t *testing.T) {
	// A longer command sharing the prefix is not a lead-in.
	_, ok := SummaryText(`\section{Summary}
\noindentfoo text`)
	assert.False(t, ok)

	// Nor is the bare command with no summary after it.
	_, ok = SummaryText(`\section{Summary}
\noindent`)
	assert.False(t, ok)
}

func TestSummaryText_MissingSection(t *testing.T) {
	_, ok := SummaryText("no sections at all")
	assert.False(t, ok)
}
