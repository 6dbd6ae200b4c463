package domain

import "strings"

// Entry is one parsed \cventry record from a LaTeX section, in document
// order. Immutable once constructed; failed parses are never
// materialised as entries.
type Entry struct {
	// Title is the entry heading (project or role name).
	Title string

	// Tech is the comma-separated technology list, unsplit.
	Tech string

	// LinkURL is the URL of an embedded \href, or empty when the link
	// argument carried no hyperlink.
	LinkURL string

	// LinkText is the display label of the link argument.
	LinkText string

	// Content is the free-form body (typically an itemize environment).
	Content string
}

// Keywords splits the technology list into trimmed keywords. The result
// is never nil so an empty list marshals as [] rather than null.
func (e Entry) Keywords() []string {
	if e.Tech == "" {
		return []string{}
	}

	parts := strings.Split(e.Tech, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
