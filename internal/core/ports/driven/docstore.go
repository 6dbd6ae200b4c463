package driven

// DocumentStore abstracts reading section sources and writing generated
// artifacts. Paths are relative to the project root the store was
// created for.
type DocumentStore interface {
	// Read returns the content of a text file. A missing or unreadable
	// file yields ("", false) rather than an error: the core treats an
	// absent document as "no entries".
	Read(path string) (string, bool)

	// Write stores content at path, creating parent directories as
	// needed.
	Write(path, content string) error

	// Exists reports whether a file is present.
	Exists(path string) bool
}
