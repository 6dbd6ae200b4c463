// Package latex implements the brace-aware micro-parser used to pull
// structured records out of hand-authored LaTeX resume sections.
//
// The package is deliberately not a LaTeX-to-AST converter. It provides
// three layers, leaf first:
//
//   - MatchBrace: balanced-brace scanning with backslash-escape handling
//   - Parser.ExtractArgs: N consecutive {...} command arguments
//   - Parser.ParseEntries: all \cventry records in a document
//
// All failure is reported through sentinel return values (NoMatch, nil
// slices). No error ever propagates out of this package for malformed
// input; callers decide how to make forward progress.
//
// # Import Rules
//
//   - Can Import: domain package and standard library only
//   - Cannot Import: Any adapter, connector, or service package
package latex
