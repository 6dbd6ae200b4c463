// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Reads section sources and writes generated output
//   - ConfigStore: Application configuration (personal info, paths)
//
// # Optional Interfaces
//
//   - PullRequestFinder: GitHub lookup for the contribution snippet.
//     Without it, the snippet command falls back to configured text.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
