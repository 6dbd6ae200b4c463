package services

import (
	"path"

	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
)

// Config keys for resume generation. Keys use the dot notation the
// ConfigStore exposes after flattening the TOML tables.
const (
	keyPersonalName     = "personal.name"
	keyPersonalTitle    = "personal.title"
	keyPersonalEmail    = "personal.email"
	keyPersonalPhone    = "personal.phone"
	keyPersonalLinkedIn = "personal.linkedin"
	keyPersonalGitHub   = "personal.github"
	keyPersonalWebsite  = "personal.website"
	keyLocationCity     = "personal.location.city"
	keyLocationCountry  = "personal.location.country_code"
	keyLocationRegion   = "personal.location.region"

	keyGitHubUser = "github.username"

	keyOutputJSON = "output.json"
	keyOutputPR   = "output.latest_pr"

	keyFallbackSummary = "fallback.summary"
	keyFallbackPR      = "fallback.latest_pr"
)

// Keys the CLI layer also reads. Exported so commands and services
// resolve the same configuration.
const (
	KeySectionsDir   = "paths.sections_dir"
	KeyGitHubTimeout = "github.timeout_seconds"
)

// Defaults mirror the stock project layout.
const (
	DefaultSectionsDir = "sections"
	DefaultOutputJSON  = "docs/resume.json"
	DefaultOutputPR    = "sections/latest_pr.tex"

	// DefaultSummary is used when sections/summary.tex cannot be parsed.
	DefaultSummary = "Your professional summary goes here. Describe your expertise, skills, and what you bring to the table."

	// DefaultPRFallback is written when no merged PR can be fetched.
	DefaultPRFallback = `\item \textbf{Active Contributor:} Ongoing contributions to open-source projects.`
)

// getString reads a config string with a default.
func getString(cfg driven.ConfigStore, key, def string) string {
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return def
}

// sectionPath resolves a section file name against the configured
// sections directory.
func sectionPath(cfg driven.ConfigStore, name string) string {
	return path.Join(getString(cfg, KeySectionsDir, DefaultSectionsDir), name)
}
