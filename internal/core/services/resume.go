package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driving"
	"github.com/custodia-labs/cvforge-cli/internal/latex"
)

// Ensure ResumeService implements the interface.
var _ driving.ResumeBuilder = (*ResumeService)(nil)

// Section source file names within the sections directory.
const (
	projectsFile = "projects.tex"
	summaryFile  = "summary.tex"
)

// ResumeService assembles a JSON Resume from LaTeX sections and
// configuration.
type ResumeService struct {
	docs   driven.DocumentStore
	config driven.ConfigStore
	parser *latex.Parser
	log    latex.Logger
}

// NewResumeService creates a resume builder. log may be nil.
func NewResumeService(
	docs driven.DocumentStore,
	config driven.ConfigStore,
	log latex.Logger,
) *ResumeService {
	return &ResumeService{
		docs:   docs,
		config: config,
		parser: latex.NewParser(log),
		log:    log,
	}
}

// Build parses the section sources and returns the assembled resume.
func (s *ResumeService) Build(_ context.Context) (*domain.Resume, error) {
	resume := domain.NewResume()

	resume.Basics = s.basics()
	resume.Projects = s.projects()
	resume.Education = s.education()
	resume.Skills = s.skills()
	resume.Languages = s.languages()

	resume.Meta = &domain.Meta{
		ID:           uuid.New().String(),
		LastModified: time.Now().UTC().Format(time.RFC3339),
	}

	return resume, nil
}

// Generate builds the resume and writes it to the configured JSON
// output path.
func (s *ResumeService) Generate(ctx context.Context) (string, error) {
	resume, err := s.Build(ctx)
	if err != nil {
		return "", fmt.Errorf("build resume: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resume); err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}

	outPath := getString(s.config, keyOutputJSON, DefaultOutputJSON)
	if err := s.docs.Write(outPath, buf.String()); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	return outPath, nil
}

// basics builds the basics section from configuration plus the parsed
// summary.
func (s *ResumeService) basics() domain.Basics {
	linkedin := s.config.GetString(keyPersonalLinkedIn)
	github := s.config.GetString(keyPersonalGitHub)

	return domain.Basics{
		Name:    s.config.GetString(keyPersonalName),
		Label:   s.config.GetString(keyPersonalTitle),
		Email:   s.config.GetString(keyPersonalEmail),
		Phone:   s.config.GetString(keyPersonalPhone),
		URL:     s.config.GetString(keyPersonalWebsite),
		Summary: s.summary(),
		Location: domain.Location{
			City:        s.config.GetString(keyLocationCity),
			CountryCode: s.config.GetString(keyLocationCountry),
			Region:      s.config.GetString(keyLocationRegion),
		},
		Profiles: []domain.Profile{
			{Network: "LinkedIn", Username: lastPathSegment(linkedin), URL: linkedin},
			{Network: "GitHub", Username: lastPathSegment(github), URL: github},
		},
	}
}

// summary extracts the professional summary from sections/summary.tex,
// falling back to the configured text when the file is missing or the
// section cannot be parsed.
func (s *ResumeService) summary() string {
	fallback := getString(s.config, keyFallbackSummary, DefaultSummary)

	path := sectionPath(s.config, summaryFile)
	content, ok := s.docs.Read(path)
	if !ok {
		s.warn("could not read %s, using fallback summary", path)
		return fallback
	}

	summary, ok := latex.SummaryText(content)
	if !ok {
		s.warn("could not parse summary from %s, using fallback", path)
		return fallback
	}
	return summary
}

// projects parses sections/projects.tex into JSON Resume projects.
// A missing or empty file yields no projects, never an error.
func (s *ResumeService) projects() []domain.Project {
	path := sectionPath(s.config, projectsFile)
	content, ok := s.docs.Read(path)
	if !ok {
		s.warn("could not read %s, resume will have no projects", path)
		return []domain.Project{}
	}

	entries := s.parser.ParseEntries(content)
	projects := make([]domain.Project, 0, len(entries))

	for _, entry := range entries {
		highlights := contentHighlights(entry.Content)

		description := entry.Title
		if len(highlights) > 0 {
			description = highlights[0]
		}

		projects = append(projects, domain.Project{
			Name:        entry.Title,
			Description: description,
			Highlights:  highlights,
			Keywords:    entry.Keywords(),
			URL:         entry.LinkURL,
			Roles:       []string{"Developer"},
			Type:        "application",
		})
	}

	return projects
}

// education reads [[education]] tables from configuration.
func (s *ResumeService) education() []domain.Education {
	out := []domain.Education{}
	for _, table := range configTables(s.config, "education") {
		out = append(out, domain.Education{
			Institution: tableString(table, "institution"),
			URL:         tableString(table, "url"),
			Area:        tableString(table, "area"),
			StudyType:   tableString(table, "study_type"),
			Score:       tableString(table, "score"),
			Courses:     tableStrings(table, "courses"),
		})
	}
	return out
}

// skills reads [[skills]] tables from configuration.
func (s *ResumeService) skills() []domain.Skill {
	out := []domain.Skill{}
	for _, table := range configTables(s.config, "skills") {
		out = append(out, domain.Skill{
			Name:     tableString(table, "name"),
			Level:    tableString(table, "level"),
			Keywords: tableStrings(table, "keywords"),
		})
	}
	return out
}

// languages reads [[languages]] tables, defaulting to professional
// English when none are configured.
func (s *ResumeService) languages() []domain.Language {
	tables := configTables(s.config, "languages")
	if len(tables) == 0 {
		return []domain.Language{{Language: "English", Fluency: "Professional"}}
	}

	out := make([]domain.Language, 0, len(tables))
	for _, table := range tables {
		out = append(out, domain.Language{
			Language: tableString(table, "language"),
			Fluency:  tableString(table, "fluency"),
		})
	}
	return out
}

func (s *ResumeService) warn(format string, args ...any) {
	if s.log != nil {
		s.log.Warn(format, args...)
	}
}

// contentHighlights converts an entry body to plain text and returns its
// non-empty lines. Lines still starting with a backslash (commands the
// cleaner does not know) are dropped.
func contentHighlights(content string) []string {
	highlights := []string{}
	for _, line := range strings.Split(latex.CleanToPlain(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, `\`) {
			highlights = append(highlights, line)
		}
	}
	return highlights
}

// lastPathSegment returns the final path segment of a profile URL,
// which is the username for LinkedIn and GitHub profile links.
func lastPathSegment(url string) string {
	url = strings.TrimRight(url, "/")
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}

// configTables reads an array of TOML tables from configuration.
func configTables(cfg driven.ConfigStore, key string) []map[string]any {
	raw, ok := cfg.Get(key)
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	tables := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if table, ok := item.(map[string]any); ok {
			tables = append(tables, table)
		}
	}
	return tables
}

func tableString(table map[string]any, key string) string {
	if v, ok := table[key].(string); ok {
		return v
	}
	return ""
}

func tableStrings(table map[string]any, key string) []string {
	raw, ok := table[key]
	if !ok {
		return []string{}
	}

	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
