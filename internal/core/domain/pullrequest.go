package domain

// PullRequest is the minimal view of a merged pull request needed to
// render the open-source contribution snippet.
type PullRequest struct {
	// Title is the PR title, unescaped.
	Title string

	// HTMLURL is the PR's web address.
	HTMLURL string

	// Repo is the owner/name path of the repository.
	Repo string
}
