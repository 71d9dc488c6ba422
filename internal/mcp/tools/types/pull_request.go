package types

// PullRequestSummary is the reduced view returned by list-my-pull-requests.
// Every field is a strict subset of the upstream pull request object; absent
// upstream data degrades to empty values.
type PullRequestSummary struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Reviewers  []string `json:"reviewers"`
	State      string   `json:"state"`
	Repository string   `json:"repository"`
	ProjectKey string   `json:"project_key"`
	RepoSlug   string   `json:"repository_slug"`
}

// PullRequestInfo is the detail view returned by get-pull-request-info.
// Timestamps are ISO-8601 (RFC 3339, UTC); empty when upstream omits them.
type PullRequestInfo struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Reviewers   []string `json:"reviewers"`
	State       string   `json:"state"`
	CreatedOn   string   `json:"created_on"`
	UpdatedOn   string   `json:"updated_on"`
}
