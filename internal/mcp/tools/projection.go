package tools

import (
	"time"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/bitbucket"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/mcp/tools/types"
)

func authorName(pr bitbucket.PullRequest) string {
	if pr.Author == nil || pr.Author.User == nil {
		return ""
	}
	return pr.Author.User.DisplayName
}

func reviewerNames(pr bitbucket.PullRequest) []string {
	names := make([]string, 0, len(pr.Reviewers))
	for _, r := range pr.Reviewers {
		if r.User == nil {
			continue
		}
		names = append(names, r.User.DisplayName)
	}
	return names
}

func repositoryOf(pr bitbucket.PullRequest) (projectKey, slug, fullName string) {
	if pr.ToRef == nil || pr.ToRef.Repository == nil {
		return "", "", ""
	}
	repo := pr.ToRef.Repository
	slug = repo.Slug
	if repo.Project != nil {
		projectKey = repo.Project.Key
	}
	switch {
	case projectKey != "" && slug != "":
		fullName = projectKey + "/" + slug
	case slug != "":
		fullName = slug
	}
	return projectKey, slug, fullName
}

func summarize(pr bitbucket.PullRequest) types.PullRequestSummary {
	projectKey, slug, fullName := repositoryOf(pr)
	return types.PullRequestSummary{
		ID:         pr.ID,
		Title:      pr.Title,
		Author:     authorName(pr),
		Reviewers:  reviewerNames(pr),
		State:      pr.State,
		Repository: fullName,
		ProjectKey: projectKey,
		RepoSlug:   slug,
	}
}

func detail(pr bitbucket.PullRequest) types.PullRequestInfo {
	return types.PullRequestInfo{
		ID:          pr.ID,
		Title:       pr.Title,
		Description: pr.Description,
		Author:      authorName(pr),
		Reviewers:   reviewerNames(pr),
		State:       pr.State,
		CreatedOn:   isoTimestamp(pr.CreatedDate),
		UpdatedOn:   isoTimestamp(pr.UpdatedDate),
	}
}

// isoTimestamp renders a Bitbucket epoch-millisecond field as RFC 3339 UTC.
// Zero means the field was absent upstream.
func isoTimestamp(millis int64) string {
	if millis == 0 {
		return ""
	}
	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}
