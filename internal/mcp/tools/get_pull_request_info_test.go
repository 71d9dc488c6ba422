package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/bitbucket"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/mcp/tools/types"
)

type fakePRService struct {
	pr  *bitbucket.PullRequest
	err error

	gotProject string
	gotSlug    string
	gotID      int64
}

func (f *fakePRService) PullRequest(ctx context.Context, projectKey, repoSlug string, id int64) (*bitbucket.PullRequest, error) {
	f.gotProject, f.gotSlug, f.gotID = projectKey, repoSlug, id
	return f.pr, f.err
}

func callInfoTool(t *testing.T, svc PullRequestService, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	h := &GetPullRequestInfoHandler{Service: svc}
	req := mcp.CallToolRequest{}
	req.Params.Name = "get-pull-request-info"
	req.Params.Arguments = args
	res, err := h.ToolAdapter(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestGetPullRequestInfo_ProjectsDates(t *testing.T) {
	svc := &fakePRService{pr: &bitbucket.PullRequest{
		ID:          42,
		Title:       "Add request timeouts",
		Description: "Bounds every upstream call.",
		State:       "OPEN",
		CreatedDate: 1700000000000,
		UpdatedDate: 1700000100000,
		Author:      &bitbucket.Participant{User: &bitbucket.User{DisplayName: "John Doe"}},
		Reviewers: []bitbucket.Participant{
			{User: &bitbucket.User{DisplayName: "Jane Roe"}},
			{User: nil},
		},
	}}

	res := callInfoTool(t, svc, map[string]any{
		"project_key":     "PROJ",
		"repository_slug": "backend",
		"pr_id":           float64(42),
	})
	require.False(t, res.IsError)

	assert.Equal(t, "PROJ", svc.gotProject)
	assert.Equal(t, "backend", svc.gotSlug)
	assert.Equal(t, int64(42), svc.gotID)

	var info types.PullRequestInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Equal(t, "2023-11-14T22:13:20Z", info.CreatedOn)
	assert.Equal(t, "2023-11-14T22:15:00Z", info.UpdatedOn)
	assert.Equal(t, "John Doe", info.Author)
	assert.Equal(t, []string{"Jane Roe"}, info.Reviewers)
}

func TestGetPullRequestInfo_MissingTimestamps(t *testing.T) {
	svc := &fakePRService{pr: &bitbucket.PullRequest{ID: 1, Title: "bare"}}

	res := callInfoTool(t, svc, map[string]any{
		"project_key":     "PROJ",
		"repository_slug": "backend",
		"pr_id":           float64(1),
	})
	require.False(t, res.IsError)

	var info types.PullRequestInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Empty(t, info.CreatedOn)
	assert.Empty(t, info.UpdatedOn)
}

func TestGetPullRequestInfo_ArgumentValidation(t *testing.T) {
	cases := []map[string]any{
		{"repository_slug": "backend", "pr_id": float64(1)},
		{"project_key": "PROJ", "pr_id": float64(1)},
		{"project_key": "PROJ", "repository_slug": "backend"},
		{"project_key": "PROJ", "repository_slug": "backend", "pr_id": float64(-1)},
	}
	for _, args := range cases {
		svc := &fakePRService{}
		res := callInfoTool(t, svc, args)
		assert.True(t, res.IsError)
		assert.Empty(t, svc.gotProject, "no upstream call on invalid arguments")
	}
}

func TestGetPullRequestInfo_UpstreamError(t *testing.T) {
	svc := &fakePRService{err: &bitbucket.APIError{StatusCode: 404, Message: "Pull request 9 does not exist"}}

	res := callInfoTool(t, svc, map[string]any{
		"project_key":     "PROJ",
		"repository_slug": "backend",
		"pr_id":           float64(9),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Error: ")
	assert.Contains(t, resultText(t, res), "Pull request 9 does not exist")
}
