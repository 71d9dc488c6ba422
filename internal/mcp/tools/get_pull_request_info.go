package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/bitbucket"
)

type PullRequestService interface {
	PullRequest(ctx context.Context, projectKey, repoSlug string, id int64) (*bitbucket.PullRequest, error)
}

type GetPullRequestInfoHandler struct {
	Service PullRequestService
}

func (h *GetPullRequestInfoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	projectKey, err := stringArg(args, "project_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	repoSlug, err := stringArg(args, "repository_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := idArg(args, "pr_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pr, err := h.Service.PullRequest(ctx, projectKey, repoSlug, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err)), nil
	}
	return mcp.NewToolResultText(mustMarshalIndent(detail(*pr))), nil
}
