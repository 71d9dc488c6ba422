package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type DiffService interface {
	PullRequestDiff(ctx context.Context, projectKey, repoSlug string, id int64) (string, error)
}

type GetPullRequestDiffHandler struct {
	Service DiffService
}

func (h *GetPullRequestDiffHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	diff, err := h.Service.PullRequestDiff(ctx, projectKey, repoSlug, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err)), nil
	}
	// The diff is an opaque blob; no reformatting.
	return mcp.NewToolResultText(diff), nil
}
