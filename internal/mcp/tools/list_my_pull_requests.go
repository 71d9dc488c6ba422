package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/bitbucket"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/mcp/tools/types"
)

// InboxService is the slice of the Bitbucket client the list tool needs.
type InboxService interface {
	CurrentUsername(ctx context.Context) (string, error)
	FindUser(ctx context.Context, filter string) (*bitbucket.User, error)
	InboxPullRequests(ctx context.Context, role bitbucket.Role) ([]bitbucket.PullRequest, error)
}

type ListMyPullRequestsHandler struct {
	Service InboxService
}

// rolesFor maps the tool's role argument onto the upstream query roles.
// "all" queries AUTHOR then REVIEWER; the order is fixed because
// deduplication keeps the first-seen copy.
func rolesFor(role string) ([]bitbucket.Role, error) {
	switch role {
	case "", "all":
		return []bitbucket.Role{bitbucket.RoleAuthor, bitbucket.RoleReviewer}, nil
	case "author":
		return []bitbucket.Role{bitbucket.RoleAuthor}, nil
	case "reviewer":
		return []bitbucket.Role{bitbucket.RoleReviewer}, nil
	default:
		return nil, fmt.Errorf("role must be author, reviewer or all, got %q", role)
	}
}

func (h *ListMyPullRequestsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	role, _ := req.GetArguments()["role"].(string)
	roles, err := rolesFor(role)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	username, err := h.Service.CurrentUsername(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err)), nil
	}

	user, err := h.Service.FindUser(ctx, username)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err)), nil
	}
	if user == nil || user.Slug == "" {
		return mcp.NewToolResultText(fmt.Sprintf("Could not resolve Bitbucket user %q", username)), nil
	}

	var accumulated []bitbucket.PullRequest
	for _, r := range roles {
		prs, err := h.Service.InboxPullRequests(ctx, r)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err)), nil
		}
		accumulated = append(accumulated, prs...)
	}

	summaries := make([]types.PullRequestSummary, 0, len(accumulated))
	seen := make(map[int64]struct{}, len(accumulated))
	for _, pr := range accumulated {
		if _, dup := seen[pr.ID]; dup {
			continue
		}
		seen[pr.ID] = struct{}{}
		summaries = append(summaries, summarize(pr))
	}

	return mcp.NewToolResultText(mustMarshalIndent(summaries)), nil
}
