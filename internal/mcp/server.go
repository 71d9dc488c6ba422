package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/logging"
)

const (
	serverName    = "bitbucket-stupid-mcp"
	serverVersion = "1.0.0"
)

// ToolAdapter is implemented by every tool handler. Adapters report tool
// failures inside the result; a returned error means something unexpected.
type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
	)

	toolDefinitions := map[string]mcp.Tool{
		"list-my-pull-requests": mcp.NewTool("list-my-pull-requests",
			mcp.WithDescription("List open pull requests where the authenticated user participates. Returns id, title, author, reviewers, state and repository for each pull request."),
			mcp.WithString("role",
				mcp.Description("Filter by participation role (default: all)"),
				mcp.Enum("author", "reviewer", "all"),
			),
		),
		"get-pull-request-info": mcp.NewTool("get-pull-request-info",
			mcp.WithDescription("Fetch metadata for one pull request: title, description, author, reviewers, state and created/updated timestamps."),
			mcp.WithString("project_key",
				mcp.Required(),
				mcp.Description("Bitbucket project key (e.g. 'PROJ')"),
			),
			mcp.WithString("repository_slug",
				mcp.Required(),
				mcp.Description("Repository slug within the project"),
			),
			mcp.WithNumber("pr_id",
				mcp.Required(),
				mcp.Description("Numeric pull request id"),
			),
		),
		"get-pull-request-diff": mcp.NewTool("get-pull-request-diff",
			mcp.WithDescription("Fetch the raw unified diff of one pull request, unmodified."),
			mcp.WithString("project_key",
				mcp.Required(),
				mcp.Description("Bitbucket project key (e.g. 'PROJ')"),
			),
			mcp.WithString("repository_slug",
				mcp.Required(),
				mcp.Description("Repository slug within the project"),
			),
			mcp.WithNumber("pr_id",
				mcp.Required(),
				mcp.Description("Numeric pull request id"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, envelope(adapter, cfg.Logger.WithName(name)))
	}

	registerPrompts(mcpServer)

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// envelope is the last line of defense: whatever a handler does, the caller
// receives a well-formed single-text-block result. Panics and unexpected
// errors surface as "Unhandled error: <message>" text.
func envelope(adapter ToolAdapter, log logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Info("tool handler panicked", "panic", r)
				res = mcp.NewToolResultError(fmt.Sprintf("Unhandled error: %v", r))
				err = nil
			}
		}()
		res, err = adapter.ToolAdapter(ctx, req)
		if err != nil {
			log.Error(err, "tool handler failed")
			return mcp.NewToolResultError(fmt.Sprintf("Unhandled error: %s", err)), nil
		}
		return res, nil
	}
}

// ServeStdio blocks, speaking MCP over stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
