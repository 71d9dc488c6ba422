package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Two fixed prompt templates. They carry no parameters and no logic; each is
// a canned user message steering the client toward the list tool.
var staticPrompts = []struct {
	name        string
	description string
	text        string
}{
	{
		name:        "my-prs-to-review",
		description: "Pull requests waiting for my review",
		text:        "List all open pull requests where I am a reviewer.",
	},
	{
		name:        "my-open-prs",
		description: "My open pull requests",
		text:        "List all open pull requests where I am the author.",
	},
}

func registerPrompts(s *server.MCPServer) {
	for _, p := range staticPrompts {
		text := p.text
		description := p.description
		s.AddPrompt(
			mcp.NewPrompt(p.name, mcp.WithPromptDescription(description)),
			func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
					mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
				}), nil
			},
		)
	}
}
