package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/bitbucket"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/config"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/logging"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Logger       logging.Logger
}

// DefaultConfig wires the Bitbucket client from process configuration into
// one adapter per tool. Configuration must already be validated.
func DefaultConfig() (Config, error) {
	baseLogger := logging.New(logging.DefaultLogger(config.LogLevel()))

	client, err := bitbucket.NewClient(
		config.BitbucketBaseURL(),
		config.BitbucketToken(),
		baseLogger.WithName("bitbucket"),
	)
	if err != nil {
		return Config{}, fmt.Errorf("build bitbucket client: %w", err)
	}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"list-my-pull-requests": &tools.ListMyPullRequestsHandler{Service: client},
			"get-pull-request-info": &tools.GetPullRequestInfoHandler{Service: client},
			"get-pull-request-diff": &tools.GetPullRequestDiffHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
		Logger: baseLogger.WithName("mcp"),
	}, nil
}
