package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/logging"
)

type panickingAdapter struct{}

func (panickingAdapter) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	panic("nil map write")
}

type failingAdapter struct{}

func (failingAdapter) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return nil, errors.New("unexpected failure")
}

type okAdapter struct{}

func (okAdapter) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("ok"), nil
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestEnvelope_RecoversPanic(t *testing.T) {
	handler := envelope(panickingAdapter{}, logging.New(logr.Discard()))

	res, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err, "panic must not escape as an error")
	assert.True(t, res.IsError)
	assert.Equal(t, "Unhandled error: nil map write", textOf(t, res))
}

func TestEnvelope_ConvertsUnexpectedError(t *testing.T) {
	handler := envelope(failingAdapter{}, logging.New(logr.Discard()))

	res, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Unhandled error: unexpected failure", textOf(t, res))
}

func TestEnvelope_PassesResultThrough(t *testing.T) {
	handler := envelope(okAdapter{}, logging.New(logr.Discard()))

	res, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "ok", textOf(t, res))
}

func TestNew_RegistersToolsAndPrompts(t *testing.T) {
	srv := New(Config{
		ToolAdapters: map[string]ToolAdapter{
			"list-my-pull-requests": okAdapter{},
			"get-pull-request-info": okAdapter{},
			"get-pull-request-diff": okAdapter{},
		},
		Logger: logging.New(logr.Discard()),
	})

	require.NotNil(t, srv.MCP)
	require.NotNil(t, srv.Handler)
}
