package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/logging"
)

const requestTimeout = 30 * time.Second

// APIError is a non-2xx response or decode failure from the Bitbucket API.
// StatusCode is zero when the failure happened before a status was received.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("bitbucket API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Client is a read-only client for the Bitbucket Server REST API. It is safe
// for concurrent use; all fields are immutable after construction.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewClient(baseURL, token string, log logging.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = requestTimeout

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
		log:     log,
	}, nil
}

// get performs one authenticated GET against baseURL+path. Caller headers are
// merged over the defaults, so a caller may override Accept. Non-2xx responses
// come back as *APIError with the status and a message derived from the body.
func (c *Client) get(ctx context.Context, path string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.log.Debug("bitbucket GET", "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response body: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Message: fmt.Sprintf("decode response from %s: %v", path, err)}
	}
	return nil
}

// errorMessage extracts a human-readable message from a Bitbucket error body.
// The shape is not guaranteed, so the structured field is probed with gjson
// and the raw body kept as fallback.
func errorMessage(status int, body []byte) string {
	if msg := gjson.GetBytes(body, "errors.0.message").Str; msg != "" {
		return msg
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return http.StatusText(status)
}

// CurrentUsername resolves the name of the authenticated user via the
// applinks whoami servlet, which answers with the bare username as text.
func (c *Client) CurrentUsername(ctx context.Context) (string, error) {
	header := http.Header{"Accept": []string{"text/plain"}}
	body, err := c.get(ctx, "/plugins/servlet/applinks/whoami", header)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// FindUser looks up a user record by username filter and returns the first
// match, or nil when the filter matched nothing.
func (c *Client) FindUser(ctx context.Context, filter string) (*User, error) {
	q := url.Values{}
	q.Set("filter", filter)
	q.Set("limit", "1")

	var page userPage
	if err := c.getJSON(ctx, "/rest/api/1.0/users?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	if len(page.Values) == 0 {
		return nil, nil
	}
	return &page.Values[0], nil
}

// InboxPullRequests returns the open pull requests in the authenticated
// user's inbox for one role. One upstream page only.
func (c *Client) InboxPullRequests(ctx context.Context, role Role) ([]PullRequest, error) {
	q := url.Values{}
	q.Set("state", "OPEN")
	q.Set("role", string(role))
	q.Set("limit", "100")

	var page pullRequestPage
	if err := c.getJSON(ctx, "/rest/api/1.0/inbox/pull-requests?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Values, nil
}

func prPath(projectKey, repoSlug string, id int64) string {
	return fmt.Sprintf("/rest/api/1.0/projects/%s/repos/%s/pull-requests/%d",
		url.PathEscape(projectKey), url.PathEscape(repoSlug), id)
}

// PullRequest fetches one pull request by project key, repository slug and id.
func (c *Client) PullRequest(ctx context.Context, projectKey, repoSlug string, id int64) (*PullRequest, error) {
	var pr PullRequest
	if err := c.getJSON(ctx, prPath(projectKey, repoSlug, id), &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// PullRequestDiff fetches the unified diff for one pull request. The body is
// returned verbatim.
func (c *Client) PullRequestDiff(ctx context.Context, projectKey, repoSlug string, id int64) (string, error) {
	header := http.Header{"Accept": []string{"text/plain"}}
	body, err := c.get(ctx, prPath(projectKey, repoSlug, id)+".diff", header)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
