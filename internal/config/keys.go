package config

const (
	KeyBitbucketBaseURL = "bitbucket_base_url"
	KeyBitbucketToken   = "bitbucket_token"
	KeyLogLevel         = "log_level"
	KeyTransport        = "mcp_transport"
	KeyHTTPHost         = "mcp_host"
	KeyHTTPPort         = "mcp_port"
)
