package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		bindFlags(root)
	}
	setDefaults()
}

// bindFlags maps CLI flag spellings onto the env-style viper keys, so a flag
// wins over the environment when both are set.
func bindFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	for key, name := range map[string]string{
		KeyBitbucketBaseURL: "base-url",
		KeyBitbucketToken:   "token",
		KeyLogLevel:         "log-level",
		KeyTransport:        "transport",
		KeyHTTPHost:         "host",
		KeyHTTPPort:         "port",
	} {
		if f := flags.Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHTTPHost, "127.0.0.1")
	viper.SetDefault(KeyHTTPPort, 8000)
}

// Validate checks the values that have no usable default. It is called once
// at startup; a nonzero exit before serving is the only correct response to a
// missing credential.
func Validate() error {
	if strings.TrimSpace(BitbucketBaseURL()) == "" {
		return fmt.Errorf("%s is required", strings.ToUpper(KeyBitbucketBaseURL))
	}
	if strings.TrimSpace(BitbucketToken()) == "" {
		return fmt.Errorf("%s is required", strings.ToUpper(KeyBitbucketToken))
	}
	switch Transport() {
	case "stdio", "http":
	default:
		return fmt.Errorf("%s must be stdio or http, got %q", strings.ToUpper(KeyTransport), Transport())
	}
	return nil
}

func BitbucketBaseURL() string { return viper.GetString(KeyBitbucketBaseURL) }
func BitbucketToken() string   { return viper.GetString(KeyBitbucketToken) }
func LogLevel() string         { return viper.GetString(KeyLogLevel) }
func Transport() string        { return viper.GetString(KeyTransport) }
func HTTPHost() string         { return viper.GetString(KeyHTTPHost) }
func HTTPPort() int            { return viper.GetInt(KeyHTTPPort) }
