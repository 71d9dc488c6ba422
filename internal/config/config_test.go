package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()
}

func TestValidate_MissingBaseURL(t *testing.T) {
	resetViper(t)
	viper.Set(KeyBitbucketToken, "token")

	err := Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BITBUCKET_BASE_URL")
}

func TestValidate_MissingToken(t *testing.T) {
	resetViper(t)
	viper.Set(KeyBitbucketBaseURL, "https://bitbucket.example.com")

	err := Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BITBUCKET_TOKEN")
}

func TestValidate_BadTransport(t *testing.T) {
	resetViper(t)
	viper.Set(KeyBitbucketBaseURL, "https://bitbucket.example.com")
	viper.Set(KeyBitbucketToken, "token")
	viper.Set(KeyTransport, "grpc")

	require.Error(t, Validate())
}

func TestValidate_OK(t *testing.T) {
	resetViper(t)
	viper.Set(KeyBitbucketBaseURL, "https://bitbucket.example.com")
	viper.Set(KeyBitbucketToken, "token")

	require.NoError(t, Validate())
	assert.Equal(t, "stdio", Transport())
	assert.Equal(t, 8000, HTTPPort())
}
