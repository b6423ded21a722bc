package awslib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigArgs_Region(t *testing.T) {
	t.Setenv("AWS_REGION", "us-west-2")
	assert.Equal(t, "us-west-2", ConfigArgs{}.region())
	assert.Equal(t, "eu-central-1", ConfigArgs{Region: "eu-central-1"}.region())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	{
		// Static credentials
		cfg, err := LoadConfig(context.Background(), ConfigArgs{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret", SessionToken: "token"})
		assert.NoError(t, err)
		assert.Equal(t, "us-east-1", cfg.Region)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "id", creds.AccessKeyID)
		assert.Equal(t, "secret", creds.SecretAccessKey)
		assert.Equal(t, "token", creds.SessionToken)
	}
	{
		// Only the key ID is set, so the static provider should not be used.
		t.Setenv("AWS_ACCESS_KEY_ID", "env-id")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "env-secret")
		cfg, err := LoadConfig(context.Background(), ConfigArgs{Region: "us-east-1", AccessKeyID: "id"})
		assert.NoError(t, err)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "env-id", creds.AccessKeyID)
	}
}
