package s3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/anonymize/lib/awslib"
	"github.com/artie-labs/anonymize/lib/config"
)

func TestConfigArgs(t *testing.T) {
	assert.Equal(t, awslib.ConfigArgs{}, configArgs(nil))
	assert.Equal(t,
		awslib.ConfigArgs{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret", SessionToken: "token"},
		configArgs(&config.S3Settings{Region: "us-east-1", AwsAccessKeyID: "id", AwsSecretAccessKey: "secret", AwsSessionToken: "token"}),
	)
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(context.Background(), &config.S3Settings{Region: "us-east-1", AwsAccessKeyID: "id", AwsSecretAccessKey: "secret"}, ',')
	assert.NoError(t, err)
}
