package s3

import (
	"context"
	"fmt"

	"github.com/artie-labs/anonymize/clients/shared"
	"github.com/artie-labs/anonymize/lib/awslib"
	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/dataio"
)

func configArgs(settings *config.S3Settings) awslib.ConfigArgs {
	if settings == nil {
		return awslib.ConfigArgs{}
	}

	return awslib.ConfigArgs{
		Region:          settings.Region,
		AccessKeyID:     settings.AwsAccessKeyID,
		SecretAccessKey: settings.AwsSecretAccessKey,
		SessionToken:    settings.AwsSessionToken,
	}
}

// NewStore reads and writes s3:// paths, [settings] is optional.
func NewStore(ctx context.Context, settings *config.S3Settings, delimiter rune) (shared.RemoteStore, error) {
	cfg, err := awslib.LoadConfig(ctx, configArgs(settings))
	if err != nil {
		return shared.RemoteStore{}, fmt.Errorf("failed to create s3 store: %w", err)
	}

	return shared.NewRemoteStore(dataio.S3, awslib.NewS3Client(cfg), delimiter), nil
}
