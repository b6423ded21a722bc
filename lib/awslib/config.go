package awslib

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type ConfigArgs struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

func (c ConfigArgs) region() string {
	return cmp.Or(c.Region, os.Getenv("AWS_REGION"))
}

// LoadConfig uses static credentials if both the key ID and secret are set, otherwise the default credential chain.
func LoadConfig(ctx context.Context, args ConfigArgs) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(args.region())}
	if args.AccessKeyID != "" && args.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(args.AccessKeyID, args.SecretAccessKey, args.SessionToken)
		opts = append(opts, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return cfg, nil
}
