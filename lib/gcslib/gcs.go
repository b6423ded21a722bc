package gcslib

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSClient struct {
	client    *storage.Client
	projectID string
}

// NewGCSClient falls back to GOOGLE_APPLICATION_CREDENTIALS if [pathToCredentials] is empty.
func NewGCSClient(ctx context.Context, projectID, pathToCredentials string) (GCSClient, error) {
	var opts []option.ClientOption
	if pathToCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(pathToCredentials))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return GCSClient{}, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return GCSClient{client: client, projectID: projectID}, nil
}

func (g GCSClient) bucket(name string) *storage.BucketHandle {
	bucket := g.client.Bucket(name)
	if g.projectID != "" {
		// Bills requester-pays buckets to the configured project.
		bucket = bucket.UserProject(g.projectID)
	}
	return bucket
}

func (g GCSClient) DownloadToFile(ctx context.Context, bucket, key, fp string) error {
	reader, err := g.bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("failed to create gcs reader: %w", err)
	}
	defer reader.Close()

	file, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(file, reader); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to download object: %w", err)
	}

	return file.Close()
}

func (g GCSClient) UploadFile(ctx context.Context, bucket, key, fp string) error {
	file, err := os.Open(fp)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Cancelling the writer's context aborts the upload, closing it would commit whatever was copied so far.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer := g.bucket(bucket).Object(key).NewWriter(ctx)
	if _, err = io.Copy(writer, file); err != nil {
		cancel()
		return fmt.Errorf("failed to write file to GCS: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return nil
}

func (g GCSClient) Close() error {
	return g.client.Close()
}
