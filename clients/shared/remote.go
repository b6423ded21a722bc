package shared

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/artie-labs/anonymize/clients/local"
	"github.com/artie-labs/anonymize/lib/dataio"
	"github.com/artie-labs/anonymize/lib/retry"
	"github.com/artie-labs/anonymize/models"
)

const (
	jitterBaseMs = 500
	jitterMaxMs  = 5_000
	maxAttempts  = 3
)

// RemoteStore stages datasets through a local temporary directory and lets [local.Store] handle the file format.
type RemoteStore struct {
	scheme   dataio.Scheme
	objects  dataio.ObjectStore
	local    local.Store
	retryCfg retry.RetryConfig
}

func NewRemoteStore(scheme dataio.Scheme, objects dataio.ObjectStore, delimiter rune) RemoteStore {
	return RemoteStore{
		scheme:  scheme,
		objects: objects,
		local:   local.NewStore(delimiter),
		retryCfg: retry.NewRetryConfig(retry.NewRetryConfigArgs{
			JitterBaseMs: jitterBaseMs,
			JitterMaxMs:  jitterMaxMs,
			MaxAttempts:  maxAttempts,
		}),
	}
}

func (r RemoteStore) parse(path string) (dataio.Location, error) {
	location, err := dataio.ParseLocation(path)
	if err != nil {
		return dataio.Location{}, err
	}

	if location.Scheme != r.scheme {
		return dataio.Location{}, fmt.Errorf("expected a %s:// path, received: %q", r.scheme, path)
	}

	return location, nil
}

// stage creates a temporary directory, the file inside it keeps the object's name so the format can be detected.
func stage(location dataio.Location) (string, func(), error) {
	dir, err := os.MkdirTemp("", "anonymize-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}

	return filepath.Join(dir, location.Base()), func() { _ = os.RemoveAll(dir) }, nil
}

func (r RemoteStore) Load(ctx context.Context, path string) (*models.Dataset, error) {
	location, err := r.parse(path)
	if err != nil {
		return nil, err
	}

	fp, cleanUp, err := stage(location)
	if err != nil {
		return nil, err
	}
	defer cleanUp()

	err = r.retryCfg.WithRetries(ctx, func(_ int, _ error) error {
		return r.objects.DownloadToFile(ctx, location.Bucket, location.Key, fp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %w", location.String(), err)
	}

	slog.Debug("Downloaded dataset", slog.String("location", location.String()))
	return r.local.Load(ctx, fp)
}

func (r RemoteStore) Save(ctx context.Context, dataset *models.Dataset, path string) error {
	location, err := r.parse(path)
	if err != nil {
		return err
	}

	fp, cleanUp, err := stage(location)
	if err != nil {
		return err
	}
	defer cleanUp()

	if err = r.local.Save(ctx, dataset, fp); err != nil {
		return err
	}

	err = r.retryCfg.WithRetries(ctx, func(_ int, _ error) error {
		return r.objects.UploadFile(ctx, location.Bucket, location.Key, fp)
	})
	if err != nil {
		return fmt.Errorf("failed to upload %q: %w", location.String(), err)
	}

	slog.Debug("Uploaded dataset", slog.String("location", location.String()))
	return nil
}

// Close releases the object store's client if it holds one.
func (r RemoteStore) Close() error {
	if closer, ok := r.objects.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
