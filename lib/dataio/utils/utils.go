package utils

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/artie-labs/anonymize/clients/gcs"
	"github.com/artie-labs/anonymize/clients/local"
	"github.com/artie-labs/anonymize/clients/s3"
	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/dataio"
)

type store interface {
	dataio.Source
	dataio.Sink
}

func newStore(ctx context.Context, cfg config.Config, path string) (store, error) {
	location, err := dataio.ParseLocation(path)
	if err != nil {
		return nil, err
	}

	delimiter := cfg.DelimiterRune()
	switch location.Scheme {
	case dataio.Local:
		return local.NewStore(delimiter), nil
	case dataio.S3:
		return s3.NewStore(ctx, cfg.S3, delimiter)
	case dataio.GCS:
		return gcs.NewStore(ctx, cfg.GCS, delimiter)
	default:
		return nil, fmt.Errorf("unsupported scheme: %q", location.Scheme)
	}
}

// NewSource picks the source for [path] by its scheme.
func NewSource(ctx context.Context, cfg config.Config, path string) (dataio.Source, error) {
	return newStore(ctx, cfg, path)
}

func NewSink(ctx context.Context, cfg config.Config, path string) (dataio.Sink, error) {
	return newStore(ctx, cfg, path)
}

// Close closes every source or sink that holds a client, stores without one are skipped.
func Close(stores ...any) error {
	var errs []error
	for _, store := range stores {
		if closer, ok := store.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
