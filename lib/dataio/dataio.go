package dataio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/artie-labs/anonymize/models"
)

type Source interface {
	Load(ctx context.Context, path string) (*models.Dataset, error)
}

type Sink interface {
	Save(ctx context.Context, dataset *models.Dataset, path string) error
}

// ObjectStore moves whole objects between a remote bucket and a local file.
type ObjectStore interface {
	DownloadToFile(ctx context.Context, bucket, key, fp string) error
	UploadFile(ctx context.Context, bucket, key, fp string) error
}

type Scheme string

const (
	Local Scheme = ""
	S3    Scheme = "s3"
	GCS   Scheme = "gs"
)

// Location is a parsed dataset path. For [Local], only [Location.Path] is set.
type Location struct {
	Scheme Scheme
	Bucket string
	Key    string
	Path   string
}

func (l Location) String() string {
	if l.Scheme == Local {
		return l.Path
	}

	return fmt.Sprintf("%s://%s/%s", l.Scheme, l.Bucket, l.Key)
}

// Base returns the file name, which is what the format is detected from.
func (l Location) Base() string {
	if l.Scheme == Local {
		return path.Base(l.Path)
	}

	return path.Base(l.Key)
}

func ParseLocation(value string) (Location, error) {
	scheme, rest, found := strings.Cut(value, "://")
	if !found {
		if value == "" {
			return Location{}, fmt.Errorf("path is empty")
		}
		return Location{Scheme: Local, Path: value}, nil
	}

	switch Scheme(scheme) {
	case S3, GCS:
	default:
		return Location{}, fmt.Errorf("unsupported scheme %q in %q", scheme, value)
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, fmt.Errorf("expected %s://bucket/key, received: %q", scheme, value)
	}

	return Location{Scheme: Scheme(scheme), Bucket: bucket, Key: key}, nil
}
