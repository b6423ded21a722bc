package gcs

import (
	"context"
	"fmt"

	"github.com/artie-labs/anonymize/clients/shared"
	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/dataio"
	"github.com/artie-labs/anonymize/lib/gcslib"
)

// NewStore reads and writes gs:// paths, without [settings] the application default credentials are used.
func NewStore(ctx context.Context, settings *config.GCSSettings, delimiter rune) (shared.RemoteStore, error) {
	var projectID, pathToCredentials string
	if settings != nil {
		projectID = settings.ProjectID
		pathToCredentials = settings.PathToCredentials
	}

	client, err := gcslib.NewGCSClient(ctx, projectID, pathToCredentials)
	if err != nil {
		return shared.RemoteStore{}, fmt.Errorf("failed to create gcs store: %w", err)
	}

	return shared.NewRemoteStore(dataio.GCS, client, delimiter), nil
}
