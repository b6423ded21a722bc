package config

import (
	"fmt"

	"github.com/artie-labs/anonymize/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type S3Settings struct {
	Region             string `yaml:"region"`
	AwsAccessKeyID     string `yaml:"awsAccessKeyID"`
	AwsSecretAccessKey string `yaml:"awsSecretAccessKey"`
	AwsSessionToken    string `yaml:"awsSessionToken"`
}

func (s *S3Settings) String() string {
	// Don't log credentials.
	return fmt.Sprintf("region=%s, key_set=%v, secret_set=%v", s.Region, s.AwsAccessKeyID != "", s.AwsSecretAccessKey != "")
}

type GCSSettings struct {
	ProjectID string `yaml:"projectID"`
	// PathToCredentials is _optional_ if you have GOOGLE_APPLICATION_CREDENTIALS set as an env var
	PathToCredentials string `yaml:"pathToCredentials"`
}

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type Metrics struct {
	Provider constants.ExporterKind `yaml:"provider"`
	Settings map[string]any         `yaml:"settings,omitempty"`
}

type Telemetry struct {
	Metrics Metrics `yaml:"metrics"`
}
