package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/anonymize/lib/config/constants"
)

type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	K      int    `yaml:"k"`

	MergeScope  constants.MergeScope `yaml:"mergeScope"`
	Parallelism int                  `yaml:"parallelism"`
	Delimiter   string               `yaml:"delimiter"`
	// ReportPath is optional, if set we'll write a JSON summary of the run there.
	ReportPath string `yaml:"reportPath"`

	S3  *S3Settings  `yaml:"s3"`
	GCS *GCSSettings `yaml:"gcs"`

	Reporting Reporting `yaml:"reporting"`
	Telemetry Telemetry `yaml:"telemetry"`
}

func (c *Config) setDefaults() {
	if c.MergeScope == "" {
		c.MergeScope = constants.GlobalScope
	}

	if c.Parallelism == 0 {
		c.Parallelism = constants.DefaultParallelism
	}

	if c.Delimiter == "" {
		c.Delimiter = constants.DefaultDelimiter
	}
}

// DelimiterRune should only be called after [Config.Validate].
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	bytes, err := os.ReadFile(pathToConfig)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Config) Validate() error {
	if c.Input == "" || c.Output == "" {
		return fmt.Errorf("input and output paths are required")
	}

	if c.Input == c.Output {
		return fmt.Errorf("output path must be different from input path: %q", c.Input)
	}

	if c.K <= 0 {
		return fmt.Errorf("k must be a positive integer, received: %d", c.K)
	}

	if !c.MergeScope.IsValid() {
		return fmt.Errorf("merge scope: %q is invalid", c.MergeScope)
	}

	if c.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive, received: %d", c.Parallelism)
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, received: %q", c.Delimiter)
	}

	if r := c.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("delimiter %q is not supported", c.Delimiter)
	}

	return nil
}
