package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/lib/stringutil"
)

type Settings struct {
	Config         Config
	VerboseLogging bool
}

type options struct {
	ConfigFilePath string `short:"c" long:"config" description:"path to the config file"`
	Verbose        bool   `short:"v" long:"verbose" description:"debug logging" optional:"true"`
	Input          string `short:"i" long:"input" description:"path of the dataset to anonymize, local, s3:// or gs://"`
	Output         string `short:"o" long:"output" description:"path to write the anonymized dataset to, local, s3:// or gs://"`
	K              int    `short:"k" long:"k-anonymity" description:"minimum number of records that must share each quasi-identifier combination"`
	Scope          string `long:"scope" description:"how undersized months are merged" choice:"global" choice:"bucket"`
	ReportPath     string `long:"report" description:"optional path to write a JSON run report to"`
}

// LoadSettings will parse the flags, read the optional config file and let any flag override the file.
func LoadSettings(args []string) (*Settings, error) {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	var config Config
	if opts.ConfigFilePath != "" {
		fileConfig, err := readFileToConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		config = *fileConfig
	}

	config.Input = stringutil.Override(config.Input, opts.Input)
	config.Output = stringutil.Override(config.Output, opts.Output)
	config.ReportPath = stringutil.Override(config.ReportPath, opts.ReportPath)
	config.MergeScope = constants.MergeScope(stringutil.Override(string(config.MergeScope), opts.Scope))
	if opts.K != 0 {
		config.K = opts.K
	}

	config.setDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &Settings{
		Config:         config,
		VerboseLogging: opts.Verbose,
	}, nil
}
