package app

import "path/filepath"

// Options collect validated inputs for running the CLI.
type Options struct {
	Owner      string
	Repo       string
	BaseRef    string
	HeadRef    string
	Version    string
	ConfigPath string
	OutputPath string
	Verbose    bool
}

// FlagValues mirrors the command-line flags so we can keep parsing/validation
// in one place.
type FlagValues struct {
	Owner      string
	Repo       string
	BaseRef    string
	HeadRef    string
	Version    string
	ConfigPath string
	OutputPath string
	Verbose    bool
}

// OptionsFromFlags resolves flag values into run options. Owner and repo may
// still come from the config file, so required-value checks happen after the
// config is merged in Run.
func OptionsFromFlags(f FlagValues) (Options, error) {
	opts := Options{
		Owner:   f.Owner,
		Repo:    f.Repo,
		BaseRef: f.BaseRef,
		HeadRef: f.HeadRef,
		Version: f.Version,
		Verbose: f.Verbose,
	}

	if f.ConfigPath != "" {
		opts.ConfigPath = filepath.Clean(f.ConfigPath)
	}
	if f.OutputPath != "" {
		opts.OutputPath = filepath.Clean(f.OutputPath)
	}

	return opts, nil
}
