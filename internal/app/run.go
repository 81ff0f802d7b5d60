package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/categories"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/classify"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/config"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/github"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/release"
)

// Run orchestrates the full workflow: config -> GitHub client -> aggregation
// -> rendered markdown on stdout or the output file.
func Run(opts Options) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg = mergeFlags(cfg, opts)

	if cfg.Owner == "" || cfg.Repo == "" {
		return errors.New("repository owner and name are required (flags or config file)")
	}

	client := github.NewClient(cfg.Token)
	if cfg.BaseURL != "" {
		client = github.NewClientWithBaseURL(cfg.Token, cfg.BaseURL)
	}

	defs := categories.DefaultDefinitions()
	index := categories.NewIndex(defs)
	classifier := classify.NewClassifier(index, classify.DefaultBotOverrides())
	aggregator := release.NewAggregator(client, classifier, log)

	result, err := aggregator.Aggregate(context.Background(), cfg.Owner, cfg.Repo, cfg.BaseRef, cfg.HeadRef)
	if err != nil {
		return fmt.Errorf("generate release notes: %w", err)
	}

	document := release.Render(result, defs, cfg.Version)

	if opts.OutputPath == "" {
		_, err = fmt.Fprint(os.Stdout, document)
		return err
	}
	if err := os.WriteFile(opts.OutputPath, []byte(document), 0o644); err != nil {
		return fmt.Errorf("write release notes: %w", err)
	}
	return nil
}

func mergeFlags(cfg config.Config, opts Options) config.Config {
	if opts.Owner != "" {
		cfg.Owner = opts.Owner
	}
	if opts.Repo != "" {
		cfg.Repo = opts.Repo
	}
	if opts.BaseRef != "" {
		cfg.BaseRef = opts.BaseRef
	}
	if opts.HeadRef != "" {
		cfg.HeadRef = opts.HeadRef
	}
	if opts.Version != "" {
		cfg.Version = opts.Version
	}
	return cfg
}
