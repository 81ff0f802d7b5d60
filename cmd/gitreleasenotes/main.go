package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/app"
)

func main() {
	var (
		owner      = flag.String("owner", "", "repository owner")
		repo       = flag.String("repo", "", "repository name")
		baseRef    = flag.String("base-ref", "", "base ref (default: latest release tag, or entire history)")
		headRef    = flag.String("head-ref", "", "head ref (default: repository default branch)")
		version    = flag.String("version", "", "version heading for the document")
		configPath = flag.String("config", "", "optional YAML config file")
		outputPath = flag.String("output", "", "write the document to this file instead of stdout")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gitreleasenotes - categorized, attributed release notes from GitHub commit history\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s -owner <owner> -repo <repo> [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nThe GITHUB_TOKEN environment variable supplies the API token.\n")
	}
	flag.Parse()

	opts, err := app.OptionsFromFlags(app.FlagValues{
		Owner:      *owner,
		Repo:       *repo,
		BaseRef:    *baseRef,
		HeadRef:    *headRef,
		Version:    *version,
		ConfigPath: *configPath,
		OutputPath: *outputPath,
		Verbose:    *verbose,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := app.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
