package release

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/authors"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/classify"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/fetch"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/model"
)

const (
	historyPageSize = 100

	// historyPageCap bounds the walk over pre-window history. Hitting it
	// degrades the author diff instead of failing the run.
	historyPageCap = 500
)

// Provider is the commit-history capability the aggregator consumes,
// typically backed by the GitHub REST client.
type Provider interface {
	GetRepository(ctx context.Context, owner, repo string) (model.Repository, error)
	LatestRelease(ctx context.Context, owner, repo string) (model.Release, bool, error)
	CompareRefs(ctx context.Context, owner, repo, base, head string) ([]model.Commit, error)
	ListCommits(ctx context.Context, owner, repo, ref string, page, pageSize int) ([]model.Commit, error)
}

// Result is everything one aggregation run produced, handed to the renderer.
type Result struct {
	Owner  string
	Repo   string
	Window model.ReleaseWindow

	Groups          []classify.Group
	AuthorsInWindow *authors.Set
	AuthorsBefore   *authors.Set
	NewAuthors      *authors.Set
}

// Aggregator drives one release-note generation run: resolve the window,
// fetch its commits and the history before it, classify, and diff authors.
type Aggregator struct {
	provider   Provider
	classifier *classify.Classifier
	log        logrus.FieldLogger
}

func NewAggregator(provider Provider, classifier *classify.Classifier, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{provider: provider, classifier: classifier, log: log}
}

type latestRelease struct {
	release model.Release
	found   bool
}

// Aggregate runs the pipeline for owner/repo. Empty baseRef falls back to
// the latest release tag, or to the entire history when no release exists;
// empty headRef falls back to the repository's default branch. Any
// unrecovered fetch failure aborts the run with no partial result.
func (a *Aggregator) Aggregate(ctx context.Context, owner, repo, baseRef, headRef string) (*Result, error) {
	window, err := a.resolveWindow(ctx, owner, repo, baseRef, headRef)
	if err != nil {
		return nil, err
	}

	commits, err := a.windowCommits(ctx, owner, repo, window)
	if err != nil {
		return nil, err
	}

	inWindow := authors.NewSet()
	for _, commit := range commits {
		inWindow.AddAll(authors.Extract(commit))
	}

	before, err := a.authorsBefore(ctx, owner, repo, window)
	if err != nil {
		return nil, err
	}

	return &Result{
		Owner:           owner,
		Repo:            repo,
		Window:          window,
		Groups:          a.classifier.GroupCommits(commits),
		AuthorsInWindow: inWindow,
		AuthorsBefore:   before,
		NewAuthors:      inWindow.Diff(before),
	}, nil
}

func (a *Aggregator) resolveWindow(ctx context.Context, owner, repo, baseRef, headRef string) (model.ReleaseWindow, error) {
	if baseRef == "" {
		latest, err := fetch.Do(ctx, a.log, "latest release", func() (latestRelease, error) {
			rel, found, err := a.provider.LatestRelease(ctx, owner, repo)
			return latestRelease{release: rel, found: found}, err
		})
		if err != nil {
			return model.ReleaseWindow{}, fmt.Errorf("resolve base ref: %w", err)
		}
		if latest.found {
			baseRef = latest.release.TagName
		} else {
			a.log.WithFields(logrus.Fields{"owner": owner, "repo": repo}).
				Info("no prior release; covering entire history")
		}
	}

	if headRef == "" {
		repository, err := fetch.Do(ctx, a.log, "repository", func() (model.Repository, error) {
			return a.provider.GetRepository(ctx, owner, repo)
		})
		if err != nil {
			return model.ReleaseWindow{}, fmt.Errorf("resolve head ref: %w", err)
		}
		headRef = repository.DefaultBranch
	}

	return model.ReleaseWindow{BaseRef: baseRef, HeadRef: headRef}, nil
}

func (a *Aggregator) windowCommits(ctx context.Context, owner, repo string, window model.ReleaseWindow) ([]model.Commit, error) {
	if !window.EntireHistory() {
		commits, err := fetch.Do(ctx, a.log, "compare refs", func() ([]model.Commit, error) {
			return a.provider.CompareRefs(ctx, owner, repo, window.BaseRef, window.HeadRef)
		})
		if err != nil {
			return nil, fmt.Errorf("fetch window commits: %w", err)
		}
		return commits, nil
	}

	commits, err := a.paginateHistory(ctx, owner, repo, window.HeadRef, func(page []model.Commit) {})
	if err != nil {
		return nil, fmt.Errorf("fetch window commits: %w", err)
	}
	return commits, nil
}

// authorsBefore accumulates the identities of everything reachable from the
// base ref. With no base ref nothing preceded the window and the set is
// empty.
func (a *Aggregator) authorsBefore(ctx context.Context, owner, repo string, window model.ReleaseWindow) (*authors.Set, error) {
	before := authors.NewSet()
	if window.EntireHistory() {
		return before, nil
	}

	_, err := a.paginateHistory(ctx, owner, repo, window.BaseRef, func(page []model.Commit) {
		for _, commit := range page {
			before.AddAll(authors.Extract(commit))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("fetch historical authors: %w", err)
	}
	return before, nil
}

func (a *Aggregator) paginateHistory(ctx context.Context, owner, repo, ref string, visit func(page []model.Commit)) ([]model.Commit, error) {
	var all []model.Commit
	for page := 1; ; page++ {
		if page > historyPageCap {
			a.log.WithFields(logrus.Fields{
				"ref":       ref,
				"page_cap":  historyPageCap,
				"page_size": historyPageSize,
			}).Warn("commit history page cap reached; older history not examined")
			break
		}

		name := fmt.Sprintf("commits page %d", page)
		commits, err := fetch.Do(ctx, a.log, name, func() ([]model.Commit, error) {
			return a.provider.ListCommits(ctx, owner, repo, ref, page, historyPageSize)
		})
		if err != nil {
			return nil, err
		}
		if len(commits) == 0 {
			break
		}

		visit(commits)
		all = append(all, commits...)

		if len(commits) < historyPageSize {
			break
		}
	}
	return all, nil
}
