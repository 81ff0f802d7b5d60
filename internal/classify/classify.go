package classify

import (
	"sort"
	"strings"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/authors"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/categories"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/model"
)

// Classifier assigns commits to categories. Commits authored by a known bot
// login are categorized by that override alone; everything else is matched
// on its message prefix.
type Classifier struct {
	index     *categories.Index
	overrides map[string]string
}

// NewClassifier builds a classifier over the given index. The override table
// maps bot logins (case-insensitive) to a registered prefix, so bot rules
// resolve through the same priority table as message prefixes.
func NewClassifier(index *categories.Index, overrides map[string]string) *Classifier {
	folded := make(map[string]string, len(overrides))
	for login, key := range overrides {
		folded[strings.ToLower(login)] = key
	}
	return &Classifier{index: index, overrides: folded}
}

// DefaultBotOverrides maps well-known automation accounts to the prefix key
// that carries their category.
func DefaultBotOverrides() map[string]string {
	return map[string]string{
		"dependabot[bot]":     "deps",
		"renovate[bot]":       "deps",
		"github-actions[bot]": "ci",
	}
}

// Classify resolves a commit's category and priority.
func (c *Classifier) Classify(commit model.Commit) (int, string) {
	login := commit.AuthorLogin
	if login == "" {
		login = commit.CommitterLogin
	}
	if login != "" {
		if key, ok := c.overrides[strings.ToLower(login)]; ok {
			return c.index.Lookup(key)
		}
	}
	return c.index.Lookup(commit.Message)
}

// Group is one category's commits in the order they were classified.
type Group struct {
	Name     string
	Priority int
	Commits  []model.ClassifiedCommit
}

// GroupCommits classifies every commit and partitions the results by
// category, returning groups in ascending priority order. Commits keep their
// input order within a group; the sort is stable so equal priorities keep
// first-appearance order rather than map iteration order.
func (c *Classifier) GroupCommits(commits []model.Commit) []Group {
	var order []*Group
	byName := make(map[string]*Group)

	for _, commit := range commits {
		priority, category := c.Classify(commit)
		classified := model.ClassifiedCommit{
			Commit:   commit,
			Category: category,
			Priority: priority,
			Authors:  authors.Extract(commit).Values(),
		}
		group, ok := byName[category]
		if !ok {
			group = &Group{Name: category, Priority: priority}
			byName[category] = group
			order = append(order, group)
		}
		group.Commits = append(group.Commits, classified)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Priority < order[j].Priority
	})

	groups := make([]Group, len(order))
	for i, g := range order {
		groups[i] = *g
	}
	return groups
}
