package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/categories"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/model"
)

func newTestClassifier() *Classifier {
	index := categories.NewIndex(categories.DefaultDefinitions())
	return NewClassifier(index, DefaultBotOverrides())
}

func TestClassifyByMessagePrefix(t *testing.T) {
	classifier := newTestClassifier()

	priority, name := classifier.Classify(model.Commit{Message: "feat: add button", AuthorLogin: "alice"})
	assert.Equal(t, 2, priority)
	assert.Equal(t, "Features", name)
}

func TestClassifyBotOverrideIgnoresMessage(t *testing.T) {
	classifier := newTestClassifier()

	commit := model.Commit{Message: "bump deps", AuthorLogin: "dependabot[bot]"}
	_, name := classifier.Classify(commit)
	assert.Equal(t, "Dependencies", name)

	// Same result however unhelpful the message is.
	commit.Message = "a totally unrelated subject"
	_, name = classifier.Classify(commit)
	assert.Equal(t, "Dependencies", name)
}

func TestClassifyBotOverrideIsCaseInsensitive(t *testing.T) {
	classifier := newTestClassifier()

	_, name := classifier.Classify(model.Commit{Message: "whatever", CommitterLogin: "Dependabot[Bot]"})
	assert.Equal(t, "Dependencies", name)
}

func TestClassifyUnmatchedFallsBack(t *testing.T) {
	classifier := newTestClassifier()

	priority, name := classifier.Classify(model.Commit{Message: "merge branch main", AuthorLogin: "alice"})
	assert.Equal(t, categories.MaxPriority, priority)
	assert.Equal(t, categories.FallbackName, name)
}

func TestGroupCommitsOrdersByAscendingPriority(t *testing.T) {
	classifier := newTestClassifier()

	commits := []model.Commit{
		{SHA: "1", Message: "fix: first bug", AuthorLogin: "alice"},
		{SHA: "2", Message: "fix: second bug", AuthorLogin: "bob"},
		{SHA: "3", Message: "feat: shiny", AuthorLogin: "carol"},
	}

	groups := classifier.GroupCommits(commits)
	require.Len(t, groups, 2)

	// Features (priority 2) renders before Fixes (priority 4) even though
	// Fixes holds more commits.
	assert.Equal(t, "Features", groups[0].Name)
	require.Len(t, groups[0].Commits, 1)
	assert.Equal(t, "Fixes", groups[1].Name)
	require.Len(t, groups[1].Commits, 2)

	// Input order is preserved within a group.
	assert.Equal(t, "1", groups[1].Commits[0].Commit.SHA)
	assert.Equal(t, "2", groups[1].Commits[1].Commit.SHA)
}

func TestGroupCommitsPartitionsEveryCommit(t *testing.T) {
	classifier := newTestClassifier()

	commits := []model.Commit{
		{SHA: "1", Message: "feat: a"},
		{SHA: "2", Message: "nothing matching"},
		{SHA: "3", Message: "docs: readme"},
		{SHA: "4", Message: "perf: faster"},
	}

	groups := classifier.GroupCommits(commits)

	seen := make(map[string]int)
	total := 0
	for _, group := range groups {
		for _, classified := range group.Commits {
			seen[classified.Commit.SHA]++
			total++
		}
	}
	assert.Equal(t, len(commits), total)
	for _, commit := range commits {
		assert.Equal(t, 1, seen[commit.SHA], "commit %s", commit.SHA)
	}

	for i := 1; i < len(groups); i++ {
		assert.Less(t, groups[i-1].Priority, groups[i].Priority)
	}
}

func TestGroupCommitsAttachesAuthors(t *testing.T) {
	classifier := newTestClassifier()

	commits := []model.Commit{{
		SHA:         "1",
		Message:     "feat: pairing\n\nCo-authored-by: Jane <jane@x.com>",
		AuthorLogin: "alice",
	}}

	groups := classifier.GroupCommits(commits)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Commits, 1)
	assert.Equal(t, []string{"alice", "Jane"}, groups[0].Commits[0].Authors)
}
