package release

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/authors"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/categories"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/classify"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/model"
)

func renderFixture() *Result {
	return &Result{
		Owner:  "octo",
		Repo:   "widgets",
		Window: model.ReleaseWindow{BaseRef: "v1.0.0", HeadRef: "main"},
		Groups: []classify.Group{
			{
				Name:     "Features",
				Priority: 2,
				Commits: []model.ClassifiedCommit{{
					Commit:   model.Commit{SHA: "abc123", Message: "feat: add button\n\nbody"},
					Category: "Features",
					Priority: 2,
					Authors:  []string{"alice", "Jane"},
				}},
			},
			{
				Name:     "Fixes",
				Priority: 4,
				Commits: []model.ClassifiedCommit{{
					Commit:   model.Commit{SHA: "def456", Message: "fix: broken link"},
					Category: "Fixes",
					Priority: 4,
					Authors:  []string{"newbie"},
				}},
			},
		},
		AuthorsInWindow: authors.NewSet("alice", "Jane", "newbie", "dependabot[bot]"),
		AuthorsBefore:   authors.NewSet("alice", "Jane"),
		NewAuthors:      authors.NewSet("newbie"),
	}
}

func TestRenderDocumentStructure(t *testing.T) {
	doc := Render(renderFixture(), categories.DefaultDefinitions(), "")

	assert.Contains(t, doc, "## 🗺️ What's Changed\n")
	assert.Contains(t, doc, "### 🚀 Features\n")
	assert.Contains(t, doc, " * octo/widgets@abc123 feat: add button @alice @Jane\n")
	assert.Contains(t, doc, "### 🐛 Fixes\n")
	assert.Contains(t, doc, " * octo/widgets@def456 fix: broken link @newbie\n")
	assert.Contains(t, doc, "🔗 **Full Changelog**: https://github.com/octo/widgets/compare/v1.0.0...main\n")
	assert.Contains(t, doc, "### 🙌 Contributions\n")
	assert.Contains(t, doc, "🌱 New contributors since the last release: @newbie\n")
	assert.Contains(t, doc, "💖 Thanks to all the contributors: @alice, @Jane, @newbie\n")
	assert.Contains(t, doc, "🤖 Automated services that contributed: @dependabot[bot]\n")

	// Features (priority 2) renders before Fixes (priority 4).
	assert.Less(t, strings.Index(doc, "### 🚀 Features"), strings.Index(doc, "### 🐛 Fixes"))
}

func TestRenderVersionHeading(t *testing.T) {
	doc := Render(renderFixture(), categories.DefaultDefinitions(), "v1.1.0")
	assert.True(t, strings.HasPrefix(doc, "# v1.1.0\n\n"))
}

func TestRenderOmitsEmptySections(t *testing.T) {
	result := renderFixture()
	result.Groups = result.Groups[:1]
	result.NewAuthors = authors.NewSet()
	result.AuthorsInWindow = authors.NewSet("alice")

	doc := Render(result, categories.DefaultDefinitions(), "")

	assert.NotContains(t, doc, "### 🐛 Fixes")
	assert.NotContains(t, doc, "🌱 New contributors")
	assert.NotContains(t, doc, "🤖 Automated services")
	assert.Contains(t, doc, "💖 Thanks to all the contributors: @alice\n")
}

func TestRenderHistoryURLWithoutBase(t *testing.T) {
	result := renderFixture()
	result.Window = model.ReleaseWindow{HeadRef: "main"}

	doc := Render(result, categories.DefaultDefinitions(), "")
	assert.Contains(t, doc, "🔗 **Full Changelog**: https://github.com/octo/widgets/commits/main\n")
}

func TestRenderFallbackAndUnexpectedCategoriesLast(t *testing.T) {
	result := renderFixture()
	result.Groups = append(result.Groups,
		classify.Group{
			Name:     categories.FallbackName,
			Priority: categories.MaxPriority,
			Commits: []model.ClassifiedCommit{{
				Commit:  model.Commit{SHA: "x1", Message: "misc change"},
				Authors: []string{"alice"},
			}},
		},
		classify.Group{
			Name:     "Surprise",
			Priority: 99,
			Commits: []model.ClassifiedCommit{{
				Commit:  model.Commit{SHA: "x2", Message: "surprise: change"},
				Authors: []string{"alice"},
			}},
		},
	)

	doc := Render(result, categories.DefaultDefinitions(), "")

	otherAt := strings.Index(doc, "### 💬 Other")
	surpriseAt := strings.Index(doc, "### Surprise")
	fixesAt := strings.Index(doc, "### 🐛 Fixes")
	require.True(t, otherAt > 0 && surpriseAt > 0 && fixesAt > 0)

	// Known categories, then the fallback, then anything the table does
	// not know about.
	assert.Less(t, fixesAt, otherAt)
	assert.Less(t, otherAt, surpriseAt)
}
