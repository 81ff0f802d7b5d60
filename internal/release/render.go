package release

import (
	"fmt"
	"strings"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/authors"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/categories"
	"github.com/glennawatson/GitReleaseNoteGenerator/internal/classify"
)

// Render produces the final markdown document. Known categories render in
// ascending priority order, then the fallback category, then any category
// the grouping produced that the definition table does not know about, so a
// table change can never drop commits from the document. Empty sections are
// omitted.
func Render(result *Result, defs []categories.Definition, version string) string {
	var b strings.Builder

	if version != "" {
		fmt.Fprintf(&b, "# %s\n\n", version)
	}

	b.WriteString("## 🗺️ What's Changed\n")

	grouped := make(map[string]classify.Group, len(result.Groups))
	for _, group := range result.Groups {
		grouped[group.Name] = group
	}

	rendered := make(map[string]bool, len(grouped))
	for _, def := range defs {
		if group, ok := grouped[def.Name]; ok {
			renderSection(&b, result, def.Emoji, group)
			rendered[def.Name] = true
		}
	}
	if group, ok := grouped[categories.FallbackName]; ok {
		renderSection(&b, result, categories.FallbackEmoji, group)
		rendered[categories.FallbackName] = true
	}
	for _, group := range result.Groups {
		if !rendered[group.Name] {
			renderSection(&b, result, "", group)
		}
	}

	fmt.Fprintf(&b, "\n🔗 **Full Changelog**: %s\n", changelogURL(result))

	b.WriteString("\n### 🙌 Contributions\n")

	newHumans := withoutBots(result.NewAuthors)
	if len(newHumans) > 0 {
		fmt.Fprintf(&b, "🌱 New contributors since the last release: %s\n", mentions(newHumans))
	}
	humans := withoutBots(result.AuthorsInWindow)
	if len(humans) > 0 {
		fmt.Fprintf(&b, "💖 Thanks to all the contributors: %s\n", mentions(humans))
	}

	if bots := onlyBots(result.AuthorsInWindow); len(bots) > 0 {
		fmt.Fprintf(&b, "\n🤖 Automated services that contributed: %s\n", mentions(bots))
	}

	return b.String()
}

func renderSection(b *strings.Builder, result *Result, emoji string, group classify.Group) {
	heading := group.Name
	if emoji != "" {
		heading = emoji + " " + group.Name
	}
	fmt.Fprintf(b, "\n### %s\n", heading)

	for _, classified := range group.Commits {
		fmt.Fprintf(b, " * %s/%s@%s %s", result.Owner, result.Repo, classified.Commit.SHA, classified.Commit.FirstLine())
		for _, author := range classified.Authors {
			fmt.Fprintf(b, " @%s", author)
		}
		b.WriteString("\n")
	}
}

// changelogURL links the compare view when the window has a base, else the
// plain commit history of the head ref.
func changelogURL(result *Result) string {
	if result.Window.EntireHistory() {
		return fmt.Sprintf("https://github.com/%s/%s/commits/%s", result.Owner, result.Repo, result.Window.HeadRef)
	}
	return fmt.Sprintf("https://github.com/%s/%s/compare/%s...%s", result.Owner, result.Repo, result.Window.BaseRef, result.Window.HeadRef)
}

func withoutBots(set *authors.Set) []string {
	var out []string
	for _, id := range set.Values() {
		if !authors.IsBot(id) {
			out = append(out, id)
		}
	}
	return out
}

func onlyBots(set *authors.Set) []string {
	var out []string
	for _, id := range set.Values() {
		if authors.IsBot(id) {
			out = append(out, id)
		}
	}
	return out
}

func mentions(ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "@" + id
	}
	return strings.Join(parts, ", ")
}
