package categories

// Definition describes one release-note category: where it sorts (lower
// priority renders earlier) and which lowercase message prefixes select it.
type Definition struct {
	Name     string
	Emoji    string
	Priority int
	Prefixes []string
}

// Fallback values for commits whose message matches no registered prefix.
const (
	FallbackName  = "Other"
	FallbackEmoji = "💬"

	// MaxPriority sorts the fallback after every registered category.
	MaxPriority = int(^uint32(0) >> 1)
)

// DefaultDefinitions returns the built-in category table. No registered
// prefix may be a proper prefix of another registered prefix; Lookup order
// is unspecified if that rule is broken.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: "Security", Emoji: "🔒", Priority: 1, Prefixes: []string{"security"}},
		{Name: "Features", Emoji: "🚀", Priority: 2, Prefixes: []string{"feat"}},
		{Name: "Performance", Emoji: "⚡", Priority: 3, Prefixes: []string{"perf"}},
		{Name: "Fixes", Emoji: "🐛", Priority: 4, Prefixes: []string{"fix", "bug", "hotfix"}},
		{Name: "Documentation", Emoji: "📖", Priority: 5, Prefixes: []string{"doc"}},
		{Name: "Dependencies", Emoji: "📦", Priority: 6, Prefixes: []string{"deps", "dep:", "bump", "upgrade"}},
		{Name: "Maintenance", Emoji: "🔧", Priority: 7, Prefixes: []string{"chore", "refactor", "ci", "test", "style", "build"}},
	}
}
