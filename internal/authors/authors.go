package authors

import (
	"strings"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/model"
)

const (
	// Unknown stands in for commits with no usable identity at all.
	Unknown = "unknown"

	botMarker       = "[bot]"
	coAuthorTrailer = "co-authored-by:"
)

// Extract resolves every identity that contributed to a commit: the primary
// author (first of author login, committer login, author name, committer
// name that is non-blank) plus one identity per Co-authored-by trailer in
// the message body.
func Extract(c model.Commit) *Set {
	set := NewSet()
	set.Add(primary(c))

	msg := strings.ReplaceAll(c.Message, "\r\n", "\n")
	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < len(coAuthorTrailer) {
			continue
		}
		if !strings.EqualFold(line[:len(coAuthorTrailer)], coAuthorTrailer) {
			continue
		}
		set.Add(Normalize(line[len(coAuthorTrailer):]))
	}
	return set
}

func primary(c model.Commit) string {
	for _, raw := range []string{c.AuthorLogin, c.CommitterLogin, c.AuthorName, c.CommitterName} {
		if id := Normalize(raw); id != Unknown {
			return id
		}
	}
	return Unknown
}

// Normalize turns a raw author string into a comparable identity token: the
// email part (everything from the first '<') is dropped and all whitespace
// removed. Blank input normalizes to Unknown.
func Normalize(raw string) string {
	if i := strings.IndexByte(raw, '<'); i >= 0 {
		raw = raw[:i]
	}
	id := strings.Join(strings.Fields(raw), "")
	if id == "" {
		return Unknown
	}
	return id
}

// IsBot reports whether an identity belongs to an automated account.
func IsBot(identity string) bool {
	return strings.Contains(strings.ToLower(identity), botMarker)
}
