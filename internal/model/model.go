package model

import "strings"

// Commit is the subset of a remote commit the pipeline consumes. Login fields
// come from the hosting service account; name fields come from the raw git
// metadata and may be present when the logins are not.
type Commit struct {
	SHA            string
	Message        string
	AuthorLogin    string
	CommitterLogin string
	AuthorName     string
	CommitterName  string
}

// FirstLine returns the subject line of the commit message.
func (c Commit) FirstLine() string {
	msg := strings.ReplaceAll(c.Message, "\r\n", "\n")
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}

// Repository carries the repository metadata the aggregator needs.
type Repository struct {
	Owner         string
	Name          string
	DefaultBranch string
}

// Release is a published release tag.
type Release struct {
	TagName string
}

// ReleaseWindow is the commit range a document covers. An empty BaseRef means
// no prior release exists and the window spans the entire reachable history.
type ReleaseWindow struct {
	BaseRef string
	HeadRef string
}

// EntireHistory reports whether the window has no lower bound.
func (w ReleaseWindow) EntireHistory() bool {
	return w.BaseRef == ""
}

// ClassifiedCommit pairs a commit with its resolved category and the
// normalized identities that contributed to it. Built once during
// classification and never mutated afterwards.
type ClassifiedCommit struct {
	Commit   Commit
	Category string
	Priority int
	Authors  []string
}
