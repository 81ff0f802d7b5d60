package github

import "github.com/glennawatson/GitReleaseNoteGenerator/internal/model"

// Wire shapes for the handful of REST responses the client consumes.

type restActor struct {
	Login string `json:"login"`
}

type restGitUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type restCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message   string      `json:"message"`
		Author    restGitUser `json:"author"`
		Committer restGitUser `json:"committer"`
	} `json:"commit"`
	Author    *restActor `json:"author"`
	Committer *restActor `json:"committer"`
}

func (rc restCommit) toModel() model.Commit {
	commit := model.Commit{
		SHA:           rc.SHA,
		Message:       rc.Commit.Message,
		AuthorName:    rc.Commit.Author.Name,
		CommitterName: rc.Commit.Committer.Name,
	}
	if rc.Author != nil {
		commit.AuthorLogin = rc.Author.Login
	}
	if rc.Committer != nil {
		commit.CommitterLogin = rc.Committer.Login
	}
	return commit
}

func toModelCommits(rcs []restCommit) []model.Commit {
	commits := make([]model.Commit, len(rcs))
	for i, rc := range rcs {
		commits[i] = rc.toModel()
	}
	return commits
}

type restRepository struct {
	Name          string `json:"name"`
	DefaultBranch string `json:"default_branch"`
	Owner         struct {
		Login string `json:"login"`
	} `json:"owner"`
}

type restRelease struct {
	TagName string `json:"tag_name"`
}

type restComparison struct {
	TotalCommits int          `json:"total_commits"`
	Commits      []restCommit `json:"commits"`
}

type restErrorBody struct {
	Message string `json:"message"`
}
