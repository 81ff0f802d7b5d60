package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/model"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
)

// Client is a GitHub API client covering the commit-history surface the
// aggregator consumes.
type Client struct {
	baseURL    string
	httpClient *resty.Client
}

// NewClient creates a client against api.github.com. An empty token sends
// unauthenticated requests.
func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom API base URL.
func NewClientWithBaseURL(token, baseURL string) *Client {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetHeader("X-GitHub-Api-Version", "2022-11-28")

	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// GetRepository fetches repository metadata, including the default branch
// used when no head ref is configured.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (model.Repository, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return model.Repository{}, fmt.Errorf("get repository: %w", err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("repository %s/%s", owner, repo)); err != nil {
		return model.Repository{}, err
	}

	var ghRepo restRepository
	if err := json.Unmarshal(resp.Body(), &ghRepo); err != nil {
		return model.Repository{}, fmt.Errorf("parse repository response: %w", err)
	}

	return model.Repository{
		Owner:         ghRepo.Owner.Login,
		Name:          ghRepo.Name,
		DefaultBranch: ghRepo.DefaultBranch,
	}, nil
}

// LatestRelease fetches the most recent published release. A repository with
// no releases yet is an expected condition, reported as found == false
// rather than an error.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (model.Release, bool, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return model.Release{}, false, fmt.Errorf("get latest release: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return model.Release{}, false, nil
	}
	if err := c.checkStatus(resp, fmt.Sprintf("latest release of %s/%s", owner, repo)); err != nil {
		return model.Release{}, false, err
	}

	var ghRelease restRelease
	if err := json.Unmarshal(resp.Body(), &ghRelease); err != nil {
		return model.Release{}, false, fmt.Errorf("parse release response: %w", err)
	}
	return model.Release{TagName: ghRelease.TagName}, true, nil
}

// CompareRefs returns the commits reachable from head but not from base, in
// the order the API reports them.
func (c *Client) CompareRefs(ctx context.Context, owner, repo, base, head string) ([]model.Commit, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/compare/%s...%s", c.baseURL, owner, repo, base, head)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("per_page", "100").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("compare commits: %w", err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("compare %s...%s", base, head)); err != nil {
		return nil, err
	}

	var ghCompare restComparison
	if err := json.Unmarshal(resp.Body(), &ghCompare); err != nil {
		return nil, fmt.Errorf("parse compare response: %w", err)
	}
	return toModelCommits(ghCompare.Commits), nil
}

// ListCommits returns one page of the commit history reachable from ref.
// Pages are 1-based; an empty page means the history is exhausted.
func (c *Client) ListCommits(ctx context.Context, owner, repo, ref string, page, pageSize int) ([]model.Commit, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits", c.baseURL, owner, repo)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("sha", ref).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(pageSize)).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("list commits: %w", err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("commits of %s/%s@%s", owner, repo, ref)); err != nil {
		return nil, err
	}

	var ghCommits []restCommit
	if err := json.Unmarshal(resp.Body(), &ghCommits); err != nil {
		return nil, fmt.Errorf("parse commits response: %w", err)
	}
	return toModelCommits(ghCommits), nil
}

// checkStatus translates a non-success response into the error taxonomy:
// rate limits carry their reset instant, 404s are NotFoundError, and
// everything else is an APIError with the server's message.
func (c *Client) checkStatus(resp *resty.Response, resource string) error {
	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		return nil
	}

	if status == http.StatusNotFound {
		return &NotFoundError{Resource: resource}
	}

	if status == http.StatusTooManyRequests || (status == http.StatusForbidden && resp.Header().Get("X-RateLimit-Remaining") == "0") {
		reset := time.Now()
		if raw := resp.Header().Get("X-RateLimit-Reset"); raw != "" {
			if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
				reset = time.Unix(unix, 0)
			}
		}
		return &RateLimitError{Reset: reset}
	}

	var body restErrorBody
	_ = json.Unmarshal(resp.Body(), &body)
	return &APIError{StatusCode: status, Message: body.Message}
}
