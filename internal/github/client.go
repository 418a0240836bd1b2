package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultRepoLimit = 20
	defaultUserAgent = "ghstats"
)

// ClientOptions configures a Client. The zero value talks to api.github.com anonymously.
type ClientOptions struct {
	BaseURL   string
	Token     string
	UserAgent string
	Timeout   time.Duration
	RepoLimit int
}

// Client is a minimal read-only GitHub REST client.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
	repoLimit int
}

func NewClient(opts ClientOptions) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	limit := opts.RepoLimit
	if limit <= 0 {
		limit = DefaultRepoLimit
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL:   base,
		token:     strings.TrimSpace(opts.Token),
		userAgent: ua,
		repoLimit: limit,
	}
}

// GetUser fetches a user by login.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/"+url.PathEscape(login), nil, &user); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user %s: %w", login, err)
	}
	return &user, nil
}

// ListRepos returns up to limit repositories of a user, most recently updated first.
// A non-positive limit uses the client default.
func (c *Client) ListRepos(ctx context.Context, login string, limit int) ([]Repository, error) {
	if limit <= 0 {
		limit = c.repoLimit
	}
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(limit))

	var repos []Repository
	if err := c.get(ctx, "/users/"+url.PathEscape(login)+"/repos", q, &repos); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("repositories of %s: %w", login, err)
	}
	return repos, nil
}

// GetRepo fetches a single repository.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (*Repository, error) {
	var r Repository
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)
	if err := c.get(ctx, path, nil, &r); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrRepoNotFound
		}
		return nil, fmt.Errorf("repository %s/%s: %w", owner, repo, err)
	}
	return &r, nil
}

// FetchProfile loads a user and their repositories concurrently.
func (c *Client) FetchProfile(ctx context.Context, login string) (*Profile, error) {
	var (
		user  *User
		repos []Repository
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = c.GetUser(gctx, login)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = c.ListRepos(gctx, login, c.repoLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Profile{User: *user, Repos: repos}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode github response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
