// Package mwapi is a minimal MediaWiki web API client covering the calls the
// steward tools need: login and session checks, page edits, global IP blocks
// and global account locks. Every write action fetches a CSRF token first.
package mwapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const defaultAPIPath = "/w/api.php"

// Client talks to one wiki's api.php endpoint. Session cookies live in the
// attached jar and can be snapshotted to disk between invocations.
type Client struct {
	host       string
	apiURL     string
	apiPath    string
	userAgent  string
	cookieFile string
	httpClient *http.Client
	debugf     func(format string, args ...any)
}

// Option configures a Client during construction.
type Option func(*Client)

// WithAPIPath overrides the api.php path for wikis not hosted under /w/.
func WithAPIPath(path string) Option {
	return func(c *Client) { c.apiPath = path }
}

// WithCookieFile enables cookie snapshot persistence at the given path.
func WithCookieFile(path string) Option {
	return func(c *Client) { c.cookieFile = path }
}

// WithDebug routes request diagnostics to fn.
func WithDebug(fn func(format string, args ...any)) Option {
	return func(c *Client) { c.debugf = fn }
}

// WithUserAgent overrides the default User-Agent string.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a Client for the given wiki host. A bare host becomes
// https://<host><apiPath>; a full http(s) URL is used as the endpoint base,
// which lets tests point a Client at a local server.
func New(host string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("mwapi: empty host")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("mwapi: cookie jar: %w", err)
	}

	c := &Client{
		host:      host,
		apiPath:   defaultAPIPath,
		userAgent: "steward-tools/1.0 (https://github.com/CodexForgeBR/steward-tools)",
		debugf:    func(string, ...any) {},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if strings.Contains(host, "://") {
		c.apiURL = strings.TrimSuffix(host, "/") + c.apiPath
	} else {
		c.apiURL = "https://" + host + c.apiPath
	}
	if _, err := url.Parse(c.apiURL); err != nil {
		return nil, fmt.Errorf("mwapi: endpoint %s: %w", c.apiURL, err)
	}

	if c.cookieFile != "" {
		if err := c.loadCookies(); err != nil {
			// A missing or stale snapshot only means no cached session.
			c.debugf("cookie snapshot not loaded: %v", err)
		}
	}

	return c, nil
}

// Host returns the wiki host the client was built for.
func (c *Client) Host() string {
	return c.host
}

// Error is a MediaWiki API error envelope.
type Error struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Info)
}

type loginResult struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

type userInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Anon bool   `json:"anon"`
}

type queryResult struct {
	UserInfo *userInfo         `json:"userinfo"`
	Tokens   map[string]string `json:"tokens"`
}

type editResult struct {
	Result string `json:"result"`
}

type response struct {
	Error *Error       `json:"error"`
	Login *loginResult `json:"login"`
	Query *queryResult `json:"query"`
	Edit  *editResult  `json:"edit"`
}

// post submits one form-encoded api.php request and decodes the JSON
// envelope. An error payload in the envelope is returned as *Error.
func (c *Client) post(ctx context.Context, params url.Values) (*response, error) {
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	c.debugf("POST %s action=%s", c.apiURL, params.Get("action"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", params.Get("action"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s: unexpected status %d", params.Get("action"), resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if r.Error != nil {
		return nil, r.Error
	}
	return &r, nil
}

// LoggedIn reports whether the current session cookies authenticate as user.
func (c *Client) LoggedIn(ctx context.Context, user string) (bool, error) {
	r, err := c.post(ctx, url.Values{
		"action": {"query"},
		"meta":   {"userinfo"},
	})
	if err != nil {
		return false, err
	}
	if r.Query == nil || r.Query.UserInfo == nil {
		return false, nil
	}
	ui := r.Query.UserInfo
	return !ui.Anon && strings.EqualFold(ui.Name, user), nil
}

// Login performs the two-step action=login token handshake and, on success,
// snapshots the session cookies when a cookie file is configured.
func (c *Client) Login(ctx context.Context, user, password string) error {
	token, err := c.token(ctx, "login", "logintoken")
	if err != nil {
		return fmt.Errorf("login token: %w", err)
	}

	r, err := c.post(ctx, url.Values{
		"action":     {"login"},
		"lgname":     {user},
		"lgpassword": {password},
		"lgtoken":    {token},
	})
	if err != nil {
		return err
	}
	if r.Login == nil || r.Login.Result != "Success" {
		result := "no result"
		if r.Login != nil {
			result = r.Login.Result
			if r.Login.Reason != "" {
				result += ": " + r.Login.Reason
			}
		}
		return fmt.Errorf("login failed (%s)", result)
	}

	if c.cookieFile != "" {
		if err := c.saveCookies(); err != nil {
			c.debugf("cookie snapshot not saved: %v", err)
		}
	}
	return nil
}

// token fetches a token of the given type (meta=tokens).
func (c *Client) token(ctx context.Context, typ, field string) (string, error) {
	r, err := c.post(ctx, url.Values{
		"action": {"query"},
		"meta":   {"tokens"},
		"type":   {typ},
	})
	if err != nil {
		return "", err
	}
	if r.Query == nil || r.Query.Tokens[field] == "" {
		return "", fmt.Errorf("no %s in response", field)
	}
	return r.Query.Tokens[field], nil
}
