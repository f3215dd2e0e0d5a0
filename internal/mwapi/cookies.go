package mwapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// storedCookie is the on-disk form of one session cookie. The jar only
// exposes name and value for matching cookies, which is all a session
// resume needs.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DefaultCookieFile returns the per-account cookie snapshot path under the
// user config directory.
func DefaultCookieFile(user string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	name := "cookies-" + strings.ToLower(strings.ReplaceAll(user, " ", "_")) + ".json"
	return filepath.Join(dir, "steward-tools", name), nil
}

// loadCookies restores a cookie snapshot into the jar.
func (c *Client) loadCookies() error {
	data, err := os.ReadFile(c.cookieFile)
	if err != nil {
		return err
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("parse %s: %w", c.cookieFile, err)
	}

	u, err := url.Parse(c.apiURL)
	if err != nil {
		return err
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		cookies = append(cookies, &http.Cookie{Name: s.Name, Value: s.Value})
	}
	c.httpClient.Jar.SetCookies(u, cookies)
	return nil
}

// saveCookies snapshots the jar's cookies for the API endpoint to disk,
// readable only by the owner.
func (c *Client) saveCookies() error {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return err
	}

	cookies := c.httpClient.Jar.Cookies(u)
	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{Name: ck.Name, Value: ck.Value})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.cookieFile), 0700); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(c.cookieFile, data, 0600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
