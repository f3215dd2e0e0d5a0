package mwapi

import (
	"context"
	"fmt"
	"net/url"
)

// EditRequest describes one action=edit call.
type EditRequest struct {
	Title   string
	Text    string
	Summary string
	// MinorBot marks the edit minor and flags it as a bot edit.
	MinorBot bool
}

// Edit replaces the whole content of a page.
func (c *Client) Edit(ctx context.Context, req EditRequest) error {
	token, err := c.token(ctx, "csrf", "csrftoken")
	if err != nil {
		return fmt.Errorf("csrf token: %w", err)
	}

	params := url.Values{
		"action":  {"edit"},
		"title":   {req.Title},
		"text":    {req.Text},
		"summary": {req.Summary},
		"token":   {token},
	}
	if req.MinorBot {
		params.Set("minor", "1")
		params.Set("bot", "1")
	}

	r, err := c.post(ctx, params)
	if err != nil {
		return err
	}
	if r.Edit == nil || r.Edit.Result != "Success" {
		return fmt.Errorf("edit of %s not confirmed", req.Title)
	}
	return nil
}

// GlobalBlockRequest describes one action=globalblock call.
type GlobalBlockRequest struct {
	Target   string
	Unblock  bool
	AnonOnly bool
	Expiry   string
	Reason   string
	// Modify asks the remote end to replace an existing block. Passed
	// through as-is; whether it is enforced is up to the wiki.
	Modify bool
}

// GlobalBlock places or removes a global IP/range block.
func (c *Client) GlobalBlock(ctx context.Context, req GlobalBlockRequest) error {
	token, err := c.token(ctx, "csrf", "csrftoken")
	if err != nil {
		return fmt.Errorf("csrf token: %w", err)
	}

	params := url.Values{
		"action": {"globalblock"},
		"target": {req.Target},
		"reason": {req.Reason},
		"token":  {token},
	}
	if req.Unblock {
		params.Set("unblock", "1")
	} else {
		params.Set("expiry", req.Expiry)
		if req.AnonOnly {
			params.Set("anononly", "1")
		}
		if req.Modify {
			params.Set("modify", "1")
		}
	}

	_, err = c.post(ctx, params)
	return err
}

// AccountStatusRequest describes one action=setglobalaccountstatus call.
type AccountStatusRequest struct {
	User   string
	Lock   bool
	Hide   int // 0 none, 1 hidden from lists, 2 suppressed
	Reason string
}

// HiddenLevel maps a numeric hide level to the API's hidden parameter value.
// Levels above 2 are treated as 2.
func HiddenLevel(hide int) string {
	switch {
	case hide <= 0:
		return ""
	case hide == 1:
		return "lists"
	default:
		return "suppressed"
	}
}

// SetGlobalAccountStatus locks/unlocks a global account and sets its
// hide level.
func (c *Client) SetGlobalAccountStatus(ctx context.Context, req AccountStatusRequest) error {
	token, err := c.token(ctx, "csrf", "csrftoken")
	if err != nil {
		return fmt.Errorf("csrf token: %w", err)
	}

	locked := "unlock"
	if req.Lock {
		locked = "lock"
	}

	_, err = c.post(ctx, url.Values{
		"action": {"setglobalaccountstatus"},
		"user":   {req.User},
		"locked": {locked},
		"hidden": {HiddenLevel(req.Hide)},
		"reason": {req.Reason},
		"token":  {token},
	})
	return err
}
