// Package auth resolves the account credentials for one run and performs
// the ordered login fallback: cached session cookies first, password second.
package auth

import (
	"fmt"

	"github.com/CodexForgeBR/steward-tools/internal/config"
)

// Mode selects which login method to try first.
type Mode int

const (
	// ModeCookie prefers a cached session. Chosen when neither username
	// nor password was supplied on the command line.
	ModeCookie Mode = iota
	// ModePassword goes straight to password login.
	ModePassword
)

// Credentials is the resolved account for one run. Resolved once at
// startup, used once for login, never persisted.
type Credentials struct {
	Username string
	Password string
	HomeWiki string
	Mode     Mode
}

// Resolve determines the final username/password pair. flagUser and
// flagPass are the raw command-line values; load supplies the shared
// credentials document and is only called when a flag is missing, so a run
// with both flags set never touches the file.
func Resolve(flagUser, flagPass string, load func() (*config.Document, error)) (*Credentials, error) {
	if flagUser != "" && flagPass != "" {
		return &Credentials{Username: flagUser, Password: flagPass, Mode: ModePassword}, nil
	}

	doc, err := load()
	if err != nil {
		return nil, err
	}

	user := flagUser
	if user == "" {
		user = config.DefaultAccount(doc)
	}
	if user == "" {
		return nil, fmt.Errorf("cannot determine account")
	}

	acct, err := config.LookupAccount(doc, user)
	if err != nil {
		return nil, err
	}

	creds := &Credentials{
		Username: user,
		Password: flagPass,
		HomeWiki: acct.HomeWiki,
		Mode:     ModeCookie,
	}
	if creds.Password == "" {
		creds.Password = acct.Password
	}
	if flagUser != "" || flagPass != "" {
		creds.Mode = ModePassword
	}
	return creds, nil
}
