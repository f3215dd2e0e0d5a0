package auth

import (
	"context"
	"fmt"

	"github.com/CodexForgeBR/steward-tools/internal/logging"
)

// Session is the slice of the wiki client that login needs.
type Session interface {
	LoggedIn(ctx context.Context, user string) (bool, error)
	Login(ctx context.Context, user, password string) error
}

// Login runs the ordered fallback chain: try the cached session first when
// the credentials prefer it, then password login when a password is known.
// Both failing is a fatal "not logged in".
func Login(ctx context.Context, s Session, creds *Credentials) error {
	if creds.Mode == ModeCookie {
		ok, err := s.LoggedIn(ctx, creds.Username)
		if err != nil {
			logging.Debug("session check failed: %v", err)
		}
		if ok {
			logging.Debug("resuming cached session for %s", creds.Username)
			return nil
		}
		if creds.Password == "" {
			return fmt.Errorf("not logged in")
		}
		logging.Debug("no usable cached session, trying password login")
	}

	if creds.Password == "" {
		return fmt.Errorf("not logged in")
	}
	if err := s.Login(ctx, creds.Username, creds.Password); err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	logging.Debug("logged in as %s", creds.Username)
	return nil
}
