package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodexForgeBR/steward-tools/internal/config"
	"github.com/CodexForgeBR/steward-tools/internal/logging"
	"github.com/CodexForgeBR/steward-tools/internal/mwapi"
)

// Hard defaults for the sandbox action.
const (
	defaultSandboxPage    = "Project:Sandbox"
	defaultSandboxText    = "{{Sandbox heading}}\n<!-- Please edit below this line. -->"
	defaultSandboxSummary = "Cleaning sandbox"
)

// SandboxOptions carries the sandbox command line after parsing. Wiki may
// be a domain or a database name.
type SandboxOptions struct {
	Wiki    string
	Page    string
	Text    string
	Summary string
}

// SandboxRequest is the fully-resolved sandbox reset. The edit is always
// a minor bot edit.
type SandboxRequest struct {
	DBName  string
	Domain  string
	Page    string
	Text    string
	Summary string
}

// ResolveSandbox normalizes the wiki identifier to both its forms and
// merges field values. The defaults document is keyed by database name
// under a wikis section, with top-level keys as a shared fallback.
func ResolveSandbox(opts SandboxOptions, load DefaultsLoader) (*SandboxRequest, error) {
	if opts.Wiki == "" {
		return nil, fmt.Errorf("no wiki given")
	}

	var dbname, domain string
	var err error
	if mwapi.IsDomain(opts.Wiki) {
		domain = strings.ToLower(opts.Wiki)
		if dbname, err = mwapi.DBNameFromDomain(domain); err != nil {
			return nil, err
		}
	} else {
		dbname = strings.ToLower(opts.Wiki)
		if domain, err = mwapi.DomainFromDBName(dbname); err != nil {
			return nil, err
		}
	}

	var doc *config.Document
	if opts.Page == "" || opts.Text == "" || opts.Summary == "" {
		if load != nil {
			if doc, err = load(); err != nil {
				return nil, err
			}
		}
	}

	// Per-wiki block first, then the document's shared top-level keys.
	wikiSec, _ := doc.Section("wikis", dbname)

	req := &SandboxRequest{
		DBName: dbname,
		Domain: domain,
		Page: config.FirstString(opts.Page,
			docString(wikiSec, "page"), docString(doc, "page"), defaultSandboxPage),
		Text: config.FirstString(opts.Text,
			docString(wikiSec, "text"), docString(doc, "text"), defaultSandboxText),
		Summary: config.FirstString(opts.Summary,
			docString(wikiSec, "summary"), docString(doc, "summary"), defaultSandboxSummary),
	}
	logging.Debug("resolved sandbox request: wiki=%s (%s) page=%q", dbname, domain, req.Page)
	return req, nil
}

// Describe renders the dry-run request description, including the resolved
// host and account.
func (r *SandboxRequest) Describe(account string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "action:  edit (minor, bot)\n")
	fmt.Fprintf(&b, "host:    %s (%s)\n", r.Domain, r.DBName)
	fmt.Fprintf(&b, "account: %s\n", account)
	fmt.Fprintf(&b, "page:    %s\n", r.Page)
	fmt.Fprintf(&b, "text:    %q\n", r.Text)
	fmt.Fprintf(&b, "summary: %s", r.Summary)
	return b.String()
}

// Editor is the client slice the sandbox action needs.
type Editor interface {
	Edit(ctx context.Context, req mwapi.EditRequest) error
}

// Submit blanks the sandbox page to its default text.
func (r *SandboxRequest) Submit(ctx context.Context, c Editor) error {
	err := c.Edit(ctx, mwapi.EditRequest{
		Title:    r.Page,
		Text:     r.Text,
		Summary:  r.Summary,
		MinorBot: true,
	})
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}
	return nil
}
