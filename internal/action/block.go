package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodexForgeBR/steward-tools/internal/config"
	"github.com/CodexForgeBR/steward-tools/internal/logging"
	"github.com/CodexForgeBR/steward-tools/internal/mwapi"
)

// Hard defaults for the block action, used when neither the command line
// nor the defaults file supplies a value.
const (
	defaultBlockExpiry  = "31 hours"
	defaultBlockSummary = "cross-wiki abuse"
)

// BlockOptions carries the gblock command line after parsing. Boolean
// fields keep their explicitly-set marker so --no-block overrides a
// config file's block=1.
type BlockOptions struct {
	Target   string
	Block    config.BoolSource
	AnonOnly config.BoolSource
	Expiry   string
	Summary  string
	Clobber  config.BoolSource
}

// BlockRequest is the fully-resolved global block action. Immutable once
// resolved.
type BlockRequest struct {
	Target   string
	Block    bool
	AnonOnly bool
	Expiry   string
	Summary  string
	Clobber  bool
}

// ResolveBlock merges the command line, the defaults document and hard
// defaults, command line first.
func ResolveBlock(opts BlockOptions, load DefaultsLoader) (*BlockRequest, error) {
	if opts.Target == "" {
		return nil, fmt.Errorf("no target given")
	}

	var doc *config.Document
	needFile := opts.Expiry == "" || opts.Summary == "" ||
		!opts.Block.Set || !opts.AnonOnly.Set || !opts.Clobber.Set
	if needFile && load != nil {
		var err error
		if doc, err = load(); err != nil {
			return nil, err
		}
	}

	req := &BlockRequest{
		Target:   opts.Target,
		Block:    config.ResolveBool(true, opts.Block, doc.Bool("block")),
		AnonOnly: config.ResolveBool(false, opts.AnonOnly, doc.Bool("anon-only")),
		Expiry:   config.FirstString(opts.Expiry, docString(doc, "expiry"), defaultBlockExpiry),
		Summary:  config.FirstString(opts.Summary, docString(doc, "summary"), defaultBlockSummary),
		Clobber:  config.ResolveBool(false, opts.Clobber, doc.Bool("clobber")),
	}
	logging.Debug("resolved block request: target=%s block=%t anon-only=%t expiry=%q clobber=%t",
		req.Target, req.Block, req.AnonOnly, req.Expiry, req.Clobber)
	return req, nil
}

// Describe renders the dry-run request description, including the resolved
// host and account.
func (r *BlockRequest) Describe(host, account string) string {
	op := "globalblock (block)"
	if !r.Block {
		op = "globalblock (unblock)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "action:    %s\n", op)
	fmt.Fprintf(&b, "host:      %s\n", host)
	fmt.Fprintf(&b, "account:   %s\n", account)
	fmt.Fprintf(&b, "target:    %s\n", r.Target)
	if r.Block {
		fmt.Fprintf(&b, "expiry:    %s\n", r.Expiry)
		fmt.Fprintf(&b, "anon-only: %t\n", r.AnonOnly)
		fmt.Fprintf(&b, "clobber:   %t\n", r.Clobber)
	}
	fmt.Fprintf(&b, "summary:   %s", r.Summary)
	return b.String()
}

// Blocker is the client slice the block action needs.
type Blocker interface {
	GlobalBlock(ctx context.Context, req mwapi.GlobalBlockRequest) error
}

// Submit performs the block or unblock. The clobber policy rides along as
// the modify parameter; enforcement is the wiki's business.
func (r *BlockRequest) Submit(ctx context.Context, c Blocker) error {
	err := c.GlobalBlock(ctx, mwapi.GlobalBlockRequest{
		Target:   r.Target,
		Unblock:  !r.Block,
		AnonOnly: r.AnonOnly,
		Expiry:   r.Expiry,
		Reason:   r.Summary,
		Modify:   r.Clobber,
	})
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}
	return nil
}
