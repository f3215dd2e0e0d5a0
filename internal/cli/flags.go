package cli

import (
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/steward-tools/internal/action"
	"github.com/CodexForgeBR/steward-tools/internal/config"
)

// BlockFlags is the gblock command line.
type BlockFlags struct {
	Common  CommonOptions
	Target  string
	Expiry  string
	Summary string
}

// BindBlock registers gblock's flags on cmd.
func BindBlock(cmd *cobra.Command, f *BlockFlags) {
	BindCommon(cmd, &f.Common, "gblock")
	flags := cmd.Flags()

	flags.StringVar(&f.Target, "target", "", "IP or range to block (required)")
	flags.StringVar(&f.Expiry, "expiry", "", `Block duration, e.g. "31 hours"`)
	flags.StringVar(&f.Summary, "summary", "", "Log summary")

	// Boolean toggles with explicit negative forms.
	flags.Bool("block", false, "Place the block (default)")
	flags.Bool("no-block", false, "Remove an existing block instead")
	flags.Bool("anon-only", false, "Restrict only anonymous editors")
	flags.Bool("no-anon-only", false, "Restrict logged-in editors too")
	flags.Bool("clobber", false, "Replace an existing block")
	flags.Bool("no-clobber", false, "Leave an existing block untouched")
}

// Options converts the parsed flags into resolver sources.
func (f *BlockFlags) Options(cmd *cobra.Command) action.BlockOptions {
	return action.BlockOptions{
		Target:   f.Target,
		Block:    TriState(cmd, "block", "no-block"),
		AnonOnly: TriState(cmd, "anon-only", "no-anon-only"),
		Expiry:   f.Expiry,
		Summary:  f.Summary,
		Clobber:  TriState(cmd, "clobber", "no-clobber"),
	}
}

// LockFlags is the glock command line.
type LockFlags struct {
	Common  CommonOptions
	Target  string
	Summary string
	Hide    int
	Nuke    bool
}

// BindLock registers glock's flags on cmd.
func BindLock(cmd *cobra.Command, f *LockFlags) {
	BindCommon(cmd, &f.Common, "glock")
	flags := cmd.Flags()

	flags.StringVar(&f.Target, "target", "", "Global account to lock (required)")
	flags.StringVar(&f.Summary, "summary", "", "Log summary")
	flags.IntVar(&f.Hide, "hide", 0, "Hide level: 0 none, 1 lists, 2 full")
	flags.Bool("no-hide", false, "Force hide level 0")
	flags.Bool("lock", false, "Lock the account (default)")
	flags.Bool("no-lock", false, "Unlock the account instead")
	flags.BoolVar(&f.Nuke, "nuke", false, "Shorthand for lock plus full hide")
}

// Options converts the parsed flags into resolver sources.
func (f *LockFlags) Options(cmd *cobra.Command) action.LockOptions {
	hide := config.IntSource{}
	if cmd.Flags().Changed("no-hide") {
		hide = config.IntSource{Value: 0, Set: true}
	} else if cmd.Flags().Changed("hide") {
		hide = config.IntSource{Value: f.Hide, Set: true}
	}

	return action.LockOptions{
		Target:  f.Target,
		Lock:    TriState(cmd, "lock", "no-lock"),
		Hide:    hide,
		Nuke:    f.Nuke,
		Summary: f.Summary,
	}
}

// SandboxFlags is the sandbox command line.
type SandboxFlags struct {
	Common  CommonOptions
	Wiki    string
	Page    string
	Text    string
	Summary string
}

// BindSandbox registers sandbox's flags on cmd.
func BindSandbox(cmd *cobra.Command, f *SandboxFlags) {
	BindCommon(cmd, &f.Common, "sandbox")
	flags := cmd.Flags()

	flags.StringVar(&f.Wiki, "wiki", "", "Target wiki, as a domain or database name (required)")
	flags.StringVar(&f.Page, "page", "", "Sandbox page title")
	flags.StringVar(&f.Text, "text", "", "Replacement page text")
	flags.StringVar(&f.Summary, "summary", "", "Edit summary")
}

// Options converts the parsed flags into resolver sources.
func (f *SandboxFlags) Options() action.SandboxOptions {
	return action.SandboxOptions{
		Wiki:    f.Wiki,
		Page:    f.Page,
		Text:    f.Text,
		Summary: f.Summary,
	}
}
