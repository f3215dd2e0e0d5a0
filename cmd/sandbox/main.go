package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/steward-tools/internal/action"
	"github.com/CodexForgeBR/steward-tools/internal/auth"
	"github.com/CodexForgeBR/steward-tools/internal/cli"
	"github.com/CodexForgeBR/steward-tools/internal/exitcode"
	"github.com/CodexForgeBR/steward-tools/internal/logging"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var flags cli.SandboxFlags

	rootCmd := &cobra.Command{
		Use:     "sandbox",
		Short:   "Reset a wiki's sandbox page",
		Long:    "sandbox replaces a wiki's sandbox page with its default content as a minor bot edit.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(run(&flags))
			return nil // unreachable
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindSandbox(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		logging.Error("%v", err)
		os.Exit(exitcode.Usage)
	}
}

func run(flags *cli.SandboxFlags) int {
	logging.SetVerbose(flags.Common.Debug)

	if flags.Wiki == "" {
		logging.Error("--wiki is required")
		return exitcode.Usage
	}

	req, err := action.ResolveSandbox(flags.Options(), flags.Common.DefaultsLoader())
	if err != nil {
		logging.Error("%v", err)
		return exitcode.Config
	}

	creds, err := flags.Common.ResolveCredentials()
	if err != nil {
		logging.Error("%v", err)
		return exitcode.Config
	}

	if flags.Common.DryRun {
		logging.DryRun(req.Describe(creds.Username))
		return exitcode.DryRun
	}

	// The edit lands on the target wiki itself, not the home wiki.
	client, err := cli.NewClient(req.Domain, creds, &flags.Common)
	if err != nil {
		logging.Error("%v", err)
		return exitcode.Config
	}

	ctx := context.Background()
	if err := auth.Login(ctx, client, creds); err != nil {
		logging.Error("%v", err)
		return exitcode.Auth
	}

	if err := req.Submit(ctx, client); err != nil {
		logging.Error("%v", err)
		return exitcode.Submission
	}

	logging.Info("sandbox %s on %s reset", req.Page, req.DBName)
	return exitcode.Success
}
