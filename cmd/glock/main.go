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
	var flags cli.LockFlags

	rootCmd := &cobra.Command{
		Use:     "glock",
		Short:   "Lock or hide a global account",
		Long:    "glock locks/unlocks a global user account across a wiki family and optionally hides it from lists.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(run(cmd, &flags))
			return nil // unreachable
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindLock(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		logging.Error("%v", err)
		os.Exit(exitcode.Usage)
	}
}

func run(cmd *cobra.Command, flags *cli.LockFlags) int {
	logging.SetVerbose(flags.Common.Debug)

	if flags.Target == "" {
		logging.Error("--target is required")
		return exitcode.Usage
	}

	req, err := action.ResolveLock(flags.Options(cmd), flags.Common.DefaultsLoader())
	if err != nil {
		logging.Error("%v", err)
		return exitcode.Config
	}

	creds, err := flags.Common.ResolveCredentials()
	if err != nil {
		logging.Error("%v", err)
		return exitcode.Config
	}

	host := cli.HomeWikiHost(creds)

	if flags.Common.DryRun {
		logging.DryRun(req.Describe(host, creds.Username))
		return exitcode.DryRun
	}

	client, err := cli.NewClient(host, creds, &flags.Common)
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

	if req.Lock {
		logging.Info("account %s locked (hide level %d)", req.Target, req.Hide)
	} else {
		logging.Info("account %s unlocked", req.Target)
	}
	return exitcode.Success
}
