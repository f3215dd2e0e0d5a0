// Package cli binds and validates the steward tools' command-line flags
// and wires the resolved options into credentials and an API client.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/steward-tools/internal/action"
	"github.com/CodexForgeBR/steward-tools/internal/auth"
	"github.com/CodexForgeBR/steward-tools/internal/config"
)

// PasswordPrompt is the NoOptDefVal sentinel for --password. A bare
// --password means "ask interactively"; the NUL byte keeps it from
// colliding with any real password.
const PasswordPrompt = "\x00prompt"

// CommonOptions are the flags every tool shares.
type CommonOptions struct {
	Username        string
	Password        string
	CredentialsFile string
	DefaultsFile    string
	APIPath         string
	DryRun          bool
	Debug           bool
}

// ConfigDir returns the tools' configuration directory.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "steward-tools")
}

// BindCommon registers the shared flags on cmd. tool names the per-script
// defaults file under the config directory.
func BindCommon(cmd *cobra.Command, o *CommonOptions, tool string) {
	flags := cmd.Flags()

	flags.StringVar(&o.Username, "username", "", "Account to act as (default from credentials file)")
	flags.StringVar(&o.Password, "password", "", "Account password; a bare --password prompts without echo")
	flags.Lookup("password").NoOptDefVal = PasswordPrompt
	flags.StringVar(&o.CredentialsFile, "credentials", filepath.Join(ConfigDir(), "credentials.yaml"),
		"Path to the shared credentials file")
	flags.StringVar(&o.DefaultsFile, "config", filepath.Join(ConfigDir(), tool+".yaml"),
		"Path to the script defaults file")
	flags.StringVar(&o.APIPath, "api-path", "/w/api.php", "api.php path on the target wiki")
	flags.BoolVar(&o.DryRun, "dry-run", false, "Print the resolved request instead of sending it")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "Emit progress diagnostics to stderr")
	flags.BoolVar(&o.Debug, "verbose", false, "Alias for --debug")
}

// TriState reads a --flag/--no-flag pair into one resolution source. The
// negative form wins when both are given.
func TriState(cmd *cobra.Command, name, negName string) config.BoolSource {
	if cmd.Flags().Changed(negName) {
		return config.BoolSource{Value: false, Set: true}
	}
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return config.BoolSource{Value: v, Set: true}
	}
	return config.BoolSource{}
}

// onceLoader wraps config.Load so repeated resolution steps share one read.
func onceLoader(path string) func() (*config.Document, error) {
	var doc *config.Document
	var err error
	var done bool
	return func() (*config.Document, error) {
		if !done {
			doc, err = config.Load(path)
			done = true
		}
		return doc, err
	}
}

// DefaultsLoader returns the lazy loader for the per-script defaults file.
func (o *CommonOptions) DefaultsLoader() action.DefaultsLoader {
	return onceLoader(o.DefaultsFile)
}

// ResolveCredentials runs the interactive prompt when requested, then the
// credential decision tree against the shared credentials file.
func (o *CommonOptions) ResolveCredentials() (*auth.Credentials, error) {
	load := onceLoader(o.CredentialsFile)

	password := o.Password
	if password == PasswordPrompt {
		// Name the account in the prompt; fall back to the file's
		// default account when --username was not given.
		user := o.Username
		if user == "" {
			if doc, err := load(); err == nil {
				user = config.DefaultAccount(doc)
			}
		}
		if user == "" {
			user = "wiki account"
		}
		p, err := auth.PromptPassword(user)
		if err != nil {
			return nil, err
		}
		password = p
	}

	return auth.Resolve(o.Username, password, load)
}
