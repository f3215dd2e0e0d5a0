package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/steward-tools/internal/auth"
	"github.com/CodexForgeBR/steward-tools/internal/config"
)

// newBlockCmd parses args through a bound gblock command.
func newBlockCmd(t *testing.T, args ...string) (*cobra.Command, *BlockFlags) {
	t.Helper()
	var f BlockFlags
	cmd := &cobra.Command{Use: "gblock"}
	BindBlock(cmd, &f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &f
}

func newLockCmd(t *testing.T, args ...string) (*cobra.Command, *LockFlags) {
	t.Helper()
	var f LockFlags
	cmd := &cobra.Command{Use: "glock"}
	BindLock(cmd, &f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &f
}

func TestBlockFlagsDefaults(t *testing.T) {
	cmd, f := newBlockCmd(t)
	opts := f.Options(cmd)

	assert.Empty(t, opts.Target)
	assert.False(t, opts.Block.Set)
	assert.False(t, opts.AnonOnly.Set)
	assert.False(t, opts.Clobber.Set)
	assert.Empty(t, opts.Expiry)
}

func TestBlockFlagsPositiveToggles(t *testing.T) {
	cmd, f := newBlockCmd(t, "--target", "127.0.0.1", "--block", "--anon-only", "--expiry", "31 hours")
	opts := f.Options(cmd)

	assert.Equal(t, "127.0.0.1", opts.Target)
	assert.Equal(t, config.BoolSource{Value: true, Set: true}, opts.Block)
	assert.Equal(t, config.BoolSource{Value: true, Set: true}, opts.AnonOnly)
	assert.Equal(t, "31 hours", opts.Expiry)
}

func TestBlockFlagsNegativeForms(t *testing.T) {
	cmd, f := newBlockCmd(t, "--target", "127.0.0.1", "--no-block", "--no-anon-only", "--no-clobber")
	opts := f.Options(cmd)

	assert.Equal(t, config.BoolSource{Value: false, Set: true}, opts.Block)
	assert.Equal(t, config.BoolSource{Value: false, Set: true}, opts.AnonOnly)
	assert.Equal(t, config.BoolSource{Value: false, Set: true}, opts.Clobber)
}

func TestTriStateNegativeWinsOverPositive(t *testing.T) {
	cmd, f := newBlockCmd(t, "--block", "--no-block")
	opts := f.Options(cmd)
	assert.Equal(t, config.BoolSource{Value: false, Set: true}, opts.Block)
}

func TestPasswordNoOptDefValTriggersPromptSentinel(t *testing.T) {
	_, f := newBlockCmd(t, "--password")
	assert.Equal(t, PasswordPrompt, f.Common.Password)

	_, f = newBlockCmd(t, "--password=hunter2")
	assert.Equal(t, "hunter2", f.Common.Password)

	_, f = newBlockCmd(t)
	assert.Empty(t, f.Common.Password)
}

func TestVerboseAliasesDebug(t *testing.T) {
	_, f := newBlockCmd(t, "--verbose")
	assert.True(t, f.Common.Debug)

	_, f = newBlockCmd(t, "-d")
	assert.True(t, f.Common.Debug)
}

func TestUnknownFlagIsAnError(t *testing.T) {
	var f BlockFlags
	cmd := &cobra.Command{Use: "gblock"}
	BindBlock(cmd, &f)
	require.Error(t, cmd.ParseFlags([]string{"--bogus"}))
}

func TestLockFlags(t *testing.T) {
	cmd, f := newLockCmd(t, "--target", "Bad User", "--hide", "7", "--nuke")
	opts := f.Options(cmd)

	assert.Equal(t, "Bad User", opts.Target)
	assert.Equal(t, config.IntSource{Value: 7, Set: true}, opts.Hide)
	assert.True(t, opts.Nuke)
	assert.False(t, opts.Lock.Set)
}

func TestLockNoHideForcesZero(t *testing.T) {
	cmd, f := newLockCmd(t, "--hide", "2", "--no-hide")
	opts := f.Options(cmd)
	assert.Equal(t, config.IntSource{Value: 0, Set: true}, opts.Hide)
}

func TestLockHideUnsetByDefault(t *testing.T) {
	cmd, f := newLockCmd(t)
	assert.False(t, f.Options(cmd).Hide.Set)
}

func TestSandboxFlags(t *testing.T) {
	var f SandboxFlags
	cmd := &cobra.Command{Use: "sandbox"}
	BindSandbox(cmd, &f)
	require.NoError(t, cmd.ParseFlags([]string{"--wiki", "enwiki", "--page", "Wikipedia:Sandbox"}))

	opts := f.Options()
	assert.Equal(t, "enwiki", opts.Wiki)
	assert.Equal(t, "Wikipedia:Sandbox", opts.Page)
}

// ---------------------------------------------------------------------------
// DefaultsLoader / ResolveCredentials tests
// ---------------------------------------------------------------------------

func TestDefaultsLoaderReadsOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gblock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("expiry: 31 hours\n"), 0644))

	o := &CommonOptions{DefaultsFile: path}
	load := o.DefaultsLoader()

	doc, err := load()
	require.NoError(t, err)

	// Removing the file between calls changes nothing: the first read is
	// shared.
	require.NoError(t, os.Remove(path))
	again, err := load()
	require.NoError(t, err)
	assert.Same(t, doc, again)
}

func TestResolveCredentialsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.yaml")
	content := "default-account: StewardBot\naccounts:\n  stewardbot:\n    password: hunter2\n    home-wiki: metawiki\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	o := &CommonOptions{CredentialsFile: path}
	creds, err := o.ResolveCredentials()
	require.NoError(t, err)

	assert.Equal(t, "StewardBot", creds.Username)
	assert.Equal(t, "hunter2", creds.Password)
	assert.Equal(t, auth.ModeCookie, creds.Mode)
}

func TestResolveCredentialsBothFlagsSkipFile(t *testing.T) {
	// Pointing at a nonexistent file proves it is never read.
	o := &CommonOptions{
		Username:        "Me",
		Password:        "pw",
		CredentialsFile: filepath.Join(t.TempDir(), "absent.yaml"),
	}
	creds, err := o.ResolveCredentials()
	require.NoError(t, err)
	assert.Equal(t, auth.ModePassword, creds.Mode)
}

func TestResolveCredentialsMissingFileFatal(t *testing.T) {
	o := &CommonOptions{CredentialsFile: filepath.Join(t.TempDir(), "absent.yaml")}
	_, err := o.ResolveCredentials()
	require.Error(t, err)
}

func TestHomeWikiHost(t *testing.T) {
	tests := []struct {
		name     string
		homeWiki string
		expected string
	}{
		{"empty falls back", "", DefaultHost},
		{"domain passes through", "en.wikipedia.org", "en.wikipedia.org"},
		{"dbname mapped", "enwiki", "en.wikipedia.org"},
		{"metawiki mapped", "metawiki", "meta.wikimedia.org"},
		{"unknown falls back", "bogusdb", DefaultHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := &auth.Credentials{Username: "StewardBot", HomeWiki: tt.homeWiki}
			assert.Equal(t, tt.expected, HomeWikiHost(creds))
		})
	}
}
