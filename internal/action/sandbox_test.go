package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/steward-tools/internal/action"
	"github.com/CodexForgeBR/steward-tools/internal/mwapi"
)

const sandboxDefaults = `
summary: Cleaning sandbox
wikis:
  enwiki:
    page: Wikipedia:Sandbox
    text: "{{Sandbox heading}}"
  dewiki:
    page: Wikipedia:Spielwiese
`

func TestResolveSandboxByDomain(t *testing.T) {
	calls := 0
	load := loadDoc(t, sandboxDefaults, &calls)

	req, err := action.ResolveSandbox(action.SandboxOptions{Wiki: "en.wikipedia.org"}, load)
	require.NoError(t, err)

	assert.Equal(t, "enwiki", req.DBName)
	assert.Equal(t, "en.wikipedia.org", req.Domain)
	assert.Equal(t, "Wikipedia:Sandbox", req.Page)
	assert.Equal(t, "{{Sandbox heading}}", req.Text)
	assert.Equal(t, "Cleaning sandbox", req.Summary)
}

func TestResolveSandboxByDBName(t *testing.T) {
	calls := 0
	load := loadDoc(t, sandboxDefaults, &calls)

	req, err := action.ResolveSandbox(action.SandboxOptions{Wiki: "dewiki"}, load)
	require.NoError(t, err)

	assert.Equal(t, "dewiki", req.DBName)
	assert.Equal(t, "de.wikipedia.org", req.Domain)
	assert.Equal(t, "Wikipedia:Spielwiese", req.Page)
	// No per-wiki text; falls through to the hard default.
	assert.NotEmpty(t, req.Text)
}

func TestResolveSandboxCommandLineWins(t *testing.T) {
	calls := 0
	load := loadDoc(t, sandboxDefaults, &calls)

	req, err := action.ResolveSandbox(action.SandboxOptions{
		Wiki:    "enwiki",
		Page:    "User:StewardBot/Sandbox",
		Text:    "clean",
		Summary: "Manual reset",
	}, load)
	require.NoError(t, err)

	assert.Equal(t, "User:StewardBot/Sandbox", req.Page)
	assert.Equal(t, "clean", req.Text)
	assert.Equal(t, "Manual reset", req.Summary)
	assert.Zero(t, calls, "fully-specified command line must not read the file")
}

func TestResolveSandboxUnknownWiki(t *testing.T) {
	_, err := action.ResolveSandbox(action.SandboxOptions{Wiki: "example.com"}, nil)
	require.Error(t, err)

	_, err = action.ResolveSandbox(action.SandboxOptions{Wiki: "nosuchdb"}, nil)
	require.Error(t, err)
}

func TestResolveSandboxNoWiki(t *testing.T) {
	_, err := action.ResolveSandbox(action.SandboxOptions{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wiki")
}

func TestSandboxDescribe(t *testing.T) {
	req := &action.SandboxRequest{
		DBName:  "enwiki",
		Domain:  "en.wikipedia.org",
		Page:    "Wikipedia:Sandbox",
		Text:    "{{Sandbox heading}}",
		Summary: "Cleaning sandbox",
	}
	desc := req.Describe("StewardBot")

	assert.Contains(t, desc, "edit (minor, bot)")
	assert.Contains(t, desc, "en.wikipedia.org")
	assert.Contains(t, desc, "enwiki")
	assert.Contains(t, desc, "StewardBot")
	assert.Contains(t, desc, "Wikipedia:Sandbox")
}

// fakeEditor records the one edit it receives.
type fakeEditor struct {
	req *mwapi.EditRequest
	err error
}

func (f *fakeEditor) Edit(_ context.Context, req mwapi.EditRequest) error {
	f.req = &req
	return f.err
}

func TestSandboxSubmitAlwaysMinorBot(t *testing.T) {
	fe := &fakeEditor{}
	req := &action.SandboxRequest{
		Page:    "Wikipedia:Sandbox",
		Text:    "{{Sandbox heading}}",
		Summary: "Cleaning sandbox",
	}
	require.NoError(t, req.Submit(context.Background(), fe))

	require.NotNil(t, fe.req)
	assert.Equal(t, "Wikipedia:Sandbox", fe.req.Title)
	assert.True(t, fe.req.MinorBot, "sandbox edits are always minor bot edits")
}

func TestSandboxSubmitFailure(t *testing.T) {
	fe := &fakeEditor{err: errors.New("protectedpage")}
	req := &action.SandboxRequest{Page: "Wikipedia:Sandbox"}

	err := req.Submit(context.Background(), fe)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submission failed")
}
