package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/steward-tools/internal/config"
)

const credentialsFixture = `
default-account: StewardBot
accounts:
  stewardbot:
    password: hunter2
    home-wiki: metawiki
  secondbot:
    password: s3cret
`

func TestDefaultAccount(t *testing.T) {
	doc, err := config.Parse([]byte(credentialsFixture))
	require.NoError(t, err)

	assert.Equal(t, "StewardBot", config.DefaultAccount(doc))
}

func TestDefaultAccountAbsent(t *testing.T) {
	doc, err := config.Parse([]byte("accounts:\n  bot:\n    password: x\n"))
	require.NoError(t, err)

	assert.Empty(t, config.DefaultAccount(doc))
}

func TestLookupAccount(t *testing.T) {
	doc, err := config.Parse([]byte(credentialsFixture))
	require.NoError(t, err)

	acct, err := config.LookupAccount(doc, "StewardBot")
	require.NoError(t, err)
	assert.Equal(t, "StewardBot", acct.Name)
	assert.Equal(t, "hunter2", acct.Password)
	assert.Equal(t, "metawiki", acct.HomeWiki)

	acct, err = config.LookupAccount(doc, "secondbot")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", acct.Password)
	assert.Empty(t, acct.HomeWiki)
}

func TestLookupAccountMissingBlock(t *testing.T) {
	doc, err := config.Parse([]byte(credentialsFixture))
	require.NoError(t, err)

	_, err = config.LookupAccount(doc, "NoSuchBot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"NoSuchBot"`)
}
