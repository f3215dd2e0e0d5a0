package config

import (
	"fmt"
	"strings"
)

// Account is one credential block from the shared credentials document.
type Account struct {
	Name     string
	Password string
	HomeWiki string
}

// DefaultAccount returns the document's default account name, or "" when
// the document does not configure one.
func DefaultAccount(doc *Document) string {
	v, _ := doc.Get("default-account")
	return v
}

// LookupAccount finds the credential block for the named account. Block
// names are matched lower-cased like every other section name. A missing
// block is an error naming the account.
func LookupAccount(doc *Document, name string) (*Account, error) {
	sec, ok := doc.Section("accounts", strings.ToLower(name))
	if !ok {
		return nil, fmt.Errorf("no credentials for account %q", name)
	}
	password, _ := sec.Get("password")
	homeWiki, _ := sec.Get("home-wiki")
	return &Account{Name: name, Password: password, HomeWiki: homeWiki}, nil
}
