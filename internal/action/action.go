// Package action resolves each tool's request from its command-line values,
// the per-script defaults document and hard defaults, renders the dry-run
// description, and performs the single API write.
package action

import (
	"github.com/CodexForgeBR/steward-tools/internal/config"
)

// DefaultsLoader supplies the per-script defaults document. Resolvers call
// it only when at least one field is still unset after flag parsing, so a
// fully-specified command line never reads the file.
type DefaultsLoader func() (*config.Document, error)

// docString is a nil-safe scalar lookup on a defaults document.
func docString(doc *config.Document, path ...string) string {
	v, _ := doc.Get(path...)
	return v
}
