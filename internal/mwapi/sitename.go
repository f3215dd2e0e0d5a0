package mwapi

import (
	"fmt"
	"strings"
)

// Wiki identifiers come in two forms: a DNS domain (en.wikipedia.org) and
// the internal database name (enwiki). The mapping is mechanical for
// lang.project.org hosts plus a handful of special wikimedia hosts.

var specialDomains = map[string]string{
	"meta.wikimedia.org":      "metawiki",
	"commons.wikimedia.org":   "commonswiki",
	"species.wikimedia.org":   "specieswiki",
	"incubator.wikimedia.org": "incubatorwiki",
	"www.wikidata.org":        "wikidatawiki",
	"www.mediawiki.org":       "mediawikiwiki",
}

var specialDBNames = func() map[string]string {
	m := make(map[string]string, len(specialDomains))
	for domain, db := range specialDomains {
		m[db] = domain
	}
	return m
}()

// projectSuffixes maps the domain's project label to the dbname suffix.
var projectSuffixes = map[string]string{
	"wikipedia":   "wiki",
	"wiktionary":  "wiktionary",
	"wikibooks":   "wikibooks",
	"wikinews":    "wikinews",
	"wikiquote":   "wikiquote",
	"wikisource":  "wikisource",
	"wikiversity": "wikiversity",
	"wikivoyage":  "wikivoyage",
}

// IsDomain reports whether the wiki identifier looks like a DNS domain
// rather than an internal database name.
func IsDomain(id string) bool {
	return strings.Contains(id, ".")
}

// DBNameFromDomain converts a wiki domain to its database name
// (en.wikipedia.org -> enwiki). Language-code dashes become underscores
// (zh-min-nan.wikipedia.org -> zh_min_nanwiki).
func DBNameFromDomain(domain string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	if db, ok := specialDomains[d]; ok {
		return db, nil
	}

	parts := strings.Split(d, ".")
	if len(parts) != 3 || parts[2] != "org" {
		return "", fmt.Errorf("unrecognized wiki domain %q", domain)
	}
	suffix, ok := projectSuffixes[parts[1]]
	if !ok {
		return "", fmt.Errorf("unrecognized wiki project %q", parts[1])
	}

	lang := strings.ReplaceAll(parts[0], "-", "_")
	return lang + suffix, nil
}

// DomainFromDBName converts a database name to its wiki domain
// (enwiki -> en.wikipedia.org). The longest matching project suffix wins.
func DomainFromDBName(db string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(db))
	if domain, ok := specialDBNames[d]; ok {
		return domain, nil
	}

	var project, suffix string
	for p, s := range projectSuffixes {
		if strings.HasSuffix(d, s) && len(d) > len(s) && len(s) > len(suffix) {
			project, suffix = p, s
		}
	}
	if suffix == "" {
		return "", fmt.Errorf("unrecognized database name %q", db)
	}

	lang := strings.ReplaceAll(strings.TrimSuffix(d, suffix), "_", "-")
	return lang + "." + project + ".org", nil
}
