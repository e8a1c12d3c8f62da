// Package ident canonicalizes transaction, order, invoice and reference
// identifiers so records from different systems become comparable.
package ident

import (
	"regexp"
	"strings"
)

// Identifier prefixes added by gateways and invoicing systems, with an
// optional trailing hyphen or underscore.
var prefixRe = regexp.MustCompile(`^(?i:INV|MPGS|TXN|ORDER|REF)[-_]?`)

// Normalize canonicalizes an identifier: strips a known prefix, drops every
// non-alphanumeric character, and lowercases.
func Normalize(id string) string {
	if id == "" {
		return ""
	}
	return NormalizeText(prefixRe.ReplaceAllString(id, ""))
}

// NormalizeText drops non-alphanumerics and lowercases without prefix
// stripping. Used on free-text descriptions so a normalized identifier can
// be located as a substring.
func NormalizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	return strings.ToLower(s)
}
