// Package resolver expands var(<name>) references against a color scheme's
// declared variables before color normalization.
package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemeconv/schemeconv/internal/color"
)

var reVar = regexp.MustCompile(`var\([^)]+\)`)

// Resolver holds the document's variables table in canonical reference form.
// The table is built once and never mutated, so a single Resolver is safe to
// share across concurrent rule resolutions.
type Resolver struct {
	table  map[string]string
	parser *color.Parser
}

// New builds a Resolver from a declared name→expression mapping. Every
// declared name is wrapped into its reference form (var(<name>)) inside a
// fresh table; the caller's map is left untouched.
func New(declared map[string]string, parser *color.Parser) *Resolver {
	table := make(map[string]string, len(declared))
	for name, expr := range declared {
		table[fmt.Sprintf("var(%s)", name)] = expr
	}
	return &Resolver{table: table, parser: parser}
}

// Resolve expands any variable reference in value and normalizes the result
// as a color expression. Three tiers:
//
//  1. value is exactly a declared reference: the stored expression is
//     normalized directly
//  2. value embeds a reference: the reference text is substituted (or, if
//     undeclared, left as-is) and the combined string is normalized
//  3. otherwise value itself is normalized
//
// Undeclared references are not an error; they fall out of normalization as
// verbatim passthrough.
func (r *Resolver) Resolve(value string) string {
	if expr, ok := r.table[value]; ok {
		return r.parser.Normalize(expr)
	}
	if ref := reVar.FindString(value); ref != "" {
		expr, ok := r.table[ref]
		if !ok {
			expr = ref
		}
		return r.parser.Normalize(strings.ReplaceAll(value, ref, expr))
	}
	return r.parser.Normalize(value)
}

// Len reports the number of declared variables.
func (r *Resolver) Len() int {
	return len(r.table)
}
