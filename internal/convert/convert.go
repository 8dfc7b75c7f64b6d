// Package convert flattens a parsed color scheme document into a normalized
// theme record with fully resolved color values.
package convert

import (
	"sync"

	"github.com/schemeconv/schemeconv/internal/color"
	"github.com/schemeconv/schemeconv/internal/log"
	"github.com/schemeconv/schemeconv/internal/resolver"
	"github.com/schemeconv/schemeconv/internal/scheme"
	"github.com/schemeconv/schemeconv/internal/theme"
)

// undefinedField stands in for a missing document name or author.
const undefinedField = "undefined"

// structural keys are handled by the flattener itself and never become
// settings
var structuralKeys = map[string]bool{
	"name":  true,
	"scope": true,
}

// Options control conversion behavior.
type Options struct {
	// ExtendedColors enables CSS fallback parsing for values the core
	// hex/rgb/hsl grammar does not recognize.
	ExtendedColors bool
}

// Rule flattens one source rule into a theme rule: name verbatim, scope
// normalized, every remaining key/value resolved into settings. The source
// map is only read, never modified, so rules may be flattened concurrently
// and source objects stay reusable.
func Rule(src scheme.Rule, vars *resolver.Resolver) theme.Rule {
	out := theme.Rule{Settings: make(theme.Settings, len(src))}
	if name := src["name"]; name != "" {
		out.Name = name
	}
	if scope := src["scope"]; scope != "" {
		out.Scope = Scope(scope)
	}
	for key, value := range src {
		if structuralKeys[key] {
			continue
		}
		out.Settings[Key(key)] = vars.Resolve(value)
	}
	return out
}

// Document converts a parsed scheme document into a theme record. The theme
// is fully assembled in memory before returning; nothing is written here, so
// a failure never leaves partial output behind.
func Document(doc *scheme.Document, opts Options) (*theme.Theme, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	parser := &color.Parser{Extended: opts.ExtendedColors}
	vars := resolver.New(doc.Variables, parser)
	log.Debug("resolving %d rules against %d variables", len(doc.Rules), vars.Len())

	name := doc.Name
	if name == "" {
		name = undefinedField
	}
	author := doc.Author
	if author == "" {
		author = undefinedField
	}

	settings := make([]theme.Rule, len(doc.Rules)+1)

	// The synthetic globals rule always comes first and never carries a
	// name or scope.
	globals := Rule(doc.Globals, vars)
	globals.Name, globals.Scope = "", ""
	settings[0] = globals

	// Each rule depends only on its own content and the read-only
	// variables table, so resolution fans out. Results land at their
	// source index: output order matches document order regardless of
	// scheduling.
	var wg sync.WaitGroup
	for i, src := range doc.Rules {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			settings[i+1] = Rule(src, vars)
		}()
	}
	wg.Wait()

	return &theme.Theme{Name: name, Author: author, Settings: settings}, nil
}
