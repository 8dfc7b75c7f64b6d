// Package theme holds the normalized theme record and its tmTheme encoding.
package theme

import (
	"io"
	"path/filepath"
	"strings"

	"howett.net/plist"
)

// Extension is the file extension of the target theme format.
const Extension = ".tmTheme"

// Settings maps normalized (medial-capital) setting keys to resolved values.
// Color-like values are canonical hex literals; everything else is verbatim.
type Settings map[string]string

// Rule is one flattened theme rule. The first rule of a theme is synthetic,
// built from the source document's globals, and carries no name or scope.
type Rule struct {
	Name     string   `plist:"name,omitempty"`
	Scope    string   `plist:"scope,omitempty"`
	Settings Settings `plist:"settings"`
}

// Theme is the record handed to the plist encoder: document name and author
// plus the ordered rule sequence, globals rule first.
type Theme struct {
	Name     string `plist:"name"`
	Author   string `plist:"author"`
	Settings []Rule `plist:"settings"`
}

// Encode writes the theme as a tab-indented XML property list.
func (t *Theme) Encode(w io.Writer) error {
	enc := plist.NewEncoder(w)
	enc.Indent("\t")
	return enc.Encode(t)
}

// Filename derives the destination file name for a source scheme path: the
// base name with its extension replaced by the tmTheme extension.
func Filename(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + Extension
}
