// Package scheme models and loads sublime-color-scheme source documents.
package scheme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Rule is one source rule object: an optional name and scope plus arbitrary
// setting keys. Rules are read during conversion, never modified.
type Rule map[string]string

// Document is the parsed source color scheme. globals and rules are the
// only required fields.
type Document struct {
	Name      string            `json:"name" yaml:"name"`
	Author    string            `json:"author" yaml:"author"`
	Variables map[string]string `json:"variables" yaml:"variables"`
	Globals   map[string]string `json:"globals" yaml:"globals" validate:"present"`
	Rules     []Rule            `json:"rules" yaml:"rules" validate:"present"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// documentValidator returns the shared validator instance. The "present"
// rule distinguishes an absent field (nil after unmarshal) from one that is
// merely empty; an empty globals mapping or rules sequence is structurally
// valid.
func documentValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
			return !fl.Field().IsNil()
		})
		validate = v
	})
	return validate
}

// Validate checks the document for required structure. The returned error
// names the offending field in its source document spelling.
func (d *Document) Validate() error {
	err := documentValidator().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return NewDocumentStructureError(strings.ToLower(verrs[0].Field()))
	}
	return err
}

// Parse parses a sublime-color-scheme JSON document. The format allows
// comments and trailing commas, so the data is run through jsonc first.
func Parse(data []byte) (*Document, error) {
	clean := jsonc.ToJSON(data)

	var doc Document
	if err := json.Unmarshal(clean, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse color scheme JSON: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseYAML parses a color scheme document authored in YAML.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse color scheme YAML: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a scheme document, choosing the parser by file
// extension. Anything that is not YAML is treated as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}
