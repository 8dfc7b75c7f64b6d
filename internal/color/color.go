package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Literal grammar, tried in order: hex, functional rgb, functional hsl.
// Matching is a search rather than a full-string match because scheme values
// may combine a literal with modifiers or other tokens, e.g.
// "#aabbcc alpha(0.5)".
var (
	reHex   = regexp.MustCompile(`(#[0-9a-fA-F]{6})([0-9a-fA-F]{2})?`)
	reRGB   = regexp.MustCompile(`rgb\((\d+),\s*(\d+),\s*(\d+)(?:,\s*(\d*\.?\d+))?\)`)
	reHSL   = regexp.MustCompile(`hsl\((\d+),\s*(\d+)%,\s*(\d+)%(?:,\s*(\d*\.?\d+))?\)`)
	reAlpha = regexp.MustCompile(`alpha\((\d*\.?\d+)\)`)
)

// Parser normalizes color expressions into canonical hex literals:
// #rrggbb, with an #rrggbbaa alpha suffix present exactly when an alpha
// was determined during resolution.
type Parser struct {
	// Extended enables a fallback for CSS color syntaxes the core grammar
	// does not cover (named colors, short hex, modern functional notation).
	Extended bool
}

// NewParser creates a parser for the core hex/rgb/hsl grammar.
func NewParser() *Parser {
	return &Parser{}
}

// Normalize resolves a single color expression to its canonical literal.
// Strings that match no color pattern are returned unchanged; they are
// non-color tokens (font styles and the like) whose interpretation belongs
// to the theme consumer.
func (p *Parser) Normalize(s string) string {
	if hex, ok := p.matchHex(s); ok {
		return hex
	}
	if hex, ok := p.matchRGB(s); ok {
		return hex
	}
	if hex, ok := p.matchHSL(s); ok {
		return hex
	}
	if p.Extended {
		if c, err := csscolorparser.Parse(strings.TrimSpace(s)); err == nil {
			return c.HexString()
		}
	}
	return s
}

// matchHex handles #rrggbb literals with an optional embedded alpha byte.
// An explicit alpha() adjuster overrides the embedded byte.
func (p *Parser) matchHex(s string) (string, bool) {
	m := reHex.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	base := strings.ToLower(m[1])
	if a, ok := AlphaAdjuster(s); ok {
		return base + alphaHex(a), true
	}
	if m[2] != "" {
		return base + strings.ToLower(m[2]), true
	}
	return base, true
}

func (p *Parser) matchRGB(s string) (string, bool) {
	m := reRGB.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])
	if r > 255 || g > 255 || b > 255 {
		return "", false
	}
	base := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	if a, ok := alphaFor(s, m[4]); ok {
		base += alphaHex(a)
	}
	return base, true
}

func (p *Parser) matchHSL(s string) (string, bool) {
	m := reHSL.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	h, _ := strconv.Atoi(m[1])
	sat, _ := strconv.Atoi(m[2])
	lum, _ := strconv.Atoi(m[3])
	if h >= 360 || sat > 100 || lum > 100 {
		return "", false
	}
	r, g, b := colorful.Hsl(float64(h), float64(sat)/100, float64(lum)/100).RGB255()
	base := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	if a, ok := alphaFor(s, m[4]); ok {
		base += alphaHex(a)
	}
	return base, true
}

// AlphaAdjuster extracts an explicit alpha(<number>) modifier from anywhere
// in the value string. The number is an integer 0/1 or a fraction in [0,1].
func AlphaAdjuster(s string) (float64, bool) {
	m := reAlpha.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	a, err := strconv.ParseFloat(m[1], 64)
	if err != nil || a > 1 {
		return 0, false
	}
	return a, true
}

// alphaFor decides the alpha for a literal: the explicit adjuster wins over
// an alpha embedded in the functional notation.
func alphaFor(s, embedded string) (float64, bool) {
	if a, ok := AlphaAdjuster(s); ok {
		return a, true
	}
	if embedded != "" {
		a, err := strconv.ParseFloat(embedded, 64)
		if err == nil && a <= 1 {
			return a, true
		}
	}
	return 0, false
}

// alphaHex renders an alpha fraction as two lowercase hex digits.
// Truncation, not rounding: existing theme fixtures depend on
// floor(255*a), e.g. 0.5 → 7f.
func alphaHex(a float64) string {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return fmt.Sprintf("%02x", int(255*a))
}
