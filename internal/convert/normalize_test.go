package convert_test

import (
	"testing"

	"github.com/schemeconv/schemeconv/internal/convert"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Run("underscore pairs become medial capitals", func(t *testing.T) {
		assert.Equal(t, "backgroundColor", convert.Key("background_color"))
		assert.Equal(t, "lineHighlight", convert.Key("line_highlight"))
		assert.Equal(t, "bracketContentsOptions", convert.Key("bracket_contents_options"))
	})

	t.Run("keys without underscores pass through", func(t *testing.T) {
		assert.Equal(t, "foreground", convert.Key("foreground"))
		assert.Equal(t, "", convert.Key(""))
	})

	t.Run("digits count as word characters", func(t *testing.T) {
		assert.Equal(t, "accent1", convert.Key("accent_1"))
	})

	t.Run("trailing underscore is untouched", func(t *testing.T) {
		assert.Equal(t, "odd_", convert.Key("odd_"))
	})
}

func TestScope(t *testing.T) {
	t.Run("subtraction separator becomes a comma", func(t *testing.T) {
		assert.Equal(t, "string, comment", convert.Scope("string - comment"))
	})

	t.Run("alternation separator becomes a comma", func(t *testing.T) {
		assert.Equal(t, "keyword, storage.modifier", convert.Scope("keyword | storage.modifier"))
	})

	t.Run("grouping parentheses collapse to a space", func(t *testing.T) {
		assert.Equal(t, "foo bar", convert.Scope("foo (bar)"))
		assert.Equal(t, "markup.inserted diff", convert.Scope("markup.inserted (diff)"))
	})

	t.Run("plain selectors pass through", func(t *testing.T) {
		assert.Equal(t, "comment", convert.Scope("comment"))
		assert.Equal(t, "source.go keyword", convert.Scope("source.go keyword"))
	})

	t.Run("underscore transform applies to selectors too", func(t *testing.T) {
		assert.Equal(t, "entity.name.fooBar", convert.Scope("entity.name.foo_bar"))
	})
}
