package template

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, tpl string, vars map[string]any) string {
	t.Helper()
	builtin := fstest.MapFS{
		"filter.tmpl": &fstest.MapFile{Data: []byte(tpl)},
	}
	r := NewRenderer(WithBuiltinFS(builtin))
	got, err := r.Render("filter.tmpl", vars)
	require.NoError(t, err)
	return got
}

func TestToYAMLFilter(t *testing.T) {
	got := renderString(t, "{{ settings | to_yaml }}", map[string]any{
		"settings": map[string]any{"memory": 512},
	})

	assert.Equal(t, "memory: 512", got)
}

func TestToYAMLFilterNested(t *testing.T) {
	got := renderString(t, "{{ driver | to_yaml }}", map[string]any{
		"driver": map[string]any{
			"options": map[string]any{"privileged": true},
		},
	})

	assert.Contains(t, got, "options:")
	assert.Contains(t, got, "privileged: true")
}

func TestToJSONFilter(t *testing.T) {
	got := renderString(t, "{{ groups | to_json }}", map[string]any{
		"groups": []string{"web", "lb"},
	})

	assert.Equal(t, `["web","lb"]`, got)
}

func TestFiltersDoNotEscapeText(t *testing.T) {
	got := renderString(t, "{{ value }}", map[string]any{
		"value": `a & b "quoted" <tag>`,
	})

	assert.Equal(t, `a & b "quoted" <tag>`, got)
}
