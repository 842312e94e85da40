package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatName(t *testing.T) {
	instances := []Instance{
		{
			Name:    "web",
			Options: map[string]any{"append_platform_to_hostname": true},
		},
		{
			Name: "db",
		},
		{
			Name:    "cache",
			Options: map[string]any{"append_platform_to_hostname": false},
		},
		{
			Name:    "web",
			Options: nil,
		},
	}

	tests := []struct {
		name     string
		lookup   string
		platform string
		expected string
		found    bool
	}{
		{
			name:     "option enabled appends platform",
			lookup:   "web",
			platform: "ec2",
			expected: "web-ec2",
			found:    true,
		},
		{
			name:     "no options keeps base name",
			lookup:   "db",
			platform: "ec2",
			expected: "db",
			found:    true,
		},
		{
			name:     "option disabled keeps base name",
			lookup:   "cache",
			platform: "ec2",
			expected: "cache",
			found:    true,
		},
		{
			name:     "no matching record",
			lookup:   "proxy",
			platform: "ec2",
			expected: "",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FormatName(tt.lookup, tt.platform, instances)

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatNameFirstMatchWins(t *testing.T) {
	instances := []Instance{
		{Name: "web"},
		{Name: "web", Options: map[string]any{"append_platform_to_hostname": true}},
	}

	got, found := FormatName("web", "gce", instances)

	require.True(t, found)
	assert.Equal(t, "web", got)
}

func TestFromConfig(t *testing.T) {
	section := []any{
		map[string]any{
			"name":   "web",
			"groups": []any{"web", "lb"},
			"options": map[string]any{
				"append_platform_to_hostname": true,
			},
		},
		map[string]any{"name": "db"},
		map[string]any{"groups": []any{"orphan"}},
		"not a record",
	}

	instances := FromConfig(section)

	require.Len(t, instances, 2)
	assert.Equal(t, "web", instances[0].Name)
	assert.Equal(t, []string{"web", "lb"}, instances[0].Groups)
	assert.Equal(t, true, instances[0].Options["append_platform_to_hostname"])
	assert.Equal(t, "db", instances[1].Name)
	assert.Nil(t, instances[1].Options)
}

func TestFromConfigNotASequence(t *testing.T) {
	assert.Nil(t, FromConfig("instances"))
	assert.Nil(t, FromConfig(nil))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "true", value: true, expected: true},
		{name: "false", value: false, expected: false},
		{name: "nil", value: nil, expected: false},
		{name: "non-empty string", value: "yes", expected: true},
		{name: "empty string", value: "", expected: false},
		{name: "non-zero int", value: 1, expected: true},
		{name: "zero int", value: 0, expected: false},
		{name: "zero float", value: 0.0, expected: false},
		{name: "empty sequence", value: []any{}, expected: false},
		{name: "non-empty sequence", value: []any{1}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truthy(tt.value))
		})
	}
}
