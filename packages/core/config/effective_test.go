package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
)

func scenarioEffective() *Effective {
	return &Effective{Tree: conftree.Tree{
		"role":   conftree.Tree{"name": "nginx"},
		"driver": conftree.Tree{"name": "docker", "memory": 512},
		"platforms": []any{
			map[string]any{"name": "ubuntu2404"},
			map[string]any{"name": "debian12"},
		},
		"instances": []any{
			map[string]any{"name": "web", "groups": []any{"frontend"}},
		},
	}}
}

func TestEffectiveYAML(t *testing.T) {
	out, err := scenarioEffective().YAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "docker", decoded["driver"].(map[string]any)["name"])
}

func TestEffectiveJSON(t *testing.T) {
	out, err := scenarioEffective().JSON()
	require.NoError(t, err)

	assert.True(t, json.Valid(out))
	assert.Contains(t, string(out), "\n  \"driver\"")
}

func TestEffectiveQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "leaf", path: "driver.name", want: "docker"},
		{name: "numeric leaf", path: "driver.memory", want: "512"},
		{name: "array index", path: "platforms.0.name", want: "ubuntu2404"},
		{name: "nested array field", path: "instances.0.groups.0", want: "frontend"},
	}

	eff := scenarioEffective()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := eff.Query(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.String())
		})
	}
}

func TestEffectiveQueryMissingPath(t *testing.T) {
	_, err := scenarioEffective().Query("driver.volumes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver.volumes")
}

func TestEffectiveInstances(t *testing.T) {
	instances := scenarioEffective().Instances()

	require.Len(t, instances, 1)
	assert.Equal(t, "web", instances[0].Name)
	assert.Equal(t, []string{"frontend"}, instances[0].Groups)
}

func TestEffectiveInstancesAbsent(t *testing.T) {
	eff := &Effective{Tree: conftree.Tree{"role": conftree.Tree{"name": "nginx"}}}

	assert.Empty(t, eff.Instances())
}

func TestEffectiveDefaultPlatform(t *testing.T) {
	assert.Equal(t, "ubuntu2404", scenarioEffective().DefaultPlatform())

	bare := &Effective{Tree: conftree.Tree{}}
	assert.Equal(t, "", bare.DefaultPlatform())
}

func TestEffectiveMatches(t *testing.T) {
	a := scenarioEffective()

	t.Run("identical trees match", func(t *testing.T) {
		assert.True(t, a.Matches(scenarioEffective().Tree))
	})

	t.Run("numeric representation does not drift", func(t *testing.T) {
		other := scenarioEffective()
		other.Tree["driver"].(map[string]any)["memory"] = float64(512)
		assert.True(t, a.Matches(other.Tree))
	})

	t.Run("changed leaf drifts", func(t *testing.T) {
		other := scenarioEffective()
		other.Tree["driver"].(map[string]any)["name"] = "podman"
		assert.False(t, a.Matches(other.Tree))
	})
}
