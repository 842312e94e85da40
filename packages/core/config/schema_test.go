package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
)

func TestValidateAcceptsScenario(t *testing.T) {
	assert.NoError(t, scenarioEffective().Validate(nil))
}

func TestValidateRejectsMissingRole(t *testing.T) {
	eff := &Effective{Tree: conftree.Tree{
		"driver": conftree.Tree{"name": "docker"},
	}}

	err := eff.Validate(nil)

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Violations)
	assert.Contains(t, err.Error(), "role")
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		tree conftree.Tree
		want string
	}{
		{
			name: "empty role name",
			tree: conftree.Tree{"role": conftree.Tree{"name": ""}},
			want: "role.name",
		},
		{
			name: "instances not a sequence",
			tree: conftree.Tree{
				"role":      conftree.Tree{"name": "nginx"},
				"instances": "web",
			},
			want: "instances",
		},
		{
			name: "platform without name",
			tree: conftree.Tree{
				"role":      conftree.Tree{"name": "nginx"},
				"platforms": []any{map[string]any{"image": "ubuntu:24.04"}},
			},
			want: "platforms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Effective{Tree: tt.tree}).Validate(nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateCustomSchema(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"required": ["pipeline"],
		"properties": {
			"pipeline": {"type": "string"}
		}
	}`)

	t.Run("pass", func(t *testing.T) {
		eff := &Effective{Tree: conftree.Tree{"pipeline": "deploy"}}
		assert.NoError(t, eff.Validate(schema))
	})

	t.Run("fail", func(t *testing.T) {
		eff := &Effective{Tree: conftree.Tree{"role": conftree.Tree{"name": "nginx"}}}
		err := eff.Validate(schema)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pipeline")
	})
}

func TestValidationErrorJoinsViolations(t *testing.T) {
	err := &ValidationError{Violations: []string{"role is required", "instances: wrong type"}}

	assert.Equal(t, "invalid scenario configuration: role is required; instances: wrong type", err.Error())
}
