package config

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
	"github.com/abdul-hamid-achik/rolespec/packages/instance"
)

// Effective is the merged result of a configuration stack.
type Effective struct {
	Tree conftree.Tree
}

// YAML renders the effective configuration.
func (e *Effective) YAML() ([]byte, error) {
	return yaml.Marshal(e.Tree)
}

// JSON renders the effective configuration with indentation.
func (e *Effective) JSON() ([]byte, error) {
	return json.MarshalIndent(e.Tree, "", "  ")
}

// Query extracts one value from the effective configuration by gjson path,
// for example "driver.name" or "instances.0.options".
func (e *Effective) Query(path string) (gjson.Result, error) {
	data, err := json.Marshal(e.Tree)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("encoding effective configuration: %w", err)
	}
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("path %q not found in effective configuration", path)
	}
	return result, nil
}

// Instances decodes the instances section into records for hostname
// formatting.
func (e *Effective) Instances() []instance.Instance {
	return instance.FromConfig(e.Tree["instances"])
}

// DefaultPlatform returns the name of the first declared platform, or ""
// when the scenario declares none.
func (e *Effective) DefaultPlatform() string {
	platforms, ok := e.Tree["platforms"].([]any)
	if !ok || len(platforms) == 0 {
		return ""
	}
	first, ok := platforms[0].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := first["name"].(string)
	return name
}

// Matches reports whether the effective configuration equals other, using
// merge leaf equality so numeric representation differences between YAML
// and JSON sources do not count as drift.
func (e *Effective) Matches(other conftree.Tree) bool {
	return conftree.Equal(e.Tree, other)
}
