package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
)

// ScenarioFilenames contains the file names probed when a directory is
// given in place of a scenario file.
var ScenarioFilenames = []string{
	"rolespec.yaml",
	"rolespec.yml",
	".rolespec.yaml",
}

// LoadFile reads one configuration layer from a YAML file. An empty file
// yields an empty layer; a document that is not a mapping is an error.
func LoadFile(path string) (conftree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config layer: %w", err)
	}

	tree := conftree.Tree{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing config layer %s: %w", path, err)
	}
	return tree, nil
}

// FindScenarioFile probes dir for a scenario file, trying each known
// filename in order.
func FindScenarioFile(dir string) (string, bool) {
	for _, filename := range ScenarioFilenames {
		path := filepath.Join(dir, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ResolveLayerPath turns a merge argument into a layer file path: a file
// path is used as-is, a directory is probed for a scenario file.
func ResolveLayerPath(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return "", fmt.Errorf("config layer %s: %w", arg, err)
	}
	if !info.IsDir() {
		return arg, nil
	}
	path, found := FindScenarioFile(arg)
	if !found {
		return "", fmt.Errorf("no scenario file found in %s", arg)
	}
	return path, nil
}
