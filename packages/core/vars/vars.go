// Package vars collects template variables from dotenv files, YAML files,
// and key=value command-line pairs.
package vars

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromDotEnv parses a dotenv file into template variables.
// Supports: KEY=value, KEY="quoted value", KEY='single quoted', # comments,
// and an optional leading "export ". Values stay strings.
func FromDotEnv(path string) (map[string]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open env file: %w", err)
	}
	defer file.Close()

	result := make(map[string]any)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		// Find the first = sign
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}

		// Handle quoted values
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		result[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}

	return result, nil
}

// FromYAMLFile loads a YAML mapping of template variables. Nested mappings
// and sequences pass through to the template context unchanged.
func FromYAMLFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read vars file: %w", err)
	}

	result := map[string]any{}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing vars file %s: %w", path, err)
	}
	return result, nil
}

// FromPairs parses repeated key=value flag arguments.
func FromPairs(pairs []string) (map[string]any, error) {
	result := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", pair)
		}
		result[key] = value
	}
	return result, nil
}

// Overlay combines variable sources into one map; later sources win per
// top-level key.
func Overlay(sources ...map[string]any) map[string]any {
	result := map[string]any{}
	for _, source := range sources {
		for key, value := range source {
			result[key] = value
		}
	}
	return result
}
