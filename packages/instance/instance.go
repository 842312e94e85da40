// Package instance describes the test instances declared in a scenario
// configuration and derives their display hostnames.
package instance

// Instance is one record from the instances section of a scenario
// configuration.
type Instance struct {
	Name    string         `yaml:"name" json:"name"`
	Groups  []string       `yaml:"groups,omitempty" json:"groups,omitempty"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

const appendPlatformOption = "append_platform_to_hostname"

// FormatName returns the display hostname for the named instance. The first
// record whose Name matches wins, in slice order. An instance without
// options keeps its base name; an instance whose options set
// append_platform_to_hostname to a true value gets the platform appended as
// "name-platform". The second return is false when no record matches.
func FormatName(name, platform string, instances []Instance) (string, bool) {
	for _, inst := range instances {
		if inst.Name != name {
			continue
		}
		if truthy(inst.Options[appendPlatformOption]) {
			return name + "-" + platform, true
		}
		return name, true
	}
	return "", false
}

// FromConfig decodes the instances section of an effective configuration.
// Decoder output arrives as []any of map[string]any; records without a name
// are skipped.
func FromConfig(v any) []Instance {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	instances := make([]Instance, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, ok := record["name"].(string)
		if !ok || name == "" {
			continue
		}

		inst := Instance{Name: name}
		if groups, ok := record["groups"].([]any); ok {
			for _, g := range groups {
				if s, ok := g.(string); ok {
					inst.Groups = append(inst.Groups, s)
				}
			}
		}
		if opts, ok := record["options"].(map[string]any); ok {
			inst.Options = opts
		}
		instances = append(instances, inst)
	}
	return instances
}

// truthy mirrors the loose truth test scenario authors expect for option
// values: false, zero, empty string, empty container, and nil are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
