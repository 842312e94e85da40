// Package config loads, layers, and validates scenario configuration.
//
// A scenario is described by one or more YAML layers (the scenario file,
// platform overrides, user overrides) folded into one effective
// configuration with conftree.Merge. Explicit layers fold under the
// caller's conflict policy; the built-in defaults never conflict, they
// yield to any explicit value. The effective result can be rendered as
// YAML or JSON, queried by dotted path, checked against the scenario
// schema, and decoded into instance records.
//
// Tool-level runtime settings (platform, output format, strictness, color)
// fold from command-line flags over ROLESPEC_* environment variables over
// built-in defaults.
package config
