// Package template renders scenario file templates.
//
// A template reference is resolved against the filesystem first (the
// directory of the reference path) and the built-in template set second, so
// a scenario can shadow any bundled template by shipping a file of the same
// name. Rendering uses pongo2 with autoescaping disabled: everything this
// tool generates is plain text, not HTML.
//
// Every render sees the default context (scenario_id, generated_at) plus
// the caller's variables, and the to_yaml/to_json filters for emitting
// structured fragments.
package template
