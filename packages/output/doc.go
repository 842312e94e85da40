// Package output writes user-facing text for the rolespec CLI.
//
// All output goes through a Console bound to explicit stdout/stderr streams
// so tests can capture it. Print and Eprint emit text exactly as given, with
// no implicit trailing newline, and flush the stream after every write when
// the stream is buffered. Debug renders a highlighted block for verbose
// diagnostics. Color comes from fatih/color and can be disabled per Console.
package output
