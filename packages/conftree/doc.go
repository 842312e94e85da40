// Package conftree merges layered configuration trees into one effective
// configuration.
//
// A tree is a nested string-keyed mapping as produced by the YAML and JSON
// decoders. Merging folds a source tree into a target tree one key at a
// time: missing keys are inserted, nested mappings are merged recursively,
// equal leaves are left alone, and disagreeing leaves are resolved by the
// merge policy (overwrite, or fail with the dotted path of the collision).
//
// Merge mutates the target in place and returns it. The source tree is never
// mutated, and mapping values copied in from the source are deep-copied so
// the two trees share no structure afterwards.
package conftree
