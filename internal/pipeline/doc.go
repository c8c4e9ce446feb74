// Package pipeline runs the transform over whole source trees.
//
// Files are discovered with fastwalk and matched with doublestar globs,
// transformed by a fixed pool of workers and written to a mirror output
// tree. Outputs whose content did not change are left alone. Targets can
// be listed in a YAML or TOML manifest, and each run can be summarized as
// a JSON report, gzipped when its name ends in .gz.
package pipeline
