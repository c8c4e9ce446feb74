// Package cli implements the sfcx command line.
//
// Commands:
//   - transform FILE: resolve one component to stdout
//   - build: transform a tree of components with a worker pool
//   - serve: run the HTTP transform service
//   - version
//
// Configuration comes from the environment (see package config); flags
// override it.
package cli
