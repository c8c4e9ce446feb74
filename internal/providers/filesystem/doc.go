// Package filesystem reads component sources for the transform.
//
// Loader reads from the local disk, optionally confined to a root. It
// refuses binary files and decodes non UTF-8 text. Cached puts an LRU in front of any Reader so a
// batch build reads shared bases once.
package filesystem
