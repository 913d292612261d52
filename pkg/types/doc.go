// Package types defines the Alignment interfaces, the symbol list, sequence
// and site value types, the Alphabet capability consumed by them, and the
// standard error values for the alignstore storage engine.
package types
