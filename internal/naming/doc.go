// Package naming decides where each photo ends up: natural ordering of
// source file names, validation of target names, target path building, and
// in-run collision resolution.
package naming
