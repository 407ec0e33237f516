// Package gndefrag reorders storage objects to lower layout fragmentation
// and raise a composite performance score.
package gndefrag

var (
	// Version of gndefrag, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
