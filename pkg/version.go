package pubdb

var (
	// Version of the pubdb. It is set during the build.
	Version = "v0.1.0"
	// Build timestamp. It is set during the build.
	Build = "n/a"
)
