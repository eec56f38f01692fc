package versioning

// Embedded by the build system via ldflags
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)
