package version

// Version is overridden at build time with -ldflags "-X drach/internal/version.Version=...".
var Version = "dev"
