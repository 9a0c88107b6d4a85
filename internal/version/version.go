package version

// Version is overridden at build time with -ldflags "-X palscan/internal/version.Version=...".
var Version = "dev"
