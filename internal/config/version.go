package config

// Version is the fragmentor binary version.
// Set at build time via: -ldflags "-X github.com/spectrakit/fragmentor/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
