package version

// AppVersion is the devcheck release version. Overridable at build time via
// -ldflags "-X devcheck/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
