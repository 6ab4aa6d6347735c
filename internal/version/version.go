// Package version provides version information for the application.
package version

import "runtime/debug"

// Set at build time via -ldflags, with build info as a fallback.
var (
	Version  = "dev"
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" && s.Value != "" {
			Revision = s.Value
		}
	}
}
