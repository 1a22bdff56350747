package repatch

import "runtime/debug"

var (
	// Version is overridden at build time with
	// -ldflags "-X github.com/frantjc/repatch.Version=...".
	Version = "0.0.0"
	// Prerelease is overridden at build time.
	Prerelease = ""
)

// SemVer returns the semantic version of repatch, including
// the VCS revision when the binary was built with one.
func SemVer() string {
	semver := Version

	if Prerelease != "" {
		semver += "-" + Prerelease
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				semver += "+" + setting.Value[:7]
				break
			}
		}
	}

	return semver
}
