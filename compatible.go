package repatch

import (
	xslice "github.com/frantjc/x/slice"
	xstrings "github.com/frantjc/x/strings"
	"golang.org/x/mod/semver"
)

// CompatiblePackage is an Android package a Patch is known to work with.
// An empty Versions means every version.
type CompatiblePackage struct {
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions,omitempty"`
}

func (c *CompatiblePackage) IsCompatible(pkg, version string) bool {
	if c.Name != pkg {
		return false
	}

	if len(c.Versions) == 0 {
		return true
	}

	return xslice.Some(c.Versions, func(v string, _ int) bool {
		return sameVersion(v, version)
	})
}

// IsCompatible reports whether the Patch may be applied to the given
// package at the given version. A Patch with no CompatiblePackages
// may be applied to anything.
func (p *Patch) IsCompatible(pkg, version string) bool {
	if len(p.CompatiblePackages) == 0 {
		return true
	}

	return xslice.Some(p.CompatiblePackages, func(c CompatiblePackage, _ int) bool {
		return c.IsCompatible(pkg, version)
	})
}

// sameVersion compares a and b as semantic versions when both are
// valid ones, e.g. "1.2" and "v1.2.0", and exactly otherwise, e.g.
// "8.9.10.618".
func sameVersion(a, b string) bool {
	var (
		sa = semver.Canonical(xstrings.EnsurePrefix(a, "v"))
		sb = semver.Canonical(xstrings.EnsurePrefix(b, "v"))
	)
	if sa != "" && sb != "" {
		return sa == sb
	}

	return a == b
}
