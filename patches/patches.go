// Package patches lists every patch shipped with repatch.
package patches

import (
	"github.com/frantjc/repatch"
	"github.com/frantjc/repatch/patches/spotify/layout/theme"
)

var all = []*repatch.Patch{
	theme.Patch,
}

func All() []*repatch.Patch {
	return append([]*repatch.Patch{}, all...)
}

func Get(name string) (*repatch.Patch, bool) {
	for _, patch := range all {
		if patch.Name == name {
			return patch, true
		}
	}

	return nil, false
}
