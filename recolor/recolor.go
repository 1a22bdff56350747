// Package recolor rewrites the values of color resources
// according to a name -> Category Assignment.
package recolor

import (
	"github.com/frantjc/repatch/android"
)

// Recolor replaces the value of every entry in res whose name is in a
// with the Config value for its Category. Other entries are left as-is
// and no entry is added, removed or reordered. cfg is validated before
// res is touched. It returns the number of entries that were assigned.
func Recolor(res *android.Resources, a *Assignment, cfg *Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	if res == nil {
		return 0, android.ErrNoResources
	}

	n := 0
	for i := range res.Entries {
		category, ok := a.Lookup(res.Entries[i].Name())
		if !ok {
			continue
		}

		res.Entries[i].Value = cfg.Value(category)
		n++
	}

	return n, nil
}
