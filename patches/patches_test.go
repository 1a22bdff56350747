package patches

import (
	"testing"

	"github.com/frantjc/repatch/internal/patchregexp"
)

func TestAll(t *testing.T) {
	seen := map[string]bool{}

	for _, patch := range All() {
		if patch.Name == "" {
			t.Error("patch without a name")
		}

		if seen[patch.Name] {
			t.Errorf("duplicate patch name %s", patch.Name)
		}
		seen[patch.Name] = true

		if patch.Execute == nil {
			t.Errorf("patch %s has no Execute", patch.Name)
		}

		for _, pkg := range patch.CompatiblePackages {
			if !patchregexp.IsPackageName(pkg.Name) {
				t.Errorf("patch %s has invalid compatible package %q", patch.Name, pkg.Name)
			}
		}

		for _, dependency := range patch.Dependencies {
			if _, ok := Get(dependency); !ok {
				t.Errorf("patch %s depends on unknown patch %s", patch.Name, dependency)
			}
		}

		if _, err := patch.Resolve(nil); err != nil {
			t.Errorf("patch %s defaults do not resolve: %v", patch.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	if patch, ok := Get("Custom theme"); !ok || patch.Name != "Custom theme" {
		t.Errorf("expected to get Custom theme, got %v (%t)", patch, ok)
	}

	if _, ok := Get("custom theme"); ok {
		t.Error("expected Get to be case sensitive")
	}
}
