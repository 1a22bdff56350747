// Package repatch declares patches for decoded Android apps.
package repatch

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrMissingOption = errors.New("missing required option")
	ErrIncompatible  = errors.New("incompatible package")
)

// Patch is the declarative description of a patch together with
// the function that carries it out.
type Patch struct {
	Name               string              `yaml:"name"`
	Description        string              `yaml:"description,omitempty"`
	CompatiblePackages []CompatiblePackage `yaml:"compatiblePackages,omitempty"`
	// Dependencies names the patches that must be applied before this one.
	Dependencies []string `yaml:"dependencies,omitempty"`
	// Deprecated, when non-empty, says why the patch should no longer be used.
	Deprecated string   `yaml:"deprecated,omitempty"`
	Options    []Option `yaml:"options,omitempty"`

	Execute func(context.Context, ResourceContext, Values) error `yaml:"-"`
}

func (p *Patch) IsDeprecated() bool {
	return p.Deprecated != ""
}

// Apply resolves values against the Patch's Options and executes it
// against rc. Nothing is executed if any required Option is missing.
func (p *Patch) Apply(ctx context.Context, rc ResourceContext, values map[string]string) error {
	if p.Execute == nil {
		return fmt.Errorf("patch %s has nothing to execute", p.Name)
	}

	resolved, err := p.Resolve(values)
	if err != nil {
		return err
	}

	log := LoggerFrom(ctx).WithValues("patch", p.Name)
	if p.IsDeprecated() {
		log.Info("applying deprecated patch", "reason", p.Deprecated)
	}

	log.V(1).Info("applying patch")

	if err := p.Execute(WithLogger(ctx, log), rc, resolved); err != nil {
		return fmt.Errorf("apply %s: %w", p.Name, err)
	}

	return nil
}
