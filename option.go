package repatch

import (
	"errors"
	"fmt"
)

// Option is a string option a Patch may be configured with.
type Option struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Default     string `yaml:"default,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

// Values are resolved Option values keyed by Option.Key.
type Values map[string]string

func (v Values) Get(key string) string {
	return v[key]
}

// Defaults returns the default value of each of the Patch's Options.
func (p *Patch) Defaults() Values {
	values := Values{}
	for _, opt := range p.Options {
		values[opt.Key] = opt.Default
	}

	return values
}

// Resolve overlays values onto the Patch's defaults. Keys that do
// not belong to one of the Patch's Options are ignored. A required
// Option that resolves to the empty string is an error.
func (p *Patch) Resolve(values map[string]string) (Values, error) {
	var (
		resolved = p.Defaults()
		errs     = []error{}
	)

	for key, value := range values {
		if _, ok := resolved[key]; ok {
			resolved[key] = value
		}
	}

	for _, opt := range p.Options {
		if opt.Required && resolved[opt.Key] == "" {
			errs = append(errs, fmt.Errorf("%w %s for patch %s", ErrMissingOption, opt.Key, p.Name))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return resolved, nil
}
