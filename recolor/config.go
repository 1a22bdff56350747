package recolor

import (
	"errors"
	"fmt"
)

// Config holds the replacement value for each Category. Each value
// is either a hex color (#AARRGGBB, #RRGGBB) or a resource reference
// such as @android:color/black; neither form is checked here.
type Config struct {
	PrimaryBackground   string
	SecondaryBackground string
	Accent              string
	AccentSecondary     string
	AccentPressed       string
}

func (c *Config) Value(category Category) string {
	switch category {
	case PrimaryBackground:
		return c.PrimaryBackground
	case SecondaryBackground:
		return c.SecondaryBackground
	case Accent:
		return c.Accent
	case AccentSecondary:
		return c.AccentSecondary
	case AccentPressed:
		return c.AccentPressed
	}

	return ""
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	errs := []error{}

	for _, category := range Categories {
		if c.Value(category) == "" {
			errs = append(errs, fmt.Errorf("%s is required", category))
		}
	}

	return errors.Join(errs...)
}
