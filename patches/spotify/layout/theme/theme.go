// Package theme implements the Spotify "Custom theme" patch, which
// recolors the app by rewriting res/values/colors.xml.
package theme

import (
	"context"

	"github.com/frantjc/repatch"
	"github.com/frantjc/repatch/android"
	"github.com/frantjc/repatch/internal/patchregexp"
	"github.com/frantjc/repatch/recolor"
)

const (
	OptionPrimaryBackground   = "primaryBackground"
	OptionSecondaryBackground = "secondaryBackground"
	OptionAccent              = "accent"
	OptionAccentSecondary     = "accentSecondary"
	OptionAccentPressed       = "accentPressed"
)

var Patch = &repatch.Patch{
	Name:        "Custom theme",
	Description: "Applies a custom theme.",
	CompatiblePackages: []repatch.CompatiblePackage{
		{Name: "com.spotify.music"},
	},
	Options: []repatch.Option{
		{
			Key:         OptionPrimaryBackground,
			Title:       "Primary background color",
			Description: "The background color. Can be a hex color or a resource reference.",
			Default:     "@android:color/black",
			Required:    true,
		},
		{
			Key:         OptionSecondaryBackground,
			Title:       "Secondary background color",
			Description: "The secondary background color. This changes Settings header, Search Box background, etc. Can be a hex color or a resource reference.",
			Default:     "#ff282828",
			Required:    true,
		},
		{
			Key:         OptionAccent,
			Title:       "Accent color",
			Description: "The accent color ('Spotify green' by default). Can be a hex color or a resource reference.",
			Default:     "#ff1ed760",
			Required:    true,
		},
		{
			Key:         OptionAccentSecondary,
			Title:       "Secondary accent color",
			Description: "The secondary accent color, a darker accent color ('Spotify dark green' by default). Can be a hex color or a resource reference.",
			Default:     "#ff14833b",
			Required:    true,
		},
		{
			Key:         OptionAccentPressed,
			Title:       "Pressed dark theme accent color",
			Description: "The color when accented buttons are pressed, by default slightly darker than accent. Can be a hex color or a resource reference.",
			Default:     "#ff169c46",
			Required:    true,
		},
	},
	Execute: execute,
}

// Config maps resolved option values onto a recolor.Config.
func Config(values repatch.Values) *recolor.Config {
	return &recolor.Config{
		PrimaryBackground:   values.Get(OptionPrimaryBackground),
		SecondaryBackground: values.Get(OptionSecondaryBackground),
		Accent:              values.Get(OptionAccent),
		AccentSecondary:     values.Get(OptionAccentSecondary),
		AccentPressed:       values.Get(OptionAccentPressed),
	}
}

func execute(ctx context.Context, rc repatch.ResourceContext, values repatch.Values) error {
	var (
		log = repatch.LoggerFrom(ctx)
		cfg = Config(values)
	)

	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, category := range recolor.Categories {
		if value := cfg.Value(category); !patchregexp.IsColor(value) {
			log.Info("value is neither a hex color nor a resource reference", "option", category.String(), "value", value)
		}
	}

	return repatch.EditResources(ctx, rc, android.ColorsName, func(res *android.Resources) error {
		n, err := recolor.Recolor(res, Assignment, cfg)
		if err != nil {
			return err
		}

		log.V(1).Info("recolored resources", "name", android.ColorsName, "recolored", n, "entries", len(res.Entries))

		return nil
	})
}
