package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/frantjc/repatch"
	"github.com/frantjc/repatch/internal/resblob"
	"github.com/frantjc/repatch/patches"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newApply() *cobra.Command {
	var (
		names       []string
		options     map[string]string
		optionsFile string
		force       bool
		cmd         = &cobra.Command{
			Use:   "apply DIR|URL",
			Short: "Apply patches to a directory decoded by apktool",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx = cmd.Context()
					log = repatch.LoggerFrom(ctx)
				)

				fileOptions, err := readOptionsFile(optionsFile)
				if err != nil {
					return err
				}

				log.Info("opening bucket " + args[0])
				bucket, err := resblob.OpenBucket(ctx, args[0])
				if err != nil {
					return err
				}
				defer bucket.Close()

				rc := resblob.NewContext(bucket)

				pkg, version, err := packageVersion(ctx, rc)
				if err != nil {
					if !force {
						return err
					}

					log.Error(err, "ignoring unknown package")
				}

				selected, err := selectPatches(patches.All(), names, pkg, version, force)
				if err != nil {
					return err
				}

				if len(selected) == 0 {
					return fmt.Errorf("no patches compatible with %s %s", pkg, version)
				}

				selectedNames := xslice.Map(selected, func(patch *repatch.Patch, _ int) string {
					return patch.Name
				})

				for _, patch := range selected {
					for _, dependency := range patch.Dependencies {
						if !xslice.Includes(selectedNames, dependency) {
							log.Info("dependency not selected", "patch", patch.Name, "dependency", dependency)
						}
					}

					values := map[string]string{}
					maps.Copy(values, fileOptions[patch.Name])
					maps.Copy(values, options)

					log.Info("applying " + patch.Name)
					if err := patch.Apply(ctx, rc, values); err != nil {
						return err
					}
				}

				return encodeYAML(cmd, rc.Written())
			},
		}
	)

	cmd.Flags().StringArrayVarP(&names, "patch", "p", nil, "name of a patch to apply; defaults to every compatible patch")
	cmd.Flags().StringToStringVarP(&options, "option", "O", nil, "option key=value passed to every selected patch")
	cmd.Flags().StringVar(&optionsFile, "options", "", "YAML file of patch name to option key to value")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "apply patches even if they are incompatible")

	return cmd
}

// packageVersion returns the package name and version of the decoded
// app in rc. The version comes from apktool.yml, falling back to
// AndroidManifest.xml when there is no apktool.yml.
func packageVersion(ctx context.Context, rc *resblob.Context) (string, string, error) {
	manifest, err := rc.Manifest(ctx)
	if err != nil {
		return "", "", err
	}

	metadata, err := rc.Metadata(ctx)
	if errors.Is(err, resblob.ErrNotFound) {
		return manifest.Package(), manifest.VersionName(), nil
	} else if err != nil {
		return "", "", err
	}

	return manifest.Package(), xslice.Coalesce(metadata.AppVersion(), manifest.VersionName()), nil
}

// selectPatches returns the named patches, or every non-deprecated
// compatible patch if no names are given.
func selectPatches(all []*repatch.Patch, names []string, pkg, version string, force bool) ([]*repatch.Patch, error) {
	if len(names) == 0 {
		return xslice.Filter(all, func(patch *repatch.Patch, _ int) bool {
			return !patch.IsDeprecated() && patch.IsCompatible(pkg, version)
		}), nil
	}

	selected := []*repatch.Patch{}
	for _, name := range names {
		patch, ok := findPatch(all, name)
		if !ok {
			return nil, fmt.Errorf("unknown patch %s", name)
		}

		if !force && !patch.IsCompatible(pkg, version) {
			return nil, fmt.Errorf("%w: %s is not compatible with %s %s", repatch.ErrIncompatible, name, pkg, version)
		}

		selected = append(selected, patch)
	}

	return selected, nil
}

func findPatch(all []*repatch.Patch, name string) (*repatch.Patch, bool) {
	for _, patch := range all {
		if patch.Name == name {
			return patch, true
		}
	}

	return nil, false
}

func readOptionsFile(name string) (map[string]map[string]string, error) {
	options := map[string]map[string]string{}
	if name == "" {
		return options, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = yaml.NewDecoder(f).Decode(&options); errors.Is(err, io.EOF) {
		return options, nil
	} else if err != nil {
		return nil, fmt.Errorf("decode options file %s: %w", name, err)
	}

	return options, nil
}
