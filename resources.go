package repatch

import (
	"context"

	"github.com/frantjc/repatch/android"
)

// ResourceContext gives a Patch access to the decoded resource
// documents of an app, e.g. android.ColorsName.
type ResourceContext interface {
	Resources(context.Context, string) (*android.Resources, error)
	SetResources(context.Context, string, *android.Resources) error
}

// EditResources reads the named document from rc, passes it to fn and,
// if fn succeeds, writes it back.
func EditResources(ctx context.Context, rc ResourceContext, name string, fn func(*android.Resources) error) error {
	res, err := rc.Resources(ctx, name)
	if err != nil {
		return err
	}

	if err = fn(res); err != nil {
		return err
	}

	return rc.SetResources(ctx, name, res)
}
