package repatch

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"testing"

	"github.com/frantjc/repatch/android"
)

type memResourceContext map[string]*android.Resources

func (m memResourceContext) Resources(_ context.Context, name string) (*android.Resources, error) {
	res, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s not found", name)
	}

	return res, nil
}

func (m memResourceContext) SetResources(_ context.Context, name string, res *android.Resources) error {
	m[name] = res
	return nil
}

func newTestPatch(executed *int) *Patch {
	return &Patch{
		Name: "Test",
		Options: []Option{
			{Key: "color", Default: "#ff000000", Required: true},
			{Key: "optional"},
		},
		Execute: func(ctx context.Context, rc ResourceContext, values Values) error {
			*executed++
			return EditResources(ctx, rc, android.ColorsName, func(res *android.Resources) error {
				res.Entries = append(res.Entries, android.ResourceEntry{
					XMLName: xml.Name{Local: "color"},
					Value:   values.Get("color"),
				})
				return nil
			})
		},
	}
}

func TestPatchResolve(t *testing.T) {
	var (
		executed = 0
		patch    = newTestPatch(&executed)
	)

	values, err := patch.Resolve(map[string]string{"optional": "x", "unknown": "y"})
	if err != nil {
		t.Fatal(err)
	}

	if values.Get("color") != "#ff000000" {
		t.Errorf("expected default color, got %q", values.Get("color"))
	}

	if values.Get("optional") != "x" {
		t.Errorf("expected optional x, got %q", values.Get("optional"))
	}

	if _, ok := values["unknown"]; ok {
		t.Error("expected unknown key to be ignored")
	}

	if _, err = patch.Resolve(map[string]string{"color": ""}); !errors.Is(err, ErrMissingOption) {
		t.Errorf("expected ErrMissingOption, got %v", err)
	}
}

func TestPatchApply(t *testing.T) {
	var (
		ctx      = context.Background()
		executed = 0
		patch    = newTestPatch(&executed)
		rc       = memResourceContext{android.ColorsName: {}}
	)

	if err := patch.Apply(ctx, rc, map[string]string{"color": "@color/white"}); err != nil {
		t.Fatal(err)
	}

	if executed != 1 {
		t.Errorf("expected 1 execution, got %d", executed)
	}

	if entries := rc[android.ColorsName].Entries; len(entries) != 1 || entries[0].Value != "@color/white" {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func TestPatchApplyMissingOption(t *testing.T) {
	var (
		ctx      = context.Background()
		executed = 0
		patch    = newTestPatch(&executed)
		rc       = memResourceContext{android.ColorsName: {}}
	)

	if err := patch.Apply(ctx, rc, map[string]string{"color": ""}); !errors.Is(err, ErrMissingOption) {
		t.Errorf("expected ErrMissingOption, got %v", err)
	}

	if executed != 0 {
		t.Errorf("expected no execution, got %d", executed)
	}

	if entries := rc[android.ColorsName].Entries; len(entries) != 0 {
		t.Errorf("expected resources untouched, got %+v", entries)
	}
}

func TestPatchApplyWithoutExecute(t *testing.T) {
	if err := (&Patch{Name: "Empty"}).Apply(context.Background(), memResourceContext{}, nil); err == nil {
		t.Error("expected error applying patch without Execute")
	}
}

func TestEditResourcesDoesNotWriteOnError(t *testing.T) {
	var (
		ctx      = context.Background()
		original = &android.Resources{}
		rc       = memResourceContext{android.ColorsName: original}
		errFn    = errors.New("fn")
	)

	if err := EditResources(ctx, rc, android.ColorsName, func(*android.Resources) error {
		rc[android.ColorsName] = nil
		return errFn
	}); !errors.Is(err, errFn) {
		t.Errorf("expected fn error, got %v", err)
	}

	if rc[android.ColorsName] != nil {
		t.Error("expected EditResources not to write back after fn failed")
	}

	if err := EditResources(ctx, rc, "res/values/missing.xml", func(*android.Resources) error {
		t.Error("fn called for missing document")
		return nil
	}); err == nil {
		t.Error("expected error for missing document")
	}
}
