package resblob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/frantjc/repatch/android"
	"github.com/frantjc/repatch/apktool"
	"github.com/opencontainers/go-digest"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

var ErrNotFound = errors.New("not found")

// Context is a repatch.ResourceContext backed by a bucket laid
// out like a directory decoded by apktool, i.e. with
// AndroidManifest.xml, apktool.yml and res/ at its root.
type Context struct {
	bucket  *blob.Bucket
	digests map[string]digest.Digest
}

func NewContext(bucket *blob.Bucket) *Context {
	return &Context{bucket: bucket, digests: map[string]digest.Digest{}}
}

func (c *Context) newReader(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := c.bucket.NewReader(ctx, key, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	} else if err != nil {
		return nil, err
	}

	return r, nil
}

func (c *Context) Resources(ctx context.Context, name string) (*android.Resources, error) {
	r, err := c.newReader(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	res, err := android.DecodeResources(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return res, nil
}

// SetResources encodes res to name, recording its digest.
func (c *Context) SetResources(ctx context.Context, name string, res *android.Resources) error {
	buf := new(bytes.Buffer)
	if err := res.Encode(buf); err != nil {
		return err
	}

	dig := digest.FromBytes(buf.Bytes())

	if err := Copy(ctx, c.bucket, name, buf); err != nil {
		return err
	}

	c.digests[name] = dig

	return nil
}

func (c *Context) Manifest(ctx context.Context) (*android.Manifest, error) {
	r, err := c.newReader(ctx, android.AndroidManifestName)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return android.DecodeManifest(r)
}

func (c *Context) Metadata(ctx context.Context) (*apktool.Metadata, error) {
	r, err := c.newReader(ctx, apktool.MetadataName)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return apktool.DecodeMetadata(r)
}

// Written is a resource document that was written through a Context.
type Written struct {
	Name   string        `yaml:"name"`
	Digest digest.Digest `yaml:"digest"`
}

// Written returns every document written through c, sorted by name.
func (c *Context) Written() []Written {
	written := make([]Written, 0, len(c.digests))
	for name, dig := range c.digests {
		written = append(written, Written{Name: name, Digest: dig})
	}

	sort.Slice(written, func(i, j int) bool {
		return written[i].Name < written[j].Name
	})

	return written
}
