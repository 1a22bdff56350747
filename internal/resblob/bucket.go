package resblob

import (
	"context"
	"net/url"
	"path/filepath"

	"gocloud.dev/blob"
)

// OpenBucket opens the bucket at urlstr. Anything that is not a URL
// is treated as a path to a directory, e.g. one decoded by apktool,
// which is opened without fileblob's .attrs sidecar files so that
// apktool can still build it.
func OpenBucket(ctx context.Context, urlstr string) (*blob.Bucket, error) {
	if u, err := url.Parse(urlstr); err == nil && len(u.Scheme) > 1 {
		return blob.OpenBucket(ctx, urlstr)
	}

	abs, err := filepath.Abs(urlstr)
	if err != nil {
		return nil, err
	}

	return blob.OpenBucket(ctx, DirURL(abs))
}

// DirURL returns the fileblob URL for the directory at the absolute path dir.
func DirURL(dir string) string {
	return (&url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(dir),
		RawQuery: "metadata=skip",
	}).String()
}
