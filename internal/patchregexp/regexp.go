package patchregexp

import "regexp"

var (
	HexColor          = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	ResourceReference = regexp.MustCompile(`^[@?]([a-zA-Z][\w.]*:)?[a-z]+/[\w.]+$`)
	PackageName       = regexp.MustCompile(`^[a-zA-Z]\w*(\.[a-zA-Z]\w*)+$`)
)
