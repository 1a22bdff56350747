package patchregexp

func IsHexColor(s string) bool {
	return HexColor.MatchString(s)
}

func IsResourceReference(s string) bool {
	return ResourceReference.MatchString(s)
}

// IsColor reports whether s is usable as the value of a color
// resource, i.e. a hex color or a reference to another resource.
func IsColor(s string) bool {
	return IsHexColor(s) || IsResourceReference(s)
}

func IsPackageName(s string) bool {
	return PackageName.MatchString(s)
}
