package apktool

import (
	"fmt"
	"io"

	xslice "github.com/frantjc/x/slice"
	"gopkg.in/yaml.v3"
)

// MetadataName is the file apktool writes at the root of
// a decoded directory describing the original .apk.
const MetadataName = "apktool.yml"

type SDKInfo struct {
	MinSDKVersion    string `yaml:"minSdkVersion,omitempty"`
	TargetSDKVersion string `yaml:"targetSdkVersion,omitempty"`
}

type PackageInfo struct {
	ForcedPackageID       string `yaml:"forcedPackageId,omitempty"`
	RenameManifestPackage string `yaml:"renameManifestPackage,omitempty"`
}

type VersionInfo struct {
	VersionCode string `yaml:"versionCode,omitempty"`
	VersionName string `yaml:"versionName,omitempty"`
}

type Metadata struct {
	Version                string         `yaml:"version,omitempty"`
	APKFileName            string         `yaml:"apkFileName,omitempty"`
	IsFrameworkAPK         bool           `yaml:"isFrameworkApk,omitempty"`
	SDKInfo                *SDKInfo       `yaml:"sdkInfo,omitempty"`
	PackageInfo            *PackageInfo   `yaml:"packageInfo,omitempty"`
	VersionInfo            *VersionInfo   `yaml:"versionInfo,omitempty"`
	ResourcesAreCompressed bool           `yaml:"resourcesAreCompressed,omitempty"`
	SharedLibrary          bool           `yaml:"sharedLibrary,omitempty"`
	SparseResources        bool           `yaml:"sparseResources,omitempty"`
	UnknownFiles           map[string]any `yaml:"unknownFiles,omitempty"`
	DoNotCompress          []string       `yaml:"doNotCompress,omitempty"`
}

func DecodeMetadata(r io.Reader) (*Metadata, error) {
	metadata := &Metadata{}
	if err := yaml.NewDecoder(r).Decode(metadata); err != nil {
		return nil, fmt.Errorf("decode %s: %w", MetadataName, err)
	}

	return metadata, nil
}

// AppVersion returns the decoded app's version, preferring
// versionName over versionCode. Note that Version is the
// version of apktool itself, not of the app.
func (m *Metadata) AppVersion() string {
	if m.VersionInfo == nil {
		return ""
	}

	return xslice.Coalesce(m.VersionInfo.VersionName, m.VersionInfo.VersionCode)
}
