package android

import (
	"encoding/xml"
	"io"
)

const (
	AndroidManifestName = "AndroidManifest.xml"
	AndroidNamespace    = "http://schemas.android.com/apk/res/android"
)

type Manifest struct {
	XMLName xml.Name        `xml:"manifest"`
	UsesSDK ManifestUsesSDK `xml:"uses-sdk"`
	Attrs   []xml.Attr      `xml:",any,attr"`
}

type ManifestUsesSDK struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func DecodeManifest(r io.Reader) (*Manifest, error) {
	manifest := &Manifest{}
	if err := xml.NewDecoder(r).Decode(manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

func (m *Manifest) Package() string {
	for _, attr := range m.Attrs {
		if attr.Name.Local == "package" {
			return attr.Value
		}
	}

	return ""
}

// VersionName returns android:versionName. apktool moves it
// out of the manifest and into apktool.yml, so it is often empty.
func (m *Manifest) VersionName() string {
	for _, attr := range m.Attrs {
		if attr.Name.Space == AndroidNamespace && attr.Name.Local == "versionName" {
			return attr.Value
		}
	}

	return ""
}
