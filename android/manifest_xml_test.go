package android

import (
	"strings"
	"testing"
)

const manifestXML = `<?xml version="1.0" encoding="utf-8" standalone="no"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" android:versionName="8.9.10.618" package="com.spotify.music">
    <uses-sdk android:minSdkVersion="24" android:targetSdkVersion="34"/>
    <application android:icon="@mipmap/ic_launcher" android:label="@string/app_name"/>
</manifest>`

func TestDecodeManifest(t *testing.T) {
	manifest, err := DecodeManifest(strings.NewReader(manifestXML))
	if err != nil {
		t.Fatal(err)
	}

	if pkg := manifest.Package(); pkg != "com.spotify.music" {
		t.Errorf("expected package com.spotify.music, got %q", pkg)
	}

	if versionName := manifest.VersionName(); versionName != "8.9.10.618" {
		t.Errorf("expected versionName 8.9.10.618, got %q", versionName)
	}
}

func TestDecodeManifestWrongRoot(t *testing.T) {
	if _, err := DecodeManifest(strings.NewReader("<resources/>")); err == nil {
		t.Error("expected error decoding non-manifest document")
	}
}
