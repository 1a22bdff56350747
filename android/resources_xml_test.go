package android

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const colorsXML = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <color name="accent">#ff1ed760</color>
    <!-- dark -->
    <color name="gray_7">#ff121212</color>
    <item name="alias" type="color">@color/accent</item>
</resources>
`

func TestDecodeResources(t *testing.T) {
	res, err := DecodeResources(strings.NewReader(colorsXML))
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(res.Entries))
	}

	for i, expected := range []struct {
		tag, name, value string
	}{
		{"color", "accent", "#ff1ed760"},
		{"color", "gray_7", "#ff121212"},
		{"item", "alias", "@color/accent"},
	} {
		entry := res.Entries[i]
		if entry.XMLName.Local != expected.tag {
			t.Errorf("entry %d: expected <%s>, got <%s>", i, expected.tag, entry.XMLName.Local)
		}
		if entry.Name() != expected.name {
			t.Errorf("entry %d: expected name %q, got %q", i, expected.name, entry.Name())
		}
		if entry.Value != expected.value {
			t.Errorf("entry %d: expected value %q, got %q", i, expected.value, entry.Value)
		}
	}
}

func TestDecodeResourcesWithoutRoot(t *testing.T) {
	for _, doc := range []string{
		"",
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<manifest package="com.spotify.music"/>`,
	} {
		if _, err := DecodeResources(strings.NewReader(doc)); !errors.Is(err, ErrNoResources) {
			t.Errorf("expected ErrNoResources for %q, got %v", doc, err)
		}
	}
}

func TestResourcesEncode(t *testing.T) {
	res, err := DecodeResources(strings.NewReader(colorsXML))
	if err != nil {
		t.Fatal(err)
	}

	res.Entries[1].Value = "#ff000000"

	buf := new(bytes.Buffer)
	if err = res.Encode(buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("expected xml header, got %q", out)
	}

	var (
		accent = strings.Index(out, `<color name="accent">#ff1ed760</color>`)
		gray   = strings.Index(out, `<color name="gray_7">#ff000000</color>`)
		alias  = strings.Index(out, `<item name="alias" type="color">@color/accent</item>`)
	)
	if accent < 0 || gray < 0 || alias < 0 {
		t.Fatalf("missing entries in encoded document:\n%s", out)
	}

	if !(accent < gray && gray < alias) {
		t.Errorf("entries reordered:\n%s", out)
	}

	again, err := DecodeResources(buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(again.Entries) != len(res.Entries) {
		t.Errorf("expected %d entries after re-decoding, got %d", len(res.Entries), len(again.Entries))
	}
}
