package android

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	ColorsName = "res/values/colors.xml"
)

// ErrNoResources is returned when a document has no
// <resources> root element to operate on.
var ErrNoResources = errors.New("resources element not found")

// Resources is a decoded res/values/*.xml document.
// Entries keeps the children in document order.
type Resources struct {
	XMLName xml.Name        `xml:"resources"`
	Attrs   []xml.Attr      `xml:",any,attr"`
	Entries []ResourceEntry `xml:",any"`
}

// ResourceEntry is a single child of <resources>, e.g.
// <color name="accent">#ff1ed760</color>.
type ResourceEntry struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Value   string     `xml:",chardata"`
}

// Name returns the entry's name attribute.
func (e *ResourceEntry) Name() string {
	for _, attr := range e.Attrs {
		if attr.Name.Space == "" && attr.Name.Local == "name" {
			return attr.Value
		}
	}

	return ""
}

func DecodeResources(r io.Reader) (*Resources, error) {
	res := &Resources{}
	if err := xml.NewDecoder(r).Decode(res); errors.Is(err, io.EOF) {
		return nil, ErrNoResources
	} else if err != nil {
		var unmarshalErr xml.UnmarshalError
		if errors.As(err, &unmarshalErr) {
			return nil, fmt.Errorf("%w: %s", ErrNoResources, unmarshalErr.Error())
		}

		return nil, err
	}

	return res, nil
}

func (r *Resources) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")

	if err := enc.Encode(r); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
