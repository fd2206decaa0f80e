// Package gaphor reads Gaphor model files into an element graph.
//
// A model file is an XML document whose root holds one child per model
// element. Each element child holds one child per field:
//
//	<Class id="1">
//	  <name><val>Element</val></name>
//	  <package><ref refid="2"/></package>
//	  <ownedAttribute><reflist><ref refid="3"/><ref refid="4"/></reflist></ownedAttribute>
//	</Class>
//
// Fields with any other content (for example diagram canvases) are skipped.
package gaphor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"uml-generator/internal/element"
)

// ParseFile parses the model file at path.
func ParseFile(path string) (*element.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %w", path, err)
	}

	return g, nil
}

// Parse reads a model document from r.
func Parse(r io.Reader) (*element.Graph, error) {
	dec := xml.NewDecoder(r)
	g := element.NewGraph()

	root, err := nextStart(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty model document")
		}

		return nil, err
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unexpected end of document inside <%s>", root.Name.Local)
			}

			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}

			if err := g.Add(e); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return g, nil
		}
	}
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}

		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*element.Element, error) {
	e := element.New(attr(start, "id"), start.Name.Local)

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("element %s %q: %w", e.Type, e.ID, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			f, ok, err := parseField(dec)
			if err != nil {
				return nil, fmt.Errorf("element %s %q field %s: %w", e.Type, e.ID, t.Name.Local, err)
			}

			if ok {
				e.Set(t.Name.Local, f)
			}
		case xml.EndElement:
			return e, nil
		}
	}
}

// parseField reads the content of a field element up to its end tag.
func parseField(dec *xml.Decoder) (element.Field, bool, error) {
	var (
		f     element.Field
		found bool
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return f, false, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "val":
				var v string
				if err := dec.DecodeElement(&v, &t); err != nil {
					return f, false, err
				}

				f, found = element.Scalar(v), true
			case "ref":
				if err := dec.Skip(); err != nil {
					return f, false, err
				}

				f, found = element.Ref(attr(t, "refid")), true
			case "reflist":
				ids, err := parseRefList(dec)
				if err != nil {
					return f, false, err
				}

				f, found = element.RefList(ids...), true
			default:
				if err := dec.Skip(); err != nil {
					return f, false, err
				}
			}
		case xml.EndElement:
			return f, found, nil
		}
	}
}

func parseRefList(dec *xml.Decoder) ([]string, error) {
	var ids []string

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "ref" {
				ids = append(ids, attr(t, "refid"))
			}

			if err := dec.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return ids, nil
		}
	}
}
