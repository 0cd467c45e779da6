package soap

import (
	"encoding/xml"
	"sort"
	"strings"
)

// Element is a generic XML element: a name, optional default namespace,
// attributes, child elements and character data. It is the common currency
// between the raw request methods and the typed record mapping layer.
type Element struct {
	Name     string
	Space    string // default namespace (xmlns), empty for inherited
	Attrs    map[string]string
	Children []*Element
	Text     string
}

// NewElement returns an element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Text returns an element with the given name and character data. It is a
// shorthand for the common <name>text</name> leaf.
func Text(name, text string) *Element {
	return &Element{Name: name, Text: text}
}

// SetAttr sets an attribute, replacing any previous value.
func (e *Element) SetAttr(name, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
	return e
}

// Attr returns the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// Add appends child elements.
func (e *Element) Add(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Child returns the first child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name, possibly none.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// ChildText returns the character data of the first child with the given
// name, or "" when there is no such child.
func (e *Element) ChildText(name string) string {
	if c := e.Child(name); c != nil {
		return c.Text
	}
	return ""
}

// String renders the element as indented XML.
func (e *Element) String() string {
	out, err := xml.MarshalIndent(e, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

// MarshalXML implements xml.Marshaler. Attributes are emitted in sorted
// order so output is deterministic.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	if e.Space != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "xmlns"},
			Value: e.Space,
		})
	}
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: name},
			Value: e.Attrs[name],
		})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.MarshalXML(enc, xml.StartElement{}); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}

// UnmarshalXML implements xml.Unmarshaler. Namespace declarations are
// dropped from Attrs; surrounding whitespace in character data is trimmed.
func (e *Element) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	e.Name = start.Name.Local
	e.Space = start.Name.Space
	for _, a := range start.Attr {
		if a.Name.Local == "xmlns" || a.Name.Space == "xmlns" {
			continue
		}
		e.SetAttr(a.Name.Local, a.Value)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(dec, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			e.Text += strings.TrimSpace(string(t))
		case xml.EndElement:
			return nil
		}
	}
}
