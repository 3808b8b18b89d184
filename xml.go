package falagard

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// XMLWriter writes nested elements with a chaining API. The first error is
// kept and later calls do nothing; check it with Err or Flush.
//
//	xw := falagard.NewXMLWriter(os.Stdout)
//	xw.OpenTag("NamedArea").Attribute("name", "Client").CloseTag()
//	err := xw.Flush()
type XMLWriter struct {
	enc     *xml.Encoder
	open    []xml.Name
	pending *xml.StartElement
	err     error
}

// NewXMLWriter returns a writer that indents with four spaces.
func NewXMLWriter(w io.Writer) *XMLWriter {
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	return &XMLWriter{enc: enc}
}

func (x *XMLWriter) fail(err error) {
	if x.err == nil {
		x.err = err
	}
}

// emit writes the buffered start element, if any.
func (x *XMLWriter) emit() {
	if x.pending == nil || x.err != nil {
		return
	}
	x.fail(x.enc.EncodeToken(*x.pending))
	x.pending = nil
}

// OpenTag starts a new element. Attributes may follow until the next
// OpenTag, Text or CloseTag.
func (x *XMLWriter) OpenTag(name string) *XMLWriter {
	x.emit()
	n := xml.Name{Local: name}
	x.pending = &xml.StartElement{Name: n}
	x.open = append(x.open, n)
	return x
}

// Attribute adds an attribute to the element just opened.
func (x *XMLWriter) Attribute(name, value string) *XMLWriter {
	if x.pending == nil {
		x.fail(fmt.Errorf("falagard: xml attribute %q outside a start tag", name))
		return x
	}
	x.pending.Attr = append(x.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return x
}

// Text writes character data inside the current element.
func (x *XMLWriter) Text(s string) *XMLWriter {
	x.emit()
	if x.err == nil {
		x.fail(x.enc.EncodeToken(xml.CharData(s)))
	}
	return x
}

// CloseTag ends the most recently opened element.
func (x *XMLWriter) CloseTag() *XMLWriter {
	if len(x.open) == 0 {
		x.fail(errors.New("falagard: xml close tag without open tag"))
		return x
	}
	x.emit()
	n := x.open[len(x.open)-1]
	x.open = x.open[:len(x.open)-1]
	if x.err == nil {
		x.fail(x.enc.EncodeToken(xml.EndElement{Name: n}))
	}
	return x
}

// Depth returns the number of elements currently open.
func (x *XMLWriter) Depth() int { return len(x.open) }

// Err returns the first error encountered.
func (x *XMLWriter) Err() error { return x.err }

// Flush writes buffered output. Every opened element must be closed.
func (x *XMLWriter) Flush() error {
	if x.err != nil {
		return x.err
	}
	if len(x.open) > 0 {
		return fmt.Errorf("falagard: xml element %q not closed", x.open[len(x.open)-1].Local)
	}
	return x.enc.Flush()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
