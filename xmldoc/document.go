package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRoot is returned when the input contains no root element.
	ErrNoRoot = errors.New("xmldoc: document has no root element")

	// ErrInvalidNode is returned for a handle that does not belong to the document.
	ErrInvalidNode = errors.New("xmldoc: invalid node")
)

// NodeID identifies an element within a Document.
type NodeID int

// NoNode is the handle of no element.
const NoNode NodeID = -1

type nodeKind uint8

const (
	elementNode nodeKind = iota
	commentNode
	procInstNode
	directiveNode
)

// Node is a single element of the tree.
//
// Comments, processing instructions and directives inside the root are kept
// as nodes too, so that encoding reproduces them in place, but they have no
// handle: lookups and traversals only ever see elements.
type Node struct {
	Name  string     // qualified name as written, e.g. "text" or "ns:page"
	Attrs []xml.Attr // attributes in document order
	Text  string     // character data before the first child node
	Tail  string     // character data after the end tag

	kind     nodeKind
	markup   []byte // comment text, instruction or directive of non-elements
	parent   NodeID
	children []NodeID
}

// Document is a parsed XML document.
type Document struct {
	prolog []xml.Token // markup before the root element
	epilog []xml.Token // markup after the root element
	nodes  []Node
	root   NodeID
}

// Parse parses an XML document from data.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a whole XML document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Entity = xml.HTMLEntity

	doc := &Document{root: NoNode}
	var stack []NodeID

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && doc.root != NoNode {
				return nil, fmt.Errorf("decoding XML: second root element <%s>", qualifiedName(t.Name))
			}
			parent := NoNode
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			id := doc.appendNode(Node{
				Name:   qualifiedName(t.Name),
				Attrs:  copyAttrs(t.Attr),
				parent: parent,
			})
			if parent == NoNode {
				doc.root = id
			}
			stack = append(stack, id)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("decoding XML: unexpected </%s>", qualifiedName(t.Name))
			}
			top := stack[len(stack)-1]
			if name := qualifiedName(t.Name); name != doc.nodes[top].Name {
				return nil, fmt.Errorf("decoding XML: </%s> closes <%s>", name, doc.nodes[top].Name)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			switch {
			case len(stack) > 0:
				doc.appendCharData(stack[len(stack)-1], string(t))
			case doc.root == NoNode:
				doc.prolog = append(doc.prolog, xml.CopyToken(t))
			case len(doc.epilog) > 0:
				doc.epilog = append(doc.epilog, xml.CopyToken(t))
			default:
				doc.nodes[doc.root].Tail += string(t)
			}

		case xml.ProcInst, xml.Directive, xml.Comment:
			switch {
			case len(stack) > 0:
				doc.appendNode(markupNode(t, stack[len(stack)-1]))
			case doc.root == NoNode:
				doc.prolog = append(doc.prolog, xml.CopyToken(t))
			default:
				doc.epilog = append(doc.epilog, xml.CopyToken(t))
			}
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("decoding XML: unclosed element <%s>", doc.nodes[stack[len(stack)-1]].Name)
	}
	if doc.root == NoNode {
		return nil, ErrNoRoot
	}
	return doc, nil
}

func (d *Document) appendNode(n Node) NodeID {
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	if n.parent != NoNode {
		p := &d.nodes[n.parent]
		p.children = append(p.children, id)
	}
	return id
}

func markupNode(tok xml.Token, parent NodeID) Node {
	n := Node{parent: parent}
	switch t := tok.(type) {
	case xml.Comment:
		n.kind = commentNode
		n.markup = bytes.Clone(t)
	case xml.ProcInst:
		n.kind = procInstNode
		n.Name = t.Target
		n.markup = bytes.Clone(t.Inst)
	case xml.Directive:
		n.kind = directiveNode
		n.markup = bytes.Clone(t)
	}
	return n
}

// appendCharData attaches character data to the open element: before its
// first child it belongs to Text, afterwards to the tail of the last child.
func (d *Document) appendCharData(open NodeID, s string) {
	n := &d.nodes[open]
	if len(n.children) == 0 {
		n.Text += s
		return
	}
	last := n.children[len(n.children)-1]
	d.nodes[last].Tail += s
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// Root returns the handle of the root element.
func (d *Document) Root() NodeID {
	return d.root
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	n := 0
	for i := range d.nodes {
		if d.nodes[i].kind == elementNode {
			n++
		}
	}
	return n
}

// Valid reports whether id refers to an element of d.
func (d *Document) Valid(id NodeID) bool {
	return d != nil && id >= 0 && int(id) < len(d.nodes) && d.nodes[id].kind == elementNode
}

// Node returns the element for id.
func (d *Document) Node(id NodeID) (*Node, error) {
	if !d.Valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	return &d.nodes[id], nil
}

// Name returns the qualified element name, or "" for an invalid handle.
func (d *Document) Name(id NodeID) string {
	if !d.Valid(id) {
		return ""
	}
	return d.nodes[id].Name
}

// Parent returns the parent handle, NoNode for the root.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.Valid(id) {
		return NoNode
	}
	return d.nodes[id].parent
}

// Text returns the character data before the element's first child.
func (d *Document) Text(id NodeID) string {
	if !d.Valid(id) {
		return ""
	}
	return d.nodes[id].Text
}

// Attr returns the value of the named attribute.
func (d *Document) Attr(id NodeID, name string) (string, bool) {
	if !d.Valid(id) {
		return "", false
	}
	for _, a := range d.nodes[id].Attrs {
		if qualifiedName(a.Name) == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, appending it if it does not exist yet.
func (d *Document) SetAttr(id NodeID, name, value string) error {
	if !d.Valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	n := &d.nodes[id]
	for i := range n.Attrs {
		if qualifiedName(n.Attrs[i].Name) == name {
			n.Attrs[i].Value = value
			return nil
		}
	}
	attrName := xml.Name{Local: name}
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		attrName = xml.Name{Space: prefix, Local: local}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: attrName, Value: value})
	return nil
}

// Children returns the direct child elements with the given name in
// document order. An empty name matches every child.
func (d *Document) Children(id NodeID, name string) []NodeID {
	if !d.Valid(id) {
		return nil
	}
	var out []NodeID
	for _, c := range d.nodes[id].children {
		if d.nodes[c].kind != elementNode {
			continue
		}
		if name == "" || d.nodes[c].Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every element below id in document (pre-)order,
// not including id itself.
func (d *Document) Descendants(id NodeID) []NodeID {
	if !d.Valid(id) {
		return nil
	}
	var out []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		for _, c := range d.nodes[n].children {
			if d.nodes[c].kind != elementNode {
				continue
			}
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}
