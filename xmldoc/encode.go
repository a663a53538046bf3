package xmldoc

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Encode writes the document to w as UTF-8.
func (d *Document) Encode(w io.Writer) error {
	if d == nil || d.root == NoNode {
		return ErrNoRoot
	}

	bw := bufio.NewWriter(w)
	for _, tok := range d.prolog {
		if err := writeProlog(bw, tok); err != nil {
			return err
		}
	}
	if err := d.writeNode(bw, d.root); err != nil {
		return err
	}
	for _, tok := range d.epilog {
		if err := writeMarkup(bw, tok); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Bytes returns the encoded document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeProlog(w *bufio.Writer, tok xml.Token) error {
	if pi, ok := tok.(xml.ProcInst); ok && pi.Target == "xml" {
		// the output is always UTF-8, whatever the input declared
		_, err := w.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
		return err
	}
	return writeMarkup(w, tok)
}

func writeMarkup(w *bufio.Writer, tok xml.Token) error {
	var err error
	switch t := tok.(type) {
	case xml.ProcInst:
		_, err = fmt.Fprintf(w, "<?%s %s?>", t.Target, t.Inst)
	case xml.Directive:
		_, err = fmt.Fprintf(w, "<!%s>", t)
	case xml.Comment:
		_, err = fmt.Fprintf(w, "<!--%s-->", t)
	case xml.CharData:
		_, err = w.Write(t)
	}
	return err
}

// token rebuilds the markup token of a non-element node.
func (n *Node) token() xml.Token {
	switch n.kind {
	case commentNode:
		return xml.Comment(n.markup)
	case procInstNode:
		return xml.ProcInst{Target: n.Name, Inst: n.markup}
	default:
		return xml.Directive(n.markup)
	}
}

func (d *Document) writeNode(w *bufio.Writer, id NodeID) error {
	n := &d.nodes[id]

	if n.kind != elementNode {
		if err := writeMarkup(w, n.token()); err != nil {
			return err
		}
		return escapeCharData(w, n.Tail)
	}

	w.WriteByte('<')
	w.WriteString(n.Name)
	for _, a := range n.Attrs {
		w.WriteByte(' ')
		w.WriteString(qualifiedName(a.Name))
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		w.WriteByte('"')
	}

	if n.Text == "" && len(n.children) == 0 {
		w.WriteString("/>")
	} else {
		w.WriteByte('>')
		if err := escapeCharData(w, n.Text); err != nil {
			return err
		}
		for _, c := range n.children {
			if err := d.writeNode(w, c); err != nil {
				return err
			}
		}
		w.WriteString("</")
		w.WriteString(n.Name)
		w.WriteByte('>')
	}

	return escapeCharData(w, n.Tail)
}

// escapeCharData escapes markup characters but keeps newlines and tabs
// literal, unlike xml.EscapeText.
func escapeCharData(w *bufio.Writer, s string) error {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '&':
			esc = "&amp;"
		default:
			continue
		}
		w.WriteString(s[last:i])
		w.WriteString(esc)
		last = i + 1
	}
	_, err := w.WriteString(s[last:])
	return err
}
