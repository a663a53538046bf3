package xmldoc

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE pdf2xml SYSTEM "pdf2xml.dtd">
<pdf2xml producer="poppler" version="0.41.0">
<page number="1" position="absolute" top="0" left="0" height="1263" width="892">
	<fontspec id="0" size="13" family="Times" color="#000000"/>
<text top="82" left="84" width="121" height="18" font="0">Plain &amp; simple</text>
<text top="102" left="84" width="60" height="18" font="0"><b>Foo</b> <i>Bar</i></text>
</page>
</pdf2xml>
`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestParseTree(t *testing.T) {
	doc := mustParse(t, sample)

	root := doc.Root()
	if doc.Name(root) != "pdf2xml" {
		t.Fatalf("root = %q, want pdf2xml", doc.Name(root))
	}
	if v, ok := doc.Attr(root, "producer"); !ok || v != "poppler" {
		t.Errorf("Attr(producer) = %q, %v", v, ok)
	}

	pages := doc.Children(root, "page")
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if doc.Parent(pages[0]) != root {
		t.Error("page parent should be root")
	}

	texts := doc.Children(pages[0], "text")
	if len(texts) != 2 {
		t.Fatalf("expected 2 text elements, got %d", len(texts))
	}
	if got := doc.Text(texts[0]); got != "Plain & simple" {
		t.Errorf("Text() = %q, want %q", got, "Plain & simple")
	}
	if got := doc.Text(texts[1]); got != "" {
		t.Errorf("Text() of element starting with child = %q, want empty", got)
	}

	if all := doc.Children(pages[0], ""); len(all) != 3 {
		t.Errorf("Children(\"\") = %d elements, want 3", len(all))
	}
}

func TestDescendantsOrder(t *testing.T) {
	doc := mustParse(t, `<a><b><c>1</c></b><d>2</d></a>`)

	var names []string
	for _, id := range doc.Descendants(doc.Root()) {
		names = append(names, doc.Name(id))
	}
	if got := strings.Join(names, ","); got != "b,c,d" {
		t.Errorf("Descendants() = %s, want b,c,d", got)
	}
}

func TestTailText(t *testing.T) {
	doc := mustParse(t, `<t><b>Foo</b> and <i>Bar</i>!</t>`)
	kids := doc.Children(doc.Root(), "")

	n, err := doc.Node(kids[0])
	if err != nil {
		t.Fatal(err)
	}
	if n.Text != "Foo" || n.Tail != " and " {
		t.Errorf("first child Text=%q Tail=%q", n.Text, n.Tail)
	}
	n, _ = doc.Node(kids[1])
	if n.Tail != "!" {
		t.Errorf("second child Tail=%q, want !", n.Tail)
	}
}

func TestSetAttr(t *testing.T) {
	doc := mustParse(t, `<text left="10" top="20"/>`)
	root := doc.Root()

	if err := doc.SetAttr(root, "left", "15"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetAttr(root, "moved", "yes"); err != nil {
		t.Fatal(err)
	}
	if v, _ := doc.Attr(root, "left"); v != "15" {
		t.Errorf("left = %q, want 15", v)
	}
	if v, _ := doc.Attr(root, "moved"); v != "yes" {
		t.Errorf("moved = %q, want yes", v)
	}

	n, _ := doc.Node(root)
	if len(n.Attrs) != 3 || n.Attrs[0].Name.Local != "left" || n.Attrs[2].Name.Local != "moved" {
		t.Errorf("attribute order not kept: %+v", n.Attrs)
	}
}

func TestInvalidHandles(t *testing.T) {
	doc := mustParse(t, `<a/>`)

	for _, id := range []NodeID{NoNode, 1, 99} {
		if doc.Valid(id) {
			t.Errorf("Valid(%d) = true", id)
		}
		if _, err := doc.Node(id); !errors.Is(err, ErrInvalidNode) {
			t.Errorf("Node(%d) error = %v, want ErrInvalidNode", id, err)
		}
		if err := doc.SetAttr(id, "x", "1"); !errors.Is(err, ErrInvalidNode) {
			t.Errorf("SetAttr(%d) error = %v, want ErrInvalidNode", id, err)
		}
		if _, ok := doc.Attr(id, "x"); ok {
			t.Errorf("Attr(%d) found a value", id)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"only prolog", `<?xml version="1.0"?>`},
		{"mismatched", `<a><b></a></b>`},
		{"unclosed", `<a><b>`},
		{"two roots", `<a/><b/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Parse(nil); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Parse(nil) error = %v, want ErrNoRoot", err)
	}
}

func TestHTMLEntities(t *testing.T) {
	doc := mustParse(t, `<text>a&nbsp;b&#160;c</text>`)
	if got := doc.Text(doc.Root()); got != "a\u00a0b\u00a0c" {
		t.Errorf("Text() = %q", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := mustParse(t, sample)

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing XML declaration: %.60s", s)
	}
	if !strings.Contains(s, `<!DOCTYPE pdf2xml SYSTEM "pdf2xml.dtd">`) {
		t.Error("doctype not preserved")
	}
	if !strings.Contains(s, `>Plain &amp; simple</text>`) {
		t.Error("text not escaped on output")
	}
	if !strings.Contains(s, `<fontspec id="0" size="13" family="Times" color="#000000"/>`) {
		t.Error("empty element not written self-closing")
	}

	again := mustParse(t, s)
	if again.Len() != doc.Len() {
		t.Fatalf("round trip changed element count: %d -> %d", doc.Len(), again.Len())
	}
	for i := 0; i < doc.Len(); i++ {
		a, _ := doc.Node(NodeID(i))
		b, _ := again.Node(NodeID(i))
		if a.Name != b.Name || a.Text != b.Text || a.Tail != b.Tail || len(a.Attrs) != len(b.Attrs) {
			t.Errorf("node %d differs after round trip: %+v vs %+v", i, a, b)
		}
	}
}

func TestCommentsAndInstructions(t *testing.T) {
	const src = `<?xml version="1.0" encoding="UTF-8"?>
<!-- converted -->
<pdf2xml>
<!-- page one -->
<page number="1"><?render mode="fast"?><text left="1">a</text><!-- end --></page>
</pdf2xml>
<!-- trailer -->
`
	doc := mustParse(t, src)

	if got := doc.Children(doc.Root(), ""); len(got) != 1 || doc.Name(got[0]) != "page" {
		t.Fatalf("root children = %v, want only the page element", got)
	}
	page := doc.Children(doc.Root(), "page")[0]
	if got := doc.Descendants(page); len(got) != 1 || doc.Name(got[0]) != "text" {
		t.Errorf("Descendants() = %v, want only the text element", got)
	}
	if doc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", doc.Len())
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if string(out) != src {
		t.Errorf("round trip changed the document:\n%s\nwant:\n%s", out, src)
	}
}

func TestMarkupHasNoHandle(t *testing.T) {
	doc := mustParse(t, `<page><!-- note --><text/></page>`)

	// node 1 is the comment
	if doc.Valid(1) {
		t.Error("Valid() = true for a comment")
	}
	if err := doc.SetAttr(1, "left", "5"); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("SetAttr() on a comment: error = %v, want ErrInvalidNode", err)
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	doc := mustParse(t, sample)

	texts := doc.Children(doc.Children(doc.Root(), "page")[0], "text")
	if err := doc.SetAttr(texts[0], "left", "90"); err != nil {
		t.Fatal(err)
	}

	URL := "file://" + filepath.Join(t.TempDir(), "out.xml")
	if err := doc.Save(ctx, nil, URL); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(ctx, nil, URL)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	lt := loaded.Children(loaded.Children(loaded.Root(), "page")[0], "text")
	if v, _ := loaded.Attr(lt[0], "left"); v != "90" {
		t.Errorf("left after reload = %q, want 90", v)
	}
}

func TestLoadMissing(t *testing.T) {
	URL := "file://" + filepath.Join(t.TempDir(), "missing.xml")
	if _, err := Load(context.Background(), nil, URL); err == nil {
		t.Error("expected error for missing document")
	}
}
