package htmlnav

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const navPage = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body>
<header><a href="/about">Logo link outside nav</a></header>
<nav>
  <a href="/">Home</a>
  <a href="/about" class="item">About</a>
  <a href="/contact">Contact</a>
  <div><a href="/about">About again</a></div>
</nav>
</body></html>`

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	return doc
}

func liveHrefs(t *testing.T, doc *html.Node) []string {
	t.Helper()
	anchors, err := Anchors(doc, "//a")
	if err != nil {
		t.Fatalf("Anchors: %v", err)
	}
	var out []string
	for _, a := range anchors {
		if a.HasClass("live") {
			href, _ := a.Href()
			out = append(out, href+"|"+a.Node.FirstChild.Data)
		}
	}
	return out
}

func TestAnchorsDocumentOrder(t *testing.T) {
	doc := parse(t, navPage)
	anchors, err := Anchors(doc, "")
	if err != nil {
		t.Fatalf("Anchors: %v", err)
	}
	want := []string{"/", "/about", "/contact", "/about"}
	if len(anchors) != len(want) {
		t.Fatalf("got %d anchors, want %d", len(anchors), len(want))
	}
	for i, a := range anchors {
		href, ok := a.Href()
		if !ok || href != want[i] {
			t.Errorf("anchor %d href = %q (%v), want %q", i, href, ok, want[i])
		}
	}
}

func TestAnchorsBadSelector(t *testing.T) {
	doc := parse(t, navPage)
	_, err := Anchors(doc, "//nav[")
	if !errors.Is(err, ErrBadSelector) {
		t.Fatalf("expected ErrBadSelector, got %v", err)
	}
}

func TestHighlightDocument(t *testing.T) {
	doc := parse(t, navPage)
	marked, err := HighlightDocument(doc, "/about", Options{})
	if err != nil {
		t.Fatalf("HighlightDocument: %v", err)
	}
	if marked == nil {
		t.Fatal("expected a marked anchor")
	}

	got := liveHrefs(t, doc)
	if len(got) != 1 || got[0] != "/about|About" {
		t.Errorf("live anchors = %v, want [/about|About]", got)
	}
	if v, _ := marked.Href(); v != "/about" {
		t.Errorf("marked href = %q", v)
	}
	if cls, _ := attr(marked.Node, "class"); cls != "item live" {
		t.Errorf("class = %q, want %q", cls, "item live")
	}
}

func TestHighlightDocumentNoMatch(t *testing.T) {
	doc := parse(t, navPage)
	marked, err := HighlightDocument(doc, "/missing", Options{})
	if err != nil {
		t.Fatalf("HighlightDocument: %v", err)
	}
	if marked != nil {
		t.Error("expected no marked anchor")
	}
	if got := liveHrefs(t, doc); len(got) != 0 {
		t.Errorf("live anchors = %v, want none", got)
	}
}

func TestHighlightDocumentNoNav(t *testing.T) {
	doc := parse(t, `<html><body><a href="/">Home</a></body></html>`)
	marked, err := HighlightDocument(doc, "/", Options{})
	if err != nil {
		t.Fatalf("HighlightDocument: %v", err)
	}
	if marked != nil {
		t.Error("anchors outside nav must not be marked")
	}
}

func TestHighlightDocumentIdempotent(t *testing.T) {
	doc := parse(t, navPage)
	for i := 0; i < 2; i++ {
		if _, err := HighlightDocument(doc, "/about", Options{}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	got := liveHrefs(t, doc)
	if len(got) != 1 {
		t.Fatalf("live anchors = %v, want exactly one", got)
	}
	anchors, _ := Anchors(doc, "")
	if cls, _ := attr(anchors[1].Node, "class"); cls != "item live" {
		t.Errorf("class after two runs = %q, want %q", cls, "item live")
	}
}

func TestHighlightDocumentCustomOptions(t *testing.T) {
	doc := parse(t, `<html><body><ul id="menu"><li><a href="/x">X</a></li></ul></body></html>`)
	marked, err := HighlightDocument(doc, "/x", Options{Class: "current", Selector: `//ul[@id="menu"]//a`})
	if err != nil {
		t.Fatalf("HighlightDocument: %v", err)
	}
	if marked == nil || !marked.HasClass("current") {
		t.Fatal("expected custom class on menu anchor")
	}
}

func TestAddClass(t *testing.T) {
	tests := []struct {
		name  string
		attrs []html.Attribute
		want  string
	}{
		{"no class attr", nil, "live"},
		{"empty class attr", []html.Attribute{{Key: "class", Val: "  "}}, "live"},
		{"existing classes", []html.Attribute{{Key: "class", Val: "a b"}}, "a b live"},
		{"already present", []html.Attribute{{Key: "class", Val: "a live b"}}, "a live b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Anchor{Node: &html.Node{Type: html.ElementNode, Data: "a", Attr: tt.attrs}}
			a.AddClass("live")
			got, _ := attr(a.Node, "class")
			if got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHrefMissing(t *testing.T) {
	a := &Anchor{Node: &html.Node{Type: html.ElementNode, Data: "a"}}
	if _, ok := a.Href(); ok {
		t.Error("expected missing href")
	}
}

func TestRewriteNoMatchCopiesInput(t *testing.T) {
	var out bytes.Buffer
	marked, err := Rewrite(strings.NewReader(navPage), &out, "/nowhere", Options{})
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if marked {
		t.Error("expected no mark")
	}
	if out.String() != navPage {
		t.Error("unmatched document should be copied unchanged")
	}
}

func TestRewriteMarks(t *testing.T) {
	var out bytes.Buffer
	marked, err := Rewrite(strings.NewReader(navPage), &out, "/contact", Options{})
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if !marked {
		t.Fatal("expected a mark")
	}
	if !strings.Contains(out.String(), `<a href="/contact" class="live">Contact</a>`) {
		t.Errorf("rewritten output missing live anchor:\n%s", out.String())
	}
	if strings.Count(out.String(), "live") != 1 {
		t.Errorf("expected exactly one live marker:\n%s", out.String())
	}
}
