package htmlnav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/livenav/internal/navlink"
)

// DefaultSelector selects every anchor inside a <nav> element, the XPath
// equivalent of the CSS selector "nav a".
const DefaultSelector = "//nav//a"

// ErrBadSelector is returned when the configured selector is not valid XPath.
var ErrBadSelector = errors.New("invalid navigation selector")

// Options controls which anchors are considered and which class is applied.
// Zero values fall back to DefaultSelector and navlink.LiveClass.
type Options struct {
	Class    string
	Selector string
}

func (o Options) class() string {
	if o.Class == "" {
		return navlink.LiveClass
	}
	return o.Class
}

func (o Options) selector() string {
	if o.Selector == "" {
		return DefaultSelector
	}
	return o.Selector
}

// Anchors returns the navigation anchors of doc in document order.
func Anchors(doc *html.Node, selector string) ([]*Anchor, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	nodes, err := htmlquery.QueryAll(doc, selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadSelector, selector, err)
	}
	anchors := make([]*Anchor, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		anchors = append(anchors, &Anchor{Node: n})
	}
	return anchors, nil
}

// HighlightDocument marks the first navigation anchor of doc whose href equals
// path. It returns the marked anchor, or nil when nothing matched.
func HighlightDocument(doc *html.Node, path string, opts Options) (*Anchor, error) {
	anchors, err := Anchors(doc, opts.selector())
	if err != nil {
		return nil, err
	}
	elems := make([]navlink.Element, len(anchors))
	for i, a := range anchors {
		elems[i] = a
	}
	idx := navlink.HighlightClass(elems, path, opts.class())
	if idx < 0 {
		return nil, nil
	}
	return anchors[idx], nil
}

// Rewrite reads an HTML document from r, highlights the anchor for path and
// writes the document to w. When no anchor matches the input is copied
// through byte for byte. The returned bool reports whether an anchor was
// marked.
func Rewrite(r io.Reader, w io.Writer, path string, opts Options) (bool, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("reading document: %w", err)
	}
	out, marked, err := RewriteBytes(src, path, opts)
	if err != nil {
		return false, err
	}
	if _, err := w.Write(out); err != nil {
		return false, fmt.Errorf("writing document: %w", err)
	}
	return marked, nil
}

// RewriteBytes is Rewrite over an in-memory document. On no match it returns
// src unchanged.
func RewriteBytes(src []byte, path string, opts Options) ([]byte, bool, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, false, fmt.Errorf("parsing document: %w", err)
	}
	marked, err := HighlightDocument(doc, path, opts)
	if err != nil {
		return nil, false, err
	}
	if marked == nil {
		return src, false, nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, false, fmt.Errorf("rendering document: %w", err)
	}
	return buf.Bytes(), true, nil
}
