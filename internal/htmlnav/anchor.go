// Package htmlnav applies the navlink highlighter to parsed HTML documents.
package htmlnav

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/livenav/internal/navlink"
)

// Anchor adapts an <a> element node to navlink.Element.
type Anchor struct {
	Node *html.Node
}

var _ navlink.Element = (*Anchor)(nil)

// Href returns the href attribute as written in the markup.
func (a *Anchor) Href() (string, bool) {
	return attr(a.Node, "href")
}

// AddClass appends class to the class attribute unless it is already one of
// its whitespace-separated tokens.
func (a *Anchor) AddClass(class string) {
	for i, at := range a.Node.Attr {
		if at.Namespace != "" || at.Key != "class" {
			continue
		}
		for _, tok := range strings.Fields(at.Val) {
			if tok == class {
				return
			}
		}
		if strings.TrimSpace(at.Val) == "" {
			a.Node.Attr[i].Val = class
		} else {
			a.Node.Attr[i].Val = at.Val + " " + class
		}
		return
	}
	a.Node.Attr = append(a.Node.Attr, html.Attribute{Key: "class", Val: class})
}

// HasClass reports whether class is one of the element's class tokens.
func (a *Anchor) HasClass(class string) bool {
	v, ok := attr(a.Node, "class")
	if !ok {
		return false
	}
	for _, tok := range strings.Fields(v) {
		if tok == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, at := range n.Attr {
		if at.Namespace == "" && at.Key == key {
			return at.Val, true
		}
	}
	return "", false
}
