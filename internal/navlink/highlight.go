// Package navlink marks the navigation link that points at the current page.
package navlink

// LiveClass is the marker class added to the active navigation entry.
const LiveClass = "live"

// Element is the minimal view of a navigation anchor the highlighter needs.
type Element interface {
	// Href returns the raw link target and whether the attribute is present.
	Href() (string, bool)
	// AddClass adds class to the element's class list. Adding a class that is
	// already present must leave the list unchanged.
	AddClass(class string)
}

// Highlight scans anchors in document order and adds LiveClass to the first
// one whose href equals path exactly. It returns the index of the marked
// anchor, or -1 when nothing matched and no element was touched.
func Highlight(anchors []Element, path string) int {
	return HighlightClass(anchors, path, LiveClass)
}

// HighlightClass is Highlight with a caller-chosen marker class.
func HighlightClass(anchors []Element, path, class string) int {
	for i, a := range anchors {
		href, ok := a.Href()
		if !ok || href != path {
			continue
		}
		a.AddClass(class)
		return i
	}
	return -1
}

// Match returns the index of the anchor Highlight would mark, without
// mutating anything.
func Match(anchors []Element, path string) int {
	for i, a := range anchors {
		if href, ok := a.Href(); ok && href == path {
			return i
		}
	}
	return -1
}
