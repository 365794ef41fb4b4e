package site

import (
	"fmt"
	"html"
	"path"
	"sort"
	"strings"
)

// FileTree represents a node in the page tree shown in the site navigation.
type FileTree struct {
	Name     string
	Title    string // Human-readable display name (from the page's H1 or the directory name).
	Path     string // For files: full relative path. For dirs: directory path (e.g., "guides/setup").
	IsDir    bool
	Children []*FileTree
}

// BuildTree constructs a FileTree from a list of relative page paths.
// titleMap is an optional map of relative path -> display title.
func BuildTree(paths []string, titleMap map[string]string) *FileTree {
	root := &FileTree{Name: "pages", IsDir: true}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *FileTree
			for _, child := range current.Children {
				if child.Name == part {
					next = child
					break
				}
			}
			if next == nil {
				next = &FileTree{Name: part, IsDir: !isLast}
				if isLast {
					next.Path = p
					next.Title = titleMap[p]
				} else {
					next.Path = strings.Join(parts[:i+1], "/")
					next.Title = formatDirName(part)
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortTree(root)
	return root
}

// sortTree recursively sorts tree children: directories first, then files, alphabetically.
func sortTree(node *FileTree) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// ToHTML renders the tree as the <nav> element of a page. Links are
// root-absolute URL paths so the page's own path can be matched against
// them; directories on the way to activePath are rendered expanded.
func (t *FileTree) ToHTML(activePath string) string {
	activeAncestors := computeActiveAncestors(activePath)

	var b strings.Builder
	b.WriteString(`<nav class="sidebar">` + "\n")
	b.WriteString(`<ul><li class="file home-link"><a href="/">Home</a></li></ul>` + "\n")
	renderChildren(&b, t, activeAncestors)
	b.WriteString("</nav>\n")
	return b.String()
}

// computeActiveAncestors returns the set of directory paths that are ancestors of activePath.
// For "guides/setup/linux.md" it returns {"guides", "guides/setup"}.
func computeActiveAncestors(activePath string) map[string]bool {
	ancestors := make(map[string]bool)
	parts := strings.Split(activePath, "/")
	for i := 1; i < len(parts); i++ {
		ancestors[strings.Join(parts[:i], "/")] = true
	}
	return ancestors
}

func renderChildren(b *strings.Builder, node *FileTree, activeAncestors map[string]bool) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			class := "dir"
			if activeAncestors[child.Path] {
				class += " expanded"
			}
			label := child.Title
			if label == "" {
				label = child.Name
			}
			fmt.Fprintf(b, `<li class="%s"><span class="dir-toggle">%s</span>`+"\n", class, html.EscapeString(label))
			renderChildren(b, child, activeAncestors)
			b.WriteString("</li>\n")
			continue
		}
		if child.Path == "index.md" {
			continue
		}
		label := child.Title
		if label == "" {
			label = cleanDisplayName(child.Name)
		}
		fmt.Fprintf(b, `<li class="file"><a href="%s">%s</a></li>`+"\n",
			html.EscapeString(PagePath(child.Path)), html.EscapeString(label))
	}
	b.WriteString("</ul>\n")
}

// PagePath returns the URL path a page is served under: index.md maps to its
// directory ("/", "/guides/"), every other page to its .html file.
func PagePath(relPath string) string {
	if path.Base(relPath) == "index.md" {
		dir := path.Dir(relPath)
		if dir == "." {
			return "/"
		}
		return "/" + dir + "/"
	}
	return "/" + mdPathToHTML(relPath)
}

// mdPathToHTML converts a markdown path to its HTML equivalent.
func mdPathToHTML(p string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ".html"
	}
	return p
}

// cleanDisplayName strips the .md extension and shows a cleaner file name.
func cleanDisplayName(name string) string {
	return strings.TrimSuffix(name, ".md")
}

// formatDirName converts a directory name to a human-readable display name.
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
