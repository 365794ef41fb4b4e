// Package site builds a static HTML site from a directory of markdown pages,
// with the current page's navigation link already marked live.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/livenav/internal/htmlnav"
	"github.com/ziadkadry99/livenav/internal/progress"
	"github.com/ziadkadry99/livenav/internal/walker"
	"github.com/ziadkadry99/livenav/ui"
)

// SiteGenerator converts markdown pages into a static HTML site.
type SiteGenerator struct {
	PagesDir    string
	OutputDir   string
	ProjectName string
	Include     []string
	Exclude     []string
	Highlight   htmlnav.Options
	Reporter    progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator with the given directories.
func NewSiteGenerator(pagesDir, outputDir, projectName string) *SiteGenerator {
	return &SiteGenerator{
		PagesDir:    pagesDir,
		OutputDir:   outputDir,
		ProjectName: projectName,
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	ProjectName string
	Content     template.HTML
	TreeHTML    template.HTML
}

// Page describes one generated page.
type Page struct {
	Source  string // Markdown path relative to PagesDir.
	URLPath string // Path the page is served under.
	Output  string // File written, relative to OutputDir.
	Marked  bool   // Whether a navigation link matched URLPath.
}

// Generate builds the full static site from markdown files and returns the
// pages it wrote.
func (g *SiteGenerator) Generate() ([]Page, error) {
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.PagesDir,
		Include: g.Include,
		Exclude: g.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("walking pages dir: %w", err)
	}

	var mdPaths []string
	sources := make(map[string][]byte)
	titleMap := make(map[string]string)
	for _, f := range files {
		if !strings.HasSuffix(f.RelPath, ".md") {
			continue
		}
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}
		mdPaths = append(mdPaths, f.RelPath)
		sources[f.RelPath] = content
		titleMap[f.RelPath] = extractTitle(string(content), f.RelPath)
	}

	if len(mdPaths) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", g.PagesDir)
	}

	tree := BuildTree(mdPaths, titleMap)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}
	if err := g.writeAssets(); err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(mdPaths))
	defer reporter.Finish()

	pages := make([]Page, 0, len(mdPaths))
	for i, relPath := range mdPaths {
		page, err := g.renderPage(md, tmpl, tree, relPath, sources[relPath], titleMap[relPath])
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", relPath, err)
		}
		pages = append(pages, page)
		reporter.Update(i+1, relPath)
	}

	return pages, nil
}

// writeAssets writes the stylesheet and the client highlighter script.
func (g *SiteGenerator) writeAssets() error {
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return err
	}
	script, err := fs.ReadFile(ui.Files, "static/js/main.js")
	if err != nil {
		return fmt.Errorf("reading client script: %w", err)
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "main.js"), script, 0o644)
}

// renderPage converts a single markdown file to an HTML page and marks the
// navigation link for the page's own URL path.
func (g *SiteGenerator) renderPage(md goldmark.Markdown, tmpl *template.Template, tree *FileTree, relPath string, content []byte, title string) (Page, error) {
	var htmlBuf bytes.Buffer
	if err := md.Convert(content, &htmlBuf); err != nil {
		return Page{}, fmt.Errorf("converting markdown: %w", err)
	}

	data := pageData{
		Title:       title,
		ProjectName: g.ProjectName,
		Content:     template.HTML(rewriteMDLinks(htmlBuf.String())),
		TreeHTML:    template.HTML(tree.ToHTML(relPath)),
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return Page{}, err
	}

	urlPath := PagePath(relPath)
	page := Page{Source: relPath, URLPath: urlPath, Output: outputPath(relPath)}

	rendered, marked, err := htmlnav.RewriteBytes(out.Bytes(), urlPath, g.Highlight)
	if err != nil {
		return Page{}, err
	}
	page.Marked = marked

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(page.Output))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Page{}, err
	}
	if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
		return Page{}, err
	}
	return page, nil
}

// outputPath is the file a page is written to, relative to the output dir.
func outputPath(relPath string) string {
	return mdPathToHTML(relPath)
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	content = strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(content, `.md#`, `.html#`)
}
