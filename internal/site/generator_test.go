package site

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/livenav/internal/htmlnav"
)

func TestBuildTree(t *testing.T) {
	paths := []string{
		"index.md",
		"about.md",
		"guides/install.md",
		"guides/setup/linux.md",
	}

	tree := BuildTree(paths, map[string]string{"about.md": "About"})

	if tree.Name != "pages" || !tree.IsDir {
		t.Fatalf("root = %q (dir=%v), want pages dir", tree.Name, tree.IsDir)
	}
	// Directories first, then files alphabetically.
	if len(tree.Children) != 3 {
		t.Fatalf("root children = %d, want 3", len(tree.Children))
	}
	if tree.Children[0].Name != "guides" || !tree.Children[0].IsDir {
		t.Errorf("first child = %q, want guides dir", tree.Children[0].Name)
	}
	if tree.Children[1].Name != "about.md" || tree.Children[1].Title != "About" {
		t.Errorf("second child = %q (%q), want about.md (About)", tree.Children[1].Name, tree.Children[1].Title)
	}
	if tree.Children[2].Name != "index.md" {
		t.Errorf("third child = %q, want index.md", tree.Children[2].Name)
	}

	guides := tree.Children[0]
	if guides.Children[0].Path != "guides/setup" || !guides.Children[0].IsDir {
		t.Errorf("guides first child = %q, want guides/setup dir", guides.Children[0].Path)
	}
	if guides.Children[1].Path != "guides/install.md" {
		t.Errorf("guides second child = %q, want guides/install.md", guides.Children[1].Path)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(nil, nil)
	if len(tree.Children) != 0 {
		t.Errorf("empty tree children = %d, want 0", len(tree.Children))
	}
}

func TestTreeToHTML(t *testing.T) {
	tree := BuildTree([]string{"index.md", "about.md", "guides/install.md", "misc/faq.md"}, nil)
	out := tree.ToHTML("guides/install.md")

	for _, want := range []string{
		`<nav class="sidebar">`,
		`<a href="/">Home</a>`,
		`<a href="/about.html">about</a>`,
		`<a href="/guides/install.html">install</a>`,
		`<li class="dir expanded"><span class="dir-toggle">Guides</span>`,
		`<li class="dir"><span class="dir-toggle">Misc</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree HTML missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "live") {
		t.Error("tree HTML should not carry the live class before highlighting")
	}
	if strings.Contains(out, "index.html") {
		t.Error("index.md should be reached through the Home link only")
	}
}

func TestPagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"index.md", "/"},
		{"about.md", "/about.html"},
		{"guides/install.md", "/guides/install.html"},
		{"guides/index.md", "/guides/"},
	}
	for _, tt := range tests {
		if got := PagePath(tt.in); got != tt.want {
			t.Errorf("PagePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDirName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"guides", "Guides"},
		{"getting-started", "Getting Started"},
		{"api_reference", "Api Reference"},
	}
	for _, tt := range tests {
		if got := formatDirName(tt.in); got != tt.want {
			t.Errorf("formatDirName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	if got := extractTitle("intro\n# Getting Started\nbody", "a.md"); got != "Getting Started" {
		t.Errorf("extractTitle = %q, want Getting Started", got)
	}
	if got := extractTitle("no heading here", "guides/setup.md"); got != "setup" {
		t.Errorf("extractTitle fallback = %q, want setup", got)
	}
}

func TestRewriteMDLinks(t *testing.T) {
	in := `<a href="install.md">x</a> <a href="about.md#team">y</a> <a href="/">z</a>`
	want := `<a href="install.html">x</a> <a href="about.html#team">y</a> <a href="/">z</a>`
	if got := rewriteMDLinks(in); got != want {
		t.Errorf("rewriteMDLinks = %q, want %q", got, want)
	}
}

func newSampleGenerator(t *testing.T) (*SiteGenerator, string) {
	t.Helper()
	out := t.TempDir()
	gen := NewSiteGenerator(filepath.Join("..", "..", "testdata", "sample_site"), out, "Sample")
	gen.Include = []string{"**/*.md"}
	gen.Exclude = []string{"**/_*.md", "drafts/**"}
	return gen, out
}

func readOutput(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestFullSiteGeneration(t *testing.T) {
	gen, out := newSampleGenerator(t)

	pages, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3 (%+v)", len(pages), pages)
	}
	for _, p := range pages {
		if !p.Marked {
			t.Errorf("page %s (%s) has no live link", p.Source, p.URLPath)
		}
	}

	for _, f := range []string{"index.html", "about.html", "guides/install.html", "style.css", "main.js"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("expected output file %s: %v", f, err)
		}
	}
	for _, f := range []string{"drafts/wip.html", "guides/_partial.html", "notes.html"} {
		if _, err := os.Stat(filepath.Join(out, f)); err == nil {
			t.Errorf("excluded page %s was generated", f)
		}
	}

	about := readOutput(t, out, "about.html")
	if !strings.Contains(about, `<a href="/about.html" class="live">`) {
		t.Errorf("about.html does not mark its own link:\n%s", about)
	}
	if strings.Count(about, `class="live"`) != 1 {
		t.Errorf("about.html has %d live links, want 1", strings.Count(about, `class="live"`))
	}

	index := readOutput(t, out, "index.html")
	if !strings.Contains(index, `<a href="/" class="live">Home</a>`) {
		t.Errorf("index.html does not mark the Home link:\n%s", index)
	}
	if !strings.Contains(index, `<a href="/" class="brand">`) {
		t.Error("brand link outside <nav> should be left untouched")
	}

	install := readOutput(t, out, "guides/install.html")
	if !strings.Contains(install, `<a href="/guides/install.html" class="live">`) {
		t.Errorf("guides/install.html does not mark its own link:\n%s", install)
	}
	if !strings.Contains(install, `class="dir expanded"`) {
		t.Error("guides directory should be expanded on its own pages")
	}
}

func TestGenerateCustomClass(t *testing.T) {
	gen, out := newSampleGenerator(t)
	gen.Highlight = htmlnav.Options{Class: "current"}

	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	about := readOutput(t, out, "about.html")
	if !strings.Contains(about, `<a href="/about.html" class="current">`) {
		t.Errorf("custom class not applied:\n%s", about)
	}
	if strings.Contains(about, `class="live"`) {
		t.Error("default class should not be applied when a custom one is set")
	}
}

func TestGenerateIdempotentOutput(t *testing.T) {
	gen, out := newSampleGenerator(t)
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	first := readOutput(t, out, "about.html")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if second := readOutput(t, out, "about.html"); second != first {
		t.Error("regenerating the site changed about.html")
	}
}

func TestGenerateClientScript(t *testing.T) {
	gen, out := newSampleGenerator(t)
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	script := readOutput(t, out, "main.js")
	for _, want := range []string{`querySelectorAll("nav a")`, `classList.add("live")`, "break;"} {
		if !strings.Contains(script, want) {
			t.Errorf("main.js missing %q", want)
		}
	}
}

func TestGenerateNoFiles(t *testing.T) {
	gen := NewSiteGenerator(t.TempDir(), t.TempDir(), "Empty")
	if _, err := gen.Generate(); err == nil {
		t.Error("expected error for a directory with no markdown files")
	}
}

func TestGenerateMissingDir(t *testing.T) {
	gen := NewSiteGenerator(filepath.Join(t.TempDir(), "missing"), t.TempDir(), "Missing")
	if _, err := gen.Generate(); err == nil {
		t.Error("expected error for a missing pages directory")
	}
}

func TestHandlerServesGeneratedSite(t *testing.T) {
	gen, out := newSampleGenerator(t)
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	srv := httptest.NewServer(Handler(out))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/style.css")
	if err != nil {
		t.Fatalf("GET /style.css: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /style.css status = %d, want 200", resp.StatusCode)
	}
}
