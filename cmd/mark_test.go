package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const markPage = `<html><head></head><body><nav><a href="/">Home</a><a href="/about">About</a></nav></body></html>`

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	markPath, markOut, verbose = "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yml")))
	err := rootCmd.Execute()
	return out.String(), err
}

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(markPage), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMarkWritesLiveLink(t *testing.T) {
	out, err := runRoot(t, "mark", "--path", "/about", writePage(t))
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !strings.Contains(out, `<a href="/about" class="live">About</a>`) {
		t.Errorf("output missing live link:\n%s", out)
	}
	if strings.Count(out, "live") != 1 {
		t.Errorf("expected exactly one live marker:\n%s", out)
	}
}

func TestMarkNoMatchCopiesInput(t *testing.T) {
	out, err := runRoot(t, "mark", "--path", "/contact", writePage(t))
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if out != markPage {
		t.Errorf("unmatched document changed:\n got %s\nwant %s", out, markPage)
	}
}

func TestMarkToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.html")
	if _, err := runRoot(t, "mark", "--path", "/", "--out", dest, writePage(t)); err != nil {
		t.Fatalf("mark: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<a href="/" class="live">Home</a>`) {
		t.Errorf("output file missing live link:\n%s", data)
	}
}

func TestVersion(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "livenav dev\n" {
		t.Errorf("version output = %q", out)
	}
}
