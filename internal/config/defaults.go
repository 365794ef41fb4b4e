package config

import (
	"github.com/ziadkadry99/livenav/internal/htmlnav"
	"github.com/ziadkadry99/livenav/internal/navlink"
)

// DefaultExcludes are glob patterns skipped when collecting site pages.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"_*/**",
	"**/_*.md",
	"drafts/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:        4000,
		DataDir:     ".livenav",
		PagesDir:    "pages",
		SiteDir:     "site",
		ProjectName: "Snippetbox",
		Include:     []string{"**/*.md"},
		Exclude:     DefaultExcludes,
		LiveClass:   navlink.LiveClass,
		NavSelector: htmlnav.DefaultSelector,
	}
}
