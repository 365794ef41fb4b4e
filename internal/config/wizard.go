package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// pagesDirCandidates are directories commonly holding markdown pages, in
// order of preference.
var pagesDirCandidates = []string{"pages", "content", "docs"}

// detectPagesDir returns the first existing candidate pages directory.
func detectPagesDir() string {
	for _, dir := range pagesDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "pages"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to livenav! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Project name.
	namePrompt := promptui.Prompt{
		Label:   "Project name",
		Default: cfg.ProjectName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("project name: %w", err)
	}
	cfg.ProjectName = name

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the web server",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Pages directory for the static site.
	pagesPrompt := promptui.Prompt{
		Label:   "Markdown pages directory",
		Default: detectPagesDir(),
	}
	cfg.PagesDir, err = pagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("pages dir: %w", err)
	}

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	// 5. Marker class.
	classPrompt := promptui.Select{
		Label: "Class for the active navigation link",
		Items: []string{"live", "active", "current"},
	}
	_, cfg.LiveClass, err = classPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live class: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
