package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livenav/internal/progress"
	"github.com/ziadkadry99/livenav/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Build a static site from markdown pages",
	Long:  `Builds a static HTML site from the pages directory. Each generated page has its own navigation link marked live.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to site_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.PagesDir); os.IsNotExist(err) {
		return fmt.Errorf("pages directory not found at %s\nSet pages_dir in %s or run `livenav init`", cfg.PagesDir, cfgFile)
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.SiteDir
	}

	generator := site.NewSiteGenerator(cfg.PagesDir, outputDir, cfg.ProjectName)
	generator.Include = cfg.Include
	generator.Exclude = cfg.Exclude
	generator.Highlight = highlightOptions(cfg)
	generator.Reporter = progress.NewReporter()

	pages, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Static site generated: %s (%d pages)\n", outputDir, len(pages))
	if verbose {
		for _, p := range pages {
			state := "no live link"
			if p.Marked {
				state = "live"
			}
			fmt.Fprintf(out, "  %-30s %-30s %s\n", p.Source, p.URLPath, state)
		}
	}

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		if err := site.Serve(outputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
