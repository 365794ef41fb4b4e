package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livenav/internal/htmlnav"
)

var (
	markPath string
	markOut  string
)

var markCmd = &cobra.Command{
	Use:   "mark [file.html]",
	Short: "Mark the live navigation link in an HTML file",
	Long: `Reads an HTML document (from the file argument or stdin), marks the first
navigation link whose href equals --path, and writes the result to stdout or
--out. A document with no matching link is written unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMark,
}

func init() {
	markCmd.Flags().StringVar(&markPath, "path", "", "current page path to match against link hrefs (required)")
	markCmd.Flags().StringVarP(&markOut, "out", "o", "", "output file (defaults to stdout)")
	_ = markCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(markCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var buf bytes.Buffer
	marked, err := htmlnav.Rewrite(in, &buf, markPath, highlightOptions(cfg))
	if err != nil {
		return fmt.Errorf("marking %s: %w", markPath, err)
	}

	if verbose {
		if marked {
			fmt.Fprintf(cmd.ErrOrStderr(), "marked link %q as %s\n", markPath, cfg.LiveClass)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "no navigation link matches %q\n", markPath)
		}
	}

	if markOut == "" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	return os.WriteFile(markOut, buf.Bytes(), 0o644)
}
