package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livenav/internal/db"
	"github.com/ziadkadry99/livenav/internal/server"
	"github.com/ziadkadry99/livenav/internal/snippets"
	"github.com/ziadkadry99/livenav/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snippet web application",
	Long:  `Starts the web application. Every HTML response is served with the navigation link for the requested path marked live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		dbPath := cfg.DatabasePath()
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:        cfg.Port,
			AllowAll:    cfg.AllowAllOrigins,
			LiveClass:   cfg.LiveClass,
			NavSelector: cfg.NavSelector,
		}, database)

		app, err := web.New(snippets.NewStore(database), cfg.ProjectName)
		if err != nil {
			return fmt.Errorf("building web app: %w", err)
		}
		app.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "livenav %s starting on port %d\n", Version, cfg.Port)
		if verbose {
			fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
			fmt.Fprintf(os.Stderr, "  Live class: %s\n", cfg.LiveClass)
			fmt.Fprintf(os.Stderr, "  Nav selector: %s\n", cfg.NavSelector)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 4000, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
