package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/internal/server"
)

type serveOptions struct {
	addr      string
	templates string
	watch     bool
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing and legal pages plus component previews over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = server.Addr(opts.addr)
			}
			if cmd.Flags().Changed("templates") {
				cfg.TemplatesDir = strings.TrimSpace(opts.templates)
			}
			if cmd.Flags().Changed("watch") {
				cfg.Watch = opts.watch
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			renderer, engine, err := newSiteRenderer(cfg)
			if err != nil {
				return err
			}

			orch, err := newPageOrchestrator(cfg, renderer)
			if err != nil {
				return err
			}
			themeCfg, err := orch.ResolveTheme("", "")
			if err != nil {
				return err
			}

			handler, err := server.New(server.Options{
				Pages:  renderer,
				Theme:  themeCfg,
				Themes: orch,
				Logger: log,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				if cfg.TemplatesDir == "" {
					log.Warn("watch requested without a templates directory; nothing to watch")
				} else {
					_, err := server.Watch(ctx, cfg.TemplatesDir, func(name string) {
						engine.Reset()
						log.WithFields(map[string]any{"file": name}).Info("templates reloaded")
					}, log)
					if err != nil {
						return err
					}
				}
			}

			httpServer := &http.Server{
				Addr:              cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errChan := make(chan error, 1)
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
			}()

			log.WithFields(map[string]any{
				"addr":      cfg.Addr,
				"templates": cfg.TemplatesDir,
				"watch":     cfg.Watch,
			}).Info("listening")

			select {
			case err := <-errChan:
				return fmt.Errorf("listen: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			log.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides config, default :8080)")
	cmd.Flags().StringVar(&opts.templates, "templates", "", "Directory whose templates shadow the embedded ones")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload templates when files in --templates change")
	return cmd
}
