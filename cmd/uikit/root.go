package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/internal/config"
	"github.com/goliatone/go-uikit/internal/logging"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	gotemplate "github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/site"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "uikit serves and renders the Trading Journal pages and UI primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads the configuration and applies the persistent flag overrides.
func (f *rootFlags) load() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if level := strings.TrimSpace(f.logLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (*logging.Logger, error) {
	log, err := logging.New(logging.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.HumanReadable(),
		Writer:        w,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// newSiteRenderer builds the page renderer. Templates found in
// cfg.TemplatesDir shadow the embedded ones; the engine is returned so callers
// can reset its cache when files change.
func newSiteRenderer(cfg config.Config) (*site.Renderer, *gotemplate.Engine, error) {
	engineOpts := []gotemplate.Option{gotemplate.WithExtension(".tmpl")}
	if dir := strings.TrimSpace(cfg.TemplatesDir); dir != "" {
		engineOpts = append(engineOpts, gotemplate.WithBaseDir(dir))
	}
	engineOpts = append(engineOpts, gotemplate.WithFS(site.TemplatesFS()))

	engine, err := gotemplate.New(engineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("configure templates: %w", err)
	}

	siteOpts := []site.Option{site.WithTemplateRenderer(engine)}
	if dir := strings.TrimSpace(cfg.ContentDir); dir != "" {
		siteOpts = append(siteOpts, site.WithContentFS(os.DirFS(dir)))
	}

	renderer, err := site.New(siteOpts...)
	if err != nil {
		return nil, nil, err
	}
	return renderer, engine, nil
}

// newPageOrchestrator registers renderer and, when the config declares a
// theme section, selects the configured theme by default.
func newPageOrchestrator(cfg config.Config, renderer render.Renderer) (*orchestrator.Orchestrator, error) {
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}

	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(renderer.Name()),
	}
	if manifest := cfg.Theme.Manifest(); manifest != nil {
		selector, err := orchestrator.NewManifestSelector(manifest)
		if err != nil {
			return nil, fmt.Errorf("configure theme: %w", err)
		}
		options = append(options,
			orchestrator.WithThemeSelector(selector),
			orchestrator.WithDefaultTheme(manifest.Name, cfg.Theme.Variant),
		)
	}
	return orchestrator.New(options...), nil
}
