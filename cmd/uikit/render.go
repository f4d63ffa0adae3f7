package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
)

type renderOptions struct {
	output  string
	set     []string
	theme   string
	variant string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page or a single component to HTML",
	}

	cmd.AddCommand(newRenderPageCmd(flags))
	cmd.AddCommand(newRenderComponentCmd())

	return cmd
}

func newRenderPageCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "page <landing|terms|privacy>",
		Short: "Render a full page document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			renderer, _, err := newSiteRenderer(cfg)
			if err != nil {
				return err
			}
			orch, err := newPageOrchestrator(cfg, renderer)
			if err != nil {
				return err
			}

			output, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Page:         args[0],
				ThemeName:    opts.theme,
				ThemeVariant: opts.variant,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.output, output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme name (defaults to the configured theme)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Theme variant (defaults to the configured variant)")
	return cmd
}

func newRenderComponentCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "component <name>",
		Short: "Render one registered component from key=value parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(opts.set)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := components.NewDefaultRegistry().Render(&buf, args[0], params); err != nil {
				return err
			}
			buf.WriteByte('\n')
			return writeOutput(cmd, opts.output, buf.Bytes())
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Component parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the fragment to a file instead of stdout")
	return cmd
}

func parseParams(pairs []string) (components.Params, error) {
	params := make(components.Params, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "written to %s\n", path)
	return nil
}
