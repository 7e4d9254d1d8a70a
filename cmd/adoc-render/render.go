// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/adoc-render/internal/render"
	"github.com/pdiddy/adoc-render/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render AsciiDoc from stdin to HTML on stdout",
	Long: `Render reads one AsciiDoc document from stdin and writes the HTML
fragment produced by the selected engine to stdout. The input is passed
to the engine unmodified; engine failures are reported as-is.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadRenderConfig()
	if err != nil {
		return err
	}

	engine, err := render.NewEngine(cfg)
	if err != nil {
		return err
	}
	slog.Debug("engine selected", "engine", cfg.Engine)

	text, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	html, err := render.New(engine).Render(types.RenderRequest{Text: string(text)})
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), html)
	return err
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
