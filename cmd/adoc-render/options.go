// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/adoc-render/internal/render"
	"github.com/pdiddy/adoc-render/pkg/types"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the rendering options passed to every engine",
	Args:  cobra.NoArgs,
	RunE:  runOptions,
}

// optionsReport is the printed form of the fixed options.
type optionsReport struct {
	Options    types.RenderOptions `json:"options" yaml:"options"`
	Attributes []types.Attribute   `json:"attributes" yaml:"attributes"`
}

func runOptions(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	opts := render.DefaultOptions()
	report := optionsReport{Options: opts, Attributes: opts.Attributes()}

	out := cmd.OutOrStdout()
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

func init() {
	optionsCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(optionsCmd)
}
