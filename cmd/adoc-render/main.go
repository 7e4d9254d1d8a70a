// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the adoc-render CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/adoc-render/internal/secrets"
	"github.com/pdiddy/adoc-render/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds API tokens, one per file.
const secretsDir = ".secrets/"

// secretRemoteToken is the secrets file holding the remote engine token.
const secretRemoteToken = "render-api-token"

// loadedSecrets holds tokens loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the adoc-render CLI.
var rootCmd = &cobra.Command{
	Use:   "adoc-render",
	Short: "Render AsciiDoc to HTML with a fixed option set",
	Long: `adoc-render converts AsciiDoc to an embeddable HTML fragment. Every
conversion uses the same options: safe mode, article doctype, title hidden,
font icons, hyphen-separated ids without prefix, no automatic section ids,
highlight.js source highlighting and the "Listing" caption.

The conversion itself is delegated to an engine: libasciidoc (built in),
the asciidoctor CLI, asciidoctor in a container, or a remote service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(viper.GetString("log_level")); err != nil {
			return err
		}
		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			slog.Debug("loaded secrets", "count", len(s))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./adoc-render.yaml or ~/.config/adoc-render/config.yaml)")
	rootCmd.PersistentFlags().String("engine", string(types.EngineLibasciidoc), "conversion engine: libasciidoc, asciidoctor, container, or remote")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, or error")

	_ = viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("asciidoctor.bin", "asciidoctor")
	viper.SetDefault("container.image", "asciidoctor/docker-asciidoctor:latest")
	viper.SetDefault("remote.timeout", "30s")
	viper.SetDefault("remote.user_agent", "adoc-render/"+version)
	viper.SetDefault("remote.max_retries", 5)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("adoc-render")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "adoc-render"))
		}
	}

	viper.SetEnvPrefix("ADOC_RENDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadRenderConfig decodes the engine settings from viper and fills the
// remote token from secrets when it is not configured.
func loadRenderConfig() (types.RenderConfig, error) {
	var cfg types.RenderConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Remote.Token = secretDefault(secretRemoteToken, cfg.Remote.Token)
	return cfg, nil
}

// setupLogging installs the slog default handler on stderr and aligns the
// logrus level used by libasciidoc.
func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	logrusLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrusLevel)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
