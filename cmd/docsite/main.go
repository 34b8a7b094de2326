package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eringen/docsite"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger *zap.Logger

	dev        bool
	verbose    bool
	configPath string
	staticDir  string
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "docsite - landing pages for documentation sites",
	Long: `docsite renders a documentation site's landing page (splash, feature
grids and a showcase of the project's users) from a site configuration file
written in YAML, JSON or TOML.

Serve it with "docsite serve" or export static files with "docsite build".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if dev {
			config = zap.NewDevelopmentConfig()
		}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the docsite version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docsite %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dev, "dev", false, "Human-readable development logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", docsite.EnvOr("DOCSITE_CONFIG", "site.yaml"), "Site configuration file (.yaml, .yml, .json, .toml)")
	rootCmd.PersistentFlags().StringVar(&staticDir, "static", docsite.EnvOr("DOCSITE_STATIC", "static"), "Static files directory")

	rootCmd.AddCommand(serveCmd, buildCmd, initCmd, versionCmd)
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
