package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Writes index.html, users.html, one directory per configured language,
404.html, sitemap.xml, robots.txt and css/main.css to the output directory,
then copies the static directory, scaling down oversized PNG and JPEG images.

Publish the output at the site's base URL.

Example:
  docsite build --config site.yaml --out build`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "build", "Output directory")
}

func runBuild(cmd *cobra.Command, args []string) error {
	app := docsite.New(docsite.Config{
		SitePath:  configPath,
		StaticDir: staticDir,
	}, docsite.WithLogger(logger))

	rep, err := app.Build(commandContext(cmd), outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages and %d assets (%d resized) into %s\n",
		rep.Pages, rep.Assets.Copied, rep.Assets.Resized, rep.OutDir)
	if !rep.HasURL {
		fmt.Fprintln(cmd.OutOrStdout(), "Note: set url in the site config for absolute sitemap and canonical links.")
	}
	return nil
}
