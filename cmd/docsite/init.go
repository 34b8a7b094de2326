package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/docsite/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Create a starter site",
	Long: `Creates a directory holding a starter site.yaml, a placeholder logo
under static/img and an .env.example listing the DOCSITE_* variables.

Example:
  docsite init my-docs`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := args[0]
	created, err := scaffold.Write(dir, scaffold.NewData(dir))
	if err != nil {
		return err
	}
	logger.Debug("scaffold written", zap.String("dir", dir), zap.Int("files", len(created)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating new docsite project: %s\n\n", dir)
	for _, p := range created {
		fmt.Fprintf(out, "  created %s\n", p)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  docsite serve --dev --watch")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Edit site.yaml to change the splash, sections and users.")
	return nil
}
