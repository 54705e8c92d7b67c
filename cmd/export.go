package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/server"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the pre-rendered page to a directory",
	Long:  `Writes index.html and projects.json so the site can be hosted from any static file server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, cat, err := setup()
		if err != nil {
			return err
		}

		index, err := server.RenderIndex(cfg.TemplateDir, cat, logger)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(map[string]any{
			"categories": cat.Categories(),
			"projects":   cat.Projects(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding projects: %w", err)
		}

		if err := os.MkdirAll(exportOut, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		files := map[string][]byte{
			"index.html":    index,
			"projects.json": data,
		}
		for name, body := range files {
			path := filepath.Join(exportOut, name)
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			logger.Info("exported", "file", path, "bytes", len(body))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}
