package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
)

var catalogFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `Portfolio hosts a single-page personal site. The page is pre-rendered on
the server and its behaviors run in the browser from a wasm bundle.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "project catalog YAML (defaults to the embedded one)")
}

// setup loads config, a logger at the configured level and the catalog.
func setup() (*config.Config, *slog.Logger, *catalog.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("catalog loaded", "projects", cat.Len(), "categories", len(cat.Categories()))
	return cfg, logger, cat, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogFile == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	cat, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", catalogFile, err)
	}
	return cat, nil
}
