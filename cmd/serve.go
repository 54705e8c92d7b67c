package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Renders the page once and serves it with the static assets and wasm bundle until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, cat, err := setup()
		if err != nil {
			return err
		}

		srv, err := server.New(cfg, cat, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
