package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"devcheck/internal/server"
	"devcheck/internal/system"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8787", "address to bind (host:port)")
	serveCmd.Flags().StringP("config", "c", "", "path to tools catalog file")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diagnostic report over HTTP",
	Long:  "Starts a local HTTP server; GET /api/report runs the checks and returns the JSON report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		cfg, _ := cmd.Flags().GetString("config")
		srv := &server.Server{Addr: addr, ConfigPath: cfg}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		system.Logger.Info("starting report server", "addr", addr)
		return srv.Start(ctx)
	},
}
