package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document renderers over HTTP",
	Long: `Start an HTTP service that renders posted item metadata.

Routes:
  POST /render/:format   body {"metadata": [...], "bitstreams": [...], "date": "", "year": ""}
  GET  /formats          registered formats as JSON
  GET  /                 liveness`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := &server.Server{
			Addr:      listenAddr,
			Publisher: cfg.Publisher,
		}
		return s.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "Listen address")
}
