package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivohini/invoicegen/internal/server"
	"github.com/shivohini/invoicegen/pkg/logging"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for generating invoice PDFs.

The API provides:
  - POST /create_invoice        - Build and render an invoice
  - GET  /download/:filename    - Download a rendered PDF
  - GET  /health                - Health check

The payload may be sent as a raw JSON body or as the "data" form field
of a multipart request; a multipart "signature" file field is embedded
into the PDF footer.

Examples:
  invoicegen serve
  invoicegen serve --address :9000 --output-dir /var/lib/invoices
  invoicegen serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Setup(serverDebug)

	config := &server.Config{
		Address:      serverAddr,
		OutputDir:    outputDir,
		SignatureDir: signatureDir,
		LogoPath:     logoPath,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv, err := server.NewServer(config)
	if err != nil {
		return err
	}

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("shutting down server")
		os.Exit(0)
	}()

	slog.Info("starting server", "address", serverAddr, "output_dir", outputDir)
	return srv.Run()
}
