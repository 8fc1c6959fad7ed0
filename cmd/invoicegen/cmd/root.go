package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputDir    string
	signatureDir string
	logoPath     string
)

var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "Generate styled invoice PDFs",
	Long: `Invoicegen turns structured invoice data into styled PDF documents.

An invoice payload carries the client, line items with optional extra
charges, tax rate, discount, currency, notes and terms. The output is a
fixed-layout PDF written to the output directory.

Examples:
  # Render a PDF from a JSON payload file
  invoicegen generate payload.json

  # Start the HTTP API
  invoicegen serve --address :8080

  # Check a generated file
  invoicegen inspect invoices/invoice_INV-3F2A9C41.pdf`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "./invoices", "Directory for rendered PDFs (env: INVOICE_OUTPUT_DIR)")
	rootCmd.PersistentFlags().StringVar(&signatureDir, "signature-dir", "./signatures", "Directory for uploaded signature images (env: INVOICE_SIGNATURE_DIR)")
	rootCmd.PersistentFlags().StringVar(&logoPath, "logo", "logo.png", "Header logo image, omitted if missing (env: INVOICE_LOGO)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Optional .env file; flags still win over the environment.
	_ = godotenv.Load()

	if !rootCmd.PersistentFlags().Changed("output-dir") {
		if v := os.Getenv("INVOICE_OUTPUT_DIR"); v != "" {
			outputDir = v
		}
	}
	if !rootCmd.PersistentFlags().Changed("signature-dir") {
		if v := os.Getenv("INVOICE_SIGNATURE_DIR"); v != "" {
			signatureDir = v
		}
	}
	if !rootCmd.PersistentFlags().Changed("logo") {
		if v := os.Getenv("INVOICE_LOGO"); v != "" {
			logoPath = v
		}
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
