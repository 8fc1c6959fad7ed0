package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shivohini/invoicegen/internal/render"
	"github.com/shivohini/invoicegen/internal/server"
	"github.com/shivohini/invoicegen/internal/storage"
)

var (
	generateOutput    string
	generateSignature string
)

var generateCmd = &cobra.Command{
	Use:   "generate <payload.json>",
	Short: "Render an invoice PDF from a JSON payload file",
	Long: `Render a single invoice PDF from a payload file.

The payload uses the same schema as the HTTP endpoint:

  {
    "client": {"name": "...", "email": "...", "address": "...", "phone": "..."},
    "items": [{"name": "...", "quantity": 2, "price": 10,
               "charge_types": ["shipping"], "charge_amounts": [5]}],
    "tax_rate": 0.1,
    "discount": 20, "discount_type": "flat",
    "currency": "USD",
    "notes": ["..."], "terms": ["..."]
  }

Examples:
  invoicegen generate payload.json
  invoicegen generate payload.json -o acme-august.pdf --signature sig.png`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output filename (default: invoice_<number>.pdf)")
	generateCmd.Flags().StringVar(&generateSignature, "signature", "", "Signature image to embed")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	req, err := server.DecodePayload(data)
	if err != nil {
		return err
	}

	inv := req.Invoice()
	printVerbose("Invoice %s: %d items, currency %s\n", inv.Number, len(inv.Items), req.CurrencyCode())

	store, err := storage.New(outputDir, signatureDir)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(store.OutputDir, render.WithLogoPath(logoPath))
	filename, err := renderer.Render(inv, render.Options{
		Filename:      generateOutput,
		SignaturePath: generateSignature,
		Notes:         req.Notes,
		Terms:         req.Terms,
		Currency:      req.CurrencyCode(),
	})
	if err != nil {
		return err
	}

	fmt.Println(filepath.Join(outputDir, filename))
	return nil
}
