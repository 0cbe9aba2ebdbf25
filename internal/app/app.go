package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/tablefeed/internal/fetch"
	"github.com/hyperifyio/tablefeed/internal/sheets"
	"github.com/hyperifyio/tablefeed/internal/wikitable"
)

// Run executes one fetch, extract, write cycle and prints the manual append
// instructions for the produced files. Each run is self-contained: output
// files are rebuilt from scratch and overwrite whatever a previous run left.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.WithDefaults()

	client := &fetch.Client{UserAgent: cfg.UserAgent, Timeout: cfg.Timeout}
	log.Info().Str("url", cfg.URL).Msg("fetching page")
	doc, err := client.Get(ctx, cfg.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", cfg.URL, err)
	}

	rows, err := wikitable.Extract(doc)
	if err != nil {
		return err
	}
	values := wikitable.Grid(rows)

	if err := sheets.WriteValues(cfg.ValuesOut, values); err != nil {
		return err
	}
	if err := sheets.WriteAppendBody(cfg.BodyOut, sheets.NewAppendBody(cfg.Range, values)); err != nil {
		return err
	}
	log.Info().
		Int("rows", len(rows)).
		Str("values", cfg.ValuesOut).
		Str("body", cfg.BodyOut).
		Msg("wrote output files")

	printInstructions(os.Stdout, cfg)
	return nil
}

// printInstructions emits the operator's manual follow-up: how to issue the
// spreadsheet append call from an HTTP client using the generated body file.
// This goes to stdout because it is the program's output, not a diagnostic.
func printInstructions(w io.Writer, cfg Config) {
	fmt.Fprintf(w, "\nGenerated:\n")
	fmt.Fprintf(w, "  - %s\n", cfg.ValuesOut)
	fmt.Fprintf(w, "  - %s\n", cfg.BodyOut)
	fmt.Fprintf(w, "\nNext step (append to Google Sheets):\n")
	fmt.Fprintf(w, "1) Method: POST\n")
	fmt.Fprintf(w, "2) URL: https://sheets.googleapis.com/v4/spreadsheets/{SPREADSHEET_ID}/values/{RANGE}:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS\n")
	fmt.Fprintf(w, "   - Replace {SPREADSHEET_ID} with your sheet ID\n")
	fmt.Fprintf(w, "   - Replace {RANGE} with the range you used (e.g., %s)\n", cfg.Range)
	fmt.Fprintf(w, "3) Headers:\n")
	fmt.Fprintf(w, "   Authorization: Bearer <YOUR_OAUTH2_ACCESS_TOKEN>\n")
	fmt.Fprintf(w, "   Content-Type: application/json\n")
	fmt.Fprintf(w, "4) Body: raw JSON, paste the entire contents of %s\n", cfg.BodyOut)
}
