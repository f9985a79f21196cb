package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "proofctl",
		Short: "Offline proof-of-display and booking price tools",
		Long: `proofctl resolves the latest proof photo per slot for a campaign asset
from an exported list of photo records, and quotes booking prices.
`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newResolveCmd(), newQuoteCmd())

	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
