package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docbr/docbr/internal/infrastructure/config"
	"github.com/docbr/docbr/internal/service/detect"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "docbr [value]",
		Short: "Validate, format and generate Brazilian documents",
		Long: `docbr works with Brazilian identification documents and data
strings: CPF, CNPJ, PIS/PASEP, voter IDs, driver's licenses, postal
codes, phone numbers, vehicle plates and payment card numbers.

Given a bare value it infers the document type and reports validity.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			result := detect.NewService(slog.Default()).Detect(args[0])
			return printDetection(cmd, cfg, args[0], result)
		},
	}

	root.AddCommand(
		newValidateCmd(cfg),
		newFormatCmd(),
		newGenerateCmd(cfg),
		newInfoCmd(cfg),
		newBanksCmd(cfg),
	)

	return root
}

func printDetection(cmd *cobra.Command, cfg *config.Config, input string, result detect.Result) error {
	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "value: %s\n", input)
	fmt.Fprintf(out, "type:  %s\n", result.Type)
	fmt.Fprintf(out, "valid: %t\n", result.Valid)
	if result.Formatted != "" {
		fmt.Fprintf(out, "formatted: %s\n", result.Formatted)
	}
	if result.State != "" {
		fmt.Fprintf(out, "state: %s\n", result.State)
	}
	if result.Brand != "" {
		fmt.Fprintf(out, "brand: %s\n", result.Brand)
	}
	if result.Type == detect.TypePhone {
		fmt.Fprintf(out, "mobile: %t\n", result.Mobile)
	}
	if result.Type == detect.TypePlate {
		fmt.Fprintf(out, "mercosul: %t\n", result.Mercosul)
	}
	return nil
}
