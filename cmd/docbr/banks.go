package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docbr/docbr/internal/domain/values"
	"github.com/docbr/docbr/internal/infrastructure/config"
)

func newBanksCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banks [code]",
		Short: "Look up Brazilian bank codes",
		Long: `Lists the institutions registered in the national clearing
system (COMPE), or resolves a single bank code. Codes shorter than
three digits are zero-padded, so "1" and "001" both resolve to
Banco do Brasil.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				bank, err := values.LookupBank(args[0])
				if err != nil {
					return err
				}
				return printBanks(cmd, cfg, []values.Bank{bank})
			}
			return printBanks(cmd, cfg, values.ListBanks())
		},
	}
	return cmd
}

func printBanks(cmd *cobra.Command, cfg *config.Config, banks []values.Bank) error {
	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(banks)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tKIND")
	for _, b := range banks {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Code, b.Name, b.Kind)
	}
	return w.Flush()
}
