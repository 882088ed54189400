package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docbr/docbr/internal/domain/values"
)

var formattersByType = map[string]func(string) string{
	"cpf":   values.FormatCPF,
	"cnpj":  values.FormatCNPJ,
	"pis":   values.FormatPIS,
	"cep":   values.FormatCEP,
	"phone": values.FormatPhone,
	"plate": values.FormatPlate,
	"card":  values.FormatCardNumber,
}

func formatterTypes() string {
	// reuse the validate helper's ordering for the error message
	types := make(map[string]func(string) bool, len(formattersByType))
	for t := range formattersByType {
		types[t] = nil
	}
	return knownTypes(types)
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <type> <value>",
		Short: "Apply a document's canonical punctuation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, ok := formattersByType[args[0]]
			if !ok {
				return fmt.Errorf("unknown document type %q (known: %s)",
					args[0], formatterTypes())
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter(args[1]))
			return nil
		},
	}
}
