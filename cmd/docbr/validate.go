package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docbr/docbr/internal/domain/values"
	"github.com/docbr/docbr/internal/infrastructure/config"
	"github.com/docbr/docbr/internal/service/detect"
)

var validatorsByType = map[string]func(string) bool{
	"cpf":     values.IsValidCPF,
	"cnpj":    values.IsValidCNPJ,
	"pis":     values.IsValidPIS,
	"cnh":     values.IsValidCNH,
	"voterid": values.IsValidVoterID,
	"cep":     values.IsValidCEP,
	"phone":   values.IsValidPhone,
	"plate":   values.IsValidPlate,
	"card":    values.IsValidCardNumber,
}

func knownTypes(m map[string]func(string) bool) string {
	types := make([]string, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}

func newValidateCmd(cfg *config.Config) *cobra.Command {
	var docType string

	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check a document and exit non-zero when invalid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := false

			if docType != "" {
				isValid, ok := validatorsByType[docType]
				if !ok {
					return fmt.Errorf("unknown document type %q (known: %s)",
						docType, knownTypes(validatorsByType))
				}
				valid = isValid(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: valid=%t\n", docType, args[0], valid)
			} else {
				result := detect.NewService(slog.Default()).Detect(args[0])
				valid = result.Valid
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: valid=%t\n", result.Type, args[0], valid)
			}

			if !valid {
				return fmt.Errorf("%s is not valid", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&docType, "type", "t", "",
		"document type to check against instead of auto-detecting")

	return cmd
}
