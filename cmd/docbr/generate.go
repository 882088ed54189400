package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docbr/docbr/internal/domain/validation"
	"github.com/docbr/docbr/internal/domain/values"
	"github.com/docbr/docbr/internal/infrastructure/config"
)

type generateOptions struct {
	Count    int    `validate:"min=1,max=1000"`
	Branch   int    `validate:"min=1,max=9999"`
	AreaCode string `validate:"omitempty,ddd"`
	Raw      bool
	Landline bool
	Legacy   bool
	Brand    string
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:       "generate <type>",
		Short:     "Generate random valid documents",
		Long:      "Generates random documents with valid check digits. Types: cpf, cnpj, pis, phone, plate, card.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cpf", "cnpj", "pis", "phone", "plate", "card"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := validation.New()
			if err != nil {
				return err
			}
			if err := v.Struct(opts); err != nil {
				return fmt.Errorf("invalid generator options: %w", err)
			}

			formatted := cfg.Generate.Formatted && !opts.Raw
			for i := 0; i < opts.Count; i++ {
				out, err := generateOne(args[0], opts, formatted)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of documents to generate")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "emit bare digits without punctuation")
	cmd.Flags().IntVar(&opts.Branch, "branch", 1, "CNPJ establishment number (1 is the headquarters)")
	cmd.Flags().StringVar(&opts.AreaCode, "ddd", cfg.Generate.AreaCode, "pin phone numbers to one area code")
	cmd.Flags().BoolVar(&opts.Landline, "landline", false, "generate landline instead of mobile numbers")
	cmd.Flags().BoolVar(&opts.Legacy, "legacy", !cfg.Generate.Mercosul, "generate legacy instead of Mercosul plates")
	cmd.Flags().StringVar(&opts.Brand, "brand", "", "card brand (visa, mastercard, amex, ...); random when empty")

	return cmd
}

func generateOne(docType string, opts generateOptions, formatted bool) (string, error) {
	switch docType {
	case "cpf":
		cpf := values.GenerateCPF()
		if formatted {
			return cpf.Format(), nil
		}
		return cpf.String(), nil

	case "cnpj":
		cnpj, err := values.GenerateCNPJ(opts.Branch)
		if err != nil {
			return "", err
		}
		if formatted {
			return cnpj.Format(), nil
		}
		return cnpj.String(), nil

	case "pis":
		pis := values.GeneratePIS()
		if formatted {
			return pis.Format(), nil
		}
		return pis.String(), nil

	case "phone":
		phone, err := values.GeneratePhone(values.PhoneGenOptions{
			AreaCode: opts.AreaCode,
			Landline: opts.Landline,
		})
		if err != nil {
			return "", err
		}
		if formatted {
			return phone.Format(), nil
		}
		return phone.String(), nil

	case "plate":
		plate := values.GeneratePlate(values.PlateGenOptions{Legacy: opts.Legacy})
		if formatted {
			return plate.Format(), nil
		}
		return plate.String(), nil

	case "card":
		card, err := values.GenerateCard(values.CardBrand(opts.Brand))
		if err != nil {
			return "", err
		}
		if formatted {
			return card.Format(), nil
		}
		return card.String(), nil

	default:
		return "", fmt.Errorf("unknown document type %q", docType)
	}
}
