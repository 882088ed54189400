package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docbr/docbr/internal/domain/values"
	"github.com/docbr/docbr/internal/infrastructure/config"
	"github.com/docbr/docbr/internal/service/detect"
)

func newInfoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info <value>",
		Short: "Show everything a document encodes",
		Long: `Detects the document type and reports the details the number
itself carries: the fiscal region a CPF was issued in, a CNPJ's
establishment number, the state behind a voter ID, postal code or
phone area code, a card's brand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := detect.NewService(slog.Default()).Detect(args[0])
			if !result.Valid {
				return fmt.Errorf("%s is not a valid document (detected type: %s)",
					args[0], result.Type)
			}

			details, err := documentDetails(args[0], result)
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(details)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type: %s\n", result.Type)
			for _, d := range details.Fields {
				fmt.Fprintf(out, "%s: %v\n", d.Name, d.Value)
			}
			return nil
		},
	}
}

type documentField struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type documentInfo struct {
	Type   detect.Type     `json:"type"`
	Fields []documentField `json:"fields"`
}

func documentDetails(input string, result detect.Result) (documentInfo, error) {
	info := documentInfo{Type: result.Type}
	add := func(name string, value any) {
		info.Fields = append(info.Fields, documentField{Name: name, Value: value})
	}

	switch result.Type {
	case detect.TypeCPF:
		cpf, err := values.NewCPF(input)
		if err != nil {
			return info, err
		}
		add("formatted", cpf.Format())
		add("origin_state", cpf.OriginState())

	case detect.TypeCNPJ:
		cnpj, err := values.NewCNPJ(input)
		if err != nil {
			return info, err
		}
		add("formatted", cnpj.Format())
		add("branch", cnpj.Branch())
		add("headquarters", cnpj.IsHeadquarters())

	case detect.TypePIS:
		pis, err := values.NewPIS(input)
		if err != nil {
			return info, err
		}
		add("formatted", pis.Format())

	case detect.TypeVoterID:
		voter, err := values.NewVoterID(input)
		if err != nil {
			return info, err
		}
		add("state", voter.State())

	case detect.TypeCNH:
		cnh, err := values.NewCNH(input)
		if err != nil {
			return info, err
		}
		add("number", cnh.String())

	case detect.TypeCEP:
		cep, err := values.NewCEP(input)
		if err != nil {
			return info, err
		}
		add("formatted", cep.Format())
		if uf, ok := cep.State(); ok {
			add("state", uf)
		}

	case detect.TypePhone:
		phone, err := values.NewPhone(input)
		if err != nil {
			return info, err
		}
		add("formatted", phone.Format())
		add("area_code", phone.AreaCode())
		add("state", phone.State())
		add("mobile", phone.IsMobile())

	case detect.TypePlate:
		plate, err := values.NewPlate(input)
		if err != nil {
			return info, err
		}
		add("formatted", plate.Format())
		add("mercosul", plate.IsMercosul())

	case detect.TypeCard:
		card, err := values.NewCardNumber(input)
		if err != nil {
			return info, err
		}
		add("formatted", card.Format())
		add("brand", card.Brand())

	default:
		return info, fmt.Errorf("no details available for %q", input)
	}

	return info, nil
}
