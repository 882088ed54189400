// Package validation exposes the Brazilian document checks as
// go-playground/validator tags so callers can declare them on struct
// fields.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/docbr/docbr/internal/domain/values"
)

// Document tags installed by Register.
var tagFuncs = map[string]validator.Func{
	"cpf":        func(fl validator.FieldLevel) bool { return values.IsValidCPF(fl.Field().String()) },
	"cnpj":       func(fl validator.FieldLevel) bool { return values.IsValidCNPJ(fl.Field().String()) },
	"pis":        func(fl validator.FieldLevel) bool { return values.IsValidPIS(fl.Field().String()) },
	"cnh":        func(fl validator.FieldLevel) bool { return values.IsValidCNH(fl.Field().String()) },
	"voterid":    func(fl validator.FieldLevel) bool { return values.IsValidVoterID(fl.Field().String()) },
	"cep":        func(fl validator.FieldLevel) bool { return values.IsValidCEP(fl.Field().String()) },
	"phonebr":    func(fl validator.FieldLevel) bool { return values.IsValidPhone(fl.Field().String()) },
	"platebr":    func(fl validator.FieldLevel) bool { return values.IsValidPlate(fl.Field().String()) },
	"cardnumber": func(fl validator.FieldLevel) bool { return values.IsValidCardNumber(fl.Field().String()) },
	"ddd":        func(fl validator.FieldLevel) bool { return values.IsValidAreaCode(fl.Field().String()) },
}

// Register installs the document tags on an existing validator instance.
func Register(v *validator.Validate) error {
	for tag, fn := range tagFuncs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// New returns a validator with every document tag registered.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}
