// Package detect infers the document type of an unlabeled string and
// routes it to the matching validator.
package detect

import (
	"log/slog"
	"strings"

	"github.com/docbr/docbr/internal/domain/values"
)

// Type tags the document kind inferred from an input string
type Type string

const (
	TypeCPF     Type = "cpf"
	TypeCNPJ    Type = "cnpj"
	TypeCNH     Type = "cnh"
	TypePIS     Type = "pis"
	TypeVoterID Type = "voter_id"
	TypeCEP     Type = "cep"
	TypePhone   Type = "phone"
	TypeCard    Type = "card"
	TypePlate   Type = "plate"
	TypeUnknown Type = "unknown"
)

// Result describes the dispatcher's verdict for one input string.
type Result struct {
	Type      Type             `json:"type"`
	Valid     bool             `json:"valid"`
	Formatted string           `json:"formatted,omitempty"`
	State     string           `json:"state,omitempty"`
	Brand     values.CardBrand `json:"brand,omitempty"`
	Mobile    bool             `json:"mobile,omitempty"`
	Mercosul  bool             `json:"mercosul,omitempty"`
}

// Service wraps detection with structured logging
type Service struct {
	logger *slog.Logger
}

// NewService creates a new detection service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Detect runs the dispatcher and logs the verdict.
func (s *Service) Detect(input string) Result {
	result := Detect(input)
	s.logger.Debug("detected document type",
		"type", result.Type,
		"valid", result.Valid)
	return result
}

// Detect tries each validator against the input in a fixed priority order,
// disambiguating by length and character-class shape, and returns the
// first structural match.
//
// Priority: 11 digits are tried as CPF, then CNH, then PIS; 14 digits are
// a CNPJ; 12 a voter ID; 8 a postal code; 10-11 a phone number; 13-19 a
// card number. Anything that cleans to 7 alphanumeric characters is tried
// as a vehicle plate last.
func Detect(input string) Result {
	digits := stripDigits(input)

	// 11 digits: CPF, CNH and PIS all share the length; an explicit +
	// prefix means the caller is passing a phone number.
	if len(digits) == 11 && !strings.HasPrefix(strings.TrimSpace(input), "+") {
		if cpf, err := values.NewCPF(digits); err == nil {
			return Result{
				Type:      TypeCPF,
				Valid:     true,
				Formatted: cpf.Format(),
				State:     cpf.OriginState(),
			}
		}
		if cnh, err := values.NewCNH(digits); err == nil {
			return Result{
				Type:      TypeCNH,
				Valid:     true,
				Formatted: cnh.String(),
			}
		}
		if pis, err := values.NewPIS(digits); err == nil {
			return Result{
				Type:      TypePIS,
				Valid:     true,
				Formatted: pis.Format(),
			}
		}
	}

	if len(digits) == 14 {
		_, err := values.NewCNPJ(digits)
		return Result{
			Type:      TypeCNPJ,
			Valid:     err == nil,
			Formatted: values.FormatCNPJ(digits),
		}
	}

	if len(digits) == 12 {
		_, err := values.NewVoterID(digits)
		state, _ := values.VoterIDState(digits)
		return Result{
			Type:  TypeVoterID,
			Valid: err == nil,
			State: state,
		}
	}

	if len(digits) == 8 {
		cep, err := values.NewCEP(digits)
		result := Result{
			Type:      TypeCEP,
			Valid:     err == nil,
			Formatted: values.FormatCEP(digits),
		}
		if err == nil {
			result.State, _ = cep.State()
		}
		return result
	}

	if len(digits) == 10 || len(digits) == 11 {
		_, err := values.NewPhone(digits)
		return Result{
			Type:      TypePhone,
			Valid:     err == nil,
			Formatted: values.FormatPhone(digits),
			Mobile:    len(digits) == 11 && digits[2] == '9',
		}
	}

	if len(digits) >= 13 && len(digits) <= 19 {
		_, err := values.NewCardNumber(digits)
		return Result{
			Type:      TypeCard,
			Valid:     err == nil,
			Formatted: values.FormatCardNumber(digits),
			Brand:     values.DetectCardBrand(digits),
		}
	}

	if cleaned := stripAlphanumeric(input); len(cleaned) == 7 {
		plate, err := values.NewPlate(cleaned)
		result := Result{
			Type:      TypePlate,
			Valid:     err == nil,
			Formatted: values.FormatPlate(cleaned),
		}
		if err == nil {
			result.Mercosul = plate.IsMercosul()
		}
		return result
	}

	return Result{Type: TypeUnknown}
}

func stripDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		}
	}
	return b.String()
}
