package values

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/docbr/docbr/internal/domain/checksum"
	"github.com/docbr/docbr/internal/domain/errors"
)

// CPF represents a validated individual taxpayer number value object
type CPF struct {
	number string // Stored as 11 bare digits
}

var (
	cpfWeightsFirst  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeightsSecond = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	// Fiscal-region group by the ninth digit, the pre-1972 issuance rule.
	cpfOriginStates = map[byte]string{
		'0': "RS",
		'1': "DF/GO/MS/MT/TO",
		'2': "AC/AM/AP/PA/RO/RR",
		'3': "CE/MA/PI",
		'4': "AL/PB/PE/RN",
		'5': "BA/SE",
		'6': "MG",
		'7': "ES/RJ",
		'8': "SP",
		'9': "PR/SC",
	}
)

// NewCPF creates a new CPF value object with validation. Formatting
// characters in the input are ignored.
func NewCPF(input string) (CPF, error) {
	if input == "" {
		return CPF{}, errors.NewValidationError("EMPTY_CPF",
			"CPF cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) != 11 {
		return CPF{}, errors.NewValidationError("INVALID_CPF_LENGTH",
			fmt.Sprintf("CPF must have 11 digits, got %d", len(digits)))
	}

	// Repeated-digit sequences satisfy the arithmetic but are reserved.
	if checksum.AllSameDigit(digits) {
		return CPF{}, errors.NewValidationError("CPF_REPEATED_DIGITS",
			"CPF with all digits equal is invalid")
	}

	if !cpfCheckDigitsMatch(digits) {
		return CPF{}, errors.NewValidationError("INVALID_CPF_CHECK_DIGITS",
			"CPF check digits do not match")
	}

	return CPF{number: digits}, nil
}

// MustNewCPF creates a CPF and panics on error (for constants/tests)
func MustNewCPF(input string) CPF {
	cpf, err := NewCPF(input)
	if err != nil {
		panic(err)
	}
	return cpf
}

func cpfCheckDigitsMatch(digits string) bool {
	d1 := checksum.Mod11Digit(digits, cpfWeightsFirst)
	d2 := checksum.Mod11Digit(digits, cpfWeightsSecond)
	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// IsValidCPF reports whether the input is a valid CPF in any formatting.
func IsValidCPF(input string) bool {
	_, err := NewCPF(input)
	return err == nil
}

// String returns the CPF as 11 bare digits
func (c CPF) String() string {
	return c.number
}

// Format returns the canonical punctuation: 000.000.000-00
func (c CPF) Format() string {
	return FormatCPF(c.number)
}

// OriginState returns the fiscal-region group the CPF was issued in,
// derived from the ninth digit.
func (c CPF) OriginState() string {
	return cpfOriginStates[c.number[8]]
}

// IsEmpty checks if the CPF is the zero value
func (c CPF) IsEmpty() bool {
	return c.number == ""
}

// Equal checks if two CPF values are equal
func (c CPF) Equal(other CPF) bool {
	return c.number == other.number
}

// MarshalJSON implements JSON marshaling
func (c CPF) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (c *CPF) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	cpf, err := NewCPF(number)
	if err != nil {
		return err
	}

	*c = cpf
	return nil
}

// FormatCPF applies the canonical CPF punctuation to an 11-digit string.
// Inputs of any other length are returned stripped but unformatted.
func FormatCPF(input string) string {
	digits := onlyDigits(input)
	if len(digits) != 11 {
		return digits
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// GenerateCPF returns a random valid CPF.
func GenerateCPF() CPF {
	body := make([]byte, 9, 11)
	for i := range body {
		body[i] = byte('0' + rand.Intn(10))
	}

	d1 := checksum.Mod11Digit(string(body), cpfWeightsFirst)
	body = append(body, byte('0'+d1))
	d2 := checksum.Mod11Digit(string(body), cpfWeightsSecond)
	body = append(body, byte('0'+d2))

	return CPF{number: string(body)}
}
