package values

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/docbr/docbr/internal/domain/checksum"
	"github.com/docbr/docbr/internal/domain/errors"
)

// CNPJ represents a validated corporate taxpayer number value object
type CNPJ struct {
	number string // Stored as 14 bare digits
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// NewCNPJ creates a new CNPJ value object with validation. Formatting
// characters in the input are ignored.
func NewCNPJ(input string) (CNPJ, error) {
	if input == "" {
		return CNPJ{}, errors.NewValidationError("EMPTY_CNPJ",
			"CNPJ cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) != 14 {
		return CNPJ{}, errors.NewValidationError("INVALID_CNPJ_LENGTH",
			fmt.Sprintf("CNPJ must have 14 digits, got %d", len(digits)))
	}

	if checksum.AllSameDigit(digits) {
		return CNPJ{}, errors.NewValidationError("CNPJ_REPEATED_DIGITS",
			"CNPJ with all digits equal is invalid")
	}

	if !cnpjCheckDigitsMatch(digits) {
		return CNPJ{}, errors.NewValidationError("INVALID_CNPJ_CHECK_DIGITS",
			"CNPJ check digits do not match")
	}

	return CNPJ{number: digits}, nil
}

// MustNewCNPJ creates a CNPJ and panics on error (for constants/tests)
func MustNewCNPJ(input string) CNPJ {
	cnpj, err := NewCNPJ(input)
	if err != nil {
		panic(err)
	}
	return cnpj
}

func cnpjCheckDigitsMatch(digits string) bool {
	d1 := checksum.Mod11Digit(digits, cnpjWeightsFirst)
	d2 := checksum.Mod11Digit(digits, cnpjWeightsSecond)
	return int(digits[12]-'0') == d1 && int(digits[13]-'0') == d2
}

// IsValidCNPJ reports whether the input is a valid CNPJ in any formatting.
func IsValidCNPJ(input string) bool {
	_, err := NewCNPJ(input)
	return err == nil
}

// String returns the CNPJ as 14 bare digits
func (c CNPJ) String() string {
	return c.number
}

// Format returns the canonical punctuation: 00.000.000/0000-00
func (c CNPJ) Format() string {
	return FormatCNPJ(c.number)
}

// Branch returns the establishment number (digits 9-12). Headquarters
// are branch 1.
func (c CNPJ) Branch() int {
	branch, _ := strconv.Atoi(c.number[8:12])
	return branch
}

// IsHeadquarters reports whether the CNPJ identifies the company's
// headquarters rather than a branch office.
func (c CNPJ) IsHeadquarters() bool {
	return c.Branch() == 1
}

// IsEmpty checks if the CNPJ is the zero value
func (c CNPJ) IsEmpty() bool {
	return c.number == ""
}

// Equal checks if two CNPJ values are equal
func (c CNPJ) Equal(other CNPJ) bool {
	return c.number == other.number
}

// MarshalJSON implements JSON marshaling
func (c CNPJ) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (c *CNPJ) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	cnpj, err := NewCNPJ(number)
	if err != nil {
		return err
	}

	*c = cnpj
	return nil
}

// FormatCNPJ applies the canonical CNPJ punctuation to a 14-digit string.
// Inputs of any other length are returned stripped but unformatted.
func FormatCNPJ(input string) string {
	digits := onlyDigits(input)
	if len(digits) != 14 {
		return digits
	}
	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" +
		digits[8:12] + "-" + digits[12:]
}

// GenerateCNPJ returns a random valid CNPJ for the given branch number
// (1..9999). Headquarters use branch 1.
func GenerateCNPJ(branch int) (CNPJ, error) {
	if branch < 1 || branch > 9999 {
		return CNPJ{}, errors.NewValidationError("INVALID_CNPJ_BRANCH",
			fmt.Sprintf("branch must be between 1 and 9999, got %d", branch))
	}

	body := make([]byte, 0, 14)
	for i := 0; i < 8; i++ {
		body = append(body, byte('0'+rand.Intn(10)))
	}
	body = append(body, fmt.Sprintf("%04d", branch)...)

	d1 := checksum.Mod11Digit(string(body), cnpjWeightsFirst)
	body = append(body, byte('0'+d1))
	d2 := checksum.Mod11Digit(string(body), cnpjWeightsSecond)
	body = append(body, byte('0'+d2))

	return CNPJ{number: string(body)}, nil
}
