package values

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/docbr/docbr/internal/domain/checksum"
	"github.com/docbr/docbr/internal/domain/errors"
)

// PIS represents a validated PIS/PASEP social insurance number value object
type PIS struct {
	number string // Stored as 11 bare digits
}

var pisWeights = []int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// NewPIS creates a new PIS value object with validation. Formatting
// characters in the input are ignored.
func NewPIS(input string) (PIS, error) {
	if input == "" {
		return PIS{}, errors.NewValidationError("EMPTY_PIS",
			"PIS cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) != 11 {
		return PIS{}, errors.NewValidationError("INVALID_PIS_LENGTH",
			fmt.Sprintf("PIS must have 11 digits, got %d", len(digits)))
	}

	if checksum.Mod11Digit(digits, pisWeights) != int(digits[10]-'0') {
		return PIS{}, errors.NewValidationError("INVALID_PIS_CHECK_DIGIT",
			"PIS check digit does not match")
	}

	return PIS{number: digits}, nil
}

// MustNewPIS creates a PIS and panics on error (for constants/tests)
func MustNewPIS(input string) PIS {
	pis, err := NewPIS(input)
	if err != nil {
		panic(err)
	}
	return pis
}

// IsValidPIS reports whether the input is a valid PIS in any formatting.
func IsValidPIS(input string) bool {
	_, err := NewPIS(input)
	return err == nil
}

// String returns the PIS as 11 bare digits
func (p PIS) String() string {
	return p.number
}

// Format returns the canonical punctuation: 000.00000.00-0
func (p PIS) Format() string {
	return FormatPIS(p.number)
}

// IsEmpty checks if the PIS is the zero value
func (p PIS) IsEmpty() bool {
	return p.number == ""
}

// Equal checks if two PIS values are equal
func (p PIS) Equal(other PIS) bool {
	return p.number == other.number
}

// MarshalJSON implements JSON marshaling
func (p PIS) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (p *PIS) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	pis, err := NewPIS(number)
	if err != nil {
		return err
	}

	*p = pis
	return nil
}

// FormatPIS applies the canonical PIS punctuation to an 11-digit string.
// Inputs of any other length are returned stripped but unformatted.
func FormatPIS(input string) string {
	digits := onlyDigits(input)
	if len(digits) != 11 {
		return digits
	}
	return digits[:3] + "." + digits[3:8] + "." + digits[8:10] + "-" + digits[10:]
}

// GeneratePIS returns a random valid PIS.
func GeneratePIS() PIS {
	body := make([]byte, 10, 11)
	for i := range body {
		body[i] = byte('0' + rand.Intn(10))
	}

	digit := checksum.Mod11Digit(string(body), pisWeights)
	body = append(body, byte('0'+digit))

	return PIS{number: string(body)}
}
