package values

import (
	"encoding/json"
	"fmt"

	"github.com/docbr/docbr/internal/domain/checksum"
	"github.com/docbr/docbr/internal/domain/errors"
)

// CNH represents a validated driver's license number value object
// (11 digits: 9 sequential digits plus 2 check digits).
type CNH struct {
	number string
}

// License categories recognized by the national registry.
var CNHCategories = []string{"A", "B", "C", "D", "E", "AB", "AC", "AD", "AE"}

// NewCNH creates a new CNH value object with validation.
func NewCNH(input string) (CNH, error) {
	if input == "" {
		return CNH{}, errors.NewValidationError("EMPTY_CNH",
			"CNH cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) != 11 {
		return CNH{}, errors.NewValidationError("INVALID_CNH_LENGTH",
			fmt.Sprintf("CNH must have 11 digits, got %d", len(digits)))
	}

	if checksum.AllSameDigit(digits) {
		return CNH{}, errors.NewValidationError("CNH_REPEATED_DIGITS",
			"CNH with all digits equal is invalid")
	}

	if !cnhCheckDigitsMatch(digits) {
		return CNH{}, errors.NewValidationError("INVALID_CNH_CHECK_DIGITS",
			"CNH check digits do not match")
	}

	return CNH{number: digits}, nil
}

// MustNewCNH creates a CNH and panics on error (for constants/tests)
func MustNewCNH(input string) CNH {
	cnh, err := NewCNH(input)
	if err != nil {
		panic(err)
	}
	return cnh
}

// cnhCheckDigitsMatch implements the registry scheme: descending weights
// for the first digit, ascending for the second, with a carry of 2
// subtracted from the second digit whenever the first overflows to 0.
func cnhCheckDigitsMatch(digits string) bool {
	carry := 0

	sum1 := 0
	for i := 0; i < 9; i++ {
		sum1 += int(digits[i]-'0') * (9 - i)
	}
	d1 := sum1 % 11
	if d1 >= 10 {
		d1 = 0
		carry = 2
	}

	sum2 := 0
	for i := 0; i < 9; i++ {
		sum2 += int(digits[i]-'0') * (1 + i)
	}
	d2 := sum2%11 - carry
	if d2 < 0 {
		d2 += 11
	}
	if d2 >= 10 {
		d2 = 0
	}

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// IsValidCNH reports whether the input is a valid CNH number.
func IsValidCNH(input string) bool {
	_, err := NewCNH(input)
	return err == nil
}

// String returns the CNH as 11 bare digits
func (c CNH) String() string {
	return c.number
}

// IsEmpty checks if the CNH is the zero value
func (c CNH) IsEmpty() bool {
	return c.number == ""
}

// Equal checks if two CNH values are equal
func (c CNH) Equal(other CNH) bool {
	return c.number == other.number
}

// MarshalJSON implements JSON marshaling
func (c CNH) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (c *CNH) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	cnh, err := NewCNH(number)
	if err != nil {
		return err
	}

	*c = cnh
	return nil
}
