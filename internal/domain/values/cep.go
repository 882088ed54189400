package values

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/docbr/docbr/internal/domain/errors"
)

// CEP represents a validated postal code value object (8 digits).
// Validity is shape-only; the assigned-range tables only influence the
// state lookup.
type CEP struct {
	code string
}

type cepRange struct {
	lo, hi int
	uf     string
}

// Published allocation of postal code ranges to states. AM, DF and GO own
// non-contiguous ranges.
var cepRanges = []cepRange{
	{1000000, 19999999, "SP"},
	{20000000, 28999999, "RJ"},
	{29000000, 29999999, "ES"},
	{30000000, 39999999, "MG"},
	{40000000, 48999999, "BA"},
	{49000000, 49999999, "SE"},
	{50000000, 56999999, "PE"},
	{57000000, 57999999, "AL"},
	{58000000, 58999999, "PB"},
	{59000000, 59999999, "RN"},
	{60000000, 63999999, "CE"},
	{64000000, 64999999, "PI"},
	{65000000, 65999999, "MA"},
	{66000000, 68899999, "PA"},
	{68900000, 68999999, "AP"},
	{69000000, 69299999, "AM"},
	{69300000, 69399999, "RR"},
	{69400000, 69899999, "AM"},
	{69900000, 69999999, "AC"},
	{70000000, 72799999, "DF"},
	{72800000, 72999999, "GO"},
	{73000000, 73699999, "DF"},
	{73700000, 76799999, "GO"},
	{77000000, 77999999, "TO"},
	{78000000, 78899999, "MT"},
	{78900000, 78999999, "RO"},
	{79000000, 79999999, "MS"},
	{80000000, 87999999, "PR"},
	{88000000, 89999999, "SC"},
	{90000000, 99999999, "RS"},
}

// NewCEP creates a new CEP value object with validation.
func NewCEP(input string) (CEP, error) {
	if input == "" {
		return CEP{}, errors.NewValidationError("EMPTY_CEP",
			"CEP cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) != 8 {
		return CEP{}, errors.NewValidationError("INVALID_CEP_LENGTH",
			fmt.Sprintf("CEP must have 8 digits, got %d", len(digits)))
	}

	return CEP{code: digits}, nil
}

// MustNewCEP creates a CEP and panics on error (for constants/tests)
func MustNewCEP(input string) CEP {
	cep, err := NewCEP(input)
	if err != nil {
		panic(err)
	}
	return cep
}

// IsValidCEP reports whether the input has the shape of a postal code.
func IsValidCEP(input string) bool {
	_, err := NewCEP(input)
	return err == nil
}

// String returns the CEP as 8 bare digits
func (c CEP) String() string {
	return c.code
}

// Format returns the canonical punctuation: 00000-000
func (c CEP) Format() string {
	return FormatCEP(c.code)
}

// State returns the UF whose range contains this code. The bool is false
// for codes outside every assigned range.
func (c CEP) State() (string, bool) {
	n, err := strconv.Atoi(c.code)
	if err != nil {
		return "", false
	}

	for _, r := range cepRanges {
		if n >= r.lo && n <= r.hi {
			return r.uf, true
		}
	}
	return "", false
}

// IsEmpty checks if the CEP is the zero value
func (c CEP) IsEmpty() bool {
	return c.code == ""
}

// Equal checks if two CEP values are equal
func (c CEP) Equal(other CEP) bool {
	return c.code == other.code
}

// MarshalJSON implements JSON marshaling
func (c CEP) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.code)
}

// UnmarshalJSON implements JSON unmarshaling
func (c *CEP) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}

	cep, err := NewCEP(code)
	if err != nil {
		return err
	}

	*c = cep
	return nil
}

// FormatCEP applies the canonical CEP punctuation to an 8-digit string.
// Inputs of any other length are returned stripped but unformatted.
func FormatCEP(input string) string {
	digits := onlyDigits(input)
	if len(digits) != 8 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}
