package values

import (
	"encoding/json"
	"fmt"

	"github.com/docbr/docbr/internal/domain/errors"
)

// VoterID represents a validated electoral registration number value object.
// The number is 12 digits: 8 sequential digits, a 2-digit state code and
// 2 check digits.
type VoterID struct {
	number string
}

// State code table used by electoral registrations. Code 28 is reserved
// for voters registered abroad.
var voterIDStates = map[string]string{
	"01": "SP", "02": "MG", "03": "RJ", "04": "BA", "05": "RS",
	"06": "PR", "07": "CE", "08": "PE", "09": "SC", "10": "GO",
	"11": "MA", "12": "PB", "13": "PA", "14": "ES", "15": "PI",
	"16": "RN", "17": "AL", "18": "MT", "19": "MS", "20": "DF",
	"21": "SE", "22": "AM", "23": "RO", "24": "AC", "25": "AP",
	"26": "RR", "27": "TO", "28": "ZZ",
}

// NewVoterID creates a new VoterID value object with validation.
func NewVoterID(input string) (VoterID, error) {
	if input == "" {
		return VoterID{}, errors.NewValidationError("EMPTY_VOTER_ID",
			"voter ID cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) != 12 {
		return VoterID{}, errors.NewValidationError("INVALID_VOTER_ID_LENGTH",
			fmt.Sprintf("voter ID must have 12 digits, got %d", len(digits)))
	}

	d1, d2 := voterIDCheckDigits(digits)
	if int(digits[10]-'0') != d1 || int(digits[11]-'0') != d2 {
		return VoterID{}, errors.NewValidationError("INVALID_VOTER_ID_CHECK_DIGITS",
			"voter ID check digits do not match")
	}

	return VoterID{number: digits}, nil
}

// MustNewVoterID creates a VoterID and panics on error (for constants/tests)
func MustNewVoterID(input string) VoterID {
	id, err := NewVoterID(input)
	if err != nil {
		panic(err)
	}
	return id
}

// voterIDCheckDigits computes both check digits for a 12-digit string.
// São Paulo (01) and Minas Gerais (02) registrations map a zero remainder
// to check digit 1 instead of 0.
func voterIDCheckDigits(digits string) (int, int) {
	state := digits[8:10]

	sum1 := 0
	for i := 0; i < 8; i++ {
		sum1 += int(digits[i]-'0') * (i + 2)
	}
	d1 := voterIDMapRemainder(sum1%11, state)

	sum2 := int(digits[8]-'0')*7 + int(digits[9]-'0')*8 + d1*9
	d2 := voterIDMapRemainder(sum2%11, state)

	return d1, d2
}

func voterIDMapRemainder(r int, state string) int {
	switch {
	case r == 0 && (state == "01" || state == "02"):
		return 1
	case r == 0:
		return 0
	case r == 1:
		return 0
	default:
		return 11 - r
	}
}

// IsValidVoterID reports whether the input is a valid voter ID.
func IsValidVoterID(input string) bool {
	_, err := NewVoterID(input)
	return err == nil
}

// String returns the voter ID as 12 bare digits
func (v VoterID) String() string {
	return v.number
}

// State returns the two-letter UF the registration belongs to, or "ZZ"
// for voters abroad. Unknown state codes return an empty string.
func (v VoterID) State() string {
	return voterIDStates[v.number[8:10]]
}

// IsEmpty checks if the VoterID is the zero value
func (v VoterID) IsEmpty() bool {
	return v.number == ""
}

// Equal checks if two VoterID values are equal
func (v VoterID) Equal(other VoterID) bool {
	return v.number == other.number
}

// MarshalJSON implements JSON marshaling
func (v VoterID) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (v *VoterID) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	id, err := NewVoterID(number)
	if err != nil {
		return err
	}

	*v = id
	return nil
}

// VoterIDState looks up the UF of a voter ID without validating its check
// digits. Returns false when the state code is unknown.
func VoterIDState(input string) (string, bool) {
	digits := onlyDigits(input)
	if len(digits) < 10 {
		return "", false
	}
	uf, ok := voterIDStates[digits[8:10]]
	return uf, ok
}
