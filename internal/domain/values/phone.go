package values

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/docbr/docbr/internal/domain/errors"
)

// Phone represents a validated Brazilian phone number value object.
// Stored as bare national digits: DDD plus an 8-digit landline or a
// 9-digit mobile number.
type Phone struct {
	number string
}

// Area codes in service, keyed to the UF they cover.
var phoneAreaCodes = map[string]string{
	"11": "SP", "12": "SP", "13": "SP", "14": "SP", "15": "SP",
	"16": "SP", "17": "SP", "18": "SP", "19": "SP",
	"21": "RJ", "22": "RJ", "24": "RJ",
	"27": "ES", "28": "ES",
	"31": "MG", "32": "MG", "33": "MG", "34": "MG", "35": "MG",
	"37": "MG", "38": "MG",
	"41": "PR", "42": "PR", "43": "PR", "44": "PR", "45": "PR", "46": "PR",
	"47": "SC", "48": "SC", "49": "SC",
	"51": "RS", "53": "RS", "54": "RS", "55": "RS",
	"61": "DF",
	"62": "GO", "64": "GO",
	"63": "TO",
	"65": "MT", "66": "MT",
	"67": "MS",
	"68": "AC",
	"69": "RO",
	"71": "BA", "73": "BA", "74": "BA", "75": "BA", "77": "BA",
	"79": "SE",
	"81": "PE", "87": "PE",
	"82": "AL",
	"83": "PB",
	"84": "RN",
	"85": "CE", "88": "CE",
	"86": "PI", "89": "PI",
	"91": "PA", "93": "PA", "94": "PA",
	"92": "AM", "97": "AM",
	"95": "RR",
	"96": "AP",
	"98": "MA", "99": "MA",
}

// NewPhone creates a new Phone value object with validation. Formatting
// characters and a leading 55 country code are stripped.
func NewPhone(input string) (Phone, error) {
	if input == "" {
		return Phone{}, errors.NewValidationError("EMPTY_PHONE",
			"phone number cannot be empty")
	}

	digits := cleanPhone(input)
	if len(digits) != 10 && len(digits) != 11 {
		return Phone{}, errors.NewValidationError("INVALID_PHONE_LENGTH",
			fmt.Sprintf("phone number must have 10 or 11 digits, got %d", len(digits)))
	}

	if _, ok := phoneAreaCodes[digits[:2]]; !ok {
		return Phone{}, errors.NewValidationError("INVALID_PHONE_AREA_CODE",
			fmt.Sprintf("unknown area code %s", digits[:2]))
	}

	// Nine-digit subscriber numbers are mobile and always start with 9.
	if len(digits) == 11 && digits[2] != '9' {
		return Phone{}, errors.NewValidationError("INVALID_PHONE_MOBILE_PREFIX",
			"11-digit phone numbers must start with 9 after the area code")
	}

	return Phone{number: digits}, nil
}

// MustNewPhone creates a Phone and panics on error (for constants/tests)
func MustNewPhone(input string) Phone {
	phone, err := NewPhone(input)
	if err != nil {
		panic(err)
	}
	return phone
}

// cleanPhone strips formatting and the 55 country prefix on longer inputs.
func cleanPhone(input string) string {
	digits := onlyDigits(input)
	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		digits = digits[2:]
	}
	return digits
}

// IsValidPhone reports whether the input is a valid Brazilian phone number.
func IsValidPhone(input string) bool {
	_, err := NewPhone(input)
	return err == nil
}

// IsValidAreaCode reports whether the two-digit DDD is in service.
func IsValidAreaCode(ddd string) bool {
	_, ok := phoneAreaCodes[ddd]
	return ok
}

// String returns the phone as bare national digits
func (p Phone) String() string {
	return p.number
}

// Format returns the conventional punctuation:
// (00) 00000-0000 for mobile, (00) 0000-0000 for landline.
func (p Phone) Format() string {
	return FormatPhone(p.number)
}

// AreaCode returns the two-digit DDD
func (p Phone) AreaCode() string {
	return p.number[:2]
}

// State returns the UF the area code belongs to
func (p Phone) State() string {
	return phoneAreaCodes[p.number[:2]]
}

// IsMobile reports whether the number is a nine-digit mobile line.
func (p Phone) IsMobile() bool {
	return len(p.number) == 11 && p.number[2] == '9'
}

// IsEmpty checks if the Phone is the zero value
func (p Phone) IsEmpty() bool {
	return p.number == ""
}

// Equal checks if two Phone values are equal
func (p Phone) Equal(other Phone) bool {
	return p.number == other.number
}

// MarshalJSON implements JSON marshaling
func (p Phone) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (p *Phone) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	phone, err := NewPhone(number)
	if err != nil {
		return err
	}

	*p = phone
	return nil
}

// FormatPhone applies the conventional phone punctuation. Inputs that are
// not 10 or 11 digits after cleaning are returned stripped but unformatted.
func FormatPhone(input string) string {
	digits := cleanPhone(input)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return digits
	}
}

// PhoneGenOptions controls phone generation. The zero value produces a
// mobile number with a random area code.
type PhoneGenOptions struct {
	AreaCode string // two-digit DDD; empty draws a random one
	Landline bool
}

// GeneratePhone returns a random valid phone number. An unknown area code
// fails fast with a validation error.
func GeneratePhone(opts PhoneGenOptions) (Phone, error) {
	ddd := opts.AreaCode
	if ddd == "" {
		ddd = randomAreaCode()
	} else if _, ok := phoneAreaCodes[ddd]; !ok {
		return Phone{}, errors.NewValidationError("INVALID_PHONE_AREA_CODE",
			fmt.Sprintf("unknown area code %s", ddd))
	}

	var subscriber []byte
	if opts.Landline {
		// Landline first digits run 2 through 5.
		subscriber = append(subscriber, byte('2'+rand.Intn(4)))
		for i := 0; i < 7; i++ {
			subscriber = append(subscriber, byte('0'+rand.Intn(10)))
		}
	} else {
		subscriber = append(subscriber, '9')
		for i := 0; i < 8; i++ {
			subscriber = append(subscriber, byte('0'+rand.Intn(10)))
		}
	}

	return Phone{number: ddd + string(subscriber)}, nil
}

func randomAreaCode() string {
	codes := make([]string, 0, len(phoneAreaCodes))
	for ddd := range phoneAreaCodes {
		codes = append(codes, ddd)
	}
	sort.Strings(codes)
	return codes[rand.Intn(len(codes))]
}
