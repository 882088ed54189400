package values

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"

	"github.com/docbr/docbr/internal/domain/checksum"
	"github.com/docbr/docbr/internal/domain/errors"
)

// CardNumber represents a validated payment card number value object
// (13 to 19 digits passing the Luhn checksum).
type CardNumber struct {
	number string
}

// CardBrand identifies a card issuer scheme
type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandDiners     CardBrand = "diners"
	BrandDiscover   CardBrand = "discover"
	BrandJCB        CardBrand = "jcb"
	BrandElo        CardBrand = "elo"
	BrandHipercard  CardBrand = "hipercard"
	BrandUnknown    CardBrand = ""
)

// Brand detection is ordered; the first matching pattern wins.
var cardBrandPatterns = []struct {
	brand   CardBrand
	pattern *regexp.Regexp
}{
	{BrandVisa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{BrandMastercard, regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	{BrandAmex, regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{BrandDiners, regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`)},
	{BrandDiscover, regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	{BrandJCB, regexp.MustCompile(`^(?:2131|1800|35\d{3})\d{11}$`)},
	{BrandElo, regexp.MustCompile(`^((((636368)|(438935)|(504175)|(451416)|(636297))\d{0,10})|((5090|5067|5068|5069|6500|6504|6505|6507|6509|6516|6550)\d{0,12}))$`)},
	{BrandHipercard, regexp.MustCompile(`^(606282\d{10}(\d{3})?)|(3841\d{15})$`)},
}

// Issuer prefixes and total lengths used by the generator.
var cardBrandIssuers = map[CardBrand]struct {
	prefixes []string
	length   int
}{
	BrandVisa:       {prefixes: []string{"4"}, length: 16},
	BrandMastercard: {prefixes: []string{"51", "52", "53", "54", "55"}, length: 16},
	BrandAmex:       {prefixes: []string{"34", "37"}, length: 15},
	BrandDiners:     {prefixes: []string{"36"}, length: 14},
	BrandDiscover:   {prefixes: []string{"6011", "65"}, length: 16},
	BrandJCB:        {prefixes: []string{"35"}, length: 16},
	BrandElo:        {prefixes: []string{"636368", "504175", "451416"}, length: 16},
	BrandHipercard:  {prefixes: []string{"606282"}, length: 16},
}

// Deterministic draw order when the generator picks a random brand.
var cardBrands = []CardBrand{
	BrandVisa, BrandMastercard, BrandAmex, BrandDiners,
	BrandDiscover, BrandJCB, BrandElo, BrandHipercard,
}

// NewCardNumber creates a new CardNumber value object with validation.
// Formatting characters in the input are ignored.
func NewCardNumber(input string) (CardNumber, error) {
	if input == "" {
		return CardNumber{}, errors.NewValidationError("EMPTY_CARD_NUMBER",
			"card number cannot be empty")
	}

	digits := onlyDigits(input)
	if len(digits) < 13 || len(digits) > 19 {
		return CardNumber{}, errors.NewValidationError("INVALID_CARD_LENGTH",
			fmt.Sprintf("card number must have 13 to 19 digits, got %d", len(digits)))
	}

	if !checksum.Luhn(digits) {
		return CardNumber{}, errors.NewValidationError("INVALID_CARD_CHECKSUM",
			"card number fails the Luhn checksum")
	}

	return CardNumber{number: digits}, nil
}

// MustNewCardNumber creates a CardNumber and panics on error (for constants/tests)
func MustNewCardNumber(input string) CardNumber {
	card, err := NewCardNumber(input)
	if err != nil {
		panic(err)
	}
	return card
}

// IsValidCardNumber reports whether the input passes length and Luhn checks.
func IsValidCardNumber(input string) bool {
	_, err := NewCardNumber(input)
	return err == nil
}

// String returns the card number as bare digits
func (c CardNumber) String() string {
	return c.number
}

// Format returns the number in groups of four digits
func (c CardNumber) Format() string {
	return FormatCardNumber(c.number)
}

// Brand returns the issuer scheme detected from the leading digits, or
// BrandUnknown when no pattern matches.
func (c CardNumber) Brand() CardBrand {
	return DetectCardBrand(c.number)
}

// IsEmpty checks if the CardNumber is the zero value
func (c CardNumber) IsEmpty() bool {
	return c.number == ""
}

// Equal checks if two CardNumber values are equal
func (c CardNumber) Equal(other CardNumber) bool {
	return c.number == other.number
}

// MarshalJSON implements JSON marshaling
func (c CardNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.number)
}

// UnmarshalJSON implements JSON unmarshaling
func (c *CardNumber) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	card, err := NewCardNumber(number)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// DetectCardBrand identifies the issuer scheme of a card number without
// validating its checksum.
func DetectCardBrand(input string) CardBrand {
	digits := onlyDigits(input)
	for _, bp := range cardBrandPatterns {
		if bp.pattern.MatchString(digits) {
			return bp.brand
		}
	}
	return BrandUnknown
}

// FormatCardNumber renders a card number in groups of four digits.
func FormatCardNumber(input string) string {
	digits := onlyDigits(input)
	var out []byte
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			out = append(out, ' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		out = append(out, digits[i:end]...)
	}
	return string(out)
}

// GenerateCard returns a random valid card number for the given brand,
// drawing an issuer prefix and completing it with the Luhn check digit.
// BrandUnknown picks a random brand; other unknown brands fail fast.
func GenerateCard(brand CardBrand) (CardNumber, error) {
	if brand == BrandUnknown {
		brand = cardBrands[rand.Intn(len(cardBrands))]
	}

	issuer, ok := cardBrandIssuers[brand]
	if !ok {
		return CardNumber{}, errors.NewValidationError("UNKNOWN_CARD_BRAND",
			fmt.Sprintf("unknown card brand %q", brand))
	}

	prefix := issuer.prefixes[rand.Intn(len(issuer.prefixes))]
	body := []byte(prefix)
	for len(body) < issuer.length-1 {
		body = append(body, byte('0'+rand.Intn(10)))
	}
	body = append(body, byte('0'+checksum.LuhnDigit(string(body))))

	return CardNumber{number: string(body)}, nil
}
