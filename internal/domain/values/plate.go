package values

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"

	"github.com/docbr/docbr/internal/domain/errors"
)

// Plate represents a validated vehicle plate value object. Both the legacy
// LLLNNNN format and the Mercosul LLLNLNN format are accepted.
type Plate struct {
	plate string // Stored as 7 upcased characters without separators
}

var (
	legacyPlateRegex   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// NewPlate creates a new Plate value object with validation. Case and
// separators in the input are ignored.
func NewPlate(input string) (Plate, error) {
	if input == "" {
		return Plate{}, errors.NewValidationError("EMPTY_PLATE",
			"plate cannot be empty")
	}

	cleaned := onlyAlphanumeric(input)
	if len(cleaned) != 7 {
		return Plate{}, errors.NewValidationError("INVALID_PLATE_LENGTH",
			fmt.Sprintf("plate must have 7 characters, got %d", len(cleaned)))
	}

	if !legacyPlateRegex.MatchString(cleaned) && !mercosulPlateRegex.MatchString(cleaned) {
		return Plate{}, errors.NewValidationError("INVALID_PLATE_FORMAT",
			"plate matches neither the legacy nor the Mercosul format")
	}

	return Plate{plate: cleaned}, nil
}

// MustNewPlate creates a Plate and panics on error (for constants/tests)
func MustNewPlate(input string) Plate {
	plate, err := NewPlate(input)
	if err != nil {
		panic(err)
	}
	return plate
}

// IsValidPlate reports whether the input is a valid vehicle plate.
func IsValidPlate(input string) bool {
	_, err := NewPlate(input)
	return err == nil
}

// String returns the plate as 7 bare characters
func (p Plate) String() string {
	return p.plate
}

// Format returns the conventional rendering: legacy plates carry a dash
// (AAA-0000), Mercosul plates do not.
func (p Plate) Format() string {
	return FormatPlate(p.plate)
}

// IsMercosul reports whether the plate uses the Mercosul format.
func (p Plate) IsMercosul() bool {
	return mercosulPlateRegex.MatchString(p.plate)
}

// IsEmpty checks if the Plate is the zero value
func (p Plate) IsEmpty() bool {
	return p.plate == ""
}

// Equal checks if two Plate values are equal
func (p Plate) Equal(other Plate) bool {
	return p.plate == other.plate
}

// MarshalJSON implements JSON marshaling
func (p Plate) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.plate)
}

// UnmarshalJSON implements JSON unmarshaling
func (p *Plate) UnmarshalJSON(data []byte) error {
	var plate string
	if err := json.Unmarshal(data, &plate); err != nil {
		return err
	}

	parsed, err := NewPlate(plate)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// FormatPlate applies the conventional plate rendering. Inputs that are
// not 7 characters after cleaning are returned stripped but unformatted.
func FormatPlate(input string) string {
	cleaned := onlyAlphanumeric(input)
	if len(cleaned) != 7 {
		return cleaned
	}
	if mercosulPlateRegex.MatchString(cleaned) {
		return cleaned
	}
	return cleaned[:3] + "-" + cleaned[3:]
}

// PlateGenOptions controls plate generation. The zero value produces a
// Mercosul plate.
type PlateGenOptions struct {
	Legacy bool
}

// GeneratePlate returns a random valid plate.
func GeneratePlate(opts PlateGenOptions) Plate {
	letter := func() byte { return byte('A' + rand.Intn(26)) }
	digit := func() byte { return byte('0' + rand.Intn(10)) }

	var b []byte
	if opts.Legacy {
		b = []byte{letter(), letter(), letter(), digit(), digit(), digit(), digit()}
	} else {
		b = []byte{letter(), letter(), letter(), digit(), letter(), digit(), digit()}
	}

	return Plate{plate: string(b)}
}
