// Package checksum implements the check-digit arithmetic shared by the
// Brazilian document types: weighted modulo-11 sums for tax and registry
// numbers, and the Luhn algorithm for payment cards.
package checksum

// WeightedSum multiplies each digit by its positional weight and sums the
// products. Only the first len(weights) digits are consumed; callers must
// pass a digit-only string at least that long.
func WeightedSum(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	return sum
}

// Mod11Digit computes a modulo-11 check digit over the weighted sum of
// digits. Remainders of 0 and 1 map to check digit 0, the conventional rule
// used by CPF, CNPJ and PIS numbers.
func Mod11Digit(digits string, weights []int) int {
	r := WeightedSum(digits, weights) % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// Luhn reports whether a digit-only string passes the Luhn checksum.
func Luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// LuhnDigit computes the check digit that makes partial+digit pass Luhn.
func LuhnDigit(partial string) int {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// AllSameDigit reports whether s is a single repeated character. Sequences
// like "11111111111" satisfy the modulo-11 arithmetic but are reserved as
// invalid documents.
func AllSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
