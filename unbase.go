package unpacker

import (
	"strconv"

	"github.com/pkg/errors"
)

// Digit alphabets for the supported base families. Bases 37-62 use a prefix
// of alphanumeric; base 95 uses the printable ASCII range in codepoint order.
const (
	alphanumeric   = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	printableASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)

// Errors returned by NewUnbaser and Unbase.
var (
	ErrUnsupportedBase = errors.New("Unsupported base encoding.")
	ErrInvalidNumber   = errors.New("Invalid number format")
	ErrInvalidChar     = errors.New("Invalid character in input string.")
)

// Unbaser converts strings of digits in a fixed positional base into natural
// numbers. Construct one per base with NewUnbaser and reuse it for every
// token; an Unbaser is immutable and safe for concurrent use.
type Unbaser struct {
	base       int
	dictionary map[rune]int // nil for native bases 2..36
}

// NewUnbaser creates an Unbaser for the given base.
//
// Supported bases:
//   - 2 to 36: standard alphanumeric digits (0-9, a-z), parsed natively.
//   - 37 to 62: digits, lowercase, then uppercase letters; the first base
//     characters of that 62-character sequence form the alphabet. Case is
//     significant. Base 62 is the packer default.
//   - 95: the full printable ASCII set, space (0x20) through tilde (0x7E).
//
// Any other base fails with ErrUnsupportedBase. The base is validated here,
// never during decoding.
func NewUnbaser(base int) (*Unbaser, error) {
	var dictionary map[rune]int
	switch {
	case base >= 2 && base <= 36:
		// native parsing, no dictionary needed
	case base >= 37 && base <= 62:
		dictionary = buildDict(alphanumeric[:base])
	case base == 95:
		dictionary = buildDict(printableASCII)
	default:
		return nil, ErrUnsupportedBase
	}
	return &Unbaser{base: base, dictionary: dictionary}, nil
}

func buildDict(alphabet string) map[rune]int {
	dictionary := make(map[rune]int, len(alphabet))
	for i, ch := range alphabet {
		dictionary[ch] = i
	}
	return dictionary
}

// Unbase converts input, a numeral in the Unbaser's base, into an integer.
//
// For native bases (2-36) it fails with ErrInvalidNumber on an empty string
// or any digit outside the base. For dictionary bases (37-62, 95) it fails
// with ErrInvalidChar on any character missing from the alphabet.
func (ub *Unbaser) Unbase(input string) (int, error) {
	if ub.dictionary == nil {
		// bit size 63 keeps the result inside int range on conversion
		n, err := strconv.ParseUint(input, ub.base, 63)
		if err != nil {
			return 0, ErrInvalidNumber
		}
		return int(n), nil
	}
	return ub.unbaseWithDict(input)
}

// unbaseWithDict accumulates digit values from least-significant (rightmost)
// to most-significant: sum of value*base^position.
func (ub *Unbaser) unbaseWithDict(input string) (int, error) {
	value := 0
	multiplier := 1
	digits := []rune(input)
	for i := len(digits) - 1; i >= 0; i-- {
		v, ok := ub.dictionary[digits[i]]
		if !ok {
			return 0, ErrInvalidChar
		}
		value += v * multiplier
		multiplier *= ub.base
	}
	return value, nil
}
