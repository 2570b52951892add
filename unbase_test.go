package unpacker

import (
	"strconv"
	"testing"
)

func TestUnbaseNativeBases(t *testing.T) {
	check := func(base int, input string, expected int) {
		ub, err := NewUnbaser(base)
		if err != nil {
			t.Fatal(err)
		}
		n, err := ub.Unbase(input)
		if err != nil {
			t.Fatalf("base %d: unbase(%q) failed: %v", base, input, err)
		}
		if n != expected {
			t.Fatalf("base %d: unbase(%q) should be %d, is %d", base, input, expected, n)
		}
	}
	check(2, "1011", 11)
	check(10, "123", 123)
	check(16, "1f", 31)
	check(36, "z", 35)
}

func TestUnbaseBase62(t *testing.T) {
	ub, err := NewUnbaser(62)
	if err != nil {
		t.Fatal(err)
	}
	for input, expected := range map[string]int{
		"Az": 2267,
		"10": 62,
		"Z":  61,
	} {
		n, err := ub.Unbase(input)
		if err != nil {
			t.Fatalf("unbase(%q) failed: %v", input, err)
		}
		if n != expected {
			t.Fatalf("unbase(%q) should be %d, is %d", input, expected, n)
		}
	}
}

func TestUnbaseBase95(t *testing.T) {
	ub, err := NewUnbaser(95)
	if err != nil {
		t.Fatal(err)
	}
	// 'A' sits at index 33 of the printable ASCII alphabet, '!' at 1
	n, err := ub.Unbase("A!")
	if err != nil {
		t.Fatal(err)
	}
	if n != 33*95+1 {
		t.Fatalf("unbase(\"A!\") should be %d, is %d", 33*95+1, n)
	}
}

// Every digit of a base's alphabet must decode to its own position.
func TestUnbaseDigitAlphabets(t *testing.T) {
	for base := 2; base <= 36; base++ {
		ub, err := NewUnbaser(base)
		if err != nil {
			t.Fatal(err)
		}
		for i, ch := range alphanumeric[:base] {
			n, err := ub.Unbase(string(ch))
			if err != nil {
				t.Fatalf("base %d: digit %q failed: %v", base, ch, err)
			}
			if n != i {
				t.Fatalf("base %d: digit %q should be %d, is %d", base, ch, i, n)
			}
		}
	}
	for _, base := range []int{37, 45, 62} {
		ub, err := NewUnbaser(base)
		if err != nil {
			t.Fatal(err)
		}
		for i, ch := range alphanumeric[:base] {
			n, err := ub.Unbase(string(ch))
			if err != nil {
				t.Fatalf("base %d: digit %q failed: %v", base, ch, err)
			}
			if n != i {
				t.Fatalf("base %d: digit %q should be %d, is %d", base, ch, i, n)
			}
		}
	}
	ub, err := NewUnbaser(95)
	if err != nil {
		t.Fatal(err)
	}
	for i, ch := range printableASCII {
		n, err := ub.Unbase(string(ch))
		if err != nil {
			t.Fatalf("base 95: digit %q failed: %v", ch, err)
		}
		if n != i {
			t.Fatalf("base 95: digit %q should be %d, is %d", ch, i, n)
		}
	}
}

func encodeWithAlphabet(n, base int, alphabet string) string {
	if n == 0 {
		return string(alphabet[0])
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{alphabet[n%base]}, digits...)
		n /= base
	}
	return string(digits)
}

func TestUnbaseRoundTrip(t *testing.T) {
	for _, base := range []int{2, 8, 10, 16, 36, 37, 45, 62, 95} {
		ub, err := NewUnbaser(base)
		if err != nil {
			t.Fatal(err)
		}
		for n := 0; n <= 10000; n++ {
			var encoded string
			switch {
			case base <= 36:
				encoded = strconv.FormatUint(uint64(n), base)
			case base <= 62:
				encoded = encodeWithAlphabet(n, base, alphanumeric[:base])
			default:
				encoded = encodeWithAlphabet(n, base, printableASCII)
			}
			decoded, err := ub.Unbase(encoded)
			if err != nil {
				t.Fatalf("base %d: unbase(%q) failed: %v", base, encoded, err)
			}
			if decoded != n {
				t.Fatalf("base %d: %d encodes to %q but decodes to %d", base, n, encoded, decoded)
			}
		}
	}
}

func TestNewUnbaserRejectsUnsupportedBases(t *testing.T) {
	for _, base := range []int{-5, 0, 1, 63, 70, 94, 96, 128} {
		if _, err := NewUnbaser(base); err != ErrUnsupportedBase {
			t.Fatalf("base %d should fail with ErrUnsupportedBase, got %v", base, err)
		}
	}
}

func TestUnbaseInvalidCharacter(t *testing.T) {
	ub, err := NewUnbaser(62)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ub.Unbase("@"); err != ErrInvalidChar {
		t.Fatalf("unbase(\"@\") should fail with ErrInvalidChar, got %v", err)
	}
}

func TestUnbaseInvalidNumberFormat(t *testing.T) {
	ub, err := NewUnbaser(10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ub.Unbase("12a"); err != ErrInvalidNumber {
		t.Fatalf("unbase(\"12a\") should fail with ErrInvalidNumber, got %v", err)
	}
	if _, err := ub.Unbase(""); err != ErrInvalidNumber {
		t.Fatalf("unbase(\"\") should fail with ErrInvalidNumber, got %v", err)
	}
}
