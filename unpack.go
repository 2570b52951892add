package unpacker

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// The decoder-function preamble, with arbitrary runs of spaces and tabs
// between tokens. Matching stops before the last parameter name since both
// the p,a,c,k,e,r and p,a,c,k,e,d variants occur in the wild.
var packedPattern = regexp.MustCompile(
	`eval[ \t]*\([ \t]*function[ \t]*\([ \t]*p[ \t]*,[ \t]*a[ \t]*,[ \t]*c[ \t]*,[ \t]*k[ \t]*,[ \t]*e[ \t]*,[ \t]*`)

// endDelimiters terminate the packed call; the first one found (in this
// order) marks the start of the preserved suffix.
var endDelimiters = []string{"')))", "}))"}

// Detect reports whether source contains P.A.C.K.E.R. encoded JavaScript.
// It only looks for the characteristic eval(function(p,a,c,k,e, preamble;
// the rest of the call need not be well-formed.
func Detect(source string) bool {
	return packedPattern.MatchString(source)
}

// Unpack restores P.A.C.K.E.R. encoded JavaScript to its original form.
//
// It validates the input with Detect and then runs the full reconstruction
// pipeline. Text before the packed call and after its closing delimiter is
// preserved verbatim around the reconstructed code.
func Unpack(source string) (string, error) {
	if !Detect(source) {
		return "", errors.New("Invalid p.a.c.k.e.r data.")
	}
	return UnpackUnchecked(source)
}

// UnpackUnchecked is Unpack without the detection pre-check. Use it when
// Detect has already returned true, to avoid matching the preamble twice
// for validation. Behavior on input that would not pass Detect is
// unspecified beyond returning an error.
func UnpackUnchecked(source string) (string, error) {
	span := packedPattern.FindStringIndex(source)
	if span == nil {
		return "", errors.New("Invalid p.a.c.k.e.r data.")
	}
	beginString := source[:span[0]]
	endString := ""
	for _, delimiter := range endDelimiters {
		if at := strings.Index(source, delimiter); at >= 0 {
			endString = source[at+len(delimiter):]
			break
		}
	}

	args, err := filterArgs(source)
	if err != nil {
		return "", err
	}
	if args.count != len(args.symtab) {
		return "", errors.Errorf("Malformed p.a.c.k.e.r. symtab. (%d != %d)",
			args.count, len(args.symtab))
	}
	tracer().Debugf("packed call at offset %d: radix=%d, %d symbols",
		span[0], args.radix, len(args.symtab))

	unbaser, err := NewUnbaser(args.radix)
	if err != nil {
		return "", err
	}
	newSource := decodeWords(args.payload, args.symtab, unbaser)
	processedSource := replaceStrings(newSource)

	return beginString + processedSource + endString, nil
}
