package unpacker

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches the first string-array declaration, e.g. var _0x1234=["a","b"];
// The body is matched non-greedily so the first ]; terminates it.
var stringArrayPattern = regexp.MustCompile(`var *(_\w+)=\["(.*?)"\];`)

// replaceStrings inlines the string-array indirection some packer variants
// layer on top of the word encoding: a single array of string literals that
// the rest of the code references by index.
//
// When a declaration is found, every occurrence of identifier[i] anywhere in
// source is replaced by the i-th literal in double quotes, and only the text
// after the declaration is returned. Without a declaration the source passes
// through unchanged. Only the first declaration is processed.
//
// The array body is split on the exact separator "," (quote-comma-quote), so
// an element that itself contains that byte sequence mis-splits. Known
// limitation of the pattern approach, kept for compatibility with the
// runtime behavior being reproduced.
func replaceStrings(source string) string {
	loc := stringArrayPattern.FindStringSubmatchIndex(source)
	if loc == nil {
		return source
	}
	varName := source[loc[2]:loc[3]]
	lookup := strings.Split(source[loc[4]:loc[5]], `","`)
	tracer().Debugf("inlining string array %s with %d entries", varName, len(lookup))

	modified := source
	for index, value := range lookup {
		ref := varName + "[" + strconv.Itoa(index) + "]"
		modified = strings.ReplaceAll(modified, ref, `"`+value+`"`)
	}
	// loc[1] is an offset into the original text. Slicing the modified text
	// with it reproduces the runtime being reversed, which does the same
	// offset arithmetic; a reference before the declaration would shift it.
	return modified[loc[1]:]
}
