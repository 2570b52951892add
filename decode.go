package unpacker

import (
	"regexp"
	"strings"
)

// Word characters are Unicode: a non-ASCII letter extends a token rather
// than terminating it, so a run like 1Í stays one (undecodable) token.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// decodeWords rewrites every placeholder word in payload with its
// symbol-table entry. A word is a maximal run of Unicode letters, marks,
// digits, or underscore.
//
// The payload first has its call-level escaping undone (\\ becomes \ and
// \' becomes '); these are artifacts of the outer string literal, not of the
// packed code. Each word token is then decoded from the configured base and,
// when the resulting index has a non-empty symtab entry, replaced by it.
// Tokens that fail to decode, fall outside the table, or hit an empty entry
// are left exactly as found: the runtime interpreter being reversed falls
// back to the raw token on a failed lookup, and sparse symbol tables rely
// on that.
func decodeWords(payload string, symtab []string, ub *Unbaser) string {
	cleaned := strings.ReplaceAll(payload, `\\`, `\`)
	cleaned = strings.ReplaceAll(cleaned, `\'`, "'")
	return wordPattern.ReplaceAllStringFunc(cleaned, func(word string) string {
		index, err := ub.Unbase(word)
		if err == nil && index < len(symtab) && symtab[index] != "" {
			return symtab[index]
		}
		return word
	})
}
