package unpacker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// arguments is the decoder call argument tuple extracted from the source:
// the compressed payload, the symbol table, the numeral base used for
// placeholder words, and the symbol count the call declares.
type arguments struct {
	payload string
	symtab  []string
	radix   int
	count   int
}

// The two call grammars packers emit, tried in order. The full form carries
// the two trailing interpreter parameters (seed and accumulator); the simple
// form matches truncated calls that stop after the split. The first grammar
// to match wins.
var juicers = []*regexp.Regexp{
	regexp.MustCompile(`}\('(.*)', *(\d+|\[\]), *(\d+), *'(.*)'\.split\('\|'\), *(\d+), *(.*)\)\)`),
	regexp.MustCompile(`}\('(.*)', *(\d+|\[\]), *(\d+), *'(.*)'\.split\('\|'\)`),
}

// filterArgs extracts the packer call arguments from source.
//
// The payload is taken verbatim; its escaping is resolved later by the word
// decoder. A radix literal of [] is the packer idiom for "no explicit base"
// and maps to 62. Empty segments between consecutive pipes are kept as empty
// symbol-table entries, meaning "no substitution for this index".
func filterArgs(source string) (arguments, error) {
	for _, juicer := range juicers {
		caps := juicer.FindStringSubmatch(source)
		if caps == nil {
			continue
		}
		args := arguments{payload: caps[1]}
		if caps[2] == "[]" {
			args.radix = 62
		} else {
			radix, err := strconv.Atoi(caps[2])
			if err != nil {
				return arguments{}, errors.New("Invalid radix")
			}
			args.radix = radix
		}
		count, err := strconv.Atoi(caps[3])
		if err != nil {
			return arguments{}, errors.New("Invalid count")
		}
		args.count = count
		args.symtab = strings.Split(caps[4], "|")
		return args, nil
	}
	tracer().Errorf("no packer call grammar matched")
	return arguments{}, errors.New("Could not make sense of p.a.c.k.e.r data (unexpected code structure)")
}
