/*
Package unpacker restores JavaScript source from P.A.C.K.E.R. encoded input.

P.A.C.K.E.R. wraps compressed code in a self-invoking decoder function whose
parameter list (p,a,c,k,e,r or p,a,c,k,e,d) doubles as its signature:

	eval(function(p,a,c,k,e,r){
	  // unpacking logic
	}('payload', radix, count, 'symbol|table'.split('|'), 0, {}))

At runtime the decoder rebuilds the original source by substituting every
base-encoded placeholder word in the payload with its symbol-table entry.
This package performs the same reconstruction statically; no JavaScript is
ever executed. Text before and after the packed call is preserved verbatim.

Typical usage:

	if unpacker.Detect(source) {
	    plain, err := unpacker.UnpackUnchecked(source)
	    ...
	}

A secondary pass resolves the string-array indirection some packer variants
add on top (var _0x1234=["a","b"]; referenced as _0x1234[0], _0x1234[1]) by
inlining the literal strings and dropping the array declaration.
*/
package unpacker

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unpacker'
func tracer() tracing.Trace {
	return tracing.Select("unpacker")
}
