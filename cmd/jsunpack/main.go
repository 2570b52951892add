// Command jsunpack reads P.A.C.K.E.R. encoded JavaScript from a file or
// stdin and writes the reconstructed source to a file or stdout.
//
//	jsunpack -in packed.js -out plain.js -beautify
//
// Exit status is 1 on unpacking errors and 2 when the input is not
// P.A.C.K.E.R. encoded at all.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ditashi/jsbeautifier-go/jsbeautifier"
	"github.com/pkg/errors"

	"github.com/dacchidocchi/unpacker"
)

func main() {
	inPath := flag.String("in", "", "packed JavaScript file (default: stdin)")
	outPath := flag.String("out", "", "output file (default: stdout)")
	beautify := flag.Bool("beautify", false, "re-indent the unpacked source")
	flag.Parse()

	source, err := readSource(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsunpack: %v\n", err)
		os.Exit(1)
	}

	if !unpacker.Detect(source) {
		fmt.Fprintln(os.Stderr, "jsunpack: input is not p.a.c.k.e.r encoded")
		os.Exit(2)
	}

	unpacked, err := unpacker.UnpackUnchecked(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsunpack: %v\n", err)
		os.Exit(1)
	}

	if *beautify {
		opts := jsbeautifier.DefaultOptions()
		pretty, err := jsbeautifier.Beautify(&unpacked, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsunpack: beautify failed: %v\n", err)
			os.Exit(1)
		}
		unpacked = pretty
	}

	if err := writeResult(*outPath, unpacked); err != nil {
		fmt.Fprintf(os.Stderr, "jsunpack: %v\n", err)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read file")
	}
	return string(data), nil
}

func writeResult(path, text string) error {
	if path == "" {
		_, err := fmt.Println(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
