// Package input buffers the text of all corpus sources before extraction.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StdinName is the source argument that selects standard input.
const StdinName = "-"

// ErrInputUnavailable reports that a named source could not be opened or read.
var ErrInputUnavailable = errors.New("input unavailable")

var errNoStdin = errors.New("no standard input")

// UnavailableError identifies the source that failed.
type UnavailableError struct {
	Source string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInputUnavailable, e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrInputUnavailable as well as the wrapped cause.
func (e *UnavailableError) Is(target error) bool { return target == ErrInputUnavailable }

// ReadAll reads every source in order and returns their concatenation.
// With no paths it reads stdin; the path "-" also means stdin. Sources are
// concatenated byte for byte. A leading byte order mark is consumed and
// UTF-16 sources are transcoded to UTF-8.
//
// Any failure aborts the whole read and no partial text is returned.
func ReadAll(paths []string, stdin io.Reader) (string, error) {
	if len(paths) == 0 {
		paths = []string{StdinName}
	}
	var buf bytes.Buffer
	for _, p := range paths {
		n, err := readSource(&buf, p, stdin)
		if err != nil {
			return "", &UnavailableError{Source: p, Err: err}
		}
		log.Debug().Str("source", p).Int64("bytes", n).Msg("source read")
	}
	return buf.String(), nil
}

func readSource(dst io.Writer, path string, stdin io.Reader) (int64, error) {
	if path == StdinName {
		if stdin == nil {
			return 0, errNoStdin
		}
		return copyDecoded(dst, stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return copyDecoded(dst, f)
}

func copyDecoded(dst io.Writer, r io.Reader) (int64, error) {
	return io.Copy(dst, transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
}
