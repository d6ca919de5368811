// File: pkg/describe/reader.go
package describe

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// sniffLength is the number of bytes sampled when testing for binary content.
const sniffLength = 1024

// ReadContent reads the file at path and classifies it. A null byte in the
// sampled prefix classifies the file as binary without reading further.
// Otherwise the full content is decoded as UTF-8, falling back to Latin-1
// (which always succeeds byte-for-byte) with an encoding warning. Any I/O
// failure yields a read-error classification with the failure description;
// it is never returned as an error. The caller is expected to have checked
// the size already; this function does not stat the file.
func ReadContent(filePath string) (Classification, string, string) {
	file, err := os.Open(filePath)
	if err != nil {
		return ClassReadError, "", err.Error()
	}
	defer file.Close()

	prefix := make([]byte, sniffLength)
	n, err := file.Read(prefix)
	if err != nil && !errors.Is(err, io.EOF) {
		return ClassReadError, "", err.Error()
	}
	prefix = prefix[:n]

	if bytes.IndexByte(prefix, 0) >= 0 {
		return ClassBinary, "", ""
	}

	rest, err := io.ReadAll(file)
	if err != nil {
		return ClassReadError, "", err.Error()
	}
	data := append(prefix, rest...)

	if utf8.Valid(data) {
		return ClassNormal, string(data), ""
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return ClassReadError, "", err.Error()
	}
	return ClassEncodingWarning, string(decoded), "UTF-8 decoding failed"
}
