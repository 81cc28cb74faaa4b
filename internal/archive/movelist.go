package archive

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadMoveList reads a move list as text. A UTF-8 or UTF-16 byte order
// mark selects the encoding and is dropped; without one the input is taken
// as UTF-8. Line endings are normalised to "\n".
func ReadMoveList(r io.Reader) (string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// ReadMoveListFile reads the move list stored at path.
func ReadMoveListFile(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path is supplied by the user
	if err != nil {
		return "", err
	}
	defer file.Close()
	return ReadMoveList(file)
}
