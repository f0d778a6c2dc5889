package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// styleExts lists extensions of files recognized as style objects.
var styleExts = []string{".yaml", ".yml", ".json"}

func isStyleFile(name string) bool {
	ext := filepath.Ext(name)
	return slices.ContainsFunc(styleExts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// isArchiveFile checks file signature, extension is not considered.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs at most 262 bytes to match
	header := make([]byte, 262)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(header[:n], "zip"), nil
}

// selectReader strips byte order mark if any and converts UTF-16 input to
// UTF-8, everything else is expected to be UTF-8 already.
func selectReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
