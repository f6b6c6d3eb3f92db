package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goldpath/goldpath/pkg/errors"
)

// openInput opens path for reading, treating "" and "-" as stdin.
// It returns the reader along with a display name for the assembly,
// derived from the file stem.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, stem(path), nil
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeOutput writes fully rendered data to path, or to stdout when
// path is empty or "-". Existing files are only overwritten when
// clobber is set. Buffering the whole rendering first means a refused
// or failed write never leaves a half-written file behind.
func writeOutput(path string, clobber bool, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !clobber {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.New(errors.ErrCodeFileExists,
				"output file %q already exists (use --clobber to overwrite)", path)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
