// Package format reads and writes the two tab-delimited assembly
// description formats, AGP and the locally adapted TPF.
//
// Parsers are pure functions from a line stream to an assembly.Assembly
// plus a list of recoverable warnings; the first structurally invalid line
// aborts with a structured error carrying its line number. Writers
// recompute all derived columns (object coordinates, per-scaffold part
// numbers) from the row sequence, so output is self-consistent even after
// a transform has rearranged the model.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/errors"
)

// Format identifies one of the supported file formats.
type Format string

const (
	AGP Format = "agp"
	TPF Format = "tpf"
)

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "agp":
		return AGP, nil
	case "tpf":
		return TPF, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format %q (supported: agp, tpf)", name)
	}
}

// Detect infers the format from a file extension, falling back to fallback
// for unrecognized extensions. An empty fallback makes detection failures
// an error.
func Detect(path string, fallback Format) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".agp":
		return AGP, nil
	case ".tpf":
		return TPF, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot detect assembly format of %q", filepath.Base(path))
}

// Options adjust parser behavior.
type Options struct {
	// StrictTags rejects tags outside the recognized vocabulary instead of
	// preserving them with a warning.
	StrictTags bool
	// DefaultGapLength substitutes for gap rows that state no length.
	// Zero means assembly.DefaultGapLength.
	DefaultGapLength int64
}

func (o Options) gapLength() int64 {
	if o.DefaultGapLength > 0 {
		return o.DefaultGapLength
	}
	return assembly.DefaultGapLength
}

// Warning is a recoverable per-line condition that did not abort the
// parse, such as an unrecognized tag.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// Parse reads an assembly in the given format.
func Parse(r io.Reader, f Format, name string, opts Options) (*assembly.Assembly, []Warning, error) {
	switch f {
	case AGP:
		return ParseAGP(r, name, opts)
	case TPF:
		return ParseTPF(r, name, opts)
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
	}
}

// Write serializes an assembly in the given format.
func Write(w io.Writer, f Format, asm *assembly.Assembly) error {
	switch f {
	case AGP:
		return WriteAGP(w, asm)
	case TPF:
		return WriteTPF(w, asm)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
	}
}

// headerText extracts the header payload from a '#'-prefixed line,
// stripping the comment markers and surrounding space. Empty comment lines
// yield "".
func headerText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "# \t"))
}
