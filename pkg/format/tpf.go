package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/errors"
)

// The adapted TPF marks gap rows with the literal "GAP" in column 1 and
// the gap type in column 2; "TYPE-2" is a scaffold gap, "TYPE-3" a contig
// gap.
const (
	tpfGapMarker   = "GAP"
	tpfGapScaffold = "TYPE-2"
	tpfGapContig   = "TYPE-3"
)

// ParseTPF reads the locally adapted TPF into an Assembly. Sequence rows
// have four columns: an accession placeholder, a "<name>:<start>-<end>"
// clone field, the owning scaffold, and PLUS/MINUS. Gap rows are "GAP",
// the gap type, and the gap length.
func ParseTPF(r io.Reader, name string, opts Options) (*assembly.Assembly, []Warning, error) {
	asm := assembly.New(name)
	var warns []Warning

	scaffoldName := ""
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if h := headerText(line); h != "" {
				asm.AddHeader(h)
			}
			continue
		}

		fields := strings.Split(line, "\t")
		var err error
		if fields[0] == tpfGapMarker {
			err = parseTPFGap(asm, fields, scaffoldName, opts)
		} else {
			scaffoldName, err = parseTPFSequence(asm, fields)
		}
		if err != nil {
			return nil, nil, errors.WithLine(err, lineNum)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return asm, warns, nil
}

func parseTPFGap(asm *assembly.Assembly, fields []string, scaffoldName string, opts Options) error {
	if len(fields) < 2 {
		return errors.New(errors.ErrCodeColumnCount, "gap row has no gap type column")
	}
	if scaffoldName == "" {
		return errors.New(errors.ErrCodeMalformedRow, "gap row before first sequence row")
	}

	var typ assembly.GapType
	switch fields[1] {
	case tpfGapScaffold:
		typ = assembly.GapScaffold
	case tpfGapContig:
		typ = assembly.GapContig
	default:
		return errors.New(errors.ErrCodeMalformedRow,
			"gap type %q outside the vocabulary (%s, %s)", fields[1], tpfGapScaffold, tpfGapContig)
	}

	length := opts.gapLength()
	if len(fields) > 2 {
		var err error
		if length, err = parseCoord(fields[2], "gap_length"); err != nil {
			return err
		}
	}

	g, err := assembly.NewGap(length, typ, true, nil)
	if err != nil {
		return err
	}
	asm.AppendRow(scaffoldName, g)
	return nil
}

func parseTPFSequence(asm *assembly.Assembly, fields []string) (string, error) {
	if len(fields) != 4 {
		return "", errors.New(errors.ErrCodeColumnCount, "got %d columns, want 4", len(fields))
	}

	compName, start, end, err := parseCloneField(fields[1])
	if err != nil {
		return "", err
	}
	orient, err := parseTPFOrientation(fields[3])
	if err != nil {
		return "", err
	}
	c, err := assembly.NewComponent(compName, start, end, orient)
	if err != nil {
		return "", err
	}

	scaffoldName := fields[2]
	if scaffoldName == "" {
		return "", errors.New(errors.ErrCodeMalformedRow, "sequence row has empty scaffold column")
	}
	asm.AppendRow(scaffoldName, c)
	return scaffoldName, nil
}

// parseCloneField splits "<name>:<start>-<end>" on its last colon and last
// dash, so component names containing either character still parse.
func parseCloneField(s string) (string, int64, int64, error) {
	colon := strings.LastIndexByte(s, ':')
	if colon <= 0 {
		return "", 0, 0, cloneFieldError(s)
	}
	name, coords := s[:colon], s[colon+1:]

	dash := strings.LastIndexByte(coords, '-')
	if dash <= 0 {
		return "", 0, 0, cloneFieldError(s)
	}
	start, err := strconv.ParseInt(coords[:dash], 10, 64)
	if err != nil {
		return "", 0, 0, cloneFieldError(s)
	}
	end, err := strconv.ParseInt(coords[dash+1:], 10, 64)
	if err != nil {
		return "", 0, 0, cloneFieldError(s)
	}
	return name, start, end, nil
}

func cloneFieldError(s string) error {
	return errors.New(errors.ErrCodeMalformedCloneField,
		"clone field %q does not match <name>:<start>-<end>", s)
}

func parseTPFOrientation(s string) (assembly.Orientation, error) {
	switch s {
	case "PLUS":
		return assembly.Plus, nil
	case "MINUS":
		return assembly.Minus, nil
	case "UNKNOWN":
		return assembly.Unknown, nil
	default:
		return assembly.Unknown, errors.New(errors.ErrCodeInvalidOrientation,
			"strand %q outside the vocabulary (PLUS, MINUS)", s)
	}
}

// WriteTPF serializes asm as the adapted TPF. The clone field carries the
// coordinates the component occupies in the assembly the names refer to,
// which is what lets a curated TPF trace back to the pre-curation
// assembly.
func WriteTPF(w io.Writer, asm *assembly.Assembly) error {
	bw := bufio.NewWriter(w)
	for _, line := range asm.Header() {
		if _, err := bw.WriteString("## " + line + "\n"); err != nil {
			return err
		}
	}
	for scffld := range asm.Scaffolds() {
		for _, row := range scffld.Rows() {
			var err error
			switch r := row.(type) {
			case *assembly.Gap:
				typ := tpfGapContig
				if r.Type == assembly.GapScaffold {
					typ = tpfGapScaffold
				}
				_, err = fmt.Fprintf(bw, "%s\t%s\t%d\n", tpfGapMarker, typ, r.Length)
			case *assembly.Component:
				_, err = fmt.Fprintf(bw, "?\t%s:%d-%d\t%s\t%s\n",
					r.Name, r.Start, r.End, scffld.Name, tpfStrand(r.Orient))
			}
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func tpfStrand(o assembly.Orientation) string {
	switch o {
	case assembly.Plus:
		return "PLUS"
	case assembly.Minus:
		return "MINUS"
	default:
		return "UNKNOWN"
	}
}
