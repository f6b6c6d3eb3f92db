package format

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/errors"
)

// agpMinColumns is the shortest legal AGP line: 9 columns for both gap and
// component rows; component rows may carry tags in columns 10 and up.
const agpMinColumns = 9

// ParseAGP reads AGP text into an Assembly. Column 5 discriminates gaps
// ('U' and 'N') from sequence components ('W' and other WGS-style codes,
// accepted leniently). Tag columns beyond the ninth are attached to the
// component; unrecognized tags become warnings unless opts.StrictTags is
// set.
func ParseAGP(r io.Reader, name string, opts Options) (*assembly.Assembly, []Warning, error) {
	asm := assembly.New(name)
	var warns []Warning

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "##") {
			// Pragma lines such as "##agp-version 2.1" carry no data.
			continue
		}
		if strings.HasPrefix(line, "#") {
			if h := headerText(line); h != "" {
				asm.AddHeader(h)
			}
			continue
		}

		if err := parseAGPRow(asm, line, lineNum, opts, &warns); err != nil {
			return nil, nil, errors.WithLine(err, lineNum)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return asm, warns, nil
}

func parseAGPRow(asm *assembly.Assembly, line string, lineNum int, opts Options, warns *[]Warning) error {
	fields := strings.Split(line, "\t")
	if len(fields) < agpMinColumns {
		return errors.New(errors.ErrCodeColumnCount,
			"got %d columns, want at least %d", len(fields), agpMinColumns)
	}

	object := fields[0]
	objStart, err := parseCoord(fields[1], "object_start")
	if err != nil {
		return err
	}
	objEnd, err := parseCoord(fields[2], "object_end")
	if err != nil {
		return err
	}

	var row assembly.Row
	switch fields[4] {
	case "U", "N":
		row, err = parseAGPGap(fields)
	default:
		row, err = parseAGPComponent(fields, lineNum, opts, warns)
	}
	if err != nil {
		return err
	}
	return asm.InsertRow(object, row, objStart, objEnd)
}

func parseAGPGap(fields []string) (*assembly.Gap, error) {
	length, err := parseCoord(fields[5], "gap_length")
	if err != nil {
		return nil, err
	}
	var linkage bool
	switch fields[7] {
	case "yes":
		linkage = true
	case "no":
		linkage = false
	default:
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"linkage %q outside the vocabulary (yes, no)", fields[7])
	}
	return assembly.NewGap(length, assembly.GapType(fields[6]), linkage,
		strings.Split(fields[8], ";"))
}

func parseAGPComponent(fields []string, lineNum int, opts Options, warns *[]Warning) (*assembly.Component, error) {
	start, err := parseCoord(fields[6], "component_start")
	if err != nil {
		return nil, err
	}
	end, err := parseCoord(fields[7], "component_end")
	if err != nil {
		return nil, err
	}
	orient, err := parseAGPOrientation(fields[8])
	if err != nil {
		return nil, err
	}
	c, err := assembly.NewComponent(fields[5], start, end, orient)
	if err != nil {
		return nil, err
	}
	for _, tag := range fields[agpMinColumns:] {
		if tag == "" {
			continue
		}
		t := assembly.Tag(tag)
		if err := c.AddTag(t, opts.StrictTags); err != nil {
			return nil, err
		}
		if !t.Recognized() {
			*warns = append(*warns, Warning{Line: lineNum,
				Message: "unrecognized tag " + strconv.Quote(tag)})
		}
	}
	return c, nil
}

// parseAGPOrientation maps AGP column 9. The three "don't know" spellings
// all normalize to Unknown.
func parseAGPOrientation(s string) (assembly.Orientation, error) {
	switch s {
	case "+":
		return assembly.Plus, nil
	case "-":
		return assembly.Minus, nil
	case "?", "0", "na":
		return assembly.Unknown, nil
	default:
		return assembly.Unknown, errors.New(errors.ErrCodeInvalidOrientation,
			"orientation %q outside the vocabulary (+, -, ?, 0, na)", s)
	}
}

func parseCoord(s, field string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeMalformedRow, "%s %q is not an integer", field, s)
	}
	return n, nil
}

// WriteAGP serializes asm as AGP. Object coordinates (columns 2-3) and the
// per-scaffold part number (column 4) are recomputed from the row sequence
// rather than trusted from the source, so output is self-consistent after
// any transform. Unknown orientation serializes as "?".
func WriteAGP(w io.Writer, asm *assembly.Assembly) error {
	bw := bufio.NewWriter(w)
	for _, line := range asm.Header() {
		if _, err := bw.WriteString("# " + line + "\n"); err != nil {
			return err
		}
	}
	for scffld := range asm.Scaffolds() {
		var pos int64
		for i, row := range scffld.Rows() {
			cols := []string{
				scffld.Name,
				strconv.FormatInt(pos+1, 10),
				strconv.FormatInt(pos+row.Span(), 10),
				strconv.Itoa(i + 1),
			}
			pos += row.Span()

			switch r := row.(type) {
			case *assembly.Gap:
				linkage := "no"
				if r.Linkage {
					linkage = "yes"
				}
				cols = append(cols, "U",
					strconv.FormatInt(r.Length, 10),
					string(r.Type),
					linkage,
					strings.Join(r.Evidence, ";"))
			case *assembly.Component:
				cols = append(cols, "W",
					r.Name,
					strconv.FormatInt(r.Start, 10),
					strconv.FormatInt(r.End, 10),
					r.Orient.String())
				for _, t := range r.Tags {
					cols = append(cols, string(t))
				}
			}

			if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
