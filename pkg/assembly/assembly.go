package assembly

import (
	"iter"
	"slices"

	"github.com/goldpath/goldpath/pkg/errors"
)

// Assembly is an ordered mapping from scaffold name to its row sequence,
// plus any header comment lines carried over from the source file.
type Assembly struct {
	Name string

	header    []string
	order     []string
	scaffolds map[string]*Scaffold
}

// New creates an empty Assembly.
func New(name string) *Assembly {
	return &Assembly{
		Name:      name,
		scaffolds: make(map[string]*Scaffold),
	}
}

// AddHeader records one header comment line (without its leading '#').
func (a *Assembly) AddHeader(line string) {
	a.header = append(a.header, line)
}

// Header returns the recorded header lines.
func (a *Assembly) Header() []string { return a.header }

// Scaffold returns the named scaffold, if present.
func (a *Assembly) Scaffold(name string) (*Scaffold, bool) {
	s, ok := a.scaffolds[name]
	return s, ok
}

// NumScaffolds returns the number of scaffolds.
func (a *Assembly) NumScaffolds() int { return len(a.order) }

// ScaffoldNames iterates scaffold names in insertion order. The sequence
// is restartable: each range over it starts from the beginning.
func (a *Assembly) ScaffoldNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range a.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Scaffolds iterates scaffolds in insertion order.
func (a *Assembly) Scaffolds() iter.Seq[*Scaffold] {
	return func(yield func(*Scaffold) bool) {
		for _, name := range a.order {
			if !yield(a.scaffolds[name]) {
				return
			}
		}
	}
}

// TotalLength returns the object coordinate of the named scaffold's last
// row, or 0 for an empty or absent scaffold.
func (a *Assembly) TotalLength(name string) int64 {
	if s, ok := a.scaffolds[name]; ok {
		return s.Length()
	}
	return 0
}

// InsertRow places row at the stated object interval of the named
// scaffold, creating the scaffold on its first row. The interval must
// continue the scaffold exactly: OVERLAP is returned when objStart is not
// one past the previous row's object end, MALFORMED_ROW when the interval
// does not match the row's span.
func (a *Assembly) InsertRow(name string, row Row, objStart, objEnd int64) error {
	want := a.TotalLength(name) + 1
	if objStart != want {
		return errors.WithScaffold(errors.New(errors.ErrCodeOverlap,
			"row starts at object %d, want %d", objStart, want), name)
	}
	if got := objEnd - objStart + 1; got != row.Span() {
		return errors.WithScaffold(errors.New(errors.ErrCodeMalformedRow,
			"object interval spans %d bases but row spans %d", got, row.Span()), name)
	}
	row.setObject(objStart, objEnd)
	a.scaffold(name).addRow(row)
	return nil
}

// AppendRow clones row, stamps the clone with the next object interval of
// the named scaffold, appends it and returns it. The input row is never
// modified, so rows taken from another Assembly can be appended directly.
func (a *Assembly) AppendRow(name string, row Row) Row {
	placed := row.Clone()
	start := a.TotalLength(name) + 1
	placed.setObject(start, start+placed.Span()-1)
	a.scaffold(name).addRow(placed)
	return placed
}

func (a *Assembly) scaffold(name string) *Scaffold {
	s, ok := a.scaffolds[name]
	if !ok {
		s = &Scaffold{Name: name}
		a.scaffolds[name] = s
		a.order = append(a.order, name)
	}
	return s
}

// SortScaffoldsByName reorders scaffolds by the natural order of their
// names, so scaffold_2 sorts before scaffold_10.
func (a *Assembly) SortScaffoldsByName() {
	slices.SortStableFunc(a.order, naturalCompare)
}

// naturalCompare compares strings segment-wise, treating runs of digits as
// numbers.
func naturalCompare(x, y string) int {
	for x != "" && y != "" {
		xd, xr := splitLeading(x)
		yd, yr := splitLeading(y)

		if xd.isNum && yd.isNum {
			// Compare numerically: shorter digit run (ignoring leading
			// zeros) is smaller.
			xs, ys := trimZeros(xd.seg), trimZeros(yd.seg)
			switch {
			case len(xs) != len(ys):
				if len(xs) < len(ys) {
					return -1
				}
				return 1
			case xs != ys:
				if xs < ys {
					return -1
				}
				return 1
			}
		} else if xd.seg != yd.seg {
			if xd.seg < yd.seg {
				return -1
			}
			return 1
		}
		x, y = xr, yr
	}
	switch {
	case x == "" && y == "":
		return 0
	case x == "":
		return -1
	default:
		return 1
	}
}

type segment struct {
	seg   string
	isNum bool
}

func splitLeading(s string) (segment, string) {
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	num := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == num {
		i++
	}
	return segment{seg: s[:i], isNum: num}, s[i:]
}

func trimZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
