package remap

import (
	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/errors"
)

// Index wraps an Assembly with per-scaffold cumulative end offsets so runs
// of rows overlapping an object interval can be found by binary search.
// The wrapped Assembly is never modified.
type Index struct {
	asm  *assembly.Assembly
	ends map[string][]int64
}

// NewIndex builds an index over asm.
func NewIndex(asm *assembly.Assembly) *Index {
	ix := &Index{asm: asm, ends: make(map[string][]int64, asm.NumScaffolds())}
	for scffld := range asm.Scaffolds() {
		ends := make([]int64, scffld.NumRows())
		var pos int64
		for i, row := range scffld.Rows() {
			pos += row.Span()
			ends[i] = pos
		}
		ix.ends[scffld.Name] = ends
	}
	return ix
}

// TotalLength returns the indexed length of the named scaffold, 0 when
// absent.
func (ix *Index) TotalLength(name string) int64 {
	if ends := ix.ends[name]; len(ends) > 0 {
		return ends[len(ends)-1]
	}
	return 0
}

// FindOverlaps returns the run of rows of the named scaffold whose object
// intervals overlap [start, end], along with the object start of the first
// returned row. The returned slice is empty when the interval lies wholly
// outside the scaffold. Referencing a scaffold the assembly does not have
// is an UNKNOWN_SCAFFOLD error.
func (ix *Index) FindOverlaps(name string, start, end int64) ([]assembly.Row, int64, error) {
	scffld, ok := ix.asm.Scaffold(name)
	if !ok {
		return nil, 0, errors.New(errors.ErrCodeUnknownScaffold,
			"no scaffold %q in assembly %q", name, ix.asm.Name)
	}
	ends := ix.ends[name]
	if len(ends) == 0 {
		return nil, 0, nil
	}

	rowStart := func(i int) int64 {
		if i == 0 {
			return 1
		}
		return ends[i-1] + 1
	}

	// Binary search for any row overlapping the interval.
	found := -1
	lo, hi := 0, len(ends)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case ends[mid] < start:
			lo = mid + 1
		case rowStart(mid) > end:
			hi = mid
		default:
			found = mid
		}
		if found >= 0 {
			break
		}
	}
	if found < 0 {
		return nil, 0, nil
	}

	// The run of overlapping rows may extend to either side.
	first, last := found, found
	for first > 0 && ends[first-1] >= start {
		first--
	}
	for last < len(ends)-1 && rowStart(last+1) <= end {
		last++
	}
	return scffld.Rows()[first : last+1], rowStart(first), nil
}
