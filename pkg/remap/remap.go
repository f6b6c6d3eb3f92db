// Package remap composes a curator's coarse rearrangement with the
// original, coordinate-accurate assembly.
//
// A curated AGP produced by PretextView names slices of the original
// assembly's scaffolds as its components: each component row is a
// (scaffold, start, end, orientation) interval in the original scaffold's
// own object-coordinate space. Remap resolves every such interval against
// the original rows, clipping partially covered rows and reversing slices
// mapped on the Minus strand, and rebuilds contiguous object coordinates
// for the curated layout. The transform is purely subtractive and
// reordering: gaps are inherited or truncated, never invented, so every
// output coordinate traces back to the original components.
package remap

import (
	"slices"

	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/errors"
)

// Remap re-projects the curated assembly onto original, returning a fresh
// Assembly. Neither input is modified. Gap rows of the curated assembly
// pass through unchanged; each curated component interval is replaced by
// the original rows it covers, clipped to the interval and reversed when
// the interval is on the Minus strand.
func Remap(curated, original *assembly.Assembly) (*assembly.Assembly, error) {
	out := assembly.New(curated.Name)
	ix := NewIndex(original)

	for scffld := range curated.Scaffolds() {
		for _, row := range scffld.Rows() {
			switch r := row.(type) {
			case *assembly.Gap:
				out.AppendRow(scffld.Name, r)
			case *assembly.Component:
				mapped, err := mapInterval(ix, r)
				if err != nil {
					return nil, errors.WithScaffold(err, scffld.Name)
				}
				for _, m := range mapped {
					out.AppendRow(scffld.Name, m)
				}
			}
		}
	}
	return out, nil
}

// mapInterval resolves one curated interval to clipped copies of the
// original rows it covers, in output order.
func mapInterval(ix *Index, bait *assembly.Component) ([]assembly.Row, error) {
	run, winStart, err := ix.FindOverlaps(bait.Name, bait.Start, bait.End)
	if err != nil {
		return nil, err
	}
	if len(run) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyMapping,
			"no rows of %q overlap %d-%d", bait.Name, bait.Start, bait.End)
	}

	mapped, err := clipRun(run, winStart, bait.Start, bait.End)
	if err != nil {
		return nil, err
	}

	// Minus composes with each row's own orientation: reverse the run and
	// flip every component.
	if bait.Orient == assembly.Minus {
		slices.Reverse(mapped)
		for i, row := range mapped {
			if c, ok := row.(*assembly.Component); ok {
				mapped[i] = c.Reverse()
			}
		}
	}
	return mapped, nil
}

// clipRun copies the run of rows starting at object coordinate winStart,
// trimming the first and last rows to [start, end]. Components clip
// proportionally (orientation-aware); gaps truncate and are dropped if
// nothing of them remains.
func clipRun(run []assembly.Row, winStart, start, end int64) ([]assembly.Row, error) {
	out := make([]assembly.Row, 0, len(run))
	pos := winStart
	for _, row := range run {
		rowStart, rowEnd := pos, pos+row.Span()-1
		pos = rowEnd + 1

		trimLow := max(0, start-rowStart)
		trimHigh := max(0, rowEnd-end)
		if trimLow == 0 && trimHigh == 0 {
			out = append(out, row.Clone())
			continue
		}

		switch r := row.(type) {
		case *assembly.Component:
			clipped, err := r.Clip(trimLow, trimHigh)
			if err != nil {
				return nil, err
			}
			out = append(out, clipped)
		case *assembly.Gap:
			keep := r.Length - trimLow - trimHigh
			if keep < 1 {
				continue
			}
			truncated, err := r.Truncate(keep)
			if err != nil {
				return nil, err
			}
			out = append(out, truncated)
		}
	}
	return out, nil
}
