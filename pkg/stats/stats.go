// Package stats summarizes how a curated assembly diverges from the
// assembly it was built from. A break is a point where curation split a
// source scaffold; a join is a point where two pieces were stitched
// together. The numbers give curators a quick signal of how much
// rearrangement a curation session produced.
package stats

import (
	"github.com/goldpath/goldpath/pkg/assembly"
)

// Stats holds the break and join counts for one curated assembly.
type Stats struct {
	Breaks int
	Joins  int
}

// Diff compares a curated assembly, whose component names reference
// scaffolds of the original assembly, against that original.
//
// Breaks are counted at scaffold ends (a curated scaffold that does not
// begin at base 1 of its source, or does not run to the source's end)
// and at every interior discontinuity. Interior discontinuities also
// count as joins, since the curator both cut and re-attached there.
func Diff(curated, original *assembly.Assembly) Stats {
	var st Stats
	for scffld := range curated.Scaffolds() {
		st.Breaks += endBreaks(scffld, original)
		changes := interiorChanges(scffld)
		st.Breaks += changes
		st.Joins += changes
	}
	return st
}

func endBreaks(scffld *assembly.Scaffold, original *assembly.Assembly) int {
	comps := indexedComponents(scffld)
	if len(comps) == 0 {
		return 0
	}
	breaks := 0
	first := comps[0].comp
	last := comps[len(comps)-1].comp
	if first.Start != 1 {
		breaks++
	}
	if srcLen := original.TotalLength(last.Name); last.End != srcLen {
		breaks++
	}
	return breaks
}

func interiorChanges(scffld *assembly.Scaffold) int {
	rows := scffld.Rows()
	comps := indexedComponents(scffld)

	changes := 0
	for idx := 1; idx < len(comps); idx++ {
		a, b := comps[idx-1], comps[idx]
		if a.comp.Name != b.comp.Name {
			changes++
			continue
		}

		var gapLength int64
		for _, row := range rows[a.pos+1 : b.pos] {
			gapLength += row.Span()
		}

		switch {
		case a.comp.Orient == assembly.Plus && b.comp.Orient == assembly.Plus:
			if a.comp.End+gapLength+1 != b.comp.Start {
				changes++
			}
		case a.comp.Orient == assembly.Minus && b.comp.Orient == assembly.Minus:
			if b.comp.End+gapLength+1 != a.comp.Start {
				changes++
			}
		default:
			// One of the pair was flipped.
			changes++
		}
	}
	return changes
}

type indexedComponent struct {
	pos  int
	comp *assembly.Component
}

func indexedComponents(scffld *assembly.Scaffold) []indexedComponent {
	var out []indexedComponent
	for i, row := range scffld.Rows() {
		if c, ok := row.(*assembly.Component); ok {
			out = append(out, indexedComponent{pos: i, comp: c})
		}
	}
	return out
}
