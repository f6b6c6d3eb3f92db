package remap

import (
	"slices"
	"testing"

	"github.com/goldpath/goldpath/pkg/assembly"
	"github.com/goldpath/goldpath/pkg/errors"
)

func comp(t *testing.T, name string, start, end int64, o assembly.Orientation) *assembly.Component {
	t.Helper()
	c, err := assembly.NewComponent(name, start, end, o)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func gap(t *testing.T, length int64) *assembly.Gap {
	t.Helper()
	g, err := assembly.NewGap(length, assembly.GapScaffold, true, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// original builds the reference assembly used across these tests:
//
//	scaffold_1: ctgA 1-500 (+), 200 gap, ctgB 701-1000 (+)
//	scaffold_2: ctgC 1-400 (-), 100 gap, ctgD 501-900 (+)
func original(t *testing.T) *assembly.Assembly {
	t.Helper()
	a := assembly.New("original")
	a.AppendRow("scaffold_1", comp(t, "ctgA", 1, 500, assembly.Plus))
	a.AppendRow("scaffold_1", gap(t, 200))
	a.AppendRow("scaffold_1", comp(t, "ctgB", 701, 1000, assembly.Plus))
	a.AppendRow("scaffold_2", comp(t, "ctgC", 1, 400, assembly.Minus))
	a.AppendRow("scaffold_2", gap(t, 100))
	a.AppendRow("scaffold_2", comp(t, "ctgD", 501, 900, assembly.Plus))
	return a
}

func curatedWith(t *testing.T, rows ...assembly.Row) *assembly.Assembly {
	t.Helper()
	a := assembly.New("curated")
	for _, r := range rows {
		a.AppendRow("chr1", r)
	}
	return a
}

func TestRemapWholeScaffoldReversed(t *testing.T) {
	// The worked example: chr1 maps scaffold_1:1-1000 on the Minus strand.
	curated := curatedWith(t, comp(t, "scaffold_1", 1, 1000, assembly.Minus))

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}

	s, ok := out.Scaffold("chr1")
	if !ok || s.NumRows() != 3 {
		t.Fatalf("chr1 rows = %d, want 3", s.NumRows())
	}

	first := s.Rows()[0].(*assembly.Component)
	if first.Name != "ctgB" || first.Start != 701 || first.End != 1000 || first.Orient != assembly.Minus {
		t.Errorf("first row = %v, want ctgB:701-1000(-)", first)
	}
	if g := s.Rows()[1].(*assembly.Gap); g.Length != 200 {
		t.Errorf("gap length = %d, want 200", g.Length)
	}
	last := s.Rows()[2].(*assembly.Component)
	if last.Name != "ctgA" || last.Start != 1 || last.End != 500 || last.Orient != assembly.Minus {
		t.Errorf("last row = %v, want ctgA:1-500(-)", last)
	}

	// Output object coordinates are a fresh contiguous run.
	wantObj := []struct{ start, end int64 }{{1, 300}, {301, 500}, {501, 1000}}
	for i, row := range s.Rows() {
		if row.ObjectStart() != wantObj[i].start || row.ObjectEnd() != wantObj[i].end {
			t.Errorf("row %d object = %d-%d, want %d-%d",
				i, row.ObjectStart(), row.ObjectEnd(), wantObj[i].start, wantObj[i].end)
		}
	}
}

func TestRemapDoubleNegation(t *testing.T) {
	// ctgC is Minus in the original; mapping its region Minus again must
	// re-express it as Plus.
	curated := curatedWith(t, comp(t, "scaffold_2", 1, 900, assembly.Minus))

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}

	s, _ := out.Scaffold("chr1")
	first := s.Rows()[0].(*assembly.Component)
	if first.Name != "ctgD" || first.Orient != assembly.Minus {
		t.Errorf("first row = %v, want ctgD on Minus", first)
	}
	last := s.Rows()[2].(*assembly.Component)
	if last.Name != "ctgC" || last.Orient != assembly.Plus {
		t.Errorf("last row = %v, want ctgC flipped back to Plus", last)
	}
}

func TestRemapUnknownOrientationActsAsPlus(t *testing.T) {
	curated := curatedWith(t, comp(t, "scaffold_1", 1, 1000, assembly.Unknown))

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := out.Scaffold("chr1")
	first := s.Rows()[0].(*assembly.Component)
	if first.Name != "ctgA" || first.Orient != assembly.Plus {
		t.Errorf("first row = %v, want ctgA:1-500(+) (no reversal)", first)
	}
}

func TestRemapClipsPartialComponents(t *testing.T) {
	curated := curatedWith(t, comp(t, "scaffold_1", 401, 800, assembly.Plus))

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}

	s, _ := out.Scaffold("chr1")
	if s.NumRows() != 3 {
		t.Fatalf("rows = %d, want 3", s.NumRows())
	}
	a := s.Rows()[0].(*assembly.Component)
	if a.Name != "ctgA" || a.Start != 401 || a.End != 500 {
		t.Errorf("clipped ctgA = %v, want ctgA:401-500", a)
	}
	if g := s.Rows()[1].(*assembly.Gap); g.Length != 200 {
		t.Errorf("fully contained gap = %d, want inherited 200", g.Length)
	}
	b := s.Rows()[2].(*assembly.Component)
	if b.Name != "ctgB" || b.Start != 701 || b.End != 800 {
		t.Errorf("clipped ctgB = %v, want ctgB:701-800", b)
	}
	if got := out.TotalLength("chr1"); got != 400 {
		t.Errorf("TotalLength = %d, want 400", got)
	}
}

func TestRemapTruncatesStraddlingGap(t *testing.T) {
	// 600-1000 starts inside the gap (object 501-700): the gap is
	// truncated to the 101 overlapping bases, never re-lengthened.
	curated := curatedWith(t, comp(t, "scaffold_1", 600, 1000, assembly.Plus))

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}

	s, _ := out.Scaffold("chr1")
	if s.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", s.NumRows())
	}
	if g := s.Rows()[0].(*assembly.Gap); g.Length != 101 {
		t.Errorf("straddling gap = %d, want truncated to 101", g.Length)
	}
	if b := s.Rows()[1].(*assembly.Component); b.Start != 701 || b.End != 1000 {
		t.Errorf("ctgB = %v, want untouched 701-1000", b)
	}
}

func TestRemapClipsMinusComponent(t *testing.T) {
	// ctgC is Minus in scaffold_2 (object 1-400). Trimming the object
	// window's low side must trim ctgC's high end.
	curated := curatedWith(t, comp(t, "scaffold_2", 101, 400, assembly.Plus))

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := out.Scaffold("chr1")
	c := s.Rows()[0].(*assembly.Component)
	if c.Name != "ctgC" || c.Start != 1 || c.End != 300 || c.Orient != assembly.Minus {
		t.Errorf("clipped minus component = %v, want ctgC:1-300(-)", c)
	}
}

func TestRemapPreservesTags(t *testing.T) {
	orig := assembly.New("original")
	c := comp(t, "ctgA", 1, 500, assembly.Plus)
	if err := c.AddTag("Painted", false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddTag("X1", false); err != nil {
		t.Fatal(err)
	}
	orig.AppendRow("scaffold_1", c)

	curated := curatedWith(t, comp(t, "scaffold_1", 101, 400, assembly.Minus))

	out, err := Remap(curated, orig)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := out.Scaffold("chr1")
	got := s.Rows()[0].(*assembly.Component)
	if !slices.Equal(got.Tags, []assembly.Tag{"Painted", "X1"}) {
		t.Errorf("tags = %v, want preserved through clip and reversal", got.Tags)
	}
}

func TestRemapAdjacentIntervalsNotMerged(t *testing.T) {
	// Two adjacent same-strand slices of ctgA stay two rows: each keeps
	// its provenance as a distinct curator choice.
	curated := curatedWith(t,
		comp(t, "scaffold_1", 1, 250, assembly.Plus),
		comp(t, "scaffold_1", 251, 500, assembly.Plus),
	)

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := out.Scaffold("chr1")
	if s.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2 unmerged rows", s.NumRows())
	}
	a := s.Rows()[0].(*assembly.Component)
	b := s.Rows()[1].(*assembly.Component)
	if a.End != 250 || b.Start != 251 {
		t.Errorf("rows = %v, %v: want split preserved at 250/251", a, b)
	}
}

func TestRemapCuratedGapsPassThrough(t *testing.T) {
	curated := curatedWith(t,
		comp(t, "scaffold_1", 1, 500, assembly.Plus),
		gap(t, 120),
		comp(t, "scaffold_2", 501, 900, assembly.Plus),
	)

	out, err := Remap(curated, original(t))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := out.Scaffold("chr1")
	if s.NumRows() != 3 {
		t.Fatalf("rows = %d, want 3", s.NumRows())
	}
	if g := s.Rows()[1].(*assembly.Gap); g.Length != 120 {
		t.Errorf("curated gap = %d, want 120 carried verbatim", g.Length)
	}
}

func TestRemapUnknownScaffold(t *testing.T) {
	curated := curatedWith(t, comp(t, "scaffold_9", 1, 100, assembly.Plus))

	_, err := Remap(curated, original(t))
	if !errors.Is(err, errors.ErrCodeUnknownScaffold) {
		t.Fatalf("error = %v, want UNKNOWN_SCAFFOLD", err)
	}
}

func TestRemapEmptyMapping(t *testing.T) {
	curated := curatedWith(t, comp(t, "scaffold_1", 2000, 3000, assembly.Plus))

	_, err := Remap(curated, original(t))
	if !errors.Is(err, errors.ErrCodeEmptyMapping) {
		t.Fatalf("error = %v, want EMPTY_MAPPING", err)
	}
}

func TestRemapDoesNotMutateInputs(t *testing.T) {
	orig := original(t)
	curated := curatedWith(t, comp(t, "scaffold_1", 401, 800, assembly.Minus))

	if _, err := Remap(curated, orig); err != nil {
		t.Fatal(err)
	}

	s1, _ := orig.Scaffold("scaffold_1")
	a := s1.Rows()[0].(*assembly.Component)
	if a.Start != 1 || a.End != 500 || a.Orient != assembly.Plus {
		t.Errorf("original mutated: %v", a)
	}
	if a.ObjectStart() != 1 || a.ObjectEnd() != 500 {
		t.Errorf("original object coords mutated: %d-%d", a.ObjectStart(), a.ObjectEnd())
	}
	cs, _ := curated.Scaffold("chr1")
	bait := cs.Rows()[0].(*assembly.Component)
	if bait.Start != 401 || bait.End != 800 || bait.Orient != assembly.Minus {
		t.Errorf("curated mutated: %v", bait)
	}
}

func TestIndexFindOverlaps(t *testing.T) {
	ix := NewIndex(original(t))

	tests := []struct {
		name       string
		start, end int64
		wantRows   int
		wantStart  int64
	}{
		{"whole scaffold", 1, 1000, 3, 1},
		{"first row only", 1, 500, 1, 1},
		{"gap only", 550, 650, 1, 501},
		{"boundary base", 500, 501, 2, 1},
		{"last row only", 701, 1000, 1, 701},
		{"beyond extent", 1001, 2000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, winStart, err := ix.FindOverlaps("scaffold_1", tt.start, tt.end)
			if err != nil {
				t.Fatal(err)
			}
			if len(rows) != tt.wantRows {
				t.Fatalf("rows = %d, want %d", len(rows), tt.wantRows)
			}
			if tt.wantRows > 0 && winStart != tt.wantStart {
				t.Errorf("winStart = %d, want %d", winStart, tt.wantStart)
			}
		})
	}

	if _, _, err := ix.FindOverlaps("scaffold_9", 1, 10); !errors.Is(err, errors.ErrCodeUnknownScaffold) {
		t.Errorf("error = %v, want UNKNOWN_SCAFFOLD", err)
	}
}

func TestIndexTotalLength(t *testing.T) {
	ix := NewIndex(original(t))
	if got := ix.TotalLength("scaffold_1"); got != 1000 {
		t.Errorf("TotalLength(scaffold_1) = %d, want 1000", got)
	}
	if got := ix.TotalLength("absent"); got != 0 {
		t.Errorf("TotalLength(absent) = %d, want 0", got)
	}
}
