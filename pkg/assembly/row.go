package assembly

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goldpath/goldpath/pkg/errors"
)

// Orientation is the strand of a Component relative to its owning scaffold.
type Orientation uint8

const (
	// Unknown orientation is treated as Plus wherever orientation-dependent
	// logic runs, but survives round trips as "?" so no information is lost.
	Unknown Orientation = iota
	Plus
	Minus
)

// Flip returns the opposite orientation. Unknown flips to Unknown: two
// flips of an undetermined strand still tell us nothing about it.
func (o Orientation) Flip() Orientation {
	switch o {
	case Plus:
		return Minus
	case Minus:
		return Plus
	default:
		return Unknown
	}
}

func (o Orientation) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	default:
		return "?"
	}
}

// Row is one assembly-line entity: either a *Component or a *Gap.
// The union is closed; format writers switch exhaustively over the two
// variants.
type Row interface {
	// Span is the number of bases the row occupies in its scaffold.
	Span() int64
	// ObjectStart and ObjectEnd are the row's 1-based inclusive interval in
	// the owning scaffold's coordinate space. Zero until the row has been
	// placed with Assembly.InsertRow or AppendRow.
	ObjectStart() int64
	ObjectEnd() int64
	// Clone returns a deep copy with object coordinates cleared, ready to
	// be placed in another scaffold.
	Clone() Row

	setObject(start, end int64)
}

// Component is a contiguous interval of a named sequence (e.g. a contig)
// contributing to a scaffold. Start and End are 1-based inclusive
// coordinates within the named sequence.
type Component struct {
	Name   string
	Start  int64
	End    int64
	Orient Orientation
	Tags   []Tag

	objStart, objEnd int64
}

// NewComponent validates and builds a Component row.
func NewComponent(name string, start, end int64, orient Orientation) (*Component, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeMalformedRow, "component name is empty")
	}
	if start < 1 || end < 1 {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"component %s has non-positive coordinates %d-%d", name, start, end)
	}
	if start > end {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"component %s start %d > end %d", name, start, end)
	}
	if orient > Minus {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"component %s has orientation outside the vocabulary", name)
	}
	return &Component{Name: name, Start: start, End: end, Orient: orient}, nil
}

// Span implements Row.
func (c *Component) Span() int64 { return c.End - c.Start + 1 }

// ObjectStart implements Row.
func (c *Component) ObjectStart() int64 { return c.objStart }

// ObjectEnd implements Row.
func (c *Component) ObjectEnd() int64 { return c.objEnd }

func (c *Component) setObject(start, end int64) { c.objStart, c.objEnd = start, end }

// Clone implements Row.
func (c *Component) Clone() Row {
	return &Component{
		Name:   c.Name,
		Start:  c.Start,
		End:    c.End,
		Orient: c.Orient,
		Tags:   slices.Clone(c.Tags),
	}
}

// AddTag appends t to the row's tag set, keeping insertion order.
// Adding a tag the row already carries is a no-op. In strict mode a tag
// outside the recognized vocabulary is rejected with UNKNOWN_TAG; the
// default mode preserves it verbatim.
func (c *Component) AddTag(t Tag, strict bool) error {
	if strict && !t.Recognized() {
		return errors.New(errors.ErrCodeUnknownTag, "unknown tag %q", t)
	}
	if c.HasTag(t) {
		return nil
	}
	c.Tags = append(c.Tags, t)
	return nil
}

// HasTag reports whether the row carries t.
func (c *Component) HasTag(t Tag) bool {
	return slices.Contains(c.Tags, t)
}

// Reverse returns a copy of the component on the opposite strand.
func (c *Component) Reverse() *Component {
	r := c.Clone().(*Component)
	r.Orient = c.Orient.Flip()
	return r
}

// Rename returns a copy of the component under a new sequence name.
func (c *Component) Rename(name string) *Component {
	r := c.Clone().(*Component)
	r.Name = name
	return r
}

// Clip returns a copy of the component trimmed by trimLow bases on the low
// side of its object window and trimHigh on the high side. For a Minus
// component the low side of the object window is the high end of the
// component interval, so the trims swap; Unknown clips as Plus.
func (c *Component) Clip(trimLow, trimHigh int64) (*Component, error) {
	if trimLow < 0 || trimHigh < 0 {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"negative clip of component %s", c.Name)
	}
	if trimLow+trimHigh >= c.Span() {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"clip of %d+%d bases empties component %s (%d bases)",
			trimLow, trimHigh, c.Name, c.Span())
	}
	r := c.Clone().(*Component)
	if c.Orient == Minus {
		trimLow, trimHigh = trimHigh, trimLow
	}
	r.Start += trimLow
	r.End -= trimHigh
	return r, nil
}

// Overlaps reports whether the two components share any bases of the same
// named sequence.
func (c *Component) Overlaps(o *Component) bool {
	return c.Name == o.Name && c.End >= o.Start && c.Start <= o.End
}

// Abuts reports whether the two components are adjacent, non-overlapping
// intervals of the same named sequence.
func (c *Component) Abuts(o *Component) bool {
	return c.Name == o.Name && (c.End+1 == o.Start || o.End+1 == c.Start)
}

func (c *Component) String() string {
	s := fmt.Sprintf("%s:%d-%d(%s)", c.Name, c.Start, c.End, c.Orient)
	if len(c.Tags) > 0 {
		parts := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			parts[i] = string(t)
		}
		s += " " + strings.Join(parts, " ")
	}
	return s
}

// GapType classifies the assembly feature a Gap stands for.
type GapType string

const (
	// GapScaffold is a gap between contigs within a scaffold.
	GapScaffold GapType = "scaffold"
	// GapContig is a gap within a contig.
	GapContig GapType = "contig"
)

// DefaultGapLength is the assumed length of gaps whose true size is
// unknown.
const DefaultGapLength = 200

// DefaultEvidence is the linkage evidence recorded for gaps introduced or
// confirmed during Hi-C curation.
const DefaultEvidence = "proximity_ligation"

// Gap is a spacer of known or assumed length between two Components.
type Gap struct {
	Length   int64
	Type     GapType
	Linkage  bool
	Evidence []string

	objStart, objEnd int64
}

// NewGap validates and builds a Gap row. Evidence must be "na" exactly
// when linkage is false; a linkage gap with no stated evidence defaults to
// proximity ligation.
func NewGap(length int64, typ GapType, linkage bool, evidence []string) (*Gap, error) {
	if length < 1 {
		return nil, errors.New(errors.ErrCodeMalformedRow, "gap length %d is not positive", length)
	}
	if typ != GapScaffold && typ != GapContig {
		return nil, errors.New(errors.ErrCodeMalformedRow, "gap type %q outside the vocabulary", typ)
	}
	if linkage {
		if len(evidence) == 0 {
			evidence = []string{DefaultEvidence}
		}
		if slices.Contains(evidence, "na") {
			return nil, errors.New(errors.ErrCodeMalformedRow,
				"linkage gap cannot carry evidence \"na\"")
		}
	} else {
		if len(evidence) > 0 && !slices.Equal(evidence, []string{"na"}) {
			return nil, errors.New(errors.ErrCodeMalformedRow,
				"gap without linkage must carry evidence \"na\", got %v", evidence)
		}
		evidence = []string{"na"}
	}
	return &Gap{Length: length, Type: typ, Linkage: linkage, Evidence: evidence}, nil
}

// DefaultGap is the 200-base scaffold gap used where a gap of unknown
// length is required.
func DefaultGap() *Gap {
	return &Gap{
		Length:   DefaultGapLength,
		Type:     GapScaffold,
		Linkage:  true,
		Evidence: []string{DefaultEvidence},
	}
}

// Span implements Row.
func (g *Gap) Span() int64 { return g.Length }

// ObjectStart implements Row.
func (g *Gap) ObjectStart() int64 { return g.objStart }

// ObjectEnd implements Row.
func (g *Gap) ObjectEnd() int64 { return g.objEnd }

func (g *Gap) setObject(start, end int64) { g.objStart, g.objEnd = start, end }

// Clone implements Row.
func (g *Gap) Clone() Row {
	return &Gap{
		Length:   g.Length,
		Type:     g.Type,
		Linkage:  g.Linkage,
		Evidence: slices.Clone(g.Evidence),
	}
}

// Truncate returns a copy of the gap shortened to length. Gaps straddling
// a clip boundary are truncated, never extended; asking for a longer gap
// is an error rather than a guess.
func (g *Gap) Truncate(length int64) (*Gap, error) {
	if length < 1 {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"truncation to %d bases empties gap", length)
	}
	if length > g.Length {
		return nil, errors.New(errors.ErrCodeMalformedRow,
			"cannot extend %d-base gap to %d bases", g.Length, length)
	}
	r := g.Clone().(*Gap)
	r.Length = length
	return r, nil
}

func (g *Gap) String() string {
	return fmt.Sprintf("Gap:%d %s", g.Length, g.Type)
}
