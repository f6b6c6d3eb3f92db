package assembly

import "iter"

// Scaffold is one assembled sequence unit: an ordered run of Component and
// Gap rows. Scaffolds are created and populated through Assembly.InsertRow
// and AppendRow so that object coordinates stay contiguous.
type Scaffold struct {
	Name string
	rows []Row
}

// Rows returns the scaffold's rows in object-coordinate order. The slice
// is shared with the scaffold and must not be modified.
func (s *Scaffold) Rows() []Row { return s.rows }

// NumRows returns the number of rows in the scaffold.
func (s *Scaffold) NumRows() int { return len(s.rows) }

// Length is the total span of the scaffold in bases.
func (s *Scaffold) Length() int64 {
	if n := len(s.rows); n > 0 {
		return s.rows[n-1].ObjectEnd()
	}
	return 0
}

// Components iterates over the scaffold's Component rows in order.
func (s *Scaffold) Components() iter.Seq[*Component] {
	return func(yield func(*Component) bool) {
		for _, row := range s.rows {
			if c, ok := row.(*Component); ok {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Gaps iterates over the scaffold's Gap rows in order.
func (s *Scaffold) Gaps() iter.Seq[*Gap] {
	return func(yield func(*Gap) bool) {
		for _, row := range s.rows {
			if g, ok := row.(*Gap); ok {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// addRow appends a placed row. Contiguity has already been checked by the
// owning Assembly.
func (s *Scaffold) addRow(row Row) {
	s.rows = append(s.rows, row)
}
