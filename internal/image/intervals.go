package image

// IntervalSet is a sorted disjoint-interval container with the same merge
// semantics as CodeArea, generalized for the no-base / no-pointer / text area
// overrides Pass 2 and the operand resolver consult (spec.md §3).
type IntervalSet struct {
	area CodeArea
}

// Insert adds [a, b) to the set.
func (s *IntervalSet) Insert(a, b uint32) { s.area.InsertArea(a, b) }

// Contains reports whether addr falls in the set.
func (s *IntervalSet) Contains(addr uint32) bool { return s.area.Contains(addr) }

// Comment is a single (address, text) annotation, printed as "; text" when
// Pass 2's current address matches.
type Comment struct {
	Address uint32
	Text    string
}

// Banner is a framed comment block, printed with a rule line above and below.
type Banner struct {
	Address uint32
	Text    string
}

// CommentTable holds comments and banners configured before analysis begins;
// read-only once Pass 0 starts (spec.md §3 Lifecycle).
type CommentTable struct {
	Comments []Comment
	Banners  []Banner
}

// At returns every comment and banner registered at addr, in configuration
// order — spec.md says "every entry matching the current address is printed."
func (t *CommentTable) At(addr uint32) (comments []string, banners []string) {
	for _, c := range t.Comments {
		if c.Address == addr {
			comments = append(comments, c.Text)
		}
	}
	for _, b := range t.Banners {
		if b.Address == addr {
			banners = append(banners, b.Text)
		}
	}
	return
}
