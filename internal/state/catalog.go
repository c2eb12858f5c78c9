package state

import "strconv"

// Catalog is the ordered list of brushes a user can pick from. Custom
// stickers are appended at runtime.
type Catalog struct {
	brushes []Brush
}

func NewCatalog(brushes ...Brush) *Catalog {
	c := &Catalog{brushes: make([]Brush, 0, len(brushes))}
	c.brushes = append(c.brushes, brushes...)
	return c
}

// Register appends b. Brushes are values, so later edits to the caller's
// copy do not reach the catalog. An id that is already taken is refused.
func (c *Catalog) Register(b Brush) bool {
	if _, taken := c.Lookup(b.ID); taken {
		return false
	}
	c.brushes = append(c.brushes, b)
	return true
}

// Lookup finds the first brush with the given id.
func (c *Catalog) Lookup(id string) (Brush, bool) {
	for _, b := range c.brushes {
		if b.ID == id {
			return b, true
		}
	}
	return Brush{}, false
}

// LookupGlyph finds the sticker brush drawing glyph.
func (c *Catalog) LookupGlyph(glyph string) (Brush, bool) {
	for _, b := range c.brushes {
		if b.IsSticker() && b.Glyph == glyph {
			return b, true
		}
	}
	return Brush{}, false
}

// NextID returns prefix-N for the smallest N >= 1 no brush uses yet.
func (c *Catalog) NextID(prefix string) string {
	for n := 1; ; n++ {
		id := prefix + "-" + strconv.Itoa(n)
		if _, taken := c.Lookup(id); !taken {
			return id
		}
	}
}

// Brushes returns a copy of the catalog in registration order.
func (c *Catalog) Brushes() []Brush {
	out := make([]Brush, len(c.brushes))
	copy(out, c.brushes)
	return out
}

func (c *Catalog) Len() int { return len(c.brushes) }
