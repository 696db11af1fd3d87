package paginator

// Cursor holds the page a list screen is showing. The zero value is not
// usable; start from NewCursor.
type Cursor struct {
	Page int
}

func NewCursor() Cursor {
	return Cursor{Page: 1}
}

// GoTo sets page without bounds checks; Next and Previous are the guarded moves.
func (c *Cursor) GoTo(page int) {
	c.Page = page
}

func (c *Cursor) Next(totalPages int) {

	if c.Page < totalPages {
		c.Page++
	}
}

func (c *Cursor) Previous() {

	if c.Page > 1 {
		c.Page--
	}
}

func (c *Cursor) Clamp(totalPages int) {
	c.Page = Clamp(c.Page, totalPages)
}
