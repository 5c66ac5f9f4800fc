package table

// Cursor is the (row, column) position threaded through one invocation.
// Direction contexts embed it, which makes Row and Col fields of the context
// and satisfies Positioned.
type Cursor struct {
	Row int
	Col int

	// claimed is set once a column operation has used a column in the
	// current row.
	claimed bool
}

// Positioned is implemented by every context a Plan runs against.
type Positioned interface {
	Pos() *Cursor
}

// Pos returns the cursor itself.
func (c *Cursor) Pos() *Cursor { return c }

// Claim occupies the next width columns of the row and leaves Col on the
// last of them. Claim(0) does nothing.
func (c *Cursor) Claim(width int) {
	if width <= 0 {
		return
	}
	if c.claimed {
		c.Col++
	}
	c.Col += width - 1
	c.claimed = true
}

// Claimed reports whether a column of the current row has been used.
func (c *Cursor) Claimed() bool { return c.claimed }

func (c *Cursor) beginRow(col int) {
	c.Col = col
	c.claimed = false
}
