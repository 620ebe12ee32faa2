package lapper

import (
	"fmt"
)

// Cursor holds the position a sequence of Seek calls resumes scanning from.
// It belongs to the caller, and is only meaningful for the Lapper it was last
// used with. The zero value is a fresh cursor.
type Cursor struct {
	index int
}

// NewCursor returns a cursor positioned at index.
func NewCursor(index int) *Cursor {
	return &Cursor{index: index}
}

// Get returns the index the next Seek resumes from.
func (c *Cursor) Get() int {
	return c.index
}

// Set moves the cursor. Setting it to 0 forces the next Seek to search.
func (c *Cursor) Set(index int) {
	c.index = index
}

// Inc moves the cursor forward by one.
func (c *Cursor) Inc() {
	c.index++
}

func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d)", c.index)
}
