package container

import "github.com/deepteams/gif/internal/cursor"

// readColorTable reads n RGB triples (3*n bytes) from c.
func readColorTable(c *cursor.Cursor, n int) (*ColorTable, error) {
	size := 3 * n
	if err := c.Require(size); err != nil {
		return nil, err
	}
	raw := c.BytesAt(0, size)
	entries := make([]RGB, n)
	for i := 0; i < n; i++ {
		entries[i] = RGB{R: raw[3*i], G: raw[3*i+1], B: raw[3*i+2]}
	}
	if err := c.Advance(size); err != nil {
		return nil, err
	}
	return &ColorTable{Entries: entries}, nil
}
